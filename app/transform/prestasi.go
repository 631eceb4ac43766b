package transform

import "lomba-portal-backend/app/model"

// PrestasiToResponse memetakan 1 record prestasi beserta anggota timnya.
func PrestasiToResponse(p model.Prestasi, tim []model.PrestasiTim, baseURL string) model.PrestasiResponse {
	anggota := make([]model.AnggotaTim, 0, len(tim))
	for _, t := range tim {
		anggota = append(anggota, model.AnggotaTim{Nama: t.Nama, NIM: t.NIM, IsKetua: t.IsKetua})
	}
	return model.PrestasiResponse{
		ID:            p.ID,
		Judul:         p.Judul,
		NamaLomba:     p.NamaLomba,
		Tingkat:       p.Tingkat,
		Peringkat:     p.Peringkat,
		Tanggal:       p.Tanggal,
		Tahun:         Tahun(p.Tanggal),
		SertifikatURL: AssetURL(baseURL, p.Sertifikat, 0),
		NamaMahasiswa: p.NamaMahasiswa,
		NIM:           p.NIM,
		Status:        p.Status,
		VerifiedAt:    p.VerifiedAt,
		Tim:           anggota,
	}
}

// PrestasiListToResponse memetakan slice prestasi tanpa detail tim
// (tim hanya di-load pada endpoint detail).
func PrestasiListToResponse(items []model.Prestasi, baseURL string) []model.PrestasiResponse {
	out := make([]model.PrestasiResponse, 0, len(items))
	for _, p := range items {
		out = append(out, PrestasiToResponse(p, nil, baseURL))
	}
	return out
}
