package transform

import "lomba-portal-backend/app/model"

// ExpoToResponse memetakan 1 record expo ke bentuk frontend, termasuk rentang
// tanggal terformat (satu tanggal kalau selesai == mulai).
func ExpoToResponse(e model.Expo, baseURL string) model.ExpoResponse {
	return model.ExpoResponse{
		ID:                  e.ID,
		Judul:               e.Judul,
		Tema:                e.Tema,
		TanggalMulai:        e.TanggalMulai,
		TanggalSelesai:      e.TanggalSelesai,
		TanggalTampil:       FormatTanggalRange(e.TanggalMulai, e.TanggalSelesai),
		Lokasi:              e.Lokasi,
		Biaya:               e.BiayaPartisipasi,
		IsFree:              e.BiayaPartisipasi == 0,
		PendaftaranDibuka:   e.PendaftaranDibuka,
		DeadlinePendaftaran: e.DeadlinePendaftaran,
		MaxParticipants:     e.MaxParticipants,
		Status:              e.Status,
		PosterURL:           AssetURL(baseURL, e.Poster, 600),
	}
}

// ExpoListToResponse memetakan slice record expo.
func ExpoListToResponse(items []model.Expo, baseURL string) []model.ExpoResponse {
	out := make([]model.ExpoResponse, 0, len(items))
	for _, e := range items {
		out = append(out, ExpoToResponse(e, baseURL))
	}
	return out
}

// PendaftaranExpoToResponse memetakan 1 pendaftar expo; slot anggota yang
// kosong tidak ikut dimunculkan di array tim.
func PendaftaranExpoToResponse(p model.PendaftaranExpo) model.PendaftaranExpoResponse {
	tim := []model.AnggotaTim{{Nama: p.NamaKetua, NIM: p.NIMKetua, IsKetua: true}}
	anggota := [][2]string{
		{p.Anggota1Nama, p.Anggota1NIM},
		{p.Anggota2Nama, p.Anggota2NIM},
		{p.Anggota3Nama, p.Anggota3NIM},
	}
	for _, a := range anggota {
		if a[0] != "" || a[1] != "" {
			tim = append(tim, model.AnggotaTim{Nama: a[0], NIM: a[1]})
		}
	}
	return model.PendaftaranExpoResponse{
		ID:              p.ID,
		ExpoID:          p.Expo,
		Email:           p.Email,
		NoHP:            p.NoHP,
		Tim:             tim,
		NamaProyek:      p.NamaProyek,
		DeskripsiProyek: p.DeskripsiProyek,
		LinkDemo:        p.LinkDemo,
		Status:          p.Status,
		TanggalDaftar:   p.DateCreated,
	}
}

// PendaftaranExpoListToResponse memetakan slice pendaftar expo.
func PendaftaranExpoListToResponse(items []model.PendaftaranExpo) []model.PendaftaranExpoResponse {
	out := make([]model.PendaftaranExpoResponse, 0, len(items))
	for _, p := range items {
		out = append(out, PendaftaranExpoToResponse(p))
	}
	return out
}
