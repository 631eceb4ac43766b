package transform

import "lomba-portal-backend/app/model"

// LombaToResponse memetakan 1 record lomba ke bentuk frontend.
func LombaToResponse(l model.Lomba, baseURL string) model.LombaResponse {
	return model.LombaResponse{
		ID:                 l.ID,
		Judul:              l.Judul,
		Slug:               l.Slug,
		Kategori:           l.Kategori,
		Tingkat:            l.Tingkat,
		Penyelenggara:      l.Penyelenggara,
		Deskripsi:          l.Deskripsi,
		Deadline:           l.Deadline,
		TanggalPelaksanaan: l.TanggalPelaksanaan,
		Biaya:              l.BiayaPendaftaran,
		IsFree:             l.BiayaPendaftaran == 0,
		LinkPendaftaran:    l.LinkPendaftaran,
		PendaftaranDibuka:  l.PendaftaranDibuka,
		Status:             l.Status,
		Featured:           l.Featured,
		PosterURL:          AssetURL(baseURL, l.Poster, 600),
	}
}

// LombaListToResponse memetakan slice record lomba.
func LombaListToResponse(items []model.Lomba, baseURL string) []model.LombaResponse {
	out := make([]model.LombaResponse, 0, len(items))
	for _, l := range items {
		out = append(out, LombaToResponse(l, baseURL))
	}
	return out
}

// PendaftaranLombaToResponse memetakan 1 pendaftar lomba (untuk admin).
func PendaftaranLombaToResponse(p model.PendaftaranLomba) model.PendaftaranLombaResponse {
	return model.PendaftaranLombaResponse{
		ID:            p.ID,
		LombaID:       p.Lomba,
		Nama:          p.Nama,
		NIM:           p.NIM,
		Email:         p.Email,
		NoHP:          p.NoHP,
		Fakultas:      p.Fakultas,
		ProgramStudi:  p.ProgramStudi,
		Status:        p.Status,
		TanggalDaftar: p.DateCreated,
	}
}

// PendaftaranLombaListToResponse memetakan slice pendaftar lomba.
func PendaftaranLombaListToResponse(items []model.PendaftaranLomba) []model.PendaftaranLombaResponse {
	out := make([]model.PendaftaranLombaResponse, 0, len(items))
	for _, p := range items {
		out = append(out, PendaftaranLombaToResponse(p))
	}
	return out
}
