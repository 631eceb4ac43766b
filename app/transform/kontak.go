package transform

import "lomba-portal-backend/app/model"

// KontakToResponse memetakan 1 pesan kontak untuk admin.
func KontakToResponse(k model.PesanKontak) model.KontakResponse {
	return model.KontakResponse{
		ID:      k.ID,
		Tiket:   k.Tiket,
		Nama:    k.Nama,
		Email:   k.Email,
		Subjek:  k.Subjek,
		Pesan:   k.Pesan,
		Status:  k.Status,
		Tanggal: k.DateCreated,
	}
}

// KontakListToResponse memetakan slice pesan kontak.
func KontakListToResponse(items []model.PesanKontak) []model.KontakResponse {
	out := make([]model.KontakResponse, 0, len(items))
	for _, k := range items {
		out = append(out, KontakToResponse(k))
	}
	return out
}
