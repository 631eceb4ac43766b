package repository

import (
	"context"

	"lomba-portal-backend/app/cms"
	"lomba-portal-backend/app/model"
)

// CalendarRepository mengelola entry kalender personal dan reminder ad-hoc.
// Event turunan (deadline lomba, rentang expo) TIDAK disimpan di collection
// ini; mereka dihitung saat agregasi oleh CalendarService.
type CalendarRepository interface {
	// ListRange mengambil entry milik 1 NIM di rentang tanggal [start, end].
	ListRange(ctx context.Context, nim, start, end string) ([]model.CalendarEntry, error)
	Create(ctx context.Context, e *model.CalendarEntry) (*model.CalendarEntry, error)
}

type calendarRepository struct {
	client *cms.Client
}

// NewCalendarRepository membuat instance repository kalender.
func NewCalendarRepository(client *cms.Client) CalendarRepository {
	return &calendarRepository{client: client}
}

const collCalendar = "calendar_entries"

var calendarFields = []string{
	"id", "judul", "tipe", "tanggal", "tanggal_selesai", "waktu", "lokasi",
	"deskripsi", "nim", "pendaftaran", "lomba",
}

func (r *calendarRepository) ListRange(ctx context.Context, nim, start, end string) ([]model.CalendarEntry, error) {
	q := cms.Query{
		Collection: collCalendar,
		Filter: cms.And(
			cms.Eq("nim", nim),
			cms.Gte("tanggal", start),
			cms.Lte("tanggal", end),
		),
		Fields: calendarFields,
		Sort:   "tanggal",
		Limit:  200,
	}
	var items []model.CalendarEntry
	_, err := r.client.List(ctx, q, &items)
	return items, err
}

func (r *calendarRepository) Create(ctx context.Context, e *model.CalendarEntry) (*model.CalendarEntry, error) {
	body := map[string]interface{}{
		"judul":     e.Judul,
		"tipe":      e.Tipe,
		"tanggal":   e.Tanggal,
		"deskripsi": e.Deskripsi,
	}
	if e.TanggalSelesai != "" {
		body["tanggal_selesai"] = e.TanggalSelesai
	}
	if e.Waktu != "" {
		body["waktu"] = e.Waktu
	}
	if e.Lokasi != "" {
		body["lokasi"] = e.Lokasi
	}
	if e.NIM != "" {
		body["nim"] = e.NIM
	}
	if e.Pendaftaran > 0 {
		body["pendaftaran"] = e.Pendaftaran
	}
	if e.Lomba > 0 {
		body["lomba"] = e.Lomba
	}
	var created model.CalendarEntry
	if err := r.client.Create(ctx, collCalendar, body, &created); err != nil {
		return nil, err
	}
	return &created, nil
}
