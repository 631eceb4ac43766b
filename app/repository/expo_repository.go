package repository

import (
	"context"

	"lomba-portal-backend/app/cms"
	"lomba-portal-backend/app/model"
)

// ExpoFilter menampung parameter query list expo.
type ExpoFilter struct {
	Page           int
	Limit          int
	Status         string
	Search         string
	IncludeDeleted bool
}

// ExpoRepository mendefinisikan kontrak akses data expo + pendaftaran timnya.
type ExpoRepository interface {
	List(ctx context.Context, f ExpoFilter) ([]model.Expo, int, error)
	FindByID(ctx context.Context, id int) (*model.Expo, error)
	Create(ctx context.Context, fields map[string]interface{}) (*model.Expo, error)
	Update(ctx context.Context, id int, fields map[string]interface{}) (*model.Expo, error)
	SoftDelete(ctx context.Context, id int) error
	HardDelete(ctx context.Context, id int) error

	// ListByStartRange mengambil expo upcoming/ongoing yang tanggal mulainya
	// di rentang [start, end] (sumber kalender).
	ListByStartRange(ctx context.Context, start, end string) ([]model.Expo, error)

	// CountPendaftaranAktif menghitung pendaftaran non-rejected sebuah expo
	// (dasar admission control 90% kapasitas).
	CountPendaftaranAktif(ctx context.Context, expoID int) (int, error)

	// HasPendaftaranAktifNIM true jika NIM muncul sebagai ketua ATAU anggota
	// di pendaftaran non-rejected manapun untuk expo yang sama.
	HasPendaftaranAktifNIM(ctx context.Context, expoID int, nim string) (bool, error)

	CreatePendaftaran(ctx context.Context, p *model.PendaftaranExpo) (*model.PendaftaranExpo, error)
	ListPendaftaran(ctx context.Context, expoID int) ([]model.PendaftaranExpo, error)

	Search(ctx context.Context, q string, limit int) ([]model.Expo, error)
}

type expoRepository struct {
	client *cms.Client
}

// NewExpoRepository membuat instance repository expo.
func NewExpoRepository(client *cms.Client) ExpoRepository {
	return &expoRepository{client: client}
}

const (
	collExpo            = "expo"
	collPendaftaranExpo = "pendaftaran_expo"
)

var expoFields = []string{
	"id", "judul", "tema", "tanggal_mulai", "tanggal_selesai", "lokasi",
	"biaya_partisipasi", "pendaftaran_dibuka", "deadline_pendaftaran",
	"max_participants", "status", "is_deleted", "poster",
}

func (r *expoRepository) List(ctx context.Context, f ExpoFilter) ([]model.Expo, int, error) {
	filters := []cms.Filter{}
	if !f.IncludeDeleted {
		filters = append(filters, cms.Neq("is_deleted", true))
	}
	if f.Status != "" {
		filters = append(filters, cms.Eq("status", f.Status))
	}
	if f.Search != "" {
		filters = append(filters, cms.Or(
			cms.IContains("judul", f.Search),
			cms.IContains("tema", f.Search),
		))
	}

	page := f.Page
	if page < 1 {
		page = 1
	}
	limit := f.Limit
	if limit < 1 {
		limit = 10
	}

	q := cms.Query{
		Collection: collExpo,
		Filter:     cms.And(filters...),
		Fields:     expoFields,
		Sort:       "tanggal_mulai",
		Limit:      limit,
		Offset:     (page - 1) * limit,
		WithMeta:   true,
	}

	var items []model.Expo
	meta, err := r.client.List(ctx, q, &items)
	if err != nil {
		return nil, 0, err
	}
	total := len(items)
	if meta != nil {
		total = meta.FilterCount
	}
	return items, total, nil
}

func (r *expoRepository) FindByID(ctx context.Context, id int) (*model.Expo, error) {
	var e model.Expo
	if err := r.client.GetByID(ctx, collExpo, id, expoFields, &e); err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *expoRepository) Create(ctx context.Context, fields map[string]interface{}) (*model.Expo, error) {
	var e model.Expo
	if err := r.client.Create(ctx, collExpo, fields, &e); err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *expoRepository) Update(ctx context.Context, id int, fields map[string]interface{}) (*model.Expo, error) {
	var e model.Expo
	if err := r.client.Update(ctx, collExpo, id, fields, &e); err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *expoRepository) SoftDelete(ctx context.Context, id int) error {
	return r.client.Update(ctx, collExpo, id, map[string]interface{}{"is_deleted": true}, nil)
}

func (r *expoRepository) HardDelete(ctx context.Context, id int) error {
	return r.client.Delete(ctx, collExpo, id)
}

func (r *expoRepository) ListByStartRange(ctx context.Context, start, end string) ([]model.Expo, error) {
	q := cms.Query{
		Collection: collExpo,
		Filter: cms.And(
			cms.Neq("is_deleted", true),
			cms.In("status", []string{model.ExpoStatusUpcoming, model.ExpoStatusOngoing}),
			cms.Gte("tanggal_mulai", start),
			cms.Lte("tanggal_mulai", end),
		),
		Fields: expoFields,
		Sort:   "tanggal_mulai",
		Limit:  200,
	}
	var items []model.Expo
	_, err := r.client.List(ctx, q, &items)
	return items, err
}

func (r *expoRepository) CountPendaftaranAktif(ctx context.Context, expoID int) (int, error) {
	return r.client.Count(ctx, collPendaftaranExpo, cms.And(
		cms.Eq("expo", expoID),
		cms.Neq("status", model.PendaftaranRejected),
	))
}

func (r *expoRepository) HasPendaftaranAktifNIM(ctx context.Context, expoID int, nim string) (bool, error) {
	count, err := r.client.Count(ctx, collPendaftaranExpo, cms.And(
		cms.Eq("expo", expoID),
		cms.Neq("status", model.PendaftaranRejected),
		cms.Or(
			cms.Eq("nim_ketua", nim),
			cms.Eq("anggota1_nim", nim),
			cms.Eq("anggota2_nim", nim),
			cms.Eq("anggota3_nim", nim),
		),
	))
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *expoRepository) CreatePendaftaran(ctx context.Context, p *model.PendaftaranExpo) (*model.PendaftaranExpo, error) {
	body := map[string]interface{}{
		"expo":             p.Expo,
		"nama_ketua":       p.NamaKetua,
		"nim_ketua":        p.NIMKetua,
		"email":            p.Email,
		"no_hp":            p.NoHP,
		"anggota1_nama":    p.Anggota1Nama,
		"anggota1_nim":     p.Anggota1NIM,
		"anggota2_nama":    p.Anggota2Nama,
		"anggota2_nim":     p.Anggota2NIM,
		"anggota3_nama":    p.Anggota3Nama,
		"anggota3_nim":     p.Anggota3NIM,
		"nama_proyek":      p.NamaProyek,
		"deskripsi_proyek": p.DeskripsiProyek,
		"link_demo":        p.LinkDemo,
		"status":           model.PendaftaranPending,
	}
	var created model.PendaftaranExpo
	if err := r.client.Create(ctx, collPendaftaranExpo, body, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *expoRepository) ListPendaftaran(ctx context.Context, expoID int) ([]model.PendaftaranExpo, error) {
	q := cms.Query{
		Collection: collPendaftaranExpo,
		Filter:     cms.Eq("expo", expoID),
		Sort:       "-date_created",
		Limit:      500,
	}
	var items []model.PendaftaranExpo
	_, err := r.client.List(ctx, q, &items)
	return items, err
}

func (r *expoRepository) Search(ctx context.Context, qs string, limit int) ([]model.Expo, error) {
	q := cms.Query{
		Collection: collExpo,
		Filter: cms.And(
			cms.Neq("is_deleted", true),
			cms.Or(cms.IContains("judul", qs), cms.IContains("tema", qs)),
		),
		Fields: []string{"id", "judul", "tema"},
		Limit:  limit,
	}
	var items []model.Expo
	_, err := r.client.List(ctx, q, &items)
	return items, err
}
