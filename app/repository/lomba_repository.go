package repository

import (
	"context"

	"lomba-portal-backend/app/cms"
	"lomba-portal-backend/app/model"
)

// LombaFilter menampung parameter query list lomba dari frontend/admin.
type LombaFilter struct {
	Page           int
	Limit          int
	Kategori       string
	Tingkat        string
	Status         string
	Search         string
	Slug           string
	Featured       *bool
	IncludeDeleted bool
}

// LombaRepository mendefinisikan kontrak akses data lomba + pendaftarannya
// di CMS.
type LombaRepository interface {
	List(ctx context.Context, f LombaFilter) ([]model.Lomba, int, error)
	FindByID(ctx context.Context, id int) (*model.Lomba, error)
	FindBySlug(ctx context.Context, slug string) (*model.Lomba, error)
	Create(ctx context.Context, fields map[string]interface{}) (*model.Lomba, error)
	Update(ctx context.Context, id int, fields map[string]interface{}) (*model.Lomba, error)
	SoftDelete(ctx context.Context, id int) error
	HardDelete(ctx context.Context, id int) error

	// ListByDeadlineRange mengambil lomba non-deleted yang deadline-nya di
	// rentang [start, end] (dipakai kalender + reminder).
	ListByDeadlineRange(ctx context.Context, start, end string) ([]model.Lomba, error)

	// HasPendaftaranAktif true jika NIM sudah punya pendaftaran non-rejected
	// di lomba tersebut.
	HasPendaftaranAktif(ctx context.Context, lombaID int, nim string) (bool, error)
	CreatePendaftaran(ctx context.Context, p *model.PendaftaranLomba) (*model.PendaftaranLomba, error)
	ListPendaftaran(ctx context.Context, lombaID int) ([]model.PendaftaranLomba, error)
	ListPendaftaranByStatus(ctx context.Context, lombaID int, status string) ([]model.PendaftaranLomba, error)

	Search(ctx context.Context, q string, limit int) ([]model.Lomba, error)
}

type lombaRepository struct {
	client *cms.Client
}

// NewLombaRepository membuat instance repository lomba di atas CMS client.
func NewLombaRepository(client *cms.Client) LombaRepository {
	return &lombaRepository{client: client}
}

const (
	collLomba            = "lomba"
	collPendaftaranLomba = "pendaftaran_lomba"
)

// lombaFields adalah proyeksi field yang dikirim ke CMS (menghindari SELECT *).
var lombaFields = []string{
	"id", "judul", "slug", "kategori", "tingkat", "penyelenggara", "deskripsi",
	"deadline", "tanggal_pelaksanaan", "biaya_pendaftaran", "link_pendaftaran",
	"pendaftaran_dibuka", "status", "featured", "is_deleted", "poster",
}

func (r *lombaRepository) List(ctx context.Context, f LombaFilter) ([]model.Lomba, int, error) {
	filters := []cms.Filter{}
	if !f.IncludeDeleted {
		filters = append(filters, cms.Neq("is_deleted", true))
	}
	if f.Kategori != "" {
		filters = append(filters, cms.Eq("kategori", f.Kategori))
	}
	if f.Tingkat != "" {
		filters = append(filters, cms.Eq("tingkat", f.Tingkat))
	}
	if f.Status != "" {
		filters = append(filters, cms.Eq("status", f.Status))
	}
	if f.Slug != "" {
		filters = append(filters, cms.Eq("slug", f.Slug))
	}
	if f.Featured != nil {
		filters = append(filters, cms.Eq("featured", *f.Featured))
	}
	if f.Search != "" {
		filters = append(filters, cms.Or(
			cms.IContains("judul", f.Search),
			cms.IContains("penyelenggara", f.Search),
			cms.IContains("deskripsi", f.Search),
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
		Collection: collLomba,
		Filter:     cms.And(filters...),
		Fields:     lombaFields,
		Sort:       "-featured,deadline",
		Limit:      limit,
		Offset:     (page - 1) * limit,
		WithMeta:   true,
	}

	var items []model.Lomba
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

func (r *lombaRepository) FindByID(ctx context.Context, id int) (*model.Lomba, error) {
	var l model.Lomba
	if err := r.client.GetByID(ctx, collLomba, id, lombaFields, &l); err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *lombaRepository) FindBySlug(ctx context.Context, slug string) (*model.Lomba, error) {
	q := cms.Query{
		Collection: collLomba,
		Filter:     cms.And(cms.Eq("slug", slug), cms.Neq("is_deleted", true)),
		Fields:     lombaFields,
	}
	var l model.Lomba
	if err := r.client.First(ctx, q, &l); err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *lombaRepository) Create(ctx context.Context, fields map[string]interface{}) (*model.Lomba, error) {
	var l model.Lomba
	if err := r.client.Create(ctx, collLomba, fields, &l); err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *lombaRepository) Update(ctx context.Context, id int, fields map[string]interface{}) (*model.Lomba, error) {
	var l model.Lomba
	if err := r.client.Update(ctx, collLomba, id, fields, &l); err != nil {
		return nil, err
	}
	return &l, nil
}

// SoftDelete hanya menyalakan flag is_deleted; record tetap ada di CMS.
func (r *lombaRepository) SoftDelete(ctx context.Context, id int) error {
	return r.client.Update(ctx, collLomba, id, map[string]interface{}{"is_deleted": true}, nil)
}

// HardDelete menghapus record secara permanen (hanya lewat ?permanent=true).
func (r *lombaRepository) HardDelete(ctx context.Context, id int) error {
	return r.client.Delete(ctx, collLomba, id)
}

func (r *lombaRepository) ListByDeadlineRange(ctx context.Context, start, end string) ([]model.Lomba, error) {
	q := cms.Query{
		Collection: collLomba,
		Filter: cms.And(
			cms.Neq("is_deleted", true),
			cms.In("status", []string{model.LombaStatusOpen, model.LombaStatusComingSoon}),
			cms.Gte("deadline", start),
			cms.Lte("deadline", end),
		),
		Fields: lombaFields,
		Sort:   "deadline",
		Limit:  200,
	}
	var items []model.Lomba
	_, err := r.client.List(ctx, q, &items)
	return items, err
}

func (r *lombaRepository) HasPendaftaranAktif(ctx context.Context, lombaID int, nim string) (bool, error) {
	count, err := r.client.Count(ctx, collPendaftaranLomba, cms.And(
		cms.Eq("lomba", lombaID),
		cms.Eq("nim", nim),
		cms.Neq("status", model.PendaftaranRejected),
	))
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *lombaRepository) CreatePendaftaran(ctx context.Context, p *model.PendaftaranLomba) (*model.PendaftaranLomba, error) {
	body := map[string]interface{}{
		"lomba":         p.Lomba,
		"nama":          p.Nama,
		"nim":           p.NIM,
		"email":         p.Email,
		"no_hp":         p.NoHP,
		"fakultas":      p.Fakultas,
		"program_studi": p.ProgramStudi,
		"status":        model.PendaftaranPending,
	}
	var created model.PendaftaranLomba
	if err := r.client.Create(ctx, collPendaftaranLomba, body, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *lombaRepository) ListPendaftaran(ctx context.Context, lombaID int) ([]model.PendaftaranLomba, error) {
	q := cms.Query{
		Collection: collPendaftaranLomba,
		Filter:     cms.Eq("lomba", lombaID),
		Sort:       "-date_created",
		Limit:      500,
	}
	var items []model.PendaftaranLomba
	_, err := r.client.List(ctx, q, &items)
	return items, err
}

func (r *lombaRepository) ListPendaftaranByStatus(ctx context.Context, lombaID int, status string) ([]model.PendaftaranLomba, error) {
	q := cms.Query{
		Collection: collPendaftaranLomba,
		Filter:     cms.And(cms.Eq("lomba", lombaID), cms.Eq("status", status)),
		Sort:       "nama",
		Limit:      500,
	}
	var items []model.PendaftaranLomba
	_, err := r.client.List(ctx, q, &items)
	return items, err
}

func (r *lombaRepository) Search(ctx context.Context, qs string, limit int) ([]model.Lomba, error) {
	q := cms.Query{
		Collection: collLomba,
		Filter: cms.And(
			cms.Neq("is_deleted", true),
			cms.Or(cms.IContains("judul", qs), cms.IContains("penyelenggara", qs)),
		),
		Fields: []string{"id", "judul", "kategori", "slug"},
		Limit:  limit,
	}
	var items []model.Lomba
	_, err := r.client.List(ctx, q, &items)
	return items, err
}
