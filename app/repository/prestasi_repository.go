package repository

import (
	"context"
	"strconv"

	"lomba-portal-backend/app/cms"
	"lomba-portal-backend/app/model"
)

// PrestasiFilter menampung parameter query list prestasi.
type PrestasiFilter struct {
	Page           int
	Limit          int
	Status         string
	Tingkat        string
	Tahun          int
	NIM            string
	Search         string
	IncludeDeleted bool
}

// PrestasiRepository mendefinisikan kontrak akses data prestasi + anggota tim.
type PrestasiRepository interface {
	List(ctx context.Context, f PrestasiFilter) ([]model.Prestasi, int, error)
	FindByID(ctx context.Context, id int) (*model.Prestasi, error)
	Create(ctx context.Context, fields map[string]interface{}) (*model.Prestasi, error)
	Update(ctx context.Context, id int, fields map[string]interface{}) (*model.Prestasi, error)
	SoftDelete(ctx context.Context, id int) error
	HardDelete(ctx context.Context, id int) error

	ListTim(ctx context.Context, prestasiID int) ([]model.PrestasiTim, error)
	CreateTim(ctx context.Context, prestasiID int, anggota []model.AnggotaTim) error

	Search(ctx context.Context, q string, limit int) ([]model.Prestasi, error)
}

type prestasiRepository struct {
	client *cms.Client
}

// NewPrestasiRepository membuat instance repository prestasi.
func NewPrestasiRepository(client *cms.Client) PrestasiRepository {
	return &prestasiRepository{client: client}
}

const (
	collPrestasi    = "prestasi"
	collPrestasiTim = "prestasi_tim"
)

var prestasiFields = []string{
	"id", "judul", "nama_lomba", "tingkat", "peringkat", "tanggal",
	"sertifikat", "nama_mahasiswa", "nim", "email", "status", "verified_at",
	"is_deleted",
}

func (r *prestasiRepository) List(ctx context.Context, f PrestasiFilter) ([]model.Prestasi, int, error) {
	filters := []cms.Filter{}
	if !f.IncludeDeleted {
		filters = append(filters, cms.Neq("is_deleted", true))
	}
	if f.Status != "" {
		filters = append(filters, cms.Eq("status", f.Status))
	}
	if f.Tingkat != "" {
		filters = append(filters, cms.Eq("tingkat", f.Tingkat))
	}
	if f.NIM != "" {
		filters = append(filters, cms.Eq("nim", f.NIM))
	}
	if f.Tahun > 0 {
		// Tahun diturunkan dari kolom tanggal (YYYY-MM-DD): pakai rentang.
		tahun := strconv.Itoa(f.Tahun)
		filters = append(filters,
			cms.Gte("tanggal", tahun+"-01-01"),
			cms.Lte("tanggal", tahun+"-12-31"))
	}
	if f.Search != "" {
		filters = append(filters, cms.Or(
			cms.IContains("judul", f.Search),
			cms.IContains("nama_lomba", f.Search),
			cms.IContains("nama_mahasiswa", f.Search),
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
		Collection: collPrestasi,
		Filter:     cms.And(filters...),
		Fields:     prestasiFields,
		Sort:       "-tanggal",
		Limit:      limit,
		Offset:     (page - 1) * limit,
		WithMeta:   true,
	}

	var items []model.Prestasi
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

func (r *prestasiRepository) FindByID(ctx context.Context, id int) (*model.Prestasi, error) {
	var p model.Prestasi
	if err := r.client.GetByID(ctx, collPrestasi, id, prestasiFields, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *prestasiRepository) Create(ctx context.Context, fields map[string]interface{}) (*model.Prestasi, error) {
	var p model.Prestasi
	if err := r.client.Create(ctx, collPrestasi, fields, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *prestasiRepository) Update(ctx context.Context, id int, fields map[string]interface{}) (*model.Prestasi, error) {
	var p model.Prestasi
	if err := r.client.Update(ctx, collPrestasi, id, fields, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *prestasiRepository) SoftDelete(ctx context.Context, id int) error {
	return r.client.Update(ctx, collPrestasi, id, map[string]interface{}{"is_deleted": true}, nil)
}

func (r *prestasiRepository) HardDelete(ctx context.Context, id int) error {
	return r.client.Delete(ctx, collPrestasi, id)
}

func (r *prestasiRepository) ListTim(ctx context.Context, prestasiID int) ([]model.PrestasiTim, error) {
	q := cms.Query{
		Collection: collPrestasiTim,
		Filter:     cms.Eq("prestasi", prestasiID),
		Sort:       "-is_ketua",
		Limit:      20,
	}
	var items []model.PrestasiTim
	_, err := r.client.List(ctx, q, &items)
	return items, err
}

func (r *prestasiRepository) CreateTim(ctx context.Context, prestasiID int, anggota []model.AnggotaTim) error {
	for _, a := range anggota {
		body := map[string]interface{}{
			"prestasi": prestasiID,
			"nama":     a.Nama,
			"nim":      a.NIM,
			"is_ketua": a.IsKetua,
		}
		if err := r.client.Create(ctx, collPrestasiTim, body, nil); err != nil {
			return err
		}
	}
	return nil
}

func (r *prestasiRepository) Search(ctx context.Context, qs string, limit int) ([]model.Prestasi, error) {
	q := cms.Query{
		Collection: collPrestasi,
		Filter: cms.And(
			cms.Neq("is_deleted", true),
			cms.Eq("status", model.PrestasiVerified),
			cms.Or(cms.IContains("judul", qs), cms.IContains("nama_lomba", qs)),
		),
		Fields: []string{"id", "judul", "nama_lomba"},
		Limit:  limit,
	}
	var items []model.Prestasi
	_, err := r.client.List(ctx, q, &items)
	return items, err
}
