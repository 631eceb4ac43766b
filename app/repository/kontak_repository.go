package repository

import (
	"context"

	"lomba-portal-backend/app/cms"
	"lomba-portal-backend/app/model"
)

// KontakRepository mendefinisikan kontrak akses data pesan kontak.
type KontakRepository interface {
	List(ctx context.Context, status string, includeDeleted bool) ([]model.PesanKontak, error)
	FindByID(ctx context.Context, id int) (*model.PesanKontak, error)
	Create(ctx context.Context, k *model.PesanKontak) (*model.PesanKontak, error)
	UpdateStatus(ctx context.Context, id int, status string) error
	SoftDelete(ctx context.Context, id int) error
	HardDelete(ctx context.Context, id int) error
}

type kontakRepository struct {
	client *cms.Client
}

// NewKontakRepository membuat instance repository pesan kontak.
func NewKontakRepository(client *cms.Client) KontakRepository {
	return &kontakRepository{client: client}
}

const collKontak = "pesan_kontak"

var kontakFields = []string{"id", "tiket", "nama", "email", "subjek", "pesan", "status", "is_deleted", "date_created"}

func (r *kontakRepository) List(ctx context.Context, status string, includeDeleted bool) ([]model.PesanKontak, error) {
	filters := []cms.Filter{}
	if !includeDeleted {
		filters = append(filters, cms.Neq("is_deleted", true))
	}
	if status != "" {
		filters = append(filters, cms.Eq("status", status))
	}
	q := cms.Query{
		Collection: collKontak,
		Filter:     cms.And(filters...),
		Fields:     kontakFields,
		Sort:       "-date_created",
		Limit:      200,
	}
	var items []model.PesanKontak
	_, err := r.client.List(ctx, q, &items)
	return items, err
}

func (r *kontakRepository) FindByID(ctx context.Context, id int) (*model.PesanKontak, error) {
	var k model.PesanKontak
	if err := r.client.GetByID(ctx, collKontak, id, kontakFields, &k); err != nil {
		return nil, err
	}
	return &k, nil
}

func (r *kontakRepository) Create(ctx context.Context, k *model.PesanKontak) (*model.PesanKontak, error) {
	body := map[string]interface{}{
		"tiket":  k.Tiket,
		"nama":   k.Nama,
		"email":  k.Email,
		"subjek": k.Subjek,
		"pesan":  k.Pesan,
		"status": "unread",
	}
	var created model.PesanKontak
	if err := r.client.Create(ctx, collKontak, body, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *kontakRepository) UpdateStatus(ctx context.Context, id int, status string) error {
	return r.client.Update(ctx, collKontak, id, map[string]interface{}{"status": status}, nil)
}

func (r *kontakRepository) SoftDelete(ctx context.Context, id int) error {
	return r.client.Update(ctx, collKontak, id, map[string]interface{}{"is_deleted": true}, nil)
}

func (r *kontakRepository) HardDelete(ctx context.Context, id int) error {
	return r.client.Delete(ctx, collKontak, id)
}
