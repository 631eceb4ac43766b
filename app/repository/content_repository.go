package repository

import (
	"context"

	"lomba-portal-backend/app/cms"
)

// ContentRepository adalah akses generik untuk collection konten statis
// (faq, tips, templates, downloads, panduan, resources, site_settings).
// Error cms.ErrCollectionMissing diteruskan apa adanya supaya service bisa
// menyajikan payload fallback.
type ContentRepository interface {
	ListInto(ctx context.Context, collection, sort string, out interface{}) error
	SingletonInto(ctx context.Context, collection string, out interface{}) error
}

type contentRepository struct {
	client *cms.Client
}

// NewContentRepository membuat instance repository konten.
func NewContentRepository(client *cms.Client) ContentRepository {
	return &contentRepository{client: client}
}

func (r *contentRepository) ListInto(ctx context.Context, collection, sort string, out interface{}) error {
	q := cms.Query{
		Collection: collection,
		Sort:       sort,
		Limit:      100,
	}
	_, err := r.client.List(ctx, q, out)
	return err
}

// SingletonInto mengambil collection singleton (site_settings): Directus
// mengembalikan objek, bukan array, pada GET /items/<singleton>.
func (r *contentRepository) SingletonInto(ctx context.Context, collection string, out interface{}) error {
	return r.client.GetSingleton(ctx, collection, out)
}
