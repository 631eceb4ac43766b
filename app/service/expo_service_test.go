package service

import (
	"context"
	"net/http"
	"testing"

	"lomba-portal-backend/app/cms"
	"lomba-portal-backend/app/model"
	"lomba-portal-backend/app/repository"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeExpoRepo adalah implementasi in-memory ExpoRepository.
type fakeExpoRepo struct {
	expo        map[int]model.Expo
	count       int             // hasil CountPendaftaranAktif
	nimAktif    map[string]bool // NIM yang sudah terdaftar
	pendaftaran []model.PendaftaranExpo
}

func newFakeExpoRepo() *fakeExpoRepo {
	return &fakeExpoRepo{expo: map[int]model.Expo{}, nimAktif: map[string]bool{}}
}

func (f *fakeExpoRepo) List(_ context.Context, _ repository.ExpoFilter) ([]model.Expo, int, error) {
	out := []model.Expo{}
	for _, e := range f.expo {
		out = append(out, e)
	}
	return out, len(out), nil
}

func (f *fakeExpoRepo) FindByID(_ context.Context, id int) (*model.Expo, error) {
	e, ok := f.expo[id]
	if !ok {
		return nil, cms.ErrNotFound
	}
	return &e, nil
}

func (f *fakeExpoRepo) Create(_ context.Context, _ map[string]interface{}) (*model.Expo, error) {
	return &model.Expo{ID: 99}, nil
}

func (f *fakeExpoRepo) Update(_ context.Context, id int, _ map[string]interface{}) (*model.Expo, error) {
	e, ok := f.expo[id]
	if !ok {
		return nil, cms.ErrNotFound
	}
	return &e, nil
}

func (f *fakeExpoRepo) SoftDelete(_ context.Context, _ int) error { return nil }
func (f *fakeExpoRepo) HardDelete(_ context.Context, _ int) error { return nil }

func (f *fakeExpoRepo) ListByStartRange(_ context.Context, _, _ string) ([]model.Expo, error) {
	out := []model.Expo{}
	for _, e := range f.expo {
		out = append(out, e)
	}
	return out, nil
}

func (f *fakeExpoRepo) CountPendaftaranAktif(_ context.Context, _ int) (int, error) {
	return f.count, nil
}

func (f *fakeExpoRepo) HasPendaftaranAktifNIM(_ context.Context, _ int, nim string) (bool, error) {
	return f.nimAktif[nim], nil
}

func (f *fakeExpoRepo) CreatePendaftaran(_ context.Context, p *model.PendaftaranExpo) (*model.PendaftaranExpo, error) {
	created := *p
	created.ID = len(f.pendaftaran) + 1
	created.Status = model.PendaftaranPending
	f.pendaftaran = append(f.pendaftaran, created)
	return &created, nil
}

func (f *fakeExpoRepo) ListPendaftaran(_ context.Context, _ int) ([]model.PendaftaranExpo, error) {
	return f.pendaftaran, nil
}

func (f *fakeExpoRepo) Search(_ context.Context, _ string, _ int) ([]model.Expo, error) {
	out := []model.Expo{}
	for _, e := range f.expo {
		out = append(out, e)
	}
	return out, nil
}

func setupRegisterRouter(repo *fakeExpoRepo) *gin.Engine {
	svc := NewExpoService(testConfig(), repo)
	r := gin.New()
	r.POST("/api/expo/:id/register", svc.Register)
	return r
}

func formRegisterValid() map[string]interface{} {
	return map[string]interface{}{
		"namaKetua":  "Budi Santoso",
		"nimKetua":   "2110512001",
		"email":      "budi@student.ac.id",
		"noHp":       "081234567890",
		"namaProyek": "Smart Garden",
		"anggota": []map[string]string{
			{"nama": "Sari", "nim": "2110512002"},
		},
	}
}

func expoTerbuka() model.Expo {
	return model.Expo{
		ID: 1, Judul: "Expo Karya", PendaftaranDibuka: true,
		DeadlinePendaftaran: besok(), MaxParticipants: 10,
	}
}

func TestRegisterExpoBerhasil(t *testing.T) {
	repo := newFakeExpoRepo()
	repo.expo[1] = expoTerbuka()
	r := setupRegisterRouter(repo)

	w := postJSON(t, r, "/api/expo/1/register", formRegisterValid())

	assert.Equal(t, http.StatusCreated, w.Code)
	require.Len(t, repo.pendaftaran, 1)
	p := repo.pendaftaran[0]
	assert.Equal(t, model.PendaftaranPending, p.Status)
	assert.Equal(t, "2110512001", p.NIMKetua)
	assert.Equal(t, "Sari", p.Anggota1Nama)
}

func TestRegisterExpoKapasitas(t *testing.T) {
	// Kuota 10: pendaftar ke-9 membuat count*10 >= cap*9, jadi 8 pendaftaran
	// aktif masih diterima dan 9 ditolak.
	tests := []struct {
		name     string
		count    int
		wantCode int
	}{
		{"masih di bawah buffer", 8, http.StatusCreated},
		{"menyentuh buffer 90%", 9, http.StatusBadRequest},
		{"penuh", 10, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeExpoRepo()
			repo.expo[1] = expoTerbuka()
			repo.count = tt.count
			r := setupRegisterRouter(repo)

			w := postJSON(t, r, "/api/expo/1/register", formRegisterValid())
			assert.Equal(t, tt.wantCode, w.Code)
			if tt.wantCode == http.StatusBadRequest {
				assert.Equal(t, "capacity_reached", decodeResponse(t, w).Errors)
			}
		})
	}
}

func TestRegisterExpoTanpaBatasKuota(t *testing.T) {
	repo := newFakeExpoRepo()
	e := expoTerbuka()
	e.MaxParticipants = 0 // 0 = tanpa batas
	repo.expo[1] = e
	repo.count = 1000
	r := setupRegisterRouter(repo)

	w := postJSON(t, r, "/api/expo/1/register", formRegisterValid())
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestRegisterExpoNIMAnggotaSudahTerdaftar(t *testing.T) {
	repo := newFakeExpoRepo()
	repo.expo[1] = expoTerbuka()
	repo.nimAktif["2110512002"] = true // anggota, bukan ketua
	r := setupRegisterRouter(repo)

	w := postJSON(t, r, "/api/expo/1/register", formRegisterValid())

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "duplicate_registration", decodeResponse(t, w).Errors)
	assert.Empty(t, repo.pendaftaran)
}

func TestRegisterExpoNIMGandaDalamForm(t *testing.T) {
	repo := newFakeExpoRepo()
	repo.expo[1] = expoTerbuka()
	r := setupRegisterRouter(repo)

	form := formRegisterValid()
	form["anggota"] = []map[string]string{
		{"nama": "Sari", "nim": "2110512001"}, // sama dengan NIM ketua
	}
	w := postJSON(t, r, "/api/expo/1/register", form)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	errs, ok := decodeResponse(t, w).Errors.(map[string]interface{})
	require.True(t, ok)
	assert.Contains(t, errs, "anggota1.nim")
}

func TestRegisterExpoAnggotaLebihDariTiga(t *testing.T) {
	repo := newFakeExpoRepo()
	repo.expo[1] = expoTerbuka()
	r := setupRegisterRouter(repo)

	form := formRegisterValid()
	form["anggota"] = []map[string]string{
		{"nama": "A", "nim": "1"}, {"nama": "B", "nim": "2"},
		{"nama": "C", "nim": "3"}, {"nama": "D", "nim": "4"},
	}
	w := postJSON(t, r, "/api/expo/1/register", form)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	errs, ok := decodeResponse(t, w).Errors.(map[string]interface{})
	require.True(t, ok)
	assert.Contains(t, errs, "anggota")
}

func TestRegisterExpoDitutup(t *testing.T) {
	repo := newFakeExpoRepo()
	e := expoTerbuka()
	e.PendaftaranDibuka = false
	repo.expo[1] = e
	r := setupRegisterRouter(repo)

	w := postJSON(t, r, "/api/expo/1/register", formRegisterValid())

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "registration_closed", decodeResponse(t, w).Errors)
}
