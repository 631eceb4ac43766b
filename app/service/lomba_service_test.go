package service

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"lomba-portal-backend/app/cms"
	"lomba-portal-backend/app/model"
	"lomba-portal-backend/app/repository"
	"lomba-portal-backend/config"
	"lomba-portal-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testConfig() *config.Config {
	return &config.Config{
		DirectusURL: "http://cms.local",
		BaseURL:     "http://portal.local",
		HTTPTimeout: 2 * time.Second,
	}
}

// fakeLombaRepo adalah implementasi in-memory LombaRepository untuk test
// handler; hanya method yang dipakai skenario yang diisi perilaku.
type fakeLombaRepo struct {
	lomba       map[int]model.Lomba
	terdaftar   map[string]bool // key: nim
	findErr     error
	pendaftaran []model.PendaftaranLomba
	mu          sync.Mutex
}

func newFakeLombaRepo() *fakeLombaRepo {
	return &fakeLombaRepo{lomba: map[int]model.Lomba{}, terdaftar: map[string]bool{}}
}

func (f *fakeLombaRepo) List(_ context.Context, _ repository.LombaFilter) ([]model.Lomba, int, error) {
	out := []model.Lomba{}
	for _, l := range f.lomba {
		out = append(out, l)
	}
	return out, len(out), nil
}

func (f *fakeLombaRepo) FindByID(_ context.Context, id int) (*model.Lomba, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	l, ok := f.lomba[id]
	if !ok {
		return nil, cms.ErrNotFound
	}
	return &l, nil
}

func (f *fakeLombaRepo) FindBySlug(_ context.Context, slug string) (*model.Lomba, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	for _, l := range f.lomba {
		if l.Slug == slug {
			return &l, nil
		}
	}
	return nil, cms.ErrNotFound
}

func (f *fakeLombaRepo) Create(_ context.Context, fields map[string]interface{}) (*model.Lomba, error) {
	l := model.Lomba{ID: 99}
	if v, ok := fields["judul"].(string); ok {
		l.Judul = v
	}
	return &l, nil
}

func (f *fakeLombaRepo) Update(_ context.Context, id int, _ map[string]interface{}) (*model.Lomba, error) {
	l, ok := f.lomba[id]
	if !ok {
		return nil, cms.ErrNotFound
	}
	return &l, nil
}

func (f *fakeLombaRepo) SoftDelete(_ context.Context, _ int) error { return nil }
func (f *fakeLombaRepo) HardDelete(_ context.Context, _ int) error { return nil }

func (f *fakeLombaRepo) ListByDeadlineRange(_ context.Context, _, _ string) ([]model.Lomba, error) {
	out := []model.Lomba{}
	for _, l := range f.lomba {
		out = append(out, l)
	}
	return out, nil
}

func (f *fakeLombaRepo) HasPendaftaranAktif(_ context.Context, _ int, nim string) (bool, error) {
	return f.terdaftar[nim], nil
}

func (f *fakeLombaRepo) CreatePendaftaran(_ context.Context, p *model.PendaftaranLomba) (*model.PendaftaranLomba, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	created := *p
	created.ID = len(f.pendaftaran) + 1
	created.Status = model.PendaftaranPending
	f.pendaftaran = append(f.pendaftaran, created)
	return &created, nil
}

func (f *fakeLombaRepo) ListPendaftaran(_ context.Context, _ int) ([]model.PendaftaranLomba, error) {
	return f.pendaftaran, nil
}

func (f *fakeLombaRepo) ListPendaftaranByStatus(_ context.Context, _ int, status string) ([]model.PendaftaranLomba, error) {
	out := []model.PendaftaranLomba{}
	for _, p := range f.pendaftaran {
		if p.Status == status {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeLombaRepo) Search(_ context.Context, _ string, _ int) ([]model.Lomba, error) {
	out := []model.Lomba{}
	for _, l := range f.lomba {
		out = append(out, l)
	}
	return out, nil
}

// fakeCalendarRepo merekam entry kalender yang dibuat service.
type fakeCalendarRepo struct {
	mu      sync.Mutex
	entries []model.CalendarEntry
	listErr error
}

func (f *fakeCalendarRepo) ListRange(_ context.Context, _, _, _ string) ([]model.CalendarEntry, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.entries, nil
}

func (f *fakeCalendarRepo) Create(_ context.Context, e *model.CalendarEntry) (*model.CalendarEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	created := *e
	created.ID = len(f.entries) + 1
	f.entries = append(f.entries, created)
	return &created, nil
}

func postJSON(t *testing.T, r *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeResponse(t *testing.T, w *httptest.ResponseRecorder) utils.APIResponse {
	t.Helper()
	var res utils.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	return res
}

func besok() string {
	return time.Now().AddDate(0, 0, 1).Format("2006-01-02")
}

func kemarin() string {
	return time.Now().AddDate(0, 0, -1).Format("2006-01-02")
}

func setupDaftarRouter(repo *fakeLombaRepo, cal *fakeCalendarRepo) *gin.Engine {
	svc := NewLombaService(testConfig(), repo, cal)
	r := gin.New()
	r.POST("/api/lomba/:id/daftar", svc.Daftar)
	return r
}

func setupDetailRouter(repo *fakeLombaRepo) *gin.Engine {
	svc := NewLombaService(testConfig(), repo, &fakeCalendarRepo{})
	r := gin.New()
	r.GET("/api/lomba/:id", svc.Detail)
	return r
}

func TestDetailLombaViaIDDanSlug(t *testing.T) {
	repo := newFakeLombaRepo()
	repo.lomba[7] = model.Lomba{ID: 7, Judul: "Gemastik", Slug: "gemastik-2026"}
	r := setupDetailRouter(repo)

	for _, path := range []string{"/api/lomba/7", "/api/lomba/gemastik-2026"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code, path)
		data := decodeResponse(t, w).Data.(map[string]interface{})
		assert.Equal(t, "Gemastik", data["judul"], path)
	}
}

func TestDetailLombaSlugTidakDikenal(t *testing.T) {
	r := setupDetailRouter(newFakeLombaRepo())

	req := httptest.NewRequest(http.MethodGet, "/api/lomba/tidak-ada", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func formDaftarValid() map[string]interface{} {
	return map[string]interface{}{
		"nama":         "Budi Santoso",
		"nim":          "2110512001",
		"email":        "budi@student.ac.id",
		"noHp":         "081234567890",
		"fakultas":     "Ilmu Komputer",
		"programStudi": "Informatika",
	}
}

func TestDaftarLombaBerhasil(t *testing.T) {
	repo := newFakeLombaRepo()
	repo.lomba[1] = model.Lomba{
		ID: 1, Judul: "Gemastik", Status: model.LombaStatusOpen,
		PendaftaranDibuka: true, Deadline: besok(),
	}
	cal := &fakeCalendarRepo{}
	r := setupDaftarRouter(repo, cal)

	w := postJSON(t, r, "/api/lomba/1/daftar", formDaftarValid())

	assert.Equal(t, http.StatusCreated, w.Code)
	res := decodeResponse(t, w)
	assert.True(t, res.Status)
	require.Len(t, repo.pendaftaran, 1)
	assert.Equal(t, model.PendaftaranPending, repo.pendaftaran[0].Status)
}

func TestDaftarLombaFormKosongMengembalikanSemuaError(t *testing.T) {
	repo := newFakeLombaRepo()
	r := setupDaftarRouter(repo, &fakeCalendarRepo{})

	w := postJSON(t, r, "/api/lomba/1/daftar", map[string]interface{}{})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	res := decodeResponse(t, w)
	errs, ok := res.Errors.(map[string]interface{})
	require.True(t, ok)
	// seluruh pelanggaran dikembalikan sekaligus, bukan satu-satu
	assert.Len(t, errs, 6)
	assert.Contains(t, errs, "nama")
	assert.Contains(t, errs, "noHp")
}

func TestDaftarLombaTidakAda(t *testing.T) {
	r := setupDaftarRouter(newFakeLombaRepo(), &fakeCalendarRepo{})
	w := postJSON(t, r, "/api/lomba/5/daftar", formDaftarValid())
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDaftarLombaDitutup(t *testing.T) {
	repo := newFakeLombaRepo()
	repo.lomba[1] = model.Lomba{
		ID: 1, Status: model.LombaStatusClosed, PendaftaranDibuka: true, Deadline: besok(),
	}
	r := setupDaftarRouter(repo, &fakeCalendarRepo{})

	w := postJSON(t, r, "/api/lomba/1/daftar", formDaftarValid())

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "registration_closed", decodeResponse(t, w).Errors)
}

func TestDaftarLombaDeadlineLewat(t *testing.T) {
	repo := newFakeLombaRepo()
	repo.lomba[1] = model.Lomba{
		ID: 1, Status: model.LombaStatusOpen, PendaftaranDibuka: true, Deadline: kemarin(),
	}
	r := setupDaftarRouter(repo, &fakeCalendarRepo{})

	w := postJSON(t, r, "/api/lomba/1/daftar", formDaftarValid())

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "deadline_passed", decodeResponse(t, w).Errors)
}

func TestDaftarLombaNIMGanda(t *testing.T) {
	repo := newFakeLombaRepo()
	repo.lomba[1] = model.Lomba{
		ID: 1, Status: model.LombaStatusOpen, PendaftaranDibuka: true, Deadline: besok(),
	}
	repo.terdaftar["2110512001"] = true
	r := setupDaftarRouter(repo, &fakeCalendarRepo{})

	w := postJSON(t, r, "/api/lomba/1/daftar", formDaftarValid())

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "duplicate_registration", decodeResponse(t, w).Errors)
	assert.Empty(t, repo.pendaftaran)
}

func TestDaftarLombaIDBukanAngka(t *testing.T) {
	r := setupDaftarRouter(newFakeLombaRepo(), &fakeCalendarRepo{})
	w := postJSON(t, r, "/api/lomba/abc/daftar", formDaftarValid())
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
