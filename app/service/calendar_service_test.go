package service

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"lomba-portal-backend/app/model"
	"lomba-portal-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHitungWindow(t *testing.T) {
	now := time.Date(2026, 9, 1, 10, 30, 0, 0, time.UTC)

	t.Run("bulan eksplisit dipadatkan 7 hari", func(t *testing.T) {
		start, end := hitungWindow("2026-03", now)
		assert.Equal(t, "2026-02-22", start)
		assert.Equal(t, "2026-04-07", end)
	})

	t.Run("tanpa bulan pakai 3 bulan ke depan", func(t *testing.T) {
		start, end := hitungWindow("", now)
		assert.Equal(t, "2026-09-01", start)
		assert.Equal(t, "2026-12-01", end)
	})

	t.Run("bulan rusak jatuh ke default", func(t *testing.T) {
		start, _ := hitungWindow("maret", now)
		assert.Equal(t, "2026-09-01", start)
	})
}

func TestDeadlineMendesak(t *testing.T) {
	now := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	assert.True(t, deadlineMendesak("2026-09-01", now))
	assert.True(t, deadlineMendesak("2026-09-08", now))
	assert.False(t, deadlineMendesak("2026-09-09", now))
	assert.False(t, deadlineMendesak("2026-08-31", now)) // sudah lewat
	assert.False(t, deadlineMendesak("", now))
}

type calendarPayload struct {
	Events []model.CalendarEvent `json:"events"`
}

func getCalendar(t *testing.T, r *gin.Engine, path string) (int, calendarPayload) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var res utils.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	raw, err := json.Marshal(res.Data)
	require.NoError(t, err)
	var payload calendarPayload
	require.NoError(t, json.Unmarshal(raw, &payload))
	return w.Code, payload
}

func setupCalendarRouter(lomba *fakeLombaRepo, expo *fakeExpoRepo, cal *fakeCalendarRepo) *gin.Engine {
	svc := NewCalendarService(testConfig(), lomba, expo, cal)
	r := gin.New()
	r.GET("/api/calendar", svc.GetCalendar)
	return r
}

func TestGetCalendarMenggabungkanDanMengurutkan(t *testing.T) {
	lombaRepo := newFakeLombaRepo()
	lombaRepo.lomba[1] = model.Lomba{ID: 1, Judul: "Gemastik", Deadline: "2026-09-20", Slug: "gemastik"}

	expoRepo := newFakeExpoRepo()
	expoRepo.expo[2] = model.Expo{ID: 2, Judul: "Expo Karya", TanggalMulai: "2026-09-10", TanggalSelesai: "2026-09-12"}

	cal := &fakeCalendarRepo{entries: []model.CalendarEntry{
		{ID: 3, Judul: "Bimbingan proposal", Tipe: "event", Tanggal: "2026-09-15", NIM: "2110512001"},
	}}

	r := setupCalendarRouter(lombaRepo, expoRepo, cal)
	code, payload := getCalendar(t, r, "/api/calendar?nim=2110512001")

	assert.Equal(t, http.StatusOK, code)
	require.Len(t, payload.Events, 3)
	// terurut menaik berdasarkan tanggal mulai
	assert.Equal(t, "expo-2", payload.Events[0].ID)
	assert.Equal(t, "cal-3", payload.Events[1].ID)
	assert.Equal(t, "lomba-1", payload.Events[2].ID)
}

func TestGetCalendarTanpaNIMLewatiSumberPersonal(t *testing.T) {
	cal := &fakeCalendarRepo{entries: []model.CalendarEntry{
		{ID: 3, Judul: "Bimbingan", Tanggal: "2026-09-15", NIM: "2110512001"},
	}}
	r := setupCalendarRouter(newFakeLombaRepo(), newFakeExpoRepo(), cal)

	code, payload := getCalendar(t, r, "/api/calendar")
	assert.Equal(t, http.StatusOK, code)
	assert.Empty(t, payload.Events)
}

func TestGetCalendarSumberGagalTetapSukses(t *testing.T) {
	lombaRepo := newFakeLombaRepo()
	lombaRepo.lomba[1] = model.Lomba{ID: 1, Judul: "Gemastik", Deadline: "2026-09-20"}

	cal := &fakeCalendarRepo{listErr: errors.New("cms timeout")}
	r := setupCalendarRouter(lombaRepo, newFakeExpoRepo(), cal)

	code, payload := getCalendar(t, r, "/api/calendar?nim=2110512001")

	// sumber personal gagal tapi response tetap 200 dengan sumber lain
	assert.Equal(t, http.StatusOK, code)
	require.Len(t, payload.Events, 1)
	assert.Equal(t, "lomba-1", payload.Events[0].ID)
}
