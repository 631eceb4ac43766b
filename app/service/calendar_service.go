package service

import (
	"log"
	"net/http"
	"sort"
	"strconv"
	"sync"
	"time"

	"lomba-portal-backend/app/model"
	"lomba-portal-backend/app/repository"
	"lomba-portal-backend/config"
	"lomba-portal-backend/utils"

	"github.com/gin-gonic/gin"
)

// CalendarService mengagregasi tiga sumber event menjadi satu feed kalender:
// deadline lomba, rentang tanggal expo, dan entry kalender personal per NIM.
type CalendarService interface {
	GetCalendar(ctx *gin.Context)
}

type calendarService struct {
	cfg          *config.Config
	lombaRepo    repository.LombaRepository
	expoRepo     repository.ExpoRepository
	calendarRepo repository.CalendarRepository
}

// NewCalendarService membuat instance service kalender.
func NewCalendarService(cfg *config.Config, lombaRepo repository.LombaRepository, expoRepo repository.ExpoRepository, calendarRepo repository.CalendarRepository) CalendarService {
	return &calendarService{
		cfg:          cfg,
		lombaRepo:    lombaRepo,
		expoRepo:     expoRepo,
		calendarRepo: calendarRepo,
	}
}

// GetCalendar menangani GET /api/calendar?month=YYYY-MM&nim=...
// Ketiga sumber di-query paralel; kegagalan satu sumber hanya di-log dan
// sumber lain tetap dikembalikan (partial result, status tetap sukses).
func (s *calendarService) GetCalendar(ctx *gin.Context) {
	start, end := hitungWindow(ctx.Query("month"), time.Now())
	nim := ctx.Query("nim")

	rctx := ctx.Request.Context()

	var (
		wg          sync.WaitGroup
		lombaItems  []model.Lomba
		expoItems   []model.Expo
		personal    []model.CalendarEntry
		errLomba    error
		errExpo     error
		errPersonal error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		lombaItems, errLomba = s.lombaRepo.ListByDeadlineRange(rctx, start, end)
	}()
	go func() {
		defer wg.Done()
		expoItems, errExpo = s.expoRepo.ListByStartRange(rctx, start, end)
	}()
	if nim != "" {
		wg.Add(1)
		go func() {
			defer wg.Done()
			personal, errPersonal = s.calendarRepo.ListRange(rctx, nim, start, end)
		}()
	}
	wg.Wait()

	for sumber, err := range map[string]error{"lomba": errLomba, "expo": errExpo, "personal": errPersonal} {
		if err != nil {
			log.Printf("[CALENDAR] sumber %s gagal, dilewati: %v", sumber, err)
		}
	}

	// Urutan penggabungan menentukan urutan tie-break pada sort stabil:
	// lomba dulu, lalu expo, lalu entry personal.
	events := make([]model.CalendarEvent, 0, len(lombaItems)+len(expoItems)+len(personal))
	for _, l := range lombaItems {
		events = append(events, s.eventDariLomba(l))
	}
	for _, e := range expoItems {
		events = append(events, s.eventDariExpo(e))
	}
	for _, c := range personal {
		events = append(events, s.eventDariEntry(c))
	}

	sort.SliceStable(events, func(i, j int) bool {
		return events[i].StartDate < events[j].StartDate
	})

	ctx.JSON(http.StatusOK, utils.BuildResponseSuccess("Kalender berhasil diambil", gin.H{
		"rangeStart": start,
		"rangeEnd":   end,
		"events":     events,
	}))
}

// hitungWindow menentukan rentang tanggal query:
//   - month=YYYY-MM → hari pertama s.d. hari terakhir bulan itu, dipadatkan
//     ±7 hari supaya event di pinggir bulan ikut tampil di grid kalender.
//   - tanpa month   → hari ini s.d. +3 bulan.
func hitungWindow(month string, now time.Time) (string, string) {
	if month != "" {
		if t, err := time.Parse("2006-01", month); err == nil {
			first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
			last := first.AddDate(0, 1, -1)
			return first.AddDate(0, 0, -7).Format("2006-01-02"),
				last.AddDate(0, 0, 7).Format("2006-01-02")
		}
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return today.Format("2006-01-02"), today.AddDate(0, 3, 0).Format("2006-01-02")
}

func (s *calendarService) eventDariLomba(l model.Lomba) model.CalendarEvent {
	return model.CalendarEvent{
		ID:        "lomba-" + strconv.Itoa(l.ID),
		Judul:     "Deadline " + l.Judul,
		Tipe:      "lomba",
		StartDate: l.Deadline,
		Lokasi:    l.Penyelenggara,
		Deskripsi: "Batas akhir pendaftaran " + l.Judul,
		Link:      s.cfg.BaseURL + "/lomba/" + l.Slug,
		IsUrgent:  deadlineMendesak(l.Deadline, time.Now()),
	}
}

func (s *calendarService) eventDariExpo(e model.Expo) model.CalendarEvent {
	return model.CalendarEvent{
		ID:        "expo-" + strconv.Itoa(e.ID),
		Judul:     e.Judul,
		Tipe:      "expo",
		StartDate: e.TanggalMulai,
		EndDate:   e.TanggalSelesai,
		Lokasi:    e.Lokasi,
		Deskripsi: e.Tema,
		Link:      s.cfg.BaseURL + "/expo/" + strconv.Itoa(e.ID),
	}
}

func (s *calendarService) eventDariEntry(c model.CalendarEntry) model.CalendarEvent {
	return model.CalendarEvent{
		ID:        "cal-" + strconv.Itoa(c.ID),
		Judul:     c.Judul,
		Tipe:      c.Tipe,
		StartDate: c.Tanggal,
		EndDate:   c.TanggalSelesai,
		Waktu:     c.Waktu,
		Lokasi:    c.Lokasi,
		Deskripsi: c.Deskripsi,
		Link:      s.cfg.BaseURL + "/kalender",
	}
}

// deadlineMendesak true jika deadline jatuh dalam ≤7 hari ke depan
// (deadline yang sudah lewat tidak dianggap mendesak).
func deadlineMendesak(deadline string, now time.Time) bool {
	t, err := time.Parse("2006-01-02", deadline)
	if err != nil {
		return false
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	diff := t.Sub(today).Hours() / 24
	return diff >= 0 && diff <= 7
}
