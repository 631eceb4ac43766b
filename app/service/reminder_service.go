package service

import (
	"fmt"
	"math"
	"net/http"
	"strconv"
	"time"

	"lomba-portal-backend/app/mailer"
	"lomba-portal-backend/app/model"
	"lomba-portal-backend/app/repository"
	"lomba-portal-backend/config"
	"lomba-portal-backend/utils"

	"github.com/gin-gonic/gin"
)

// ReminderService memeriksa deadline lomba yang mendekat dan (opsional)
// mengirim email pengingat ke pendaftar yang sudah approved.
type ReminderService interface {
	CheckDeadlines(ctx *gin.Context)
	CreateReminder(ctx *gin.Context)
}

type reminderService struct {
	cfg          *config.Config
	lombaRepo    repository.LombaRepository
	calendarRepo repository.CalendarRepository
	mail         mailer.Service
}

// NewReminderService membuat instance service reminder.
func NewReminderService(cfg *config.Config, lombaRepo repository.LombaRepository, calendarRepo repository.CalendarRepository, mail mailer.Service) ReminderService {
	return &reminderService{
		cfg:          cfg,
		lombaRepo:    lombaRepo,
		calendarRepo: calendarRepo,
		mail:         mail,
	}
}

// reminderItem adalah 1 lomba yang deadline-nya masuk window pemeriksaan.
type reminderItem struct {
	LombaID    int    `json:"lombaId"`
	Judul      string `json:"judul"`
	Deadline   string `json:"deadline"`
	DaysLeft   int    `json:"daysLeft"`
	Urgency    string `json:"urgency"` // urgent | soon | upcoming
	Registrant int    `json:"registrant"`
}

// CheckDeadlines menangani GET /api/reminders/deadlines?days=N&action=check|send.
// Default days=7, action=check. action=send membangun 1 email per pasangan
// (lomba, pendaftar approved) dan mengirimkannya lewat mailer; payload email
// tetap dikembalikan di response apapun action-nya.
func (s *reminderService) CheckDeadlines(ctx *gin.Context) {
	days := queryInt(ctx, "days", 7)
	if days < 1 {
		days = 7
	}
	action := ctx.DefaultQuery("action", "check")
	if action != "check" && action != "send" {
		ctx.JSON(http.StatusBadRequest, utils.BuildResponseFailed("Data tidak valid", gin.H{"action": "harus check atau send"}, nil))
		return
	}

	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	start := today.Format("2006-01-02")
	end := today.AddDate(0, 0, days).Format("2006-01-02")

	items, err := s.lombaRepo.ListByDeadlineRange(ctx.Request.Context(), start, end)
	if err != nil {
		respondCMSError(ctx, err, "Lomba tidak ditemukan")
		return
	}

	reminders := make([]reminderItem, 0, len(items))
	messages := []mailer.Message{}
	for _, l := range items {
		daysLeft := hitungSisaHari(l.Deadline, today)
		if daysLeft < 0 {
			continue
		}
		urgency := tingkatUrgensi(daysLeft)

		pendaftar, err := s.lombaRepo.ListPendaftaranByStatus(ctx.Request.Context(), l.ID, model.PendaftaranApproved)
		if err != nil {
			respondCMSError(ctx, err, "Pendaftaran tidak ditemukan")
			return
		}
		reminders = append(reminders, reminderItem{
			LombaID:    l.ID,
			Judul:      l.Judul,
			Deadline:   l.Deadline,
			DaysLeft:   daysLeft,
			Urgency:    urgency,
			Registrant: len(pendaftar),
		})
		for _, p := range pendaftar {
			messages = append(messages, buatPesanReminder(l, p, daysLeft, urgency))
		}
	}

	if action == "send" && len(messages) > 0 {
		s.mail.SendMessages(messages...)
	}

	ctx.JSON(http.StatusOK, utils.BuildResponseSuccess("Pemeriksaan deadline selesai", gin.H{
		"action":    action,
		"days":      days,
		"reminders": reminders,
		"emails":    messages,
	}))
}

// createReminderInput adalah DTO reminder ad-hoc dari admin.
type createReminderInput struct {
	LombaID int    `json:"lombaId" validate:"required"`
	Tanggal string `json:"tanggal" validate:"required"`
	Pesan   string `json:"pesan" validate:"required"`
}

// CreateReminder menangani POST /api/reminders/deadlines: membuat 1 entry
// kalender bertipe "deadline" yang terikat ke lomba tertentu.
func (s *reminderService) CreateReminder(ctx *gin.Context) {
	var input createReminderInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, utils.BuildResponseFailed("Format request tidak valid", err.Error(), nil))
		return
	}
	if errs := utils.ValidateStruct(input); errs != nil {
		ctx.JSON(http.StatusBadRequest, utils.BuildResponseFailed("Data tidak valid", errs, nil))
		return
	}
	if _, err := time.Parse("2006-01-02", input.Tanggal); err != nil {
		ctx.JSON(http.StatusBadRequest, utils.BuildResponseFailed("Data tidak valid", gin.H{"tanggal": "format harus YYYY-MM-DD"}, nil))
		return
	}

	lomba, err := s.lombaRepo.FindByID(ctx.Request.Context(), input.LombaID)
	if err != nil {
		respondCMSError(ctx, err, "Lomba tidak ditemukan")
		return
	}

	created, err := s.calendarRepo.Create(ctx.Request.Context(), &model.CalendarEntry{
		Judul:     "Reminder: " + lomba.Judul,
		Tipe:      "deadline",
		Tanggal:   input.Tanggal,
		Deskripsi: input.Pesan,
		Lomba:     lomba.ID,
	})
	if err != nil {
		respondCMSError(ctx, err, "Entry kalender tidak ditemukan")
		return
	}

	ctx.JSON(http.StatusCreated, utils.BuildResponseSuccess("Reminder berhasil dibuat", created))
}

// hitungSisaHari menghitung ceil((deadline - hari ini) / 24 jam).
// Deadline hari ini = 0; tanggal tidak valid = -1 (di-skip pemanggil).
func hitungSisaHari(deadline string, today time.Time) int {
	t, err := time.Parse("2006-01-02", deadline)
	if err != nil {
		return -1
	}
	return int(math.Ceil(t.Sub(today).Hours() / 24))
}

func tingkatUrgensi(daysLeft int) string {
	switch {
	case daysLeft <= 1:
		return "urgent"
	case daysLeft <= 3:
		return "soon"
	default:
		return "upcoming"
	}
}

func buatPesanReminder(l model.Lomba, p model.PendaftaranLomba, daysLeft int, urgency string) mailer.Message {
	var prefix string
	switch urgency {
	case "urgent":
		prefix = "[PENTING] "
	case "soon":
		prefix = "[Segera] "
	}

	var sisa string
	switch daysLeft {
	case 0:
		sisa = "hari ini"
	case 1:
		sisa = "besok"
	default:
		sisa = strconv.Itoa(daysLeft) + " hari lagi"
	}

	return mailer.Message{
		ToName:  p.Nama,
		ToEmail: p.Email,
		Subject: fmt.Sprintf("%sDeadline %s %s", prefix, l.Judul, sisa),
		Body: fmt.Sprintf(
			"Halo %s,\n\nDeadline pendaftaran lomba %s jatuh pada %s (%s). "+
				"Pastikan seluruh berkasmu sudah lengkap sebelum batas waktu.\n\n"+
				"Salam,\nTim Portal Lomba",
			p.Nama, l.Judul, l.Deadline, sisa,
		),
	}
}
