package service

import (
	"context"
	"log"
	"net/http"
	"strconv"
	"time"

	"lomba-portal-backend/app/model"
	"lomba-portal-backend/app/repository"
	"lomba-portal-backend/app/transform"
	"lomba-portal-backend/config"
	"lomba-portal-backend/utils"

	"github.com/gin-gonic/gin"
)

// LombaService menangani endpoint lomba: list/detail publik, CRUD admin,
// dan pendaftaran peserta.
type LombaService interface {
	List(ctx *gin.Context)
	Detail(ctx *gin.Context)
	Create(ctx *gin.Context)
	Update(ctx *gin.Context)
	Delete(ctx *gin.Context)
	Daftar(ctx *gin.Context)
	ListPendaftar(ctx *gin.Context)
}

type lombaService struct {
	cfg          *config.Config
	repo         repository.LombaRepository
	calendarRepo repository.CalendarRepository
}

// NewLombaService membuat instance service lomba.
func NewLombaService(cfg *config.Config, repo repository.LombaRepository, calendarRepo repository.CalendarRepository) LombaService {
	return &lombaService{cfg: cfg, repo: repo, calendarRepo: calendarRepo}
}

// List menangani GET /api/lomba.
// Query: page, limit, kategori, tingkat, status, search, slug, featured,
// includeDeleted.
func (s *lombaService) List(ctx *gin.Context) {
	f := repository.LombaFilter{
		Page:           queryInt(ctx, "page", 1),
		Limit:          queryInt(ctx, "limit", 10),
		Kategori:       ctx.Query("kategori"),
		Tingkat:        ctx.Query("tingkat"),
		Status:         ctx.Query("status"),
		Search:         ctx.Query("search"),
		Slug:           ctx.Query("slug"),
		IncludeDeleted: queryBool(ctx, "includeDeleted"),
	}
	if v := ctx.Query("featured"); v != "" {
		featured := v == "true" || v == "1"
		f.Featured = &featured
	}

	items, total, err := s.repo.List(ctx.Request.Context(), f)
	if err != nil {
		respondCMSError(ctx, err, "Lomba tidak ditemukan")
		return
	}

	ctx.JSON(http.StatusOK, utils.BuildResponseList(
		"Daftar lomba berhasil diambil",
		transform.LombaListToResponse(items, s.cfg.DirectusURL),
		f.Page, f.Limit, total,
	))
}

// Detail menangani GET /api/lomba/:id. Param non-angka diperlakukan sebagai
// slug, karena link di kalender dan hasil pencarian memakai slug.
func (s *lombaService) Detail(ctx *gin.Context) {
	var (
		lomba *model.Lomba
		err   error
	)
	raw := ctx.Param("id")
	if id, convErr := strconv.Atoi(raw); convErr == nil {
		lomba, err = s.repo.FindByID(ctx.Request.Context(), id)
	} else {
		lomba, err = s.repo.FindBySlug(ctx.Request.Context(), raw)
	}
	if err != nil {
		respondCMSError(ctx, err, "Lomba tidak ditemukan")
		return
	}

	ctx.JSON(http.StatusOK, utils.BuildResponseSuccess(
		"Detail lomba berhasil diambil",
		transform.LombaToResponse(*lomba, s.cfg.DirectusURL),
	))
}

// Create menangani POST /api/lomba (admin). Body diteruskan ke CMS apa
// adanya setelah field terlarang dibuang: layer ini memang glue tipis.
func (s *lombaService) Create(ctx *gin.Context) {
	fields, ok := bindAdminFields(ctx)
	if !ok {
		return
	}

	lomba, err := s.repo.Create(ctx.Request.Context(), fields)
	if err != nil {
		respondCMSError(ctx, err, "Lomba tidak ditemukan")
		return
	}

	ctx.JSON(http.StatusCreated, utils.BuildResponseSuccess(
		"Lomba berhasil dibuat",
		transform.LombaToResponse(*lomba, s.cfg.DirectusURL),
	))
}

// Update menangani PATCH /api/lomba/:id (admin).
func (s *lombaService) Update(ctx *gin.Context) {
	id, ok := paramID(ctx)
	if !ok {
		return
	}
	fields, ok := bindAdminFields(ctx)
	if !ok {
		return
	}

	lomba, err := s.repo.Update(ctx.Request.Context(), id, fields)
	if err != nil {
		respondCMSError(ctx, err, "Lomba tidak ditemukan")
		return
	}

	ctx.JSON(http.StatusOK, utils.BuildResponseSuccess(
		"Lomba berhasil diperbarui",
		transform.LombaToResponse(*lomba, s.cfg.DirectusURL),
	))
}

// Delete menangani DELETE /api/lomba/:id (admin).
// Default: soft delete (is_deleted=true). ?permanent=true: hapus permanen,
// tanpa konfirmasi tambahan di API (konfirmasi ada di UI).
func (s *lombaService) Delete(ctx *gin.Context) {
	id, ok := paramID(ctx)
	if !ok {
		return
	}

	var err error
	if queryBool(ctx, "permanent") {
		err = s.repo.HardDelete(ctx.Request.Context(), id)
	} else {
		err = s.repo.SoftDelete(ctx.Request.Context(), id)
	}
	if err != nil {
		respondCMSError(ctx, err, "Lomba tidak ditemukan")
		return
	}

	ctx.JSON(http.StatusOK, utils.BuildResponseSuccess("Lomba berhasil dihapus", nil))
}

// daftarLombaInput adalah DTO form pendaftaran lomba.
type daftarLombaInput struct {
	Nama         string `json:"nama" validate:"required"`
	NIM          string `json:"nim" validate:"required,nim"`
	Email        string `json:"email" validate:"required,email_form"`
	NoHP         string `json:"noHp" validate:"required,telepon"`
	Fakultas     string `json:"fakultas" validate:"required"`
	ProgramStudi string `json:"programStudi" validate:"required"`
}

// Daftar menangani POST /api/lomba/:id/daftar.
// Urutan pengecekan: validasi form (semua pelanggaran sekaligus) → lomba ada
// → lomba tidak closed → deadline belum lewat → NIM belum terdaftar → insert
// pending → entry kalender personal (best-effort).
func (s *lombaService) Daftar(ctx *gin.Context) {
	id, ok := paramID(ctx)
	if !ok {
		return
	}

	var input daftarLombaInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest,
			utils.BuildResponseFailed("Input tidak valid", err.Error(), nil))
		return
	}

	if errs := utils.ValidateStruct(input); errs != nil {
		ctx.JSON(http.StatusBadRequest,
			utils.BuildResponseFailed("Form pendaftaran belum lengkap", errs, nil))
		return
	}

	rctx := ctx.Request.Context()

	lomba, err := s.repo.FindByID(rctx, id)
	if err != nil {
		respondCMSError(ctx, err, "Lomba tidak ditemukan")
		return
	}

	if lomba.Status == model.LombaStatusClosed || !lomba.PendaftaranDibuka {
		ctx.JSON(http.StatusBadRequest,
			utils.BuildResponseFailed("Pendaftaran lomba ini sudah ditutup", "registration_closed", nil))
		return
	}

	if isTanggalLewat(lomba.Deadline) {
		ctx.JSON(http.StatusBadRequest,
			utils.BuildResponseFailed("Deadline pendaftaran sudah lewat", "deadline_passed", nil))
		return
	}

	sudahDaftar, err := s.repo.HasPendaftaranAktif(rctx, id, input.NIM)
	if err != nil {
		respondCMSError(ctx, err, "Lomba tidak ditemukan")
		return
	}
	if sudahDaftar {
		ctx.JSON(http.StatusConflict,
			utils.BuildResponseFailed("NIM ini sudah terdaftar di lomba tersebut", "duplicate_registration", nil))
		return
	}

	pendaftaran := &model.PendaftaranLomba{
		Lomba:        id,
		Nama:         input.Nama,
		NIM:          input.NIM,
		Email:        input.Email,
		NoHP:         input.NoHP,
		Fakultas:     input.Fakultas,
		ProgramStudi: input.ProgramStudi,
	}
	created, err := s.repo.CreatePendaftaran(rctx, pendaftaran)
	if err != nil {
		respondCMSError(ctx, err, "Lomba tidak ditemukan")
		return
	}

	// Entry kalender personal deadline lomba: fire-and-forget. Kegagalan
	// hanya di-log, tidak pernah menggagalkan pendaftaran.
	go s.buatEntryKalender(*lomba, *created)

	ctx.JSON(http.StatusCreated, utils.BuildResponseSuccess(
		"Pendaftaran berhasil, status menunggu verifikasi",
		transform.PendaftaranLombaToResponse(*created),
	))
}

func (s *lombaService) buatEntryKalender(lomba model.Lomba, p model.PendaftaranLomba) {
	if lomba.Deadline == "" {
		return
	}
	cctx, cancel := context.WithTimeout(context.Background(), s.cfg.HTTPTimeout)
	defer cancel()

	entry := &model.CalendarEntry{
		Judul:       "Deadline " + lomba.Judul,
		Tipe:        "deadline",
		Tanggal:     lomba.Deadline,
		Deskripsi:   "Batas akhir pendaftaran " + lomba.Judul,
		NIM:         p.NIM,
		Pendaftaran: p.ID,
		Lomba:       lomba.ID,
	}
	if _, err := s.calendarRepo.Create(cctx, entry); err != nil {
		log.Printf("[LOMBA] gagal membuat entry kalender untuk NIM %s: %v", p.NIM, err)
	}
}

// ListPendaftar menangani GET /api/lomba/:id/daftar (admin).
func (s *lombaService) ListPendaftar(ctx *gin.Context) {
	id, ok := paramID(ctx)
	if !ok {
		return
	}

	items, err := s.repo.ListPendaftaran(ctx.Request.Context(), id)
	if err != nil {
		respondCMSError(ctx, err, "Lomba tidak ditemukan")
		return
	}

	ctx.JSON(http.StatusOK, utils.BuildResponseSuccess(
		"Daftar pendaftar berhasil diambil",
		transform.PendaftaranLombaListToResponse(items),
	))
}

// isTanggalLewat true jika tanggal (YYYY-MM-DD) sudah lewat dibanding hari
// ini. Tanggal kosong / tidak valid dianggap belum lewat.
func isTanggalLewat(tanggal string) bool {
	if tanggal == "" {
		return false
	}
	t, err := time.Parse("2006-01-02", tanggal)
	if err != nil {
		return false
	}
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return t.Before(today)
}

// bindAdminFields membaca body JSON admin CRUD sebagai map dan membuang field
// yang tidak boleh diset langsung.
func bindAdminFields(ctx *gin.Context) (map[string]interface{}, bool) {
	var fields map[string]interface{}
	if err := ctx.ShouldBindJSON(&fields); err != nil {
		ctx.JSON(http.StatusBadRequest,
			utils.BuildResponseFailed("Input tidak valid", err.Error(), nil))
		return nil, false
	}
	delete(fields, "id")
	delete(fields, "date_created")
	delete(fields, "date_updated")
	if len(fields) == 0 {
		ctx.JSON(http.StatusBadRequest,
			utils.BuildResponseFailed("Tidak ada field yang dikirim", "empty_body", nil))
		return nil, false
	}
	return fields, true
}
