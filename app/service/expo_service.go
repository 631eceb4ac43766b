package service

import (
	"net/http"
	"strconv"
	"strings"

	"lomba-portal-backend/app/model"
	"lomba-portal-backend/app/repository"
	"lomba-portal-backend/app/transform"
	"lomba-portal-backend/config"
	"lomba-portal-backend/utils"

	"github.com/gin-gonic/gin"
)

// ExpoService menangani endpoint expo: list/detail publik, CRUD admin, dan
// pendaftaran tim (1 ketua + maksimal 3 anggota).
type ExpoService interface {
	List(ctx *gin.Context)
	Detail(ctx *gin.Context)
	Create(ctx *gin.Context)
	Update(ctx *gin.Context)
	Delete(ctx *gin.Context)
	Register(ctx *gin.Context)
	ListPendaftar(ctx *gin.Context)
}

type expoService struct {
	cfg  *config.Config
	repo repository.ExpoRepository
}

// NewExpoService membuat instance service expo.
func NewExpoService(cfg *config.Config, repo repository.ExpoRepository) ExpoService {
	return &expoService{cfg: cfg, repo: repo}
}

// List menangani GET /api/expo.
func (s *expoService) List(ctx *gin.Context) {
	f := repository.ExpoFilter{
		Page:           queryInt(ctx, "page", 1),
		Limit:          queryInt(ctx, "limit", 10),
		Status:         ctx.Query("status"),
		Search:         ctx.Query("search"),
		IncludeDeleted: queryBool(ctx, "includeDeleted"),
	}

	items, total, err := s.repo.List(ctx.Request.Context(), f)
	if err != nil {
		respondCMSError(ctx, err, "Expo tidak ditemukan")
		return
	}

	ctx.JSON(http.StatusOK, utils.BuildResponseList(
		"Daftar expo berhasil diambil",
		transform.ExpoListToResponse(items, s.cfg.DirectusURL),
		f.Page, f.Limit, total,
	))
}

// Detail menangani GET /api/expo/:id.
func (s *expoService) Detail(ctx *gin.Context) {
	id, ok := paramID(ctx)
	if !ok {
		return
	}

	expo, err := s.repo.FindByID(ctx.Request.Context(), id)
	if err != nil {
		respondCMSError(ctx, err, "Expo tidak ditemukan")
		return
	}

	ctx.JSON(http.StatusOK, utils.BuildResponseSuccess(
		"Detail expo berhasil diambil",
		transform.ExpoToResponse(*expo, s.cfg.DirectusURL),
	))
}

// Create menangani POST /api/expo (admin).
func (s *expoService) Create(ctx *gin.Context) {
	fields, ok := bindAdminFields(ctx)
	if !ok {
		return
	}

	expo, err := s.repo.Create(ctx.Request.Context(), fields)
	if err != nil {
		respondCMSError(ctx, err, "Expo tidak ditemukan")
		return
	}

	ctx.JSON(http.StatusCreated, utils.BuildResponseSuccess(
		"Expo berhasil dibuat",
		transform.ExpoToResponse(*expo, s.cfg.DirectusURL),
	))
}

// Update menangani PATCH /api/expo/:id (admin).
func (s *expoService) Update(ctx *gin.Context) {
	id, ok := paramID(ctx)
	if !ok {
		return
	}
	fields, ok := bindAdminFields(ctx)
	if !ok {
		return
	}

	expo, err := s.repo.Update(ctx.Request.Context(), id, fields)
	if err != nil {
		respondCMSError(ctx, err, "Expo tidak ditemukan")
		return
	}

	ctx.JSON(http.StatusOK, utils.BuildResponseSuccess(
		"Expo berhasil diperbarui",
		transform.ExpoToResponse(*expo, s.cfg.DirectusURL),
	))
}

// Delete menangani DELETE /api/expo/:id (admin), soft delete by default.
func (s *expoService) Delete(ctx *gin.Context) {
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
		respondCMSError(ctx, err, "Expo tidak ditemukan")
		return
	}

	ctx.JSON(http.StatusOK, utils.BuildResponseSuccess("Expo berhasil dihapus", nil))
}

// anggotaInput adalah 1 anggota tim pada form pendaftaran expo.
type anggotaInput struct {
	Nama string `json:"nama"`
	NIM  string `json:"nim"`
}

// registerExpoInput adalah DTO form pendaftaran expo.
type registerExpoInput struct {
	NamaKetua       string         `json:"namaKetua" validate:"required"`
	NIMKetua        string         `json:"nimKetua" validate:"required,nim"`
	Email           string         `json:"email" validate:"required,email_form"`
	NoHP            string         `json:"noHp" validate:"required,telepon"`
	NamaProyek      string         `json:"namaProyek" validate:"required"`
	DeskripsiProyek string         `json:"deskripsiProyek"`
	LinkDemo        string         `json:"linkDemo"`
	Anggota         []anggotaInput `json:"anggota"`
}

// Register menangani POST /api/expo/:id/register.
// Urutan: validasi form → expo ada → pendaftaran dibuka & deadline belum
// lewat → kapasitas belum menyentuh buffer 90% → tidak ada NIM yang sudah
// terdaftar (ketua maupun anggota) → insert pending.
func (s *expoService) Register(ctx *gin.Context) {
	id, ok := paramID(ctx)
	if !ok {
		return
	}

	var input registerExpoInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest,
			utils.BuildResponseFailed("Input tidak valid", err.Error(), nil))
		return
	}

	errs := utils.ValidateStruct(input)
	if errs == nil {
		errs = map[string]string{}
	}
	s.validasiAnggota(input, errs)
	if len(errs) > 0 {
		ctx.JSON(http.StatusBadRequest,
			utils.BuildResponseFailed("Form pendaftaran belum lengkap", errs, nil))
		return
	}

	rctx := ctx.Request.Context()

	expo, err := s.repo.FindByID(rctx, id)
	if err != nil {
		respondCMSError(ctx, err, "Expo tidak ditemukan")
		return
	}

	if !expo.PendaftaranDibuka {
		ctx.JSON(http.StatusBadRequest,
			utils.BuildResponseFailed("Pendaftaran expo ini sudah ditutup", "registration_closed", nil))
		return
	}
	if isTanggalLewat(expo.DeadlinePendaftaran) {
		ctx.JSON(http.StatusBadRequest,
			utils.BuildResponseFailed("Deadline pendaftaran sudah lewat", "deadline_passed", nil))
		return
	}

	// Admission control 90%: buffer longgar yang memang racy (dua request
	// hampir bersamaan bisa sama-sama lolos); bukan lock transaksional.
	if expo.MaxParticipants > 0 {
		count, err := s.repo.CountPendaftaranAktif(rctx, id)
		if err != nil {
			respondCMSError(ctx, err, "Expo tidak ditemukan")
			return
		}
		if count*10 >= expo.MaxParticipants*9 {
			ctx.JSON(http.StatusBadRequest,
				utils.BuildResponseFailed("Kuota peserta expo sudah hampir penuh, pendaftaran ditutup", "capacity_reached", nil))
			return
		}
	}

	for _, nim := range kumpulkanNIM(input) {
		terdaftar, err := s.repo.HasPendaftaranAktifNIM(rctx, id, nim)
		if err != nil {
			respondCMSError(ctx, err, "Expo tidak ditemukan")
			return
		}
		if terdaftar {
			ctx.JSON(http.StatusConflict,
				utils.BuildResponseFailed("NIM "+nim+" sudah terdaftar di expo ini", "duplicate_registration", nil))
			return
		}
	}

	pendaftaran := &model.PendaftaranExpo{
		Expo:            id,
		NamaKetua:       input.NamaKetua,
		NIMKetua:        input.NIMKetua,
		Email:           input.Email,
		NoHP:            input.NoHP,
		NamaProyek:      input.NamaProyek,
		DeskripsiProyek: input.DeskripsiProyek,
		LinkDemo:        input.LinkDemo,
	}
	isiAnggota(pendaftaran, input.Anggota)

	created, err := s.repo.CreatePendaftaran(rctx, pendaftaran)
	if err != nil {
		respondCMSError(ctx, err, "Expo tidak ditemukan")
		return
	}

	ctx.JSON(http.StatusCreated, utils.BuildResponseSuccess(
		"Pendaftaran tim berhasil, status menunggu verifikasi",
		transform.PendaftaranExpoToResponse(*created),
	))
}

// validasiAnggota menambahkan pelanggaran slot anggota ke map error:
// maksimal 3 anggota, NIM anggota harus angka, dan tidak boleh ada NIM ganda
// antar slot di dalam satu form.
func (s *expoService) validasiAnggota(input registerExpoInput, errs map[string]string) {
	if len(input.Anggota) > 3 {
		errs["anggota"] = "maksimal 3 anggota selain ketua"
	}

	terpakai := map[string]string{input.NIMKetua: "nimKetua"}
	for i, a := range input.Anggota {
		if i >= 3 {
			break
		}
		key := "anggota" + strconv.Itoa(i+1)
		if a.Nama == "" && a.NIM == "" {
			continue
		}
		if a.Nama == "" {
			errs[key+".nama"] = "wajib diisi"
		}
		if a.NIM == "" {
			errs[key+".nim"] = "wajib diisi"
			continue
		}
		if !utils.IsNIMValid(a.NIM) {
			errs[key+".nim"] = "NIM harus berupa angka"
			continue
		}
		if dupKey, ada := terpakai[a.NIM]; ada {
			errs[key+".nim"] = "NIM sama dengan " + dupKey
			continue
		}
		terpakai[a.NIM] = key
	}
}

// kumpulkanNIM mengembalikan semua NIM terisi pada form (ketua + anggota).
func kumpulkanNIM(input registerExpoInput) []string {
	nims := []string{input.NIMKetua}
	for i, a := range input.Anggota {
		if i >= 3 {
			break
		}
		if strings.TrimSpace(a.NIM) != "" {
			nims = append(nims, a.NIM)
		}
	}
	return nims
}

func isiAnggota(p *model.PendaftaranExpo, anggota []anggotaInput) {
	slotNama := []*string{&p.Anggota1Nama, &p.Anggota2Nama, &p.Anggota3Nama}
	slotNIM := []*string{&p.Anggota1NIM, &p.Anggota2NIM, &p.Anggota3NIM}
	for i, a := range anggota {
		if i >= 3 {
			break
		}
		*slotNama[i] = a.Nama
		*slotNIM[i] = a.NIM
	}
}

// ListPendaftar menangani GET /api/expo/:id/register (admin).
func (s *expoService) ListPendaftar(ctx *gin.Context) {
	id, ok := paramID(ctx)
	if !ok {
		return
	}

	items, err := s.repo.ListPendaftaran(ctx.Request.Context(), id)
	if err != nil {
		respondCMSError(ctx, err, "Expo tidak ditemukan")
		return
	}

	ctx.JSON(http.StatusOK, utils.BuildResponseSuccess(
		"Daftar tim pendaftar berhasil diambil",
		transform.PendaftaranExpoListToResponse(items),
	))
}
