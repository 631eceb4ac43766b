package service

import (
	"net/http"

	"lomba-portal-backend/app/model"
	"lomba-portal-backend/app/repository"
	"lomba-portal-backend/app/transform"
	"lomba-portal-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// KontakService menangani form kontak publik dan pengelolaan pesan oleh admin.
type KontakService interface {
	Submit(ctx *gin.Context)
	List(ctx *gin.Context)
	Detail(ctx *gin.Context)
	UpdateStatus(ctx *gin.Context)
	Delete(ctx *gin.Context)
}

type kontakService struct {
	repo repository.KontakRepository
}

// NewKontakService membuat instance service kontak.
func NewKontakService(repo repository.KontakRepository) KontakService {
	return &kontakService{repo: repo}
}

// kontakInput adalah DTO form kontak publik.
type kontakInput struct {
	Nama   string `json:"nama" validate:"required"`
	Email  string `json:"email" validate:"required,email_form"`
	Subjek string `json:"subjek" validate:"required"`
	Pesan  string `json:"pesan" validate:"required"`
}

// Submit menangani POST /api/kontak (publik, tanpa auth).
func (s *kontakService) Submit(ctx *gin.Context) {
	var input kontakInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, utils.BuildResponseFailed("Format request tidak valid", err.Error(), nil))
		return
	}
	if errs := utils.ValidateStruct(input); errs != nil {
		ctx.JSON(http.StatusBadRequest, utils.BuildResponseFailed("Data tidak valid", errs, nil))
		return
	}

	// Nomor tiket dipakai pengirim untuk menanyakan status pesannya.
	created, err := s.repo.Create(ctx.Request.Context(), &model.PesanKontak{
		Tiket:  uuid.NewString(),
		Nama:   input.Nama,
		Email:  input.Email,
		Subjek: input.Subjek,
		Pesan:  input.Pesan,
	})
	if err != nil {
		respondCMSError(ctx, err, "Pesan kontak tidak ditemukan")
		return
	}

	ctx.JSON(http.StatusCreated, utils.BuildResponseSuccess("Pesan berhasil dikirim", transform.KontakToResponse(*created)))
}

// List menangani GET /api/kontak (admin). Filter: status=read|unread.
func (s *kontakService) List(ctx *gin.Context) {
	items, err := s.repo.List(ctx.Request.Context(), ctx.Query("status"), queryBool(ctx, "includeDeleted"))
	if err != nil {
		respondCMSError(ctx, err, "Pesan kontak tidak ditemukan")
		return
	}

	ctx.JSON(http.StatusOK, utils.BuildResponseSuccess(
		"Pesan kontak berhasil diambil", transform.KontakListToResponse(items)))
}

// Detail menangani GET /api/kontak/:id (admin).
func (s *kontakService) Detail(ctx *gin.Context) {
	id, ok := paramID(ctx)
	if !ok {
		return
	}
	k, err := s.repo.FindByID(ctx.Request.Context(), id)
	if err != nil {
		respondCMSError(ctx, err, "Pesan kontak tidak ditemukan")
		return
	}
	ctx.JSON(http.StatusOK, utils.BuildResponseSuccess("Pesan kontak berhasil diambil", transform.KontakToResponse(*k)))
}

// UpdateStatus menangani PATCH /api/kontak/:id (admin), toggle read/unread.
func (s *kontakService) UpdateStatus(ctx *gin.Context) {
	id, ok := paramID(ctx)
	if !ok {
		return
	}

	var input struct {
		Status string `json:"status"`
	}
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, utils.BuildResponseFailed("Format request tidak valid", err.Error(), nil))
		return
	}
	if input.Status != "read" && input.Status != "unread" {
		ctx.JSON(http.StatusBadRequest, utils.BuildResponseFailed("Data tidak valid", gin.H{"status": "harus read atau unread"}, nil))
		return
	}

	if err := s.repo.UpdateStatus(ctx.Request.Context(), id, input.Status); err != nil {
		respondCMSError(ctx, err, "Pesan kontak tidak ditemukan")
		return
	}
	ctx.JSON(http.StatusOK, utils.BuildResponseSuccess("Status pesan berhasil diubah", gin.H{"id": id, "status": input.Status}))
}

// Delete menangani DELETE /api/kontak/:id (admin). Default soft delete,
// ?permanent=true menghapus permanen.
func (s *kontakService) Delete(ctx *gin.Context) {
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
		respondCMSError(ctx, err, "Pesan kontak tidak ditemukan")
		return
	}
	ctx.JSON(http.StatusOK, utils.BuildResponseSuccess("Pesan berhasil dihapus", nil))
}
