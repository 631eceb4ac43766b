package service

import (
	"context"
	"io"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"lomba-portal-backend/app/model"
	"lomba-portal-backend/app/repository"
	"lomba-portal-backend/app/transform"
	"lomba-portal-backend/config"
	"lomba-portal-backend/utils"

	"github.com/gin-gonic/gin"
)

// Batas upload sertifikat prestasi.
const (
	maxSertifikatBytes = 5 << 20 // 5 MB
)

// Tipe file sertifikat yang diterima.
var tipeSertifikatDiterima = map[string]bool{
	"application/pdf": true,
	"image/jpeg":      true,
	"image/png":       true,
}

// PrestasiService menangani endpoint prestasi: list/detail publik, CRUD
// admin, submit publik (multipart dengan upload sertifikat), dan verifikasi.
type PrestasiService interface {
	List(ctx *gin.Context)
	Detail(ctx *gin.Context)
	Create(ctx *gin.Context)
	Update(ctx *gin.Context)
	Delete(ctx *gin.Context)
	Submit(ctx *gin.Context)
}

type prestasiService struct {
	cfg      *config.Config
	repo     repository.PrestasiRepository
	uploader UploaderFunc
}

// UploaderFunc meng-upload 1 file sertifikat dan mengembalikan id asset CMS.
// Biasanya membungkus cms.Client.UploadFile; dipisah supaya gampang di-stub
// dari test.
type UploaderFunc func(ctx context.Context, filename, contentType string, data []byte) (string, error)

// NewPrestasiService membuat instance service prestasi. uploader biasanya
// membungkus cms.Client.UploadFile.
func NewPrestasiService(cfg *config.Config, repo repository.PrestasiRepository, uploader UploaderFunc) PrestasiService {
	return &prestasiService{cfg: cfg, repo: repo, uploader: uploader}
}

// List menangani GET /api/prestasi.
func (s *prestasiService) List(ctx *gin.Context) {
	f := repository.PrestasiFilter{
		Page:           queryInt(ctx, "page", 1),
		Limit:          queryInt(ctx, "limit", 10),
		Status:         ctx.Query("status"),
		Tingkat:        ctx.Query("tingkat"),
		Tahun:          queryInt(ctx, "tahun", 0),
		NIM:            ctx.Query("nim"),
		Search:         ctx.Query("search"),
		IncludeDeleted: queryBool(ctx, "includeDeleted"),
	}

	items, total, err := s.repo.List(ctx.Request.Context(), f)
	if err != nil {
		respondCMSError(ctx, err, "Prestasi tidak ditemukan")
		return
	}

	ctx.JSON(http.StatusOK, utils.BuildResponseList(
		"Daftar prestasi berhasil diambil",
		transform.PrestasiListToResponse(items, s.cfg.DirectusURL),
		f.Page, f.Limit, total,
	))
}

// Detail menangani GET /api/prestasi/:id (termasuk anggota tim).
func (s *prestasiService) Detail(ctx *gin.Context) {
	id, ok := paramID(ctx)
	if !ok {
		return
	}

	rctx := ctx.Request.Context()
	prestasi, err := s.repo.FindByID(rctx, id)
	if err != nil {
		respondCMSError(ctx, err, "Prestasi tidak ditemukan")
		return
	}

	tim, err := s.repo.ListTim(rctx, id)
	if err != nil {
		respondCMSError(ctx, err, "Prestasi tidak ditemukan")
		return
	}

	ctx.JSON(http.StatusOK, utils.BuildResponseSuccess(
		"Detail prestasi berhasil diambil",
		transform.PrestasiToResponse(*prestasi, tim, s.cfg.DirectusURL),
	))
}

// Create menangani POST /api/prestasi (admin).
func (s *prestasiService) Create(ctx *gin.Context) {
	fields, ok := bindAdminFields(ctx)
	if !ok {
		return
	}

	prestasi, err := s.repo.Create(ctx.Request.Context(), fields)
	if err != nil {
		respondCMSError(ctx, err, "Prestasi tidak ditemukan")
		return
	}

	ctx.JSON(http.StatusCreated, utils.BuildResponseSuccess(
		"Prestasi berhasil dibuat",
		transform.PrestasiToResponse(*prestasi, nil, s.cfg.DirectusURL),
	))
}

// Update menangani PATCH /api/prestasi/:id (admin).
// Transisi status ke verified SELALU mengeset verified_at ke waktu panggilan,
// termasuk ketika status sudah verified (verified_at ikut tertimpa; perilaku
// ini disengaja dipertahankan).
func (s *prestasiService) Update(ctx *gin.Context) {
	id, ok := paramID(ctx)
	if !ok {
		return
	}
	fields, ok := bindAdminFields(ctx)
	if !ok {
		return
	}

	if status, ada := fields["status"]; ada && status == model.PrestasiVerified {
		fields["verified_at"] = time.Now().Format(time.RFC3339)
	}

	prestasi, err := s.repo.Update(ctx.Request.Context(), id, fields)
	if err != nil {
		respondCMSError(ctx, err, "Prestasi tidak ditemukan")
		return
	}

	ctx.JSON(http.StatusOK, utils.BuildResponseSuccess(
		"Prestasi berhasil diperbarui",
		transform.PrestasiToResponse(*prestasi, nil, s.cfg.DirectusURL),
	))
}

// Delete menangani DELETE /api/prestasi/:id (admin), soft delete by default.
func (s *prestasiService) Delete(ctx *gin.Context) {
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
		respondCMSError(ctx, err, "Prestasi tidak ditemukan")
		return
	}

	ctx.JSON(http.StatusOK, utils.BuildResponseSuccess("Prestasi berhasil dihapus", nil))
}

// submitPrestasiInput adalah field teks form submit prestasi (multipart).
type submitPrestasiInput struct {
	Judul         string `json:"judul" validate:"required"`
	NamaLomba     string `json:"namaLomba" validate:"required"`
	Tingkat       string `json:"tingkat" validate:"required"`
	Peringkat     string `json:"peringkat" validate:"required"`
	Tanggal       string `json:"tanggal" validate:"required"`
	NamaMahasiswa string `json:"namaMahasiswa" validate:"required"`
	NIM           string `json:"nim" validate:"required,nim"`
	Email         string `json:"email" validate:"required,email_form"`
}

// Submit menangani POST /api/prestasi/submit: multipart form dengan file
// sertifikat (wajib, maksimal 5 MB, PDF/JPEG/PNG). Prestasi masuk dengan
// status pending sampai diverifikasi admin.
func (s *prestasiService) Submit(ctx *gin.Context) {
	input := submitPrestasiInput{
		Judul:         ctx.PostForm("judul"),
		NamaLomba:     ctx.PostForm("namaLomba"),
		Tingkat:       ctx.PostForm("tingkat"),
		Peringkat:     ctx.PostForm("peringkat"),
		Tanggal:       ctx.PostForm("tanggal"),
		NamaMahasiswa: ctx.PostForm("namaMahasiswa"),
		NIM:           ctx.PostForm("nim"),
		Email:         ctx.PostForm("email"),
	}

	errs := utils.ValidateStruct(input)
	if errs == nil {
		errs = map[string]string{}
	}

	fileHeader, err := ctx.FormFile("sertifikat")
	switch {
	case err != nil:
		errs["sertifikat"] = "wajib diunggah"
	case fileHeader.Size > maxSertifikatBytes:
		errs["sertifikat"] = "ukuran file maksimal 5 MB"
	default:
		if ct := contentTypeFile(fileHeader.Header.Get("Content-Type")); !tipeSertifikatDiterima[ct] {
			errs["sertifikat"] = "format file harus PDF, JPEG, atau PNG"
		}
	}

	if len(errs) > 0 {
		ctx.JSON(http.StatusBadRequest,
			utils.BuildResponseFailed("Form prestasi belum lengkap", errs, nil))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError,
			utils.BuildResponseFailed("Gagal membaca file sertifikat", err.Error(), nil))
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxSertifikatBytes+1))
	if err != nil {
		ctx.JSON(http.StatusInternalServerError,
			utils.BuildResponseFailed("Gagal membaca file sertifikat", err.Error(), nil))
		return
	}

	assetID, err := s.uploader(ctx.Request.Context(), fileHeader.Filename, fileHeader.Header.Get("Content-Type"), data)
	if err != nil {
		respondCMSError(ctx, err, "Prestasi tidak ditemukan")
		return
	}

	fields := map[string]interface{}{
		"judul":          input.Judul,
		"nama_lomba":     input.NamaLomba,
		"tingkat":        input.Tingkat,
		"peringkat":      input.Peringkat,
		"tanggal":        input.Tanggal,
		"sertifikat":     assetID,
		"nama_mahasiswa": input.NamaMahasiswa,
		"nim":            input.NIM,
		"email":          input.Email,
		"status":         model.PrestasiPending,
	}
	prestasi, err := s.repo.Create(ctx.Request.Context(), fields)
	if err != nil {
		respondCMSError(ctx, err, "Prestasi tidak ditemukan")
		return
	}

	// Anggota tim opsional: dikirim sebagai field form berulang
	// tim[0].nama / tim[0].nim dan seterusnya.
	anggota := bacaTimForm(ctx)
	if len(anggota) > 0 {
		if err := s.repo.CreateTim(ctx.Request.Context(), prestasi.ID, anggota); err != nil {
			// Prestasi sudah tersimpan; kegagalan insert tim tidak
			// menggagalkan submit.
			log.Printf("[PRESTASI] gagal menyimpan tim untuk prestasi %d: %v", prestasi.ID, err)
		}
	}

	ctx.JSON(http.StatusCreated, utils.BuildResponseSuccess(
		"Prestasi berhasil dikirim, menunggu verifikasi",
		transform.PrestasiToResponse(*prestasi, nil, s.cfg.DirectusURL),
	))
}

// bacaTimForm membaca slot tim dari form multipart. Ketua (is_ketua) adalah
// mahasiswa pengirim sendiri, jadi hanya anggota tambahan yang dibaca di sini.
func bacaTimForm(ctx *gin.Context) []model.AnggotaTim {
	var out []model.AnggotaTim
	for i := 0; i < 4; i++ {
		prefix := "tim[" + strconv.Itoa(i) + "]"
		nama := ctx.PostForm(prefix + ".nama")
		nim := ctx.PostForm(prefix + ".nim")
		if nama == "" && nim == "" {
			break
		}
		out = append(out, model.AnggotaTim{Nama: nama, NIM: nim})
	}
	return out
}

// contentTypeFile membuang parameter charset dari header Content-Type.
func contentTypeFile(ct string) string {
	if i := strings.Index(ct, ";"); i >= 0 {
		ct = ct[:i]
	}
	return strings.TrimSpace(strings.ToLower(ct))
}
