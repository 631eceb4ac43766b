package service

import (
	"errors"
	"net/http"

	"lomba-portal-backend/app/cms"
	"lomba-portal-backend/app/model"
	"lomba-portal-backend/app/repository"
	"lomba-portal-backend/utils"

	"github.com/gin-gonic/gin"
)

// ContentService menyajikan konten statis dari CMS dengan fallback hardcoded
// saat collection belum dibuat atau masih kosong.
type ContentService interface {
	GetFAQ(ctx *gin.Context)
	GetTips(ctx *gin.Context)
	GetTemplates(ctx *gin.Context)
	GetDownloads(ctx *gin.Context)
	GetPanduan(ctx *gin.Context)
	GetResources(ctx *gin.Context)
	GetSiteSettings(ctx *gin.Context)
}

type contentService struct {
	repo repository.ContentRepository
}

// NewContentService membuat instance service konten.
func NewContentService(repo repository.ContentRepository) ContentService {
	return &contentService{repo: repo}
}

func (s *contentService) GetFAQ(ctx *gin.Context) {
	var items []model.FAQ
	err := s.repo.ListInto(ctx.Request.Context(), "faq", "urutan", &items)
	serveList(ctx, "FAQ berhasil diambil", items, fallbackFAQ, err)
}

func (s *contentService) GetTips(ctx *gin.Context) {
	var items []model.Tip
	err := s.repo.ListInto(ctx.Request.Context(), "tips", "id", &items)
	serveList(ctx, "Tips berhasil diambil", items, fallbackTips, err)
}

func (s *contentService) GetTemplates(ctx *gin.Context) {
	var items []model.Unduhan
	err := s.repo.ListInto(ctx.Request.Context(), "templates", "judul", &items)
	serveList(ctx, "Template berhasil diambil", items, fallbackTemplates, err)
}

func (s *contentService) GetDownloads(ctx *gin.Context) {
	var items []model.Unduhan
	err := s.repo.ListInto(ctx.Request.Context(), "downloads", "judul", &items)
	serveList(ctx, "Unduhan berhasil diambil", items, fallbackDownloads, err)
}

func (s *contentService) GetPanduan(ctx *gin.Context) {
	var items []model.Panduan
	err := s.repo.ListInto(ctx.Request.Context(), "panduan", "urutan", &items)
	serveList(ctx, "Panduan berhasil diambil", items, fallbackPanduan, err)
}

func (s *contentService) GetResources(ctx *gin.Context) {
	var items []model.Resource
	err := s.repo.ListInto(ctx.Request.Context(), "resources", "judul", &items)
	serveList(ctx, "Resource berhasil diambil", items, fallbackResources, err)
}

// GetSiteSettings menyajikan singleton site_settings.
func (s *contentService) GetSiteSettings(ctx *gin.Context) {
	var settings model.SiteSettings
	err := s.repo.SingletonInto(ctx.Request.Context(), "site_settings", &settings)
	if pakaiFallback(err) || (err == nil && settings == (model.SiteSettings{})) {
		ctx.JSON(http.StatusOK, utils.BuildResponseSuccess("Pengaturan situs berhasil diambil", fallbackSiteSettings))
		return
	}
	if err != nil {
		respondCMSError(ctx, err, "Pengaturan situs tidak ditemukan")
		return
	}
	ctx.JSON(http.StatusOK, utils.BuildResponseSuccess("Pengaturan situs berhasil diambil", settings))
}

// serveList mengirim data CMS, atau fallback saat collection belum ada /
// kosong. Error lain tetap dilaporkan sebagai error.
func serveList[T any](ctx *gin.Context, message string, items, fallback []T, err error) {
	if pakaiFallback(err) || (err == nil && len(items) == 0) {
		ctx.JSON(http.StatusOK, utils.BuildResponseSuccess(message, fallback))
		return
	}
	if err != nil {
		respondCMSError(ctx, err, message)
		return
	}
	ctx.JSON(http.StatusOK, utils.BuildResponseSuccess(message, items))
}

func pakaiFallback(err error) bool {
	return errors.Is(err, cms.ErrCollectionMissing) || errors.Is(err, cms.ErrNotFound)
}
