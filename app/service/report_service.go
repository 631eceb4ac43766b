package service

import (
	"net/http"

	"lomba-portal-backend/app/repository"
	"lomba-portal-backend/utils"

	"github.com/gin-gonic/gin"
)

// ReportService menyajikan laporan agregat admin dari query SQL langsung.
type ReportService interface {
	GetLaporan(ctx *gin.Context)
}

type reportService struct {
	repo repository.ReportRepository
}

// NewReportService membuat instance service laporan. repo boleh nil saat
// koneksi database tidak dikonfigurasi; endpoint lalu menjawab 503.
func NewReportService(repo repository.ReportRepository) ReportService {
	return &reportService{repo: repo}
}

// GetLaporan menangani GET /api/admin/report.
func (s *reportService) GetLaporan(ctx *gin.Context) {
	if s.repo == nil {
		ctx.JSON(http.StatusServiceUnavailable,
			utils.BuildResponseFailed("Laporan tidak tersedia: koneksi database belum dikonfigurasi", "report_unavailable", nil))
		return
	}

	laporan, err := s.repo.BuildLaporan()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError,
			utils.BuildResponseFailed("Gagal menyusun laporan", err.Error(), nil))
		return
	}
	ctx.JSON(http.StatusOK, utils.BuildResponseSuccess("Laporan berhasil disusun", laporan))
}
