package routes

import (
	"lomba-portal-backend/app/service"

	"github.com/gin-gonic/gin"
)

// KontakRoutes mendaftarkan endpoint form kontak. Kirim pesan publik,
// membaca dan mengelola pesan hanya admin.
func KontakRoutes(r *gin.Engine, svc service.KontakService, adminGuard gin.HandlerFunc) {
	kontak := r.Group("/api/kontak")
	{
		kontak.POST("", svc.Submit)

		kontak.GET("", adminGuard, svc.List)
		kontak.GET("/:id", adminGuard, svc.Detail)
		kontak.PATCH("/:id", adminGuard, svc.UpdateStatus)
		kontak.DELETE("/:id", adminGuard, svc.Delete)
	}
}
