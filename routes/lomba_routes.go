package routes

import (
	"lomba-portal-backend/app/service"

	"github.com/gin-gonic/gin"
)

// LombaRoutes mendaftarkan endpoint katalog lomba + pendaftarannya.
// Pendaftaran peserta bersifat publik; create/update/delete dan daftar
// pendaftar hanya untuk admin.
func LombaRoutes(r *gin.Engine, svc service.LombaService, adminGuard gin.HandlerFunc) {
	lomba := r.Group("/api/lomba")
	{
		lomba.GET("", svc.List)
		lomba.GET("/:id", svc.Detail)
		lomba.POST("/:id/daftar", svc.Daftar)

		lomba.POST("", adminGuard, svc.Create)
		lomba.PATCH("/:id", adminGuard, svc.Update)
		lomba.DELETE("/:id", adminGuard, svc.Delete)
		lomba.GET("/:id/daftar", adminGuard, svc.ListPendaftar)
	}
}
