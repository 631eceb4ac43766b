package routes

import (
	"lomba-portal-backend/app/service"

	"github.com/gin-gonic/gin"
)

// PrestasiRoutes mendaftarkan endpoint galeri prestasi. Submit publik
// (mahasiswa melaporkan prestasinya sendiri), sisanya moderasi admin.
func PrestasiRoutes(r *gin.Engine, svc service.PrestasiService, adminGuard gin.HandlerFunc) {
	prestasi := r.Group("/api/prestasi")
	{
		prestasi.GET("", svc.List)
		prestasi.GET("/:id", svc.Detail)
		prestasi.POST("/submit", svc.Submit)

		prestasi.POST("", adminGuard, svc.Create)
		prestasi.PATCH("/:id", adminGuard, svc.Update)
		prestasi.DELETE("/:id", adminGuard, svc.Delete)
	}
}
