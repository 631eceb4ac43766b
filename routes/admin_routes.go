package routes

import (
	"lomba-portal-backend/app/service"

	"github.com/gin-gonic/gin"
)

// AdminRoutes mendaftarkan endpoint sesi admin dan laporan agregat.
func AdminRoutes(r *gin.Engine, auth service.AuthService, report service.ReportService, adminGuard gin.HandlerFunc) {
	admin := r.Group("/api/admin")
	{
		admin.POST("/login", auth.Login)
		admin.POST("/logout", auth.Logout)

		admin.GET("/me", adminGuard, auth.Me)
		admin.GET("/report", adminGuard, report.GetLaporan)
	}
}
