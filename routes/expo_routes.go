package routes

import (
	"lomba-portal-backend/app/service"

	"github.com/gin-gonic/gin"
)

// ExpoRoutes mendaftarkan endpoint expo + pendaftaran tim.
func ExpoRoutes(r *gin.Engine, svc service.ExpoService, adminGuard gin.HandlerFunc) {
	expo := r.Group("/api/expo")
	{
		expo.GET("", svc.List)
		expo.GET("/:id", svc.Detail)
		expo.POST("/:id/register", svc.Register)

		expo.POST("", adminGuard, svc.Create)
		expo.PATCH("/:id", adminGuard, svc.Update)
		expo.DELETE("/:id", adminGuard, svc.Delete)
		expo.GET("/:id/register", adminGuard, svc.ListPendaftar)
	}
}
