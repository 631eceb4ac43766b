package routes

import (
	"lomba-portal-backend/app/service"

	"github.com/gin-gonic/gin"
)

// ContentRoutes mendaftarkan endpoint konten statis (passthrough CMS dengan
// fallback) dan pencarian lintas collection.
func ContentRoutes(r *gin.Engine, content service.ContentService, search service.SearchService) {
	r.GET("/api/faq", content.GetFAQ)
	r.GET("/api/tips", content.GetTips)
	r.GET("/api/templates", content.GetTemplates)
	r.GET("/api/downloads", content.GetDownloads)
	r.GET("/api/panduan", content.GetPanduan)
	r.GET("/api/resources", content.GetResources)
	r.GET("/api/site-settings", content.GetSiteSettings)

	r.GET("/api/search", search.Search)
}
