package main

import (
	"bytes"
	"context"
	"log"

	"lomba-portal-backend/app/cms"
	"lomba-portal-backend/app/mailer"
	"lomba-portal-backend/app/repository"
	"lomba-portal-backend/app/service"
	"lomba-portal-backend/config"
	"lomba-portal-backend/database"
	"lomba-portal-backend/middleware"
	"lomba-portal-backend/routes"

	"github.com/gin-gonic/gin"
)

func main() {

	// =================================================================
	// LOAD ENV + CONFIG
	// =================================================================
	cfg := config.Load()

	// =================================================================
	// CMS CLIENT (DIRECTUS) + DB LAPORAN (OPSIONAL)
	// =================================================================
	cmsClient := cms.NewClient(cfg)

	db, err := database.InitDB(cfg)
	if err != nil {
		log.Fatalf("❌ Gagal koneksi database laporan: %v", err)
	}
	if db == nil {
		log.Println("ℹ️  Database laporan tidak dikonfigurasi, endpoint /api/admin/report dinonaktifkan")
	}

	// =================================================================
	// MAILER (SENDGRID JIKA ADA API KEY, SELAIN ITU CONSOLE)
	// =================================================================
	var mail mailer.Service
	if cfg.SendGridKey != "" {
		mail = mailer.NewSendGridService(cfg.SendGridKey, "Portal Lomba Mahasiswa", cfg.MailFrom)
	} else {
		log.Println("ℹ️  SENDGRID_API_KEY kosong, email reminder dicetak ke console")
		mail = mailer.NewConsoleService()
	}

	// =================================================================
	// REPOSITORIES
	// =================================================================
	lombaRepo := repository.NewLombaRepository(cmsClient)
	expoRepo := repository.NewExpoRepository(cmsClient)
	prestasiRepo := repository.NewPrestasiRepository(cmsClient)
	kontakRepo := repository.NewKontakRepository(cmsClient)
	calendarRepo := repository.NewCalendarRepository(cmsClient)
	contentRepo := repository.NewContentRepository(cmsClient)

	var reportRepo repository.ReportRepository
	if db != nil {
		reportRepo = repository.NewReportRepository(db)
	}

	// =================================================================
	// SERVICES
	// =================================================================
	uploader := func(ctx context.Context, filename, contentType string, data []byte) (string, error) {
		return cmsClient.UploadFile(ctx, filename, contentType, bytes.NewReader(data))
	}

	lombaService := service.NewLombaService(cfg, lombaRepo, calendarRepo)
	expoService := service.NewExpoService(cfg, expoRepo)
	prestasiService := service.NewPrestasiService(cfg, prestasiRepo, uploader)
	kontakService := service.NewKontakService(kontakRepo)
	calendarService := service.NewCalendarService(cfg, lombaRepo, expoRepo, calendarRepo)
	reminderService := service.NewReminderService(cfg, lombaRepo, calendarRepo, mail)
	searchService := service.NewSearchService(cfg, lombaRepo, expoRepo, prestasiRepo)
	contentService := service.NewContentService(contentRepo)
	authService := service.NewAuthService(cfg, cmsClient)
	reportService := service.NewReportService(reportRepo)

	// =================================================================
	// ROUTER
	// =================================================================
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()

	adminGuard := middleware.RequireAdminAPI(cfg, cmsClient)

	routes.LombaRoutes(r, lombaService, adminGuard)
	routes.ExpoRoutes(r, expoService, adminGuard)
	routes.PrestasiRoutes(r, prestasiService, adminGuard)
	routes.KontakRoutes(r, kontakService, adminGuard)
	routes.CalendarRoutes(r, calendarService, reminderService, adminGuard)
	routes.ContentRoutes(r, contentService, searchService)
	routes.AdminRoutes(r, authService, reportService, adminGuard)

	// Root endpoint (healthcheck sederhana)
	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "Lomba Portal API RUNNING",
			"version": "1.0.0",
		})
	})

	// =================================================================
	// START SERVER
	// =================================================================
	log.Println("🚀 Server running at http://localhost:" + cfg.AppPort)

	if err := r.Run(":" + cfg.AppPort); err != nil {
		log.Fatalf("❌ Gagal menjalankan server: %v", err)
	}
}
