package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config menampung seluruh konfigurasi aplikasi yang dibaca SEKALI di startup.
// Semua handler/service menerima struct ini lewat dependency injection,
// tidak ada lagi os.Getenv yang tersebar di banyak file.
type Config struct {
	// Env adalah mode aplikasi: development / production.
	Env string

	// AppPort adalah port HTTP server (default 8080).
	AppPort string

	// DirectusURL adalah base URL CMS (tanpa trailing slash).
	DirectusURL string

	// DirectusToken adalah static token service-account untuk operasi item.
	DirectusToken string

	// BaseURL adalah base URL publik aplikasi sendiri (dipakai untuk link di
	// email reminder dan event kalender).
	BaseURL string

	// Timeout request keluar ke CMS.
	HTTPTimeout time.Duration

	// Database Postgres milik Directus, HANYA dipakai endpoint laporan admin
	// (query agregasi langsung). Boleh kosong: endpoint laporan dimatikan.
	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string

	// SendGrid untuk pengiriman email reminder. Kalau kosong, fallback ke
	// transport console (hanya log).
	SendGridKey string
	MailFrom    string

	// DevLogin mengaktifkan login admin lokal tanpa CMS. Ini OPT-IN lewat
	// ADMIN_DEV_LOGIN=true dan otomatis dimatikan saat Env == "production".
	DevLoginEnabled  bool
	DevLoginEmail    string
	DevLoginPassword string // bcrypt hash, bukan plaintext
	DevTokenSecret   string
}

// Load membaca .env (jika ada) lalu membangun Config dari environment.
// Panggil sekali di main.go.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  .env tidak ditemukan, menggunakan environment default")
	}

	cfg := &Config{
		Env:              getEnv("APP_ENV", "development"),
		AppPort:          getEnv("APP_PORT", "8080"),
		DirectusURL:      trimSlash(os.Getenv("DIRECTUS_URL")),
		DirectusToken:    os.Getenv("DIRECTUS_TOKEN"),
		BaseURL:          trimSlash(getEnv("BASE_URL", "http://localhost:3000")),
		HTTPTimeout:      15 * time.Second,
		DBHost:           os.Getenv("DB_HOST"),
		DBUser:           os.Getenv("DB_USER"),
		DBPassword:       os.Getenv("DB_PASSWORD"),
		DBName:           os.Getenv("DB_NAME"),
		DBPort:           getEnv("DB_PORT", "5432"),
		SendGridKey:      os.Getenv("SENDGRID_API_KEY"),
		MailFrom:         getEnv("MAIL_FROM", "noreply@lomba.kampus.ac.id"),
		DevLoginEmail:    getEnv("ADMIN_DEV_EMAIL", "admin@dev.local"),
		DevLoginPassword: os.Getenv("ADMIN_DEV_PASSWORD_HASH"),
		DevTokenSecret:   os.Getenv("ADMIN_DEV_TOKEN_SECRET"),
	}

	if sec, err := strconv.Atoi(os.Getenv("HTTP_TIMEOUT_SECONDS")); err == nil && sec > 0 {
		cfg.HTTPTimeout = time.Duration(sec) * time.Second
	}

	// Bypass login dev harus dinyalakan secara eksplisit, dan tidak pernah
	// aktif di production walaupun flag-nya diset.
	devLogin, _ := strconv.ParseBool(os.Getenv("ADMIN_DEV_LOGIN"))
	cfg.DevLoginEnabled = devLogin && !cfg.IsProduction()

	return cfg
}

// IsProduction true jika APP_ENV == production.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// HasDatabase true jika kredensial Postgres untuk laporan admin tersedia.
func (c *Config) HasDatabase() bool {
	return c.DBHost != "" && c.DBName != ""
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func trimSlash(s string) string {
	for len(s) > 0 && s[len(s)-1] == '/' {
		s = s[:len(s)-1]
	}
	return s
}
