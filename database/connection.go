package database

import (
	"fmt"

	"lomba-portal-backend/config"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// InitDB membuka koneksi read-only (secara konvensi) ke database Postgres
// milik Directus untuk endpoint laporan admin. TIDAK ada AutoMigrate:
// skema sepenuhnya dikelola CMS, aplikasi ini hanya membaca.
//
// Mengembalikan (nil, nil) jika kredensial DB tidak dikonfigurasi;
// endpoint laporan akan dimatikan, fitur lain tetap jalan.
func InitDB(cfg *config.Config) (*gorm.DB, error) {
	if !cfg.HasDatabase() {
		return nil, nil
	}

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=Asia/Jakarta",
		cfg.DBHost,
		cfg.DBUser,
		cfg.DBPassword,
		cfg.DBName,
		cfg.DBPort,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("gagal koneksi ke postgres: %w", err)
	}

	return db, nil
}
