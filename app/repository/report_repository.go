package repository

import (
	"gorm.io/gorm"
)

// StatusCount adalah 1 baris agregasi label → jumlah.
type StatusCount struct {
	Label string `json:"label"`
	Total int64  `json:"total"`
}

// LaporanAdmin adalah payload lengkap endpoint laporan admin.
type LaporanAdmin struct {
	TotalLomba          int64         `json:"totalLomba"`
	TotalExpo           int64         `json:"totalExpo"`
	TotalPrestasi       int64         `json:"totalPrestasi"`
	TotalPendaftarLomba int64         `json:"totalPendaftarLomba"`
	LombaPerStatus      []StatusCount `json:"lombaPerStatus"`
	LombaPerKategori    []StatusCount `json:"lombaPerKategori"`
	PendaftarPerStatus  []StatusCount `json:"pendaftarPerStatus"`
	PrestasiPerTahun    []StatusCount `json:"prestasiPerTahun"`
	PrestasiPerTingkat  []StatusCount `json:"prestasiPerTingkat"`
}

// ReportRepository menjalankan query agregasi SQL LANGSUNG ke database
// Postgres milik Directus. Ini satu-satunya jalur akses relasional di
// aplikasi; semua operasi lain lewat REST API CMS.
type ReportRepository interface {
	BuildLaporan() (*LaporanAdmin, error)
}

type reportRepository struct {
	db *gorm.DB
}

// NewReportRepository membuat instance repository laporan.
func NewReportRepository(db *gorm.DB) ReportRepository {
	return &reportRepository{db: db}
}

// BuildLaporan menyusun seluruh agregasi laporan. Tabel yang diquery adalah
// tabel collection yang dikelola Directus, jadi tidak ada AutoMigrate di sini:
// skema sepenuhnya milik CMS.
func (r *reportRepository) BuildLaporan() (*LaporanAdmin, error) {
	out := &LaporanAdmin{}

	counts := []struct {
		dst   *int64
		query string
	}{
		{&out.TotalLomba, `SELECT COUNT(*) FROM lomba WHERE is_deleted IS NOT TRUE`},
		{&out.TotalExpo, `SELECT COUNT(*) FROM expo WHERE is_deleted IS NOT TRUE`},
		{&out.TotalPrestasi, `SELECT COUNT(*) FROM prestasi WHERE is_deleted IS NOT TRUE`},
		{&out.TotalPendaftarLomba, `SELECT COUNT(*) FROM pendaftaran_lomba`},
	}
	for _, c := range counts {
		if err := r.db.Raw(c.query).Scan(c.dst).Error; err != nil {
			return nil, err
		}
	}

	groups := []struct {
		dst   *[]StatusCount
		query string
	}{
		{&out.LombaPerStatus, `
			SELECT status AS label, COUNT(*) AS total
			FROM lomba WHERE is_deleted IS NOT TRUE
			GROUP BY status ORDER BY total DESC`},
		{&out.LombaPerKategori, `
			SELECT kategori AS label, COUNT(*) AS total
			FROM lomba WHERE is_deleted IS NOT TRUE
			GROUP BY kategori ORDER BY total DESC`},
		{&out.PendaftarPerStatus, `
			SELECT status AS label, COUNT(*) AS total
			FROM pendaftaran_lomba
			GROUP BY status ORDER BY total DESC`},
		{&out.PrestasiPerTahun, `
			SELECT EXTRACT(YEAR FROM tanggal)::text AS label, COUNT(*) AS total
			FROM prestasi WHERE is_deleted IS NOT TRUE AND tanggal IS NOT NULL
			GROUP BY label ORDER BY label DESC`},
		{&out.PrestasiPerTingkat, `
			SELECT tingkat AS label, COUNT(*) AS total
			FROM prestasi WHERE is_deleted IS NOT TRUE
			GROUP BY tingkat ORDER BY total DESC`},
	}
	for _, g := range groups {
		if err := r.db.Raw(g.query).Scan(g.dst).Error; err != nil {
			return nil, err
		}
	}

	return out, nil
}
