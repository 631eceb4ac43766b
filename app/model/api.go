package model

// DTO di file ini adalah bentuk yang dikirim ke frontend: camelCase, sebagian
// nama tetap bahasa Indonesia (judul, kategori) karena UI memang memakainya,
// sebagian berbahasa Inggris untuk field turunan (isFree, posterUrl).

// LombaResponse adalah bentuk lomba untuk frontend.
type LombaResponse struct {
	ID                 int     `json:"id"`
	Judul              string  `json:"judul"`
	Slug               string  `json:"slug"`
	Kategori           string  `json:"kategori"`
	Tingkat            string  `json:"tingkat"`
	Penyelenggara      string  `json:"penyelenggara"`
	Deskripsi          string  `json:"deskripsi"`
	Deadline           string  `json:"deadline"`
	TanggalPelaksanaan string  `json:"tanggalPelaksanaan"`
	Biaya              float64 `json:"biaya"`
	IsFree             bool    `json:"isFree"`
	LinkPendaftaran    string  `json:"linkPendaftaran"`
	PendaftaranDibuka  bool    `json:"pendaftaranDibuka"`
	Status             string  `json:"status"`
	Featured           bool    `json:"featured"`
	PosterURL          string  `json:"posterUrl"`
}

// PendaftaranLombaResponse adalah bentuk pendaftar lomba untuk admin.
type PendaftaranLombaResponse struct {
	ID            int    `json:"id"`
	LombaID       int    `json:"lombaId"`
	Nama          string `json:"nama"`
	NIM           string `json:"nim"`
	Email         string `json:"email"`
	NoHP          string `json:"noHp"`
	Fakultas      string `json:"fakultas"`
	ProgramStudi  string `json:"programStudi"`
	Status        string `json:"status"`
	TanggalDaftar string `json:"tanggalDaftar"`
}

// ExpoResponse adalah bentuk expo untuk frontend.
type ExpoResponse struct {
	ID                  int     `json:"id"`
	Judul               string  `json:"judul"`
	Tema                string  `json:"tema"`
	TanggalMulai        string  `json:"tanggalMulai"`
	TanggalSelesai      string  `json:"tanggalSelesai,omitempty"`
	TanggalTampil       string  `json:"tanggalTampil"` // rentang tanggal terformat, mis. "12–14 Maret 2026"
	Lokasi              string  `json:"lokasi"`
	Biaya               float64 `json:"biaya"`
	IsFree              bool    `json:"isFree"`
	PendaftaranDibuka   bool    `json:"pendaftaranDibuka"`
	DeadlinePendaftaran string  `json:"deadlinePendaftaran"`
	MaxParticipants     int     `json:"maxParticipants"`
	Status              string  `json:"status"`
	PosterURL           string  `json:"posterUrl"`
}

// AnggotaTim adalah 1 anggota tim pada response pendaftaran expo / prestasi.
type AnggotaTim struct {
	Nama    string `json:"nama"`
	NIM     string `json:"nim"`
	IsKetua bool   `json:"isKetua"`
}

// PendaftaranExpoResponse adalah bentuk pendaftar expo untuk admin.
type PendaftaranExpoResponse struct {
	ID              int          `json:"id"`
	ExpoID          int          `json:"expoId"`
	Email           string       `json:"email"`
	NoHP            string       `json:"noHp"`
	Tim             []AnggotaTim `json:"tim"`
	NamaProyek      string       `json:"namaProyek"`
	DeskripsiProyek string       `json:"deskripsiProyek"`
	LinkDemo        string       `json:"linkDemo"`
	Status          string       `json:"status"`
	TanggalDaftar   string       `json:"tanggalDaftar"`
}

// PrestasiResponse adalah bentuk prestasi untuk frontend.
type PrestasiResponse struct {
	ID            int          `json:"id"`
	Judul         string       `json:"judul"`
	NamaLomba     string       `json:"namaLomba"`
	Tingkat       string       `json:"tingkat"`
	Peringkat     string       `json:"peringkat"`
	Tanggal       string       `json:"tanggal"`
	Tahun         int          `json:"tahun"` // diturunkan dari tanggal
	SertifikatURL string       `json:"sertifikatUrl"`
	NamaMahasiswa string       `json:"namaMahasiswa"`
	NIM           string       `json:"nim"`
	Status        string       `json:"status"`
	VerifiedAt    string       `json:"verifiedAt,omitempty"`
	Tim           []AnggotaTim `json:"tim"`
}

// CalendarEvent adalah bentuk terpadu 1 event kalender hasil agregasi tiga
// sumber. ID diberi prefix sumber supaya tidak bentrok: lomba-3, expo-1, cal-9.
type CalendarEvent struct {
	ID        string `json:"id"`
	Judul     string `json:"judul"`
	Tipe      string `json:"tipe"` // lomba | expo | deadline | event
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate,omitempty"`
	Waktu     string `json:"waktu,omitempty"`
	Lokasi    string `json:"lokasi"`
	Deskripsi string `json:"deskripsi"`
	Link      string `json:"link"`
	IsUrgent  bool   `json:"isUrgent"`
}

// KontakResponse adalah bentuk pesan kontak untuk admin.
type KontakResponse struct {
	ID      int    `json:"id"`
	Tiket   string `json:"tiket"`
	Nama    string `json:"nama"`
	Email   string `json:"email"`
	Subjek  string `json:"subjek"`
	Pesan   string `json:"pesan"`
	Status  string `json:"status"`
	Tanggal string `json:"tanggal"`
}

// SearchResult adalah 1 baris hasil pencarian lintas koleksi.
type SearchResult struct {
	Tipe  string `json:"tipe"` // lomba | expo | prestasi
	ID    int    `json:"id"`
	Judul string `json:"judul"`
	Sub   string `json:"sub"` // kategori / tema / nama lomba
	Link  string `json:"link"`
}

// Pagination dikirim bersama response list.
type Pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}
