package model

// Model di file ini adalah bentuk MENTAH record di CMS (Directus): nama field
// snake_case berbahasa Indonesia, persis seperti kolom collection-nya.
// Bentuk ramah-frontend ada di api.go dan dihasilkan oleh package transform.

// Status lomba.
const (
	LombaStatusOpen       = "open"
	LombaStatusClosed     = "closed"
	LombaStatusComingSoon = "coming-soon"
)

// Status pendaftaran (lomba maupun expo).
const (
	PendaftaranPending  = "pending"
	PendaftaranApproved = "approved"
	PendaftaranRejected = "rejected"
)

// Status expo.
const (
	ExpoStatusUpcoming = "upcoming"
	ExpoStatusOngoing  = "ongoing"
	ExpoStatusPast     = "past"
)

// Status prestasi.
const (
	PrestasiPending  = "pending"
	PrestasiVerified = "verified"
)

// Lomba adalah record kompetisi di collection "lomba".
type Lomba struct {
	ID                 int     `json:"id"`
	Judul              string  `json:"judul"`
	Slug               string  `json:"slug"`
	Kategori           string  `json:"kategori"`
	Tingkat            string  `json:"tingkat"`
	Penyelenggara      string  `json:"penyelenggara"`
	Deskripsi          string  `json:"deskripsi"`
	Deadline           string  `json:"deadline"`            // YYYY-MM-DD, boleh kosong
	TanggalPelaksanaan string  `json:"tanggal_pelaksanaan"` // YYYY-MM-DD
	BiayaPendaftaran   float64 `json:"biaya_pendaftaran"`
	LinkPendaftaran    string  `json:"link_pendaftaran"`
	PendaftaranDibuka  bool    `json:"pendaftaran_dibuka"`
	Status             string  `json:"status"` // open | closed | coming-soon
	Featured           bool    `json:"featured"`
	IsDeleted          bool    `json:"is_deleted"`
	Poster             string  `json:"poster"` // uuid asset, boleh kosong
}

// PendaftaranLomba adalah record pendaftar lomba di collection
// "pendaftaran_lomba". NIM dipakai sebagai kunci identitas pendaftar:
// satu NIM hanya boleh punya satu pendaftaran non-rejected per lomba.
type PendaftaranLomba struct {
	ID           int    `json:"id"`
	Lomba        int    `json:"lomba"`
	Nama         string `json:"nama"`
	NIM          string `json:"nim"`
	Email        string `json:"email"`
	NoHP         string `json:"no_hp"`
	Fakultas     string `json:"fakultas"`
	ProgramStudi string `json:"program_studi"`
	Status       string `json:"status"` // pending | approved | rejected
	DateCreated  string `json:"date_created"`
}

// Expo adalah record pameran di collection "expo".
type Expo struct {
	ID                  int     `json:"id"`
	Judul               string  `json:"judul"`
	Tema                string  `json:"tema"`
	TanggalMulai        string  `json:"tanggal_mulai"`
	TanggalSelesai      string  `json:"tanggal_selesai"` // boleh kosong (expo 1 hari)
	Lokasi              string  `json:"lokasi"`
	BiayaPartisipasi    float64 `json:"biaya_partisipasi"`
	PendaftaranDibuka   bool    `json:"pendaftaran_dibuka"`
	DeadlinePendaftaran string  `json:"deadline_pendaftaran"`
	MaxParticipants     int     `json:"max_participants"` // 0 = tanpa batas
	Status              string  `json:"status"`           // upcoming | ongoing | past
	IsDeleted           bool    `json:"is_deleted"`
	Poster              string  `json:"poster"`
}

// PendaftaranExpo adalah record tim pendaftar expo (1 ketua + max 3 anggota).
type PendaftaranExpo struct {
	ID              int    `json:"id"`
	Expo            int    `json:"expo"`
	NamaKetua       string `json:"nama_ketua"`
	NIMKetua        string `json:"nim_ketua"`
	Email           string `json:"email"`
	NoHP            string `json:"no_hp"`
	Anggota1Nama    string `json:"anggota1_nama"`
	Anggota1NIM     string `json:"anggota1_nim"`
	Anggota2Nama    string `json:"anggota2_nama"`
	Anggota2NIM     string `json:"anggota2_nim"`
	Anggota3Nama    string `json:"anggota3_nama"`
	Anggota3NIM     string `json:"anggota3_nim"`
	NamaProyek      string `json:"nama_proyek"`
	DeskripsiProyek string `json:"deskripsi_proyek"`
	LinkDemo        string `json:"link_demo"`
	Status          string `json:"status"`
	DateCreated     string `json:"date_created"`
}

// Prestasi adalah record prestasi mahasiswa di collection "prestasi".
type Prestasi struct {
	ID            int    `json:"id"`
	Judul         string `json:"judul"`
	NamaLomba     string `json:"nama_lomba"`
	Tingkat       string `json:"tingkat"`
	Peringkat     string `json:"peringkat"`
	Tanggal       string `json:"tanggal"`
	Sertifikat    string `json:"sertifikat"` // uuid asset
	NamaMahasiswa string `json:"nama_mahasiswa"`
	NIM           string `json:"nim"`
	Email         string `json:"email"`
	Status        string `json:"status"` // pending | verified
	VerifiedAt    string `json:"verified_at"`
	IsDeleted     bool   `json:"is_deleted"`
}

// PrestasiTim adalah anggota tim sebuah prestasi (collection "prestasi_tim").
type PrestasiTim struct {
	ID       int    `json:"id"`
	Prestasi int    `json:"prestasi"`
	Nama     string `json:"nama"`
	NIM      string `json:"nim"`
	IsKetua  bool   `json:"is_ketua"`
}

// CalendarEntry adalah record kalender personal / reminder ad-hoc
// (collection "calendar_entries"). Entry turunan (deadline lomba, rentang
// expo) TIDAK disimpan di sini, melainkan dihitung saat agregasi.
type CalendarEntry struct {
	ID             int    `json:"id"`
	Judul          string `json:"judul"`
	Tipe           string `json:"tipe"` // lomba | expo | deadline | event
	Tanggal        string `json:"tanggal"`
	TanggalSelesai string `json:"tanggal_selesai"`
	Waktu          string `json:"waktu"`
	Lokasi         string `json:"lokasi"`
	Deskripsi      string `json:"deskripsi"`
	NIM            string `json:"nim"`
	Pendaftaran    int    `json:"pendaftaran"` // id pendaftaran terkait, 0 jika tidak ada
	Lomba          int    `json:"lomba"`       // id lomba terkait, 0 jika tidak ada
}

// PesanKontak adalah pesan masuk dari form kontak (collection "pesan_kontak").
type PesanKontak struct {
	ID          int    `json:"id"`
	Tiket       string `json:"tiket"`
	Nama        string `json:"nama"`
	Email       string `json:"email"`
	Subjek      string `json:"subjek"`
	Pesan       string `json:"pesan"`
	Status      string `json:"status"` // read | unread
	IsDeleted   bool   `json:"is_deleted"`
	DateCreated string `json:"date_created"`
}

// ===== Konten statis (passthrough dengan fallback) =====

// FAQ di collection "faq".
type FAQ struct {
	ID         int    `json:"id"`
	Pertanyaan string `json:"pertanyaan"`
	Jawaban    string `json:"jawaban"`
	Kategori   string `json:"kategori"`
	Urutan     int    `json:"urutan"`
}

// Tip di collection "tips".
type Tip struct {
	ID       int    `json:"id"`
	Judul    string `json:"judul"`
	Konten   string `json:"konten"`
	Kategori string `json:"kategori"`
}

// Unduhan dipakai untuk collection "templates" dan "downloads"
// (struktur kolomnya sama: judul + deskripsi + file).
type Unduhan struct {
	ID        int    `json:"id"`
	Judul     string `json:"judul"`
	Deskripsi string `json:"deskripsi"`
	File      string `json:"file"` // uuid asset
	Kategori  string `json:"kategori"`
}

// Panduan di collection "panduan".
type Panduan struct {
	ID     int    `json:"id"`
	Judul  string `json:"judul"`
	Konten string `json:"konten"`
	Urutan int    `json:"urutan"`
}

// Resource di collection "resources" (tautan eksternal).
type Resource struct {
	ID        int    `json:"id"`
	Judul     string `json:"judul"`
	Deskripsi string `json:"deskripsi"`
	Link      string `json:"link"`
	Tipe      string `json:"tipe"`
}

// SiteSettings adalah singleton collection "site_settings".
type SiteSettings struct {
	NamaSitus    string `json:"nama_situs"`
	Deskripsi    string `json:"deskripsi"`
	EmailKontak  string `json:"email_kontak"`
	Telepon      string `json:"telepon"`
	Alamat       string `json:"alamat"`
	Instagram    string `json:"instagram"`
	TwitterX     string `json:"twitter_x"`
	LinkYoutube  string `json:"link_youtube"`
}
