package service

import "lomba-portal-backend/app/model"

// Payload statis yang disajikan ketika collection konten belum dibuat di CMS
// atau masih kosong, supaya frontend tidak pernah menerima halaman hampa.

var fallbackFAQ = []model.FAQ{
	{ID: 1, Pertanyaan: "Bagaimana cara mendaftar lomba?", Jawaban: "Buka halaman detail lomba lalu klik tombol Daftar dan isi formulir dengan data diri yang valid.", Kategori: "pendaftaran", Urutan: 1},
	{ID: 2, Pertanyaan: "Apakah pendaftaran dikenakan biaya?", Jawaban: "Tergantung lombanya. Biaya pendaftaran (jika ada) tercantum di halaman detail masing-masing lomba.", Kategori: "pendaftaran", Urutan: 2},
	{ID: 3, Pertanyaan: "Bagaimana cara melaporkan prestasi?", Jawaban: "Gunakan menu Submit Prestasi, lengkapi data lomba dan unggah sertifikat (PDF/JPG/PNG, maksimal 5 MB).", Kategori: "prestasi", Urutan: 3},
	{ID: 4, Pertanyaan: "Kapan prestasi saya diverifikasi?", Jawaban: "Tim admin memverifikasi laporan prestasi maksimal 3 hari kerja setelah dikirim.", Kategori: "prestasi", Urutan: 4},
}

var fallbackTips = []model.Tip{
	{ID: 1, Judul: "Baca ketentuan lomba sampai tuntas", Konten: "Banyak peserta gugur administrasi karena melewatkan syarat kecil. Baca guidebook dua kali sebelum mendaftar.", Kategori: "persiapan"},
	{ID: 2, Judul: "Siapkan berkas jauh hari", Konten: "Scan KTM, surat rekomendasi, dan pas foto sebaiknya sudah siap sebelum H-3 deadline.", Kategori: "persiapan"},
	{ID: 3, Judul: "Latihan presentasi dengan timer", Konten: "Juri menilai manajemen waktu. Latih presentasi dengan durasi nyata beberapa kali bersama tim.", Kategori: "kompetisi"},
}

var fallbackTemplates = []model.Unduhan{
	{ID: 1, Judul: "Template Proposal Lomba", Deskripsi: "Kerangka proposal standar untuk lomba karya tulis dan business plan.", Kategori: "proposal"},
	{ID: 2, Judul: "Template Surat Rekomendasi", Deskripsi: "Format surat rekomendasi dosen pembimbing yang bisa langsung diisi.", Kategori: "administrasi"},
}

var fallbackDownloads = []model.Unduhan{
	{ID: 1, Judul: "Panduan Pendanaan Delegasi", Deskripsi: "Alur pengajuan bantuan dana untuk delegasi lomba tingkat nasional dan internasional.", Kategori: "pendanaan"},
}

var fallbackPanduan = []model.Panduan{
	{ID: 1, Judul: "Alur Pendaftaran Lomba", Konten: "1. Pilih lomba di katalog. 2. Isi formulir pendaftaran. 3. Tunggu email konfirmasi. 4. Pantau status di kalender.", Urutan: 1},
	{ID: 2, Judul: "Alur Pelaporan Prestasi", Konten: "1. Buka menu Submit Prestasi. 2. Isi data lomba dan tim. 3. Unggah sertifikat. 4. Tunggu verifikasi admin.", Urutan: 2},
}

var fallbackResources = []model.Resource{
	{ID: 1, Judul: "Pusat Prestasi Nasional", Deskripsi: "Portal resmi lomba dan kompetisi Kemdikbudristek.", Link: "https://pusatprestasinasional.kemdikbud.go.id", Tipe: "situs"},
	{ID: 2, Judul: "Simbelmawa", Deskripsi: "Informasi program kreativitas mahasiswa (PKM).", Link: "https://simbelmawa.kemdikbud.go.id", Tipe: "situs"},
}

var fallbackSiteSettings = model.SiteSettings{
	NamaSitus:   "Portal Lomba Mahasiswa",
	Deskripsi:   "Pusat informasi lomba, expo, dan prestasi mahasiswa.",
	EmailKontak: "lomba@kampus.ac.id",
}
