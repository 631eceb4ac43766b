// Package transform berisi fungsi mapping murni dari record mentah CMS ke
// bentuk response frontend. Tidak ada validasi di sini: input dianggap record
// CMS yang sudah well-formed.
package transform

import (
	"fmt"
	"strconv"
	"time"
)

// namaBulan adalah nama bulan Indonesia, index 1..12.
var namaBulan = [13]string{"",
	"Januari", "Februari", "Maret", "April", "Mei", "Juni",
	"Juli", "Agustus", "September", "Oktober", "November", "Desember",
}

// AssetURL menyusun URL asset CMS: <base>/assets/<id>[?width=w].
// Mengembalikan string kosong jika id kosong.
func AssetURL(baseURL, assetID string, width int) string {
	if assetID == "" {
		return ""
	}
	u := baseURL + "/assets/" + assetID
	if width > 0 {
		u += "?width=" + strconv.Itoa(width)
	}
	return u
}

// FormatTanggal memformat "2026-03-12" menjadi "12 Maret 2026".
// Tanggal yang tidak bisa diparse dikembalikan apa adanya.
func FormatTanggal(tanggal string) string {
	t, err := time.Parse("2006-01-02", tanggal)
	if err != nil {
		return tanggal
	}
	return fmt.Sprintf("%d %s %d", t.Day(), namaBulan[t.Month()], t.Year())
}

// FormatTanggalRange memformat rentang tanggal secara ringkas:
//   - end kosong atau sama dengan start → "12 Maret 2026"
//   - bulan+tahun sama                  → "12–14 Maret 2026"
//   - selain itu                        → "28 Maret 2026 - 2 April 2026"
func FormatTanggalRange(start, end string) string {
	if end == "" || end == start {
		return FormatTanggal(start)
	}
	ts, errS := time.Parse("2006-01-02", start)
	te, errE := time.Parse("2006-01-02", end)
	if errS != nil || errE != nil {
		return FormatTanggal(start)
	}
	if ts.Year() == te.Year() && ts.Month() == te.Month() {
		return fmt.Sprintf("%d–%d %s %d", ts.Day(), te.Day(), namaBulan[ts.Month()], ts.Year())
	}
	return FormatTanggal(start) + " - " + FormatTanggal(end)
}

// Tahun mengambil komponen tahun dari tanggal "YYYY-MM-DD"; 0 jika tak valid.
func Tahun(tanggal string) int {
	t, err := time.Parse("2006-01-02", tanggal)
	if err != nil {
		return 0
	}
	return t.Year()
}
