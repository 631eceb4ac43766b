package utils

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Regex format form publik. Email sengaja memakai pola longgar yang sama
// dengan yang dipakai frontend, bukan validasi RFC penuh.
var (
	emailRegex   = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	nimRegex     = regexp.MustCompile(`^\d+$`)
	teleponRegex = regexp.MustCompile(`^[0-9+\-\s()]+$`)
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// Key error memakai nama json field supaya frontend bisa langsung
	// menempelkan pesan ke input yang salah.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	_ = v.RegisterValidation("email_form", func(fl validator.FieldLevel) bool {
		return IsEmailValid(fl.Field().String())
	})
	_ = v.RegisterValidation("nim", func(fl validator.FieldLevel) bool {
		return IsNIMValid(fl.Field().String())
	})
	_ = v.RegisterValidation("telepon", func(fl validator.FieldLevel) bool {
		return IsTeleponValid(fl.Field().String())
	})
	return v
}

// ValidateStruct memvalidasi DTO form dan mengembalikan map field→pesan berisi
// SEMUA pelanggaran sekaligus, bukan satu per satu. Field yang kosong hanya
// mendapat pesan "wajib diisi"; cek format baru jalan untuk field yang terisi
// (perilaku bawaan chain tag validator: required gagal → tag berikutnya skip).
func ValidateStruct(s interface{}) map[string]string {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return map[string]string{"_": err.Error()}
	}

	out := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		out[fe.Field()] = pesanValidasi(fe)
	}
	return out
}

func pesanValidasi(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "wajib diisi"
	case "email_form":
		return "format email tidak valid"
	case "nim":
		return "NIM harus berupa angka"
	case "telepon":
		return "format nomor HP tidak valid"
	case "max":
		return "terlalu panjang"
	default:
		return "tidak valid"
	}
}

// IsEmailValid / IsNIMValid / IsTeleponValid adalah cek format yang dipakai
// tag validator di atas dan cek di luar konteks struct (misal field anggota
// tim yang opsional).
func IsEmailValid(s string) bool   { return emailRegex.MatchString(s) }
func IsNIMValid(s string) bool     { return nimRegex.MatchString(s) }
func IsTeleponValid(s string) bool { return teleponRegex.MatchString(s) }
