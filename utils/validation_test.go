package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type formDaftar struct {
	Nama  string `json:"nama" validate:"required"`
	NIM   string `json:"nim" validate:"required,nim"`
	Email string `json:"email" validate:"required,email_form"`
	NoHP  string `json:"noHp" validate:"required,telepon"`
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name       string
		input      formDaftar
		wantFields []string
	}{
		{
			name:  "valid",
			input: formDaftar{Nama: "Budi Santoso", NIM: "2110512001", Email: "budi@student.ac.id", NoHP: "+62 812-3456-7890"},
		},
		{
			name:       "semua kosong",
			input:      formDaftar{},
			wantFields: []string{"nama", "nim", "email", "noHp"},
		},
		{
			name:       "nim berisi huruf",
			input:      formDaftar{Nama: "Budi", NIM: "21A0512", Email: "budi@student.ac.id", NoHP: "0812345678"},
			wantFields: []string{"nim"},
		},
		{
			name:       "email tanpa domain",
			input:      formDaftar{Nama: "Budi", NIM: "2110512001", Email: "budi@", NoHP: "0812345678"},
			wantFields: []string{"email"},
		},
		{
			name:       "telepon berisi huruf",
			input:      formDaftar{Nama: "Budi", NIM: "2110512001", Email: "budi@student.ac.id", NoHP: "08xx"},
			wantFields: []string{"noHp"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := ValidateStruct(tt.input)
			if len(tt.wantFields) == 0 {
				assert.Nil(t, errs)
				return
			}
			assert.Len(t, errs, len(tt.wantFields))
			for _, f := range tt.wantFields {
				assert.Contains(t, errs, f, "field %s harus ada di map error", f)
			}
		})
	}
}

func TestValidateStructPakaiNamaJSON(t *testing.T) {
	// Key map error harus nama tag json (noHp), bukan nama field Go (NoHP).
	errs := ValidateStruct(formDaftar{Nama: "Budi", NIM: "123", Email: "a@b.co", NoHP: ""})
	assert.Contains(t, errs, "noHp")
	assert.NotContains(t, errs, "NoHP")
}

func TestIsEmailValid(t *testing.T) {
	assert.True(t, IsEmailValid("budi@student.ac.id"))
	assert.False(t, IsEmailValid("budi@student"))
	assert.False(t, IsEmailValid("budi student@ac.id"))
}

func TestIsNIMValid(t *testing.T) {
	assert.True(t, IsNIMValid("2110512001"))
	assert.False(t, IsNIMValid(""))
	assert.False(t, IsNIMValid("21-10512"))
}
