package utils

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DevTokenPrefix adalah prefix token admin mode development. Middleware
// menolak token ber-prefix ini kecuali dev login diaktifkan secara eksplisit
// dan aplikasi TIDAK berjalan di production.
const DevTokenPrefix = "dev_token_"

// DevTokenClaims adalah isi token dev login: cukup email admin lokal.
type DevTokenClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// GenerateDevToken membuat token admin lokal: "dev_token_" + JWT HS256.
// Token tetap ditandatangani supaya cookie dev yang dipalsukan pun ditolak.
func GenerateDevToken(email, secret string, ttl time.Duration) (string, error) {
	if secret == "" {
		return "", errors.New("ADMIN_DEV_TOKEN_SECRET belum diset")
	}
	claims := DevTokenClaims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Subject:   email,
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", err
	}
	return DevTokenPrefix + signed, nil
}

// IsDevToken mengecek apakah token memakai prefix dev.
func IsDevToken(token string) bool {
	return strings.HasPrefix(token, DevTokenPrefix)
}

// ValidateDevToken memverifikasi JWT di belakang prefix dev dan mengembalikan
// claims-nya jika valid.
func ValidateDevToken(token, secret string) (*DevTokenClaims, error) {
	if secret == "" {
		return nil, errors.New("ADMIN_DEV_TOKEN_SECRET belum diset")
	}
	if !IsDevToken(token) {
		return nil, errors.New("bukan token dev")
	}
	raw := strings.TrimPrefix(token, DevTokenPrefix)

	parsed, err := jwt.ParseWithClaims(raw, &DevTokenClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := parsed.Claims.(*DevTokenClaims)
	if !ok || !parsed.Valid {
		return nil, errors.New("token dev tidak valid")
	}
	return claims, nil
}
