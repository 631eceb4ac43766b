package service

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"
	"time"

	"lomba-portal-backend/app/model"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupSubmitRouter(repo *fakePrestasiRepo, uploader UploaderFunc) *gin.Engine {
	if uploader == nil {
		uploader = func(_ context.Context, _, _ string, _ []byte) (string, error) {
			return "asset-uuid", nil
		}
	}
	svc := NewPrestasiService(testConfig(), repo, uploader)
	r := gin.New()
	r.POST("/api/prestasi/submit", svc.Submit)
	return r
}

func patchJSON(t *testing.T, r *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPatch, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// Transisi status ke verified harus selalu mengeset verified_at ke waktu
// panggilan, termasuk saat status sudah verified. Status lain tidak boleh
// menyentuh verified_at.
func TestUpdatePrestasiVerifiedAt(t *testing.T) {
	repo := &fakePrestasiRepo{}
	svc := NewPrestasiService(testConfig(), repo, nil)
	r := gin.New()
	r.PATCH("/api/prestasi/:id", svc.Update)

	tests := []struct {
		name           string
		body           map[string]interface{}
		wantVerifiedAt bool
	}{
		{"verified mengeset verified_at", map[string]interface{}{"status": "verified"}, true},
		{"verified ulang tetap mengeset ulang", map[string]interface{}{"status": "verified"}, true},
		{"rejected tidak menyentuh verified_at", map[string]interface{}{"status": "rejected"}, false},
		{"update field lain tidak menyentuh verified_at", map[string]interface{}{"peringkat": "2"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := patchJSON(t, r, "/api/prestasi/5", tt.body)

			assert.Equal(t, http.StatusOK, w.Code)
			v, ada := repo.updatedFields["verified_at"]
			if !tt.wantVerifiedAt {
				assert.False(t, ada)
				return
			}
			require.True(t, ada)
			ts, ok := v.(string)
			require.True(t, ok)
			_, err := time.Parse(time.RFC3339, ts)
			assert.NoError(t, err)
		})
	}
}

type fileField struct {
	name        string
	contentType string
	data        []byte
}

func multipartRequest(t *testing.T, fields map[string]string, file *fileField) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	if file != nil {
		hdr := textproto.MIMEHeader{}
		hdr.Set("Content-Disposition", `form-data; name="sertifikat"; filename="`+file.name+`"`)
		hdr.Set("Content-Type", file.contentType)
		part, err := w.CreatePart(hdr)
		require.NoError(t, err)
		_, err = part.Write(file.data)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/prestasi/submit", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func formPrestasiValid() map[string]string {
	return map[string]string{
		"judul":         "Juara 1 Gemastik",
		"namaLomba":     "Gemastik XVIII",
		"tingkat":       "nasional",
		"peringkat":     "1",
		"tanggal":       "2026-08-20",
		"namaMahasiswa": "Budi Santoso",
		"nim":           "2110512001",
		"email":         "budi@student.ac.id",
	}
}

func TestSubmitPrestasiBerhasil(t *testing.T) {
	repo := &fakePrestasiRepo{}
	r := setupSubmitRouter(repo, nil)

	fields := formPrestasiValid()
	fields["tim[0].nama"] = "Sari"
	fields["tim[0].nim"] = "2110512002"
	req := multipartRequest(t, fields, &fileField{
		name: "sertifikat.pdf", contentType: "application/pdf", data: []byte("%PDF-1.4"),
	})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	require.NotNil(t, repo.createdFields)
	assert.Equal(t, model.PrestasiPending, repo.createdFields["status"])
	assert.Equal(t, "asset-uuid", repo.createdFields["sertifikat"])
	require.Len(t, repo.tim, 1)
	assert.Equal(t, "Sari", repo.tim[0].Nama)
}

func TestSubmitPrestasiTanpaFile(t *testing.T) {
	r := setupSubmitRouter(&fakePrestasiRepo{}, nil)

	req := multipartRequest(t, formPrestasiValid(), nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	errs, ok := decodeResponse(t, w).Errors.(map[string]interface{})
	require.True(t, ok)
	assert.Contains(t, errs, "sertifikat")
}

func TestSubmitPrestasiTipeFileDitolak(t *testing.T) {
	r := setupSubmitRouter(&fakePrestasiRepo{}, nil)

	req := multipartRequest(t, formPrestasiValid(), &fileField{
		name: "sertifikat.gif", contentType: "image/gif", data: []byte("GIF89a"),
	})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	errs := decodeResponse(t, w).Errors.(map[string]interface{})
	assert.Contains(t, errs, "sertifikat")
}

func TestSubmitPrestasiErrorTeksDanFileDigabung(t *testing.T) {
	r := setupSubmitRouter(&fakePrestasiRepo{}, nil)

	req := multipartRequest(t, map[string]string{"judul": "x"}, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	errs := decodeResponse(t, w).Errors.(map[string]interface{})
	assert.Contains(t, errs, "sertifikat")
	assert.Contains(t, errs, "namaLomba")
	assert.Contains(t, errs, "nim")
}
