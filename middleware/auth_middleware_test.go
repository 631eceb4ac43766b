package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"lomba-portal-backend/app/cms"
	"lomba-portal-backend/config"
	"lomba-portal-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// newCMSStub menjalankan server CMS palsu yang menerima hanya 1 token admin.
func newCMSStub(t *testing.T, validToken string) (*cms.Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/users/me" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if r.Header.Get("Authorization") != "Bearer "+validToken {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"errors":[{"message":"Invalid token","extensions":{"code":"INVALID_TOKEN"}}]}`))
			return
		}
		w.Write([]byte(`{"data":{"id":"u1","email":"admin@kampus.ac.id"}}`))
	}))
	client := cms.NewClient(&config.Config{
		DirectusURL: srv.URL,
		HTTPTimeout: 5 * time.Second,
	})
	return client, srv
}

func setupProtectedAPI(cfg *config.Config, client *cms.Client) *gin.Engine {
	r := gin.New()
	r.GET("/api/admin/ping", RequireAdminAPI(cfg, client), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"pong": true})
	})
	return r
}

func doGET(r *gin.Engine, path, cookie string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: "admin_token", Value: cookie})
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequireAdminAPITanpaCookie(t *testing.T) {
	client, srv := newCMSStub(t, "cms-token")
	defer srv.Close()

	r := setupProtectedAPI(&config.Config{}, client)
	w := doGET(r, "/api/admin/ping", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAdminAPITokenCMSValid(t *testing.T) {
	client, srv := newCMSStub(t, "cms-token")
	defer srv.Close()

	r := setupProtectedAPI(&config.Config{}, client)
	w := doGET(r, "/api/admin/ping", "cms-token")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireAdminAPITokenCMSDitolak(t *testing.T) {
	client, srv := newCMSStub(t, "cms-token")
	defer srv.Close()

	r := setupProtectedAPI(&config.Config{}, client)
	w := doGET(r, "/api/admin/ping", "token-palsu")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAdminAPIDevToken(t *testing.T) {
	client, srv := newCMSStub(t, "cms-token")
	defer srv.Close()

	secret := "rahasia-dev"
	token, err := utils.GenerateDevToken("admin@dev.local", secret, time.Hour)
	require.NoError(t, err)

	tests := []struct {
		name     string
		cfg      *config.Config
		cookie   string
		wantCode int
	}{
		{
			name:     "diterima saat dev login aktif",
			cfg:      &config.Config{Env: "development", DevLoginEnabled: true, DevTokenSecret: secret},
			cookie:   token,
			wantCode: http.StatusOK,
		},
		{
			name:     "ditolak saat dev login mati",
			cfg:      &config.Config{Env: "development", DevTokenSecret: secret},
			cookie:   token,
			wantCode: http.StatusUnauthorized,
		},
		{
			name: "ditolak di production meski flag menyala",
			cfg: &config.Config{
				Env: "production", DevLoginEnabled: true, DevTokenSecret: secret,
			},
			cookie:   token,
			wantCode: http.StatusUnauthorized,
		},
		{
			name:     "ditolak jika signature tidak cocok",
			cfg:      &config.Config{Env: "development", DevLoginEnabled: true, DevTokenSecret: "secret-lain"},
			cookie:   token,
			wantCode: http.StatusUnauthorized,
		},
		{
			name:     "prefix dev dengan isi sembarang ditolak",
			cfg:      &config.Config{Env: "development", DevLoginEnabled: true, DevTokenSecret: secret},
			cookie:   utils.DevTokenPrefix + "bukan-jwt",
			wantCode: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := setupProtectedAPI(tt.cfg, client)
			w := doGET(r, "/api/admin/ping", tt.cookie)
			assert.Equal(t, tt.wantCode, w.Code)
		})
	}
}

func TestRequireAdminPageRedirect(t *testing.T) {
	client, srv := newCMSStub(t, "cms-token")
	defer srv.Close()

	r := gin.New()
	r.GET("/admin/dashboard", RequireAdminPage(&config.Config{}, client), func(c *gin.Context) {
		c.String(http.StatusOK, "dashboard")
	})

	w := doGET(r, "/admin/dashboard", "")
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/admin/login?redirect=%2Fadmin%2Fdashboard", w.Header().Get("Location"))
}

func TestRequireAdminPageTokenValidLolos(t *testing.T) {
	client, srv := newCMSStub(t, "cms-token")
	defer srv.Close()

	r := gin.New()
	r.GET("/admin/dashboard", RequireAdminPage(&config.Config{}, client), func(c *gin.Context) {
		c.String(http.StatusOK, "dashboard")
	})

	w := doGET(r, "/admin/dashboard", "cms-token")
	assert.Equal(t, http.StatusOK, w.Code)
}
