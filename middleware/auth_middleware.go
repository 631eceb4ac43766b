package middleware

import (
	"net/http"
	"net/url"

	"lomba-portal-backend/app/cms"
	"lomba-portal-backend/config"
	"lomba-portal-backend/utils"

	"github.com/gin-gonic/gin"
)

const cookieAdminToken = "admin_token"

// cekTokenAdmin memvalidasi token admin dari cookie. Token ber-prefix dev
// hanya diterima jika dev login diaktifkan eksplisit DAN aplikasi tidak
// berjalan di production; selain itu token harus lolos endpoint identitas CMS.
func cekTokenAdmin(c *gin.Context, cfg *config.Config, client *cms.Client) bool {
	token, err := c.Cookie(cookieAdminToken)
	if err != nil || token == "" {
		return false
	}

	if utils.IsDevToken(token) {
		if !cfg.DevLoginEnabled || cfg.IsProduction() {
			return false
		}
		_, err := utils.ValidateDevToken(token, cfg.DevTokenSecret)
		return err == nil
	}

	_, err = client.Me(c.Request.Context(), token)
	return err == nil
}

// RequireAdminAPI melindungi endpoint API admin: token tidak valid → 401 JSON.
func RequireAdminAPI(cfg *config.Config, client *cms.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !cekTokenAdmin(c, cfg, client) {
			c.JSON(http.StatusUnauthorized,
				utils.BuildResponseFailed("Sesi admin tidak valid, silakan login ulang", "unauthorized", nil))
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireAdminPage melindungi halaman admin: token tidak valid → redirect ke
// halaman login dengan path asal dibawa di query redirect. Belum ada route
// halaman server-rendered yang memakainya; dashboard admin masih dilayani
// frontend terpisah lewat endpoint /api yang dijaga RequireAdminAPI.
func RequireAdminPage(cfg *config.Config, client *cms.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !cekTokenAdmin(c, cfg, client) {
			c.Redirect(http.StatusFound,
				"/admin/login?redirect="+url.QueryEscape(c.Request.URL.Path))
			c.Abort()
			return
		}
		c.Next()
	}
}
