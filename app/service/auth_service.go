package service

import (
	"errors"
	"net/http"
	"time"

	"lomba-portal-backend/app/cms"
	"lomba-portal-backend/config"
	"lomba-portal-backend/utils"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

const (
	// CookieAdminToken menyimpan access token admin (dev token atau token CMS).
	CookieAdminToken = "admin_token"
	// CookieAdminRefresh menyimpan refresh token CMS.
	CookieAdminRefresh = "admin_refresh_token"
)

// AuthService menangani login/logout admin dan info sesi saat ini.
type AuthService interface {
	Login(ctx *gin.Context)
	Logout(ctx *gin.Context)
	Me(ctx *gin.Context)
}

type authService struct {
	cfg    *config.Config
	client *cms.Client
}

// NewAuthService membuat instance service auth admin.
func NewAuthService(cfg *config.Config, client *cms.Client) AuthService {
	return &authService{cfg: cfg, client: client}
}

// loginInput adalah DTO form login admin.
type loginInput struct {
	Email      string `json:"email" validate:"required,email_form"`
	Password   string `json:"password" validate:"required"`
	RememberMe bool   `json:"rememberMe"`
}

// Login menangani POST /api/admin/login.
// Jika dev login aktif dan kredensial cocok dengan pasangan dev lokal,
// server menerbitkan dev token tanpa menyentuh CMS. Selain itu kredensial
// diteruskan ke endpoint auth CMS.
func (s *authService) Login(ctx *gin.Context) {
	var input loginInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest,
			utils.BuildResponseFailed("Format request tidak valid", err.Error(), nil))
		return
	}
	if errs := utils.ValidateStruct(input); errs != nil {
		ctx.JSON(http.StatusBadRequest,
			utils.BuildResponseFailed("Data tidak valid", errs, nil))
		return
	}

	if s.cfg.DevLoginEnabled && s.cobaLoginDev(ctx, input) {
		return
	}

	tokens, err := s.client.Login(ctx.Request.Context(), input.Email, input.Password)
	if err != nil {
		if errors.Is(err, cms.ErrInvalidCredentials) {
			ctx.JSON(http.StatusUnauthorized,
				utils.BuildResponseFailed("Email atau password salah", "invalid_credentials", nil))
			return
		}
		respondCMSError(ctx, err, "Akun tidak ditemukan")
		return
	}

	accessTTL := 24 * time.Hour
	if input.RememberMe {
		accessTTL = 7 * 24 * time.Hour
	}
	s.setCookie(ctx, CookieAdminToken, tokens.AccessToken, accessTTL)
	s.setCookie(ctx, CookieAdminRefresh, tokens.RefreshToken, 7*24*time.Hour)

	ctx.JSON(http.StatusOK, utils.BuildResponseSuccess("Login berhasil", gin.H{
		"email":      input.Email,
		"rememberMe": input.RememberMe,
	}))
}

// cobaLoginDev memvalidasi pasangan kredensial dev lokal (password dibanding
// dengan hash bcrypt di konfigurasi). Return true jika response sudah ditulis.
func (s *authService) cobaLoginDev(ctx *gin.Context, input loginInput) bool {
	if input.Email != s.cfg.DevLoginEmail || s.cfg.DevLoginPassword == "" {
		return false
	}
	if err := bcrypt.CompareHashAndPassword([]byte(s.cfg.DevLoginPassword), []byte(input.Password)); err != nil {
		return false
	}

	token, err := utils.GenerateDevToken(input.Email, s.cfg.DevTokenSecret, 24*time.Hour)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError,
			utils.BuildResponseFailed("Dev login belum dikonfigurasi lengkap", err.Error(), nil))
		return true
	}

	s.setCookie(ctx, CookieAdminToken, token, 24*time.Hour)
	ctx.JSON(http.StatusOK, utils.BuildResponseSuccess("Login berhasil (mode development)", gin.H{
		"email": input.Email,
		"dev":   true,
	}))
	return true
}

// Logout menangani POST /api/admin/logout: kedua cookie dihapus tanpa peduli
// valid atau tidak.
func (s *authService) Logout(ctx *gin.Context) {
	s.clearCookie(ctx, CookieAdminToken)
	s.clearCookie(ctx, CookieAdminRefresh)
	ctx.JSON(http.StatusOK, utils.BuildResponseSuccess("Logout berhasil", nil))
}

// Me menangani GET /api/admin/me (di belakang middleware admin): identitas
// sesi aktif untuk header dashboard.
func (s *authService) Me(ctx *gin.Context) {
	token, err := ctx.Cookie(CookieAdminToken)
	if err != nil || token == "" {
		ctx.JSON(http.StatusUnauthorized,
			utils.BuildResponseFailed("Sesi tidak ditemukan", "unauthorized", nil))
		return
	}

	if utils.IsDevToken(token) {
		claims, err := utils.ValidateDevToken(token, s.cfg.DevTokenSecret)
		if err != nil {
			ctx.JSON(http.StatusUnauthorized,
				utils.BuildResponseFailed("Sesi tidak valid", "unauthorized", nil))
			return
		}
		ctx.JSON(http.StatusOK, utils.BuildResponseSuccess("Sesi aktif", gin.H{
			"email": claims.Email,
			"dev":   true,
		}))
		return
	}

	user, err := s.client.Me(ctx.Request.Context(), token)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized,
			utils.BuildResponseFailed("Sesi tidak valid", "unauthorized", nil))
		return
	}
	ctx.JSON(http.StatusOK, utils.BuildResponseSuccess("Sesi aktif", gin.H{
		"id":    user.ID,
		"email": user.Email,
		"nama":  user.FirstName + " " + user.LastName,
	}))
}

func (s *authService) setCookie(ctx *gin.Context, name, value string, ttl time.Duration) {
	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(name, value, int(ttl.Seconds()), "/", "", s.cfg.IsProduction(), true)
}

func (s *authService) clearCookie(ctx *gin.Context, name string) {
	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(name, "", -1, "/", "", s.cfg.IsProduction(), true)
}
