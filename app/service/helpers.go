package service

import (
	"errors"
	"net/http"
	"strconv"

	"lomba-portal-backend/app/cms"
	"lomba-portal-backend/utils"

	"github.com/gin-gonic/gin"
)

// respondCMSError memetakan error sentinel CMS ke status HTTP + pesan user.
// notFoundMsg dipakai untuk 404 supaya pesannya spesifik per resource.
func respondCMSError(ctx *gin.Context, err error, notFoundMsg string) {
	switch {
	case errors.Is(err, cms.ErrNotFound):
		ctx.JSON(http.StatusNotFound,
			utils.BuildResponseFailed(notFoundMsg, "not_found", nil))
	case errors.Is(err, cms.ErrCollectionMissing):
		ctx.JSON(http.StatusInternalServerError,
			utils.BuildResponseFailed("Collection belum dibuat di CMS, hubungi administrator", err.Error(), nil))
	case errors.Is(err, cms.ErrForbidden):
		ctx.JSON(http.StatusInternalServerError,
			utils.BuildResponseFailed("Konfigurasi token CMS bermasalah, hubungi administrator", err.Error(), nil))
	default:
		ctx.JSON(http.StatusInternalServerError,
			utils.BuildResponseFailed("Terjadi kesalahan pada server", err.Error(), nil))
	}
}

// paramID mengambil path param :id sebagai int. Mengirim 400 sendiri jika
// bukan angka dan mengembalikan ok=false.
func paramID(ctx *gin.Context) (int, bool) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil || id <= 0 {
		ctx.JSON(http.StatusBadRequest,
			utils.BuildResponseFailed("ID tidak valid", "invalid_id", nil))
		return 0, false
	}
	return id, true
}

// queryInt membaca query param integer dengan default.
func queryInt(ctx *gin.Context, key string, def int) int {
	v := ctx.Query(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

// queryBool membaca query param boolean ("true"/"1").
func queryBool(ctx *gin.Context, key string) bool {
	v := ctx.Query(key)
	return v == "true" || v == "1"
}
