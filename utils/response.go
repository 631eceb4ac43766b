package utils

import "lomba-portal-backend/app/model"

// APIResponse adalah format standar JSON yang akan diterima Frontend.
// Contoh sukses  : { "status": true,  "message": "Berhasil", "data": { ... } }
// Contoh gagal   : { "status": false, "message": "Gagal",    "errors": { ... } }
type APIResponse struct {
	Status     bool              `json:"status"`
	Message    string            `json:"message"`
	Data       interface{}       `json:"data,omitempty"`
	Errors     interface{}       `json:"errors,omitempty"` // bisa string / map field→pesan
	Pagination *model.Pagination `json:"pagination,omitempty"`
}

// BuildResponseSuccess digunakan saat request berhasil (HTTP 200/201).
func BuildResponseSuccess(message string, data interface{}) APIResponse {
	return APIResponse{
		Status:  true,
		Message: message,
		Data:    data,
	}
}

// BuildResponseList seperti BuildResponseSuccess tapi menyertakan info
// paginasi untuk endpoint list.
func BuildResponseList(message string, data interface{}, page, limit, total int) APIResponse {
	totalPages := 0
	if limit > 0 {
		totalPages = (total + limit - 1) / limit
	}
	return APIResponse{
		Status:  true,
		Message: message,
		Data:    data,
		Pagination: &model.Pagination{
			Page:       page,
			Limit:      limit,
			Total:      total,
			TotalPages: totalPages,
		},
	}
}

// BuildResponseFailed digunakan saat terjadi error (HTTP 400, 401, 404, 500).
// - message: pesan utama untuk user.
// - err    : detail error (string, atau map field→pesan untuk error validasi).
func BuildResponseFailed(message string, err interface{}, data interface{}) APIResponse {
	return APIResponse{
		Status:  false,
		Message: message,
		Errors:  err,
		Data:    data,
	}
}
