package cms

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"lomba-portal-backend/config"
)

// Error sentinel hasil remap response CMS. Handler memetakan ini ke status
// HTTP yang tepat (404/401/500) dengan pesan yang bisa ditindaklanjuti.
var (
	ErrNotFound           = errors.New("record tidak ditemukan di CMS")
	ErrCollectionMissing  = errors.New("collection belum dibuat di CMS")
	ErrForbidden          = errors.New("token CMS ditolak atau permission kurang")
	ErrInvalidCredentials = errors.New("email atau password salah")
)

// Client adalah adapter tipis ke Directus. Tidak ada retry, tidak ada circuit
// breaker; timeout mengikuti config.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

// NewClient membuat CMS client dari Config.
func NewClient(cfg *config.Config) *Client {
	return &Client{
		baseURL: cfg.DirectusURL,
		token:   cfg.DirectusToken,
		http:    &http.Client{Timeout: cfg.HTTPTimeout},
	}
}

// Meta adalah bagian meta dari envelope Directus.
type Meta struct {
	TotalCount  int `json:"total_count"`
	FilterCount int `json:"filter_count"`
}

// envelope adalah bentuk umum response Directus: { "data": ..., "meta": ... }
type envelope struct {
	Data json.RawMessage `json:"data"`
	Meta *Meta           `json:"meta,omitempty"`
}

type apiError struct {
	Errors []struct {
		Message    string `json:"message"`
		Extensions struct {
			Code string `json:"code"`
		} `json:"extensions"`
	} `json:"errors"`
}

// List menjalankan GET /items/<collection> dan meng-decode array data ke out
// (pointer ke slice). Meta bernilai non-nil hanya jika q.WithMeta.
func (c *Client) List(ctx context.Context, q Query, out interface{}) (*Meta, error) {
	path := "/items/" + q.Collection
	if enc := q.Encode(); enc != "" {
		path += "?" + enc
	}
	env, err := c.do(ctx, http.MethodGet, path, nil, "")
	if err != nil {
		return nil, err
	}
	if out != nil {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return nil, fmt.Errorf("decode data %s: %w", q.Collection, err)
		}
	}
	return env.Meta, nil
}

// First mengambil 1 item pertama hasil query. ErrNotFound jika kosong.
func (c *Client) First(ctx context.Context, q Query, out interface{}) error {
	q.Limit = 1
	q.WithMeta = false
	var raw []json.RawMessage
	if _, err := c.List(ctx, q, &raw); err != nil {
		return err
	}
	if len(raw) == 0 {
		return ErrNotFound
	}
	return json.Unmarshal(raw[0], out)
}

// GetByID menjalankan GET /items/<collection>/<id>.
func (c *Client) GetByID(ctx context.Context, collection string, id interface{}, fields []string, out interface{}) error {
	path := fmt.Sprintf("/items/%s/%v", collection, id)
	if len(fields) > 0 {
		path += "?fields=" + strings.Join(fields, ",")
	}
	env, err := c.do(ctx, http.MethodGet, path, nil, "")
	if err != nil {
		return err
	}
	return json.Unmarshal(env.Data, out)
}

// GetSingleton menjalankan GET /items/<collection> untuk collection singleton
// (Directus mengembalikan objek, bukan array).
func (c *Client) GetSingleton(ctx context.Context, collection string, out interface{}) error {
	env, err := c.do(ctx, http.MethodGet, "/items/"+collection, nil, "")
	if err != nil {
		return err
	}
	return json.Unmarshal(env.Data, out)
}

// Count mengembalikan jumlah item yang lolos filter (limit 0 + meta).
func (c *Client) Count(ctx context.Context, collection string, filter Filter) (int, error) {
	q := Query{Collection: collection, Filter: filter, Fields: []string{"id"}, Limit: 1, WithMeta: true}
	meta, err := c.List(ctx, q, nil)
	if err != nil {
		return 0, err
	}
	if meta == nil {
		return 0, fmt.Errorf("CMS tidak mengembalikan meta untuk %s", collection)
	}
	return meta.FilterCount, nil
}

// Create menjalankan POST /items/<collection>. out boleh nil.
func (c *Client) Create(ctx context.Context, collection string, body interface{}, out interface{}) error {
	env, err := c.do(ctx, http.MethodPost, "/items/"+collection, body, "")
	if err != nil {
		return err
	}
	if out != nil && len(env.Data) > 0 {
		return json.Unmarshal(env.Data, out)
	}
	return nil
}

// Update menjalankan PATCH /items/<collection>/<id>.
func (c *Client) Update(ctx context.Context, collection string, id interface{}, body interface{}, out interface{}) error {
	env, err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/items/%s/%v", collection, id), body, "")
	if err != nil {
		return err
	}
	if out != nil && len(env.Data) > 0 {
		return json.Unmarshal(env.Data, out)
	}
	return nil
}

// Delete menjalankan DELETE /items/<collection>/<id> (hapus permanen).
func (c *Client) Delete(ctx context.Context, collection string, id interface{}) error {
	_, err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/items/%s/%v", collection, id), nil, "")
	return err
}

// AuthUser adalah payload minimal dari GET /users/me.
type AuthUser struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// Me memvalidasi bearer token ke endpoint identitas CMS.
func (c *Client) Me(ctx context.Context, token string) (*AuthUser, error) {
	env, err := c.do(ctx, http.MethodGet, "/users/me", nil, token)
	if err != nil {
		return nil, err
	}
	var u AuthUser
	if err := json.Unmarshal(env.Data, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// AuthTokens adalah hasil POST /auth/login.
type AuthTokens struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	Expires      int64  `json:"expires"`
}

// Login menukar kredensial admin dengan access+refresh token CMS.
func (c *Client) Login(ctx context.Context, email, password string) (*AuthTokens, error) {
	body := map[string]string{"email": email, "password": password}
	env, err := c.do(ctx, http.MethodPost, "/auth/login", body, "")
	if err != nil {
		return nil, err
	}
	var t AuthTokens
	if err := json.Unmarshal(env.Data, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

// UploadFile mengirim 1 file ke POST /files dan mengembalikan id asset.
func (c *Client) UploadFile(ctx context.Context, filename, contentType string, r io.Reader) (string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("file", filename)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(part, r); err != nil {
		return "", err
	}
	if err := w.Close(); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/files", &buf)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", w.FormDataContentType())
	c.setAuth(req, "")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("upload ke CMS gagal: %w", err)
	}
	defer resp.Body.Close()

	env, err := parseResponse(resp)
	if err != nil {
		return "", err
	}
	var file struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(env.Data, &file); err != nil {
		return "", err
	}
	return file.ID, nil
}

// do menjalankan 1 request JSON ke CMS dan mem-parse envelope-nya.
// overrideToken dipakai endpoint identitas (validasi token admin, bukan token
// service-account).
func (c *Client) do(ctx context.Context, method, path string, body interface{}, overrideToken string) (*envelope, error) {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	c.setAuth(req, overrideToken)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request ke CMS gagal: %w", err)
	}
	defer resp.Body.Close()

	return parseResponse(resp)
}

func (c *Client) setAuth(req *http.Request, overrideToken string) {
	token := c.token
	if overrideToken != "" {
		token = overrideToken
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
}

// parseResponse membaca envelope atau me-remap error Directus ke sentinel.
func parseResponse(resp *http.Response) (*envelope, error) {
	raw, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return nil, err
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		// DELETE dan beberapa endpoint mengembalikan body kosong (204).
		if len(raw) == 0 {
			return &envelope{}, nil
		}
		var env envelope
		if err := json.Unmarshal(raw, &env); err != nil {
			return nil, fmt.Errorf("response CMS bukan JSON valid: %w", err)
		}
		return &env, nil
	}

	return nil, remapError(resp.StatusCode, raw)
}

// remapError mengenali pola error Directus yang umum supaya pesan yang sampai
// ke operator bisa ditindaklanjuti (collection belum ada, permission kurang).
func remapError(status int, raw []byte) error {
	var apiErr apiError
	_ = json.Unmarshal(raw, &apiErr)

	for _, e := range apiErr.Errors {
		switch e.Extensions.Code {
		case "FORBIDDEN", "INVALID_TOKEN", "TOKEN_EXPIRED":
			return ErrForbidden
		case "INVALID_CREDENTIALS":
			return ErrInvalidCredentials
		case "RECORD_NOT_FOUND", "ROUTE_NOT_FOUND":
			return ErrNotFound
		}
		msg := strings.ToLower(e.Message)
		if strings.Contains(msg, "collection") && (strings.Contains(msg, "doesn't exist") || strings.Contains(msg, "does not exist") || strings.Contains(msg, "invalid")) {
			return ErrCollectionMissing
		}
		if strings.Contains(msg, "permission") {
			return ErrForbidden
		}
	}

	switch status {
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusUnauthorized, http.StatusForbidden:
		return ErrForbidden
	}
	return fmt.Errorf("CMS menjawab status %d: %s", status, strings.TrimSpace(string(raw)))
}
