package service

import (
	"log"
	"net/http"
	"strconv"
	"strings"
	"sync"

	"lomba-portal-backend/app/model"
	"lomba-portal-backend/app/repository"
	"lomba-portal-backend/config"
	"lomba-portal-backend/utils"

	"github.com/gin-gonic/gin"
)

const searchLimit = 10

// SearchService menangani pencarian lintas collection (lomba, expo, prestasi).
type SearchService interface {
	Search(ctx *gin.Context)
}

type searchService struct {
	cfg          *config.Config
	lombaRepo    repository.LombaRepository
	expoRepo     repository.ExpoRepository
	prestasiRepo repository.PrestasiRepository
}

// NewSearchService membuat instance service pencarian.
func NewSearchService(cfg *config.Config, lombaRepo repository.LombaRepository, expoRepo repository.ExpoRepository, prestasiRepo repository.PrestasiRepository) SearchService {
	return &searchService{
		cfg:          cfg,
		lombaRepo:    lombaRepo,
		expoRepo:     expoRepo,
		prestasiRepo: prestasiRepo,
	}
}

// Search menangani GET /api/search?q=&type=lomba|expo|prestasi|all.
// Sumber yang gagal hanya di-log; hasil sumber lain tetap dikembalikan.
func (s *searchService) Search(ctx *gin.Context) {
	q := strings.TrimSpace(ctx.Query("q"))
	if q == "" {
		ctx.JSON(http.StatusBadRequest,
			utils.BuildResponseFailed("Kata kunci pencarian wajib diisi", gin.H{"q": "wajib diisi"}, nil))
		return
	}
	tipe := ctx.DefaultQuery("type", "all")
	switch tipe {
	case "lomba", "expo", "prestasi", "all":
	default:
		ctx.JSON(http.StatusBadRequest,
			utils.BuildResponseFailed("Data tidak valid", gin.H{"type": "harus lomba, expo, prestasi, atau all"}, nil))
		return
	}

	rctx := ctx.Request.Context()
	var (
		wg       sync.WaitGroup
		lomba    []model.Lomba
		expo     []model.Expo
		prestasi []model.Prestasi
	)
	if tipe == "lomba" || tipe == "all" {
		wg.Add(1)
		go func() {
			defer wg.Done()
			var err error
			if lomba, err = s.lombaRepo.Search(rctx, q, searchLimit); err != nil {
				log.Printf("[SEARCH] sumber lomba gagal, dilewati: %v", err)
			}
		}()
	}
	if tipe == "expo" || tipe == "all" {
		wg.Add(1)
		go func() {
			defer wg.Done()
			var err error
			if expo, err = s.expoRepo.Search(rctx, q, searchLimit); err != nil {
				log.Printf("[SEARCH] sumber expo gagal, dilewati: %v", err)
			}
		}()
	}
	if tipe == "prestasi" || tipe == "all" {
		wg.Add(1)
		go func() {
			defer wg.Done()
			var err error
			if prestasi, err = s.prestasiRepo.Search(rctx, q, searchLimit); err != nil {
				log.Printf("[SEARCH] sumber prestasi gagal, dilewati: %v", err)
			}
		}()
	}
	wg.Wait()

	results := make([]model.SearchResult, 0, len(lomba)+len(expo)+len(prestasi))
	for _, l := range lomba {
		results = append(results, model.SearchResult{
			Tipe:  "lomba",
			ID:    l.ID,
			Judul: l.Judul,
			Sub:   l.Kategori,
			Link:  s.cfg.BaseURL + "/lomba/" + l.Slug,
		})
	}
	for _, e := range expo {
		results = append(results, model.SearchResult{
			Tipe:  "expo",
			ID:    e.ID,
			Judul: e.Judul,
			Sub:   e.Tema,
			Link:  s.cfg.BaseURL + "/expo/" + strconv.Itoa(e.ID),
		})
	}
	for _, p := range prestasi {
		results = append(results, model.SearchResult{
			Tipe:  "prestasi",
			ID:    p.ID,
			Judul: p.Judul,
			Sub:   p.NamaLomba,
			Link:  s.cfg.BaseURL + "/prestasi/" + strconv.Itoa(p.ID),
		})
	}

	ctx.JSON(http.StatusOK, utils.BuildResponseSuccess("Pencarian berhasil", gin.H{
		"query":   q,
		"type":    tipe,
		"total":   len(results),
		"results": results,
	}))
}
