package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/atinyakov/pakjobs/internal/app"
	"github.com/atinyakov/pakjobs/internal/catalog"
	"github.com/atinyakov/pakjobs/internal/models"
)

// JobService defines the listing operations required by the APIHandler.
type JobService interface {
	// Search returns the catalog filtered by f, in catalog order.
	Search(f models.Filters) []models.JobPosting
}

// APIHandler serves the JSON API.
type APIHandler struct {
	Board      Board
	JobService JobService
}

// JobsResponse is the body of GET /api/jobs.
type JobsResponse struct {
	Count int                 `json:"count"`
	Jobs  []models.JobPosting `json:"jobs"`
}

// CatalogResponse is the body of GET /api/catalog.
type CatalogResponse struct {
	Cities         []string `json:"cities"`
	FeaturedCities []string `json:"featuredCities"`
	Categories     []string `json:"categories"`
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

// Jobs handles GET /api/jobs?q=&city=&category=.
func (h *APIHandler) Jobs(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	jobs := h.JobService.Search(models.Filters{
		Query:    q.Get("q"),
		City:     q.Get("city"),
		Category: q.Get("category"),
	})
	writeJSON(w, JobsResponse{Count: len(jobs), Jobs: jobs})
}

// Catalog handles GET /api/catalog.
func (h *APIHandler) Catalog(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, CatalogResponse{
		Cities:         catalog.Cities(),
		FeaturedCities: catalog.FeaturedCities(),
		Categories:     catalog.Categories(),
	})
}

// Session handles GET /api/session, answering with the persisted layout.
func (h *APIHandler) Session(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.Board.Snapshot().Session)
}

// Apply handles POST /api/jobs/{id}/apply, answering with the gate decision.
func (h *APIHandler) Apply(w http.ResponseWriter, r *http.Request) {
	d, err := h.Board.Apply(chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, app.ErrJobNotFound) {
			http.Error(w, "job not found", http.StatusNotFound)
			return
		}
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, d)
}
