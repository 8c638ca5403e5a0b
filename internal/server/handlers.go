package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/honeycarbs/career-hunter/internal/domain"
	"github.com/honeycarbs/career-hunter/internal/domain/job"
	"github.com/honeycarbs/career-hunter/pkg/logging"
)

const maxBodyBytes = 1 << 20

// SearchRequest is the JSON body of POST /api/search
type SearchRequest struct {
	Role     string `json:"role"`
	Salary   string `json:"salary"`
	Country  string `json:"country,omitempty"`
	Location string `json:"location,omitempty"`
	WorkType string `json:"work_type,omitempty"`
	Limit    *int   `json:"limit,omitempty"`
}

// Handler serves the REST API on top of the search service
type Handler struct {
	svc    job.Service
	logger *logging.Logger
}

// NewHandler returns a configured Handler
func NewHandler(svc job.Service, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Handler{svc: svc, logger: logger}
}

// RegisterRoutes mounts the REST routes on mux
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/search", h.search)
	mux.HandleFunc("DELETE /api/cache", h.clearCache)
	mux.HandleFunc("GET /health", h.health)
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
}

func (h *Handler) search(w http.ResponseWriter, r *http.Request) {
	var body SearchRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&body); err != nil {
		jsonError(w, "request body must be a JSON object", http.StatusUnprocessableEntity)
		return
	}

	q, err := body.query()
	if err != nil {
		h.writeSearchError(w, err)
		return
	}

	jobs, err := h.svc.Search(r.Context(), q)
	if err != nil {
		h.writeSearchError(w, err)
		return
	}
	if jobs == nil {
		jobs = []domain.JobListing{}
	}

	jsonOK(w, jobs)
}

func (b SearchRequest) query() (domain.SearchQuery, error) {
	wt, err := domain.ParseWorkType(b.WorkType)
	if err != nil {
		return domain.SearchQuery{}, err
	}

	q := domain.SearchQuery{
		Role:     b.Role,
		Country:  b.Country,
		Location: b.Location,
		Salary:   b.Salary,
		WorkType: wt,
	}
	if b.Limit != nil {
		// an explicit zero must be rejected rather than replaced by the default
		if *b.Limit < domain.MinLimit {
			return q, fmt.Errorf("%w: limit must be between %d and %d (got %d)",
				domain.ErrInvalidQuery, domain.MinLimit, domain.MaxLimit, *b.Limit)
		}
		q.Limit = *b.Limit
	}
	return q, nil
}

func (h *Handler) writeSearchError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidFormat):
		jsonError(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, domain.ErrInvalidQuery):
		jsonError(w, err.Error(), http.StatusUnprocessableEntity)
	default:
		h.logger.Error("search failed", "err", err)
		jsonError(w, "internal error", http.StatusInternalServerError)
	}
}

func (h *Handler) clearCache(w http.ResponseWriter, _ *http.Request) {
	jsonOK(w, map[string]int{"cleared": h.svc.ClearCache()})
}

func (h *Handler) health(w http.ResponseWriter, _ *http.Request) {
	jsonOK(w, map[string]string{"status": "ok"})
}

func jsonOK(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(v)
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(map[string]string{"detail": msg})
}
