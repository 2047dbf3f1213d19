package handler

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/dg4329-hash/menumap/internal/match"
	"github.com/dg4329-hash/menumap/internal/model"
)

const (
	defaultSearchLimit = 8
	maxSearchLimit     = 25
)

// SearchHandler handles prompt search HTTP requests.
type SearchHandler struct {
	searcher match.Searcher
	logger   zerolog.Logger
}

// NewSearchHandler creates a new search handler.
func NewSearchHandler(searcher match.Searcher, logger zerolog.Logger) *SearchHandler {
	return &SearchHandler{
		searcher: searcher,
		logger:   logger.With().Str("handler", "search").Logger(),
	}
}

// Search handles POST /api/search requests.
func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, r, http.StatusMethodNotAllowed, "", "method not allowed", h.logger)
		return
	}

	var req model.SearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid request body", h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeEmptyQuery, err.Error(), h.logger)
		return
	}

	limit := req.Limit
	if limit <= 0 {
		limit = defaultSearchLimit
	}
	if limit > maxSearchLimit {
		limit = maxSearchLimit
	}

	results, err := h.searcher.Search(r.Context(), req.Query, limit, "")
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, model.ErrCodeStoreUnavailable, "failed to search menu", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, model.SearchResponse{
		Query:      req.Query,
		Results:    results,
		TotalFound: len(results),
	})
}
