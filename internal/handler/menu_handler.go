package handler

import (
	"net/http"

	"github.com/rs/zerolog"

	"github.com/dg4329-hash/menumap/internal/model"
	"github.com/dg4329-hash/menumap/internal/repository"
	"github.com/dg4329-hash/menumap/internal/tools"
)

// MenuHandler handles menu metadata requests: stats, locations, hours.
type MenuHandler struct {
	repo     repository.MenuReader
	schedule *tools.Schedule
	logger   zerolog.Logger
}

// NewMenuHandler creates a new menu handler. A nil schedule falls back
// to the published campus hours on a live clock.
func NewMenuHandler(repo repository.MenuReader, schedule *tools.Schedule, logger zerolog.Logger) *MenuHandler {
	if schedule == nil {
		schedule = tools.NewSchedule(nil, tools.NewYorkClock())
	}
	return &MenuHandler{
		repo:     repo,
		schedule: schedule,
		logger:   logger.With().Str("handler", "menu").Logger(),
	}
}

// Stats handles GET /api/stats requests.
func (h *MenuHandler) Stats(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, r, http.StatusMethodNotAllowed, "", "method not allowed", h.logger)
		return
	}

	stats, err := h.repo.Stats(r.Context(), "")
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, model.ErrCodeStoreUnavailable, "failed to retrieve menu stats", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, stats)
}

// Locations handles GET /api/locations requests.
func (h *MenuHandler) Locations(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, r, http.StatusMethodNotAllowed, "", "method not allowed", h.logger)
		return
	}

	names, err := h.repo.LocationNames(r.Context())
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, model.ErrCodeStoreUnavailable, "failed to retrieve locations", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, model.LocationsResponse{Locations: names})
}

// Hours handles GET /api/hours requests. With a location query parameter
// it reports that location's hours for today; without one it reports
// today's status for every location.
func (h *MenuHandler) Hours(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, r, http.StatusMethodNotAllowed, "", "method not allowed", h.logger)
		return
	}

	location := r.URL.Query().Get("location")
	if location == "" {
		writeJSON(w, http.StatusOK, h.schedule.AllToday())
		return
	}

	result := h.schedule.ForLocation(location)
	if result.Status == tools.StatusUnknown {
		writeError(w, r, http.StatusNotFound, model.ErrCodeLocationUnknown, model.ErrLocationUnknown.Message, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, result)
}
