package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/dg4329-hash/menumap/internal/coach"
	"github.com/dg4329-hash/menumap/internal/model"
)

// ChatHandler handles recommendation HTTP requests.
type ChatHandler struct {
	coach  coach.Recommender
	logger zerolog.Logger
}

// NewChatHandler creates a new chat handler.
func NewChatHandler(recommender coach.Recommender, logger zerolog.Logger) *ChatHandler {
	return &ChatHandler{
		coach:  recommender,
		logger: logger.With().Str("handler", "chat").Logger(),
	}
}

// Chat handles POST /api/chat requests.
func (h *ChatHandler) Chat(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, r, http.StatusMethodNotAllowed, "", "method not allowed", h.logger)
		return
	}

	var req model.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid request body", h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeEmptyMessage, err.Error(), h.logger)
		return
	}

	response, err := h.coach.Chat(r.Context(), req.Message)
	if err != nil {
		if errors.Is(err, model.ErrLLMUnavailable) {
			writeError(w, r, http.StatusServiceUnavailable, model.ErrCodeLLMUnavailable, model.ErrLLMUnavailable.Message, h.logger)
			return
		}
		writeError(w, r, http.StatusInternalServerError, model.ErrCodeInternalError, "failed to generate recommendation", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, model.ChatResponse{
		Message:  req.Message,
		Response: response,
	})
}
