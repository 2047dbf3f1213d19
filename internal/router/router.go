package router

import (
	"net/http"

	"github.com/rs/zerolog"

	"github.com/dg4329-hash/menumap/internal/handler"
	"github.com/dg4329-hash/menumap/internal/middleware"
)

// New creates a new HTTP router with all routes and middleware configured.
func New(
	searchHandler *handler.SearchHandler,
	chatHandler *handler.ChatHandler,
	menuHandler *handler.MenuHandler,
	logger zerolog.Logger,
) http.Handler {
	mux := http.NewServeMux()

	// Health check endpoint
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "ok"}`))
	})

	mux.HandleFunc("/api/search", searchHandler.Search)
	mux.HandleFunc("/api/chat", chatHandler.Chat)
	mux.HandleFunc("/api/stats", menuHandler.Stats)
	mux.HandleFunc("/api/locations", menuHandler.Locations)
	mux.HandleFunc("/api/hours", menuHandler.Hours)

	// Apply middleware in order: RequestID -> Recovery -> Logging -> CORS
	var h http.Handler = mux
	h = middleware.CORS(h)
	h = middleware.Logging(logger)(h)
	h = middleware.Recovery(logger)(h)
	h = middleware.RequestID(h)

	return h
}
