// Package httpapi exposes the arcade catalogue and persisted scores as a
// read-only JSON API.
package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/vovakirdan/trio-arcade/internal/registry"
	"github.com/vovakirdan/trio-arcade/internal/storage"
)

// ScoreSource is the subset of the score store the API reads from.
type ScoreSource interface {
	TopScores(gameID string, limit int) ([]storage.ScoreEntry, error)
	ReadBest(gameID string) (int, error)
}

// Handler serves the score API.
type Handler struct {
	scores ScoreSource
	logger *log.Logger
}

// NewHandler creates a handler reading from scores. A nil logger uses the
// default charmbracelet logger.
func NewHandler(scores ScoreSource, logger *log.Logger) *Handler {
	if logger == nil {
		logger = log.Default()
	}
	return &Handler{scores: scores, logger: logger}
}

// Routes configures all routes and returns the router.
func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(h.requestLogger)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			h.respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
		})
		r.Get("/games", h.ListGames)

		r.Route("/games/{id}", func(r chi.Router) {
			r.Use(h.knownGame)
			r.Get("/scores", h.TopScores)
			r.Get("/best", h.Best)
		})
	})

	return r
}

// GameView is the JSON shape of a registered game.
type GameView struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// ScoreView is the JSON shape of a score record.
type ScoreView struct {
	ID        int64     `json:"id"`
	Score     int       `json:"score"`
	CreatedAt time.Time `json:"created_at"`
}

// ListGames handles GET /api/games
func (h *Handler) ListGames(w http.ResponseWriter, r *http.Request) {
	games := registry.List()
	views := make([]GameView, 0, len(games))
	for _, g := range games {
		views = append(views, GameView{ID: g.ID, Title: g.Title})
	}
	h.respondJSON(w, http.StatusOK, views)
}

// TopScores handles GET /api/games/{id}/scores?limit=N
func (h *Handler) TopScores(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	limit := 10
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			h.respondError(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = n
	}

	entries, err := h.scores.TopScores(id, limit)
	if err != nil {
		h.logger.Error("top scores query failed", "game", id, "err", err)
		h.respondError(w, http.StatusInternalServerError, "cannot load scores")
		return
	}

	views := make([]ScoreView, 0, len(entries))
	for _, e := range entries {
		views = append(views, ScoreView{ID: e.ID, Score: e.Score, CreatedAt: e.CreatedAt})
	}
	h.respondJSON(w, http.StatusOK, map[string]any{"game": id, "scores": views})
}

// Best handles GET /api/games/{id}/best
func (h *Handler) Best(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	best, err := h.scores.ReadBest(id)
	if err != nil {
		h.logger.Error("best score query failed", "game", id, "err", err)
		h.respondError(w, http.StatusInternalServerError, "cannot load best score")
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]any{"game": id, "best": best})
}

// knownGame rejects requests for games that are not registered.
func (h *Handler) knownGame(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !registry.Exists(chi.URLParam(r, "id")) {
			h.respondError(w, http.StatusNotFound, "game not found")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (h *Handler) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		h.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start),
		)
	})
}

// respondJSON writes a JSON response
func (h *Handler) respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Warn("error encoding JSON", "err", err)
	}
}

// respondError writes an error JSON response
func (h *Handler) respondError(w http.ResponseWriter, status int, message string) {
	h.respondJSON(w, status, map[string]string{"error": message})
}
