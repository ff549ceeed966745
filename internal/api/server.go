package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/kindred-wellness/prism/internal/analysis"
	"github.com/kindred-wellness/prism/internal/anthropic"
)

// StyleReader serves the cached last-known style per user. Nil when the
// service runs without a database.
type StyleReader interface {
	GetStyle(ctx context.Context, userID uuid.UUID) (analysis.StyleProfile, bool, error)
}

// PostFetcher retrieves a user's recent posts from a social platform. Nil
// when the gateway is not configured.
type PostFetcher interface {
	FetchPosts(ctx context.Context, platform, handle string, limit int) ([]analysis.TextRecord, error)
}

// Replier answers a conversation with the coaching assistant. Nil when the
// LLM is not configured.
type Replier interface {
	Reply(ctx context.Context, userID uuid.UUID, turns []anthropic.Turn) (string, error)
}

type Server struct {
	router    *chi.Mux
	port      int
	analyzer  *analysis.Analyzer
	styles    StyleReader
	fetcher   PostFetcher
	assistant Replier
}

func NewServer(port int, apiToken string, analyzer *analysis.Analyzer, styles StyleReader, fetcher PostFetcher, assistant Replier) *Server {
	router := chi.NewRouter()
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	s := &Server{
		router:    router,
		port:      port,
		analyzer:  analyzer,
		styles:    styles,
		fetcher:   fetcher,
		assistant: assistant,
	}

	router.Get("/health", s.health)
	router.Get("/api/v1/prism/status", s.status)

	router.Route("/api/v1", func(r chi.Router) {
		r.Use(BearerAuthMiddleware(apiToken))
		r.Post("/analyze", s.analyze)
		r.Post("/analyze/deep", s.analyzeDeep)
		r.Post("/analyze/social", s.analyzeSocial)
		r.Get("/users/{userID}/style", s.userStyle)
		r.Post("/users/{userID}/chat", s.chatReply)
	})

	return s
}

func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	slog.Info("API server starting", "addr", addr)
	return http.ListenAndServe(addr, s.router)
}

// BearerAuthMiddleware rejects requests without the configured bearer token.
// An empty token disables auth (local development).
func BearerAuthMiddleware(token string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, "Bearer ") || strings.TrimPrefix(header, "Bearer ") != token {
				writeError(w, http.StatusUnauthorized, "missing or invalid bearer token")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) status(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"service": "prism",
		"status":  "ok",
	})
}

func (s *Server) userStyle(w http.ResponseWriter, r *http.Request) {
	if s.styles == nil {
		writeError(w, http.StatusServiceUnavailable, "style cache not configured")
		return
	}

	userID, err := uuid.Parse(chi.URLParam(r, "userID"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	profile, found, err := s.styles.GetStyle(r.Context(), userID)
	if err != nil {
		slog.Error("style lookup failed", "user", userID.String(), "error", err)
		writeError(w, http.StatusInternalServerError, "style lookup failed")
		return
	}
	if !found {
		writeError(w, http.StatusNotFound, "no style cached for user")
		return
	}

	writeJSON(w, http.StatusOK, profile)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func statusForError(err error) int {
	var ve *analysis.ValidationError
	if errors.As(err, &ve) {
		return http.StatusBadRequest
	}
	if errors.Is(err, analysis.ErrInsufficientSample) {
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}
