package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/MayankSaini-Byte/Study-Edge/internal/auth"
	"github.com/MayankSaini-Byte/Study-Edge/internal/config"
	"github.com/MayankSaini-Byte/Study-Edge/internal/metrics"
	"github.com/MayankSaini-Byte/Study-Edge/internal/repository"
	"github.com/MayankSaini-Byte/Study-Edge/internal/service"
)

const sessionCookieName = "session"

type Server struct {
	cfg         config.Config
	logger      *slog.Logger
	metrics     *metrics.Metrics
	auth        *auth.Authority
	assignments *service.Assignments
	todos       *service.Todos
	menu        *service.MessMenu
}

func NewServer(cfg config.Config, logger *slog.Logger, m *metrics.Metrics, authority *auth.Authority, assignments *service.Assignments, todos *service.Todos, menu *service.MessMenu) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	if m == nil {
		m = metrics.New()
	}
	return &Server{
		cfg:         cfg,
		logger:      logger,
		metrics:     m,
		auth:        authority,
		assignments: assignments,
		todos:       todos,
		menu:        menu,
	}
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   s.cfg.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"message": "StudyEdge API is running"})
	})
	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Handle("/metrics", promhttp.HandlerFor(s.metrics.Registry, promhttp.HandlerOpts{}))

	r.Post("/auth/login", s.handleLogin)
	r.Post("/auth/logout", s.handleLogout)

	r.With(noCache, s.sessionMiddleware).Get("/me", s.handleGetMe)

	r.Route("/assignments", func(r chi.Router) {
		r.Use(s.sessionMiddleware)
		r.With(noCache).Get("/", s.handleListAssignments)
		r.Post("/", s.handleCreateAssignment)
		r.Patch("/{id}", s.handlePatchAssignment)
		r.Delete("/{id}", s.handleDeleteAssignment)
	})

	r.Route("/todos", func(r chi.Router) {
		r.Use(s.sessionMiddleware)
		r.With(noCache).Get("/", s.handleListTodos)
		r.Post("/", s.handleCreateTodo)
		r.Patch("/{id}", s.handlePatchTodo)
		r.Delete("/{id}", s.handleDeleteTodo)
	})

	r.Route("/mess-menu", func(r chi.Router) {
		r.With(noCache).Get("/", s.handleGetMessMenu)
		r.With(noCache).Get("/week", s.handleGetMessMenuWeek)
		r.With(s.sessionMiddleware, s.requireAdmin).Patch("/{day}", s.handlePatchMessMenu)
	})

	return r
}

// writeServiceError maps domain errors onto status codes. Anything
// unrecognised is logged and reported as a bare server_error.
func (s *Server) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, auth.ErrUnauthenticated):
		writeError(w, http.StatusUnauthorized, "not_authenticated")
	case errors.Is(err, auth.ErrInvalidSession):
		writeError(w, http.StatusUnauthorized, "invalid_session")
	case errors.Is(err, auth.ErrForbidden):
		writeError(w, http.StatusForbidden, "admin_required")
	case errors.Is(err, auth.ErrInvalidLogin):
		writeError(w, http.StatusBadRequest, "missing_credentials")
	case errors.Is(err, service.ErrInvalidInput):
		writeError(w, http.StatusBadRequest, "invalid_request")
	case errors.Is(err, repository.ErrNotFound):
		writeError(w, http.StatusNotFound, "not_found")
	default:
		s.logger.ErrorContext(r.Context(), "request failed",
			"method", r.Method,
			"path", r.URL.Path,
			"request_id", middleware.GetReqID(r.Context()),
			"error", err,
		)
		writeError(w, http.StatusInternalServerError, "server_error")
	}
}

func decodeJSON(r *http.Request, out interface{}) error {
	return json.NewDecoder(r.Body).Decode(out)
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, code string) {
	writeJSON(w, status, map[string]string{"error": code})
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
