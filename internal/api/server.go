package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dgallion1/mdindex/internal/config"
)

// Server exposes a previously generated artifact tree as a read-only JSON
// API. It never writes; generation stays a separate batch concern.
type Server struct {
	router  chi.Router
	destDir string
	log     *slog.Logger
	cfg     config.Config
}

// NewServer creates and configures the HTTP server over destDir.
func NewServer(destDir string, log *slog.Logger, cfg config.Config) *Server {
	s := &Server{
		destDir: destDir,
		log:     log,
		cfg:     cfg,
	}
	s.setupRoutes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(s.log))

	r.Get("/health", s.handleHealth)

	r.Group(func(r chi.Router) {
		// Bearer auth only when a key is configured.
		if s.cfg.APIKey != "" {
			r.Use(AuthMiddleware(s.cfg.APIKey))
		}

		r.Get("/api/index", s.artifactHandler("index.json"))
		r.Get("/api/search", s.artifactHandler("search.json"))
		r.Get("/api/categories", s.artifactHandler("categories.json"))
		r.Get("/api/routes", s.artifactHandler("routes.json"))
		r.Get("/api/metadata", s.artifactHandler("metadata.json"))
		r.Get("/api/docs/*", s.handleDocument)
	})

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
