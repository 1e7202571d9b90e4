package api

import (
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
)

// artifactHandler serves one of the shared index artifacts from the
// destination tree.
func (s *Server) artifactHandler(name string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.serveArtifact(w, name)
	}
}

// handleDocument serves a full document record by slug.
func (s *Server) handleDocument(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "*")
	slug = strings.TrimSuffix(slug, ".json")
	if slug == "" || strings.Contains(slug, "..") {
		jsonError(w, "invalid document slug", http.StatusBadRequest)
		return
	}
	s.serveArtifact(w, filepath.FromSlash(slug)+".json")
}

func (s *Server) serveArtifact(w http.ResponseWriter, rel string) {
	path := filepath.Join(s.destDir, rel)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			jsonError(w, "artifact not found", http.StatusNotFound)
			return
		}
		s.log.Error("artifact read failed", "path", path, "error", err)
		jsonError(w, "failed to read artifact", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(data)
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write([]byte(`{"error":` + strconv.Quote(msg) + `}`))
}
