// Package chi serves the search and index features over HTTP.
package chi

import (
	"log/slog"
	"net/http"

	"github.com/fwojciec/docindex"
	"github.com/fwojciec/docindex/nav"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	gojson "github.com/goccy/go-json"
)

// Site is the subset of the loaded site the server needs.
type Site interface {
	Search(query string) ([]docindex.SearchResult, error)
	RenderIndex(location string) (string, error)
}

// Server is the HTTP API for a loaded site.
type Server struct {
	router chi.Router
	site   Site
	log    *slog.Logger
}

// NewServer creates and configures the HTTP server.
func NewServer(site Site, log *slog.Logger) *Server {
	s := &Server{
		site: site,
		log:  log,
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

	r.Route("/api", func(r chi.Router) {
		r.Get("/search", s.handleSearch)
		r.Get("/index", s.handleIndex)
	})

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	results, err := s.site.Search(r.URL.Query().Get("term"))
	if err != nil {
		s.jsonError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if err := gojson.NewEncoder(w).Encode(results); err != nil {
		s.log.Error("encode search results", "error", err)
	}
}

// UpHeader carries the location one level above the requested one.
const UpHeader = "X-Up-Location"

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	location := r.URL.Query().Get("location")
	out, err := s.site.RenderIndex(location)
	if err != nil {
		s.jsonError(w, r, err)
		return
	}
	if up := nav.Up(location); up != "" {
		w.Header().Set(UpHeader, up)
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(out))
}

func (s *Server) jsonError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusCode(docindex.ErrorCode(err))
	if status == http.StatusInternalServerError {
		s.log.Error("request failed", "path", r.URL.Path, "error", err)
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	gojson.NewEncoder(w).Encode(map[string]string{"error": docindex.ErrorMessage(err)})
}

func statusCode(code string) int {
	switch code {
	case docindex.EINVALID, docindex.EMALFORMED:
		return http.StatusBadRequest
	case docindex.ENOTFOUND:
		return http.StatusNotFound
	case docindex.EUNAVAILABLE:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
