// Package devapi serves the quotes API contract from a gorm database. It is a
// local stand-in for the real backend: it stores and returns entities and
// holds no business rules.
package devapi

import (
	"net/http"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"

	"github.com/diewo77/devis-board/httpx"
)

// Server is the dev API handler.
type Server struct {
	mux      *http.ServeMux
	db       *gorm.DB
	basePath string
	reg      *prometheus.Registry
	metrics  *Metrics
	handler  http.Handler
}

type Option func(*Server)

// WithBasePath mounts the API under p (default "/api").
func WithBasePath(p string) Option {
	return func(s *Server) { s.basePath = "/" + strings.Trim(p, "/") }
}

// WithRegistry registers the server metrics on reg instead of a private registry.
func WithRegistry(reg *prometheus.Registry) Option {
	return func(s *Server) { s.reg = reg }
}

// New creates the server with all routes configured.
func New(db *gorm.DB, opts ...Option) *Server {
	s := &Server{
		mux:      http.NewServeMux(),
		db:       db,
		basePath: "/api",
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.basePath == "/" {
		s.basePath = ""
	}
	if s.reg == nil {
		s.reg = prometheus.NewRegistry()
	}
	s.metrics = NewMetrics(s.reg)
	s.setupRoutes()
	s.handler = withLogging(s.metrics.Middleware(withLang(s.mux)))
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler.ServeHTTP(w, r)
}

func (s *Server) route(method, path string) string {
	return method + " " + s.basePath + path
}

// setupRoutes configures all API routes.
func (s *Server) setupRoutes() {
	ch := &CatalogHandler{db: s.db}
	qh := &QuoteHandler{db: s.db}
	cuh := &CustomerHandler{db: s.db}

	// Collections
	s.mux.HandleFunc(s.route("GET", "/quotes"), qh.List)
	s.mux.HandleFunc(s.route("GET", "/tour-formulas"), ch.TourFormulas)
	s.mux.HandleFunc(s.route("GET", "/customers"), cuh.List)
	s.mux.HandleFunc(s.route("GET", "/moto-locations"), ch.MotoLocations)
	s.mux.HandleFunc(s.route("GET", "/accommodations"), ch.Accommodations)
	s.mux.HandleFunc(s.route("GET", "/options"), ch.Options)

	// Mutations
	s.mux.HandleFunc(s.route("DELETE", "/quotes/{id}"), qh.Delete)
	s.mux.HandleFunc(s.route("PATCH", "/quotes/{id}"), qh.Patch)
	s.mux.HandleFunc(s.route("PATCH", "/customers/{id}"), cuh.Patch)

	// Operations
	s.mux.HandleFunc("GET /healthz", s.health)
	s.mux.Handle("GET /metrics", promhttp.HandlerFor(s.reg, promhttp.HandlerOpts{}))
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	sqlDB, err := s.db.DB()
	if err == nil {
		err = sqlDB.PingContext(r.Context())
	}
	if err != nil {
		replyError(w, r, http.StatusServiceUnavailable, "db_unavailable", err.Error())
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
