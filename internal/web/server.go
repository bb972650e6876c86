// Package web serves the catalog browser as server-rendered HTML. Requests
// are stateless: each one rebuilds a browse.App from its query string.
package web

import (
	"context"
	"embed"
	"html/template"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/alexisbeaulieu97/bookshelf/internal/catalog"
	"github.com/alexisbeaulieu97/bookshelf/internal/logger"
)

//go:embed templates/*.html.tmpl
var templateFS embed.FS

// Config holds server configuration.
type Config struct {
	Listen   string
	AllowAll bool // allow all CORS origins
	// Theme ("day" or "night") applies when the request carries no theme
	// cookie. Empty defers to the client hint.
	Theme string
}

// Server is the HTTP surface of the browser.
type Server struct {
	cfg        Config
	catalog    *catalog.Catalog
	log        *logger.Logger
	markdown   goldmark.Markdown
	templates  *template.Template
	router     chi.Router
	httpServer *http.Server
}

// New creates a server over an already loaded catalog.
func New(cfg Config, cat *catalog.Catalog, log *logger.Logger) (*Server, error) {
	if cat == nil || cat.Books == nil {
		return nil, catalog.ErrSourceRequired
	}
	if log == nil {
		log = logger.Nop()
	}

	tmpl, err := template.ParseFS(templateFS, "templates/*.html.tmpl")
	if err != nil {
		return nil, err
	}

	s := &Server{
		cfg:       cfg,
		catalog:   cat,
		log:       log,
		templates: tmpl,
		markdown: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
		),
	}
	s.router = s.buildRouter()
	s.httpServer = &http.Server{
		Addr:              cfg.Listen,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
	return s, nil
}

// buildRouter creates and configures the chi router with all routes.
func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(s.log))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	// CORS
	corsOpts := cors.Options{
		AllowedOrigins: []string{"http://localhost:*", "http://127.0.0.1:*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}
	if s.cfg.AllowAll {
		corsOpts.AllowedOrigins = []string{"*"}
	}
	r.Use(cors.Handler(corsOpts))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Get("/", s.handleIndex)
	r.Get("/books/{id}", s.handleDetail)
	r.Post("/settings", s.handleSettings)
	r.Get("/api/books", s.handleAPIBooks)

	return r
}

// Router returns the chi router.
func (s *Server) Router() chi.Router { return s.router }

// Start begins listening on the configured address.
func (s *Server) Start() error {
	s.log.WithFields(map[string]any{"listen": s.cfg.Listen}).Info("bookshelf server listening")
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// requestLogger writes one structured entry per request.
func requestLogger(log *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)

			log.WithFields(map[string]any{
				"request_id":  middleware.GetReqID(r.Context()),
				"method":      r.Method,
				"path":        r.URL.Path,
				"status":      ww.Status(),
				"bytes":       ww.BytesWritten(),
				"duration_ms": time.Since(start).Milliseconds(),
			}).Info("request served")
		})
	}
}
