// Package server composes the HTTP surface: the API and the static assets
// behind the recompiler strategy in use.
package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/k4g4/Personal-Page/internal/api"
)

// Middleware wraps a handler.
type Middleware func(http.Handler) http.Handler

// NewRouter serves /api ungated and every other path from distDir. assets,
// when non-nil, wraps only the static file handler.
func NewRouter(distDir string, assets Middleware) chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Mount("/api", api.Routes())

	r.Group(func(r chi.Router) {
		if assets != nil {
			r.Use(assets)
		}
		r.Handle("/*", http.FileServer(http.Dir(distDir)))
	})

	return r
}
