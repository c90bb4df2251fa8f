// Package api serves the small JSON API mounted under /api.
package api

import (
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Routes returns the API router. Mount it under /api.
func Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/foo", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, SampleFoo())
	})
	r.Get("/foo/first", Handle(KindQuery, firstBar))
	r.Post("/foo/first", Handle(KindBody, firstBar))

	r.Get("/bar", Handle(KindQuery, echoBar))
	r.Post("/bar", Handle(KindBody, echoBar))

	r.Get("/baz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = io.WriteString(w, "hello world")
	})

	return r
}

func echoBar(bar Bar) Bar {
	return bar
}

// firstBar answers with the first bar of foo, or null if it has none.
func firstBar(foo Foo) *Bar {
	if len(foo.Bars) == 0 {
		return nil
	}
	return &foo.Bars[0]
}
