package wire

import (
	"letterboxd/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireMovie(r chi.Router, movieHandler *adaptor.MovieHandler, stateHandler *adaptor.WatchStateHandler) {
	r.Route("/api/movies", func(r chi.Router) {
		r.Get("/", movieHandler.List)
		r.Get("/search", movieHandler.Search)
		r.Get("/{slug}/related", movieHandler.Related)

		// viewer state for one movie
		r.Get("/{slug}/state", stateHandler.Get)
		r.Put("/{slug}/state", stateHandler.Update)
		r.Delete("/{slug}/state", stateHandler.Clear)
	})
}
