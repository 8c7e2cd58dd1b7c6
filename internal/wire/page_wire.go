package wire

import (
	"letterboxd/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

// wirePages mounts the server-rendered pages.
func wirePages(r chi.Router, handler *adaptor.Handler) {
	r.Get("/", handler.Home.Index)

	r.Get("/movies", handler.Movie.Index)
	r.Get("/movies/{slug}", handler.Movie.Show)

	r.Get("/reviews", handler.Review.Index)

	r.Get("/lists", handler.List.Index)
	r.Get("/lists/{slug}", handler.List.Show)

	r.Get("/people", handler.Person.Index)
	r.Get("/people/{slug}", handler.Person.Show)

	r.Get("/watchlist", handler.Watchlist.Index)
}
