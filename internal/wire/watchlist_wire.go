package wire

import (
	"letterboxd/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireWatchlist(r chi.Router, watchlistHandler *adaptor.WatchlistHandler) {
	r.Get("/api/watchlist", watchlistHandler.List)
	r.Post("/api/watchlist/{slug}/toggle", watchlistHandler.Toggle)
}
