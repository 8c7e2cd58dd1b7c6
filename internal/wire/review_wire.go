package wire

import (
	"letterboxd/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireReview(r chi.Router, reviewHandler *adaptor.ReviewHandler) {
	r.Get("/api/reviews", reviewHandler.List)
	r.Get("/api/reviews/{slug}", reviewHandler.Show)
}
