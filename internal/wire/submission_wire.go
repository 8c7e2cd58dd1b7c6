package wire

import (
	"letterboxd/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireSubmission(r chi.Router, submissionHandler *adaptor.SubmissionHandler) {
	r.Get("/movie-submissions", submissionHandler.Index)
	r.Post("/movie-submissions", submissionHandler.Create)

	r.Get("/api/movie-submissions", submissionHandler.List)
	r.Post("/api/movie-submissions", submissionHandler.CreateAPI)
}
