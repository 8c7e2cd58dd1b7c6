package adaptor

import (
	"net/http"

	"letterboxd/internal/usecase"
	"letterboxd/internal/view"

	"go.uber.org/zap"
)

type Handler struct {
	Home       *HomeHandler
	Movie      *MovieHandler
	Review     *ReviewHandler
	List       *ListHandler
	Person     *PersonHandler
	Watchlist  *WatchlistHandler
	WatchState *WatchStateHandler
	Submission *SubmissionHandler

	// NotFound renders the not-found page for unmatched routes.
	NotFound http.HandlerFunc
}

func NewHandler(service *usecase.Service, renderer *view.Renderer, log *zap.Logger) *Handler {
	pages := newPageWriter(renderer, log)

	return &Handler{
		Home:       NewHomeHandler(service.Home, pages, log),
		Movie:      NewMovieHandler(service.Movie, service.Watchlist, pages, log),
		Review:     NewReviewHandler(service.Review, pages, log),
		List:       NewListHandler(service.List, pages, log),
		Person:     NewPersonHandler(service.Person, pages, log),
		Watchlist:  NewWatchlistHandler(service.Watchlist, pages, log),
		WatchState: NewWatchStateHandler(service.WatchState, log),
		Submission: NewSubmissionHandler(service.Submission, pages, log),
		NotFound:   pages.NotFound,
	}
}
