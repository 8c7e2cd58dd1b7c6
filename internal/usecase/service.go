package usecase

import (
	"letterboxd/internal/data/repository"
	"letterboxd/pkg/notify"
	"letterboxd/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Home       HomeService
	Movie      MovieService
	Review     ReviewService
	List       ListService
	Person     PersonService
	Watchlist  WatchlistService
	WatchState WatchStateService
	Submission SubmissionService
}

func NewService(repo *repository.Repository, notifier notify.Notifier, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Home:       NewHomeService(repo, log),
		Movie:      NewMovieService(repo, log),
		Review:     NewReviewService(repo, log),
		List:       NewListService(repo, log),
		Person:     NewPersonService(repo, log),
		Watchlist:  NewWatchlistService(repo, log),
		WatchState: NewWatchStateService(repo, log),
		Submission: NewSubmissionService(repo, notifier, config.Email.Moderators, log),
	}
}
