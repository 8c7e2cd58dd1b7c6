package repository

import (
	"letterboxd/pkg/cms"

	"go.uber.org/zap"
)

// Repository groups every data accessor the services use.
type Repository struct {
	Movie      MovieRepository
	Review     ReviewRepository
	List       ListRepository
	Person     PersonRepository
	Submission SubmissionRepository
	UserState  UserMovieStateRepository
	WatchState WatchStateRepository
}

// NewRepository wires the CMS-backed accessors together with the local
// watch-state store.
func NewRepository(client cms.Client, watchStates WatchStateRepository, log *zap.Logger) *Repository {
	return &Repository{
		Movie:      NewMovieRepository(client, log),
		Review:     NewReviewRepository(client, log),
		List:       NewListRepository(client, log),
		Person:     NewPersonRepository(client, log),
		Submission: NewSubmissionRepository(client, log),
		UserState:  NewUserMovieStateRepository(client, log),
		WatchState: watchStates,
	}
}
