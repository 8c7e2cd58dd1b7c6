package repository

import (
	"context"

	"letterboxd/internal/data/entity"
	"letterboxd/pkg/cms"

	"go.uber.org/zap"
)

// UserMovieStateRepository reads the user-movie-states kept in the CMS.
type UserMovieStateRepository interface {
	FindByUser(ctx context.Context, userName string) ([]entity.UserMovieState, error)
	FindWatchlist(ctx context.Context, userName string) ([]entity.UserMovieState, error)
}

type userMovieStateRepository struct {
	client cms.Client
	log    *zap.Logger
}

func NewUserMovieStateRepository(client cms.Client, log *zap.Logger) UserMovieStateRepository {
	return &userMovieStateRepository{
		client: client,
		log:    log.With(zap.String("repository", "user_movie_state")),
	}
}

func userStates(userName string) cms.Query {
	return cms.NewQuery(TypeUserMovieStates).
		Where("metadata.user_name", userName).
		WithProps(cms.DefaultProps...).
		WithDepth(1).
		SortBy("-metadata.date_added")
}

func (r *userMovieStateRepository) FindByUser(ctx context.Context, userName string) ([]entity.UserMovieState, error) {
	states, err := findAll[entity.UserMovieState](ctx, r.client, userStates(userName), "user movie states")
	if err != nil {
		r.log.Error("Failed to find user movie states", zap.Error(err), zap.String("user", userName))
		return nil, err
	}
	return states, nil
}

func (r *userMovieStateRepository) FindWatchlist(ctx context.Context, userName string) ([]entity.UserMovieState, error) {
	q := userStates(userName).Where("metadata.status.key", string(entity.WatchStatusWantToWatch))

	states, err := findAll[entity.UserMovieState](ctx, r.client, q, "user watchlist")
	if err != nil {
		r.log.Error("Failed to find user watchlist", zap.Error(err), zap.String("user", userName))
		return nil, err
	}
	return states, nil
}
