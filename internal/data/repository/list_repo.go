package repository

import (
	"context"

	"letterboxd/internal/data/entity"
	"letterboxd/pkg/cms"

	"go.uber.org/zap"
)

type ListRepository interface {
	FindPublic(ctx context.Context) ([]entity.MovieList, error)
	FindBySlug(ctx context.Context, slug string) (*entity.MovieList, error)
}

type listRepository struct {
	client cms.Client
	log    *zap.Logger
}

func NewListRepository(client cms.Client, log *zap.Logger) ListRepository {
	return &listRepository{
		client: client,
		log:    log.With(zap.String("repository", "list")),
	}
}

func (r *listRepository) FindPublic(ctx context.Context) ([]entity.MovieList, error) {
	q := cms.NewQuery(TypeLists).
		Where("metadata.list_type.key", entity.ListTypePublic).
		WithProps(cms.DefaultProps...).
		WithDepth(1).
		SortBy("-metadata.creation_date")

	lists, err := findAll[entity.MovieList](ctx, r.client, q, "movie lists")
	if err != nil {
		r.log.Error("Failed to find lists", zap.Error(err))
		return nil, err
	}
	return lists, nil
}

func (r *listRepository) FindBySlug(ctx context.Context, slug string) (*entity.MovieList, error) {
	q := cms.NewQuery(TypeLists).WithSlug(slug).WithDepth(1)

	list, err := findOne[entity.MovieList](ctx, r.client, q, "movie list")
	if err != nil {
		r.log.Error("Failed to find list", zap.Error(err), zap.String("slug", slug))
		return nil, err
	}
	return list, nil
}
