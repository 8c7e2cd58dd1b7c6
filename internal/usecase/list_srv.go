package usecase

import (
	"context"
	"fmt"

	"letterboxd/internal/data/entity"
	"letterboxd/internal/data/repository"

	"go.uber.org/zap"
)

type ListService interface {
	GetLists(ctx context.Context) ([]entity.MovieList, error)
	GetList(ctx context.Context, slug string) (*entity.MovieList, error)
}

type listService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewListService(repo *repository.Repository, log *zap.Logger) ListService {
	return &listService{
		repo: repo,
		log:  log.With(zap.String("service", "list")),
	}
}

func (s *listService) GetLists(ctx context.Context) ([]entity.MovieList, error) {
	lists, err := s.repo.List.FindPublic(ctx)
	if err != nil {
		return nil, fmt.Errorf("get lists: %w", err)
	}
	return lists, nil
}

// GetList hides private lists and drops unpublished movies from the rest.
func (s *listService) GetList(ctx context.Context, slug string) (*entity.MovieList, error) {
	list, err := s.repo.List.FindBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("get list: %w", err)
	}
	if list == nil || list.Metadata.ListType.Key == entity.ListTypePrivate {
		return nil, notFound("list", slug)
	}

	visible := make([]entity.Movie, 0, len(list.Metadata.Movies))
	for i := range list.Metadata.Movies {
		m := &list.Metadata.Movies[i]
		// unexpanded references carry only an id
		if m.Slug == "" || m.IsPublished() {
			visible = append(visible, *m)
		}
	}
	list.Metadata.Movies = visible

	s.log.Debug("List loaded", zap.String("slug", slug), zap.Int("movies", len(visible)))
	return list, nil
}
