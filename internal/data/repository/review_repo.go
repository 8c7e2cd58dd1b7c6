package repository

import (
	"context"

	"letterboxd/internal/data/entity"
	"letterboxd/pkg/cms"

	"go.uber.org/zap"
)

type ReviewRepository interface {
	FindAll(ctx context.Context) ([]entity.Review, error)
	FindByMovieID(ctx context.Context, movieID string) ([]entity.Review, error)
	FindBySlug(ctx context.Context, slug string) (*entity.Review, error)
}

type reviewRepository struct {
	client cms.Client
	log    *zap.Logger
}

func NewReviewRepository(client cms.Client, log *zap.Logger) ReviewRepository {
	return &reviewRepository{
		client: client,
		log:    log.With(zap.String("repository", "review")),
	}
}

func reviewsNewestFirst() cms.Query {
	return cms.NewQuery(TypeReviews).
		WithProps(cms.DefaultProps...).
		WithDepth(1).
		SortBy("-metadata.review_date")
}

func (r *reviewRepository) FindAll(ctx context.Context) ([]entity.Review, error) {
	reviews, err := findAll[entity.Review](ctx, r.client, reviewsNewestFirst(), "reviews")
	if err != nil {
		r.log.Error("Failed to find reviews", zap.Error(err))
		return nil, err
	}
	return reviews, nil
}

func (r *reviewRepository) FindByMovieID(ctx context.Context, movieID string) ([]entity.Review, error) {
	q := reviewsNewestFirst().Where("metadata.movie", movieID)

	reviews, err := findAll[entity.Review](ctx, r.client, q, "movie reviews")
	if err != nil {
		r.log.Error("Failed to find movie reviews", zap.Error(err), zap.String("movie_id", movieID))
		return nil, err
	}
	return reviews, nil
}

func (r *reviewRepository) FindBySlug(ctx context.Context, slug string) (*entity.Review, error) {
	q := cms.NewQuery(TypeReviews).WithSlug(slug).WithDepth(1)

	review, err := findOne[entity.Review](ctx, r.client, q, "review")
	if err != nil {
		r.log.Error("Failed to find review", zap.Error(err), zap.String("slug", slug))
		return nil, err
	}
	return review, nil
}
