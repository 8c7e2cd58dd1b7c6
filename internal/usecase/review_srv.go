package usecase

import (
	"context"
	"fmt"

	"letterboxd/internal/data/entity"
	"letterboxd/internal/data/repository"
	"letterboxd/internal/dto/request"
	"letterboxd/internal/dto/response"
	"letterboxd/pkg/utils"

	"go.uber.org/zap"
)

type ReviewService interface {
	GetReviews(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[entity.Review], error)
	GetReview(ctx context.Context, slug string) (*entity.Review, error)
}

type reviewService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewReviewService(repo *repository.Repository, log *zap.Logger) ReviewService {
	return &reviewService{
		repo: repo,
		log:  log.With(zap.String("service", "review")),
	}
}

func (s *reviewService) GetReviews(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[entity.Review], error) {
	if req == nil {
		req = request.NewPaginatedRequest(1, request.DefaultPerPage)
	}

	reviews, err := s.repo.Review.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get reviews: %w", err)
	}

	window := utils.Paginate(reviews, req.Page, req.Limit())

	s.log.Info("Reviews retrieved",
		zap.Int("count", len(window)),
		zap.Int("total", len(reviews)),
		zap.Int("page", req.Page),
	)
	return response.NewPaginatedResponse(window, req.Page, req.Limit(), int64(len(reviews))), nil
}

func (s *reviewService) GetReview(ctx context.Context, slug string) (*entity.Review, error) {
	review, err := s.repo.Review.FindBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("get review: %w", err)
	}
	if review == nil {
		return nil, notFound("review", slug)
	}
	return review, nil
}
