package usecase

import (
	"context"
	"fmt"

	"letterboxd/internal/data/repository"
	"letterboxd/internal/dto/response"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	homeMovieCount  = 12
	homeReviewCount = 6
	homeListCount   = 3
)

type HomeService interface {
	GetHomePage(ctx context.Context) (*response.HomePage, error)
}

type homeService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewHomeService(repo *repository.Repository, log *zap.Logger) HomeService {
	return &homeService{
		repo: repo,
		log:  log.With(zap.String("service", "home")),
	}
}

// GetHomePage fetches movies, reviews and lists in parallel; any failure
// fails the page.
func (s *homeService) GetHomePage(ctx context.Context) (*response.HomePage, error) {
	page := &response.HomePage{}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		movies, err := s.repo.Movie.FindPublished(gctx)
		if err != nil {
			return err
		}
		page.Movies = firstN(movies, homeMovieCount)
		return nil
	})
	g.Go(func() error {
		reviews, err := s.repo.Review.FindAll(gctx)
		if err != nil {
			return err
		}
		page.Reviews = firstN(reviews, homeReviewCount)
		return nil
	})
	g.Go(func() error {
		lists, err := s.repo.List.FindPublic(gctx)
		if err != nil {
			return err
		}
		page.Lists = firstN(lists, homeListCount)
		return nil
	})

	if err := g.Wait(); err != nil {
		s.log.Error("Failed to load home page", zap.Error(err))
		return nil, fmt.Errorf("load home page: %w", err)
	}

	s.log.Debug("Home page loaded",
		zap.Int("movies", len(page.Movies)),
		zap.Int("reviews", len(page.Reviews)),
		zap.Int("lists", len(page.Lists)),
	)
	return page, nil
}

func firstN[T any](items []T, n int) []T {
	if len(items) > n {
		return items[:n]
	}
	return items
}
