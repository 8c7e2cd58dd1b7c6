package usecase

import (
	"context"
	"fmt"
	"time"

	"letterboxd/internal/data/entity"
	"letterboxd/internal/data/repository"
	"letterboxd/internal/dto/request"
	"letterboxd/internal/dto/response"
	"letterboxd/pkg/utils"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type MovieService interface {
	ListMovies(ctx context.Context, filter *request.MovieFilter, page *request.PaginatedRequest) (*response.MovieCatalog, error)
	SearchMovies(ctx context.Context, query string) ([]entity.Movie, error)
	GetMovieDetail(ctx context.Context, slug, userName string) (*response.MovieDetail, error)
	GetRelatedMovies(ctx context.Context, slug string, limit int) ([]response.RelatedMovieResponse, error)
}

type movieService struct {
	repo *repository.Repository
	log  *zap.Logger
	now  func() time.Time
}

func NewMovieService(repo *repository.Repository, log *zap.Logger) MovieService {
	return &movieService{
		repo: repo,
		log:  log.With(zap.String("service", "movie")),
		now:  time.Now,
	}
}

func (s *movieService) ListMovies(ctx context.Context, filter *request.MovieFilter, page *request.PaginatedRequest) (*response.MovieCatalog, error) {
	if filter == nil {
		filter = &request.MovieFilter{}
	}
	if page == nil {
		page = request.NewPaginatedRequest(1, request.DefaultPerPage)
	}
	if err := validate(filter); err != nil {
		s.log.Warn("List movies filter rejected", zap.Error(err))
		return nil, err
	}

	var (
		movies []entity.Movie
		err    error
	)
	switch {
	case filter.Query != "":
		movies, err = s.repo.Movie.Search(ctx, filter.Query)
	case filter.Genre != "":
		movies, err = s.repo.Movie.FindByGenre(ctx, filter.Genre)
	default:
		movies, err = s.repo.Movie.FindPublished(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("list movies: %w", err)
	}

	filtered := FilterMovies(movies, filter, s.now())
	window := utils.Paginate(filtered, page.Page, page.Limit())

	s.log.Info("Movies listed",
		zap.String("query", filter.Query),
		zap.String("genre", filter.Genre),
		zap.Int("fetched", len(movies)),
		zap.Int("matched", len(filtered)),
		zap.Int("page", page.Page),
	)

	return &response.MovieCatalog{
		Movies:     window,
		Total:      len(filtered),
		Pagination: response.NewPaginationMeta(page.Page, page.Limit(), int64(len(filtered))),
		Genres:     mergeOptions(request.FilterGenres, genresOf(movies)),
		Countries:  mergeOptions(request.FilterCountries, countriesOf(movies)),
	}, nil
}

func (s *movieService) SearchMovies(ctx context.Context, query string) ([]entity.Movie, error) {
	movies, err := s.repo.Movie.Search(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("search movies: %w", err)
	}
	return movies, nil
}

// GetMovieDetail resolves the movie first; its reviews, the related pool and
// the viewer's state are then fetched in parallel.
func (s *movieService) GetMovieDetail(ctx context.Context, slug, userName string) (*response.MovieDetail, error) {
	movie, err := s.repo.Movie.FindBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("get movie: %w", err)
	}
	if movie == nil {
		return nil, notFound("movie", slug)
	}

	detail := &response.MovieDetail{Movie: movie}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		reviews, err := s.repo.Review.FindByMovieID(gctx, movie.ID)
		if err != nil {
			return err
		}
		detail.Reviews = reviews
		return nil
	})
	g.Go(func() error {
		pool, err := s.repo.Movie.FindPublished(gctx)
		if err != nil {
			s.log.Warn("Related movies unavailable", zap.Error(err), zap.String("slug", slug))
			return nil
		}
		detail.Related = RelatedMovies(movie, pool, DefaultRelatedLimit)
		return nil
	})
	g.Go(func() error {
		state, err := s.repo.WatchState.Get(gctx, movie.ID, userName)
		if err != nil {
			s.log.Warn("Watch state unavailable", zap.Error(err), zap.String("movie_id", movie.ID))
			return nil
		}
		detail.State = state
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("get movie detail: %w", err)
	}

	if detail.State == nil {
		detail.State = &entity.WatchState{MovieID: movie.ID, UserName: userName}
	}

	s.log.Debug("Movie detail loaded",
		zap.String("slug", slug),
		zap.Int("reviews", len(detail.Reviews)),
		zap.Int("related", len(detail.Related)),
	)
	return detail, nil
}

func (s *movieService) GetRelatedMovies(ctx context.Context, slug string, limit int) ([]response.RelatedMovieResponse, error) {
	movie, err := s.repo.Movie.FindBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("get movie: %w", err)
	}
	if movie == nil {
		return nil, notFound("movie", slug)
	}

	pool, err := s.repo.Movie.FindPublished(ctx)
	if err != nil {
		return nil, fmt.Errorf("get related movies: %w", err)
	}

	ranked := rankRelated(movie, pool, limit)
	out := make([]response.RelatedMovieResponse, len(ranked))
	for i := range ranked {
		out[i] = response.RelatedMovieResponse{
			MovieResponse: response.MovieToResponse(&ranked[i].movie),
			Score:         ranked[i].score,
		}
	}
	return out, nil
}
