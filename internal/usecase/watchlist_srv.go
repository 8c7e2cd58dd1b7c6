package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"letterboxd/internal/data/entity"
	"letterboxd/internal/data/repository"
	"letterboxd/internal/dto/response"
	"letterboxd/pkg/utils"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// WatchlistService merges the CMS watchlist with locally stored state. A
// local record for a movie always decides its membership.
type WatchlistService interface {
	GetWatchlist(ctx context.Context, userName string) ([]response.WatchlistItem, error)
	ToggleWatchlist(ctx context.Context, userName, slug string) (bool, error)
	IsInWatchlist(ctx context.Context, userName, movieID string) (bool, error)
}

type watchlistService struct {
	repo *repository.Repository
	log  *zap.Logger
	now  func() time.Time
}

func NewWatchlistService(repo *repository.Repository, log *zap.Logger) WatchlistService {
	return &watchlistService{
		repo: repo,
		log:  log.With(zap.String("service", "watchlist")),
		now:  time.Now,
	}
}

func (s *watchlistService) GetWatchlist(ctx context.Context, userName string) ([]response.WatchlistItem, error) {
	var (
		remote []entity.UserMovieState
		local  []entity.WatchState
		movies []entity.Movie
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		remote, err = s.repo.UserState.FindWatchlist(gctx, userName)
		return err
	})
	g.Go(func() error {
		var err error
		local, err = s.repo.WatchState.FindByUser(gctx, userName)
		return err
	})
	g.Go(func() error {
		var err error
		movies, err = s.repo.Movie.FindPublished(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		s.log.Error("Failed to load watchlist", zap.Error(err), zap.String("user", userName))
		return nil, fmt.Errorf("get watchlist: %w", err)
	}

	published := make(map[string]entity.Movie, len(movies))
	for _, m := range movies {
		published[m.ID] = m
	}

	items := make([]response.WatchlistItem, 0)
	decided := make(map[string]bool, len(local))

	for _, st := range local {
		decided[st.MovieID] = true
		if !st.InWatchlist() {
			continue
		}
		if m, ok := published[st.MovieID]; ok {
			items = append(items, response.WatchlistItem{Movie: m, DateAdded: st.DateAdded})
		}
	}

	for _, st := range remote {
		ref := st.Metadata.Movie
		if ref == nil || decided[ref.ID] {
			continue
		}
		decided[ref.ID] = true
		if m, ok := published[ref.ID]; ok {
			items = append(items, response.WatchlistItem{Movie: m, DateAdded: st.Metadata.DateAdded})
		}
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].DateAdded > items[j].DateAdded
	})

	s.log.Debug("Watchlist loaded",
		zap.String("user", userName),
		zap.Int("remote", len(remote)),
		zap.Int("local", len(local)),
		zap.Int("items", len(items)),
	)
	return items, nil
}

// ToggleWatchlist flips membership and returns the new membership. Status,
// rating and the date first added are left as they are.
func (s *watchlistService) ToggleWatchlist(ctx context.Context, userName, slug string) (bool, error) {
	movie, err := s.repo.Movie.FindBySlug(ctx, slug)
	if err != nil {
		return false, fmt.Errorf("get movie: %w", err)
	}
	if movie == nil {
		return false, notFound("movie", slug)
	}

	state, err := s.repo.WatchState.Get(ctx, movie.ID, userName)
	if err != nil {
		return false, fmt.Errorf("get watch state: %w", err)
	}

	if state == nil {
		state, err = seedWatchState(ctx, s.repo, userName, movie.ID)
		if err != nil {
			return false, err
		}
	}

	member := state.InWatchlist()
	next := *state
	next.OnWatchlist = !member

	if err := saveWatchState(ctx, s.repo, &next, utils.Today(s.now), s.now()); err != nil {
		return false, err
	}

	s.log.Info("Watchlist toggled",
		zap.String("movie_id", movie.ID),
		zap.String("user", userName),
		zap.Bool("in_watchlist", !member),
	)
	return !member, nil
}

func (s *watchlistService) IsInWatchlist(ctx context.Context, userName, movieID string) (bool, error) {
	state, err := s.repo.WatchState.Get(ctx, movieID, userName)
	if err != nil {
		return false, fmt.Errorf("get watch state: %w", err)
	}
	if state == nil {
		state, err = seedWatchState(ctx, s.repo, userName, movieID)
		if err != nil {
			return false, err
		}
	}
	return state.InWatchlist(), nil
}
