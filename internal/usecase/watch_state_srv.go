package usecase

import (
	"context"
	"fmt"
	"time"

	"letterboxd/internal/data/entity"
	"letterboxd/internal/data/repository"
	"letterboxd/internal/dto/request"
	"letterboxd/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type WatchStateService interface {
	GetState(ctx context.Context, userName, slug string) (*entity.WatchState, error)
	UpdateState(ctx context.Context, userName, slug string, req *request.WatchStateRequest) (*entity.WatchState, error)
	ClearState(ctx context.Context, userName, slug string) (*entity.WatchState, error)
}

type watchStateService struct {
	repo *repository.Repository
	log  *zap.Logger
	now  func() time.Time
}

func NewWatchStateService(repo *repository.Repository, log *zap.Logger) WatchStateService {
	return &watchStateService{
		repo: repo,
		log:  log.With(zap.String("service", "watch_state")),
		now:  time.Now,
	}
}

// GetState never returns nil: a movie the user never touched has the zero
// state, on the watchlist only if the CMS lists it there.
func (s *watchStateService) GetState(ctx context.Context, userName, slug string) (*entity.WatchState, error) {
	movie, err := s.publishedMovie(ctx, slug)
	if err != nil {
		return nil, err
	}

	state, err := s.repo.WatchState.Get(ctx, movie.ID, userName)
	if err != nil {
		return nil, fmt.Errorf("get watch state: %w", err)
	}
	if state == nil {
		return seedWatchState(ctx, s.repo, userName, movie.ID)
	}
	return state, nil
}

// UpdateState applies the non-nil fields of req in order: status, rating,
// liked, notes, date watched. Nothing is stored if validation or the write
// fails.
func (s *watchStateService) UpdateState(ctx context.Context, userName, slug string, req *request.WatchStateRequest) (*entity.WatchState, error) {
	if err := validate(req); err != nil {
		s.log.Warn("Watch state update rejected", zap.Error(err), zap.String("slug", slug))
		return nil, err
	}

	state, err := s.GetState(ctx, userName, slug)
	if err != nil {
		return nil, err
	}

	next := *state
	today := utils.Today(s.now)

	if req.Status != nil {
		ApplyStatus(&next, parseWatchStatus(*req.Status), today)
	}
	if req.Rating != nil {
		ApplyRating(&next, *req.Rating, today)
	}
	if req.Liked != nil {
		next.Liked = *req.Liked
	}
	if req.Notes != nil {
		next.Notes = *req.Notes
	}
	if req.DateWatched != nil {
		next.DateWatched = *req.DateWatched
	}

	if err := s.save(ctx, &next, today); err != nil {
		return nil, err
	}

	s.log.Info("Watch state updated",
		zap.String("movie_id", next.MovieID),
		zap.String("user", userName),
		zap.String("status", string(next.Status)),
		zap.Int("rating", next.Rating),
	)
	return &next, nil
}

// ClearState resets status, rating, liked, notes and dates. Watchlist
// membership is left alone: the record is dropped when the CMS alone gives
// the same membership, otherwise a cleared record keeps it.
func (s *watchStateService) ClearState(ctx context.Context, userName, slug string) (*entity.WatchState, error) {
	movie, err := s.publishedMovie(ctx, slug)
	if err != nil {
		return nil, err
	}

	seed, err := seedWatchState(ctx, s.repo, userName, movie.ID)
	if err != nil {
		return nil, err
	}
	existing, err := s.repo.WatchState.Get(ctx, movie.ID, userName)
	if err != nil {
		return nil, fmt.Errorf("clear watch state: %w", err)
	}

	if existing == nil || existing.OnWatchlist == seed.OnWatchlist {
		if err := s.repo.WatchState.Delete(ctx, movie.ID, userName); err != nil {
			return nil, fmt.Errorf("clear watch state: %w", err)
		}
		s.log.Info("Watch state cleared", zap.String("movie_id", movie.ID), zap.String("user", userName))
		return seed, nil
	}

	cleared := &entity.WatchState{
		ID:          existing.ID,
		MovieID:     movie.ID,
		UserName:    userName,
		DateAdded:   existing.DateAdded,
		OnWatchlist: existing.OnWatchlist,
	}
	if err := s.save(ctx, cleared, ""); err != nil {
		return nil, err
	}

	s.log.Info("Watch state cleared", zap.String("movie_id", movie.ID), zap.String("user", userName))
	return cleared, nil
}

func (s *watchStateService) publishedMovie(ctx context.Context, slug string) (*entity.Movie, error) {
	movie, err := s.repo.Movie.FindBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("get movie: %w", err)
	}
	if movie == nil {
		return nil, notFound("movie", slug)
	}
	return movie, nil
}

func (s *watchStateService) save(ctx context.Context, state *entity.WatchState, today string) error {
	return saveWatchState(ctx, s.repo, state, today, s.now())
}

// saveWatchState assigns an id and date_added to a first record, then stores it.
func saveWatchState(ctx context.Context, repo *repository.Repository, state *entity.WatchState, today string, now time.Time) error {
	if state.ID == uuid.Nil {
		state.ID = uuid.New()
	}
	if state.DateAdded == "" && today != "" && (state.Status != entity.WatchStatusNone || state.OnWatchlist) {
		state.DateAdded = today
	}
	state.UpdatedAt = now

	if err := repo.WatchState.Save(ctx, state); err != nil {
		return fmt.Errorf("save watch state: %w", err)
	}
	return nil
}

// ApplyStatus sets status; marking a movie watched stamps today's date
// unless one is already set.
func ApplyStatus(state *entity.WatchState, status entity.WatchStatus, today string) {
	state.Status = status
	if status == entity.WatchStatusWatched && state.DateWatched == "" {
		state.DateWatched = today
	}
}

// ApplyRating sets the 0-10 rating; any positive rating implies the movie
// was watched.
func ApplyRating(state *entity.WatchState, rating int, today string) {
	state.Rating = rating
	if rating > 0 && state.Status != entity.WatchStatusWatched {
		state.Status = entity.WatchStatusWatched
		if state.DateWatched == "" {
			state.DateWatched = today
		}
	}
}

func parseWatchStatus(s string) entity.WatchStatus {
	if s == "none" {
		return entity.WatchStatusNone
	}
	return entity.WatchStatus(s)
}

// seedWatchState is the state of a movie with no local record: membership
// and date added come from the CMS watchlist.
func seedWatchState(ctx context.Context, repo *repository.Repository, userName, movieID string) (*entity.WatchState, error) {
	states, err := repo.UserState.FindWatchlist(ctx, userName)
	if err != nil {
		return nil, fmt.Errorf("get watchlist: %w", err)
	}

	state := &entity.WatchState{MovieID: movieID, UserName: userName}
	for i := range states {
		if m := states[i].Metadata.Movie; m != nil && m.ID == movieID {
			state.OnWatchlist = true
			state.DateAdded = states[i].Metadata.DateAdded
			break
		}
	}
	return state, nil
}
