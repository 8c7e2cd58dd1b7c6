package repository

import (
	"context"
	"sort"
	"sync"

	"letterboxd/internal/data/entity"

	"go.uber.org/zap"
)

// WatchStateRepository keeps per (movie, user) watch state outside the CMS.
// There is no conflict resolution and no expiry: the last write wins.
type WatchStateRepository interface {
	Get(ctx context.Context, movieID, userName string) (*entity.WatchState, error)
	Save(ctx context.Context, state *entity.WatchState) error
	Delete(ctx context.Context, movieID, userName string) error
	FindByUser(ctx context.Context, userName string) ([]entity.WatchState, error)
}

type stateKey struct {
	movieID  string
	userName string
}

type memoryWatchStateRepository struct {
	mu     sync.RWMutex
	states map[stateKey]entity.WatchState
	log    *zap.Logger
}

// NewMemoryWatchStateRepository keeps state in process memory; it is lost
// on restart.
func NewMemoryWatchStateRepository(log *zap.Logger) WatchStateRepository {
	return &memoryWatchStateRepository{
		states: make(map[stateKey]entity.WatchState),
		log:    log.With(zap.String("repository", "watch_state_memory")),
	}
}

func (r *memoryWatchStateRepository) Get(ctx context.Context, movieID, userName string) (*entity.WatchState, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	state, ok := r.states[stateKey{movieID, userName}]
	if !ok {
		return nil, nil
	}
	return &state, nil
}

func (r *memoryWatchStateRepository) Save(ctx context.Context, state *entity.WatchState) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.states[stateKey{state.MovieID, state.UserName}] = *state

	r.log.Debug("Watch state saved",
		zap.String("movie_id", state.MovieID),
		zap.String("user", state.UserName),
		zap.String("status", string(state.Status)),
	)
	return nil
}

func (r *memoryWatchStateRepository) Delete(ctx context.Context, movieID, userName string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.states, stateKey{movieID, userName})
	return nil
}

// FindByUser returns the user's records, most recently updated first.
func (r *memoryWatchStateRepository) FindByUser(ctx context.Context, userName string) ([]entity.WatchState, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]entity.WatchState, 0)
	for key, state := range r.states {
		if key.userName == userName {
			out = append(out, state)
		}
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].UpdatedAt.Equal(out[j].UpdatedAt) {
			return out[i].MovieID < out[j].MovieID
		}
		return out[i].UpdatedAt.After(out[j].UpdatedAt)
	})
	return out, nil
}
