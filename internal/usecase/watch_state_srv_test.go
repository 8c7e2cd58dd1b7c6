package usecase

import (
	"context"
	"errors"
	"testing"

	"letterboxd/internal/data/entity"
	"letterboxd/internal/dto/request"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const demoUser = "Demo User"

func ptr[T any](v T) *T { return &v }

func newWatchStateFixture(t *testing.T) (*watchStateService, *memCMS) {
	t.Helper()
	client := newMemCMS()
	client.add(t, "movies", "alien", "Alien", movieMeta("Ridley Scott", 1979, "Horror"))

	svc := NewWatchStateService(newTestRepo(client), zap.NewNop()).(*watchStateService)
	svc.now = fixedClock("2024-03-05")
	return svc, client
}

func TestApplyStatus_WatchedStampsDateOnce(t *testing.T) {
	state := &entity.WatchState{}
	ApplyStatus(state, entity.WatchStatusWatched, "2024-01-01")
	assert.Equal(t, "2024-01-01", state.DateWatched)

	ApplyStatus(state, entity.WatchStatusWatched, "2024-02-02")
	assert.Equal(t, "2024-01-01", state.DateWatched)

	other := &entity.WatchState{}
	ApplyStatus(other, entity.WatchStatusWantToWatch, "2024-01-01")
	assert.Empty(t, other.DateWatched)
}

func TestApplyRating_PositiveImpliesWatched(t *testing.T) {
	state := &entity.WatchState{Status: entity.WatchStatusWantToWatch}
	ApplyRating(state, 8, "2024-01-01")

	assert.Equal(t, 8, state.Rating)
	assert.Equal(t, entity.WatchStatusWatched, state.Status)
	assert.Equal(t, "2024-01-01", state.DateWatched)
}

func TestApplyRating_ZeroKeepsStatus(t *testing.T) {
	state := &entity.WatchState{Status: entity.WatchStatusWantToWatch, Rating: 5}
	ApplyRating(state, 0, "2024-01-01")

	assert.Zero(t, state.Rating)
	assert.Equal(t, entity.WatchStatusWantToWatch, state.Status)
	assert.Empty(t, state.DateWatched)
}

func TestWatchState_GetUntouchedIsZero(t *testing.T) {
	svc, _ := newWatchStateFixture(t)

	state, err := svc.GetState(context.Background(), demoUser, "alien")
	require.NoError(t, err)
	assert.Equal(t, "alien", state.MovieID)
	assert.Equal(t, entity.WatchStatusNone, state.Status)
	assert.Zero(t, state.Rating)
}

func TestWatchState_UpdateRatingPersists(t *testing.T) {
	svc, _ := newWatchStateFixture(t)
	ctx := context.Background()

	state, err := svc.UpdateState(ctx, demoUser, "alien", &request.WatchStateRequest{Rating: ptr(9), Liked: ptr(true)})
	require.NoError(t, err)
	assert.Equal(t, entity.WatchStatusWatched, state.Status)
	assert.Equal(t, "2024-03-05", state.DateWatched)
	assert.Equal(t, "2024-03-05", state.DateAdded)
	assert.True(t, state.Liked)

	again, err := svc.GetState(ctx, demoUser, "alien")
	require.NoError(t, err)
	assert.Equal(t, state.ID, again.ID)
	assert.Equal(t, 9, again.Rating)
}

func TestWatchState_ExplicitDateWins(t *testing.T) {
	svc, _ := newWatchStateFixture(t)

	state, err := svc.UpdateState(context.Background(), demoUser, "alien", &request.WatchStateRequest{
		Status:      ptr("watched"),
		DateWatched: ptr("2020-12-25"),
	})
	require.NoError(t, err)
	assert.Equal(t, "2020-12-25", state.DateWatched)
}

func TestWatchState_RejectsOutOfRangeRating(t *testing.T) {
	svc, _ := newWatchStateFixture(t)
	ctx := context.Background()

	_, err := svc.UpdateState(ctx, demoUser, "alien", &request.WatchStateRequest{Rating: ptr(11)})
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, verr.Fields, "Rating")

	state, err := svc.GetState(ctx, demoUser, "alien")
	require.NoError(t, err)
	assert.Zero(t, state.Rating)
}

func TestWatchState_UnknownMovie(t *testing.T) {
	svc, _ := newWatchStateFixture(t)

	_, err := svc.UpdateState(context.Background(), demoUser, "missing", &request.WatchStateRequest{Liked: ptr(true)})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestWatchState_ClearResetsEverything(t *testing.T) {
	svc, _ := newWatchStateFixture(t)
	ctx := context.Background()

	_, err := svc.UpdateState(ctx, demoUser, "alien", &request.WatchStateRequest{
		Rating: ptr(7),
		Notes:  ptr("great"),
		Liked:  ptr(true),
	})
	require.NoError(t, err)

	cleared, err := svc.ClearState(ctx, demoUser, "alien")
	require.NoError(t, err)
	assert.Equal(t, entity.WatchStatusNone, cleared.Status)

	state, err := svc.GetState(ctx, demoUser, "alien")
	require.NoError(t, err)
	assert.Equal(t, entity.WatchStatusNone, state.Status)
	assert.Zero(t, state.Rating)
	assert.False(t, state.Liked)
	assert.Empty(t, state.Notes)
	assert.Empty(t, state.DateWatched)
}

func addRemoteWatchlistEntry(t *testing.T, client *memCMS) {
	t.Helper()
	client.add(t, "user-movie-states", "demo-alien", "Demo Alien", map[string]any{
		"movie":      map[string]any{"id": "alien", "slug": "alien"},
		"user_name":  demoUser,
		"status":     map[string]string{"key": "want_to_watch"},
		"date_added": "2024-01-01",
	})
}

func TestWatchState_UntouchedFollowsRemoteWatchlist(t *testing.T) {
	svc, client := newWatchStateFixture(t)
	addRemoteWatchlistEntry(t, client)

	state, err := svc.GetState(context.Background(), demoUser, "alien")
	require.NoError(t, err)
	assert.True(t, state.InWatchlist())
	assert.Equal(t, "2024-01-01", state.DateAdded)
	assert.Equal(t, entity.WatchStatusNone, state.Status)
}

func TestWatchState_RatingKeepsWatchlistMembership(t *testing.T) {
	svc, client := newWatchStateFixture(t)
	addRemoteWatchlistEntry(t, client)
	ctx := context.Background()

	state, err := svc.UpdateState(ctx, demoUser, "alien", &request.WatchStateRequest{Rating: ptr(8)})
	require.NoError(t, err)
	assert.Equal(t, entity.WatchStatusWatched, state.Status)

	stored, err := svc.repo.WatchState.Get(ctx, "alien", demoUser)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.True(t, stored.InWatchlist())
	assert.Equal(t, "2024-01-01", stored.DateAdded)
}

func TestWatchState_ClearKeepsRemoteWatchlist(t *testing.T) {
	svc, client := newWatchStateFixture(t)
	addRemoteWatchlistEntry(t, client)
	ctx := context.Background()

	_, err := svc.UpdateState(ctx, demoUser, "alien", &request.WatchStateRequest{Rating: ptr(7)})
	require.NoError(t, err)

	cleared, err := svc.ClearState(ctx, demoUser, "alien")
	require.NoError(t, err)
	assert.True(t, cleared.InWatchlist())
	assert.Zero(t, cleared.Rating)

	stored, err := svc.repo.WatchState.Get(ctx, "alien", demoUser)
	require.NoError(t, err)
	assert.Nil(t, stored)
}

func TestWatchState_ClearKeepsLocalRemoval(t *testing.T) {
	svc, client := newWatchStateFixture(t)
	addRemoteWatchlistEntry(t, client)
	ctx := context.Background()

	require.NoError(t, svc.repo.WatchState.Save(ctx, &entity.WatchState{
		MovieID:  "alien",
		UserName: demoUser,
		Status:   entity.WatchStatusWatched,
		Rating:   6,
	}))

	cleared, err := svc.ClearState(ctx, demoUser, "alien")
	require.NoError(t, err)
	assert.False(t, cleared.InWatchlist())
	assert.Equal(t, entity.WatchStatusNone, cleared.Status)

	stored, err := svc.repo.WatchState.Get(ctx, "alien", demoUser)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.False(t, stored.InWatchlist())
	assert.Zero(t, stored.Rating)
}
