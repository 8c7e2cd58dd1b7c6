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

func newMovieFixture(t *testing.T) (*movieService, *memCMS) {
	t.Helper()
	client := newMemCMS()
	client.add(t, "movies", "alien", "Alien", movieMeta("Ridley Scott", 1979, "Horror", "Sci-Fi"))
	client.add(t, "movies", "blade-runner", "Blade Runner", movieMeta("Ridley Scott", 1982, "Sci-Fi"))
	client.add(t, "movies", "heat", "Heat", movieMeta("Michael Mann", 1995, "Crime"))
	client.add(t, "movies", "unreleased", "Unreleased", map[string]any{
		"director": "Ridley Scott",
		"status":   map[string]string{"key": "pending"},
	})
	client.add(t, "reviews", "alien-review", "Still scary", map[string]any{
		"movie":       map[string]any{"id": "alien", "slug": "alien", "title": "Alien"},
		"rating":      9,
		"review_date": "2024-02-01",
		"author_name": "Demo User",
	})

	svc := NewMovieService(newTestRepo(client), zap.NewNop()).(*movieService)
	svc.now = fixedClock("2024-03-05")
	return svc, client
}

func slugsOf(movies []entity.Movie) []string {
	out := make([]string, len(movies))
	for i := range movies {
		out[i] = movies[i].Slug
	}
	return out
}

func TestListMovies_PublishedOnly(t *testing.T) {
	svc, _ := newMovieFixture(t)

	catalog, err := svc.ListMovies(context.Background(), nil, nil)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"alien", "blade-runner", "heat"}, slugsOf(catalog.Movies))
	assert.Equal(t, 3, catalog.Total)
	assert.Contains(t, catalog.Genres, "Sci-Fi")
}

func TestListMovies_SearchAndGenre(t *testing.T) {
	svc, _ := newMovieFixture(t)
	ctx := context.Background()

	catalog, err := svc.ListMovies(ctx, &request.MovieFilter{Query: "RIDLEY"}, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"alien", "blade-runner"}, slugsOf(catalog.Movies))

	catalog, err = svc.ListMovies(ctx, &request.MovieFilter{Genre: "Crime"}, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"heat"}, slugsOf(catalog.Movies))
}

func TestListMovies_Paginates(t *testing.T) {
	svc, _ := newMovieFixture(t)

	catalog, err := svc.ListMovies(context.Background(), nil, request.NewPaginatedRequest(2, 2))
	require.NoError(t, err)
	assert.Len(t, catalog.Movies, 1)
	assert.Equal(t, 2, catalog.Pagination.TotalPages)
	assert.False(t, catalog.Pagination.HasNext())
	assert.True(t, catalog.Pagination.HasPrev())
}

func TestListMovies_InvalidFilter(t *testing.T) {
	svc, _ := newMovieFixture(t)

	_, err := svc.ListMovies(context.Background(), &request.MovieFilter{RatingMax: 11}, nil)
	var verr *ValidationError
	assert.True(t, errors.As(err, &verr))
}

func TestListMovies_FetchFailure(t *testing.T) {
	svc, client := newMovieFixture(t)
	client.failType["movies"] = errors.New("boom")

	_, err := svc.ListMovies(context.Background(), nil, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to fetch movies")
}

func TestGetMovieDetail(t *testing.T) {
	svc, _ := newMovieFixture(t)

	detail, err := svc.GetMovieDetail(context.Background(), "alien", demoUser)
	require.NoError(t, err)
	assert.Equal(t, "Alien", detail.Movie.Title)
	require.Len(t, detail.Reviews, 1)
	assert.Equal(t, "Still scary", detail.Reviews[0].Title)
	assert.Equal(t, []string{"blade-runner"}, slugsOf(detail.Related))
	require.NotNil(t, detail.State)
	assert.Equal(t, entity.WatchStatusNone, detail.State.Status)
}

func TestGetMovieDetail_HiddenWhenNotPublished(t *testing.T) {
	svc, _ := newMovieFixture(t)

	_, err := svc.GetMovieDetail(context.Background(), "unreleased", demoUser)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.GetMovieDetail(context.Background(), "nope", demoUser)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetMovieDetail_ReviewFailureFailsPage(t *testing.T) {
	svc, client := newMovieFixture(t)
	client.failType["reviews"] = errors.New("boom")

	_, err := svc.GetMovieDetail(context.Background(), "alien", demoUser)
	assert.Error(t, err)
}

func TestGetRelatedMovies(t *testing.T) {
	svc, _ := newMovieFixture(t)

	related, err := svc.GetRelatedMovies(context.Background(), "alien", 6)
	require.NoError(t, err)
	require.Len(t, related, 1)
	assert.Equal(t, "blade-runner", related[0].Slug)
	assert.Equal(t, 15, related[0].Score)
}
