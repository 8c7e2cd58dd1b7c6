package view

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"letterboxd/internal/data/entity"
	"letterboxd/internal/dto/request"
	"letterboxd/internal/dto/response"
	"letterboxd/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newRenderer(t *testing.T) *Renderer {
	t.Helper()
	r, err := New("Letterboxd Clone", zap.NewNop())
	require.NoError(t, err)
	return r
}

func render(t *testing.T, r *Renderer, name string, data any) (int, string) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(utils.SetUserContext(req.Context(), "Demo User"))
	rec := httptest.NewRecorder()

	r.Render(rec, req, http.StatusOK, name, Page{Title: "T", Data: data})
	return rec.Code, rec.Body.String()
}

func sampleMovie() entity.Movie {
	return entity.Movie{
		Base: entity.Base{ID: "m1", Slug: "alien", Title: "Alien"},
		Metadata: entity.MovieMetadata{
			Director:    "Ridley Scott",
			ReleaseYear: 1979,
			Genres:      []string{"Horror"},
			Cast:        "Sigourney Weaver, Tom Skerritt",
			PosterImage: &entity.Image{ImgixURL: "https://imgix.example/alien.jpg"},
			Status:      entity.KeyValue{Key: entity.MovieStatusPublished},
		},
	}
}

func TestRender_AllPagesParse(t *testing.T) {
	r := newRenderer(t)
	for _, name := range []string{"home", "movies", "movie", "reviews", "lists", "list", "people", "person", "watchlist", "submissions", "not_found", "error"} {
		_, ok := r.pages[name]
		assert.True(t, ok, name)
	}
}

func TestRender_UnknownTemplate(t *testing.T) {
	code, _ := render(t, newRenderer(t), "nope", nil)
	assert.Equal(t, http.StatusInternalServerError, code)
}

func TestRender_Home(t *testing.T) {
	code, body := render(t, newRenderer(t), "home", &response.HomePage{
		Movies: []entity.Movie{sampleMovie()},
		Lists:  []entity.MovieList{{Base: entity.Base{Slug: "best", Title: "Best of"}, Metadata: entity.MovieListMetadata{Tags: "horror, classics"}}},
	})

	assert.Equal(t, http.StatusOK, code)
	assert.Contains(t, body, `href="/movies/alien"`)
	assert.Contains(t, body, "https://imgix.example/alien.jpg?w=400")
	assert.Contains(t, body, "Best of")
	assert.Contains(t, body, "classics")
	assert.Contains(t, body, "Signed in as Demo User")
}

func TestRender_SpoilerGate(t *testing.T) {
	reviews := []entity.Review{
		{Base: entity.Base{Title: "Safe"}, Metadata: entity.ReviewMetadata{ReviewText: "Loved it", Rating: 7}},
		{Base: entity.Base{Title: "Careful"}, Metadata: entity.ReviewMetadata{ReviewText: "The cat lives", ContainsSpoilers: true}},
	}
	_, body := render(t, newRenderer(t), "reviews", ReviewsData{Reviews: reviews})

	assert.Contains(t, body, "<p>Loved it</p>")
	assert.Contains(t, body, "★★★½")
	assert.Contains(t, body, `<details class="spoiler">`)
	assert.Contains(t, body, "This review contains spoilers")
}

func TestRender_MovieDetail(t *testing.T) {
	m := sampleMovie()
	detail := &response.MovieDetail{
		Movie:   &m,
		Related: []entity.Movie{{Base: entity.Base{Slug: "aliens", Title: "Aliens"}}},
		State:   &entity.WatchState{MovieID: "m1", Status: entity.WatchStatusWatched, Rating: 8},
	}
	code, body := render(t, newRenderer(t), "movie", NewMovieData(detail, true))

	assert.Equal(t, http.StatusOK, code)
	assert.Contains(t, body, "Directed by Ridley Scott")
	assert.Contains(t, body, "Sigourney Weaver, Tom Skerritt")
	assert.Contains(t, body, "In Watchlist")
	assert.Contains(t, body, `<option value="watched" selected>`)
	assert.Contains(t, body, `href="/movies/aliens"`)
	assert.NotContains(t, body, "<iframe")
}

func TestRender_MovieTrailerEmbed(t *testing.T) {
	m := sampleMovie()
	m.Metadata.TrailerURL = "https://youtu.be/LjLamj-b0I8"

	_, body := render(t, newRenderer(t), "movie", NewMovieData(&response.MovieDetail{Movie: &m}, false))
	assert.Contains(t, body, `<iframe src="https://www.youtube.com/embed/LjLamj-b0I8?rel=0"`)
}

func TestRender_SubmissionErrors(t *testing.T) {
	_, body := render(t, newRenderer(t), "submissions", SubmissionsData{
		Form:   request.MovieSubmissionRequest{IMDbURL: "https://example.com"},
		Errors: map[string]string{"IMDbURL": "Please enter a valid IMDb URL"},
		Submissions: []entity.MovieSubmission{{
			Metadata: entity.MovieSubmissionMetadata{
				IMDbURL:     "https://www.imdb.com/title/tt0111161/",
				SubmittedBy: "Ana",
				Status:      entity.SubmissionStatus(entity.SubmissionStatusNeedsChanges),
			},
		}},
	})

	assert.Contains(t, body, "Please enter a valid IMDb URL")
	assert.Contains(t, body, `value="https://example.com"`)
	assert.Contains(t, body, "Needs Changes")
	assert.Contains(t, body, "status-needs_changes")
}

func TestNewPager(t *testing.T) {
	meta := response.NewPaginationMeta(2, 10, 35)
	p := NewPager(meta, "/movies", url.Values{"q": {"alien"}, "page": {"2"}})

	assert.Equal(t, "/movies?page=1&q=alien", p.PrevURL)
	assert.Equal(t, "/movies?page=3&q=alien", p.NextURL)

	last := NewPager(response.NewPaginationMeta(4, 10, 35), "/movies", nil)
	assert.Empty(t, last.NextURL)
}

func TestStars(t *testing.T) {
	assert.Equal(t, "", Stars(0))
	assert.Equal(t, "½", Stars(1))
	assert.Equal(t, "★★★★★", Stars(10))
	assert.Equal(t, "★★★★★", Stars(12))
}

func TestPlural(t *testing.T) {
	assert.Equal(t, "1 movie", Plural(1, "movie", "movies"))
	assert.Equal(t, "0 movies", Plural(0, "movie", "movies"))
}
