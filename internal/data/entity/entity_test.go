package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMovie_UnmarshalBareID(t *testing.T) {
	var r ReviewMetadata
	require.NoError(t, json.Unmarshal([]byte(`{"movie":"65a1","author_name":"Ann"}`), &r))
	require.NotNil(t, r.Movie)
	assert.Equal(t, "65a1", r.Movie.ID)
	assert.Equal(t, "Ann", r.AuthorName)
}

func TestMovie_UnmarshalExpanded(t *testing.T) {
	raw := `{"id":"m1","slug":"alien","title":"Alien","metadata":{"director":"Ridley Scott","release_year":1979,"genres":["Horror","Sci-Fi"],"status":{"key":"published","value":"Published"}}}`

	var m Movie
	require.NoError(t, json.Unmarshal([]byte(raw), &m))
	assert.Equal(t, "m1", m.ID)
	assert.Equal(t, "Alien", m.Title)
	assert.Equal(t, 1979, m.Metadata.ReleaseYear)
	assert.True(t, m.IsPublished())
	assert.True(t, m.HasGenre("sci-fi"))
}

func TestMovie_IsPublished(t *testing.T) {
	var nilMovie *Movie
	assert.False(t, nilMovie.IsPublished())

	m := &Movie{Metadata: MovieMetadata{Status: KeyValue{Key: MovieStatusDraft}}}
	assert.False(t, m.IsPublished())
}

func TestMovie_CastList(t *testing.T) {
	m := &Movie{Metadata: MovieMetadata{Cast: "Sigourney Weaver, Tom Skerritt ,, John Hurt"}}
	assert.Equal(t, []string{"Sigourney Weaver", "Tom Skerritt", "John Hurt"}, m.CastList())
}

func TestImage_Src(t *testing.T) {
	var none *Image
	assert.Equal(t, "", none.Src("w=400"))

	img := &Image{URL: "https://cdn/x.jpg", ImgixURL: "https://imgix/x.jpg"}
	assert.Equal(t, "https://imgix/x.jpg?w=400", img.Src("w=400"))
	assert.Equal(t, "https://imgix/x.jpg", img.Src(""))

	plain := &Image{URL: "https://cdn/x.jpg"}
	assert.Equal(t, "https://cdn/x.jpg", plain.Src("w=400"))
}

func TestMovieList_TagList(t *testing.T) {
	l := &MovieList{Metadata: MovieListMetadata{Tags: "horror, 80s ,classics"}}
	assert.Equal(t, []string{"horror", "80s", "classics"}, l.TagList())
}

func TestWatchStatus(t *testing.T) {
	assert.True(t, WatchStatusWatched.Valid())
	assert.True(t, WatchStatusNone.Valid())
	assert.False(t, WatchStatus("abandoned").Valid())
	assert.Equal(t, "Want to Watch", WatchStatusWantToWatch.Label())

	var s *WatchState
	assert.False(t, s.InWatchlist())
	assert.True(t, (&WatchState{OnWatchlist: true}).InWatchlist())
	assert.False(t, (&WatchState{Status: WatchStatusWantToWatch}).InWatchlist())
}

func TestKeyValue_Label(t *testing.T) {
	assert.Equal(t, "Published", KeyValue{Key: "published", Value: "Published"}.Label())
	assert.Equal(t, "draft", KeyValue{Key: "draft"}.Label())
	assert.Equal(t, "Needs Changes", SubmissionStatus(SubmissionStatusNeedsChanges).Value)
}
