package response

import (
	"letterboxd/internal/data/entity"
)

// MovieResponse is the card view of a movie used by the JSON API.
type MovieResponse struct {
	ID             string   `json:"id"`
	Slug           string   `json:"slug"`
	Title          string   `json:"title"`
	ReleaseYear    int      `json:"release_year,omitempty"`
	Director       string   `json:"director,omitempty"`
	Genres         []string `json:"genres"`
	RuntimeMinutes int      `json:"runtime_minutes,omitempty"`
	IMDbRating     float64  `json:"imdb_rating,omitempty"`
	Country        string   `json:"country,omitempty"`
	PosterURL      string   `json:"poster_url,omitempty"`
}

// RelatedMovieResponse carries the similarity score next to the card.
type RelatedMovieResponse struct {
	MovieResponse
	Score int `json:"score"`
}

// MovieDetail is everything the movie page shows.
type MovieDetail struct {
	Movie   *entity.Movie
	Reviews []entity.Review
	Related []entity.Movie
	State   *entity.WatchState
}

// MovieCatalog is one page of the movies listing plus the filter options.
type MovieCatalog struct {
	Movies     []entity.Movie
	Total      int
	Pagination PaginationMeta
	Genres     []string
	Countries  []string
}

func MovieToResponse(movie *entity.Movie) MovieResponse {
	genres := movie.Metadata.Genres
	if genres == nil {
		genres = []string{}
	}

	return MovieResponse{
		ID:             movie.ID,
		Slug:           movie.Slug,
		Title:          movie.Title,
		ReleaseYear:    movie.Metadata.ReleaseYear,
		Director:       movie.Metadata.Director,
		Genres:         genres,
		RuntimeMinutes: movie.Metadata.RuntimeMinutes,
		IMDbRating:     movie.Metadata.IMDbRating,
		Country:        movie.Metadata.Country,
		PosterURL:      movie.Metadata.PosterImage.Src(""),
	}
}

func MoviesToResponse(movies []entity.Movie) []MovieResponse {
	out := make([]MovieResponse, len(movies))
	for i := range movies {
		out[i] = MovieToResponse(&movies[i])
	}
	return out
}
