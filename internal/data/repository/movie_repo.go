package repository

import (
	"context"

	"letterboxd/internal/data/entity"
	"letterboxd/pkg/cms"

	"go.uber.org/zap"
)

const (
	TypeMovies           = "movies"
	TypeReviews          = "reviews"
	TypeLists            = "lists"
	TypePeople           = "people"
	TypeMovieSubmissions = "movie-submissions"
	TypeUserMovieStates  = "user-movie-states"
)

type MovieRepository interface {
	FindPublished(ctx context.Context) ([]entity.Movie, error)
	FindBySlug(ctx context.Context, slug string) (*entity.Movie, error)
	FindByGenre(ctx context.Context, genre string) ([]entity.Movie, error)
	Search(ctx context.Context, query string) ([]entity.Movie, error)
}

type movieRepository struct {
	client cms.Client
	log    *zap.Logger
}

func NewMovieRepository(client cms.Client, log *zap.Logger) MovieRepository {
	return &movieRepository{
		client: client,
		log:    log.With(zap.String("repository", "movie")),
	}
}

func publishedMovies() cms.Query {
	return cms.NewQuery(TypeMovies).
		Where("metadata.status.key", entity.MovieStatusPublished).
		WithProps(cms.DefaultProps...).
		WithDepth(1)
}

func (r *movieRepository) FindPublished(ctx context.Context) ([]entity.Movie, error) {
	movies, err := findAll[entity.Movie](ctx, r.client, publishedMovies(), "movies")
	if err != nil {
		r.log.Error("Failed to find movies", zap.Error(err))
		return nil, err
	}

	r.log.Debug("Movies found", zap.Int("count", len(movies)))
	return movies, nil
}

// FindBySlug returns nil for a missing movie and for any movie that is not
// published.
func (r *movieRepository) FindBySlug(ctx context.Context, slug string) (*entity.Movie, error) {
	q := cms.NewQuery(TypeMovies).WithSlug(slug).WithDepth(1)

	movie, err := findOne[entity.Movie](ctx, r.client, q, "movie")
	if err != nil {
		r.log.Error("Failed to find movie by slug", zap.Error(err), zap.String("slug", slug))
		return nil, err
	}

	if !movie.IsPublished() {
		if movie != nil {
			r.log.Debug("Movie hidden, not published",
				zap.String("slug", slug),
				zap.String("status", movie.Metadata.Status.Key),
			)
		}
		return nil, nil
	}

	return movie, nil
}

func (r *movieRepository) FindByGenre(ctx context.Context, genre string) ([]entity.Movie, error) {
	q := publishedMovies().Where("metadata.genres", genre)

	movies, err := findAll[entity.Movie](ctx, r.client, q, "movies by genre")
	if err != nil {
		r.log.Error("Failed to find movies by genre", zap.Error(err), zap.String("genre", genre))
		return nil, err
	}
	return movies, nil
}

// Search filters published movies on title, director and cast. The CMS has
// no full-text query, so matching happens here.
func (r *movieRepository) Search(ctx context.Context, query string) ([]entity.Movie, error) {
	movies, err := findAll[entity.Movie](ctx, r.client, publishedMovies(), "search results")
	if err != nil {
		r.log.Error("Failed to search movies", zap.Error(err), zap.String("query", query))
		return nil, err
	}

	matched := make([]entity.Movie, 0, len(movies))
	for i := range movies {
		if movies[i].Matches(query) {
			matched = append(matched, movies[i])
		}
	}

	r.log.Debug("Movies searched",
		zap.String("query", query),
		zap.Int("matched", len(matched)),
		zap.Int("scanned", len(movies)),
	)
	return matched, nil
}
