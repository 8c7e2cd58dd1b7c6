package usecase

import (
	"slices"
	"sort"

	"letterboxd/internal/data/entity"
)

const (
	DefaultRelatedLimit = 6

	sameDirectorScore = 10
	sharedGenreScore  = 3
	closeYearScore    = 2
	closeYearWindow   = 5
)

// RelatedScore rates how similar candidate is to ref.
func RelatedScore(ref, candidate *entity.Movie) int {
	score := 0

	if d := ref.Metadata.Director; d != "" && d == candidate.Metadata.Director {
		score += sameDirectorScore
	}

	// Genres match exactly here; HasGenre folds case for user filters.
	for _, genre := range ref.Metadata.Genres {
		if slices.Contains(candidate.Metadata.Genres, genre) {
			score += sharedGenreScore
		}
	}

	refYear, candYear := ref.Metadata.ReleaseYear, candidate.Metadata.ReleaseYear
	if refYear > 0 && candYear > 0 && abs(refYear-candYear) <= closeYearWindow {
		score += closeYearScore
	}

	return score
}

type scoredMovie struct {
	movie entity.Movie
	score int
}

// RelatedMovies ranks pool against ref, dropping ref itself and anything
// scoring zero. Ties keep pool order. A non-positive limit means
// DefaultRelatedLimit.
func RelatedMovies(ref *entity.Movie, pool []entity.Movie, limit int) []entity.Movie {
	ranked := rankRelated(ref, pool, limit)
	out := make([]entity.Movie, len(ranked))
	for i := range ranked {
		out[i] = ranked[i].movie
	}
	return out
}

func rankRelated(ref *entity.Movie, pool []entity.Movie, limit int) []scoredMovie {
	if limit <= 0 {
		limit = DefaultRelatedLimit
	}

	scored := make([]scoredMovie, 0, len(pool))
	for i := range pool {
		if pool[i].ID == ref.ID {
			continue
		}
		if s := RelatedScore(ref, &pool[i]); s > 0 {
			scored = append(scored, scoredMovie{movie: pool[i], score: s})
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	if len(scored) > limit {
		scored = scored[:limit]
	}
	return scored
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
