package usecase

import (
	"sort"
	"strings"
	"time"

	"letterboxd/internal/data/entity"
	"letterboxd/internal/dto/request"
)

// FilterMovies applies the sidebar filter. A movie missing a field (year,
// rating, runtime) only drops out when that range has been narrowed.
func FilterMovies(movies []entity.Movie, f *request.MovieFilter, now time.Time) []entity.Movie {
	if f == nil {
		return movies
	}

	yearMin, yearMax := f.YearMin, f.YearMax
	yearNarrowed := (yearMin != 0 && yearMin > request.MinFilterYear) || (yearMax != 0 && yearMax < now.Year())
	ratingNarrowed := f.RatingMin > 0 || (f.RatingMax != 0 && f.RatingMax < request.MaxFilterRating)
	runtimeNarrowed := f.RuntimeMin > 0 || (f.RuntimeMax != 0 && f.RuntimeMax < request.MaxFilterRuntime)

	out := make([]entity.Movie, 0, len(movies))
	for i := range movies {
		m := &movies[i]

		if f.Genre != "" && !m.HasGenre(f.Genre) {
			continue
		}
		if len(f.Genres) > 0 && !hasAnyGenre(m, f.Genres) {
			continue
		}
		if len(f.Countries) > 0 && !fromAnyCountry(m, f.Countries) {
			continue
		}
		if yearNarrowed && !inIntRange(m.Metadata.ReleaseYear, yearMin, yearMax) {
			continue
		}
		if ratingNarrowed && !inFloatRange(m.Metadata.IMDbRating, f.RatingMin, f.RatingMax) {
			continue
		}
		if runtimeNarrowed && !inIntRange(m.Metadata.RuntimeMinutes, f.RuntimeMin, f.RuntimeMax) {
			continue
		}
		out = append(out, *m)
	}
	return out
}

func hasAnyGenre(m *entity.Movie, genres []string) bool {
	for _, g := range genres {
		if m.HasGenre(g) {
			return true
		}
	}
	return false
}

func fromAnyCountry(m *entity.Movie, countries []string) bool {
	country := strings.ToLower(m.Metadata.Country)
	if country == "" {
		return false
	}
	for _, c := range countries {
		if c = strings.ToLower(strings.TrimSpace(c)); c != "" && strings.Contains(country, c) {
			return true
		}
	}
	return false
}

// inIntRange treats a zero value as unknown and a zero bound as open.
func inIntRange(v, min, max int) bool {
	if v == 0 {
		return false
	}
	return (min == 0 || v >= min) && (max == 0 || v <= max)
}

func inFloatRange(v, min, max float64) bool {
	if v == 0 {
		return false
	}
	return v >= min && (max == 0 || v <= max)
}

// genresOf collects the distinct genres of movies, sorted.
func genresOf(movies []entity.Movie) []string {
	seen := make(map[string]struct{})
	for i := range movies {
		for _, g := range movies[i].Metadata.Genres {
			if g = strings.TrimSpace(g); g != "" {
				seen[g] = struct{}{}
			}
		}
	}
	return sortedKeys(seen)
}

func countriesOf(movies []entity.Movie) []string {
	seen := make(map[string]struct{})
	for i := range movies {
		if c := strings.TrimSpace(movies[i].Metadata.Country); c != "" {
			seen[c] = struct{}{}
		}
	}
	return sortedKeys(seen)
}

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// mergeOptions returns the fixed options followed by any extra values seen
// in the data.
func mergeOptions(fixed, seen []string) []string {
	out := append([]string{}, fixed...)
	known := make(map[string]struct{}, len(fixed))
	for _, f := range fixed {
		known[strings.ToLower(f)] = struct{}{}
	}
	for _, s := range seen {
		if _, ok := known[strings.ToLower(s)]; !ok {
			out = append(out, s)
		}
	}
	return out
}
