package request

import "time"

// Bounds of the advanced movie filter.
const (
	MinFilterYear    = 1900
	MaxFilterRating  = 10
	MaxFilterRuntime = 300
)

// FilterGenres and FilterCountries are the options offered by the filter
// sidebar.
var (
	FilterGenres = []string{
		"Action", "Adventure", "Animation", "Biography", "Comedy", "Crime",
		"Documentary", "Drama", "Family", "Fantasy", "Horror", "Musical",
		"Mystery", "Romance", "Sci-Fi", "Thriller", "War", "Western",
	}
	FilterCountries = []string{
		"United States", "United Kingdom", "France", "Germany", "Italy",
		"Japan", "South Korea", "Spain", "Canada", "Australia", "India",
	}
)

// MovieFilter is the query of the movies page. Zero bounds mean unbounded.
type MovieFilter struct {
	Query      string   `json:"q,omitempty" validate:"max=200"`
	Genre      string   `json:"genre,omitempty" validate:"max=100"`
	Genres     []string `json:"genres,omitempty" validate:"dive,max=100"`
	Countries  []string `json:"countries,omitempty" validate:"dive,max=100"`
	YearMin    int      `json:"year_min,omitempty" validate:"omitempty,min=1900,max=3000"`
	YearMax    int      `json:"year_max,omitempty" validate:"omitempty,min=1900,max=3000"`
	RatingMin  float64  `json:"rating_min,omitempty" validate:"min=0,max=10"`
	RatingMax  float64  `json:"rating_max,omitempty" validate:"min=0,max=10"`
	RuntimeMin int      `json:"runtime_min,omitempty" validate:"min=0,max=300"`
	RuntimeMax int      `json:"runtime_max,omitempty" validate:"min=0,max=300"`
}

// HasAdvanced reports whether any sidebar filter narrows the full range.
func (f MovieFilter) HasAdvanced(now time.Time) bool {
	return len(f.Genres) > 0 ||
		len(f.Countries) > 0 ||
		(f.YearMin != 0 && f.YearMin != MinFilterYear) ||
		(f.YearMax != 0 && f.YearMax != now.Year()) ||
		f.RatingMin > 0 ||
		(f.RatingMax != 0 && f.RatingMax != MaxFilterRating) ||
		f.RuntimeMin > 0 ||
		(f.RuntimeMax != 0 && f.RuntimeMax != MaxFilterRuntime)
}

// WatchStateRequest is a partial update of the viewer's state for a movie.
// Nil fields are left unchanged.
type WatchStateRequest struct {
	Status      *string `json:"status,omitempty" validate:"omitempty,oneof=want_to_watch watched currently_watching none"`
	Rating      *int    `json:"rating,omitempty" validate:"omitempty,min=0,max=10"`
	Liked       *bool   `json:"liked,omitempty"`
	Notes       *string `json:"notes,omitempty" validate:"omitempty,max=2000"`
	DateWatched *string `json:"date_watched,omitempty" validate:"omitempty,datetime=2006-01-02"`
}
