package view

import (
	"net/url"
	"strconv"

	"letterboxd/internal/data/entity"
	"letterboxd/internal/dto/request"
	"letterboxd/internal/dto/response"
)

// Pager links the previous and next pages of a listing.
type Pager struct {
	Meta    response.PaginationMeta
	PrevURL string
	NextURL string
}

// NewPager builds pager links on path, keeping the other query parameters.
func NewPager(meta response.PaginationMeta, path string, query url.Values) Pager {
	link := func(page int) string {
		q := url.Values{}
		for k, v := range query {
			q[k] = v
		}
		q.Set("page", strconv.Itoa(page))
		return path + "?" + q.Encode()
	}

	p := Pager{Meta: meta}
	if meta.HasPrev() {
		p.PrevURL = link(meta.PrevPage())
	}
	if meta.HasNext() {
		p.NextURL = link(meta.NextPage())
	}
	return p
}

type MoviesData struct {
	Catalog  *response.MovieCatalog
	Filter   request.MovieFilter
	Advanced bool
	Pager    Pager
	MaxYear  int
}

type StatusOption struct {
	Value    string
	Label    string
	Selected bool
}

type MovieData struct {
	Detail      *response.MovieDetail
	InWatchlist bool
	Statuses    []StatusOption
	Ratings     []int
}

// NewMovieData prepares the status picker for the current state.
func NewMovieData(detail *response.MovieDetail, inWatchlist bool) MovieData {
	if detail.State == nil {
		detail.State = &entity.WatchState{MovieID: detail.Movie.ID}
	}
	current := detail.State.Status

	options := []StatusOption{{Value: "none", Label: "Not set", Selected: current == entity.WatchStatusNone}}
	for _, s := range []entity.WatchStatus{
		entity.WatchStatusWantToWatch,
		entity.WatchStatusCurrentlyWatching,
		entity.WatchStatusWatched,
	} {
		options = append(options, StatusOption{Value: string(s), Label: s.Label(), Selected: s == current})
	}

	ratings := make([]int, 11)
	for i := range ratings {
		ratings[i] = i
	}

	return MovieData{Detail: detail, InWatchlist: inWatchlist, Statuses: options, Ratings: ratings}
}

type ReviewsData struct {
	Reviews []entity.Review
	Pager   Pager
}

type WatchlistData struct {
	User  string
	Items []response.WatchlistItem
}

type SubmissionsData struct {
	Submissions []entity.MovieSubmission
	Form        request.MovieSubmissionRequest
	Errors      map[string]string
	Submitted   bool
}

type MessageData struct {
	Message string
}
