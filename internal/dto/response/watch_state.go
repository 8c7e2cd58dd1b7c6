package response

import (
	"time"

	"letterboxd/internal/data/entity"
)

type WatchStateResponse struct {
	MovieID     string    `json:"movie_id"`
	Status      string    `json:"status"`
	StatusLabel string    `json:"status_label,omitempty"`
	Rating      int       `json:"rating"`
	Liked       bool      `json:"liked"`
	DateAdded   string    `json:"date_added,omitempty"`
	DateWatched string    `json:"date_watched,omitempty"`
	Notes       string    `json:"notes,omitempty"`
	InWatchlist bool      `json:"in_watchlist"`
	UpdatedAt   time.Time `json:"updated_at,omitempty"`
}

// WatchlistItem is one movie on the viewer's watchlist.
type WatchlistItem struct {
	Movie     entity.Movie
	DateAdded string
}

type WatchlistItemResponse struct {
	Movie     MovieResponse `json:"movie"`
	DateAdded string        `json:"date_added,omitempty"`
}

type ToggleWatchlistResponse struct {
	Slug        string `json:"slug"`
	InWatchlist bool   `json:"in_watchlist"`
}

func WatchStateToResponse(state *entity.WatchState) WatchStateResponse {
	return WatchStateResponse{
		MovieID:     state.MovieID,
		Status:      string(state.Status),
		StatusLabel: state.Status.Label(),
		Rating:      state.Rating,
		Liked:       state.Liked,
		DateAdded:   state.DateAdded,
		DateWatched: state.DateWatched,
		Notes:       state.Notes,
		InWatchlist: state.InWatchlist(),
		UpdatedAt:   state.UpdatedAt,
	}
}

func WatchlistToResponse(items []WatchlistItem) []WatchlistItemResponse {
	out := make([]WatchlistItemResponse, len(items))
	for i := range items {
		out[i] = WatchlistItemResponse{
			Movie:     MovieToResponse(&items[i].Movie),
			DateAdded: items[i].DateAdded,
		}
	}
	return out
}
