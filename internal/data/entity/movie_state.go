package entity

import (
	"time"

	"github.com/google/uuid"
)

type WatchStatus string

const (
	WatchStatusNone              WatchStatus = ""
	WatchStatusWantToWatch       WatchStatus = "want_to_watch"
	WatchStatusWatched           WatchStatus = "watched"
	WatchStatusCurrentlyWatching WatchStatus = "currently_watching"
)

func (s WatchStatus) Valid() bool {
	switch s {
	case WatchStatusNone, WatchStatusWantToWatch, WatchStatusWatched, WatchStatusCurrentlyWatching:
		return true
	}
	return false
}

func (s WatchStatus) Label() string {
	switch s {
	case WatchStatusWantToWatch:
		return "Want to Watch"
	case WatchStatusWatched:
		return "Watched"
	case WatchStatusCurrentlyWatching:
		return "Currently Watching"
	}
	return ""
}

// UserMovieState is the CMS record of a user's relationship to a movie.
type UserMovieState struct {
	Base
	Metadata UserMovieStateMetadata `json:"metadata"`
}

type UserMovieStateMetadata struct {
	Movie          *Movie   `json:"movie,omitempty"`
	UserName       string   `json:"user_name"`
	Status         KeyValue `json:"status"`
	DateAdded      string   `json:"date_added"`
	DateWatched    string   `json:"date_watched,omitempty"`
	PersonalRating int      `json:"personal_rating,omitempty"`
	PersonalNotes  string   `json:"personal_notes,omitempty"`
}

func (s *UserMovieState) SetBase(b Base) { s.Base = b }
func (s *UserMovieState) MetadataTarget() any { return &s.Metadata }

// WatchState is the locally kept per (movie, user) record. It is never
// written back to the CMS.
type WatchState struct {
	ID          uuid.UUID   `json:"id" db:"id"`
	MovieID     string      `json:"movie_id" db:"movie_id"`
	UserName    string      `json:"user_name" db:"user_name"`
	Status      WatchStatus `json:"status" db:"status"`
	Rating      int         `json:"rating" db:"rating"` // 0-10
	Liked       bool        `json:"liked" db:"liked"`
	DateAdded   string      `json:"date_added,omitempty" db:"date_added"`
	DateWatched string      `json:"date_watched,omitempty" db:"date_watched"`
	Notes       string      `json:"notes,omitempty" db:"notes"`
	OnWatchlist bool        `json:"in_watchlist" db:"in_watchlist"`
	UpdatedAt   time.Time   `json:"updated_at" db:"updated_at"`
}

// InWatchlist reports watchlist membership. It is independent of Status.
func (s *WatchState) InWatchlist() bool {
	return s != nil && s.OnWatchlist
}
