package entity

import (
	"encoding/json"
	"strings"
)

const (
	MovieStatusPublished = "published"
	MovieStatusPending   = "pending"
	MovieStatusDraft     = "draft"
)

type Movie struct {
	Base
	Metadata MovieMetadata `json:"metadata"`
}

type MovieMetadata struct {
	IMDbID         string    `json:"imdb_id"`
	IMDbURL        string    `json:"imdb_url,omitempty"`
	ReleaseYear    int       `json:"release_year,omitempty"`
	Director       string    `json:"director"`
	Synopsis       string    `json:"synopsis,omitempty"`
	RuntimeMinutes int       `json:"runtime_minutes,omitempty"`
	Genres         []string  `json:"genres,omitempty"`
	ContentRating  *KeyValue `json:"content_rating,omitempty"`
	Cast           string    `json:"cast,omitempty"`
	IMDbRating     float64   `json:"imdb_rating,omitempty"`
	PosterImage    *Image    `json:"poster_image,omitempty"`
	BackdropImages []Image   `json:"backdrop_images,omitempty"`
	TrailerURL     string    `json:"trailer_url,omitempty"`
	Country        string    `json:"country,omitempty"`
	Language       string    `json:"language,omitempty"`
	Status         KeyValue  `json:"status"`
}

func (m *Movie) SetBase(b Base) { m.Base = b }
func (m *Movie) MetadataTarget() any { return &m.Metadata }

// UnmarshalJSON accepts a bare object id, which is how the CMS encodes a
// relationship when it is not expanded.
func (m *Movie) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var id string
		if err := json.Unmarshal(data, &id); err != nil {
			return err
		}
		*m = Movie{Base: Base{ID: id}}
		return nil
	}

	type plain Movie
	return json.Unmarshal(data, (*plain)(m))
}

func (m *Movie) IsPublished() bool {
	return m != nil && m.Metadata.Status.Key == MovieStatusPublished
}

// CastList splits the free-text cast field on commas.
func (m *Movie) CastList() []string {
	var out []string
	for _, name := range strings.Split(m.Metadata.Cast, ",") {
		if name = strings.TrimSpace(name); name != "" {
			out = append(out, name)
		}
	}
	return out
}

// HasGenre reports whether genre is one of the movie's genres.
func (m *Movie) HasGenre(genre string) bool {
	for _, g := range m.Metadata.Genres {
		if strings.EqualFold(g, genre) {
			return true
		}
	}
	return false
}

// Backdrop returns the first backdrop, or nil.
func (m *Movie) Backdrop() *Image {
	if len(m.Metadata.BackdropImages) == 0 {
		return nil
	}
	return &m.Metadata.BackdropImages[0]
}

// Matches reports whether query is a case-insensitive substring of the
// title, director or cast.
func (m *Movie) Matches(query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(m.Title), q) ||
		strings.Contains(strings.ToLower(m.Metadata.Director), q) ||
		strings.Contains(strings.ToLower(m.Metadata.Cast), q)
}

// Involves reports whether name appears in the director or cast fields,
// case-insensitively.
func (m *Movie) Involves(name string) bool {
	n := strings.ToLower(strings.TrimSpace(name))
	if n == "" {
		return false
	}
	return strings.Contains(strings.ToLower(m.Metadata.Director), n) ||
		strings.Contains(strings.ToLower(m.Metadata.Cast), n)
}
