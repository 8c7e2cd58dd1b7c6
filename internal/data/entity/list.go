package entity

import "strings"

const (
	ListTypePublic        = "public"
	ListTypePrivate       = "private"
	ListTypeCollaborative = "collaborative"
)

// MovieList is a curated, ordered collection of movies.
type MovieList struct {
	Base
	Metadata MovieListMetadata `json:"metadata"`
}

type MovieListMetadata struct {
	Description  string   `json:"description,omitempty"`
	ListType     KeyValue `json:"list_type"`
	CoverImage   *Image   `json:"cover_image,omitempty"`
	Movies       []Movie  `json:"movies,omitempty"`
	CreatedBy    string   `json:"created_by"`
	CreationDate string   `json:"creation_date"`
	Tags         string   `json:"tags,omitempty"`
}

func (l *MovieList) SetBase(b Base) { l.Base = b }
func (l *MovieList) MetadataTarget() any { return &l.Metadata }

func (l *MovieList) TagList() []string {
	var out []string
	for _, tag := range strings.Split(l.Metadata.Tags, ",") {
		if tag = strings.TrimSpace(tag); tag != "" {
			out = append(out, tag)
		}
	}
	return out
}
