package entity

type Review struct {
	Base
	Metadata ReviewMetadata `json:"metadata"`
}

type ReviewMetadata struct {
	Movie            *Movie `json:"movie,omitempty"`
	Rating           int    `json:"rating,omitempty"` // 0-10
	ReviewText       string `json:"review_text,omitempty"`
	ContainsSpoilers bool   `json:"contains_spoilers,omitempty"`
	DateWatched      string `json:"date_watched,omitempty"`
	IsRewatch        bool   `json:"is_rewatch,omitempty"`
	Liked            bool   `json:"liked,omitempty"`
	ReviewDate       string `json:"review_date"`
	AuthorName       string `json:"author_name"`
}

func (r *Review) SetBase(b Base) { r.Base = b }
func (r *Review) MetadataTarget() any { return &r.Metadata }
