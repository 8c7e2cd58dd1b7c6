package response

import (
	"letterboxd/internal/data/entity"
)

type ReviewResponse struct {
	ID               string `json:"id"`
	Slug             string `json:"slug"`
	Title            string `json:"title"`
	MovieID          string `json:"movie_id,omitempty"`
	MovieTitle       string `json:"movie_title,omitempty"`
	AuthorName       string `json:"author_name"`
	Rating           int    `json:"rating"`
	ReviewDate       string `json:"review_date"`
	ContainsSpoilers bool   `json:"contains_spoilers"`
	Liked            bool   `json:"liked"`
}

// ReviewToResponse leaves the review text out; it may contain spoilers.
func ReviewToResponse(review *entity.Review) ReviewResponse {
	resp := ReviewResponse{
		ID:               review.ID,
		Slug:             review.Slug,
		Title:            review.Title,
		AuthorName:       review.Metadata.AuthorName,
		Rating:           review.Metadata.Rating,
		ReviewDate:       review.Metadata.ReviewDate,
		ContainsSpoilers: review.Metadata.ContainsSpoilers,
		Liked:            review.Metadata.Liked,
	}
	if m := review.Metadata.Movie; m != nil {
		resp.MovieID = m.ID
		resp.MovieTitle = m.Title
	}
	return resp
}
