package response

import "letterboxd/internal/data/entity"

type SubmissionResponse struct {
	ID             string `json:"id"`
	Slug           string `json:"slug"`
	IMDbURL        string `json:"imdb_url"`
	IMDbID         string `json:"imdb_id"`
	SubmittedBy    string `json:"submitted_by"`
	SubmissionDate string `json:"submission_date"`
	Status         string `json:"status"`
}

func SubmissionToResponse(s *entity.MovieSubmission) SubmissionResponse {
	return SubmissionResponse{
		ID:             s.ID,
		Slug:           s.Slug,
		IMDbURL:        s.Metadata.IMDbURL,
		IMDbID:         s.Metadata.IMDbID,
		SubmittedBy:    s.Metadata.SubmittedBy,
		SubmissionDate: s.Metadata.SubmissionDate,
		Status:         s.Metadata.Status.Key,
	}
}
