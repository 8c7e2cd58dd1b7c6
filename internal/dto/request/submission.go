package request

type MovieSubmissionRequest struct {
	IMDbURL       string `json:"imdb_url" validate:"required,imdb_url"`
	SubmittedBy   string `json:"submitted_by" validate:"required,min=1,max=100"`
	Justification string `json:"justification,omitempty" validate:"max=1000"`
}
