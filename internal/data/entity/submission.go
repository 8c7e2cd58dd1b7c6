package entity

const (
	SubmissionStatusPending      = "pending"
	SubmissionStatusApproved     = "approved"
	SubmissionStatusRejected     = "rejected"
	SubmissionStatusNeedsChanges = "needs_changes"
)

var submissionStatusLabels = map[string]string{
	SubmissionStatusPending:      "Pending Review",
	SubmissionStatusApproved:     "Approved",
	SubmissionStatusRejected:     "Rejected",
	SubmissionStatusNeedsChanges: "Needs Changes",
}

// SubmissionStatus builds the select value for a status key.
func SubmissionStatus(key string) KeyValue {
	return KeyValue{Key: key, Value: submissionStatusLabels[key]}
}

// MovieSubmission is a user-proposed IMDb title awaiting moderation.
type MovieSubmission struct {
	Base
	Metadata MovieSubmissionMetadata `json:"metadata"`
}

type MovieSubmissionMetadata struct {
	IMDbURL           string         `json:"imdb_url"`
	IMDbID            string         `json:"imdb_id,omitempty"`
	SubmittedBy       string         `json:"submitted_by"`
	SubmissionDate    string         `json:"submission_date"`
	Status            KeyValue       `json:"status"`
	AdminNotes        string         `json:"admin_notes,omitempty"`
	AutoPopulatedData map[string]any `json:"auto_populated_data,omitempty"`
	UserJustification string         `json:"user_justification,omitempty"`
}

func (s *MovieSubmission) SetBase(b Base) { s.Base = b }
func (s *MovieSubmission) MetadataTarget() any { return &s.Metadata }
