package adaptor

import (
	"encoding/json"
	"errors"
	"net/http"

	"letterboxd/internal/dto/request"
	"letterboxd/internal/dto/response"
	"letterboxd/internal/usecase"
	"letterboxd/internal/view"
	"letterboxd/pkg/utils"

	"go.uber.org/zap"
)

type SubmissionHandler struct {
	service usecase.SubmissionService
	pages   *pageWriter
	log     *zap.Logger
}

func NewSubmissionHandler(service usecase.SubmissionService, pages *pageWriter, log *zap.Logger) *SubmissionHandler {
	return &SubmissionHandler{
		service: service,
		pages:   pages,
		log:     log.With(zap.String("handler", "submission")),
	}
}

// Index renders recent submissions and the submission form.
func (h *SubmissionHandler) Index(w http.ResponseWriter, r *http.Request) {
	submissions, err := h.service.GetSubmissions(r.Context())
	if err != nil {
		h.pages.renderError(w, r, err, "get submissions")
		return
	}

	h.pages.render(w, r, "submissions", view.Page{
		Title:  "Submit a Movie",
		Active: "submissions",
		Data: view.SubmissionsData{
			Submissions: submissions,
			Form:        request.MovieSubmissionRequest{SubmittedBy: userName(r)},
			Submitted:   r.URL.Query().Get("submitted") == "1",
		},
	})
}

// Create handles the HTML form. Rejected input re-renders the form with
// field errors; success redirects back to the listing.
func (h *SubmissionHandler) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.pages.renderError(w, r, &usecase.ValidationError{Fields: map[string]string{"form": "Invalid form data"}}, "parse submission form")
		return
	}

	req := request.MovieSubmissionRequest{
		IMDbURL:       r.PostForm.Get("imdb_url"),
		SubmittedBy:   r.PostForm.Get("submitted_by"),
		Justification: r.PostForm.Get("justification"),
	}

	_, err := h.service.Submit(r.Context(), &req)

	var validationErr *usecase.ValidationError
	switch {
	case err == nil:
		http.Redirect(w, r, "/movie-submissions?submitted=1", http.StatusSeeOther)

	case errors.As(err, &validationErr):
		submissions, listErr := h.service.GetSubmissions(r.Context())
		if listErr != nil {
			h.log.Warn("Failed to load submissions for form", zap.Error(listErr))
		}

		h.pages.renderStatus(w, r, http.StatusBadRequest, "submissions", view.Page{
			Title:  "Submit a Movie",
			Active: "submissions",
			Data: view.SubmissionsData{
				Submissions: submissions,
				Form:        req,
				Errors:      validationErr.Fields,
			},
		})

	default:
		h.pages.renderError(w, r, err, "submit movie")
	}
}

// CreateAPI is the JSON variant of Create.
func (h *SubmissionHandler) CreateAPI(w http.ResponseWriter, r *http.Request) {
	var req request.MovieSubmissionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	submission, err := h.service.Submit(r.Context(), &req)
	if err != nil {
		handleServiceError(w, r, h.log, err, "submit movie")
		return
	}

	utils.ResponseCreated(w, "Movie submitted successfully", response.SubmissionToResponse(submission))
}

func (h *SubmissionHandler) List(w http.ResponseWriter, r *http.Request) {
	submissions, err := h.service.GetSubmissions(r.Context())
	if err != nil {
		handleServiceError(w, r, h.log, err, "get submissions")
		return
	}

	out := make([]response.SubmissionResponse, len(submissions))
	for i := range submissions {
		out[i] = response.SubmissionToResponse(&submissions[i])
	}
	utils.ResponseSuccess(w, "Submissions retrieved successfully", out)
}
