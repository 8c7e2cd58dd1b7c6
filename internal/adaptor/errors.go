package adaptor

import (
	"errors"
	"net/http"

	"letterboxd/internal/data/repository"
	"letterboxd/internal/usecase"
	"letterboxd/internal/view"
	"letterboxd/pkg/utils"

	"go.uber.org/zap"
)

// handleServiceError maps a service error onto a JSON response.
func handleServiceError(w http.ResponseWriter, r *http.Request, log *zap.Logger, err error, operation string) {
	requestID := zap.String("request_id", utils.GetRequestIDFromContext(r.Context()))

	var validationErr *usecase.ValidationError
	var fetchErr *repository.FetchError

	switch {
	case errors.Is(err, usecase.ErrNotFound):
		log.Warn(operation+" failed - not found", zap.Error(err), requestID)
		utils.ResponseNotFound(w, err.Error())

	case errors.As(err, &validationErr):
		log.Warn(operation+" validation failed", zap.Error(err), requestID)
		utils.ResponseBadRequest(w, "Validation failed", validationErr.Fields)

	case errors.As(err, &fetchErr):
		log.Error("Failed to "+operation, zap.Error(err), requestID)
		utils.ResponseBadGateway(w, "Content service unavailable")

	default:
		log.Error("Failed to "+operation, zap.Error(err), requestID)
		utils.ResponseInternalError(w, "Internal server error")
	}
}

// pageWriter renders HTML pages and the HTML error pages.
type pageWriter struct {
	view *view.Renderer
	log  *zap.Logger
}

func newPageWriter(renderer *view.Renderer, log *zap.Logger) *pageWriter {
	return &pageWriter{view: renderer, log: log.With(zap.String("handler", "page"))}
}

func (p *pageWriter) render(w http.ResponseWriter, r *http.Request, name string, page view.Page) {
	p.view.Render(w, r, http.StatusOK, name, page)
}

func (p *pageWriter) renderStatus(w http.ResponseWriter, r *http.Request, status int, name string, page view.Page) {
	p.view.Render(w, r, status, name, page)
}

// renderError shows the not-found page for missing items, the error page
// with field messages for rejected input and a generic error page otherwise.
func (p *pageWriter) renderError(w http.ResponseWriter, r *http.Request, err error, operation string) {
	requestID := zap.String("request_id", utils.GetRequestIDFromContext(r.Context()))

	var validationErr *usecase.ValidationError

	switch {
	case errors.Is(err, usecase.ErrNotFound):
		p.log.Warn(operation+" failed - not found", zap.Error(err), requestID)
		p.NotFound(w, r)
		return

	case errors.As(err, &validationErr):
		p.log.Warn(operation+" validation failed", zap.Error(err), requestID)
		p.view.Render(w, r, http.StatusBadRequest, "error", view.Page{
			Title: "Invalid request",
			Data:  view.MessageData{Message: utils.FormatValidationErrors(validationErr.Fields)},
		})
		return
	}

	p.log.Error("Failed to "+operation, zap.Error(err), requestID)
	p.view.Render(w, r, http.StatusInternalServerError, "error", view.Page{
		Title: "Error",
		Data:  view.MessageData{},
	})
}

func (p *pageWriter) NotFound(w http.ResponseWriter, r *http.Request) {
	p.view.Render(w, r, http.StatusNotFound, "not_found", view.Page{
		Title: "Not Found",
		Data:  view.MessageData{},
	})
}

func userName(r *http.Request) string {
	name, _ := utils.GetUserNameFromContext(r.Context())
	return name
}
