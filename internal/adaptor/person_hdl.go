package adaptor

import (
	"net/http"

	"letterboxd/internal/usecase"
	"letterboxd/internal/view"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type PersonHandler struct {
	service usecase.PersonService
	pages   *pageWriter
	log     *zap.Logger
}

func NewPersonHandler(service usecase.PersonService, pages *pageWriter, log *zap.Logger) *PersonHandler {
	return &PersonHandler{
		service: service,
		pages:   pages,
		log:     log.With(zap.String("handler", "person")),
	}
}

func (h *PersonHandler) Index(w http.ResponseWriter, r *http.Request) {
	people, err := h.service.GetPeople(r.Context())
	if err != nil {
		h.pages.renderError(w, r, err, "get people")
		return
	}

	h.pages.render(w, r, "people", view.Page{Title: "People", Active: "people", Data: people})
}

// Show renders a person with their filmography.
func (h *PersonHandler) Show(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	detail, err := h.service.GetPerson(r.Context(), slug)
	if err != nil {
		h.pages.renderError(w, r, err, "get person")
		return
	}

	h.pages.render(w, r, "person", view.Page{Title: detail.Person.Title, Active: "people", Data: detail})
}
