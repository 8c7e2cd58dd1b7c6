package adaptor

import (
	"net/http"

	"letterboxd/internal/usecase"
	"letterboxd/internal/view"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ListHandler struct {
	service usecase.ListService
	pages   *pageWriter
	log     *zap.Logger
}

func NewListHandler(service usecase.ListService, pages *pageWriter, log *zap.Logger) *ListHandler {
	return &ListHandler{
		service: service,
		pages:   pages,
		log:     log.With(zap.String("handler", "list")),
	}
}

func (h *ListHandler) Index(w http.ResponseWriter, r *http.Request) {
	lists, err := h.service.GetLists(r.Context())
	if err != nil {
		h.pages.renderError(w, r, err, "get lists")
		return
	}

	h.pages.render(w, r, "lists", view.Page{Title: "Lists", Active: "lists", Data: lists})
}

func (h *ListHandler) Show(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	list, err := h.service.GetList(r.Context(), slug)
	if err != nil {
		h.pages.renderError(w, r, err, "get list")
		return
	}

	h.pages.render(w, r, "list", view.Page{Title: list.Title, Active: "lists", Data: list})
}
