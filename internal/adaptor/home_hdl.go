package adaptor

import (
	"net/http"

	"letterboxd/internal/usecase"
	"letterboxd/internal/view"

	"go.uber.org/zap"
)

type HomeHandler struct {
	service usecase.HomeService
	pages   *pageWriter
	log     *zap.Logger
}

func NewHomeHandler(service usecase.HomeService, pages *pageWriter, log *zap.Logger) *HomeHandler {
	return &HomeHandler{
		service: service,
		pages:   pages,
		log:     log.With(zap.String("handler", "home")),
	}
}

// Index renders the landing page.
func (h *HomeHandler) Index(w http.ResponseWriter, r *http.Request) {
	home, err := h.service.GetHomePage(r.Context())
	if err != nil {
		h.pages.renderError(w, r, err, "load home page")
		return
	}

	h.pages.render(w, r, "home", view.Page{Active: "home", Data: home})
}
