package adaptor

import (
	"net/http"

	"letterboxd/internal/dto/response"
	"letterboxd/internal/usecase"
	"letterboxd/internal/view"
	"letterboxd/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type WatchlistHandler struct {
	service usecase.WatchlistService
	pages   *pageWriter
	log     *zap.Logger
}

func NewWatchlistHandler(service usecase.WatchlistService, pages *pageWriter, log *zap.Logger) *WatchlistHandler {
	return &WatchlistHandler{
		service: service,
		pages:   pages,
		log:     log.With(zap.String("handler", "watchlist")),
	}
}

// Index renders the viewer's watchlist, most recently added first.
func (h *WatchlistHandler) Index(w http.ResponseWriter, r *http.Request) {
	user := userName(r)

	items, err := h.service.GetWatchlist(r.Context(), user)
	if err != nil {
		h.pages.renderError(w, r, err, "get watchlist")
		return
	}

	h.pages.render(w, r, "watchlist", view.Page{
		Title:  "Watchlist",
		Active: "watchlist",
		Data:   view.WatchlistData{User: user, Items: items},
	})
}

func (h *WatchlistHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.GetWatchlist(r.Context(), userName(r))
	if err != nil {
		handleServiceError(w, r, h.log, err, "get watchlist")
		return
	}

	utils.ResponseSuccess(w, "Watchlist retrieved successfully", response.WatchlistToResponse(items))
}

func (h *WatchlistHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	inWatchlist, err := h.service.ToggleWatchlist(r.Context(), userName(r), slug)
	if err != nil {
		handleServiceError(w, r, h.log, err, "toggle watchlist")
		return
	}

	message := "Removed from watchlist"
	if inWatchlist {
		message = "Added to watchlist"
	}

	utils.ResponseSuccess(w, message, response.ToggleWatchlistResponse{
		Slug:        slug,
		InWatchlist: inWatchlist,
	})
}
