package adaptor

import (
	"encoding/json"
	"net/http"

	"letterboxd/internal/dto/request"
	"letterboxd/internal/dto/response"
	"letterboxd/internal/usecase"
	"letterboxd/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type WatchStateHandler struct {
	service usecase.WatchStateService
	log     *zap.Logger
}

func NewWatchStateHandler(service usecase.WatchStateService, log *zap.Logger) *WatchStateHandler {
	return &WatchStateHandler{
		service: service,
		log:     log.With(zap.String("handler", "watch_state")),
	}
}

func (h *WatchStateHandler) Get(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	state, err := h.service.GetState(r.Context(), userName(r), slug)
	if err != nil {
		handleServiceError(w, r, h.log, err, "get watch state")
		return
	}

	utils.ResponseSuccess(w, "Watch state retrieved successfully", response.WatchStateToResponse(state))
}

// Update applies a partial change to the viewer's state for a movie.
func (h *WatchStateHandler) Update(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	var req request.WatchStateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	state, err := h.service.UpdateState(r.Context(), userName(r), slug, &req)
	if err != nil {
		handleServiceError(w, r, h.log, err, "update watch state")
		return
	}

	h.log.Info("Watch state updated",
		zap.String("slug", slug),
		zap.String("status", string(state.Status)),
	)

	utils.ResponseSuccess(w, "Watch state updated successfully", response.WatchStateToResponse(state))
}

func (h *WatchStateHandler) Clear(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	state, err := h.service.ClearState(r.Context(), userName(r), slug)
	if err != nil {
		handleServiceError(w, r, h.log, err, "clear watch state")
		return
	}

	utils.ResponseSuccess(w, "Watch state cleared successfully", response.WatchStateToResponse(state))
}
