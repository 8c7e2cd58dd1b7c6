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

type ReviewHandler struct {
	service usecase.ReviewService
	pages   *pageWriter
	log     *zap.Logger
}

func NewReviewHandler(service usecase.ReviewService, pages *pageWriter, log *zap.Logger) *ReviewHandler {
	return &ReviewHandler{
		service: service,
		pages:   pages,
		log:     log.With(zap.String("handler", "review")),
	}
}

// Index renders the reviews page, newest first.
func (h *ReviewHandler) Index(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	result, err := h.service.GetReviews(r.Context(), parsePage(query))
	if err != nil {
		h.pages.renderError(w, r, err, "get reviews")
		return
	}

	h.pages.render(w, r, "reviews", view.Page{
		Title:  "Reviews",
		Active: "reviews",
		Data: view.ReviewsData{
			Reviews: result.Data,
			Pager:   view.NewPager(result.Pagination, "/reviews", query),
		},
	})
}

func (h *ReviewHandler) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.GetReviews(r.Context(), parsePage(r.URL.Query()))
	if err != nil {
		handleServiceError(w, r, h.log, err, "get reviews")
		return
	}

	out := make([]response.ReviewResponse, len(result.Data))
	for i := range result.Data {
		out[i] = response.ReviewToResponse(&result.Data[i])
	}
	utils.ResponsePaginated(w, "Reviews retrieved successfully", out, result.Pagination)
}

func (h *ReviewHandler) Show(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	review, err := h.service.GetReview(r.Context(), slug)
	if err != nil {
		handleServiceError(w, r, h.log, err, "get review")
		return
	}

	utils.ResponseSuccess(w, "Review retrieved successfully", response.ReviewToResponse(review))
}
