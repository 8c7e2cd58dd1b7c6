package adaptor

import (
	"net/http"
	"net/url"
	"strings"
	"time"

	"letterboxd/internal/dto/request"
	"letterboxd/internal/dto/response"
	"letterboxd/internal/usecase"
	"letterboxd/internal/view"
	"letterboxd/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type MovieHandler struct {
	service   usecase.MovieService
	watchlist usecase.WatchlistService
	pages     *pageWriter
	log       *zap.Logger
	now       func() time.Time
}

func NewMovieHandler(service usecase.MovieService, watchlist usecase.WatchlistService, pages *pageWriter, log *zap.Logger) *MovieHandler {
	return &MovieHandler{
		service:   service,
		watchlist: watchlist,
		pages:     pages,
		log:       log.With(zap.String("handler", "movie")),
		now:       time.Now,
	}
}

// Index renders the filterable movie catalog.
func (h *MovieHandler) Index(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := parseMovieFilter(query)
	page := parsePage(query)

	catalog, err := h.service.ListMovies(r.Context(), &filter, page)
	if err != nil {
		h.pages.renderError(w, r, err, "list movies")
		return
	}

	now := h.now()
	h.pages.render(w, r, "movies", view.Page{
		Title:  "Movies",
		Active: "movies",
		Data: view.MoviesData{
			Catalog:  catalog,
			Filter:   filter,
			Advanced: filter.HasAdvanced(now),
			Pager:    view.NewPager(catalog.Pagination, "/movies", query),
			MaxYear:  now.Year(),
		},
	})
}

// Show renders a movie with its reviews, related titles and the viewer's state.
func (h *MovieHandler) Show(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	user := userName(r)

	detail, err := h.service.GetMovieDetail(r.Context(), slug, user)
	if err != nil {
		h.pages.renderError(w, r, err, "get movie")
		return
	}

	inWatchlist, err := h.watchlist.IsInWatchlist(r.Context(), user, detail.Movie.ID)
	if err != nil {
		h.log.Warn("Failed to resolve watchlist membership",
			zap.String("slug", slug),
			zap.Error(err),
		)
	}

	h.pages.render(w, r, "movie", view.Page{
		Title:  detail.Movie.Title,
		Active: "movies",
		Data:   view.NewMovieData(detail, inWatchlist),
	})
}

// List serves GET /api/movies with the same filters as the catalog page.
func (h *MovieHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := parseMovieFilter(query)

	catalog, err := h.service.ListMovies(r.Context(), &filter, parsePage(query))
	if err != nil {
		handleServiceError(w, r, h.log, err, "list movies")
		return
	}

	utils.ResponsePaginated(w, "Movies retrieved successfully", response.MoviesToResponse(catalog.Movies), catalog.Pagination)
}

func (h *MovieHandler) Search(w http.ResponseWriter, r *http.Request) {
	q := strings.TrimSpace(r.URL.Query().Get("q"))
	if q == "" {
		utils.ResponseBadRequest(w, "Search query is required", map[string]string{"q": "This field is required"})
		return
	}

	movies, err := h.service.SearchMovies(r.Context(), q)
	if err != nil {
		handleServiceError(w, r, h.log, err, "search movies")
		return
	}

	utils.ResponseSuccess(w, "Movies retrieved successfully", response.MoviesToResponse(movies))
}

func (h *MovieHandler) Related(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	limit := utils.ParseInt(r.URL.Query().Get("limit"), usecase.DefaultRelatedLimit)

	related, err := h.service.GetRelatedMovies(r.Context(), slug, limit)
	if err != nil {
		handleServiceError(w, r, h.log, err, "get related movies")
		return
	}

	utils.ResponseSuccess(w, "Related movies retrieved successfully", related)
}

func parsePage(query url.Values) *request.PaginatedRequest {
	return request.NewPaginatedRequest(
		utils.ParseInt(query.Get("page"), 1),
		utils.ParseInt(query.Get("per_page"), request.DefaultPerPage),
	)
}

func parseMovieFilter(query url.Values) request.MovieFilter {
	return request.MovieFilter{
		Query:      strings.TrimSpace(query.Get("q")),
		Genre:      strings.TrimSpace(query.Get("genre")),
		Genres:     nonEmpty(query["genres"]),
		Countries:  nonEmpty(query["countries"]),
		YearMin:    utils.ParseInt(query.Get("year_min"), 0),
		YearMax:    utils.ParseInt(query.Get("year_max"), 0),
		RatingMin:  utils.ParseFloat(query.Get("rating_min"), 0),
		RatingMax:  utils.ParseFloat(query.Get("rating_max"), 0),
		RuntimeMin: utils.ParseInt(query.Get("runtime_min"), 0),
		RuntimeMax: utils.ParseInt(query.Get("runtime_max"), 0),
	}
}

func nonEmpty(values []string) []string {
	var out []string
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
