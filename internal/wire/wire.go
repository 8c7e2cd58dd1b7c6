package wire

import (
	"net/http"

	"letterboxd/internal/adaptor"
	"letterboxd/internal/data/repository"
	"letterboxd/internal/usecase"
	"letterboxd/internal/view"
	"letterboxd/pkg/middleware"
	"letterboxd/pkg/notify"
	"letterboxd/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App holds the wired HTTP surface.
type App struct {
	Router *chi.Mux
}

// Wiring builds services and handlers on top of repo and mounts every route.
func Wiring(
	repo *repository.Repository,
	notifier notify.Notifier,
	renderer *view.Renderer,
	config *utils.Config,
	logger *zap.Logger,
) *App {
	service := usecase.NewService(repo, notifier, config, logger)
	handler := adaptor.NewHandler(service, renderer, logger)

	return &App{
		Router: setupRouter(handler, config, logger),
	}
}

func setupRouter(handler *adaptor.Handler, config *utils.Config, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.DemoUser(config.App.DemoUser, logger))
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))

	wirePages(r, handler)
	wireMovie(r, handler.Movie, handler.WatchState)
	wireReview(r, handler.Review)
	wireWatchlist(r, handler.Watchlist)
	wireSubmission(r, handler.Submission)

	r.NotFound(handler.NotFound)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	return r
}
