package adaptor

import (
	"context"

	"letterboxd/internal/data/entity"
	"letterboxd/internal/dto/request"
	"letterboxd/internal/dto/response"

	"github.com/stretchr/testify/mock"
)

type MockHomeService struct{ mock.Mock }

func (m *MockHomeService) GetHomePage(ctx context.Context) (*response.HomePage, error) {
	args := m.Called()
	home, _ := args.Get(0).(*response.HomePage)
	return home, args.Error(1)
}

type MockMovieService struct{ mock.Mock }

func (m *MockMovieService) ListMovies(ctx context.Context, filter *request.MovieFilter, page *request.PaginatedRequest) (*response.MovieCatalog, error) {
	args := m.Called(*filter, *page)
	catalog, _ := args.Get(0).(*response.MovieCatalog)
	return catalog, args.Error(1)
}

func (m *MockMovieService) SearchMovies(ctx context.Context, query string) ([]entity.Movie, error) {
	args := m.Called(query)
	movies, _ := args.Get(0).([]entity.Movie)
	return movies, args.Error(1)
}

func (m *MockMovieService) GetMovieDetail(ctx context.Context, slug, userName string) (*response.MovieDetail, error) {
	args := m.Called(slug, userName)
	detail, _ := args.Get(0).(*response.MovieDetail)
	return detail, args.Error(1)
}

func (m *MockMovieService) GetRelatedMovies(ctx context.Context, slug string, limit int) ([]response.RelatedMovieResponse, error) {
	args := m.Called(slug, limit)
	related, _ := args.Get(0).([]response.RelatedMovieResponse)
	return related, args.Error(1)
}

type MockReviewService struct{ mock.Mock }

func (m *MockReviewService) GetReviews(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[entity.Review], error) {
	args := m.Called(*req)
	page, _ := args.Get(0).(*response.PaginatedResponse[entity.Review])
	return page, args.Error(1)
}

func (m *MockReviewService) GetReview(ctx context.Context, slug string) (*entity.Review, error) {
	args := m.Called(slug)
	review, _ := args.Get(0).(*entity.Review)
	return review, args.Error(1)
}

type MockListService struct{ mock.Mock }

func (m *MockListService) GetLists(ctx context.Context) ([]entity.MovieList, error) {
	args := m.Called()
	lists, _ := args.Get(0).([]entity.MovieList)
	return lists, args.Error(1)
}

func (m *MockListService) GetList(ctx context.Context, slug string) (*entity.MovieList, error) {
	args := m.Called(slug)
	list, _ := args.Get(0).(*entity.MovieList)
	return list, args.Error(1)
}

type MockPersonService struct{ mock.Mock }

func (m *MockPersonService) GetPeople(ctx context.Context) ([]entity.Person, error) {
	args := m.Called()
	people, _ := args.Get(0).([]entity.Person)
	return people, args.Error(1)
}

func (m *MockPersonService) GetPerson(ctx context.Context, slug string) (*response.PersonDetail, error) {
	args := m.Called(slug)
	detail, _ := args.Get(0).(*response.PersonDetail)
	return detail, args.Error(1)
}

type MockWatchlistService struct{ mock.Mock }

func (m *MockWatchlistService) GetWatchlist(ctx context.Context, userName string) ([]response.WatchlistItem, error) {
	args := m.Called(userName)
	items, _ := args.Get(0).([]response.WatchlistItem)
	return items, args.Error(1)
}

func (m *MockWatchlistService) ToggleWatchlist(ctx context.Context, userName, slug string) (bool, error) {
	args := m.Called(userName, slug)
	return args.Bool(0), args.Error(1)
}

func (m *MockWatchlistService) IsInWatchlist(ctx context.Context, userName, movieID string) (bool, error) {
	args := m.Called(userName, movieID)
	return args.Bool(0), args.Error(1)
}

type MockWatchStateService struct{ mock.Mock }

func (m *MockWatchStateService) GetState(ctx context.Context, userName, slug string) (*entity.WatchState, error) {
	args := m.Called(userName, slug)
	state, _ := args.Get(0).(*entity.WatchState)
	return state, args.Error(1)
}

func (m *MockWatchStateService) UpdateState(ctx context.Context, userName, slug string, req *request.WatchStateRequest) (*entity.WatchState, error) {
	args := m.Called(userName, slug, req)
	state, _ := args.Get(0).(*entity.WatchState)
	return state, args.Error(1)
}

func (m *MockWatchStateService) ClearState(ctx context.Context, userName, slug string) (*entity.WatchState, error) {
	args := m.Called(userName, slug)
	state, _ := args.Get(0).(*entity.WatchState)
	return state, args.Error(1)
}

type MockSubmissionService struct{ mock.Mock }

func (m *MockSubmissionService) GetSubmissions(ctx context.Context) ([]entity.MovieSubmission, error) {
	args := m.Called()
	subs, _ := args.Get(0).([]entity.MovieSubmission)
	return subs, args.Error(1)
}

func (m *MockSubmissionService) Submit(ctx context.Context, req *request.MovieSubmissionRequest) (*entity.MovieSubmission, error) {
	args := m.Called(*req)
	sub, _ := args.Get(0).(*entity.MovieSubmission)
	return sub, args.Error(1)
}
