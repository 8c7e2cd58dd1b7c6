package usecase

import (
	"context"
	"fmt"
	"sort"

	"letterboxd/internal/data/entity"
	"letterboxd/internal/data/repository"
	"letterboxd/internal/dto/response"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type PersonService interface {
	GetPeople(ctx context.Context) ([]entity.Person, error)
	GetPerson(ctx context.Context, slug string) (*response.PersonDetail, error)
}

type personService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewPersonService(repo *repository.Repository, log *zap.Logger) PersonService {
	return &personService{
		repo: repo,
		log:  log.With(zap.String("service", "person")),
	}
}

func (s *personService) GetPeople(ctx context.Context) ([]entity.Person, error) {
	people, err := s.repo.Person.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get people: %w", err)
	}
	return people, nil
}

func (s *personService) GetPerson(ctx context.Context, slug string) (*response.PersonDetail, error) {
	var (
		person *entity.Person
		movies []entity.Movie
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		person, err = s.repo.Person.FindBySlug(gctx, slug)
		return err
	})
	g.Go(func() error {
		var err error
		movies, err = s.repo.Movie.FindPublished(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("get person: %w", err)
	}
	if person == nil {
		return nil, notFound("person", slug)
	}

	filmography := Filmography(person.Name(), movies)

	s.log.Debug("Person loaded",
		zap.String("slug", slug),
		zap.Int("filmography", len(filmography)),
	)
	return &response.PersonDetail{Person: person, Filmography: filmography}, nil
}

// Filmography returns the movies name directed or appears in, newest first.
func Filmography(name string, movies []entity.Movie) []entity.Movie {
	out := make([]entity.Movie, 0)
	for i := range movies {
		if movies[i].Involves(name) {
			out = append(out, movies[i])
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Metadata.ReleaseYear > out[j].Metadata.ReleaseYear
	})
	return out
}
