package repository

import (
	"context"

	"letterboxd/internal/data/entity"
	"letterboxd/pkg/cms"

	"go.uber.org/zap"
)

type PersonRepository interface {
	FindAll(ctx context.Context) ([]entity.Person, error)
	FindBySlug(ctx context.Context, slug string) (*entity.Person, error)
}

type personRepository struct {
	client cms.Client
	log    *zap.Logger
}

func NewPersonRepository(client cms.Client, log *zap.Logger) PersonRepository {
	return &personRepository{
		client: client,
		log:    log.With(zap.String("repository", "person")),
	}
}

func (r *personRepository) FindAll(ctx context.Context) ([]entity.Person, error) {
	q := cms.NewQuery(TypePeople).WithProps(cms.DefaultProps...).WithDepth(1)

	people, err := findAll[entity.Person](ctx, r.client, q, "people")
	if err != nil {
		r.log.Error("Failed to find people", zap.Error(err))
		return nil, err
	}
	return people, nil
}

func (r *personRepository) FindBySlug(ctx context.Context, slug string) (*entity.Person, error) {
	q := cms.NewQuery(TypePeople).WithSlug(slug).WithDepth(1)

	person, err := findOne[entity.Person](ctx, r.client, q, "person")
	if err != nil {
		r.log.Error("Failed to find person", zap.Error(err), zap.String("slug", slug))
		return nil, err
	}
	return person, nil
}
