package repository

import (
	"context"
	"fmt"

	"letterboxd/internal/data/entity"
	"letterboxd/pkg/cms"

	"go.uber.org/zap"
)

type SubmissionRepository interface {
	FindAll(ctx context.Context) ([]entity.MovieSubmission, error)
	Create(ctx context.Context, submission *entity.MovieSubmission) error
}

type submissionRepository struct {
	client cms.Client
	log    *zap.Logger
}

func NewSubmissionRepository(client cms.Client, log *zap.Logger) SubmissionRepository {
	return &submissionRepository{
		client: client,
		log:    log.With(zap.String("repository", "submission")),
	}
}

func (r *submissionRepository) FindAll(ctx context.Context) ([]entity.MovieSubmission, error) {
	q := cms.NewQuery(TypeMovieSubmissions).
		WithProps(cms.DefaultProps...).
		SortBy("-metadata.submission_date")

	submissions, err := findAll[entity.MovieSubmission](ctx, r.client, q, "movie submissions")
	if err != nil {
		r.log.Error("Failed to find submissions", zap.Error(err))
		return nil, err
	}
	return submissions, nil
}

// Create inserts the submission and fills in the id the CMS assigned.
func (r *submissionRepository) Create(ctx context.Context, submission *entity.MovieSubmission) error {
	obj, err := r.client.InsertOne(ctx, cms.InsertRequest{
		Type:     TypeMovieSubmissions,
		Title:    submission.Title,
		Slug:     submission.Slug,
		Metadata: submission.Metadata,
	})
	if err != nil {
		r.log.Error("Failed to create submission",
			zap.Error(err),
			zap.String("imdb_url", submission.Metadata.IMDbURL),
		)
		return fmt.Errorf("failed to create movie submission: %w", err)
	}

	submission.ID = obj.ID
	submission.Type = TypeMovieSubmissions
	if obj.Slug != "" {
		submission.Slug = obj.Slug
	}
	submission.CreatedAt = obj.CreatedAt
	return nil
}
