package usecase

import (
	"context"
	"fmt"
	"html"
	"strings"
	"sync"
	"time"

	"letterboxd/internal/data/entity"
	"letterboxd/internal/data/repository"
	"letterboxd/internal/dto/request"
	"letterboxd/pkg/notify"
	"letterboxd/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// notifyTimeout bounds a moderator email sent after the request returned.
const notifyTimeout = 30 * time.Second

type SubmissionService interface {
	GetSubmissions(ctx context.Context) ([]entity.MovieSubmission, error)
	Submit(ctx context.Context, req *request.MovieSubmissionRequest) (*entity.MovieSubmission, error)
}

type submissionService struct {
	repo       *repository.Repository
	notifier   notify.Notifier
	moderators []string
	log        *zap.Logger
	now        func() time.Time
	notifying  sync.WaitGroup
}

func NewSubmissionService(repo *repository.Repository, notifier notify.Notifier, moderators []string, log *zap.Logger) SubmissionService {
	if notifier == nil {
		notifier = notify.Nop{}
	}
	return &submissionService{
		repo:       repo,
		notifier:   notifier,
		moderators: moderators,
		log:        log.With(zap.String("service", "submission")),
		now:        time.Now,
	}
}

func (s *submissionService) GetSubmissions(ctx context.Context) ([]entity.MovieSubmission, error) {
	submissions, err := s.repo.Submission.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get submissions: %w", err)
	}
	return submissions, nil
}

// Submit stores a pending submission. Moderators are notified in the
// background on a best effort basis.
func (s *submissionService) Submit(ctx context.Context, req *request.MovieSubmissionRequest) (*entity.MovieSubmission, error) {
	req.IMDbURL = strings.TrimSpace(req.IMDbURL)
	req.SubmittedBy = strings.TrimSpace(req.SubmittedBy)
	req.Justification = strings.TrimSpace(req.Justification)

	if err := validate(req); err != nil {
		s.log.Warn("Submission rejected", zap.Error(err))
		return nil, err
	}

	imdbID := utils.ExtractIMDbID(req.IMDbURL)
	submission := &entity.MovieSubmission{
		Base: entity.Base{
			Title: fmt.Sprintf("Submission %s", imdbID),
			Slug:  fmt.Sprintf("%s-%s", imdbID, uuid.NewString()[:8]),
		},
		Metadata: entity.MovieSubmissionMetadata{
			IMDbURL:           req.IMDbURL,
			IMDbID:            imdbID,
			SubmittedBy:       req.SubmittedBy,
			SubmissionDate:    utils.Today(s.now),
			Status:            entity.SubmissionStatus(entity.SubmissionStatusPending),
			UserJustification: req.Justification,
		},
	}

	if err := s.repo.Submission.Create(ctx, submission); err != nil {
		return nil, err
	}

	s.log.Info("Movie submitted",
		zap.String("submission_id", submission.ID),
		zap.String("imdb_id", imdbID),
		zap.String("submitted_by", req.SubmittedBy),
	)

	s.notifyModerators(ctx, submissionMessage(s.moderators, submission), submission.ID)
	return submission, nil
}

func (s *submissionService) notifyModerators(ctx context.Context, msg notify.Message, submissionID string) {
	s.notifying.Add(1)
	go func() {
		defer s.notifying.Done()

		ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), notifyTimeout)
		defer cancel()

		if err := s.notifier.Notify(ctx, msg); err != nil {
			s.log.Warn("Failed to notify moderators", zap.Error(err), zap.String("submission_id", submissionID))
		}
	}()
}

func submissionMessage(to []string, sub *entity.MovieSubmission) notify.Message {
	var b strings.Builder
	b.WriteString("<p>A new movie was submitted for review.</p><ul>")
	fmt.Fprintf(&b, `<li>IMDb: <a href="%[1]s">%[1]s</a></li>`, html.EscapeString(sub.Metadata.IMDbURL))
	fmt.Fprintf(&b, "<li>Submitted by: %s</li>", html.EscapeString(sub.Metadata.SubmittedBy))
	fmt.Fprintf(&b, "<li>Date: %s</li>", sub.Metadata.SubmissionDate)
	b.WriteString("</ul>")
	if j := sub.Metadata.UserJustification; j != "" {
		fmt.Fprintf(&b, "<p>%s</p>", html.EscapeString(j))
	}

	return notify.Message{
		To:      to,
		Subject: fmt.Sprintf("New movie submission: %s", sub.Metadata.IMDbID),
		Body:    b.String(),
	}
}
