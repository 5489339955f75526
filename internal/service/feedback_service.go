package service

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog"

	"github.com/Oliverknowledge/Signal-Backend/internal/model"
	"github.com/Oliverknowledge/Signal-Backend/internal/repository"
)

var ErrInvalidFeedback = errors.New("invalid feedback payload")

const (
	defaultListLimit = 50
	maxListLimit     = 200
)

// FeedbackService records feedback and recall grade events from the client app
type FeedbackService struct {
	repo repository.FeedbackRepo
	log  zerolog.Logger
}

// NewFeedbackService creates a new feedback service
func NewFeedbackService(repo repository.FeedbackRepo, log zerolog.Logger) *FeedbackService {
	return &FeedbackService{repo: repo, log: log}
}

// RecordFeedback validates and persists one feedback event
func (s *FeedbackService) RecordFeedback(ctx context.Context, clientID string, fb *model.Feedback) error {
	switch fb.Kind {
	case model.FeedbackHelpful, model.FeedbackNotHelpful, model.FeedbackDismissed:
	default:
		return ErrInvalidFeedback
	}
	if strings.TrimSpace(fb.ContentURL) == "" {
		return ErrInvalidFeedback
	}

	fb.ClientID = clientID
	if err := s.repo.CreateFeedback(ctx, fb); err != nil {
		return err
	}

	s.log.Info().Str("client", clientID).Str("kind", string(fb.Kind)).Msg("feedback recorded")
	return nil
}

// RecordGrade validates and persists one recall grade event
func (s *FeedbackService) RecordGrade(ctx context.Context, clientID string, grade *model.RecallGrade) error {
	switch grade.QuestionType {
	case model.QuestionTypeOpen, model.QuestionTypeMCQ:
	default:
		return ErrInvalidFeedback
	}
	if strings.TrimSpace(grade.Question) == "" || strings.TrimSpace(grade.ContentURL) == "" {
		return ErrInvalidFeedback
	}

	grade.ClientID = clientID
	if err := s.repo.CreateGrade(ctx, grade); err != nil {
		return err
	}

	s.log.Info().Str("client", clientID).Bool("correct", grade.Correct).Msg("recall grade recorded")
	return nil
}

// ListFeedback returns the client's most recent feedback events
func (s *FeedbackService) ListFeedback(ctx context.Context, clientID string, limit int64) ([]*model.Feedback, error) {
	out, err := s.repo.GetFeedbackByClient(ctx, clientID, clampLimit(limit))
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = []*model.Feedback{}
	}
	return out, nil
}

// ListGrades returns the client's most recent recall grade events
func (s *FeedbackService) ListGrades(ctx context.Context, clientID string, limit int64) ([]*model.RecallGrade, error) {
	out, err := s.repo.GetGradesByClient(ctx, clientID, clampLimit(limit))
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = []*model.RecallGrade{}
	}
	return out, nil
}

func clampLimit(limit int64) int64 {
	if limit <= 0 || limit > maxListLimit {
		return defaultListLimit
	}
	return limit
}
