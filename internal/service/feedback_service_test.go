package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Oliverknowledge/Signal-Backend/internal/model"
)

type fakeFeedbackRepo struct {
	feedback  []*model.Feedback
	grades    []*model.RecallGrade
	lastLimit int64
}

func (r *fakeFeedbackRepo) CreateFeedback(ctx context.Context, fb *model.Feedback) error {
	r.feedback = append(r.feedback, fb)
	return nil
}

func (r *fakeFeedbackRepo) CreateGrade(ctx context.Context, grade *model.RecallGrade) error {
	r.grades = append(r.grades, grade)
	return nil
}

func (r *fakeFeedbackRepo) GetFeedbackByClient(ctx context.Context, clientID string, limit int64) ([]*model.Feedback, error) {
	r.lastLimit = limit
	return r.feedback, nil
}

func (r *fakeFeedbackRepo) GetGradesByClient(ctx context.Context, clientID string, limit int64) ([]*model.RecallGrade, error) {
	r.lastLimit = limit
	return r.grades, nil
}

func TestRecordFeedbackValidation(t *testing.T) {
	svc := NewFeedbackService(&fakeFeedbackRepo{}, zerolog.Nop())
	ctx := context.Background()

	err := svc.RecordFeedback(ctx, "client_1", &model.Feedback{
		ContentURL: "https://example.com/a",
		Kind:       "meh",
	})
	assert.ErrorIs(t, err, ErrInvalidFeedback)

	err = svc.RecordFeedback(ctx, "client_1", &model.Feedback{Kind: model.FeedbackHelpful})
	assert.ErrorIs(t, err, ErrInvalidFeedback)
}

func TestListFeedback(t *testing.T) {
	repo := &fakeFeedbackRepo{}
	svc := NewFeedbackService(repo, zerolog.Nop())
	ctx := context.Background()

	t.Run("empty store yields empty slice, not nil", func(t *testing.T) {
		out, err := svc.ListFeedback(ctx, "client_1", 10)
		require.NoError(t, err)
		assert.NotNil(t, out)
		assert.Empty(t, out)
	})

	t.Run("zero and oversized limits clamp to the default", func(t *testing.T) {
		_, err := svc.ListFeedback(ctx, "client_1", 0)
		require.NoError(t, err)
		assert.Equal(t, int64(defaultListLimit), repo.lastLimit)

		_, err = svc.ListFeedback(ctx, "client_1", 10_000)
		require.NoError(t, err)
		assert.Equal(t, int64(defaultListLimit), repo.lastLimit)
	})

	t.Run("recorded feedback comes back", func(t *testing.T) {
		require.NoError(t, svc.RecordFeedback(ctx, "client_1", &model.Feedback{
			ContentURL: "https://example.com/a",
			Kind:       model.FeedbackHelpful,
		}))

		out, err := svc.ListFeedback(ctx, "client_1", 10)
		require.NoError(t, err)
		require.Len(t, out, 1)
		assert.Equal(t, "client_1", out[0].ClientID)
	})
}

func TestListGrades(t *testing.T) {
	repo := &fakeFeedbackRepo{}
	svc := NewFeedbackService(repo, zerolog.Nop())
	ctx := context.Background()

	require.NoError(t, svc.RecordGrade(ctx, "client_1", &model.RecallGrade{
		ContentURL:   "https://example.com/a",
		QuestionType: model.QuestionTypeMCQ,
		Question:     "Which option best summarizes goroutines?",
		Correct:      true,
	}))

	out, err := svc.ListGrades(ctx, "client_1", 5)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.True(t, out[0].Correct)
	assert.Equal(t, int64(5), repo.lastLimit)
}
