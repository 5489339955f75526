package question

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Oliverknowledge/Signal-Backend/internal/model"
)

func openCandidate(text string) model.RawRecallQuestion {
	return model.RawRecallQuestion{Type: "open", Question: text}
}

func mcqCandidate(text string, options []string, idx interface{}) model.RawRecallQuestion {
	return model.RawRecallQuestion{Type: "mcq", Question: text, Options: options, CorrectIndex: idx}
}

func validOptions() []string {
	return []string{"Option alpha", "Option beta", "Option gamma", "Option delta"}
}

func TestEnforceExactShapeWithNoCandidates(t *testing.T) {
	plan := PlanFor(model.ModeGeneralLearning)
	got := Enforce(nil, []string{"goroutines", "channels"}, plan)

	require.Len(t, got, 4)
	// Balanced ordering alternates open/mcq.
	assert.Equal(t, model.QuestionTypeOpen, got[0].Type)
	assert.Equal(t, model.QuestionTypeMCQ, got[1].Type)
	assert.Equal(t, model.QuestionTypeOpen, got[2].Type)
	assert.Equal(t, model.QuestionTypeMCQ, got[3].Type)

	// Synthesized MCQs put the correct answer at index 0.
	require.NotNil(t, got[1].CorrectIndex)
	assert.Equal(t, 0, *got[1].CorrectIndex)
	require.Len(t, got[1].Options, 4)
	assert.Contains(t, got[1].Options[0], "goroutines")
}

func TestQuestionJSONCarriesCorrectIndexZero(t *testing.T) {
	got := Enforce(nil, []string{"goroutines"}, PlanFor(model.ModeGeneralLearning))
	require.Len(t, got, 4)

	for _, q := range got {
		data, err := json.Marshal(q)
		require.NoError(t, err)
		switch q.Type {
		case model.QuestionTypeMCQ:
			// Index 0 must survive serialization; clients can't tell a
			// dropped key from a missing answer.
			assert.Contains(t, string(data), `"correct_index":0`)
		case model.QuestionTypeOpen:
			assert.NotContains(t, string(data), "correct_index")
		}
	}
}

func TestEnforceExactShapeWithSurplusCandidates(t *testing.T) {
	plan := PlanFor(model.ModeGeneralLearning)
	var candidates []model.RawRecallQuestion
	for i := 0; i < 4; i++ {
		candidates = append(candidates, openCandidate("What is the role of the scheduler in Go?"))
		candidates = append(candidates, mcqCandidate("Which is true of channels in Go?", validOptions(), 1))
	}

	got := Enforce(candidates, []string{"scheduler"}, plan)
	require.Len(t, got, 4)

	var open, mcq int
	for _, q := range got {
		if q.Type == model.QuestionTypeOpen {
			open++
		} else {
			mcq++
		}
	}
	assert.Equal(t, 2, open)
	assert.Equal(t, 2, mcq)
}

func TestEnforcePreservesCandidateOrder(t *testing.T) {
	plan := PlanFor(model.ModeInterviewPrep)
	candidates := []model.RawRecallQuestion{
		openCandidate("First open question about slices?"),
		openCandidate("Second open question about maps?"),
		openCandidate("Third open question about structs?"),
		mcqCandidate("Which is true about interfaces?", validOptions(), 0),
	}

	got := Enforce(candidates, nil, plan)
	require.Len(t, got, 4)
	// open_first: three opens in original order, then the mcq.
	assert.Equal(t, "First open question about slices?", got[0].Question)
	assert.Equal(t, "Second open question about maps?", got[1].Question)
	assert.Equal(t, "Third open question about structs?", got[2].Question)
	assert.Equal(t, model.QuestionTypeMCQ, got[3].Type)
}

func TestEnforceMCQFirstOrdering(t *testing.T) {
	plan := PlanFor(model.ModeAssessmentExam)
	got := Enforce(nil, []string{"indexes"}, plan)
	require.Len(t, got, 4)
	assert.Equal(t, model.QuestionTypeMCQ, got[0].Type)
	assert.Equal(t, model.QuestionTypeMCQ, got[1].Type)
	assert.Equal(t, model.QuestionTypeMCQ, got[2].Type)
	assert.Equal(t, model.QuestionTypeOpen, got[3].Type)
}

func TestEnforceCyclesConceptsWhenShort(t *testing.T) {
	plan := PlanFor(model.ModeInterviewPrep) // 3 open
	got := Enforce(nil, []string{"recursion"}, plan)
	require.Len(t, got, 4)
	for _, q := range got[:3] {
		assert.Contains(t, q.Question, "recursion")
	}
}

func TestEnforceDeterministic(t *testing.T) {
	plan := PlanFor(model.ModeGeneralLearning)
	concepts := []string{"heaps", "tries"}
	a := Enforce(nil, concepts, plan)
	b := Enforce(nil, concepts, plan)
	assert.Equal(t, a, b)
}

func TestValidateRejectsMalformedCandidates(t *testing.T) {
	tests := []struct {
		name string
		c    model.RawRecallQuestion
	}{
		{"open too short", openCandidate("Why?")},
		{"open too long", openCandidate(string(make([]byte, 221)))},
		{"unknown type", model.RawRecallQuestion{Type: "essay", Question: "A valid length question?"}},
		{"mcq three options", mcqCandidate("Which is true about maps?", []string{"One ok", "Two ok", "Three ok"}, 0)},
		{"mcq duplicate options", mcqCandidate("Which is true about maps?", []string{"Same", "Same", "Other", "More"}, 0)},
		{"mcq option too short", mcqCandidate("Which is true about maps?", []string{"a", "Two ok", "Three ok", "Four ok"}, 0)},
		{"mcq index out of range", mcqCandidate("Which is true about maps?", validOptions(), 4)},
		{"mcq negative index", mcqCandidate("Which is true about maps?", validOptions(), -1)},
		{"mcq fractional index", mcqCandidate("Which is true about maps?", validOptions(), 1.5)},
		{"mcq non-numeric index", mcqCandidate("Which is true about maps?", validOptions(), "first")},
		{"mcq missing index", mcqCandidate("Which is true about maps?", validOptions(), nil)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := validate(tt.c)
			assert.False(t, ok)
		})
	}
}

func TestValidateAcceptsCoercibleIndex(t *testing.T) {
	for _, idx := range []interface{}{float64(2), 2, "2"} {
		q, ok := validate(mcqCandidate("Which is true about maps?", validOptions(), idx))
		require.True(t, ok)
		require.NotNil(t, q.CorrectIndex)
		assert.Equal(t, 2, *q.CorrectIndex)
	}
}

func TestValidateMeasuresCharactersNotBytes(t *testing.T) {
	// 80 CJK characters is 240 bytes; well inside the 220-character cap.
	wideQuestion := strings.Repeat("语", 80)
	q, ok := validate(openCandidate(wideQuestion))
	require.True(t, ok)
	assert.Equal(t, wideQuestion, q.Question)

	// 120 CJK characters per option is the inclusive max.
	wideOptions := []string{
		strings.Repeat("一", 120),
		strings.Repeat("二", 120),
		strings.Repeat("三", 120),
		strings.Repeat("四", 120),
	}
	_, ok = validate(mcqCandidate(wideQuestion, wideOptions, 0))
	assert.True(t, ok)

	// A 2-byte but single-character option is still too short.
	_, ok = validate(mcqCandidate(wideQuestion, []string{"语", "Two ok", "Three ok", "Four ok"}, 0))
	assert.False(t, ok)

	// 221 characters is over the cap regardless of byte width.
	_, ok = validate(openCandidate(strings.Repeat("语", 221)))
	assert.False(t, ok)
}

func TestEnforceWithoutConceptsStillFills(t *testing.T) {
	got := Enforce(nil, nil, PlanFor(model.ModeGeneralLearning))
	require.Len(t, got, 4)
	for _, q := range got {
		assert.NotEmpty(t, q.Question)
	}
}
