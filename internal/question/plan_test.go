package question

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Oliverknowledge/Signal-Backend/internal/model"
)

func TestParseMode(t *testing.T) {
	tests := []struct {
		in   string
		want model.LearningMode
	}{
		{"interview_prep", model.ModeInterviewPrep},
		{"Interview Prep", model.ModeInterviewPrep},
		{"INTERVIEW-PREP", model.ModeInterviewPrep},
		{"  assessment_exam_prep ", model.ModeAssessmentExam},
		{"general_learning", model.ModeGeneralLearning},
		{"general learning", model.ModeGeneralLearning},
		{"", model.ModeGeneralLearning},
		{"speedrun", model.ModeGeneralLearning},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseMode(tt.in), "input %q", tt.in)
	}
}

func TestPlanFor(t *testing.T) {
	gen := PlanFor(model.ModeGeneralLearning)
	assert.Equal(t, 2, gen.OpenTarget)
	assert.Equal(t, 2, gen.MCQTarget)
	assert.Equal(t, model.OrderBalanced, gen.Ordering)

	iv := PlanFor(model.ModeInterviewPrep)
	assert.Equal(t, 3, iv.OpenTarget)
	assert.Equal(t, 1, iv.MCQTarget)
	assert.Equal(t, model.OrderOpenFirst, iv.Ordering)

	exam := PlanFor(model.ModeAssessmentExam)
	assert.Equal(t, 1, exam.OpenTarget)
	assert.Equal(t, 3, exam.MCQTarget)
	assert.Equal(t, model.OrderMCQFirst, exam.Ordering)

	// Every plan yields the same total question count.
	for _, p := range []model.QuestionPlan{gen, iv, exam} {
		assert.Equal(t, 4, p.OpenTarget+p.MCQTarget)
	}

	assert.Equal(t, gen, PlanFor(model.LearningMode("unknown")))
}
