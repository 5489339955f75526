// Package question implements the recall question plan: per-mode targets for
// open/mcq counts, candidate validation, deterministic backfill and ordering.
package question

import (
	"strings"

	"github.com/Oliverknowledge/Signal-Backend/internal/model"
)

var planTable = map[model.LearningMode]model.QuestionPlan{
	model.ModeInterviewPrep: {
		Mode:       model.ModeInterviewPrep,
		OpenTarget: 3,
		MCQTarget:  1,
		Ordering:   model.OrderOpenFirst,
	},
	model.ModeAssessmentExam: {
		Mode:       model.ModeAssessmentExam,
		OpenTarget: 1,
		MCQTarget:  3,
		Ordering:   model.OrderMCQFirst,
	},
	model.ModeGeneralLearning: {
		Mode:       model.ModeGeneralLearning,
		OpenTarget: 2,
		MCQTarget:  2,
		Ordering:   model.OrderBalanced,
	},
}

// ParseMode normalizes a caller-supplied learning mode string. Matching is
// case-insensitive and tolerant of space/hyphen separators; unrecognized
// values default to general_learning.
func ParseMode(s string) model.LearningMode {
	norm := strings.ToLower(strings.TrimSpace(s))
	norm = strings.ReplaceAll(norm, "-", "_")
	norm = strings.ReplaceAll(norm, " ", "_")

	switch model.LearningMode(norm) {
	case model.ModeInterviewPrep, model.ModeAssessmentExam, model.ModeGeneralLearning:
		return model.LearningMode(norm)
	default:
		return model.ModeGeneralLearning
	}
}

// PlanFor returns the fixed question plan for a learning mode. Unknown modes
// get the general_learning plan.
func PlanFor(mode model.LearningMode) model.QuestionPlan {
	if p, ok := planTable[mode]; ok {
		return p
	}
	return planTable[model.ModeGeneralLearning]
}
