package model

// QuestionType distinguishes open recall questions from multiple choice
type QuestionType string

const (
	QuestionTypeOpen QuestionType = "open"
	QuestionTypeMCQ  QuestionType = "mcq"
)

// LearningMode selects the recall question plan for a request
type LearningMode string

const (
	ModeInterviewPrep   LearningMode = "interview_prep"
	ModeAssessmentExam  LearningMode = "assessment_exam_prep"
	ModeGeneralLearning LearningMode = "general_learning"
)

// PlanOrdering controls how open and mcq questions are interleaved
type PlanOrdering string

const (
	OrderOpenFirst PlanOrdering = "open_first"
	OrderMCQFirst  PlanOrdering = "mcq_first"
	OrderBalanced  PlanOrdering = "balanced"
)

// RecallQuestion is a single recall question returned to the client.
// CorrectIndex is nil for open questions; mcq questions always carry it,
// index 0 included.
type RecallQuestion struct {
	Type         QuestionType `json:"type"`
	Question     string       `json:"question"`
	Options      []string     `json:"options,omitempty"`
	CorrectIndex *int         `json:"correct_index,omitempty"`
}

// QuestionPlan fixes the count and mix of recall questions for a learning
// mode. Constructed once per request from a fixed lookup, never mutated.
type QuestionPlan struct {
	Mode       LearningMode `json:"mode"`
	OpenTarget int          `json:"open_target"`
	MCQTarget  int          `json:"mcq_target"`
	Ordering   PlanOrdering `json:"ordering"`
}
