package question

import (
	"fmt"
	"strconv"
	"unicode/utf8"

	"github.com/Oliverknowledge/Signal-Backend/internal/model"
)

const (
	openMinLen   = 8
	openMaxLen   = 220
	optionMinLen = 2
	optionMaxLen = 120
	mcqOptions   = 4
)

// genericDistractors pad synthesized MCQs. The correct answer always sits at
// index 0 before these.
var genericDistractors = []string{
	"None of the above",
	"It is not covered by this content",
	"The opposite of what the content states",
}

var openTemplates = map[model.LearningMode]string{
	model.ModeInterviewPrep:   "How would you explain %s to an interviewer, and where have you applied it?",
	model.ModeAssessmentExam:  "Define %s and describe one situation where it applies.",
	model.ModeGeneralLearning: "In your own words, what is %s and why does it matter?",
}

var mcqTemplates = map[model.LearningMode]string{
	model.ModeInterviewPrep:   "Which statement best describes %s?",
	model.ModeAssessmentExam:  "Which of the following is true about %s?",
	model.ModeGeneralLearning: "Which option best summarizes %s?",
}

// Enforce guarantees the plan's exact question count and open/mcq mix.
// Valid candidates are taken in their original relative order; short pools
// are topped up deterministically from the concept list. The result length
// is always exactly OpenTarget+MCQTarget.
func Enforce(candidates []model.RawRecallQuestion, concepts []string, plan model.QuestionPlan) []model.RecallQuestion {
	var open, mcq []model.RecallQuestion
	for _, c := range candidates {
		q, ok := validate(c)
		if !ok {
			continue
		}
		switch q.Type {
		case model.QuestionTypeOpen:
			if len(open) < plan.OpenTarget {
				open = append(open, q)
			}
		case model.QuestionTypeMCQ:
			if len(mcq) < plan.MCQTarget {
				mcq = append(mcq, q)
			}
		}
	}

	for i := len(open); i < plan.OpenTarget; i++ {
		open = append(open, synthesizeOpen(concepts, i, plan.Mode))
	}
	for i := len(mcq); i < plan.MCQTarget; i++ {
		mcq = append(mcq, synthesizeMCQ(concepts, i, plan.Mode))
	}

	return order(open, mcq, plan.Ordering)
}

// validate applies the candidate rules: open questions need 8-220 character
// text; mcq questions need exactly 4 unique 2-120 character options and one
// valid correct_index in [0,3]. Limits are in characters, not bytes.
func validate(c model.RawRecallQuestion) (model.RecallQuestion, bool) {
	qLen := utf8.RuneCountInString(c.Question)
	switch model.QuestionType(c.Type) {
	case model.QuestionTypeOpen:
		if qLen < openMinLen || qLen > openMaxLen {
			return model.RecallQuestion{}, false
		}
		return model.RecallQuestion{Type: model.QuestionTypeOpen, Question: c.Question}, true

	case model.QuestionTypeMCQ:
		if qLen < openMinLen || qLen > openMaxLen {
			return model.RecallQuestion{}, false
		}
		if len(c.Options) != mcqOptions {
			return model.RecallQuestion{}, false
		}
		seen := make(map[string]bool, mcqOptions)
		for _, opt := range c.Options {
			optLen := utf8.RuneCountInString(opt)
			if optLen < optionMinLen || optLen > optionMaxLen || seen[opt] {
				return model.RecallQuestion{}, false
			}
			seen[opt] = true
		}
		idx, ok := coerceIndex(c.CorrectIndex)
		if !ok || idx < 0 || idx >= mcqOptions {
			return model.RecallQuestion{}, false
		}
		return model.RecallQuestion{
			Type:         model.QuestionTypeMCQ,
			Question:     c.Question,
			Options:      c.Options,
			CorrectIndex: &idx,
		}, true
	}
	return model.RecallQuestion{}, false
}

// coerceIndex accepts the JSON number (float64), an int, or a numeric string.
func coerceIndex(v interface{}) (int, bool) {
	switch n := v.(type) {
	case float64:
		if n != float64(int(n)) {
			return 0, false
		}
		return int(n), true
	case int:
		return n, true
	case string:
		i, err := strconv.Atoi(n)
		if err != nil {
			return 0, false
		}
		return i, true
	}
	return 0, false
}

func conceptAt(concepts []string, i int) string {
	if len(concepts) == 0 {
		return "the main idea of this content"
	}
	return concepts[i%len(concepts)]
}

func synthesizeOpen(concepts []string, i int, mode model.LearningMode) model.RecallQuestion {
	tmpl, ok := openTemplates[mode]
	if !ok {
		tmpl = openTemplates[model.ModeGeneralLearning]
	}
	return model.RecallQuestion{
		Type:     model.QuestionTypeOpen,
		Question: fmt.Sprintf(tmpl, conceptAt(concepts, i)),
	}
}

func synthesizeMCQ(concepts []string, i int, mode model.LearningMode) model.RecallQuestion {
	tmpl, ok := mcqTemplates[mode]
	if !ok {
		tmpl = mcqTemplates[model.ModeGeneralLearning]
	}
	concept := conceptAt(concepts, i)
	options := make([]string, 0, mcqOptions)
	options = append(options, fmt.Sprintf("It is a key concept: %s", concept))
	options = append(options, genericDistractors...)
	correct := 0
	return model.RecallQuestion{
		Type:         model.QuestionTypeMCQ,
		Question:     fmt.Sprintf(tmpl, concept),
		Options:      options,
		CorrectIndex: &correct,
	}
}

func order(open, mcq []model.RecallQuestion, ordering model.PlanOrdering) []model.RecallQuestion {
	out := make([]model.RecallQuestion, 0, len(open)+len(mcq))
	switch ordering {
	case model.OrderOpenFirst:
		out = append(out, open...)
		out = append(out, mcq...)
	case model.OrderMCQFirst:
		out = append(out, mcq...)
		out = append(out, open...)
	default: // balanced: interleave one-for-one, then drain the longer pool
		i, j := 0, 0
		for i < len(open) || j < len(mcq) {
			if i < len(open) {
				out = append(out, open[i])
				i++
			}
			if j < len(mcq) {
				out = append(out, mcq[j])
				j++
			}
		}
	}
	return out
}
