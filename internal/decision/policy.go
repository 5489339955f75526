// Package decision implements the trigger/ignore decision core: score
// normalization, the policy threshold table, confidence classification and
// reason code resolution. Everything here is a pure function over its
// arguments plus the read-only policy table built at init.
package decision

import (
	"fmt"

	"github.com/Oliverknowledge/Signal-Backend/internal/model"
)

// PolicyThresholds is the threshold set for one intervention policy.
// Invariants: LowRelevance <= Trigger <= HighRelevance (same for learning),
// MinConceptCount <= LowConceptCount <= HighConceptCount.
type PolicyThresholds struct {
	Trigger          float64
	HighRelevance    float64
	HighLearning     float64
	HighConceptCount int
	LowRelevance     float64
	LowLearning      float64
	LowConceptCount  int
	MinConceptCount  int
}

var policyTable = map[model.InterventionPolicy]PolicyThresholds{
	model.PolicyFocused: {
		Trigger:          0.7,
		HighRelevance:    0.8,
		HighLearning:     0.75,
		HighConceptCount: 6,
		LowRelevance:     0.5,
		LowLearning:      0.5,
		LowConceptCount:  4,
		MinConceptCount:  2,
	},
	model.PolicyAggressive: {
		Trigger:          0.6,
		HighRelevance:    0.75,
		HighLearning:     0.7,
		HighConceptCount: 5,
		LowRelevance:     0.4,
		LowLearning:      0.4,
		LowConceptCount:  2,
		MinConceptCount:  1,
	},
}

func init() {
	for name, p := range policyTable {
		if err := p.validate(); err != nil {
			panic(fmt.Sprintf("decision: invalid policy table entry %q: %v", name, err))
		}
	}
}

func (p PolicyThresholds) validate() error {
	if !(p.LowRelevance <= p.Trigger && p.Trigger <= p.HighRelevance) {
		return fmt.Errorf("relevance bands out of order: %v <= %v <= %v", p.LowRelevance, p.Trigger, p.HighRelevance)
	}
	if !(p.LowLearning <= p.Trigger && p.Trigger <= p.HighLearning) {
		return fmt.Errorf("learning bands out of order: %v <= %v <= %v", p.LowLearning, p.Trigger, p.HighLearning)
	}
	if !(p.MinConceptCount <= p.LowConceptCount && p.LowConceptCount <= p.HighConceptCount) {
		return fmt.Errorf("concept bands out of order: %d <= %d <= %d", p.MinConceptCount, p.LowConceptCount, p.HighConceptCount)
	}
	return nil
}

// ParsePolicy maps a caller-supplied policy string to a known policy.
// Unrecognized values fall back to focused rather than failing the request.
func ParsePolicy(s string) model.InterventionPolicy {
	switch model.InterventionPolicy(s) {
	case model.PolicyAggressive:
		return model.PolicyAggressive
	default:
		return model.PolicyFocused
	}
}

// Thresholds returns the threshold set for a policy. Unknown policies get
// the focused thresholds.
func Thresholds(policy model.InterventionPolicy) PolicyThresholds {
	if p, ok := policyTable[policy]; ok {
		return p
	}
	return policyTable[model.PolicyFocused]
}
