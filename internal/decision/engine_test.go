package decision

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Oliverknowledge/Signal-Backend/internal/model"
)

func scores(rel, learn float64, cc int) model.NormalizedScores {
	return model.NormalizedScores{RelevanceScore: rel, LearningValueScore: learn, ConceptCount: cc}
}

func TestDecide(t *testing.T) {
	tests := []struct {
		name   string
		scores model.NormalizedScores
		policy model.InterventionPolicy
		want   model.SystemDecision
	}{
		{"focused both above trigger", scores(0.8, 0.75, 7), model.PolicyFocused, model.DecisionTriggered},
		{"focused both below trigger", scores(0.6, 0.6, 3), model.PolicyFocused, model.DecisionIgnored},
		{"focused relevance alone insufficient", scores(0.9, 0.69, 5), model.PolicyFocused, model.DecisionIgnored},
		{"focused learning alone insufficient", scores(0.69, 0.9, 5), model.PolicyFocused, model.DecisionIgnored},
		{"focused exactly at trigger", scores(0.7, 0.7, 5), model.PolicyFocused, model.DecisionTriggered},
		{"aggressive looser trigger", scores(0.62, 0.62, 2), model.PolicyAggressive, model.DecisionTriggered},
		{"aggressive below trigger", scores(0.59, 0.62, 2), model.PolicyAggressive, model.DecisionIgnored},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Decide(tt.scores, tt.policy))
			// Pure function: repeated invocation is identical.
			assert.Equal(t, tt.want, Decide(tt.scores, tt.policy))
		})
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name   string
		scores model.NormalizedScores
		policy model.InterventionPolicy
		want   model.DecisionConfidence
	}{
		{"all high conditions met", scores(0.8, 0.75, 7), model.PolicyFocused, model.ConfidenceHigh},
		{"high needs all: concepts short", scores(0.9, 0.9, 5), model.PolicyFocused, model.ConfidenceBorderline},
		{"high needs all: learning short", scores(0.9, 0.74, 8), model.PolicyFocused, model.ConfidenceBorderline},
		{"low on any: concepts", scores(0.6, 0.6, 3), model.PolicyFocused, model.ConfidenceLow},
		{"low on any: relevance", scores(0.49, 0.7, 6), model.PolicyFocused, model.ConfidenceLow},
		{"low on any: learning", scores(0.7, 0.49, 6), model.PolicyFocused, model.ConfidenceLow},
		{"between bands", scores(0.6, 0.6, 4), model.PolicyFocused, model.ConfidenceBorderline},
		{"aggressive borderline", scores(0.62, 0.62, 2), model.PolicyAggressive, model.ConfidenceBorderline},
		{"aggressive high", scores(0.8, 0.75, 5), model.PolicyAggressive, model.ConfidenceHigh},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.scores, tt.policy))
		})
	}
}

// Raising any single input while holding the others fixed must never lower
// the confidence label.
func TestClassifyMonotonicInRelevance(t *testing.T) {
	rank := map[model.DecisionConfidence]int{
		model.ConfidenceLow:        0,
		model.ConfidenceBorderline: 1,
		model.ConfidenceHigh:       2,
	}

	for _, policy := range []model.InterventionPolicy{model.PolicyFocused, model.PolicyAggressive} {
		prev := -1
		for rel := 0.0; rel <= 1.0; rel += 0.01 {
			got := rank[Classify(scores(rel, 0.8, 8), policy)]
			assert.GreaterOrEqual(t, got, prev, "policy %s relevance %f", policy, rel)
			prev = got
		}

		prev = -1
		for cc := 0; cc <= 12; cc++ {
			got := rank[Classify(scores(0.8, 0.8, cc), policy)]
			assert.GreaterOrEqual(t, got, prev, "policy %s concepts %d", policy, cc)
			prev = got
		}
	}
}

func TestResolveReasonPrecedence(t *testing.T) {
	tests := []struct {
		name      string
		decision  model.SystemDecision
		scores    model.NormalizedScores
		policy    model.InterventionPolicy
		retrieval bool
		want      model.ReasonCode
	}{
		{"retrieval wins when triggered", model.DecisionTriggered, scores(0.8, 0.8, 7), model.PolicyFocused, true, model.ReasonRetrievalBridgeUsed},
		{"retrieval beats insufficient concepts", model.DecisionTriggered, scores(0.8, 0.8, 0), model.PolicyFocused, true, model.ReasonRetrievalBridgeUsed},
		{"retrieval ignored when not triggered", model.DecisionIgnored, scores(0.3, 0.3, 1), model.PolicyFocused, true, model.ReasonInsufficientConcepts},
		{"insufficient concepts", model.DecisionTriggered, scores(0.8, 0.8, 1), model.PolicyFocused, false, model.ReasonInsufficientConcepts},
		{"high scores", model.DecisionTriggered, scores(0.8, 0.8, 7), model.PolicyFocused, false, model.ReasonHighScores},
		{"low scores", model.DecisionIgnored, scores(0.6, 0.6, 5), model.PolicyFocused, false, model.ReasonLowScores},
		{"policy blocked fallback", model.DecisionIgnored, scores(0.9, 0.9, 7), model.PolicyFocused, false, model.ReasonPolicyBlocked},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveReason(tt.decision, tt.scores, tt.policy, tt.retrieval))
		})
	}
}

func TestEvaluateScenarios(t *testing.T) {
	t.Run("focused strong signals", func(t *testing.T) {
		rec := Evaluate(scores(0.8, 0.75, 7), model.PolicyFocused, model.RetrievalSignal{})
		assert.Equal(t, model.DecisionTriggered, rec.SystemDecision)
		assert.Equal(t, model.ConfidenceHigh, rec.DecisionConfidence)
		assert.Equal(t, model.ReasonHighScores, rec.DecisionReasonCode)
	})

	t.Run("focused weak signals", func(t *testing.T) {
		rec := Evaluate(scores(0.6, 0.6, 3), model.PolicyFocused, model.RetrievalSignal{})
		assert.Equal(t, model.DecisionIgnored, rec.SystemDecision)
		assert.Equal(t, model.ConfidenceLow, rec.DecisionConfidence)
		assert.Equal(t, model.ReasonLowScores, rec.DecisionReasonCode)
	})

	t.Run("aggressive triggers at lower bar", func(t *testing.T) {
		rec := Evaluate(scores(0.62, 0.62, 2), model.PolicyAggressive, model.RetrievalSignal{})
		assert.Equal(t, model.DecisionTriggered, rec.SystemDecision)
		assert.Equal(t, model.ReasonHighScores, rec.DecisionReasonCode)
	})

	t.Run("retrieval bridge overrides", func(t *testing.T) {
		rec := Evaluate(scores(0.8, 0.75, 7), model.PolicyFocused, model.RetrievalSignal{Used: true, Count: 2})
		assert.Equal(t, model.ReasonRetrievalBridgeUsed, rec.DecisionReasonCode)
		assert.True(t, rec.RetrievalUsed)
		assert.Equal(t, 2, rec.RetrievedCount)
	})
}

func TestEvaluateExplicit(t *testing.T) {
	s := scores(0.9, 0.9, 7)

	rec := EvaluateExplicit("ignored", s, model.PolicyFocused, model.RetrievalSignal{})
	require.Equal(t, model.DecisionIgnored, rec.SystemDecision)
	// Ignored despite qualifying scores: the fallback code applies.
	assert.Equal(t, model.ReasonPolicyBlocked, rec.DecisionReasonCode)

	rec = EvaluateExplicit("triggered", scores(0.1, 0.1, 5), model.PolicyFocused, model.RetrievalSignal{})
	assert.Equal(t, model.DecisionTriggered, rec.SystemDecision)

	// Unknown assertions fall back to recomputation.
	rec = EvaluateExplicit("maybe", s, model.PolicyFocused, model.RetrievalSignal{})
	assert.Equal(t, model.DecisionTriggered, rec.SystemDecision)

	rec = EvaluateExplicit("", scores(0.2, 0.2, 5), model.PolicyFocused, model.RetrievalSignal{})
	assert.Equal(t, model.DecisionIgnored, rec.SystemDecision)
}
