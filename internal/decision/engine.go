package decision

import "github.com/Oliverknowledge/Signal-Backend/internal/model"

// Decide computes the trigger/ignore decision from normalized scores. The
// server is the source of truth: triggered iff both scores meet the policy's
// trigger threshold. Pure function of (scores, policy).
func Decide(scores model.NormalizedScores, policy model.InterventionPolicy) model.SystemDecision {
	p := Thresholds(policy)
	if scores.RelevanceScore >= p.Trigger && scores.LearningValueScore >= p.Trigger {
		return model.DecisionTriggered
	}
	return model.DecisionIgnored
}

// Classify derives the three-level confidence label. high requires ALL of
// its conditions; low requires ANY. The asymmetry is intentional: easy to
// fall into low confidence, hard to earn high.
func Classify(scores model.NormalizedScores, policy model.InterventionPolicy) model.DecisionConfidence {
	p := Thresholds(policy)
	if scores.RelevanceScore >= p.HighRelevance &&
		scores.LearningValueScore >= p.HighLearning &&
		scores.ConceptCount >= p.HighConceptCount {
		return model.ConfidenceHigh
	}
	if scores.RelevanceScore < p.LowRelevance ||
		scores.LearningValueScore < p.LowLearning ||
		scores.ConceptCount < p.LowConceptCount {
		return model.ConfidenceLow
	}
	return model.ConfidenceBorderline
}

// ResolveReason picks the single explanatory code for a decision. The
// precedence order is fixed and must not be reordered.
func ResolveReason(decision model.SystemDecision, scores model.NormalizedScores, policy model.InterventionPolicy, retrievalUsed bool) model.ReasonCode {
	p := Thresholds(policy)

	if retrievalUsed && decision == model.DecisionTriggered {
		return model.ReasonRetrievalBridgeUsed
	}
	if scores.ConceptCount < p.MinConceptCount {
		return model.ReasonInsufficientConcepts
	}
	if decision == model.DecisionTriggered {
		return model.ReasonHighScores
	}
	if decision == model.DecisionIgnored &&
		(scores.RelevanceScore < p.Trigger || scores.LearningValueScore < p.Trigger) {
		return model.ReasonLowScores
	}
	// Ignored despite scores meeting the trigger thresholds: some rule
	// outside this model suppressed triggering.
	return model.ReasonPolicyBlocked
}

// Evaluate runs the full decision pipeline and assembles the immutable
// DecisionRecord handed to both the caller and the telemetry sink.
func Evaluate(scores model.NormalizedScores, policy model.InterventionPolicy, retrieval model.RetrievalSignal) model.DecisionRecord {
	d := Decide(scores, policy)
	return assemble(d, scores, policy, retrieval)
}

// EvaluateExplicit is the legacy relay path: the caller-asserted decision is
// authoritative when present, overriding recomputation from scores. An empty
// or unknown assertion falls back to the computed decision.
func EvaluateExplicit(explicit string, scores model.NormalizedScores, policy model.InterventionPolicy, retrieval model.RetrievalSignal) model.DecisionRecord {
	var d model.SystemDecision
	switch model.SystemDecision(explicit) {
	case model.DecisionTriggered, model.DecisionIgnored:
		d = model.SystemDecision(explicit)
	default:
		d = Decide(scores, policy)
	}
	return assemble(d, scores, policy, retrieval)
}

func assemble(d model.SystemDecision, scores model.NormalizedScores, policy model.InterventionPolicy, retrieval model.RetrievalSignal) model.DecisionRecord {
	return model.DecisionRecord{
		SystemDecision:     d,
		DecisionConfidence: Classify(scores, policy),
		DecisionReasonCode: ResolveReason(d, scores, policy, retrieval.Used),
		RelevanceScore:     scores.RelevanceScore,
		LearningValueScore: scores.LearningValueScore,
		ConceptCount:       scores.ConceptCount,
		InterventionPolicy: policy,
		RetrievalUsed:      retrieval.Used,
		RetrievedCount:     retrieval.Count,
	}
}
