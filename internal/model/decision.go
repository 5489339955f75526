package model

// SystemDecision is the server-computed trigger/ignore outcome
type SystemDecision string

const (
	DecisionTriggered SystemDecision = "triggered"
	DecisionIgnored   SystemDecision = "ignored"
)

// DecisionConfidence is a coarse label for how far scores sit from the trigger boundary
type DecisionConfidence string

const (
	ConfidenceHigh       DecisionConfidence = "high"
	ConfidenceBorderline DecisionConfidence = "borderline"
	ConfidenceLow        DecisionConfidence = "low"
)

// ReasonCode is the single enumerated explanation attached to each decision
type ReasonCode string

const (
	ReasonRetrievalBridgeUsed  ReasonCode = "retrieval_bridge_used"
	ReasonInsufficientConcepts ReasonCode = "insufficient_concepts"
	ReasonHighScores           ReasonCode = "high_scores"
	ReasonLowScores            ReasonCode = "low_scores"
	ReasonPolicyBlocked        ReasonCode = "policy_blocked"
)

// InterventionPolicy selects which threshold set applies to a request
type InterventionPolicy string

const (
	PolicyFocused    InterventionPolicy = "focused"
	PolicyAggressive InterventionPolicy = "aggressive"
)

// NormalizedScores holds model scores after clamping. Always finite and in bounds.
type NormalizedScores struct {
	RelevanceScore     float64 `json:"relevance_score"`
	LearningValueScore float64 `json:"learning_value_score"`
	ConceptCount       int     `json:"concept_count"`
}

// RetrievalSignal reports whether a cross-content bridge question was generated
// from prior related items. Supplied by the caller, defaults to false/0.
type RetrievalSignal struct {
	Used  bool `json:"retrieval_used"`
	Count int  `json:"retrieved_count"`
}

// DecisionRecord is the immutable output of the decision core, one per
// analyzed content item. The flattened JSON key set is stable: every key is
// always present so downstream dashboards can assume a fixed schema.
type DecisionRecord struct {
	SystemDecision     SystemDecision     `json:"system_decision"`
	DecisionConfidence DecisionConfidence `json:"decision_confidence"`
	DecisionReasonCode ReasonCode         `json:"decision_reason_code"`
	RelevanceScore     float64            `json:"relevance_score"`
	LearningValueScore float64            `json:"learning_value_score"`
	ConceptCount       int                `json:"concept_count"`
	InterventionPolicy InterventionPolicy `json:"intervention_policy"`
	RetrievalUsed      bool               `json:"retrieval_used"`
	RetrievedCount     int                `json:"retrieved_count"`
}
