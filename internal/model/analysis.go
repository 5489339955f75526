package model

// AnalyzeRequest is the request body for POST /v1/analyze
type AnalyzeRequest struct {
	URL            string   `json:"url"`
	Goal           string   `json:"goal"`
	Policy         string   `json:"intervention_policy,omitempty"`
	LearningMode   string   `json:"learning_mode,omitempty"`
	KnownConcepts  []string `json:"known_concepts,omitempty"`
	WeakConcepts   []string `json:"weak_concepts,omitempty"`
	RetrievalUsed  bool     `json:"retrieval_used,omitempty"`
	RetrievedCount int      `json:"retrieved_count,omitempty"`
}

// AnalyzeResponse is returned to the caller: the flattened decision record
// plus the model's concepts and the enforced recall question set.
type AnalyzeResponse struct {
	DecisionRecord
	Concepts        []string         `json:"concepts"`
	RecallQuestions []RecallQuestion `json:"recall_questions"`
}

// RawModelOutput mirrors the JSON shape Gemini is asked to produce. Every
// field is untrusted: possibly missing, wrong-typed, or out of range. Scores
// decode through interface{} so a string or null from the model does not fail
// the request; the schema layer coerces them before normalization.
type RawModelOutput struct {
	Concepts           []string            `json:"concepts"`
	RelevanceScore     interface{}         `json:"relevance_score"`
	LearningValueScore interface{}         `json:"learning_value_score"`
	RecallQuestions    []RawRecallQuestion `json:"recall_questions"`
}

// RawRecallQuestion is an unvalidated candidate question from the model
type RawRecallQuestion struct {
	Type         string      `json:"type"`
	Question     string      `json:"question"`
	Options      []string    `json:"options,omitempty"`
	CorrectIndex interface{} `json:"correct_index,omitempty"`
}

// RawAnalysis is the typed, already-coerced product of the schema layer.
// Scores are raw floats (still unclamped); the decision core normalizes them.
type RawAnalysis struct {
	Concepts           []string
	RelevanceScore     float64
	LearningValueScore float64
	Candidates         []RawRecallQuestion
}

// RelayRequest is the body of the legacy telemetry relay endpoint. The
// asserted decision, when present, wins over recomputation from scores.
type RelayRequest struct {
	Decision       string      `json:"decision,omitempty"`
	RelevanceScore interface{} `json:"relevance_score,omitempty"`
	LearningScore  interface{} `json:"learning_value_score,omitempty"`
	ConceptCount   interface{} `json:"concept_count,omitempty"`
	Policy         string      `json:"intervention_policy,omitempty"`
	RetrievalUsed  bool        `json:"retrieval_used,omitempty"`
	RetrievedCount int         `json:"retrieved_count,omitempty"`
}
