// Package telemetry ships anonymized decision records to an external
// observability backend. The sink is an injected dependency so tests can
// substitute a fake; failures here are logged and never reach the caller.
package telemetry

import (
	"context"

	"github.com/Oliverknowledge/Signal-Backend/internal/model"
)

// Event is one decision trace. The Fields key set is identical for every
// event (defaults instead of omitted keys) so downstream dashboards can
// assume a fixed schema.
type Event struct {
	Name    string                 `json:"name"`
	TraceID string                 `json:"traceId"`
	Fields  map[string]interface{} `json:"fields"`
}

// Sink receives decision events. Implementations must be safe for
// concurrent use.
type Sink interface {
	Send(ctx context.Context, ev Event) error
}

// stableKeys is the fixed telemetry schema for a decision event.
var stableKeys = []string{
	"system_decision",
	"decision_confidence",
	"decision_reason_code",
	"relevance_score",
	"learning_value_score",
	"concept_count",
	"intervention_policy",
	"retrieval_used",
	"retrieved_count",
}

// DecisionEvent flattens a DecisionRecord into the stable key set. Every key
// in stableKeys is always present.
func DecisionEvent(name, traceID string, rec model.DecisionRecord) Event {
	return Event{
		Name:    name,
		TraceID: traceID,
		Fields: map[string]interface{}{
			"system_decision":      string(rec.SystemDecision),
			"decision_confidence":  string(rec.DecisionConfidence),
			"decision_reason_code": string(rec.DecisionReasonCode),
			"relevance_score":      rec.RelevanceScore,
			"learning_value_score": rec.LearningValueScore,
			"concept_count":        rec.ConceptCount,
			"intervention_policy":  string(rec.InterventionPolicy),
			"retrieval_used":       rec.RetrievalUsed,
			"retrieved_count":      rec.RetrievedCount,
		},
	}
}

// NopSink discards events. Used when no telemetry backend is configured and
// as the default test double.
type NopSink struct{}

func (NopSink) Send(ctx context.Context, ev Event) error { return nil }
