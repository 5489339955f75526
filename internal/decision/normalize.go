package decision

import (
	"math"

	"github.com/Oliverknowledge/Signal-Backend/internal/model"
)

// Normalize clamps raw, possibly-malformed model scores into safe bounds.
// Total over all inputs: non-finite values become 0, scores clamp to [0,1],
// the concept count is floored and clamped to >= 0. Never errors; the
// upstream model is adversarially unreliable and a well-formed result must
// come out regardless.
func Normalize(rawRelevance, rawLearning, rawConceptCount float64) model.NormalizedScores {
	return model.NormalizedScores{
		RelevanceScore:     clampUnit(rawRelevance),
		LearningValueScore: clampUnit(rawLearning),
		ConceptCount:       clampCount(rawConceptCount),
	}
}

func clampUnit(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func clampCount(v float64) int {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	// Cap before converting: float-to-int conversion of an out-of-range
	// value is implementation-defined.
	if v > math.MaxInt32 {
		return math.MaxInt32
	}
	return int(math.Floor(v))
}
