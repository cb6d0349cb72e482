package difficulty

import "context"

// Heuristic is the built-in accuracy-weighted predictor used when no
// learned predictor is configured. Higher assessed accuracy yields a
// larger multiplier (harder operands), lower accuracy a smaller one.
//
// The blend weighs recent accuracy in the current operation above the
// session-wide number, but only once the learner has answered enough
// questions in the operation for the recent window to mean anything.
type Heuristic struct{}

func (Heuristic) Predict(_ context.Context, features map[string]float64) (float64, error) {
	overall := features["precisao_geral"]
	recent := features["precisao_recente"]
	count := features["questoes_operacao"]

	var blend float64
	if count >= RecentWindow {
		blend = 0.3*overall + 0.7*recent
	} else if count > 0 {
		blend = 0.7*overall + 0.3*recent
	} else {
		// No history in this operation: stay neutral.
		return Neutral, nil
	}

	// Map accuracy 0..1 onto 0.7..1.5 so a flawless run ramps up fast
	// but a struggling learner never drops below a usable range.
	return 0.7 + 0.8*blend, nil
}
