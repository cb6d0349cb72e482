// Package difficulty derives the operand-range multiplier from the
// learner's rolling performance.
//
// The multiplier is a soft personalization: the policy consults an
// optional Predictor and clamps whatever comes back to [0.5, 1.5]. A
// missing or failing predictor degrades to the neutral 1.0 — difficulty
// prediction is never a hard dependency of question generation.
package difficulty

import (
	"context"
	"log/slog"
)

const (
	// MinMultiplier and MaxMultiplier bound the operand-range scaling.
	MinMultiplier = 0.5
	MaxMultiplier = 1.5

	// Neutral is the multiplier applied when no predictor is available.
	Neutral = 1.0

	// RecentWindow is how many answers in the current operation feed the
	// recent-accuracy feature.
	RecentWindow = 5
)

// Features are the predictor inputs for one multiplier decision.
type Features struct {
	// OverallAccuracy is the session-wide fraction of correct answers.
	OverallAccuracy float64

	// RecentAccuracy is the accuracy over the last RecentWindow answers
	// within the current operation.
	RecentAccuracy float64

	// OperationCount is how many questions were answered in the current
	// operation this session.
	OperationCount int

	// AgeLowerBound is the numeric lower bound of the learner's bracket.
	AgeLowerBound int
}

// Vector returns the features as the flat named map the Predictor
// contract expects.
func (f Features) Vector() map[string]float64 {
	return map[string]float64{
		"precisao_geral":    f.OverallAccuracy,
		"precisao_recente":  f.RecentAccuracy,
		"questoes_operacao": float64(f.OperationCount),
		"idade_minima":      float64(f.AgeLowerBound),
	}
}

// Predictor maps a feature vector to a raw difficulty multiplier.
// Implementations are treated as untrusted: output is clamped and errors
// are swallowed by the Policy.
type Predictor interface {
	Predict(ctx context.Context, features map[string]float64) (float64, error)
}

// Policy computes the multiplier for a session, falling back to Neutral
// on any predictor failure.
type Policy struct {
	predictor Predictor
	logger    *slog.Logger
}

// NewPolicy creates a Policy. predictor may be nil.
func NewPolicy(predictor Predictor, logger *slog.Logger) *Policy {
	if logger == nil {
		logger = slog.Default()
	}
	return &Policy{predictor: predictor, logger: logger}
}

// Multiplier returns the clamped multiplier for the given features and
// whether the predictor actually contributed it.
func (p *Policy) Multiplier(ctx context.Context, f Features) (float64, bool) {
	if p == nil || p.predictor == nil {
		return Neutral, false
	}

	raw, err := p.predictor.Predict(ctx, f.Vector())
	if err != nil {
		p.logger.Warn("difficulty predictor failed, using neutral multiplier", "error", err)
		return Neutral, false
	}

	return Clamp(raw), true
}

// Clamp bounds a raw multiplier to [MinMultiplier, MaxMultiplier].
func Clamp(v float64) float64 {
	if v < MinMultiplier {
		return MinMultiplier
	}
	if v > MaxMultiplier {
		return MaxMultiplier
	}
	return v
}
