// Package session owns the adaptive dialogue state machine: one Session
// per learner, driven through an explicit ask → answer → explain →
// re-explain-or-advance protocol by the Engine.
package session

import (
	"time"

	"github.com/abhisek/continha/internal/arith"
	"github.com/abhisek/continha/internal/problemgen"
)

// Phase is the explicit dialogue phase. Transitions are handled
// exhaustively by the Engine; no phase is ever inferred from which
// fields happen to be set.
type Phase int

const (
	// PhaseIdle means no question is active.
	PhaseIdle Phase = iota
	// PhaseQuestionPosed means a question was generated and the engine
	// is awaiting an answer.
	PhaseQuestionPosed
	// PhaseAwaitingFeedback means an example was shown and the engine
	// is awaiting understood/not-understood.
	PhaseAwaitingFeedback
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseQuestionPosed:
		return "question_posed"
	case PhaseAwaitingFeedback:
		return "awaiting_feedback"
	default:
		return "unknown"
	}
}

// Outcome is one answered question in the rolling history.
type Outcome struct {
	Operation arith.Operation
	A, B      int
	Correct   bool
}

// Attempt is one shown example and the learner's verdict on it.
type Attempt struct {
	Example string
	// Understood is only meaningful once the learner gave feedback for
	// this attempt; the final persisted row always has a verdict for
	// every shown example.
	Understood bool
	Judged     bool
}

// Session is the full adaptive-dialogue state for one learner.
// All access is serialized by the Registry; the struct itself carries
// no locking.
type Session struct {
	// ID is assigned once and stable until the session is cleared.
	ID string

	// Phase is the current dialogue phase.
	Phase Phase

	// Operation and Bracket are the active drill parameters. Changing
	// either through Start resets the rolling history.
	Operation arith.Operation
	Bracket   arith.AgeBracket

	// Question is the current question; nil exactly when Phase is Idle.
	Question *problemgen.Question

	// AttemptIndex counts rejected examples for the current question,
	// 0-based, never exceeding the engine's retry maximum.
	AttemptIndex int

	// LastExample is the most recent explanation shown. Gates feedback.
	LastExample string

	// SubmittedAnswer is the learner's raw answer text for the current
	// question, kept for the log row.
	SubmittedAnswer string
	AnswerCorrect   bool

	// Attempts accumulates the (example, understood) pairs for the
	// current question's log row. Cleared on persist.
	Attempts []Attempt

	// History is the append-only answer record feeding the rolling
	// accuracy features.
	History []Outcome

	// TotalAnswered and TotalCorrect are session-lifetime counters.
	TotalAnswered int
	TotalCorrect  int

	// AppliedMultiplier and PredictorUsed are the last difficulty
	// diagnostics, carried into the log row.
	AppliedMultiplier float64
	PredictorUsed     bool

	// StartedAt is when the current question was posed.
	StartedAt time.Time
}

// OperationCount returns how many questions were answered in op this
// session.
func (s *Session) OperationCount(op arith.Operation) int {
	n := 0
	for _, o := range s.History {
		if o.Operation == op {
			n++
		}
	}
	return n
}

// OverallAccuracy is the session-wide fraction of correct answers.
func (s *Session) OverallAccuracy() float64 {
	if s.TotalAnswered == 0 {
		return 0
	}
	return float64(s.TotalCorrect) / float64(s.TotalAnswered)
}

// RecentAccuracy is the accuracy over the last window answers within op.
func (s *Session) RecentAccuracy(op arith.Operation, window int) float64 {
	correct, seen := 0, 0
	for i := len(s.History) - 1; i >= 0 && seen < window; i-- {
		if s.History[i].Operation != op {
			continue
		}
		seen++
		if s.History[i].Correct {
			correct++
		}
	}
	if seen == 0 {
		return 0
	}
	return float64(correct) / float64(seen)
}

// resetQuestion clears the per-question fields after a persist or an
// explicit abandon. The rolling history and counters survive.
func (s *Session) resetQuestion() {
	s.Phase = PhaseIdle
	s.Question = nil
	s.AttemptIndex = 0
	s.LastExample = ""
	s.SubmittedAnswer = ""
	s.AnswerCorrect = false
	s.Attempts = nil
}

// resetHistory drops the rolling performance record. Called when the
// learner switches operation or age bracket.
func (s *Session) resetHistory() {
	s.History = nil
	s.TotalAnswered = 0
	s.TotalCorrect = 0
}
