package session

import (
	"context"
	"time"

	"github.com/abhisek/continha/internal/arith"
)

// Row is one persisted record summarizing a single question's full
// interaction. Exactly one Row is appended per question lifecycle:
// either on confirmed understanding or on retry exhaustion.
type Row struct {
	Timestamp     time.Time
	SessionID     string
	Bracket       arith.AgeBracket
	Operation     arith.Operation
	QuestionText  string
	OperandA      int
	OperandB      int
	Answer        string
	CorrectAnswer int
	Correct       bool

	// Attempts holds the (example, understood) pairs in the order they
	// were shown, at most the engine's retry maximum.
	Attempts []Attempt

	// Difficulty diagnostics at the time the question was generated.
	DifficultyFactor float64
	RecentAccuracy   float64
	OperationCount   int
}

// Recorder is the durable log sink the engine persists rows to.
// Append failures are reported to the engine, which logs and proceeds;
// a failed append never corrupts in-memory session state.
type Recorder interface {
	Append(ctx context.Context, row Row) error
}

// MultiRecorder fans a row out to several sinks, returning the first
// error after attempting all of them.
type MultiRecorder []Recorder

func (m MultiRecorder) Append(ctx context.Context, row Row) error {
	var firstErr error
	for _, r := range m {
		if err := r.Append(ctx, row); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
