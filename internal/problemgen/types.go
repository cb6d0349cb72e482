package problemgen

import "github.com/abhisek/continha/internal/arith"

// Question represents a generated arithmetic question ready for display.
type Question struct {
	// Text is the question prompt displayed to the learner,
	// e.g. "Quanto é 3 + 4?"
	Text string

	// A and B are the two operands, in display order.
	A int
	B int

	// Result is the correct answer under standard integer arithmetic
	// (floor division for divide; division pairs are constructed to be
	// exactly divisible).
	Result int

	// Operation is the operation this question exercises.
	Operation arith.Operation

	// Bracket is the age bracket the question was generated for.
	Bracket arith.AgeBracket
}
