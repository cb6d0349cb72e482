// Package problemgen produces arithmetic questions whose operands fit
// the learner's age bracket and current difficulty multiplier.
//
// The generator's contract: it never returns a division by zero, never a
// negative subtraction result, and division pairs are always exactly
// divisible (dividend is constructed as divisor × quotient).
package problemgen

import (
	"fmt"
	"math/rand/v2"

	"github.com/abhisek/continha/internal/arith"
)

// Generator produces questions from a range table.
type Generator struct {
	ranges Ranges
}

// New creates a Generator with the given range configuration.
func New(ranges Ranges) *Generator {
	return &Generator{ranges: ranges}
}

// Generate produces one question for op at the bracket's difficulty,
// scaled by multiplier (see difficulty.Policy). It errors only for an
// operation outside the fixed set.
func (g *Generator) Generate(op arith.Operation, bracket arith.AgeBracket, multiplier float64) (*Question, error) {
	maxOperand := g.ranges.scaledMax(bracket, multiplier)

	var a, b int
	switch op {
	case arith.OpSum:
		a, b = randOperand(1, maxOperand), randOperand(1, maxOperand)

	case arith.OpSubtract:
		a, b = subtractionPair(bracket, maxOperand)

	case arith.OpMultiply:
		a, b = g.multiplicationPair(bracket, maxOperand, multiplier)

	case arith.OpDivide:
		divisor, quotient := g.divisionPair(maxOperand, multiplier)
		a, b = divisor*quotient, divisor

	default:
		return nil, fmt.Errorf("operação %q não suportada", op)
	}

	if op == arith.OpDivide && b == 0 {
		// Unreachable given divisionPair's bounds; substitute a safe
		// divisor instead of handing degenerate arithmetic downstream.
		b = 1
	}

	result, err := op.Apply(a, b)
	if err != nil {
		return nil, fmt.Errorf("gerar questão: %w", err)
	}

	return &Question{
		Text:      fmt.Sprintf("Quanto é %d %s %d?", a, op.Symbol(), b),
		A:         a,
		B:         b,
		Result:    result,
		Operation: op,
		Bracket:   bracket,
	}, nil
}

// subtractionPair returns operands ordered so the result is non-negative.
// Older brackets additionally avoid the zero result: seeing "n - n" as a
// standalone drill reads as a trick question past the early years, while
// young learners get it rendered as the "ficou sem nenhum" case.
func subtractionPair(bracket arith.AgeBracket, maxOperand int) (int, int) {
	a, b := randOperand(1, maxOperand), randOperand(1, maxOperand)
	if a < b {
		a, b = b, a
	}
	if a == b && !bracket.Young() {
		a++
	}
	return a, b
}

// multiplicationPair narrows the operand range so products stay within
// an age-appropriate magnitude. Higher brackets at raised difficulty get
// a raised minimum operand as well, so harder sessions skip the trivial
// ×1 rows.
func (g *Generator) multiplicationPair(bracket arith.AgeBracket, maxOperand int, multiplier float64) (int, int) {
	upper := maxOperand / g.ranges.MultiplyShrink
	if upper < 3 {
		upper = 3
	}
	lower := 1
	if bracket.LowerBound() >= 13 && multiplier > 1.0 {
		lower = 2
	}
	return randOperand(lower, upper), randOperand(lower, upper)
}

// divisionPair samples divisor and quotient; the caller derives the
// dividend, which guarantees exact division and a non-zero divisor.
func (g *Generator) divisionPair(maxOperand int, multiplier float64) (divisor, quotient int) {
	divMax := maxOperand/g.ranges.DivideShrink + 1
	if divMax < 2 {
		divMax = 2
	}
	quoMax := maxOperand / g.ranges.MultiplyShrink
	if quoMax < 3 {
		quoMax = 3
	}
	if multiplier > 1.0 && quoMax > 3 {
		// Harder sessions skip quotient 1, which is just recognition.
		return randOperand(2, divMax), randOperand(2, quoMax)
	}
	return randOperand(2, divMax), randOperand(1, quoMax)
}

// randOperand returns a uniform integer in [lo, hi], tolerating an
// inverted range.
func randOperand(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rand.IntN(hi-lo+1)
}
