// Package arith defines the shared arithmetic vocabulary: the supported
// operations, the age brackets a learner can belong to, and the exact
// integer arithmetic the rest of the engine builds on.
package arith

import (
	"fmt"
	"strings"
)

// Operation is one of the four arithmetic operations the tutor teaches.
// The values are the Portuguese names used on the wire and in logs.
type Operation string

const (
	OpSum      Operation = "soma"
	OpSubtract Operation = "subtracao"
	OpMultiply Operation = "multiplicacao"
	OpDivide   Operation = "divisao"
)

// Operations lists the supported operations in presentation order.
var Operations = []Operation{OpSum, OpSubtract, OpMultiply, OpDivide}

// ParseOperation validates a wire-level operation name.
// Matching is case-insensitive and tolerates surrounding whitespace.
func ParseOperation(s string) (Operation, error) {
	op := Operation(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Operations {
		if op == known {
			return known, nil
		}
	}
	return "", fmt.Errorf("operação %q não suportada (use: %s)", s, operationList())
}

func operationList() string {
	names := make([]string, len(Operations))
	for i, op := range Operations {
		names[i] = string(op)
	}
	return strings.Join(names, ", ")
}

// Symbol returns the display symbol used in question text and in the
// literal restatement appended to worked examples.
func (op Operation) Symbol() string {
	switch op {
	case OpSum:
		return "+"
	case OpSubtract:
		return "-"
	case OpMultiply:
		return "x"
	case OpDivide:
		return "/"
	default:
		return "?"
	}
}

// Apply computes the result of op over (a, b) with elementary integer
// semantics. Division uses floor semantics; the question generator only
// produces exactly divisible pairs, so floor never truncates in practice.
func (op Operation) Apply(a, b int) (int, error) {
	switch op {
	case OpSum:
		return a + b, nil
	case OpSubtract:
		return a - b, nil
	case OpMultiply:
		return a * b, nil
	case OpDivide:
		if b == 0 {
			return 0, fmt.Errorf("divisão por zero: %d / %d", a, b)
		}
		return a / b, nil
	default:
		return 0, fmt.Errorf("operação %q não suportada", op)
	}
}
