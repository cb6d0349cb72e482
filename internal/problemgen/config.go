package problemgen

import "github.com/abhisek/continha/internal/arith"

// Ranges controls how operand ranges are derived from age bracket and
// difficulty multiplier. The multiply/divide narrowing factors are tuned
// values, not a derived formula; treat them as configuration.
type Ranges struct {
	// BaseMax is the upper operand bound per bracket before difficulty
	// scaling. Operands start at 1.
	BaseMax map[arith.AgeBracket]int

	// FloorMax is the minimum scaled upper bound. Keeps a low difficulty
	// multiplier from collapsing the range into degeneracy.
	FloorMax int

	// MultiplyShrink divides the scaled bound to keep products within an
	// age-appropriate magnitude.
	MultiplyShrink int

	// DivideShrink divides the scaled bound to bound the divisor.
	DivideShrink int
}

// DefaultRanges returns the standard range table.
func DefaultRanges() Ranges {
	return Ranges{
		BaseMax: map[arith.AgeBracket]int{
			arith.Bracket3to5:   5,
			arith.Bracket6to8:   10,
			arith.Bracket9to12:  20,
			arith.Bracket13to17: 50,
			arith.Bracket18to22: 100,
			arith.Bracket23to25: 150,
		},
		FloorMax:       5,
		MultiplyShrink: 5,
		DivideShrink:   10,
	}
}

// scaledMax applies the difficulty multiplier to the bracket's base bound.
func (r Ranges) scaledMax(bracket arith.AgeBracket, multiplier float64) int {
	base, ok := r.BaseMax[bracket]
	if !ok {
		base = r.FloorMax
	}
	scaled := int(float64(base)*multiplier + 0.5)
	if scaled < r.FloorMax {
		scaled = r.FloorMax
	}
	return scaled
}
