package arith

import (
	"fmt"
	"strconv"
	"strings"
)

// AgeBracket is a fixed category label ("9-12") selecting vocabulary and
// operand-range defaults.
type AgeBracket string

const (
	Bracket3to5   AgeBracket = "3-5"
	Bracket6to8   AgeBracket = "6-8"
	Bracket9to12  AgeBracket = "9-12"
	Bracket13to17 AgeBracket = "13-17"
	Bracket18to22 AgeBracket = "18-22"
	Bracket23to25 AgeBracket = "23-25"
)

// Brackets lists the supported age brackets, youngest first.
var Brackets = []AgeBracket{
	Bracket3to5,
	Bracket6to8,
	Bracket9to12,
	Bracket13to17,
	Bracket18to22,
	Bracket23to25,
}

// ParseBracket validates a wire-level age bracket label.
func ParseBracket(s string) (AgeBracket, error) {
	b := AgeBracket(strings.TrimSpace(s))
	for _, known := range Brackets {
		if b == known {
			return known, nil
		}
	}
	return "", fmt.Errorf("faixa etária %q não suportada (use: %s)", s, bracketList())
}

func bracketList() string {
	names := make([]string, len(Brackets))
	for i, b := range Brackets {
		names[i] = string(b)
	}
	return strings.Join(names, ", ")
}

// LowerBound returns the bracket's lower age, used as a numeric feature
// for the difficulty policy. Unknown brackets report 0.
func (b AgeBracket) LowerBound() int {
	parts := strings.SplitN(string(b), "-", 2)
	n, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0
	}
	return n
}

// Young reports whether the bracket gets the gentler phrasing set:
// concrete toys, "deficit" wording for subtraction shortfalls.
func (b AgeBracket) Young() bool {
	return b == Bracket3to5 || b == Bracket6to8
}
