package arith

import (
	"strings"
	"testing"
)

func TestParseOperation_Known(t *testing.T) {
	for _, name := range []string{"soma", "subtracao", "multiplicacao", "divisao"} {
		op, err := ParseOperation(name)
		if err != nil {
			t.Fatalf("ParseOperation(%q) error: %v", name, err)
		}
		if string(op) != name {
			t.Errorf("ParseOperation(%q) = %q", name, op)
		}
	}
}

func TestParseOperation_Normalizes(t *testing.T) {
	op, err := ParseOperation("  SOMA ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if op != OpSum {
		t.Errorf("got %q, want %q", op, OpSum)
	}
}

func TestParseOperation_Unknown_ListsSupported(t *testing.T) {
	_, err := ParseOperation("potencia")
	if err == nil {
		t.Fatal("expected error for unsupported operation")
	}
	for _, name := range []string{"soma", "subtracao", "multiplicacao", "divisao"} {
		if !strings.Contains(err.Error(), name) {
			t.Errorf("error %q does not list %q", err.Error(), name)
		}
	}
}

func TestApply(t *testing.T) {
	tests := []struct {
		op   Operation
		a, b int
		want int
	}{
		{OpSum, 3, 4, 7},
		{OpSubtract, 9, 4, 5},
		{OpMultiply, 3, 4, 12},
		{OpDivide, 12, 3, 4},
	}
	for _, tt := range tests {
		got, err := tt.op.Apply(tt.a, tt.b)
		if err != nil {
			t.Fatalf("%s Apply(%d, %d) error: %v", tt.op, tt.a, tt.b, err)
		}
		if got != tt.want {
			t.Errorf("%s Apply(%d, %d) = %d, want %d", tt.op, tt.a, tt.b, got, tt.want)
		}
	}
}

func TestApply_DivideByZero(t *testing.T) {
	if _, err := OpDivide.Apply(5, 0); err == nil {
		t.Error("expected error for division by zero")
	}
}

func TestParseBracket(t *testing.T) {
	b, err := ParseBracket("6-8")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b != Bracket6to8 {
		t.Errorf("got %q", b)
	}

	if _, err := ParseBracket("99-100"); err == nil {
		t.Error("expected error for unknown bracket")
	}
}

func TestLowerBound(t *testing.T) {
	tests := map[AgeBracket]int{
		Bracket3to5:   3,
		Bracket9to12:  9,
		Bracket23to25: 23,
	}
	for b, want := range tests {
		if got := b.LowerBound(); got != want {
			t.Errorf("%s LowerBound = %d, want %d", b, got, want)
		}
	}
}

func TestYoung(t *testing.T) {
	if !Bracket3to5.Young() || !Bracket6to8.Young() {
		t.Error("3-5 and 6-8 should be young")
	}
	if Bracket9to12.Young() {
		t.Error("9-12 should not be young")
	}
}
