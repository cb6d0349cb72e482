package solver

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/abhisek/continha/internal/llm"
)

func TestSolve_StructuredResponse(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"valor": 42}`),
	})
	svc := NewService(mock)

	got, err := svc.Solve(context.Background(), "quanto é seis vezes sete?")
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if got != "42" {
		t.Errorf("got %q, want 42", got)
	}

	req := mock.Calls[0]
	if req.Schema == nil || req.Schema.Name != "expression-value" {
		t.Error("request missing value schema")
	}
	if req.Prompt != "quanto é seis vezes sete?" {
		t.Errorf("prompt = %q", req.Prompt)
	}
}

func TestSolve_DecimalValueFormatting(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"valor": 3.5}`),
	})
	got, err := NewService(mock).Solve(context.Background(), "sete dividido por dois")
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if got != "3.5" {
		t.Errorf("got %q, want 3.5", got)
	}
}

func TestSolve_FreeTextFallback(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`O resultado é -12.5, como esperado.`),
	})
	got, err := NewService(mock).Solve(context.Background(), "expressão qualquer")
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if got != "-12.5" {
		t.Errorf("got %q, want -12.5", got)
	}
}

func TestSolve_NoNumberAnywhere(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`não sei responder isso`),
	})
	got, err := NewService(mock).Solve(context.Background(), "qual a cor do céu?")
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if got != NotFound {
		t.Errorf("got %q, want %q", got, NotFound)
	}
}

func TestSolve_ProviderErrorSurfaces(t *testing.T) {
	svc := NewService(llm.NewMockProvider()) // empty queue
	if _, err := svc.Solve(context.Background(), "2 + 2"); err == nil {
		t.Fatal("expected transport error")
	}
}
