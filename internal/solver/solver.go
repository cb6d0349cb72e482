// Package solver answers free-text arithmetic expressions through a
// hosted model, returning only the numeric value.
package solver

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"

	"github.com/abhisek/continha/internal/llm"
)

// NotFound is returned as the value when no number can be extracted
// from the model's reply.
const NotFound = "Resposta não encontrada."

var valueSchema = &llm.Schema{
	Name:        "expression-value",
	Description: "Valor numérico de uma expressão matemática",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"valor": map[string]any{
				"type":        "number",
				"description": "O resultado numérico da expressão",
			},
		},
		"required":             []any{"valor"},
		"additionalProperties": false,
	},
}

const solverSystem = `Você resolve expressões matemáticas escritas em linguagem
natural, em português. Responda apenas com o valor numérico do resultado.`

// numberPattern matches the first decimal number in free text.
var numberPattern = regexp.MustCompile(`-?\d+(\.\d+)?`)

// Service solves expressions via a model provider.
type Service struct {
	provider llm.Provider
}

// NewService creates a solver over the given provider.
func NewService(provider llm.Provider) *Service {
	return &Service{provider: provider}
}

// Solve returns the numeric value of expression as a string, or NotFound
// when the model's reply carries no number. Transport failures are
// returned as errors.
func (s *Service) Solve(ctx context.Context, expression string) (string, error) {
	ctx = llm.WithPurpose(ctx, "solve-expression")

	resp, err := s.provider.Generate(ctx, llm.Request{
		System:    solverSystem,
		Prompt:    expression,
		Schema:    valueSchema,
		MaxTokens: 128,
	})
	if err != nil {
		return "", fmt.Errorf("solve expression: %w", err)
	}

	var out struct {
		Valor float64 `json:"valor"`
	}
	if err := json.Unmarshal(resp.Content, &out); err == nil {
		return strconv.FormatFloat(out.Valor, 'f', -1, 64), nil
	}

	// Schema-less providers (mock, misconfigured) may hand back free
	// text; fall back to scraping the first number out of it.
	if m := numberPattern.FindString(string(resp.Content)); m != "" {
		return m, nil
	}
	return NotFound, nil
}
