package difficulty

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/abhisek/continha/internal/llm"
)

// multiplierSchema constrains the predictor's structured output.
var multiplierSchema = &llm.Schema{
	Name:        "difficulty-multiplier",
	Description: "Multiplicador de dificuldade para a próxima questão",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"multiplicador": map[string]any{
				"type":        "number",
				"description": "Fator entre 0.5 e 1.5 que escala o tamanho dos operandos",
			},
		},
		"required":             []any{"multiplicador"},
		"additionalProperties": false,
	},
}

const predictorSystem = `Você calibra a dificuldade de um tutor de aritmética.
Dado o desempenho recente de um aluno, responda com um multiplicador entre
0.5 (números menores, mais fácil) e 1.5 (números maiores, mais difícil).
Alta precisão recente pede um multiplicador maior; muitos erros pedem um menor.`

// LLMPredictor implements Predictor over a model provider. The Policy
// treats it as untrusted: any transport or schema failure here simply
// costs the session its personalization.
type LLMPredictor struct {
	provider llm.Provider
}

// NewLLMPredictor creates a predictor backed by the given provider.
func NewLLMPredictor(provider llm.Provider) *LLMPredictor {
	return &LLMPredictor{provider: provider}
}

func (p *LLMPredictor) Predict(ctx context.Context, features map[string]float64) (float64, error) {
	ctx = llm.WithPurpose(ctx, "difficulty-predict")

	resp, err := p.provider.Generate(ctx, llm.Request{
		System:    predictorSystem,
		Prompt:    formatFeatures(features),
		Schema:    multiplierSchema,
		MaxTokens: 64,
	})
	if err != nil {
		return 0, fmt.Errorf("predict multiplier: %w", err)
	}

	var out struct {
		Multiplicador float64 `json:"multiplicador"`
	}
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return 0, fmt.Errorf("parse predictor response: %w", err)
	}

	return out.Multiplicador, nil
}

// formatFeatures renders the feature vector as stable "name: value"
// lines. Sorted so identical features produce an identical prompt.
func formatFeatures(features map[string]float64) string {
	names := make([]string, 0, len(features))
	for name := range features {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteString("Desempenho do aluno:\n")
	for _, name := range names {
		fmt.Fprintf(&b, "- %s: %.3f\n", name, features[name])
	}
	return b.String()
}
