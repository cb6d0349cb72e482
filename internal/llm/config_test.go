package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearKeyEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"GEMINI_API_KEY", "OPENAI_API_KEY", "ANTHROPIC_API_KEY",
		"CONTINHA_LLM_PROVIDER", "CONTINHA_ANTHROPIC_API_KEY",
		"CONTINHA_OPENAI_API_KEY", "CONTINHA_GEMINI_API_KEY",
	} {
		t.Setenv(key, "")
	}
}

func TestConfigFromEnv_Overrides(t *testing.T) {
	clearKeyEnv(t)
	t.Setenv("CONTINHA_LLM_PROVIDER", "openai")
	t.Setenv("CONTINHA_OPENAI_API_KEY", "sk-test")
	t.Setenv("CONTINHA_OPENAI_MODEL", "gpt-custom")

	cfg := ConfigFromEnv()
	assert.Equal(t, "openai", cfg.Provider)
	assert.Equal(t, "sk-test", cfg.OpenAI.APIKey)
	assert.Equal(t, "gpt-custom", cfg.OpenAI.Model)
	// Untouched sections keep defaults.
	assert.Equal(t, 3, cfg.Retry.MaxAttempts)
}

func TestDiscoverConfig_ProbeOrder(t *testing.T) {
	clearKeyEnv(t)
	t.Setenv("OPENAI_API_KEY", "sk-openai")
	t.Setenv("ANTHROPIC_API_KEY", "sk-anthropic")

	cfg, ok := DiscoverConfig()
	require.True(t, ok)
	// Gemini is probed first but unset; OpenAI wins over Anthropic.
	assert.Equal(t, "openai", cfg.Provider)
	assert.Equal(t, "sk-openai", cfg.OpenAI.APIKey)
}

func TestDiscoverConfig_NoKeys(t *testing.T) {
	clearKeyEnv(t)
	_, ok := DiscoverConfig()
	assert.False(t, ok)
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"anthropic with key", Config{Provider: "anthropic", Anthropic: AnthropicConfig{APIKey: "k"}}, false},
		{"anthropic without key", Config{Provider: "anthropic"}, true},
		{"openai without key", Config{Provider: "openai"}, true},
		{"gemini without key", Config{Provider: "gemini"}, true},
		{"mock needs nothing", Config{Provider: "mock"}, false},
		{"unknown provider", Config{Provider: "ollama"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
