package api

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/abhisek/continha/internal/difficulty"
	"github.com/abhisek/continha/internal/llm"
	"github.com/abhisek/continha/internal/problemgen"
	"github.com/abhisek/continha/internal/session"
	"github.com/abhisek/continha/internal/solver"
)

func testServer(t *testing.T, solverSvc *solver.Service) (*httptest.Server, *session.Registry) {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	registry := session.NewRegistry()
	engine := session.NewEngine(
		problemgen.New(problemgen.DefaultRanges()),
		difficulty.NewPolicy(nil, logger),
		nil,
		logger,
	)
	h := NewHandler(registry, engine, solverSvc, logger)
	srv := httptest.NewServer(NewRouter(h, []string{"*"}))
	t.Cleanup(srv.Close)
	return srv, registry
}

func postJSON(t *testing.T, url string, body any) (int, map[string]any) {
	t.Helper()
	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	resp, err := http.Post(url, "application/json", bytes.NewReader(payload))
	if err != nil {
		t.Fatalf("POST %s: %v", url, err)
	}
	defer resp.Body.Close()

	var out map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return resp.StatusCode, out
}

func TestHealth(t *testing.T) {
	srv, _ := testServer(t, nil)
	resp, err := http.Get(srv.URL + "/healthz")
	if err != nil {
		t.Fatalf("GET /healthz: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status %d", resp.StatusCode)
	}
}

func TestTutor_FullDialogue(t *testing.T) {
	srv, registry := testServer(t, nil)
	url := srv.URL + "/api/v1/tutor"

	// start
	status, out := postJSON(t, url, map[string]any{
		"action": "start", "operacao": "soma", "faixa_etaria": "6-8",
	})
	if status != http.StatusOK {
		t.Fatalf("start status %d: %v", status, out)
	}
	sessionID, _ := out["session_id"].(string)
	if sessionID == "" {
		t.Fatal("no session_id assigned")
	}
	questao, _ := out["questao"].(string)
	if !strings.HasPrefix(questao, "Quanto é ") {
		t.Fatalf("questao = %q", questao)
	}
	if out["fase"] != "question_posed" {
		t.Errorf("fase = %v", out["fase"])
	}

	// Read the expected result straight from the live session.
	sess, release, ok := registry.Lookup(sessionID)
	if !ok {
		t.Fatal("session not registered")
	}
	result := sess.Question.Result
	release()

	// submit_answer (correct)
	status, out = postJSON(t, url, map[string]any{
		"action": "submit_answer", "session_id": sessionID, "resposta": strconv.Itoa(result),
	})
	if status != http.StatusOK {
		t.Fatalf("submit_answer status %d: %v", status, out)
	}
	if acertou, _ := out["acertou"].(bool); !acertou {
		t.Error("correct answer not acknowledged")
	}
	if s, _ := out["exemplo"].(string); s == "" {
		t.Error("no example returned")
	}
	if out["fase"] != "awaiting_feedback" {
		t.Errorf("fase = %v", out["fase"])
	}

	// submit_feedback (understood)
	status, out = postJSON(t, url, map[string]any{
		"action": "submit_feedback", "session_id": sessionID, "entendeu": true,
	})
	if status != http.StatusOK {
		t.Fatalf("submit_feedback status %d: %v", status, out)
	}
	if out["fase"] != "idle" {
		t.Errorf("fase = %v after understood, want idle", out["fase"])
	}
}

func TestTutor_RetriesUntilExhaustion(t *testing.T) {
	srv, registry := testServer(t, nil)
	url := srv.URL + "/api/v1/tutor"

	_, out := postJSON(t, url, map[string]any{
		"action": "start", "operacao": "divisao", "faixa_etaria": "9-12",
	})
	sessionID := out["session_id"].(string)

	sess, release, _ := registry.Lookup(sessionID)
	result := sess.Question.Result
	release()

	postJSON(t, url, map[string]any{
		"action": "submit_answer", "session_id": sessionID, "resposta": strconv.Itoa(result + 1),
	})

	// Reject every example until the retry cap forces an advance.
	for i := 0; i < session.MaxExampleAttempts-1; i++ {
		status, out := postJSON(t, url, map[string]any{
			"action": "submit_feedback", "session_id": sessionID, "entendeu": false,
		})
		if status != http.StatusOK {
			t.Fatalf("feedback %d status %d: %v", i, status, out)
		}
		if out["fase"] != "awaiting_feedback" {
			t.Fatalf("advanced too early at rejection %d: %v", i+1, out["fase"])
		}
		if s, _ := out["exemplo"].(string); s == "" {
			t.Fatalf("rejection %d got no new example", i+1)
		}
	}

	status, out := postJSON(t, url, map[string]any{
		"action": "submit_feedback", "session_id": sessionID, "entendeu": false,
	})
	if status != http.StatusOK {
		t.Fatalf("final feedback status %d: %v", status, out)
	}
	if out["fase"] != "idle" {
		t.Errorf("fase = %v after exhaustion, want idle", out["fase"])
	}
}

func TestTutor_BadRequests(t *testing.T) {
	srv, _ := testServer(t, nil)
	url := srv.URL + "/api/v1/tutor"

	tests := []struct {
		name string
		body map[string]any
	}{
		{"unknown action", map[string]any{"action": "dançar"}},
		{"unsupported operation", map[string]any{"action": "start", "operacao": "potencia", "faixa_etaria": "6-8"}},
		{"unsupported bracket", map[string]any{"action": "start", "operacao": "soma", "faixa_etaria": "30-40"}},
		{"answer without question", map[string]any{"action": "submit_answer", "resposta": "7"}},
		{"feedback without example", map[string]any{"action": "submit_feedback", "entendeu": true}},
		{"feedback missing entendeu", map[string]any{"action": "submit_feedback"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, out := postJSON(t, url, tt.body)
			if status != http.StatusBadRequest {
				t.Errorf("status %d, want 400: %v", status, out)
			}
			if msg, _ := out["error"].(string); msg == "" {
				t.Error("error response lacks a message")
			}
		})
	}
}

func TestTutor_NonNumericAnswerKeepsQuestion(t *testing.T) {
	srv, _ := testServer(t, nil)
	url := srv.URL + "/api/v1/tutor"

	_, out := postJSON(t, url, map[string]any{
		"action": "start", "operacao": "soma", "faixa_etaria": "6-8",
	})
	sessionID := out["session_id"].(string)

	status, out := postJSON(t, url, map[string]any{
		"action": "submit_answer", "session_id": sessionID, "resposta": "abc",
	})
	if status != http.StatusBadRequest {
		t.Fatalf("status %d, want 400: %v", status, out)
	}

	// The question stays live and a numeric answer is still accepted.
	status, out = postJSON(t, url, map[string]any{
		"action": "submit_answer", "session_id": sessionID, "resposta": "0",
	})
	if status != http.StatusOK {
		t.Fatalf("retry status %d: %v", status, out)
	}
}

func TestProcessar_WithoutSolver(t *testing.T) {
	srv, _ := testServer(t, nil)
	status, out := postJSON(t, srv.URL+"/api/v1/processar", map[string]any{"valor": "2 + 2"})
	if status != http.StatusServiceUnavailable {
		t.Errorf("status %d, want 503: %v", status, out)
	}
}

func TestProcessar_SolvesExpression(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"valor": 4}`),
	})
	srv, _ := testServer(t, solver.NewService(mock))

	status, out := postJSON(t, srv.URL+"/api/v1/processar", map[string]any{"valor": "dois mais dois"})
	if status != http.StatusOK {
		t.Fatalf("status %d: %v", status, out)
	}
	if out["valor"] != "4" {
		t.Errorf("valor = %v, want 4", out["valor"])
	}
}

func TestProcessar_EmptyExpression(t *testing.T) {
	mock := llm.NewMockProvider()
	srv, _ := testServer(t, solver.NewService(mock))

	status, _ := postJSON(t, srv.URL+"/api/v1/processar", map[string]any{"valor": ""})
	if status != http.StatusBadRequest {
		t.Errorf("status %d, want 400", status)
	}
}
