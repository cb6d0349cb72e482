package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func serve(t *testing.T, origins []string, method, origin string) *httptest.ResponseRecorder {
	t.Helper()
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})
	handler := CORS(origins)(next)

	req := httptest.NewRequest(method, "/api/v1/tutor", nil)
	if origin != "" {
		req.Header.Set("Origin", origin)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestCORS_WildcardAllowsAnyOriginWithoutCredentials(t *testing.T) {
	rec := serve(t, []string{"*"}, http.MethodPost, "https://example.com")

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "https://example.com" {
		t.Errorf("Allow-Origin = %q", got)
	}
	if rec.Header().Get("Access-Control-Allow-Credentials") != "" {
		t.Error("wildcard origins must never allow credentials")
	}
	if rec.Code != http.StatusTeapot {
		t.Errorf("next handler not reached: %d", rec.Code)
	}
}

func TestCORS_ExplicitOriginGetsCredentials(t *testing.T) {
	rec := serve(t, []string{"https://app.example.com"}, http.MethodPost, "https://app.example.com")

	if got := rec.Header().Get("Access-Control-Allow-Credentials"); got != "true" {
		t.Errorf("Allow-Credentials = %q, want true", got)
	}
}

func TestCORS_DisallowedOriginGetsNoHeaders(t *testing.T) {
	rec := serve(t, []string{"https://app.example.com"}, http.MethodPost, "https://evil.example.com")

	if rec.Header().Get("Access-Control-Allow-Origin") != "" {
		t.Error("disallowed origin received CORS headers")
	}
	if rec.Code != http.StatusTeapot {
		t.Errorf("request should still reach the handler: %d", rec.Code)
	}
}

func TestCORS_PreflightShortCircuits(t *testing.T) {
	rec := serve(t, []string{"*"}, http.MethodOptions, "https://example.com")

	if rec.Code != http.StatusOK {
		t.Errorf("preflight status %d, want 200", rec.Code)
	}
}
