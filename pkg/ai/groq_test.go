package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/johnquangdev/summaro/pkg/config"
)

func TestGenerateSummary_Success(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/openai/v1/chat/completions" {
			t.Fatalf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Fatalf("unexpected auth header %q", got)
		}
		var req ChatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("invalid payload: %v", err)
		}
		if req.Model != "test-model" || len(req.Messages) != 1 || !strings.Contains(req.Messages[0].Content, "Host: hi") {
			t.Fatalf("unexpected payload %+v", req)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"  The team met.  "}}]}`))
	}))
	defer ts.Close()

	g := NewGroqClient(&config.GroqConfig{APIKey: "test-key", BaseURL: ts.URL + "/", Model: "test-model"})
	got, err := g.GenerateSummary(context.Background(), "Host: hi")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "The team met." {
		t.Fatalf("unexpected summary %q", got)
	}
}

func TestGenerateSummary_ErrorStatus(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer ts.Close()

	g := NewGroqClient(&config.GroqConfig{APIKey: "k", BaseURL: ts.URL})
	if _, err := g.GenerateSummary(context.Background(), "x"); err == nil || !strings.Contains(err.Error(), "429") {
		t.Fatalf("expected status error, got %v", err)
	}
}

func TestGenerateSummary_NotConfigured(t *testing.T) {
	t.Setenv("GROQ_API_KEY", "")
	g := NewGroqClient(nil)
	if g.Configured() {
		t.Fatalf("expected unconfigured client")
	}
	if _, err := g.GenerateSummary(context.Background(), "x"); err == nil {
		t.Fatalf("expected error")
	}
}
