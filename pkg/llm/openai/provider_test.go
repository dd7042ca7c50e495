package openai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"portfolio-chat-be/pkg/llm"
)

func TestChatMapsMessagesAndOptions(t *testing.T) {
	var captured struct {
		Model       string  `json:"model"`
		Temperature float32 `json:"temperature"`
		MaxTokens   int     `json:"max_tokens"`
		Messages    []struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"messages"`
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&captured); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"id":     "chatcmpl-1",
			"object": "chat.completion",
			"choices": []map[string]interface{}{
				{
					"index":         0,
					"message":       map[string]string{"role": "assistant", "content": "Michael speaks English and Korean."},
					"finish_reason": "stop",
				},
			},
		})
	}))
	defer srv.Close()

	p := NewProviderWithBaseURL("test-key", "gpt-4o-mini", srv.URL)

	history := []llm.Message{
		{Role: "system", Content: "policy"},
		{Role: "user", Content: "hi"},
		{Role: "model", Content: "hello"}, // legacy role name maps to assistant
		{Role: "user", Content: "question"},
	}

	reply, err := p.Chat(context.Background(), history,
		llm.WithTemperature(0.7),
		llm.WithMaxTokens(200),
	)
	if err != nil {
		t.Fatalf("Chat failed: %v", err)
	}
	if reply != "Michael speaks English and Korean." {
		t.Errorf("reply = %q", reply)
	}

	if captured.Model != "gpt-4o-mini" {
		t.Errorf("model = %q, want gpt-4o-mini", captured.Model)
	}
	if captured.Temperature != 0.7 {
		t.Errorf("temperature = %v, want 0.7", captured.Temperature)
	}
	if captured.MaxTokens != 200 {
		t.Errorf("max_tokens = %d, want 200", captured.MaxTokens)
	}
	if len(captured.Messages) != 4 {
		t.Fatalf("len(messages) = %d, want 4", len(captured.Messages))
	}
	if captured.Messages[2].Role != "assistant" {
		t.Errorf("messages[2].Role = %q, want assistant", captured.Messages[2].Role)
	}
}

func TestChatSurfacesProviderFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error": {"message": "rate limited"}}`, http.StatusTooManyRequests)
	}))
	defer srv.Close()

	p := NewProviderWithBaseURL("test-key", "gpt-4o-mini", srv.URL)

	_, err := p.Chat(context.Background(), []llm.Message{{Role: "user", Content: "hi"}})
	if err == nil {
		t.Error("expected error on provider failure, got nil")
	}
}
