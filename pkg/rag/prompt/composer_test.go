package prompt

import (
	"reflect"
	"strings"
	"testing"

	"portfolio-chat-be/internal/constant"
	"portfolio-chat-be/pkg/llm"
)

func newTestComposer(t *testing.T) *Composer {
	t.Helper()
	c, err := NewComposer(constant.SystemPromptV1, constant.UserPromptTemplateV1)
	if err != nil {
		t.Fatalf("NewComposer failed: %v", err)
	}
	return c
}

func TestNewComposerMalformedTemplate(t *testing.T) {
	if _, err := NewComposer("system", "{{.Context"); err == nil {
		t.Fatal("expected error for malformed template, got nil")
	}
}

func TestComposeStructure(t *testing.T) {
	c := newTestComposer(t)

	history := []llm.Message{
		{Role: "user", Content: "hi"},
		{Role: "assistant", Content: "hello"},
	}

	messages := c.Compose("What does Michael do?", "[SECTION]: Work", history)

	if len(messages) != 4 {
		t.Fatalf("len(messages) = %d, want 4", len(messages))
	}
	if messages[0].Role != constant.ChatMessageRoleSystem {
		t.Errorf("messages[0].Role = %q, want system", messages[0].Role)
	}
	if messages[1] != history[0] || messages[2] != history[1] {
		t.Error("history turns not carried in order")
	}

	last := messages[len(messages)-1]
	if last.Role != constant.ChatMessageRoleUser {
		t.Errorf("last role = %q, want user", last.Role)
	}
	if !strings.Contains(last.Content, "<context>\n[SECTION]: Work\n</context>") {
		t.Errorf("context block not substituted: %q", last.Content)
	}
	if !strings.Contains(last.Content, "<question>\nWhat does Michael do?\n</question>") {
		t.Errorf("query not substituted: %q", last.Content)
	}
}

func TestComposeTakesLastFiveHistoryTurns(t *testing.T) {
	c := newTestComposer(t)

	history := make([]llm.Message, 0, 8)
	for _, content := range []string{"m1", "m2", "m3", "m4", "m5", "m6", "m7", "m8"} {
		history = append(history, llm.Message{Role: "user", Content: content})
	}

	messages := c.Compose("q", "ctx", history)

	// system + 5 history + composed user message
	if len(messages) != 7 {
		t.Fatalf("len(messages) = %d, want 7", len(messages))
	}
	want := []string{"m4", "m5", "m6", "m7", "m8"}
	for i, content := range want {
		if messages[i+1].Content != content {
			t.Errorf("messages[%d].Content = %q, want %q", i+1, messages[i+1].Content, content)
		}
	}
}

func TestComposeIsPure(t *testing.T) {
	c := newTestComposer(t)

	history := []llm.Message{{Role: "user", Content: "hi"}}

	first := c.Compose("query", "context", history)
	second := c.Compose("query", "context", history)

	if !reflect.DeepEqual(first, second) {
		t.Error("identical inputs produced different message lists")
	}

	// Mutating a returned list must not leak into later compositions.
	first[0].Content = "mutated"
	third := c.Compose("query", "context", history)
	if !reflect.DeepEqual(second, third) {
		t.Error("mutating a returned list affected later compositions")
	}
}

func TestSystemPolicyCarriesOutOfScopeResponse(t *testing.T) {
	c := newTestComposer(t)

	messages := c.Compose("Explain how transformers work", "[NO RELEVANT CONTEXT FOUND]", nil)

	if !strings.Contains(messages[0].Content, constant.OutOfScopeResponse) {
		t.Error("system policy does not carry the exact out-of-scope response")
	}
	if !strings.Contains(messages[len(messages)-1].Content, "[NO RELEVANT CONTEXT FOUND]") {
		t.Error("sentinel context not passed through to the model")
	}
}
