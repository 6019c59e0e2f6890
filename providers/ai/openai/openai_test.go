package openai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Terresapan/static-content/providers/ai"
)

func TestSendMessageSuccess(t *testing.T) {
	var captured map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&captured); err != nil {
			t.Errorf("decoding request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		response := map[string]any{
			"id":      "chatcmpl-123",
			"object":  "chat.completion",
			"created": 1700000000,
			"model":   "gpt-4o-mini",
			"choices": []map[string]any{
				{
					"index":         0,
					"message":       map[string]any{"role": "assistant", "content": "hello there"},
					"finish_reason": "stop",
				},
			},
			"usage": map[string]any{"prompt_tokens": 5, "completion_tokens": 3, "total_tokens": 8},
		}
		if err := json.NewEncoder(w).Encode(response); err != nil {
			t.Errorf("encoding response: %v", err)
		}
	}))
	defer server.Close()

	provider := NewOpenAIProvider().
		WithAPIKey("test-key").
		WithBaseURL(server.URL)

	response, err := provider.SendMessage(context.Background(), ai.ChatRequest{
		Model:        "gpt-4o-mini",
		SystemPrompt: "be brief",
		Messages:     []ai.Message{{Role: ai.RoleUser, Content: "hi"}},
		GenerationConfig: &ai.GenerationConfig{
			Temperature: 0.2,
			MaxTokens:   128,
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if response.Content != "hello there" {
		t.Errorf("content = %q", response.Content)
	}
	if response.FinishReason != "stop" {
		t.Errorf("finish reason = %q", response.FinishReason)
	}
	if response.Usage == nil || response.Usage.TotalTokens != 8 {
		t.Errorf("unexpected usage: %+v", response.Usage)
	}

	messages, ok := captured["messages"].([]any)
	if !ok || len(messages) != 2 {
		t.Fatalf("expected 2 wire messages, got %v", captured["messages"])
	}
	first, _ := messages[0].(map[string]any)
	if first["role"] != "system" || first["content"] != "be brief" {
		t.Errorf("system prompt should be the first wire message, got %v", first)
	}
}

func TestSendMessageMissingAPIKey(t *testing.T) {
	provider := &OpenAIProvider{}
	provider.rebuild()

	if _, err := provider.SendMessage(context.Background(), ai.ChatRequest{Model: "gpt-4o-mini"}); err == nil {
		t.Fatal("expected error for missing API key")
	}
}

func TestIsStopMessage(t *testing.T) {
	provider := NewOpenAIProvider()

	if !provider.IsStopMessage(nil) {
		t.Error("nil message should be a stop message")
	}
	if !provider.IsStopMessage(&ai.ChatResponse{FinishReason: "stop", Content: "done"}) {
		t.Error("finish_reason=stop should be a stop message")
	}
	if provider.IsStopMessage(&ai.ChatResponse{FinishReason: "tool_calls", Content: "x"}) {
		t.Error("tool_calls with content should not be a stop message")
	}
}
