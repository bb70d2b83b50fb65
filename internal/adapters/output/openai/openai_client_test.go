package openai

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"booleana-backend/configs"
	"booleana-backend/internal/domain"
)

// TestNewOpenAIClientAdapterWithConfig tests adapter construction with valid config
func TestNewOpenAIClientAdapterWithConfig(t *testing.T) {
	config := configs.OpenAI{
		BaseURL: "http://localhost:5678/",
		APIKey:  "sk-test",
		Model:   "test-model",
		Timeout: 30,
	}

	adapter, err := NewOpenAIClientAdapter(config)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	if adapter.baseURL != "http://localhost:5678" {
		t.Errorf("expected trailing slash trimmed, got: %s", adapter.baseURL)
	}

	if adapter.defaultModel != "test-model" {
		t.Errorf("expected defaultModel to be test-model, got: %s", adapter.defaultModel)
	}

	if adapter.timeout != 30*time.Second {
		t.Errorf("expected timeout to be 30s, got: %v", adapter.timeout)
	}
}

// TestNewOpenAIClientAdapterWithDefaultValues tests adapter construction with default values
func TestNewOpenAIClientAdapterWithDefaultValues(t *testing.T) {
	adapter, err := NewOpenAIClientAdapter(configs.OpenAI{})
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	if adapter.baseURL != "https://api.openai.com" {
		t.Errorf("expected default baseURL, got: %s", adapter.baseURL)
	}
	if adapter.defaultModel != "gpt-3.5-turbo" {
		t.Errorf("expected default model gpt-3.5-turbo, got: %s", adapter.defaultModel)
	}
	if adapter.timeout != 60*time.Second {
		t.Errorf("expected default timeout 60s, got: %v", adapter.timeout)
	}
}

// TestChatCompletionSuccess tests a non-streaming chat completion against a mock server
func TestChatCompletionSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Verify request path
		if r.URL.Path != "/v1/chat/completions" {
			t.Errorf("expected path /v1/chat/completions, got: %s", r.URL.Path)
		}

		// Verify method
		if r.Method != http.MethodPost {
			t.Errorf("expected POST method, got: %s", r.Method)
		}

		// Verify auth header
		if r.Header.Get("Authorization") != "Bearer sk-test" {
			t.Errorf("expected bearer auth header, got: %s", r.Header.Get("Authorization"))
		}

		// Verify marshalled generation parameters
		var body map[string]interface{}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("failed to decode request body: %v", err)
		}
		if body["model"] != "gpt-3.5-turbo" {
			t.Errorf("expected model gpt-3.5-turbo, got: %v", body["model"])
		}
		if body["temperature"] != 0.7 {
			t.Errorf("expected temperature 0.7, got: %v", body["temperature"])
		}
		if body["max_tokens"] != float64(256) {
			t.Errorf("expected max_tokens 256, got: %v", body["max_tokens"])
		}
		stop, ok := body["stop"].([]interface{})
		if !ok || len(stop) != 2 {
			t.Errorf("expected 2 stop markers, got: %v", body["stop"])
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"id": "chatcmpl-1",
			"object": "chat.completion",
			"model": "gpt-3.5-turbo",
			"choices": [{"index": 0, "message": {"role": "assistant", "content": "  Hola, soy Booleana.  "}, "finish_reason": "stop"}],
			"usage": {"prompt_tokens": 42, "completion_tokens": 12, "total_tokens": 54}
		}`))
	}))
	defer server.Close()

	adapter, err := NewOpenAIClientAdapter(configs.OpenAI{BaseURL: server.URL, APIKey: "sk-test", Timeout: 5})
	if err != nil {
		t.Fatalf("failed to create adapter: %v", err)
	}

	temperature := 0.7
	maxTokens := 256
	response, err := adapter.ChatCompletion(context.Background(), domain.ChatCompletionRequest{
		Messages: []domain.ChatMessage{
			{Role: domain.ChatRoleSystem, Content: "persona"},
			{Role: domain.ChatRoleUser, Content: "hola"},
		},
		Temperature: &temperature,
		MaxTokens:   &maxTokens,
		Stop:        []string{"\nCandidate:", "\nSeeker:"},
	})
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	if response.Content != "Hola, soy Booleana." {
		t.Errorf("expected trimmed content, got: %q", response.Content)
	}
	if response.TotalTokens != 54 {
		t.Errorf("expected 54 total tokens, got: %d", response.TotalTokens)
	}
}

// TestChatCompletionClientErrorNotRetried tests that 4xx responses fail
// immediately as invalid requests
func TestChatCompletionClientErrorNotRetried(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error": {"message": "invalid api key"}}`))
	}))
	defer server.Close()

	adapter, _ := NewOpenAIClientAdapter(configs.OpenAI{BaseURL: server.URL, Timeout: 5})

	_, err := adapter.ChatCompletion(context.Background(), domain.ChatCompletionRequest{
		Messages: []domain.ChatMessage{{Role: domain.ChatRoleUser, Content: "hola"}},
	})
	if !errors.Is(err, domain.ErrInvalidRequest) {
		t.Errorf("expected ErrInvalidRequest, got: %v", err)
	}

	if atomic.LoadInt32(&calls) != 1 {
		t.Errorf("expected exactly 1 attempt for a 4xx, got: %d", atomic.LoadInt32(&calls))
	}
}

// TestChatCompletionRetriesServerError tests that a transient 5xx is
// retried and the call eventually succeeds
func TestChatCompletionRetriesServerError(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"model": "gpt-3.5-turbo",
			"choices": [{"index": 0, "message": {"role": "assistant", "content": "ok"}, "finish_reason": "stop"}],
			"usage": {"prompt_tokens": 1, "completion_tokens": 1, "total_tokens": 2}
		}`))
	}))
	defer server.Close()

	adapter, _ := NewOpenAIClientAdapter(configs.OpenAI{BaseURL: server.URL, Timeout: 5})

	response, err := adapter.ChatCompletion(context.Background(), domain.ChatCompletionRequest{
		Messages: []domain.ChatMessage{{Role: domain.ChatRoleUser, Content: "hola"}},
	})
	if err != nil {
		t.Fatalf("expected retry to succeed, got: %v", err)
	}
	if response.Content != "ok" {
		t.Errorf("expected content ok, got: %q", response.Content)
	}
	if atomic.LoadInt32(&calls) != 2 {
		t.Errorf("expected 2 attempts, got: %d", atomic.LoadInt32(&calls))
	}
}

// TestChatCompletionEmptyChoices tests that a response without choices is an error
func TestChatCompletionEmptyChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"model": "gpt-3.5-turbo", "choices": [], "usage": {}}`))
	}))
	defer server.Close()

	adapter, _ := NewOpenAIClientAdapter(configs.OpenAI{BaseURL: server.URL, Timeout: 5})

	_, err := adapter.ChatCompletion(context.Background(), domain.ChatCompletionRequest{
		Messages: []domain.ChatMessage{{Role: domain.ChatRoleUser, Content: "hola"}},
	})
	if err == nil {
		t.Fatal("expected an error for empty choices")
	}
}
