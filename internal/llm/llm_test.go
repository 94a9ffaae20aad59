package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/openai/openai-go/v3/option"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSettings = Settings{Temperature: 0.2, TopP: 0.8, MaxOutputTokens: 4096}

func TestUnconfiguredReportsEnvVar(t *testing.T) {
	c := NewUnconfigured("GEMINI_API_KEY", "gemini-2.5-pro")

	_, err := c.Generate(context.Background(), "prompt")

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotConfigured))
	assert.Contains(t, err.Error(), "GEMINI_API_KEY")
	var nc *NotConfiguredError
	require.True(t, errors.As(err, &nc))
	assert.Equal(t, "GEMINI_API_KEY", nc.EnvVar)
	assert.Equal(t, "gemini-2.5-pro", c.Model())
}

func TestConstructorsRequireKey(t *testing.T) {
	if _, err := NewOpenAIClient("", testSettings); err == nil {
		t.Error("expected error for empty OpenAI key")
	}
	if _, err := NewGeminiClient(context.Background(), "", testSettings); err == nil {
		t.Error("expected error for empty Gemini key")
	}
}

func TestOpenAIClientGenerate(t *testing.T) {
	var (
		mu      sync.Mutex
		gotBody map[string]any
		calls   atomic.Int32
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		if !strings.HasSuffix(r.URL.Path, "/chat/completions") {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("unexpected Authorization header %q", got)
		}
		mu.Lock()
		defer mu.Unlock()
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decode request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": "chatcmpl-1",
			"object": "chat.completion",
			"created": 1700000000,
			"model": "gpt-4o-mini",
			"choices": [{
				"index": 0,
				"finish_reason": "stop",
				"message": {"role": "assistant", "content": "{\"overallScore\": 70}"}
			}]
		}`))
	}))
	defer srv.Close()

	c, err := NewOpenAIClient("test-key", testSettings, option.WithBaseURL(srv.URL+"/"))
	require.NoError(t, err)
	assert.Equal(t, "gpt-4o-mini", c.Model())

	text, err := c.Generate(context.Background(), "analyze this")
	require.NoError(t, err)
	assert.Equal(t, `{"overallScore": 70}`, text)
	assert.Equal(t, int32(1), calls.Load())

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, "gpt-4o-mini", gotBody["model"])
	assert.InDelta(t, 0.2, gotBody["temperature"], 0.001)
	messages, ok := gotBody["messages"].([]any)
	require.True(t, ok)
	require.Len(t, messages, 1)
	assert.Equal(t, "analyze this", messages[0].(map[string]any)["content"])
}

func TestOpenAIClientDoesNotRetry(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error": {"message": "boom", "type": "server_error"}}`))
	}))
	defer srv.Close()

	c, err := NewOpenAIClient("test-key", testSettings, option.WithBaseURL(srv.URL+"/"))
	require.NoError(t, err)

	_, err = c.Generate(context.Background(), "analyze this")
	require.Error(t, err)
	assert.Equal(t, int32(1), calls.Load())
}

func TestGeminiClientGenerate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "models/gemini-test:generateContent") {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("x-goog-api-key"); got != "test-key" {
			t.Errorf("unexpected api key header %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"candidates": [{
				"content": {"role": "model", "parts": [{"text": "` + "```json\\n{\\\"overallScore\\\": 55}\\n```" + `"}]},
				"finishReason": "STOP"
			}]
		}`))
	}))
	defer srv.Close()

	settings := testSettings
	settings.Model = "gemini-test"
	c, err := NewGeminiClient(context.Background(), "test-key", settings, WithGeminiBaseURL(srv.URL))
	require.NoError(t, err)

	text, err := c.Generate(context.Background(), "analyze this")
	require.NoError(t, err)
	assert.Equal(t, "```json\n{\"overallScore\": 55}\n```", text)
}

func TestGeminiClientDefaultsModel(t *testing.T) {
	c, err := NewGeminiClient(context.Background(), "test-key", testSettings)
	require.NoError(t, err)
	assert.Equal(t, defaultGeminiModel, c.Model())
}
