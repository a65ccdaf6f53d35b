package adapter

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/procurio/purchasing-automation/internal/config"
	"github.com/procurio/purchasing-automation/internal/logger"
	"github.com/procurio/purchasing-automation/models"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (LLMClient, *httptest.Server) {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := NewOpenAIClient(config.Adapter{
		OpenAIBaseURL:  srv.URL,
		OpenAIAPIKey:   "test-key",
		RequestTimeout: 5 * time.Second,
	}, logger.Nop())
	require.NoError(t, err)

	// Keep the retry path fast in tests.
	client.(*openAIClient).backoff = time.Millisecond

	return client, srv
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		wantErr  bool
	}{
		{name: "full url", input: "https://api.openai.com", expected: "https://api.openai.com"},
		{name: "trailing slash stripped", input: "https://llm.internal/", expected: "https://llm.internal"},
		{name: "scheme added", input: "llm.internal:8080", expected: "https://llm.internal:8080"},
		{name: "empty", input: "   ", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestComplete_Success(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"# Report"}}]}`))
	})

	text, err := client.Complete(context.Background(), "gpt-4o", "system", "user")
	require.NoError(t, err)
	assert.Equal(t, "# Report", text)
}

func TestComplete_NotConfigured(t *testing.T) {
	client, err := NewOpenAIClient(config.Adapter{
		OpenAIBaseURL:  "https://api.openai.com",
		RequestTimeout: time.Second,
	}, logger.Nop())
	require.NoError(t, err)

	assert.False(t, client.Configured())

	_, err = client.Complete(context.Background(), "gpt-4o", "s", "u")
	require.Error(t, err)

	failure := models.AsFailure(err)
	assert.Equal(t, models.FailureUpstream, failure.Kind)
}

func TestComplete_ClientErrorNotRetried(t *testing.T) {
	var calls atomic.Int32
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":{"message":"bad prompt","type":"invalid_request_error"}}`))
	})

	_, err := client.Complete(context.Background(), "gpt-4o", "s", "u")
	require.Error(t, err)

	failure := models.AsFailure(err)
	assert.Equal(t, models.FailureUpstream, failure.Kind)
	assert.False(t, failure.Retryable)
	assert.Contains(t, failure.Message, "bad prompt")
	assert.Equal(t, int32(1), calls.Load())
}

func TestComplete_ServerErrorRetriedOnce(t *testing.T) {
	var calls atomic.Int32
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"recovered"}}]}`))
	})

	text, err := client.Complete(context.Background(), "gpt-4o", "s", "u")
	require.NoError(t, err)
	assert.Equal(t, "recovered", text)
	assert.Equal(t, int32(2), calls.Load())
}

func TestComplete_EmptyCompletion(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[]}`))
	})

	_, err := client.Complete(context.Background(), "gpt-4o", "s", "u")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEmptyCompletion)
}
