package dispatch

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capturedRequest struct {
	Model    string `json:"model"`
	Messages []struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	} `json:"messages"`
}

func newChatServer(t *testing.T, status int, body string, got *capturedRequest, auth *string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/chat/completions" {
			http.NotFound(w, r)
			return
		}
		if auth != nil {
			*auth = r.Header.Get("Authorization")
		}
		if got != nil {
			_ = json.NewDecoder(r.Body).Decode(got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestSend(t *testing.T) {
	t.Parallel()

	var req capturedRequest
	var auth string
	srv := newChatServer(t, http.StatusOK, `{
		"id": "chatcmpl-1",
		"object": "chat.completion",
		"model": "gpt-4o-mini",
		"choices": [{"index": 0, "message": {"role": "assistant", "content": "Here is your layout."}, "finish_reason": "stop"}],
		"usage": {"prompt_tokens": 12, "completion_tokens": 5, "total_tokens": 17}
	}`, &req, &auth)

	c, err := New(Config{APIKey: "sk-test", Model: "gpt-4o-mini", BaseURL: srv.URL + "/v1/", SystemPrompt: "Be brief."})
	require.NoError(t, err)

	reply, err := c.Send(context.Background(), "Design a dashboard.")
	require.NoError(t, err)

	assert.Equal(t, "Here is your layout.", reply.Content)
	assert.Equal(t, "gpt-4o-mini", reply.Model)
	assert.Equal(t, 12, reply.PromptTokens)
	assert.Equal(t, 5, reply.CompletionTokens)

	assert.Equal(t, "Bearer sk-test", auth)
	assert.Equal(t, "gpt-4o-mini", req.Model)
	require.Len(t, req.Messages, 2)
	assert.Equal(t, "system", req.Messages[0].Role)
	assert.Equal(t, "user", req.Messages[1].Role)
	assert.Equal(t, "Design a dashboard.", req.Messages[1].Content)
}

func TestSendAPIError(t *testing.T) {
	t.Parallel()

	srv := newChatServer(t, http.StatusUnauthorized,
		`{"error": {"message": "invalid api key", "type": "invalid_request_error"}}`, nil, nil)

	c, err := New(Config{APIKey: "sk-bad", Model: "gpt-4o-mini", BaseURL: srv.URL + "/v1"})
	require.NoError(t, err)

	_, err = c.Send(context.Background(), "hello")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid api key")
}

func TestSendEmptyChoices(t *testing.T) {
	t.Parallel()

	srv := newChatServer(t, http.StatusOK, `{"id": "x", "model": "m", "choices": []}`, nil, nil)

	c, err := New(Config{APIKey: "sk-test", Model: "m", BaseURL: srv.URL + "/v1"})
	require.NoError(t, err)

	_, err = c.Send(context.Background(), "hello")
	assert.ErrorIs(t, err, ErrEmptyResponse)
}

func TestSendRejectsEmptyPrompt(t *testing.T) {
	t.Parallel()

	c, err := New(Config{APIKey: "sk-test", Model: "m"})
	require.NoError(t, err)

	_, err = c.Send(context.Background(), "  \n")
	assert.ErrorIs(t, err, ErrEmptyPrompt)
}

func TestNewRequiresAPIKey(t *testing.T) {
	t.Parallel()

	_, err := New(Config{Model: "m"})
	assert.ErrorIs(t, err, ErrMissingAPIKey)
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("UIPROMPT_TEST_KEY", "  sk-env  ")

	cfg := ConfigFromEnv("UIPROMPT_TEST_KEY", "gpt-4o-mini", "")
	assert.Equal(t, "sk-env", cfg.APIKey)
	assert.Equal(t, "gpt-4o-mini", cfg.Model)
	assert.Equal(t, DefaultRetryPolicy, cfg.Retry)
}
