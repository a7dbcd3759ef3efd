package groq

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"recipe-recommender/internal/core/ai/prompt"
	"recipe-recommender/internal/infrastructure/config"
	"recipe-recommender/internal/pkg/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(url string) *config.Config {
	return &config.Config{
		Groq: config.GroqConfig{
			APIURL:  url,
			APIKey:  "test-key",
			Model:   "test-model",
			Timeout: 5 * time.Second,
		},
	}
}

func TestCompleteSuccess(t *testing.T) {
	var gotAuth string
	var gotBody []byte
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotBody, _ = io.ReadAll(r.Body)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices":[{"message":{"content":"{\"recipes\":[]}"}}]}`))
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL))
	defer client.Close()

	content, err := client.Complete(context.Background(), prompt.Payload{
		System:         "You are a chef.",
		User:           "suggest",
		ResponseFormat: prompt.FormatJSONObject,
	})
	require.NoError(t, err)
	assert.Equal(t, `{"recipes":[]}`, content)
	assert.Equal(t, "Bearer test-key", gotAuth)
	assert.Contains(t, string(gotBody), `"model":"test-model"`)
	assert.Contains(t, string(gotBody), `"response_format":{"type":"json_object"}`)
}

func TestCompleteTextFormatOmitsResponseFormat(t *testing.T) {
	var gotBody []byte
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotBody, _ = io.ReadAll(r.Body)
		w.Write([]byte(`{"choices":[{"message":{"content":"नमस्ते"}}]}`))
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL))
	defer client.Close()

	content, err := client.Complete(context.Background(), prompt.Translate("Hello", "hi"))
	require.NoError(t, err)
	assert.Equal(t, "नमस्ते", content)
	assert.NotContains(t, string(gotBody), "response_format")
}

func TestCompleteAcceptsAnySuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"choices":[{"message":{"content":"ok"}}]}`))
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL))
	defer client.Close()

	content, err := client.Complete(context.Background(), prompt.Payload{})
	require.NoError(t, err, "a non-200 2xx is still a success")
	assert.Equal(t, "ok", content)
}

func TestCompleteObjectContentPassedThrough(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"choices":[{"message":{"content":{"recipes":[{"title":"Poha"}]}}}]}`))
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL))
	defer client.Close()

	content, err := client.Complete(context.Background(), prompt.Payload{ResponseFormat: prompt.FormatJSONObject})
	require.NoError(t, err)
	assert.JSONEq(t, `{"recipes":[{"title":"Poha"}]}`, content)
}

func TestCompleteMissingCredential(t *testing.T) {
	cfg := testConfig("http://unused.invalid")
	cfg.Groq.APIKey = ""
	client := NewClient(cfg)

	assert.False(t, client.Configured())

	_, err := client.Complete(context.Background(), prompt.Payload{})
	assert.True(t, common.IsConfigMissing(err))
}

func TestCompleteUpstreamErrors(t *testing.T) {
	t.Run("rate limited", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
			w.Write([]byte(`{"error":{"message":"rate limit exceeded"}}`))
		}))
		defer server.Close()

		client := NewClient(testConfig(server.URL))
		_, err := client.Complete(context.Background(), prompt.Payload{})
		assert.True(t, common.IsRateLimited(err))
	})

	t.Run("server error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		client := NewClient(testConfig(server.URL))
		_, err := client.Complete(context.Background(), prompt.Payload{})
		require.Error(t, err)
		assert.Equal(t, common.ErrCodeUpstreamFailure, common.AsCustomError(err).Code)
		assert.False(t, common.IsRateLimited(err))
	})

	t.Run("empty choices", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Write([]byte(`{"choices":[]}`))
		}))
		defer server.Close()

		client := NewClient(testConfig(server.URL))
		_, err := client.Complete(context.Background(), prompt.Payload{})
		assert.True(t, errors.Is(err, common.ErrEmptyResponse))
	})

	t.Run("empty content", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Write([]byte(`{"choices":[{"message":{"content":""}}]}`))
		}))
		defer server.Close()

		client := NewClient(testConfig(server.URL))
		_, err := client.Complete(context.Background(), prompt.Payload{})
		assert.True(t, errors.Is(err, common.ErrEmptyResponse))
	})

	t.Run("transport failure", func(t *testing.T) {
		cfg := testConfig("http://127.0.0.1:1") // nothing listens here
		client := NewClient(cfg)
		_, err := client.Complete(context.Background(), prompt.Payload{})
		assert.True(t, errors.Is(err, common.ErrTransportFailure))
	})
}
