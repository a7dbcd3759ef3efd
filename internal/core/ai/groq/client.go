// Package groq is the client for the Groq OpenAI-compatible chat
// completions endpoint. It performs exactly one network call per
// request; retry policy, if any, belongs to the callers.
package groq

import (
	"context"
	"encoding/json"
	"fmt"

	"recipe-recommender/internal/core/ai/prompt"
	"recipe-recommender/internal/infrastructure/config"
	"recipe-recommender/internal/pkg/common"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// Client talks to the completion endpoint with fixed model and auth
// configuration. It is constructable without a credential; calls then
// fail fast with the config-missing error instead of going out.
type Client struct {
	config *config.Config
	client *resty.Client
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type request struct {
	Model          string          `json:"model"`
	Messages       []message       `json:"messages"`
	ResponseFormat *responseFormat `json:"response_format,omitempty"`
}

type responseFormat struct {
	Type string `json:"type"`
}

// The content field arrives either as a JSON string or as an
// already-decoded object; RawMessage defers that decision.
type completionResponse struct {
	Choices []struct {
		Message struct {
			Content json.RawMessage `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// NewClient creates a completion client from the process configuration.
func NewClient(cfg *config.Config) *Client {
	client := resty.New().
		SetHeader("Content-Type", "application/json").
		SetHeader("Authorization", fmt.Sprintf("Bearer %s", cfg.Groq.APIKey)).
		SetTimeout(cfg.Groq.Timeout)

	return &Client{
		config: cfg,
		client: client,
	}
}

// Configured reports whether a credential is present. Orchestrators
// branch on this for their mock/fail-fast behavior.
func (c *Client) Configured() bool {
	return c.config.Groq.APIKey != ""
}

// Complete sends one completion request and returns the raw message
// content. Failures are typed: config missing, transport, upstream
// status (429 distinguishable), empty response.
func (c *Client) Complete(ctx context.Context, p prompt.Payload) (string, error) {
	if !c.Configured() {
		return "", common.ErrConfigMissing
	}

	req := request{
		Model: c.config.Groq.Model,
		Messages: []message{
			{Role: "system", Content: p.System},
			{Role: "user", Content: p.User},
		},
	}
	if p.ResponseFormat == prompt.FormatJSONObject {
		req.ResponseFormat = &responseFormat{Type: prompt.FormatJSONObject}
	}

	common.LogDebug("sending completion request",
		zap.String("model", req.Model),
		zap.String("response_format", p.ResponseFormat),
	)

	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(req).
		Post(c.config.Groq.APIURL)

	if err != nil {
		common.LogError("completion request failed",
			zap.Error(err),
			zap.String("model", req.Model),
		)
		return "", common.WrapError(common.ErrTransportFailure, err)
	}

	if !resp.IsSuccess() {
		common.LogError("completion endpoint returned error status",
			zap.Int("status", resp.StatusCode()),
			zap.String("model", req.Model),
		)
		return "", common.NewUpstreamError(resp.StatusCode(), resp.String())
	}

	var result completionResponse
	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		return "", common.WrapError(common.ErrEmptyResponse, err)
	}
	if len(result.Choices) == 0 || len(result.Choices[0].Message.Content) == 0 {
		return "", common.ErrEmptyResponse
	}

	content := decodeContent(result.Choices[0].Message.Content)
	if content == "" {
		return "", common.ErrEmptyResponse
	}

	common.LogDebug("completion response received",
		zap.String("model", req.Model),
		zap.Int("content_length", len(content)),
	)

	return content, nil
}

// decodeContent unwraps a string content value; an already-decoded
// object or array is passed through as its JSON text.
func decodeContent(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return string(raw)
}

// Close releases idle connections.
func (c *Client) Close() error {
	c.client.GetClient().CloseIdleConnections()
	return nil
}
