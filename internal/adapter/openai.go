// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Procurio

// Package adapter holds outbound integrations with external services.
// Its only current member is an OpenAI-compatible chat completions client
// used to draft purchasing documents.
package adapter

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/procurio/purchasing-automation/internal/config"
	"github.com/procurio/purchasing-automation/internal/logger"
	"github.com/procurio/purchasing-automation/internal/utils"
	"github.com/procurio/purchasing-automation/models"
)

// retryBackoff is the pause before the single retry of a retryable upstream
// failure (429 or 5xx).
const retryBackoff = 2 * time.Second

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}

type openAIClient struct {
	client  *utils.HTTPClient
	apiKey  string
	backoff time.Duration
	logger  *logger.Logger
}

// NewOpenAIClient constructs an [LLMClient] speaking the OpenAI chat
// completions protocol. It normalises and validates the base URL from cfg and
// configures the underlying HTTP client with the resolved base URL and
// request timeout.
//
// Returns an error if cfg.OpenAIBaseURL is empty or cannot be parsed as a
// valid URL.
func NewOpenAIClient(cfg config.Adapter, logger *logger.Logger) (LLMClient, error) {
	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(cfg.OpenAIBaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid upstream base url: %w", err)
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout)

	return &openAIClient{client: client, apiKey: cfg.OpenAIAPIKey, backoff: retryBackoff, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Configured implements [LLMClient].
func (c *openAIClient) Configured() bool {
	return c.apiKey != ""
}

// Complete implements [LLMClient]. A retryable upstream failure (429, 5xx, or
// a transport error) is retried once after a short backoff; everything else
// fails immediately.
func (c *openAIClient) Complete(ctx context.Context, model, systemPrompt, userPrompt string) (string, error) {
	if !c.Configured() {
		return "", models.NewUpstreamFailure("upstream service is not configured", ErrUpstreamNotConfigured)
	}

	body := chatCompletionRequest{
		Model: model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt},
		},
		Temperature: 0.2,
	}

	text, err := c.complete(ctx, body)
	if err == nil {
		return text, nil
	}

	if failure := models.AsFailure(err); failure.Retryable {
		c.logger.Warn().Err(failure).Str("model", model).Msg("retrying upstream request once")

		select {
		case <-time.After(c.backoff):
		case <-ctx.Done():
			return "", models.NewUpstreamFailure("upstream request cancelled", ctx.Err())
		}

		return c.complete(ctx, body)
	}

	return "", err
}

func (c *openAIClient) complete(ctx context.Context, body chatCompletionRequest) (string, error) {
	var out chatCompletionResponse

	req := c.client.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+c.apiKey).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		SetResult(&out)
	if traceID, ok := utils.GetTraceIDFromContext(ctx); ok {
		req.SetHeader("X-Trace-ID", traceID)
	}

	resp, err := req.Post("/v1/chat/completions")
	if err != nil {
		// Transport-level failure: DNS, refused connection, deadline.
		return "", models.NewUpstreamFailure("upstream request failed", err)
	}

	if err := mapHTTPError(resp, &out); err != nil {
		return "", err
	}

	if len(out.Choices) == 0 || strings.TrimSpace(out.Choices[0].Message.Content) == "" {
		return "", models.NewUpstreamFailure("upstream returned an empty completion", ErrEmptyCompletion)
	}

	return out.Choices[0].Message.Content, nil
}

// mapHTTPError converts a non-2xx upstream response into a *models.Failure.
// 429 and 5xx are retryable; 4xx are not.
func mapHTTPError(resp *resty.Response, out *chatCompletionResponse) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	detail := strings.TrimSpace(string(resp.Body()))
	if out != nil && out.Error != nil && out.Error.Message != "" {
		detail = out.Error.Message
	}
	if detail == "" {
		detail = http.StatusText(resp.StatusCode())
	}

	msg := fmt.Sprintf("upstream returned %d: %s", resp.StatusCode(), detail)
	failure := models.NewUpstreamFailure(msg, fmt.Errorf("http %d", resp.StatusCode()))
	if resp.StatusCode() != http.StatusTooManyRequests && resp.StatusCode() < http.StatusInternalServerError {
		failure.Retryable = false
	}

	return failure
}
