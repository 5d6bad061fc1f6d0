// Package generation is the client for the external image/text generation
// API. Responses are opaque JSON handed back to the UI unmodified, including
// on upstream failure.
package generation

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/atelier-ai/atelier-server/internal/logger"
	"github.com/atelier-ai/atelier-server/internal/model"
)

var _ model.GenerationClient = (*Client)(nil)

// Config holds the parameters of the generation API.
type Config struct {
	BaseURL        string
	APIKey         string
	ImageModel     string
	ReasoningModel string
	ImageSize      string
	Timeout        time.Duration
}

// Client calls the generation API over HTTP with bearer auth.
type Client struct {
	httpClient *resty.Client
	config     Config
	logger     *logger.Logger
}

type imageRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	Size   string `json:"size"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

// NewClient creates a generation API client.
func NewClient(config Config, logger *logger.Logger) *Client {
	httpClient := resty.New().
		SetBaseURL(config.BaseURL).
		SetTimeout(config.Timeout).
		SetAuthToken(config.APIKey).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	return &Client{
		httpClient: httpClient,
		config:     config,
		logger:     logger,
	}
}

// GenerateImage submits an image generation request and returns the raw
// upstream response.
func (c *Client) GenerateImage(ctx context.Context, prompt string) (json.RawMessage, error) {
	c.logger.Debug("Generation client: requesting image",
		"model", c.config.ImageModel,
		"prompt_len", len(prompt))

	return c.post(ctx, "/images/generations", imageRequest{
		Model:  c.config.ImageModel,
		Prompt: prompt,
		Size:   c.config.ImageSize,
	})
}

// Reason submits a chat completion request and returns the raw upstream
// response.
func (c *Client) Reason(ctx context.Context, prompt string) (json.RawMessage, error) {
	c.logger.Debug("Generation client: requesting completion",
		"model", c.config.ReasoningModel,
		"prompt_len", len(prompt))

	return c.post(ctx, "/chat/completions", chatRequest{
		Model: c.config.ReasoningModel,
		Messages: []chatMessage{
			{Role: "user", Content: prompt},
		},
	})
}

func (c *Client) post(ctx context.Context, path string, body any) (json.RawMessage, error) {
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetBody(body).
		Post(path)
	if err != nil {
		c.logger.Error("Generation client: request failed",
			"path", path,
			"error", err.Error())
		return nil, fmt.Errorf("failed to call generation api: %w", err)
	}

	raw := json.RawMessage(resp.Body())

	if resp.IsError() {
		c.logger.Error("Generation client: upstream error",
			"path", path,
			"status", resp.StatusCode())
		return nil, &model.UpstreamError{
			StatusCode: resp.StatusCode(),
			Body:       raw,
		}
	}

	return raw, nil
}
