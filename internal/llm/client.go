// Package llm is the client for the hosted chat-completions gateway. The
// bearer credential always comes from server configuration, never from the
// incoming request.
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/codesimplify/backend/internal/logger"
	"github.com/codesimplify/backend/internal/models"
)

var (
	ErrRateLimited      = errors.New("AI rate limit exceeded. Please try again in a moment.")
	ErrCreditsExhausted = errors.New("AI credits exhausted. Please contact support.")
)

type Client struct {
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
	// Streaming holds the connection open for the whole generation, so it
	// gets a client with no overall timeout; cancellation comes from the
	// request context when the downstream client disconnects.
	streamClient *http.Client
}

// New creates a gateway client. timeout bounds the buffered completion
// call; generation is the one long-latency operation in a request.
func New(baseURL, apiKey, model string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 120 * time.Second
	}
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		model:   model,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		streamClient: &http.Client{},
	}
}

type completionRequest struct {
	Model     string               `json:"model"`
	Messages  []models.ChatMessage `json:"messages"`
	MaxTokens int                  `json:"max_tokens,omitempty"`
	Stream    bool                 `json:"stream,omitempty"`
}

type completionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Complete sends a buffered completion request and returns the assistant's
// reply text.
func (c *Client) Complete(ctx context.Context, messages []models.ChatMessage, maxTokens int) (string, error) {
	resp, err := c.post(ctx, completionRequest{
		Model:     c.model,
		Messages:  messages,
		MaxTokens: maxTokens,
	})
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if err := mapStatus(resp); err != nil {
		return "", err
	}

	var result completionResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("failed to decode gateway response: %w", err)
	}
	if len(result.Choices) == 0 {
		return "", errors.New("gateway returned no choices")
	}
	return result.Choices[0].Message.Content, nil
}

// Stream sends a streaming completion request and hands the raw response
// body to the caller for passthrough. No buffering or reformatting happens
// here; the caller relays the SSE bytes and closes the body. Request errors
// before the stream starts are mapped like buffered ones.
func (c *Client) Stream(ctx context.Context, messages []models.ChatMessage) (io.ReadCloser, error) {
	resp, err := c.do(ctx, c.streamClient, completionRequest{
		Model:    c.model,
		Messages: messages,
		Stream:   true,
	})
	if err != nil {
		return nil, err
	}

	if err := mapStatus(resp); err != nil {
		resp.Body.Close()
		return nil, err
	}
	return resp.Body, nil
}

func (c *Client) post(ctx context.Context, body completionRequest) (*http.Response, error) {
	return c.do(ctx, c.httpClient, body)
}

func (c *Client) do(ctx context.Context, httpClient *http.Client, body completionRequest) (*http.Response, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+"/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to reach AI gateway: %w", err)
	}
	return resp, nil
}

func mapStatus(resp *http.Response) error {
	switch {
	case resp.StatusCode == http.StatusOK:
		return nil
	case resp.StatusCode == http.StatusTooManyRequests:
		return ErrRateLimited
	case resp.StatusCode == http.StatusPaymentRequired:
		return ErrCreditsExhausted
	default:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		logger.S().Errorw("AI gateway error", "status", resp.StatusCode, "body", string(body))
		return fmt.Errorf("AI gateway error (status %d)", resp.StatusCode)
	}
}
