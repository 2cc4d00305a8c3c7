// Package ai wraps the summarization service. The service is opaque
// text-in/text-out; any failure falls back to the unmodified content.
package ai

import (
	"context"
	"time"

	"resty.dev/v3"
)

type summarizeRequest struct {
	Content string `json:"content"`
}

type summarizeResponse struct {
	Summary string `json:"summary"`
}

// Client calls the external summarization service
type Client struct {
	client  *resty.Client
	baseURL string
}

// NewClient creates a client for the given base URL. An empty URL disables
// the integration; Summarize then returns content unchanged.
func NewClient(baseURL string) *Client {
	client := resty.New().
		SetTimeout(10 * time.Second)

	return &Client{
		client:  client,
		baseURL: baseURL,
	}
}

func (c *Client) Close() error {
	return c.client.Close()
}

// Summarize returns a summary of the content, best effort. On any transport
// or service error the original content is returned.
func (c *Client) Summarize(ctx context.Context, content string) string {
	if c.baseURL == "" {
		return content
	}

	var out summarizeResponse
	res, err := c.client.R().
		WithContext(ctx).
		SetBody(summarizeRequest{Content: content}).
		SetResult(&out).
		Post(c.baseURL + "/summarize")
	if err != nil || res.IsError() || out.Summary == "" {
		return content
	}
	return out.Summary
}
