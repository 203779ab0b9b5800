// Package webhook posts digest messages to a chat webhook (Slack-style
// incoming webhook or compatible).
package webhook

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

// Notifier delivers plain-text notifications.
type Notifier interface {
	Notify(ctx context.Context, text string) error
}

// Client is a resty-backed Notifier.
type Client struct {
	httpClient *resty.Client
	url        string
}

// NewClient builds a webhook client for the given URL.
func NewClient(url string) *Client {
	restyClient := resty.New().
		SetHeader("Content-Type", "application/json").
		SetTimeout(15 * time.Second)

	return &Client{httpClient: restyClient, url: url}
}

// Notify posts the text as a JSON payload to the webhook.
func (c *Client) Notify(ctx context.Context, text string) error {
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetBody(map[string]any{"text": text}).
		Post(c.url)
	if err != nil {
		return fmt.Errorf("post webhook notification: %w", err)
	}

	if resp.StatusCode() >= http.StatusBadRequest {
		return fmt.Errorf("webhook error: status=%d, body=%s", resp.StatusCode(), resp.String())
	}

	return nil
}
