package completion

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"dgiibot/clients"
	"dgiibot/models"
)

// CompletionClient implements the clients.CompletionClient interface
type CompletionClient struct {
	endpointURL string
	client      *resty.Client
}

// NewCompletionClient creates a client that posts to endpointURL
func NewCompletionClient(endpointURL string, timeout time.Duration) clients.CompletionClient {
	client := resty.New()
	client.SetTimeout(timeout)
	client.SetHeader("Content-Type", "application/json; charset=utf-8")
	client.SetHeader("Accept", "application/json")
	client.SetHeader("Accept-Language", "es")

	return &CompletionClient{
		endpointURL: endpointURL,
		client:      client,
	}
}

// Complete posts the request and returns the raw response document
func (c *CompletionClient) Complete(ctx context.Context, request models.CompletionRequest) ([]byte, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(request).
		Post(c.endpointURL)
	if err != nil {
		return nil, fmt.Errorf("failed to execute completion request: %w", err)
	}

	if !resp.IsSuccess() {
		return nil, &clients.APIError{
			StatusCode: resp.StatusCode(),
			URL:        c.endpointURL,
			Body:       resp.String(),
		}
	}

	return resp.Body(), nil
}
