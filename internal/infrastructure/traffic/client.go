package traffic

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/spyshark/backend/internal/domain/integration"
)

// maxResponseSize is the maximum allowed response size from the traffic API (5MB)
const maxResponseSize = 5 * 1024 * 1024

// Client fetches traffic statistics for a domain from a SimilarWeb-style
// endpoint. The upstream payload is passed through untouched; this service
// proxies it rather than modeling it.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new traffic statistics client
func NewClient(baseURL string, timeoutSeconds int) *Client {
	if timeoutSeconds <= 0 {
		timeoutSeconds = 15
	}
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: time.Duration(timeoutSeconds) * time.Second,
		},
	}
}

// FetchDomainStats returns the raw JSON traffic report for a domain
func (c *Client) FetchDomainStats(ctx context.Context, domain string) (json.RawMessage, error) {
	reqURL := fmt.Sprintf("%s?domain=%s", c.baseURL, url.QueryEscape(domain))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("traffic: failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", integration.ErrPlatformUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, fmt.Errorf("traffic: failed to read response: %w", err)
	}
	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("%w: HTTP %d: %s", integration.ErrPlatformRequestFailed, resp.StatusCode, string(body))
	}

	if !json.Valid(body) {
		return nil, integration.ErrPlatformInvalidResponse
	}
	return json.RawMessage(body), nil
}
