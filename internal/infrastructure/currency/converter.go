package currency

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/spyshark/backend/internal/domain/integration"
)

// maxResponseSize is the maximum allowed response size from the rate API (1MB)
const maxResponseSize = 1 * 1024 * 1024

// Client fetches exchange rates from an exchangerate-api style endpoint.
// A lookup for currency X reads rates.USD from /v4/latest/X.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new exchange-rate client
func NewClient(baseURL string, timeoutSeconds int) *Client {
	if timeoutSeconds <= 0 {
		timeoutSeconds = 10
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: time.Duration(timeoutSeconds) * time.Second,
		},
	}
}

// rateResponse is the upstream payload; only the USD entry is used
type rateResponse struct {
	Rates map[string]json.Number `json:"rates"`
}

// RateToUSD returns the multiplier converting the given currency to USD
func (c *Client) RateToUSD(ctx context.Context, currency string) (decimal.Decimal, error) {
	if currency == "" {
		return decimal.Zero, integration.ErrRateUnavailable
	}

	url := fmt.Sprintf("%s/%s", c.baseURL, currency)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return decimal.Zero, fmt.Errorf("currency: failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %v", integration.ErrRateUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return decimal.Zero, fmt.Errorf("currency: failed to read response: %w", err)
	}
	if resp.StatusCode >= 400 {
		return decimal.Zero, fmt.Errorf("%w: HTTP %d", integration.ErrRateUnavailable, resp.StatusCode)
	}

	var parsed rateResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return decimal.Zero, fmt.Errorf("%w: %v", integration.ErrRateUnavailable, err)
	}

	rate, ok := parsed.Rates["USD"]
	if !ok {
		return decimal.Zero, integration.ErrRateUnavailable
	}
	d, err := decimal.NewFromString(rate.String())
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %v", integration.ErrRateUnavailable, err)
	}
	return d, nil
}

// CachedProvider layers a Redis cache over a rate source. Cache failures are
// logged and the lookup falls through to the source, so a missing or downed
// Redis never blocks a sync.
type CachedProvider struct {
	client *redis.Client
	source integration.RateProvider
	ttl    time.Duration
	logger *zap.Logger
}

// NewCachedProvider creates a rate provider with Redis caching. A nil client
// disables caching entirely.
func NewCachedProvider(client *redis.Client, source integration.RateProvider, ttl time.Duration, logger *zap.Logger) *CachedProvider {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CachedProvider{
		client: client,
		source: source,
		ttl:    ttl,
		logger: logger,
	}
}

// cacheKey namespaces cached rates per currency
func (p *CachedProvider) cacheKey(currency string) string {
	return "rate:usd:" + strings.ToUpper(currency)
}

// RateToUSD returns the cached rate when present, otherwise fetches from the
// source and caches the result
func (p *CachedProvider) RateToUSD(ctx context.Context, currency string) (decimal.Decimal, error) {
	if p.client != nil {
		cached, err := p.client.Get(ctx, p.cacheKey(currency)).Result()
		if err == nil {
			if d, parseErr := decimal.NewFromString(cached); parseErr == nil {
				return d, nil
			}
		} else if err != redis.Nil {
			p.logger.Warn("rate cache read failed, falling back to source",
				zap.String("currency", currency),
				zap.Error(err),
			)
		}
	}

	rate, err := p.source.RateToUSD(ctx, currency)
	if err != nil {
		return decimal.Zero, err
	}

	if p.client != nil {
		if err := p.client.Set(ctx, p.cacheKey(currency), rate.String(), p.ttl).Err(); err != nil {
			p.logger.Warn("rate cache write failed",
				zap.String("currency", currency),
				zap.Error(err),
			)
		}
	}

	return rate, nil
}

var (
	_ integration.RateProvider = (*Client)(nil)
	_ integration.RateProvider = (*CachedProvider)(nil)
)
