package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/m3rciful/furnibot/core/logger"
	"log/slog"
)

// ErrUnavailable is returned when the catalog service cannot produce a
// product list: transport failure, non-200 status, or a malformed body.
var ErrUnavailable = errors.New("catalog unavailable")

const productsPath = "/Product/GetProducts"

// Config holds catalog client settings loaded from yaml/env.
type Config struct {
	BaseURL        string `yaml:"base_url" envconfig:"CATALOG_BASE_URL"`
	TimeoutSeconds int    `yaml:"timeout_seconds" envconfig:"CATALOG_TIMEOUT_SECONDS"`
}

// Normalize validates required fields and applies defaults.
func (c *Config) Normalize() error {
	if c.BaseURL == "" {
		return fmt.Errorf("catalog.base_url is required")
	}
	c.BaseURL = strings.TrimRight(c.BaseURL, "/")
	if c.TimeoutSeconds <= 0 {
		c.TimeoutSeconds = 10
	}
	return nil
}

// Client fetches the product list from the catalog HTTP service.
// The catalog is never cached: every lookup sees the current assortment.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient builds a catalog client. cfg must be normalized.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http: &http.Client{
			Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second,
		},
	}
}

// Fetch retrieves the full product list. Any failure is reported as
// ErrUnavailable with the cause wrapped for the logs.
func (c *Client) Fetch(ctx context.Context) ([]Product, error) {
	start := time.Now()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+productsPath, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %v", ErrUnavailable, err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		logger.Warn(ctx, logger.SVCCatalog, "catalog.fetch_failed",
			slog.String("reason", "transport"),
			slog.String("err", logger.SanitizeLimit(err.Error(), 200)),
		)
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		logger.Warn(ctx, logger.SVCCatalog, "catalog.fetch_failed",
			slog.String("reason", "status"),
			slog.Int("status", resp.StatusCode),
		)
		return nil, fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)
	}

	var products []Product
	if err := json.NewDecoder(resp.Body).Decode(&products); err != nil {
		logger.Warn(ctx, logger.SVCCatalog, "catalog.fetch_failed",
			slog.String("reason", "decode"),
			slog.String("err", logger.SanitizeLimit(err.Error(), 200)),
		)
		return nil, fmt.Errorf("%w: decode: %v", ErrUnavailable, err)
	}

	logger.Debug(ctx, logger.SVCCatalog, "catalog.fetched",
		slog.Int("count", len(products)),
		slog.Duration("duration", logger.RoundMS(time.Since(start))),
	)
	return products, nil
}
