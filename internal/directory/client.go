// Package directory fetches the flavor-of-the-day listing from the
// MKE Flavors directory API.
package directory

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/morrisrob/mke-flavors/internal/models"
)

// DefaultBaseURL is the production flavor directory.
const DefaultBaseURL = "https://mkeflavors.com"

// locationsPath is the listing endpoint under the base URL.
const locationsPath = "/api/locations"

// HTTPClient defines the interface for making HTTP requests.
// This allows for easy mocking in tests.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client fetches the full location listing from the directory service.
// The listing is request-scoped: callers pass the returned slice down
// explicitly and never hold it across requests.
type Client struct {
	client  HTTPClient   // HTTP client for making requests
	baseURL string       // Base URL of the directory service
	log     *slog.Logger // Logger for logging operations
}

// NewClient creates a directory client with a bounded per-request timeout.
func NewClient(baseURL string, timeout time.Duration, log *slog.Logger) *Client {
	return &Client{
		client: &http.Client{
			Timeout: timeout,
		},
		baseURL: baseURL,
		log:     log,
	}
}

// NewClientWithHTTP allows injecting a custom HTTP client.
func NewClientWithHTTP(client HTTPClient, baseURL string, log *slog.Logger) *Client {
	return &Client{
		client:  client,
		baseURL: baseURL,
		log:     log,
	}
}

// FetchAll retrieves every known location with today's flavors. There are no
// retries; a failed fetch propagates so the caller can degrade to its generic
// error response.
func (c *Client) FetchAll(ctx context.Context) ([]models.Location, error) {
	reqURL := c.baseURL + locationsPath

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute directory request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.log.ErrorContext(ctx, "Directory API error", "status", resp.StatusCode, "body", string(body))
		return nil, fmt.Errorf("directory API returned status %d: %s", resp.StatusCode, string(body))
	}

	var locations []models.Location
	if err = json.NewDecoder(resp.Body).Decode(&locations); err != nil {
		return nil, fmt.Errorf("failed to decode directory response: %w", err)
	}

	c.log.DebugContext(ctx, "Fetched location listing", "locations", len(locations))

	return locations, nil
}
