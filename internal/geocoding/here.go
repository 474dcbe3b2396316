package geocoding

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/morrisrob/mke-flavors/internal/models"
	"golang.org/x/time/rate"
)

// HereBaseURL is the HERE 6.2 geocoder API base URL.
const HereBaseURL = "https://geocoder.api.here.com/6.2/geocode.json"

// HereProvider implements the Provider interface using the HERE geocoder API.
// This is the provider the skill runs with by default.
type HereProvider struct {
	client  HTTPClient    // HTTP client for making requests
	baseURL string        // Base URL for the HERE API
	appID   string        // Application ID issued by HERE
	appCode string        // Application code issued by HERE
	log     *slog.Logger  // Logger for logging operations
	limiter *rate.Limiter // Rate limiter
}

// Common errors for the HERE provider.
var (
	ErrHereEmptyAddress    = errors.New("here provider got empty address")
	ErrHereInvalidResponse = errors.New("here API returned a view without a result position")
)

// hereResponse mirrors the slice of the HERE 6.2 geocode payload this
// service reads. An empty View means the geocoder had no match.
type hereResponse struct {
	Response struct {
		View []struct {
			Result []struct {
				Location struct {
					NavigationPosition []struct {
						Latitude  float64 `json:"Latitude"`
						Longitude float64 `json:"Longitude"`
					} `json:"NavigationPosition"`
				} `json:"Location"`
			} `json:"Result"`
		} `json:"View"`
	} `json:"Response"`
}

// NewHereProvider creates a new HERE geocoding provider with a bounded
// per-request timeout.
func NewHereProvider(appID, appCode string, rateLimit int, timeout time.Duration, log *slog.Logger) *HereProvider {
	return &HereProvider{
		client: &http.Client{
			Timeout: timeout,
		},
		baseURL: HereBaseURL,
		appID:   appID,
		appCode: appCode,
		log:     log,
		limiter: rate.NewLimiter(rate.Limit(rateLimit), rateLimit),
	}
}

// NewHereProviderWithClient allows injecting a custom HTTP client.
func NewHereProviderWithClient(
	client HTTPClient,
	appID, appCode string,
	limiter *rate.Limiter,
	log *slog.Logger,
) *HereProvider {
	return &HereProvider{
		client:  client,
		baseURL: HereBaseURL,
		appID:   appID,
		appCode: appCode,
		log:     log,
		limiter: limiter,
	}
}

// Geocode converts an address into geographic coordinates using the HERE API.
// An empty View in the payload is reported as ErrNoMatch; every other failure
// means the geocoder was unavailable.
func (hp *HereProvider) Geocode(ctx context.Context, address string) (*models.Coordinates, error) {
	if err := hp.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit exceeded: %w", err)
	}

	hp.log.DebugContext(ctx, "Geocoding using HERE", "address", address)

	if address == "" {
		return nil, ErrHereEmptyAddress
	}

	reqURL, err := url.Parse(hp.baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}

	query := reqURL.Query()
	query.Set("app_id", hp.appID)
	query.Set("app_code", hp.appCode)
	query.Set("searchtext", address)
	reqURL.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")

	resp, err := hp.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute geocoding request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		hp.log.ErrorContext(ctx, "HERE API error", "status", resp.StatusCode, "body", string(body))
		return nil, fmt.Errorf("here API returned status %d: %s", resp.StatusCode, string(body))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	var result hereResponse
	if err = json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("failed to decode here response: %w", err)
	}

	// No view at all is the geocoder's way of saying the address is outside
	// its coverage; a view without a position is a malformed payload.
	if len(result.Response.View) == 0 {
		return nil, ErrNoMatch
	}

	view := result.Response.View[0]
	if len(view.Result) == 0 || len(view.Result[0].Location.NavigationPosition) == 0 {
		return nil, ErrHereInvalidResponse
	}

	position := view.Result[0].Location.NavigationPosition[0]

	hp.log.DebugContext(ctx, "HERE found result", "address", address,
		"lat", position.Latitude, "lon", position.Longitude)

	return &models.Coordinates{
		Latitude:  position.Latitude,
		Longitude: position.Longitude,
	}, nil
}
