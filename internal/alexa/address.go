package alexa

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/morrisrob/mke-flavors/internal/models"
)

// addressPathFormat is the device-address settings endpoint under the
// per-request API endpoint.
const addressPathFormat = "%s/v1/devices/%s/settings/address"

// Errors from the device address service. Every failure wraps
// ErrServiceError so the skill's second-stage error dispatcher can claim it;
// ErrForbidden additionally marks a rejected or revoked consent token.
var (
	ErrServiceError = errors.New("device address service error")
	ErrForbidden    = fmt.Errorf("%w: consent token rejected", ErrServiceError)
)

// HTTPClient defines the interface for making HTTP requests.
// This allows for easy mocking in tests.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// AddressClient fetches the caller's postal address from the platform's
// device-address service.
type AddressClient struct {
	client HTTPClient   // HTTP client for making requests
	log    *slog.Logger // Logger for logging operations
}

// NewAddressClient creates an address client with a bounded per-request timeout.
func NewAddressClient(timeout time.Duration, log *slog.Logger) *AddressClient {
	return &AddressClient{
		client: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// NewAddressClientWithHTTP allows injecting a custom HTTP client.
func NewAddressClientWithHTTP(client HTTPClient, log *slog.Logger) *AddressClient {
	return &AddressClient{client: client, log: log}
}

// FullAddress retrieves the full postal address of a device using the consent
// token the user granted. A 403 from the service means the token is invalid
// or revoked and is reported as ErrForbidden.
func (c *AddressClient) FullAddress(
	ctx context.Context,
	apiEndpoint, deviceID, consentToken string,
) (*models.DeviceAddress, error) {
	reqURL := fmt.Sprintf(addressPathFormat, apiEndpoint, deviceID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %w", ErrServiceError, err)
	}

	req.Header.Set("Authorization", "Bearer "+consentToken)
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute address request: %w", ErrServiceError, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// continue
	case http.StatusForbidden:
		return nil, ErrForbidden
	default:
		body, _ := io.ReadAll(resp.Body)
		c.log.ErrorContext(ctx, "Device address API error", "status", resp.StatusCode, "body", string(body))
		return nil, fmt.Errorf("%w: address API returned status %d", ErrServiceError, resp.StatusCode)
	}

	var address models.DeviceAddress
	if err = json.NewDecoder(resp.Body).Decode(&address); err != nil {
		return nil, fmt.Errorf("%w: failed to decode address response: %w", ErrServiceError, err)
	}

	c.log.DebugContext(ctx, "Device address retrieved", "device", deviceID)

	return &address, nil
}
