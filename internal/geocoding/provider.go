package geocoding

import (
	"context"
	"errors"
	"net/http"

	"github.com/morrisrob/mke-flavors/internal/models"
)

// Provider is an interface that defines a method for geocoding a free-text
// address. The Geocode method takes a context and an address string as input,
// and returns the corresponding coordinates and an error if any occurs.
type Provider interface {
	Geocode(ctx context.Context, address string) (*models.Coordinates, error)
}

// ErrNoMatch is returned when the upstream geocoder answered with a
// well-formed empty result set: the address is outside the supported area or
// the geocoder could not parse it. Every other failure from a provider means
// the geocoder itself was unavailable.
var ErrNoMatch = errors.New("geocoder found no match for address")

// HTTPClient defines the interface for making HTTP requests.
// This allows for easy mocking in tests.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}
