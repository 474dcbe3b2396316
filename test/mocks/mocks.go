// Package mocks holds hand-maintained testify mocks for the service's
// collaborator interfaces. Each constructor registers the mock with the test
// and asserts its expectations on cleanup.
package mocks

import (
	"context"
	"testing"

	"github.com/morrisrob/mke-flavors/internal/models"
	"github.com/stretchr/testify/mock"
	"googlemaps.github.io/maps"
)

// Provider mocks geocoding.Provider.
type Provider struct {
	mock.Mock
}

func NewProvider(t *testing.T) *Provider {
	t.Helper()
	m := &Provider{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *Provider) Geocode(ctx context.Context, address string) (*models.Coordinates, error) {
	args := m.Called(ctx, address)

	var coords *models.Coordinates
	if args.Get(0) != nil {
		coords, _ = args.Get(0).(*models.Coordinates)
	}
	return coords, args.Error(1)
}

// Directory mocks the directory listing source used by the resolver and the
// flavor lookup handler.
type Directory struct {
	mock.Mock
}

func NewDirectory(t *testing.T) *Directory {
	t.Helper()
	m := &Directory{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *Directory) FetchAll(ctx context.Context) ([]models.Location, error) {
	args := m.Called(ctx)

	var listing []models.Location
	if args.Get(0) != nil {
		listing, _ = args.Get(0).([]models.Location)
	}
	return listing, args.Error(1)
}

// AddressService mocks the platform device-address client.
type AddressService struct {
	mock.Mock
}

func NewAddressService(t *testing.T) *AddressService {
	t.Helper()
	m := &AddressService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *AddressService) FullAddress(
	ctx context.Context,
	apiEndpoint, deviceID, consentToken string,
) (*models.DeviceAddress, error) {
	args := m.Called(ctx, apiEndpoint, deviceID, consentToken)

	var address *models.DeviceAddress
	if args.Get(0) != nil {
		address, _ = args.Get(0).(*models.DeviceAddress)
	}
	return address, args.Error(1)
}

// ProximityResolver mocks the nearest-locations resolver.
type ProximityResolver struct {
	mock.Mock
}

func NewProximityResolver(t *testing.T) *ProximityResolver {
	t.Helper()
	m := &ProximityResolver{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *ProximityResolver) Nearest(
	ctx context.Context,
	addr models.DeviceAddress,
	n int,
) ([]models.RankedLocation, error) {
	args := m.Called(ctx, addr, n)

	var ranked []models.RankedLocation
	if args.Get(0) != nil {
		ranked, _ = args.Get(0).([]models.RankedLocation)
	}
	return ranked, args.Error(1)
}

// GoogleAPIClient mocks the slice of the Google Maps client the Google
// provider consumes.
type GoogleAPIClient struct {
	mock.Mock
}

func NewGoogleAPIClient(t *testing.T) *GoogleAPIClient {
	t.Helper()
	m := &GoogleAPIClient{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *GoogleAPIClient) Geocode(
	ctx context.Context,
	r *maps.GeocodingRequest,
) ([]maps.GeocodingResult, error) {
	args := m.Called(ctx, r)

	var results []maps.GeocodingResult
	if args.Get(0) != nil {
		results, _ = args.Get(0).([]maps.GeocodingResult)
	}
	return results, args.Error(1)
}
