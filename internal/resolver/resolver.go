// Package resolver orchestrates the geocoder, the flavor directory, and the
// distance math to rank locations by proximity to a caller address.
package resolver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/morrisrob/mke-flavors/internal/geocoding"
	"github.com/morrisrob/mke-flavors/internal/geodesy"
	"github.com/morrisrob/mke-flavors/internal/metrics"
	"github.com/morrisrob/mke-flavors/internal/models"
	"golang.org/x/sync/errgroup"
)

// Directory supplies the full location listing.
type Directory interface {
	FetchAll(ctx context.Context) ([]models.Location, error)
}

// ErrNoAddress is returned when the caller address carries neither a street
// line nor a state or region, so there is nothing to geocode.
var ErrNoAddress = errors.New("caller address has no usable fields")

// Resolver ranks the known flavor locations by distance from a caller
// address. It holds no per-request state; every call fetches a fresh
// directory listing.
type Resolver struct {
	log          *slog.Logger       // Logger for logging resolver activities
	provider     geocoding.Provider // Geocoding provider for the caller address
	providerName string             // Name of the provider for metrics labeling
	directory    Directory          // Flavor directory listing source
	metrics      *metrics.Metrics   // Metrics for tracking upstream performance
}

// NewResolver creates a new Resolver from its collaborators. The provider
// name labels the geocoding histogram series.
func NewResolver(
	log *slog.Logger,
	provider geocoding.Provider,
	providerName string,
	directory Directory,
	appMetrics *metrics.Metrics,
) *Resolver {
	return &Resolver{
		log:          log,
		provider:     provider,
		providerName: providerName,
		directory:    directory,
		metrics:      appMetrics,
	}
}

// Nearest geocodes the caller address, fetches the directory listing, and
// returns the n closest locations in ascending distance order. Equidistant
// locations keep their directory order. Fewer than n known locations returns
// all of them.
//
// The geocode and the directory fetch are independent of each other, so they
// run concurrently; the first failure cancels the other. Ranking starts only
// after both complete.
func (r *Resolver) Nearest(
	ctx context.Context,
	addr models.DeviceAddress,
	n int,
) ([]models.RankedLocation, error) {
	if addr.IsEmpty() {
		return nil, ErrNoAddress
	}

	query := searchText(addr)
	r.log.DebugContext(ctx, "Resolving nearest locations", "query", query, "n", n)

	var (
		coords  *models.Coordinates
		listing []models.Location
	)

	grp, grpCtx := errgroup.WithContext(ctx)
	grp.Go(func() error {
		start := time.Now()
		found, err := r.provider.Geocode(grpCtx, query)
		r.metrics.RequestSeconds.WithLabelValues(r.providerName).Observe(time.Since(start).Seconds())
		if err != nil {
			if !errors.Is(err, geocoding.ErrNoMatch) {
				r.metrics.APIErrors.Inc()
			}
			return fmt.Errorf("failed to geocode caller address: %w", err)
		}
		coords = found
		return nil
	})
	grp.Go(func() error {
		start := time.Now()
		fetched, err := r.directory.FetchAll(grpCtx)
		r.metrics.RequestSeconds.WithLabelValues("directory").Observe(time.Since(start).Seconds())
		if err != nil {
			r.metrics.APIErrors.Inc()
			return fmt.Errorf("failed to fetch location directory: %w", err)
		}
		listing = fetched
		return nil
	})
	if err := grp.Wait(); err != nil {
		return nil, err
	}

	ranked := make([]models.RankedLocation, 0, len(listing))
	for _, loc := range listing {
		ranked = append(ranked, models.RankedLocation{
			Location: loc,
			Distance: geodesy.Distance(
				coords.Latitude, coords.Longitude,
				loc.Lat, loc.Long,
				geodesy.UnitMiles,
			),
		})
	}

	// Stable sort: two locations can be exactly equidistant, and their
	// directory order is the tie-break.
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Distance < ranked[j].Distance
	})

	if n < len(ranked) {
		ranked = ranked[:n]
	}

	return ranked, nil
}

// searchText joins the populated address fields into the free-text query the
// geocoder expects.
func searchText(addr models.DeviceAddress) string {
	parts := make([]string, 0, 3)
	for _, part := range []string{addr.AddressLine1, addr.StateOrRegion, addr.PostalCode} {
		if part != "" {
			parts = append(parts, part)
		}
	}

	return strings.Join(parts, " ")
}
