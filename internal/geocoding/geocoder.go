// Package geocoding resolves free-text place names into coordinates.
package geocoding

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/ngmaloney/jiai-terminal/internal/models"
	"github.com/ngmaloney/jiai-terminal/internal/openmeteo"
	"github.com/ngmaloney/jiai-terminal/internal/spots"
)

// NearbySpotRadiusKm is how close a coordinate literal must be to a spot to take its name
const NearbySpotRadiusKm = 30.0

// ErrNoResults is returned when nothing matches the query
var ErrNoResults = errors.New("no results found")

// SpotLookup finds saved and preset spots
type SpotLookup interface {
	GetSpot(ctx context.Context, name string) (*models.Spot, error)
	NearestSpot(ctx context.Context, lat, lon, radiusKm float64) (*models.Spot, float64, error)
}

// Location represents a geocoded location
type Location struct {
	Latitude  float64
	Longitude float64
	Name      string
	Style     string // Preferred style when the location is a saved spot
}

// Geocoder converts place names to coordinates.
// Saved spots are consulted before the remote API.
type Geocoder struct {
	spots    SpotLookup
	client   openmeteo.GeocodingClient
	logger   *zap.Logger
	interval time.Duration
	wait     func(ctx context.Context, d time.Duration) error

	mu       sync.Mutex
	lastCall time.Time
}

// Option customizes a Geocoder
type Option func(*Geocoder)

// WithLogger sets the logger
func WithLogger(l *zap.Logger) Option {
	return func(g *Geocoder) {
		if l != nil {
			g.logger = l
		}
	}
}

// WithMinInterval sets the minimum gap between remote lookups
func WithMinInterval(d time.Duration) Option {
	return func(g *Geocoder) {
		g.interval = d
	}
}

// NewGeocoder creates a new geocoder. spots may be nil.
func NewGeocoder(spotLookup SpotLookup, client openmeteo.GeocodingClient, opts ...Option) *Geocoder {
	g := &Geocoder{
		spots:    spotLookup,
		client:   client,
		logger:   zap.NewNop(),
		interval: time.Second,
		wait:     sleepContext,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Geocode converts a spot name, "lat,lon" literal or place name to coordinates
func (g *Geocoder) Geocode(ctx context.Context, query string) (*Location, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("query cannot be empty")
	}

	if g.spots != nil {
		spot, err := g.spots.GetSpot(ctx, query)
		switch {
		case err == nil:
			return &Location{Latitude: spot.Latitude, Longitude: spot.Longitude, Name: spot.Name, Style: spot.Style}, nil
		case !errors.Is(err, spots.ErrSpotNotFound):
			return nil, fmt.Errorf("looking up spot: %w", err)
		}
	}

	if lat, lon, ok := ParseCoordinates(query); ok {
		return g.nameCoordinates(ctx, lat, lon), nil
	}

	return g.search(ctx, query)
}

// nameCoordinates labels a literal position with the nearest spot, if any is close
func (g *Geocoder) nameCoordinates(ctx context.Context, lat, lon float64) *Location {
	loc := &Location{
		Latitude:  lat,
		Longitude: lon,
		Name:      fmt.Sprintf("%.4f, %.4f", lat, lon),
	}
	if g.spots == nil {
		return loc
	}

	spot, dist, err := g.spots.NearestSpot(ctx, lat, lon, NearbySpotRadiusKm)
	if err != nil {
		if !errors.Is(err, spots.ErrSpotNotFound) {
			g.logger.Warn("nearest_spot_failed", zap.Error(err))
		}
		return loc
	}
	g.logger.Debug("coordinates_named", zap.String("spot", spot.Name), zap.Float64("distance_km", dist))
	loc.Name = spot.Name
	loc.Style = spot.Style
	return loc
}

func (g *Geocoder) search(ctx context.Context, query string) (*Location, error) {
	if g.client == nil {
		return nil, fmt.Errorf("%w for '%s'", ErrNoResults, query)
	}

	if err := g.throttle(ctx); err != nil {
		return nil, err
	}

	places, err := g.client.Search(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("geocoding %s: %w", query, err)
	}
	if len(places) == 0 {
		return nil, fmt.Errorf("%w for '%s'", ErrNoResults, query)
	}

	best := places[0]
	return &Location{
		Latitude:  best.Latitude,
		Longitude: best.Longitude,
		Name:      best.Name,
	}, nil
}

// throttle keeps remote lookups at least interval apart
func (g *Geocoder) throttle(ctx context.Context) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.lastCall.IsZero() {
		if elapsed := time.Since(g.lastCall); elapsed < g.interval {
			if err := g.wait(ctx, g.interval-elapsed); err != nil {
				return err
			}
		}
	}
	g.lastCall = time.Now()
	return nil
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
