// Package openmeteo talks to the Open-Meteo marine, forecast and geocoding APIs.
package openmeteo

import (
	"context"
	"net/http"
	"time"
)

// Hourly field names requested from Open-Meteo
const (
	FieldSeaLevel   = "sea_level_height_msl" // metres, marine API
	FieldWaveHeight = "wave_height"          // metres, marine API
	FieldPressure   = "pressure_msl"         // hPa, forecast API
	FieldWindSpeed  = "wind_speed_10m"       // m/s with wind_speed_unit=ms, forecast API
)

const defaultUserAgent = "JiaiTerminal/1.0 (github.com/ngmaloney/jiai-terminal)"

// MarineClient defines the interface for fetching hourly sea state
type MarineClient interface {
	// GetMarineHourly retrieves tide level and wave height for each hour between start and end (inclusive dates)
	GetMarineHourly(ctx context.Context, query HourlyQuery) (*Hourly, error)
}

// ForecastClient defines the interface for fetching hourly weather
type ForecastClient interface {
	// GetForecastHourly retrieves surface pressure and wind speed for each hour between start and end
	GetForecastHourly(ctx context.Context, query HourlyQuery) (*Hourly, error)
}

// GeocodingClient defines the interface for resolving free-text place names
type GeocodingClient interface {
	// Search returns candidate places for a name, best match first
	Search(ctx context.Context, name string) ([]Place, error)
}

// HourlyQuery selects the position and date range of an hourly request
type HourlyQuery struct {
	Latitude  float64
	Longitude float64
	StartDate time.Time
	EndDate   time.Time
	Timezone  string // IANA name, e.g. "Asia/Tokyo"
}

// Option customizes a client
type Option func(*options)

type options struct {
	baseURL   string
	timeout   time.Duration
	userAgent string
	transport http.RoundTripper
}

// WithBaseURL points the client at a different endpoint
func WithBaseURL(u string) Option {
	return func(o *options) {
		if u != "" {
			o.baseURL = u
		}
	}
}

// WithTimeout bounds every request made by the client
func WithTimeout(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.timeout = d
		}
	}
}

// WithUserAgent sets the User-Agent header
func WithUserAgent(ua string) Option {
	return func(o *options) {
		if ua != "" {
			o.userAgent = ua
		}
	}
}

// WithTransport replaces the HTTP transport
func WithTransport(rt http.RoundTripper) Option {
	return func(o *options) {
		o.transport = rt
	}
}

func buildOptions(baseURL string, opts []Option) options {
	o := options{
		baseURL:   baseURL,
		timeout:   5 * time.Second,
		userAgent: defaultUserAgent,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func (o options) httpClient() *http.Client {
	return &http.Client{
		Timeout:   o.timeout,
		Transport: o.transport,
	}
}
