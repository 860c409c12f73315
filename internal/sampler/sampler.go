// Package sampler produces an EnvironmentalSample for a place, date and hour.
//
// Two paths share one contract: Remote asks Open-Meteo and silently degrades to
// defaults, Simulator derives a deterministic pseudo-tide from a hash of the
// place name and date. Neither path returns an error; the dashboard always has
// something to render.
package sampler

import (
	"context"

	"github.com/ngmaloney/jiai-terminal/internal/models"
)

// Defaults substituted when the remote path cannot supply a scalar
const (
	DefaultWindSpeed  = 3.0    // m/s
	DefaultPressure   = 1013.0 // hPa
	DefaultWaveHeight = 0.5    // m
)

// Sampler returns the conditions for a request
type Sampler interface {
	Sample(ctx context.Context, req models.Request) models.EnvironmentalSample
}
