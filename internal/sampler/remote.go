package sampler

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/ngmaloney/jiai-terminal/internal/models"
	"github.com/ngmaloney/jiai-terminal/internal/openmeteo"
)

// Remote samples Open-Meteo and falls back field by field.
// A single attempt is made per call; the clients' timeouts bound it.
type Remote struct {
	marine    openmeteo.MarineClient
	forecast  openmeteo.ForecastClient
	simulator *Simulator
	timezone  string
	logger    *zap.Logger
	now       func() time.Time
}

// RemoteOption customizes a Remote sampler
type RemoteOption func(*Remote)

// WithLogger sets the logger used for fallback warnings
func WithLogger(l *zap.Logger) RemoteOption {
	return func(r *Remote) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithTimezone sets the IANA zone sent to Open-Meteo so hourly index 0 is local midnight
func WithTimezone(tz string) RemoteOption {
	return func(r *Remote) {
		r.timezone = tz
	}
}

// NewRemote creates a remote sampler
func NewRemote(marine openmeteo.MarineClient, forecast openmeteo.ForecastClient, opts ...RemoteOption) *Remote {
	r := &Remote{
		marine:    marine,
		forecast:  forecast,
		simulator: NewSimulator(),
		timezone:  "Asia/Tokyo",
		logger:    zap.NewNop(),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Sample implements Sampler. Requests flagged Simulate skip the network entirely.
func (r *Remote) Sample(ctx context.Context, req models.Request) models.EnvironmentalSample {
	if req.Simulate {
		return r.simulator.Sample(ctx, req)
	}

	hour := req.ClampedHour()
	query := openmeteo.HourlyQuery{
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		StartDate: req.Date,
		EndDate:   req.Date.AddDate(0, 0, 1),
		Timezone:  r.timezone,
	}

	var (
		marineData, forecastData *openmeteo.Hourly
		marineErr, forecastErr   error
	)

	// Failures are kept per call so one API going down does not discard the other
	var g errgroup.Group
	g.Go(func() error {
		marineData, marineErr = r.marine.GetMarineHourly(ctx, query)
		return nil
	})
	g.Go(func() error {
		forecastData, forecastErr = r.forecast.GetForecastHourly(ctx, query)
		return nil
	})
	_ = g.Wait()

	log := r.logger.With(
		zap.String("location", req.Location),
		zap.String("date", req.DateKey()),
		zap.Int("hour", hour),
	)
	if marineErr != nil {
		log.Warn("marine_fetch_failed", zap.Error(marineErr))
	}
	if forecastErr != nil {
		log.Warn("forecast_fetch_failed", zap.Error(forecastErr))
	}

	sample := models.EnvironmentalSample{
		HourIndex: hour,
		Source:    models.SourceLive,
		SampledAt: r.now(),
	}

	// A gap after the first day only shortens the series
	if series, ok := marineData.Series(openmeteo.FieldSeaLevel); ok && len(series) >= 24 && hour < len(series) {
		sample.TideSeries = series
	} else {
		log.Warn("tide_series_unavailable", zap.String("fallback", "simulated"))
		sample.TideSeries = SimulateTide(Seed(req.Location, req.Date))
		sample.Source = models.SourceFallback
	}

	fill := func(h *openmeteo.Hourly, field string, def float64) float64 {
		if v, ok := h.Value(field, hour); ok {
			return v
		}
		log.Warn("field_unavailable", zap.String("field", field), zap.Float64("default", def))
		sample.Source = models.SourceFallback
		return def
	}
	sample.WaveHeight = fill(marineData, openmeteo.FieldWaveHeight, DefaultWaveHeight)
	sample.Pressure = fill(forecastData, openmeteo.FieldPressure, DefaultPressure)
	sample.WindSpeed = fill(forecastData, openmeteo.FieldWindSpeed, DefaultWindSpeed)

	log.Debug("sample_built",
		zap.String("source", string(sample.Source)),
		zap.Float64("tide_delta", sample.TideDelta()),
		zap.Float64("pressure", sample.Pressure),
		zap.Float64("wind", sample.WindSpeed),
	)

	return sample
}
