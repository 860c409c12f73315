package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/ngmaloney/jiai-terminal/internal/advice"
	"github.com/ngmaloney/jiai-terminal/internal/config"
	"github.com/ngmaloney/jiai-terminal/internal/geocoding"
	"github.com/ngmaloney/jiai-terminal/internal/models"
	"github.com/ngmaloney/jiai-terminal/internal/openmeteo"
	"github.com/ngmaloney/jiai-terminal/internal/report"
	"github.com/ngmaloney/jiai-terminal/internal/sampler"
	"github.com/ngmaloney/jiai-terminal/internal/spots"
)

// app holds the wired services for one command invocation
type app struct {
	spots    *spots.Service
	geocoder *geocoding.Geocoder
	builder  *report.Builder
	closeDB  func() error
}

// newApp opens the spot registry and wires the Open-Meteo clients
func newApp(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*app, error) {
	spotService, closeDB, err := spots.OpenService(ctx, cfg.Database.Path, logger.Named("spots"))
	if err != nil {
		return nil, fmt.Errorf("opening spot registry: %w", err)
	}

	marine := openmeteo.NewMarineClient(clientOptions(cfg, cfg.API.MarineURL)...)
	forecast := openmeteo.NewForecastClient(clientOptions(cfg, cfg.API.ForecastURL)...)
	geo := openmeteo.NewGeocodingClient(clientOptions(cfg, cfg.API.GeocodingURL)...)

	remote := sampler.NewRemote(marine, forecast,
		sampler.WithLogger(logger.Named("sampler")),
		sampler.WithTimezone(cfg.Defaults.Timezone),
	)
	geocoder := geocoding.NewGeocoder(spotService, geo, geocoding.WithLogger(logger.Named("geocoding")))
	builder := report.NewBuilder(geocoder, remote, advice.NewScorer(cfg.Scoring), cfg.Defaults.Style, logger.Named("report"))

	return &app{
		spots:    spotService,
		geocoder: geocoder,
		builder:  builder,
		closeDB:  closeDB,
	}, nil
}

func (a *app) Close() error {
	return a.closeDB()
}

func clientOptions(cfg *config.Config, baseURL string) []openmeteo.Option {
	return []openmeteo.Option{
		openmeteo.WithBaseURL(baseURL),
		openmeteo.WithTimeout(cfg.GetAPITimeout()),
		openmeteo.WithUserAgent(cfg.API.UserAgent),
	}
}

// requestQuery turns the request flags into a query, defaulting to now in the dashboard zone
func requestQuery(cfg *config.Config, now time.Time) (report.Query, error) {
	loc := cfg.GetLocation()
	now = now.In(loc)

	q := report.Query{
		Place:    strings.TrimSpace(place),
		Hour:     hour,
		Style:    style,
		Simulate: simulate,
	}
	if q.Place == "" {
		q.Place = cfg.Defaults.Place
	}

	if date == "" {
		y, m, d := now.Date()
		q.Date = time.Date(y, m, d, 0, 0, 0, 0, loc)
	} else {
		parsed, err := models.ParseDate(date, loc)
		if err != nil {
			return q, err
		}
		q.Date = parsed
	}

	switch {
	case hour == -1:
		q.Hour = now.Hour()
	case hour < 0 || hour > 23:
		return q, fmt.Errorf("--hour must be between 0 and 23, got %d", hour)
	}

	return q, nil
}
