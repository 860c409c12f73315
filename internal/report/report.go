// Package report runs geocode, sample, score and advise for one dashboard request.
package report

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ngmaloney/jiai-terminal/internal/advice"
	"github.com/ngmaloney/jiai-terminal/internal/geocoding"
	"github.com/ngmaloney/jiai-terminal/internal/models"
	"github.com/ngmaloney/jiai-terminal/internal/sampler"
)

// Geocoder resolves a place query
type Geocoder interface {
	Geocode(ctx context.Context, query string) (*geocoding.Location, error)
}

// Query is what a user asks for; Place is free text
type Query struct {
	Place    string
	Date     time.Time
	Hour     int
	Style    string // empty uses the spot's style, then the default
	Simulate bool
}

// Report is one rendered dashboard
type Report struct {
	ID          string                     `json:"id"`
	Request     models.Request             `json:"request"`
	Sample      models.EnvironmentalSample `json:"sample"`
	Score       models.AdviceScore         `json:"score"`
	Advice      models.Advice              `json:"advice"`
	Stars       string                     `json:"stars"`
	GeneratedAt time.Time                  `json:"generated_at"`
}

// Builder assembles reports
type Builder struct {
	geocoder     Geocoder
	sampler      sampler.Sampler
	scorer       *advice.Scorer
	defaultStyle string
	logger       *zap.Logger
	now          func() time.Time
}

// NewBuilder creates a report builder
func NewBuilder(g Geocoder, s sampler.Sampler, scorer *advice.Scorer, defaultStyle string, logger *zap.Logger) *Builder {
	if logger == nil {
		logger = zap.NewNop()
	}
	if scorer == nil {
		scorer = advice.DefaultScorer()
	}
	return &Builder{
		geocoder:     g,
		sampler:      s,
		scorer:       scorer,
		defaultStyle: defaultStyle,
		logger:       logger,
		now:          time.Now,
	}
}

// Build geocodes the query and produces a report. Only geocoding can fail.
func (b *Builder) Build(ctx context.Context, q Query) (*Report, error) {
	loc, err := b.geocoder.Geocode(ctx, q.Place)
	if err != nil {
		return nil, fmt.Errorf("resolving %q: %w", q.Place, err)
	}
	return b.ForLocation(ctx, loc, q), nil
}

// ForLocation produces a report for an already resolved location
func (b *Builder) ForLocation(ctx context.Context, loc *geocoding.Location, q Query) *Report {
	style := strings.TrimSpace(q.Style)
	if style == "" {
		style = loc.Style
	}
	if style == "" {
		style = b.defaultStyle
	}

	req := models.Request{
		Location:  loc.Name,
		Latitude:  loc.Latitude,
		Longitude: loc.Longitude,
		Date:      q.Date,
		Hour:      q.Hour,
		Style:     style,
		Simulate:  q.Simulate,
	}
	req.Hour = req.ClampedHour()

	id := uuid.NewString()
	log := b.logger.With(zap.String("request_id", id))

	sample := b.sampler.Sample(ctx, req)
	score := b.scorer.Score(sample)

	log.Info("report_built",
		zap.String("location", req.Location),
		zap.String("date", req.DateKey()),
		zap.Int("hour", req.Hour),
		zap.String("source", string(sample.Source)),
		zap.Int("stars", score.Stars),
		zap.Stringer("category", score.Category),
	)

	return &Report{
		ID:          id,
		Request:     req,
		Sample:      sample,
		Score:       score,
		Advice:      advice.Advise(req, sample, score),
		Stars:       advice.Stars(score.Stars),
		GeneratedAt: b.now(),
	}
}
