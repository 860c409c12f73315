// Package advice turns an environmental sample into a star rating and canned fishing advice.
package advice

import (
	"math"

	"github.com/ngmaloney/jiai-terminal/internal/config"
	"github.com/ngmaloney/jiai-terminal/internal/models"
)

// Star rating bounds
const (
	MinStars = 1
	MaxStars = 5
)

// Scorer rates samples with a fixed set of thresholds
type Scorer struct {
	cfg config.ScoringConfig
}

// NewScorer creates a scorer. Zero-valued thresholds are taken as given.
func NewScorer(cfg config.ScoringConfig) *Scorer {
	return &Scorer{cfg: cfg}
}

// DefaultScorer uses the stock thresholds
func DefaultScorer() *Scorer {
	return NewScorer(config.DefaultConfig().Scoring)
}

// Score computes the star rating for a sample. The result is always within 1-5.
func (s *Scorer) Score(sample models.EnvironmentalSample) models.AdviceScore {
	delta := sample.TideDelta()
	abs := math.Abs(delta)

	stars := s.cfg.Base
	if abs >= s.cfg.SweetSpotMinCm && abs <= s.cfg.SweetSpotMaxCm {
		stars += s.cfg.SweetSpotBonus
	}
	if sample.Pressure < s.cfg.LowPressure {
		stars++
		if sample.Pressure < s.cfg.VeryLowPressure {
			stars++
		}
	}
	if sample.WindSpeed >= s.cfg.WindMin && sample.WindSpeed <= s.cfg.WindMax {
		stars++
	}
	stars = clamp(stars)

	category := models.CategoryForStars(stars)
	return models.AdviceScore{
		Stars:        stars,
		TideDelta:    delta,
		Category:     category,
		CategoryText: category.Text(),
	}
}

func clamp(stars int) int {
	if stars < MinStars {
		return MinStars
	}
	if stars > MaxStars {
		return MaxStars
	}
	return stars
}
