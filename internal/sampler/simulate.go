package sampler

import (
	"context"
	"crypto/md5"
	"encoding/binary"
	"math"
	"time"

	"github.com/ngmaloney/jiai-terminal/internal/models"
)

// SeriesLength covers hours 0-24 so the delta at 23:00 has a forward neighbour
const SeriesLength = 25

// Simulator builds samples from a seed derived from the place and date
type Simulator struct {
	now func() time.Time
}

// NewSimulator creates a new simulator
func NewSimulator() *Simulator {
	return &Simulator{now: time.Now}
}

// Seed hashes location+date with MD5 and reduces the first four bytes modulo 1000
func Seed(location string, date time.Time) int {
	sum := md5.Sum([]byte(location + date.Format(models.DateLayout)))
	return int(binary.BigEndian.Uint32(sum[:4]) % 1000)
}

// SimulateTide returns level(t) = 1.0 + 0.8*sin(pi*t/6 + phase) for t = 0..24,
// with the phase spread over a full turn by the seed
func SimulateTide(seed int) models.TideSeries {
	phase := float64(seed) / 1000 * 2 * math.Pi
	series := make(models.TideSeries, SeriesLength)
	for t := range series {
		series[t] = 1.0 + 0.8*math.Sin(math.Pi*float64(t)/6+phase)
	}
	return series
}

// simulatedScalars derives wind, pressure and wave height as base + seed mod range
func simulatedScalars(seed int) (wind, pressure, wave float64) {
	wind = 1.0 + float64(seed%80)/10
	pressure = 1000 + float64(seed%25)
	wave = 0.3 + float64(seed%15)/10
	return wind, pressure, wave
}

// Sample implements Sampler
func (s *Simulator) Sample(ctx context.Context, req models.Request) models.EnvironmentalSample {
	seed := Seed(req.Location, req.Date)
	wind, pressure, wave := simulatedScalars(seed)

	return models.EnvironmentalSample{
		TideSeries: SimulateTide(seed),
		HourIndex:  req.ClampedHour(),
		WindSpeed:  wind,
		Pressure:   pressure,
		WaveHeight: wave,
		Source:     models.SourceSimulated,
		SampledAt:  s.now(),
	}
}
