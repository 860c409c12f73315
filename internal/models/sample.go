package models

import "time"

// Source records which sampler path produced a sample
type Source string

const (
	SourceLive      Source = "live"      // Both Open-Meteo calls answered
	SourceSimulated Source = "simulated" // Seeded sine simulation was requested
	SourceFallback  Source = "fallback"  // Remote path failed, defaults were substituted
)

// EnvironmentalSample holds the conditions at one place and hour.
// It is built fresh for every request and never stored.
type EnvironmentalSample struct {
	TideSeries TideSeries `json:"tide_series"` // metres, hourly from local midnight
	HourIndex  int        `json:"hour_index"`  // 0-23, index into TideSeries
	WindSpeed  float64    `json:"wind_speed"`  // m/s
	Pressure   float64    `json:"pressure"`    // hPa
	WaveHeight float64    `json:"wave_height"` // metres
	Source     Source     `json:"source"`
	SampledAt  time.Time  `json:"sampled_at"`
}

// TideDelta returns the signed tide rate at the sampled hour in cm/h
func (s *EnvironmentalSample) TideDelta() float64 {
	return s.TideSeries.Delta(s.HourIndex)
}

// TideLevel returns the tide level at the sampled hour in metres
func (s *EnvironmentalSample) TideLevel() float64 {
	return s.TideSeries.Level(s.HourIndex)
}

// IsLive reports whether the sample came entirely from the remote APIs
func (s *EnvironmentalSample) IsLive() bool {
	return s.Source == SourceLive
}
