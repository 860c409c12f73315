package models

// TideTrend is the direction the water is moving at the sampled hour
type TideTrend string

const (
	TideRising  TideTrend = "rising"
	TideFalling TideTrend = "falling"
)

// TideStrength buckets how hard the tide is running
type TideStrength int

const (
	TideSlack TideStrength = iota
	TideModerate
	TideStrong
)

// String returns a stable identifier for the strength
func (s TideStrength) String() string {
	switch s {
	case TideModerate:
		return "moderate"
	case TideStrong:
		return "strong"
	default:
		return "slack"
	}
}

// MarshalText implements encoding.TextMarshaler
func (s TideStrength) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// TideSeries holds hourly tide levels in metres. Index 0 is local midnight of the sampled date.
type TideSeries []float64

// Level returns the tide level at hour, or 0 if hour is outside the series
func (s TideSeries) Level(hour int) float64 {
	if hour < 0 || hour >= len(s) {
		return 0
	}
	return s[hour]
}

// Delta returns the hourly rate of change at hour in cm/h.
// It is the forward difference to hour+1; at the last index it falls back to the backward difference.
func (s TideSeries) Delta(hour int) float64 {
	if len(s) < 2 {
		return 0
	}
	if hour < 0 {
		hour = 0
	}
	if hour >= len(s) {
		hour = len(s) - 1
	}
	if hour+1 < len(s) {
		return (s[hour+1] - s[hour]) * 100
	}
	return (s[hour] - s[hour-1]) * 100
}

// TrendOf maps a signed tide delta to a trend. Zero counts as falling.
func TrendOf(delta float64) TideTrend {
	if delta > 0 {
		return TideRising
	}
	return TideFalling
}
