package models

import (
	"fmt"
	"time"
)

// DateLayout is the calendar date format used for seeds, API queries and flags
const DateLayout = "2006-01-02"

// Request carries everything one dashboard render needs.
// It replaces session-held defaults and is passed explicitly to the sampler and scorer.
type Request struct {
	Location  string    `json:"location"` // Place name, also the simulation seed
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Date      time.Time `json:"date"`
	Hour      int       `json:"hour"`  // 0-23 local time
	Style     string    `json:"style"` // Fishing style, e.g. "タイラバ"
	Simulate  bool      `json:"simulate"`
}

// DateKey returns the request date as YYYY-MM-DD
func (r Request) DateKey() string {
	return r.Date.Format(DateLayout)
}

// ClampedHour returns Hour forced into 0-23
func (r Request) ClampedHour() int {
	switch {
	case r.Hour < 0:
		return 0
	case r.Hour > 23:
		return 23
	default:
		return r.Hour
	}
}

// Coordinates formats the request position for captions
func (r Request) Coordinates() string {
	return fmt.Sprintf("%.2f, %.2f", r.Latitude, r.Longitude)
}

// ParseDate parses a YYYY-MM-DD date in loc
func ParseDate(value string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	d, err := time.ParseInLocation(DateLayout, value, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing date %q: %w", value, err)
	}
	return d, nil
}
