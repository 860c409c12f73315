package geocoding

import (
	"strconv"
	"strings"

	"github.com/ngmaloney/jiai-terminal/internal/spots"
)

// ParseCoordinates reads "lat,lon" (full-width comma and spaces allowed).
// NaN and values outside the valid ranges are rejected.
func ParseCoordinates(s string) (lat, lon float64, ok bool) {
	s = strings.ReplaceAll(s, "，", ",")
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return 0, 0, false
	}

	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return 0, 0, false
	}
	lon, err = strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return 0, 0, false
	}
	if !spots.ValidCoordinates(lat, lon) {
		return 0, 0, false
	}
	return lat, lon, true
}
