// Package spots stores preset and user-saved fishing spots in sqlite.
package spots

import (
	"errors"
	"math"

	"github.com/ngmaloney/jiai-terminal/internal/models"
)

var (
	// ErrSpotNotFound is returned when no spot has the requested name or lies within range
	ErrSpotNotFound = errors.New("spot not found")
	// ErrPresetSpot is returned when deleting or overwriting a built-in spot
	ErrPresetSpot = errors.New("preset spots cannot be modified")
)

// Presets are seeded into every new registry
var Presets = []models.Spot{
	{Name: "観音崎", Latitude: 35.2561, Longitude: 139.7452, Style: "タイラバ", Preset: true},
	{Name: "城ヶ島", Latitude: 35.1344, Longitude: 139.6167, Style: "ジギング", Preset: true},
	{Name: "剱崎", Latitude: 35.1414, Longitude: 139.6772, Style: "タイラバ", Preset: true},
	{Name: "久里浜", Latitude: 35.2275, Longitude: 139.7206, Style: "タイラバ", Preset: true},
	{Name: "大原", Latitude: 35.2525, Longitude: 140.3911, Style: "ジギング", Preset: true},
	{Name: "勝山", Latitude: 35.1197, Longitude: 139.8331, Style: "タイラバ", Preset: true},
}

// ValidCoordinates reports whether lat/lon is a real position on the globe
func ValidCoordinates(lat, lon float64) bool {
	if math.IsNaN(lat) || math.IsNaN(lon) {
		return false
	}
	return lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180
}

// HaversineKm calculates the great-circle distance in kilometres between two points
func HaversineKm(lat1, lon1, lat2, lon2 float64) float64 {
	const earthRadiusKm = 6371.0

	lat1Rad := lat1 * math.Pi / 180
	lat2Rad := lat2 * math.Pi / 180
	deltaLat := (lat2 - lat1) * math.Pi / 180
	deltaLon := (lon2 - lon1) * math.Pi / 180

	a := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*
			math.Sin(deltaLon/2)*math.Sin(deltaLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}
