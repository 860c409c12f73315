package models

import "time"

// Spot is a named fishing location.
// Presets ship with the app; the rest are saved by the user.
type Spot struct {
	ID        int64     `json:"id"`    // Database primary key (0 if not saved)
	Name      string    `json:"name"`  // e.g. "観音崎"
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Style     string    `json:"style"` // Preferred fishing style, may be empty
	Preset    bool      `json:"preset"`
	CreatedAt time.Time `json:"created_at"`
}
