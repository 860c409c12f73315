package advice

import "strings"

const (
	filledStar = "★"
	emptyStar  = "☆"
)

// Stars renders a 1-5 rating as filled and empty glyphs out of 5
func Stars(stars int) string {
	return StarsOutOf(stars, MaxStars)
}

// StarsOutOf renders the rating on a smaller scale, e.g. 3 for compact views.
// The rating is rescaled and rounded, and never drops below one filled star.
func StarsOutOf(stars, scale int) string {
	if scale <= 0 {
		return ""
	}
	stars = clamp(stars)
	filled := stars
	if scale != MaxStars {
		filled = (stars*scale + MaxStars/2) / MaxStars
		if filled < 1 {
			filled = 1
		}
		if filled > scale {
			filled = scale
		}
	}
	return strings.Repeat(filledStar, filled) + strings.Repeat(emptyStar, scale-filled)
}
