package models

// Category is the bite-activity bucket derived from the star rating
type Category int

const (
	CategoryLowActivity Category = iota
	CategoryModerate
	CategoryHighActivity
	CategoryOptimal
)

var categoryNames = map[Category]string{
	CategoryLowActivity:  "low_activity",
	CategoryModerate:     "moderate",
	CategoryHighActivity: "high_activity",
	CategoryOptimal:      "optimal",
}

// Display strings shown to the angler. Every category maps here exactly once.
var categoryText = map[Category]string{
	CategoryLowActivity:  "低活性：粘りの釣り",
	CategoryModerate:     "まずまず：チャンスあり",
	CategoryHighActivity: "高活性：期待大",
	CategoryOptimal:      "時合到来：今が勝負",
}

// String returns a stable identifier for the category
func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return "unknown"
}

// Text returns the display string for the category
func (c Category) Text() string {
	return categoryText[c]
}

// MarshalText implements encoding.TextMarshaler
func (c Category) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// CategoryForStars maps a 1-5 rating to a category
func CategoryForStars(stars int) Category {
	switch {
	case stars >= 5:
		return CategoryOptimal
	case stars == 4:
		return CategoryHighActivity
	case stars >= 2:
		return CategoryModerate
	default:
		return CategoryLowActivity
	}
}

// SafetyLevel grades sea conditions for the boat, driven by wind
type SafetyLevel int

const (
	SafetyGood SafetyLevel = iota
	SafetyCaution
	SafetyDanger
)

// String returns a stable identifier for the safety level
func (s SafetyLevel) String() string {
	switch s {
	case SafetyCaution:
		return "caution"
	case SafetyDanger:
		return "danger"
	default:
		return "good"
	}
}

// MarshalText implements encoding.TextMarshaler
func (s SafetyLevel) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// AdviceScore is the star rating for one sample
type AdviceScore struct {
	Stars        int      `json:"stars"`      // always within 1-5
	TideDelta    float64  `json:"tide_delta"` // cm/h, positive on the flood
	Category     Category `json:"category"`
	CategoryText string   `json:"category_text"`
}

// Trend returns the tide direction behind the score
func (a AdviceScore) Trend() TideTrend {
	return TrendOf(a.TideDelta)
}

// Advice is the canned text selected for a score
type Advice struct {
	Safety       SafetyLevel  `json:"safety"`
	Headline     string       `json:"headline"`
	Trend        TideTrend    `json:"trend"`
	TrendText    string       `json:"trend_text"`
	Strength     TideStrength `json:"strength"`
	TideStrategy string       `json:"tide_strategy"`
	DepthNote    string       `json:"depth_note"`
	WindNote     string       `json:"wind_note"`
	PressureNote string       `json:"pressure_note"`
	WaveNote     string       `json:"wave_note"`
	Caption      string       `json:"caption"`
}
