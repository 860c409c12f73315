package openmeteo

import (
	"context"
)

// OpenMeteoMarineClient implements MarineClient using the Open-Meteo marine API
type OpenMeteoMarineClient struct {
	opts options
}

// NewMarineClient creates a new marine client
func NewMarineClient(opts ...Option) *OpenMeteoMarineClient {
	return &OpenMeteoMarineClient{
		opts: buildOptions("https://marine-api.open-meteo.com/v1/marine", opts),
	}
}

// GetMarineHourly retrieves hourly sea level and wave height
func (c *OpenMeteoMarineClient) GetMarineHourly(ctx context.Context, query HourlyQuery) (*Hourly, error) {
	return fetchHourly(ctx, c.opts, query, []string{FieldSeaLevel, FieldWaveHeight}, nil)
}
