package openmeteo

import (
	"context"
	"net/url"
)

// OpenMeteoForecastClient implements ForecastClient using the Open-Meteo forecast API
type OpenMeteoForecastClient struct {
	opts options
}

// NewForecastClient creates a new forecast client
func NewForecastClient(opts ...Option) *OpenMeteoForecastClient {
	return &OpenMeteoForecastClient{
		opts: buildOptions("https://api.open-meteo.com/v1/forecast", opts),
	}
}

// GetForecastHourly retrieves hourly sea-level pressure and 10 m wind speed in m/s
func (c *OpenMeteoForecastClient) GetForecastHourly(ctx context.Context, query HourlyQuery) (*Hourly, error) {
	extra := url.Values{}
	extra.Add("wind_speed_unit", "ms")
	return fetchHourly(ctx, c.opts, query, []string{FieldPressure, FieldWindSpeed}, extra)
}
