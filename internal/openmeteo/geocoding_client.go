package openmeteo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

// Place is one geocoding candidate
type Place struct {
	Name      string
	Latitude  float64
	Longitude float64
	Country   string
	Admin1    string // prefecture / state
	Timezone  string
}

// DisplayName joins the place name with its prefecture when known
func (p Place) DisplayName() string {
	if p.Admin1 == "" || p.Admin1 == p.Name {
		return p.Name
	}
	return fmt.Sprintf("%s（%s）", p.Name, p.Admin1)
}

// OpenMeteoGeocodingClient implements GeocodingClient using the Open-Meteo geocoding API
type OpenMeteoGeocodingClient struct {
	opts     options
	language string
}

// NewGeocodingClient creates a new geocoding client returning Japanese names
func NewGeocodingClient(opts ...Option) *OpenMeteoGeocodingClient {
	o := buildOptions("https://geocoding-api.open-meteo.com/v1/search", opts)
	return &OpenMeteoGeocodingClient{
		opts:     o,
		language: "ja",
	}
}

// Search returns at most one candidate for name
func (c *OpenMeteoGeocodingClient) Search(ctx context.Context, name string) ([]Place, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("name cannot be empty")
	}

	params := url.Values{}
	params.Add("name", name)
	params.Add("count", "1")
	params.Add("language", c.language)
	params.Add("format", "json")

	reqURL := fmt.Sprintf("%s?%s", c.opts.baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, "GET", reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", c.opts.userAgent)

	resp, err := c.opts.httpClient().Do(req)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("geocoding API returned status %d", resp.StatusCode)
	}

	var searchResp geocodingResponse
	if err := json.NewDecoder(resp.Body).Decode(&searchResp); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}

	places := make([]Place, 0, len(searchResp.Results))
	for _, r := range searchResp.Results {
		places = append(places, Place{
			Name:      r.Name,
			Latitude:  r.Latitude,
			Longitude: r.Longitude,
			Country:   r.Country,
			Admin1:    r.Admin1,
			Timezone:  r.Timezone,
		})
	}
	return places, nil
}

// geocodingResponse represents the Open-Meteo search response. Results is absent when nothing matched.
type geocodingResponse struct {
	Results []struct {
		ID        int64   `json:"id"`
		Name      string  `json:"name"`
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
		Country   string  `json:"country"`
		Admin1    string  `json:"admin1"`
		Timezone  string  `json:"timezone"`
	} `json:"results"`
}
