package openmeteo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/ngmaloney/jiai-terminal/internal/models"
)

// Hourly holds the parallel hourly arrays of an Open-Meteo response
type Hourly struct {
	Latitude  float64
	Longitude float64
	Timezone  string
	Times     []string
	Values    map[string][]*float64 // nil entries are hours the provider left empty
}

// Value returns field at index i, false when the field, index or value is missing
func (h *Hourly) Value(field string, i int) (float64, bool) {
	if h == nil {
		return 0, false
	}
	values, ok := h.Values[field]
	if !ok || i < 0 || i >= len(values) || values[i] == nil {
		return 0, false
	}
	return *values[i], true
}

// Series returns the field up to its first gap, false when it is absent or starts empty
func (h *Hourly) Series(field string) ([]float64, bool) {
	if h == nil {
		return nil, false
	}
	values, ok := h.Values[field]
	if !ok {
		return nil, false
	}
	series := make([]float64, 0, len(values))
	for _, v := range values {
		if v == nil {
			break
		}
		series = append(series, *v)
	}
	if len(series) == 0 {
		return nil, false
	}
	return series, true
}

// hourlyResponse is the envelope shared by the marine and forecast APIs
type hourlyResponse struct {
	Latitude  float64                    `json:"latitude"`
	Longitude float64                    `json:"longitude"`
	Timezone  string                     `json:"timezone"`
	Hourly    map[string]json.RawMessage `json:"hourly"`
	Error     bool                       `json:"error"`
	Reason    string                     `json:"reason"`
}

// fetchHourly runs one GET against an hourly endpoint and decodes the requested fields
func fetchHourly(ctx context.Context, o options, q HourlyQuery, fields []string, extra url.Values) (*Hourly, error) {
	params := url.Values{}
	params.Add("latitude", fmt.Sprintf("%.4f", q.Latitude))
	params.Add("longitude", fmt.Sprintf("%.4f", q.Longitude))
	params.Add("hourly", strings.Join(fields, ","))
	params.Add("start_date", q.StartDate.Format(models.DateLayout))
	params.Add("end_date", q.EndDate.Format(models.DateLayout))
	if q.Timezone != "" {
		params.Add("timezone", q.Timezone)
	}
	for k, vs := range extra {
		for _, v := range vs {
			params.Add(k, v)
		}
	}

	requestURL := fmt.Sprintf("%s?%s", o.baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, "GET", requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", o.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := o.httpClient().Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch hourly data: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("API returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var hourlyResp hourlyResponse
	if err := json.NewDecoder(resp.Body).Decode(&hourlyResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	if hourlyResp.Error {
		return nil, fmt.Errorf("API error: %s", hourlyResp.Reason)
	}

	hourly := &Hourly{
		Latitude:  hourlyResp.Latitude,
		Longitude: hourlyResp.Longitude,
		Timezone:  hourlyResp.Timezone,
		Values:    make(map[string][]*float64, len(fields)),
	}

	if raw, ok := hourlyResp.Hourly["time"]; ok {
		if err := json.Unmarshal(raw, &hourly.Times); err != nil {
			return nil, fmt.Errorf("failed to decode hourly time: %w", err)
		}
	}

	for _, field := range fields {
		raw, ok := hourlyResp.Hourly[field]
		if !ok {
			return nil, fmt.Errorf("response is missing hourly field %s", field)
		}
		var values []*float64
		if err := json.Unmarshal(raw, &values); err != nil {
			return nil, fmt.Errorf("failed to decode hourly %s: %w", field, err)
		}
		hourly.Values[field] = values
	}

	return hourly, nil
}
