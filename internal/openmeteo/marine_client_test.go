package openmeteo

import (
	"context"
	"math"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"
)

func TestNewMarineClient(t *testing.T) {
	client := NewMarineClient()

	if client == nil {
		t.Fatal("NewMarineClient() returned nil")
	}

	if client.opts.baseURL != "https://marine-api.open-meteo.com/v1/marine" {
		t.Errorf("baseURL = %s, unexpected value", client.opts.baseURL)
	}

	if client.opts.timeout != 5*time.Second {
		t.Errorf("timeout = %v, want 5s", client.opts.timeout)
	}

	custom := NewMarineClient(WithTimeout(3*time.Second), WithBaseURL("http://example.test"))
	if custom.opts.timeout != 3*time.Second || custom.opts.baseURL != "http://example.test" {
		t.Errorf("options not applied: %+v", custom.opts)
	}
}

func TestOpenMeteoMarineClient_GetMarineHourly(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		if query.Get("hourly") != "sea_level_height_msl,wave_height" {
			t.Errorf("hourly param = %s", query.Get("hourly"))
		}
		if query.Get("start_date") != "2024-06-01" {
			t.Errorf("start_date param = %s, want 2024-06-01", query.Get("start_date"))
		}
		if query.Get("end_date") != "2024-06-02" {
			t.Errorf("end_date param = %s, want 2024-06-02", query.Get("end_date"))
		}
		if query.Get("timezone") != "Asia/Tokyo" {
			t.Errorf("timezone param = %s, want Asia/Tokyo", query.Get("timezone"))
		}
		if r.Header.Get("User-Agent") == "" {
			t.Error("User-Agent header not set")
		}

		w.Header().Set("Content-Type", "application/json")
		data, _ := os.ReadFile("testdata/marine_response.json")
		w.Write(data)
	}))
	defer server.Close()

	client := NewMarineClient(WithBaseURL(server.URL))

	start := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	hourly, err := client.GetMarineHourly(context.Background(), HourlyQuery{
		Latitude:  35.2561,
		Longitude: 139.7452,
		StartDate: start,
		EndDate:   start.AddDate(0, 0, 1),
		Timezone:  "Asia/Tokyo",
	})
	if err != nil {
		t.Fatalf("GetMarineHourly() error = %v", err)
	}

	if len(hourly.Times) != 48 {
		t.Errorf("len(Times) = %d, want 48", len(hourly.Times))
	}

	series, ok := hourly.Series(FieldSeaLevel)
	if !ok {
		t.Fatal("sea level series missing")
	}
	if len(series) != 48 {
		t.Errorf("len(series) = %d, want 48", len(series))
	}
	if math.Abs(series[12]-(-0.18)) > 1e-9 {
		t.Errorf("series[12] = %v, want -0.18", series[12])
	}

	wave, ok := hourly.Value(FieldWaveHeight, 12)
	if !ok || math.Abs(wave-0.6) > 1e-9 {
		t.Errorf("wave[12] = %v (%v), want 0.6", wave, ok)
	}
}

func TestOpenMeteoMarineClient_ErrorHandling(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
	}{
		{"server error", http.StatusInternalServerError, "boom"},
		{"api error body", http.StatusOK, `{"error":true,"reason":"Latitude must be in range"}`},
		{"malformed json", http.StatusOK, `{"hourly":`},
		{"missing field", http.StatusOK, `{"hourly":{"time":["2024-06-01T00:00"],"wave_height":[0.5]}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer server.Close()

			client := NewMarineClient(WithBaseURL(server.URL))
			_, err := client.GetMarineHourly(context.Background(), HourlyQuery{
				StartDate: time.Now(),
				EndDate:   time.Now(),
			})
			if err == nil {
				t.Error("Expected error, got nil")
			}
		})
	}
}

func TestHourly_Gaps(t *testing.T) {
	v := 1.5
	h := &Hourly{Values: map[string][]*float64{
		FieldSeaLevel: {&v, nil, &v},
	}}

	series, ok := h.Series(FieldSeaLevel)
	if !ok || len(series) != 1 || series[0] != 1.5 {
		t.Errorf("Series() = %v, %v; want the prefix before the gap", series, ok)
	}

	leading := &Hourly{Values: map[string][]*float64{
		FieldSeaLevel: {nil, &v, &v},
	}}
	if _, ok := leading.Series(FieldSeaLevel); ok {
		t.Error("Series() should reject a field whose first hour is missing")
	}
	if _, ok := h.Value(FieldSeaLevel, 1); ok {
		t.Error("Value() should report a null hour as missing")
	}
	if got, ok := h.Value(FieldSeaLevel, 2); !ok || got != 1.5 {
		t.Errorf("Value(2) = %v, %v; want 1.5, true", got, ok)
	}
	if _, ok := h.Value(FieldPressure, 0); ok {
		t.Error("Value() should report an absent field as missing")
	}

	var nilHourly *Hourly
	if _, ok := nilHourly.Series(FieldSeaLevel); ok {
		t.Error("nil Hourly should have no series")
	}
}
