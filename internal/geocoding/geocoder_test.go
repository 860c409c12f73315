package geocoding

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ngmaloney/jiai-terminal/internal/database"
	"github.com/ngmaloney/jiai-terminal/internal/openmeteo"
	"github.com/ngmaloney/jiai-terminal/internal/spots"
)

type mockGeocodingClient struct {
	places []openmeteo.Place
	err    error
	calls  int
	last   string
}

func (m *mockGeocodingClient) Search(ctx context.Context, name string) ([]openmeteo.Place, error) {
	m.calls++
	m.last = name
	return m.places, m.err
}

func newSpotService(t *testing.T) *spots.Service {
	t.Helper()
	db, err := database.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	repo := spots.NewRepository(db)
	_, err = repo.SeedPresets(context.Background())
	require.NoError(t, err)
	return spots.NewService(repo, nil)
}

func TestGeocoder_EmptyQuery(t *testing.T) {
	g := NewGeocoder(nil, &mockGeocodingClient{})

	for _, q := range []string{"", "   ", "\t\n"} {
		_, err := g.Geocode(context.Background(), q)
		assert.Error(t, err, "query %q", q)
	}
}

func TestGeocoder_SpotShortcut(t *testing.T) {
	client := &mockGeocodingClient{}
	g := NewGeocoder(newSpotService(t), client)

	loc, err := g.Geocode(context.Background(), " 城ヶ島 ")
	require.NoError(t, err)

	assert.Equal(t, "城ヶ島", loc.Name)
	assert.Equal(t, "ジギング", loc.Style)
	assert.InDelta(t, 35.1344, loc.Latitude, 1e-9)
	assert.Zero(t, client.calls, "saved spots must not hit the API")
}

func TestGeocoder_CoordinateLiteral(t *testing.T) {
	client := &mockGeocodingClient{}
	g := NewGeocoder(newSpotService(t), client)
	ctx := context.Background()

	loc, err := g.Geocode(ctx, "35.22, 139.71")
	require.NoError(t, err)
	assert.Equal(t, "久里浜", loc.Name)
	assert.InDelta(t, 35.22, loc.Latitude, 1e-9)
	assert.InDelta(t, 139.71, loc.Longitude, 1e-9)

	loc, err = g.Geocode(ctx, "20,160")
	require.NoError(t, err)
	assert.Equal(t, "20.0000, 160.0000", loc.Name)
	assert.Empty(t, loc.Style)

	assert.Zero(t, client.calls)
}

func TestGeocoder_RemoteSearch(t *testing.T) {
	client := &mockGeocodingClient{places: []openmeteo.Place{
		{Name: "葉山町", Latitude: 35.2722, Longitude: 139.5861, Admin1: "神奈川県"},
		{Name: "葉山", Latitude: 0, Longitude: 0},
	}}
	g := NewGeocoder(newSpotService(t), client)

	loc, err := g.Geocode(context.Background(), "葉山")
	require.NoError(t, err)
	assert.Equal(t, "葉山町", loc.Name)
	assert.InDelta(t, 35.2722, loc.Latitude, 1e-9)
	assert.Equal(t, "葉山", client.last)
	assert.Equal(t, 1, client.calls)
}

func TestGeocoder_RemoteErrors(t *testing.T) {
	tests := []struct {
		name      string
		client    *mockGeocodingClient
		wantNoRes bool
	}{
		{"no results", &mockGeocodingClient{}, true},
		{"api failure", &mockGeocodingClient{err: fmt.Errorf("geocoding API returned status 500")}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGeocoder(nil, tt.client)
			_, err := g.Geocode(context.Background(), "NonexistentPlace")
			require.Error(t, err)
			assert.Equal(t, tt.wantNoRes, errors.Is(err, ErrNoResults))
		})
	}

	g := NewGeocoder(nil, nil)
	_, err := g.Geocode(context.Background(), "anything")
	assert.ErrorIs(t, err, ErrNoResults)
}

func TestGeocoder_RateLimit(t *testing.T) {
	client := &mockGeocodingClient{places: []openmeteo.Place{{Name: "葉山", Latitude: 35.27, Longitude: 139.58}}}
	g := NewGeocoder(nil, client)

	var waits []time.Duration
	g.wait = func(ctx context.Context, d time.Duration) error {
		waits = append(waits, d)
		return nil
	}

	ctx := context.Background()
	for i := 0; i < 3; i++ {
		_, err := g.Geocode(ctx, "葉山")
		require.NoError(t, err)
	}

	assert.Equal(t, 3, client.calls)
	require.Len(t, waits, 2, "first call should not wait")
	for _, w := range waits {
		assert.Greater(t, w, time.Duration(0))
		assert.LessOrEqual(t, w, time.Second)
	}
}

func TestGeocoder_RateLimitHonoursContext(t *testing.T) {
	client := &mockGeocodingClient{places: []openmeteo.Place{{Name: "葉山"}}}
	g := NewGeocoder(nil, client, WithMinInterval(time.Hour))

	_, err := g.Geocode(context.Background(), "葉山")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = g.Geocode(ctx, "葉山")
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, client.calls)
}
