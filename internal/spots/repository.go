package spots

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/ngmaloney/jiai-terminal/internal/models"
)

// Repository handles persistence for fishing spots
type Repository struct {
	db  *sql.DB
	now func() time.Time
}

// NewRepository creates a repository on an open database (see database.Open)
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db, now: time.Now}
}

// SeedPresets inserts the built-in spots that are not present yet
func (r *Repository) SeedPresets(ctx context.Context) (int, error) {
	seeded := 0
	for _, p := range Presets {
		res, err := r.db.ExecContext(ctx,
			`INSERT OR IGNORE INTO spots (name, latitude, longitude, style, preset, created_at) VALUES (?, ?, ?, ?, 1, ?)`,
			p.Name, p.Latitude, p.Longitude, p.Style, r.now(),
		)
		if err != nil {
			return seeded, fmt.Errorf("seeding preset %s: %w", p.Name, err)
		}
		if n, err := res.RowsAffected(); err == nil {
			seeded += int(n)
		}
	}
	return seeded, nil
}

const spotColumns = "id, name, latitude, longitude, style, preset, created_at"

func scanSpot(row interface{ Scan(...any) error }) (models.Spot, error) {
	var s models.Spot
	var preset int
	if err := row.Scan(&s.ID, &s.Name, &s.Latitude, &s.Longitude, &s.Style, &preset, &s.CreatedAt); err != nil {
		return s, err
	}
	s.Preset = preset != 0
	return s, nil
}

// List returns every spot, presets first, then by name
func (r *Repository) List(ctx context.Context) ([]models.Spot, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT "+spotColumns+" FROM spots ORDER BY preset DESC, name")
	if err != nil {
		return nil, fmt.Errorf("querying spots: %w", err)
	}
	defer rows.Close()

	var spots []models.Spot
	for rows.Next() {
		s, err := scanSpot(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning spot: %w", err)
		}
		spots = append(spots, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating spots: %w", err)
	}

	return spots, nil
}

// Get returns the spot with the exact name
func (r *Repository) Get(ctx context.Context, name string) (*models.Spot, error) {
	row := r.db.QueryRowContext(ctx, "SELECT "+spotColumns+" FROM spots WHERE name = ?", name)
	s, err := scanSpot(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrSpotNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("getting spot %s: %w", name, err)
	}
	return &s, nil
}

// Save inserts a user spot or updates the one with the same name.
// Presets cannot be overwritten.
func (r *Repository) Save(ctx context.Context, spot *models.Spot) error {
	existing, err := r.Get(ctx, spot.Name)
	switch {
	case err == nil && existing.Preset:
		return fmt.Errorf("%w: %s", ErrPresetSpot, spot.Name)
	case err != nil && !errors.Is(err, ErrSpotNotFound):
		return err
	}

	if spot.CreatedAt.IsZero() {
		spot.CreatedAt = r.now()
	}

	query := `
		INSERT INTO spots (name, latitude, longitude, style, preset, created_at)
		VALUES (?, ?, ?, ?, 0, ?)
		ON CONFLICT(name) DO UPDATE SET
			latitude = excluded.latitude,
			longitude = excluded.longitude,
			style = excluded.style,
			created_at = excluded.created_at
	`
	if _, err := r.db.ExecContext(ctx, query, spot.Name, spot.Latitude, spot.Longitude, spot.Style, spot.CreatedAt); err != nil {
		return fmt.Errorf("saving spot: %w", err)
	}

	// LastInsertId is unreliable on the update path
	if err := r.db.QueryRowContext(ctx, "SELECT id FROM spots WHERE name = ?", spot.Name).Scan(&spot.ID); err != nil {
		return fmt.Errorf("reading spot id: %w", err)
	}
	spot.Preset = false

	return nil
}

// Delete removes a user spot by name
func (r *Repository) Delete(ctx context.Context, name string) error {
	existing, err := r.Get(ctx, name)
	if err != nil {
		return err
	}
	if existing.Preset {
		return fmt.Errorf("%w: %s", ErrPresetSpot, name)
	}

	if _, err := r.db.ExecContext(ctx, "DELETE FROM spots WHERE id = ?", existing.ID); err != nil {
		return fmt.Errorf("deleting spot: %w", err)
	}
	return nil
}

// Nearest returns the closest spot within radiusKm and its distance
func (r *Repository) Nearest(ctx context.Context, lat, lon, radiusKm float64) (*models.Spot, float64, error) {
	// Bounding box prefilter: one degree of latitude is about 111 km.
	// Longitude degrees shrink towards the poles, so the box is widened generously.
	margin := radiusKm / 111.0 * 1.5
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+spotColumns+" FROM spots WHERE latitude BETWEEN ? AND ? AND longitude BETWEEN ? AND ?",
		lat-margin, lat+margin, lon-margin*2, lon+margin*2,
	)
	if err != nil {
		return nil, 0, fmt.Errorf("querying nearby spots: %w", err)
	}
	defer rows.Close()

	type candidate struct {
		spot     models.Spot
		distance float64
	}
	var candidates []candidate
	for rows.Next() {
		s, err := scanSpot(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scanning spot: %w", err)
		}
		if d := HaversineKm(lat, lon, s.Latitude, s.Longitude); d <= radiusKm {
			candidates = append(candidates, candidate{spot: s, distance: d})
		}
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterating spots: %w", err)
	}

	if len(candidates) == 0 {
		return nil, 0, fmt.Errorf("%w: none within %.0f km of %.4f, %.4f", ErrSpotNotFound, radiusKm, lat, lon)
	}

	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].distance < candidates[j].distance
	})
	best := candidates[0]
	return &best.spot, best.distance, nil
}
