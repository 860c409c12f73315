package spots

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/ngmaloney/jiai-terminal/internal/database"
	"github.com/ngmaloney/jiai-terminal/internal/models"
)

// Service validates spot operations before they reach the repository
type Service struct {
	repo   *Repository
	logger *zap.Logger
}

// NewService creates a new spot service
func NewService(repo *Repository, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{repo: repo, logger: logger}
}

// OpenService opens the registry at dbPath and seeds the presets
func OpenService(ctx context.Context, dbPath string, logger *zap.Logger) (*Service, func() error, error) {
	db, err := database.Open(dbPath)
	if err != nil {
		return nil, nil, err
	}

	svc := NewService(NewRepository(db), logger)
	seeded, err := svc.repo.SeedPresets(ctx)
	if err != nil {
		db.Close()
		return nil, nil, err
	}
	if seeded > 0 {
		svc.logger.Info("presets_seeded", zap.Int("count", seeded), zap.String("db", dbPath))
	}

	return svc, db.Close, nil
}

// CreateSpot saves a user spot at the given position
func (s *Service) CreateSpot(ctx context.Context, name string, lat, lon float64, style string) (*models.Spot, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("spot name cannot be empty")
	}
	if !ValidCoordinates(lat, lon) {
		return nil, fmt.Errorf("coordinates out of range: %.4f, %.4f", lat, lon)
	}

	spot := &models.Spot{
		Name:      name,
		Latitude:  lat,
		Longitude: lon,
		Style:     strings.TrimSpace(style),
	}
	if err := s.repo.Save(ctx, spot); err != nil {
		return nil, err
	}

	s.logger.Info("spot_saved", zap.String("name", spot.Name), zap.Int64("id", spot.ID))
	return spot, nil
}

func (s *Service) ListSpots(ctx context.Context) ([]models.Spot, error) {
	return s.repo.List(ctx)
}

func (s *Service) GetSpot(ctx context.Context, name string) (*models.Spot, error) {
	return s.repo.Get(ctx, strings.TrimSpace(name))
}

func (s *Service) DeleteSpot(ctx context.Context, name string) error {
	if err := s.repo.Delete(ctx, strings.TrimSpace(name)); err != nil {
		return err
	}
	s.logger.Info("spot_deleted", zap.String("name", name))
	return nil
}

// NearestSpot returns the closest spot within radiusKm
func (s *Service) NearestSpot(ctx context.Context, lat, lon, radiusKm float64) (*models.Spot, float64, error) {
	return s.repo.Nearest(ctx, lat, lon, radiusKm)
}
