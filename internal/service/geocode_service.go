package service

import (
	"context"
	"fmt"

	"delivery-service/internal/models"

	"github.com/rs/zerolog/log"
)

// GeoCodeService resolves addresses to coordinates using exact lookups
type GeoCodeService struct {
	store GeocodingStore
}

// GeocodingStore is the address table the service reads and maintains
type GeocodingStore interface {
	FindCoordinate(ctx context.Context, key models.LocationKey) (models.Coordinate, bool, error)
	PutCoordinate(ctx context.Context, key models.LocationKey, coord models.Coordinate) error
	DeleteCoordinate(ctx context.Context, key models.LocationKey) error
}

// NewGeoCodeService creates a new geo code service
func NewGeoCodeService(store GeocodingStore) *GeoCodeService {
	return &GeoCodeService{store: store}
}

// Geocode returns the coordinate registered for loc. Unknown addresses yield
// a *models.LocationNotFoundError.
func (s *GeoCodeService) Geocode(ctx context.Context, loc models.Location) (models.Coordinate, error) {
	coord, found, err := s.store.FindCoordinate(ctx, models.KeyOf(loc))
	if err != nil {
		return models.Coordinate{}, fmt.Errorf("service: failed to look up coordinates: %w", err)
	}
	if !found {
		log.Debug().Str("location", loc.String()).Msg("no coordinates registered")
		return models.Coordinate{}, models.NewLocationNotFoundError(loc)
	}

	return coord, nil
}

// SetLocationCoordinates registers coord for loc, or removes the entry when coord is nil
func (s *GeoCodeService) SetLocationCoordinates(ctx context.Context, loc models.Location, coord *models.Coordinate) error {
	key := models.KeyOf(loc)

	if coord == nil {
		if err := s.store.DeleteCoordinate(ctx, key); err != nil {
			return fmt.Errorf("service: failed to remove coordinates: %w", err)
		}
		return nil
	}

	if err := coord.Validate(); err != nil {
		return fmt.Errorf("service: %w", err)
	}

	if err := s.store.PutCoordinate(ctx, key, *coord); err != nil {
		return fmt.Errorf("service: failed to store coordinates: %w", err)
	}
	return nil
}
