package service

import (
	"context"
	"fmt"

	"delivery-service/internal/geo"
	"delivery-service/internal/models"
)

// RadiusStore persists delivery radii keyed by vendor id
type RadiusStore interface {
	FindRadius(ctx context.Context, vendorID int64) (models.RadiusVendorPair, bool, error)
	SaveRadius(ctx context.Context, pair models.RadiusVendorPair) (models.RadiusVendorPair, error)
	ListRadii(ctx context.Context) ([]models.RadiusVendorPair, error)
	RadiusExists(ctx context.Context, vendorID int64) (bool, error)
}

// Geocoder resolves an address to a coordinate
type Geocoder interface {
	Geocode(ctx context.Context, loc models.Location) (models.Coordinate, error)
}

// RadiusService resolves vendor delivery radii and checks whether a customer
// falls inside them
type RadiusService struct {
	radii    RadiusStore
	geocoder Geocoder
}

// NewRadiusService creates a new radius service
func NewRadiusService(radii RadiusStore, geocoder Geocoder) *RadiusService {
	return &RadiusService{radii: radii, geocoder: geocoder}
}

// GetRadiusVendorPair returns the vendor's own pair, else the default pair.
// The boolean is false when neither is stored.
func (s *RadiusService) GetRadiusVendorPair(ctx context.Context, vendorID int64) (models.RadiusVendorPair, bool, error) {
	pair, found, err := s.radii.FindRadius(ctx, vendorID)
	if err != nil {
		return models.RadiusVendorPair{}, false, fmt.Errorf("service: failed to find radius for vendor %d: %w", vendorID, err)
	}
	if found {
		return pair, true, nil
	}

	return s.DefaultRadius(ctx)
}

// SaveRadiusVendorPair upserts pair and returns what was stored
func (s *RadiusService) SaveRadiusVendorPair(ctx context.Context, pair models.RadiusVendorPair) (models.RadiusVendorPair, error) {
	if pair.Radius < 0 {
		return models.RadiusVendorPair{}, models.ErrInvalidRadius
	}

	saved, err := s.radii.SaveRadius(ctx, pair)
	if err != nil {
		return models.RadiusVendorPair{}, fmt.Errorf("service: failed to save radius for vendor %d: %w", pair.VendorID, err)
	}
	return saved, nil
}

// ListRadiusVendorPairs returns every stored pair, the default pair included
func (s *RadiusService) ListRadiusVendorPairs(ctx context.Context) ([]models.RadiusVendorPair, error) {
	pairs, err := s.radii.ListRadii(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list radii: %w", err)
	}
	return pairs, nil
}

// Exists reports whether vendorID has a pair of its own
func (s *RadiusService) Exists(ctx context.Context, vendorID int64) (bool, error) {
	exists, err := s.radii.RadiusExists(ctx, vendorID)
	if err != nil {
		return false, fmt.Errorf("service: failed to check radius for vendor %d: %w", vendorID, err)
	}
	return exists, nil
}

// DefaultRadius returns the app-wide default pair only
func (s *RadiusService) DefaultRadius(ctx context.Context) (models.RadiusVendorPair, bool, error) {
	pair, found, err := s.radii.FindRadius(ctx, models.DefaultRadiusVendorID)
	if err != nil {
		return models.RadiusVendorPair{}, false, fmt.Errorf("service: failed to find default radius: %w", err)
	}
	return pair, found, nil
}

// SetDefaultRadius creates the default pair or updates its radius
func (s *RadiusService) SetDefaultRadius(ctx context.Context, radius int) (models.RadiusVendorPair, error) {
	if radius < 0 {
		return models.RadiusVendorPair{}, models.ErrInvalidRadius
	}

	pair, found, err := s.DefaultRadius(ctx)
	if err != nil {
		return models.RadiusVendorPair{}, err
	}
	if !found {
		pair = models.RadiusVendorPair{VendorID: models.DefaultRadiusVendorID}
	}
	pair.Radius = radius

	return s.SaveRadiusVendorPair(ctx, pair)
}

// EffectiveRadius is the radius a range check uses for vendorID: the first
// positive radius of the vendor pair, the default pair and FallbackRadiusMeters.
func (s *RadiusService) EffectiveRadius(ctx context.Context, vendorID int64) (int, error) {
	for _, id := range []int64{vendorID, models.DefaultRadiusVendorID} {
		pair, found, err := s.radii.FindRadius(ctx, id)
		if err != nil {
			return 0, fmt.Errorf("service: failed to find radius for vendor %d: %w", id, err)
		}
		if found && pair.Radius > 0 {
			return pair.Radius, nil
		}
	}
	return models.FallbackRadiusMeters, nil
}

// Evaluate geocodes the vendor and then the customer and compares their
// distance against the vendor's effective radius. Geocoding misses are
// returned as the unwrapped *models.LocationNotFoundError.
func (s *RadiusService) Evaluate(ctx context.Context, vendorID int64, customer, vendor models.Location) (models.RangeCheck, error) {
	radius, err := s.EffectiveRadius(ctx, vendorID)
	if err != nil {
		return models.RangeCheck{}, err
	}

	from, err := s.geocoder.Geocode(ctx, vendor)
	if err != nil {
		return models.RangeCheck{}, err
	}
	to, err := s.geocoder.Geocode(ctx, customer)
	if err != nil {
		return models.RangeCheck{}, err
	}

	distance := geo.DistanceMeters(from, to)

	return models.RangeCheck{
		InRange:           distance <= radius,
		DistanceMeters:    distance,
		RadiusMeters:      radius,
		TravelTimeMinutes: geo.TravelTimeMinutes(from, to, geo.BikeAverageSpeedKph),
	}, nil
}

// IsWithinRange reports whether customer lies inside vendorID's delivery area
func (s *RadiusService) IsWithinRange(ctx context.Context, vendorID int64, customer, vendor models.Location) (bool, error) {
	check, err := s.Evaluate(ctx, vendorID, customer, vendor)
	if err != nil {
		return false, err
	}
	return check.InRange, nil
}
