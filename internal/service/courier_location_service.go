package service

import (
	"context"
	"fmt"

	"delivery-service/internal/models"
)

// CourierLocationStore keeps the last known address of each courier
type CourierLocationStore interface {
	FindCourierLocation(ctx context.Context, courierID int64) (models.Location, bool, error)
	PutCourierLocation(ctx context.Context, courierID int64, loc models.Location) error
	DeleteCourierLocation(ctx context.Context, courierID int64) error
}

// CourierLocationService reads and records courier positions
type CourierLocationService struct {
	store CourierLocationStore
}

// NewCourierLocationService creates a new courier location service
func NewCourierLocationService(store CourierLocationStore) *CourierLocationService {
	return &CourierLocationService{store: store}
}

// GetLocationOfCourier returns the courier's last known address
func (s *CourierLocationService) GetLocationOfCourier(ctx context.Context, courierID int64) (models.Location, error) {
	loc, found, err := s.store.FindCourierLocation(ctx, courierID)
	if err != nil {
		return models.Location{}, fmt.Errorf("service: failed to find courier location: %w", err)
	}
	if !found {
		return models.Location{}, &models.EntityNotFoundError{Entity: "PrivateCourier", ID: courierID}
	}
	return loc, nil
}

// SetLocationOfCourier records loc for the courier, or forgets it when loc is nil
func (s *CourierLocationService) SetLocationOfCourier(ctx context.Context, courierID int64, loc *models.Location) error {
	if loc == nil {
		if err := s.store.DeleteCourierLocation(ctx, courierID); err != nil {
			return fmt.Errorf("service: failed to remove courier location: %w", err)
		}
		return nil
	}

	if err := s.store.PutCourierLocation(ctx, courierID, *loc); err != nil {
		return fmt.Errorf("service: failed to store courier location: %w", err)
	}
	return nil
}
