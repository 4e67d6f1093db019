package main

import (
	"context"
	"fmt"

	"delivery-service/internal/external"
	"delivery-service/internal/models"
)

type coordinateRegistry interface {
	SetLocationCoordinates(ctx context.Context, loc models.Location, coord *models.Coordinate) error
}

type courierLocator interface {
	SetLocationOfCourier(ctx context.Context, courierID int64, loc *models.Location) error
}

// seedFakeData registers the fake address table and places courier i+1 at address i
func seedFakeData(ctx context.Context, geocoding coordinateRegistry, couriers courierLocator) error {
	for i, entry := range external.FakeAddresses {
		loc, coord := entry.Location, entry.Coordinate
		if err := geocoding.SetLocationCoordinates(ctx, loc, &coord); err != nil {
			return fmt.Errorf("seed address %s: %w", loc, err)
		}
		if err := couriers.SetLocationOfCourier(ctx, int64(i+1), &loc); err != nil {
			return fmt.Errorf("seed courier %d: %w", i+1, err)
		}
	}
	return nil
}
