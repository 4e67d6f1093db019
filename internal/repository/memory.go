package repository

import (
	"context"
	"sync"

	"delivery-service/internal/models"
)

// MemoryRepository keeps geocoding, radius and courier location tables in
// process memory. It backs the dev profile and unit tests.
type MemoryRepository struct {
	mu sync.RWMutex

	coordinates map[models.LocationKey]models.Coordinate
	radii       map[int64]int
	radiusOrder []int64
	couriers    map[int64]models.LocationKey
}

// NewMemoryRepository creates an empty in-memory repository
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		coordinates: make(map[models.LocationKey]models.Coordinate),
		radii:       make(map[int64]int),
		couriers:    make(map[int64]models.LocationKey),
	}
}

func (r *MemoryRepository) FindCoordinate(_ context.Context, key models.LocationKey) (models.Coordinate, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	coord, ok := r.coordinates[key]
	return coord, ok, nil
}

func (r *MemoryRepository) PutCoordinate(_ context.Context, key models.LocationKey, coord models.Coordinate) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.coordinates[key] = coord
	return nil
}

func (r *MemoryRepository) DeleteCoordinate(_ context.Context, key models.LocationKey) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.coordinates, key)
	return nil
}

func (r *MemoryRepository) FindRadius(_ context.Context, vendorID int64) (models.RadiusVendorPair, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	radius, ok := r.radii[vendorID]
	if !ok {
		return models.RadiusVendorPair{}, false, nil
	}
	return models.RadiusVendorPair{VendorID: vendorID, Radius: radius}, true, nil
}

func (r *MemoryRepository) SaveRadius(_ context.Context, pair models.RadiusVendorPair) (models.RadiusVendorPair, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.radii[pair.VendorID]; !ok {
		r.radiusOrder = append(r.radiusOrder, pair.VendorID)
	}
	r.radii[pair.VendorID] = pair.Radius
	return pair, nil
}

// ListRadii returns pairs in the order they were first saved
func (r *MemoryRepository) ListRadii(_ context.Context) ([]models.RadiusVendorPair, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	pairs := make([]models.RadiusVendorPair, 0, len(r.radiusOrder))
	for _, id := range r.radiusOrder {
		pairs = append(pairs, models.RadiusVendorPair{VendorID: id, Radius: r.radii[id]})
	}
	return pairs, nil
}

func (r *MemoryRepository) RadiusExists(_ context.Context, vendorID int64) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.radii[vendorID]
	return ok, nil
}

func (r *MemoryRepository) FindCourierLocation(_ context.Context, courierID int64) (models.Location, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	key, ok := r.couriers[courierID]
	if !ok {
		return models.Location{}, false, nil
	}
	return key.Location(), true, nil
}

func (r *MemoryRepository) PutCourierLocation(_ context.Context, courierID int64, loc models.Location) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.couriers[courierID] = models.KeyOf(loc)
	return nil
}

func (r *MemoryRepository) DeleteCourierLocation(_ context.Context, courierID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.couriers, courierID)
	return nil
}
