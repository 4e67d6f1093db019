package repository

import (
	"context"
	"sync"
	"testing"

	"delivery-service/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var mekelweg4 = models.Location{Country: "Netherlands", City: "Delft", PostalCode: "2628 CD", Address: "Mekelweg 4"}

func TestMemoryRepository_Coordinates(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()
	key := models.KeyOf(mekelweg4)

	_, found, err := repo.FindCoordinate(ctx, key)
	require.NoError(t, err)
	assert.False(t, found)

	want := models.Coordinate{Latitude: 51.99882, Longitude: 4.37354}
	require.NoError(t, repo.PutCoordinate(ctx, key, want))

	got, found, err := repo.FindCoordinate(ctx, models.NewLocationKey("Netherlands", "Delft", "2628 CD", "Mekelweg 4"))
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, want, got)

	// Lookups are exact: a different city is a different address.
	_, found, err = repo.FindCoordinate(ctx, models.NewLocationKey("Netherlands", "delft", "2628 CD", "Mekelweg 4"))
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, repo.DeleteCoordinate(ctx, key))
	_, found, err = repo.FindCoordinate(ctx, key)
	require.NoError(t, err)
	assert.False(t, found)

	assert.NoError(t, repo.DeleteCoordinate(ctx, key))
}

func TestMemoryRepository_Radii(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	pairs, err := repo.ListRadii(ctx)
	require.NoError(t, err)
	assert.Empty(t, pairs)

	_, err = repo.SaveRadius(ctx, models.RadiusVendorPair{VendorID: 3, Radius: 1000})
	require.NoError(t, err)
	_, err = repo.SaveRadius(ctx, models.RadiusVendorPair{VendorID: models.DefaultRadiusVendorID, Radius: 5000})
	require.NoError(t, err)
	saved, err := repo.SaveRadius(ctx, models.RadiusVendorPair{VendorID: 3, Radius: 2000})
	require.NoError(t, err)
	assert.Equal(t, models.RadiusVendorPair{VendorID: 3, Radius: 2000}, saved)

	pair, found, err := repo.FindRadius(ctx, 3)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, 2000, pair.Radius)

	exists, err := repo.RadiusExists(ctx, 4)
	require.NoError(t, err)
	assert.False(t, exists)

	pairs, err = repo.ListRadii(ctx)
	require.NoError(t, err)
	assert.Equal(t, []models.RadiusVendorPair{
		{VendorID: 3, Radius: 2000},
		{VendorID: models.DefaultRadiusVendorID, Radius: 5000},
	}, pairs)
}

func TestMemoryRepository_CourierLocations(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	loc := mekelweg4
	require.NoError(t, repo.PutCourierLocation(ctx, 1, loc))

	// The stored value is a snapshot of the caller's struct.
	loc.Address = "Mekelweg 5"

	got, found, err := repo.FindCourierLocation(ctx, 1)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, mekelweg4, got)

	require.NoError(t, repo.DeleteCourierLocation(ctx, 1))
	_, found, err = repo.FindCourierLocation(ctx, 1)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestMemoryRepository_ConcurrentAccess(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(id int64) {
			defer wg.Done()
			_, _ = repo.SaveRadius(ctx, models.RadiusVendorPair{VendorID: id % 5, Radius: int(id)})
			_, _, _ = repo.FindRadius(ctx, id%5)
			_, _ = repo.ListRadii(ctx)
		}(int64(i))
	}
	wg.Wait()

	pairs, err := repo.ListRadii(ctx)
	require.NoError(t, err)
	assert.Len(t, pairs, 5)
}
