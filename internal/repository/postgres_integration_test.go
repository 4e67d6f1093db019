//go:build integration

package repository

import (
	"context"
	"testing"

	"delivery-service/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/jackc/pgx/v5/pgxpool"
)

func setupTestDatabase(t *testing.T) *pgxpool.Pool {
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_DB":       "testdb",
			"POSTGRES_USER":     "testuser",
			"POSTGRES_PASSWORD": "testpass",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").WithOccurrence(2),
	}

	postgresC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	t.Cleanup(func() {
		postgresC.Terminate(ctx)
	})

	host, err := postgresC.Host(ctx)
	require.NoError(t, err)

	port, err := postgresC.MappedPort(ctx, "5432")
	require.NoError(t, err)

	connString := "postgres://testuser:testpass@" + host + ":" + port.Port() + "/testdb?sslmode=disable"

	pool, err := pgxpool.New(ctx, connString)
	require.NoError(t, err)

	t.Cleanup(func() {
		pool.Close()
	})

	require.NoError(t, NewRepository(pool).InitSchema(ctx))

	_, err = pool.Exec(ctx, `
		INSERT INTO locations (country, city, postal_code, address, latitude, longitude) VALUES
		('Netherlands', 'Delft', '2628 CD', 'Mekelweg 4', 51.99882, 4.37354),
		('Netherlands', 'Den Haag', '2512 XW', 'Glasblazerslaan 83a', 52.07219, 4.30700);
	`)
	require.NoError(t, err)

	return pool
}

func TestPostgresRepository_FindCoordinate(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test")
	}

	pool := setupTestDatabase(t)
	repo := NewRepository(pool)
	ctx := context.Background()

	tests := []struct {
		name     string
		key      models.LocationKey
		expected models.Coordinate
		found    bool
	}{
		{
			name:     "exact match",
			key:      models.NewLocationKey("Netherlands", "Delft", "2628 CD", "Mekelweg 4"),
			expected: models.Coordinate{Latitude: 51.99882, Longitude: 4.37354},
			found:    true,
		},
		{
			name:  "case differs",
			key:   models.NewLocationKey("Netherlands", "Delft", "2628 cd", "Mekelweg 4"),
			found: false,
		},
		{
			name:  "unknown address",
			key:   models.NewLocationKey("Netherlands", "Delft", "2628 CD", "Mekelweg 400"),
			found: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			coord, found, err := repo.FindCoordinate(ctx, tt.key)
			require.NoError(t, err)
			assert.Equal(t, tt.found, found)
			assert.Equal(t, tt.expected, coord)
		})
	}
}

func TestPostgresRepository_PutAndDeleteCoordinate(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test")
	}

	pool := setupTestDatabase(t)
	repo := NewRepository(pool)
	ctx := context.Background()
	key := models.NewLocationKey("Netherlands", "Delft", "2628 CD", "Mekelweg 4")

	moved := models.Coordinate{Latitude: 52.0, Longitude: 4.4}
	require.NoError(t, repo.PutCoordinate(ctx, key, moved))

	coord, found, err := repo.FindCoordinate(ctx, key)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, moved, coord)

	require.NoError(t, repo.DeleteCoordinate(ctx, key))
	_, found, err = repo.FindCoordinate(ctx, key)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestPostgresRepository_Radii(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test")
	}

	pool := setupTestDatabase(t)
	repo := NewRepository(pool)
	ctx := context.Background()

	_, found, err := repo.FindRadius(ctx, models.DefaultRadiusVendorID)
	require.NoError(t, err)
	assert.False(t, found)

	_, err = repo.SaveRadius(ctx, models.RadiusVendorPair{VendorID: models.DefaultRadiusVendorID, Radius: 55})
	require.NoError(t, err)
	saved, err := repo.SaveRadius(ctx, models.RadiusVendorPair{VendorID: models.DefaultRadiusVendorID, Radius: 45})
	require.NoError(t, err)
	assert.Equal(t, models.RadiusVendorPair{VendorID: models.DefaultRadiusVendorID, Radius: 45}, saved)

	_, err = repo.SaveRadius(ctx, models.RadiusVendorPair{VendorID: 3, Radius: 10000})
	require.NoError(t, err)

	exists, err := repo.RadiusExists(ctx, 3)
	require.NoError(t, err)
	assert.True(t, exists)

	pairs, err := repo.ListRadii(ctx)
	require.NoError(t, err)
	assert.Equal(t, []models.RadiusVendorPair{
		{VendorID: models.DefaultRadiusVendorID, Radius: 45},
		{VendorID: 3, Radius: 10000},
	}, pairs)

	_, err = repo.SaveRadius(ctx, models.RadiusVendorPair{VendorID: 4, Radius: -1})
	assert.Error(t, err)
}
