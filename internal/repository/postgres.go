package repository

import (
	"context"
	"errors"
	"fmt"

	"delivery-service/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const schema = `
	CREATE TABLE IF NOT EXISTS locations (
		country     TEXT NOT NULL,
		city        TEXT NOT NULL,
		postal_code TEXT NOT NULL,
		address     TEXT NOT NULL,
		latitude    DOUBLE PRECISION NOT NULL,
		longitude   DOUBLE PRECISION NOT NULL,
		PRIMARY KEY (country, city, postal_code, address)
	);

	CREATE TABLE IF NOT EXISTS radius_vendor_pairs (
		vendor_id BIGINT PRIMARY KEY,
		radius    INTEGER NOT NULL CHECK (radius >= 0)
	);
`

// Repository implements the geocoding and radius stores for PostgreSQL
type Repository struct {
	db *pgxpool.Pool
}

// NewRepository creates a new PostgreSQL repository
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// InitSchema creates the tables used by the repository if they are missing
func (r *Repository) InitSchema(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, schema); err != nil {
		return fmt.Errorf("repository: failed to create schema: %w", err)
	}
	return nil
}

// FindCoordinate looks up the coordinate registered for an exact address
func (r *Repository) FindCoordinate(ctx context.Context, key models.LocationKey) (models.Coordinate, bool, error) {
	sql := `
		SELECT latitude, longitude
		FROM locations
		WHERE country = $1 AND city = $2 AND postal_code = $3 AND address = $4
	`

	var coord models.Coordinate
	err := r.db.QueryRow(ctx, sql, key.Country(), key.City(), key.PostalCode(), key.Address()).
		Scan(&coord.Latitude, &coord.Longitude)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Coordinate{}, false, nil
		}
		return models.Coordinate{}, false, fmt.Errorf("repository: failed to query coordinate: %w", err)
	}

	return coord, true, nil
}

// PutCoordinate inserts or replaces the coordinate for an address
func (r *Repository) PutCoordinate(ctx context.Context, key models.LocationKey, coord models.Coordinate) error {
	sql := `
		INSERT INTO locations (country, city, postal_code, address, latitude, longitude)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (country, city, postal_code, address)
		DO UPDATE SET latitude = EXCLUDED.latitude, longitude = EXCLUDED.longitude
	`

	_, err := r.db.Exec(ctx, sql, key.Country(), key.City(), key.PostalCode(), key.Address(), coord.Latitude, coord.Longitude)
	if err != nil {
		return fmt.Errorf("repository: failed to upsert coordinate: %w", err)
	}
	return nil
}

// DeleteCoordinate removes the coordinate for an address. Missing rows are not an error.
func (r *Repository) DeleteCoordinate(ctx context.Context, key models.LocationKey) error {
	sql := `
		DELETE FROM locations
		WHERE country = $1 AND city = $2 AND postal_code = $3 AND address = $4
	`

	if _, err := r.db.Exec(ctx, sql, key.Country(), key.City(), key.PostalCode(), key.Address()); err != nil {
		return fmt.Errorf("repository: failed to delete coordinate: %w", err)
	}
	return nil
}

// FindRadius returns the stored radius pair for a vendor id
func (r *Repository) FindRadius(ctx context.Context, vendorID int64) (models.RadiusVendorPair, bool, error) {
	pair := models.RadiusVendorPair{VendorID: vendorID}
	err := r.db.QueryRow(ctx, `SELECT radius FROM radius_vendor_pairs WHERE vendor_id = $1`, vendorID).Scan(&pair.Radius)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.RadiusVendorPair{}, false, nil
		}
		return models.RadiusVendorPair{}, false, fmt.Errorf("repository: failed to query radius: %w", err)
	}

	return pair, true, nil
}

// SaveRadius upserts a radius pair and returns the stored row
func (r *Repository) SaveRadius(ctx context.Context, pair models.RadiusVendorPair) (models.RadiusVendorPair, error) {
	sql := `
		INSERT INTO radius_vendor_pairs (vendor_id, radius)
		VALUES ($1, $2)
		ON CONFLICT (vendor_id) DO UPDATE SET radius = EXCLUDED.radius
		RETURNING vendor_id, radius
	`

	var saved models.RadiusVendorPair
	if err := r.db.QueryRow(ctx, sql, pair.VendorID, pair.Radius).Scan(&saved.VendorID, &saved.Radius); err != nil {
		return models.RadiusVendorPair{}, fmt.Errorf("repository: failed to upsert radius: %w", err)
	}

	return saved, nil
}

// ListRadii returns every stored pair, the default pair included
func (r *Repository) ListRadii(ctx context.Context) ([]models.RadiusVendorPair, error) {
	rows, err := r.db.Query(ctx, `SELECT vendor_id, radius FROM radius_vendor_pairs ORDER BY vendor_id`)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to list radii: %w", err)
	}
	defer rows.Close()

	pairs := []models.RadiusVendorPair{}
	for rows.Next() {
		var pair models.RadiusVendorPair
		if err := rows.Scan(&pair.VendorID, &pair.Radius); err != nil {
			return nil, fmt.Errorf("repository: failed to scan radius: %w", err)
		}
		pairs = append(pairs, pair)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating rows: %w", err)
	}

	return pairs, nil
}

// RadiusExists reports whether a pair is stored for vendorID
func (r *Repository) RadiusExists(ctx context.Context, vendorID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM radius_vendor_pairs WHERE vendor_id = $1)`, vendorID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("repository: failed to check radius: %w", err)
	}
	return exists, nil
}
