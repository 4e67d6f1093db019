package main

import (
	"context"
	"encoding/csv"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"delivery-service/internal/config"
	"delivery-service/internal/models"
	"delivery-service/internal/repository"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
)

type locationRecord struct {
	Location   models.Location
	Coordinate models.Coordinate
}

var header = []string{"country", "city", "postal_code", "address", "lat", "lon"}

func main() {
	file := flag.String("file", "", "Path to the CSV file to import")
	configPath := flag.String("config", "configs", "Directory holding app.env")
	upsert := flag.Bool("upsert", false, "Overwrite addresses that already exist instead of failing")
	flag.Parse()

	if *file == "" {
		log.Fatal().Msg("--file flag is required")
	}

	f, err := os.Open(*file)
	if err != nil {
		log.Fatal().Err(err).Str("file", *file).Msg("cannot open file")
	}
	defer f.Close()

	records, err := parseCSV(f)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot parse CSV")
	}
	log.Info().Int("records", len(records)).Str("file", *file).Msg("parsed records")

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, cfg.DBSource)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot connect to db")
	}
	defer pool.Close()

	repo := repository.NewRepository(pool)
	if err := repo.InitSchema(ctx); err != nil {
		log.Fatal().Err(err).Msg("cannot create schema")
	}

	if *upsert {
		err = upsertRecords(ctx, repo, records)
	} else {
		err = copyRecords(ctx, pool, records)
	}
	if err != nil {
		log.Fatal().Err(err).Msg("cannot insert records")
	}

	if err := verifyImport(ctx, repo, records); err != nil {
		log.Fatal().Err(err).Msg("import verification failed")
	}

	log.Info().Int("records", len(records)).Msg("import finished")
}

// parseCSV reads rows of country,city,postal_code,address,lat,lon after a header line
func parseCSV(r io.Reader) ([]locationRecord, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = len(header)
	reader.TrimLeadingSpace = true

	got, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}
	for i, name := range header {
		if !strings.EqualFold(strings.TrimSpace(got[i]), name) {
			return nil, fmt.Errorf("unexpected header column %d: %q, want %q", i+1, got[i], name)
		}
	}

	var records []locationRecord
	for line := 2; ; line++ {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read record: %w", err)
		}

		lat, err := strconv.ParseFloat(row[4], 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid latitude: %s", line, row[4])
		}
		lon, err := strconv.ParseFloat(row[5], 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid longitude: %s", line, row[5])
		}

		rec := locationRecord{
			Location: models.Location{
				Country:    row[0],
				City:       row[1],
				PostalCode: row[2],
				Address:    row[3],
			},
			Coordinate: models.Coordinate{Latitude: lat, Longitude: lon},
		}
		if err := rec.Coordinate.Validate(); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		records = append(records, rec)
	}

	return records, nil
}

func copyRecords(ctx context.Context, pool *pgxpool.Pool, records []locationRecord) error {
	// Use CopyFrom for bulk insert
	_, err := pool.CopyFrom(
		ctx,
		pgx.Identifier{"locations"},
		[]string{"country", "city", "postal_code", "address", "latitude", "longitude"},
		pgx.CopyFromSlice(len(records), func(i int) ([]interface{}, error) {
			r := records[i]
			return []interface{}{
				r.Location.Country, r.Location.City, r.Location.PostalCode, r.Location.Address,
				r.Coordinate.Latitude, r.Coordinate.Longitude,
			}, nil
		}),
	)
	return err
}

func upsertRecords(ctx context.Context, repo *repository.Repository, records []locationRecord) error {
	for _, r := range records {
		if err := repo.PutCoordinate(ctx, models.KeyOf(r.Location), r.Coordinate); err != nil {
			return err
		}
	}
	return nil
}

// verifyImport reads every imported address back
func verifyImport(ctx context.Context, repo *repository.Repository, records []locationRecord) error {
	for _, r := range records {
		coord, found, err := repo.FindCoordinate(ctx, models.KeyOf(r.Location))
		if err != nil {
			return err
		}
		if !found {
			return fmt.Errorf("address %s missing after import", r.Location)
		}
		if coord != r.Coordinate {
			return fmt.Errorf("address %s: stored %v, imported %v", r.Location, coord, r.Coordinate)
		}
	}
	return nil
}
