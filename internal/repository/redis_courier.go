package repository

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"delivery-service/internal/models"

	"github.com/redis/go-redis/v9"
)

// RedisCourierStore keeps the last reported courier addresses in Redis
// hashes keyed "courier:<id>".
type RedisCourierStore struct {
	rdb redis.UniversalClient
	now func() time.Time
}

// NewRedisCourierStore wraps an existing Redis client
func NewRedisCourierStore(rdb redis.UniversalClient) *RedisCourierStore {
	return &RedisCourierStore{rdb: rdb, now: time.Now}
}

func courierKey(courierID int64) string {
	return "courier:" + strconv.FormatInt(courierID, 10)
}

func (s *RedisCourierStore) FindCourierLocation(ctx context.Context, courierID int64) (models.Location, bool, error) {
	data, err := s.rdb.HGetAll(ctx, courierKey(courierID)).Result()
	if err != nil {
		return models.Location{}, false, fmt.Errorf("repository: failed to read courier %d: %w", courierID, err)
	}
	if len(data) == 0 {
		return models.Location{}, false, nil
	}

	return models.Location{
		Country:    data["country"],
		City:       data["city"],
		PostalCode: data["postal_code"],
		Address:    data["address"],
	}, true, nil
}

func (s *RedisCourierStore) PutCourierLocation(ctx context.Context, courierID int64, loc models.Location) error {
	err := s.rdb.HSet(ctx, courierKey(courierID), map[string]interface{}{
		"country":     loc.Country,
		"city":        loc.City,
		"postal_code": loc.PostalCode,
		"address":     loc.Address,
		"last_update": s.now().Unix(),
	}).Err()
	if err != nil {
		return fmt.Errorf("repository: failed to store courier %d: %w", courierID, err)
	}
	return nil
}

func (s *RedisCourierStore) DeleteCourierLocation(ctx context.Context, courierID int64) error {
	if err := s.rdb.Del(ctx, courierKey(courierID)).Err(); err != nil {
		return fmt.Errorf("repository: failed to delete courier %d: %w", courierID, err)
	}
	return nil
}
