package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jylee2/record-api/internal/logger"
	"github.com/jylee2/record-api/internal/models"
	"github.com/redis/go-redis/v9"
)

// RecordCacheRepository caches single active records in Redis. The
// public read path is cache-aside: misses and cache failures fall back
// to the database.
type RecordCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration for cached records
}

// NewRecordCacheRepository creates a new cache repository with the given TTL.
func NewRecordCacheRepository(client *redis.Client, expiration time.Duration) *RecordCacheRepository {
	return &RecordCacheRepository{
		client: client,
		exp:    expiration,
	}
}

func recordKey(recordID uuid.UUID) string {
	return fmt.Sprintf("record:%s", recordID)
}

// Get fetches a cached record. A cache miss is an error; callers fall
// back to storage.
func (r *RecordCacheRepository) Get(ctx context.Context, recordID uuid.UUID) (*models.RecordDB, error) {
	key := recordKey(recordID)

	val, err := r.client.Get(ctx, key).Result()
	if err != nil {
		logger.Log.Infow("cache get",
			"key", key,
			"error", err,
		)
		if err == redis.Nil {
			return nil, fmt.Errorf("record %s not found in cache", recordID)
		}
		return nil, err
	}

	var record models.RecordDB
	if err := json.Unmarshal([]byte(val), &record); err != nil {
		logger.Log.Infow("cache get",
			"key", key,
			"value", val,
			"error", err,
		)
		return nil, err
	}

	logger.Log.Infow("cache get",
		"key", key,
		"error", nil,
	)

	return &record, nil
}

// Set caches a record with the configured expiration.
func (r *RecordCacheRepository) Set(ctx context.Context, record *models.RecordDB) error {
	key := recordKey(record.RecordID)

	data, err := json.Marshal(record)
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, key, data, r.exp).Err()

	logger.Log.Infow("cache set",
		"key", key,
		"error", err,
	)

	return err
}

// Invalidate drops a record from the cache after a mutation.
func (r *RecordCacheRepository) Invalidate(ctx context.Context, recordID uuid.UUID) error {
	key := recordKey(recordID)

	err := r.client.Del(ctx, key).Err()

	logger.Log.Infow("cache invalidate",
		"key", key,
		"error", err,
	)

	return err
}
