package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jylee2/record-api/internal/models"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func setupRedisContainer(t *testing.T) (*redis.Client, func()) {
	t.Helper()

	req := tc.ContainerRequest{
		Image:        "redis:7.0-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp"),
	}

	container, err := tc.GenericContainer(context.Background(), tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	assert.NoError(t, err)

	host, _ := container.Host(context.Background())
	port, _ := container.MappedPort(context.Background(), "6379")

	client := redis.NewClient(&redis.Options{
		Addr: fmt.Sprintf("%s:%d", host, port.Int()),
	})
	assert.NoError(t, client.Ping(context.Background()).Err())

	teardown := func() {
		client.Close()
		container.Terminate(context.Background())
	}

	return client, teardown
}

func TestRecordCacheRepository_SetGet(t *testing.T) {
	client, teardown := setupRedisContainer(t)
	defer teardown()

	repo := NewRecordCacheRepository(client, time.Minute)
	ctx := context.Background()

	record := &models.RecordDB{
		RecordID:    uuid.New(),
		Description: "a link",
		URL:         "https://example.com",
		Status:      models.StatusActive,
		UserID:      uuid.New(),
		Username:    "alice",
		CreatedAt:   time.Now().UTC().Truncate(time.Second),
		UpdatedAt:   time.Now().UTC().Truncate(time.Second),
	}

	assert.NoError(t, repo.Set(ctx, record))

	cached, err := repo.Get(ctx, record.RecordID)
	assert.NoError(t, err)
	assert.Equal(t, record.RecordID, cached.RecordID)
	assert.Equal(t, record.URL, cached.URL)
	assert.Equal(t, record.Status, cached.Status)
}

func TestRecordCacheRepository_GetMiss(t *testing.T) {
	client, teardown := setupRedisContainer(t)
	defer teardown()

	repo := NewRecordCacheRepository(client, time.Minute)

	cached, err := repo.Get(context.Background(), uuid.New())
	assert.Error(t, err)
	assert.Nil(t, cached)
}

func TestRecordCacheRepository_Invalidate(t *testing.T) {
	client, teardown := setupRedisContainer(t)
	defer teardown()

	repo := NewRecordCacheRepository(client, time.Minute)
	ctx := context.Background()

	record := &models.RecordDB{RecordID: uuid.New(), URL: "https://example.com", Status: models.StatusActive}
	assert.NoError(t, repo.Set(ctx, record))

	assert.NoError(t, repo.Invalidate(ctx, record.RecordID))

	cached, err := repo.Get(ctx, record.RecordID)
	assert.Error(t, err)
	assert.Nil(t, cached)
}

func TestRecordCacheRepository_Expiry(t *testing.T) {
	client, teardown := setupRedisContainer(t)
	defer teardown()

	repo := NewRecordCacheRepository(client, 500*time.Millisecond)
	ctx := context.Background()

	record := &models.RecordDB{RecordID: uuid.New(), URL: "https://example.com", Status: models.StatusActive}
	assert.NoError(t, repo.Set(ctx, record))

	time.Sleep(time.Second)

	cached, err := repo.Get(ctx, record.RecordID)
	assert.Error(t, err)
	assert.Nil(t, cached)
}
