package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/jylee2/record-api/internal/models"
	"github.com/stretchr/testify/assert"
)

func seedUser(t *testing.T, db *sqlx.DB, username string) *models.UserDB {
	t.Helper()

	user, err := NewUserWriteRepository(db).Save(context.Background(), username, username+"@example.com", "hashed_password")
	assert.NoError(t, err)
	return user
}

func TestRecordWriteRepository_Save(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	owner := seedUser(t, db, "alice")
	repo := NewRecordWriteRepository(db, nil)
	ctx := context.Background()

	record, err := repo.Save(ctx, "a link", "https://example.com", models.StatusActive, owner.UserID, owner.Username)
	assert.NoError(t, err)
	assert.NotZero(t, record.RecordID)
	assert.Equal(t, "a link", record.Description)
	assert.Equal(t, "https://example.com", record.URL)
	assert.Equal(t, models.StatusActive, record.Status)
	assert.Equal(t, owner.UserID, record.UserID)
	assert.Equal(t, "alice", record.Username)
}

func TestRecordWriteRepository_SaveInTransaction(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	owner := seedUser(t, db, "alice")
	ctx := context.Background()

	tx, err := db.BeginTxx(ctx, nil)
	assert.NoError(t, err)

	repo := NewRecordWriteRepository(db, func(context.Context) *sqlx.Tx { return tx })

	record, err := repo.Save(ctx, "a link", "https://example.com", models.StatusActive, owner.UserID, owner.Username)
	assert.NoError(t, err)

	// Not visible outside the transaction until commit
	readRepo := NewRecordReadRepository(db)
	missing, err := readRepo.GetByID(ctx, record.RecordID)
	assert.NoError(t, err)
	assert.Nil(t, missing)

	assert.NoError(t, tx.Commit())

	stored, err := readRepo.GetByID(ctx, record.RecordID)
	assert.NoError(t, err)
	assert.NotNil(t, stored)
}

func TestRecordReadRepository_GetByID(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	owner := seedUser(t, db, "alice")
	writeRepo := NewRecordWriteRepository(db, nil)
	readRepo := NewRecordReadRepository(db)
	ctx := context.Background()

	saved, err := writeRepo.Save(ctx, "a link", "https://example.com", models.StatusDeleted, owner.UserID, owner.Username)
	assert.NoError(t, err)

	// GetByID finds the record regardless of status
	record, err := readRepo.GetByID(ctx, saved.RecordID)
	assert.NoError(t, err)
	assert.NotNil(t, record)
	assert.Equal(t, models.StatusDeleted, record.Status)

	// GetActiveByID does not
	active, err := readRepo.GetActiveByID(ctx, saved.RecordID)
	assert.NoError(t, err)
	assert.Nil(t, active)

	missing, err := readRepo.GetByID(ctx, uuid.New())
	assert.NoError(t, err)
	assert.Nil(t, missing)
}

func TestRecordReadRepository_ListActive_NewestFirst(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	owner := seedUser(t, db, "alice")
	writeRepo := NewRecordWriteRepository(db, nil)
	readRepo := NewRecordReadRepository(db)
	ctx := context.Background()

	first, err := writeRepo.Save(ctx, "first", "https://first.example.com", models.StatusActive, owner.UserID, owner.Username)
	assert.NoError(t, err)
	time.Sleep(10 * time.Millisecond)
	second, err := writeRepo.Save(ctx, "second", "https://second.example.com", models.StatusActive, owner.UserID, owner.Username)
	assert.NoError(t, err)
	time.Sleep(10 * time.Millisecond)
	_, err = writeRepo.Save(ctx, "hidden", "https://hidden.example.com", models.StatusDeleted, owner.UserID, owner.Username)
	assert.NoError(t, err)

	records, err := readRepo.ListActive(ctx)
	assert.NoError(t, err)
	assert.Len(t, records, 2)
	assert.Equal(t, second.RecordID, records[0].RecordID)
	assert.Equal(t, first.RecordID, records[1].RecordID)
}

func TestRecordWriteRepository_Update(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	owner := seedUser(t, db, "alice")
	writeRepo := NewRecordWriteRepository(db, nil)
	ctx := context.Background()

	saved, err := writeRepo.Save(ctx, "old", "https://old.example.com", models.StatusActive, owner.UserID, owner.Username)
	assert.NoError(t, err)

	updated, err := writeRepo.Update(ctx, saved.RecordID, "new", "https://new.example.com")
	assert.NoError(t, err)
	assert.NotNil(t, updated)
	assert.Equal(t, "new", updated.Description)
	assert.Equal(t, "https://new.example.com", updated.URL)
	assert.True(t, updated.UpdatedAt.After(saved.UpdatedAt) || updated.UpdatedAt.Equal(saved.UpdatedAt))

	missing, err := writeRepo.Update(ctx, uuid.New(), "new", "https://new.example.com")
	assert.NoError(t, err)
	assert.Nil(t, missing)
}

func TestRecordWriteRepository_SetStatus(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	owner := seedUser(t, db, "alice")
	writeRepo := NewRecordWriteRepository(db, nil)
	ctx := context.Background()

	saved, err := writeRepo.Save(ctx, "a link", "https://example.com", models.StatusActive, owner.UserID, owner.Username)
	assert.NoError(t, err)

	deleted, err := writeRepo.SetStatus(ctx, saved.RecordID, models.StatusDeleted)
	assert.NoError(t, err)
	assert.Equal(t, models.StatusDeleted, deleted.Status)

	restored, err := writeRepo.SetStatus(ctx, saved.RecordID, models.StatusActive)
	assert.NoError(t, err)
	assert.Equal(t, models.StatusActive, restored.Status)
}
