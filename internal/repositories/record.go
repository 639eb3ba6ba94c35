package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/jylee2/record-api/internal/logger"
	"github.com/jylee2/record-api/internal/models"
)

type RecordReadRepository struct {
	db *sqlx.DB
}

func NewRecordReadRepository(db *sqlx.DB) *RecordReadRepository {
	return &RecordReadRepository{db: db}
}

// GetByID returns the record with the given id regardless of status,
// or nil when absent. Mutations need to see deleted records too.
func (r *RecordReadRepository) GetByID(ctx context.Context, recordID uuid.UUID) (*models.RecordDB, error) {
	const query = `
		SELECT record_id, description, url, status, user_id, username, created_at, updated_at
		FROM records
		WHERE record_id = $1
	`

	var record models.RecordDB
	err := r.db.GetContext(ctx, &record, query, recordID)

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", []any{recordID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &record, nil
}

// GetActiveByID returns the active record with the given id, or nil.
func (r *RecordReadRepository) GetActiveByID(ctx context.Context, recordID uuid.UUID) (*models.RecordDB, error) {
	const query = `
		SELECT record_id, description, url, status, user_id, username, created_at, updated_at
		FROM records
		WHERE record_id = $1 AND status = $2
	`

	var record models.RecordDB
	err := r.db.GetContext(ctx, &record, query, recordID, models.StatusActive)

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", []any{recordID, models.StatusActive},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &record, nil
}

// ListActive returns all active records, newest first.
func (r *RecordReadRepository) ListActive(ctx context.Context) ([]models.RecordDB, error) {
	const query = `
		SELECT record_id, description, url, status, user_id, username, created_at, updated_at
		FROM records
		WHERE status = $1
		ORDER BY created_at DESC
	`

	var records []models.RecordDB
	err := r.db.SelectContext(ctx, &records, query, models.StatusActive)

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"count", len(records),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return records, nil
}

// RecordWriteRepository handles record write operations. Writes run on
// the request transaction when one is present in the context.
type RecordWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewRecordWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *RecordWriteRepository {
	return &RecordWriteRepository{db: db, txGetter: txGetter}
}

func (r *RecordWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Save inserts a new record and returns the stored row including the
// storage-assigned id.
func (r *RecordWriteRepository) Save(ctx context.Context, description, url, status string, userID uuid.UUID, username string) (*models.RecordDB, error) {
	const query = `
		INSERT INTO records (record_id, description, url, status, user_id, username, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING record_id, description, url, status, user_id, username, created_at, updated_at
	`
	args := []any{uuid.New(), description, url, status, userID, username}

	var record models.RecordDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &record, query, args...)

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return &record, nil
}

// Update sets description and url on a record and stamps updated_at.
// Returns nil when the record does not exist. The owning user_id is
// never touched.
func (r *RecordWriteRepository) Update(ctx context.Context, recordID uuid.UUID, description, url string) (*models.RecordDB, error) {
	const query = `
		UPDATE records
		SET description = $2, url = $3, updated_at = NOW()
		WHERE record_id = $1
		RETURNING record_id, description, url, status, user_id, username, created_at, updated_at
	`
	args := []any{recordID, description, url}

	var record models.RecordDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &record, query, args...)

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &record, nil
}

// SetStatus writes a new status on a record and stamps updated_at.
// Returns nil when the record does not exist.
func (r *RecordWriteRepository) SetStatus(ctx context.Context, recordID uuid.UUID, status string) (*models.RecordDB, error) {
	const query = `
		UPDATE records
		SET status = $2, updated_at = NOW()
		WHERE record_id = $1
		RETURNING record_id, description, url, status, user_id, username, created_at, updated_at
	`
	args := []any{recordID, status}

	var record models.RecordDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &record, query, args...)

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &record, nil
}
