package models

import (
	"time"

	"github.com/google/uuid"
)

// Record lifecycle status values. A record is never hard-deleted:
// "deleted" is a status, not removal.
const (
	StatusActive  = "active"
	StatusDeleted = "deleted"
)

// ToggleStatus flips a record status: active becomes deleted,
// anything else becomes active.
func ToggleStatus(status string) string {
	if status == StatusActive {
		return StatusDeleted
	}
	return StatusActive
}

// RecordDB represents a bookmark record row in the database.
// UserID is the owning identity and is immutable after creation.
type RecordDB struct {
	RecordID    uuid.UUID `json:"id" db:"record_id"`          // Primary key
	Description string    `json:"description" db:"description"` // Free text, optional
	URL         string    `json:"url" db:"url"`               // Always https://
	Status      string    `json:"status" db:"status"`         // active | deleted
	UserID      uuid.UUID `json:"user_id" db:"user_id"`       // Owning user identity
	Username    string    `json:"username" db:"username"`     // Denormalized owner username
	CreatedAt   time.Time `json:"created_at" db:"created_at"` // Creation timestamp
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"` // Set on every mutation
}
