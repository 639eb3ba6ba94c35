package models

import (
	"time"

	"github.com/google/uuid"
)

// UserDB represents a user row in the database.
// The password hash never leaves the server: it is excluded from JSON.
type UserDB struct {
	UserID       uuid.UUID `json:"id" db:"user_id"`                // Primary key
	Username     string    `json:"username" db:"username"`         // Unique username
	Email        string    `json:"email" db:"email"`               // User email
	PasswordHash string    `json:"-" db:"password_hash"`           // Hashed password, never serialized
	CreatedAt    time.Time `json:"created_at" db:"created_at"`     // Creation timestamp
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`     // Last update timestamp
}
