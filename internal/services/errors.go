package services

import (
	"errors"

	"github.com/jylee2/record-api/internal/validation"
)

// Error variables for the failure kinds surfaced to the transport
// layer. Handlers match these with errors.Is and map them to HTTP
// statuses; anything else is an internal error.
var (
	ErrUsernameExists     = errors.New("this username already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrMissingToken       = errors.New("authentication token is required")
	ErrInvalidToken       = errors.New("invalid authentication token")
	ErrInsecureURL        = errors.New("url is not https")
	ErrInvalidRecordID    = errors.New("invalid record id")
	ErrRecordNotFound     = errors.New("record not found")
	ErrNotRecordOwner     = errors.New("this record is not associated with this user")
)

// ValidationError carries per-field validation messages for bad
// registration or login input.
type ValidationError struct {
	Result *validation.Result
}

func (e *ValidationError) Error() string {
	return e.Result.First()
}

// Fields returns the field to message mapping.
func (e *ValidationError) Fields() map[string]string {
	return e.Result.Errors()
}
