package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/jylee2/record-api/internal/logger"
	"github.com/jylee2/record-api/internal/models"
	"github.com/jylee2/record-api/internal/services"
)

// Registerer defines the interface that the service must implement.
type Registerer interface {
	Register(ctx context.Context, email, password, passwordConfirm, username string) (*models.UserDB, string, error)
}

// RegisterRequest represents the JSON body for user registration
// swagger:model RegisterRequest
type RegisterRequest struct {
	// Username
	// required: true
	// default: john_doe
	Username string `json:"username"`

	// Email
	// required: true
	// default: john@example.com
	Email string `json:"email"`

	// Password
	// required: true
	// default: secret123
	Password string `json:"password"`

	// Password confirmation, must match password
	// required: true
	// default: secret123
	PasswordConfirm string `json:"password_confirm"`
}

// RegisterResponse represents a successful registration response
// swagger:model RegisterResponse
type RegisterResponse struct {
	// Bearer token for the new user
	Token string `json:"token"`

	// The created user
	User models.UserDB `json:"user"`
}

// RegisterErrorResponse represents an error response for registration
// swagger:model RegisterErrorResponse
type RegisterErrorResponse struct {
	// Error message
	// default: this username already exists
	Error string `json:"error"`

	// Per-field validation messages, present for validation failures
	Fields map[string]string `json:"fields,omitempty"`
}

// NewRegisterHandler returns an HTTP handler for user registration.
// @Summary Register a new user
// @Description Creates a new user account. Validates input, enforces unique usernames, hashes the password and returns a signed token.
// @Tags auth
// @Accept json
// @Produce json
// @Param registerRequest body handlers.RegisterRequest true "User registration request"
// @Success 201 {object} handlers.RegisterResponse "User successfully registered"
// @Failure 400 {object} handlers.RegisterErrorResponse "Validation failed or username already exists"
// @Router /register [post]
func NewRegisterHandler(svc Registerer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Errorw("failed to decode register request", "error", err)
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(RegisterErrorResponse{Error: "Invalid request body"})
			return
		}

		user, token, err := svc.Register(r.Context(), req.Email, req.Password, req.PasswordConfirm, req.Username)
		if err != nil {
			var vErr *services.ValidationError
			if errors.As(err, &vErr) {
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(RegisterErrorResponse{
					Error:  vErr.Error(),
					Fields: vErr.Fields(),
				})
				return
			}

			switch err {
			case services.ErrUsernameExists:
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(RegisterErrorResponse{Error: err.Error()})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(RegisterErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(RegisterResponse{
			Token: token,
			User:  *user,
		})
	}
}
