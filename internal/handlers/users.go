package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/jylee2/record-api/internal/logger"
	"github.com/jylee2/record-api/internal/models"
)

// UserLister defines the interface that the service must implement.
type UserLister interface {
	ListUsers(ctx context.Context) ([]models.UserDB, error)
}

// ListUsersResponse represents the user listing response
// swagger:model ListUsersResponse
type ListUsersResponse struct {
	// Users sorted by username
	Users []models.UserDB `json:"users"`
}

// ListUsersErrorResponse represents an error response for user listing
// swagger:model ListUsersErrorResponse
type ListUsersErrorResponse struct {
	// Error message
	// default: Internal server error
	Error string `json:"error"`
}

// NewListUsersHandler returns an HTTP handler for listing users.
// @Summary List users
// @Description Returns all users sorted by username. Password hashes are never serialized.
// @Tags users
// @Produce json
// @Success 200 {object} handlers.ListUsersResponse "All users"
// @Failure 500 {object} handlers.ListUsersErrorResponse "Internal server error"
// @Router /users [get]
func NewListUsersHandler(svc UserLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, err := svc.ListUsers(r.Context())
		if err != nil {
			logger.Log.Errorw("failed to list users", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ListUsersErrorResponse{Error: "Internal server error"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(ListUsersResponse{Users: users})
	}
}
