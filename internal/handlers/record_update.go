package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/jylee2/record-api/internal/logger"
	"github.com/jylee2/record-api/internal/models"
	"github.com/jylee2/record-api/internal/services"
)

// UpdateRecordTokener defines only the methods needed by this handler.
type UpdateRecordTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
}

// RecordUpdater defines the interface that the service must implement.
type RecordUpdater interface {
	Update(ctx context.Context, token, recordID, description, url, claimedOwnerID string) (*models.RecordDB, error)
}

// UpdateRecordRequest represents the JSON body for updating a record
// swagger:model UpdateRecordRequest
type UpdateRecordRequest struct {
	// New description
	// default: an updated link
	Description string `json:"description"`

	// New URL, must start with https://
	// required: true
	// default: https://example.com
	URL string `json:"url"`

	// Owner user id, must match the stored owner
	// required: true
	UserID string `json:"user_id"`
}

// UpdateRecordResponse represents a successful record update response
// swagger:model UpdateRecordResponse
type UpdateRecordResponse struct {
	// The updated record
	Record models.RecordDB `json:"record"`
}

// UpdateRecordErrorResponse represents an error response for record update
// swagger:model UpdateRecordErrorResponse
type UpdateRecordErrorResponse struct {
	// Error message
	// default: this record is not associated with this user
	Error string `json:"error"`
}

// NewUpdateRecordHandler returns an HTTP handler for updating a record.
// @Summary Update a record
// @Description Updates the description and url of a record owned by the authenticated user.
// @Tags records
// @Accept json
// @Produce json
// @Param id path string true "Record ID"
// @Param updateRecordRequest body handlers.UpdateRecordRequest true "Record update request"
// @Success 200 {object} handlers.UpdateRecordResponse "Record updated"
// @Failure 400 {object} handlers.UpdateRecordErrorResponse "Invalid record id or insecure url"
// @Failure 401 {object} handlers.UpdateRecordErrorResponse "Missing or invalid token"
// @Failure 403 {object} handlers.UpdateRecordErrorResponse "Record owned by another user"
// @Failure 404 {object} handlers.UpdateRecordErrorResponse "Record not found"
// @Router /records/{id} [put]
// @Security BearerAuth
func NewUpdateRecordHandler(
	svc RecordUpdater,
	tokenGetter UpdateRecordTokener,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		tokenStr, _ := tokenGetter.GetTokenFromRequest(ctx, r)
		recordID := chi.URLParam(r, "id")

		var req UpdateRecordRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Errorw("failed to decode update record request", "error", err)
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(UpdateRecordErrorResponse{Error: "Invalid request body"})
			return
		}

		record, err := svc.Update(ctx, tokenStr, recordID, req.Description, req.URL, req.UserID)
		if err != nil {
			writeRecordMutationError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(UpdateRecordResponse{Record: *record})
	}
}

// writeRecordMutationError maps record mutation failures to HTTP
// statuses. Update and status toggle share the same failure kinds.
func writeRecordMutationError(w http.ResponseWriter, err error) {
	switch err {
	case services.ErrMissingToken, services.ErrInvalidToken:
		w.WriteHeader(http.StatusUnauthorized)
	case services.ErrInvalidRecordID, services.ErrInsecureURL:
		w.WriteHeader(http.StatusBadRequest)
	case services.ErrRecordNotFound:
		w.WriteHeader(http.StatusNotFound)
	case services.ErrNotRecordOwner:
		w.WriteHeader(http.StatusForbidden)
	default:
		logger.Log.Errorw("internal server error", "err", err)
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(UpdateRecordErrorResponse{Error: "Internal server error"})
		return
	}
	json.NewEncoder(w).Encode(UpdateRecordErrorResponse{Error: err.Error()})
}
