package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/jylee2/record-api/internal/logger"
	"github.com/jylee2/record-api/internal/models"
)

// ToggleStatusTokener defines only the methods needed by this handler.
type ToggleStatusTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
}

// RecordStatusToggler defines the interface that the service must implement.
type RecordStatusToggler interface {
	SetStatus(ctx context.Context, token, recordID, claimedOwnerID string) (*models.RecordDB, error)
}

// ToggleStatusRequest represents the JSON body for toggling record status
// swagger:model ToggleStatusRequest
type ToggleStatusRequest struct {
	// Owner user id, must match the stored owner
	// required: true
	UserID string `json:"user_id"`
}

// ToggleStatusResponse represents a successful status toggle response
// swagger:model ToggleStatusResponse
type ToggleStatusResponse struct {
	// The record with its new status
	Record models.RecordDB `json:"record"`
}

// NewToggleStatusHandler returns an HTTP handler for toggling record status.
// @Summary Toggle record status
// @Description Flips a record between active and deleted. Toggling twice restores the original status.
// @Tags records
// @Accept json
// @Produce json
// @Param id path string true "Record ID"
// @Param toggleStatusRequest body handlers.ToggleStatusRequest true "Status toggle request"
// @Success 200 {object} handlers.ToggleStatusResponse "Status toggled"
// @Failure 400 {object} handlers.UpdateRecordErrorResponse "Invalid record id"
// @Failure 401 {object} handlers.UpdateRecordErrorResponse "Missing or invalid token"
// @Failure 403 {object} handlers.UpdateRecordErrorResponse "Record owned by another user"
// @Failure 404 {object} handlers.UpdateRecordErrorResponse "Record not found"
// @Router /records/{id}/status [post]
// @Security BearerAuth
func NewToggleStatusHandler(
	svc RecordStatusToggler,
	tokenGetter ToggleStatusTokener,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		tokenStr, _ := tokenGetter.GetTokenFromRequest(ctx, r)
		recordID := chi.URLParam(r, "id")

		var req ToggleStatusRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Errorw("failed to decode toggle status request", "error", err)
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(UpdateRecordErrorResponse{Error: "Invalid request body"})
			return
		}

		record, err := svc.SetStatus(ctx, tokenStr, recordID, req.UserID)
		if err != nil {
			writeRecordMutationError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(ToggleStatusResponse{Record: *record})
	}
}
