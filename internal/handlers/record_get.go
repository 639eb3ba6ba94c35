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

// RecordGetter defines the interface that the service must implement.
type RecordGetter interface {
	Get(ctx context.Context, recordID string) (*models.RecordDB, error)
}

// GetRecordResponse represents a single record response
// swagger:model GetRecordResponse
type GetRecordResponse struct {
	// The requested record
	Record models.RecordDB `json:"record"`
}

// GetRecordErrorResponse represents an error response for record retrieval
// swagger:model GetRecordErrorResponse
type GetRecordErrorResponse struct {
	// Error message
	// default: record not found
	Error string `json:"error"`
}

// NewGetRecordHandler returns an HTTP handler for fetching a single record.
// @Summary Get a record
// @Description Returns a single active record by id. Public endpoint.
// @Tags records
// @Produce json
// @Param id path string true "Record ID"
// @Success 200 {object} handlers.GetRecordResponse "The record"
// @Failure 400 {object} handlers.GetRecordErrorResponse "Invalid record id"
// @Failure 404 {object} handlers.GetRecordErrorResponse "Record not found"
// @Router /records/{id} [get]
func NewGetRecordHandler(svc RecordGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		recordID := chi.URLParam(r, "id")

		record, err := svc.Get(r.Context(), recordID)
		if err != nil {
			switch err {
			case services.ErrInvalidRecordID:
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(GetRecordErrorResponse{Error: err.Error()})
			case services.ErrRecordNotFound:
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(GetRecordErrorResponse{Error: err.Error()})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(GetRecordErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(GetRecordResponse{Record: *record})
	}
}
