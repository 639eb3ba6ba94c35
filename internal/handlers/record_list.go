package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/jylee2/record-api/internal/logger"
	"github.com/jylee2/record-api/internal/models"
)

// RecordLister defines the interface that the service must implement.
type RecordLister interface {
	List(ctx context.Context) ([]models.RecordDB, error)
}

// ListRecordsResponse represents the record listing response
// swagger:model ListRecordsResponse
type ListRecordsResponse struct {
	// Active records, newest first
	Records []models.RecordDB `json:"records"`
}

// ListRecordsErrorResponse represents an error response for record listing
// swagger:model ListRecordsErrorResponse
type ListRecordsErrorResponse struct {
	// Error message
	// default: Internal server error
	Error string `json:"error"`
}

// NewListRecordsHandler returns an HTTP handler for listing active records.
// @Summary List records
// @Description Returns all active records sorted by creation time, newest first. Public endpoint.
// @Tags records
// @Produce json
// @Success 200 {object} handlers.ListRecordsResponse "Active records"
// @Failure 500 {object} handlers.ListRecordsErrorResponse "Internal server error"
// @Router /records [get]
func NewListRecordsHandler(svc RecordLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		records, err := svc.List(r.Context())
		if err != nil {
			logger.Log.Errorw("failed to list records", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ListRecordsErrorResponse{Error: "Internal server error"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(ListRecordsResponse{Records: records})
	}
}
