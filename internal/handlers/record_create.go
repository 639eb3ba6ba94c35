package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/jylee2/record-api/internal/logger"
	"github.com/jylee2/record-api/internal/models"
	"github.com/jylee2/record-api/internal/services"
)

// CreateRecordTokener defines only the methods needed by this handler.
type CreateRecordTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
}

// RecordCreator defines the interface that the service must implement.
type RecordCreator interface {
	Create(ctx context.Context, token, description, url, ownerUsername string) (*models.RecordDB, error)
}

// CreateRecordRequest represents the JSON body for creating a record
// swagger:model CreateRecordRequest
type CreateRecordRequest struct {
	// Free text description
	// default: a useful link
	Description string `json:"description"`

	// Bookmark URL, must start with https://
	// required: true
	// default: https://example.com
	URL string `json:"url"`

	// Owner username, denormalized onto the record
	// required: true
	// default: john_doe
	Username string `json:"username"`
}

// CreateRecordResponse represents a successful record creation response
// swagger:model CreateRecordResponse
type CreateRecordResponse struct {
	// The created record
	Record models.RecordDB `json:"record"`
}

// CreateRecordErrorResponse represents an error response for record creation
// swagger:model CreateRecordErrorResponse
type CreateRecordErrorResponse struct {
	// Error message
	// default: url is not https
	Error string `json:"error"`
}

// NewCreateRecordHandler returns an HTTP handler for creating a record.
// @Summary Create a record
// @Description Creates an active record owned by the authenticated user. The url must use https.
// @Tags records
// @Accept json
// @Produce json
// @Param createRecordRequest body handlers.CreateRecordRequest true "Record creation request"
// @Success 201 {object} handlers.CreateRecordResponse "Record created"
// @Failure 400 {object} handlers.CreateRecordErrorResponse "Invalid request or insecure url"
// @Failure 401 {object} handlers.CreateRecordErrorResponse "Missing or invalid token"
// @Router /records [post]
// @Security BearerAuth
func NewCreateRecordHandler(
	svc RecordCreator,
	tokenGetter CreateRecordTokener,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		// An absent or malformed header leaves the token empty;
		// the service rejects empty tokens.
		tokenStr, _ := tokenGetter.GetTokenFromRequest(ctx, r)

		var req CreateRecordRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Errorw("failed to decode create record request", "error", err)
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(CreateRecordErrorResponse{Error: "Invalid request body"})
			return
		}

		record, err := svc.Create(ctx, tokenStr, req.Description, req.URL, req.Username)
		if err != nil {
			switch err {
			case services.ErrMissingToken, services.ErrInvalidToken:
				w.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(w).Encode(CreateRecordErrorResponse{Error: err.Error()})
			case services.ErrInsecureURL:
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(CreateRecordErrorResponse{Error: err.Error()})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(CreateRecordErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(CreateRecordResponse{Record: *record})
	}
}
