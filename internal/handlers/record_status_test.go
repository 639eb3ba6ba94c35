package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/jylee2/record-api/internal/models"
	"github.com/jylee2/record-api/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestToggleStatusHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	recordID := uuid.New()
	ownerID := uuid.New()
	body := `{"user_id":"` + ownerID.String() + `"}`

	tests := []struct {
		name           string
		mockSetup      func(m *MockRecordStatusToggler)
		expectedCode   int
		expectedStatus string
		expectedError  string
	}{
		{
			name: "toggles active to deleted",
			mockSetup: func(m *MockRecordStatusToggler) {
				m.EXPECT().
					SetStatus(gomock.Any(), "signed.token", recordID.String(), ownerID.String()).
					Return(&models.RecordDB{RecordID: recordID, Status: models.StatusDeleted, UserID: ownerID}, nil)
			},
			expectedCode:   200,
			expectedStatus: models.StatusDeleted,
		},
		{
			name: "toggles deleted back to active",
			mockSetup: func(m *MockRecordStatusToggler) {
				m.EXPECT().
					SetStatus(gomock.Any(), "signed.token", recordID.String(), ownerID.String()).
					Return(&models.RecordDB{RecordID: recordID, Status: models.StatusActive, UserID: ownerID}, nil)
			},
			expectedCode:   200,
			expectedStatus: models.StatusActive,
		},
		{
			name: "not the owner",
			mockSetup: func(m *MockRecordStatusToggler) {
				m.EXPECT().
					SetStatus(gomock.Any(), "signed.token", recordID.String(), ownerID.String()).
					Return(nil, services.ErrNotRecordOwner)
			},
			expectedCode:  403,
			expectedError: "this record is not associated with this user",
		},
		{
			name: "record not found",
			mockSetup: func(m *MockRecordStatusToggler) {
				m.EXPECT().
					SetStatus(gomock.Any(), "signed.token", recordID.String(), ownerID.String()).
					Return(nil, services.ErrRecordNotFound)
			},
			expectedCode:  404,
			expectedError: "record not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockRecordStatusToggler(ctrl)
			tt.mockSetup(mockSvc)

			mockTokener := NewMockToggleStatusTokener(ctrl)
			mockTokener.EXPECT().
				GetTokenFromRequest(gomock.Any(), gomock.Any()).
				Return("signed.token", nil)

			router := chi.NewRouter()
			router.Post("/records/{id}/status", NewToggleStatusHandler(mockSvc, mockTokener))

			req := httptest.NewRequest(http.MethodPost, "/records/"+recordID.String()+"/status", bytes.NewBufferString(body))
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedError == "" {
				var resp ToggleStatusResponse
				assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Equal(t, tt.expectedStatus, resp.Record.Status)
			} else {
				var resp UpdateRecordErrorResponse
				assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Equal(t, tt.expectedError, resp.Error)
			}
		})
	}
}
