package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/jylee2/record-api/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestListRecordsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	records := []models.RecordDB{
		{RecordID: uuid.New(), URL: "https://first.example.com", Status: models.StatusActive},
		{RecordID: uuid.New(), URL: "https://second.example.com", Status: models.StatusActive},
	}

	t.Run("success", func(t *testing.T) {
		mockSvc := NewMockRecordLister(ctrl)
		mockSvc.EXPECT().List(gomock.Any()).Return(records, nil)

		handler := NewListRecordsHandler(mockSvc)

		req := httptest.NewRequest(http.MethodGet, "/records", nil)
		rr := httptest.NewRecorder()
		handler(rr, req)

		assert.Equal(t, 200, rr.Code)

		var resp ListRecordsResponse
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Len(t, resp.Records, 2)
		assert.Equal(t, records[0].RecordID, resp.Records[0].RecordID)
	})

	t.Run("internal server error", func(t *testing.T) {
		mockSvc := NewMockRecordLister(ctrl)
		mockSvc.EXPECT().List(gomock.Any()).Return(nil, errors.New("database failure"))

		handler := NewListRecordsHandler(mockSvc)

		req := httptest.NewRequest(http.MethodGet, "/records", nil)
		rr := httptest.NewRecorder()
		handler(rr, req)

		assert.Equal(t, 500, rr.Code)

		var resp ListRecordsErrorResponse
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "Internal server error", resp.Error)
	})
}
