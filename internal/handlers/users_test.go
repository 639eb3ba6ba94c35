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

func TestListUsersHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	users := []models.UserDB{
		{UserID: uuid.New(), Username: "alice", Email: "alice@example.com", PasswordHash: "$2a$10$secret"},
		{UserID: uuid.New(), Username: "bob", Email: "bob@example.com", PasswordHash: "$2a$10$secret"},
	}

	t.Run("success without password hashes", func(t *testing.T) {
		mockSvc := NewMockUserLister(ctrl)
		mockSvc.EXPECT().ListUsers(gomock.Any()).Return(users, nil)

		handler := NewListUsersHandler(mockSvc)

		req := httptest.NewRequest(http.MethodGet, "/users", nil)
		rr := httptest.NewRecorder()
		handler(rr, req)

		assert.Equal(t, 200, rr.Code)
		assert.NotContains(t, rr.Body.String(), "secret")

		var resp ListUsersResponse
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Len(t, resp.Users, 2)
		assert.Equal(t, "alice", resp.Users[0].Username)
	})

	t.Run("internal server error", func(t *testing.T) {
		mockSvc := NewMockUserLister(ctrl)
		mockSvc.EXPECT().ListUsers(gomock.Any()).Return(nil, errors.New("database failure"))

		handler := NewListUsersHandler(mockSvc)

		req := httptest.NewRequest(http.MethodGet, "/users", nil)
		rr := httptest.NewRecorder()
		handler(rr, req)

		assert.Equal(t, 500, rr.Code)

		var resp ListUsersErrorResponse
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "Internal server error", resp.Error)
	})
}
