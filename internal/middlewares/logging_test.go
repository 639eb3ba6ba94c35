package middlewares

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestLoggingMiddleware(t *testing.T) {
	log := zap.NewNop().Sugar()

	tests := []struct {
		name           string
		handlerStatus  int
		handlerBody    string
		expectedStatus int
	}{
		{
			name:           "ok response",
			handlerStatus:  http.StatusOK,
			handlerBody:    "hello",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "error response",
			handlerStatus:  http.StatusNotFound,
			handlerBody:    "missing",
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ctxRequestID string
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				ctxRequestID = RequestIDFromContext(r.Context())
				w.WriteHeader(tt.handlerStatus)
				io.WriteString(w, tt.handlerBody)
			})

			handler := LoggingMiddleware(log)(next)

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Equal(t, tt.handlerBody, rr.Body.String())
			assert.NotEmpty(t, ctxRequestID)
			assert.Equal(t, ctxRequestID, rr.Header().Get("X-Request-ID"))
		})
	}
}

func TestRequestIDFromContext_Missing(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Empty(t, RequestIDFromContext(req.Context()))
}
