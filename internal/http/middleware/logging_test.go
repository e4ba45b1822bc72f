package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	pkgmocks "github.com/leadflow/leadflow/pkg/mocks"
)

func TestLoggingMiddleware(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLogger := pkgmocks.NewMockLogger(ctrl)

	t.Run("success is logged at debug", func(t *testing.T) {
		mockLogger.EXPECT().WithFields(gomock.Any()).DoAndReturn(func(fields map[string]interface{}) *pkgmocks.MockLogger {
			assert.Equal(t, http.StatusCreated, fields["status"])
			assert.Equal(t, "/api/leads", fields["path"])
			return mockLogger
		})
		mockLogger.EXPECT().Debug("POST /api/leads")

		handler := LoggingMiddleware(mockLogger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusCreated)
		}))
		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("POST", "/api/leads", nil))
	})

	t.Run("server errors are logged at error", func(t *testing.T) {
		mockLogger.EXPECT().WithFields(gomock.Any()).Return(mockLogger)
		mockLogger.EXPECT().Error("GET /api/groups")

		handler := LoggingMiddleware(mockLogger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/api/groups", nil))
	})
}
