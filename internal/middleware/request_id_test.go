package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/guttosm/spool-service/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		header     string
		expectKeep bool
	}{
		{name: "generates an id when none is sent"},
		{name: "keeps a printable client id", header: "spool-sync-0007", expectKeep: true},
		{name: "keeps the longest allowed id", header: strings.Repeat("r", maxRequestIDLength), expectKeep: true},
		{name: "replaces an id with spaces", header: "use spool 7"},
		{name: "replaces an id with control bytes", header: "req\x01"},
		{name: "replaces an overlong id", header: strings.Repeat("r", maxRequestIDLength+1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var fromGin, fromCtx string
			router := gin.New()
			router.Use(RequestID())
			router.POST("/api/spools/:id/use", func(c *gin.Context) {
				fromGin = GetRequestID(c)
				fromCtx = logger.RequestIDFromContext(c.Request.Context())
				c.Status(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodPost, "/api/spools/1/use", nil)
			if tt.header != "" {
				req.Header.Set(RequestIDHeader, tt.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			require.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, fromGin, w.Header().Get(RequestIDHeader))
			assert.Equal(t, fromGin, fromCtx)
			if tt.expectKeep {
				assert.Equal(t, tt.header, fromGin)
				return
			}
			_, err := uuid.Parse(fromGin)
			assert.NoError(t, err, "expected a generated UUID, got %q", fromGin)
		})
	}
}

func TestRequestID_UniquePerRequest(t *testing.T) {
	router := gin.New()
	router.Use(RequestID())
	router.GET("/", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
		id := w.Header().Get(RequestIDHeader)
		assert.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}

func TestGetRequestID(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	assert.Empty(t, GetRequestID(c))

	c.Set(string(RequestIDKey), 42)
	assert.Empty(t, GetRequestID(c), "non-string values are ignored")

	c.Set(string(RequestIDKey), "req-1")
	assert.Equal(t, "req-1", GetRequestID(c))
}
