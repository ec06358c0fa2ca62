// Package middleware provides HTTP middleware components for the spool service.
package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/guttosm/spool-service/internal/logger"
)

const (
	// RequestIDHeader is the HTTP header name for request ID.
	RequestIDHeader = "X-Request-ID"
	// maxRequestIDLength bounds client supplied ids.
	maxRequestIDLength = 128
)

// ContextKey names values stored on the gin context.
type ContextKey string

// RequestIDKey holds the request id on the gin context. The same id is put
// on the request's context.Context for logger.FromContext.
const RequestIDKey ContextKey = "request_id"

// RequestID returns a middleware that ensures each request has a unique ID.
// A client supplied X-Request-ID is kept when it is short printable ASCII;
// otherwise a new UUID v4 is generated.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if !validRequestID(requestID) {
			requestID = uuid.New().String()
		}

		c.Set(string(RequestIDKey), requestID)
		c.Request = c.Request.WithContext(logger.ContextWithRequestID(c.Request.Context(), requestID))
		c.Header(RequestIDHeader, requestID)
		c.Next()
	}
}

func validRequestID(id string) bool {
	if id == "" || len(id) > maxRequestIDLength {
		return false
	}
	for i := 0; i < len(id); i++ {
		if id[i] < 0x21 || id[i] > 0x7e {
			return false
		}
	}
	return true
}

// GetRequestID retrieves the request ID from the gin context.
func GetRequestID(c *gin.Context) string {
	if id, exists := c.Get(string(RequestIDKey)); exists {
		if requestID, ok := id.(string); ok {
			return requestID
		}
	}
	return ""
}
