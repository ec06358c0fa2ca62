package middleware

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/spool-service/internal/domain/dto"
	"github.com/guttosm/spool-service/internal/i18n"
)

// TimeoutConfig sets the deadline attached to each request context.
type TimeoutConfig struct {
	// Timeout applies to every route without an override. Zero disables it.
	Timeout time.Duration
	// Routes overrides Timeout per gin route pattern, e.g. "/api/summary".
	Routes map[string]time.Duration
}

// DefaultTimeoutConfig returns the default request deadline.
func DefaultTimeoutConfig() TimeoutConfig {
	return TimeoutConfig{Timeout: 30 * time.Second}
}

// For returns the deadline for a route pattern.
func (cfg TimeoutConfig) For(route string) time.Duration {
	if d, ok := cfg.Routes[route]; ok {
		return d
	}
	return cfg.Timeout
}

// Longest returns the largest deadline any route can get.
func (cfg TimeoutConfig) Longest() time.Duration {
	longest := cfg.Timeout
	for _, d := range cfg.Routes {
		if d > longest {
			longest = d
		}
	}
	return longest
}

// Timeout attaches a deadline to the request context. Repository calls
// observe it; when it passes and the handler wrote nothing a 504 is sent.
func Timeout(cfg TimeoutConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		d := cfg.For(c.FullPath())
		if d <= 0 {
			c.Next()
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), d)
		defer cancel()

		c.Request = c.Request.WithContext(ctx)
		c.Next()

		if errors.Is(ctx.Err(), context.DeadlineExceeded) && !c.Writer.Written() {
			msg := i18n.GetTranslator().Translate(i18n.ErrKeyTimeout, i18n.GetLocale(c))
			c.AbortWithStatusJSON(http.StatusGatewayTimeout, dto.NewError(dto.ErrCodeTimeout, msg, GetRequestID(c)))
		}
	}
}
