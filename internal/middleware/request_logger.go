package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/spool-service/internal/domain/model"
	"github.com/guttosm/spool-service/internal/logger"
	"github.com/rs/zerolog"
)

const requestLogMessage = "HTTP request"

// RequestLogger logs every request once it completes, at a level derived
// from the response status. When sink is non-nil the entry is also
// persisted, except for health check and scrape traffic.
func RequestLogger(sink EntrySink) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		status := c.Writer.Status()
		entry := &model.LogEntry{
			Timestamp:  time.Now().UTC(),
			Level:      model.LevelForStatus(status),
			Message:    requestLogMessage,
			RequestID:  GetRequestID(c),
			Method:     c.Request.Method,
			Path:       c.Request.URL.Path,
			StatusCode: status,
			Duration:   time.Since(start).Milliseconds(),
			IP:         c.ClientIP(),
			UserAgent:  c.Request.UserAgent(),
		}
		if route := c.FullPath(); route != "" && route != entry.Path {
			entry.WithFields(map[string]interface{}{"route": route})
		}

		writeRequestLog(entry)

		if sink != nil && !skipPersist(entry.Path) {
			sink.Log(entry)
		}
	}
}

func writeRequestLog(e *model.LogEntry) {
	level, err := zerolog.ParseLevel(e.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}
	l := logger.WithRequestID(e.RequestID)
	ev := l.WithLevel(level).
		Str("method", e.Method).
		Str("path", e.Path).
		Int("status_code", e.StatusCode).
		Int64("duration_ms", e.Duration).
		Str("ip", e.IP).
		Str("user_agent", e.UserAgent)
	if route, ok := e.Fields["route"].(string); ok {
		ev = ev.Str("route", route)
	}
	ev.Msg(e.Message)
}

// skipPersist excludes health check and scrape traffic from the logs collection.
func skipPersist(path string) bool {
	switch path {
	case "/healthz", "/readyz", "/metrics":
		return true
	}
	return false
}
