// Package middleware provides audit logging utilities.
package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/spool-service/internal/domain/model"
)

// auditSinkKey is the gin context key holding the audit sink.
const auditSinkKey = "audit_sink"

// EntrySink accepts log entries without blocking the caller.
type EntrySink interface {
	Log(entry *model.LogEntry) bool
}

// AuditEvent describes an inventory write.
type AuditEvent struct {
	Action     string // e.g. "create_spool", "use_spool"
	Resource   string // "vendor", "filament" or "spool"
	ResourceID string
	Message    string
	Fields     map[string]interface{}
}

// WithAuditSink makes the sink available to handlers through Audit.
func WithAuditSink(sink EntrySink) gin.HandlerFunc {
	return func(c *gin.Context) {
		if sink != nil {
			c.Set(auditSinkKey, sink)
		}
		c.Next()
	}
}

func auditSink(c *gin.Context) EntrySink {
	if v, ok := c.Get(auditSinkKey); ok {
		if sink, ok := v.(EntrySink); ok {
			return sink
		}
	}
	return nil
}

// Audit records a successful write. It is a no-op when no sink is configured.
func Audit(c *gin.Context, ev AuditEvent) {
	if sink := auditSink(c); sink != nil {
		sink.Log(newAuditEntry(c, model.LevelInfo, ev))
	}
}

// AuditError records a failed write.
func AuditError(c *gin.Context, ev AuditEvent, err error) {
	sink := auditSink(c)
	if sink == nil {
		return
	}
	entry := newAuditEntry(c, model.LevelError, ev)
	if err != nil {
		entry.Error = err.Error()
	}
	sink.Log(entry)
}

func newAuditEntry(c *gin.Context, level string, ev AuditEvent) *model.LogEntry {
	entry := &model.LogEntry{
		Timestamp:  time.Now().UTC(),
		Level:      level,
		Message:    ev.Message,
		RequestID:  GetRequestID(c),
		Method:     c.Request.Method,
		Path:       c.Request.URL.Path,
		IP:         c.ClientIP(),
		UserAgent:  c.Request.UserAgent(),
		ActionType: ev.Action,
		Resource:   ev.Resource,
		ResourceID: ev.ResourceID,
	}
	if len(ev.Fields) > 0 {
		entry.WithFields(ev.Fields)
	}
	if keyID := GetAPIKeyID(c); keyID != "" {
		entry.WithFields(map[string]interface{}{"api_key_id": keyID})
	}
	return entry
}
