package model

import (
	"net/http"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Log levels stored on entries.
const (
	LevelInfo  = "info"
	LevelWarn  = "warn"
	LevelError = "error"
)

// LevelForStatus maps an HTTP status to the level its request is logged at.
func LevelForStatus(status int) string {
	switch {
	case status >= http.StatusInternalServerError:
		return LevelError
	case status >= http.StatusBadRequest:
		return LevelWarn
	default:
		return LevelInfo
	}
}

// ValidLevel reports whether level is one of the stored levels.
func ValidLevel(level string) bool {
	switch level {
	case LevelInfo, LevelWarn, LevelError:
		return true
	}
	return false
}

// LogEntry is a request or audit record persisted in the logs collection.
// Fields carries action-specific context.
type LogEntry struct {
	ID         primitive.ObjectID     `bson:"_id,omitempty" json:"id" swaggertype:"string"`
	Timestamp  time.Time              `bson:"timestamp" json:"timestamp"`
	Level      string                 `bson:"level" json:"level"`
	Message    string                 `bson:"message" json:"message"`
	RequestID  string                 `bson:"request_id,omitempty" json:"request_id,omitempty"`
	Method     string                 `bson:"method,omitempty" json:"method,omitempty"`
	Path       string                 `bson:"path,omitempty" json:"path,omitempty"`
	StatusCode int                    `bson:"status_code,omitempty" json:"status_code,omitempty"`
	Duration   int64                  `bson:"duration_ms,omitempty" json:"duration_ms,omitempty"`
	IP         string                 `bson:"ip,omitempty" json:"ip,omitempty"`
	UserAgent  string                 `bson:"user_agent,omitempty" json:"user_agent,omitempty"`
	Error      string                 `bson:"error,omitempty" json:"error,omitempty"`
	ActionType string                 `bson:"action_type,omitempty" json:"action_type,omitempty"` // e.g. "create_spool", "use_spool"
	Resource   string                 `bson:"resource,omitempty" json:"resource,omitempty"`
	ResourceID string                 `bson:"resource_id,omitempty" json:"resource_id,omitempty"`
	Fields     map[string]interface{} `bson:"fields,omitempty" json:"fields,omitempty" swaggertype:"object"`
} // @name LogEntry

// WithFields merges fields into the entry.
func (e *LogEntry) WithFields(fields map[string]interface{}) *LogEntry {
	if e.Fields == nil {
		e.Fields = make(map[string]interface{}, len(fields))
	}
	for k, v := range fields {
		e.Fields[k] = v
	}
	return e
}

// LogQueryOptions filters log queries.
type LogQueryOptions struct {
	RequestID  string
	Level      string
	ActionType string
	// Resource and ResourceID narrow the query to one vendor, filament or spool.
	Resource   string
	ResourceID string
	StartTime  *time.Time
	EndTime    *time.Time
	Limit      int
	Skip       int
}
