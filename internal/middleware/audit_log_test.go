package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/spool-service/internal/domain/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingSink keeps every entry it receives.
type recordingSink struct {
	mu      sync.Mutex
	entries []*model.LogEntry
}

func (s *recordingSink) Log(entry *model.LogEntry) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, entry)
	return true
}

func (s *recordingSink) all() []*model.LogEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]*model.LogEntry(nil), s.entries...)
}

func TestAudit(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name      string
		sink      *recordingSink
		fail      error
		wantLevel string
	}{
		{name: "records successful write", sink: &recordingSink{}, wantLevel: "info"},
		{name: "records failed write", sink: &recordingSink{}, fail: errors.New("boom"), wantLevel: "error"},
		{name: "no sink is a no-op"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.Use(RequestID())
			if tt.sink != nil {
				router.Use(WithAuditSink(tt.sink))
			}
			router.POST("/api/spools/:id/use", func(c *gin.Context) {
				ev := AuditEvent{
					Action:     "use_spool",
					Resource:   "spool",
					ResourceID: c.Param("id"),
					Message:    "Filament used",
					Fields:     map[string]interface{}{"use_weight": 12.5},
				}
				if tt.fail != nil {
					AuditError(c, ev, tt.fail)
				} else {
					Audit(c, ev)
				}
				c.Status(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodPost, "/api/spools/abc/use", nil)
			req.Header.Set(RequestIDHeader, "req-1")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusOK, w.Code)
			if tt.sink == nil {
				return
			}

			entries := tt.sink.all()
			require.Len(t, entries, 1)
			entry := entries[0]
			assert.Equal(t, tt.wantLevel, entry.Level)
			assert.Equal(t, "use_spool", entry.ActionType)
			assert.Equal(t, "spool", entry.Resource)
			assert.Equal(t, "abc", entry.ResourceID)
			assert.Equal(t, "req-1", entry.RequestID)
			assert.Equal(t, http.MethodPost, entry.Method)
			assert.Equal(t, 12.5, entry.Fields["use_weight"])
			if tt.fail != nil {
				assert.Equal(t, "boom", entry.Error)
			}
		})
	}
}
