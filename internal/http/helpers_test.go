package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/spool-service/internal/domain/dto"
	"github.com/guttosm/spool-service/internal/domain/model"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// auditRecorder collects entries sent to the audit sink.
type auditRecorder struct {
	mu      sync.Mutex
	entries []*model.LogEntry
}

func (r *auditRecorder) Log(entry *model.LogEntry) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, entry)
	return true
}

// actions returns the action types of audit entries in arrival order.
// Request log entries carry no action and are skipped.
func (r *auditRecorder) actions() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []string
	for _, e := range r.entries {
		if e.ActionType != "" {
			out = append(out, e.ActionType+":"+e.Level)
		}
	}
	return out
}

// testRouter builds a router without rate limiting or request deadlines.
func testRouter(cfg RouterConfig) *gin.Engine {
	return NewRouter(NewHealthHandler(), cfg)
}

func perform(router *gin.Engine, method, path, body string, headers ...string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// decodeData unmarshals the data field of a success envelope into v.
func decodeData(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	var envelope struct {
		Data      json.RawMessage `json:"data"`
		RequestID string          `json:"request_id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	require.NotEmpty(t, envelope.RequestID)
	require.NoError(t, json.Unmarshal(envelope.Data, v))
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) dto.ErrorResponse {
	t.Helper()
	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}
