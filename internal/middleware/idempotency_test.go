package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newIdempotentRouter(cfg IdempotencyConfig, calls *int, status int) *gin.Engine {
	router := gin.New()
	router.Use(Idempotency(cfg))
	handler := func(c *gin.Context) {
		*calls++
		c.JSON(status, gin.H{"call": *calls})
	}
	router.POST("/api/spools/:id/use", handler)
	router.GET("/api/spools/:id", handler)
	return router
}

func sendJSON(router *gin.Engine, method, path, key, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")
	if key != "" {
		req.Header.Set(IdempotencyKeyHeader, key)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestIdempotency(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name         string
		status       int
		method       string
		firstKey     string
		secondKey    string
		firstBody    string
		secondBody   string
		wantCalls    int
		wantReplayed bool
	}{
		{
			name:   "replays retried use with same key",
			status: http.StatusOK, method: http.MethodPost,
			firstKey: "k1", secondKey: "k1",
			firstBody: `{"use_weight":10}`, secondBody: `{"use_weight":10}`,
			wantCalls: 1, wantReplayed: true,
		},
		{
			name:   "different body is a different request",
			status: http.StatusOK, method: http.MethodPost,
			firstKey: "k1", secondKey: "k1",
			firstBody: `{"use_weight":10}`, secondBody: `{"use_weight":20}`,
			wantCalls: 2,
		},
		{
			name:   "without key every request runs",
			status: http.StatusOK, method: http.MethodPost,
			firstBody: `{"use_weight":10}`, secondBody: `{"use_weight":10}`,
			wantCalls: 2,
		},
		{
			name:   "reads are never cached",
			status: http.StatusOK, method: http.MethodGet,
			firstKey: "k1", secondKey: "k1",
			wantCalls: 2,
		},
		{
			name:   "failures are not cached",
			status: http.StatusConflict, method: http.MethodPost,
			firstKey: "k1", secondKey: "k1",
			firstBody: `{"use_weight":10}`, secondBody: `{"use_weight":10}`,
			wantCalls: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultIdempotencyConfig()
			defer cfg.Cache.Stop()
			calls := 0
			router := newIdempotentRouter(cfg, &calls, tt.status)
			path := "/api/spools/abc"
			if tt.method == http.MethodPost {
				path += "/use"
			}

			first := sendJSON(router, tt.method, path, tt.firstKey, tt.firstBody)
			second := sendJSON(router, tt.method, path, tt.secondKey, tt.secondBody)

			assert.Equal(t, tt.status, first.Code)
			assert.Equal(t, tt.status, second.Code)
			assert.Equal(t, tt.wantCalls, calls)
			if tt.wantReplayed {
				assert.Equal(t, "true", second.Header().Get(IdempotencyReplayedHeader))
				assert.Equal(t, first.Body.String(), second.Body.String())
				assert.Contains(t, second.Header().Get("Content-Type"), "application/json")
			} else {
				assert.Empty(t, second.Header().Get(IdempotencyReplayedHeader))
			}
		})
	}
}

func TestIdempotency_Disabled(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cfg := DefaultIdempotencyConfig()
	cfg.Cache.Stop()
	cfg.Enabled = false

	calls := 0
	router := newIdempotentRouter(cfg, &calls, http.StatusOK)

	sendJSON(router, http.MethodPost, "/api/spools/abc/use", "k1", `{}`)
	sendJSON(router, http.MethodPost, "/api/spools/abc/use", "k1", `{}`)

	assert.Equal(t, 2, calls)
}

func TestIdempotency_KeysAreScopedPerClient(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cfg := DefaultIdempotencyConfig()
	defer cfg.Cache.Stop()
	calls := 0
	router := newIdempotentRouter(cfg, &calls, http.StatusOK)

	for _, apiKey := range []string{"client-a", "client-b"} {
		req := httptest.NewRequest(http.MethodPost, "/api/spools/abc/use", bytes.NewReader([]byte(`{"use_weight":1}`)))
		req.Header.Set(IdempotencyKeyHeader, "shared")
		req.Header.Set(APIKeyHeader, apiKey)
		router.ServeHTTP(httptest.NewRecorder(), req)
	}

	assert.Equal(t, 2, calls)
}

func TestIdempotency_RetryDuringOriginalIsRejected(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cfg := DefaultIdempotencyConfig()
	defer cfg.Cache.Stop()

	started := make(chan struct{})
	finish := make(chan struct{})
	router := gin.New()
	router.Use(RequestID(), Idempotency(cfg))
	router.POST("/api/spools/:id/use", func(c *gin.Context) {
		close(started)
		<-finish
		c.JSON(http.StatusOK, gin.H{"remaining_weight": 750})
	})

	done := make(chan *httptest.ResponseRecorder)
	go func() {
		done <- sendJSON(router, http.MethodPost, "/api/spools/abc/use", "k1", `{"use_weight":250}`)
	}()
	<-started

	retry := sendJSON(router, http.MethodPost, "/api/spools/abc/use", "k1", `{"use_weight":250}`)
	assert.Equal(t, http.StatusConflict, retry.Code)
	assert.Contains(t, retry.Body.String(), "still in progress")

	close(finish)
	first := <-done
	require.Equal(t, http.StatusOK, first.Code)

	replayed := sendJSON(router, http.MethodPost, "/api/spools/abc/use", "k1", `{"use_weight":250}`)
	assert.Equal(t, "true", replayed.Header().Get(IdempotencyReplayedHeader))
	assert.Equal(t, first.Body.String(), replayed.Body.String())
}

func TestIdempotency_PanicReleasesKey(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cfg := DefaultIdempotencyConfig()
	defer cfg.Cache.Stop()

	calls := 0
	router := gin.New()
	router.Use(gin.CustomRecovery(func(c *gin.Context, _ any) { c.AbortWithStatus(http.StatusInternalServerError) }))
	router.Use(Idempotency(cfg))
	router.POST("/api/spools/:id/use", func(c *gin.Context) {
		calls++
		if calls == 1 {
			panic("boom")
		}
		c.Status(http.StatusOK)
	})

	assert.Equal(t, http.StatusInternalServerError, sendJSON(router, http.MethodPost, "/api/spools/abc/use", "k1", `{}`).Code)
	assert.Equal(t, http.StatusOK, sendJSON(router, http.MethodPost, "/api/spools/abc/use", "k1", `{}`).Code)
	assert.Equal(t, 2, calls)
}
