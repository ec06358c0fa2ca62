package middleware

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/spool-service/internal/domain/dto"
	"github.com/guttosm/spool-service/internal/i18n"
	"github.com/guttosm/spool-service/internal/metrics"
)

const (
	// IdempotencyKeyHeader is the HTTP header name for idempotency key.
	IdempotencyKeyHeader = "Idempotency-Key"
	// IdempotencyReplayedHeader marks a response served from the cache.
	IdempotencyReplayedHeader = "X-Idempotency-Replayed"
	// IdempotencyKeyTTL is the TTL for cached idempotency responses.
	IdempotencyKeyTTL = 5 * time.Minute

	idempotencyCacheName = "idempotency_lookup"
)

// IdempotencyConfig holds configuration for idempotency middleware.
type IdempotencyConfig struct {
	Cache   *idempotencyCache
	TTL     time.Duration
	Enabled bool
}

// DefaultIdempotencyConfig returns default idempotency configuration.
func DefaultIdempotencyConfig() IdempotencyConfig {
	return IdempotencyConfig{
		Cache:   newIdempotencyCache(IdempotencyKeyTTL),
		TTL:     IdempotencyKeyTTL,
		Enabled: true,
	}
}

// Idempotency replays the stored response when a write is retried with the
// same Idempotency-Key, method, path, body and client. A retried
// POST /spools/{id}/use therefore never consumes filament twice. A retry that
// arrives while the original is still running gets 409.
func Idempotency(cfg IdempotencyConfig) gin.HandlerFunc {
	if !cfg.Enabled || cfg.Cache == nil {
		return func(c *gin.Context) {
			c.Next()
		}
	}

	return func(c *gin.Context) {
		key := c.GetHeader(IdempotencyKeyHeader)
		if key == "" || !isWriteMethod(c.Request.Method) {
			c.Next()
			return
		}

		cacheKey, err := fingerprint(key, clientIdentifier(c), c.Request)
		if err != nil {
			_ = c.Error(err)
			c.Next()
			return
		}

		state, cached := cfg.Cache.reserve(cacheKey)
		switch state {
		case replay:
			metrics.RecordCacheOperation(idempotencyCacheName, "hit")
			c.Header(IdempotencyReplayedHeader, "true")
			c.Data(cached.StatusCode, cached.ContentType, cached.Body)
			c.Abort()
			return
		case inFlight:
			metrics.RecordCacheOperation(idempotencyCacheName, "in_flight")
			msg := i18n.GetTranslator().Translate(i18n.ErrKeyRequestInProgress, i18n.GetLocale(c))
			c.AbortWithStatusJSON(http.StatusConflict, dto.NewError(dto.ErrCodeConflict, msg, GetRequestID(c)))
			return
		}
		metrics.RecordCacheOperation(idempotencyCacheName, "miss")

		writer := &capturingWriter{ResponseWriter: c.Writer}
		c.Writer = writer
		completed := false
		defer func() {
			if !completed {
				cfg.Cache.release(cacheKey)
			}
		}()

		c.Next()

		if status := writer.Status(); status >= 200 && status < 300 {
			cfg.Cache.complete(cacheKey, &cachedResponse{
				StatusCode:  status,
				ContentType: writer.Header().Get("Content-Type"),
				Body:        writer.body.Bytes(),
			})
			completed = true
		}
	}
}

func isWriteMethod(method string) bool {
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
		return true
	}
	return false
}

// fingerprint hashes the key with the request identity and restores the body.
func fingerprint(idempotencyKey, client string, req *http.Request) (string, error) {
	hasher := sha256.New()
	for _, part := range []string{idempotencyKey, client, req.Method, req.URL.Path} {
		hasher.Write([]byte(part))
		hasher.Write([]byte{0})
	}

	if req.Body != nil {
		body, err := io.ReadAll(req.Body)
		if err != nil {
			return "", err
		}
		req.Body = io.NopCloser(bytes.NewReader(body))
		hasher.Write(body)
	}

	return hex.EncodeToString(hasher.Sum(nil)), nil
}

// capturingWriter tees the response body for caching.
type capturingWriter struct {
	gin.ResponseWriter
	body bytes.Buffer
}

func (w *capturingWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *capturingWriter) WriteString(s string) (int, error) {
	w.body.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}
