package middleware

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/spool-service/internal/domain/dto"
	"github.com/guttosm/spool-service/internal/i18n"
	"github.com/guttosm/spool-service/internal/logger"
)

const (
	// APIKeyHeader carries the key on every write from scripts and printers.
	APIKeyHeader = "X-API-Key"
	// APIKeyQuery is accepted for read-only links such as a shared summary page.
	APIKeyQuery = "api_key"

	bearerPrefix = "Bearer "

	// apiKeyIDKey holds the fingerprint of the key that authenticated the request.
	apiKeyIDKey = "api_key_id"
)

// apiKeyFrom reads the key from X-API-Key, then a bearer token, then the
// query string. The query string only counts for safe methods.
func apiKeyFrom(c *gin.Context) string {
	if key := c.GetHeader(APIKeyHeader); key != "" {
		return key
	}
	if auth := c.GetHeader("Authorization"); len(auth) > len(bearerPrefix) && strings.EqualFold(auth[:len(bearerPrefix)], bearerPrefix) {
		return strings.TrimSpace(auth[len(bearerPrefix):])
	}
	if c.Request.Method == http.MethodGet || c.Request.Method == http.MethodHead {
		return c.Query(APIKeyQuery)
	}
	return ""
}

// KeyFingerprint returns a short, non-reversible label for an API key.
func KeyFingerprint(key string) string {
	sum := sha256.Sum256([]byte(key))
	return hex.EncodeToString(sum[:4])
}

// GetAPIKeyID returns the fingerprint of the key used for this request, if any.
func GetAPIKeyID(c *gin.Context) string {
	return c.GetString(apiKeyIDKey)
}

// APIKeyAuth rejects requests that do not present one of validKeys.
// Keys mapped to false are disabled. With no enabled keys every request passes.
func APIKeyAuth(validKeys map[string]bool) gin.HandlerFunc {
	keys := make([][]byte, 0, len(validKeys))
	for k, enabled := range validKeys {
		if enabled && k != "" {
			keys = append(keys, []byte(k))
		}
	}

	return func(c *gin.Context) {
		if len(keys) == 0 {
			c.Next()
			return
		}

		key := apiKeyFrom(c)
		if key == "" {
			rejectKey(c, i18n.ErrKeyAPIKeyRequired, "")
			return
		}
		if !matchesAny(keys, []byte(key)) {
			rejectKey(c, i18n.ErrKeyInvalidAPIKey, KeyFingerprint(key))
			return
		}

		c.Set(apiKeyIDKey, KeyFingerprint(key))
		c.Next()
	}
}

// matchesAny compares against every key so timing does not reveal which one matched.
func matchesAny(keys [][]byte, candidate []byte) bool {
	found := 0
	for _, k := range keys {
		found |= subtle.ConstantTimeCompare(k, candidate)
	}
	return found == 1
}

func rejectKey(c *gin.Context, messageKey, fingerprint string) {
	requestID := GetRequestID(c)
	log := logger.FromContext(c.Request.Context())
	log.Warn().
		Str("path", c.Request.URL.Path).
		Str("ip", c.ClientIP()).
		Str("key_id", fingerprint).
		Msg("API key rejected")

	msg := i18n.GetTranslator().Translate(messageKey, i18n.GetLocale(c))
	c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewError(dto.ErrCodeUnauthorized, msg, requestID))
}
