package middleware

import (
	"errors"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/spool-service/internal/domain/dto"
	"github.com/guttosm/spool-service/internal/i18n"
	"github.com/guttosm/spool-service/internal/logger"
	"github.com/guttosm/spool-service/internal/metrics"
)

// Recovery turns a handler panic into a translated 500. When the handler had
// already started its response only the status is kept and the connection
// is left to finish. http.ErrAbortHandler is re-raised for net/http.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if err, ok := rec.(error); ok && errors.Is(err, http.ErrAbortHandler) {
				panic(rec)
			}

			metrics.RecordPanic(c)
			requestID := GetRequestID(c)
			written := c.Writer.Written()

			log := logger.WithRequestID(requestID)
			log.Error().
				Interface("panic", rec).
				Str("method", c.Request.Method).
				Str("route", c.FullPath()).
				Bool("response_started", written).
				Bytes("stack", debug.Stack()).
				Msg("Recovered from handler panic")

			if written {
				c.Abort()
				return
			}
			message := i18n.GetTranslator().Translate(i18n.ErrKeyInternalError, i18n.GetLocale(c))
			c.AbortWithStatusJSON(http.StatusInternalServerError,
				dto.NewError(dto.ErrCodeInternal, message, requestID))
		}()
		c.Next()
	}
}
