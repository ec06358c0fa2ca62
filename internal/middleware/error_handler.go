package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/spool-service/internal/circuitbreaker"
	"github.com/guttosm/spool-service/internal/domain/dto"
	"github.com/guttosm/spool-service/internal/i18n"
	"github.com/guttosm/spool-service/internal/logger"
	"github.com/rs/zerolog"
)

// statusClientClosed is logged when the caller went away before we answered.
const statusClientClosed = 499

// ErrorHandler logs the last error a handler attached with c.Error. When the
// handler did not write a response, one is derived from the error.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		last := c.Errors.Last()
		if last == nil {
			return
		}

		requestID := GetRequestID(c)
		written := c.Writer.Written()
		status, messageKey := c.Writer.Status(), ""
		if !written {
			status, messageKey = classify(last.Err)
		}

		l := logger.WithRequestID(requestID)
		l.WithLevel(levelForError(status)).
			Err(last.Err).
			Int("status_code", status).
			Str("method", c.Request.Method).
			Str("route", c.FullPath()).
			Int("errors", len(c.Errors)).
			Msg("Request failed")

		if written || status == statusClientClosed {
			return
		}
		msg := i18n.GetTranslator().Translate(messageKey, i18n.GetLocale(c))
		c.JSON(status, dto.NewError(dto.ErrCodeFromStatus(status), msg, requestID))
	}
}

func levelForError(status int) zerolog.Level {
	switch {
	case status == statusClientClosed:
		return zerolog.DebugLevel
	case status >= http.StatusInternalServerError:
		return zerolog.ErrorLevel
	default:
		return zerolog.WarnLevel
	}
}

// classify maps errors that escaped the handlers to a status and message key.
func classify(err error) (int, string) {
	switch {
	case errors.Is(err, context.Canceled):
		return statusClientClosed, ""
	case errors.Is(err, circuitbreaker.ErrCircuitOpen):
		return http.StatusServiceUnavailable, i18n.ErrKeyServiceUnavailable
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, i18n.ErrKeyTimeout
	default:
		return http.StatusInternalServerError, i18n.ErrKeyInternalError
	}
}
