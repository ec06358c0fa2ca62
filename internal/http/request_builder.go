package http

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/spool-service/internal/domain/dto"
	"github.com/guttosm/spool-service/internal/i18n"
	"github.com/guttosm/spool-service/internal/middleware"
)

// maxBodyBytes caps JSON request bodies. Inventory payloads are a few hundred bytes.
const maxBodyBytes = 1 << 20

// envelopePool recycles response envelopes. gin encodes synchronously, so an
// envelope is free again as soon as c.JSON returns.
type envelopePool[T any] struct {
	pool sync.Pool
}

func (p *envelopePool[T]) get() *T {
	if v, ok := p.pool.Get().(*T); ok {
		return v
	}
	return new(T)
}

func (p *envelopePool[T]) put(v *T) {
	var zero T
	*v = zero
	p.pool.Put(v)
}

var (
	successEnvelopes envelopePool[dto.SuccessResponse]
	errorEnvelopes   envelopePool[dto.ErrorResponse]
)

// Validator is implemented by request DTOs that check their own fields.
type Validator interface {
	Validate() error
}

// BindJSON decodes a body of at most maxBodyBytes into a new T, checks its
// binding tags, then runs Validate when T implements Validator. Tag failures
// come back as validator.ValidationErrors.
func BindJSON[T any](c *gin.Context) (*T, error) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBodyBytes)

	req := new(T)
	if err := c.ShouldBindJSON(req); err != nil {
		return nil, err
	}
	if v, ok := any(req).(Validator); ok {
		if err := v.Validate(); err != nil {
			return nil, err
		}
	}
	return req, nil
}

// ResponseBuilder writes the success and error envelopes for one request.
type ResponseBuilder struct {
	c *gin.Context
}

func NewResponseBuilder(c *gin.Context) *ResponseBuilder {
	return &ResponseBuilder{c: c}
}

func (b *ResponseBuilder) Success(statusCode int, data interface{}) {
	resp := successEnvelopes.get()
	defer successEnvelopes.put(resp)

	resp.Data = data
	resp.RequestID = middleware.GetRequestID(b.c)
	resp.Timestamp = time.Now().UTC()
	b.c.JSON(statusCode, resp)
}

func (b *ResponseBuilder) SuccessOK(data interface{}) {
	b.Success(http.StatusOK, data)
}

// Created answers 201 and points Location at the new resource.
func (b *ResponseBuilder) Created(location string, data interface{}) {
	if location != "" {
		b.c.Header("Location", location)
	}
	b.Success(http.StatusCreated, data)
}

func (b *ResponseBuilder) NoContent() {
	b.c.Status(http.StatusNoContent)
}

// Error answers with the message for messageKey in the caller's locale.
// err, when set, is attached to the gin context for the error handler to log.
func (b *ResponseBuilder) Error(statusCode int, messageKey string, err error) {
	b.abort(statusCode, b.translate(messageKey), nil, err)
}

// ErrorWithDetails is Error with a field to message map in details.
func (b *ResponseBuilder) ErrorWithDetails(statusCode int, messageKey string, details map[string]string, err error) {
	b.abort(statusCode, b.translate(messageKey), details, err)
}

// ErrorWithMessage answers with message as is.
func (b *ResponseBuilder) ErrorWithMessage(statusCode int, message string, err error) {
	b.abort(statusCode, message, nil, err)
}

// ValidationError answers 400 with the rejected field in details.
func (b *ResponseBuilder) ValidationError(verr *dto.ValidationError) {
	b.InvalidFields(verr.Error(), map[string]string{verr.Field: verr.Message}, verr)
}

// InvalidFields answers 400 with every rejected field in details.
func (b *ResponseBuilder) InvalidFields(message string, details map[string]string, err error) {
	b.abort(http.StatusBadRequest, message, details, err)
}

func (b *ResponseBuilder) translate(key string) string {
	return i18n.GetTranslator().Translate(key, i18n.GetLocale(b.c))
}

func (b *ResponseBuilder) abort(statusCode int, message string, details map[string]string, err error) {
	if err != nil {
		_ = b.c.Error(err)
	}

	resp := errorEnvelopes.get()
	defer errorEnvelopes.put(resp)

	resp.Error = dto.ErrCodeFromStatus(statusCode)
	resp.Message = message
	resp.Details = details
	resp.RequestID = middleware.GetRequestID(b.c)
	resp.Timestamp = time.Now().UTC()
	b.c.AbortWithStatusJSON(statusCode, resp)
}
