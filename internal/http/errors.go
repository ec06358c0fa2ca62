package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/guttosm/spool-service/internal/circuitbreaker"
	"github.com/guttosm/spool-service/internal/domain/dto"
	"github.com/guttosm/spool-service/internal/i18n"
	"github.com/guttosm/spool-service/internal/service"
)

var notFoundKeys = map[string]string{
	"vendor":    i18n.ErrKeyVendorNotFound,
	"filament":  i18n.ErrKeyFilamentNotFound,
	"spool":     i18n.ErrKeySpoolNotFound,
	"print_job": i18n.ErrKeyPrintJobNotFound,
}

// useWeightField has a translated message of its own.
const useWeightField = "use_weight"

// respondError maps a service error onto a status code and translated message.
// conflictKey names the 409 message for the operation at hand.
func respondError(builder *ResponseBuilder, err error, conflictKey string) {
	var verr *dto.ValidationError
	var fieldErrs validator.ValidationErrors
	var nf *service.NotFoundError
	var perr *paramError

	switch {
	case errors.As(err, &perr):
		builder.ErrorWithDetails(http.StatusBadRequest, perr.messageKey, map[string]string{perr.name: perr.raw}, err)
	case errors.As(err, &fieldErrs) && len(fieldErrs) > 0:
		details := dto.FieldErrors(fieldErrs)
		first := fieldErrs[0]
		if first.Field() == useWeightField {
			builder.ErrorWithDetails(http.StatusBadRequest, i18n.ErrKeyValidationUseWeight, details, err)
			return
		}
		builder.InvalidFields(first.Field()+": "+dto.FieldMessage(first), details, err)
	case errors.As(err, &verr):
		if verr.Field == useWeightField {
			builder.ErrorWithDetails(http.StatusBadRequest, i18n.ErrKeyValidationUseWeight, map[string]string{verr.Field: verr.Message}, err)
			return
		}
		builder.ValidationError(verr)
	case errors.Is(err, service.ErrInvalidInput):
		builder.ErrorWithMessage(http.StatusBadRequest, err.Error(), err)
	case errors.As(err, &nf):
		key, ok := notFoundKeys[nf.Resource]
		if !ok {
			key = i18n.ErrKeyNotFound
		}
		builder.Error(http.StatusNotFound, key, err)
	case errors.Is(err, service.ErrNotFound):
		builder.Error(http.StatusNotFound, i18n.ErrKeyNotFound, err)
	case errors.Is(err, service.ErrConflict):
		if conflictKey == "" {
			conflictKey = i18n.ErrKeyConflict
		}
		builder.Error(http.StatusConflict, conflictKey, err)
	case errors.Is(err, circuitbreaker.ErrCircuitOpen), errors.Is(err, service.ErrRepositoryNotConfigured):
		builder.Error(http.StatusServiceUnavailable, i18n.ErrKeyServiceUnavailable, err)
	case errors.Is(err, context.DeadlineExceeded):
		builder.Error(http.StatusGatewayTimeout, i18n.ErrKeyTimeout, err)
	default:
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
	}
}

// respondBindError answers a body that could not be decoded or validated.
func respondBindError(builder *ResponseBuilder, err error) {
	var verr *dto.ValidationError
	var fieldErrs validator.ValidationErrors
	var tooLarge *http.MaxBytesError
	switch {
	case errors.As(err, &verr), errors.As(err, &fieldErrs):
		respondError(builder, err, "")
	case errors.As(err, &tooLarge):
		builder.Error(http.StatusRequestEntityTooLarge, i18n.ErrKeyPayloadTooLarge, err)
	default:
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
	}
}
