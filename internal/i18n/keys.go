package i18n

// Request errors.
const (
	ErrKeyInvalidRequest      = "error.invalid_request"
	ErrKeyInvalidRequestBody  = "error.invalid_request_body"
	ErrKeyInvalidID           = "error.invalid_id"
	ErrKeyInvalidQuery        = "error.invalid_query"
	ErrKeyPayloadTooLarge     = "error.payload_too_large"
	ErrKeyValidationUseWeight = "error.validation.use_weight"
)

// Authentication and throttling.
const (
	ErrKeyAPIKeyRequired    = "error.api_key_required"
	ErrKeyInvalidAPIKey     = "error.invalid_api_key"
	ErrKeyRateLimitExceeded = "error.rate_limit_exceeded"
	// ErrKeyRequestInProgress answers a retry racing the original request.
	ErrKeyRequestInProgress = "error.request_in_progress"
)

// Inventory state.
const (
	ErrKeyNotFound         = "error.not_found"
	ErrKeyVendorNotFound   = "error.vendor_not_found"
	ErrKeyFilamentNotFound = "error.filament_not_found"
	ErrKeySpoolNotFound    = "error.spool_not_found"
	ErrKeyPrintJobNotFound = "error.print_job_not_found"
	ErrKeyConflict         = "error.conflict"
	ErrKeyVendorInUse      = "error.vendor_in_use"
	ErrKeyFilamentInUse    = "error.filament_in_use"
	ErrKeySpoolArchived    = "error.spool_archived"
)

// Server side failures.
const (
	ErrKeyInternalError      = "error.internal_error"
	ErrKeyTimeout            = "error.timeout"
	ErrKeyServiceUnavailable = "error.service_unavailable"
)

// SuccessKeySpoolUsed confirms filament was consumed from a spool.
const SuccessKeySpoolUsed = "success.spool_used"
