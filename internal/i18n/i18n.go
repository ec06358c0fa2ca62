// Package i18n translates API messages into the caller's Accept-Language.
// English, Portuguese and Dutch are bundled; anything else falls back to English.
package i18n

import (
	"sync"

	"github.com/gin-gonic/gin"
	"golang.org/x/text/language"
)

const (
	// DefaultLocale is the default language locale (English).
	DefaultLocale = "en"
	// AcceptLanguageHeader is the HTTP header name for language preference.
	AcceptLanguageHeader = "Accept-Language"
)

var (
	// defaultTranslator is the singleton translator instance.
	defaultTranslator *Translator
	translatorOnce    sync.Once

	// supported lists the locales with messages; the first is the fallback.
	supported = []language.Tag{language.English, language.Portuguese, language.Dutch}
	matcher   = language.NewMatcher(supported)
)

// Translator handles message translation for different locales.
type Translator struct {
	messages map[string]map[string]string
}

// NewTranslator creates a new translator with the default messages.
func NewTranslator() *Translator {
	return &Translator{
		messages: getDefaultMessages(),
	}
}

// GetTranslator returns the default singleton translator instance.
func GetTranslator() *Translator {
	translatorOnce.Do(func() {
		defaultTranslator = NewTranslator()
	})
	return defaultTranslator
}

// Translate returns the translated message for the given key and locale.
// Falls back to DefaultLocale if the locale or key is not found, and to the
// key itself as a last resort.
func (t *Translator) Translate(key, locale string) string {
	if locale == "" {
		locale = DefaultLocale
	}

	if msg, ok := t.messages[locale][key]; ok {
		return msg
	}
	if msg, ok := t.messages[DefaultLocale][key]; ok {
		return msg
	}
	return key
}

// GetLocale picks the best supported locale from the Accept-Language header.
func GetLocale(c *gin.Context) string {
	return ParseLocale(c.GetHeader(AcceptLanguageHeader))
}

// ParseLocale matches an Accept-Language value against the supported
// locales and returns the base language, or DefaultLocale.
func ParseLocale(acceptLanguage string) string {
	if acceptLanguage == "" {
		return DefaultLocale
	}

	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return DefaultLocale
	}

	_, index, confidence := matcher.Match(tags...)
	if confidence == language.No {
		return DefaultLocale
	}
	base, _ := supported[index].Base()
	return base.String()
}

// getDefaultMessages returns the default message translations.
func getDefaultMessages() map[string]map[string]string {
	return map[string]map[string]string{
		"en": {
			"error.invalid_request":       "Invalid request",
			"error.invalid_request_body":  "Invalid request body",
			"error.invalid_id":            "Invalid identifier",
			"error.invalid_query":         "Invalid query parameter",
			"error.payload_too_large":     "Request body is too large",
			"error.internal_error":        "An unexpected error occurred",
			"error.api_key_required":      "API key is required",
			"error.invalid_api_key":       "Invalid API key",
			"error.not_found":             "Not found",
			"error.vendor_not_found":      "Vendor not found",
			"error.filament_not_found":    "Filament not found",
			"error.spool_not_found":       "Spool not found",
			"error.print_job_not_found":   "Print job not found",
			"error.rate_limit_exceeded":   "Too many requests, please try again later",
			"error.conflict":              "Conflict",
			"error.request_in_progress":   "A request with this Idempotency-Key is still in progress",
			"error.vendor_in_use":         "Vendor is still used by filaments",
			"error.filament_in_use":       "Filament is still used by spools",
			"error.spool_archived":        "Spool is archived",
			"error.validation.use_weight": "use_weight: must be a positive number",
			"error.timeout":               "Request timed out",
			"error.service_unavailable":   "Database temporarily unavailable",

			"success.spool_used": "Filament usage recorded",
		},
		"pt": {
			"error.invalid_request":       "Requisição inválida",
			"error.invalid_request_body":  "Corpo da requisição inválido",
			"error.invalid_id":            "Identificador inválido",
			"error.invalid_query":         "Parâmetro de consulta inválido",
			"error.payload_too_large":     "Corpo da requisição é grande demais",
			"error.internal_error":        "Ocorreu um erro inesperado",
			"error.api_key_required":      "Chave de API é obrigatória",
			"error.invalid_api_key":       "Chave de API inválida",
			"error.not_found":             "Não encontrado",
			"error.vendor_not_found":      "Fabricante não encontrado",
			"error.filament_not_found":    "Filamento não encontrado",
			"error.spool_not_found":       "Carretel não encontrado",
			"error.print_job_not_found":   "Trabalho de impressão não encontrado",
			"error.rate_limit_exceeded":   "Muitas requisições, tente novamente mais tarde",
			"error.conflict":              "Conflito",
			"error.request_in_progress":   "Uma requisição com esta Idempotency-Key ainda está em andamento",
			"error.vendor_in_use":         "Fabricante ainda é usado por filamentos",
			"error.filament_in_use":       "Filamento ainda é usado por carretéis",
			"error.spool_archived":        "Carretel está arquivado",
			"error.validation.use_weight": "use_weight: deve ser um número positivo",
			"error.timeout":               "Tempo limite da requisição esgotado",
			"error.service_unavailable":   "Banco de dados temporariamente indisponível",

			"success.spool_used": "Consumo de filamento registrado",
		},
		"nl": {
			"error.invalid_request":       "Ongeldig verzoek",
			"error.invalid_request_body":  "Ongeldige aanvraag body",
			"error.invalid_id":            "Ongeldige identificatie",
			"error.invalid_query":         "Ongeldige queryparameter",
			"error.payload_too_large":     "Aanvraag body is te groot",
			"error.internal_error":        "Er is een onverwachte fout opgetreden",
			"error.api_key_required":      "API-sleutel is vereist",
			"error.invalid_api_key":       "Ongeldige API-sleutel",
			"error.not_found":             "Niet gevonden",
			"error.vendor_not_found":      "Fabrikant niet gevonden",
			"error.filament_not_found":    "Filament niet gevonden",
			"error.spool_not_found":       "Spoel niet gevonden",
			"error.print_job_not_found":   "Printopdracht niet gevonden",
			"error.rate_limit_exceeded":   "Te veel verzoeken, probeer het later opnieuw",
			"error.conflict":              "Conflict",
			"error.request_in_progress":   "Een verzoek met deze Idempotency-Key wordt nog verwerkt",
			"error.vendor_in_use":         "Fabrikant wordt nog gebruikt door filamenten",
			"error.filament_in_use":       "Filament wordt nog gebruikt door spoelen",
			"error.spool_archived":        "Spoel is gearchiveerd",
			"error.validation.use_weight": "use_weight: moet een positief getal zijn",
			"error.timeout":               "Verzoek is verlopen",
			"error.service_unavailable":   "Database tijdelijk niet beschikbaar",

			"success.spool_used": "Filamentverbruik geregistreerd",
		},
	}
}
