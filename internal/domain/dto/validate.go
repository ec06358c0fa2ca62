package dto

import (
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

func init() {
	// Report rejected fields by their JSON names.
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(jsonName)
	}
}

func jsonName(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}
	return name
}

// Check runs the binding tags of req, then its Validate method when it has
// one. Services call it so requests built outside the HTTP layer, such as
// the seed loader's, obey the same rules.
func Check(req any) error {
	if err := binding.Validator.ValidateStruct(req); err != nil {
		return err
	}
	if v, ok := req.(interface{ Validate() error }); ok {
		return v.Validate()
	}
	return nil
}

// FieldMessage describes why a field failed its binding tag.
func FieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "gt":
		if fe.Param() == "0" {
			return "must be a positive number"
		}
		return "must be greater than " + fe.Param()
	case "gte":
		if fe.Param() == "0" {
			return "must not be negative"
		}
		return "must be at least " + fe.Param()
	case "max":
		return "must be at most " + fe.Param() + " characters"
	default:
		return "failed the " + fe.Tag() + " rule"
	}
}

// FieldErrors maps each rejected field to its message.
func FieldErrors(errs validator.ValidationErrors) map[string]string {
	details := make(map[string]string, len(errs))
	for _, fe := range errs {
		details[fe.Field()] = FieldMessage(fe)
	}
	return details
}
