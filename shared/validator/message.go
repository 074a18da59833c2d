package validator

import (
	"errors"
	"reflect"
	"strings"

	val "github.com/go-playground/validator/v10"
)

var messages = map[string]string{
	"required":    "{field} is required",
	"gte":         "{field} must be greater than or equal to {param}",
	"lte":         "{field} must be less than or equal to {param}",
	"oneof":       "{field} must be one of {param}",
	"max":         "{field} must be less than or equal to {param}",
	"min":         "{field} must be greater than or equal to {param}",
	"email":       "{field} must be a valid email address",
	"eq":          "{field} must be {param}",
	"clock":       "{field} must be a time in HH:MM format",
	"date":        "{field} must be a date in YYYY-MM-DD format",
	"mimetypes":   "{field} must be one of the allowed file types",
	"maxfilesize": "{field} must not exceed {param} MB",
	"selfcheck":   "{field} is invalid",
}

// Length bounds on strings and lists read better as counts.
var lengthMessages = map[string]map[reflect.Kind]string{
	"min": {
		reflect.String: "{field} must be at least {param} characters",
		reflect.Slice:  "{field} must contain at least {param} items",
	},
	"max": {
		reflect.String: "{field} must be at most {param} characters",
		reflect.Slice:  "{field} must contain at most {param} items",
	},
}

// message renders the first validation failure with a known template.
func message(err error) string {
	var valErrors val.ValidationErrors
	if !errors.As(err, &valErrors) {
		return err.Error()
	}

	for _, fieldErr := range valErrors {
		template := lookup(fieldErr)
		if template == "" {
			continue
		}

		return strings.NewReplacer("{field}", fieldErr.Field(), "{param}", fieldErr.Param()).Replace(template)
	}

	return valErrors.Error()
}

func lookup(fieldErr val.FieldError) string {
	if byKind, ok := lengthMessages[fieldErr.Tag()]; ok {
		if template, ok := byKind[fieldErr.Kind()]; ok {
			return template
		}
	}

	return messages[fieldErr.Tag()]
}
