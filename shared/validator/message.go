package validator

import (
	"errors"
	"strings"

	val "github.com/go-playground/validator/v10"
)

// messages holds the client-facing text per rule; {field} and {param} are substituted.
var messages = map[string]string{
	"required": "{field} is required",
	"email":    "{field} must be a valid email address",
	"uuid":     "{field} must be a valid id",
	"oneof":    "{field} must be one of {param}",
	"gte":      "{field} must be greater than or equal to {param}",
	"min":      "{field} must be greater than or equal to {param}",
	"lte":      "{field} must be less than or equal to {param}",
	"max":      "{field} must be less than or equal to {param}",
	"gtfield":  "{field} must be after {param}",
	"date":     "{field} must be a date in YYYY-MM-DD format",
	"clock":    "{field} must be a time in HH:MM format",
	"money":    "{field} must be a non negative amount",
}

// message describes the first violation that has a known rule.
func message(err error) string {
	var violations val.ValidationErrors
	if !errors.As(err, &violations) {
		return err.Error()
	}

	for _, violation := range violations {
		template, ok := messages[violation.Tag()]
		if !ok {
			continue
		}

		return strings.NewReplacer("{field}", violation.Field(), "{param}", violation.Param()).Replace(template)
	}

	return violations.Error()
}
