// Package web defines common components for a web application.
package web

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

// Response holds the common response type for all APIs.
type Response struct {
	Data  any    `json:"data,omitempty"`
	Error string `json:"error,omitempty"`
}

// Error wraps a given err into json friendly struct.
func Error(err error) Response {
	return Response{Error: err.Error()}
}

// GetErrorMsg returns a human readable message for the first failed
// validation of a request binding error. Falls back to the raw error text
// for non-validation errors such as malformed json.
func GetErrorMsg(err error) string {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return err.Error()
	}

	field := ve[0]

	switch field.Tag() {
	case "required":
		return field.Field() + " field is required"
	case "alphanum":
		return field.Field() + " field must contain only alphanumeric characters"
	case "min":
		return field.Field() + " field must be at least " + field.Param() + " long"
	case "max":
		return field.Field() + " field must be at most " + field.Param() + " long"
	case "uuid":
		return field.Field() + " field must be a valid uuid"
	}

	return field.Field() + " field is invalid"
}
