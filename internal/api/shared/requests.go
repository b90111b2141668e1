package shared

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
)

// Package-level validator shared by all request types; the instance is
// safe for concurrent use.
var validate = validator.New()

// DecodeJSON unmarshals the request body into v.
func DecodeJSON(r *http.Request, v interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return err
	}
	return nil
}

// ValidateRequest validates v, preferring its own Validate method when it
// has one and falling back to struct-tag validation otherwise.
func ValidateRequest(v interface{}) error {
	if validator, ok := v.(interface{ Validate() error }); ok {
		return validator.Validate()
	}

	return validate.Struct(v)
}
