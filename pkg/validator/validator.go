package validator

import (
	"github.com/go-playground/validator/v10"
)

// RequestValidator adapts go-playground/validator to echo's Validator
// interface so request DTO tags (oneof interview types, TTS speed bounds)
// are checked at bind time.
type RequestValidator struct {
	validate *validator.Validate
}

// New creates a RequestValidator
func New() *RequestValidator {
	return &RequestValidator{validate: validator.New()}
}

// Validate checks struct-level validation tags
func (rv *RequestValidator) Validate(i interface{}) error {
	return rv.validate.Struct(i)
}
