package shared

import (
	"strings"

	"github.com/go-playground/validator"
	"github.com/pkg/errors"
)

var logLevels = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}

// NewValidator returns a validator with the custom rules used by keepme registered.
func NewValidator() *validator.Validate {
	validate := validator.New()

	err := validate.RegisterValidation("log_level", func(fl validator.FieldLevel) bool {
		return logLevels[strings.ToLower(fl.Field().String())]
	})
	if err != nil {
		panic(err)
	}

	return validate
}

// ValidateConfig checks config & returns all failed rules as a single error.
func ValidateConfig(config *Config) error {
	err := NewValidator().Struct(config)
	if err != nil {
		return errors.Wrap(err, "invalid config")
	}
	return nil
}
