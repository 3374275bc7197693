// Package validation checks option names and raw option arguments
// with go-playground/validator tags.
package validation

import (
	"github.com/go-playground/validator/v10"
)

// nameTag is the rule applied to option names at registration.
const nameTag = "required"

// Validator checks option names and arguments against validator tags.
type Validator struct {
	validate *validator.Validate
}

// NewDefault returns a validator using a default go-playground/validator instance.
func NewDefault() *Validator {
	return NewWith(validator.New())
}

// NewWith returns a validator using the provided go-playground/validator
// instance, which may have custom validations registered on it.
func NewWith(validate *validator.Validate) *Validator {
	if validate == nil {
		validate = validator.New()
	}

	return &Validator{validate: validate}
}

// Name checks that an option name can be registered.
func (v *Validator) Name(name string) error {
	return v.validate.Var(name, nameTag)
}

// Value checks a single raw argument of an option against the given tag.
// An empty tag always validates.
func (v *Validator) Value(option, value, tag string) error {
	if tag == "" {
		return nil
	}

	if err := v.validate.Var(value, tag); err != nil {
		return &invalidVarError{
			option:       option,
			value:        value,
			validatorErr: err,
		}
	}

	return nil
}

// Values checks all arguments of an option, stopping at the first invalid one.
// It returns the offending value along with the error.
func (v *Validator) Values(option string, values []string, tag string) (string, error) {
	if tag == "" {
		return "", nil
	}

	for _, value := range values {
		if err := v.Value(option, value, tag); err != nil {
			return value, err
		}
	}

	return "", nil
}
