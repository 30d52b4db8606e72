package contact

import (
	"errors"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// emailPattern accepts any local@domain.tld shape, including some invalid
// addresses such as ones with consecutive dots.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// tagKinds maps a failing struct tag to the kind reported for it.
var tagKinds = map[string]Kind{
	"notblank":     MissingField,
	"simple_email": InvalidFormat,
}

// Validator checks submissions. The zero value is not usable; call NewValidator.
type Validator struct {
	v *validator.Validate
}

// NewValidator builds a Validator with the contact rules registered.
func NewValidator() *Validator {
	v := validator.New()
	v.RegisterTagNameFunc(func(sf reflect.StructField) string {
		name := strings.SplitN(sf.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	RegisterValidators(v)
	return &Validator{v: v}
}

// RegisterValidators installs the notblank and simple_email tags on v.
func RegisterValidators(v *validator.Validate) {
	_ = v.RegisterValidation("notblank", NotBlank)
	_ = v.RegisterValidation("simple_email", SimpleEmail)
}

// NotBlank fails when the value is empty after trimming surrounding whitespace.
func NotBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

// SimpleEmail fails unless the value has the local@domain.tld shape.
func SimpleEmail(fl validator.FieldLevel) bool {
	return emailPattern.MatchString(fl.Field().String())
}

// Validate returns the failing rules of s. It has no side effects.
func (val *Validator) Validate(s Submission) ValidationResult {
	result := ValidationResult{}

	err := val.v.Struct(s)
	if err == nil {
		return result
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		// Struct only returns InvalidValidationError for non-struct input.
		panic(err)
	}
	for _, fe := range verrs {
		f := Field(fe.Field())
		kind, ok := tagKinds[fe.Tag()]
		if !ok {
			kind = InvalidFormat
		}
		result[f] = &FieldError{Field: f, Kind: kind}
	}
	return result
}

var defaultValidator = NewValidator()

// Validate checks s with the package default Validator.
func Validate(s Submission) ValidationResult {
	return defaultValidator.Validate(s)
}
