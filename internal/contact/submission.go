// Package contact validates contact form submissions and turns them into a
// messaging-app deep link.
package contact

import (
	"errors"
	"strings"
)

// Field names a contact form input.
type Field string

const (
	FieldName    Field = "name"
	FieldEmail   Field = "email"
	FieldMessage Field = "message"
)

// Fields lists the form inputs in display order.
var Fields = []Field{FieldName, FieldEmail, FieldMessage}

var (
	ErrMissingField  = errors.New("missing field")
	ErrInvalidFormat = errors.New("invalid format")
)

// Kind classifies a validation failure.
type Kind int

const (
	MissingField Kind = iota + 1
	InvalidFormat
)

func (k Kind) String() string {
	switch k {
	case MissingField:
		return "MissingField"
	case InvalidFormat:
		return "InvalidFormat"
	default:
		return "Unknown"
	}
}

// Submission is the name/email/message triple typed into the contact form.
type Submission struct {
	Name    string `json:"name" form:"name" validate:"notblank"`
	Email   string `json:"email" form:"email" validate:"notblank,simple_email"`
	Message string `json:"message" form:"message" validate:"notblank"`
}

// Get returns the raw value of f.
func (s Submission) Get(f Field) string {
	switch f {
	case FieldName:
		return s.Name
	case FieldEmail:
		return s.Email
	case FieldMessage:
		return s.Message
	}
	return ""
}

// With returns a copy of s with f set to value.
func (s Submission) With(f Field, value string) Submission {
	switch f {
	case FieldName:
		s.Name = value
	case FieldEmail:
		s.Email = value
	case FieldMessage:
		s.Message = value
	}
	return s
}

// Trimmed returns s with surrounding whitespace removed from every field.
func (s Submission) Trimmed() Submission {
	return Submission{
		Name:    strings.TrimSpace(s.Name),
		Email:   strings.TrimSpace(s.Email),
		Message: strings.TrimSpace(s.Message),
	}
}

// IsZero reports whether every field is empty.
func (s Submission) IsZero() bool {
	return s == Submission{}
}

// FieldError is a single failed rule.
type FieldError struct {
	Field Field
	Kind  Kind
}

func (e *FieldError) Error() string {
	return e.Message()
}

// Message is the text shown next to the offending input.
func (e *FieldError) Message() string {
	label := strings.ToUpper(string(e.Field[:1])) + string(e.Field[1:])
	if e.Kind == InvalidFormat {
		return label + " is invalid"
	}
	return label + " is required"
}

func (e *FieldError) Unwrap() error {
	if e.Kind == InvalidFormat {
		return ErrInvalidFormat
	}
	return ErrMissingField
}

// ValidationResult maps each failing field to its error. An empty result means valid.
type ValidationResult map[Field]*FieldError

// Valid reports whether no rule failed.
func (r ValidationResult) Valid() bool {
	return len(r) == 0
}

// Messages flattens the result into field -> message, the shape rendered and returned as JSON.
func (r ValidationResult) Messages() map[string]string {
	out := make(map[string]string, len(r))
	for f, e := range r {
		out[string(f)] = e.Message()
	}
	return out
}

// Err joins the field errors in display order, or returns nil when valid.
func (r ValidationResult) Err() error {
	if r.Valid() {
		return nil
	}
	errs := make([]error, 0, len(r))
	for _, f := range Fields {
		if e, ok := r[f]; ok {
			errs = append(errs, e)
		}
	}
	return errors.Join(errs...)
}
