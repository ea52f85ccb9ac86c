// Package form evaluates per-field validation rules for the auth screens.
//
// Rules are declared as data and evaluated with go-playground/validator; each
// field yields at most one message, the first failing rule in declaration
// order (required, then minimum length, then email format).
package form

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/nfrund/instaclone/internal/domain"
)

// validatorInstance is shared because the validator caches parsed tags.
var validatorInstance = validator.New()

// Errors maps a field name to the message to show next to it.
type Errors map[string]string

// Rule describes how one field is validated.
type Rule struct {
	Field string

	Required        bool
	RequiredMessage string

	MinLength        int
	MinLengthMessage string

	Email        bool
	EmailMessage string
}

// tag renders the rule as a validator tag, e.g. "required,min=5".
func (r Rule) tag() string {
	var parts []string
	if r.Required {
		parts = append(parts, "required")
	} else {
		parts = append(parts, "omitempty")
	}
	if r.MinLength > 0 {
		parts = append(parts, fmt.Sprintf("min=%d", r.MinLength))
	}
	if r.Email {
		parts = append(parts, "email")
	}
	return strings.Join(parts, ",")
}

func (r Rule) message(tag string) string {
	switch tag {
	case "required":
		return r.RequiredMessage
	case "min":
		return r.MinLengthMessage
	case "email":
		return r.EmailMessage
	}
	return fmt.Sprintf("%s is invalid.", r.Field)
}

// check returns the message for value, or "" when it passes.
func (r Rule) check(value string) string {
	err := validatorInstance.Var(value, r.tag())
	if err == nil {
		return ""
	}
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		return r.message(fieldErrs[0].Tag())
	}
	return r.message("")
}

// Rules is an ordered rule set, one rule per field.
type Rules []Rule

// Fields lists the field names in declaration order.
func (rs Rules) Fields() []string {
	fields := make([]string, 0, len(rs))
	for _, r := range rs {
		fields = append(fields, r.Field)
	}
	return fields
}

// Has reports whether the rule set declares field.
func (rs Rules) Has(field string) bool {
	_, ok := rs.lookup(field)
	return ok
}

func (rs Rules) lookup(field string) (Rule, bool) {
	for _, r := range rs {
		if r.Field == field {
			return r, true
		}
	}
	return Rule{}, false
}

// ValidateField evaluates a single field. It returns "" when the value passes.
func (rs Rules) ValidateField(field, value string) (string, error) {
	r, ok := rs.lookup(field)
	if !ok {
		return "", fmt.Errorf("%w: %q", domain.ErrUnknownField, field)
	}
	return r.check(value), nil
}

// Validate evaluates every declared field against values. Fields missing
// from values are validated as empty. Passing fields are absent from the result.
func (rs Rules) Validate(values map[string]string) Errors {
	errs := Errors{}
	for _, r := range rs {
		if msg := r.check(values[r.Field]); msg != "" {
			errs[r.Field] = msg
		}
	}
	return errs
}

// Valid reports whether every declared field passes.
func (rs Rules) Valid(values map[string]string) bool {
	return len(rs.Validate(values)) == 0
}
