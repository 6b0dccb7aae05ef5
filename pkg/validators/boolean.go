package validators

import (
	"strings"

	"github.com/github/validate-inputs/pkg/conventions"
)

// BooleanValidator accepts the literals true and false, case-insensitively.
// GitHub Actions inputs are always strings, so "True" from a workflow file is
// as common as "true".
type BooleanValidator struct{}

// Name returns the validator's type tag.
func (BooleanValidator) Name() string { return conventions.TypeBoolean }

// Validate checks value is a boolean literal.
func (BooleanValidator) Validate(input, value string) error {
	if IsExpression(value) {
		return nil
	}
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "true", "false":
		return nil
	}
	return NewValidationError(input, value,
		"must be 'true' or 'false'",
		"Boolean inputs accept only the literals true and false (any letter case)")
}
