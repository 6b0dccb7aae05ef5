package validators

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/github/validate-inputs/pkg/conventions"
)

// NumericValidator accepts integers, optionally within an inclusive
// [Min, Max] range supplied by the matching rule.
type NumericValidator struct {
	Ranged bool
	Min    int
	Max    int
}

// Name returns the validator's type tag.
func (NumericValidator) Name() string { return conventions.TypeNumeric }

// Validate checks value parses as an integer within range.
func (v NumericValidator) Validate(input, value string) error {
	if IsExpression(value) {
		return nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return NewValidationError(input, value,
			"must be an integer",
			"Provide a whole number without units or separators")
	}
	if v.Ranged && (n < v.Min || n > v.Max) {
		return NewValidationError(input, value,
			fmt.Sprintf("must be between %d and %d", v.Min, v.Max),
			fmt.Sprintf("Provide a value in the inclusive range [%d, %d]", v.Min, v.Max))
	}
	return nil
}
