// This file provides the validation error type and error aggregation.
//
// Validators never panic and never return partial results: each check yields
// nil or a *ValidationError carrying the input name, the offending value
// (truncated for display), a message, and a fix suggestion. A Collector
// gathers errors from every applicable check so the caller reports all
// failing inputs in one pass; fail-fast mode stops at the first error.

package validators

import (
	"errors"
	"fmt"
	"strings"

	"github.com/github/validate-inputs/pkg/constants"
	"github.com/github/validate-inputs/pkg/logger"
)

var errorsLog = logger.New("validators:errors")

// ValidationError describes a single failing input.
type ValidationError struct {
	Input      string
	Value      string
	Message    string
	Suggestion string
}

// NewValidationError creates a ValidationError. The value is truncated for
// display so hostile inputs cannot flood CI logs.
func NewValidationError(input, value, message, suggestion string) *ValidationError {
	return &ValidationError{
		Input:      input,
		Value:      truncateValue(value),
		Message:    message,
		Suggestion: suggestion,
	}
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "input '%s': %s", e.Input, e.Message)
	if e.Value != "" {
		fmt.Fprintf(&sb, " (got: %s)", e.Value)
	}
	if e.Suggestion != "" {
		fmt.Fprintf(&sb, ". %s", e.Suggestion)
	}
	return sb.String()
}

func truncateValue(value string) string {
	if len(value) <= constants.MaxValueDisplayLength {
		return value
	}
	return value[:constants.MaxValueDisplayLength-3] + "..."
}

// Collector gathers validation errors across inputs. When failFast is set,
// Add returns the error immediately so callers can abort; otherwise errors
// accumulate and duplicates (by message) are dropped so a custom validator
// and a convention check reporting the same problem produce one error line.
type Collector struct {
	errors   []error
	seen     map[string]bool
	failFast bool
}

// NewCollector creates an error collector.
func NewCollector(failFast bool) *Collector {
	return &Collector{
		seen:     make(map[string]bool),
		failFast: failFast,
	}
}

// Add records an error. In fail-fast mode the error is returned so the caller
// can stop; otherwise Add returns nil. Nil and duplicate errors are ignored.
func (c *Collector) Add(err error) error {
	if err == nil {
		return nil
	}
	key := err.Error()
	if c.seen[key] {
		return nil
	}
	c.seen[key] = true

	errorsLog.Printf("Collected error: %v", err)
	if c.failFast {
		c.errors = append(c.errors, err)
		return err
	}
	c.errors = append(c.errors, err)
	return nil
}

// HasErrors reports whether any errors were collected.
func (c *Collector) HasErrors() bool {
	return len(c.errors) > 0
}

// Count returns the number of collected errors.
func (c *Collector) Count() int {
	return len(c.errors)
}

// Errors returns the collected errors in insertion order.
func (c *Collector) Errors() []error {
	out := make([]error, len(c.errors))
	copy(out, c.errors)
	return out
}

// Err returns the aggregated error via errors.Join, or nil when everything
// passed.
func (c *Collector) Err() error {
	switch len(c.errors) {
	case 0:
		return nil
	case 1:
		return c.errors[0]
	default:
		return errors.Join(c.errors...)
	}
}
