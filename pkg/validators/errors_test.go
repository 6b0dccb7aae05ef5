//go:build !integration

package validators

import (
	"strings"
	"testing"

	"github.com/github/validate-inputs/pkg/constants"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidationErrorFormat(t *testing.T) {
	err := NewValidationError("max-retries", "ten", "must be an integer", "Provide a whole number")
	msg := err.Error()
	assert.Contains(t, msg, "input 'max-retries'")
	assert.Contains(t, msg, "must be an integer")
	assert.Contains(t, msg, "got: ten")
	assert.Contains(t, msg, "Provide a whole number")
}

func TestValidationErrorOmitsEmptyParts(t *testing.T) {
	err := NewValidationError("github-token", "", "does not look like a GitHub token", "")
	msg := err.Error()
	assert.NotContains(t, msg, "got:")
	assert.Equal(t, "input 'github-token': does not look like a GitHub token", msg)
}

func TestValidationErrorTruncatesLongValues(t *testing.T) {
	long := strings.Repeat("x", 500)
	err := NewValidationError("message", long, "bad", "")
	assert.LessOrEqual(t, len(err.Value), constants.MaxValueDisplayLength)
	assert.True(t, strings.HasSuffix(err.Value, "..."))
}

func TestCollectorAccumulates(t *testing.T) {
	c := NewCollector(false)

	require.NoError(t, c.Add(nil), "nil errors are ignored")
	assert.False(t, c.HasErrors())

	assert.NoError(t, c.Add(NewValidationError("a", "1", "bad", "")))
	assert.NoError(t, c.Add(NewValidationError("b", "2", "worse", "")))
	assert.True(t, c.HasErrors())
	assert.Equal(t, 2, c.Count())
	assert.Len(t, c.Errors(), 2)

	joined := c.Err()
	require.Error(t, joined)
	assert.Contains(t, joined.Error(), "input 'a'")
	assert.Contains(t, joined.Error(), "input 'b'")
}

func TestCollectorDeduplicates(t *testing.T) {
	c := NewCollector(false)
	c.Add(NewValidationError("a", "1", "bad", ""))
	c.Add(NewValidationError("a", "1", "bad", ""))
	assert.Equal(t, 1, c.Count())
}

func TestCollectorFailFast(t *testing.T) {
	c := NewCollector(true)
	first := NewValidationError("a", "1", "bad", "")
	assert.Equal(t, error(first), c.Add(first), "fail-fast returns the error to the caller")
	assert.Equal(t, 1, c.Count())
}

func TestCollectorEmpty(t *testing.T) {
	c := NewCollector(false)
	assert.NoError(t, c.Err())
	assert.Zero(t, c.Count())
	assert.Empty(t, c.Errors())
}
