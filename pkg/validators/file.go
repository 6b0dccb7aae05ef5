package validators

import (
	"strings"

	"github.com/github/validate-inputs/pkg/constants"
	"github.com/github/validate-inputs/pkg/conventions"
)

// FileValidator accepts workspace-relative paths. Absolute paths, parent
// traversal, and shell metacharacters are rejected because path inputs flow
// into shell steps that run with the action's permissions.
type FileValidator struct{}

// Name returns the validator's type tag.
func (FileValidator) Name() string { return conventions.TypeFile }

// Validate checks value is a safe relative path.
func (FileValidator) Validate(input, value string) error {
	if IsExpression(value) {
		return nil
	}
	value = strings.TrimSpace(value)

	if value == "" {
		return NewValidationError(input, value,
			"path is empty",
			"Provide a path relative to the workspace")
	}
	if strings.HasPrefix(value, "/") || strings.HasPrefix(value, "\\") {
		return NewValidationError(input, value,
			"absolute paths are not allowed",
			"Use a path relative to the workspace root")
	}
	// Windows drive letters are absolute too.
	if len(value) >= 2 && value[1] == ':' {
		return NewValidationError(input, value,
			"absolute paths are not allowed",
			"Use a path relative to the workspace root")
	}
	for segment := range strings.SplitSeq(strings.ReplaceAll(value, "\\", "/"), "/") {
		if segment == ".." {
			return NewValidationError(input, value,
				"parent directory traversal is not allowed",
				"Remove '..' segments from the path")
		}
	}
	for _, indicator := range constants.InjectionIndicators {
		if strings.Contains(value, indicator) {
			return NewValidationError(input, value,
				"path contains shell metacharacters",
				"Remove shell syntax from the path")
		}
	}
	return nil
}
