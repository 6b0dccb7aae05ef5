package validators

import (
	"fmt"
	"slices"
	"strings"

	"github.com/github/validate-inputs/pkg/constants"
	"github.com/github/validate-inputs/pkg/conventions"
)

// CodeQLKind selects which CodeQL identifier a CodeQLValidator checks.
type CodeQLKind int

const (
	// CodeQLLanguages validates comma-separated language identifiers.
	CodeQLLanguages CodeQLKind = iota
	// CodeQLSuites validates query suite names or .qls suite paths.
	CodeQLSuites
)

// CodeQLValidator validates CodeQL language lists and query suite strings.
type CodeQLValidator struct {
	Kind CodeQLKind
}

// Name returns the validator's type tag.
func (v CodeQLValidator) Name() string {
	if v.Kind == CodeQLSuites {
		return conventions.TypeCodeQLSuite
	}
	return conventions.TypeCodeQLLanguage
}

// Validate checks value against the selected CodeQL identifier grammar.
func (v CodeQLValidator) Validate(input, value string) error {
	if IsExpression(value) {
		return nil
	}
	value = strings.TrimSpace(value)

	if v.Kind == CodeQLSuites {
		return v.validateSuite(input, value)
	}
	return v.validateLanguages(input, value)
}

func (v CodeQLValidator) validateLanguages(input, value string) error {
	if value == "" {
		return NewValidationError(input, value,
			"language list is empty",
			fmt.Sprintf("Provide one or more of: %s", strings.Join(constants.CodeQLLanguages, ", ")))
	}
	for lang := range strings.SplitSeq(value, ",") {
		lang = strings.ToLower(strings.TrimSpace(lang))
		if !slices.Contains(constants.CodeQLLanguages, lang) {
			return NewValidationError(input, lang,
				"is not a CodeQL language",
				fmt.Sprintf("Supported languages: %s", strings.Join(constants.CodeQLLanguages, ", ")))
		}
	}
	return nil
}

func (v CodeQLValidator) validateSuite(input, value string) error {
	if slices.Contains(constants.CodeQLQuerySuites, value) {
		return nil
	}
	// Custom suites are referenced by a repository-relative .qls path.
	if strings.HasSuffix(value, ".qls") {
		return FileValidator{}.Validate(input, value)
	}
	return NewValidationError(input, value,
		"is not a CodeQL query suite",
		fmt.Sprintf("Use one of %s or a repository-relative .qls path", strings.Join(constants.CodeQLQuerySuites, ", ")))
}
