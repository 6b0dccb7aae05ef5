package validators

import (
	"regexp"
	"strings"

	"github.com/github/validate-inputs/pkg/constants"
	"github.com/github/validate-inputs/pkg/conventions"
	"github.com/github/validate-inputs/pkg/logger"
)

var securityLog = logger.New("validators:security")

// Secret-like literal patterns. A raw credential in a plain input means it is
// already exposed in the workflow file; flag it so it gets rotated and moved
// into repository secrets.
var secretLikePatterns = []*regexp.Regexp{
	regexp.MustCompile(`ghp_[A-Za-z0-9]{36,}`),
	regexp.MustCompile(`github_pat_[A-Za-z0-9_]{22,}`),
	regexp.MustCompile(`ghs_[A-Za-z0-9]{36,}`),
	regexp.MustCompile(`AKIA[0-9A-Z]{16}`),
	regexp.MustCompile(`-----BEGIN [A-Z ]*PRIVATE KEY-----`),
}

// SecurityValidator is the cross-cutting screen applied to every present
// input: it flags injection-indicative shell syntax and secret-like literals.
// It is also the typed validator for inputs whose names suggest credentials
// (password, secret) where no format can be enforced.
type SecurityValidator struct{}

// Name returns the validator's type tag.
func (SecurityValidator) Name() string { return conventions.TypeSecurity }

// Validate screens value for injection patterns and leaked credentials.
func (SecurityValidator) Validate(input, value string) error {
	if IsExpression(value) {
		return nil
	}

	for _, indicator := range constants.InjectionIndicators {
		if strings.Contains(value, indicator) {
			securityLog.Printf("Injection indicator %q in input %s", indicator, input)
			return NewValidationError(input, value,
				"contains shell injection pattern '"+indicator+"'",
				"Remove shell syntax from the value; pass data through environment variables instead")
		}
	}

	for _, pattern := range secretLikePatterns {
		if pattern.MatchString(value) {
			// Do not echo the matched credential back into logs.
			return NewValidationError(input, "",
				"appears to contain a hardcoded credential",
				"Move the credential into repository secrets and reference it as ${{ secrets.<NAME> }}")
		}
	}

	return nil
}

// Screen applies the security validator to an input only when the typed
// validator for that input would not already catch shell syntax. Token
// inputs are excluded: a legitimate token never contains the indicators, and
// the token validator reports a clearer error.
func Screen(input, value string, typedValidator Validator) error {
	if typedValidator != nil {
		switch typedValidator.Name() {
		case conventions.TypeSecurity, conventions.TypeToken, conventions.TypeFile:
			return nil
		}
	}
	return SecurityValidator{}.Validate(input, value)
}
