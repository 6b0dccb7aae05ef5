package validators

import (
	"regexp"

	"github.com/github/validate-inputs/pkg/conventions"
)

// Known GitHub token shapes. Classic personal access tokens are ghp_ plus 36
// alphanumerics; fine-grained tokens are github_pat_ with a longer body;
// installation tokens are ghs_. Lengths are checked as minimums since GitHub
// has grown token bodies before.
var (
	classicTokenRegex     = regexp.MustCompile(`^ghp_[A-Za-z0-9]{36,}$`)
	fineGrainedTokenRegex = regexp.MustCompile(`^github_pat_[A-Za-z0-9_]{22,}$`)
	installationTokenRe   = regexp.MustCompile(`^ghs_[A-Za-z0-9]{36,}$`)
)

// TokenValidator accepts GitHub token literals and token expressions.
// Most workflows pass ${{ github.token }} or ${{ secrets.MY_TOKEN }}, which
// the expression exemption accepts; literal tokens are pattern-matched
// against the known prefixes.
type TokenValidator struct{}

// Name returns the validator's type tag.
func (TokenValidator) Name() string { return conventions.TypeToken }

// Validate checks value is a plausible GitHub token.
func (TokenValidator) Validate(input, value string) error {
	if IsExpression(value) {
		return nil
	}
	if classicTokenRegex.MatchString(value) ||
		fineGrainedTokenRegex.MatchString(value) ||
		installationTokenRe.MatchString(value) {
		return nil
	}
	return NewValidationError(input, "", // never echo a would-be credential
		"does not look like a GitHub token",
		"Pass ${{ github.token }}, ${{ secrets.<NAME> }}, or a token starting with ghp_, github_pat_, or ghs_")
}
