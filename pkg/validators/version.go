package validators

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/github/validate-inputs/pkg/constants"
	"github.com/github/validate-inputs/pkg/conventions"
	"github.com/github/validate-inputs/pkg/logger"
)

var versionLog = logger.New("validators:version")

// VersionScheme selects which version grammar a VersionValidator enforces.
type VersionScheme int

const (
	// SchemeFlexible accepts semantic versions, CalVer, and "latest".
	SchemeFlexible VersionScheme = iota
	// SchemeSemver accepts strict MAJOR.MINOR.PATCH semantic versions.
	SchemeSemver
	// SchemeCalver accepts calendar versions (YYYY.MM, YYYY.MM.DD, YYYY.MM.DD.MICRO).
	SchemeCalver
	// SchemeGo accepts Go toolchain versions (1.x line, stable aliases).
	SchemeGo
	// SchemeNode accepts Node.js versions within the supported major range.
	SchemeNode
	// SchemeDotNet accepts .NET versions within the supported major range.
	SchemeDotNet
	// SchemeTerraform accepts Terraform semantic versions with optional v prefix.
	SchemeTerraform
)

// Pre-compiled version grammars. CalVer months and days are range-checked by
// the regex itself so "2025.13.40" never passes.
var (
	calverRegex = regexp.MustCompile(`^\d{4}\.(0?[1-9]|1[0-2])(\.(0?[1-9]|[12]\d|3[01])(\.\d+)?)?$`)

	goVersionRegex     = regexp.MustCompile(`^1\.\d+(\.(\d+|x))?$`)
	nodeVersionRegex   = regexp.MustCompile(`^(\d+)(\.\d+(\.(\d+|x))?|\.x)?$`)
	dotnetVersionRegex = regexp.MustCompile(`^(\d+)\.(\d+)(\.(\d+|x))?$`)
)

// VersionValidator validates version strings under a given scheme.
type VersionValidator struct {
	Scheme VersionScheme
}

// Name returns the validator's type tag.
func (v VersionValidator) Name() string {
	switch v.Scheme {
	case SchemeSemver:
		return conventions.TypeSemver
	case SchemeCalver:
		return conventions.TypeCalver
	case SchemeGo:
		return conventions.TypeGoVersion
	case SchemeNode:
		return conventions.TypeNodeVersion
	case SchemeDotNet:
		return conventions.TypeDotNetVersion
	case SchemeTerraform:
		return conventions.TypeTerraformVersion
	default:
		return conventions.TypeVersion
	}
}

// Validate checks value against the scheme's version grammar.
func (v VersionValidator) Validate(input, value string) error {
	if IsExpression(value) {
		return nil
	}
	value = strings.TrimSpace(value)

	switch v.Scheme {
	case SchemeSemver:
		if isStrictSemver(value) {
			return nil
		}
		return NewValidationError(input, value,
			"must be a semantic version (MAJOR.MINOR.PATCH)",
			"Use a version like 1.2.3 without leading zeros")

	case SchemeCalver:
		if calverRegex.MatchString(value) {
			return nil
		}
		return NewValidationError(input, value,
			"must be a calendar version",
			"Use a date-based version like 2025.10.18")

	case SchemeGo:
		if value == "stable" || value == "oldstable" || goVersionRegex.MatchString(value) {
			return nil
		}
		return NewValidationError(input, value,
			"must be a Go toolchain version",
			"Use a version like 1.22, 1.22.4, 1.22.x, or the aliases stable/oldstable")

	case SchemeNode:
		return v.validateNode(input, value)

	case SchemeDotNet:
		return v.validateDotNet(input, value)

	case SchemeTerraform:
		candidate := strings.TrimPrefix(value, "v")
		if value == "latest" || isStrictSemver(candidate) {
			return nil
		}
		return NewValidationError(input, value,
			"must be a Terraform version",
			"Use a semantic version like 1.9.5 (optionally prefixed with v) or latest")

	default: // SchemeFlexible
		candidate := strings.TrimPrefix(value, "v")
		if value == "latest" || isStrictSemver(candidate) || calverRegex.MatchString(value) {
			return nil
		}
		return NewValidationError(input, value,
			"must be a semantic version, a calendar version, or 'latest'",
			"Use a version like 1.2.3 or 2025.10.18")
	}
}

func (v VersionValidator) validateNode(input, value string) error {
	m := nodeVersionRegex.FindStringSubmatch(value)
	if m == nil {
		return NewValidationError(input, value,
			"must be a Node.js version",
			fmt.Sprintf("Use a major version between %d and %d, optionally with minor/patch (e.g. 20, 20.11, 20.11.1)",
				constants.NodeMajorMin, constants.NodeMajorMax))
	}
	major, err := strconv.Atoi(m[1])
	if err != nil || major < constants.NodeMajorMin || major > constants.NodeMajorMax {
		versionLog.Printf("Node major %s out of supported range for input %s", m[1], input)
		return NewValidationError(input, value,
			fmt.Sprintf("Node.js major version must be between %d and %d", constants.NodeMajorMin, constants.NodeMajorMax),
			"Pick a currently supported Node.js release line")
	}
	return nil
}

func (v VersionValidator) validateDotNet(input, value string) error {
	m := dotnetVersionRegex.FindStringSubmatch(value)
	if m == nil {
		return NewValidationError(input, value,
			"must be a .NET version (MAJOR.MINOR)",
			"Use a version like 8.0 or 8.0.x")
	}
	major, err := strconv.Atoi(m[1])
	if err != nil || major < constants.DotNetMajorMin || major > constants.DotNetMajorMax {
		return NewValidationError(input, value,
			fmt.Sprintf(".NET major version must be between %d and %d", constants.DotNetMajorMin, constants.DotNetMajorMax),
			"Pick a released .NET version")
	}
	// The newest supported major has no minor releases yet.
	if major == constants.DotNetMajorMax {
		minor, err := strconv.Atoi(m[2])
		if err != nil || minor != 0 {
			return NewValidationError(input, value,
				fmt.Sprintf(".NET %d only has minor version 0", constants.DotNetMajorMax),
				fmt.Sprintf("Use %d.0", constants.DotNetMajorMax))
		}
	}
	return nil
}

// isStrictSemver reports whether value is a strict MAJOR.MINOR.PATCH semantic
// version (no v prefix, no leading zeros, all three parts present).
func isStrictSemver(value string) bool {
	_, err := semver.StrictNewVersion(value)
	return err == nil
}
