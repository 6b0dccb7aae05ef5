// Package validators implements the input validators and the registry that
// routes action inputs to them.
//
// # Validator Architecture
//
// Each validator implements a single contract: given an input name and its
// string value, return nil or a *ValidationError. The validators are grouped
// into focused files:
//
//   - boolean.go: true/false literals
//   - version.go: semver, CalVer, and language-specific version schemes
//   - token.go: GitHub token formats
//   - numeric.go: integers with inclusive ranges
//   - docker.go: image names, tags, platform lists
//   - file.go: relative path safety
//   - network.go: email, URL, hostname shapes
//   - security.go: cross-cutting injection and secret-leak screen
//   - codeql.go: CodeQL language and query-suite identifiers
//   - expression.go: the ${{ ... }} exemption shared by all validators
//   - registry.go: per-action orchestration and custom validators
//
// Validators are stateless: calling Validate twice with the same value yields
// the same result.

package validators

import "github.com/github/validate-inputs/pkg/conventions"

// Validator checks a single input value.
type Validator interface {
	// Name returns the validator's type tag (e.g. "boolean", "docker-tag").
	Name() string

	// Validate returns nil when value is acceptable for the named input.
	Validate(input, value string) error
}

// ForType constructs the built-in validator for a type tag. Ranged tags
// (numeric) take their bounds from the rule. The boolean result is false for
// unknown tags and for the opaque "string" tag, which imposes no format.
func ForType(tag string, rule conventions.Rule) (Validator, bool) {
	switch tag {
	case conventions.TypeBoolean:
		return BooleanValidator{}, true
	case conventions.TypeVersion:
		return VersionValidator{Scheme: SchemeFlexible}, true
	case conventions.TypeSemver:
		return VersionValidator{Scheme: SchemeSemver}, true
	case conventions.TypeCalver:
		return VersionValidator{Scheme: SchemeCalver}, true
	case conventions.TypeGoVersion:
		return VersionValidator{Scheme: SchemeGo}, true
	case conventions.TypeNodeVersion:
		return VersionValidator{Scheme: SchemeNode}, true
	case conventions.TypeDotNetVersion:
		return VersionValidator{Scheme: SchemeDotNet}, true
	case conventions.TypeTerraformVersion:
		return VersionValidator{Scheme: SchemeTerraform}, true
	case conventions.TypeToken:
		return TokenValidator{}, true
	case conventions.TypeNumeric:
		v := NumericValidator{}
		if rule.Ranged {
			v.Ranged = true
			v.Min = rule.Min
			v.Max = rule.Max
		}
		return v, true
	case conventions.TypeDockerImage:
		return DockerValidator{Kind: DockerImage}, true
	case conventions.TypeDockerTag:
		return DockerValidator{Kind: DockerTag}, true
	case conventions.TypeDockerPlatform:
		return DockerValidator{Kind: DockerPlatform}, true
	case conventions.TypeFile:
		return FileValidator{}, true
	case conventions.TypeURL:
		return NetworkValidator{Kind: NetworkURL}, true
	case conventions.TypeEmail:
		return NetworkValidator{Kind: NetworkEmail}, true
	case conventions.TypeHostname:
		return NetworkValidator{Kind: NetworkHostname}, true
	case conventions.TypeCodeQLLanguage:
		return CodeQLValidator{Kind: CodeQLLanguages}, true
	case conventions.TypeCodeQLSuite:
		return CodeQLValidator{Kind: CodeQLSuites}, true
	case conventions.TypeSecurity:
		return SecurityValidator{}, true
	default:
		return nil, false
	}
}
