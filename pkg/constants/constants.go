// Package constants centralizes shared values used across the validator:
// environment naming conventions, allowed value tables, and display limits.
package constants

import "path/filepath"

// CLIName is the binary name used in help text and error messages.
const CLIName = "validate-inputs"

// InputEnvPrefix is the prefix GitHub Actions uses when exposing action
// inputs as environment variables.
const InputEnvPrefix = "INPUT_"

// GitHubActionsEnvVar is set to "true" when running inside a GitHub Actions
// runner; it selects workflow-command annotation output.
const GitHubActionsEnvVar = "GITHUB_ACTIONS"

// DefaultRulesDirName is the repository-relative directory that holds
// per-action rule documents.
var DefaultRulesDirName = filepath.Join(".github", "validation")

// RuleFileExtensions are the file extensions scanned for rule documents.
var RuleFileExtensions = []string{".yml", ".yaml"}

// MaxDockerTagLength is the maximum length of a Docker tag per the OCI
// distribution spec.
const MaxDockerTagLength = 128

// MaxValueDisplayLength truncates offending values in error messages so a
// hostile input cannot flood CI logs.
const MaxValueDisplayLength = 64

// AllowedDockerPlatforms enumerates the os/arch pairs accepted in
// comma-separated platform lists (the buildx targets the actions build for).
var AllowedDockerPlatforms = []string{
	"linux/amd64",
	"linux/arm64",
	"linux/arm/v6",
	"linux/arm/v7",
	"linux/386",
	"linux/ppc64le",
	"linux/s390x",
	"linux/riscv64",
	"windows/amd64",
	"darwin/amd64",
	"darwin/arm64",
}

// CodeQLLanguages enumerates the language identifiers accepted by the CodeQL
// CLI, including the compound aliases introduced with CodeQL 2.x.
var CodeQLLanguages = []string{
	"actions",
	"c-cpp",
	"cpp",
	"csharp",
	"go",
	"java",
	"java-kotlin",
	"javascript",
	"javascript-typescript",
	"python",
	"ruby",
	"swift",
}

// CodeQLQuerySuites enumerates the built-in query suite names.
var CodeQLQuerySuites = []string{
	"default",
	"security-extended",
	"security-and-quality",
	"security-experimental",
}

// InjectionIndicators are substrings that indicate an attempt to smuggle
// shell syntax through an input value.
var InjectionIndicators = []string{
	";",
	"&&",
	"|",
	"`",
	"$(",
}

// DotNetMajorMin and DotNetMajorMax bound the .NET major versions the setup
// actions support.
const (
	DotNetMajorMin = 3
	DotNetMajorMax = 20
)

// NodeMajorMin and NodeMajorMax bound the Node.js major versions the setup
// actions support.
const (
	NodeMajorMin = 14
	NodeMajorMax = 24
)
