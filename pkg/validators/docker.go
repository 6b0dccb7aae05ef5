package validators

import (
	"fmt"
	"regexp"
	"slices"
	"strings"

	"github.com/github/validate-inputs/pkg/constants"
	"github.com/github/validate-inputs/pkg/conventions"
	"github.com/github/validate-inputs/pkg/logger"
)

var dockerLog = logger.New("validators:docker")

// DockerKind selects which Docker identifier a DockerValidator checks.
type DockerKind int

const (
	// DockerImage validates image references (repository, optional registry
	// host and digest, no tag).
	DockerImage DockerKind = iota
	// DockerTag validates image tags.
	DockerTag
	// DockerPlatform validates comma-separated os/arch platform lists.
	DockerPlatform
)

var (
	// Image names follow the distribution reference grammar: lowercase path
	// components joined by the allowed separators, optionally preceded by a
	// registry host with port and followed by a digest.
	dockerPathComponent = `[a-z0-9]+(?:(?:\.|_|__|-+)[a-z0-9]+)*`
	dockerImageRegex    = regexp.MustCompile(
		`^(?:[a-z0-9]+(?:[.-][a-z0-9]+)*(?::\d+)?/)?` + // registry host
			dockerPathComponent + `(?:/` + dockerPathComponent + `)*` + // repository path
			`(?:@sha256:[a-f0-9]{64})?$`) // digest

	dockerTagRegex = regexp.MustCompile(`^[A-Za-z0-9_][A-Za-z0-9_.-]*$`)

	// Date-stamped nightly tags produced by the scheduled builds.
	nightlyTagRegex = regexp.MustCompile(`^nightly-\d{8}-\d{4}$`)
)

// DockerValidator validates Docker image names, tags, or platform lists.
type DockerValidator struct {
	Kind DockerKind
}

// Name returns the validator's type tag.
func (v DockerValidator) Name() string {
	switch v.Kind {
	case DockerTag:
		return conventions.TypeDockerTag
	case DockerPlatform:
		return conventions.TypeDockerPlatform
	default:
		return conventions.TypeDockerImage
	}
}

// Validate checks value against the selected Docker identifier grammar.
func (v DockerValidator) Validate(input, value string) error {
	if IsExpression(value) {
		return nil
	}
	value = strings.TrimSpace(value)

	switch v.Kind {
	case DockerTag:
		return v.validateTag(input, value)
	case DockerPlatform:
		return v.validatePlatforms(input, value)
	default:
		return v.validateImage(input, value)
	}
}

func (v DockerValidator) validateImage(input, value string) error {
	if value == "" || !dockerImageRegex.MatchString(value) {
		return NewValidationError(input, value,
			"is not a valid Docker image name",
			"Image names are lowercase path components like ghcr.io/my-org/my-image")
	}
	return nil
}

func (v DockerValidator) validateTag(input, value string) error {
	switch value {
	case "latest", "nightly":
		return nil
	}
	if nightlyTagRegex.MatchString(value) {
		return nil
	}
	if len(value) > constants.MaxDockerTagLength {
		return NewValidationError(input, value,
			fmt.Sprintf("tag exceeds %d characters", constants.MaxDockerTagLength),
			"Shorten the tag")
	}
	if value == "" || !dockerTagRegex.MatchString(value) {
		return NewValidationError(input, value,
			"is not a valid Docker tag",
			"Tags start with an alphanumeric or underscore and contain only [A-Za-z0-9_.-]")
	}
	return nil
}

func (v DockerValidator) validatePlatforms(input, value string) error {
	if value == "" {
		return NewValidationError(input, value,
			"platform list is empty",
			"Provide one or more comma-separated platforms like linux/amd64,linux/arm64")
	}
	for platform := range strings.SplitSeq(value, ",") {
		platform = strings.TrimSpace(platform)
		if !slices.Contains(constants.AllowedDockerPlatforms, platform) {
			dockerLog.Printf("Rejecting platform %q for input %s", platform, input)
			return NewValidationError(input, platform,
				"is not a supported platform",
				fmt.Sprintf("Supported platforms: %s", strings.Join(constants.AllowedDockerPlatforms, ", ")))
		}
	}
	return nil
}
