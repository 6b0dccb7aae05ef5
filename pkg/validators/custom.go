// This file holds the built-in action-specific validators. Each one checks a
// cross-input constraint that no single-input validator can express, and
// registers itself at package init.

package validators

import "strings"

func init() {
	RegisterCustom(dockerBuildValidator{})
	RegisterCustom(createReleaseValidator{})
}

// dockerBuildValidator enforces docker-build input coherence: pushing an
// image requires a tag to push under.
type dockerBuildValidator struct{}

func (dockerBuildValidator) Action() string { return "docker-build" }

func (dockerBuildValidator) Validate(inputs map[string]string, c *Collector) {
	push := strings.EqualFold(strings.TrimSpace(inputs["push"]), "true")
	if !push {
		return
	}
	if strings.TrimSpace(inputs["image-tag"]) == "" && strings.TrimSpace(inputs["tag"]) == "" {
		c.Add(NewValidationError("image-tag", "",
			"is required when push is true",
			"Set 'image-tag' (or 'tag') to the tag the built image should be pushed as"))
	}
}

// createReleaseValidator enforces create-release input coherence: a draft
// release cannot also be marked latest, and the tag must carry a version.
type createReleaseValidator struct{}

func (createReleaseValidator) Action() string { return "create-release" }

func (createReleaseValidator) Validate(inputs map[string]string, c *Collector) {
	draft := strings.EqualFold(strings.TrimSpace(inputs["draft"]), "true")
	latest := strings.EqualFold(strings.TrimSpace(inputs["make-latest"]), "true")
	if draft && latest {
		c.Add(NewValidationError("make-latest", "true",
			"cannot be combined with draft: true",
			"Publish the release before marking it latest, or drop 'make-latest'"))
	}

	if tag := strings.TrimSpace(inputs["tag-name"]); tag != "" && !IsExpression(tag) {
		v := VersionValidator{Scheme: SchemeFlexible}
		if err := v.Validate("tag-name", tag); err != nil {
			c.Add(err)
		}
	}
}
