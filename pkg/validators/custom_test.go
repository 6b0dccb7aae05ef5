//go:build !integration

package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDockerBuildCustomValidator(t *testing.T) {
	r := NewRegistry()
	require.True(t, r.HasCustom("docker-build"))

	// push=true with no tag is the cross-field failure the custom validator
	// exists for.
	result := r.ValidateAction("docker-build", map[string]string{
		"push":  "true",
		"image": "ghcr.io/org/app",
	}, nil, Options{})
	assert.False(t, result.Passed)
	require.Len(t, result.Errors, 1)
	assert.ErrorContains(t, result.Errors[0], "image-tag")

	result = r.ValidateAction("docker-build", map[string]string{
		"push":      "true",
		"image":     "ghcr.io/org/app",
		"image-tag": "v1.2.3",
	}, nil, Options{})
	assert.True(t, result.Passed, "errors: %v", result.Errors)

	result = r.ValidateAction("docker-build", map[string]string{
		"push":  "false",
		"image": "ghcr.io/org/app",
	}, nil, Options{})
	assert.True(t, result.Passed, "no tag needed when not pushing")
}

func TestCreateReleaseCustomValidator(t *testing.T) {
	r := NewRegistry()
	require.True(t, r.HasCustom("create-release"))

	result := r.ValidateAction("create-release", map[string]string{
		"draft":       "true",
		"make-latest": "true",
		"tag-name":    "v1.2.3",
	}, nil, Options{})
	assert.False(t, result.Passed)
	require.Len(t, result.Errors, 1)
	assert.ErrorContains(t, result.Errors[0], "make-latest")

	result = r.ValidateAction("create-release", map[string]string{
		"draft":    "true",
		"tag-name": "v1.2.3",
	}, nil, Options{})
	assert.True(t, result.Passed, "errors: %v", result.Errors)

	result = r.ValidateAction("create-release", map[string]string{
		"tag-name": "not a version",
	}, nil, Options{})
	assert.False(t, result.Passed)
}

func TestCustomValidatorsOnlyRunForTheirAction(t *testing.T) {
	r := NewRegistry()

	// The same push=true inputs pass under an action with no custom rules.
	result := r.ValidateAction("unrelated-action", map[string]string{
		"push": "true",
	}, nil, Options{})
	assert.True(t, result.Passed, "errors: %v", result.Errors)
}
