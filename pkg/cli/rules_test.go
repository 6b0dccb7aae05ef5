//go:build !integration

package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRulesLintCommand(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "good.yml"),
		[]byte("action: good\n"), 0o644))

	_, stderr, err := runCommand(t, "rules", "lint", "--rules-dir", dir)
	require.NoError(t, err)
	assert.Contains(t, stderr, "1 rule document(s) OK")
}

func TestRulesLintCommandFailsOnBrokenDocument(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "good.yml"),
		[]byte("action: good\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.yml"),
		[]byte("description: missing the action field\n"), 0o644))

	_, stderr, err := runCommand(t, "rules", "lint", "--rules-dir", dir)
	require.ErrorIs(t, err, ErrValidationFailed)
	assert.Contains(t, stderr, "broken.yml")
	assert.Contains(t, stderr, "1 of 2 rule document(s) failed")
}

func TestRulesLintCommandMissingDirectory(t *testing.T) {
	_, _, err := runCommand(t, "rules", "lint",
		"--rules-dir", filepath.Join(t.TempDir(), "absent"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrValidationFailed, "an unreadable directory is an operational error")
}

func TestRulesListCommandConventionTable(t *testing.T) {
	stdout, _, err := runCommand(t, "rules", "list", "--rules-dir", t.TempDir())
	require.NoError(t, err)

	assert.Contains(t, stdout, "PATTERN")
	assert.Contains(t, stdout, "go-version")
	assert.Contains(t, stdout, "docker-tag")
	assert.Contains(t, stdout, "exact")
	assert.Contains(t, stdout, "100")
}

func TestRulesListCommandAction(t *testing.T) {
	dir := t.TempDir()
	doc := `
action: docker-build
description: Builds the service image
required:
  - image
inputs:
  image:
    type: docker-image
  build-timeout:
    type: numeric
    min: 60
    max: 3600
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "docker-build.yml"), []byte(doc), 0o644))

	stdout, _, err := runCommand(t, "rules", "list", "docker-build", "--rules-dir", dir)
	require.NoError(t, err)

	assert.Contains(t, stdout, "Builds the service image")
	assert.Contains(t, stdout, "Required: image")
	assert.Contains(t, stdout, "Custom validator: registered")
	assert.Contains(t, stdout, "docker-image")
	assert.Contains(t, stdout, "60-3600")
}

func TestRulesListCommandActionWithoutDocument(t *testing.T) {
	stdout, _, err := runCommand(t, "rules", "list", "no-such-action",
		"--rules-dir", t.TempDir())
	require.NoError(t, err)
	assert.Contains(t, stdout, "convention-based validation only")
}

func TestIsRuleDocument(t *testing.T) {
	assert.True(t, isRuleDocument("deploy.yml"))
	assert.True(t, isRuleDocument("/tmp/rules/deploy.yaml"))
	assert.False(t, isRuleDocument("deploy.yml.swp"))
	assert.False(t, isRuleDocument("README.md"))
}
