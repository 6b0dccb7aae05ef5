//go:build !integration

package rules

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLintDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "good.yml"),
		[]byte("action: good\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.yml"),
		[]byte("description: missing action\n"), 0o644))

	results, err := LintDir(dir)
	require.NoError(t, err)
	require.Len(t, results, 2)

	// Sorted by file name regardless of completion order.
	assert.Equal(t, filepath.Join(dir, "bad.yml"), results[0].File)
	assert.Error(t, results[0].Err)
	assert.Empty(t, results[0].Action)

	assert.Equal(t, filepath.Join(dir, "good.yml"), results[1].File)
	assert.NoError(t, results[1].Err)
	assert.Equal(t, "good", results[1].Action)
}

func TestLintDirEmpty(t *testing.T) {
	results, err := LintDir(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestLintDirMissingDirectory(t *testing.T) {
	_, err := LintDir(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}

func TestLintDirManyDocuments(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a", "b", "c", "d", "e", "f", "g", "h"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name+".yml"),
			[]byte("action: "+name+"\n"), 0o644))
	}

	results, err := LintDir(dir)
	require.NoError(t, err)
	require.Len(t, results, 8)
	for i, r := range results {
		assert.NoError(t, r.Err)
		if i > 0 {
			assert.Less(t, results[i-1].File, r.File)
		}
	}
}
