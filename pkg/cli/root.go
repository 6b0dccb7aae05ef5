// Package cli implements the validate-inputs command tree.
package cli

import (
	"errors"

	"github.com/github/validate-inputs/pkg/constants"
	"github.com/spf13/cobra"
)

// ErrValidationFailed is returned by commands whose findings were already
// reported to the user; main maps it to exit code 1 without re-printing.
var ErrValidationFailed = errors.New("validation failed")

// version is set at build time via -ldflags.
var version = "dev"

// NewRootCommand builds the validate-inputs command tree.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   constants.CLIName,
		Short: "Validate GitHub Action inputs against conventions and rule documents",
		Long: `validate-inputs checks GitHub Action input values before a workflow step
uses them. Input names are mapped to validators by naming convention
(go-version, image-tag, max-retries, ...), optionally overridden by a
per-action YAML rule document, and every value is screened for shell
injection patterns. Values that are GitHub expressions (` + "`${{ ... }}`" + `)
are exempted from format checks.

Inside a GitHub Actions runner, failures are emitted as ::error::
annotations; elsewhere they are printed as styled console lines.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(NewValidateCommand())
	rootCmd.AddCommand(NewRulesCommand())
	rootCmd.AddCommand(NewInitCommand())

	return rootCmd
}
