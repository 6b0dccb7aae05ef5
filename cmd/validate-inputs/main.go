package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/github/validate-inputs/pkg/cli"
	"github.com/github/validate-inputs/pkg/console"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		// Validation findings were already reported by the command; anything
		// else is an operational error that still needs printing.
		if !errors.Is(err, cli.ErrValidationFailed) {
			if console.IsGitHubActions() {
				fmt.Fprintln(os.Stdout, console.FormatErrorAnnotation(err.Error()))
			} else {
				fmt.Fprintln(os.Stderr, console.FormatErrorMessage(err.Error()))
			}
		}
		os.Exit(1)
	}
}
