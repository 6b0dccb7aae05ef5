package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/github/validate-inputs/pkg/config"
	"github.com/github/validate-inputs/pkg/console"
	"github.com/github/validate-inputs/pkg/envutil"
	"github.com/github/validate-inputs/pkg/logger"
	"github.com/github/validate-inputs/pkg/rules"
	"github.com/github/validate-inputs/pkg/validators"
	"github.com/spf13/cobra"
)

var validateLog = logger.New("cli:validate")

// jsonResult is the --json output shape. It is part of the CLI contract, so
// field names stay stable.
type jsonResult struct {
	Action   string      `json:"action"`
	Passed   bool        `json:"passed"`
	Checked  int         `json:"checked"`
	Errors   []jsonError `json:"errors"`
	Warnings []string    `json:"warnings,omitempty"`
}

type jsonError struct {
	Input      string `json:"input"`
	Value      string `json:"value,omitempty"`
	Message    string `json:"message"`
	Suggestion string `json:"suggestion,omitempty"`
}

// NewValidateCommand creates the validate command.
func NewValidateCommand() *cobra.Command {
	var (
		inputFlags []string
		rulesDir   string
		strict     bool
		failFast   bool
		jsonOut    bool
		quiet      bool
	)

	cmd := &cobra.Command{
		Use:   "validate <action>",
		Short: "Validate the inputs of one action invocation",
		Long: `Validate collects action inputs from INPUT_* environment variables
(as GitHub Actions provides them) merged with --input flags, then checks each
value against the validator chosen by the action's rule document or by naming
convention.

Examples:
  # Inside a workflow step, inputs come from the environment
  validate-inputs validate docker-build

  # Locally, inputs can be supplied on the command line
  validate-inputs validate docker-build --input image=ghcr.io/org/app --input push=true

  # Treat unrecognized inputs as errors
  validate-inputs validate deploy --strict

  # Machine-readable output
  validate-inputs validate deploy --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("rules-dir") {
				cfg.RulesDir = rulesDir
			}
			if cmd.Flags().Changed("strict") {
				cfg.Strict = strict
			}
			if cmd.Flags().Changed("fail-fast") {
				cfg.FailFast = failFast
			}
			if cmd.Flags().Changed("quiet") {
				cfg.Quiet = quiet
			}

			action := args[0]
			inputs, err := collectInputs(inputFlags)
			if err != nil {
				return err
			}

			doc, err := rules.Find(cfg.RulesDir, action)
			if err != nil {
				return err
			}

			registry := validators.NewRegistry()
			result := registry.ValidateAction(action, inputs, doc, validators.Options{
				Strict:   cfg.Strict,
				FailFast: cfg.FailFast,
			})

			if jsonOut {
				if err := writeJSON(cmd, result); err != nil {
					return err
				}
			} else {
				report(cmd, result, cfg.Quiet)
			}

			if !result.Passed {
				return ErrValidationFailed
			}
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&inputFlags, "input", nil, "input as name=value, repeatable; overrides INPUT_* environment variables")
	cmd.Flags().StringVar(&rulesDir, "rules-dir", "", "directory containing per-action rule documents")
	cmd.Flags().BoolVar(&strict, "strict", false, "treat inputs with no applicable validator as errors")
	cmd.Flags().BoolVar(&failFast, "fail-fast", false, "stop at the first validation error")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "emit a machine-readable JSON result")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "suppress non-error output")

	return cmd
}

// collectInputs merges INPUT_* environment variables with --input flags.
// Flags win so local runs can override whatever the environment carries.
func collectInputs(flags []string) (map[string]string, error) {
	inputs := envutil.Inputs()
	for _, flag := range flags {
		name, value, found := strings.Cut(flag, "=")
		name = strings.TrimSpace(name)
		if !found || name == "" {
			return nil, fmt.Errorf("invalid --input %q: expected name=value", flag)
		}
		inputs[strings.ToLower(name)] = value
	}
	validateLog.Printf("Collected %d inputs (%d from flags)", len(inputs), len(flags))
	return inputs, nil
}

func report(cmd *cobra.Command, result *validators.Result, quiet bool) {
	out := cmd.OutOrStdout()
	errOut := cmd.ErrOrStderr()
	annotate := console.IsGitHubActions()

	for _, w := range result.Warnings {
		if quiet {
			continue
		}
		if annotate {
			fmt.Fprintln(out, console.FormatWarningAnnotation(w))
		} else {
			fmt.Fprintln(errOut, console.FormatWarningMessage(w))
		}
	}

	for _, err := range result.Errors {
		if annotate {
			fmt.Fprintln(out, console.FormatErrorAnnotation(err.Error()))
		} else {
			fmt.Fprintln(errOut, console.FormatErrorMessage(err.Error()))
		}
	}

	if quiet {
		return
	}
	if result.Passed {
		summary := fmt.Sprintf("%s: %d input(s) validated", result.Action, result.Checked)
		if annotate {
			fmt.Fprintln(out, console.FormatNoticeAnnotation(summary))
		} else {
			fmt.Fprintln(errOut, console.FormatSuccessMessage(summary))
		}
	} else {
		fmt.Fprintln(errOut, console.FormatErrorMessage(
			fmt.Sprintf("%s: %d validation error(s)", result.Action, len(result.Errors))))
	}
}

func writeJSON(cmd *cobra.Command, result *validators.Result) error {
	payload := jsonResult{
		Action:   result.Action,
		Passed:   result.Passed,
		Checked:  result.Checked,
		Errors:   make([]jsonError, 0, len(result.Errors)),
		Warnings: result.Warnings,
	}
	for _, err := range result.Errors {
		var ve *validators.ValidationError
		if errors.As(err, &ve) {
			payload.Errors = append(payload.Errors, jsonError{
				Input:      ve.Input,
				Value:      ve.Value,
				Message:    ve.Message,
				Suggestion: ve.Suggestion,
			})
		} else {
			payload.Errors = append(payload.Errors, jsonError{Message: err.Error()})
		}
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(payload)
}
