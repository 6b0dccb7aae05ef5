package cli

import (
	"fmt"
	"os/signal"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/github/validate-inputs/pkg/config"
	"github.com/github/validate-inputs/pkg/console"
	"github.com/github/validate-inputs/pkg/conventions"
	"github.com/github/validate-inputs/pkg/envutil"
	"github.com/github/validate-inputs/pkg/logger"
	"github.com/github/validate-inputs/pkg/rules"
	"github.com/github/validate-inputs/pkg/validators"
	"github.com/spf13/cobra"
)

var rulesCmdLog = logger.New("cli:rules")

// watchDebounce coalesces bursts of filesystem events (editors write, rename,
// and chmod in quick succession) into one re-lint. Tunable via
// VALIDATE_INPUTS_WATCH_DEBOUNCE_MS.
func watchDebounce() time.Duration {
	ms := envutil.GetIntFromEnv("VALIDATE_INPUTS_WATCH_DEBOUNCE_MS", 300, 10, 10000)
	return time.Duration(ms) * time.Millisecond
}

// NewRulesCommand creates the rules command with its lint and list
// subcommands.
func NewRulesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rules",
		Short: "Inspect and lint per-action rule documents",
	}
	cmd.AddCommand(newRulesLintCommand())
	cmd.AddCommand(newRulesListCommand())
	return cmd
}

func newRulesLintCommand() *cobra.Command {
	var (
		rulesDir string
		watch    bool
	)

	cmd := &cobra.Command{
		Use:   "lint",
		Short: "Schema-validate every rule document in the rules directory",
		Long: `Lint parses and schema-validates every .yml/.yaml rule document under the
rules directory. With --watch, the directory is monitored and documents are
re-linted on change until interrupted.

Examples:
  validate-inputs rules lint
  validate-inputs rules lint --rules-dir .github/validation --watch`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := resolveRulesDir(cmd, rulesDir)
			if err != nil {
				return err
			}

			if watch {
				return lintWatch(cmd, dir)
			}
			ok, err := lintOnce(cmd, dir)
			if err != nil {
				return err
			}
			if !ok {
				return ErrValidationFailed
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&rulesDir, "rules-dir", "", "directory containing per-action rule documents")
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "re-lint on file changes until interrupted")
	return cmd
}

// lintOnce lints the directory and reports per-file results. It returns
// whether every document passed.
func lintOnce(cmd *cobra.Command, dir string) (bool, error) {
	results, err := rules.LintDir(dir)
	if err != nil {
		return false, err
	}

	out := cmd.ErrOrStderr()
	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
			fmt.Fprintln(out, console.FormatErrorMessage(r.Err.Error()))
		} else {
			fmt.Fprintln(out, console.FormatVerboseMessage(
				fmt.Sprintf("%s (action: %s)", r.File, r.Action)))
		}
	}

	if failed > 0 {
		fmt.Fprintln(out, console.FormatErrorMessage(
			fmt.Sprintf("%d of %d rule document(s) failed", failed, len(results))))
		return false, nil
	}
	fmt.Fprintln(out, console.FormatSuccessMessage(
		fmt.Sprintf("%d rule document(s) OK", len(results))))
	return true, nil
}

// lintWatch lints once, then re-lints whenever a rule document changes.
// It blocks until the context is interrupted; the exit status reflects the
// last lint pass.
func lintWatch(cmd *cobra.Command, dir string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating file watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watching %s: %w", dir, err)
	}

	lastOK, err := lintOnce(cmd, dir)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.ErrOrStderr(), console.FormatInfoMessage(
		fmt.Sprintf("Watching %s for changes (interrupt to stop)", dir)))

	var debounce *time.Timer
	relint := make(chan struct{}, 1)

	for {
		select {
		case <-ctx.Done():
			if !lastOK {
				return ErrValidationFailed
			}
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !isRuleDocument(event.Name) {
				continue
			}
			rulesCmdLog.Printf("Filesystem event: %s", event)
			if debounce != nil {
				debounce.Stop()
			}
			debounce = time.AfterFunc(watchDebounce(), func() {
				select {
				case relint <- struct{}{}:
				default:
				}
			})

		case <-relint:
			lastOK, err = lintOnce(cmd, dir)
			if err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), console.FormatErrorMessage(err.Error()))
				lastOK = false
			}

		case watchErr, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			rulesCmdLog.Printf("Watcher error: %v", watchErr)
		}
	}
}

func isRuleDocument(path string) bool {
	ext := filepath.Ext(path)
	return ext == ".yml" || ext == ".yaml"
}

func newRulesListCommand() *cobra.Command {
	var rulesDir string

	cmd := &cobra.Command{
		Use:   "list [action]",
		Short: "Show the effective validation rules",
		Long: `List prints the built-in convention table that maps input names to
validators. With an action argument, it instead prints the merged per-action
view: the rule document's required inputs and explicit types, plus whether a
custom validator is registered.

Examples:
  validate-inputs rules list
  validate-inputs rules list docker-build`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := resolveRulesDir(cmd, rulesDir)
			if err != nil {
				return err
			}
			if len(args) == 1 {
				return listAction(cmd, dir, args[0])
			}
			return listConventions(cmd)
		},
	}

	cmd.Flags().StringVar(&rulesDir, "rules-dir", "", "directory containing per-action rule documents")
	return cmd
}

func listConventions(cmd *cobra.Command) error {
	rows := make([][]string, 0)
	for _, rule := range conventions.Table() {
		bounds := ""
		if rule.Ranged {
			bounds = fmt.Sprintf("%d-%d", rule.Min, rule.Max)
		}
		rows = append(rows, []string{
			rule.Pattern,
			rule.Kind.String(),
			strconv.Itoa(rule.Priority),
			rule.Validator,
			bounds,
		})
	}

	fmt.Fprint(cmd.OutOrStdout(), console.RenderTable(console.TableConfig{
		Title:   "Convention rules (highest priority wins)",
		Headers: []string{"PATTERN", "MATCH", "PRIORITY", "VALIDATOR", "RANGE"},
		Rows:    rows,
	}))
	return nil
}

func listAction(cmd *cobra.Command, dir, action string) error {
	doc, err := rules.Find(dir, action)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	registry := validators.NewRegistry()

	if doc == nil {
		fmt.Fprintln(out, console.FormatInfoMessage(
			fmt.Sprintf("No rule document for %q in %s; convention-based validation only", action, dir)))
	} else {
		if doc.Description != "" {
			fmt.Fprintln(out, console.FormatInfoMessage(doc.Description))
		}
		if len(doc.Required) > 0 {
			fmt.Fprintln(out, console.FormatInfoMessage("Required: "+strings.Join(doc.Required, ", ")))
		}
	}
	if registry.HasCustom(action) {
		fmt.Fprintln(out, console.FormatInfoMessage("Custom validator: registered"))
	}

	rows := make([][]string, 0)
	if doc != nil {
		names := make([]string, 0, len(doc.Inputs))
		for name := range doc.Inputs {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			input := doc.Inputs[name]
			bounds := ""
			if input.Min != nil || input.Max != nil {
				lo, hi := "", ""
				if input.Min != nil {
					lo = strconv.Itoa(*input.Min)
				}
				if input.Max != nil {
					hi = strconv.Itoa(*input.Max)
				}
				bounds = lo + "-" + hi
			}
			rows = append(rows, []string{
				name, "document", input.Type, bounds, strings.Join(input.AllowedValues, ", "),
			})
		}
	}

	if len(rows) > 0 {
		fmt.Fprint(out, console.RenderTable(console.TableConfig{
			Title:   "Inputs for " + action,
			Headers: []string{"INPUT", "SOURCE", "TYPE", "RANGE", "ALLOWED"},
			Rows:    rows,
		}))
	}
	return nil
}

// resolveRulesDir applies flag > environment > default precedence.
func resolveRulesDir(cmd *cobra.Command, flagValue string) (string, error) {
	if cmd.Flags().Changed("rules-dir") {
		return flagValue, nil
	}
	cfg, err := config.Load()
	if err != nil {
		return "", err
	}
	return cfg.RulesDir, nil
}
