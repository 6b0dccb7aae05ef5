package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/github/validate-inputs/pkg/console"
	"github.com/github/validate-inputs/pkg/conventions"
	"github.com/github/validate-inputs/pkg/logger"
	"github.com/github/validate-inputs/pkg/rules"
	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
)

var initLog = logger.New("cli:init")

// NewInitCommand creates the init command.
func NewInitCommand() *cobra.Command {
	var (
		rulesDir string
		force    bool
	)

	cmd := &cobra.Command{
		Use:   "init <action>",
		Short: "Create a rule document for an action interactively",
		Long: `Init walks through a short wizard (description, required inputs, explicit
input types) and writes the resulting rule document into the rules directory.
An existing document is only overwritten with --force.

Examples:
  validate-inputs init docker-build
  validate-inputs init deploy --rules-dir .github/validation --force`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := resolveRulesDir(cmd, rulesDir)
			if err != nil {
				return err
			}
			return runInitWizard(cmd, dir, args[0], force)
		},
	}

	cmd.Flags().StringVar(&rulesDir, "rules-dir", "", "directory to write the rule document into")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing rule document")
	return cmd
}

func runInitWizard(cmd *cobra.Command, dir, action string, force bool) error {
	path := filepath.Join(dir, action+".yml")
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("rule document %s already exists (use --force to overwrite)", path)
		}
	}

	var (
		description string
		requiredCSV string
		typedLines  string
	)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Description").
				Description("One line describing what the action does").
				Value(&description),
			huh.NewInput().
				Title("Required inputs").
				Description("Comma-separated input names that must be present, or empty").
				Value(&requiredCSV).
				Validate(validateInputNames),
			huh.NewText().
				Title("Explicit input types").
				Description("One 'input-name: type' per line; leave empty to rely on conventions.\nTypes: "+strings.Join(conventions.KnownTypes(), ", ")).
				Value(&typedLines).
				Validate(validateTypedLines),
		),
	)
	if err := form.Run(); err != nil {
		return fmt.Errorf("running init wizard: %w", err)
	}

	doc := &rules.ActionRules{
		Action:      action,
		Description: strings.TrimSpace(description),
		Required:    splitNames(requiredCSV),
	}
	typed, err := parseTypedLines(typedLines)
	if err != nil {
		return fmt.Errorf("parsing input types: %w", err)
	}
	if len(typed) > 0 {
		doc.Inputs = typed
	}

	data, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encoding rule document: %w", err)
	}

	// Round-trip through the parser so a wizard bug can never write a
	// document that validate would later refuse to load.
	if _, err := rules.Parse(data); err != nil {
		return fmt.Errorf("generated document is invalid: %w", err)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating rules directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing rule document: %w", err)
	}

	initLog.Printf("Wrote rule document %s (%d required, %d typed)", path, len(doc.Required), len(doc.Inputs))
	fmt.Fprintln(cmd.ErrOrStderr(), console.FormatSuccessMessage("Created "+path))
	return nil
}

func splitNames(csv string) []string {
	var names []string
	for name := range strings.SplitSeq(csv, ",") {
		name = strings.TrimSpace(name)
		if name != "" {
			names = append(names, name)
		}
	}
	return names
}

func validateInputNames(csv string) error {
	for _, name := range splitNames(csv) {
		if strings.ContainsAny(name, " \t") {
			return fmt.Errorf("input name %q must not contain whitespace", name)
		}
	}
	return nil
}

// parseTypedLines turns "name: type" lines into input rules. The error names
// the first offending line.
func parseTypedLines(text string) (map[string]rules.InputRule, error) {
	typed := make(map[string]rules.InputRule)
	for line := range strings.SplitSeq(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		name, tag, found := strings.Cut(line, ":")
		name = strings.TrimSpace(name)
		tag = strings.TrimSpace(tag)
		if !found || name == "" || tag == "" {
			return nil, fmt.Errorf("line %q: expected 'input-name: type'", line)
		}
		if !slices.Contains(conventions.KnownTypes(), tag) {
			return nil, fmt.Errorf("line %q: unknown type %q", line, tag)
		}
		typed[name] = rules.InputRule{Type: tag}
	}
	if len(typed) == 0 {
		return nil, nil
	}
	return typed, nil
}

func validateTypedLines(text string) error {
	_, err := parseTypedLines(text)
	return err
}
