// Package rules loads and validates the per-action rule documents.
//
// One YAML document per action declares required inputs and explicit
// validator types that override convention-based mapping. Documents are
// schema-validated at load time so a malformed rule file fails loudly instead
// of silently weakening validation.
package rules

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/github/validate-inputs/pkg/constants"
	"github.com/github/validate-inputs/pkg/logger"
	"github.com/goccy/go-yaml"
)

var rulesLog = logger.New("rules:load")

// InputRule is the explicit validation rule for a single input.
type InputRule struct {
	// Type is a validator type tag (see conventions.KnownTypes).
	Type string `yaml:"type"`

	// Min and Max bound numeric inputs inclusively.
	Min *int `yaml:"min,omitempty"`
	Max *int `yaml:"max,omitempty"`

	// AllowedValues restricts the input to an explicit value list, checked
	// in addition to the type's format.
	AllowedValues []string `yaml:"allowed-values,omitempty"`
}

// ActionRules is the rule document for one action.
type ActionRules struct {
	Action      string               `yaml:"action"`
	Description string               `yaml:"description,omitempty"`
	Required    []string             `yaml:"required,omitempty"`
	Inputs      map[string]InputRule `yaml:"inputs,omitempty"`
}

// Parse decodes and schema-validates a rule document.
func Parse(data []byte) (*ActionRules, error) {
	// Decode generically first so schema validation sees the raw shape and
	// can report unknown fields before struct decoding drops them.
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing rule document: %w", err)
	}
	if err := validateSchema(raw); err != nil {
		return nil, err
	}

	var doc ActionRules
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decoding rule document: %w", err)
	}
	return &doc, nil
}

// LoadFile reads and parses a single rule document.
func LoadFile(path string) (*ActionRules, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading rule document: %w", err)
	}
	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	rulesLog.Printf("Loaded rules for action %q from %s (%d required, %d explicit inputs)",
		doc.Action, path, len(doc.Required), len(doc.Inputs))
	return doc, nil
}

// Find loads the rule document for an action from the rules directory,
// trying each recognized extension. A missing document is not an error: the
// action simply gets pure convention-based validation.
func Find(dir, action string) (*ActionRules, error) {
	for _, ext := range constants.RuleFileExtensions {
		path := filepath.Join(dir, action+ext)
		doc, err := LoadFile(path)
		if err == nil {
			return doc, nil
		}
		if errors.Is(err, os.ErrNotExist) {
			continue
		}
		return nil, err
	}
	rulesLog.Printf("No rule document for action %q in %s", action, dir)
	return nil, nil
}

// Files lists the rule documents in a directory, sorted by name.
func Files(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading rules directory: %w", err)
	}
	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := filepath.Ext(entry.Name())
		for _, allowed := range constants.RuleFileExtensions {
			if ext == allowed {
				files = append(files, filepath.Join(dir, entry.Name()))
				break
			}
		}
	}
	return files, nil
}
