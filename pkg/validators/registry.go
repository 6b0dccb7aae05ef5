// This file provides the per-action validation orchestrator.
//
// # Validation Flow
//
// For one action invocation the registry:
//
//  1. checks required inputs for presence (from the action's rule document)
//  2. runs the action's custom validator, if one is registered
//  3. routes every present input to a typed validator; the rule document's
//     explicit type wins over convention-based name mapping
//  4. applies the cross-cutting security screen to every present input
//
// Errors from all stages land in one Collector so a run reports every
// failing input at once; custom-validator errors that duplicate convention
// errors are dropped by the collector's message-level dedup.

package validators

import (
	"fmt"
	"sort"
	"strings"

	"github.com/github/validate-inputs/pkg/conventions"
	"github.com/github/validate-inputs/pkg/logger"
	"github.com/github/validate-inputs/pkg/rules"
)

var registryLog = logger.New("validators:registry")

// Options control a validation run.
type Options struct {
	// Strict treats inputs with no applicable validator as errors.
	Strict bool
	// FailFast stops at the first error.
	FailFast bool
}

// Result is the outcome of validating one action's inputs.
type Result struct {
	Action   string
	Checked  int
	Passed   bool
	Errors   []error
	Warnings []string
}

// CustomValidator is an action-specific check that runs in addition to the
// generic per-input validation. Implementations register at compile time via
// RegisterCustom; there is no runtime plugin discovery.
type CustomValidator interface {
	// Action returns the action name this validator is bound to.
	Action() string
	// Validate inspects the full input set and adds errors to the collector.
	Validate(inputs map[string]string, c *Collector)
}

// builtinCustom is the compile-time registration table. Adding a custom
// validator means adding an entry here (or calling RegisterCustom from the
// validator's init).
var builtinCustom = map[string]CustomValidator{}

// RegisterCustom adds a custom validator to the registration table. It
// panics on duplicate registration since that is always a programming error.
func RegisterCustom(v CustomValidator) {
	name := v.Action()
	if _, exists := builtinCustom[name]; exists {
		panic(fmt.Sprintf("custom validator for action %q registered twice", name))
	}
	builtinCustom[name] = v
}

// Registry routes action inputs to validators.
type Registry struct {
	custom map[string]CustomValidator
}

// NewRegistry creates a registry with the compile-time custom validators.
func NewRegistry() *Registry {
	custom := make(map[string]CustomValidator, len(builtinCustom))
	for name, v := range builtinCustom {
		custom[name] = v
	}
	return &Registry{custom: custom}
}

// HasCustom reports whether an action has a registered custom validator.
func (r *Registry) HasCustom(action string) bool {
	_, ok := r.custom[action]
	return ok
}

// ValidateAction validates all inputs for one action. doc may be nil when the
// action has no rule document; validation then relies on conventions alone.
func (r *Registry) ValidateAction(action string, inputs map[string]string, doc *rules.ActionRules, opts Options) *Result {
	registryLog.Printf("Validating action %q: %d inputs, strict=%v, fail_fast=%v",
		action, len(inputs), opts.Strict, opts.FailFast)

	c := NewCollector(opts.FailFast)
	result := &Result{Action: action}

	finish := func() *Result {
		result.Errors = c.Errors()
		result.Passed = !c.HasErrors()
		return result
	}

	// Missing required inputs are errors in their own right; an empty value
	// counts as missing since GitHub supplies empty strings for omitted
	// optional inputs.
	if doc != nil {
		for _, name := range doc.Required {
			if strings.TrimSpace(inputs[name]) != "" {
				continue
			}
			err := NewValidationError(name, "",
				"required input is missing",
				fmt.Sprintf("Set the '%s' input in the workflow step", name))
			if c.Add(err) != nil {
				return finish()
			}
		}
	}

	if custom, ok := r.custom[action]; ok {
		registryLog.Printf("Running custom validator for action %q", action)
		custom.Validate(inputs, c)
		if opts.FailFast && c.HasErrors() {
			return finish()
		}
	}

	// Sorted for deterministic error ordering.
	names := make([]string, 0, len(inputs))
	for name := range inputs {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		value := inputs[name]
		result.Checked++

		validator, allowed, matched := r.resolveValidator(name, doc)

		if !matched {
			if opts.Strict {
				err := NewValidationError(name, "",
					"no validator applies to this input",
					"Declare an explicit type in the action's rule document, or drop --strict")
				if c.Add(err) != nil {
					return finish()
				}
			} else {
				registryLog.Printf("Input %q has no validator, passing through", name)
				result.Warnings = append(result.Warnings,
					fmt.Sprintf("input '%s' has no applicable validator and was not checked", name))
			}
		} else if validator != nil {
			if err := validator.Validate(name, value); c.Add(err) != nil {
				return finish()
			}
		}

		if len(allowed) > 0 && !IsExpression(value) {
			if !contains(allowed, value) {
				err := NewValidationError(name, value,
					"is not in the allowed value list",
					fmt.Sprintf("Allowed values: %s", strings.Join(allowed, ", ")))
				if c.Add(err) != nil {
					return finish()
				}
			}
		}

		if err := Screen(name, value, validator); c.Add(err) != nil {
			return finish()
		}
	}

	return finish()
}

// resolveValidator picks the typed validator for an input. The rule
// document's explicit type wins; otherwise the convention mapper decides.
// matched is false when neither source names a validator. A nil validator
// with matched=true means the input is explicitly opaque (type: string).
func (r *Registry) resolveValidator(name string, doc *rules.ActionRules) (validator Validator, allowed []string, matched bool) {
	if doc != nil {
		if inputRule, ok := doc.Inputs[name]; ok {
			allowed = inputRule.AllowedValues
			if inputRule.Type == conventions.TypeString {
				return nil, allowed, true
			}
			if inputRule.Type != "" {
				rule := conventions.Rule{Validator: inputRule.Type}
				if inputRule.Min != nil || inputRule.Max != nil {
					rule.Ranged = true
					if inputRule.Min != nil {
						rule.Min = *inputRule.Min
					}
					if inputRule.Max != nil {
						rule.Max = *inputRule.Max
					}
				}
				if v, ok := ForType(inputRule.Type, rule); ok {
					return v, allowed, true
				}
				registryLog.Printf("Rule document names unknown type %q for input %q", inputRule.Type, name)
			}
			// Document entry without a type still counts as matched when it
			// carries an allowed-value list.
			if len(allowed) > 0 {
				return nil, allowed, true
			}
		}
	}

	rule, found := conventions.Resolve(name)
	if !found {
		return nil, allowed, false
	}
	v, ok := ForType(rule.Validator, rule)
	if !ok {
		return nil, allowed, false
	}
	return v, allowed, true
}

func contains(list []string, value string) bool {
	for _, item := range list {
		if item == value {
			return true
		}
	}
	return false
}
