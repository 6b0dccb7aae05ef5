// Package envutil reads action inputs and tuning knobs from the environment.
//
// GitHub Actions exposes each action input as an environment variable named
// by upper-casing the input name and replacing separators with underscores:
// an input "max-retries" becomes INPUT_MAX_RETRIES. Inputs collected here are
// raw strings; validation happens downstream.
package envutil

import (
	"os"
	"strconv"
	"strings"

	"github.com/github/validate-inputs/pkg/constants"
	"github.com/github/validate-inputs/pkg/logger"
)

var envLog = logger.New("envutil:inputs")

// EnvVarName derives the environment variable name for an action input.
func EnvVarName(inputName string) string {
	name := strings.ToUpper(inputName)
	name = strings.ReplaceAll(name, "-", "_")
	name = strings.ReplaceAll(name, " ", "_")
	return constants.InputEnvPrefix + name
}

// InputNameFromEnv derives the canonical input name from an INPUT_* variable
// name. GitHub's mapping is lossy (both "-" and "_" map to "_"), so the
// hyphenated form is used as the canonical spelling, matching how action.yml
// files name their inputs.
func InputNameFromEnv(envName string) (string, bool) {
	suffix, ok := strings.CutPrefix(envName, constants.InputEnvPrefix)
	if !ok || suffix == "" {
		return "", false
	}
	name := strings.ToLower(suffix)
	name = strings.ReplaceAll(name, "_", "-")
	return name, true
}

// Inputs collects all INPUT_* environment variables into an input-name to
// value map.
func Inputs() map[string]string {
	inputs := make(map[string]string)
	for _, kv := range os.Environ() {
		key, value, found := strings.Cut(kv, "=")
		if !found {
			continue
		}
		name, ok := InputNameFromEnv(key)
		if !ok {
			continue
		}
		inputs[name] = value
	}
	envLog.Printf("Collected %d inputs from environment", len(inputs))
	return inputs
}

// Lookup returns the value of a single action input from the environment.
func Lookup(inputName string) (string, bool) {
	return os.LookupEnv(EnvVarName(inputName))
}

// GetIntFromEnv reads an integer from the named environment variable,
// returning defaultValue when the variable is unset, non-numeric, or outside
// the inclusive [minValue, maxValue] range.
func GetIntFromEnv(name string, defaultValue, minValue, maxValue int) int {
	raw := os.Getenv(name)
	if raw == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		envLog.Printf("Ignoring non-numeric %s=%q", name, raw)
		return defaultValue
	}
	if value < minValue || value > maxValue {
		envLog.Printf("Ignoring out-of-range %s=%d (allowed %d-%d)", name, value, minValue, maxValue)
		return defaultValue
	}
	return value
}

// GetBoolFromEnv reads a boolean from the named environment variable,
// returning defaultValue when the variable is unset or not a recognized
// boolean literal.
func GetBoolFromEnv(name string, defaultValue bool) bool {
	raw := os.Getenv(name)
	if raw == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		envLog.Printf("Ignoring non-boolean %s=%q", name, raw)
		return defaultValue
	}
	return value
}
