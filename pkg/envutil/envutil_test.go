//go:build !integration

package envutil

import (
	"testing"
)

func TestEnvVarName(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"max-retries", "INPUT_MAX_RETRIES"},
		{"github-token", "INPUT_GITHUB_TOKEN"},
		{"version", "INPUT_VERSION"},
		{"dotnet version", "INPUT_DOTNET_VERSION"},
		{"already_underscored", "INPUT_ALREADY_UNDERSCORED"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := EnvVarName(tt.input); got != tt.want {
				t.Errorf("EnvVarName(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestInputNameFromEnv(t *testing.T) {
	tests := []struct {
		env    string
		want   string
		wantOK bool
	}{
		{"INPUT_MAX_RETRIES", "max-retries", true},
		{"INPUT_GITHUB_TOKEN", "github-token", true},
		{"INPUT_VERSION", "version", true},
		{"GITHUB_TOKEN", "", false},
		{"INPUT_", "", false},
		{"PATH", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			got, ok := InputNameFromEnv(tt.env)
			if ok != tt.wantOK {
				t.Fatalf("InputNameFromEnv(%q) ok = %v, want %v", tt.env, ok, tt.wantOK)
			}
			if got != tt.want {
				t.Errorf("InputNameFromEnv(%q) = %q, want %q", tt.env, got, tt.want)
			}
		})
	}
}

func TestInputs(t *testing.T) {
	t.Setenv("INPUT_MAX_RETRIES", "5")
	t.Setenv("INPUT_GITHUB_TOKEN", "${{ github.token }}")
	t.Setenv("NOT_AN_INPUT", "ignored")

	inputs := Inputs()

	if inputs["max-retries"] != "5" {
		t.Errorf("inputs[max-retries] = %q, want %q", inputs["max-retries"], "5")
	}
	if inputs["github-token"] != "${{ github.token }}" {
		t.Errorf("inputs[github-token] = %q", inputs["github-token"])
	}
	if _, ok := inputs["not-an-input"]; ok {
		t.Error("non-INPUT_ variables must not be collected")
	}
}

func TestLookup(t *testing.T) {
	t.Setenv("INPUT_IMAGE_TAG", "v1.2.3")

	value, ok := Lookup("image-tag")
	if !ok || value != "v1.2.3" {
		t.Errorf("Lookup(image-tag) = %q, %v", value, ok)
	}

	if _, ok := Lookup("missing-input"); ok {
		t.Error("Lookup should miss for unset inputs")
	}
}

func TestGetIntFromEnv(t *testing.T) {
	const testEnvVar = "VALIDATE_INPUTS_TEST_INT"

	tests := []struct {
		name         string
		envValue     string
		defaultValue int
		minValue     int
		maxValue     int
		expected     int
	}{
		{
			name:         "default when env var not set",
			envValue:     "",
			defaultValue: 10,
			minValue:     1,
			maxValue:     100,
			expected:     10,
		},
		{
			name:         "valid value within range",
			envValue:     "50",
			defaultValue: 10,
			minValue:     1,
			maxValue:     100,
			expected:     50,
		},
		{
			name:         "valid value at minimum",
			envValue:     "1",
			defaultValue: 10,
			minValue:     1,
			maxValue:     100,
			expected:     1,
		},
		{
			name:         "valid value at maximum",
			envValue:     "100",
			defaultValue: 10,
			minValue:     1,
			maxValue:     100,
			expected:     100,
		},
		{
			name:         "invalid non-numeric value",
			envValue:     "invalid",
			defaultValue: 10,
			minValue:     1,
			maxValue:     100,
			expected:     10,
		},
		{
			name:         "invalid value below minimum",
			envValue:     "0",
			defaultValue: 10,
			minValue:     1,
			maxValue:     100,
			expected:     10,
		},
		{
			name:         "invalid value above maximum",
			envValue:     "101",
			defaultValue: 10,
			minValue:     1,
			maxValue:     100,
			expected:     10,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.envValue != "" {
				t.Setenv(testEnvVar, tt.envValue)
			}
			got := GetIntFromEnv(testEnvVar, tt.defaultValue, tt.minValue, tt.maxValue)
			if got != tt.expected {
				t.Errorf("GetIntFromEnv() = %d, want %d", got, tt.expected)
			}
		})
	}
}

func TestGetBoolFromEnv(t *testing.T) {
	const testEnvVar = "VALIDATE_INPUTS_TEST_BOOL"

	tests := []struct {
		name         string
		envValue     string
		defaultValue bool
		expected     bool
	}{
		{"default when unset", "", true, true},
		{"true literal", "true", false, true},
		{"false literal", "false", true, false},
		{"numeric true", "1", false, true},
		{"garbage falls back to default", "yes-please", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.envValue != "" {
				t.Setenv(testEnvVar, tt.envValue)
			}
			if got := GetBoolFromEnv(testEnvVar, tt.defaultValue); got != tt.expected {
				t.Errorf("GetBoolFromEnv() = %v, want %v", got, tt.expected)
			}
		})
	}
}
