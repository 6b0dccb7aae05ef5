//go:build !integration

package conventions

import (
	"testing"
)

func TestResolvePriorities(t *testing.T) {
	tests := []struct {
		name          string
		input         string
		wantValidator string
		wantPriority  int
		wantFound     bool
	}{
		{
			name:          "exact match wins",
			input:         "github-token",
			wantValidator: TypeToken,
			wantPriority:  PriorityExact,
			wantFound:     true,
		},
		{
			name:          "exact version beats contains version",
			input:         "version",
			wantValidator: TypeVersion,
			wantPriority:  PriorityExact,
			wantFound:     true,
		},
		{
			name:          "language suffix beats generic version suffix",
			input:         "go-version",
			wantValidator: TypeGoVersion,
			wantPriority:  PriorityLanguage,
			wantFound:     true,
		},
		{
			name:          "prefixed language version still matches language rule",
			input:         "target-dotnet-version",
			wantValidator: TypeDotNetVersion,
			wantPriority:  PriorityLanguage,
			wantFound:     true,
		},
		{
			name:          "generic version suffix",
			input:         "cli-version",
			wantValidator: TypeVersion,
			wantPriority:  PrioritySuffix,
			wantFound:     true,
		},
		{
			name:          "token suffix",
			input:         "registry-token",
			wantValidator: TypeToken,
			wantPriority:  PrioritySuffix,
			wantFound:     true,
		},
		{
			name:          "timeout suffix carries numeric range",
			input:         "build-timeout",
			wantValidator: TypeNumeric,
			wantPriority:  PrioritySuffix,
			wantFound:     true,
		},
		{
			name:          "contains token",
			input:         "tokenized-name",
			wantValidator: TypeToken,
			wantPriority:  PriorityContains,
			wantFound:     true,
		},
		{
			name:          "contains secret maps to security screen",
			input:         "my-secret-thing",
			wantValidator: TypeSecurity,
			wantPriority:  PriorityContains,
			wantFound:     true,
		},
		{
			name:          "boolean prefix",
			input:         "enable-caching",
			wantValidator: TypeBoolean,
			wantPriority:  PriorityPrefix,
			wantFound:     true,
		},
		{
			name:          "skip prefix",
			input:         "skip-tests",
			wantValidator: TypeBoolean,
			wantPriority:  PriorityPrefix,
			wantFound:     true,
		},
		{
			name:          "exact hostname",
			input:         "hostname",
			wantValidator: TypeHostname,
			wantPriority:  PriorityExact,
			wantFound:     true,
		},
		{
			name:          "host suffix",
			input:         "registry-host",
			wantValidator: TypeHostname,
			wantPriority:  PrioritySuffix,
			wantFound:     true,
		},
		{
			name:          "hostname suffix",
			input:         "proxy-hostname",
			wantValidator: TypeHostname,
			wantPriority:  PrioritySuffix,
			wantFound:     true,
		},
		{
			name:      "no match",
			input:     "arbitrary-knob",
			wantFound: false,
		},
		{
			name:          "case insensitive",
			input:         "GitHub-Token",
			wantValidator: TypeToken,
			wantPriority:  PriorityExact,
			wantFound:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule, found := Resolve(tt.input)
			if found != tt.wantFound {
				t.Fatalf("Resolve(%q) found = %v, want %v", tt.input, found, tt.wantFound)
			}
			if !found {
				return
			}
			if rule.Validator != tt.wantValidator {
				t.Errorf("Resolve(%q) validator = %q, want %q", tt.input, rule.Validator, tt.wantValidator)
			}
			if rule.Priority != tt.wantPriority {
				t.Errorf("Resolve(%q) priority = %d, want %d", tt.input, rule.Priority, tt.wantPriority)
			}
		})
	}
}

func TestResolveNumericRanges(t *testing.T) {
	rule, found := Resolve("listen-port")
	if !found {
		t.Fatal("expected -port suffix to resolve")
	}
	if !rule.Ranged || rule.Min != 1 || rule.Max != 65535 {
		t.Errorf("port rule range = [%d,%d] ranged=%v, want [1,65535]", rule.Min, rule.Max, rule.Ranged)
	}
}

func TestResolveIsIdempotent(t *testing.T) {
	first, ok1 := Resolve("image-tag")
	second, ok2 := Resolve("image-tag")
	if ok1 != ok2 || first != second {
		t.Errorf("Resolve should be stable: %+v vs %+v", first, second)
	}
}

func TestTableSortedByPriority(t *testing.T) {
	table := Table()
	if len(table) == 0 {
		t.Fatal("Table() should not be empty")
	}
	for i := 1; i < len(table); i++ {
		if table[i].Priority > table[i-1].Priority {
			t.Errorf("Table() not sorted at index %d: %d > %d", i, table[i].Priority, table[i-1].Priority)
		}
	}
}

func TestKnownTypesCoverTable(t *testing.T) {
	known := make(map[string]bool)
	for _, tag := range KnownTypes() {
		known[tag] = true
	}
	for _, rule := range Table() {
		if !known[rule.Validator] {
			t.Errorf("rule %q references unknown validator type %q", rule.Pattern, rule.Validator)
		}
	}
}
