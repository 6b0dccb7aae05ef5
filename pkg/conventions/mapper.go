// Package conventions maps GitHub Action input names to validator types.
//
// The mapping is a static, priority-ordered rule table evaluated per input
// name. Matchers run from most to least specific: an exact name match always
// wins over a language-specific suffix, which wins over a generic suffix,
// substring, or prefix match. An input that matches nothing gets no validator
// and passes through unchecked (strict mode upgrades that to an error at the
// call site).
package conventions

import (
	"sort"
	"strings"

	"github.com/github/validate-inputs/pkg/logger"
)

var mapperLog = logger.New("conventions:mapper")

// Validator type tags. The validators package constructs a concrete validator
// from a tag; rule documents may also name these tags directly.
const (
	TypeBoolean          = "boolean"
	TypeVersion          = "version"
	TypeSemver           = "semver"
	TypeCalver           = "calver"
	TypeGoVersion        = "go-version"
	TypeNodeVersion      = "node-version"
	TypeDotNetVersion    = "dotnet-version"
	TypeTerraformVersion = "terraform-version"
	TypeToken            = "token"
	TypeNumeric          = "numeric"
	TypeDockerImage      = "docker-image"
	TypeDockerTag        = "docker-tag"
	TypeDockerPlatform   = "docker-platform"
	TypeFile             = "file"
	TypeURL              = "url"
	TypeEmail            = "email"
	TypeHostname         = "hostname"
	TypeCodeQLLanguage   = "codeql-language"
	TypeCodeQLSuite      = "codeql-suite"
	TypeSecurity         = "security"
	TypeString           = "string"
)

// MatchKind selects how a rule pattern is compared against an input name.
type MatchKind int

const (
	MatchExact MatchKind = iota
	MatchSuffix
	MatchContains
	MatchPrefix
)

// String returns the match kind's display name.
func (k MatchKind) String() string {
	switch k {
	case MatchExact:
		return "exact"
	case MatchSuffix:
		return "suffix"
	case MatchContains:
		return "contains"
	case MatchPrefix:
		return "prefix"
	default:
		return "unknown"
	}
}

// Rule priorities. Higher wins; ties resolve in table order.
const (
	PriorityExact    = 100
	PriorityLanguage = 95
	PrioritySuffix   = 90
	PriorityContains = 85
	PriorityPrefix   = 80
)

// Rule associates a name matcher with a validator type.
type Rule struct {
	Kind      MatchKind
	Pattern   string
	Priority  int
	Validator string

	// Ranged numeric rules carry an inclusive bound.
	Ranged bool
	Min    int
	Max    int
}

// Matches reports whether the rule applies to the given input name.
func (r Rule) Matches(name string) bool {
	switch r.Kind {
	case MatchExact:
		return name == r.Pattern
	case MatchSuffix:
		return strings.HasSuffix(name, r.Pattern)
	case MatchContains:
		return strings.Contains(name, r.Pattern)
	case MatchPrefix:
		return strings.HasPrefix(name, r.Pattern)
	default:
		return false
	}
}

// defaultTable is the process-wide rule table, initialized once and treated
// as immutable.
var defaultTable = []Rule{
	// Exact names (priority 100).
	{Kind: MatchExact, Pattern: "github-token", Priority: PriorityExact, Validator: TypeToken},
	{Kind: MatchExact, Pattern: "repo-token", Priority: PriorityExact, Validator: TypeToken},
	{Kind: MatchExact, Pattern: "token", Priority: PriorityExact, Validator: TypeToken},
	{Kind: MatchExact, Pattern: "version", Priority: PriorityExact, Validator: TypeVersion},
	{Kind: MatchExact, Pattern: "dry-run", Priority: PriorityExact, Validator: TypeBoolean},
	{Kind: MatchExact, Pattern: "push", Priority: PriorityExact, Validator: TypeBoolean},
	{Kind: MatchExact, Pattern: "no-cache", Priority: PriorityExact, Validator: TypeBoolean},
	{Kind: MatchExact, Pattern: "verbose", Priority: PriorityExact, Validator: TypeBoolean},
	{Kind: MatchExact, Pattern: "image", Priority: PriorityExact, Validator: TypeDockerImage},
	{Kind: MatchExact, Pattern: "tag", Priority: PriorityExact, Validator: TypeDockerTag},
	{Kind: MatchExact, Pattern: "platforms", Priority: PriorityExact, Validator: TypeDockerPlatform},
	{Kind: MatchExact, Pattern: "dockerfile", Priority: PriorityExact, Validator: TypeFile},
	{Kind: MatchExact, Pattern: "working-directory", Priority: PriorityExact, Validator: TypeFile},
	{Kind: MatchExact, Pattern: "path", Priority: PriorityExact, Validator: TypeFile},
	{Kind: MatchExact, Pattern: "languages", Priority: PriorityExact, Validator: TypeCodeQLLanguage},
	{Kind: MatchExact, Pattern: "queries", Priority: PriorityExact, Validator: TypeCodeQLSuite},
	{Kind: MatchExact, Pattern: "email", Priority: PriorityExact, Validator: TypeEmail},
	{Kind: MatchExact, Pattern: "url", Priority: PriorityExact, Validator: TypeURL},
	{Kind: MatchExact, Pattern: "hostname", Priority: PriorityExact, Validator: TypeHostname},

	// Language-specific version suffixes (priority 95). These outrank the
	// generic -version suffix because the language variants carry narrower
	// numeric-range checks.
	{Kind: MatchSuffix, Pattern: "go-version", Priority: PriorityLanguage, Validator: TypeGoVersion},
	{Kind: MatchSuffix, Pattern: "node-version", Priority: PriorityLanguage, Validator: TypeNodeVersion},
	{Kind: MatchSuffix, Pattern: "dotnet-version", Priority: PriorityLanguage, Validator: TypeDotNetVersion},
	{Kind: MatchSuffix, Pattern: "terraform-version", Priority: PriorityLanguage, Validator: TypeTerraformVersion},

	// Generic suffixes (priority 90).
	{Kind: MatchSuffix, Pattern: "-version", Priority: PrioritySuffix, Validator: TypeVersion},
	{Kind: MatchSuffix, Pattern: "-token", Priority: PrioritySuffix, Validator: TypeToken},
	{Kind: MatchSuffix, Pattern: "-file", Priority: PrioritySuffix, Validator: TypeFile},
	{Kind: MatchSuffix, Pattern: "-path", Priority: PrioritySuffix, Validator: TypeFile},
	{Kind: MatchSuffix, Pattern: "-directory", Priority: PrioritySuffix, Validator: TypeFile},
	{Kind: MatchSuffix, Pattern: "-dir", Priority: PrioritySuffix, Validator: TypeFile},
	{Kind: MatchSuffix, Pattern: "-url", Priority: PrioritySuffix, Validator: TypeURL},
	{Kind: MatchSuffix, Pattern: "-email", Priority: PrioritySuffix, Validator: TypeEmail},
	{Kind: MatchSuffix, Pattern: "-hostname", Priority: PrioritySuffix, Validator: TypeHostname},
	{Kind: MatchSuffix, Pattern: "-host", Priority: PrioritySuffix, Validator: TypeHostname},
	{Kind: MatchSuffix, Pattern: "-image", Priority: PrioritySuffix, Validator: TypeDockerImage},
	{Kind: MatchSuffix, Pattern: "-tag", Priority: PrioritySuffix, Validator: TypeDockerTag},
	{Kind: MatchSuffix, Pattern: "-platforms", Priority: PrioritySuffix, Validator: TypeDockerPlatform},
	{Kind: MatchSuffix, Pattern: "-enabled", Priority: PrioritySuffix, Validator: TypeBoolean},
	{Kind: MatchSuffix, Pattern: "-timeout", Priority: PrioritySuffix, Validator: TypeNumeric, Ranged: true, Min: 1, Max: 86400},
	{Kind: MatchSuffix, Pattern: "-retries", Priority: PrioritySuffix, Validator: TypeNumeric, Ranged: true, Min: 0, Max: 100},
	{Kind: MatchSuffix, Pattern: "-count", Priority: PrioritySuffix, Validator: TypeNumeric, Ranged: true, Min: 0, Max: 10000},
	{Kind: MatchSuffix, Pattern: "-port", Priority: PrioritySuffix, Validator: TypeNumeric, Ranged: true, Min: 1, Max: 65535},
	{Kind: MatchSuffix, Pattern: "-limit", Priority: PrioritySuffix, Validator: TypeNumeric, Ranged: true, Min: 0, Max: 100000},

	// Substring matches (priority 85).
	{Kind: MatchContains, Pattern: "token", Priority: PriorityContains, Validator: TypeToken},
	{Kind: MatchContains, Pattern: "password", Priority: PriorityContains, Validator: TypeSecurity},
	{Kind: MatchContains, Pattern: "secret", Priority: PriorityContains, Validator: TypeSecurity},
	{Kind: MatchContains, Pattern: "version", Priority: PriorityContains, Validator: TypeVersion},
	{Kind: MatchContains, Pattern: "path", Priority: PriorityContains, Validator: TypeFile},
	{Kind: MatchContains, Pattern: "file", Priority: PriorityContains, Validator: TypeFile},
	{Kind: MatchContains, Pattern: "email", Priority: PriorityContains, Validator: TypeEmail},
	{Kind: MatchContains, Pattern: "url", Priority: PriorityContains, Validator: TypeURL},
	{Kind: MatchContains, Pattern: "image", Priority: PriorityContains, Validator: TypeDockerImage},

	// Prefixes (priority 80), mostly boolean toggles and counters.
	{Kind: MatchPrefix, Pattern: "enable-", Priority: PriorityPrefix, Validator: TypeBoolean},
	{Kind: MatchPrefix, Pattern: "disable-", Priority: PriorityPrefix, Validator: TypeBoolean},
	{Kind: MatchPrefix, Pattern: "is-", Priority: PriorityPrefix, Validator: TypeBoolean},
	{Kind: MatchPrefix, Pattern: "has-", Priority: PriorityPrefix, Validator: TypeBoolean},
	{Kind: MatchPrefix, Pattern: "use-", Priority: PriorityPrefix, Validator: TypeBoolean},
	{Kind: MatchPrefix, Pattern: "skip-", Priority: PriorityPrefix, Validator: TypeBoolean},
	{Kind: MatchPrefix, Pattern: "with-", Priority: PriorityPrefix, Validator: TypeBoolean},
	{Kind: MatchPrefix, Pattern: "auto-", Priority: PriorityPrefix, Validator: TypeBoolean},
	{Kind: MatchPrefix, Pattern: "max-", Priority: PriorityPrefix, Validator: TypeNumeric, Ranged: true, Min: 0, Max: 1000000},
	{Kind: MatchPrefix, Pattern: "min-", Priority: PriorityPrefix, Validator: TypeNumeric, Ranged: true, Min: 0, Max: 1000000},
	{Kind: MatchPrefix, Pattern: "num-", Priority: PriorityPrefix, Validator: TypeNumeric, Ranged: true, Min: 0, Max: 1000000},
}

// Resolve returns the highest-priority rule matching the input name. The
// boolean result is false when no rule applies.
func Resolve(name string) (Rule, bool) {
	name = strings.ToLower(strings.TrimSpace(name))

	best := Rule{Priority: -1}
	found := false
	for _, rule := range defaultTable {
		if rule.Priority <= best.Priority {
			continue
		}
		if rule.Matches(name) {
			best = rule
			found = true
		}
	}

	if found {
		mapperLog.Printf("Resolved input %q to validator %q (priority %d)", name, best.Validator, best.Priority)
	} else {
		mapperLog.Printf("No convention rule for input %q", name)
	}
	return best, found
}

// Table returns a copy of the rule table sorted by descending priority, for
// display purposes.
func Table() []Rule {
	rules := make([]Rule, len(defaultTable))
	copy(rules, defaultTable)
	sort.SliceStable(rules, func(i, j int) bool {
		return rules[i].Priority > rules[j].Priority
	})
	return rules
}

// KnownTypes lists every validator type tag a rule document may reference.
func KnownTypes() []string {
	return []string{
		TypeBoolean, TypeVersion, TypeSemver, TypeCalver,
		TypeGoVersion, TypeNodeVersion, TypeDotNetVersion, TypeTerraformVersion,
		TypeToken, TypeNumeric,
		TypeDockerImage, TypeDockerTag, TypeDockerPlatform,
		TypeFile, TypeURL, TypeEmail, TypeHostname,
		TypeCodeQLLanguage, TypeCodeQLSuite,
		TypeSecurity, TypeString,
	}
}
