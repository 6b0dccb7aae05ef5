package validators

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/github/validate-inputs/pkg/conventions"
)

// NetworkKind selects which network identifier a NetworkValidator checks.
type NetworkKind int

const (
	// NetworkEmail validates email address shape.
	NetworkEmail NetworkKind = iota
	// NetworkURL validates http(s) URLs.
	NetworkURL
	// NetworkHostname validates bare hostnames.
	NetworkHostname
)

var hostnameRegex = regexp.MustCompile(`^[a-zA-Z0-9]([a-zA-Z0-9-]*[a-zA-Z0-9])?(\.[a-zA-Z0-9]([a-zA-Z0-9-]*[a-zA-Z0-9])?)*$`)

// NetworkValidator validates email, URL, and hostname shapes. These are
// plausibility checks, not RFC-complete parsers: the goal is to catch pasted
// garbage and injection attempts before a tool sees the value.
type NetworkValidator struct {
	Kind NetworkKind
}

// Name returns the validator's type tag.
func (v NetworkValidator) Name() string {
	switch v.Kind {
	case NetworkURL:
		return conventions.TypeURL
	case NetworkHostname:
		return conventions.TypeHostname
	default:
		return conventions.TypeEmail
	}
}

// Validate checks value against the selected network identifier shape.
func (v NetworkValidator) Validate(input, value string) error {
	if IsExpression(value) {
		return nil
	}
	value = strings.TrimSpace(value)

	switch v.Kind {
	case NetworkURL:
		return v.validateURL(input, value)
	case NetworkHostname:
		return v.validateHostname(input, value)
	default:
		return v.validateEmail(input, value)
	}
}

func (v NetworkValidator) validateEmail(input, value string) error {
	at := strings.Index(value, "@")
	bad := at <= 0 || // missing or leading @
		at == len(value)-1 || // trailing @
		strings.Count(value, "@") != 1 ||
		strings.Contains(value, " ")
	if !bad {
		domain := value[at+1:]
		bad = !strings.Contains(domain, ".") ||
			strings.HasPrefix(domain, ".") ||
			strings.HasSuffix(domain, ".")
	}
	if bad {
		return NewValidationError(input, value,
			"is not a valid email address",
			"Use the form user@example.com")
	}
	return nil
}

func (v NetworkValidator) validateURL(input, value string) error {
	u, err := url.Parse(value)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return NewValidationError(input, value,
			"is not a valid http(s) URL",
			"Use a full URL like https://example.com/path")
	}
	return nil
}

func (v NetworkValidator) validateHostname(input, value string) error {
	if value == "" || len(value) > 253 || !hostnameRegex.MatchString(value) {
		return NewValidationError(input, value,
			"is not a valid hostname",
			"Use a hostname like registry.example.com")
	}
	return nil
}
