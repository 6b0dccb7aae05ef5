// Package logger provides namespace-scoped debug logging controlled by the
// DEBUG environment variable, following the conventions of the npm debug
// package. Loggers are cheap to construct and are typically declared once per
// file:
//
//	var validateLog = logger.New("cli:validate_command")
package logger

import (
	"fmt"
	"hash/fnv"
	"os"
	"strings"
	"sync"
	"time"

	"golang.org/x/term"
)

// Logger is a debug logger bound to a single namespace.
type Logger struct {
	namespace string
	enabled   bool
	lastLog   time.Time
	mu        sync.Mutex
	color     string
}

var (
	// DEBUG environment variable value, read once at initialization.
	debugEnv = os.Getenv("DEBUG")

	// DEBUG_COLORS environment variable to control color output.
	debugColors = os.Getenv("DEBUG_COLORS") != "0"

	// Whether stderr is a terminal (for color support).
	isTTY = term.IsTerminal(int(os.Stderr.Fd()))

	// ANSI 256-color codes readable on both light and dark backgrounds.
	colorPalette = []string{
		"\033[38;5;33m",  // Blue
		"\033[38;5;35m",  // Green
		"\033[38;5;166m", // Orange
		"\033[38;5;125m", // Purple
		"\033[38;5;37m",  // Cyan
		"\033[38;5;161m", // Magenta
		"\033[38;5;136m", // Yellow
		"\033[38;5;124m", // Red
	}

	colorReset = "\033[0m"
)

// New creates a Logger for the given namespace. The enabled state is computed
// once at construction time from the DEBUG environment variable:
//
//	DEBUG=*              - enables all loggers
//	DEBUG=validators:*   - enables all loggers in a namespace
//	DEBUG=ns1,ns2        - enables specific namespaces
//	DEBUG=ns:*,-ns:skip  - enables a namespace but excludes specific patterns
func New(namespace string) *Logger {
	return &Logger{
		namespace: namespace,
		enabled:   computeEnabled(namespace),
		lastLog:   time.Now(),
		color:     selectColor(namespace),
	}
}

// selectColor assigns a stable color to a namespace based on its FNV-1a hash.
func selectColor(namespace string) string {
	if !debugColors || !isTTY {
		return ""
	}
	h := fnv.New32a()
	if _, err := h.Write([]byte(namespace)); err != nil {
		return ""
	}
	return colorPalette[h.Sum32()%uint32(len(colorPalette))]
}

// Enabled returns whether this logger is enabled.
func (l *Logger) Enabled() bool {
	return l.enabled
}

// Printf prints a formatted message to stderr if the logger is enabled.
// A newline is always added, along with the time since the previous log line.
func (l *Logger) Printf(format string, args ...any) {
	if !l.enabled {
		return
	}
	l.emit(fmt.Sprintf(format, args...))
}

// Print prints a message to stderr if the logger is enabled.
// A newline is always added, along with the time since the previous log line.
func (l *Logger) Print(args ...any) {
	if !l.enabled {
		return
	}
	l.emit(fmt.Sprint(args...))
}

func (l *Logger) emit(message string) {
	l.mu.Lock()
	now := time.Now()
	diff := now.Sub(l.lastLog)
	l.lastLog = now
	l.mu.Unlock()

	if l.color != "" {
		fmt.Fprintf(os.Stderr, "%s%s%s %s +%s\n", l.color, l.namespace, colorReset, message, formatDelta(diff))
	} else {
		fmt.Fprintf(os.Stderr, "%s %s +%s\n", l.namespace, message, formatDelta(diff))
	}
}

// formatDelta renders a duration compactly (2ms, 1.2s, 3m5s), matching the
// time-diff display of the npm debug package.
func formatDelta(d time.Duration) string {
	switch {
	case d < time.Millisecond:
		return fmt.Sprintf("%dµs", d.Microseconds())
	case d < time.Second:
		return fmt.Sprintf("%dms", d.Milliseconds())
	case d < time.Minute:
		return fmt.Sprintf("%.1fs", d.Seconds())
	default:
		return fmt.Sprintf("%dm%ds", int(d.Minutes()), int(d.Seconds())%60)
	}
}

// computeEnabled reports whether a namespace matches the DEBUG patterns.
func computeEnabled(namespace string) bool {
	enabled := false
	for pattern := range strings.SplitSeq(debugEnv, ",") {
		pattern = strings.TrimSpace(pattern)

		// Exclusion patterns (starting with -) take precedence.
		if exclude, ok := strings.CutPrefix(pattern, "-"); ok {
			if matchPattern(namespace, exclude) {
				return false
			}
			continue
		}

		if matchPattern(namespace, pattern) {
			enabled = true
		}
	}
	return enabled
}

// matchPattern checks if a namespace matches a pattern with optional * wildcards.
func matchPattern(namespace, pattern string) bool {
	if pattern == "*" || pattern == namespace {
		return true
	}
	if !strings.Contains(pattern, "*") {
		return false
	}
	if prefix, ok := strings.CutSuffix(pattern, "*"); ok {
		return strings.HasPrefix(namespace, prefix)
	}
	if suffix, ok := strings.CutPrefix(pattern, "*"); ok {
		return strings.HasSuffix(namespace, suffix)
	}
	// Middle wildcard: split and check both parts.
	parts := strings.SplitN(pattern, "*", 2)
	return strings.HasPrefix(namespace, parts[0]) && strings.HasSuffix(namespace, parts[1])
}
