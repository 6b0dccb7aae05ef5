package console

import (
	"strings"

	"github.com/github/validate-inputs/pkg/constants"
	"github.com/github/validate-inputs/pkg/envutil"
)

// IsGitHubActions reports whether the process is running inside a GitHub
// Actions runner. Annotation output is only meaningful there.
func IsGitHubActions() bool {
	return envutil.GetBoolFromEnv(constants.GitHubActionsEnvVar, false)
}

// escapeAnnotation escapes a message for the workflow-command wire format.
// Order matters: % must be escaped first so the other escapes survive.
func escapeAnnotation(message string) string {
	message = strings.ReplaceAll(message, "%", "%25")
	message = strings.ReplaceAll(message, "\r", "%0D")
	message = strings.ReplaceAll(message, "\n", "%0A")
	return message
}

// FormatErrorAnnotation renders a ::error:: workflow command that GitHub
// Actions surfaces as a file-level error annotation.
func FormatErrorAnnotation(message string) string {
	return "::error::" + escapeAnnotation(message)
}

// FormatWarningAnnotation renders a ::warning:: workflow command.
func FormatWarningAnnotation(message string) string {
	return "::warning::" + escapeAnnotation(message)
}

// FormatNoticeAnnotation renders a ::notice:: workflow command.
func FormatNoticeAnnotation(message string) string {
	return "::notice::" + escapeAnnotation(message)
}
