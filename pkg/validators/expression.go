// This file implements the GitHub Actions expression exemption.
//
// A value equal to a well-formed ${{ ... }} expression is accepted by every
// validator without further format checking, since its real value is unknown
// until the workflow runs. Well-formedness is decided by parsing the inner
// expression with the actionlint expression parser rather than by a loose
// regex, so garbage like "${{ ;rm -rf / }}" is not exempted.

package validators

import (
	"strings"

	"github.com/github/validate-inputs/pkg/logger"
	"github.com/rhysd/actionlint"
)

var expressionLog = logger.New("validators:expression")

// IsExpression reports whether the entire value is a single well-formed
// GitHub Actions expression.
func IsExpression(value string) bool {
	v := strings.TrimSpace(value)
	if !strings.HasPrefix(v, "${{") || !strings.HasSuffix(v, "}}") {
		return false
	}

	inner := v[3 : len(v)-2]
	trimmed := strings.TrimSpace(inner)
	if trimmed == "" {
		return false
	}

	// Values like "${{ a }}-${{ b }}" are concatenations, not a single
	// expression, and must not be exempted wholesale.
	if strings.Contains(inner, "}}") || strings.Contains(inner, "${{") {
		return false
	}

	// actionlint's expression lexer expects the closing marker.
	lexer := actionlint.NewExprLexer(trimmed + "}}")
	parser := actionlint.NewExprParser()
	if _, perr := parser.Parse(lexer); perr != nil {
		expressionLog.Printf("Rejecting malformed expression %q: %s", trimmed, perr.Message)
		return false
	}
	return true
}
