//go:build !integration

package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsExpression(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  bool
	}{
		{"context reference", "${{ github.token }}", true},
		{"secrets reference", "${{ secrets.DEPLOY_KEY }}", true},
		{"inputs reference", "${{ inputs.max-retries }}", true},
		{"function call", "${{ format('v{0}', inputs.version) }}", true},
		{"logical expression", "${{ github.event_name == 'push' && 'yes' || 'no' }}", true},
		{"no surrounding spaces", "${{github.sha}}", true},
		{"leading whitespace", "  ${{ github.sha }}  ", true},
		{"plain value", "1.2.3", false},
		{"empty", "", false},
		{"empty expression", "${{ }}", false},
		{"unclosed", "${{ github.sha", false},
		{"prefix only", "${{ github.sha }}-suffix", false},
		{"concatenated expressions", "${{ a }}-${{ b }}", false},
		{"nested opener", "${{ ${{ github.sha }} }}", false},
		{"shell inside braces", "${{ ;rm -rf / }}", false},
		{"unbalanced parens", "${{ format(a }}", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsExpression(tt.value))
		})
	}
}

func TestExpressionExemptionAppliesToAllValidators(t *testing.T) {
	expr := "${{ inputs.anything }}"
	checks := []Validator{
		BooleanValidator{},
		VersionValidator{Scheme: SchemeSemver},
		TokenValidator{},
		NumericValidator{Ranged: true, Min: 1, Max: 10},
		DockerValidator{Kind: DockerTag},
		FileValidator{},
		NetworkValidator{Kind: NetworkURL},
		SecurityValidator{},
		CodeQLValidator{Kind: CodeQLLanguages},
	}
	for _, v := range checks {
		assert.NoError(t, v.Validate("some-input", expr), "validator %s must exempt expressions", v.Name())
	}
}
