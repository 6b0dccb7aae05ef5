//go:build !integration

package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVersionValidatorFlexible(t *testing.T) {
	v := VersionValidator{Scheme: SchemeFlexible}

	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{"semver", "1.2.3", false},
		{"semver with v prefix", "v1.2.3", false},
		{"semver with prerelease", "1.2.3-rc.1", false},
		{"latest alias", "latest", false},
		{"calver year month", "2025.10", false},
		{"calver full date", "2025.10.18", false},
		{"expression", "${{ inputs.version }}", false},
		{"two-part is not semver", "1.2", true},
		{"words", "not-a-version", true},
		{"empty", "", true},
		{"calver bad month", "2025.13.01", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate("version", tt.value)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestVersionValidatorSemver(t *testing.T) {
	v := VersionValidator{Scheme: SchemeSemver}

	assert.NoError(t, v.Validate("release-version", "1.2.3"))
	assert.NoError(t, v.Validate("release-version", "10.0.1"))
	assert.Error(t, v.Validate("release-version", "v1.2.3"), "strict semver rejects the v prefix")
	assert.Error(t, v.Validate("release-version", "1.2"))
	assert.Error(t, v.Validate("release-version", "01.2.3"), "leading zeros are invalid")
	assert.Error(t, v.Validate("release-version", "latest"))
}

func TestVersionValidatorCalver(t *testing.T) {
	v := VersionValidator{Scheme: SchemeCalver}

	tests := []struct {
		value   string
		wantErr bool
	}{
		{"2025.10", false},
		{"2025.1", false},
		{"2025.10.18", false},
		{"2025.10.18.2", false},
		{"2025.13", true},
		{"2025.00", true},
		{"2025.10.32", true},
		{"1.2.3", true},
	}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			err := v.Validate("build-version", tt.value)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestVersionValidatorGo(t *testing.T) {
	v := VersionValidator{Scheme: SchemeGo}

	assert.NoError(t, v.Validate("go-version", "1.22"))
	assert.NoError(t, v.Validate("go-version", "1.22.4"))
	assert.NoError(t, v.Validate("go-version", "1.22.x"))
	assert.NoError(t, v.Validate("go-version", "stable"))
	assert.NoError(t, v.Validate("go-version", "oldstable"))
	assert.Error(t, v.Validate("go-version", "2.0"))
	assert.Error(t, v.Validate("go-version", "1"))
	assert.Error(t, v.Validate("go-version", "go1.22"))
}

func TestVersionValidatorNode(t *testing.T) {
	v := VersionValidator{Scheme: SchemeNode}

	tests := []struct {
		value   string
		wantErr bool
	}{
		{"20", false},
		{"20.11", false},
		{"20.11.1", false},
		{"18.x", false},
		{"20.11.x", false},
		{"14", false},
		{"24", false},
		{"12", true},  // below supported range
		{"26", true},  // above supported range
		{"abc", true},
		{"", true},
	}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			err := v.Validate("node-version", tt.value)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestVersionValidatorDotNet(t *testing.T) {
	v := VersionValidator{Scheme: SchemeDotNet}

	tests := []struct {
		value   string
		wantErr bool
	}{
		{"8.0", false},
		{"6.0", false},
		{"3.1", false},
		{"8.0.x", false},
		{"8.0.404", false},
		{"20.0", false},
		{"20.1", true}, // newest major has no minor releases
		{"2.1", true},  // below supported range
		{"21.0", true}, // above supported range
		{"8", true},    // minor is mandatory
		{"", true},
	}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			err := v.Validate("dotnet-version", tt.value)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestVersionValidatorTerraform(t *testing.T) {
	v := VersionValidator{Scheme: SchemeTerraform}

	assert.NoError(t, v.Validate("terraform-version", "1.9.5"))
	assert.NoError(t, v.Validate("terraform-version", "v1.9.5"))
	assert.NoError(t, v.Validate("terraform-version", "latest"))
	assert.Error(t, v.Validate("terraform-version", "1.9"))
	assert.Error(t, v.Validate("terraform-version", "newest"))
}

func TestVersionValidatorIdempotent(t *testing.T) {
	v := VersionValidator{Scheme: SchemeFlexible}
	first := v.Validate("version", "1.2.3")
	second := v.Validate("version", "1.2.3")
	assert.Equal(t, first, second)

	firstErr := v.Validate("version", "garbage")
	secondErr := v.Validate("version", "garbage")
	assert.Equal(t, firstErr.Error(), secondErr.Error())
}
