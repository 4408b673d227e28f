package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	info := Get()
	assert.Equal(t, Version, info.Version)
	assert.NotEmpty(t, info.GoVersion)
	assert.Contains(t, info.Platform, "/")
}

func TestString(t *testing.T) {
	info := Info{Version: "1.2.3", CommitHash: "abcdef0123", BuildTime: "today"}
	assert.Equal(t, "cgen 1.2.3 (commit abcdef0123, built today)", info.String())
	assert.Equal(t, "abcdef0", info.Short())
	assert.Equal(t, "abc", Info{CommitHash: "abc"}.Short())
}

func TestSatisfies(t *testing.T) {
	tests := []struct {
		name       string
		version    string
		constraint string
		wantErr    bool
	}{
		{"empty constraint", "1.0.0", "", false},
		{"dev build", "dev", ">= 9", false},
		{"in range", "0.4.1", ">= 0.3, < 1", false},
		{"caret", "1.5.0", "^1.2", false},
		{"too old", "0.2.0", ">= 0.3", true},
		{"too new", "2.0.0", "< 2", true},
		{"bad constraint", "1.0.0", "not a constraint", true},
		{"bad constraint on dev build", "dev", "not a constraint", true},
		{"bad version", "one", ">= 1", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Info{Version: tt.version}.Satisfies(tt.constraint)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestSatisfies_MessageNamesBothVersions(t *testing.T) {
	err := Info{Version: "0.2.0"}.Satisfies(">= 0.3")
	require.Error(t, err)
	assert.Contains(t, err.Error(), ">= 0.3")
	assert.Contains(t, err.Error(), "0.2.0")
}
