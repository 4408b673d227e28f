package style

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/cgen/errors"
)

func TestFromPreset(t *testing.T) {
	tests := []struct {
		preset  Preset
		brace   BraceStyle
		width   int
		unit    IndentUnit
		newline NewlineStyle
	}{
		{PresetAllman, Allman, 4, Spaces, CRLF},
		{PresetGNU, GNU, 2, Spaces, CRLF},
		{PresetKnR, KnR, 4, Spaces, CRLF},
		{PresetHorstmann, Horstmann, 4, Spaces, CRLF},
		{PresetPico, Pico, 4, Spaces, CRLF},
		{PresetMinimal, None, 0, Spaces, NoNewline},
		{PresetDefault, KnR, 4, Tabs, CRLF},
		{PresetWhitesmiths, Whitesmiths, 4, Spaces, CRLF},
	}
	for _, tt := range tests {
		t.Run(string(tt.preset), func(t *testing.T) {
			cfg := FromPreset(tt.preset)
			assert.Equal(t, tt.brace, cfg.Brace)
			assert.Equal(t, tt.width, cfg.Width)
			assert.Equal(t, tt.unit, cfg.Unit)
			assert.Equal(t, tt.newline, cfg.Newline)
			assert.Equal(t, File, cfg.Context)
			assert.Equal(t, 0, cfg.Depth)
			assert.Equal(t, DefaultCaseRules(), cfg.Cases)
		})
	}
}

func TestFromPreset_UnknownIsAllman(t *testing.T) {
	assert.Equal(t, New(), FromPreset("banner"))
}

func TestLookupPreset(t *testing.T) {
	cfg, err := LookupPreset("K&R")
	require.NoError(t, err)
	assert.Equal(t, KnR, cfg.Brace)

	_, err = LookupPreset("banner")
	require.Error(t, err)
	assert.True(t, errors.IsInvalidConfigError(err))
}

func TestPresetsSorted(t *testing.T) {
	names := Presets()
	require.Len(t, names, 10)
	for i := 1; i < len(names); i++ {
		assert.Less(t, string(names[i-1]), string(names[i]))
	}
}
