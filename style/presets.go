package style

import (
	"sort"

	"github.com/teranos/cgen/errors"
)

// Preset names a complete house style.
type Preset string

const (
	PresetAllman      Preset = "allman"
	PresetGNU         Preset = "gnu"
	PresetWhitesmiths Preset = "whitesmiths"
	PresetKnR         Preset = "knr"
	PresetRatliff     Preset = "ratliff"
	PresetHorstmann   Preset = "horstmann"
	PresetPico        Preset = "pico"
	PresetLisp        Preset = "lisp"
	PresetMinimal     Preset = "minimal"
	PresetDefault     Preset = "default"
)

func base(brace BraceStyle) Config {
	return Config{
		Depth:   0,
		Unit:    Spaces,
		Width:   4,
		Brace:   brace,
		Newline: CRLF,
		Context: File,
		Cases:   DefaultCaseRules(),
	}
}

var presets = map[Preset]Config{
	PresetAllman:      base(Allman),
	PresetGNU:         base(GNU).WithWidth(2),
	PresetWhitesmiths: base(Whitesmiths),
	PresetKnR:         base(KnR),
	PresetRatliff:     base(Ratliff),
	PresetHorstmann:   base(Horstmann),
	PresetPico:        base(Pico),
	PresetLisp:        base(Lisp),
	PresetMinimal:     base(None).Compact(),
	PresetDefault:     base(KnR).WithUnit(Tabs),
}

// FromPreset returns the configuration for a preset; unknown presets yield Allman.
func FromPreset(p Preset) Config {
	if cfg, ok := presets[p]; ok {
		return cfg
	}
	return presets[PresetAllman]
}

// LookupPreset returns the configuration for a named preset.
func LookupPreset(name string) (Config, error) {
	key := Preset(normalize(name))
	if key == "kr" {
		key = PresetKnR
	}
	cfg, ok := presets[key]
	if !ok {
		return Config{}, errors.NewInvalidConfigError("unknown preset %q", name)
	}
	return cfg, nil
}

// Presets returns all preset names, sorted.
func Presets() []Preset {
	names := make([]Preset, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	return names
}
