package am

import (
	"github.com/spf13/viper"

	"github.com/teranos/cgen/style"
)

// Keys lists every configuration key in dot notation.
var Keys = []string{
	"style.preset",
	"style.brace",
	"style.unit",
	"style.width",
	"style.newline",
	"style.requires",
	"style.cases.type",
	"style.cases.member",
	"style.cases.function",
	"style.cases.const_define",
	"style.cases.file",
	"style.cases.default",
}

// DefaultPreset is used when no preset is configured.
const DefaultPreset = style.PresetDefault

// SetDefaults configures default values for all configuration options
func SetDefaults(v *viper.Viper) {
	v.SetDefault("style.preset", string(DefaultPreset))
}

// BindEnvVars binds every key to its CGEN_* environment variable so that
// keys without a default are still picked up by Unmarshal.
func BindEnvVars(v *viper.Viper) {
	for _, key := range Keys {
		_ = v.BindEnv(key)
	}
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{Style: StyleConfig{Preset: string(DefaultPreset)}}
}
