// Package am loads the cgen house style ("am" as in "the way I am") from
// cgen.toml or cgen.yaml files and CGEN_* environment variables, and turns
// it into a style.Config.
package am

// Config represents the cgen configuration file
type Config struct {
	Style StyleConfig `mapstructure:"style" toml:"style" yaml:"style" json:"style"`
}

// StyleConfig selects a preset and overrides single axes of it.
// Empty strings and a nil Width inherit the preset's value.
type StyleConfig struct {
	Preset   string      `mapstructure:"preset" toml:"preset" yaml:"preset" json:"preset"`
	Brace    string      `mapstructure:"brace" toml:"brace,omitempty" yaml:"brace,omitempty" json:"brace,omitempty"`
	Unit     string      `mapstructure:"unit" toml:"unit,omitempty" yaml:"unit,omitempty" json:"unit,omitempty"`
	Width    *int        `mapstructure:"width" toml:"width,omitempty" yaml:"width,omitempty" json:"width,omitempty"` // 0 is a valid width (no indentation)
	Newline  string      `mapstructure:"newline" toml:"newline,omitempty" yaml:"newline,omitempty" json:"newline,omitempty"`
	Requires string      `mapstructure:"requires" toml:"requires,omitempty" yaml:"requires,omitempty" json:"requires,omitempty"` // semver constraint on the cgen version
	Cases    CasesConfig `mapstructure:"cases" toml:"cases" yaml:"cases" json:"cases"`
}

// CasesConfig overrides the casing rule per identifier role.
type CasesConfig struct {
	Type        string `mapstructure:"type" toml:"type,omitempty" yaml:"type,omitempty" json:"type,omitempty"`
	Member      string `mapstructure:"member" toml:"member,omitempty" yaml:"member,omitempty" json:"member,omitempty"`
	Function    string `mapstructure:"function" toml:"function,omitempty" yaml:"function,omitempty" json:"function,omitempty"`
	ConstDefine string `mapstructure:"const_define" toml:"const_define,omitempty" yaml:"const_define,omitempty" json:"const_define,omitempty"`
	File        string `mapstructure:"file" toml:"file,omitempty" yaml:"file,omitempty" json:"file,omitempty"`
	Default     string `mapstructure:"default" toml:"default,omitempty" yaml:"default,omitempty" json:"default,omitempty"`
}

// Configuration file names, searched in this order.
const (
	ConfigFileTOML = "cgen.toml"
	ConfigFileYAML = "cgen.yaml"
)

// UserConfigDir is the directory under $HOME holding the user's config.
const UserConfigDir = ".cgen"

// EnvPrefix is the prefix of environment overrides (CGEN_STYLE_BRACE=knr).
const EnvPrefix = "CGEN"

// File system constants
const (
	DefaultDirPermissions  = 0755 // Standard directory permissions (rwxr-xr-x)
	DefaultFilePermissions = 0644 // Standard file permissions (rw-r--r--)
)
