package am

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/viper"

	"github.com/teranos/cgen/errors"
	"github.com/teranos/cgen/logger"
)

var globalConfig *Config
var viperInstance *viper.Viper

// ConfigSources records which file each key was last set by during Load.
var ConfigSources = map[string]SourceInfo{}

// Load reads the cgen configuration using Viper.
// Precedence (lowest to highest): defaults < user file < project file < env vars.
func Load() (*Config, error) {
	if globalConfig != nil {
		return globalConfig, nil
	}

	v := initViper()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}

	globalConfig = &config
	return globalConfig, nil
}

// GetViper returns the Viper instance for advanced configuration access
func GetViper() *viper.Viper {
	return initViper()
}

// LoadWithViper loads configuration using a provided Viper instance
func LoadWithViper(v *viper.Viper) (*Config, error) {
	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}
	return &config, nil
}

// LoadFromFile loads configuration from a specific TOML or YAML file.
// Environment variables are not consulted.
func LoadFromFile(configPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType(configType(configPath))

	SetDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, errors.Wrapf(err, "failed to read config file %s", configPath)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal config from %s", configPath)
	}

	return &config, nil
}

// Reset clears the cached configuration (useful for testing)
func Reset() {
	globalConfig = nil
	viperInstance = nil
	ConfigSources = map[string]SourceInfo{}
}

// configType maps a file extension to a Viper config type; TOML by default.
func configType(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return "yaml"
	default:
		return "toml"
	}
}

// initViper initializes Viper with configuration sources and defaults
func initViper() *viper.Viper {
	if viperInstance != nil {
		return viperInstance
	}

	v := viper.New()

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	BindEnvVars(v)

	SetDefaults(v)

	mergeConfigFiles(v)

	viperInstance = v
	return v
}

// UserConfigPath returns ~/.cgen/cgen.toml, or "" when there is no home directory.
func UserConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, UserConfigDir, ConfigFileTOML)
}

// FindProjectConfig searches for cgen.toml or cgen.yaml by walking up from dir.
// Returns the path to the first config file found, or empty string if none found.
func FindProjectConfig(dir string) string {
	for {
		for _, name := range []string{ConfigFileTOML, ConfigFileYAML} {
			path := filepath.Join(dir, name)
			if _, err := os.Stat(path); err == nil {
				return path
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

// ConfigPaths returns the files Load merges, lowest precedence first.
// Only existing files are returned.
func ConfigPaths() []string {
	var paths []string
	if user := UserConfigPath(); user != "" {
		if _, err := os.Stat(user); err == nil {
			paths = append(paths, user)
		}
	}
	if wd, err := os.Getwd(); err == nil {
		if project := FindProjectConfig(wd); project != "" {
			paths = append(paths, project)
		}
	}
	return paths
}

// mergeConfigFiles merges configuration files in precedence order and
// records where each key came from. Unreadable files are logged and skipped.
func mergeConfigFiles(v *viper.Viper) {
	user := UserConfigPath()
	for _, configPath := range ConfigPaths() {
		tempViper := viper.New()
		tempViper.SetConfigFile(configPath)
		tempViper.SetConfigType(configType(configPath))

		if err := tempViper.ReadInConfig(); err != nil {
			logger.Warnw("Skipping unreadable config file",
				"path", configPath,
				"error", err)
			continue
		}

		if err := v.MergeConfigMap(tempViper.AllSettings()); err != nil {
			logger.Warnw("Failed to merge config file",
				"path", configPath,
				"error", err)
			continue
		}

		source := SourceProject
		if configPath == user {
			source = SourceUser
		}
		for _, key := range tempViper.AllKeys() {
			ConfigSources[key] = SourceInfo{Source: source, Path: configPath}
		}
		logger.Debugw("Merged config file",
			"path", configPath,
			"source", source)
	}
}

// Get returns a configuration value using dot notation
func Get(key string) interface{} {
	return initViper().Get(key)
}

// GetString returns a configuration value as string using dot notation
func GetString(key string) string {
	return initViper().GetString(key)
}

// sortedKeys returns the keys of m in order.
func sortedKeys(m map[string]interface{}) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
