package am

import (
	"io"
	"os"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/teranos/cgen/errors"
)

// CheckUnknownKeys reports keys in a config file that cgen does not know,
// such as a misspelled "[style] brase = ...". Viper silently ignores those.
func CheckUnknownKeys(configPath string) error {
	switch configType(configPath) {
	case "yaml":
		return checkYAML(configPath)
	default:
		return checkTOML(configPath)
	}
}

func checkTOML(configPath string) error {
	var c Config
	md, err := toml.DecodeFile(configPath, &c)
	if err != nil {
		return errors.Mark(errors.Wrapf(err, "failed to parse %s", configPath), errors.ErrInvalidConfig)
	}

	undecoded := md.Undecoded()
	if len(undecoded) == 0 {
		return nil
	}

	keys := make([]string, len(undecoded))
	for i, k := range undecoded {
		keys[i] = k.String()
	}
	sort.Strings(keys)
	return errors.WithHintf(
		errors.NewInvalidConfigError("unknown keys in %s: %s", configPath, strings.Join(keys, ", ")),
		"known keys: %s", strings.Join(Keys, ", "),
	)
}

func checkYAML(configPath string) error {
	f, err := os.Open(configPath)
	if err != nil {
		return errors.Wrapf(err, "failed to open %s", configPath)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)

	var c Config
	if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return errors.WithHintf(
			errors.Mark(errors.Wrapf(err, "invalid keys in %s", configPath), errors.ErrInvalidConfig),
			"known keys: %s", strings.Join(Keys, ", "),
		)
	}
	return nil
}

// ValidateFile loads configPath, rejects unknown keys and validates the result.
func ValidateFile(configPath string) (*Config, error) {
	if err := CheckUnknownKeys(configPath); err != nil {
		return nil, err
	}
	c, err := LoadFromFile(configPath)
	if err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, errors.Wrapf(err, "%s", configPath)
	}
	return c, nil
}

// ReloadCascade re-reads the whole cascade (defaults, user file, project
// file, environment) after changedPath was edited. Unknown keys are checked
// in changedPath only.
func ReloadCascade(changedPath string) (*Config, error) {
	if err := CheckUnknownKeys(changedPath); err != nil {
		return nil, err
	}

	Reset()
	c, err := Load()
	if err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, errors.Wrapf(err, "%s", changedPath)
	}
	return c, nil
}
