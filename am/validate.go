package am

import (
	"github.com/teranos/cgen/casing"
	"github.com/teranos/cgen/errors"
	"github.com/teranos/cgen/style"
	"github.com/teranos/cgen/version"
)

// Resolve turns the configuration into a render configuration: the preset
// first, then every override that is set.
func (c *Config) Resolve() (style.Config, error) {
	s := c.Style
	preset := s.Preset
	if preset == "" {
		preset = string(DefaultPreset)
	}
	cfg, err := style.LookupPreset(preset)
	if err != nil {
		return style.Config{}, errors.Wrap(err, "style.preset")
	}

	if s.Brace != "" {
		b, err := style.ParseBraceStyle(s.Brace)
		if err != nil {
			return style.Config{}, errors.Wrap(err, "style.brace")
		}
		cfg = cfg.WithBrace(b)
	}
	if s.Unit != "" {
		u, err := style.ParseIndentUnit(s.Unit)
		if err != nil {
			return style.Config{}, errors.Wrap(err, "style.unit")
		}
		cfg = cfg.WithUnit(u)
	}
	if s.Width != nil {
		if *s.Width < 0 {
			return style.Config{}, errors.NewInvalidConfigError("style.width must be >= 0, got %d", *s.Width)
		}
		cfg = cfg.WithWidth(*s.Width)
	}
	if s.Newline != "" {
		n, err := style.ParseNewlineStyle(s.Newline)
		if err != nil {
			return style.Config{}, errors.Wrap(err, "style.newline")
		}
		cfg = cfg.WithNewline(n)
	}

	cases := cfg.Cases
	overrides := []struct {
		key   string
		value string
		dst   *casing.Rule
	}{
		{"style.cases.type", s.Cases.Type, &cases.Type},
		{"style.cases.member", s.Cases.Member, &cases.Member},
		{"style.cases.function", s.Cases.Function, &cases.Function},
		{"style.cases.const_define", s.Cases.ConstDefine, &cases.ConstDefine},
		{"style.cases.file", s.Cases.File, &cases.File},
		{"style.cases.default", s.Cases.Default, &cases.Default},
	}
	for _, o := range overrides {
		if o.value == "" {
			continue
		}
		r, err := casing.ParseRule(o.value)
		if err != nil {
			return style.Config{}, errors.Wrap(err, o.key)
		}
		*o.dst = r
	}

	return cfg.WithCases(cases), nil
}

// Validate checks that the configuration is valid: every value parses,
// the brace style can render, and the running cgen satisfies style.requires.
func (c *Config) Validate() error {
	cfg, err := c.Resolve()
	if err != nil {
		return err
	}

	if !cfg.Brace.Supported() {
		return errors.WithHint(
			errors.NewInvalidConfigError("style.brace %q has no layout", cfg.Brace),
			"supported brace styles: allman, gnu, knr, horstmann, pico, none",
		)
	}

	if err := version.Get().Satisfies(c.Style.Requires); err != nil {
		return errors.Mark(errors.Wrap(err, "style.requires"), errors.ErrInvalidConfig)
	}

	return nil
}
