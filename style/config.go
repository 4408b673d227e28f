// Package style holds the formatting state threaded through a render:
// indentation, brace placement, newline convention, syntactic context and the
// casing rule for each identifier role.
//
// Config is a value type. Every With*/Indent method returns a modified copy,
// so a node can hand an adjusted Config to its children without its siblings
// observing the change.
package style

import (
	"strings"

	"github.com/teranos/cgen/casing"
)

// CaseRules maps identifier roles to casing rules.
type CaseRules struct {
	Type        casing.Rule
	Member      casing.Rule
	Function    casing.Rule
	ConstDefine casing.Rule
	File        casing.Rule
	Default     casing.Rule
}

// DefaultCaseRules returns the casing used by every preset.
func DefaultCaseRules() CaseRules {
	return CaseRules{
		Type:        casing.Pascal,
		Member:      casing.Snake,
		Function:    casing.Snake,
		ConstDefine: casing.ScreamingSnake,
		File:        casing.Pascal,
		Default:     casing.Snake,
	}
}

// Config is the formatting state for one render call.
type Config struct {
	Depth   int
	Unit    IndentUnit
	Width   int
	Brace   BraceStyle
	Newline NewlineStyle
	Context Context
	Cases   CaseRules
}

// New returns the Allman preset.
func New() Config {
	return FromPreset(PresetAllman)
}

// Indent returns a copy one nesting level deeper.
func (c Config) Indent() Config {
	c.Depth++
	return c
}

// AtDepth returns a copy at the given nesting level.
func (c Config) AtDepth(depth int) Config {
	if depth < 0 {
		depth = 0
	}
	c.Depth = depth
	return c
}

// WithContext returns a copy with the syntactic context replaced.
func (c Config) WithContext(ctx Context) Config {
	c.Context = ctx
	return c
}

// WithBrace returns a copy with the brace style replaced.
func (c Config) WithBrace(b BraceStyle) Config {
	c.Brace = b
	return c
}

// WithUnit returns a copy with the indentation unit replaced.
func (c Config) WithUnit(u IndentUnit) Config {
	c.Unit = u
	return c
}

// WithWidth returns a copy with the indentation width replaced; negative widths clamp to 0.
func (c Config) WithWidth(width int) Config {
	if width < 0 {
		width = 0
	}
	c.Width = width
	return c
}

// WithNewline returns a copy with the newline convention replaced.
func (c Config) WithNewline(n NewlineStyle) Config {
	c.Newline = n
	return c
}

// WithCases returns a copy with the casing rules replaced.
func (c Config) WithCases(rules CaseRules) Config {
	c.Cases = rules
	return c
}

// Compact returns a copy that emits neither newlines nor indentation.
func (c Config) Compact() Config {
	c.Newline = NoNewline
	c.Width = 0
	return c
}

// TabsPerLevel is the number of tabs one level takes, Width rounded up to a multiple of 4.
func (c Config) TabsPerLevel() int {
	if c.Width <= 0 {
		return 0
	}
	return (c.Width + 3) / 4
}

// LevelText returns the indentation for a single level.
func (c Config) LevelText() string {
	return c.AtDepth(1).IndentText()
}

// IndentText returns the indentation for the current depth.
func (c Config) IndentText() string {
	if c.Depth <= 0 {
		return ""
	}
	switch c.Unit {
	case Tabs:
		return strings.Repeat("\t", c.TabsPerLevel()*c.Depth)
	default:
		if c.Width <= 0 {
			return ""
		}
		return strings.Repeat(" ", c.Width*c.Depth)
	}
}

// NewlineText returns the line terminator.
func (c Config) NewlineText() string {
	switch c.Newline {
	case LF:
		return "\n"
	case CR:
		return "\r"
	case NoNewline:
		return ""
	default:
		return "\r\n"
	}
}
