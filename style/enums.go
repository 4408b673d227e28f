package style

import (
	"strings"

	"github.com/teranos/cgen/errors"
)

// BraceStyle selects the block layout used by render.Body.
type BraceStyle int

const (
	Allman BraceStyle = iota
	GNU
	Whitesmiths
	KnR
	Ratliff
	Horstmann
	Pico
	Lisp
	None
)

// IndentUnit is the character used for indentation.
type IndentUnit int

const (
	Spaces IndentUnit = iota
	Tabs
)

// NewlineStyle is the line terminator written wherever a new line is emitted.
type NewlineStyle int

const (
	CRLF NewlineStyle = iota
	LF
	CR
	NoNewline
)

// Context is the kind of construct currently being rendered.
type Context int

const (
	File Context = iota
	If
	While
	ForLoop
	Function
	Struct
	Enum
	Other
)

var braceNames = map[BraceStyle]string{
	Allman:      "allman",
	GNU:         "gnu",
	Whitesmiths: "whitesmiths",
	KnR:         "knr",
	Ratliff:     "ratliff",
	Horstmann:   "horstmann",
	Pico:        "pico",
	Lisp:        "lisp",
	None:        "none",
}

var unitNames = map[IndentUnit]string{
	Spaces: "spaces",
	Tabs:   "tabs",
}

var newlineNames = map[NewlineStyle]string{
	CRLF:      "crlf",
	LF:        "lf",
	CR:        "cr",
	NoNewline: "none",
}

var contextNames = map[Context]string{
	File:     "file",
	If:       "if",
	While:    "while",
	ForLoop:  "for",
	Function: "function",
	Struct:   "struct",
	Enum:     "enum",
	Other:    "other",
}

func (b BraceStyle) String() string   { return nameOr(braceNames, b) }
func (u IndentUnit) String() string   { return nameOr(unitNames, u) }
func (n NewlineStyle) String() string { return nameOr(newlineNames, n) }
func (c Context) String() string      { return nameOr(contextNames, c) }

// Supported reports whether the brace style has a layout.
func (b BraceStyle) Supported() bool {
	switch b {
	case Allman, GNU, KnR, Horstmann, Pico, None:
		return true
	}
	return false
}

// BraceStyles lists every brace style in declaration order.
var BraceStyles = []BraceStyle{Allman, GNU, Whitesmiths, KnR, Ratliff, Horstmann, Pico, Lisp, None}

// SupportedBraceStyles lists the brace styles that render.
func SupportedBraceStyles() []BraceStyle {
	var out []BraceStyle
	for _, b := range BraceStyles {
		if b.Supported() {
			out = append(out, b)
		}
	}
	return out
}

func nameOr[K comparable](names map[K]string, k K) string {
	if name, ok := names[k]; ok {
		return name
	}
	return "unknown"
}

func normalize(s string) string {
	return strings.ToLower(strings.NewReplacer("-", "", "_", "", "&", "n", " ", "").Replace(strings.TrimSpace(s)))
}

func parse[K comparable](kind string, names map[K]string, aliases map[string]K, s string) (K, error) {
	key := normalize(s)
	for k, name := range names {
		if normalize(name) == key {
			return k, nil
		}
	}
	if k, ok := aliases[key]; ok {
		return k, nil
	}
	var zero K
	return zero, errors.NewInvalidConfigError("unknown %s %q", kind, s)
}

// ParseBraceStyle parses a brace style name such as "allman", "K&R" or "kr".
func ParseBraceStyle(s string) (BraceStyle, error) {
	return parse("brace style", braceNames, map[string]BraceStyle{
		"kr":      KnR,
		"minimal": None,
		"compact": None,
		"bsd":     Allman,
	}, s)
}

// ParseIndentUnit parses "spaces" or "tabs".
func ParseIndentUnit(s string) (IndentUnit, error) {
	return parse("indent unit", unitNames, map[string]IndentUnit{
		"space": Spaces,
		"tab":   Tabs,
	}, s)
}

// ParseNewlineStyle parses "crlf", "lf", "cr" or "none".
func ParseNewlineStyle(s string) (NewlineStyle, error) {
	return parse("newline style", newlineNames, map[string]NewlineStyle{
		"crnl":    CRLF,
		"nl":      LF,
		"unix":    LF,
		"windows": CRLF,
	}, s)
}
