// Package casing converts canonical word sequences and free text into
// identifier text under a casing rule (camelCase, PascalCase, snake_case ...).
package casing

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/teranos/cgen/errors"
)

// Rule selects how words are cased and joined.
type Rule int

const (
	Flat           Rule = iota // flatcase
	Screaming                  // SCREAMINGCASE
	Camel                      // camelCase
	Pascal                     // PascalCase
	Snake                      // snake_case
	ScreamingSnake             // SCREAMING_SNAKE_CASE
)

// Rules lists every rule in declaration order.
var Rules = []Rule{Flat, Screaming, Camel, Pascal, Snake, ScreamingSnake}

var ruleNames = map[Rule]string{
	Flat:           "flat",
	Screaming:      "screaming",
	Camel:          "camel",
	Pascal:         "pascal",
	Snake:          "snake",
	ScreamingSnake: "screaming_snake",
}

// String returns the config-file name of the rule
func (r Rule) String() string {
	if name, ok := ruleNames[r]; ok {
		return name
	}
	return "unknown"
}

// ParseRule accepts the config-file name of a rule or its common spelling
// ("camelCase", "SCREAMING_SNAKE_CASE", "snake-case" ...).
func ParseRule(s string) (Rule, error) {
	key := strings.ToLower(strings.NewReplacer("-", "", "_", "", " ", "").Replace(s))
	key = strings.TrimSuffix(key, "case")
	switch key {
	case "flat":
		return Flat, nil
	case "screaming", "upper", "upperflat":
		return Screaming, nil
	case "camel":
		return Camel, nil
	case "pascal":
		return Pascal, nil
	case "snake":
		return Snake, nil
	case "screamingsnake", "constant", "macro":
		return ScreamingSnake, nil
	}
	return Flat, errors.NewInvalidConfigError("unknown casing rule %q (supported: flat, screaming, camel, pascal, snake, screaming_snake)", s)
}

// placeholder stands in for identifiers with no usable fragments.
var placeholder = []string{"invalid", "name"}

// Placeholder returns the fragments substituted for an empty identifier.
func Placeholder() []string {
	return append([]string(nil), placeholder...)
}

type transform int

const (
	lower transform = iota
	upper
	capitalize
)

type layout struct {
	first  transform
	rest   transform
	joiner string
}

var layouts = map[Rule]layout{
	Flat:           {first: lower, rest: lower, joiner: ""},
	Screaming:      {first: upper, rest: upper, joiner: ""},
	Camel:          {first: lower, rest: capitalize, joiner: ""},
	Pascal:         {first: capitalize, rest: capitalize, joiner: ""},
	Snake:          {first: lower, rest: lower, joiner: "_"},
	ScreamingSnake: {first: upper, rest: upper, joiner: "_"},
}

func (t transform) apply(word string) string {
	switch t {
	case upper:
		return strings.ToUpper(word)
	case capitalize:
		r, size := utf8.DecodeRuneInString(word)
		if r == utf8.RuneError && size <= 1 {
			return strings.ToLower(word)
		}
		return string(unicode.ToUpper(r)) + strings.ToLower(word[size:])
	default:
		return strings.ToLower(word)
	}
}

// Casify joins words under rule r. Empty words are skipped and an empty
// sequence renders the placeholder, so the result is never empty.
// Unknown rules fall back to snake_case.
func Casify(words []string, r Rule) string {
	l, ok := layouts[r]
	if !ok {
		l = layouts[Snake]
	}

	parts := make([]string, 0, len(words))
	for _, w := range words {
		if w == "" {
			continue
		}
		if len(parts) == 0 {
			parts = append(parts, l.first.apply(w))
		} else {
			parts = append(parts, l.rest.apply(w))
		}
	}
	if len(parts) == 0 {
		return Casify(placeholder, r)
	}
	return strings.Join(parts, l.joiner)
}
