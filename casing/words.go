package casing

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Normalize returns s in Unicode NFC so composed and decomposed input
// produce the same identifier.
func Normalize(s string) string {
	return norm.NFC.String(s)
}

func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == ChunkMarker || unicode.IsSpace(r)
}

// Words splits already-cased text into lowercase words.
// Boundaries are separators (_ - space and ChunkMarker), a lower-case letter or
// digit followed by an upper-case letter, and the end of an acronym
// ("HTTPServer" -> "http", "server").
func Words(s string) []string {
	var words []string
	var current []rune

	flush := func() {
		if len(current) > 0 {
			words = append(words, strings.ToLower(string(current)))
			current = current[:0]
		}
	}

	runes := []rune(Normalize(s))
	for i, r := range runes {
		if isSeparator(r) {
			flush()
			continue
		}

		if len(current) > 0 && unicode.IsUpper(r) {
			prev := current[len(current)-1]
			prevUpper := unicode.IsUpper(prev)
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if !prevUpper || nextLower {
				flush()
			}
		}

		current = append(current, r)
	}
	flush()

	return words
}
