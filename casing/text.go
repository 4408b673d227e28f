package casing

import (
	"strings"
	"unicode"
)

// ChunkMarker is the explicit word-boundary hint inside free text.
// It is consumed by Text and never emitted.
const ChunkMarker = '`'

// runeCase holds the per-rule transforms for the first rune of the text,
// the first rune of each later chunk, and every other rune.
type runeCase struct {
	first, chunk, other bool // true = upper
}

var runeCases = map[Rule]runeCase{
	Flat:           {first: false, chunk: false, other: false},
	Screaming:      {first: true, chunk: true, other: true},
	Camel:          {first: false, chunk: true, other: false},
	Pascal:         {first: true, chunk: true, other: false},
	Snake:          {first: false, chunk: false, other: false},
	ScreamingSnake: {first: true, chunk: true, other: true},
}

func setCase(r rune, up bool) rune {
	if up {
		return unicode.ToUpper(r)
	}
	return unicode.ToLower(r)
}

// Text re-cases free text that was never split into words. A chunk starts
// after ChunkMarker and at every upper-case rune; no separators are inserted.
func Text(s string, r Rule) string {
	rc, ok := runeCases[r]
	if !ok {
		rc = runeCases[Snake]
	}

	s = Normalize(s)
	var sb strings.Builder
	sb.Grow(len(s))

	first := true
	chunkStart := false
	for _, c := range s {
		if c == ChunkMarker {
			chunkStart = true
			continue
		}
		if unicode.IsUpper(c) {
			chunkStart = true
		}

		switch {
		case first:
			sb.WriteRune(setCase(c, rc.first))
		case chunkStart:
			sb.WriteRune(setCase(c, rc.chunk))
		default:
			sb.WriteRune(setCase(c, rc.other))
		}

		first = false
		chunkStart = false
	}
	return sb.String()
}
