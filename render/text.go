package render

import (
	"strings"

	"github.com/teranos/cgen/casing"
	"github.com/teranos/cgen/style"
)

// Text is literal source text. Continuation lines of multi-line text are
// re-indented to the current depth; the first line is written as-is.
type Text string

// Render writes the text line by line.
func (t Text) Render(w *Sink, cfg style.Config) error {
	for i, line := range SplitLines(string(t)) {
		if i > 0 {
			if err := lineBreak(w, cfg); err != nil {
				return err
			}
		}
		if err := w.WriteString(line); err != nil {
			return err
		}
	}
	return nil
}

// SplitLines splits on \n, \r\n and \r. A trailing line break does not
// start another line.
func SplitLines(s string) []string {
	if s == "" {
		return nil
	}
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	lines := strings.Split(s, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// lineBreak writes a newline followed by the current indentation.
func lineBreak(w *Sink, cfg style.Config) error {
	if err := w.WriteString(cfg.NewlineText()); err != nil {
		return err
	}
	return w.WriteString(cfg.IndentText())
}

// Newline writes the configured line terminator.
type Newline struct{}

// Render writes the line terminator.
func (Newline) Render(w *Sink, cfg style.Config) error {
	return w.WriteString(cfg.NewlineText())
}

// Indent writes the indentation for the current depth.
type Indent struct{}

// Render writes the indentation.
func (Indent) Render(w *Sink, cfg style.Config) error {
	return w.WriteString(cfg.IndentText())
}

// Cased is free text re-cased with the rule of Role. Upper-case runes and
// casing.ChunkMarker mark word starts inside Text.
type Cased struct {
	Text string
	Role Role
}

// Render writes the re-cased text.
func (c Cased) Render(w *Sink, cfg style.Config) error {
	return w.WriteString(casing.Text(c.Text, c.Role.Rule(cfg.Cases)))
}
