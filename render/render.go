// Package render defines the protocol every code node implements and the
// combinators that assemble nodes into larger pieces of source text.
//
// A Node writes itself to a Sink under a style.Config. Composites pass a
// derived Config to their children (one level deeper, another syntactic
// context) and never modify the Config they were given. Rendering is
// synchronous and deterministic; it fails only when the underlying writer
// fails or when the configured brace style has no layout.
package render

import (
	"io"
	"strings"

	"github.com/teranos/cgen/errors"
	"github.com/teranos/cgen/style"
)

// Node is anything that can render itself as source text.
type Node interface {
	Render(w *Sink, cfg style.Config) error
}

// Func adapts a function to the Node interface.
type Func func(w *Sink, cfg style.Config) error

// Render calls f(w, cfg).
func (f Func) Render(w *Sink, cfg style.Config) error {
	return f(w, cfg)
}

// Sink is the output of one render call. The first write failure is kept
// and returned by every later write, so a failed render stops writing.
type Sink struct {
	w   io.Writer
	err error
	n   int64
}

// NewSink wraps w.
func NewSink(w io.Writer) *Sink {
	return &Sink{w: w}
}

// WriteString writes s unless an earlier write failed.
func (s *Sink) WriteString(str string) error {
	if s.err != nil {
		return s.err
	}
	if str == "" {
		return nil
	}
	n, err := io.WriteString(s.w, str)
	s.n += int64(n)
	if err != nil {
		s.err = errors.WrapSinkWrite(err)
	}
	return s.err
}

// Err returns the first write failure, if any.
func (s *Sink) Err() error {
	return s.err
}

// Written returns the number of bytes accepted by the writer.
func (s *Sink) Written() int64 {
	return s.n
}

// Write renders n to w. Output already accepted by w is indeterminate when
// an error is returned.
func Write(w io.Writer, n Node, cfg style.Config) error {
	if n == nil {
		return nil
	}
	return n.Render(NewSink(w), cfg)
}

// String renders n into a string.
func String(n Node, cfg style.Config) (string, error) {
	var sb strings.Builder
	if err := Write(&sb, n, cfg); err != nil {
		return "", err
	}
	return sb.String(), nil
}
