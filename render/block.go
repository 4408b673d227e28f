package render

import (
	"strings"

	"github.com/teranos/cgen/errors"
	"github.com/teranos/cgen/style"
)

// Body is a braced block of statements laid out by the configured brace style.
type Body []Node

// Block is a header followed by a braced body, e.g. "if (x)" and its statements.
type Block struct {
	Header Node
	Body   Body
}

// NewBlock builds a Block from a header and its statements.
func NewBlock(header Node, stmts ...Node) Block {
	return Block{Header: header, Body: stmts}
}

// layout is the complete definition of one brace style.
//
// glue runs between a block's header and its body. body writes the braces
// and statements; it starts where the cursor is and leaves it right after
// the closing brace.
type layout struct {
	glue func(w *Sink, cfg style.Config) error
	body func(w *Sink, cfg style.Config, stmts Lines) error
}

var layouts = map[style.BraceStyle]layout{
	style.Allman:    {glue: newlineGlue, body: allmanBody},
	style.KnR:       {glue: spaceGlue, body: knrBody},
	style.GNU:       {glue: gnuGlue, body: gnuBody},
	style.Horstmann: {glue: newlineGlue, body: horstmannBody},
	style.Pico:      {glue: newlineGlue, body: picoBody},
	style.None:      {glue: noGlue, body: compactBody},
}

func layoutFor(b style.BraceStyle) (layout, error) {
	l, ok := layouts[b]
	if !ok {
		return layout{}, errors.NewUnsupportedStyle(b.String())
	}
	return l, nil
}

// Render writes the braced statements.
func (b Body) Render(w *Sink, cfg style.Config) error {
	l, err := layoutFor(cfg.Brace)
	if err != nil {
		return err
	}
	return l.body(w, cfg, Lines(b))
}

// Render writes header, style glue and body. An unsupported brace style
// fails before anything is written.
func (b Block) Render(w *Sink, cfg style.Config) error {
	l, err := layoutFor(cfg.Brace)
	if err != nil {
		return err
	}
	if err := renderNode(w, b.Header, cfg); err != nil {
		return err
	}
	if err := l.glue(w, cfg); err != nil {
		return err
	}
	return l.body(w, cfg, Lines(b.Body))
}

func noGlue(*Sink, style.Config) error { return nil }

func newlineGlue(w *Sink, cfg style.Config) error {
	return w.WriteString(cfg.NewlineText())
}

func spaceGlue(w *Sink, _ style.Config) error {
	return w.WriteString(" ")
}

// gnuGlue puts the opening brace on its own line at the header's indentation.
func gnuGlue(w *Sink, cfg style.Config) error {
	return lineBreak(w, cfg)
}

// statements writes a line break and the statements at inner depth.
// Nothing is written for an empty body.
func statements(w *Sink, inner style.Config, stmts Lines) error {
	if len(stmts) == 0 {
		return nil
	}
	if err := lineBreak(w, inner); err != nil {
		return err
	}
	return stmts.Render(w, inner)
}

// closeAt writes a line break and the closing brace at cfg's depth.
func closeAt(w *Sink, cfg style.Config) error {
	if err := lineBreak(w, cfg); err != nil {
		return err
	}
	return w.WriteString("}")
}

// allmanBody:
//
//	{
//	    stmt;
//	}
func allmanBody(w *Sink, cfg style.Config, stmts Lines) error {
	if err := w.WriteString(cfg.IndentText()); err != nil {
		return err
	}
	return knrBody(w, cfg, stmts)
}

// knrBody: "{" trails whatever precedes it, closer at the header's depth.
func knrBody(w *Sink, cfg style.Config, stmts Lines) error {
	if err := w.WriteString("{"); err != nil {
		return err
	}
	if err := statements(w, cfg.Indent(), stmts); err != nil {
		return err
	}
	return closeAt(w, cfg)
}

// gnuBody nests statements two levels in and closes half way, one level in.
// Function bodies close at the header's depth.
func gnuBody(w *Sink, cfg style.Config, stmts Lines) error {
	if err := w.WriteString("{"); err != nil {
		return err
	}
	if err := statements(w, cfg.Indent().Indent(), stmts); err != nil {
		return err
	}
	closer := cfg.Indent()
	if cfg.Context == style.Function {
		closer = cfg
	}
	return closeAt(w, closer)
}

// alignPad is written between "{" and the first statement so that it lines
// up with the statements below it. With spaces that is Width-1 spaces (none
// for widths below 2); with tabs a single level of tabs reaches the next stop.
func alignPad(cfg style.Config) string {
	if cfg.Unit == style.Tabs {
		return cfg.LevelText()
	}
	if cfg.Width < 2 {
		return ""
	}
	return strings.Repeat(" ", cfg.Width-1)
}

// openAligned writes "{" at the header's depth and the first statement on
// the same line, the rest one level in.
func openAligned(w *Sink, cfg style.Config, stmts Lines) error {
	if err := w.WriteString(cfg.IndentText() + "{"); err != nil {
		return err
	}
	if len(stmts) == 0 {
		return nil
	}
	if err := w.WriteString(alignPad(cfg)); err != nil {
		return err
	}
	return stmts.Render(w, cfg.Indent())
}

// horstmannBody:
//
//	{   stmt;
//	    stmt;
//	}
func horstmannBody(w *Sink, cfg style.Config, stmts Lines) error {
	if err := openAligned(w, cfg, stmts); err != nil {
		return err
	}
	return closeAt(w, cfg)
}

// picoBody:
//
//	{   stmt;
//	    stmt; }
func picoBody(w *Sink, cfg style.Config, stmts Lines) error {
	if err := openAligned(w, cfg, stmts); err != nil {
		return err
	}
	return w.WriteString(" }")
}

// compactBody writes "{", the statements without any whitespace, and "}".
func compactBody(w *Sink, cfg style.Config, stmts Lines) error {
	if err := w.WriteString("{"); err != nil {
		return err
	}
	if err := stmts.Render(w, cfg.Indent().Compact()); err != nil {
		return err
	}
	return w.WriteString("}")
}
