package cgen

import (
	"github.com/teranos/cgen/render"
	"github.com/teranos/cgen/style"
)

// If is "if (Cond)" followed by a braced body.
type If struct {
	Cond render.Node
	Body render.Body
}

// NewIf builds an if statement.
func NewIf(cond render.Node, body ...render.Node) If {
	return If{Cond: cond, Body: body}
}

func (s If) Render(w *render.Sink, cfg style.Config) error {
	header := render.Join{render.Text("if ("), s.Cond, render.Text(")")}
	return inContext(w, cfg, style.If, render.Block{Header: header, Body: s.Body})
}

// While is "while (Cond)" followed by a braced body.
type While struct {
	Cond render.Node
	Body render.Body
}

// NewWhile builds a while loop.
func NewWhile(cond render.Node, body ...render.Node) While {
	return While{Cond: cond, Body: body}
}

func (s While) Render(w *render.Sink, cfg style.Config) error {
	header := render.Join{render.Text("while ("), s.Cond, render.Text(")")}
	return inContext(w, cfg, style.While, render.Block{Header: header, Body: s.Body})
}

// For is "for (Init; Cond; Update)" followed by a braced body.
// Nil clauses are left empty.
type For struct {
	Init   render.Node
	Cond   render.Node
	Update render.Node
	Body   render.Body
}

// NewFor builds a for loop.
func NewFor(init, cond, update render.Node, body ...render.Node) For {
	return For{Init: init, Cond: cond, Update: update, Body: body}
}

func (s For) Render(w *render.Sink, cfg style.Config) error {
	header := render.Join{
		render.Text("for ("),
		s.Init,
		render.Text(clauseSep(s.Cond)),
		s.Cond,
		render.Text(clauseSep(s.Update)),
		s.Update,
		render.Text(")"),
	}
	return inContext(w, cfg, style.ForLoop, render.Block{Header: header, Body: s.Body})
}

// clauseSep keeps "for (;;)" free of dangling spaces.
func clauseSep(next render.Node) string {
	if next == nil {
		return ";"
	}
	return "; "
}
