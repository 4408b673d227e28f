package cgen

import (
	"strings"

	"github.com/teranos/cgen/casing"
	"github.com/teranos/cgen/render"
	"github.com/teranos/cgen/style"
)

// Define is "#define NAME value". A nil Value defines a bare flag.
type Define struct {
	Name  render.Identifier
	Value render.Node
}

// NewDefine builds a macro with literal replacement text.
func NewDefine(name, value string) Define {
	d := Define{Name: render.NewIdentifier(name)}
	if value != "" {
		d.Value = render.Text(value)
	}
	return d
}

func (d Define) Render(w *render.Sink, cfg style.Config) error {
	n := render.Join{render.Text("#define "), d.Name.WithRole(render.RoleConstDefine)}
	if d.Value != nil {
		n = append(n, render.Text(" "), d.Value)
	}
	return n.Render(w, cfg)
}

// Include is "#include" of a local ("x.h") or system (<x.h>) header.
type Include struct {
	Path   string
	System bool
}

func (i Include) Render(w *render.Sink, _ style.Config) error {
	if i.System {
		return w.WriteString("#include <" + i.Path + ">")
	}
	return w.WriteString(`#include "` + i.Path + `"`)
}

// Comment is a block comment. Multi-line text is written one " * " line
// per input line.
type Comment string

func (c Comment) Render(w *render.Sink, cfg style.Config) error {
	lines := render.SplitLines(string(c))
	switch len(lines) {
	case 0:
		return w.WriteString("/* */")
	case 1:
		return w.WriteString("/* " + lines[0] + " */")
	}
	n := render.Lines{render.Text("/*")}
	for _, l := range lines {
		n = append(n, render.Text(strings.TrimRight(" * "+l, " ")))
	}
	return append(n, render.Text(" */")).Render(w, cfg)
}

// HeaderFile wraps its content in an include guard derived from Name:
//
//	#ifndef NAME_H
//	#define NAME_H
//
//	content
//
//	#endif
type HeaderFile struct {
	Name    render.Identifier
	Content render.Node
}

// NewHeaderFile builds a header. The name may be written in any casing
// ("my header", "myHeader", "MY_HEADER").
func NewHeaderFile(name string, content ...render.Node) HeaderFile {
	return HeaderFile{Name: render.ParseIdentifier(name), Content: render.Lines(content)}
}

func (h HeaderFile) Render(w *render.Sink, cfg style.Config) error {
	cfg = cfg.WithContext(style.File)
	guard := h.Name.WithRole(render.Fixed(casing.ScreamingSnake)).Format(cfg) + "_H"

	return render.Join{
		render.Text("#ifndef " + guard), render.Newline{},
		render.Text("#define " + guard), render.Newline{},
		render.Newline{},
		h.Content,
		render.Newline{}, render.Newline{},
		render.Text("#endif"), render.Newline{},
	}.Render(w, cfg)
}
