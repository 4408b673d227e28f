package cgen

import (
	"strconv"

	"github.com/teranos/cgen/render"
	"github.com/teranos/cgen/style"
)

// Field is a struct member, rendered "Type name;".
type Field struct {
	Type render.Identifier
	Name render.Identifier
}

// F builds a field from raw names.
func F(typ, name string) Field {
	return Field{Type: render.NewIdentifier(typ), Name: render.NewIdentifier(name)}
}

func (f Field) Render(w *render.Sink, cfg style.Config) error {
	return Stmt(
		f.Type.WithRole(typeRole(f.Type)),
		render.Text(" "),
		f.Name.WithRole(render.RoleMember),
	).Render(w, cfg)
}

// Struct is "typedef struct { fields } Name;".
type Struct struct {
	Name   render.Identifier
	Fields []Field
}

// NewStruct builds a struct typedef.
func NewStruct(name string, fields ...Field) Struct {
	return Struct{Name: render.NewIdentifier(name), Fields: fields}
}

func (s Struct) Render(w *render.Sink, cfg style.Config) error {
	body := make(render.Body, len(s.Fields))
	for i, f := range s.Fields {
		body[i] = f
	}
	return inContext(w, cfg, style.Struct, typedefBlock("typedef struct", body, s.Name))
}

// EnumEntry is one enumerator. Value is written only when Explicit is set.
type EnumEntry struct {
	Name     render.Identifier
	Value    int64
	Explicit bool
}

// E builds an enumerator that takes the implicit next value.
func E(name string) EnumEntry {
	return EnumEntry{Name: render.NewIdentifier(name)}
}

// EV builds an enumerator with an explicit value.
func EV(name string, value int64) EnumEntry {
	return EnumEntry{Name: render.NewIdentifier(name), Value: value, Explicit: true}
}

func (e EnumEntry) Render(w *render.Sink, cfg style.Config) error {
	n := render.Join{e.Name.WithRole(render.RoleConstDefine)}
	if e.Explicit {
		n = append(n, render.Text(" = "+strconv.FormatInt(e.Value, 10)))
	}
	return append(n, render.Text(",")).Render(w, cfg)
}

// Enum is "typedef enum { entries } Name;".
type Enum struct {
	Name    render.Identifier
	Entries []EnumEntry
}

// NewEnum builds an enum typedef.
func NewEnum(name string, entries ...EnumEntry) Enum {
	return Enum{Name: render.NewIdentifier(name), Entries: entries}
}

func (e Enum) Render(w *render.Sink, cfg style.Config) error {
	body := make(render.Body, len(e.Entries))
	for i, entry := range e.Entries {
		body[i] = entry
	}
	return inContext(w, cfg, style.Enum, typedefBlock("typedef enum", body, e.Name))
}

// typedefBlock is the shared shape of struct and enum typedefs.
func typedefBlock(keyword string, body render.Body, name render.Identifier) render.Node {
	return render.Join{
		render.Block{Header: render.Text(keyword), Body: body},
		render.Text(" "),
		name.WithRole(render.RoleType),
		render.Text(";"),
	}
}

// TypeDef is "typedef Type Name;". Type is any node so that builtin
// spellings such as "unsigned int" can be used verbatim.
type TypeDef struct {
	Name render.Identifier
	Type render.Node
}

// NewTypeDef aliases name to the literal type text.
func NewTypeDef(name, typ string) TypeDef {
	return TypeDef{Name: render.NewIdentifier(name), Type: render.Text(typ)}
}

func (t TypeDef) Render(w *render.Sink, cfg style.Config) error {
	return inContext(w, cfg, style.Struct, Stmt(
		render.Text("typedef "),
		t.Type,
		render.Text(" "),
		t.Name.WithRole(render.RoleType),
	))
}
