package cgen

import (
	"github.com/teranos/cgen/render"
	"github.com/teranos/cgen/style"
)

// Param is one "Type name" pair of a parameter list.
type Param struct {
	Type render.Identifier
	Name render.Identifier
}

// P builds a parameter from raw names.
func P(typ, name string) Param {
	return Param{Type: render.NewIdentifier(typ), Name: render.NewIdentifier(name)}
}

func (p Param) Render(w *render.Sink, cfg style.Config) error {
	return render.Join{
		p.Type.WithRole(typeRole(p.Type)),
		render.Text(" "),
		p.Name.WithRole(render.RoleMember),
	}.Render(w, cfg)
}

// Signature is "Return name(params)". The return type renders as a type
// (builtins such as int keep their spelling) and the name as a function.
type Signature struct {
	Return render.Identifier
	Name   render.Identifier
	Params []Param
}

// NewSignature builds a signature from raw names.
func NewSignature(ret, name string, params ...Param) Signature {
	return Signature{
		Return: render.NewIdentifier(ret),
		Name:   render.NewIdentifier(name),
		Params: params,
	}
}

func (s Signature) Render(w *render.Sink, cfg style.Config) error {
	params := make([]render.Node, len(s.Params))
	for i, p := range s.Params {
		params[i] = p
	}
	return render.Join{
		s.Return.WithRole(typeRole(s.Return)),
		render.Text(" "),
		s.Name.WithRole(render.RoleFunction),
		render.Text("("),
		render.CommaList(params...),
		render.Text(")"),
	}.Render(w, cfg)
}

// Declaration is a function prototype: the signature followed by ";".
type Declaration struct {
	Signature Signature
}

func (d Declaration) Render(w *render.Sink, cfg style.Config) error {
	return Stmt(d.Signature).Render(w, cfg)
}

// Function is a signature and its body, rendered in Function context.
type Function struct {
	Signature Signature
	Body      render.Body
}

// NewFunction builds a function definition.
func NewFunction(sig Signature, body ...render.Node) Function {
	return Function{Signature: sig, Body: body}
}

// Declaration returns the prototype of f.
func (f Function) Declaration() Declaration {
	return Declaration{Signature: f.Signature}
}

func (f Function) Render(w *render.Sink, cfg style.Config) error {
	return inContext(w, cfg, style.Function, render.Block{Header: f.Signature, Body: f.Body})
}

// Call is "name(args)", optionally terminated with ";".
type Call struct {
	Name       render.Identifier
	Args       []render.Node
	Terminated bool
}

// NewCall builds an expression call.
func NewCall(name string, args ...render.Node) Call {
	return Call{Name: render.NewIdentifier(name), Args: args}
}

// Statement returns the call terminated with ";".
func (c Call) Statement() Call {
	c.Terminated = true
	return c
}

func (c Call) Render(w *render.Sink, cfg style.Config) error {
	n := render.Join{
		c.Name.WithRole(render.RoleFunction),
		render.Text("("),
		render.CommaList(c.Args...),
		render.Text(")"),
	}
	if c.Terminated {
		n = append(n, render.Text(";"))
	}
	return n.Render(w, cfg)
}
