// Package cgen provides the C constructs built on the render protocol:
// control flow, functions, calls, aggregate types and preprocessor lines.
//
// Each construct switches the configuration to its own syntactic context
// and then delegates to render.Block, render.Join and friends.
package cgen

import (
	"strings"

	"github.com/teranos/cgen/casing"
	"github.com/teranos/cgen/render"
	"github.com/teranos/cgen/style"
)

// builtinTypes keep their C spelling whatever the Type casing rule is.
var builtinTypes = map[string]bool{
	"void": true, "char": true, "short": true, "int": true, "long": true,
	"float": true, "double": true, "bool": true, "signed": true, "unsigned": true,
	"size_t": true, "ptrdiff_t": true, "intptr_t": true, "uintptr_t": true,
	"int8_t": true, "int16_t": true, "int32_t": true, "int64_t": true,
	"uint8_t": true, "uint16_t": true, "uint32_t": true, "uint64_t": true,
}

// typeRole is RoleType, or snake case for a C builtin type.
func typeRole(id render.Identifier) render.Role {
	if builtinTypes[strings.Join(id.Words(), "_")] {
		return render.Fixed(casing.Snake)
	}
	return render.RoleType
}

// TypeName is an identifier cased as a type.
func TypeName(s string) render.Identifier {
	return render.NewTyped(s, render.RoleType)
}

// MemberName is an identifier cased as a member or variable.
func MemberName(s string) render.Identifier {
	return render.NewTyped(s, render.RoleMember)
}

// FunctionName is an identifier cased as a function.
func FunctionName(s string) render.Identifier {
	return render.NewTyped(s, render.RoleFunction)
}

// ConstName is an identifier cased as a constant or macro.
func ConstName(s string) render.Identifier {
	return render.NewTyped(s, render.RoleConstDefine)
}

// Unit is a sequence of top-level items, one per line.
func Unit(items ...render.Node) render.Lines {
	return render.Lines(items)
}

// Blank is an empty line inside a Unit or a body.
var Blank = render.Text("")

// Stmt renders its parts back to back and terminates them with ";".
func Stmt(parts ...render.Node) render.Node {
	n := make(render.Join, 0, len(parts)+1)
	return append(append(n, parts...), render.Text(";"))
}

// Return renders "return expr;", or "return;" without an expression.
func Return(expr render.Node) render.Node {
	if expr == nil {
		return render.Text("return;")
	}
	return Stmt(render.Text("return "), expr)
}

// inContext renders n with cfg switched to ctx.
func inContext(w *render.Sink, cfg style.Config, ctx style.Context, n render.Node) error {
	return n.Render(w, cfg.WithContext(ctx))
}
