package cgen

import "github.com/teranos/cgen/render"

// Sample is a small translation unit that uses every construct in this
// package. It is what "cgen sample" renders.
func Sample() render.Node {
	point := NewStruct("POINT",
		F("INT", "X_POS"),
		F("INT", "Y_POS"),
	)
	color := NewEnum("COLOR",
		EV("COLOR_RED", 1),
		E("COLOR_GREEN"),
		E("COLOR_BLUE"),
	)
	distance := NewSignature("INT", "MANHATTAN_DISTANCE", P("POINT", "FROM"), P("POINT", "TO"))

	header := NewHeaderFile("geometry",
		Include{Path: "stdint.h", System: true},
		Blank,
		NewDefine("MAX_POINTS", "64"),
		NewTypeDef("COORD", "int32_t"),
		Blank,
		point,
		Blank,
		color,
		Blank,
		NewFunction(distance).Declaration(),
	)

	body := NewFunction(distance,
		render.Text("int dx = abs(to.x_pos - from.x_pos);"),
		render.Text("int dy = abs(to.y_pos - from.y_pos);"),
		Return(render.Text("dx + dy")),
	)

	walk := NewFunction(NewSignature("VOID", "WALK", P("POINT", "START"), P("INT", "STEPS")),
		Comment("walk diagonally, logging every tenth step"),
		NewFor(render.Text("int i = 0"), render.Text("i < steps"), render.Text("i++"),
			render.Text("start.x_pos++;"),
			render.Text("start.y_pos++;"),
			NewIf(render.Text("i % 10 == 0"),
				NewCall("LOG_POINT", MemberName("START")).Statement(),
			),
		),
		NewWhile(render.Text("steps-- > 0")),
	)

	return Unit(
		Comment("generated by cgen\ndo not edit"),
		header,
		Include{Path: "geometry.h"},
		Blank,
		body,
		Blank,
		walk,
		Blank,
	)
}
