package codegen

import (
	"fmt"

	"github.com/skx/forthc/cerr"
	"github.com/skx/forthc/instructions"
)

// callExternExtern emits one extern call. strArg carries the payload for
// StrVoid mode (PWRITE-STR), which consumes an immediate string rather
// than a stack value.
func (g *Generator) callExternExtern(extern instructions.Extern, strArg *string) error {
	switch extern.Mode {
	case instructions.PopVoid:
		v := g.popI32()
		g.b.EmitFunctionLine(fmt.Sprintf("  call void @%s(i32 %s)", extern.Callee, v))

	case instructions.Void:
		g.b.EmitFunctionLine(fmt.Sprintf("  call void @%s()", extern.Callee))

	case instructions.RetPush:
		r := g.b.FreshTemp()
		g.b.EmitFunctionLine(fmt.Sprintf("  %s = call i32 @%s()", r, extern.Callee))
		g.pushI32(r)

	case instructions.PopRetPush:
		v := g.popI32()
		r := g.b.FreshTemp()
		g.b.EmitFunctionLine(fmt.Sprintf("  %s = call i32 @%s(i32 %s)", r, extern.Callee, v))
		g.pushI32(r)

	case instructions.Pop2RetPush:
		b := g.popI32()
		a := g.popI32()
		r := g.b.FreshTemp()
		g.b.EmitFunctionLine(fmt.Sprintf("  %s = call i32 @%s(i32 %s, i32 %s)", r, extern.Callee, a, b))
		g.pushI32(r)

	case instructions.Pop2Void:
		b := g.popI32()
		a := g.popI32()
		g.b.EmitFunctionLine(fmt.Sprintf("  call void @%s(i32 %s, i32 %s)", extern.Callee, a, b))

	case instructions.Pop3Void:
		c := g.popI32()
		b := g.popI32()
		a := g.popI32()
		g.b.EmitFunctionLine(fmt.Sprintf("  call void @%s(i32 %s, i32 %s, i32 %s)", extern.Callee, a, b, c))

	case instructions.StrVoid:
		if strArg == nil {
			return cerr.New(cerr.Codegen, "missing string argument for %s", extern.Callee)
		}
		ptr := g.b.EmitStringGlobal(*strArg)
		g.b.EmitFunctionLine(fmt.Sprintf("  call void @%s(i8* %s)", extern.Callee, ptr))

	default:
		return cerr.New(cerr.Codegen, "unhandled extern mode for %s", extern.Callee)
	}
	return nil
}
