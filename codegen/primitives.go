package codegen

import "fmt"

// binop pops two operands and pushes the result of an LLVM binary op
// (§4.4.4 integer arithmetic; wraps on overflow by construction, since
// LLVM's add/sub/mul on i32 already wrap).
func (g *Generator) binop(op string) {
	b := g.popI32()
	a := g.popI32()
	r := g.b.FreshTemp()
	g.b.EmitFunctionLine(fmt.Sprintf("  %s = %s i32 %s, %s", r, op, a, b))
	g.pushI32(r)
}

// divMod pops two operands and pushes either their truncating-toward-zero
// quotient (sdiv) or remainder (srem).
func (g *Generator) divMod(isMod bool) {
	b := g.popI32()
	a := g.popI32()
	r := g.b.FreshTemp()
	op := "sdiv"
	if isMod {
		op = "srem"
	}
	g.b.EmitFunctionLine(fmt.Sprintf("  %s = %s i32 %s, %s", r, op, a, b))
	g.pushI32(r)
}

// slashMod pops two operands and pushes remainder then quotient (/MOD).
func (g *Generator) slashMod() {
	b := g.popI32()
	a := g.popI32()
	rem := g.b.FreshTemp()
	g.b.EmitFunctionLine(fmt.Sprintf("  %s = srem i32 %s, %s", rem, a, b))
	quo := g.b.FreshTemp()
	g.b.EmitFunctionLine(fmt.Sprintf("  %s = sdiv i32 %s, %s", quo, a, b))
	g.pushI32(rem)
	g.pushI32(quo)
}

// negate pops a and pushes 0 - a (NEGATE).
func (g *Generator) negate() {
	a := g.popI32()
	r := g.b.FreshTemp()
	g.b.EmitFunctionLine(fmt.Sprintf("  %s = sub i32 0, %s", r, a))
	g.pushI32(r)
}

// shift pops a shift count and a value, masks the count to 5 bits, and
// pushes the shl/lshr result (LSHIFT/RSHIFT — RSHIFT is logical).
func (g *Generator) shift(op string) {
	b := g.popI32()
	a := g.popI32()
	sh := g.b.FreshTemp()
	g.b.EmitFunctionLine(fmt.Sprintf("  %s = and i32 %s, 31", sh, b))
	r := g.b.FreshTemp()
	g.b.EmitFunctionLine(fmt.Sprintf("  %s = %s i32 %s, %s", r, op, a, sh))
	g.pushI32(r)
}

// compare pops two operands, applies an icmp predicate, and pushes the
// canonical Forth boolean (-1 true, 0 false).
func (g *Generator) compare(pred string) {
	b := g.popI32()
	a := g.popI32()
	g.pushBoolFromCmp(pred, a, b)
}

// zeroCompare pops one operand and compares it against the literal 0,
// pushing the canonical Forth boolean (0= and 0<).
func (g *Generator) zeroCompare(pred string) {
	a := g.popI32()
	g.pushBoolFromCmp(pred, a, "0")
}

func (g *Generator) pushBoolFromCmp(pred, a, b string) {
	c := g.b.FreshTemp()
	g.b.EmitFunctionLine(fmt.Sprintf("  %s = icmp %s i32 %s, %s", c, pred, a, b))
	z := g.b.FreshTemp()
	g.b.EmitFunctionLine(fmt.Sprintf("  %s = zext i1 %s to i32", z, c))
	neg := g.b.FreshTemp()
	g.b.EmitFunctionLine(fmt.Sprintf("  %s = sub i32 0, %s", neg, z))
	g.pushI32(neg)
}

// dup, drop, swap, over are the stack-shuffling primitives of §4.4.4.
func (g *Generator) dup() {
	v := g.popI32()
	g.pushI32(v)
	g.pushI32(v)
}

func (g *Generator) drop() {
	g.popI32()
}

func (g *Generator) swap() {
	b := g.popI32()
	a := g.popI32()
	g.pushI32(b)
	g.pushI32(a)
}

func (g *Generator) over() {
	b := g.popI32()
	a := g.popI32()
	g.pushI32(a)
	g.pushI32(b)
	g.pushI32(a)
}
