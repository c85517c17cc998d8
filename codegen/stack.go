package codegen

import "fmt"

// The two stacks are plain cell arrays addressed through a base pointer
// and a separate index slot (§4.4.1): push stores at base[sp] then
// increments sp; pop decrements sp then loads base[sp]. Overflow and
// underflow are unchecked, per the spec's deliberate simplification.

func (g *Generator) loadSP() string {
	t := g.b.FreshTemp()
	g.b.EmitFunctionLine(fmt.Sprintf("  %s = load i32, i32* %s, align 4", t, g.spSlot))
	return t
}

func (g *Generator) storeSP(v string) {
	g.b.EmitFunctionLine(fmt.Sprintf("  store i32 %s, i32* %s, align 4", v, g.spSlot))
}

// pushI32 stores v onto the data stack and advances the stack pointer.
func (g *Generator) pushI32(v string) {
	sp := g.loadSP()
	ptr := g.b.FreshTemp()
	g.b.EmitFunctionLine(fmt.Sprintf("  %s = getelementptr inbounds i32, i32* %s, i32 %s", ptr, g.stackBase, sp))
	g.b.EmitFunctionLine(fmt.Sprintf("  store i32 %s, i32* %s, align 4", v, ptr))
	sp2 := g.b.FreshTemp()
	g.b.EmitFunctionLine(fmt.Sprintf("  %s = add i32 %s, 1", sp2, sp))
	g.storeSP(sp2)
}

// popI32 retreats the stack pointer and loads the value it now points at.
func (g *Generator) popI32() string {
	sp := g.loadSP()
	sp2 := g.b.FreshTemp()
	g.b.EmitFunctionLine(fmt.Sprintf("  %s = sub i32 %s, 1", sp2, sp))
	g.storeSP(sp2)
	ptr := g.b.FreshTemp()
	g.b.EmitFunctionLine(fmt.Sprintf("  %s = getelementptr inbounds i32, i32* %s, i32 %s", ptr, g.stackBase, sp2))
	v := g.b.FreshTemp()
	g.b.EmitFunctionLine(fmt.Sprintf("  %s = load i32, i32* %s, align 4", v, ptr))
	return v
}

func (g *Generator) loadRSP() string {
	t := g.b.FreshTemp()
	g.b.EmitFunctionLine(fmt.Sprintf("  %s = load i32, i32* %s, align 4", t, g.rspSlot))
	return t
}

func (g *Generator) storeRSP(v string) {
	g.b.EmitFunctionLine(fmt.Sprintf("  store i32 %s, i32* %s, align 4", v, g.rspSlot))
}

// rpushI32 moves a value from the data stack onto the return stack (>R).
func (g *Generator) rpushI32(v string) {
	rsp := g.loadRSP()
	ptr := g.b.FreshTemp()
	g.b.EmitFunctionLine(fmt.Sprintf("  %s = getelementptr inbounds i32, i32* %s, i32 %s", ptr, g.rstackBase, rsp))
	g.b.EmitFunctionLine(fmt.Sprintf("  store i32 %s, i32* %s, align 4", v, ptr))
	rsp2 := g.b.FreshTemp()
	g.b.EmitFunctionLine(fmt.Sprintf("  %s = add i32 %s, 1", rsp2, rsp))
	g.storeRSP(rsp2)
}

// rpopI32 moves a value from the return stack back to the data stack (R>).
func (g *Generator) rpopI32() string {
	rsp := g.loadRSP()
	rsp2 := g.b.FreshTemp()
	g.b.EmitFunctionLine(fmt.Sprintf("  %s = sub i32 %s, 1", rsp2, rsp))
	g.storeRSP(rsp2)
	ptr := g.b.FreshTemp()
	g.b.EmitFunctionLine(fmt.Sprintf("  %s = getelementptr inbounds i32, i32* %s, i32 %s", ptr, g.rstackBase, rsp2))
	v := g.b.FreshTemp()
	g.b.EmitFunctionLine(fmt.Sprintf("  %s = load i32, i32* %s, align 4", v, ptr))
	return v
}

// rpeekI32 reads the top of the return stack without popping it (R@).
func (g *Generator) rpeekI32() string {
	rsp := g.loadRSP()
	rsp2 := g.b.FreshTemp()
	g.b.EmitFunctionLine(fmt.Sprintf("  %s = sub i32 %s, 1", rsp2, rsp))
	ptr := g.b.FreshTemp()
	g.b.EmitFunctionLine(fmt.Sprintf("  %s = getelementptr inbounds i32, i32* %s, i32 %s", ptr, g.rstackBase, rsp2))
	v := g.b.FreshTemp()
	g.b.EmitFunctionLine(fmt.Sprintf("  %s = load i32, i32* %s, align 4", v, ptr))
	return v
}

// branchOnZero emits the shared "icmp eq 0; br" pattern used by IF and
// WHILE (UNTIL emits the same pattern inline): zero is false, so cond==0
// branches to ifZero and anything else branches to ifNonZero.
func (g *Generator) branchOnZero(cond, ifZero, ifNonZero string) {
	c := g.b.FreshTemp()
	g.b.EmitFunctionLine(fmt.Sprintf("  %s = icmp eq i32 %s, 0", c, cond))
	g.b.EmitFunctionLine(fmt.Sprintf("  br i1 %s, label %%%s, label %%%s", c, ifZero, ifNonZero))
}
