package codegen

import (
	"fmt"

	"github.com/skx/forthc/cerr"
)

// frameKind tags which of the two control-flow frame shapes a frame holds.
// The teacher's `stack` package was a generic, mutex-guarded stack of
// strings that nothing in the teacher repo actually called; here the same
// "small stack of values pushed and popped in strict nesting order" shape
// is repurposed to hold the tagged If/Begin frames of §3. Compilation is a
// single synchronous pass (§5), so the mutex the teacher carried is
// dropped — there is no concurrent access to guard against.
type frameKind int

const (
	frameIf frameKind = iota
	frameBegin
)

// frame is the tagged union described in §3: an If frame tracks its else
// and end labels; a Begin frame tracks its begin label and, once a WHILE is
// seen, its false (loop-exit) label. The WHILE true label is not stored.
type frame struct {
	kind frameKind

	// If fields.
	elseLabel string
	endLabel  string
	hasElse   bool

	// Begin fields.
	beginLabel     string
	whileFalseSet  bool
	whileFalseName string
}

// frameStack is the compile-time control-flow stack, pushed at IF/BEGIN
// and popped at THEN/UNTIL/REPEAT. It must be empty at the end of any
// successfully compiled definition body (§3, invariant 2).
type frameStack struct {
	frames []frame
}

func (s *frameStack) push(f frame) {
	s.frames = append(s.frames, f)
}

// pop removes and returns the top frame, or false if empty.
func (s *frameStack) pop() (frame, bool) {
	if len(s.frames) == 0 {
		return frame{}, false
	}
	top := s.frames[len(s.frames)-1]
	s.frames = s.frames[:len(s.frames)-1]
	return top, true
}

// top returns a pointer to the top frame for in-place mutation (WHILE
// records its labels into the enclosing Begin frame), or nil if empty.
func (s *frameStack) top() *frame {
	if len(s.frames) == 0 {
		return nil
	}
	return &s.frames[len(s.frames)-1]
}

func (s *frameStack) empty() bool {
	return len(s.frames) == 0
}

// beginIf lowers IF: pop the condition, branch on zero, and open the
// then-label (§4.4.5).
func (g *Generator) beginIf() {
	cond := g.popI32()
	thenLbl := g.b.FreshLabel("then")
	elseLbl := g.b.FreshLabel("else")
	endLbl := g.b.FreshLabel("endif")

	g.branchOnZero(cond, elseLbl, thenLbl)
	g.b.EmitFunctionLine(thenLbl + ":")

	g.ctrl.push(frame{kind: frameIf, elseLabel: elseLbl, endLabel: endLbl})
}

// doElse lowers ELSE: close the then-region and open the else-label.
func (g *Generator) doElse() error {
	f := g.ctrl.top()
	if f == nil || f.kind != frameIf {
		return cerr.New(cerr.Codegen, "ELSE without matching IF")
	}
	g.b.EmitFunctionLine("  br label %" + f.endLabel)
	g.b.EmitFunctionLine(f.elseLabel + ":")
	f.hasElse = true
	return nil
}

// endThen lowers THEN, closing whichever region is currently open and
// opening the end label. When no ELSE appeared, the else label is still
// opened (as an empty forward jump to end) so that every IF emits exactly
// three labels regardless of source shape (§4.4.5, §9).
func (g *Generator) endThen() error {
	f, ok := g.ctrl.pop()
	if !ok || f.kind != frameIf {
		return cerr.New(cerr.Codegen, "THEN without matching IF")
	}
	if !f.hasElse {
		g.b.EmitFunctionLine("  br label %" + f.endLabel)
		g.b.EmitFunctionLine(f.elseLabel + ":")
		g.b.EmitFunctionLine("  br label %" + f.endLabel)
	} else {
		g.b.EmitFunctionLine("  br label %" + f.endLabel)
	}
	g.b.EmitFunctionLine(f.endLabel + ":")
	return nil
}

// beginBegin lowers BEGIN: branch unconditionally into a fresh loop-head
// label and push a Begin frame.
func (g *Generator) beginBegin() {
	beginLbl := g.b.FreshLabel("begin")
	g.b.EmitFunctionLine("  br label %" + beginLbl)
	g.b.EmitFunctionLine(beginLbl + ":")
	g.ctrl.push(frame{kind: frameBegin, beginLabel: beginLbl})
}

// beginWhile lowers WHILE: pop the condition, require an enclosing Begin
// frame, and branch to a fresh true/false label pair, recording the false
// label into the frame for REPEAT to open as the loop exit.
func (g *Generator) beginWhile() error {
	cond := g.popI32()
	f := g.ctrl.top()
	if f == nil || f.kind != frameBegin {
		return cerr.New(cerr.Codegen, "WHILE without matching BEGIN")
	}

	trueLbl := g.b.FreshLabel("while_true")
	falseLbl := g.b.FreshLabel("while_false")
	g.branchOnZero(cond, falseLbl, trueLbl)
	g.b.EmitFunctionLine(trueLbl + ":")

	f.whileFalseSet = true
	f.whileFalseName = falseLbl
	return nil
}

// endRepeat lowers REPEAT: branch back to the loop head, then, if a WHILE
// was present, open its false-exit label. A Begin without a WHILE is an
// infinite loop at the IR level.
func (g *Generator) endRepeat() error {
	f, ok := g.ctrl.pop()
	if !ok || f.kind != frameBegin {
		return cerr.New(cerr.Codegen, "REPEAT without matching BEGIN")
	}
	g.b.EmitFunctionLine("  br label %" + f.beginLabel)
	if f.whileFalseSet {
		g.b.EmitFunctionLine(f.whileFalseName + ":")
	}
	return nil
}

// endUntil lowers UNTIL: pop the condition and the Begin frame, and branch
// back to the loop head while the condition is zero (false).
func (g *Generator) endUntil() error {
	cond := g.popI32()
	f, ok := g.ctrl.pop()
	if !ok || f.kind != frameBegin {
		return cerr.New(cerr.Codegen, "UNTIL without matching BEGIN")
	}
	doneLbl := g.b.FreshLabel("until_done")
	isZero := g.b.FreshTemp()
	g.b.EmitFunctionLine(fmt.Sprintf("  %s = icmp eq i32 %s, 0", isZero, cond))
	g.b.EmitFunctionLine(fmt.Sprintf("  br i1 %s, label %%%s, label %%%s", isZero, f.beginLabel, doneLbl))
	g.b.EmitFunctionLine(doneLbl + ":")
	return nil
}
