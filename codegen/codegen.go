// Package codegen walks each word definition's token body, emitting LLVM
// IR through an ir.Builder, and assembles the final module: prelude,
// function bodies, the main wrapper, and globals (§4.4, §4.5).
package codegen

import (
	"fmt"
	"strings"

	"github.com/skx/forthc/cerr"
	"github.com/skx/forthc/instructions"
	"github.com/skx/forthc/ir"
	"github.com/skx/forthc/program"
	"github.com/skx/forthc/token"
)

// Generator holds all mutable compilation state for a single run: the IR
// builder, the symbol tables (shared with, and further mutated by, in-body
// CREATE/VARIABLE/,/CONSTANT per §4.4.3), and the control-flow frame
// stack, which is reset between definitions. In-body ALLOT resolves to the
// rt_allot extern through instructions.Catalog and does not move here.
type Generator struct {
	b    *ir.Builder
	ctrl frameStack

	constants    map[string]int32
	createdWords map[string]int32
	knownDefs    map[string]bool
	here         int32

	routineAliases map[string]string

	// ABI register names for the definition currently being compiled.
	stackBase, spSlot, rstackBase, rspSlot string
}

// New builds a Generator seeded from a completed top-level analysis.
func New(a *program.Analysis) *Generator {
	return &Generator{
		b:              ir.New(),
		constants:      a.Constants,
		createdWords:   a.CreatedWords,
		knownDefs:      a.KnownDefs,
		here:           a.Here,
		routineAliases: a.RoutineAliases,
		stackBase:      "%stack_base",
		spSlot:         "%sp_ptr",
		rstackBase:     "%rstack_base",
		rspSlot:        "%rsp_ptr",
	}
}

// Generate compiles every definition, then the main wrapper, and returns
// the full assembled module text.
func Generate(a *program.Analysis) (string, error) {
	g := New(a)

	g.emitPrelude()

	for _, def := range a.Definitions {
		if err := g.compileDefinition(def); err != nil {
			return "", err
		}
	}

	entry, err := a.ResolveEntry()
	if err != nil {
		return "", cerr.New(cerr.Entry, "%s", err.Error())
	}
	g.emitMainWrapper(entry)

	var module strings.Builder
	module.WriteString(g.b.Body())
	module.WriteString("\n")
	module.WriteString(g.b.Globals())
	return module.String(), nil
}

// emitPrelude emits the module header and the fixed runtime ABI extern
// declarations, independent of which ones the program actually uses
// (§4.5).
func (g *Generator) emitPrelude() {
	g.b.EmitFunctionLine("; ModuleID = 'forthc'")
	g.b.EmitFunctionLine("")
	for _, decl := range instructions.Declarations {
		g.b.EmitFunctionLine(decl)
	}
	g.b.EmitFunctionLine("")
}

// compileDefinition lowers one word definition to an LLVM function,
// substituting a native-routine call in place of the body when a routine
// alias names a known runtime kernel (§4.4.6).
func (g *Generator) compileDefinition(def program.Definition) error {
	g.ctrl = frameStack{}
	g.beginFunc(def.Name)

	if alias, ok := g.routineAliases[def.Name]; ok {
		if extern, ok := instructions.KernelAliases[alias]; ok {
			if err := g.callExternExtern(extern, nil); err != nil {
				return err
			}
			g.endFunc()
			return nil
		}
	}

	if err := g.compileBody(def.Body); err != nil {
		return fmt.Errorf("in definition %q: %w", def.Name, err)
	}
	if !g.ctrl.empty() {
		return cerr.New(cerr.Codegen, "unclosed control-flow structure(s) in definition %q", def.Name)
	}
	g.endFunc()
	return nil
}

// beginFunc emits the function signature and allocates a local return
// stack (§4.4.1). The data stack is passed in by the caller.
func (g *Generator) beginFunc(name string) {
	sym := mangleName(name)
	g.b.EmitFunctionLine(fmt.Sprintf("define void @%s(i32* %s, i32* %s) {", sym, g.stackBase, g.spSlot))
	g.b.EmitFunctionLine("entry:")
	g.b.EmitFunctionLine("  %rstack = alloca [1024 x i32], align 16")
	g.b.EmitFunctionLine(fmt.Sprintf("  %s = alloca i32, align 4", g.rspSlot))
	g.b.EmitFunctionLine(fmt.Sprintf("  store i32 0, i32* %s, align 4", g.rspSlot))
	g.b.EmitFunctionLine(fmt.Sprintf(
		"  %s = getelementptr inbounds [1024 x i32], [1024 x i32]* %%rstack, i32 0, i32 0", g.rstackBase))
}

func (g *Generator) endFunc() {
	g.b.EmitFunctionLine("  ret void")
	g.b.EmitFunctionLine("}")
	g.b.EmitFunctionLine("")
}

// emitMainWrapper allocates the data stack locally, resets the runtime
// heap to the final computed extent, calls the entry word, and returns 0
// (§4.4.2).
func (g *Generator) emitMainWrapper(entry string) {
	sym := mangleName(entry)
	g.b.EmitFunctionLine("define i32 @main() {")
	g.b.EmitFunctionLine("entry:")
	g.b.EmitFunctionLine("  %stack = alloca [1024 x i32], align 16")
	g.b.EmitFunctionLine("  %sp = alloca i32, align 4")
	g.b.EmitFunctionLine("  store i32 0, i32* %sp, align 4")
	g.b.EmitFunctionLine(
		"  %base = getelementptr inbounds [1024 x i32], [1024 x i32]* %stack, i32 0, i32 0")
	g.b.EmitFunctionLine(fmt.Sprintf("  call void @rt_heap_reset(i32 %d)", g.here))
	g.b.EmitFunctionLine(fmt.Sprintf("  call void @%s(i32* %%base, i32* %%sp)", sym))
	g.b.EmitFunctionLine("  ret i32 0")
	g.b.EmitFunctionLine("}")
	g.b.EmitFunctionLine("")
}

// callWord emits a direct call to another compiled word, passing through
// the current data stack pair.
func (g *Generator) callWord(name string) {
	sym := mangleName(name)
	g.b.EmitFunctionLine(fmt.Sprintf("  call void @%s(i32* %s, i32* %s)", sym, g.stackBase, g.spSlot))
}

// resolvePreceding resolves the compile-time value immediately preceding
// body[i], used by in-body ALLOT and CONSTANT (§4.4.3).
func (g *Generator) resolvePreceding(body []token.Token, i int) (int32, error) {
	return program.ResolvePrecedingValue(body, i, g.here, g.constants, g.createdWords)
}
