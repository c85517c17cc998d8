// Package ir provides the write-only text accumulator codegen uses to
// assemble an LLVM IR module: two append-only buffers (function bodies and
// module globals) plus monotonic counters for fresh temporaries and
// labels. There is no optimization and no de-duplication: every request
// for a temporary or a label produces a brand new name.
package ir

import (
	"fmt"
	"strings"
)

// Builder accumulates the text of a module's function bodies and its
// globals separately, so that string constants discovered mid-function can
// be appended to the globals stream without interleaving into the body
// stream.
//
// The tmp and label counters are process-wide for a single compilation run:
// they are never reset between functions, which is what guarantees
// uniqueness across the whole module (invariant 1 of §8).
type Builder struct {
	body    strings.Builder
	globals strings.Builder
	tmp     int
	label   int
}

// New returns an empty Builder.
func New() *Builder {
	return &Builder{}
}

// EmitFunctionLine appends a line to the function-body stream.
func (b *Builder) EmitFunctionLine(line string) {
	b.body.WriteString(line)
	b.body.WriteByte('\n')
}

// EmitGlobalLine appends a line to the module-globals stream.
func (b *Builder) EmitGlobalLine(line string) {
	b.globals.WriteString(line)
	b.globals.WriteByte('\n')
}

// FreshTemp returns a new SSA temporary name of the form "%tN".
func (b *Builder) FreshTemp() string {
	b.tmp++
	return fmt.Sprintf("%%t%d", b.tmp)
}

// FreshLabel returns a new basic-block label of the form "prefix.N".
func (b *Builder) FreshLabel(prefix string) string {
	b.label++
	return fmt.Sprintf("%s.%d", prefix, b.label)
}

// EmitStringGlobal allocates a new private constant byte array holding
// payload plus a trailing NUL, escaping every byte as "\HH" (uppercase
// hex), and emits a getelementptr in the function-body stream that
// produces a pointer temporary to its first byte. String globals are
// never interned: every call allocates a fresh global, even for identical
// payloads, per §4.3.
func (b *Builder) EmitStringGlobal(payload string) string {
	bytes := append([]byte(payload), 0)
	n := len(bytes)

	var escaped strings.Builder
	for _, c := range bytes {
		fmt.Fprintf(&escaped, "\\%02X", c)
	}

	name := b.FreshLabel("str")
	b.EmitGlobalLine(fmt.Sprintf(`@%s = private constant [%d x i8] c"%s"`, name, n, escaped.String()))

	ptr := b.FreshTemp()
	b.EmitFunctionLine(fmt.Sprintf(
		"  %s = getelementptr inbounds [%d x i8], [%d x i8]* @%s, i32 0, i32 0",
		ptr, n, n, name))
	return ptr
}

// Body returns the accumulated function-body text.
func (b *Builder) Body() string {
	return b.body.String()
}

// Globals returns the accumulated globals text.
func (b *Builder) Globals() string {
	return b.globals.String()
}
