package program_test

import (
	"testing"

	"github.com/skx/forthc/lexer"
	"github.com/skx/forthc/program"
	"github.com/stretchr/testify/require"
)

func analyze(t *testing.T, src string) *program.Analysis {
	t.Helper()
	l := lexer.New(src)
	toks, err := l.Tokenize()
	require.NoError(t, err, "tokenizing %q", src)
	a, err := program.Analyze(toks, l.RoutineAliases())
	require.NoError(t, err, "analyzing %q", src)
	return a
}

func TestAnalyzeCollectsDefinitions(t *testing.T) {
	a := analyze(t, `: DOUBLE DUP + ; : MAIN 21 DOUBLE . ;`)

	require.Len(t, a.Definitions, 2)
	require.Equal(t, "DOUBLE", a.Definitions[0].Name)
	require.Equal(t, "MAIN", a.Definitions[1].Name)
	require.True(t, a.KnownDefs["DOUBLE"])
	require.True(t, a.KnownDefs["MAIN"])
}

func TestAnalyzeVariableAdvancesHeap(t *testing.T) {
	a := analyze(t, `VARIABLE X 42 X PVAR! X PVAR@ .`)

	require.Equal(t, int32(0), a.CreatedWords["X"])
	require.Equal(t, int32(4), a.Here)
	require.Equal(t, ".", a.Entry, "every bare top-level word overwrites Entry, so the last one wins")
}

func TestAnalyzeConstantFromLiteral(t *testing.T) {
	a := analyze(t, `10 CONSTANT TEN`)
	require.Equal(t, int32(10), a.Constants["TEN"])
}

func TestAnalyzeConstantFromHere(t *testing.T) {
	a := analyze(t, `VARIABLE X HERE CONSTANT X-ADDR`)
	require.Equal(t, int32(4), a.Constants["X-ADDR"])
}

func TestAnalyzeAllotRequiresResolvableValue(t *testing.T) {
	l := lexer.New(`CREATE BUF DUP ALLOT`)
	toks, err := l.Tokenize()
	require.NoError(t, err)

	_, err = program.Analyze(toks, l.RoutineAliases())
	require.Error(t, err, "DUP is not a resolvable compile-time value")
}

func TestResolveEntryPrefersTrailingBareWord(t *testing.T) {
	a := analyze(t, `: MAIN ; : OTHER ; OTHER`)
	entry, err := a.ResolveEntry()
	require.NoError(t, err)
	require.Equal(t, "OTHER", entry)
}

func TestResolveEntryFallsBackToMain(t *testing.T) {
	a := analyze(t, `: MAIN ; : OTHER ;`)
	entry, err := a.ResolveEntry()
	require.NoError(t, err)
	require.Equal(t, "MAIN", entry)
}

func TestResolveEntrySingleDefinition(t *testing.T) {
	a := analyze(t, `: ONLY ;`)
	entry, err := a.ResolveEntry()
	require.NoError(t, err)
	require.Equal(t, "ONLY", entry)
}

func TestResolveEntryAmbiguousFails(t *testing.T) {
	a := analyze(t, `: A ; : B ;`)
	_, err := a.ResolveEntry()
	require.Error(t, err)
}
