package ir

import (
	"strings"
	"testing"
)

func TestFreshTempIsMonotonicAndUnique(t *testing.T) {
	b := New()
	seen := map[string]bool{}
	for i := 0; i < 5; i++ {
		tmp := b.FreshTemp()
		if seen[tmp] {
			t.Fatalf("temp %q was issued twice", tmp)
		}
		seen[tmp] = true
	}
	if b.FreshTemp() != "%t6" {
		t.Errorf("expected counter to keep advancing across calls")
	}
}

func TestFreshLabelUsesPrefix(t *testing.T) {
	b := New()
	if got := b.FreshLabel("then"); got != "then.1" {
		t.Errorf("FreshLabel(\"then\") = %q, want %q", got, "then.1")
	}
	if got := b.FreshLabel("else"); got != "else.2" {
		t.Errorf("FreshLabel(\"else\") = %q, want %q", got, "else.2")
	}
}

func TestEmitFunctionAndGlobalLinesDoNotInterleave(t *testing.T) {
	b := New()
	b.EmitFunctionLine("define void @w_X() {")
	b.EmitGlobalLine("@g = private constant i32 0")
	b.EmitFunctionLine("  ret void")

	if !strings.Contains(b.Body(), "define void @w_X() {") || !strings.Contains(b.Body(), "ret void") {
		t.Errorf("expected both function lines in Body(), got %q", b.Body())
	}
	if strings.Contains(b.Body(), "private constant") {
		t.Errorf("global line leaked into the body stream")
	}
	if !strings.Contains(b.Globals(), "private constant") {
		t.Errorf("expected the global line in Globals(), got %q", b.Globals())
	}
}

func TestEmitStringGlobalEscapesAndNulTerminates(t *testing.T) {
	b := New()
	ptr := b.EmitStringGlobal("hi")

	if !strings.HasPrefix(ptr, "%t") {
		t.Errorf("expected a fresh temp pointer, got %q", ptr)
	}
	if !strings.Contains(b.Globals(), `[3 x i8] c"\68\69\00"`) {
		t.Errorf("expected a 3-byte NUL-terminated escaped constant, got %q", b.Globals())
	}
}

func TestEmitStringGlobalNeverInterns(t *testing.T) {
	b := New()
	b.EmitStringGlobal("same")
	b.EmitStringGlobal("same")

	if strings.Count(b.Globals(), "private constant") != 2 {
		t.Errorf("expected two distinct globals for two calls with identical payloads, got:\n%s", b.Globals())
	}
}
