package lexer

import (
	"testing"

	"github.com/skx/forthc/token"
)

func TestTokenizeBasicWords(t *testing.T) {
	input := `: MAIN 1 2 + . ;`

	tests := []struct {
		kind    token.Kind
		literal string
		value   int32
	}{
		{token.OpenDef, "", 0},
		{token.Word, "MAIN", 0},
		{token.Number, "", 1},
		{token.Number, "", 2},
		{token.Word, "+", 0},
		{token.Word, ".", 0},
		{token.CloseDef, "", 0},
	}

	toks, err := New(input).Tokenize()
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if len(toks) != len(tests) {
		t.Fatalf("expected %d tokens, got %d: %v", len(tests), len(toks), toks)
	}
	for i, tt := range tests {
		if toks[i].Kind != tt.kind {
			t.Errorf("tok[%d]: kind = %v, want %v", i, toks[i].Kind, tt.kind)
		}
		if toks[i].Literal != tt.literal {
			t.Errorf("tok[%d]: literal = %q, want %q", i, toks[i].Literal, tt.literal)
		}
		if toks[i].Value != tt.value {
			t.Errorf("tok[%d]: value = %d, want %d", i, toks[i].Value, tt.value)
		}
	}
}

func TestTokenizeNegativeNumber(t *testing.T) {
	toks, err := New("-17").Tokenize()
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if len(toks) != 1 || toks[0].Kind != token.Number || toks[0].Value != -17 {
		t.Fatalf("expected a single Number(-17), got %v", toks)
	}
}

func TestTokenizeImmediateString(t *testing.T) {
	toks, err := New(`S" hello" PWRITE-STR`).Tokenize()
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if len(toks) != 2 {
		t.Fatalf("expected 2 tokens, got %d: %v", len(toks), toks)
	}
	if toks[0].Kind != token.ImmediateString || toks[0].Literal != "hello" {
		t.Errorf("expected ImmediateString(hello), got %v", toks[0])
	}
	if !toks[1].IsWord("PWRITE-STR") {
		t.Errorf("expected Word(PWRITE-STR), got %v", toks[1])
	}
}

func TestTokenizeUnterminatedString(t *testing.T) {
	if _, err := New(`S" hello`).Tokenize(); err == nil {
		t.Fatalf("expected an error for an unterminated string")
	}
}

func TestTokenizeUnterminatedComment(t *testing.T) {
	if _, err := New(`( unterminated`).Tokenize(); err == nil {
		t.Fatalf("expected an error for an unterminated comment")
	}
}

func TestTokenizeSkipsOrdinaryComments(t *testing.T) {
	toks, err := New(`( just a remark ) 1`).Tokenize()
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if len(toks) != 1 || toks[0].Kind != token.Number || toks[0].Value != 1 {
		t.Fatalf("expected the comment to be skipped entirely, got %v", toks)
	}
}

func TestRoutineAliasPragma(t *testing.T) {
	l := New(`( ROUTINE program::sqrt => SQRT ) : SQRT ; `)
	if _, err := l.Tokenize(); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	aliases := l.RoutineAliases()
	if aliases["SQRT"] != "program::sqrt" {
		t.Fatalf("expected SQRT to alias program::sqrt, got %q", aliases["SQRT"])
	}
}

func TestRoutineAliasPragmaRequiresExactSpacing(t *testing.T) {
	l := New(`(ROUTINE program::sqrt=>SQRT) : SQRT ; `)
	if _, err := l.Tokenize(); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	if len(l.RoutineAliases()) != 0 {
		t.Fatalf("expected no alias to be recorded for non-matching spacing, got %v", l.RoutineAliases())
	}
}
