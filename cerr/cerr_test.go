package cerr

import (
	"errors"
	"testing"
)

func TestNewFormatsMessage(t *testing.T) {
	err := New(Codegen, "unknown word: %s", "FOO")
	if err.Kind != Codegen {
		t.Errorf("Kind = %v, want %v", err.Kind, Codegen)
	}
	if err.Error() != "unknown word: FOO" {
		t.Errorf("Error() = %q, want %q", err.Error(), "unknown word: FOO")
	}
}

func TestWrapPrependsVerb(t *testing.T) {
	underlying := errors.New("permission denied")
	err := Wrap(IO, "read in.fth", underlying)

	if err.Kind != IO {
		t.Errorf("Kind = %v, want %v", err.Kind, IO)
	}
	want := "read in.fth: permission denied"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}
