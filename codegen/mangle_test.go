package codegen

import "testing"

func TestMangleNamePassesThroughSafeBytes(t *testing.T) {
	if got := mangleName("DUP2"); got != "wDUP2" {
		t.Errorf("mangleName(DUP2) = %q, want %q", got, "wDUP2")
	}
}

func TestMangleNameEscapesUnsafeBytes(t *testing.T) {
	if got := mangleName("/MOD"); got != "w_x2FMOD" {
		t.Errorf("mangleName(/MOD) = %q, want %q", got, "w_x2FMOD")
	}
	if got := mangleName("0="); got != "w0_x3D" {
		t.Errorf("mangleName(0=) = %q, want %q", got, "w0_x3D")
	}
}

func TestMangleNameIsBijectiveForDistinctNames(t *testing.T) {
	names := []string{"DUP", "dup", "/MOD", "MOD", "0=", "0<", "X-ADDR", "X_ADDR"}
	seen := map[string]string{}
	for _, n := range names {
		m := mangleName(n)
		if other, ok := seen[m]; ok {
			t.Fatalf("mangled name %q collides for %q and %q", m, n, other)
		}
		seen[m] = n
	}
}
