package instructions

import "testing"

// TestCatalogCoversAliasedWords checks that the I/O-style aliases
// documented in §4.4.4 (e.g. "." for PWRITE-I32) resolve to the same
// callee as their canonical word.
func TestCatalogCoversAliasedWords(t *testing.T) {
	pairs := map[string]string{
		".":    "PWRITE-I32",
		"EMIT": "PWRITE-CHAR",
	}
	for alias, canonical := range pairs {
		a, ok := Catalog[alias]
		if !ok {
			t.Fatalf("missing catalog entry for %q", alias)
		}
		c, ok := Catalog[canonical]
		if !ok {
			t.Fatalf("missing catalog entry for %q", canonical)
		}
		if a.Callee != c.Callee || a.Mode != c.Mode {
			t.Errorf("%q and %q should dispatch identically, got %+v vs %+v", alias, canonical, a, c)
		}
	}
}

// TestDeclarationsCoverCatalogCallees ensures every extern the catalog can
// dispatch to is actually declared in the fixed prelude (§4.5).
func TestDeclarationsCoverCatalogCallees(t *testing.T) {
	declared := map[string]bool{}
	for _, line := range Declarations {
		declared[line] = true
	}

	for word, extern := range Catalog {
		found := false
		for decl := range declared {
			if containsCallee(decl, extern.Callee) {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("word %q dispatches to %q, which has no declare line", word, extern.Callee)
		}
	}
}

func containsCallee(declareLine, callee string) bool {
	// declare lines look like "declare <ret> @<callee>(<args>)"
	needle := "@" + callee + "("
	for i := 0; i+len(needle) <= len(declareLine); i++ {
		if declareLine[i:i+len(needle)] == needle {
			return true
		}
	}
	return false
}

func TestKernelAliasesCoverPragmaNames(t *testing.T) {
	for _, name := range []string{"program::sqrt", "program::sin", "program::fx_ln"} {
		if _, ok := KernelAliases[name]; !ok {
			t.Errorf("expected a kernel alias entry for %q", name)
		}
	}
}
