package codegen

import (
	"fmt"
	"strings"
)

// mangleName converts a source word name into its LLVM function symbol:
// each byte that is ASCII alphanumeric or '_' is copied verbatim; every
// other byte becomes "_xHH" (uppercase hex); the result is prefixed with
// "w" (§4.4.1). Distinct names get distinct symbols unless a name already
// spells out an escape literally: "_x2F" and "/" both become "w_x2F".
func mangleName(word string) string {
	var out strings.Builder
	out.WriteByte('w')
	for i := 0; i < len(word); i++ {
		b := word[i]
		if isMangleSafe(b) {
			out.WriteByte(b)
		} else {
			fmt.Fprintf(&out, "_x%02X", b)
		}
	}
	return out.String()
}

func isMangleSafe(b byte) bool {
	switch {
	case b >= 'a' && b <= 'z':
		return true
	case b >= 'A' && b <= 'Z':
		return true
	case b >= '0' && b <= '9':
		return true
	case b == '_':
		return true
	default:
		return false
	}
}
