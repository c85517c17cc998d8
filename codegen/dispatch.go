package codegen

import (
	"fmt"

	"github.com/skx/forthc/cerr"
	"github.com/skx/forthc/instructions"
	"github.com/skx/forthc/token"
)

// compileBody walks one definition's body tokens in order, dispatching
// each to a constant/data push, a primitive, an extern call, a
// user-defined word call, or an inline data-declaration update, per the
// priority order of §4.4.3.
func (g *Generator) compileBody(body []token.Token) error {
	i := 0
	for i < len(body) {
		tok := body[i]

		switch tok.Kind {
		case token.Number:
			g.pushI32(fmt.Sprintf("%d", tok.Value))
			i++

		case token.ImmediateString:
			consumed, err := g.compileImmediateString(tok.Literal, body, i)
			if err != nil {
				return err
			}
			i += consumed

		case token.OpenDef, token.CloseDef:
			return cerr.New(cerr.Codegen, "nested definitions are not allowed")

		case token.Word:
			consumed, err := g.compileWord(tok.Literal, body, i)
			if err != nil {
				return err
			}
			i += consumed

		default:
			i++
		}
	}
	return nil
}

// compileImmediateString handles `S" ..." CONSUMER`: the string token must
// be immediately followed by a recognized consumer word (§4.4.3).
func (g *Generator) compileImmediateString(payload string, body []token.Token, i int) (int, error) {
	if i+1 >= len(body) || body[i+1].Kind != token.Word {
		return 0, cerr.New(cerr.Codegen, `S" must be followed by a recognized consumer word`)
	}
	switch body[i+1].Literal {
	case "PWRITE-STR":
		if err := g.callExternExtern(instructions.Catalog["PWRITE-STR"], &payload); err != nil {
			return 0, err
		}
		return 2, nil

	case "READ-F32", "FNUMBER?":
		if bits, ok := parseF32Bits(payload); ok {
			g.pushI32(fmt.Sprintf("%d", bits))
			g.pushI32("-1")
		} else {
			g.pushI32("0")
		}
		return 2, nil

	default:
		return 0, cerr.New(cerr.Codegen, `S" followed by unrecognized consumer: %s`, body[i+1].Literal)
	}
}

// compileWord dispatches a single Word token per the priority order of
// §4.4.3, returning how many body tokens it consumed.
func (g *Generator) compileWord(w string, body []token.Token, i int) (int, error) {
	if v, ok := g.constants[w]; ok {
		g.pushI32(fmt.Sprintf("%d", v))
		return 1, nil
	}
	if addr, ok := g.createdWords[w]; ok {
		g.pushI32(fmt.Sprintf("%d", addr))
		return 1, nil
	}
	if consumed, handled, err := g.compilePrimitive(w); handled {
		return consumed, err
	}
	if g.knownDefs[w] {
		g.callWord(w)
		return 1, nil
	}

	switch w {
	case "CREATE":
		name, err := wordAfter(body, i, "CREATE")
		if err != nil {
			return 0, err
		}
		g.createdWords[name] = g.here
		return 2, nil

	case "VARIABLE":
		name, err := wordAfter(body, i, "VARIABLE")
		if err != nil {
			return 0, err
		}
		g.createdWords[name] = g.here
		g.here += 4
		return 2, nil

	case ",":
		g.popI32()
		g.here += 4
		return 1, nil

	case "ALLOT":
		n, err := g.resolvePreceding(body, i)
		if err != nil {
			return 0, cerr.New(cerr.Parse, "ALLOT requires a resolvable compile-time value before it")
		}
		g.popI32()
		g.here += n
		return 1, nil

	case "CONSTANT":
		v, err := g.resolvePreceding(body, i)
		if err != nil {
			return 0, cerr.New(cerr.Parse, "CONSTANT requires a resolvable compile-time value before it")
		}
		name, err := wordAfter(body, i, "CONSTANT")
		if err != nil {
			return 0, err
		}
		g.popI32()
		g.constants[name] = v
		return 2, nil
	}

	return 0, cerr.New(cerr.Codegen, "unknown word: %s", w)
}

// wordAfter requires body[i+1] to be a Word token.
func wordAfter(body []token.Token, i int, keyword string) (string, error) {
	if i+1 >= len(body) || body[i+1].Kind != token.Word {
		return "", cerr.New(cerr.Parse, "%s requires a following name", keyword)
	}
	return body[i+1].Literal, nil
}
