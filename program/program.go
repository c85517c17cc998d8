// Package program implements the top-level analyzer: a single linear pass
// over a token stream that extracts word definitions, the data-heap symbol
// tables, and the entry point, per forthc's §4.2 top-level grammar.
package program

import (
	"fmt"

	"github.com/skx/forthc/token"
)

// Definition is a named word body, collected verbatim between `:` and `;`.
type Definition struct {
	Name string
	Body []token.Token
}

// Analysis is the result of a top-level pass: the dictionary of
// definitions plus the symbol tables codegen consumes.
type Analysis struct {
	Definitions []Definition

	// Constants maps a CONSTANT name to its compile-time value.
	Constants map[string]int32

	// CreatedWords maps a CREATE/VARIABLE name to its heap offset.
	CreatedWords map[string]int32

	// KnownDefs is the set of names declared via `:`.
	KnownDefs map[string]bool

	// Here is the heap-offset cursor after the full top-level pass.
	Here int32

	// Entry is the resolved entry-point word name, if any.
	Entry string

	// RoutineAliases maps a definition name to its canonical kernel
	// alias, harvested by the lexer from `( ROUTINE alias => word )`
	// pragmas.
	RoutineAliases map[string]string
}

// Analyze walks tokens once, collecting definitions and top-level data
// declarations. Tokens inside a `:` ... `;` pair belong to that
// definition and are not interpreted here.
func Analyze(tokens []token.Token, routineAliases map[string]string) (*Analysis, error) {
	a := &Analysis{
		Constants:      make(map[string]int32),
		CreatedWords:   make(map[string]int32),
		KnownDefs:      make(map[string]bool),
		RoutineAliases: routineAliases,
	}

	i := 0
	for i < len(tokens) {
		tok := tokens[i]

		switch tok.Kind {
		case token.OpenDef:
			name, body, next, err := readDefinition(tokens, i)
			if err != nil {
				return nil, err
			}
			a.Definitions = append(a.Definitions, Definition{Name: name, Body: body})
			a.KnownDefs[name] = true
			i = next

		case token.Word:
			switch tok.Literal {
			case "CREATE":
				name, err := wordAfter(tokens, i, "CREATE")
				if err != nil {
					return nil, err
				}
				a.CreatedWords[name] = a.Here
				i += 2

			case "VARIABLE":
				name, err := wordAfter(tokens, i, "VARIABLE")
				if err != nil {
					return nil, err
				}
				a.CreatedWords[name] = a.Here
				a.Here += 4
				i += 2

			case ",":
				a.Here += 4
				i++

			case "ALLOT":
				n, err := ResolvePrecedingValue(tokens, i, a.Here, a.Constants, a.CreatedWords)
				if err != nil {
					return nil, fmt.Errorf("ALLOT requires a resolvable compile-time value before it")
				}
				a.Here += n
				i++

			case "CONSTANT":
				v, err := ResolvePrecedingValue(tokens, i, a.Here, a.Constants, a.CreatedWords)
				if err != nil {
					return nil, fmt.Errorf("CONSTANT requires a resolvable compile-time value before it")
				}
				name, err := wordAfter(tokens, i, "CONSTANT")
				if err != nil {
					return nil, err
				}
				a.Constants[name] = v
				i += 2

			case "HERE":
				i++

			default:
				a.Entry = tok.Literal
				i++
			}

		default:
			// Number, ImmediateString, stray CloseDef: ignored at top level.
			i++
		}
	}

	return a, nil
}

// readDefinition consumes `: NAME body... ;` starting at tokens[i] (the
// OpenDef token), returning the name, body, and the index just past `;`.
func readDefinition(tokens []token.Token, i int) (string, []token.Token, int, error) {
	i++ // consume ':'
	if i >= len(tokens) || tokens[i].Kind != token.Word {
		return "", nil, 0, fmt.Errorf("expected a word name after ':'")
	}
	name := tokens[i].Literal
	i++

	start := i
	for i < len(tokens) && tokens[i].Kind != token.CloseDef {
		i++
	}
	if i >= len(tokens) {
		return "", nil, 0, fmt.Errorf("definition %q is missing a closing ';'", name)
	}
	body := tokens[start:i]
	i++ // consume ';'
	return name, body, i, nil
}

// wordAfter requires tokens[i+1] to be a Word token, used by CREATE,
// VARIABLE, and CONSTANT.
func wordAfter(tokens []token.Token, i int, keyword string) (string, error) {
	if i+1 >= len(tokens) || tokens[i+1].Kind != token.Word {
		return "", fmt.Errorf("%s requires a following name", keyword)
	}
	return tokens[i+1].Literal, nil
}

// ResolvePrecedingValue resolves the compile-time value immediately
// preceding tokens[i]: a literal Number, the word HERE (current heap
// cursor), a known constant, or the address of a known created word.
// Shared by the top-level analyzer and by codegen's in-body ALLOT/CONSTANT
// handling (§4.4.3).
func ResolvePrecedingValue(
	tokens []token.Token,
	i int,
	here int32,
	constants map[string]int32,
	createdWords map[string]int32,
) (int32, error) {
	if i == 0 {
		return 0, fmt.Errorf("no preceding compile-time value")
	}
	prev := tokens[i-1]
	switch prev.Kind {
	case token.Number:
		return prev.Value, nil
	case token.Word:
		if prev.Literal == "HERE" {
			return here, nil
		}
		if v, ok := constants[prev.Literal]; ok {
			return v, nil
		}
		if v, ok := createdWords[prev.Literal]; ok {
			return v, nil
		}
	}
	return 0, fmt.Errorf("unresolvable compile-time value")
}

// ResolveEntry implements the entry-point discovery rule of §3: a trailing
// bare top-level word wins; otherwise a definition named MAIN; otherwise
// exactly one definition; otherwise failure.
func (a *Analysis) ResolveEntry() (string, error) {
	if a.Entry != "" {
		return a.Entry, nil
	}
	for _, d := range a.Definitions {
		if d.Name == "MAIN" {
			return "MAIN", nil
		}
	}
	if len(a.Definitions) == 1 {
		return a.Definitions[0].Name, nil
	}
	return "", fmt.Errorf("no entry point: define MAIN, end with a bare call, or declare exactly one word")
}
