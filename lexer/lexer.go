// Package lexer converts forthc source text into a flat token sequence.
//
// It is pure and restartable: the same input always produces the same
// token sequence and the same routine-alias map.
package lexer

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/skx/forthc/token"
)

// Lexer holds scanning state over a rune slice.
type Lexer struct {
	characters   []rune
	position     int // current character position
	readPosition int // next character position
	ch           rune

	// aliases accumulates `( ROUTINE <alias> => <word> )` pragmas found
	// while skipping comments. Keyed by definition name.
	aliases map[string]string
}

// New creates a Lexer over the given source text.
func New(input string) *Lexer {
	l := &Lexer{characters: []rune(input), aliases: make(map[string]string)}
	l.readChar()
	return l
}

// RoutineAliases returns the alias map accumulated so far. Call it after
// Tokenize has fully drained the input.
func (l *Lexer) RoutineAliases() map[string]string {
	return l.aliases
}

// Tokenize drains the lexer, returning every token up to EOF.
func (l *Lexer) Tokenize() ([]token.Token, error) {
	var out []token.Token
	for {
		tok, ok, err := l.next()
		if err != nil {
			return nil, err
		}
		if !ok {
			return out, nil
		}
		out = append(out, tok)
	}
}

func (l *Lexer) readChar() {
	if l.readPosition >= len(l.characters) {
		l.ch = 0
	} else {
		l.ch = l.characters[l.readPosition]
	}
	l.position = l.readPosition
	l.readPosition++
}

func (l *Lexer) peekChar() rune {
	if l.readPosition >= len(l.characters) {
		return 0
	}
	return l.characters[l.readPosition]
}

// next returns the next token, or ok=false at end of input.
func (l *Lexer) next() (token.Token, bool, error) {
	l.skipWhitespace()

	switch {
	case l.ch == 0:
		return token.Token{}, false, nil

	case l.ch == '(':
		if err := l.skipComment(); err != nil {
			return token.Token{}, false, err
		}
		return l.next()

	case l.ch == ':':
		l.readChar()
		return token.Token{Kind: token.OpenDef}, true, nil

	case l.ch == ';':
		l.readChar()
		return token.Token{Kind: token.CloseDef}, true, nil

	case l.ch == 'S' && l.peekChar() == '"':
		return l.readImmediateString()

	default:
		return l.readWordOrNumber()
	}
}

// skipComment consumes a `( ... )` comment, recording it as a routine-alias
// pragma if it matches the exact `( ROUTINE <alias> => <word> )` shape.
func (l *Lexer) skipComment() error {
	var body strings.Builder
	l.readChar() // consume '('
	for l.ch != ')' {
		if l.ch == 0 {
			return fmt.Errorf("Unterminated comment '('")
		}
		body.WriteRune(l.ch)
		l.readChar()
	}
	l.readChar() // consume ')'

	l.recordRoutineAlias(body.String())
	return nil
}

// recordRoutineAlias parses the interior of a comment for the exact
// pattern `ROUTINE <alias> => <word>` (the surrounding parens having
// already been stripped by skipComment).
func (l *Lexer) recordRoutineAlias(body string) {
	const prefix = " ROUTINE "
	if !strings.HasPrefix(body, prefix) {
		return
	}
	rest := strings.TrimSuffix(body, " ")
	rest = strings.TrimPrefix(rest, prefix)

	lhs, rhs, ok := strings.Cut(rest, " => ")
	if !ok {
		return
	}
	alias := strings.TrimSpace(lhs)
	word := strings.TrimSpace(rhs)
	if alias == "" || word == "" {
		return
	}
	l.aliases[word] = alias
}

// readImmediateString scans `S"` [space] chars... `"`.
func (l *Lexer) readImmediateString() (token.Token, bool, error) {
	l.readChar() // consume 'S'
	l.readChar() // consume '"'

	if isWhitespace(l.ch) {
		l.readChar()
	}

	var payload strings.Builder
	for l.ch != '"' {
		if l.ch == 0 {
			return token.Token{}, false, fmt.Errorf(`Unterminated string literal S"`)
		}
		payload.WriteRune(l.ch)
		l.readChar()
	}
	l.readChar() // consume closing '"'

	return token.Token{Kind: token.ImmediateString, Literal: payload.String()}, true, nil
}

// readWordOrNumber scans a run of non-whitespace, non-delimiter runes,
// then classifies it as a Number or a Word.
func (l *Lexer) readWordOrNumber() (token.Token, bool, error) {
	var buf strings.Builder
	for !isDelimiter(l.ch) {
		buf.WriteRune(l.ch)
		l.readChar()
	}
	word := buf.String()

	if v, err := strconv.ParseInt(word, 10, 32); err == nil {
		return token.Token{Kind: token.Number, Value: int32(v)}, true, nil
	}
	return token.Token{Kind: token.Word, Literal: word}, true, nil
}

func (l *Lexer) skipWhitespace() {
	for isWhitespace(l.ch) {
		l.readChar()
	}
}

func isWhitespace(ch rune) bool {
	return ch != 0 && unicode.IsSpace(ch)
}

func isDelimiter(ch rune) bool {
	return ch == 0 || isWhitespace(ch) || ch == '(' || ch == ':' || ch == ';'
}
