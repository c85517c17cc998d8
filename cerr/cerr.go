// Package cerr defines forthc's single failure channel: a flat,
// human-readable diagnostic tagged with a Kind, so tests can assert on the
// class of failure without the compiler ever emitting more than one
// sentence (§7).
package cerr

import "fmt"

// Kind classifies a compiler failure.
type Kind int

const (
	// Lex covers unterminated comments and unterminated strings.
	Lex Kind = iota
	// Parse covers missing names, missing ';', and unresolvable
	// compile-time values.
	Parse
	// Codegen covers unknown words, unmatched control-flow keywords,
	// and unclosed control-flow frames.
	Codegen
	// Entry covers entry-point resolution failures.
	Entry
	// IO covers read/write failures.
	IO
)

// Error is a single flat diagnostic.
type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string {
	return e.Msg
}

// New builds an Error of the given kind with a formatted message.
func New(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// Wrap builds an Error of the given kind whose message is verb, a colon,
// and the underlying error's message.
func Wrap(kind Kind, verb string, err error) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf("%s: %s", verb, err.Error())}
}
