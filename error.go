package schemette

import "fmt"

// A SyntaxError reports source text the reader cannot accept: an illegal
// character, a malformed bracket or dot structure, or a special form with
// the wrong shape. Lexer errors carry the source position; errors raised
// after reading leave Line and Col zero.
type SyntaxError struct {
	Msg       string
	Line, Col int
}

func (e SyntaxError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%d:%d: %s", e.Line, e.Col, e.Msg)
	}
	return e.Msg
}

// A NameError reports a variable reference that no visible scope binds.
type NameError struct {
	Msg string
}

func (e NameError) Error() string {
	return e.Msg
}

// A RuntimeError reports any evaluation failure that is not a syntax or
// name problem: type mismatches, arity mismatches, applying a value that
// is not a procedure, and arithmetic on non-numbers.
type RuntimeError struct {
	Msg string
}

func (e RuntimeError) Error() string {
	return e.Msg
}

// syntaxErrorf creates a SyntaxError with a formatted message and no
// source position.
func syntaxErrorf(format string, args ...interface{}) error {
	return SyntaxError{Msg: fmt.Sprintf(format, args...)}
}

// nameErrorf creates a NameError with a formatted message.
func nameErrorf(format string, args ...interface{}) error {
	return NameError{Msg: fmt.Sprintf(format, args...)}
}

// runtimeErrorf creates a RuntimeError with a formatted message.
func runtimeErrorf(format string, args ...interface{}) error {
	return RuntimeError{Msg: fmt.Sprintf(format, args...)}
}
