package schemette

/*
This file is for converting lexer tokens into objects, and for the
convenience entry points that read a whole source. Evaluation is in
eval.go.
*/

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

// A reader carries the token stream through a parse with one token of
// lookahead.
type reader struct {
	tokens <-chan token
	buf    *token
}

// next takes the next token. The second result is false once the stream
// is exhausted.
func (r *reader) next() (token, bool) {
	if r.buf != nil {
		tok := *r.buf
		r.buf = nil
		return tok, true
	}
	tok, ok := <-r.tokens
	return tok, ok
}

// peek reports the next token without taking it.
func (r *reader) peek() (token, bool) {
	if r.buf == nil {
		tok, ok := <-r.tokens
		if !ok {
			return token{}, false
		}
		r.buf = &tok
	}
	return *r.buf, true
}

// drainTokens unblocks the lexer goroutine when a parse stops before the
// stream ends.
func drainTokens(tokens <-chan token) {
	for range tokens {
	}
}

// Parse reads every expression from source without evaluating anything.
func (vm *VM) Parse(source io.Reader) ([]Object, error) {
	tokens := make(chan token)
	go lex(bufio.NewReader(source), tokens)
	defer drainTokens(tokens)
	r := &reader{tokens: tokens}
	var exprs []Object
	for {
		if _, ok := r.peek(); !ok {
			return exprs, nil
		}
		obj, err := vm.read(r)
		if err != nil {
			return nil, err
		}
		T().Debugf("read expression %s", ToText(obj))
		exprs = append(exprs, obj)
	}
}

// read reads one expression.
func (vm *VM) read(r *reader) (Object, error) {
	tok, ok := r.next()
	if !ok {
		return nil, syntaxErrorf("Read: Unexpected end of input")
	}
	switch tok.Kind {
	case badToken:
		return nil, tok.Err
	case quoteToken:
		expr, err := vm.read(r)
		if err != nil {
			return nil, err
		}
		return NewList(NewSymbol("quote"), expr), nil
	case numberToken:
		x, err := strconv.ParseInt(tok.Value, 10, 64)
		if err != nil {
			return nil, SyntaxError{Msg: "Read: invalid number literal " + tok.Value, Line: tok.Line, Col: tok.Col}
		}
		return vm.NewNumber(x), nil
	case boolToken:
		return vm.NewBoolean(tok.Value == "#t"), nil
	case symbolToken:
		return NewSymbol(tok.Value), nil
	case openToken:
		return vm.readList(r)
	case closeToken:
		return nil, syntaxErrorf("Read: Unexpected )")
	}
	// A dot is valid only inside a bracketed list, where readList
	// handles it.
	return nil, syntaxErrorf("Read: Unexpected token")
}

// readList reads the elements of a bracketed list after its open
// bracket, including a dotted tail if present, through the closing
// bracket.
func (vm *VM) readList(r *reader) (Object, error) {
	var elems []Object
	var tail Object
	for {
		tok, ok := r.peek()
		if !ok || tok.Kind == closeToken {
			break
		}
		if tok.Kind == dotToken {
			if len(elems) == 0 {
				return nil, syntaxErrorf("Read: expected expression before .")
			}
			r.next()
			t, err := vm.read(r)
			if err != nil {
				return nil, err
			}
			tail = t
			break
		}
		elem, err := vm.read(r)
		if err != nil {
			return nil, err
		}
		elems = append(elems, elem)
	}
	tok, ok := r.peek()
	if ok && tok.Kind == badToken {
		return nil, tok.Err
	}
	if !ok || tok.Kind != closeToken {
		return nil, syntaxErrorf("Read: expected ) ending list")
	}
	r.next()
	list := tail
	for i := len(elems) - 1; i >= 0; i-- {
		list = &Pair{Car: elems[i], Cdr: list}
	}
	return list, nil
}

// DoString evaluates every expression in src in the global scope and
// returns the last result, or the empty list for no expressions.
func (vm *VM) DoString(src string) (Object, error) {
	return vm.DoReader(strings.NewReader(src))
}

// DoReader evaluates every expression read from src in the global
// scope. The whole source parses before anything evaluates, so a syntax
// error anywhere means nothing runs.
func (vm *VM) DoReader(src io.Reader) (Object, error) {
	exprs, err := vm.Parse(src)
	if err != nil {
		return nil, err
	}
	var result Object
	for _, expr := range exprs {
		r, err := vm.Eval(expr, vm.Global)
		if err != nil {
			return nil, err
		}
		result = r
	}
	return result, nil
}
