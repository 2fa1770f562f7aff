package schemette

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// A token is a single lexical element.
type token struct {
	Kind  tokenKind
	Value string
	Err   error

	Line, Col int
}

type tokenKind int

const (
	badToken tokenKind = iota

	openToken   // open bracket
	closeToken  // close bracket
	dotToken    // dot in a dotted tail
	quoteToken  // quote mark
	numberToken // integer literal
	boolToken   // #t or #f
	symbolToken // symbol
)

// lexFn is a lexer state function. Each lexFn lexes a token, sends it on
// the supplied channel, and returns the next lexFn to use.
type lexFn func(src *bufio.Reader, tokens chan<- token, line, col int) (lexFn, int, int)

// lex converts a source into a stream of tokens.
func lex(src *bufio.Reader, tokens chan<- token) {
	state := eatSpace
	line, col := 1, 1
	for state != nil {
		state, line, col = state(src, tokens, line, col)
	}
	close(tokens)
}

// accept appends the next run of characters in src which satisfy the
// predicate to b. Returns b after appending, the first rune which did not
// satisfy the predicate, and any error that occurred. If there was no
// such error, the last rune is unread.
func accept(src *bufio.Reader, predicate func(rune) bool, b []byte) ([]byte, rune, error) {
	r, _, err := src.ReadRune()
	for {
		if err != nil {
			return b, r, err
		}
		if !predicate(r) {
			break
		}
		b = append(b, string(r)...)
		r, _, err = src.ReadRune()
	}
	src.UnreadRune()
	return b, r, nil
}

// lexsend is a shortcut for sending a token with error checking. It
// returns eatSpace as the default lexing function.
func lexsend(err error, tokens chan<- token, good token) lexFn {
	if err != nil && err != io.EOF {
		good.Kind = badToken
		good.Err = err
	}
	tokens <- good
	if err != nil {
		return nil
	}
	return eatSpace
}

// isSymbolStart reports whether a symbol may begin with r.
func isSymbolStart(r rune) bool {
	return 'a' <= r && r <= 'z' || 'A' <= r && r <= 'Z' || strings.ContainsRune("<=>*#", r)
}

// isSymbolRune reports whether a symbol may continue with r.
func isSymbolRune(r rune) bool {
	return isSymbolStart(r) || '0' <= r && r <= '9' || strings.ContainsRune("?!-", r)
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

// eatSpace consumes space and decides the next lexFn to use.
func eatSpace(src *bufio.Reader, tokens chan<- token, line, col int) (lexFn, int, int) {
	eaten, r, err := accept(src, func(r rune) bool { return strings.ContainsRune(" \t\n\v\f\r", r) }, nil)
	for _, c := range eaten {
		if c == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	if err != nil {
		if err != io.EOF {
			tokens <- token{
				Kind:  badToken,
				Value: string(r),
				Err:   err,
				Line:  line,
				Col:   col,
			}
		}
		return nil, line, col
	}
	switch {
	case r == '(':
		src.ReadRune()
		tokens <- token{Kind: openToken, Value: "(", Line: line, Col: col}
		col++
		return eatSpace, line, col
	case r == ')':
		src.ReadRune()
		tokens <- token{Kind: closeToken, Value: ")", Line: line, Col: col}
		col++
		return eatSpace, line, col
	case r == '.':
		src.ReadRune()
		tokens <- token{Kind: dotToken, Value: ".", Line: line, Col: col}
		col++
		return eatSpace, line, col
	case r == '\'':
		src.ReadRune()
		tokens <- token{Kind: quoteToken, Value: "'", Line: line, Col: col}
		col++
		return eatSpace, line, col
	case r == '/':
		// A solidus is a complete symbol on its own.
		src.ReadRune()
		tokens <- token{Kind: symbolToken, Value: "/", Line: line, Col: col}
		col++
		return eatSpace, line, col
	case r == '+', r == '-':
		// A sign begins a number only when a digit follows immediately;
		// otherwise it is a one-character symbol.
		peek, _ := src.Peek(2)
		if len(peek) > 1 && '0' <= peek[1] && peek[1] <= '9' {
			return lexNumber, line, col
		}
		src.ReadRune()
		tokens <- token{Kind: symbolToken, Value: string(r), Line: line, Col: col}
		col++
		return eatSpace, line, col
	case isDigit(r):
		return lexNumber, line, col
	case isSymbolStart(r):
		return lexSymbol, line, col
	}
	tokens <- token{
		Kind:  badToken,
		Value: string(r),
		Err:   SyntaxError{Msg: fmt.Sprintf("invalid character code: %d", r), Line: line, Col: col},
		Line:  line,
		Col:   col,
	}
	return nil, line, col
}

// lexNumber lexes an optionally signed decimal integer.
func lexNumber(src *bufio.Reader, tokens chan<- token, line, col int) (lexFn, int, int) {
	r, _, _ := src.ReadRune()
	b, _, err := accept(src, isDigit, []byte(string(r)))
	ncol := col + len(b)
	return lexsend(err, tokens, token{Kind: numberToken, Value: string(b), Line: line, Col: col}), line, ncol
}

// lexSymbol lexes a symbol, which consists of a-z, A-Z, <=>*# and, after
// the first character, 0-9 and ?!-. The boolean literals lex as symbols
// and are reclassified here.
func lexSymbol(src *bufio.Reader, tokens chan<- token, line, col int) (lexFn, int, int) {
	b, _, err := accept(src, isSymbolRune, nil)
	ncol := col + len(b)
	tok := token{Kind: symbolToken, Value: string(b), Line: line, Col: col}
	if tok.Value == "#t" || tok.Value == "#f" {
		tok.Kind = boolToken
	}
	return lexsend(err, tokens, tok), line, ncol
}
