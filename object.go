package schemette

import "strings"

// An Object is a value in the language. The implementations are exactly
// Number, Boolean, Symbol, Pair, and Closure, and the nil Object is the
// empty list. The set is closed so that printing, equality, and
// truthiness can switch over every case; behavior shared between kinds
// lives in package functions rather than methods.
type Object interface {
	// object marks implementations, restricting them to this package.
	object()
}

// ToText renders an object in its external representation: numbers in
// decimal, #t and #f, symbols verbatim, pairs in list notation with a
// dotted improper tail, closures as a lambda form, and the empty list as
// (). Mutating pair fields can create cyclic structure; ToText does not
// detect cycles and will recurse without bound on one.
func ToText(obj Object) string {
	b := strings.Builder{}
	writeText(&b, obj)
	return b.String()
}

func writeText(b *strings.Builder, obj Object) {
	switch obj := obj.(type) {
	case nil:
		b.WriteString("()")
	case *Number:
		b.WriteString(obj.String())
	case *Boolean:
		b.WriteString(obj.String())
	case *Symbol:
		b.WriteString(obj.Name)
	case *Pair:
		writePair(b, obj)
	case *Closure:
		writeClosure(b, obj)
	}
}

func writePair(b *strings.Builder, p *Pair) {
	b.WriteByte('(')
	writeText(b, p.Car)
	tail := p.Cdr
	for {
		switch t := tail.(type) {
		case nil:
			b.WriteByte(')')
			return
		case *Pair:
			b.WriteByte(' ')
			writeText(b, t.Car)
			tail = t.Cdr
		default:
			b.WriteString(" . ")
			writeText(b, tail)
			b.WriteByte(')')
			return
		}
	}
}

func writeClosure(b *strings.Builder, c *Closure) {
	b.WriteString("(lambda (")
	for i, p := range c.Params {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(p)
	}
	b.WriteByte(')')
	for _, expr := range c.Body {
		b.WriteByte(' ')
		writeText(b, expr)
	}
	b.WriteByte(')')
}

// Equal reports whether two objects are the same value. Numbers,
// booleans, and symbols compare by payload, pairs compare recursively
// over car and cdr, and closures compare by identity. Objects of
// different kinds are unequal; comparing across kinds is never an error.
// Like ToText, Equal recurses without bound on cyclic pairs.
func Equal(a, b Object) bool {
	switch a := a.(type) {
	case nil:
		return b == nil
	case *Number:
		n, ok := b.(*Number)
		return ok && a.Value == n.Value
	case *Boolean:
		n, ok := b.(*Boolean)
		return ok && a.Value == n.Value
	case *Symbol:
		n, ok := b.(*Symbol)
		return ok && a.Name == n.Name
	case *Pair:
		n, ok := b.(*Pair)
		return ok && Equal(a.Car, n.Car) && Equal(a.Cdr, n.Cdr)
	case *Closure:
		return Object(a) == b
	}
	return false
}

// AsBoolean reports the truthiness of an object in conditional position.
// Only the false Boolean is falsy; in particular the empty list and 0
// are truthy.
func AsBoolean(obj Object) bool {
	if b, ok := obj.(*Boolean); ok {
		return b.Value
	}
	return true
}
