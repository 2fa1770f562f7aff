package schemette

import (
	"bufio"
	"strings"
)

// A VM interprets programs. Each VM owns its global scope and its value
// memos; separate VMs share nothing except the builtin table, which is
// immutable. A single VM is not safe for concurrent use: evaluation is
// fully synchronous and mutates scopes with no locking.
type VM struct {
	// Global is the top scope. Definitions made by DoString and Run
	// live here for the life of the VM.
	Global *Scope

	// True and False are the Boolean singletons.
	True  *Boolean
	False *Boolean

	// NumberMemo holds the shared cells for small integers.
	NumberMemo map[int64]*Number
}

// NewVM prepares a new VM with an empty global scope.
func NewVM() *VM {
	vm := VM{
		Global: NewScope(nil),

		True:  &Boolean{Value: true},
		False: &Boolean{Value: false},

		// Memoize all integers in [-1000, 1000].
		NumberMemo: make(map[int64]*Number, 2001),
	}
	for i := int64(-1000); i <= 1000; i++ {
		vm.MemoizeNumber(i)
	}
	return &vm
}

// MemoizeNumber creates a quick-access Number with the given value.
func (vm *VM) MemoizeNumber(v int64) {
	vm.NumberMemo[v] = vm.NewNumber(v)
}

// Run reads exactly one expression from source, evaluates it in the
// global scope, and returns the result's printed form. Source text
// remaining after that expression is a SyntaxError, as is source
// containing no expression at all.
func (vm *VM) Run(source string) (string, error) {
	tokens := make(chan token)
	go lex(bufio.NewReader(strings.NewReader(source)), tokens)
	defer drainTokens(tokens)
	r := &reader{tokens: tokens}
	obj, err := vm.read(r)
	if err != nil {
		return "", err
	}
	if tok, ok := r.peek(); ok {
		if tok.Kind == badToken {
			return "", tok.Err
		}
		return "", syntaxErrorf("Unexpected input")
	}
	result, err := vm.Eval(obj, vm.Global)
	if err != nil {
		return "", err
	}
	return ToText(result), nil
}

// Run interprets source as a single expression in a fresh VM and
// returns its printed result. Each call sees only the builtins;
// definitions cannot persist between calls. Programs needing several
// top-level steps wrap them in an immediately applied lambda.
func Run(source string) (string, error) {
	return NewVM().Run(source)
}
