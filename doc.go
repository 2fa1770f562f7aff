/*
Package schemette implements a small Scheme-flavored language over exact
integers, booleans, symbols, pairs, and closures.

The interpreter is a plain tree walker: a lexer turns source text into
tokens, a reader turns tokens into values, and Eval walks those values
directly. There is no compilation step and no numeric tower; numbers are
64-bit integers, and the only compound data is the mutable pair.

To start, use the NewVM function to create the interpreter. The one-shot
entry point is Run, which reads a single expression, evaluates it, and
returns its printed form:

	out, err := schemette.Run("(+ 1 2 3)") // "6", nil

The package-level Run uses a fresh VM per call, so definitions cannot
leak between calls. For a session that accumulates definitions, keep a
VM and feed it source with DoString or Run; both evaluate in the VM's
global scope:

	vm := schemette.NewVM()
	vm.DoString("(define (double x) (* x 2))")
	v, err := vm.DoString("(double 21)") // the Number 42

Language Primer

Programs are s-expressions. A form evaluates by looking at its operator
position: the fixed builtin names (quote, define, set!, lambda, if, the
arithmetic and comparison procedures, the list procedures, and the
predicates) dispatch to their builtin behavior, and anything else must
evaluate to a closure, which is then applied to the evaluated operands:

	(define (fact n)
	  (if (< n 2) 1 (* n (fact (- n 1)))))
	(fact 5) ; 120

define binds a variable or a procedure. It pre-binds the name before
evaluating the definition, which is what lets fact above call itself.
set! rebinds a variable that already exists somewhere in the scope
chain and fails with a name error otherwise. Closures capture their
defining scope by reference, so two closures made in the same scope see
each other's set! mutations.

Pairs are mutable. cons, car, and cdr build and take apart chains,
'(1 2 3) is a proper list, and (1 . 2) is a dotted pair. set-car! and
set-cdr! mutate a pair in place; a chain made to reach itself will hang
the printer, which does not look for cycles.

Only the boolean #f is false in a condition. The empty list () and the
number 0 are both true.

Errors come in three kinds: SyntaxError from the lexer, the reader, and
malformed special forms; NameError from unbound variables; and
RuntimeError from everything else, such as applying a non-procedure or
comparing a symbol. Use errors.As to tell them apart.
*/
package schemette
