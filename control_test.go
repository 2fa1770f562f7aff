package schemette

import (
	"errors"
	"testing"
)

// runCase is the shape shared by the special-form tests: evaluate a
// source in a fresh VM and check the printed result or the exact error.
type runCase struct {
	source string
	want   string
	err    string
}

func (c runCase) run(t *testing.T) {
	t.Helper()
	result, err := NewVM().DoString(c.source)
	if c.err != "" {
		if err == nil {
			t.Fatalf("%q failed to cause an error; got %s", c.source, ToText(result))
		}
		if err.Error() != c.err {
			t.Errorf("%q caused wrong error: wanted %q, got %q", c.source, c.err, err.Error())
		}
		return
	}
	if err != nil {
		t.Fatalf("%q failed to evaluate: %v", c.source, err)
	}
	if got := ToText(result); got != c.want {
		t.Errorf("%q evaluated to wrong result: wanted %s, got %s", c.source, c.want, got)
	}
}

// TestQuote tests that quote suppresses evaluation and takes exactly
// one operand.
func TestQuote(t *testing.T) {
	cases := map[string]runCase{
		"Symbol":  {source: "(quote cat)", want: "cat"},
		"List":    {source: "(quote (1 2))", want: "(1 2)"},
		"Form":    {source: "(quote (+ 1 2))", want: "(+ 1 2)"},
		"Empty":   {source: "(quote ())", want: "()"},
		"Sugar":   {source: "'cat", want: "cat"},
		"Twice":   {source: "''cat", want: "(quote cat)"},
		"NoArg":   {source: "(quote)", err: "Failed to evaluate: (quote)"},
		"TwoArgs": {source: "(quote a b)", err: "Failed to evaluate: (quote a b)"},
	}
	for name, c := range cases {
		t.Run(name, c.run)
	}
}

// TestDefine tests both define forms, the value they yield, and the
// shapes they reject.
func TestDefine(t *testing.T) {
	cases := map[string]runCase{
		"Variable":   {source: "(define x 5) x", want: "5"},
		"Yields":     {source: "(define x 5)", want: "()"},
		"Evaluates":  {source: "(define x (+ 2 3)) x", want: "5"},
		"Redefine":   {source: "(define x 1) (define x 2) x", want: "2"},
		"Procedure":  {source: "(define (add2 n) (+ n 2)) (add2 3)", want: "5"},
		"MultiBody":  {source: "(define (f) 1 2) (f)", want: "2"},
		"NoParams":   {source: "(define (nine) 9) (nine)", want: "9"},
		"Recursive":  {source: "(define (fact n) (if (< n 2) 1 (* n (fact (- n 1))))) (fact 5)", want: "120"},
		"Bare":       {source: "(define)", err: "Invalid define"},
		"NoValue":    {source: "(define x)", err: "Invalid define"},
		"TwoValues":  {source: "(define x 1 2)", err: "Invalid define"},
		"EmptyHead":  {source: "(define () 1)", err: "Invalid define"},
		"NoBody":     {source: "(define (f))", err: "Invalid define"},
		"BadParam":   {source: "(define (f 5) 1)", err: "Invalid define"},
		"NumberName": {source: "(define 5 5)", err: "Invalid define"},
	}
	for name, c := range cases {
		t.Run(name, c.run)
	}
}

// TestDefineRebindsVisible tests that define inside a body rebinds a
// visible outer binding rather than shadowing it, and creates a local
// binding only when the name is new everywhere.
func TestDefineRebindsVisible(t *testing.T) {
	vm := NewVM()
	src := "(define y 1) (define (f) (define y 10) y) (f)"
	result, err := vm.DoString(src)
	if err != nil {
		t.Fatalf("%q failed to evaluate: %v", src, err)
	}
	if got := ToText(result); got != "10" {
		t.Errorf("(f) evaluated to %s, wanted 10", got)
	}
	result, err = vm.DoString("y")
	if err != nil {
		t.Fatal(err)
	}
	if got := ToText(result); got != "10" {
		t.Errorf("y is %s after (f), wanted 10", got)
	}

	vm = NewVM()
	src = "(define (g) (define w 7) w) (g)"
	result, err = vm.DoString(src)
	if err != nil {
		t.Fatalf("%q failed to evaluate: %v", src, err)
	}
	if got := ToText(result); got != "7" {
		t.Errorf("(g) evaluated to %s, wanted 7", got)
	}
	if _, err := vm.DoString("w"); err == nil {
		t.Error("w leaked out of the call frame")
	}
}

// TestSet tests rebinding, its NameError, its rejected shapes, and that
// the value expression evaluates before the name resolves.
func TestSet(t *testing.T) {
	cases := map[string]runCase{
		"Rebinds":    {source: "(define x 1) (set! x 2) x", want: "2"},
		"Yields":     {source: "(define x 1) (set! x 2)", want: "()"},
		"Nested":     {source: "(define x 1) (define (f) (set! x 2)) (f) x", want: "2"},
		"Undefined":  {source: "(set! x 1)", err: "Variable doesn't yet exist: x"},
		"ValueFirst": {source: "(set! nope (car 5))", err: "Failed to evaluate: (car 5)"},
		"Bare":       {source: "(set!)", err: "Invalid set!"},
		"NoValue":    {source: "(set! x)", err: "Invalid set!"},
		"TwoValues":  {source: "(set! x 1 2)", err: "Invalid set!"},
		"NumberName": {source: "(set! 5 1)", err: "Invalid set!"},
	}
	for name, c := range cases {
		t.Run(name, c.run)
	}

	t.Run("UndefinedKind", func(t *testing.T) {
		_, err := NewVM().DoString("(set! x 1)")
		var nerr NameError
		if !errors.As(err, &nerr) {
			t.Errorf("set! on an undefined name caused %v, wanted a NameError", err)
		}
	})
}

// TestSetCarCdr tests pair mutation, with its distinct errors for a
// missing variable, a non-pair value, and a malformed form.
func TestSetCarCdr(t *testing.T) {
	cases := map[string]runCase{
		"Car":          {source: "(define p (cons 1 2)) (set-car! p 10) p", want: "(10 . 2)"},
		"Cdr":          {source: "(define p (cons 1 2)) (set-cdr! p 10) p", want: "(1 . 10)"},
		"CarYields":    {source: "(define p (cons 1 2)) (set-car! p 10)", want: "()"},
		"CdrList":      {source: "(define p (cons 1 2)) (set-cdr! p (list 2 3)) p", want: "(1 2 3)"},
		"CarEval":      {source: "(define p (cons 1 2)) (set-car! p (+ 2 3)) (car p)", want: "5"},
		"CarNonPair":   {source: "(define x 5) (set-car! x 1)", err: "Cannot set-car! on a non-pair"},
		"CdrNonPair":   {source: "(define x 5) (set-cdr! x 1)", err: "Cannot set-cdr! on a non-pair"},
		"CarUndefined": {source: "(set-car! q 1)", err: "Variable doesn't yet exist: q"},
		"CdrUndefined": {source: "(set-cdr! q 1)", err: "Variable doesn't yet exist: q"},
		"CarBare":      {source: "(set-car! p)", err: "Invalid set-car!"},
		"CdrNumber":    {source: "(set-cdr! 5 1)", err: "Invalid set-cdr!"},
		"ValueFirst":   {source: "(set-car! q (car 5))", err: "Failed to evaluate: (car 5)"},
		"MakesCycle":   {source: "(define p (cons 1 2)) (set-cdr! p p) (pair? p)", want: "#t"},
	}
	for name, c := range cases {
		t.Run(name, c.run)
	}
}

// TestLambda tests closure construction, its printed form, and the
// shapes lambda rejects.
func TestLambda(t *testing.T) {
	cases := map[string]runCase{
		"Apply":      {source: "((lambda (x y) (+ x y)) 3 4)", want: "7"},
		"NoParams":   {source: "((lambda () 1))", want: "1"},
		"Printed":    {source: "(lambda (x) x)", want: "(lambda (x) x)"},
		"PrintEmpty": {source: "(lambda () 1)", want: "(lambda () 1)"},
		"Bare":       {source: "(lambda)", err: "Invalid lambda"},
		"NoBody":     {source: "(lambda (x))", err: "Invalid lambda"},
		"BadParams":  {source: "(lambda 5 1)", err: "Invalid lambda"},
		"BadParam":   {source: "(lambda (x 5) 1)", err: "Invalid lambda"},
	}
	for name, c := range cases {
		t.Run(name, c.run)
	}
}

// TestIf tests branch selection, truthiness, arity, and that the
// untaken branch never evaluates.
func TestIf(t *testing.T) {
	cases := map[string]runCase{
		"True":        {source: "(if #t 1 2)", want: "1"},
		"False":       {source: "(if #f 1 2)", want: "2"},
		"NoElse":      {source: "(if #f 1)", want: "()"},
		"ZeroTruthy":  {source: "(if 0 1 2)", want: "1"},
		"EmptyTruthy": {source: "(if '() 1 2)", want: "1"},
		"Untaken":     {source: "(if #t 1 (car 5))", want: "1"},
		"UntakenThen": {source: "(if #f (car 5) 2)", want: "2"},
		"Bare":        {source: "(if)", err: "Invalid if"},
		"NoBranch":    {source: "(if #t)", err: "Invalid if"},
		"TooMany":     {source: "(if #t 1 2 3)", err: "Invalid if"},
		"BadCond":     {source: "(if (car 5) 1 2)", err: "Failed to evaluate: (car 5)"},
	}
	for name, c := range cases {
		t.Run(name, c.run)
	}
}

// TestAndOrNot tests the boolean forms, their empty-operand values, and
// short-circuiting.
func TestAndOrNot(t *testing.T) {
	cases := map[string]runCase{
		"AndEmpty":   {source: "(and)", want: "#t"},
		"AndAll":     {source: "(and 1 2 3)", want: "3"},
		"AndStops":   {source: "(and 1 #f 3)", want: "#f"},
		"AndShort":   {source: "(and #f (car 5))", want: "#f"},
		"AndError":   {source: "(and (car 5) 1)", err: "Failed to evaluate: (car 5)"},
		"OrEmpty":    {source: "(or)", want: "#f"},
		"OrFirst":    {source: "(or 1 (car 5))", want: "1"},
		"OrLater":    {source: "(or #f 7)", want: "7"},
		"OrNone":     {source: "(or #f #f)", want: "#f"},
		"OrError":    {source: "(or (car 5) 1)", err: "Failed to evaluate: (car 5)"},
		"NotTrue":    {source: "(not #t)", want: "#f"},
		"NotFalse":   {source: "(not #f)", want: "#t"},
		"NotZero":    {source: "(not 0)", want: "#f"},
		"NotEmpty":   {source: "(not '())", want: "#f"},
		"NotBare":    {source: "(not)", err: "Failed to evaluate: (not)"},
		"NotTwoArgs": {source: "(not 1 2)", err: "Failed to evaluate: (not 1 2)"},
	}
	for name, c := range cases {
		t.Run(name, c.run)
	}
}
