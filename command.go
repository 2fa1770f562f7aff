package schemette

// A command implements a builtin special form or procedure. It receives
// the whole unfolded form with the operator at index 0 and controls the
// evaluation of its own operands.
type command func(vm *VM, sc *Scope, form []Object) (Object, error)

// commands is the fixed builtin table. Eval consults it for a symbol in
// operator position before any variable lookup, so builtin names cannot
// be shadowed as operators. The table is built once and never modified.
// It is populated in init rather than in the variable declaration to
// avoid an initialization cycle through Eval.
var commands map[string]command

func init() {
	commands = map[string]command{
		"*":         commandMultiply,
		"+":         commandAdd,
		"-":         commandSubtract,
		"/":         commandDivide,
		"<":         commandLess,
		"<=":        commandLessOrEqual,
		"=":         commandEqual,
		">":         commandGreater,
		">=":        commandGreaterOrEqual,
		"abs":       commandAbs,
		"and":       commandAnd,
		"boolean?":  typePredicate(isBoolean),
		"car":       commandCar,
		"cdr":       commandCdr,
		"cons":      commandCons,
		"define":    commandDefine,
		"if":        commandIf,
		"lambda":    commandLambda,
		"list":      commandList,
		"list-ref":  commandListRef,
		"list-tail": commandListTail,
		"list?":     commandIsProperList,
		"max":       commandMax,
		"min":       commandMin,
		"not":       commandNot,
		"null?":     commandIsNull,
		"number?":   typePredicate(isNumber),
		"or":        commandOr,
		"pair?":     typePredicate(isPair),
		"quote":     commandQuote,
		"set!":      commandSet,
		"set-car!":  commandSetCar,
		"set-cdr!":  commandSetCdr,
		"symbol?":   typePredicate(isSymbol),
	}
}

// evalOperands evaluates every operand of form in place, leaving the
// operator alone. Commands that fail after calling this echo the
// evaluated operands in their error.
func (vm *VM) evalOperands(sc *Scope, form []Object) error {
	for i := 1; i < len(form); i++ {
		v, err := vm.Eval(form[i], sc)
		if err != nil {
			return err
		}
		form[i] = v
	}
	return nil
}

// failEvaluation reports a command application that cannot proceed,
// echoing the whole printed form.
func failEvaluation(form []Object) error {
	return runtimeErrorf("Failed to evaluate: %s", ToText(NewList(form...)))
}

// typePredicate builds the command for a classification predicate: one
// operand, evaluated, tested against a single kind.
func typePredicate(test func(Object) bool) command {
	return func(vm *VM, sc *Scope, form []Object) (Object, error) {
		if len(form) != 2 {
			return nil, failEvaluation(form)
		}
		v, err := vm.Eval(form[1], sc)
		if err != nil {
			return nil, err
		}
		form[1] = v
		return vm.NewBoolean(test(v)), nil
	}
}

func isNumber(obj Object) bool {
	_, ok := obj.(*Number)
	return ok
}

func isBoolean(obj Object) bool {
	_, ok := obj.(*Boolean)
	return ok
}

func isPair(obj Object) bool {
	_, ok := obj.(*Pair)
	return ok
}

func isSymbol(obj Object) bool {
	_, ok := obj.(*Symbol)
	return ok
}

// symbolNames unfolds a parameter list, requiring every element to be a
// symbol.
func symbolNames(obj Object) ([]string, error) {
	list, err := unfold(obj)
	if err != nil {
		return nil, err
	}
	names := make([]string, len(list))
	for i, o := range list {
		sym, ok := o.(*Symbol)
		if !ok {
			return nil, runtimeErrorf("Expected symbol, but got: %s", ToText(o))
		}
		names[i] = sym.Name
	}
	return names, nil
}
