package schemette

// commandQuote yields its single operand unevaluated.
func commandQuote(vm *VM, sc *Scope, form []Object) (Object, error) {
	if len(form) != 2 {
		return nil, failEvaluation(form)
	}
	return form[1], nil
}

// commandDefine binds a name in the current scope, or rebinds an
// enclosing binding that is already visible. The variable form
// (define name expr) takes exactly one expression; the procedure form
// (define (name params...) body...) builds a closure over the current
// scope. Either way the name binds to the empty list before the value
// exists, so a definition can refer to itself.
func commandDefine(vm *VM, sc *Scope, form []Object) (Object, error) {
	if len(form) <= 1 {
		return nil, SyntaxError{Msg: "Invalid define"}
	}
	if sym, ok := form[1].(*Symbol); ok {
		if len(form) != 3 {
			return nil, SyntaxError{Msg: "Invalid define"}
		}
		sc.Set(sym.Name, nil)
		v, err := vm.Eval(form[2], sc)
		if err != nil {
			return nil, err
		}
		sc.Set(sym.Name, v)
		return nil, nil
	}
	if len(form) < 3 {
		return nil, SyntaxError{Msg: "Invalid define"}
	}
	names, err := symbolNames(form[1])
	if err != nil || len(names) == 0 {
		return nil, SyntaxError{Msg: "Invalid define"}
	}
	body := make([]Object, len(form)-2)
	copy(body, form[2:])
	sc.Set(names[0], nil)
	sc.Set(names[0], &Closure{Params: names[1:], Body: body, Scope: sc})
	return nil, nil
}

// commandSet rebinds an existing visible variable. The value expression
// evaluates before the name resolves, and a name no scope binds is a
// NameError.
func commandSet(vm *VM, sc *Scope, form []Object) (Object, error) {
	if len(form) != 3 {
		return nil, SyntaxError{Msg: "Invalid set!"}
	}
	sym, ok := form[1].(*Symbol)
	if !ok {
		return nil, SyntaxError{Msg: "Invalid set!"}
	}
	v, err := vm.Eval(form[2], sc)
	if err != nil {
		return nil, err
	}
	owner := sc.owner(sym.Name)
	if owner == nil {
		return nil, nameErrorf("Variable doesn't yet exist: %s", sym.Name)
	}
	owner.vars[sym.Name] = v
	return nil, nil
}

// commandSetCar replaces the car of the pair a variable holds.
func commandSetCar(vm *VM, sc *Scope, form []Object) (Object, error) {
	p, v, err := vm.pairTarget(sc, form, "set-car!")
	if err != nil {
		return nil, err
	}
	p.Car = v
	return nil, nil
}

// commandSetCdr replaces the cdr of the pair a variable holds.
func commandSetCdr(vm *VM, sc *Scope, form []Object) (Object, error) {
	p, v, err := vm.pairTarget(sc, form, "set-cdr!")
	if err != nil {
		return nil, err
	}
	p.Cdr = v
	return nil, nil
}

// pairTarget resolves the shared shape of set-car! and set-cdr!: a
// symbol naming an existing variable that holds a pair, and a value
// expression that evaluates before the name resolves.
func (vm *VM) pairTarget(sc *Scope, form []Object, name string) (*Pair, Object, error) {
	if len(form) != 3 {
		return nil, nil, SyntaxError{Msg: "Invalid " + name}
	}
	sym, ok := form[1].(*Symbol)
	if !ok {
		return nil, nil, SyntaxError{Msg: "Invalid " + name}
	}
	v, err := vm.Eval(form[2], sc)
	if err != nil {
		return nil, nil, err
	}
	owner := sc.owner(sym.Name)
	if owner == nil {
		return nil, nil, nameErrorf("Variable doesn't yet exist: %s", sym.Name)
	}
	p, ok := owner.vars[sym.Name].(*Pair)
	if !ok {
		return nil, nil, runtimeErrorf("Cannot %s on a non-pair", name)
	}
	return p, v, nil
}

// commandLambda builds a closure over the current scope. The parameter
// list may be empty, but every element must be a symbol, and the body
// needs at least one expression.
func commandLambda(vm *VM, sc *Scope, form []Object) (Object, error) {
	if len(form) < 3 {
		return nil, SyntaxError{Msg: "Invalid lambda"}
	}
	names, err := symbolNames(form[1])
	if err != nil {
		return nil, SyntaxError{Msg: "Invalid lambda"}
	}
	body := make([]Object, len(form)-2)
	copy(body, form[2:])
	return &Closure{Params: names, Body: body, Scope: sc}, nil
}

// commandIf evaluates the condition and then exactly one branch. A
// false condition with no else branch yields the empty list.
func commandIf(vm *VM, sc *Scope, form []Object) (Object, error) {
	if len(form) != 3 && len(form) != 4 {
		return nil, SyntaxError{Msg: "Invalid if"}
	}
	cond, err := vm.Eval(form[1], sc)
	if err != nil {
		return nil, err
	}
	if AsBoolean(cond) {
		return vm.Eval(form[2], sc)
	}
	if len(form) == 4 {
		return vm.Eval(form[3], sc)
	}
	return nil, nil
}

// commandAnd evaluates operands left to right and yields the first
// falsy value, or the last value, or #t for no operands. Operands after
// the first falsy one do not evaluate.
func commandAnd(vm *VM, sc *Scope, form []Object) (Object, error) {
	for i := 1; i < len(form); i++ {
		v, err := vm.Eval(form[i], sc)
		if err != nil {
			return nil, err
		}
		form[i] = v
		if !AsBoolean(v) {
			return v, nil
		}
	}
	if len(form) > 1 {
		return form[len(form)-1], nil
	}
	return vm.True, nil
}

// commandOr evaluates operands left to right and yields the first
// truthy value, or the last value, or #f for no operands.
func commandOr(vm *VM, sc *Scope, form []Object) (Object, error) {
	for i := 1; i < len(form); i++ {
		v, err := vm.Eval(form[i], sc)
		if err != nil {
			return nil, err
		}
		form[i] = v
		if AsBoolean(v) {
			return v, nil
		}
	}
	if len(form) > 1 {
		return form[len(form)-1], nil
	}
	return vm.False, nil
}

// commandNot negates the truthiness of its single evaluated operand.
func commandNot(vm *VM, sc *Scope, form []Object) (Object, error) {
	if err := vm.evalOperands(sc, form); err != nil {
		return nil, err
	}
	if len(form) != 2 {
		return nil, failEvaluation(form)
	}
	return vm.NewBoolean(!AsBoolean(form[1])), nil
}
