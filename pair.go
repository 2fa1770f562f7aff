package schemette

// A Pair is a mutable cell of two objects. Proper lists are chains of
// pairs whose final cdr is the empty list; a chain ending in any other
// object is an improper list. set-car! and set-cdr! can make a chain
// reach itself, and no list operation here guards against that.
type Pair struct {
	Car, Cdr Object
}

func (p *Pair) object() {}

// NewPair creates a Pair with the given fields.
func NewPair(car, cdr Object) *Pair {
	return &Pair{Car: car, Cdr: cdr}
}

// NewList builds a proper list of the given objects. No objects build
// the empty list.
func NewList(objects ...Object) Object {
	var list Object
	for i := len(objects) - 1; i >= 0; i-- {
		list = &Pair{Car: objects[i], Cdr: list}
	}
	return list
}

// IsList reports whether obj is a proper list. It walks the cdr chain,
// so it loops forever on a cyclic one.
func IsList(obj Object) bool {
	for obj != nil {
		p, ok := obj.(*Pair)
		if !ok {
			return false
		}
		obj = p.Cdr
	}
	return true
}

// commandCons builds a pair from exactly two evaluated operands.
func commandCons(vm *VM, sc *Scope, form []Object) (Object, error) {
	if err := vm.evalOperands(sc, form); err != nil {
		return nil, err
	}
	if len(form) != 3 {
		return nil, failEvaluation(form)
	}
	return &Pair{Car: form[1], Cdr: form[2]}, nil
}

// commandCar yields the first field of its pair operand.
func commandCar(vm *VM, sc *Scope, form []Object) (Object, error) {
	p, err := vm.pairOperand(sc, form)
	if err != nil {
		return nil, err
	}
	return p.Car, nil
}

// commandCdr yields the second field of its pair operand.
func commandCdr(vm *VM, sc *Scope, form []Object) (Object, error) {
	p, err := vm.pairOperand(sc, form)
	if err != nil {
		return nil, err
	}
	return p.Cdr, nil
}

// pairOperand evaluates the lone operand of car or cdr, which must be a
// pair.
func (vm *VM) pairOperand(sc *Scope, form []Object) (*Pair, error) {
	if err := vm.evalOperands(sc, form); err != nil {
		return nil, err
	}
	if len(form) != 2 {
		return nil, failEvaluation(form)
	}
	p, ok := form[1].(*Pair)
	if !ok {
		return nil, failEvaluation(form)
	}
	return p, nil
}

// commandList builds a proper list of all evaluated operands.
func commandList(vm *VM, sc *Scope, form []Object) (Object, error) {
	if err := vm.evalOperands(sc, form); err != nil {
		return nil, err
	}
	return NewList(form[1:]...), nil
}

// commandIsNull tests whether its evaluated operand is the empty list.
func commandIsNull(vm *VM, sc *Scope, form []Object) (Object, error) {
	if err := vm.evalOperands(sc, form); err != nil {
		return nil, err
	}
	if len(form) != 2 {
		return nil, failEvaluation(form)
	}
	return vm.NewBoolean(form[1] == nil), nil
}

// commandIsProperList tests whether its evaluated operand is a proper
// list.
func commandIsProperList(vm *VM, sc *Scope, form []Object) (Object, error) {
	if err := vm.evalOperands(sc, form); err != nil {
		return nil, err
	}
	if len(form) != 2 {
		return nil, failEvaluation(form)
	}
	return vm.NewBoolean(IsList(form[1])), nil
}

// commandListRef indexes a proper list. The index must be a number in
// [0, length).
func commandListRef(vm *VM, sc *Scope, form []Object) (Object, error) {
	if err := vm.evalOperands(sc, form); err != nil {
		return nil, err
	}
	if len(form) != 3 {
		return nil, failEvaluation(form)
	}
	list, err := unfold(form[1])
	if err != nil {
		return nil, failEvaluation(form)
	}
	n, ok := form[2].(*Number)
	if !ok || n.Value < 0 || n.Value >= int64(len(list)) {
		return nil, failEvaluation(form)
	}
	return list[n.Value], nil
}

// commandListTail drops the first n cells of a chain and yields the
// rest. The chain need not be proper beyond the dropped cells.
func commandListTail(vm *VM, sc *Scope, form []Object) (Object, error) {
	if err := vm.evalOperands(sc, form); err != nil {
		return nil, err
	}
	if len(form) != 3 {
		return nil, failEvaluation(form)
	}
	n, ok := form[2].(*Number)
	if !ok || n.Value < 0 {
		return nil, failEvaluation(form)
	}
	obj := form[1]
	for i := int64(0); i < n.Value; i++ {
		p, ok := obj.(*Pair)
		if !ok {
			return nil, failEvaluation(form)
		}
		obj = p.Cdr
	}
	return obj, nil
}
