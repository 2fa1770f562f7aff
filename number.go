package schemette

import "strconv"

// A Number is an exact signed integer. Numbers should be considered
// immutable; small values are shared between uses.
type Number struct {
	Value int64
}

func (n *Number) object() {}

// NewNumber creates a Number with the given value. If the value is
// memoized by the VM, the shared cell is returned; otherwise a new cell
// is allocated.
func (vm *VM) NewNumber(value int64) *Number {
	if x, ok := vm.NumberMemo[value]; ok {
		return x
	}
	return &Number{Value: value}
}

// String renders the number in decimal.
func (n *Number) String() string {
	return strconv.FormatInt(n.Value, 10)
}

// Add sums two numbers. Operands of any other kind are a RuntimeError
// naming both printed operands. Overflow wraps.
func (vm *VM) Add(l, r Object) (Object, error) {
	ln, rn, err := numberOperands("add", l, r)
	if err != nil {
		return nil, err
	}
	return vm.NewNumber(ln.Value + rn.Value), nil
}

// Subtract subtracts the right number from the left, with the same
// domain as Add.
func (vm *VM) Subtract(l, r Object) (Object, error) {
	ln, rn, err := numberOperands("subtract", l, r)
	if err != nil {
		return nil, err
	}
	return vm.NewNumber(ln.Value - rn.Value), nil
}

// Multiply multiplies two numbers, with the same domain as Add.
func (vm *VM) Multiply(l, r Object) (Object, error) {
	ln, rn, err := numberOperands("multiply", l, r)
	if err != nil {
		return nil, err
	}
	return vm.NewNumber(ln.Value * rn.Value), nil
}

// Divide divides the left number by the right, truncating toward zero.
// A zero divisor is the same RuntimeError as a non-number operand.
func (vm *VM) Divide(l, r Object) (Object, error) {
	ln, rn, err := numberOperands("divide", l, r)
	if err != nil {
		return nil, err
	}
	if rn.Value == 0 {
		return nil, runtimeErrorf("Cannot divide: %s and %s", ToText(l), ToText(r))
	}
	return vm.NewNumber(ln.Value / rn.Value), nil
}

// numberOperands checks that both operands of an arithmetic operation
// are numbers.
func numberOperands(verb string, l, r Object) (*Number, *Number, error) {
	ln, lok := l.(*Number)
	rn, rok := r.(*Number)
	if !lok || !rok {
		return nil, nil, runtimeErrorf("Cannot %s: %s and %s", verb, ToText(l), ToText(r))
	}
	return ln, rn, nil
}

// Less reports whether a orders before b. Ordering is defined only
// between numbers; any other pairing is a RuntimeError naming both
// printed operands.
func Less(a, b Object) (bool, error) {
	an, aok := a.(*Number)
	bn, bok := b.(*Number)
	if !aok || !bok {
		return false, runtimeErrorf("Cannot compare: %s and %s", ToText(a), ToText(b))
	}
	return an.Value < bn.Value, nil
}

// LessOrEqual reports whether a orders before or equals b, with the same
// domain as Less.
func LessOrEqual(a, b Object) (bool, error) {
	less, err := Less(a, b)
	if err != nil {
		return false, err
	}
	return less || Equal(a, b), nil
}

// Greater reports whether b orders before a, with the same domain as
// Less.
func Greater(a, b Object) (bool, error) {
	return Less(b, a)
}

// GreaterOrEqual reports whether b orders before or equals a, with the
// same domain as Less.
func GreaterOrEqual(a, b Object) (bool, error) {
	return LessOrEqual(b, a)
}

// commandAdd sums all evaluated operands. No operands sum to 0.
func commandAdd(vm *VM, sc *Scope, form []Object) (Object, error) {
	if err := vm.evalOperands(sc, form); err != nil {
		return nil, err
	}
	result := Object(vm.NewNumber(0))
	for _, v := range form[1:] {
		r, err := vm.Add(result, v)
		if err != nil {
			return nil, err
		}
		result = r
	}
	return result, nil
}

// commandSubtract folds subtraction left over at least one evaluated
// operand. A single operand yields itself unchanged.
func commandSubtract(vm *VM, sc *Scope, form []Object) (Object, error) {
	if err := vm.evalOperands(sc, form); err != nil {
		return nil, err
	}
	if len(form) <= 1 {
		return nil, failEvaluation(form)
	}
	result := form[1]
	for _, v := range form[2:] {
		r, err := vm.Subtract(result, v)
		if err != nil {
			return nil, err
		}
		result = r
	}
	return result, nil
}

// commandMultiply multiplies all evaluated operands. No operands
// multiply to 1.
func commandMultiply(vm *VM, sc *Scope, form []Object) (Object, error) {
	if err := vm.evalOperands(sc, form); err != nil {
		return nil, err
	}
	result := Object(vm.NewNumber(1))
	for _, v := range form[1:] {
		r, err := vm.Multiply(result, v)
		if err != nil {
			return nil, err
		}
		result = r
	}
	return result, nil
}

// commandDivide folds division left over at least one evaluated
// operand. A single operand yields itself unchanged.
func commandDivide(vm *VM, sc *Scope, form []Object) (Object, error) {
	if err := vm.evalOperands(sc, form); err != nil {
		return nil, err
	}
	if len(form) <= 1 {
		return nil, failEvaluation(form)
	}
	result := form[1]
	for _, v := range form[2:] {
		r, err := vm.Divide(result, v)
		if err != nil {
			return nil, err
		}
		result = r
	}
	return result, nil
}

// evalNumberOperands evaluates every operand in place, requiring each
// to be a Number as it lands. Operands after the first offender do not
// evaluate.
func (vm *VM) evalNumberOperands(sc *Scope, form []Object) error {
	for i := 1; i < len(form); i++ {
		v, err := vm.Eval(form[i], sc)
		if err != nil {
			return err
		}
		form[i] = v
		if !isNumber(v) {
			return failEvaluation(form)
		}
	}
	return nil
}

// chainCompare applies rel to each consecutive pair of evaluated number
// operands. Fewer than two operands compare vacuously true.
func (vm *VM) chainCompare(sc *Scope, form []Object, rel func(l, r Object) (bool, error)) (Object, error) {
	if err := vm.evalNumberOperands(sc, form); err != nil {
		return nil, err
	}
	for i := 2; i < len(form); i++ {
		ok, err := rel(form[i-1], form[i])
		if err != nil {
			return nil, err
		}
		if !ok {
			return vm.False, nil
		}
	}
	return vm.True, nil
}

// commandEqual tests every evaluated number operand against the first.
func commandEqual(vm *VM, sc *Scope, form []Object) (Object, error) {
	if err := vm.evalNumberOperands(sc, form); err != nil {
		return nil, err
	}
	for i := 2; i < len(form); i++ {
		if !Equal(form[1], form[i]) {
			return vm.False, nil
		}
	}
	return vm.True, nil
}

func commandLess(vm *VM, sc *Scope, form []Object) (Object, error) {
	return vm.chainCompare(sc, form, Less)
}

func commandLessOrEqual(vm *VM, sc *Scope, form []Object) (Object, error) {
	return vm.chainCompare(sc, form, LessOrEqual)
}

func commandGreater(vm *VM, sc *Scope, form []Object) (Object, error) {
	return vm.chainCompare(sc, form, Greater)
}

func commandGreaterOrEqual(vm *VM, sc *Scope, form []Object) (Object, error) {
	return vm.chainCompare(sc, form, GreaterOrEqual)
}

// extremum folds the evaluated number operands, keeping the one for
// which rel holds against the best so far. Ties keep the earlier
// operand.
func (vm *VM) extremum(sc *Scope, form []Object, rel func(l, r Object) (bool, error)) (Object, error) {
	if err := vm.evalOperands(sc, form); err != nil {
		return nil, err
	}
	if len(form) <= 1 {
		return nil, failEvaluation(form)
	}
	for _, v := range form[1:] {
		if !isNumber(v) {
			return nil, failEvaluation(form)
		}
	}
	result := form[1]
	for _, v := range form[2:] {
		ok, err := rel(v, result)
		if err != nil {
			return nil, err
		}
		if ok {
			result = v
		}
	}
	return result, nil
}

// commandMin yields the least of at least one evaluated number operand.
func commandMin(vm *VM, sc *Scope, form []Object) (Object, error) {
	return vm.extremum(sc, form, Less)
}

// commandMax yields the greatest of at least one evaluated number
// operand.
func commandMax(vm *VM, sc *Scope, form []Object) (Object, error) {
	return vm.extremum(sc, form, Greater)
}

// commandAbs yields the absolute value of its single evaluated number
// operand.
func commandAbs(vm *VM, sc *Scope, form []Object) (Object, error) {
	if err := vm.evalOperands(sc, form); err != nil {
		return nil, err
	}
	if len(form) != 2 {
		return nil, failEvaluation(form)
	}
	n, ok := form[1].(*Number)
	if !ok {
		return nil, failEvaluation(form)
	}
	if n.Value >= 0 {
		return n, nil
	}
	return vm.NewNumber(-n.Value), nil
}
