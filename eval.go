package schemette

// unfold flattens a form into its elements, operator first. The chain
// must be a proper list; an improper tail is a RuntimeError naming the
// tail.
func unfold(obj Object) ([]Object, error) {
	var form []Object
	for obj != nil {
		p, ok := obj.(*Pair)
		if !ok {
			return nil, runtimeErrorf("Expected list, but got: %s", ToText(obj))
		}
		form = append(form, p.Car)
		obj = p.Cdr
	}
	return form, nil
}

// Eval evaluates an object in a scope. Numbers and booleans evaluate to
// themselves, symbols resolve through the scope chain, and pairs
// evaluate as forms: if the operator position holds the name of a
// builtin, the builtin controls its own operand evaluation; otherwise
// the operator expression must evaluate to a closure, which applies to
// the evaluated operands. Anything else, including the empty list and a
// bare closure, cannot be evaluated.
func (vm *VM) Eval(obj Object, sc *Scope) (Object, error) {
	switch o := obj.(type) {
	case *Number, *Boolean:
		return obj, nil
	case *Symbol:
		return sc.Get(o.Name)
	case *Pair:
		form, err := unfold(obj)
		if err != nil {
			return nil, err
		}
		if sym, ok := form[0].(*Symbol); ok {
			if cmd, ok := commands[sym.Name]; ok {
				T().Debugf("dispatch builtin %s", sym.Name)
				return cmd(vm, sc, form)
			}
		}
		head, err := vm.Eval(form[0], sc)
		if err != nil {
			return nil, err
		}
		if cl, ok := head.(*Closure); ok {
			args := form[1:]
			for i, a := range args {
				v, err := vm.Eval(a, sc)
				if err != nil {
					return nil, err
				}
				args[i] = v
			}
			T().Debugf("apply closure with %d args", len(args))
			return cl.Call(vm, args)
		}
	}
	return nil, runtimeErrorf("Cannot evaluate: %s", ToText(obj))
}
