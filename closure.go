package schemette

// A Closure is a procedure: parameter names, one or more body
// expressions, and the scope that was current when the lambda form
// evaluated. The captured scope is held strongly, so whatever the
// closure can still read stays reachable for as long as the closure
// does.
type Closure struct {
	Params []string
	Body   []Object
	Scope  *Scope
}

func (c *Closure) object() {}

// Call applies the closure to already-evaluated arguments. The argument
// count must match the parameter count exactly. Parameters bind in a
// fresh frame under the captured scope, and the body expressions
// evaluate there in order; the last one's value is the result.
func (c *Closure) Call(vm *VM, args []Object) (Object, error) {
	if len(args) != len(c.Params) {
		return nil, runtimeErrorf("Invalid number of arguments for lambda: %s", ToText(c))
	}
	sc := NewScope(c.Scope)
	for i, name := range c.Params {
		sc.Define(name, args[i])
	}
	var result Object
	for _, expr := range c.Body {
		r, err := vm.Eval(expr, sc)
		if err != nil {
			return nil, err
		}
		result = r
	}
	return result, nil
}
