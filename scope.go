package schemette

// A Scope is one frame of the environment chain: a mutable table of
// bindings plus a link to the enclosing frame. Closures keep their
// defining scope reachable, and an active call keeps its frame
// reachable, so frame lifetime is ordinary garbage collection with no
// further bookkeeping.
type Scope struct {
	parent *Scope
	vars   map[string]Object
}

// NewScope creates an empty frame whose lookups continue in parent.
// The global frame has a nil parent.
func NewScope(parent *Scope) *Scope {
	return &Scope{parent: parent, vars: map[string]Object{}}
}

// owner returns the nearest frame that binds name, or nil if no frame
// in the chain does.
func (sc *Scope) owner(name string) *Scope {
	for s := sc; s != nil; s = s.parent {
		if _, ok := s.vars[name]; ok {
			return s
		}
	}
	return nil
}

// Get resolves name through the chain, innermost frame first. An
// unbound name is a NameError.
func (sc *Scope) Get(name string) (Object, error) {
	if s := sc.owner(name); s != nil {
		return s.vars[name], nil
	}
	return nil, nameErrorf("No such variable: %s", name)
}

// Set rebinds the nearest visible binding of name, or creates the
// binding in this frame when no frame in the chain has one. This is the
// behavior of define: it can rebind an enclosing variable that is
// already visible, and otherwise introduces a local one.
func (sc *Scope) Set(name string, value Object) {
	if s := sc.owner(name); s != nil {
		s.vars[name] = value
		return
	}
	sc.vars[name] = value
}

// Define binds name in this frame unconditionally, shadowing any
// enclosing binding of the same name. Parameter binding uses this.
func (sc *Scope) Define(name string, value Object) {
	sc.vars[name] = value
}
