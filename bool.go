package schemette

// A Boolean is one of the literals #t and #f. The VM holds one cell for
// each, so booleans compare equal exactly when they are the same cell.
type Boolean struct {
	Value bool
}

func (b *Boolean) object() {}

// NewBoolean returns the VM's singleton for the given truth value.
func (vm *VM) NewBoolean(value bool) *Boolean {
	if value {
		return vm.True
	}
	return vm.False
}

// String renders the boolean as #t or #f.
func (b *Boolean) String() string {
	if b.Value {
		return "#t"
	}
	return "#f"
}
