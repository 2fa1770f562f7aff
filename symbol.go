package schemette

// A Symbol is an identifier. Symbols are immutable and compare by name,
// so two cells with the same name are the same value.
type Symbol struct {
	Name string
}

func (s *Symbol) object() {}

// NewSymbol creates a Symbol with the given name.
func NewSymbol(name string) *Symbol {
	return &Symbol{Name: name}
}
