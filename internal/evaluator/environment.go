package evaluator

import "sort"

func NewEnvironment() *Environment {
	return &Environment{store: make(map[string]*Symbol)}
}

// Environment maps names to symbols. It is shared by reference: an object
// value holds its members in an Environment, and every alias of that value
// sees the same one.
type Environment struct {
	store map[string]*Symbol
}

// Resolve returns the entry for name, creating an undeclared, unassigned
// one if none exists. It never fails.
func (e *Environment) Resolve(name string) *Symbol {
	sym, ok := e.store[name]
	if !ok {
		sym = &Symbol{}
		e.store[name] = sym
	}
	return sym
}

// Get returns the entry for name without creating it.
func (e *Environment) Get(name string) (*Symbol, bool) {
	sym, ok := e.store[name]
	return sym, ok
}

// Declare replaces any entry for name with a fresh declared symbol.
func (e *Environment) Declare(name string) *Symbol {
	sym := &Symbol{Declared: true}
	e.store[name] = sym
	return sym
}

func (e *Environment) Len() int {
	if e == nil {
		return 0
	}
	return len(e.store)
}

// Names returns the declared names in sorted order.
func (e *Environment) Names() []string {
	names := make([]string, 0, len(e.store))
	for k, v := range e.store {
		if v.Declared {
			names = append(names, k)
		}
	}
	sort.Strings(names)
	return names
}
