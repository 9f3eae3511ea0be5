package eval

// Environments are persistent chains of single bindings. Extend never
// mutates: it returns a new link pointing at the old chain, so a
// closure can hold on to its defining environment while the caller
// keeps extending its own. The empty environment is the nil chain,
// which is valid as a method receiver.

type Environment struct {
	name  string
	value Value
	next  *Environment
}

// Empty returns the environment with no bindings.
func Empty() *Environment { return nil }

// Extend returns a new environment in which name is bound to value.
// The new binding shadows any older binding for the same name.
func (e *Environment) Extend(name string, value Value) *Environment {
	return &Environment{name: name, value: value, next: e}
}

// Lookup walks the chain from the newest binding toward the empty
// environment and returns the first match.
func (e *Environment) Lookup(name string) (Value, bool) {
	for ; e != nil; e = e.next {
		if e.name == name {
			return e.value, true
		}
	}
	return nil, false
}
