package term

// This package implements the structured-term surface consumed by the
// parser: atoms (numbers, booleans, symbols) and lists. The reader in
// reader.go is a generic data-notation reader -- it knows nothing about
// the language's special forms.

import "github.com/nukata/goarith"

type Term interface {
	String() string
	term()
}

type Number struct{ Value goarith.Number }
type Boolean bool
type Symbol string
type List struct{ Items []Term }

func (Number) term()  {}
func (Boolean) term() {}
func (Symbol) term()  {}
func (*List) term()   {}
