package eval

// This file contains the runtime representations of lam values. There
// are exactly three kinds: numbers, booleans, and function values.
// Failures are not values -- see error.go.

import (
	"lam/parser"

	"github.com/nukata/goarith"
)

//go:generate stringer -type=ValueType

type ValueType uint8

const (
	_ = ValueType(iota)
	VT_NUMBER
	VT_BOOLEAN
	VT_FUNCTION
)

type Value interface {
	Type() ValueType
	String() string
}

type Number struct{ Value goarith.Number }
type Boolean bool

// Function is a closure: a formal parameter and a body together with
// the environment in effect where the fn expression was evaluated. The
// closure environment is shared, not copied, and the persistent chain
// in environment.go keeps it alive for as long as the value is.
type Function struct {
	Formal  string
	Body    parser.Expr
	Closure *Environment
}

func (v Number) Type() ValueType    { return VT_NUMBER }
func (v Boolean) Type() ValueType   { return VT_BOOLEAN }
func (v *Function) Type() ValueType { return VT_FUNCTION }

// ==========
// Singletons
// ==========

var (
	TRUE  = Boolean(true)
	FALSE = Boolean(false)
)

func newBoolean(b bool) Value {
	if b {
		return TRUE
	}
	return FALSE
}
