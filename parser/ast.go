package parser

import "github.com/nukata/goarith"

// Expr is implemented by all syntax nodes. Trees are immutable once
// built; the evaluator never modifies them.
type Expr interface {
	String() string
	expr()
}

type Number struct{ Value goarith.Number }
type Boolean struct{ Value bool }
type Ident struct{ Name string }

type Add struct {
	Left  Expr
	Right Expr
}

type If struct {
	Cond Expr
	Then Expr
	Else Expr
}

type Let struct {
	Name string
	Init Expr
	Body Expr
}

type Fn struct {
	Formal string
	Body   Expr
}

type Call struct {
	Callee Expr
	Arg    Expr
}

func (*Number) expr()  {}
func (*Boolean) expr() {}
func (*Ident) expr()   {}
func (*Add) expr()     {}
func (*If) expr()      {}
func (*Let) expr()     {}
func (*Fn) expr()      {}
func (*Call) expr()    {}
