package eval

// Implements the actual evaluator for the language.

import (
	"fmt"

	"lam/parser"
	"lam/term"
)

// Eval reduces a syntax tree to a value under the given environment.
// It is a structural recursion over the tree, so execution depth is
// bounded by the host stack: deeply nested input can exhaust it.
// Operands evaluate left to right.
func Eval(node parser.Expr, env *Environment) (Value, error) {
	switch node := node.(type) {
	case *parser.Number:
		return Number{Value: node.Value}, nil
	case *parser.Boolean:
		return newBoolean(node.Value), nil
	case *parser.Ident:
		v, ok := env.Lookup(node.Name)
		if !ok {
			return nil, errorf(UNBOUND_VARIABLE, "%s", node.Name)
		}
		return v, nil
	case *parser.Add:
		return evalAdd(node, env)
	case *parser.If:
		return evalIf(node, env)
	case *parser.Let:
		init, err := Eval(node.Init, env)
		if err != nil {
			return nil, err
		}
		// the extended environment is local to the body; the caller's
		// chain is untouched.
		return Eval(node.Body, env.Extend(node.Name, init))
	case *parser.Fn:
		// capture the defining-time environment, not the call-time one.
		return &Function{Formal: node.Formal, Body: node.Body, Closure: env}, nil
	case *parser.Call:
		return evalCall(node, env)
	}
	panic(fmt.Sprintf("unhandled node: %#+v", node))
}

func evalAdd(node *parser.Add, env *Environment) (Value, error) {
	left, err := Eval(node.Left, env)
	if err != nil {
		return nil, err
	}
	right, err := Eval(node.Right, env)
	if err != nil {
		return nil, err
	}
	x, ok := left.(Number)
	if !ok {
		return nil, errorf(TYPE_MISMATCH, "+ operand must be a number, got %s", left)
	}
	y, ok := right.(Number)
	if !ok {
		return nil, errorf(TYPE_MISMATCH, "+ operand must be a number, got %s", right)
	}
	return Number{Value: x.Value.Add(y.Value)}, nil
}

func evalIf(node *parser.If, env *Environment) (Value, error) {
	cond, err := Eval(node.Cond, env)
	if err != nil {
		return nil, err
	}
	// numbers are not truthy; the test must be an actual boolean.
	b, ok := cond.(Boolean)
	if !ok {
		return nil, errorf(TYPE_MISMATCH, "if test must be a boolean, got %s", cond)
	}
	if b {
		return Eval(node.Then, env)
	}
	return Eval(node.Else, env)
}

func evalCall(node *parser.Call, env *Environment) (Value, error) {
	callee, err := Eval(node.Callee, env)
	if err != nil {
		return nil, err
	}
	// the callee is checked before the argument runs, so a bad callee
	// wins over a failing argument.
	fn, ok := callee.(*Function)
	if !ok {
		return nil, errorf(NOT_A_FUNCTION, "cannot call %s", callee)
	}
	arg, err := Eval(node.Arg, env)
	if err != nil {
		return nil, err
	}
	// the body sees only the closure plus the fresh argument binding;
	// the call-site environment plays no further role.
	return Eval(fn.Body, fn.Closure.Extend(fn.Formal, arg))
}

// Run parses a term and evaluates it under the empty environment.
func Run(t term.Term) (Value, error) {
	expr, err := parser.Parse(t)
	if err != nil {
		return nil, err
	}
	return Eval(expr, Empty())
}
