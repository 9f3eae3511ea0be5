package parser

import "lam/term"

// Parse converts a structured term into a syntax tree.
//
// Compound terms are matched against the special forms in order, and
// the 2-element application shape comes last: the order is part of the
// grammar. In particular (let1 x) is an application of the symbol let1
// to x, not a malformed binding form, because only the 3-element let1
// shape is a special form at all.
func Parse(t term.Term) (Expr, error) {
	switch t := t.(type) {
	case term.Number:
		return &Number{Value: t.Value}, nil
	case term.Boolean:
		return &Boolean{Value: bool(t)}, nil
	case term.Symbol:
		return &Ident{Name: string(t)}, nil
	case *term.List:
		return parseList(t)
	}
	return nil, errorf(t, "unrecognized term")
}

func parseList(list *term.List) (Expr, error) {
	items := list.Items
	switch {
	case len(items) == 3 && isSymbol(items[0], "+"):
		left, err := Parse(items[1])
		if err != nil {
			return nil, err
		}
		right, err := Parse(items[2])
		if err != nil {
			return nil, err
		}
		return &Add{Left: left, Right: right}, nil
	case len(items) == 4 && isSymbol(items[0], "if"):
		cond, err := Parse(items[1])
		if err != nil {
			return nil, err
		}
		then, err := Parse(items[2])
		if err != nil {
			return nil, err
		}
		els, err := Parse(items[3])
		if err != nil {
			return nil, err
		}
		return &If{Cond: cond, Then: then, Else: els}, nil
	case len(items) == 3 && isSymbol(items[0], "let1"):
		return parseLet(list)
	case len(items) == 3 && isSymbol(items[0], "fn"):
		return parseFn(list)
	case len(items) == 2:
		callee, err := Parse(items[0])
		if err != nil {
			return nil, err
		}
		arg, err := Parse(items[1])
		if err != nil {
			return nil, err
		}
		return &Call{Callee: callee, Arg: arg}, nil
	}
	return nil, errorf(list, "unrecognized form")
}

// let1 → (let1 (name init) body)
func parseLet(list *term.List) (Expr, error) {
	binding, ok := list.Items[1].(*term.List)
	if !ok || len(binding.Items) != 2 {
		return nil, errorf(list.Items[1], "let1 expects a (name init) binding")
	}
	name, ok := binding.Items[0].(term.Symbol)
	if !ok {
		return nil, errorf(binding.Items[0], "let1 binding name must be a symbol")
	}
	init, err := Parse(binding.Items[1])
	if err != nil {
		return nil, err
	}
	body, err := Parse(list.Items[2])
	if err != nil {
		return nil, err
	}
	return &Let{Name: string(name), Init: init, Body: body}, nil
}

// fn → (fn (formal) body)
func parseFn(list *term.List) (Expr, error) {
	formals, ok := list.Items[1].(*term.List)
	if !ok || len(formals.Items) != 1 {
		return nil, errorf(list.Items[1], "fn expects exactly one formal")
	}
	formal, ok := formals.Items[0].(term.Symbol)
	if !ok {
		return nil, errorf(formals.Items[0], "fn formal must be a symbol")
	}
	body, err := Parse(list.Items[2])
	if err != nil {
		return nil, err
	}
	return &Fn{Formal: string(formal), Body: body}, nil
}

func isSymbol(t term.Term, name string) bool {
	s, ok := t.(term.Symbol)
	return ok && string(s) == name
}
