package parser

import (
	"bytes"
	"fmt"
)

// Nodes print back as the surface form they were parsed from.

func (node *Number) String() string { return fmt.Sprint(node.Value) }

func (node *Boolean) String() string {
	if node.Value {
		return "#t"
	}
	return "#f"
}

func (node *Ident) String() string { return node.Name }

func (node *Add) String() string {
	var buf bytes.Buffer
	buf.WriteString("(+ ")
	buf.WriteString(node.Left.String())
	buf.WriteString(" ")
	buf.WriteString(node.Right.String())
	buf.WriteString(")")
	return buf.String()
}

func (node *If) String() string {
	var buf bytes.Buffer
	buf.WriteString("(if ")
	buf.WriteString(node.Cond.String())
	buf.WriteString(" ")
	buf.WriteString(node.Then.String())
	buf.WriteString(" ")
	buf.WriteString(node.Else.String())
	buf.WriteString(")")
	return buf.String()
}

func (node *Let) String() string {
	var buf bytes.Buffer
	buf.WriteString("(let1 (")
	buf.WriteString(node.Name)
	buf.WriteString(" ")
	buf.WriteString(node.Init.String())
	buf.WriteString(") ")
	buf.WriteString(node.Body.String())
	buf.WriteString(")")
	return buf.String()
}

func (node *Fn) String() string {
	var buf bytes.Buffer
	buf.WriteString("(fn (")
	buf.WriteString(node.Formal)
	buf.WriteString(") ")
	buf.WriteString(node.Body.String())
	buf.WriteString(")")
	return buf.String()
}

func (node *Call) String() string {
	var buf bytes.Buffer
	buf.WriteString("(")
	buf.WriteString(node.Callee.String())
	buf.WriteString(" ")
	buf.WriteString(node.Arg.String())
	buf.WriteString(")")
	return buf.String()
}
