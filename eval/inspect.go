package eval

// String representations shown by the repl.

import "fmt"

func (v Number) String() string { return fmt.Sprint(v.Value) }

func (v Boolean) String() string {
	if v {
		return "#t"
	}
	return "#f"
}

func (v *Function) String() string {
	return fmt.Sprintf("[Fn (%s) %p]", v.Formal, v)
}
