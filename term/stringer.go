package term

import (
	"bytes"
	"fmt"
)

// Terms print as parenthesized prefix notation, so a read/print
// round-trip is the identity up to whitespace.

func (t Number) String() string { return fmt.Sprint(t.Value) }

func (t Boolean) String() string {
	if t {
		return "#t"
	}
	return "#f"
}

func (t Symbol) String() string { return string(t) }

func (t *List) String() string {
	var buf bytes.Buffer
	buf.WriteString("(")
	for i, item := range t.Items {
		if i > 0 {
			buf.WriteString(" ")
		}
		buf.WriteString(item.String())
	}
	buf.WriteString(")")
	return buf.String()
}
