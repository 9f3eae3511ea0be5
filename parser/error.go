package parser

import (
	"fmt"

	"lam/term"
)

// ParseError is returned when a term matches none of the recognized
// shapes, or matches a special form with the wrong arity or sub-shapes.
// It keeps the offending (sub-)term for diagnostics.
type ParseError struct {
	Term    term.Term
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error: %s: %s", e.Message, e.Term)
}

func errorf(t term.Term, s string, args ...interface{}) *ParseError {
	return &ParseError{Term: t, Message: fmt.Sprintf(s, args...)}
}
