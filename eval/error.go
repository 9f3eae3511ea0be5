package eval

import "fmt"

type ErrorKind uint8

const (
	_ = ErrorKind(iota)
	UNBOUND_VARIABLE
	TYPE_MISMATCH
	NOT_A_FUNCTION
)

func (k ErrorKind) String() string {
	switch k {
	case UNBOUND_VARIABLE:
		return "unbound variable"
	case TYPE_MISMATCH:
		return "type mismatch"
	case NOT_A_FUNCTION:
		return "not a function"
	}
	return fmt.Sprintf("ErrorKind(%d)", uint8(k))
}

// Error is an evaluation failure. Evaluation stops at the first one;
// there is no error value in the language itself, and no recovery.
type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string { return fmt.Sprintf("%s: %s", e.Kind, e.Message) }

func errorf(kind ErrorKind, s string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(s, args...)}
}
