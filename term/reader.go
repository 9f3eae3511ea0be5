package term

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/nukata/goarith"
)

// Error represents a read error, pointing at the byte offset of the
// offending token.
type Error struct {
	Pos     int
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("read error at offset %d: %s", e.Pos, e.Message)
}

type token struct {
	pos  int
	text string
}

// scan splits src into paren and atom tokens. whitespace separates
// atoms, and `;` starts a comment running to the end of the line.
func scan(src string) []token {
	tokens := []token{}
	for pos := 0; pos < len(src); {
		c := src[pos]
		switch {
		case c == ' ' || c == '\t' || c == '\r' || c == '\n':
			pos++
		case c == ';':
			for pos < len(src) && src[pos] != '\n' {
				pos++
			}
		case c == '(' || c == ')':
			tokens = append(tokens, token{pos, string(c)})
			pos++
		default:
			end := pos + 1
			for end < len(src) && !isDelimiter(src[end]) {
				end++
			}
			tokens = append(tokens, token{pos, src[pos:end]})
			pos = end
		}
	}
	return tokens
}

func isDelimiter(c byte) bool {
	switch c {
	case ' ', '\t', '\r', '\n', '(', ')', ';':
		return true
	}
	return false
}

type reader struct {
	tokens []token
	curr   int
}

func (r *reader) isAtEnd() bool { return r.curr >= len(r.tokens) }
func (r *reader) peek() token   { return r.tokens[r.curr] }
func (r *reader) consume() token {
	tok := r.tokens[r.curr]
	r.curr++
	return tok
}

// ReadString reads exactly one term from src. Anything left over after
// the term (other than whitespace and comments) is an error.
func ReadString(src string) (Term, error) {
	r := &reader{tokens: scan(src)}
	if r.isAtEnd() {
		return nil, &Error{0, "expected a term, got end of input"}
	}
	t, err := r.readTerm()
	if err != nil {
		return nil, err
	}
	if !r.isAtEnd() {
		tok := r.peek()
		return nil, &Error{tok.pos, fmt.Sprintf("unexpected trailing input: %s", tok.text)}
	}
	return t, nil
}

func (r *reader) readTerm() (Term, error) {
	tok := r.consume()
	switch tok.text {
	case "(":
		items := []Term{}
		for {
			if r.isAtEnd() {
				return nil, &Error{tok.pos, "unclosed ("}
			}
			if r.peek().text == ")" {
				r.consume()
				return &List{items}, nil
			}
			item, err := r.readTerm()
			if err != nil {
				return nil, err
			}
			items = append(items, item)
		}
	case ")":
		return nil, &Error{tok.pos, "unmatched )"}
	}
	return readAtom(tok)
}

func readAtom(tok token) (Term, error) {
	switch tok.text {
	case "#t":
		return Boolean(true), nil
	case "#f":
		return Boolean(false), nil
	}
	if n, ok := readNumber(tok.text); ok {
		return Number{n}, nil
	}
	// reserve the # namespace so typos like #true do not silently
	// become symbols.
	if strings.HasPrefix(tok.text, "#") {
		return nil, &Error{tok.pos, fmt.Sprintf("unknown atom: %s", tok.text)}
	}
	return Symbol(tok.text), nil
}

func readNumber(s string) (goarith.Number, bool) {
	if z, ok := new(big.Int).SetString(s, 10); ok {
		return goarith.AsNumber(z), true
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return goarith.AsNumber(f), true
	}
	return nil, false
}
