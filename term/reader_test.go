package term_test

import (
	"testing"

	"lam/term"
)

func TestReadString(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"0", "0"},
		{"  123 ", "123"},
		{"-7", "-7"},
		{"2.5", "2.5"},
		{"#t", "#t"},
		{"#f", "#f"},
		{"x", "x"},
		{"let1", "let1"},
		{"+", "+"},
		{"()", "()"},
		{"(+ 1 (+ 2 3))", "(+ 1 (+ 2 3))"},
		{"( fn ( x )  x )", "(fn (x) x)"},
		{"(if #t 1 2) ; trailing comment", "(if #t 1 2)"},
		{"; leading comment\n(let1 (x 1) x)", "(let1 (x 1) x)"},
	}
	for i, test := range tests {
		tm, err := term.ReadString(test.input)
		if err != nil {
			t.Errorf("tests[%d] (%q) failed: %s", i, test.input, err)
			continue
		}
		if tm.String() != test.expected {
			t.Errorf("tests[%d] (%q)", i, test.input)
			t.Errorf("expected=%q, got=%q", test.expected, tm.String())
		}
	}
}

func TestReadStringAtoms(t *testing.T) {
	tm, err := term.ReadString("(x 1 #t)")
	if err != nil {
		t.Fatal(err)
	}
	list, ok := tm.(*term.List)
	if !ok {
		t.Fatalf("expected a list, got %T", tm)
	}
	if len(list.Items) != 3 {
		t.Fatalf("expected 3 items, got %d", len(list.Items))
	}
	if _, ok := list.Items[0].(term.Symbol); !ok {
		t.Errorf("items[0]: expected a symbol, got %T", list.Items[0])
	}
	if _, ok := list.Items[1].(term.Number); !ok {
		t.Errorf("items[1]: expected a number, got %T", list.Items[1])
	}
	if b, ok := list.Items[2].(term.Boolean); !ok || !bool(b) {
		t.Errorf("items[2]: expected #t, got %s", list.Items[2])
	}
}

func TestReadStringBad(t *testing.T) {
	badInputs := []string{
		"",
		"   ; just a comment",
		"(",
		")",
		"(+ 1 2",
		"(+ 1 2))",
		"1 2",
		"#maybe",
	}
	for i, input := range badInputs {
		_, err := term.ReadString(input)
		if err == nil {
			t.Errorf("tests[%d] (%q) failed", i, input)
			t.Errorf("expected an error, got none")
			continue
		}
		t.Logf("%s", err)
	}
}
