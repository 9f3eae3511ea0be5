package main

// implements the lam repl and file runner

import (
	"fmt"
	"os"
	"strings"

	"lam/eval"
	"lam/term"

	"github.com/chzyer/readline"
)

var VERSION string
var LOGO = `
      \     |
      /\    | lam language
     /  \   | version: $VERSION
`

func sliceVersion(v string) string {
	m := 10
	if len(v) < 10 {
		m = len(v)
	}
	return v[0:m]
}

// runSource reads one term from src and evaluates it under an empty
// environment.
func runSource(src string) (eval.Value, error) {
	t, err := term.ReadString(src)
	if err != nil {
		return nil, err
	}
	return eval.Run(t)
}

func runFile(path string) int {
	src, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	v, err := runSource(string(src))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	fmt.Println(v)
	return 0
}

func repl() {
	fmt.Println(strings.Replace(LOGO, "$VERSION", sliceVersion(VERSION), 1))
	rl, err := readline.New("> ")
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err != nil {
			break
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		v, err := runSource(line)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			continue
		}
		fmt.Println(v)
	}
}

func main() {
	if len(os.Args) > 1 {
		os.Exit(runFile(os.Args[1]))
	}
	repl()
}
