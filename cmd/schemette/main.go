// Command schemette is a REPL and script runner for a small Scheme
// dialect.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/peterh/liner"

	"github.com/mkvt/schemette"
)

const historyFile = ".schemette_history"

const helpText = `REPL commands:
  :help    Show this help
  :reset   Start over with a fresh global scope
  :quit    Exit the REPL
`

var (
	expr  = flag.String("e", "", "evaluate `expr` and exit")
	dump  = flag.Bool("dump", false, "print parse trees instead of evaluating")
	debug = flag.Bool("debug", false, "trace evaluation steps")
)

func main() {
	flag.Parse()
	gtrace.SyntaxTracer = gologadapter.New()
	if *debug {
		gtrace.SyntaxTracer.SetTraceLevel(tracing.LevelDebug)
	}

	vm := schemette.NewVM()
	if *expr != "" {
		if err := interpret(vm, *expr); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}
	if flag.NArg() > 0 {
		for _, name := range flag.Args() {
			src, err := os.ReadFile(name)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			if err := interpret(vm, string(src)); err != nil {
				fmt.Fprintf(os.Stderr, "%s: %v\n", name, err)
				os.Exit(1)
			}
		}
		return
	}
	repl(vm)
}

// interpret evaluates src in vm and prints the result. With -dump it
// prints the parse trees instead.
func interpret(vm *schemette.VM, src string) error {
	if *dump {
		forms, err := vm.Parse(strings.NewReader(src))
		if err != nil {
			return err
		}
		spew.Dump(forms)
		return nil
	}
	result, err := vm.DoString(src)
	if err != nil {
		return err
	}
	fmt.Println(schemette.ToText(result))
	return nil
}

func repl(vm *schemette.VM) {
	fmt.Println("Schemette REPL. Ctrl+C cancels input, Ctrl+D exits. Type :help for commands.")

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	hist := ""
	if home, err := os.UserHomeDir(); err == nil {
		hist = filepath.Join(home, historyFile)
		if f, err := os.Open(hist); err == nil {
			ln.ReadHistory(f)
			f.Close()
		}
	}
	defer func() {
		if hist == "" {
			return
		}
		if f, err := os.Create(hist); err == nil {
			ln.WriteHistory(f)
			f.Close()
		}
	}()

	for {
		src, ok := read(ln)
		if !ok {
			fmt.Println()
			return
		}
		trimmed := strings.TrimSpace(src)
		if trimmed == "" {
			continue
		}
		if strings.HasPrefix(trimmed, ":") {
			switch trimmed {
			case ":quit":
				return
			case ":reset":
				vm = schemette.NewVM()
			case ":help":
				fmt.Print(helpText)
			default:
				fmt.Println("unknown command; :help lists commands")
			}
			continue
		}
		ln.AppendHistory(strings.ReplaceAll(src, "\n", " "))
		if err := interpret(vm, src); err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
	}
}

// read collects input lines until the brackets balance. ok is false once
// stdin is exhausted.
func read(ln *liner.State) (src string, ok bool) {
	var b strings.Builder
	for {
		prompt := "> "
		if b.Len() > 0 {
			prompt = "... "
		}
		line, err := ln.Prompt(prompt)
		if errors.Is(err, io.EOF) {
			return "", false
		}
		if err != nil {
			// Ctrl+C drops the pending input.
			return "", true
		}
		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)
		if depth(b.String()) <= 0 {
			return b.String(), true
		}
	}
}

// depth counts brackets opened but not yet closed in src.
func depth(src string) int {
	n := 0
	for _, r := range src {
		switch r {
		case '(':
			n++
		case ')':
			n--
		}
	}
	return n
}
