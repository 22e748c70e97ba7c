package runner

import (
	"bufio"
	"fmt"
	"os"

	"plates/pkg/lexer"
	"plates/pkg/machine"
	"plates/pkg/parser"

	"github.com/mattn/go-isatty"
)

// RunREPL starts an interactive session: each line is parsed and executed
// against a persistent machine, so the stack and the function table carry
// over between lines. Errors are reported and the session continues.
func (opts *Runner) RunREPL() error {
	interactive := isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	if interactive {
		fmt.Println("Welcome to the plates REPL!")
	}

	m := machine.New(nil, parser.Table{}, opts.machineOptions()...)
	scanner := bufio.NewScanner(os.Stdin)

	for {
		if interactive {
			fmt.Print("> ")
		}
		if !scanner.Scan() {
			break
		}

		prog, table, err := opts.parseLine(scanner.Text())
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			continue
		}

		if err := m.Define(table); err != nil {
			fmt.Fprintln(os.Stderr, err)
			continue
		}

		if err := m.Feed(prog); err != nil {
			fmt.Fprintln(os.Stderr, err)
			// keep the data stack, drop whatever was still pending
			m.Recover()
			continue
		}

		if m.Exited() {
			break
		}

		if opts.Debug {
			fmt.Println(m.StackString())
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read from stdin: %w", err)
	}

	if interactive {
		fmt.Println("Program completed successfully.")
	}

	return nil
}

// parseLine parses a single REPL line, keeping errors local to that line
func (opts *Runner) parseLine(line string) ([]parser.Instruction, parser.Table, error) {
	l := lexer.NewLexer(line)
	p := parser.NewParser(l)
	p.Parse()

	if errs := p.Errors(); len(errs) > 0 {
		return nil, nil, fmt.Errorf("%s", errs[0])
	}

	return p.Program(), p.Functions(), nil
}
