package runner

import (
	"fmt"
	"math/rand"
	"os"
	"strings"

	"plates/pkg/color"
	"plates/pkg/lexer"
	"plates/pkg/machine"
	"plates/pkg/parser"

	"github.com/charmbracelet/log"
)

// Runner holds the interpreter invocation options.
type Runner struct {
	Help        bool     // Show help message
	Verbose     bool     // Enable verbose output
	Debug       bool     // Echo the stack after each executed chunk
	NoColor     bool     // Disable colored output
	Seed        int64    // Seed for the random source (0 = time-seeded)
	MaxDepth    int      // Frame-stack ceiling (0 = interpreter default)
	MaxSteps    int      // Step limit (0 = unlimited)
	SourceFiles []string // Source files to run; empty launches the REPL
}

// Run loads the source files, parses them, and executes the program.
// Without source files it hands over to the REPL.
func (opts *Runner) Run() error {
	if len(opts.SourceFiles) == 0 {
		return opts.RunREPL()
	}

	// Multiple files are read in order and executed as one program.
	var sources []string
	for _, file := range opts.SourceFiles {
		log.Info("Processing file", "file", file)

		input, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("failed to read file %s: %w", file, err)
		}
		sources = append(sources, string(input))
	}

	prog, table, err := opts.parse(strings.Join(sources, "\n"))
	if err != nil {
		return err
	}

	m := machine.New(prog, table, opts.machineOptions()...)
	if err := m.Run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return fmt.Errorf("interpretation failed")
	}

	if opts.Debug {
		fmt.Println(m.StackString())
	}

	return nil
}

// parse runs the lexer and parser over a source text. Static errors are
// reported before anything executes.
func (opts *Runner) parse(source string) ([]parser.Instruction, parser.Table, error) {
	l := lexer.NewLexer(source)
	p := parser.NewParser(l)
	p.Parse()

	if errs := p.Errors(); len(errs) > 0 {
		fmt.Fprintln(os.Stderr, color.BrightRedText("=== Syntax Errors ==="))
		fmt.Fprintln(os.Stderr, errs[0])
		return nil, nil, fmt.Errorf("parsing failed with %d errors", len(errs))
	}

	return p.Program(), p.Functions(), nil
}

// machineOptions translates the runner options into machine options
func (opts *Runner) machineOptions() []machine.Option {
	mopts := []machine.Option{}

	if opts.Seed != 0 {
		mopts = append(mopts, machine.WithRand(rand.New(rand.NewSource(opts.Seed))))
	}
	if opts.MaxDepth > 0 {
		mopts = append(mopts, machine.WithMaxDepth(opts.MaxDepth))
	}
	if opts.MaxSteps > 0 {
		mopts = append(mopts, machine.WithMaxSteps(opts.MaxSteps))
	}

	return mopts
}
