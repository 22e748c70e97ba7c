package machine

import (
	"bufio"
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"plates/pkg/lexer"
	"plates/pkg/parser"
)

// DefaultMaxDepth is the frame-stack ceiling used when no option overrides
// it. Recursion is the only loop construct, so the ceiling converts runaway
// self-reference into a StackOverflow instead of exhausting the host.
const DefaultMaxDepth = 1024

// Machine executes a parsed instruction sequence against a data stack and a
// frame stack. The function table is read-only during execution.
type Machine struct {
	code []parser.Instruction // top-level program
	ip   int                  // instruction pointer for top-level execution

	functions parser.Table // function table (name -> definition)
	builtins  map[string]builtinFn

	stack  *Stack   // data stack
	frames []*Frame // call stack (frames)

	out io.Writer     // output writer for __print__
	in  *bufio.Reader // input reader for __input__
	rng *rand.Rand    // random source for PUSH *

	maxDepth int  // maximum frame-stack depth
	maxSteps int  // maximum steps (0 = unlimited)
	steps    int  // steps executed
	halted   bool // set by EXIT
}

type Option func(*Machine)

// WithWriter sets the output writer for __print__
func WithWriter(w io.Writer) Option {
	return func(m *Machine) { m.out = w }
}

// WithReader sets the input reader for __input__
func WithReader(r io.Reader) Option {
	return func(m *Machine) { m.in = bufio.NewReader(r) }
}

// WithRand sets the random source for PUSH *, so tests can seed it
func WithRand(rng *rand.Rand) Option {
	return func(m *Machine) { m.rng = rng }
}

// WithMaxDepth sets the frame-stack depth ceiling
func WithMaxDepth(n int) Option {
	return func(m *Machine) { m.maxDepth = n }
}

// WithMaxSteps sets a maximum number of machine steps before returning
// ErrMaxStepsExceeded. This is host policy, not language semantics.
func WithMaxSteps(n int) Option {
	return func(m *Machine) { m.maxSteps = n }
}

// New creates a new Machine for a parsed program and its function table
func New(code []parser.Instruction, functions parser.Table, opts ...Option) *Machine {
	m := &Machine{
		code:      append([]parser.Instruction(nil), code...),
		ip:        0,
		functions: functions,
		builtins:  builtinTable(),
		stack:     NewStack(),
		frames:    make([]*Frame, 0, 8),
		maxDepth:  DefaultMaxDepth,
		maxSteps:  0, // 0 => unlimited
	}

	if m.functions == nil {
		m.functions = parser.Table{}
	}

	for _, o := range opts {
		o(m)
	}

	if m.out == nil {
		m.out = os.Stdout
	}
	if m.in == nil {
		m.in = bufio.NewReader(os.Stdin)
	}
	if m.rng == nil {
		m.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return m
}

// Reset clears runtime state (data stack, frames, IP, counters)
func (m *Machine) Reset() {
	m.ip = 0
	m.stack = NewStack()
	m.frames = m.frames[:0]
	m.steps = 0
	m.halted = false
}

// Step executes a single instruction, returning (halted, error). halted is
// true on EXIT and on natural exhaustion of the program; Exited tells the
// two apart.
func (m *Machine) Step() (bool, error) {
	if m.maxSteps > 0 && m.steps >= m.maxSteps {
		return false, ErrMaxStepsExceeded
	}

	halted, err := coreStep(m)
	m.steps++

	return halted, err
}

// Run executes until halt, exhaustion, or error
func (m *Machine) Run() error {
	for {
		halted, err := m.Step()
		if err != nil {
			return err
		}

		if halted {
			return nil
		}
	}
}

// Feed appends a chunk of top-level instructions and runs them to
// completion. Used by the REPL; Run covers the single-program case.
func (m *Machine) Feed(code []parser.Instruction) error {
	if m.halted {
		return nil
	}

	m.code = append(m.code, code...)
	for {
		halted, err := m.Step()
		if err != nil {
			return err
		}

		if halted {
			return nil
		}
	}
}

// Define registers extra functions after construction. Only the REPL uses
// this; in batch mode the table is complete before execution starts.
func (m *Machine) Define(functions parser.Table) error {
	for name, fn := range functions {
		if _, ok := m.functions[name]; ok {
			return fmt.Errorf("function '%s' is already defined", name)
		}
		m.functions[name] = fn
	}

	return nil
}

// Recover discards pending frames and unexecuted instructions after a
// runtime error, keeping the data stack intact. The REPL uses this to
// continue the session past a failing line.
func (m *Machine) Recover() {
	m.frames = m.frames[:0]
	m.ip = len(m.code)
}

// Exited reports whether the machine was stopped by EXIT
func (m *Machine) Exited() bool {
	return m.halted
}

// Stack returns the data stack
func (m *Machine) Stack() *Stack {
	return m.stack
}

// Depth returns the current frame-stack depth
func (m *Machine) Depth() int {
	return len(m.frames)
}

// Output returns the writer used for __print__
func (m *Machine) Output() io.Writer {
	return m.out
}

// StackString renders the data stack for the debug echo
func (m *Machine) StackString() string {
	return m.stack.String()
}

// currentFrame returns the innermost call frame, or nil if none
func (m *Machine) currentFrame() *Frame {
	if len(m.frames) == 0 {
		return nil
	}

	return m.frames[len(m.frames)-1]
}

// pushFrame pushes a new call frame with bound arguments
func (m *Machine) pushFrame(fn *parser.Function, args []Word) *Frame {
	frame := &Frame{
		FuncName: fn.Name,
		Args:     args,
		Body:     fn.Body,
		IP:       0,
	}

	m.frames = append(m.frames, frame)
	return frame
}

// popFrame pops the innermost call frame
func (m *Machine) popFrame() *Frame {
	if len(m.frames) == 0 {
		return nil
	}

	f := m.frames[len(m.frames)-1]
	m.frames = m.frames[:len(m.frames)-1]
	return f
}

// popInteger pops the top word, requiring an integer
func (m *Machine) popInteger(pos lexer.Position) (uint32, error) {
	w, ok := m.stack.Pop()
	if !ok {
		return 0, newError(ErrStackUnderflow, pos, "cannot pop from an empty stack")
	}
	if w.Kind != KindInteger {
		return 0, newError(ErrType, pos, "expected an integer but found %s", w)
	}

	return w.Int, nil
}

// popFunction pops the top word, requiring a function reference
func (m *Machine) popFunction(pos lexer.Position) (string, error) {
	w, ok := m.stack.Pop()
	if !ok {
		return "", newError(ErrStackUnderflow, pos, "cannot pop from an empty stack")
	}
	if w.Kind != KindFunction {
		return "", newError(ErrType, pos, "expected a function but found %s", w)
	}

	return w.Fn, nil
}
