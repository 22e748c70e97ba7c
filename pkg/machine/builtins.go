package machine

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"plates/pkg/lexer"
)

// builtinFn is a native subroutine. Built-ins are reached through the same
// CALLIF convention as user functions; by the time one runs, both control
// words have already been consumed.
type builtinFn func(m *Machine, pos lexer.Position) error

func builtinTable() map[string]builtinFn {
	return map[string]builtinFn{
		"__print__":       builtinPrint,
		"__input__":       builtinInput,
		"__nand__":        builtinNand,
		"__shift_left__":  builtinShiftLeft,
		"__shift_right__": builtinShiftRight,
	}
}

// builtinPrint scans the stack from the top downward, emitting each word as
// a Unicode code point until the first zero word (excluded). The stack is
// left unmodified.
func builtinPrint(m *Machine, pos lexer.Position) error {
	words := m.stack.Words()

	var sb strings.Builder
	i := len(words) - 1
	for ; i >= 0; i-- {
		w := words[i]
		if w.Kind != KindInteger {
			return newError(ErrType, pos, "expected an integer but found %s", w)
		}
		if w.Int == 0 {
			break
		}

		r := rune(w.Int)
		if !utf8.ValidRune(r) {
			return newError(ErrType, pos, "%d is not a valid code point", w.Int)
		}
		sb.WriteRune(r)
	}
	if i < 0 {
		return newError(ErrStackUnderflow, pos, "no zero terminator on the stack")
	}

	if _, err := fmt.Fprint(m.out, sb.String()); err != nil {
		return newError(ErrIO, pos, "failed to write to output: %v", err)
	}

	return nil
}

// builtinInput reads one line from input (newline excluded) and pushes one
// word per character: the first character read ends up deepest, the last one
// on top. A clean end-of-stream pushes nothing.
func builtinInput(m *Machine, pos lexer.Position) error {
	line, err := m.in.ReadString('\n')
	if err != nil && err != io.EOF {
		return newError(ErrIO, pos, "failed to read from input: %v", err)
	}

	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")

	for _, c := range line {
		m.stack.Push(NewInteger(uint32(c)))
	}

	return nil
}

// builtinNand pops two integers a, b and pushes ^(a & b)
func builtinNand(m *Machine, pos lexer.Position) error {
	a, err := m.popInteger(pos)
	if err != nil {
		return err
	}
	b, err := m.popInteger(pos)
	if err != nil {
		return err
	}

	m.stack.Push(NewInteger(^(a & b)))
	return nil
}

// builtinShiftLeft pops an integer and pushes it shifted left by one bit,
// discarding the high bit
func builtinShiftLeft(m *Machine, pos lexer.Position) error {
	n, err := m.popInteger(pos)
	if err != nil {
		return err
	}

	m.stack.Push(NewInteger(n << 1))
	return nil
}

// builtinShiftRight pops an integer and pushes it logically shifted right by
// one bit
func builtinShiftRight(m *Machine, pos lexer.Position) error {
	n, err := m.popInteger(pos)
	if err != nil {
		return err
	}

	m.stack.Push(NewInteger(n >> 1))
	return nil
}
