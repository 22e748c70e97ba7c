package machine

import (
	"errors"
	"fmt"

	"plates/pkg/lexer"
)

type ErrorKind int

// Runtime error taxonomy
const (
	ErrUnknownFunction ErrorKind = iota
	ErrType
	ErrStackUnderflow
	ErrStackOverflow
	ErrIO
)

// String returns the diagnostic name of the error kind.
func (k ErrorKind) String() string {
	switch k {
	case ErrUnknownFunction:
		return "UnknownFunctionReference"
	case ErrType:
		return "TypeError"
	case ErrStackUnderflow:
		return "StackUnderflow"
	case ErrStackOverflow:
		return "StackOverflow"
	case ErrIO:
		return "IOError"
	default:
		return fmt.Sprintf("Unknown(%d)", int(k))
	}
}

// RuntimeError is a fatal error raised while executing an instruction.
// Execution halts at the failing instruction; there is no handler construct
// in the language.
type RuntimeError struct {
	Kind ErrorKind
	Msg  string
	Pos  lexer.Position // position of the failing instruction, zero if unknown
}

func (e *RuntimeError) Error() string {
	if e.Pos.Line > 0 {
		return fmt.Sprintf("%s at %d:%d: %s", e.Kind, e.Pos.Line, e.Pos.Column, e.Msg)
	}

	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

// newError creates a RuntimeError with a formatted message
func newError(kind ErrorKind, pos lexer.Position, format string, args ...any) *RuntimeError {
	return &RuntimeError{
		Kind: kind,
		Msg:  fmt.Sprintf(format, args...),
		Pos:  pos,
	}
}

var ErrMaxStepsExceeded = errors.New("maximum steps exceeded")
