package parser

import (
	"strings"

	"plates/pkg/lexer"
)

// Function is an immutable user-defined function: declared parameter count
// and instruction body. The table is fixed once parsing completes.
type Function struct {
	Name   string
	Params int
	Body   []Instruction
	Pos    lexer.Position
}

// Table maps function names to their definitions.
type Table map[string]*Function

// Lookup resolves a function name in the table.
func (t Table) Lookup(name string) (*Function, bool) {
	f, ok := t[name]
	return f, ok
}

// IsBuiltinName reports whether a name is in the reserved built-in namespace.
// The '__' prefix is reserved; whether the name actually resolves to a native
// subroutine is decided by the machine.
func IsBuiltinName(name string) bool {
	return strings.HasPrefix(name, "__")
}
