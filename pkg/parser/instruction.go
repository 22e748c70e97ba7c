package parser

import (
	"fmt"

	"plates/pkg/lexer"
)

type Op string

// List of machine operations
const (
	OpPushData Op = "push"  // push an integer literal
	OpPushFn   Op = "pushf" // push a function reference
	OpPushRand Op = "pushr" // push a random byte (PUSH *)
	OpPushDup  Op = "pushd" // duplicate the top word (PUSH ^)
	OpPushArg  Op = "pusha" // push a bound argument (PUSH $n)
	OpCallIf   Op = "callif"
	OpExit     Op = "exit"
)

type Instruction struct {
	Op Op

	Word uint32 // literal value for push, argument index for pusha
	Name string // function name for pushf

	Pos lexer.Position // source position for runtime diagnostics
}

// String returns a string representation of the instruction
func (i Instruction) String() string {
	switch i.Op {
	case OpPushData:
		return fmt.Sprintf("(%s, %d)", i.Op, i.Word)
	case OpPushFn:
		return fmt.Sprintf("(%s, %s)", i.Op, i.Name)
	case OpPushArg:
		return fmt.Sprintf("(%s, $%d)", i.Op, i.Word)
	default:
		return fmt.Sprintf("(%s)", i.Op)
	}
}
