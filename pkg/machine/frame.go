package machine

import (
	"plates/pkg/parser"
)

// Frame represents one function activation: the bound arguments and the
// instruction cursor into the function body. Args[i] is $i; a frame fully
// shadows the caller's bindings.
type Frame struct {
	FuncName string               // function name for this frame
	Args     []Word               // bound arguments ($0 was on top of the stack)
	Body     []parser.Instruction // function body being executed
	IP       int                  // instruction pointer into Body
}
