package machine

import (
	"fmt"
)

type WordKind int

const (
	KindInteger WordKind = iota
	KindFunction
)

// Word is the sole stack value type: an unsigned 32-bit integer or a
// reference to a function by name. Exactly one kind is active.
type Word struct {
	Kind WordKind
	Int  uint32
	Fn   string
}

// String renders the word as a string.
func (w Word) String() string {
	switch w.Kind {
	case KindFunction:
		return fmt.Sprintf("function %s", w.Fn)
	default:
		return fmt.Sprintf("%d", w.Int)
	}
}

// String returns a human-readable name for the word kind.
func (k WordKind) String() string {
	switch k {
	case KindFunction:
		return "function"
	default:
		return "integer"
	}
}

// NewInteger creates an integer Word.
func NewInteger(n uint32) Word {
	return Word{Kind: KindInteger, Int: n}
}

// NewFunction creates a function-reference Word.
func NewFunction(name string) Word {
	return Word{Kind: KindFunction, Fn: name}
}
