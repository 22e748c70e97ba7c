package machine

import (
	"strings"
)

// Stack is the data stack of Words. The top is the last element of the
// backing slice; depth is bounded only by host memory.
type Stack struct {
	a []Word
	l int
}

// NewStack creates a new empty stack instance
func NewStack() *Stack {
	return &Stack{
		a: make([]Word, 0),
		l: 0,
	}
}

// Push adds a word to the top of the stack
func (s *Stack) Push(w Word) {
	s.l++
	s.a = append(s.a, w)
}

// Pop removes and returns the top word of the stack
func (s *Stack) Pop() (Word, bool) {
	if s.l < 1 {
		return Word{}, false
	}

	s.l--
	w := s.a[s.l]
	s.a = s.a[:s.l]

	return w, true
}

// Peek returns the top word of the stack without removing it
func (s *Stack) Peek() (Word, bool) {
	if s.l < 1 {
		return Word{}, false
	}

	return s.a[s.l-1], true
}

// Size returns the number of words on the stack
func (s *Stack) Size() int {
	return s.l
}

// Words returns the underlying array of the stack, bottom first
func (s *Stack) Words() []Word {
	return s.a
}

// String renders the stack bottom-to-top in the debug format
// "[5, function foo]  <-- top"
func (s *Stack) String() string {
	words := make([]string, 0, s.l)
	for _, w := range s.a {
		words = append(words, w.String())
	}

	return "[" + strings.Join(words, ", ") + "]  <-- top"
}
