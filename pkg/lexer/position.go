package lexer

import "fmt"

type Position struct {
	Line   int
	Column int
	Offset int
}

// String returns the "line, column, offset" rendering of the position
func (p Position) String() string {
	return fmt.Sprintf("%d, %d, %d", p.Line, p.Column, p.Offset)
}

// NewPosition creates a new Position instance
func NewPosition(line, column, offset int) Position {
	return Position{
		Line:   line,
		Column: column,
		Offset: offset,
	}
}
