package lexer

import (
	"fmt"
)

type TokenType int
type TokenCategory int

type Token struct {
	Type    TokenType // Type of the token
	Lexeme  string    // Actual string from source code
	Literal string    // Literal value (if applicable), empty string if not
	Pos     Position  // Position in source code
}

// NewToken creates a new Token instance
func NewToken(tokenType TokenType, lexeme string, literal string, Pos Position) Token {
	return Token{
		Type:    tokenType,
		Lexeme:  lexeme,
		Literal: literal,
		Pos:     Pos,
	}
}

const (
	NONE TokenCategory = iota
	KEYWORD
	IDENTIFIER
	LITERAL
	OPERAND
	DELIMITER
)

const (
	EOF TokenType = iota // End of file

	PUSH   // PUSH
	DEFN   // DEFN
	CALLIF // CALLIF
	EXIT   // EXIT

	ID  // function name
	NUM // unsigned 32-bit word literal
	ARG // $n argument reference

	STAR  // * (random byte operand)
	CARET // ^ (duplicate-top operand)

	LPAREN // (
	RPAREN // )
	LBRACE // {
	RBRACE // }

	ILLEGAL // illegal token
)

var Keywords = map[string]TokenType{
	"PUSH":   PUSH,
	"DEFN":   DEFN,
	"CALLIF": CALLIF,
	"EXIT":   EXIT,
}

// TokenToString converts a TokenType to its string representation
func (t Token) TokenToString() (string, bool) {
	mapping := map[TokenType]string{
		PUSH:   "PUSH",
		DEFN:   "DEFN",
		CALLIF: "CALLIF",
		EXIT:   "EXIT",
		ID:     "id",
		NUM:    "num",
		ARG:    "arg",
		STAR:   "*",
		CARET:  "^",
		LPAREN: "(",
		RPAREN: ")",
		LBRACE: "{",
		RBRACE: "}",
		EOF:    "$",
	}

	str, ok := mapping[t.Type]
	return str, ok
}

// String returns a string representation of the Token
func (t Token) String() string {
	if t.Literal == "" {

		return fmt.Sprintf("T_{%s, %v, nil, %s}",
			t.Type, t.Lexeme, t.Pos.String())
	}

	return fmt.Sprintf("T_{%s, %v, %q, %s}",
		t.Type, t.Lexeme, t.Literal, t.Pos.String())
}

// String returns a string representation of the TokenType
func (t TokenType) String() string {
	if str, ok := (Token{Type: t}).TokenToString(); ok {
		return str
	}

	return fmt.Sprintf("UNKNOWN(%d)", int(t))
}

// GetCategory returns the category of the token
func (t TokenType) GetCategory() TokenCategory {
	switch t {
	case PUSH, DEFN, CALLIF, EXIT:
		return KEYWORD
	case ID:
		return IDENTIFIER
	case NUM, ARG:
		return LITERAL
	case STAR, CARET:
		return OPERAND
	case LPAREN, RPAREN, LBRACE, RBRACE:
		return DELIMITER
	default:
		return NONE
	}
}

// IsKeyword checks if the given identifier is a keyword and returns its TokenType if it is
func IsKeyword(identifier string) (TokenType, bool) {
	tokenType, ok := Keywords[identifier]
	return tokenType, ok
}
