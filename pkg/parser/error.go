package parser

import (
	"fmt"

	"plates/pkg/color"
	"plates/pkg/lexer"
)

// addError records a parsing error with location
func (p *Parser) addError(msg string) {
	pos := p.currentToken.Pos
	formatted := color.RedText(msg) + " at " + color.YellowText(fmt.Sprintf("Line: %d, Column %d", pos.Line, pos.Column))
	p.errors = append(p.errors, formatted)
}

// Errors returns the list of parsing errors
func (p *Parser) Errors() []string {
	return p.errors
}

// handleSignatureError reports an error for an unexpected token where part of
// a DEFN signature was expected
func (p *Parser) handleSignatureError(expected string, funcName string) {
	if p.currentToken.Type == lexer.EOF {
		if funcName == "" {
			p.addError("Unexpected end of file after DEFN")
		} else {
			p.addError("Unexpected end of file in signature of function '" + funcName + "'")
		}
		return
	}

	p.addError(p.categorizeError(expected, p.currentToken))
}

// addTokenError reports a contextual error for the current token
func (p *Parser) addTokenError() {
	p.addError(p.categorizeError("", p.currentToken))
}

// categorizeError provides a specific error message based on expected symbol and current token
func (p *Parser) categorizeError(expected string, current lexer.Token) string {
	if current.Type == lexer.ILLEGAL {
		if isAllDigits(current.Lexeme) {
			return fmt.Sprintf("Invalid word literal '%s'", current.Lexeme)
		}
		return fmt.Sprintf("Invalid token '%s'", current.Lexeme)
	}

	switch expected {
	case "(":
		return "Missing opening parenthesis"
	case ")":
		return "Missing closing parenthesis"
	case "{":
		return "Missing opening brace"
	case "id":
		if current.Type == lexer.NUM {
			return "Expected function name, found number"
		}
		if _, reserved := lexer.IsKeyword(current.Lexeme); reserved {
			return "Cannot use reserved keyword as function name"
		}
		return "Expected function name"
	case "num":
		return "Expected parameter count"
	}

	return fmt.Sprintf("Unexpected token '%s'", current.Type)
}

// isAllDigits reports whether a lexeme is purely decimal digits
func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
