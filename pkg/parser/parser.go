package parser

import (
	"strconv"

	"plates/pkg/lexer"
)

type Parser struct {
	lexer        *lexer.Lexer // lexer instance
	currentToken lexer.Token  // current token
	program      []Instruction
	functions    Table
	errors       []string // list of errors
}

// NewParser creates a new parser instance
func NewParser(l *lexer.Lexer) *Parser {
	p := &Parser{
		lexer:     l,
		program:   []Instruction{},
		functions: Table{},
		errors:    []string{},
	}

	// Initialize current token
	p.nextToken()

	return p
}

// Parse consumes the whole input. Definitions are registered in the function
// table as they are parsed, before any execution, so forward references in
// top-level code resolve. Parsing stops at the first error.
func (p *Parser) Parse() {
	for p.currentToken.Type != lexer.EOF && len(p.errors) == 0 {
		p.parseStmt(nil)
	}
}

// Program returns the top-level instruction sequence
func (p *Parser) Program() []Instruction {
	return p.program
}

// Functions returns the function table built during parsing
func (p *Parser) Functions() Table {
	return p.functions
}

// nextToken advances to the next token from the lexer
func (p *Parser) nextToken() {
	p.currentToken = p.lexer.NextToken()
}

// parseStmt parses one statement. fn is nil at top level and set to the
// enclosing function while parsing a DEFN body.
func (p *Parser) parseStmt(fn *Function) {
	switch p.currentToken.Type {
	case lexer.PUSH:
		p.parsePush(fn)

	case lexer.DEFN:
		if fn != nil {
			p.addError("Nested definitions are not allowed")
			return
		}
		p.parseDefn()

	case lexer.CALLIF:
		p.emit(fn, Instruction{Op: OpCallIf, Pos: p.currentToken.Pos})
		p.nextToken()

	case lexer.EXIT:
		p.emit(fn, Instruction{Op: OpExit, Pos: p.currentToken.Pos})
		p.nextToken()

	default:
		p.addTokenError()
	}
}

// parsePush parses a PUSH statement and its operand
func (p *Parser) parsePush(fn *Function) {
	p.nextToken()

	tok := p.currentToken
	switch tok.Type {
	case lexer.NUM:
		// the lexer already bounds-checked the literal
		v, err := strconv.ParseUint(tok.Literal, 10, 32)
		if err != nil {
			p.addError("Invalid word literal '" + tok.Lexeme + "'")
			return
		}
		p.emit(fn, Instruction{Op: OpPushData, Word: uint32(v), Pos: tok.Pos})

	case lexer.ID:
		p.emit(fn, Instruction{Op: OpPushFn, Name: tok.Literal, Pos: tok.Pos})

	case lexer.STAR:
		p.emit(fn, Instruction{Op: OpPushRand, Pos: tok.Pos})

	case lexer.CARET:
		p.emit(fn, Instruction{Op: OpPushDup, Pos: tok.Pos})

	case lexer.ARG:
		if fn == nil {
			p.addError("Cannot use arguments outside functions")
			return
		}
		n, err := strconv.Atoi(tok.Literal)
		if err != nil || n >= fn.Params {
			p.addError("Argument $" + tok.Literal + " does not exist in function '" + fn.Name + "'")
			return
		}
		p.emit(fn, Instruction{Op: OpPushArg, Word: uint32(n), Pos: tok.Pos})

	case lexer.EOF:
		p.addError("Unexpected end of file after PUSH")
		return

	default:
		p.addTokenError()
		return
	}

	p.nextToken()
}

// parseDefn parses DEFN name '(' count ')' '{' body '}'
func (p *Parser) parseDefn() {
	defnPos := p.currentToken.Pos
	p.nextToken()

	// Function name
	if p.currentToken.Type != lexer.ID {
		p.handleSignatureError("id", "")
		return
	}
	name := p.currentToken.Literal
	if IsBuiltinName(name) {
		p.addError("Cannot define function '" + name + "' because the prefix '__' is reserved for built-in functions")
		return
	}
	if _, ok := p.functions[name]; ok {
		p.addError("Function '" + name + "' is already defined")
		return
	}
	p.nextToken()

	// Parameter count
	if !p.expect(lexer.LPAREN, name) {
		return
	}
	if p.currentToken.Type != lexer.NUM {
		p.handleSignatureError("num", name)
		return
	}
	params, err := strconv.Atoi(p.currentToken.Literal)
	if err != nil {
		p.addError("Invalid parameter count '" + p.currentToken.Lexeme + "'")
		return
	}
	p.nextToken()
	if !p.expect(lexer.RPAREN, name) {
		return
	}
	if !p.expect(lexer.LBRACE, name) {
		return
	}

	fn := &Function{
		Name:   name,
		Params: params,
		Body:   []Instruction{},
		Pos:    defnPos,
	}

	// Body statements until the closing brace
	for p.currentToken.Type != lexer.RBRACE {
		if p.currentToken.Type == lexer.EOF {
			p.addError("Unexpected end of file in body of function '" + name + "'")
			return
		}
		p.parseStmt(fn)
		if len(p.errors) > 0 {
			return
		}
	}
	p.nextToken()

	p.functions[name] = fn
}

// expect consumes a token of the given type or reports a signature error
func (p *Parser) expect(t lexer.TokenType, funcName string) bool {
	if p.currentToken.Type != t {
		p.handleSignatureError(t.String(), funcName)
		return false
	}

	p.nextToken()
	return true
}

// emit appends an instruction to the function body or the top-level program
func (p *Parser) emit(fn *Function, in Instruction) {
	if fn != nil {
		fn.Body = append(fn.Body, in)
		return
	}

	p.program = append(p.program, in)
}
