package lexer

import (
	"regexp"
)

type tokenRegex struct {
	Pattern *regexp.Regexp
	Raw     string
}

// Token regex patterns
var tokenRegexes = map[TokenType]tokenRegex{
	CALLIF: {regexp.MustCompile(`^CALLIF\b`), `^CALLIF\b`},
	PUSH:   {regexp.MustCompile(`^PUSH\b`), `^PUSH\b`},
	DEFN:   {regexp.MustCompile(`^DEFN\b`), `^DEFN\b`},
	EXIT:   {regexp.MustCompile(`^EXIT\b`), `^EXIT\b`},

	STAR:  {regexp.MustCompile(`^\*`), `^\*`},
	CARET: {regexp.MustCompile(`^\^`), `^\^`},

	LPAREN: {regexp.MustCompile(`^\(`), `^\(`},
	RPAREN: {regexp.MustCompile(`^\)`), `^\)`},
	LBRACE: {regexp.MustCompile(`^\{`), `^\{`},
	RBRACE: {regexp.MustCompile(`^\}`), `^\}`},

	// \b rejects run-on forms like 12ab or $1x outright instead of
	// splitting them into two tokens
	ARG: {regexp.MustCompile(`^\$\d+\b`), `^\$\d+\b`},
	NUM: {regexp.MustCompile(`^\d+\b`), `^\d+\b`},
	ID:  {regexp.MustCompile(`^[a-z_][a-z0-9_]*\b`), `^[a-z_][a-z0-9_]*\b`},
}

var (
	whitespaceRegex = regexp.MustCompile(`^\s+`)
	commentRegex    = regexp.MustCompile(`^//.*`)
)

// Token precedence order for matching (longer patterns first)
var tokenPrecedenceOrder = []TokenType{
	CALLIF, PUSH, DEFN, EXIT,
	ARG, NUM, ID,
	STAR, CARET,
	LPAREN, RPAREN, LBRACE, RBRACE,
}

// Get the regex pattern for a token type
func (t TokenType) Regex() *regexp.Regexp {
	if regex, ok := tokenRegexes[t]; ok {
		return regex.Pattern
	}

	return nil
}

// Get the raw regex string for a token type
func (t TokenType) RawRegex() string {
	if regex, ok := tokenRegexes[t]; ok {
		return regex.Raw
	}

	return ""
}

// Match the longest token at the start of the string
func MatchToken(s string) (TokenType, string, bool) {
	if s == "" {
		return EOF, "", false
	} else if match := whitespaceRegex.FindString(s); match != "" {
		return EOF, match, true
	} else if match := commentRegex.FindString(s); match != "" {
		return EOF, match, true
	}

	for _, tokenType := range tokenPrecedenceOrder {
		if regex, ok := tokenRegexes[tokenType]; ok {
			if match := regex.Pattern.FindString(s); match != "" {
				return tokenType, match, true
			}
		}
	}

	return ILLEGAL, string(s[0]), false
}
