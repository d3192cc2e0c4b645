// Package lexer turns blaze source text into a sequence of tokens.
//
// The lexer makes a single forward pass with at most one character of
// lookahead. The first error aborts the pass and no tokens are returned
// with it.
package lexer

import (
	"strconv"

	"github.com/blazescript/blaze/source"
	"github.com/blazescript/blaze/token"
)

// Lexer holds the scanning state for one compilation unit.
type Lexer struct {
	fileName string
	text     []rune
	current  rune
	done     bool // no current character
	pos      source.Position
}

// New creates a lexer over text. fileName is only used in diagnostics.
func New(fileName, text string) *Lexer {
	l := &Lexer{
		fileName: fileName,
		text:     []rune(text),
		pos:      source.Start(fileName, text),
	}
	l.load()
	return l
}

// Lex scans text in one call.
func Lex(fileName, text string) ([]token.Token, error) {
	return New(fileName, text).Lex()
}

func (l *Lexer) load() {
	if l.pos.Index < len(l.text) {
		l.current = l.text[l.pos.Index]
		l.done = false
	} else {
		l.current = 0
		l.done = true
	}
}

func (l *Lexer) advance() {
	l.pos = l.pos.Advance(l.current)
	l.load()
}

func (l *Lexer) peek() (rune, bool) {
	if l.pos.Index+1 < len(l.text) {
		return l.text[l.pos.Index+1], true
	}
	return 0, false
}

// Maybe-compound arithmetic operators: the base kind, and the kind used
// when the operator is immediately followed by '='.
var arithOps = map[rune][2]token.Kind{
	'+': {token.Plus, token.PlusEquals},
	'-': {token.Minus, token.MinusEquals},
	'*': {token.Multiply, token.MultiplyEquals},
	'/': {token.Divide, token.DivideEquals},
	'^': {token.Power, token.PowerEquals},
}

var punctuation = map[rune]token.Kind{
	'(': token.LeftParenthesis,
	')': token.RightParenthesis,
	'{': token.LeftCurlyBraces,
	'}': token.RightCurlyBraces,
	'[': token.LeftSquareBraces,
	']': token.RightSquareBraces,
	':': token.Colon,
	',': token.Comma,
	'.': token.Dot,
}

// Lex scans the whole input. The result always ends with exactly one EOF
// token. On error the returned slice is nil and the error is a
// *source.Error.
func (l *Lexer) Lex() ([]token.Token, error) {
	var tokens []token.Token

	for !l.done {
		c := l.current

		if c == ' ' || c == '\t' || c == '\r' {
			l.advance()
			continue
		}

		if c == '\n' || c == ';' {
			start := l.pos
			l.advance()
			tokens = append(tokens, token.New(token.Newline, start, l.pos, token.None()))
			continue
		}

		if c == '.' {
			if next, ok := l.peek(); ok && isDigit(next) {
				tok, err := l.makeNumber()
				if err != nil {
					return nil, err
				}
				tokens = append(tokens, tok)
				continue
			}
		}

		if kind, ok := punctuation[c]; ok {
			start := l.pos
			l.advance()
			tokens = append(tokens, token.New(kind, start, l.pos, token.None()))
			continue
		}

		if ops, ok := arithOps[c]; ok {
			tokens = append(tokens, l.makeArithOp(ops[0], ops[1]))
			continue
		}

		var (
			tok token.Token
			err *source.Error
		)
		switch {
		case c == '@':
			l.skipComment()
			continue
		case c == '!':
			tok = l.makeNot()
		case c == '<':
			tok = l.makeRelational(token.LessThan, token.LessThanEquals)
		case c == '>':
			tok = l.makeRelational(token.GreaterThan, token.GreaterThanEquals)
		case c == '=':
			tok = l.makeEquals()
		case c == '"':
			tok, err = l.makeString()
		case c == '\'':
			tok, err = l.makeChar()
		case c == '&':
			tok, err = l.makeDoubled('&', "and")
		case c == '|':
			tok, err = l.makeDoubled('|', "or")
		case isDigit(c):
			tok, err = l.makeNumber()
		case isLetter(c):
			tok = l.makeIdentifier()
		default:
			start := l.pos
			return nil, source.NewError("Illegal Character", start, start.Advance(c),
				"Unexpected Character '"+string(c)+"'")
		}
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
	}

	tokens = append(tokens, token.New(token.EOF, l.pos, l.pos, token.None()))
	return tokens, nil
}

func (l *Lexer) makeArithOp(plain, compound token.Kind) token.Token {
	start := l.pos
	l.advance()
	if !l.done && l.current == '=' {
		l.advance()
		return token.New(compound, start, l.pos, token.None())
	}
	return token.New(plain, start, l.pos, token.None())
}

// makeNot lexes "!=" or a bare "!", which is the keyword "not".
func (l *Lexer) makeNot() token.Token {
	start := l.pos
	l.advance()
	if !l.done && l.current == '=' {
		l.advance()
		return token.New(token.NotEquals, start, l.pos, token.None())
	}
	return token.New(token.Keyword, start, l.pos, token.Str("not"))
}

func (l *Lexer) makeRelational(plain, orEqual token.Kind) token.Token {
	start := l.pos
	l.advance()
	if !l.done && l.current == '=' {
		l.advance()
		return token.New(orEqual, start, l.pos, token.None())
	}
	return token.New(plain, start, l.pos, token.None())
}

// makeEquals lexes "==", "=>" or "=".
func (l *Lexer) makeEquals() token.Token {
	start := l.pos
	l.advance()
	if !l.done {
		switch l.current {
		case '=':
			l.advance()
			return token.New(token.DoubleEquals, start, l.pos, token.None())
		case '>':
			l.advance()
			return token.New(token.Arrow, start, l.pos, token.None())
		}
	}
	return token.New(token.Equals, start, l.pos, token.None())
}

// makeDoubled lexes "&&" or "||" into the equivalent keyword.
func (l *Lexer) makeDoubled(ch rune, keyword string) (token.Token, *source.Error) {
	start := l.pos
	l.advance()
	if l.done || l.current != ch {
		return token.Token{}, l.expected(start, string(ch))
	}
	l.advance()
	return token.New(token.Keyword, start, l.pos, token.Str(keyword)), nil
}

func (l *Lexer) expected(start source.Position, what string) *source.Error {
	end := l.pos
	if !l.done {
		end = end.Advance(l.current)
	}
	return source.NewError("Expected Character", start, end, "Expected '"+what+"'")
}

func (l *Lexer) makeIdentifier() token.Token {
	start := l.pos
	var name []rune
	for !l.done && (isLetter(l.current) || isDigit(l.current)) {
		name = append(name, l.current)
		l.advance()
	}

	ident := string(name)
	switch {
	case token.IsKeyword(ident):
		return token.New(token.Keyword, start, l.pos, token.Str(ident))
	case ident == "true" || ident == "false":
		return token.New(token.Boolean, start, l.pos, token.Bool(ident == "true"))
	default:
		return token.New(token.Identifier, start, l.pos, token.Str(ident))
	}
}

func (l *Lexer) makeNumber() (token.Token, *source.Error) {
	start := l.pos
	var digits []rune
	dots := 0
	for !l.done && (isDigit(l.current) || l.current == '.') {
		if l.current == '.' {
			if dots == 1 {
				break
			}
			dots++
		}
		digits = append(digits, l.current)
		l.advance()
	}

	lit := string(digits)
	if dots == 0 {
		n, err := strconv.ParseInt(lit, 10, 64)
		if err != nil {
			return token.Token{}, source.NewError("Invalid Number", start, l.pos,
				"Integer literal "+lit+" is out of range")
		}
		return token.New(token.Int, start, l.pos, token.IntOf(n)), nil
	}

	f, err := strconv.ParseFloat(lit, 64)
	if err != nil {
		return token.Token{}, source.NewError("Invalid Number", start, l.pos,
			"Float literal "+lit+" is out of range")
	}
	return token.New(token.Float, start, l.pos, token.FloatOf(f)), nil
}

// skipComment skips "@ ..." up to (not including) the newline, or a block
// "@@ ... @@". An unterminated block comment runs to the end of input.
func (l *Lexer) skipComment() {
	l.advance()

	if !l.done && l.current == '@' {
		l.advance()
		for !l.done {
			if l.current == '@' {
				if next, ok := l.peek(); ok && next == '@' {
					l.advance()
					l.advance()
					return
				}
			}
			l.advance()
		}
		return
	}

	for !l.done && l.current != '\n' {
		l.advance()
	}
}

func isDigit(c rune) bool {
	return '0' <= c && c <= '9'
}

func isLetter(c rune) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') || c == '_'
}
