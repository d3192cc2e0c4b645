// Package sexy reads the s-expression patterns used by the markdown test
// suites and matches them against s-expressions produced by the compiler.
package sexy

import (
	"fmt"
	"strings"
	"unicode"
)

type NodeType int

const (
	NodeSymbol NodeType = iota
	NodeString
	NodeInteger
	NodeFloat
	NodeEllipsis
	NodeList
)

func (t NodeType) String() string {
	switch t {
	case NodeSymbol:
		return "symbol"
	case NodeString:
		return "string"
	case NodeInteger:
		return "integer"
	case NodeFloat:
		return "float"
	case NodeEllipsis:
		return "ellipsis"
	case NodeList:
		return "list"
	default:
		return fmt.Sprintf("NodeType(%d)", int(t))
	}
}

// Node is one datum. Atoms keep their source text in Text; lists keep their
// elements in Items.
type Node struct {
	Type  NodeType
	Text  string
	Items []*Node
}

func (n *Node) String() string {
	switch n.Type {
	case NodeString:
		escaped := strings.ReplaceAll(n.Text, `\`, `\\`)
		escaped = strings.ReplaceAll(escaped, `"`, `\"`)
		return `"` + escaped + `"`
	case NodeEllipsis:
		return "..."
	case NodeList:
		parts := make([]string, len(n.Items))
		for i, item := range n.Items {
			parts[i] = item.String()
		}
		return "(" + strings.Join(parts, " ") + ")"
	default:
		return n.Text
	}
}

func NewSymbol(name string) *Node {
	return &Node{Type: NodeSymbol, Text: name}
}

func NewString(value string) *Node {
	return &Node{Type: NodeString, Text: value}
}

func NewInteger(text string) *Node {
	return &Node{Type: NodeInteger, Text: text}
}

func NewFloat(text string) *Node {
	return &Node{Type: NodeFloat, Text: text}
}

func NewEllipsis() *Node {
	return &Node{Type: NodeEllipsis}
}

func NewList(items ...*Node) *Node {
	return &Node{Type: NodeList, Items: items}
}

// IsAtom reports whether n is anything but a list.
func (n *Node) IsAtom() bool {
	return n.Type != NodeList
}

// IsWildcard reports whether n is the symbol _.
func (n *Node) IsWildcard() bool {
	return n.Type == NodeSymbol && n.Text == "_"
}

type parser struct {
	lexer   *lexer
	current token
}

// Parse reads exactly one datum from input.
func Parse(input string) (*Node, error) {
	p := &parser{lexer: newLexer(input)}
	if err := p.next(); err != nil {
		return nil, err
	}

	result, err := p.parseDatum()
	if err != nil {
		return nil, err
	}
	if p.current.Type != tokenEOF {
		return nil, fmt.Errorf("offset %d: expected EOF but got %s", p.current.Position, p.current.Type)
	}
	return result, nil
}

func (p *parser) next() error {
	tok, err := p.lexer.nextToken()
	if err != nil {
		return err
	}
	p.current = tok
	return nil
}

func (p *parser) parseDatum() (*Node, error) {
	tok := p.current
	var node *Node
	switch tok.Type {
	case tokenSymbol:
		node = NewSymbol(tok.Value)
	case tokenString:
		node = NewString(tok.Value)
	case tokenInteger:
		node = NewInteger(tok.Value)
	case tokenFloat:
		node = NewFloat(tok.Value)
	case tokenEllipsis:
		node = NewEllipsis()
	case tokenLParen:
		return p.parseList()
	default:
		return nil, fmt.Errorf("offset %d: unexpected token: %s", tok.Position, tok.Type)
	}
	if err := p.next(); err != nil {
		return nil, err
	}
	return node, nil
}

func (p *parser) parseList() (*Node, error) {
	if err := p.next(); err != nil { // '('
		return nil, err
	}

	list := NewList()
	for p.current.Type != tokenRParen && p.current.Type != tokenEOF {
		item, err := p.parseDatum()
		if err != nil {
			return nil, err
		}
		list.Items = append(list.Items, item)
	}

	if p.current.Type != tokenRParen {
		return nil, fmt.Errorf("offset %d: expected ')' but got %s", p.current.Position, p.current.Type)
	}
	if err := p.next(); err != nil { // ')'
		return nil, err
	}
	return list, nil
}

type tokenType int

const (
	tokenEOF tokenType = iota
	tokenSymbol
	tokenString
	tokenInteger
	tokenFloat
	tokenEllipsis
	tokenLParen
	tokenRParen
)

func (t tokenType) String() string {
	switch t {
	case tokenEOF:
		return "EOF"
	case tokenSymbol:
		return "symbol"
	case tokenString:
		return "string"
	case tokenInteger:
		return "integer"
	case tokenFloat:
		return "float"
	case tokenEllipsis:
		return "ellipsis"
	case tokenLParen:
		return "'('"
	case tokenRParen:
		return "')'"
	default:
		return fmt.Sprintf("unknown token %d", int(t))
	}
}

type token struct {
	Type     tokenType
	Value    string
	Position int
}

type lexer struct {
	input []rune
	pos   int
}

func newLexer(input string) *lexer {
	return &lexer{input: []rune(input)}
}

func (l *lexer) peek(offset int) rune {
	if l.pos+offset >= len(l.input) {
		return 0
	}
	return l.input[l.pos+offset]
}

func (l *lexer) nextToken() (token, error) {
	for {
		for unicode.IsSpace(l.peek(0)) {
			l.pos++
		}
		if l.peek(0) != ';' {
			break
		}
		for l.peek(0) != '\n' && l.peek(0) != 0 {
			l.pos++
		}
	}

	start := l.pos
	c := l.peek(0)
	switch {
	case c == 0:
		return token{Type: tokenEOF, Position: start}, nil
	case c == '(':
		l.pos++
		return token{Type: tokenLParen, Value: "(", Position: start}, nil
	case c == ')':
		l.pos++
		return token{Type: tokenRParen, Value: ")", Position: start}, nil
	case c == '"':
		str, err := l.readString()
		if err != nil {
			return token{}, fmt.Errorf("offset %d: %w", start, err)
		}
		return token{Type: tokenString, Value: str, Position: start}, nil
	case c == '.':
		if l.peek(1) == '.' && l.peek(2) == '.' {
			l.pos += 3
			return token{Type: tokenEllipsis, Value: "...", Position: start}, nil
		}
		return token{}, fmt.Errorf("offset %d: unexpected character '.'", start)
	case unicode.IsDigit(c), (c == '-' || c == '+') && unicode.IsDigit(l.peek(1)):
		return l.readNumber(), nil
	case isSymbolChar(c) || c == '-' || c == '+':
		l.pos++
		for isSymbolChar(l.peek(0)) {
			l.pos++
		}
		return token{Type: tokenSymbol, Value: string(l.input[start:l.pos]), Position: start}, nil
	}
	return token{}, fmt.Errorf("offset %d: unexpected character '%c'", start, c)
}

func (l *lexer) readString() (string, error) {
	var b strings.Builder
	l.pos++ // opening quote

	for l.peek(0) != '"' {
		c := l.peek(0)
		if c == 0 {
			return "", fmt.Errorf("unterminated string")
		}
		if c == '\\' {
			l.pos++
			switch l.peek(0) {
			case '"', '\\':
				c = l.peek(0)
			default:
				return "", fmt.Errorf("invalid escape sequence: \\%c", l.peek(0))
			}
		}
		b.WriteRune(c)
		l.pos++
	}
	l.pos++ // closing quote
	return b.String(), nil
}

// readNumber reads an optionally signed integer or float. Floats may have
// a fraction and an exponent, as printed by strconv.FormatFloat.
func (l *lexer) readNumber() token {
	start := l.pos
	typ := tokenInteger
	if l.peek(0) == '-' || l.peek(0) == '+' {
		l.pos++
	}
	l.skipDigits()
	if l.peek(0) == '.' && unicode.IsDigit(l.peek(1)) {
		typ = tokenFloat
		l.pos++
		l.skipDigits()
	}
	if (l.peek(0) == 'e' || l.peek(0) == 'E') &&
		(unicode.IsDigit(l.peek(1)) || (l.peek(1) == '-' || l.peek(1) == '+') && unicode.IsDigit(l.peek(2))) {
		typ = tokenFloat
		l.pos += 2
		l.skipDigits()
	}
	return token{Type: typ, Value: string(l.input[start:l.pos]), Position: start}
}

func (l *lexer) skipDigits() {
	for unicode.IsDigit(l.peek(0)) {
		l.pos++
	}
}

func isSymbolChar(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' || r == '_'
}
