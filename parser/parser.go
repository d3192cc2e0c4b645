// Package parser builds a syntax tree from a token sequence.
//
// The grammar is recursive descent with one rule per precedence level,
// lowest to highest:
//
//	expr       → ('val'|'var') IDENT '=' expr | comp_expr (('and'|'or') comp_expr)*
//	comp_expr  → 'not' comp_expr | arith_expr (relop arith_expr)*
//	arith_expr → term (('+'|'-') term)*
//	term       → factor (('*'|'/') factor)*
//	factor     → ('+'|'-') factor | power
//	power      → call ('^' factor)*
//	call       → atom ('(' (expr (',' expr)*)? ')')?
//	atom       → literal | IDENT (('=' | op'=') expr)? | '(' expr ')'
//	           | if_expr | while_expr | for_expr | fun_def
//
// Every rule returns a *Result. The first syntax error aborts the parse.
package parser

import (
	"github.com/blazescript/blaze/ast"
	"github.com/blazescript/blaze/lexer"
	"github.com/blazescript/blaze/source"
	"github.com/blazescript/blaze/token"
)

const trailingTokensMessage = "Expected Operators, Variables, Functions, etc but found none"

// Parser walks a token sequence. current is tokens[index] while index is in
// range and stays at the last token (EOF) once index runs past the end.
type Parser struct {
	tokens  []token.Token
	index   int
	current token.Token
}

// New creates a parser over tokens, which should end with an EOF token. An
// empty sequence is treated as a lone EOF.
func New(tokens []token.Token) *Parser {
	if len(tokens) == 0 {
		tokens = []token.Token{token.New(token.EOF, source.Position{}, source.Position{}, token.None())}
	}
	return &Parser{tokens: tokens, current: tokens[0]}
}

// ParseSource lexes and parses a single expression.
func ParseSource(fileName, src string) (ast.Node, error) {
	tokens, err := lexer.Lex(fileName, src)
	if err != nil {
		return nil, err
	}
	res := New(tokens).Parse()
	if res.Err != nil {
		return nil, res.Err
	}
	return res.Node, nil
}

// ParseProgramSource lexes and parses newline-separated expressions.
func ParseProgramSource(fileName, src string) (ast.Node, error) {
	tokens, err := lexer.Lex(fileName, src)
	if err != nil {
		return nil, err
	}
	res := New(tokens).ParseProgram()
	if res.Err != nil {
		return nil, res.Err
	}
	return res.Node, nil
}

// Current returns the token under the cursor.
func (p *Parser) Current() token.Token {
	return p.current
}

// Advance moves to the next token and returns it.
func (p *Parser) Advance() token.Token {
	p.index++
	p.sync()
	return p.current
}

// Reverse moves back n tokens and returns the new current token.
func (p *Parser) Reverse(n int) token.Token {
	p.index -= n
	if p.index < 0 {
		p.index = 0
	}
	p.sync()
	return p.current
}

func (p *Parser) sync() {
	if p.index < len(p.tokens) {
		p.current = p.tokens[p.index]
	} else {
		p.current = p.tokens[len(p.tokens)-1]
	}
}

// Parse parses one expression and requires that nothing but newlines
// follows it.
func (p *Parser) Parse() *Result {
	res := &Result{}
	p.skipNewlines(res)

	node := res.Register(p.expr())
	if res.Err != nil {
		return res
	}

	p.skipNewlines(res)
	if p.current.Kind != token.EOF {
		return res.Failure(p.syntaxError(trailingTokensMessage))
	}
	return res.Success(node)
}

// ParseProgram parses newline-separated expressions into a
// StatementsNode.
func (p *Parser) ParseProgram() *Result {
	res := &Result{}
	start := p.current.Start
	p.skipNewlines(res)

	program := &ast.StatementsNode{Span: ast.Span{PosStart: start, PosEnd: start}}
	if p.current.Kind == token.EOF {
		return res.Success(program)
	}

	stmt := res.Register(p.expr())
	if res.Err != nil {
		return res
	}
	program.Statements = append(program.Statements, stmt)

	for {
		newlines := 0
		for p.current.Kind == token.Newline {
			p.consume(res)
			newlines++
		}
		if newlines == 0 || p.current.Kind == token.EOF {
			break
		}

		sub := p.expr()
		stmt := res.TryRegister(sub)
		if stmt == nil {
			if res.ToReverseCount > 0 {
				return res.Failure(sub.Err)
			}
			p.Reverse(res.ToReverseCount)
			break
		}
		program.Statements = append(program.Statements, stmt)
	}

	if p.current.Kind != token.EOF {
		return res.Failure(p.syntaxError(trailingTokensMessage))
	}
	program.PosEnd = program.Statements[len(program.Statements)-1].End()
	return res.Success(program)
}

// consume registers and skips the current token, returning it.
func (p *Parser) consume(res *Result) token.Token {
	tok := p.current
	res.RegisterAdvancement()
	p.Advance()
	return tok
}

func (p *Parser) skipNewlines(res *Result) {
	for p.current.Kind == token.Newline {
		p.consume(res)
	}
}

func (p *Parser) syntaxError(message string) *source.Error {
	return source.NewError("Invalid Syntax", p.current.Start, p.current.End, message)
}
