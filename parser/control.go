package parser

import (
	"github.com/blazescript/blaze/ast"
	"github.com/blazescript/blaze/source"
	"github.com/blazescript/blaze/token"
)

// block parses '{' expr '}' and returns the body and the end of the closing
// brace. Newlines directly inside the braces are skipped. On failure res.Err
// is set and the body is nil.
func (p *Parser) block(res *Result) (ast.Node, source.Position) {
	if p.current.Kind != token.LeftCurlyBraces {
		res.Failure(p.syntaxError("Expected '{'"))
		return nil, source.Position{}
	}
	p.consume(res)
	p.skipNewlines(res)

	body := res.Register(p.expr())
	if res.Err != nil {
		return nil, source.Position{}
	}

	p.skipNewlines(res)
	if p.current.Kind != token.RightCurlyBraces {
		res.Failure(p.syntaxError("Expected '}'"))
		return nil, source.Position{}
	}
	closing := p.consume(res)
	return body, closing.End
}

// atElse reports whether an else follows, possibly on a later line. When
// it does not, the newlines looked past are given back so they still
// separate statements.
func (p *Parser) atElse(res *Result) bool {
	skipped := 0
	for p.current.Kind == token.Newline {
		p.Advance()
		skipped++
	}
	if p.current.IsKeyword("else") {
		for i := 0; i < skipped; i++ {
			res.RegisterAdvancement()
		}
		return true
	}
	p.Reverse(skipped)
	return false
}

func (p *Parser) ifExpr() *Result {
	res := &Result{}
	if !p.current.IsKeyword("if") {
		return res.Failure(p.syntaxError("Expected 'if'"))
	}
	start := p.consume(res).Start

	condition := res.Register(p.expr())
	if res.Err != nil {
		return res
	}
	body, end := p.block(res)
	if res.Err != nil {
		return res
	}

	node := &ast.IfNode{Cases: []ast.IfCase{{Condition: condition, Body: body}}}
	for p.atElse(res) {
		p.consume(res)

		if p.current.IsKeyword("if") {
			p.consume(res)
			condition := res.Register(p.expr())
			if res.Err != nil {
				return res
			}
			body, end = p.block(res)
			if res.Err != nil {
				return res
			}
			node.Cases = append(node.Cases, ast.IfCase{Condition: condition, Body: body})
			continue
		}

		node.Else, end = p.block(res)
		if res.Err != nil {
			return res
		}
		break
	}

	node.Span = ast.Span{PosStart: start, PosEnd: end}
	return res.Success(node)
}

func (p *Parser) whileExpr() *Result {
	res := &Result{}
	if !p.current.IsKeyword("while") {
		return res.Failure(p.syntaxError("Expected 'while'"))
	}
	start := p.consume(res).Start

	condition := res.Register(p.expr())
	if res.Err != nil {
		return res
	}
	body, end := p.block(res)
	if res.Err != nil {
		return res
	}

	return res.Success(&ast.WhileNode{
		Span:      ast.Span{PosStart: start, PosEnd: end},
		Condition: condition,
		Body:      body,
	})
}

func (p *Parser) forExpr() *Result {
	res := &Result{}
	if !p.current.IsKeyword("for") {
		return res.Failure(p.syntaxError("Expected 'for'"))
	}
	start := p.consume(res).Start

	if p.current.Kind != token.Identifier {
		return res.Failure(p.syntaxError("Expected Identifier"))
	}
	name := p.consume(res)

	if p.current.Kind != token.Equals {
		return res.Failure(p.syntaxError("Expected '='"))
	}
	p.consume(res)

	startValue := res.Register(p.expr())
	if res.Err != nil {
		return res
	}

	if !p.current.IsKeyword("to") {
		return res.Failure(p.syntaxError("Expected 'to'"))
	}
	p.consume(res)

	endValue := res.Register(p.expr())
	if res.Err != nil {
		return res
	}

	var step ast.Node
	if p.current.IsKeyword("step") {
		p.consume(res)
		step = res.Register(p.expr())
		if res.Err != nil {
			return res
		}
	}

	body, end := p.block(res)
	if res.Err != nil {
		return res
	}

	return res.Success(&ast.ForNode{
		Span:       ast.Span{PosStart: start, PosEnd: end},
		VarName:    name,
		StartValue: startValue,
		EndValue:   endValue,
		StepValue:  step,
		Body:       body,
	})
}

func (p *Parser) funDef() *Result {
	res := &Result{}
	if !p.current.IsKeyword("fun") {
		return res.Failure(p.syntaxError("Expected 'fun'"))
	}
	start := p.consume(res).Start

	var name *token.Token
	if p.current.Kind == token.Identifier {
		tok := p.consume(res)
		name = &tok
		if p.current.Kind != token.LeftParenthesis {
			return res.Failure(p.syntaxError("Expected '('"))
		}
	} else if p.current.Kind != token.LeftParenthesis {
		return res.Failure(p.syntaxError("Expected '(' or identifier"))
	}
	p.consume(res)

	var params []token.Token
	if p.current.Kind == token.Identifier {
		params = append(params, p.consume(res))
		for p.current.Kind == token.Comma {
			p.consume(res)
			if p.current.Kind != token.Identifier {
				return res.Failure(p.syntaxError("Expected Identifier"))
			}
			params = append(params, p.consume(res))
		}
		if p.current.Kind != token.RightParenthesis {
			return res.Failure(p.syntaxError("Expected ')' or ','"))
		}
	} else if p.current.Kind != token.RightParenthesis {
		return res.Failure(p.syntaxError("Expected ')' or identifier"))
	}
	p.consume(res)

	if p.current.Kind != token.Arrow {
		return res.Failure(p.syntaxError("Expected '=>'"))
	}
	p.consume(res)

	body := res.Register(p.expr())
	if res.Err != nil {
		return res
	}

	return res.Success(&ast.FunDef{
		Span:   ast.Span{PosStart: start, PosEnd: body.End()},
		Name:   name,
		Params: params,
		Body:   body,
	})
}
