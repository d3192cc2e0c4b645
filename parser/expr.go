package parser

import (
	"github.com/blazescript/blaze/ast"
	"github.com/blazescript/blaze/token"
)

const (
	expectedExpression = "Expected 'val', 'var', int, float, string, char, boolean, identifier, " +
		"'if', 'while', 'for', 'fun', 'not', '+', '-' or '('"
	expectedAtom = "Expected int, float, string, char, boolean, identifier, " +
		"'if', 'while', 'for', 'fun', '+', '-' or '('"
	expectedArgument = "Expected ')', 'val', 'var', int, float, identifier, '+', '-' or '('"
)

// compoundAssign maps x op= e to the operator applied to x and e.
var compoundAssign = map[token.Kind]token.Kind{
	token.PlusEquals:     token.Plus,
	token.MinusEquals:    token.Minus,
	token.MultiplyEquals: token.Multiply,
	token.DivideEquals:   token.Divide,
	token.PowerEquals:    token.Power,
}

func isLogical(tok token.Token) bool {
	return tok.IsKeyword("and") || tok.IsKeyword("or")
}

func isComparison(tok token.Token) bool {
	switch tok.Kind {
	case token.DoubleEquals, token.NotEquals,
		token.LessThan, token.LessThanEquals,
		token.GreaterThan, token.GreaterThanEquals:
		return true
	}
	return false
}

func isAdditive(tok token.Token) bool {
	return tok.Kind == token.Plus || tok.Kind == token.Minus
}

func isMultiplicative(tok token.Token) bool {
	return tok.Kind == token.Multiply || tok.Kind == token.Divide
}

func isPower(tok token.Token) bool {
	return tok.Kind == token.Power
}

func (p *Parser) expr() *Result {
	res := &Result{}

	if p.current.IsKeyword("val") || p.current.IsKeyword("var") {
		keyword := p.consume(res)

		if p.current.Kind != token.Identifier {
			return res.Failure(p.syntaxError("Expected Identifier"))
		}
		name := p.consume(res)

		if p.current.Kind != token.Equals {
			return res.Failure(p.syntaxError("Expected '='"))
		}
		p.consume(res)

		value := res.Register(p.expr())
		if res.Err != nil {
			return res
		}
		return res.Success(&ast.VarAssignNode{
			Span:         ast.Span{PosStart: keyword.Start, PosEnd: value.End()},
			Name:         name,
			Value:        value,
			Reassignable: keyword.IsKeyword("var"),
		})
	}

	node := res.Register(p.binOp(p.compExpr, isLogical, p.compExpr))
	if res.Err != nil {
		return res.Failure(p.syntaxError(expectedExpression))
	}
	return res.Success(node)
}

func (p *Parser) compExpr() *Result {
	if p.current.IsKeyword("not") {
		res := &Result{}
		op := p.consume(res)
		operand := res.Register(p.compExpr())
		if res.Err != nil {
			return res
		}
		return res.Success(&ast.UnaryNode{
			Span:    ast.Span{PosStart: op.Start, PosEnd: operand.End()},
			Op:      op,
			Operand: operand,
		})
	}
	return p.binOp(p.arithExpr, isComparison, p.arithExpr)
}

func (p *Parser) arithExpr() *Result {
	return p.binOp(p.term, isAdditive, p.term)
}

func (p *Parser) term() *Result {
	return p.binOp(p.factor, isMultiplicative, p.factor)
}

func (p *Parser) factor() *Result {
	if isAdditive(p.current) {
		res := &Result{}
		op := p.consume(res)
		operand := res.Register(p.factor())
		if res.Err != nil {
			return res
		}
		return res.Success(&ast.UnaryNode{
			Span:    ast.Span{PosStart: op.Start, PosEnd: operand.End()},
			Op:      op,
			Operand: operand,
		})
	}
	return p.power()
}

// power recurses into factor on the right, so ^ is right-associative and
// binds tighter than unary minus on its left.
func (p *Parser) power() *Result {
	return p.binOp(p.call, isPower, p.factor)
}

// binOp parses left (op right)* into a left-leaning chain of BinOpNodes.
func (p *Parser) binOp(left func() *Result, isOp func(token.Token) bool, right func() *Result) *Result {
	res := &Result{}
	node := res.Register(left())
	if res.Err != nil {
		return res
	}

	for isOp(p.current) {
		op := p.consume(res)
		rhs := res.Register(right())
		if res.Err != nil {
			return res
		}
		node = &ast.BinOpNode{
			Span:  ast.Span{PosStart: node.Start(), PosEnd: rhs.End()},
			Left:  node,
			Op:    op,
			Right: rhs,
		}
	}
	return res.Success(node)
}

func (p *Parser) call() *Result {
	res := &Result{}
	callee := res.Register(p.atom())
	if res.Err != nil {
		return res
	}
	if p.current.Kind != token.LeftParenthesis {
		return res.Success(callee)
	}
	p.consume(res)

	var args []ast.Node
	if p.current.Kind != token.RightParenthesis {
		arg := res.Register(p.expr())
		if res.Err != nil {
			return res.Failure(p.syntaxError(expectedArgument))
		}
		args = append(args, arg)

		for p.current.Kind == token.Comma {
			p.consume(res)
			arg := res.Register(p.expr())
			if res.Err != nil {
				return res.Failure(p.syntaxError(expectedArgument))
			}
			args = append(args, arg)
		}

		if p.current.Kind != token.RightParenthesis {
			return res.Failure(p.syntaxError("Expected ')' or ','"))
		}
	}
	closing := p.consume(res)

	return res.Success(&ast.CallNode{
		Span:   ast.Span{PosStart: callee.Start(), PosEnd: closing.End},
		Callee: callee,
		Args:   args,
	})
}

func (p *Parser) atom() *Result {
	res := &Result{}
	tok := p.current

	switch {
	case tok.Kind == token.Int || tok.Kind == token.Float:
		p.consume(res)
		return res.Success(&ast.NumberNode{Span: ast.SpanOf(tok), Token: tok})

	case tok.Kind == token.Boolean:
		p.consume(res)
		return res.Success(&ast.BooleanNode{Span: ast.SpanOf(tok), Token: tok})

	case tok.Kind == token.String:
		p.consume(res)
		return res.Success(&ast.StringNode{Span: ast.SpanOf(tok), Token: tok})

	case tok.Kind == token.Char:
		p.consume(res)
		return res.Success(&ast.CharNode{Span: ast.SpanOf(tok), Token: tok})

	case tok.Kind == token.Identifier:
		p.consume(res)
		if p.current.Kind == token.Equals {
			p.consume(res)
			value := res.Register(p.expr())
			if res.Err != nil {
				return res
			}
			return res.Success(&ast.VarReassignNode{
				Span:  ast.Span{PosStart: tok.Start, PosEnd: value.End()},
				Name:  tok,
				Value: value,
			})
		}
		if base, ok := compoundAssign[p.current.Kind]; ok {
			compound := p.consume(res)
			value := res.Register(p.expr())
			if res.Err != nil {
				return res
			}
			span := ast.Span{PosStart: tok.Start, PosEnd: value.End()}
			return res.Success(&ast.VarReassignNode{
				Span: span,
				Name: tok,
				Value: &ast.BinOpNode{
					Span:  span,
					Left:  &ast.VarAccessNode{Span: ast.SpanOf(tok), Token: tok},
					Op:    token.New(base, compound.Start, compound.End, token.None()),
					Right: value,
				},
			})
		}
		return res.Success(&ast.VarAccessNode{Span: ast.SpanOf(tok), Token: tok})

	case tok.Kind == token.LeftParenthesis:
		p.consume(res)
		inner := res.Register(p.expr())
		if res.Err != nil {
			return res
		}
		if p.current.Kind != token.RightParenthesis {
			return res.Failure(p.syntaxError("Expected ')'"))
		}
		p.consume(res)
		return res.Success(inner)

	case tok.IsKeyword("if"):
		return p.ifExpr()
	case tok.IsKeyword("while"):
		return p.whileExpr()
	case tok.IsKeyword("for"):
		return p.forExpr()
	case tok.IsKeyword("fun"):
		return p.funDef()
	}

	return res.Failure(p.syntaxError(expectedAtom))
}
