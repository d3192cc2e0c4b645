package ast

import (
	"strconv"
	"strings"

	"github.com/blazescript/blaze/token"
)

// ToSExpr converts a node to its s-expression representation.
func ToSExpr(node Node) string {
	var b strings.Builder
	writeSExpr(&b, node)
	return b.String()
}

func writeSExpr(b *strings.Builder, node Node) {
	switch n := node.(type) {
	case nil:
		b.WriteString("nil")
	case *NumberNode:
		if n.Token.Kind == token.Float {
			b.WriteString("(float " + strconv.FormatFloat(n.Token.Value.Float, 'g', -1, 64) + ")")
		} else {
			b.WriteString("(int " + strconv.FormatInt(n.Token.Value.Int, 10) + ")")
		}
	case *BooleanNode:
		b.WriteString("(bool " + strconv.FormatBool(n.Token.Value.Bool) + ")")
	case *StringNode:
		b.WriteString("(string " + quote(n.Token.Value.Str) + ")")
	case *CharNode:
		b.WriteString("(char " + quote(string(n.Token.Value.Char)) + ")")
	case *VarAccessNode:
		b.WriteString("(var " + quote(n.Token.Value.Str) + ")")
	case *VarAssignNode:
		head := "(val "
		if n.Reassignable {
			head = "(var-decl "
		}
		b.WriteString(head + quote(n.Name.Value.Str) + " ")
		writeSExpr(b, n.Value)
		b.WriteString(")")
	case *VarReassignNode:
		b.WriteString("(reassign " + quote(n.Name.Value.Str) + " ")
		writeSExpr(b, n.Value)
		b.WriteString(")")
	case *BinOpNode:
		b.WriteString("(binary " + quote(OperatorText(n.Op)) + " ")
		writeSExpr(b, n.Left)
		b.WriteString(" ")
		writeSExpr(b, n.Right)
		b.WriteString(")")
	case *UnaryNode:
		b.WriteString("(unary " + quote(OperatorText(n.Op)) + " ")
		writeSExpr(b, n.Operand)
		b.WriteString(")")
	case *IfNode:
		b.WriteString("(if")
		for _, c := range n.Cases {
			b.WriteString(" (case ")
			writeSExpr(b, c.Condition)
			b.WriteString(" ")
			writeSExpr(b, c.Body)
			b.WriteString(")")
		}
		if n.Else != nil {
			b.WriteString(" (else ")
			writeSExpr(b, n.Else)
			b.WriteString(")")
		}
		b.WriteString(")")
	case *WhileNode:
		b.WriteString("(while ")
		writeSExpr(b, n.Condition)
		b.WriteString(" ")
		writeSExpr(b, n.Body)
		b.WriteString(")")
	case *ForNode:
		b.WriteString("(for " + quote(n.VarName.Value.Str) + " ")
		writeSExpr(b, n.StartValue)
		b.WriteString(" ")
		writeSExpr(b, n.EndValue)
		if n.StepValue != nil {
			b.WriteString(" (step ")
			writeSExpr(b, n.StepValue)
			b.WriteString(")")
		}
		b.WriteString(" ")
		writeSExpr(b, n.Body)
		b.WriteString(")")
	case *FunDef:
		b.WriteString("(fun ")
		if n.Name != nil {
			b.WriteString(quote(n.Name.Value.Str) + " ")
		}
		b.WriteString("(params")
		for _, p := range n.Params {
			b.WriteString(" " + quote(p.Value.Str))
		}
		b.WriteString(") ")
		writeSExpr(b, n.Body)
		b.WriteString(")")
	case *CallNode:
		b.WriteString("(call ")
		writeSExpr(b, n.Callee)
		for _, arg := range n.Args {
			b.WriteString(" ")
			writeSExpr(b, arg)
		}
		b.WriteString(")")
	case *StatementsNode:
		b.WriteString("(statements")
		for _, s := range n.Statements {
			b.WriteString(" ")
			writeSExpr(b, s)
		}
		b.WriteString(")")
	}
}

// OperatorText returns the source spelling of an operator token. Keyword
// operators ("and", "or", "not") are spelled by their keyword.
func OperatorText(op token.Token) string {
	switch op.Kind {
	case token.Plus:
		return "+"
	case token.Minus:
		return "-"
	case token.Multiply:
		return "*"
	case token.Divide:
		return "/"
	case token.Power:
		return "^"
	case token.DoubleEquals:
		return "=="
	case token.NotEquals:
		return "!="
	case token.LessThan:
		return "<"
	case token.LessThanEquals:
		return "<="
	case token.GreaterThan:
		return ">"
	case token.GreaterThanEquals:
		return ">="
	case token.Keyword:
		return op.Value.Str
	default:
		return op.Kind.String()
	}
}

func quote(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	return `"` + s + `"`
}
