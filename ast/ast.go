// Package ast declares the syntax tree produced by the parser.
//
// The set of node types is closed. Every node exclusively owns its
// children and is not modified after construction.
package ast

import (
	"github.com/blazescript/blaze/source"
	"github.com/blazescript/blaze/token"
)

// Node is implemented by every syntax tree node.
type Node interface {
	Start() source.Position
	End() source.Position
	node()
}

// Span locates a node in the source text.
type Span struct {
	PosStart source.Position
	PosEnd   source.Position
}

func (s Span) Start() source.Position { return s.PosStart }
func (s Span) End() source.Position   { return s.PosEnd }

// SpanOf returns the span of a token.
func SpanOf(tok token.Token) Span {
	return Span{PosStart: tok.Start, PosEnd: tok.End}
}

// NumberNode is an Int or Float literal.
type NumberNode struct {
	Span
	Token token.Token
}

// BooleanNode is true or false.
type BooleanNode struct {
	Span
	Token token.Token
}

type StringNode struct {
	Span
	Token token.Token
}

type CharNode struct {
	Span
	Token token.Token
}

// VarAccessNode reads a variable.
type VarAccessNode struct {
	Span
	Token token.Token
}

// VarAssignNode is a new binding. Reassignable is true for var and false
// for val; enforcing it is left to later passes.
type VarAssignNode struct {
	Span
	Name         token.Token
	Value        Node
	Reassignable bool
}

// VarReassignNode assigns to an existing binding.
type VarReassignNode struct {
	Span
	Name  token.Token
	Value Node
}

type BinOpNode struct {
	Span
	Left  Node
	Op    token.Token
	Right Node
}

type UnaryNode struct {
	Span
	Op      token.Token
	Operand Node
}

// IfCase is one condition and the body evaluated when it holds.
type IfCase struct {
	Condition Node
	Body      Node
}

// IfNode is an if / else if chain. Else is nil when there is no plain else.
type IfNode struct {
	Span
	Cases []IfCase
	Else  Node
}

type WhileNode struct {
	Span
	Condition Node
	Body      Node
}

// ForNode counts VarName from StartValue to EndValue. StepValue is nil
// when no step was written.
type ForNode struct {
	Span
	VarName    token.Token
	StartValue Node
	EndValue   Node
	StepValue  Node
	Body       Node
}

// FunDef is a function literal. Name is nil for anonymous functions.
type FunDef struct {
	Span
	Name   *token.Token
	Params []token.Token
	Body   Node
}

type CallNode struct {
	Span
	Callee Node
	Args   []Node
}

// StatementsNode is a newline-separated sequence of expressions.
type StatementsNode struct {
	Span
	Statements []Node
}

func (*NumberNode) node()      {}
func (*BooleanNode) node()     {}
func (*StringNode) node()      {}
func (*CharNode) node()        {}
func (*VarAccessNode) node()   {}
func (*VarAssignNode) node()   {}
func (*VarReassignNode) node() {}
func (*BinOpNode) node()       {}
func (*UnaryNode) node()       {}
func (*IfNode) node()          {}
func (*WhileNode) node()       {}
func (*ForNode) node()         {}
func (*FunDef) node()          {}
func (*CallNode) node()        {}
func (*StatementsNode) node()  {}
