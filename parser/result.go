package parser

import (
	"github.com/blazescript/blaze/ast"
	"github.com/blazescript/blaze/source"
)

// Result is returned by every grammar rule. On return exactly one of Node
// and Err is set. AdvanceCount is the number of tokens the rule consumed,
// which lets callers tell a failure without progress from one after
// partial progress.
type Result struct {
	Node ast.Node
	Err  *source.Error

	AdvanceCount               int
	LastRegisteredAdvanceCount int
	ToReverseCount             int
}

// RegisterAdvancement records that one token was consumed.
func (r *Result) RegisterAdvancement() {
	r.LastRegisteredAdvanceCount = 1
	r.AdvanceCount++
}

// Register merges a sub-rule's result into r and returns its node. The
// caller must check r.Err afterwards.
func (r *Result) Register(other *Result) ast.Node {
	r.LastRegisteredAdvanceCount = other.AdvanceCount
	r.AdvanceCount += other.AdvanceCount
	if other.Err != nil {
		r.Err = other.Err
	}
	return other.Node
}

// TryRegister is like Register, but a failed sub-rule is not merged: its
// advance count is stored in ToReverseCount and nil is returned so the
// caller can rewind the parser.
func (r *Result) TryRegister(other *Result) ast.Node {
	if other.Err != nil {
		r.ToReverseCount = other.AdvanceCount
		return nil
	}
	return r.Register(other)
}

func (r *Result) Success(node ast.Node) *Result {
	r.Node = node
	return r
}

// Failure sets err unless an error is already recorded by a sub-rule that
// consumed tokens; the deeper error is kept in that case.
func (r *Result) Failure(err *source.Error) *Result {
	if r.Err == nil || r.LastRegisteredAdvanceCount == 0 {
		r.Err = err
	}
	r.Node = nil
	return r
}
