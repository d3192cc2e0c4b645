package source

import (
	"testing"

	"github.com/nalgeon/be"
)

func TestAdvance(t *testing.T) {
	text := "ab\nc"
	p := Start("main.bzs", text)
	for _, ch := range text {
		p = p.Advance(ch)
	}

	be.Equal(t, p.Index, 4)
	be.Equal(t, p.Line, 1)
	be.Equal(t, p.Column, 1)
}

func TestAdvanceIsValue(t *testing.T) {
	start := Start("main.bzs", "x")
	end := start.Advance('x')

	be.Equal(t, start.Index, 0)
	be.Equal(t, end.Index, 1)
	be.Equal(t, end.Column, 1)
}

func TestPositionString(t *testing.T) {
	tests := []struct {
		pos      Position
		expected string
	}{
		{Position{FileName: "main.bzs"}, "main.bzs:1:1"},
		{Position{FileName: "a.bzs", Line: 2, Column: 7}, "a.bzs:3:8"},
		{Position{}, "<input>:1:1"},
	}

	for _, tt := range tests {
		be.Equal(t, tt.pos.String(), tt.expected)
	}
}

func TestErrorMessage(t *testing.T) {
	start := Start("main.bzs", "val x = 1 ~ 2")
	start.Index, start.Column = 10, 10
	err := NewError("Illegal Character", start, start.Advance('~'), "Unexpected Character '~'")

	be.Equal(t, err.Error(), "main.bzs:1:11: Illegal Character: Unexpected Character '~'")
}

func TestErrorRender(t *testing.T) {
	start := Start("main.bzs", "val x = 1\nif x { 1 ~")
	start.Line, start.Column = 1, 9
	err := NewError("Illegal Character", start, start.Advance('~'), "Unexpected Character '~'")

	expected := "main.bzs:2:10: Illegal Character: Unexpected Character '~'\n" +
		"   2 | if x { 1 ~\n" +
		"     |          ^"
	be.Equal(t, err.Render(), expected)
}

func TestErrorRenderWideSpan(t *testing.T) {
	start := Start("main.bzs", "foo bar")
	end := start
	for _, ch := range "foo" {
		end = end.Advance(ch)
	}
	err := NewError("Invalid Syntax", start, end, "Expected '='")

	expected := "main.bzs:1:1: Invalid Syntax: Expected '='\n" +
		"   1 | foo bar\n" +
		"     | ^^^"
	be.Equal(t, err.Render(), expected)
}
