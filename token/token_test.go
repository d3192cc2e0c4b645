package token

import (
	"testing"

	"github.com/blazescript/blaze/source"
	"github.com/nalgeon/be"
)

func TestMatches(t *testing.T) {
	tok := New(Keyword, source.Position{}, source.Position{}, Str("val"))

	be.True(t, tok.Matches(Keyword, Str("val")))
	be.True(t, tok.IsKeyword("val"))
	be.True(t, !tok.IsKeyword("var"))
	be.True(t, !tok.Matches(Identifier, Str("val")))
}

func TestMatchesNoValue(t *testing.T) {
	tok := New(LeftCurlyBraces, source.Position{}, source.Position{}, None())

	be.True(t, tok.Matches(LeftCurlyBraces, None()))
	be.True(t, !tok.Matches(LeftCurlyBraces, Str("{")))
}

func TestKindString(t *testing.T) {
	tests := []struct {
		kind     Kind
		expected string
	}{
		{Int, "Int"},
		{PlusEquals, "PlusEquals"},
		{Arrow, "Arrow"},
		{Keyword, "Keyword"},
		{EOF, "EOF"},
		{Kind(999), "Kind(999)"},
	}

	for _, tt := range tests {
		be.Equal(t, tt.kind.String(), tt.expected)
	}
}

func TestTokenString(t *testing.T) {
	be.Equal(t, New(Int, source.Position{}, source.Position{}, IntOf(7)).String(), "Int(7)")
	be.Equal(t, New(Keyword, source.Position{}, source.Position{}, Str("if")).String(), `Keyword("if")`)
	be.Equal(t, New(Plus, source.Position{}, source.Position{}, None()).String(), "Plus")
}

func TestLexeme(t *testing.T) {
	start := source.Start("main.bzs", "val héllo = 1")
	start.Index = 4
	end := start
	end.Index = 9

	tok := New(Identifier, start, end, Str("héllo"))
	be.Equal(t, tok.Lexeme(), "héllo")
}

func TestIsKeywordTable(t *testing.T) {
	be.Equal(t, len(Keywords), 22)
	for _, kw := range Keywords {
		be.True(t, IsKeyword(kw))
	}
	be.True(t, !IsKeyword("true"))
	be.True(t, !IsKeyword("If"))
}
