package sexy

import (
	"testing"

	"github.com/nalgeon/be"
)

func TestParseSymbol(t *testing.T) {
	tests := []string{"hello", "var-decl", "test_var", "x", "_", "Int", "nil", "-", "+"}

	for _, input := range tests {
		result, err := Parse(input)
		be.Err(t, err, nil)

		be.Equal(t, result.Type, NodeSymbol)
		be.Equal(t, result.Text, input)
		be.Equal(t, result.String(), input)
	}
}

func TestParseString(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{`"hello"`, "hello"},
		{`""`, ""},
		{`"+"`, "+"},
		{`"test\"quote"`, `test"quote`},
		{`"test\\backslash"`, `test\backslash`},
		{`"héllo"`, "héllo"},
	}

	for _, test := range tests {
		result, err := Parse(test.input)
		be.Err(t, err, nil)

		be.Equal(t, result.Type, NodeString)
		be.Equal(t, result.Text, test.expected)
		be.Equal(t, result.String(), test.input)
	}
}

func TestParseNumbers(t *testing.T) {
	tests := []struct {
		input    string
		nodeType NodeType
	}{
		{"42", NodeInteger},
		{"0", NodeInteger},
		{"-123", NodeInteger},
		{"+456", NodeInteger},
		{"1.5", NodeFloat},
		{"-0.25", NodeFloat},
		{"1e+21", NodeFloat},
		{"2.5E-3", NodeFloat},
	}

	for _, test := range tests {
		result, err := Parse(test.input)
		be.Err(t, err, nil)

		be.Equal(t, result.Type, test.nodeType)
		be.Equal(t, result.Text, test.input)
		be.Equal(t, result.String(), test.input)
	}
}

func TestParseEllipsis(t *testing.T) {
	result, err := Parse("...")
	be.Err(t, err, nil)
	be.Equal(t, result.Type, NodeEllipsis)
	be.Equal(t, result.String(), "...")
}

func TestParseList(t *testing.T) {
	result, err := Parse(`(binary "+" (int 1) (float 2.5) ...)`)
	be.Err(t, err, nil)

	be.Equal(t, result.Type, NodeList)
	be.Equal(t, len(result.Items), 5)
	be.Equal(t, result.Items[0].Text, "binary")
	be.Equal(t, result.Items[1].Type, NodeString)
	be.Equal(t, result.Items[2].Items[1].Type, NodeInteger)
	be.Equal(t, result.Items[3].Items[1].Type, NodeFloat)
	be.Equal(t, result.Items[4].Type, NodeEllipsis)

	empty, err := Parse("()")
	be.Err(t, err, nil)
	be.Equal(t, len(empty.Items), 0)
	be.Equal(t, empty.String(), "()")
}

func TestRoundTripParsing(t *testing.T) {
	tests := []string{
		`(statements (val "x" (int 1)) (binary "+" (var "x") (int 2)))`,
		`(if (case (var "x") (int 1)) (else (unary "-" (int 2))))`,
		`((Keyword "val") (Identifier "x") Equals (Int 1) EOF)`,
		`(error "Invalid Syntax" "Expected '}'" ...)`,
	}

	for _, input := range tests {
		result, err := Parse(input)
		be.Err(t, err, nil)
		be.Equal(t, result.String(), input)
	}
}

func TestParseComments(t *testing.T) {
	result, err := Parse("; leading comment\n(a ; inner\n b)")
	be.Err(t, err, nil)
	be.Equal(t, result.String(), "(a b)")
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"", "unexpected token: EOF"},
		{"(a b", "expected ')' but got EOF"},
		{")", "unexpected token: ')'"},
		{"a b", "expected EOF but got symbol"},
		{`"abc`, "unterminated string"},
		{`"a\nb"`, "invalid escape sequence"},
		{"(a . b)", "unexpected character '.'"},
		{"[1]", "unexpected character '['"},
	}

	for _, test := range tests {
		_, err := Parse(test.input)
		be.Err(t, err, test.want)
	}
}

func TestNodeHelpers(t *testing.T) {
	be.True(t, NewSymbol("x").IsAtom())
	be.True(t, NewEllipsis().IsAtom())
	be.Equal(t, NewList().IsAtom(), false)
	be.True(t, NewSymbol("_").IsWildcard())
	be.Equal(t, NewString("_").IsWildcard(), false)
	be.Equal(t, NewList(NewSymbol("a"), NewInteger("1"), NewString("s")).String(), `(a 1 "s")`)
	be.Equal(t, NodeFloat.String(), "float")
}
