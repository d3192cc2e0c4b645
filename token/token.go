// Package token defines the lexical tokens of the blaze language.
package token

import (
	"strconv"

	"github.com/blazescript/blaze/source"
)

// Kind is the type of token (literal, operator, punctuation, keyword, ...).
type Kind int

const (
	Unknown Kind = iota

	// Literals
	Int     // 12345
	Float   // 1.5
	String  // "abc"
	Char    // 'a'
	Boolean // true, false

	// Arithmetic
	Plus     // +
	Minus    // -
	Multiply // *
	Divide   // /
	Power    // ^

	PlusEquals     // +=
	MinusEquals    // -=
	MultiplyEquals // *=
	DivideEquals   // /=
	PowerEquals    // ^=

	// Comparison and assignment
	Equals            // =
	DoubleEquals      // ==
	NotEquals         // !=
	LessThan          // <
	LessThanEquals    // <=
	GreaterThan       // >
	GreaterThanEquals // >=
	Arrow             // =>

	// Delimiters
	LeftParenthesis   // (
	RightParenthesis  // )
	LeftCurlyBraces   // {
	RightCurlyBraces  // }
	LeftSquareBraces  // [
	RightSquareBraces // ]
	Colon             // :
	Comma             // ,
	Dot               // .

	Keyword    // val, if, fun, ...
	Identifier // main, foo, _bar
	Newline    // \n or ;
	EOF
)

var kindNames = [...]string{
	Unknown:           "Unknown",
	Int:               "Int",
	Float:             "Float",
	String:            "String",
	Char:              "Char",
	Boolean:           "Boolean",
	Plus:              "Plus",
	Minus:             "Minus",
	Multiply:          "Multiply",
	Divide:            "Divide",
	Power:             "Power",
	PlusEquals:        "PlusEquals",
	MinusEquals:       "MinusEquals",
	MultiplyEquals:    "MultiplyEquals",
	DivideEquals:      "DivideEquals",
	PowerEquals:       "PowerEquals",
	Equals:            "Equals",
	DoubleEquals:      "DoubleEquals",
	NotEquals:         "NotEquals",
	LessThan:          "LessThan",
	LessThanEquals:    "LessThanEquals",
	GreaterThan:       "GreaterThan",
	GreaterThanEquals: "GreaterThanEquals",
	Arrow:             "Arrow",
	LeftParenthesis:   "LeftParenthesis",
	RightParenthesis:  "RightParenthesis",
	LeftCurlyBraces:   "LeftCurlyBraces",
	RightCurlyBraces:  "RightCurlyBraces",
	LeftSquareBraces:  "LeftSquareBraces",
	RightSquareBraces: "RightSquareBraces",
	Colon:             "Colon",
	Comma:             "Comma",
	Dot:               "Dot",
	Keyword:           "Keyword",
	Identifier:        "Identifier",
	Newline:           "Newline",
	EOF:               "EOF",
}

func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// Token is a classified lexical unit together with its source span.
type Token struct {
	Kind  Kind
	Start source.Position
	End   source.Position
	Value Value
}

// New creates a token spanning start to end.
func New(kind Kind, start, end source.Position, value Value) Token {
	return Token{Kind: kind, Start: start, End: end, Value: value}
}

// Matches reports whether both the kind and the value of t equal the given
// pair.
func (t Token) Matches(kind Kind, value Value) bool {
	return t.Kind == kind && t.Value == value
}

// IsKeyword reports whether t is the keyword word.
func (t Token) IsKeyword(word string) bool {
	return t.Matches(Keyword, Str(word))
}

// Lexeme returns the source text covered by the token.
func (t Token) Lexeme() string {
	text := []rune(t.Start.FileText)
	start, end := t.Start.Index, t.End.Index
	if start > len(text) {
		start = len(text)
	}
	if end > len(text) {
		end = len(text)
	}
	if end < start {
		return ""
	}
	return string(text[start:end])
}

func (t Token) String() string {
	if t.Value.Type == NoValue {
		return t.Kind.String()
	}
	return t.Kind.String() + "(" + t.Value.String() + ")"
}
