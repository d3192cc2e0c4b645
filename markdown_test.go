package main

import (
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/nalgeon/be"

	"github.com/blazescript/blaze/ast"
	"github.com/blazescript/blaze/lexer"
	"github.com/blazescript/blaze/parser"
	"github.com/blazescript/blaze/sexy"
	"github.com/blazescript/blaze/source"
	"github.com/blazescript/blaze/token"
)

func TestMarkdownSuites(t *testing.T) {
	testFiles, err := filepath.Glob("test/*_test.md")
	be.Err(t, err, nil)
	be.True(t, len(testFiles) > 0)

	for _, testFile := range testFiles {
		testName := strings.TrimSuffix(filepath.Base(testFile), ".md")

		t.Run(testName, func(t *testing.T) {
			content, err := os.ReadFile(testFile)
			be.Err(t, err, nil)

			testCases, err := sexy.ExtractTestCases(string(content))
			be.Err(t, err, nil)

			for _, tc := range testCases {
				t.Run(tc.Name, func(t *testing.T) {
					runTestCase(t, tc)
				})
			}
		})
	}
}

func runTestCase(t *testing.T, tc sexy.TestCase) {
	tokens, lexErr := lexer.Lex("test.bzs", tc.Input)

	var node ast.Node
	err := lexErr
	if err == nil {
		var res *parser.Result
		switch tc.InputType {
		case sexy.InputTypeExpr:
			res = parser.New(tokens).Parse()
		case sexy.InputTypeProgram:
			res = parser.New(tokens).ParseProgram()
		default:
			t.Fatalf("unknown input type: %s", tc.InputType)
		}
		if res.Err != nil {
			err = res.Err
		}
		node = res.Node
	}

	for _, assertion := range tc.Assertions {
		var actual *sexy.Node
		switch assertion.Type {
		case sexy.AssertionTypeAST:
			if err != nil {
				t.Fatalf("line %d: unexpected error: %v", assertion.Line, err)
			}
			parsed, perr := sexy.Parse(ast.ToSExpr(node))
			be.Err(t, perr, nil)
			actual = parsed
		case sexy.AssertionTypeTokens:
			if lexErr != nil {
				t.Fatalf("line %d: unexpected lex error: %v", assertion.Line, lexErr)
			}
			actual = tokensToSexy(tokens)
		case sexy.AssertionTypeError:
			if err == nil {
				t.Fatalf("line %d: expected an error, got %s", assertion.Line, ast.ToSExpr(node))
			}
			var srcErr *source.Error
			be.True(t, errors.As(err, &srcErr))
			actual = errorToSexy(srcErr)
		}

		if merr := sexy.Match(assertion.ParsedSexy, actual); merr != nil {
			t.Errorf("line %d: %v\npattern: %s\nactual:  %s", assertion.Line, merr, assertion.ParsedSexy, actual)
		}
	}
}

// tokensToSexy renders a token stream as a list of Kind or (Kind value).
func tokensToSexy(tokens []token.Token) *sexy.Node {
	list := sexy.NewList()
	for _, tok := range tokens {
		kind := sexy.NewSymbol(tok.Kind.String())
		v := tok.Value
		switch v.Type {
		case token.NoValue:
			list.Items = append(list.Items, kind)
			continue
		case token.StringValue:
			list.Items = append(list.Items, sexy.NewList(kind, sexy.NewString(v.Str)))
		case token.CharValue:
			list.Items = append(list.Items, sexy.NewList(kind, sexy.NewString(string(v.Char))))
		case token.BooleanValue:
			list.Items = append(list.Items, sexy.NewList(kind, sexy.NewSymbol(strconv.FormatBool(v.Bool))))
		case token.IntValue:
			list.Items = append(list.Items, sexy.NewList(kind, sexy.NewInteger(strconv.FormatInt(v.Int, 10))))
		case token.FloatValue:
			list.Items = append(list.Items, sexy.NewList(kind, sexy.NewFloat(strconv.FormatFloat(v.Float, 'g', -1, 64))))
		}
	}
	return list
}

// errorToSexy renders an error as (error title message line column) with
// a 1-based line and column.
func errorToSexy(err *source.Error) *sexy.Node {
	return sexy.NewList(
		sexy.NewSymbol("error"),
		sexy.NewString(err.Title),
		sexy.NewString(err.Message),
		sexy.NewInteger(strconv.Itoa(err.Start.Line+1)),
		sexy.NewInteger(strconv.Itoa(err.Start.Column+1)),
	)
}
