package sexy

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/nalgeon/be"
)

const fence = "```"

func TestExtractTestCases_BasicTest(t *testing.T) {
	markdown := `# Binary expressions

## Test: +
` + fence + `blaze-expr
1 + 2
` + fence + `
` + fence + `ast
(binary "+" (int 1) (int 2))
` + fence + `

## Test: program
` + fence + `blaze-program
val x = 1
x
` + fence + `
` + fence + `ast
(statements ...)
` + fence + `
` + fence + `tokens
((Keyword "val") ...)
` + fence

	testCases, err := ExtractTestCases(markdown)
	be.Err(t, err, nil)
	be.Equal(t, len(testCases), 2)

	tc1 := testCases[0]
	be.Equal(t, tc1.Name, "+")
	be.Equal(t, tc1.Input, "1 + 2")
	be.Equal(t, tc1.InputType, InputTypeExpr)
	be.Equal(t, len(tc1.Assertions), 1)
	be.Equal(t, tc1.Assertions[0].Type, AssertionTypeAST)
	be.Equal(t, tc1.Assertions[0].Content, `(binary "+" (int 1) (int 2))`)
	be.Equal(t, tc1.Assertions[0].ParsedSexy.String(), `(binary "+" (int 1) (int 2))`)
	be.Equal(t, tc1.Assertions[0].Line, 8)

	tc2 := testCases[1]
	be.Equal(t, tc2.Input, "val x = 1\nx")
	be.Equal(t, tc2.InputType, InputTypeProgram)
	be.Equal(t, len(tc2.Assertions), 2)
	be.Equal(t, tc2.Assertions[1].Type, AssertionTypeTokens)
}

func TestExtractTestCases_ErrorAssertion(t *testing.T) {
	markdown := `## Test: unterminated
` + fence + `blaze-expr
if x { 1
` + fence + `
` + fence + `error
(error "Invalid Syntax" "Expected '}'" ...)
` + fence

	testCases, err := ExtractTestCases(markdown)
	be.Err(t, err, nil)
	be.Equal(t, len(testCases), 1)
	be.Equal(t, testCases[0].Assertions[0].Type, AssertionTypeError)
	be.Equal(t, len(testCases[0].Assertions[0].ParsedSexy.Items), 4)
}

func TestExtractTestCases_EmptyInput(t *testing.T) {
	markdown := `## Test: empty program
` + fence + `blaze-program
` + fence + `
` + fence + `ast
(statements)
` + fence

	testCases, err := ExtractTestCases(markdown)
	be.Err(t, err, nil)
	be.Equal(t, testCases[0].Input, "")
	be.Equal(t, testCases[0].InputType, InputTypeProgram)
}

func TestExtractTestCases_NoTestCases(t *testing.T) {
	testCases, err := ExtractTestCases("")
	be.Err(t, err, nil)
	be.Equal(t, len(testCases), 0)

	testCases, err = ExtractTestCases("# Title\n\nSome prose.\n\n" + fence + "\nplain block\n" + fence + "\n")
	be.Err(t, err, nil)
	be.Equal(t, len(testCases), 0)
}

func TestExtractTestCases_Errors(t *testing.T) {
	tests := []struct {
		name     string
		markdown string
		want     string
	}{
		{
			"fence outside test",
			"# Title\nLine 2\n\n" + fence + "blaze-expr\n1\n" + fence,
			"line 5: blaze-expr fence found outside of test case",
		},
		{
			"unknown fence outside test",
			fence + "go\nfunc main() {}\n" + fence,
			"unknown fence language 'go' found outside of test case",
		},
		{
			"unknown fence in test",
			"## Test: t\n" + fence + "blaze-expr\n1\n" + fence + "\n" + fence + "types\n(int)\n" + fence,
			"unknown fence language 'types' in test 't'",
		},
		{
			"invalid assertion",
			"## Test: t\n" + fence + "blaze-expr\n1\n" + fence + "\n" + fence + "ast\n(unclosed list\n" + fence,
			"failed to parse assertion in test 't'",
		},
		{
			"missing input",
			"## Test: t\n" + fence + "ast\n(int 1)\n" + fence,
			"test 't' has no input fence",
		},
		{
			"missing assertion",
			"## Test: t\n" + fence + "blaze-expr\n1\n" + fence,
			"test 't' has no assertion fences",
		},
		{
			"multiple inputs",
			"## Test: t\n" + fence + "blaze-expr\n1\n" + fence + "\n" + fence + "blaze-program\n2\n" + fence,
			"multiple input fences found in test 't'",
		},
		{
			"second test invalid",
			"## Test: first\n" + fence + "blaze-expr\n1\n" + fence + "\n" + fence + "ast\n(int 1)\n" + fence +
				"\n\n## Test: second\n" + fence + "ast\n(int 2)\n" + fence,
			"test 'second' has no input fence",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := ExtractTestCases(test.markdown)
			be.Err(t, err, test.want)
		})
	}
}

func TestExtractTestCases_Suites(t *testing.T) {
	files, err := filepath.Glob("../test/*_test.md")
	be.Err(t, err, nil)
	be.True(t, len(files) > 0)

	for _, file := range files {
		content, err := os.ReadFile(file)
		be.Err(t, err, nil)

		testCases, err := ExtractTestCases(string(content))
		be.Err(t, err, nil)
		be.True(t, len(testCases) > 0)

		for _, tc := range testCases {
			be.True(t, tc.Name != "")
			be.True(t, tc.InputType == InputTypeExpr || tc.InputType == InputTypeProgram)
			for _, assertion := range tc.Assertions {
				be.True(t, assertion.ParsedSexy != nil)
			}
		}
	}
}
