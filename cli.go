package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/blazescript/blaze/ast"
	"github.com/blazescript/blaze/bytecode"
	"github.com/blazescript/blaze/lexer"
	"github.com/blazescript/blaze/parser"
	"github.com/blazescript/blaze/source"
	"github.com/blazescript/blaze/token"
)

type cli struct {
	cfg     config
	stdout  io.Writer
	stderr  io.Writer
	verbose bool
}

func newCLI(cfg config, stdout, stderr io.Writer) *cli {
	return &cli{cfg: cfg, stdout: stdout, stderr: stderr, verbose: cfg.Verbose}
}

// logf writes a diagnostic line to stderr when verbose output is on.
func (c *cli) logf(format string, args ...any) {
	if c.verbose {
		fmt.Fprintf(c.stderr, format+"\n", args...)
	}
}

func (c *cli) useColor() bool {
	switch c.cfg.Color {
	case colorAlways:
		return true
	case colorNever:
		return false
	}
	f, ok := c.stderr.(*os.File)
	return ok && isTerminal(f.Fd())
}

// reportError prints err to stderr. Lexer and parser errors are shown with
// the offending source line.
func (c *cli) reportError(err error) {
	msg := err.Error()
	var srcErr *source.Error
	if errors.As(err, &srcErr) {
		msg = srcErr.Render()
	}
	if c.useColor() {
		msg = "\x1b[31m" + msg + "\x1b[0m"
	}
	fmt.Fprintln(c.stderr, msg)
}

func (c *cli) newFlagSet(name, usage, summary string) (*flag.FlagSet, *bool) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(c.stderr)
	verbose := fs.Bool("v", c.cfg.Verbose, "Show verbose details")
	fs.Usage = func() {
		fmt.Fprintf(c.stderr, "Usage: blaze %s\n", usage)
		fmt.Fprintf(c.stderr, "%s\n\n", summary)
		fmt.Fprintf(c.stderr, "Flags:\n")
		fs.PrintDefaults()
	}
	return fs, verbose
}

// parseArgs parses flags and requires exactly one positional argument.
func (c *cli) parseArgs(fs *flag.FlagSet, verbose *bool, args []string, what string) bool {
	if err := fs.Parse(args); err != nil {
		return false
	}
	c.verbose = *verbose
	if fs.NArg() != 1 {
		fmt.Fprintf(c.stderr, "Error: expected exactly one %s argument\n", what)
		fs.Usage()
		return false
	}
	return true
}

func (c *cli) readFile(filename string) ([]byte, bool) {
	data, err := os.ReadFile(filename)
	if err != nil {
		fmt.Fprintf(c.stderr, "Error reading file %s: %v\n", filename, err)
		return nil, false
	}
	c.logf("Read %s (%d bytes)", filename, len(data))
	return data, true
}

func (c *cli) printTokens(tokens []token.Token) {
	for _, tok := range tokens {
		fmt.Fprintf(c.stdout, "%d:%d\t%s\n", tok.Start.Line+1, tok.Start.Column+1, tok)
	}
}

func (c *cli) tokensCommand(args []string) int {
	fs, verbose := c.newFlagSet("tokens", "tokens [-v] <file>", "Print the tokens of a .bzs file")
	if !c.parseArgs(fs, verbose, args, "file") {
		return 1
	}
	filename := fs.Arg(0)

	src, ok := c.readFile(filename)
	if !ok {
		return 1
	}
	tokens, err := lexer.Lex(filename, string(src))
	if err != nil {
		c.reportError(err)
		return 1
	}
	c.printTokens(tokens)
	c.logf("%d tokens", len(tokens))
	return 0
}

func (c *cli) parseCommand(args []string) int {
	fs, verbose := c.newFlagSet("parse", "parse [-program] [-v] <file>", "Print the syntax tree of a .bzs file")
	program := fs.Bool("program", false, "Parse newline-separated expressions instead of a single expression")
	if !c.parseArgs(fs, verbose, args, "file") {
		return 1
	}
	filename := fs.Arg(0)

	src, ok := c.readFile(filename)
	if !ok {
		return 1
	}

	parse := parser.ParseSource
	if *program {
		parse = parser.ParseProgramSource
	}
	node, err := parse(filename, string(src))
	if err != nil {
		c.reportError(err)
		return 1
	}
	fmt.Fprintln(c.stdout, ast.ToSExpr(node))
	return 0
}

func (c *cli) checkCommand(args []string) int {
	fs, verbose := c.newFlagSet("check", "check [-v] <file>", "Parse a .bzs file and report the first error")
	if !c.parseArgs(fs, verbose, args, "file") {
		return 1
	}
	filename := fs.Arg(0)

	src, ok := c.readFile(filename)
	if !ok {
		return 1
	}
	c.logf("Checking %s...", filename)

	node, err := parser.ParseProgramSource(filename, string(src))
	if err != nil {
		c.reportError(err)
		return 1
	}

	fmt.Fprintf(c.stdout, "%s: no errors found\n", filename)
	c.logf("AST: %s", ast.ToSExpr(node))
	return 0
}

func (c *cli) evalCommand(args []string) int {
	fs, verbose := c.newFlagSet("eval", "eval [-v] <code>", "Parse inline code and print its syntax tree")
	if !c.parseArgs(fs, verbose, args, "code") {
		return 1
	}
	code := fs.Arg(0)
	c.logf("Parsing: %s", code)

	node, err := parser.ParseProgramSource("<eval>", code)
	if err != nil {
		c.reportError(err)
		return 1
	}
	for _, stmt := range node.(*ast.StatementsNode).Statements {
		fmt.Fprintln(c.stdout, ast.ToSExpr(stmt))
	}
	return 0
}

func (c *cli) disasmCommand(args []string) int {
	fs, verbose := c.newFlagSet("disasm", "disasm [-v] <file>", "Disassemble a bytecode file")
	if !c.parseArgs(fs, verbose, args, "file") {
		return 1
	}
	filename := fs.Arg(0)

	code, ok := c.readFile(filename)
	if !ok {
		return 1
	}
	listing, err := bytecode.Format(code)
	if err != nil {
		c.reportError(fmt.Errorf("disassembling %s: %w", filename, err))
		return 1
	}
	fmt.Fprint(c.stdout, listing)
	return 0
}
