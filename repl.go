package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/peterh/liner"

	"github.com/blazescript/blaze/ast"
	"github.com/blazescript/blaze/lexer"
	"github.com/blazescript/blaze/parser"
	"github.com/blazescript/blaze/source"
)

const replHelp = `Enter expressions to see their syntax trees.
Input continues on the next line while it is incomplete.

Commands:
    :tokens <code>  Print the tokens of <code>
    :help           Show this message
    :quit           Leave the REPL`

func (c *cli) replCommand(args []string) int {
	fs, verbose := c.newFlagSet("repl", "repl [-v] [-history file]", "Read lines interactively and print their syntax trees")
	history := fs.String("history", c.cfg.HistoryPath, "History file (empty disables history)")
	if err := fs.Parse(args); err != nil {
		return 1
	}
	c.verbose = *verbose
	if fs.NArg() != 0 {
		fmt.Fprintf(c.stderr, "Error: unexpected argument %q\n", fs.Arg(0))
		fs.Usage()
		return 1
	}

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if *history != "" {
		c.loadHistory(ln, *history)
	}

	fmt.Fprintln(c.stdout, `Blaze REPL. Type ":help" for help.`)
	cont := strings.Repeat(".", len(strings.TrimRight(c.cfg.Prompt, " "))) + " "
	for {
		src, ok := c.readByParseProbe(ln, c.cfg.Prompt, cont)
		if !ok {
			fmt.Fprintln(c.stdout)
			break
		}
		if strings.TrimSpace(src) == "" {
			continue
		}
		ln.AppendHistory(strings.ReplaceAll(src, "\n", " "))

		if strings.HasPrefix(strings.TrimSpace(src), ":") {
			if quit := c.handleReplCommand(src); quit {
				break
			}
			continue
		}
		c.replEval(src)
	}

	if *history != "" {
		c.saveHistory(ln, *history)
	}
	return 0
}

// historyStore is the part of *liner.State that persists history.
type historyStore interface {
	ReadHistory(r io.Reader) (int, error)
	WriteHistory(w io.Writer) (int, error)
}

func (c *cli) loadHistory(h historyStore, path string) {
	f, err := os.Open(path)
	if err != nil {
		return
	}
	defer f.Close()
	n, err := h.ReadHistory(f)
	if err != nil {
		c.logf("Could not read history from %s: %v", path, err)
	}
	c.logf("Loaded %d history entries from %s", n, path)
}

func (c *cli) saveHistory(h historyStore, path string) {
	f, err := os.Create(path)
	if err != nil {
		c.logf("Could not save history: %v", err)
		return
	}
	if _, err := h.WriteHistory(f); err != nil {
		c.logf("Could not save history to %s: %v", path, err)
	}
	if err := f.Close(); err != nil {
		c.logf("Could not save history to %s: %v", path, err)
	}
}

// readByParseProbe reads lines until the buffer parses or fails with an
// error that more input cannot fix. It returns false on end of input.
func (c *cli) readByParseProbe(ln *liner.State, prompt, cont string) (string, bool) {
	var b strings.Builder
	for {
		p := prompt
		if b.Len() > 0 {
			p = cont
		}
		line, err := ln.Prompt(p)
		if errors.Is(err, io.EOF) {
			return "", false
		}
		if err != nil {
			// Ctrl+C drops the pending input.
			return "", true
		}

		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)
		src := b.String()

		if strings.HasPrefix(strings.TrimSpace(src), ":") || !needsMoreInput(src) {
			return src, true
		}
	}
}

// needsMoreInput reports whether src fails to parse only because it ends
// too early, such as an open brace or a trailing operator.
func needsMoreInput(src string) bool {
	_, err := parser.ParseProgramSource("<repl>", src)
	var srcErr *source.Error
	if !errors.As(err, &srcErr) {
		return false
	}
	return srcErr.Start.Index >= len([]rune(src)) && strings.TrimSpace(src) != ""
}

func (c *cli) replEval(src string) {
	node, err := parser.ParseProgramSource("<repl>", src)
	if err != nil {
		c.reportError(err)
		return
	}
	for _, stmt := range node.(*ast.StatementsNode).Statements {
		fmt.Fprintln(c.stdout, ast.ToSExpr(stmt))
	}
}

func (c *cli) handleReplCommand(line string) (quit bool) {
	fields := strings.Fields(line)
	switch fields[0] {
	case ":quit", ":q", ":exit":
		return true
	case ":help", ":h":
		fmt.Fprintln(c.stdout, replHelp)
	case ":tokens", ":t":
		code := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line), fields[0]))
		tokens, err := lexer.Lex("<repl>", code)
		if err != nil {
			c.reportError(err)
			return false
		}
		c.printTokens(tokens)
	default:
		fmt.Fprintf(c.stderr, "Unknown command: %s (try :help)\n", fields[0])
	}
	return false
}
