package main

import (
	"fmt"
	"io"
	"os"
)

func showUsage(w io.Writer) {
	fmt.Fprintf(w, `Blaze - front end for the Blazescript language

Usage:
    blaze <command> [arguments]

Commands:
    tokens <file>           Print the tokens of a .bzs file
    parse [-program] <file> Print the syntax tree of a .bzs file
    check <file>            Parse a .bzs file and report the first error
    eval <code>             Parse inline code and print its syntax tree
    disasm <file>           Disassemble a bytecode file
    repl                    Read lines interactively and print their syntax trees
    help                    Show this help message

Examples:
    blaze tokens examples/hello.bzs
    blaze parse -program examples/hello.bzs
    blaze eval 'val x = 1 + 2'
    blaze disasm out.bzc

Use "blaze <command> -h" for more information about a command.
`)
}

// run dispatches one command and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	if len(args) < 1 {
		showUsage(stderr)
		return 1
	}

	c := newCLI(loadConfig(), stdout, stderr)
	command, rest := args[0], args[1:]

	switch command {
	case "tokens":
		return c.tokensCommand(rest)
	case "parse":
		return c.parseCommand(rest)
	case "check":
		return c.checkCommand(rest)
	case "eval":
		return c.evalCommand(rest)
	case "disasm":
		return c.disasmCommand(rest)
	case "repl":
		return c.replCommand(rest)
	case "help", "-h", "--help":
		showUsage(stdout)
		return 0
	default:
		fmt.Fprintf(stderr, "Unknown command: %s\n\n", command)
		showUsage(stderr)
		return 1
	}
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
