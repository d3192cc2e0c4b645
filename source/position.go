// Package source tracks locations in source text and defines the single
// error type shared by the lexer and the parser.
package source

import "strconv"

// Position is a location in a source file. Line and Column are 0-based;
// Index counts runes from the start of FileText and may equal the rune
// length of FileText (end of input).
type Position struct {
	Index    int
	Line     int
	Column   int
	FileName string
	FileText string
}

// Start returns the position of the first character of text.
func Start(fileName, text string) Position {
	return Position{FileName: fileName, FileText: text}
}

// Advance returns the position after stepping over ch.
func (p Position) Advance(ch rune) Position {
	p.Index++
	if ch == '\n' {
		p.Line++
		p.Column = 0
	} else {
		p.Column++
	}
	return p
}

// String formats the position as file:line:column, 1-based.
func (p Position) String() string {
	name := p.FileName
	if name == "" {
		name = "<input>"
	}
	return name + ":" + strconv.Itoa(p.Line+1) + ":" + strconv.Itoa(p.Column+1)
}
