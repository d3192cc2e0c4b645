package source

import (
	"strconv"
	"strings"
)

// Error is a lexical or syntactic error. It never wraps another error.
type Error struct {
	Title   string
	Start   Position
	End     Position
	Message string
}

// NewError builds an Error spanning start to end.
func NewError(title string, start, end Position, message string) *Error {
	return &Error{Title: title, Start: start, End: end, Message: message}
}

func (e *Error) Error() string {
	return e.Start.String() + ": " + e.Title + ": " + e.Message
}

// Render formats the error with the offending source line and a caret run
// under the span:
//
//	main.bzs:1:11: Illegal Character: Unexpected Character '~'
//	   1 | val x = 1 ~ 2
//	     |           ^
func (e *Error) Render() string {
	var b strings.Builder
	b.WriteString(e.Error())

	lines := strings.Split(e.Start.FileText, "\n")
	if e.Start.Line >= len(lines) {
		return b.String()
	}
	line := strings.TrimRight(lines[e.Start.Line], "\r")
	gutter := strconv.Itoa(e.Start.Line + 1)
	if len(gutter) < 4 {
		gutter = strings.Repeat(" ", 4-len(gutter)) + gutter
	}

	b.WriteString("\n")
	b.WriteString(gutter)
	b.WriteString(" | ")
	b.WriteString(line)
	b.WriteString("\n")
	b.WriteString(strings.Repeat(" ", len(gutter)))
	b.WriteString(" | ")

	col := e.Start.Column
	width := len([]rune(line))
	if col > width {
		col = width
	}
	b.WriteString(strings.Repeat(" ", col))

	carets := 1
	if e.End.Line == e.Start.Line && e.End.Column > e.Start.Column {
		carets = e.End.Column - e.Start.Column
	} else if e.End.Line > e.Start.Line && width > col {
		carets = width - col
	}
	b.WriteString(strings.Repeat("^", carets))
	return b.String()
}
