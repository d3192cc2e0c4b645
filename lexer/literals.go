package lexer

import (
	"github.com/blazescript/blaze/source"
	"github.com/blazescript/blaze/token"
)

var escapes = map[rune]rune{
	'n':  '\n',
	't':  '\t',
	'r':  '\r',
	'0':  0,
	'\\': '\\',
	'"':  '"',
	'\'': '\'',
}

// makeString lexes a double-quoted string. The token value is the decoded
// text; unknown escapes are kept verbatim.
func (l *Lexer) makeString() (token.Token, *source.Error) {
	start := l.pos
	l.advance() // skip opening "

	var text []rune
	escaped := false
	for !l.done && (escaped || l.current != '"') {
		if escaped {
			if r, ok := escapes[l.current]; ok {
				text = append(text, r)
			} else {
				text = append(text, '\\', l.current)
			}
			escaped = false
		} else if l.current == '\\' {
			escaped = true
		} else {
			text = append(text, l.current)
		}
		l.advance()
	}

	if l.done {
		return token.Token{}, source.NewError("Expected Character", start, l.pos, `Expected '"'`)
	}
	l.advance() // skip closing "
	return token.New(token.String, start, l.pos, token.Str(string(text))), nil
}

// makeChar lexes a single-quoted character, optionally escaped.
func (l *Lexer) makeChar() (token.Token, *source.Error) {
	start := l.pos
	l.advance() // skip opening '

	if l.done {
		return token.Token{}, source.NewError("Expected Character", start, l.pos, "Expected '''")
	}
	if l.current == '\'' {
		end := l.pos.Advance(l.current)
		return token.Token{}, source.NewError("Expected Character", start, end, "Expected a character")
	}

	ch := l.current
	if ch == '\\' {
		l.advance()
		if l.done {
			return token.Token{}, source.NewError("Expected Character", start, l.pos, "Expected '''")
		}
		if r, ok := escapes[l.current]; ok {
			ch = r
		} else {
			ch = l.current
		}
	}
	l.advance()

	if l.done || l.current != '\'' {
		return token.Token{}, l.expected(start, "'")
	}
	l.advance() // skip closing '
	return token.New(token.Char, start, l.pos, token.CharOf(ch)), nil
}
