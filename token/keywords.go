package token

// Keywords lists every reserved word, in declaration order.
var Keywords = []string{
	"val", "var", "and", "or", "not", "if", "else", "for", "to", "step",
	"while", "fun", "return", "class", "new", "int", "float", "string",
	"char", "boolean", "extern", "variadic",
}

var keywordSet = func() map[string]bool {
	m := make(map[string]bool, len(Keywords))
	for _, k := range Keywords {
		m[k] = true
	}
	return m
}()

// IsKeyword reports whether name is reserved. Matching is case-sensitive.
func IsKeyword(name string) bool {
	return keywordSet[name]
}
