package token

import "strconv"

// ValueType tags the payload carried by a Value.
type ValueType int

const (
	NoValue ValueType = iota
	StringValue
	BooleanValue
	IntValue
	FloatValue
	CharValue
)

// Value is the literal payload of a token. Only the field selected by Type
// is meaningful. Values are comparable with ==.
type Value struct {
	Type  ValueType
	Str   string
	Bool  bool
	Int   int64
	Float float64
	Char  rune
}

func None() Value { return Value{} }
func Str(s string) Value { return Value{Type: StringValue, Str: s} }
func Bool(b bool) Value { return Value{Type: BooleanValue, Bool: b} }
func IntOf(n int64) Value { return Value{Type: IntValue, Int: n} }
func FloatOf(f float64) Value { return Value{Type: FloatValue, Float: f} }
func CharOf(c rune) Value { return Value{Type: CharValue, Char: c} }

func (v Value) String() string {
	switch v.Type {
	case StringValue:
		return strconv.Quote(v.Str)
	case BooleanValue:
		return strconv.FormatBool(v.Bool)
	case IntValue:
		return strconv.FormatInt(v.Int, 10)
	case FloatValue:
		return strconv.FormatFloat(v.Float, 'g', -1, 64)
	case CharValue:
		return strconv.QuoteRune(v.Char)
	default:
		return ""
	}
}
