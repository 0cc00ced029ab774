/*
File    : sugar/objects/value.go
Package : objects

Value is the deserialized, host-side form of a Sugar runtime value -
the result of reading a VariableData's bytes back out, and the form
builtins and the REPL printer operate on. Grounded on the teacher's
objects/objects.go GoMixObject union (one Kind tag selecting which
payload field is live), adapted from a boxed interface value to a flat
struct since nothing here needs Go-level polymorphism: every consumer
(ToInterpreterBytes, the printer, builtins) already switches on the
static ExprType, so a second type switch over an interface would be
redundant.
*/
package objects

import (
	"fmt"
	"strings"
)

// Kind tags which field of Value is meaningful.
type Kind int

const (
	IntValue Kind = iota
	FloatValue
	BoolValue
	CharValue
	StringValue
	StructValue
	ArrayValue
	TupleValue
	VoidValue
	BorrowValue
)

// Value is a deserialized runtime value. Exactly one of the payload
// fields is meaningful, selected by Kind.
type Value struct {
	Kind Kind

	Int   int64
	Float float64
	Bool  bool
	Char  rune
	Str   string

	// Fields holds Struct field values (declared order) and AnonStruct
	// positional values alike.
	Fields []Value
	// Names, when non-nil, labels Fields by field name (Struct and
	// AnonStruct); nil for Array/Tuple, whose Fields are purely
	// positional.
	Names []string

	// Borrow is the aliased location, valid when Kind == BorrowValue.
	Borrow StackIndex
}

func NewInt(v int64) Value      { return Value{Kind: IntValue, Int: v} }
func NewFloat(v float64) Value  { return Value{Kind: FloatValue, Float: v} }
func NewBool(v bool) Value      { return Value{Kind: BoolValue, Bool: v} }
func NewChar(v rune) Value      { return Value{Kind: CharValue, Char: v} }
func NewString(v string) Value  { return Value{Kind: StringValue, Str: v} }
func NewVoid() Value            { return Value{Kind: VoidValue} }
func NewArray(elems []Value) Value {
	return Value{Kind: ArrayValue, Fields: elems}
}
func NewTuple(elems []Value) Value {
	return Value{Kind: TupleValue, Fields: elems}
}
func NewStruct(names []string, fields []Value) Value {
	return Value{Kind: StructValue, Names: names, Fields: fields}
}
func NewBorrow(idx StackIndex) Value { return Value{Kind: BorrowValue, Borrow: idx} }

// String renders v for REPL/print_string-style output.
func (v Value) String() string {
	switch v.Kind {
	case IntValue:
		return fmt.Sprintf("%d", v.Int)
	case FloatValue:
		return fmt.Sprintf("%g", v.Float)
	case BoolValue:
		return fmt.Sprintf("%t", v.Bool)
	case CharValue:
		return string(v.Char)
	case StringValue:
		return v.Str
	case VoidValue:
		return "()"
	case BorrowValue:
		return fmt.Sprintf("&%s[%d]", v.Borrow.Region, v.Borrow.ByteOffset)
	case ArrayValue:
		parts := make([]string, len(v.Fields))
		for i, f := range v.Fields {
			parts[i] = f.String()
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case TupleValue:
		parts := make([]string, len(v.Fields))
		for i, f := range v.Fields {
			parts[i] = f.String()
		}
		return "(" + strings.Join(parts, ", ") + ")"
	case StructValue:
		parts := make([]string, len(v.Fields))
		for i, f := range v.Fields {
			if v.Names != nil {
				parts[i] = v.Names[i] + ": " + f.String()
			} else {
				parts[i] = f.String()
			}
		}
		return "{" + strings.Join(parts, ", ") + "}"
	default:
		return "<unknown>"
	}
}
