/*
File    : sugar/types/size.go
Package : types

SizeOf computes the byte footprint of a resolved type for the stack
allocator (spec.md §5 "Memory layout"). Structs are packed little-endian
with no padding, matching the teacher's byte-serialization conventions
extended from object kind to object size.
*/
package types

// PointerWidth is the host pointer size Sugar targets: 8 bytes, used for
// isize/usize/references and as the fallback width for any integer
// literal whose ambiguity was never resolved to a concrete primitive.
const PointerWidth = 8

// StringHeaderWidth is a string literal's footprint on the stack: a
// (string-table handle, length) pair, each PointerWidth bytes.
const StringHeaderWidth = 2 * PointerWidth

// StructSizer resolves a struct name to its field types, so SizeOf can
// recurse into user-defined structs without importing the accessor
// package (which in turn depends on types, so the dependency would
// cycle).
type StructSizer interface {
	FieldTypes(structName string) []ExprType
}

// SizeOf returns t's size in bytes. structs resolves named struct
// definitions; pass nil if t is known not to contain a Struct.
func SizeOf(t ExprType, structs StructSizer) int {
	switch t.Tag {
	case TPrimitive:
		return primitiveSize(t.Primitive)

	case Borrow:
		return PointerWidth

	case Array:
		if t.Len == nil {
			return 0
		}
		return *t.Len * SizeOf(*t.ElemType, structs)

	case Tuple:
		total := 0
		for _, f := range t.TupleStart {
			total += SizeOf(f, structs)
		}
		for _, f := range t.TupleEnd {
			total += SizeOf(f, structs)
		}
		return total

	case AnonStruct:
		total := 0
		for _, f := range t.AnonFields {
			total += SizeOf(f.Type, structs)
		}
		return total

	case Struct:
		if structs == nil {
			return 0
		}
		total := 0
		for _, f := range structs.FieldTypes(t.StructName) {
			total += SizeOf(f, structs)
		}
		return total

	case AmbiguousPosInteger, AmbiguousNegInteger:
		// Unresolved integer literal: defaults to pointer width per
		// spec.md's "Ambiguity defaults" invariant.
		return PointerWidth

	case AmbiguousFloat:
		// Unresolved float literal defaults to f32 width.
		return 4

	case DiscardSingle, Void, Never, Ambiguous, AmbiguousGroup:
		return 0

	default:
		return 0
	}
}

func primitiveSize(p Primitive) int {
	switch p {
	case I8, U8, Bool:
		return 1
	case I16, U16:
		return 2
	case I32, U32, F32, Char:
		return 4
	case I64, U64, F64:
		return 8
	case I128, U128:
		return 16
	case ISize, USize:
		return PointerWidth
	case StringPrim:
		return StringHeaderWidth
	}
	return 0
}
