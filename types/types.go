/*
File    : sugar/types/types.go
Package : types

ExprType is the tagged union of expression types from spec.md §3. It is
the compile-time analogue of the teacher's objects.GoMixObject union
(go-mix/objects/objects.go): there, a GoMixType string tags a runtime
value; here, a Tag int tags a static type that may still be partially
unresolved ("ambiguous").
*/
package types

// Tag identifies which variant of ExprType a value holds.
type Tag int

const (
	// Ambiguous is a fully unknown type, refined by the first unification
	// it takes part in.
	Ambiguous Tag = iota
	// Primitive is a concrete scalar (see Primitive const below).
	TPrimitive
	// AmbiguousPosInteger is an integer literal with no minus sign; it can
	// still unify with any signed or unsigned integer primitive.
	AmbiguousPosInteger
	// AmbiguousNegInteger is a negated integer literal; it can only unify
	// with a signed integer primitive.
	AmbiguousNegInteger
	// AmbiguousFloat is a float literal; it can only unify with F32/F64.
	AmbiguousFloat
	// Borrow is a shared or mutable reference to another type.
	Borrow
	// Array is a fixed-size (possibly length-unknown) homogeneous sequence.
	Array
	// Tuple is (StartTypes, EndTypes) flanking an optional discard-many
	// run of unspecified middle slots.
	Tuple
	// AmbiguousGroup is a bracketed group not yet resolved to Array or
	// Tuple.
	AmbiguousGroup
	// Function is a named function value's type signature.
	Function
	// FunctionPass is an anonymous function-valued type (a function
	// passed as a value, rather than called by name).
	FunctionPass
	// Struct is a reference to a user-defined struct by name.
	Struct
	// AnonStruct is an ordered (fieldName, fieldType) sequence with no
	// declared name.
	AnonStruct
	// DiscardSingle is the "_" pattern/type placeholder.
	DiscardSingle
	// Void is the absence of a value (a function's default return type).
	Void
	// Never is the type of an expression that does not produce control
	// flow (e.g. the unreachable branch of a diverging conditional).
	Never
)

// Primitive enumerates every concrete scalar primitive.
type Primitive int

const (
	I8 Primitive = iota
	I16
	I32
	I64
	I128
	ISize
	U8
	U16
	U32
	U64
	U128
	USize
	F32
	F64
	Char
	Bool
	StringPrim
)

var primitiveNames = map[Primitive]string{
	I8: "i8", I16: "i16", I32: "i32", I64: "i64", I128: "i128", ISize: "isize",
	U8: "u8", U16: "u16", U32: "u32", U64: "u64", U128: "u128", USize: "usize",
	F32: "f32", F64: "f64", Char: "char", Bool: "bool", StringPrim: "string",
}

func (p Primitive) String() string { return primitiveNames[p] }

// PRIMITIVE_BY_NAME maps a lexer primitive-type spelling to its Primitive
// constant, consulted by the parser when it sees a KindPrimitiveType
// token.
var PRIMITIVE_BY_NAME = map[string]Primitive{
	"i8": I8, "i16": I16, "i32": I32, "i64": I64, "i128": I128, "isize": ISize,
	"u8": U8, "u16": U16, "u32": U32, "u64": U64, "u128": U128, "usize": USize,
	"f32": F32, "f64": F64, "char": Char, "bool": Bool,
}

// IsSignedInteger reports whether p is one of i8..i128/isize.
func IsSignedInteger(p Primitive) bool {
	switch p {
	case I8, I16, I32, I64, I128, ISize:
		return true
	}
	return false
}

// IsUnsignedInteger reports whether p is one of u8..u128/usize.
func IsUnsignedInteger(p Primitive) bool {
	switch p {
	case U8, U16, U32, U64, U128, USize:
		return true
	}
	return false
}

// IsInteger reports whether p is any signed or unsigned integer.
func IsInteger(p Primitive) bool { return IsSignedInteger(p) || IsUnsignedInteger(p) }

// IsFloat reports whether p is F32 or F64.
func IsFloat(p Primitive) bool { return p == F32 || p == F64 }

// AnonField is one (name, type) slot of an AnonStruct.
type AnonField struct {
	Name string
	Type ExprType
}

// FuncSig is the shared payload of Function and FunctionPass.
type FuncSig struct {
	Name       string
	LeftArgs   []ExprType
	RightArgs  []ExprType
	ReturnType *ExprType
}

// ExprType is the tagged union described in spec.md §3. Only the fields
// relevant to Tag are meaningful; this mirrors the teacher's preference
// for a small set of concrete structs over one giant interface hierarchy,
// adapted here to a single struct because ExprType values are copied by
// value into TypeCells and compared structurally during unification.
type ExprType struct {
	Tag Tag

	Primitive Primitive // valid when Tag == TPrimitive

	BorrowMutable bool      // valid when Tag == Borrow
	BorrowInner   *ExprType // valid when Tag == Borrow

	ElemType *ExprType // valid when Tag == Array
	Len      *int      // valid when Tag == Array; nil means length unknown

	TupleStart    []ExprType // valid when Tag == Tuple/AmbiguousGroup
	TupleEnd      []ExprType // valid when Tag == Tuple
	TupleDiscard  bool       // whether a DiscardMany run flanks Start/End

	StructName string // valid when Tag == Struct

	AnonFields []AnonField // valid when Tag == AnonStruct

	Func *FuncSig // valid when Tag == Function/FunctionPass
}

// NewAmbiguous returns a fully unresolved type.
func NewAmbiguous() ExprType { return ExprType{Tag: Ambiguous} }

// NewPrimitive wraps a concrete primitive.
func NewPrimitive(p Primitive) ExprType { return ExprType{Tag: TPrimitive, Primitive: p} }

// NewVoid returns the Void type.
func NewVoid() ExprType { return ExprType{Tag: Void} }

// NewNever returns the Never type.
func NewNever() ExprType { return ExprType{Tag: Never} }

// NewDiscardSingle returns the "_" placeholder type.
func NewDiscardSingle() ExprType { return ExprType{Tag: DiscardSingle} }

// NewStruct returns a reference to a user-defined struct by name.
func NewStruct(name string) ExprType { return ExprType{Tag: Struct, StructName: name} }

// NewArray returns a fixed (or length-unknown) array type.
func NewArray(elem ExprType, length *int) ExprType {
	return ExprType{Tag: Array, ElemType: &elem, Len: length}
}

// NewBorrow returns a shared or mutable reference type.
func NewBorrow(mutable bool, inner ExprType) ExprType {
	return ExprType{Tag: Borrow, BorrowMutable: mutable, BorrowInner: &inner}
}

// Equal reports whether two concrete types are structurally identical.
// It does not perform unification - ambiguous/cell resolution must
// happen first via Unify.
func Equal(a, b ExprType) bool {
	if a.Tag != b.Tag {
		return false
	}
	switch a.Tag {
	case TPrimitive:
		return a.Primitive == b.Primitive
	case Struct:
		return a.StructName == b.StructName
	case Borrow:
		return a.BorrowMutable == b.BorrowMutable && Equal(*a.BorrowInner, *b.BorrowInner)
	case Array:
		if (a.Len == nil) != (b.Len == nil) {
			return false
		}
		if a.Len != nil && *a.Len != *b.Len {
			return false
		}
		return Equal(*a.ElemType, *b.ElemType)
	case AnonStruct:
		if len(a.AnonFields) != len(b.AnonFields) {
			return false
		}
		for i := range a.AnonFields {
			if a.AnonFields[i].Name != b.AnonFields[i].Name || !Equal(a.AnonFields[i].Type, b.AnonFields[i].Type) {
				return false
			}
		}
		return true
	case Tuple:
		if len(a.TupleStart) != len(b.TupleStart) || len(a.TupleEnd) != len(b.TupleEnd) {
			return false
		}
		for i := range a.TupleStart {
			if !Equal(a.TupleStart[i], b.TupleStart[i]) {
				return false
			}
		}
		for i := range a.TupleEnd {
			if !Equal(a.TupleEnd[i], b.TupleEnd[i]) {
				return false
			}
		}
		return true
	default:
		return true
	}
}

// String renders a human-readable type name, used in error messages.
func (t ExprType) String() string {
	switch t.Tag {
	case Ambiguous:
		return "<ambiguous>"
	case AmbiguousPosInteger:
		return "<ambiguous positive integer>"
	case AmbiguousNegInteger:
		return "<ambiguous negative integer>"
	case AmbiguousFloat:
		return "<ambiguous float>"
	case TPrimitive:
		return t.Primitive.String()
	case Borrow:
		if t.BorrowMutable {
			return "&mut " + t.BorrowInner.String()
		}
		return "&im " + t.BorrowInner.String()
	case Array:
		if t.Len != nil {
			return "[" + t.ElemType.String() + "]"
		}
		return "[" + t.ElemType.String() + "; ?]"
	case Tuple:
		s := "("
		for i, ty := range t.TupleStart {
			if i > 0 {
				s += ", "
			}
			s += ty.String()
		}
		if t.TupleDiscard {
			s += ", .."
		}
		for _, ty := range t.TupleEnd {
			s += ", " + ty.String()
		}
		return s + ")"
	case AmbiguousGroup:
		return "<ambiguous group>"
	case Struct:
		return t.StructName
	case AnonStruct:
		s := "{"
		for i, f := range t.AnonFields {
			if i > 0 {
				s += ", "
			}
			s += f.Name + ": " + f.Type.String()
		}
		return s + "}"
	case Function, FunctionPass:
		return "func"
	case DiscardSingle:
		return "_"
	case Void:
		return "void"
	case Never:
		return "never"
	}
	return "<unknown>"
}
