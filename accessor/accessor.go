/*
File    : sugar/accessor/accessor.go
Package : accessor

Accessor, Struct, and Function are the write-once top-level definition
tables spec.md §3 describes: resolved once during phase-2 parsing, then
borrowed read-only by the interpreter (spec.md §5's "Shared resources"
invariant). Grounded on the teacher's function/function.go shape,
generalized from go-mix's single untyped-parameter-list function to
Sugar's left/right argument groups and fixity.
*/
package accessor

import "github.com/sugarlang/sugar/types"

// Accessor is a user- or built-in-defined visibility keyword. Built-in
// accessors (pub, prv, pkg) can never be redefined by source code - their
// names lex as keywords, so the parser rejects `accessor pub { ... }`
// where it expects an accessor name.
type Accessor struct {
	Name      string
	Whitelist []string
	Blacklist []string
}

// Builtin accessor names, per spec.md §6: "pub, prv, pkg".
const (
	Public  = "pub"
	Private = "prv"
	Package = "pkg"
)

// IsBuiltin reports whether name is one of the three accessors that can
// never be redefined.
func IsBuiltin(name string) bool {
	return name == Public || name == Private || name == Package
}

// Field is one member of a Struct: a name, the accessor gating it, and
// its declared type.
type Field struct {
	Name       string
	Accessor   string
	Type       types.ExprType
	ByteOffset int // sum of size_of(preceding fields), packed little-endian
}

// Struct is a user-defined named record type.
type Struct struct {
	Name      string
	Accessor  string
	Fields    []Field
	totalSize int
}

// NewStruct computes field byte offsets (packed, no padding, per
// spec.md §3's "Field offset = sum of preceding size_of(type)") and
// returns the fully laid-out Struct.
func NewStruct(name, accessor string, fields []Field, sizer types.StructSizer) *Struct {
	offset := 0
	laidOut := make([]Field, len(fields))
	for i, f := range fields {
		f.ByteOffset = offset
		laidOut[i] = f
		offset += types.SizeOf(f.Type, sizer)
	}
	return &Struct{Name: name, Accessor: accessor, Fields: laidOut, totalSize: offset}
}

// Size returns the struct's total packed byte width (spec.md §3's
// invariant "size_of(type) is total sum of field sizes").
func (s *Struct) Size() int { return s.totalSize }

// FieldByName returns the named field and whether it exists.
func (s *Struct) FieldByName(name string) (Field, bool) {
	for _, f := range s.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// Param is one declared function parameter: a bound name and its type.
// Every parameter is named, and a parameter has no default value.
type Param struct {
	Name string
	Type types.ExprType
}

// Function is a user-defined callable: a name, the accessor gating it,
// mutability/recursion flags, its left/right parameter groups (per
// spec.md §4.4's fixity table), and its declared return type. Body is
// stored as `any` (holding *ast.Block for a user-defined function, or a
// builtins.Tag for a built-in) to avoid an accessor<->ast
// import cycle - ast already depends on types, and accessor's only
// remaining need from ast is the body pointer itself.
type Function struct {
	Name        string
	Accessor    string
	Mutable     bool
	Recursive   bool
	LeftParams  []Param
	RightParams []Param
	ReturnType  types.ExprType
	Body        any
}

// StructTable resolves struct definitions by name, implementing
// types.StructSizer so SizeOf can recurse into user-defined structs.
type StructTable map[string]*Struct

// FieldTypes implements types.StructSizer.
func (t StructTable) FieldTypes(name string) []types.ExprType {
	s, ok := t[name]
	if !ok {
		return nil
	}
	out := make([]types.ExprType, len(s.Fields))
	for i, f := range s.Fields {
		out[i] = f.Type
	}
	return out
}
