/*
File    : sugar/objects/stackindex.go
Package : objects

StackIndex and VariableData are the runtime handles spec.md §3
describes: "(stackIndex, type) where stackIndex = (region, byteOffset)".
Grounded on the teacher's objects package as the home for runtime value
representations, though the representation itself departs from
go-mix's interface-based GoMixObject - spec.md §9 calls for keeping the
"low-level [byte] contract" the rest of the design depends on, so
Sugar's runtime value is a byte offset plus a static type, not a boxed
interface value.
*/
package objects

import "github.com/sugarlang/sugar/types"

// Region identifies which of the interpreter's two byte stacks a
// StackIndex points into.
type Region int

const (
	// Oxy is the stack for explicitly-scoped owning temporaries/locals.
	Oxy Region = iota
	// GC is reserved for future collected allocation; spec.md treats it
	// identically to Oxy in this design.
	GC
)

func (r Region) String() string {
	if r == GC {
		return "GC"
	}
	return "Oxy"
}

// StackIndex locates a value's backing bytes.
type StackIndex struct {
	Region     Region
	ByteOffset int
}

// Offset returns a StackIndex delta bytes past i, used for field access
// and array indexing (both alias the parent rather than copy).
func (i StackIndex) Offset(delta int) StackIndex {
	return StackIndex{Region: i.Region, ByteOffset: i.ByteOffset + delta}
}

// VariableData pairs a runtime location with the static type of the
// value stored there.
type VariableData struct {
	Index StackIndex
	Type  types.ExprType
}
