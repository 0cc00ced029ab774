/*
File    : sugar/eval/alloc.go
Package : eval

Stack allocation and byte (de)serialization helpers, implementing
spec.md §5's "next aligned offset" rule on top of objects.AlignUp and
objects.ToInterpreterBytes/FromBytes. Grounded on the teacher's
eval/evaluator.go NamedParameter-style small-helper decomposition,
adapted from a Go-native value map to the two fixed byte regions.
*/
package eval

import (
	"github.com/sugarlang/sugar/objects"
	"github.com/sugarlang/sugar/perror"
	"github.com/sugarlang/sugar/types"
)

// regionSlice returns the backing byte slice and a pointer to its
// current top-of-stack index for region.
func (it *Interpreter) regionSlice(region objects.Region) ([]byte, *int) {
	if region == objects.GC {
		return it.gc, &it.gcTop
	}
	return it.oxy, &it.oxyTop
}

// stackAlloc reserves size_of(t) bytes at the next aligned offset in
// region, zero-filling them, and advances that region's top.
func (it *Interpreter) stackAlloc(line int, t types.ExprType, region objects.Region) (objects.VariableData, *RuntimeError) {
	size := types.SizeOf(t, it.structs)
	stack, top := it.regionSlice(region)
	offset := objects.AlignUp(*top, size)
	if offset+size > len(stack) {
		return objects.VariableData{}, it.runtimeErr(line, perror.StackOverflow, region.String()+" stack overflow")
	}
	for i := offset; i < offset+size; i++ {
		stack[i] = 0
	}
	*top = offset + size
	return objects.VariableData{Index: objects.StackIndex{Region: region, ByteOffset: offset}, Type: t}, nil
}

// stackWriteBytes copies raw into vd's backing bytes.
func (it *Interpreter) stackWriteBytes(vd objects.VariableData, raw []byte) {
	stack, _ := it.regionSlice(vd.Index.Region)
	copy(stack[vd.Index.ByteOffset:], raw)
}

// stackReadBytes copies size_of(vd.Type) bytes out of vd's location.
func (it *Interpreter) stackReadBytes(vd objects.VariableData) []byte {
	size := types.SizeOf(vd.Type, it.structs)
	stack, _ := it.regionSlice(vd.Index.Region)
	out := make([]byte, size)
	copy(out, stack[vd.Index.ByteOffset:vd.Index.ByteOffset+size])
	return out
}

// allocValue allocates and serializes v as t into region.
func (it *Interpreter) allocValue(line int, v objects.Value, t types.ExprType, region objects.Region) (objects.VariableData, *RuntimeError) {
	raw, err := objects.ToInterpreterBytes(v, t, it.strings, it.structs)
	if err != nil {
		return objects.VariableData{}, it.runtimeErr(line, perror.RuntimeTypeMismatch, err.Error())
	}
	vd, rerr := it.stackAlloc(line, t, region)
	if rerr != nil {
		return objects.VariableData{}, rerr
	}
	it.stackWriteBytes(vd, raw)
	return vd, nil
}

// allocRawValue allocates a fresh slot of type t in region and copies
// raw bytes directly into it, bypassing Value serialization - used to
// relocate an already-serialized value (a function argument, a block's
// trailing expression) across a stack-pointer rollback.
func (it *Interpreter) allocRawValue(t types.ExprType, raw []byte, region objects.Region) (objects.VariableData, *RuntimeError) {
	vd, rerr := it.stackAlloc(0, t, region)
	if rerr != nil {
		return objects.VariableData{}, rerr
	}
	if len(raw) > 0 {
		it.stackWriteBytes(vd, raw)
	}
	return vd, nil
}

// readValue deserializes vd's backing bytes into a host-side Value.
func (it *Interpreter) readValue(vd objects.VariableData) (objects.Value, *RuntimeError) {
	raw := it.stackReadBytes(vd)
	v, err := objects.FromBytes(raw, vd.Type, it.strings, it.structs)
	if err != nil {
		return objects.Value{}, it.runtimeErr(0, perror.RuntimeTypeMismatch, err.Error())
	}
	return v, nil
}
