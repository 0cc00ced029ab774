package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeStructSizer map[string][]ExprType

func (f fakeStructSizer) FieldTypes(name string) []ExprType { return f[name] }

func TestSizeOfPrimitives(t *testing.T) {
	cases := []struct {
		p    Primitive
		want int
	}{
		{I8, 1}, {U8, 1}, {Bool, 1},
		{I16, 2}, {U16, 2},
		{I32, 4}, {U32, 4}, {F32, 4}, {Char, 4},
		{I64, 8}, {U64, 8}, {F64, 8},
		{I128, 16}, {U128, 16},
		{ISize, 8}, {USize, 8},
		{StringPrim, 16},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, SizeOf(NewPrimitive(c.p), nil), c.p.String())
	}
}

func TestSizeOfArray(t *testing.T) {
	length := 10
	assert.Equal(t, 40, SizeOf(NewArray(NewPrimitive(I32), &length), nil))
}

func TestSizeOfUnknownLengthArrayIsZero(t *testing.T) {
	assert.Equal(t, 0, SizeOf(NewArray(NewPrimitive(I32), nil), nil))
}

func TestSizeOfStruct(t *testing.T) {
	structs := fakeStructSizer{
		"Point": {NewPrimitive(I32), NewPrimitive(I32)},
	}
	assert.Equal(t, 8, SizeOf(NewStruct("Point"), structs))
}

func TestSizeOfNestedStruct(t *testing.T) {
	structs := fakeStructSizer{
		"Inner": {NewPrimitive(I8)},
		"Outer": {NewStruct("Inner"), NewPrimitive(I64)},
	}
	assert.Equal(t, 9, SizeOf(NewStruct("Outer"), structs))
}

func TestSizeOfVoidAndNeverAreZero(t *testing.T) {
	assert.Equal(t, 0, SizeOf(NewVoid(), nil))
	assert.Equal(t, 0, SizeOf(NewNever(), nil))
}

func TestSizeOfAmbiguousDefaults(t *testing.T) {
	assert.Equal(t, PointerWidth, SizeOf(ExprType{Tag: AmbiguousPosInteger}, nil))
	assert.Equal(t, 4, SizeOf(ExprType{Tag: AmbiguousFloat}, nil))
}

func TestSizeOfTuple(t *testing.T) {
	tup := ExprType{Tag: Tuple, TupleStart: []ExprType{NewPrimitive(I32), NewPrimitive(I8)}}
	assert.Equal(t, 5, SizeOf(tup, nil))
}
