package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnifyAmbiguousAdoptsConcrete(t *testing.T) {
	a := NewCell(NewAmbiguous())
	b := NewCell(NewPrimitive(I32))
	require.True(t, Unify(a, b))
	assert.Equal(t, I32, a.Content().Primitive)
	assert.Equal(t, I32, b.Content().Primitive)
}

func TestUnifyMergePropagatesToEarlierHolders(t *testing.T) {
	shared := NewCell(NewAmbiguous())
	alias := shared
	other := NewCell(NewPrimitive(U64))
	require.True(t, Unify(shared, other))
	assert.Equal(t, U64, alias.Content().Primitive)
	assert.True(t, SameClass(shared, other))
}

func TestUnifyAmbiguousPosIntegerAcceptsAnyInteger(t *testing.T) {
	for _, p := range []Primitive{I8, U8, I64, USize} {
		a := NewCell(ExprType{Tag: AmbiguousPosInteger})
		b := NewCell(NewPrimitive(p))
		require.True(t, Unify(a, b), "pos integer should unify with %s", p)
		assert.Equal(t, p, a.Content().Primitive)
	}
}

func TestUnifyAmbiguousNegIntegerRejectsUnsigned(t *testing.T) {
	a := NewCell(ExprType{Tag: AmbiguousNegInteger})
	b := NewCell(NewPrimitive(U32))
	assert.False(t, Unify(a, b))
}

func TestUnifyAmbiguousNegIntegerAcceptsSigned(t *testing.T) {
	a := NewCell(ExprType{Tag: AmbiguousNegInteger})
	b := NewCell(NewPrimitive(I16))
	require.True(t, Unify(a, b))
	assert.Equal(t, I16, a.Content().Primitive)
}

func TestUnifyAmbiguousFloatRejectsInteger(t *testing.T) {
	a := NewCell(ExprType{Tag: AmbiguousFloat})
	b := NewCell(NewPrimitive(I32))
	assert.False(t, Unify(a, b))
}

func TestUnifyAmbiguousFloatAcceptsF64(t *testing.T) {
	a := NewCell(ExprType{Tag: AmbiguousFloat})
	b := NewCell(NewPrimitive(F64))
	require.True(t, Unify(a, b))
	assert.Equal(t, F64, a.Content().Primitive)
}

func TestUnifyNeverAssimilates(t *testing.T) {
	a := NewCell(NewNever())
	b := NewCell(NewPrimitive(Bool))
	require.True(t, Unify(a, b))
	assert.Equal(t, Bool, a.Content().Primitive)
}

func TestUnifyDiscardSingleAssimilates(t *testing.T) {
	a := NewCell(NewDiscardSingle())
	b := NewCell(NewStruct("Point"))
	require.True(t, Unify(a, b))
	assert.Equal(t, "Point", a.Content().StructName)
}

func TestUnifyConcreteMismatchFails(t *testing.T) {
	a := NewCell(NewPrimitive(I32))
	b := NewCell(NewPrimitive(F32))
	assert.False(t, Unify(a, b))
	assert.Equal(t, I32, a.Content().Primitive)
	assert.Equal(t, F32, b.Content().Primitive)
}

func TestUnifyArrayFillsUnknownLength(t *testing.T) {
	known := 4
	a := NewCell(NewArray(NewPrimitive(I32), nil))
	b := NewCell(NewArray(NewPrimitive(I32), &known))
	require.True(t, Unify(a, b))
	require.NotNil(t, a.Content().Len)
	assert.Equal(t, 4, *a.Content().Len)
}

func TestUnifyArrayLengthMismatchFails(t *testing.T) {
	l1, l2 := 3, 4
	a := NewCell(NewArray(NewPrimitive(I32), &l1))
	b := NewCell(NewArray(NewPrimitive(I32), &l2))
	assert.False(t, Unify(a, b))
}

func TestUnifyAnonStructFieldwise(t *testing.T) {
	a := NewCell(ExprType{Tag: AnonStruct, AnonFields: []AnonField{
		{Name: "x", Type: NewAmbiguous()},
		{Name: "y", Type: NewPrimitive(I32)},
	}})
	b := NewCell(ExprType{Tag: AnonStruct, AnonFields: []AnonField{
		{Name: "x", Type: NewPrimitive(I32)},
		{Name: "y", Type: NewPrimitive(I32)},
	}})
	require.True(t, Unify(a, b))
	assert.Equal(t, I32, a.Content().AnonFields[0].Type.Primitive)
}

func TestUnifyAmbiguousGroupBecomesArray(t *testing.T) {
	group := NewCell(ExprType{Tag: AmbiguousGroup, TupleStart: []ExprType{
		{Tag: AmbiguousPosInteger}, {Tag: AmbiguousPosInteger},
	}})
	length := 2
	array := NewCell(NewArray(NewPrimitive(I32), &length))
	require.True(t, Unify(group, array))
	assert.Equal(t, Array, group.Content().Tag)
	assert.Equal(t, I32, group.Content().ElemType.Primitive)
}

func TestUnifyTuplePrefixSuffixAroundDiscard(t *testing.T) {
	a := NewCell(ExprType{
		Tag:          Tuple,
		TupleStart:   []ExprType{NewPrimitive(I32)},
		TupleEnd:     []ExprType{NewPrimitive(Bool)},
		TupleDiscard: true,
	})
	b := NewCell(ExprType{
		Tag:        Tuple,
		TupleStart: []ExprType{NewPrimitive(I32), NewPrimitive(Char), NewPrimitive(F64)},
		TupleEnd:   []ExprType{NewPrimitive(Bool)},
	})
	require.True(t, Unify(a, b))
	assert.Equal(t, Bool, a.Content().TupleEnd[0].Primitive)
}
