package objects

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/sugarlang/sugar/accessor"
	"github.com/sugarlang/sugar/types"
)

type fakeStrings struct {
	byHandle map[uint64]string
	next     uint64
}

func newFakeStrings() *fakeStrings {
	return &fakeStrings{byHandle: map[uint64]string{}}
}

func (f *fakeStrings) Intern(s string) uint64 {
	f.next++
	f.byHandle[f.next] = s
	return f.next
}

func (f *fakeStrings) Lookup(h uint64) (string, bool) {
	s, ok := f.byHandle[h]
	return s, ok
}

func TestBoolRoundTrip(t *testing.T) {
	ty := types.NewPrimitive(types.Bool)
	raw, err := ToInterpreterBytes(NewBool(true), ty, nil, nil)
	require.NoError(t, err)
	require.Equal(t, []byte{1}, raw)
	v, err := FromBytes(raw, ty, nil, nil)
	require.NoError(t, err)
	require.Equal(t, true, v.Bool)
}

func TestIntegerRoundTripLittleEndian(t *testing.T) {
	ty := types.NewPrimitive(types.I32)
	raw, err := ToInterpreterBytes(NewInt(-2), ty, nil, nil)
	require.NoError(t, err)
	require.Len(t, raw, 4)
	v, err := FromBytes(raw, ty, nil, nil)
	require.NoError(t, err)
	require.Equal(t, int64(-2), v.Int)
}

func TestFloatRoundTrip(t *testing.T) {
	ty := types.NewPrimitive(types.F64)
	raw, err := ToInterpreterBytes(NewFloat(3.5), ty, nil, nil)
	require.NoError(t, err)
	require.Len(t, raw, 8)
	v, err := FromBytes(raw, ty, nil, nil)
	require.NoError(t, err)
	require.InDelta(t, 3.5, v.Float, 1e-9)
}

func TestCharEncodesIntoFixedFourByteBuffer(t *testing.T) {
	ty := types.NewPrimitive(types.Char)
	raw, err := ToInterpreterBytes(NewChar('字'), ty, nil, nil)
	require.NoError(t, err)
	require.Len(t, raw, 4)
	v, err := FromBytes(raw, ty, nil, nil)
	require.NoError(t, err)
	require.Equal(t, '字', v.Char)
}

func TestCharZeroPadsUnusedBytes(t *testing.T) {
	ty := types.NewPrimitive(types.Char)
	raw, err := ToInterpreterBytes(NewChar('a'), ty, nil, nil)
	require.NoError(t, err)
	require.Equal(t, byte('a'), raw[0])
	require.Equal(t, byte(0), raw[1])
	require.Equal(t, byte(0), raw[2])
	require.Equal(t, byte(0), raw[3])
}

func TestStringRoundTripsThroughHandleTable(t *testing.T) {
	strs := newFakeStrings()
	ty := types.NewPrimitive(types.StringPrim)
	raw, err := ToInterpreterBytes(NewString("hello"), ty, strs, nil)
	require.NoError(t, err)
	require.Len(t, raw, types.StringHeaderWidth)
	v, err := FromBytes(raw, ty, strs, nil)
	require.NoError(t, err)
	require.Equal(t, "hello", v.Str)
}

func TestArrayRoundTrip(t *testing.T) {
	length := 3
	ty := types.NewArray(types.NewPrimitive(types.I8), &length)
	raw, err := ToInterpreterBytes(NewArray([]Value{NewInt(1), NewInt(2), NewInt(3)}), ty, nil, nil)
	require.NoError(t, err)
	require.Len(t, raw, 3)
	v, err := FromBytes(raw, ty, nil, nil)
	require.NoError(t, err)
	require.Len(t, v.Fields, 3)
	require.Equal(t, int64(2), v.Fields[1].Int)
}

func TestStructRoundTripUsesDeclaredFieldOrder(t *testing.T) {
	def := accessor.NewStruct("Point", accessor.Public, []accessor.Field{
		{Name: "x", Accessor: accessor.Public, Type: types.NewPrimitive(types.I32)},
		{Name: "y", Accessor: accessor.Public, Type: types.NewPrimitive(types.I32)},
	}, nil)
	table := accessor.StructTable{"Point": def}
	ty := types.NewStruct("Point")
	raw, err := ToInterpreterBytes(NewStruct([]string{"x", "y"}, []Value{NewInt(10), NewInt(20)}), ty, nil, table)
	require.NoError(t, err)
	require.Len(t, raw, def.Size())
	v, err := FromBytes(raw, ty, nil, table)
	require.NoError(t, err)
	require.Equal(t, int64(10), v.Fields[0].Int)
	require.Equal(t, int64(20), v.Fields[1].Int)
}

func TestBorrowRoundTripPacksRegionIntoLowBit(t *testing.T) {
	ty := types.NewBorrow(false, types.NewPrimitive(types.I32))
	idx := StackIndex{Region: GC, ByteOffset: 40}
	raw, err := ToInterpreterBytes(NewBorrow(idx), ty, nil, nil)
	require.NoError(t, err)
	require.Len(t, raw, types.PointerWidth)
	v, err := FromBytes(raw, ty, nil, nil)
	require.NoError(t, err)
	require.Equal(t, idx, v.Borrow)
}
