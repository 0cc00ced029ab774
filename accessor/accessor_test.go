package accessor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/sugarlang/sugar/types"
)

func TestIsBuiltinAccessors(t *testing.T) {
	assert.True(t, IsBuiltin("pub"))
	assert.True(t, IsBuiltin("prv"))
	assert.True(t, IsBuiltin("pkg"))
	assert.False(t, IsBuiltin("custom"))
}

func TestNewStructPacksFieldsWithoutPadding(t *testing.T) {
	fields := []Field{
		{Name: "x", Accessor: Public, Type: types.NewPrimitive(types.I32)},
		{Name: "y", Accessor: Public, Type: types.NewPrimitive(types.I8)},
		{Name: "z", Accessor: Public, Type: types.NewPrimitive(types.I64)},
	}
	s := NewStruct("Point", Public, fields, nil)
	assert.Equal(t, 0, s.Fields[0].ByteOffset)
	assert.Equal(t, 4, s.Fields[1].ByteOffset)
	assert.Equal(t, 5, s.Fields[2].ByteOffset)
	assert.Equal(t, 13, s.Size())
}

func TestFieldByName(t *testing.T) {
	fields := []Field{{Name: "x", Accessor: Public, Type: types.NewPrimitive(types.I32)}}
	s := NewStruct("Point", Public, fields, nil)
	f, ok := s.FieldByName("x")
	assert.True(t, ok)
	assert.Equal(t, types.I32, f.Type.Primitive)
	_, ok = s.FieldByName("missing")
	assert.False(t, ok)
}

func TestStructTableFieldTypesImplementsSizer(t *testing.T) {
	inner := NewStruct("Inner", Public, []Field{{Name: "a", Type: types.NewPrimitive(types.I8)}}, nil)
	table := StructTable{"Inner": inner}
	assert.Equal(t, 1, types.SizeOf(types.NewStruct("Inner"), table))
}

func TestResolveFixityPrefix(t *testing.T) {
	g := []Param{{Name: "a", Type: types.NewPrimitive(types.I32)}}
	left, right := ResolveFixity(Prefix, g, nil)
	assert.Empty(t, left)
	assert.Equal(t, g, right)
}

func TestResolveFixityPostfix(t *testing.T) {
	g := []Param{{Name: "a", Type: types.NewPrimitive(types.I32)}}
	left, right := ResolveFixity(Postfix, g, nil)
	assert.Equal(t, g, left)
	assert.Empty(t, right)
}

func TestResolveFixityInfix(t *testing.T) {
	g1 := []Param{{Name: "a", Type: types.NewPrimitive(types.I32)}}
	g2 := []Param{{Name: "b", Type: types.NewPrimitive(types.I32)}}
	left, right := ResolveFixity(Infix, g1, g2)
	assert.Equal(t, g1, left)
	assert.Equal(t, g2, right)
}
