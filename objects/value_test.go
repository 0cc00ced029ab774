package objects

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValueStringRendersEachKind(t *testing.T) {
	assert.Equal(t, "42", NewInt(42).String())
	assert.Equal(t, "true", NewBool(true).String())
	assert.Equal(t, "a", NewChar('a').String())
	assert.Equal(t, "hi", NewString("hi").String())
	assert.Equal(t, "()", NewVoid().String())
	assert.Equal(t, "[1, 2]", NewArray([]Value{NewInt(1), NewInt(2)}).String())
	assert.Equal(t, "(1, 2)", NewTuple([]Value{NewInt(1), NewInt(2)}).String())
	assert.Equal(t, "{x: 1}", NewStruct([]string{"x"}, []Value{NewInt(1)}).String())
}

func TestValueStringBorrow(t *testing.T) {
	b := NewBorrow(StackIndex{Region: Oxy, ByteOffset: 16})
	assert.Equal(t, "&Oxy[16]", b.String())
}
