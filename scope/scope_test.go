package scope

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/sugarlang/sugar/lexer"
	"github.com/sugarlang/sugar/types"
)

func TestDeclareAndLookupInSameScope(t *testing.T) {
	s := New(nil)
	cell := types.NewCell(types.NewPrimitive(types.I32))
	existed := s.Declare("x", &VariableRecord{Mutable: true, Cell: cell})
	assert.False(t, existed)

	rec, ok := s.Lookup("x")
	assert.True(t, ok)
	assert.Same(t, cell, rec.Cell)
	assert.True(t, rec.Mutable)
}

func TestDeclareReportsExistingSameScope(t *testing.T) {
	s := New(nil)
	s.Declare("x", &VariableRecord{Cell: types.NewCell(types.NewAmbiguous())})
	existed := s.Declare("x", &VariableRecord{Cell: types.NewCell(types.NewAmbiguous())})
	assert.True(t, existed)
}

func TestChildScopeSeesParentBinding(t *testing.T) {
	parent := New(nil)
	parent.Declare("x", &VariableRecord{Cell: types.NewCell(types.NewPrimitive(types.I32))})
	child := New(parent)

	_, ok := child.Lookup("x")
	assert.True(t, ok)
}

func TestChildScopeShadowsParentBinding(t *testing.T) {
	parent := New(nil)
	outerCell := types.NewCell(types.NewPrimitive(types.I32))
	parent.Declare("x", &VariableRecord{Cell: outerCell})

	child := New(parent)
	innerCell := types.NewCell(types.NewPrimitive(types.Bool))
	child.Declare("x", &VariableRecord{Cell: innerCell})

	rec, _ := child.Lookup("x")
	assert.Same(t, innerCell, rec.Cell)
	parentRec, _ := parent.Lookup("x")
	assert.Same(t, outerCell, parentRec.Cell)
}

func TestLookupMissingReturnsFalse(t *testing.T) {
	s := New(nil)
	_, ok := s.Lookup("missing")
	assert.False(t, ok)
}

func TestResolveImplementsVariableResolver(t *testing.T) {
	s := New(nil)
	cell := types.NewCell(types.NewPrimitive(types.I32))
	s.Declare("x", &VariableRecord{Mutable: false, Cell: cell, DefToken: lexer.New(lexer.KindIdentifier, "x", "main.sugar", 1, 1)})

	gotCell, mutable, ok := s.Resolve("x")
	assert.True(t, ok)
	assert.False(t, mutable)
	assert.Same(t, cell, gotCell)

	_, _, ok = s.Resolve("nope")
	assert.False(t, ok)
}
