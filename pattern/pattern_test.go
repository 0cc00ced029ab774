package pattern

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sugarlang/sugar/ast"
	"github.com/sugarlang/sugar/lexer"
	"github.com/sugarlang/sugar/perror"
	"github.com/sugarlang/sugar/types"
)

func tok(name string) lexer.Token {
	return lexer.New(lexer.KindIdentifier, name, "main.sg", 1, 1)
}

func dummyExpr(cell *types.TypeCell) ast.Expression {
	return ast.NewIdentifier(1, "rhs", cell)
}

func TestDeclareIdentBindsOneName(t *testing.T) {
	pat := NewIdent(tok("x"), true, "x")
	stmts, err := DeclareVariablePattern(pat, types.NewPrimitive(types.I32))
	require.Nil(t, err)
	require.Len(t, stmts, 1)
	decl := stmts[0].(*ast.Declare)
	assert.Equal(t, "x", decl.Name)
	assert.True(t, decl.Mutable)
	assert.Equal(t, types.I32, decl.Cell.Content().Primitive)
}

func TestDeclareDiscardSingleBindsNothing(t *testing.T) {
	pat := NewDiscardSingle(tok("_"))
	stmts, err := DeclareVariablePattern(pat, types.NewPrimitive(types.I32))
	require.Nil(t, err)
	assert.Empty(t, stmts)
}

func TestDeclareTupleSplitsPrefixAndSuffix(t *testing.T) {
	a := NewIdent(tok("a"), false, "a")
	b := NewIdent(tok("b"), false, "b")
	pat := NewTuple(tok("("), []Pattern{a}, []Pattern{b}, true)
	declared := types.ExprType{
		Tag:        types.Tuple,
		TupleStart: []types.ExprType{types.NewPrimitive(types.I32), types.NewPrimitive(types.Bool)},
		TupleEnd:   []types.ExprType{types.NewPrimitive(types.Char)},
	}
	stmts, err := DeclareVariablePattern(pat, declared)
	require.Nil(t, err)
	require.Len(t, stmts, 2)
}

func TestDeclareTupleRejectsNonTupleType(t *testing.T) {
	a := NewIdent(tok("a"), false, "a")
	pat := NewTuple(tok("("), []Pattern{a}, nil, false)
	_, err := DeclareVariablePattern(pat, types.NewPrimitive(types.I32))
	require.NotNil(t, err)
	assert.Equal(t, perror.PatternNotMatchExpectedType, err.Kind)
}

func TestDeclareArrayBroadcastsElementType(t *testing.T) {
	a := NewIdent(tok("a"), false, "a")
	b := NewIdent(tok("b"), false, "b")
	pat := NewArray(tok("["), []Pattern{a, b}, nil, false)
	length := 2
	declared := types.NewArray(types.NewPrimitive(types.U8), &length)
	stmts, err := DeclareVariablePattern(pat, declared)
	require.Nil(t, err)
	require.Len(t, stmts, 2)
	for _, s := range stmts {
		decl := s.(*ast.Declare)
		assert.Equal(t, types.U8, decl.Cell.Content().Primitive)
	}
}

type assignTestResolver map[string]struct {
	cell    *types.TypeCell
	mutable bool
}

func (r assignTestResolver) Resolve(name string) (*types.TypeCell, bool, bool) {
	v, ok := r[name]
	if !ok {
		return nil, false, false
	}
	return v.cell, v.mutable, true
}

func TestAssignIdentRequiresMutabilityWhenNotDeclaring(t *testing.T) {
	cell := types.NewCell(types.NewPrimitive(types.I32))
	resolver := assignTestResolver{"x": {cell: cell, mutable: false}}
	pat := NewIdent(tok("x"), false, "x")
	expr := dummyExpr(types.NewCell(types.NewPrimitive(types.I32)))

	_, err := AssignVariablePattern(pat, expr, false, resolver)
	require.NotNil(t, err)
}

func TestAssignIdentSucceedsWhenMutable(t *testing.T) {
	cell := types.NewCell(types.NewAmbiguous())
	resolver := assignTestResolver{"x": {cell: cell, mutable: true}}
	pat := NewIdent(tok("x"), false, "x")
	expr := dummyExpr(types.NewCell(types.NewPrimitive(types.I32)))

	stmts, err := AssignVariablePattern(pat, expr, false, resolver)
	require.Nil(t, err)
	require.Len(t, stmts, 1)
	assert.Equal(t, types.I32, cell.Content().Primitive)
}

func TestAssignUnknownVariableFails(t *testing.T) {
	resolver := assignTestResolver{}
	pat := NewIdent(tok("y"), false, "y")
	expr := dummyExpr(types.NewCell(types.NewPrimitive(types.I32)))

	_, err := AssignVariablePattern(pat, expr, false, resolver)
	require.NotNil(t, err)
}

func TestAssignDiscardSingleProducesBareExpr(t *testing.T) {
	pat := NewDiscardSingle(tok("_"))
	expr := dummyExpr(types.NewCell(types.NewPrimitive(types.I32)))
	stmts, err := AssignVariablePattern(pat, expr, true, assignTestResolver{})
	require.Nil(t, err)
	require.Len(t, stmts, 1)
	_, ok := stmts[0].(*ast.BareExpr)
	assert.True(t, ok)
}

// TestAssignTupleDestructureIndexesEachSlot exercises assignDestructure's
// Tuple path end to end (pattern/lower.go:132): a prefix position lowers
// to a non-negative literal index, a suffix (pat.End) position lowers to
// a negative one, and both route through ast.Index rather than field
// access - eval.VisitIndex's types.Tuple case is what resolves these at
// runtime.
func TestAssignTupleDestructureIndexesEachSlot(t *testing.T) {
	a := NewIdent(tok("a"), false, "a")
	b := NewIdent(tok("b"), false, "b")
	resolver := assignTestResolver{
		"a": {cell: types.NewCell(types.NewAmbiguous()), mutable: true},
		"b": {cell: types.NewCell(types.NewAmbiguous()), mutable: true},
	}
	pat := NewTuple(tok("("), []Pattern{a}, []Pattern{b}, true)
	expr := dummyExpr(types.NewCell(types.ExprType{
		Tag:        types.Tuple,
		TupleStart: []types.ExprType{types.NewPrimitive(types.I32)},
		TupleEnd:   []types.ExprType{types.NewPrimitive(types.Bool)},
	}))

	stmts, err := AssignVariablePattern(pat, expr, true, resolver)
	require.Nil(t, err)
	require.Len(t, stmts, 2)

	aAssign := stmts[0].(*ast.Assign)
	aIndex := aAssign.Value.(*ast.Index)
	assert.Equal(t, "0", aIndex.Pos.(*ast.IntegerLiteral).Text)

	bAssign := stmts[1].(*ast.Assign)
	bIndex := bAssign.Value.(*ast.Index)
	assert.Equal(t, "-1", bIndex.Pos.(*ast.IntegerLiteral).Text)
}

// TestAssignArraySuffixDestructureUsesNegativeIndex exercises the Array
// path of the same lowering with a `..` suffix binding (the `[a, ..b]`
// source form), confirming the suffix position is a negative literal
// rather than a positive one past the array's length.
func TestAssignArraySuffixDestructureUsesNegativeIndex(t *testing.T) {
	a := NewIdent(tok("a"), false, "a")
	b := NewIdent(tok("b"), false, "b")
	resolver := assignTestResolver{
		"a": {cell: types.NewCell(types.NewAmbiguous()), mutable: true},
		"b": {cell: types.NewCell(types.NewAmbiguous()), mutable: true},
	}
	pat := NewArray(tok("["), []Pattern{a}, []Pattern{b}, true)
	length := 3
	expr := dummyExpr(types.NewCell(types.NewArray(types.NewPrimitive(types.I32), &length)))

	stmts, err := AssignVariablePattern(pat, expr, true, resolver)
	require.Nil(t, err)
	require.Len(t, stmts, 2)

	bAssign := stmts[1].(*ast.Assign)
	bIndex := bAssign.Value.(*ast.Index)
	assert.Equal(t, "-1", bIndex.Pos.(*ast.IntegerLiteral).Text)
}
