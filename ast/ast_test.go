package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/sugarlang/sugar/types"
)

// recordingVisitor records which Visit method fired, for dispatch tests.
type recordingVisitor struct {
	hit string
}

func (r *recordingVisitor) VisitIdentifier(*Identifier) any          { r.hit = "Identifier"; return nil }
func (r *recordingVisitor) VisitIntegerLiteral(*IntegerLiteral) any  { r.hit = "IntegerLiteral"; return nil }
func (r *recordingVisitor) VisitFloatLiteral(*FloatLiteral) any      { r.hit = "FloatLiteral"; return nil }
func (r *recordingVisitor) VisitCharLiteral(*CharLiteral) any        { r.hit = "CharLiteral"; return nil }
func (r *recordingVisitor) VisitStringLiteral(*StringLiteral) any    { r.hit = "StringLiteral"; return nil }
func (r *recordingVisitor) VisitBoolLiteral(*BoolLiteral) any        { r.hit = "BoolLiteral"; return nil }
func (r *recordingVisitor) VisitStructLiteral(*StructLiteral) any    { r.hit = "StructLiteral"; return nil }
func (r *recordingVisitor) VisitAnonRecord(*AnonRecord) any          { r.hit = "AnonRecord"; return nil }
func (r *recordingVisitor) VisitFieldAccess(*FieldAccess) any        { r.hit = "FieldAccess"; return nil }
func (r *recordingVisitor) VisitConditionalExpr(*ConditionalExpr) any {
	r.hit = "ConditionalExpr"
	return nil
}
func (r *recordingVisitor) VisitCall(*Call) any                   { r.hit = "Call"; return nil }
func (r *recordingVisitor) VisitBinaryOp(*BinaryOp) any            { r.hit = "BinaryOp"; return nil }
func (r *recordingVisitor) VisitUnaryOp(*UnaryOp) any              { r.hit = "UnaryOp"; return nil }
func (r *recordingVisitor) VisitArrayLit(*ArrayLit) any            { r.hit = "ArrayLit"; return nil }
func (r *recordingVisitor) VisitIndex(*Index) any                  { r.hit = "Index"; return nil }
func (r *recordingVisitor) VisitTupleLit(*TupleLit) any            { r.hit = "TupleLit"; return nil }
func (r *recordingVisitor) VisitAmbiguousGroup(*AmbiguousGroup) any { r.hit = "AmbiguousGroup"; return nil }
func (r *recordingVisitor) VisitBlock(*Block) any                  { r.hit = "Block"; return nil }
func (r *recordingVisitor) VisitWhile(*While) any                  { r.hit = "While"; return nil }
func (r *recordingVisitor) VisitConditionalStmt(*ConditionalStmt) any {
	r.hit = "ConditionalStmt"
	return nil
}
func (r *recordingVisitor) VisitReturn(*Return) any   { r.hit = "Return"; return nil }
func (r *recordingVisitor) VisitDeclare(*Declare) any { r.hit = "Declare"; return nil }
func (r *recordingVisitor) VisitAssign(*Assign) any   { r.hit = "Assign"; return nil }
func (r *recordingVisitor) VisitInsert(*Insert) any   { r.hit = "Insert"; return nil }
func (r *recordingVisitor) VisitBareExpr(*BareExpr) any { r.hit = "BareExpr"; return nil }

func TestIdentifierCarriesLineAndCell(t *testing.T) {
	cell := types.NewCell(types.NewAmbiguous())
	id := NewIdentifier(7, "x", cell)
	assert.Equal(t, 7, id.Line())
	assert.Equal(t, cell, id.Cell())
	assert.Equal(t, "x", id.Name)
}

func TestAcceptDispatchesToMatchingVisitMethod(t *testing.T) {
	cell := types.NewCell(types.NewAmbiguous())
	cases := []struct {
		name string
		node interface{ Accept(Visitor) any }
		want string
	}{
		{"Identifier", NewIdentifier(1, "x", cell), "Identifier"},
		{"IntegerLiteral", NewIntegerLiteral(1, "5", cell), "IntegerLiteral"},
		{"Block", NewBlock(1, nil), "Block"},
		{"Return", NewReturn(1, nil), "Return"},
		{"Declare", NewDeclare(1, "x", true, cell, nil), "Declare"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			rv := &recordingVisitor{}
			c.node.Accept(rv)
			assert.Equal(t, c.want, rv.hit)
		})
	}
}

func TestConditionalStmtBodiesCanExceedCondsByOne(t *testing.T) {
	cond := NewBoolLiteral(1, true, types.NewCell(types.NewPrimitive(types.Bool)))
	thenBlock := NewBlock(1, nil)
	elseBlock := NewBlock(1, nil)
	stmt := NewConditionalStmt(1, []Expression{cond}, []*Block{thenBlock, elseBlock})
	assert.Len(t, stmt.Conds, 1)
	assert.Len(t, stmt.Bodies, 2)
}
