/*
File    : sugar/ast/ast.go
Package : ast

Expression and Statement node interfaces, plus the Visitor contract
every tree walker (the interpreter, a future pretty-printer) implements.
Grounded on the teacher's parser/node.go NodeVisitor pattern, adapted
from go-mix's dynamically-typed node set to Sugar's statically-typed one:
every node here additionally carries a *types.TypeCell rather than a
resolved runtime object.
*/
package ast

import "github.com/sugarlang/sugar/types"

// Node is the common root of every tree element.
type Node interface {
	Line() int
}

// Expression is any node that produces a value and carries a type cell.
// Per spec.md §3 every expression node owns a typeCell; it starts
// Ambiguous (or an ambiguous family for literals) and is refined by
// Unify as the surrounding tree is built.
type Expression interface {
	Node
	Cell() *types.TypeCell
	exprNode()
}

// Statement is any node that can appear directly inside a block.
type Statement interface {
	Node
	stmtNode()
}

// Visitor dispatches over every concrete node kind. Implemented by the
// evaluator; a debug pretty-printer could implement it too.
type Visitor interface {
	VisitIdentifier(*Identifier) any
	VisitIntegerLiteral(*IntegerLiteral) any
	VisitFloatLiteral(*FloatLiteral) any
	VisitCharLiteral(*CharLiteral) any
	VisitStringLiteral(*StringLiteral) any
	VisitBoolLiteral(*BoolLiteral) any
	VisitStructLiteral(*StructLiteral) any
	VisitAnonRecord(*AnonRecord) any
	VisitFieldAccess(*FieldAccess) any
	VisitConditionalExpr(*ConditionalExpr) any
	VisitCall(*Call) any
	VisitBinaryOp(*BinaryOp) any
	VisitUnaryOp(*UnaryOp) any
	VisitArrayLit(*ArrayLit) any
	VisitIndex(*Index) any
	VisitTupleLit(*TupleLit) any
	VisitAmbiguousGroup(*AmbiguousGroup) any

	VisitBlock(*Block) any
	VisitWhile(*While) any
	VisitConditionalStmt(*ConditionalStmt) any
	VisitReturn(*Return) any
	VisitDeclare(*Declare) any
	VisitAssign(*Assign) any
	VisitInsert(*Insert) any
	VisitBareExpr(*BareExpr) any
}

// base carries the fields every node needs and is embedded rather than
// repeated on each struct.
type base struct {
	line int
}

func (b base) Line() int { return b.line }

// exprBase additionally carries the shared type cell.
type exprBase struct {
	base
	cell *types.TypeCell
}

func (e exprBase) Cell() *types.TypeCell { return e.cell }
