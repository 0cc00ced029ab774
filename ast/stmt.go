/*
File    : sugar/ast/stmt.go
Package : ast

Statement node variants, per spec.md §3 ("Statement node ... Kinds:
compound block; while; conditional; return; declare; assign; bareExpr")
plus the Insert statement and loop-as-sugar-for-while-true supplemented
from original_source (see SPEC_FULL.md §4).
*/
package ast

import "github.com/sugarlang/sugar/types"

func sb(line int) base { return base{line: line} }

// Block is a brace-delimited statement sequence. Entry pushes a scope
// frame; exit pops it and restores the stack pointers (spec.md §8
// "Stack restore").
type Block struct {
	base
	Statements []Statement
}

func (*Block) stmtNode() {}

// NewBlock builds a Block node.
func NewBlock(line int, statements []Statement) *Block {
	return &Block{base: sb(line), Statements: statements}
}

// While is `while cond { body }`. A bare `loop { body }` lowers to
// While with Cond a literal true BoolLiteral.
type While struct {
	base
	Cond Expression
	Body *Block
}

func (*While) stmtNode() {}

// NewWhile builds a While node.
func NewWhile(line int, cond Expression, body *Block) *While {
	return &While{base: sb(line), Cond: cond, Body: body}
}

// ConditionalStmt is if/else-if/else used as a statement. len(Bodies)
// is len(Conds) or len(Conds)+1 (the extra trailing body is the else
// branch), per spec.md §3's invariant.
type ConditionalStmt struct {
	base
	Conds  []Expression
	Bodies []*Block
}

func (*ConditionalStmt) stmtNode() {}

// NewConditionalStmt builds a ConditionalStmt node.
func NewConditionalStmt(line int, conds []Expression, bodies []*Block) *ConditionalStmt {
	return &ConditionalStmt{base: sb(line), Conds: conds, Bodies: bodies}
}

// Return is `return expr;` or a bare `return;`.
type Return struct {
	base
	Value Expression // nil for a bare return
}

func (*Return) stmtNode() {}

// NewReturn builds a Return node.
func NewReturn(line int, value Expression) *Return {
	return &Return{base: sb(line), Value: value}
}

// Declare is one binding introduced by a pattern (the pattern matcher
// lowers a single `let (a, b) = ...` into one Declare per bound name,
// per spec.md §4.6).
type Declare struct {
	base
	Name    string
	Mutable bool
	Cell    *types.TypeCell
	Value   Expression // the sub-expression this name's slot is initialized from
}

func (*Declare) stmtNode() {}

// NewDeclare builds a Declare node.
func NewDeclare(line int, name string, mutable bool, cell *types.TypeCell, value Expression) *Declare {
	return &Declare{base: sb(line), Name: name, Mutable: mutable, Cell: cell, Value: value}
}

// Assign is `target = value;`. Target is a variable, field-access, or
// index expression referring to an existing lvalue.
type Assign struct {
	base
	Target Expression
	Value  Expression
}

func (*Assign) stmtNode() {}

// NewAssign builds an Assign node.
func NewAssign(line int, target, value Expression) *Assign {
	return &Assign{base: sb(line), Target: target, Value: value}
}

// Insert is the supplemented `syntax.rs: Statement::Insert` form: an
// assignment through a borrow, dereferencing Target before writing.
type Insert struct {
	base
	Target Expression
	Value  Expression
}

func (*Insert) stmtNode() {}

// NewInsert builds an Insert node.
func NewInsert(line int, target, value Expression) *Insert {
	return &Insert{base: sb(line), Target: target, Value: value}
}

// BareExpr is an expression evaluated for its side effects (or, as the
// trailing statement of a block, for its value).
type BareExpr struct {
	base
	Value Expression
}

func (*BareExpr) stmtNode() {}

// NewBareExpr builds a BareExpr node.
func NewBareExpr(line int, value Expression) *BareExpr {
	return &BareExpr{base: sb(line), Value: value}
}
