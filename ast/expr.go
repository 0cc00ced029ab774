/*
File    : sugar/ast/expr.go
Package : ast

Expression node variants, per spec.md §3 ("Expression node ... Data
variants include: identifier, literal ..., struct literal, anonymous
record, field access, conditional expression, function call, binary op,
unary op, array, index, tuple, ambiguous group").
*/
package ast

import (
	"github.com/sugarlang/sugar/lexer"
	"github.com/sugarlang/sugar/types"
)

// eb builds the shared exprBase embedded in every expression node.
func eb(line int, cell *types.TypeCell) exprBase {
	return exprBase{base: base{line: line}, cell: cell}
}

// Identifier references a variable, function, or built-in by name.
type Identifier struct {
	exprBase
	Name string
}

func (*Identifier) exprNode() {}

// NewIdentifier builds an Identifier node.
func NewIdentifier(line int, name string, cell *types.TypeCell) *Identifier {
	return &Identifier{exprBase: eb(line, cell), Name: name}
}

// IntegerLiteral is an integer literal; Cell starts as AmbiguousPosInteger.
// For a negated literal the parser gives the enclosing UnaryOp node an
// AmbiguousNegInteger cell; the literal's own cell is left as it is.
type IntegerLiteral struct {
	exprBase
	Text string
}

func (*IntegerLiteral) exprNode() {}

// NewIntegerLiteral builds an IntegerLiteral node.
func NewIntegerLiteral(line int, text string, cell *types.TypeCell) *IntegerLiteral {
	return &IntegerLiteral{exprBase: eb(line, cell), Text: text}
}

// FloatLiteral is a float literal; Cell starts as AmbiguousFloat.
type FloatLiteral struct {
	exprBase
	Text string
}

func (*FloatLiteral) exprNode() {}

// NewFloatLiteral builds a FloatLiteral node.
func NewFloatLiteral(line int, text string, cell *types.TypeCell) *FloatLiteral {
	return &FloatLiteral{exprBase: eb(line, cell), Text: text}
}

// CharLiteral is a single-character literal.
type CharLiteral struct {
	exprBase
	Value rune
}

func (*CharLiteral) exprNode() {}

// NewCharLiteral builds a CharLiteral node.
func NewCharLiteral(line int, value rune, cell *types.TypeCell) *CharLiteral {
	return &CharLiteral{exprBase: eb(line, cell), Value: value}
}

// StringLiteral is a double-quoted string literal, with escape
// processing already applied by the parser (spec.md §6's escape list:
// \n \t \\ \" \' \xHH \u{...}).
type StringLiteral struct {
	exprBase
	Value string
}

func (*StringLiteral) exprNode() {}

// NewStringLiteral builds a StringLiteral node.
func NewStringLiteral(line int, value string, cell *types.TypeCell) *StringLiteral {
	return &StringLiteral{exprBase: eb(line, cell), Value: value}
}

// BoolLiteral is true/false.
type BoolLiteral struct {
	exprBase
	Value bool
}

func (*BoolLiteral) exprNode() {}

// NewBoolLiteral builds a BoolLiteral node.
func NewBoolLiteral(line int, value bool, cell *types.TypeCell) *BoolLiteral {
	return &BoolLiteral{exprBase: eb(line, cell), Value: value}
}

// StructLiteral is `Name { f: e, ... }`. FieldOrder preserves source
// order for diagnostics even though Fields is keyed by name.
type StructLiteral struct {
	exprBase
	StructName string
	FieldOrder []string
	Fields     map[string]Expression
}

func (*StructLiteral) exprNode() {}

// NewStructLiteral builds a StructLiteral node.
func NewStructLiteral(line int, structName string, order []string, fields map[string]Expression, cell *types.TypeCell) *StructLiteral {
	return &StructLiteral{exprBase: eb(line, cell), StructName: structName, FieldOrder: order, Fields: fields}
}

// AnonRecord is `{ f: e, ... }` with no declared struct name.
type AnonRecord struct {
	exprBase
	Names  []string
	Values []Expression
}

func (*AnonRecord) exprNode() {}

// NewAnonRecord builds an AnonRecord node.
func NewAnonRecord(line int, names []string, values []Expression, cell *types.TypeCell) *AnonRecord {
	return &AnonRecord{exprBase: eb(line, cell), Names: names, Values: values}
}

// FieldAccess is `target.field`, either a named-struct field or an
// anonymous-record field (Anonymous distinguishes the two lookup paths
// at evaluation time).
type FieldAccess struct {
	exprBase
	Target    Expression
	FieldName string
	Anonymous bool
}

func (*FieldAccess) exprNode() {}

// NewFieldAccess builds a FieldAccess node.
func NewFieldAccess(line int, target Expression, fieldName string, anonymous bool, cell *types.TypeCell) *FieldAccess {
	return &FieldAccess{exprBase: eb(line, cell), Target: target, FieldName: fieldName, Anonymous: anonymous}
}

// ConditionalExpr is an if/else-if/else used in expression position;
// Bodies has one more entry than Conds when a trailing else is present.
type ConditionalExpr struct {
	exprBase
	Conds  []Expression
	Bodies []*Block
}

func (*ConditionalExpr) exprNode() {}

// NewConditionalExpr builds a ConditionalExpr node.
func NewConditionalExpr(line int, conds []Expression, bodies []*Block, cell *types.TypeCell) *ConditionalExpr {
	return &ConditionalExpr{exprBase: eb(line, cell), Conds: conds, Bodies: bodies}
}

// Call is a function invocation, split into left/right argument groups
// per the function's declared fixity (spec.md §4.4's fixity table).
type Call struct {
	exprBase
	Name      string
	LeftArgs  []Expression
	RightArgs []Expression
}

func (*Call) exprNode() {}

// NewCall builds a Call node.
func NewCall(line int, name string, left, right []Expression, cell *types.TypeCell) *Call {
	return &Call{exprBase: eb(line, cell), Name: name, LeftArgs: left, RightArgs: right}
}

// BinaryOp is a two-operand operator expression.
type BinaryOp struct {
	exprBase
	Op    lexer.Token
	Left  Expression
	Right Expression
}

func (*BinaryOp) exprNode() {}

// NewBinaryOp builds a BinaryOp node.
func NewBinaryOp(line int, op lexer.Token, left, right Expression, cell *types.TypeCell) *BinaryOp {
	return &BinaryOp{exprBase: eb(line, cell), Op: op, Left: left, Right: right}
}

// UnaryOp is a prefix operator expression (+, -, !, ~, &, & mut, & im).
type UnaryOp struct {
	exprBase
	Op      lexer.Token
	Mutable bool // valid when Op is a borrow: distinguishes &mut from &im
	Operand Expression
}

func (*UnaryOp) exprNode() {}

// NewUnaryOp builds a UnaryOp node.
func NewUnaryOp(line int, op lexer.Token, mutable bool, operand Expression, cell *types.TypeCell) *UnaryOp {
	return &UnaryOp{exprBase: eb(line, cell), Op: op, Mutable: mutable, Operand: operand}
}

// ArrayLit is `[e, e, ...]` or the dollar-delimited array form.
type ArrayLit struct {
	exprBase
	Elements []Expression
}

func (*ArrayLit) exprNode() {}

// NewArrayLit builds an ArrayLit node.
func NewArrayLit(line int, elements []Expression, cell *types.TypeCell) *ArrayLit {
	return &ArrayLit{exprBase: eb(line, cell), Elements: elements}
}

// Index is `target[i]`.
type Index struct {
	exprBase
	Target Expression
	Pos    Expression
}

func (*Index) exprNode() {}

// NewIndex builds an Index node.
func NewIndex(line int, target, pos Expression, cell *types.TypeCell) *Index {
	return &Index{exprBase: eb(line, cell), Target: target, Pos: pos}
}

// TupleLit is a parenthesized or dollar-delimited tuple with more than
// one sibling expression.
type TupleLit struct {
	exprBase
	Elements []Expression
}

func (*TupleLit) exprNode() {}

// NewTupleLit builds a TupleLit node.
func NewTupleLit(line int, elements []Expression, cell *types.TypeCell) *TupleLit {
	return &TupleLit{exprBase: eb(line, cell), Elements: elements}
}

// AmbiguousGroup is a bracketed group not yet resolved to Array or
// Tuple (resolution happens during unification against an expected
// type, per spec.md §4.2 rule 10).
type AmbiguousGroup struct {
	exprBase
	Elements []Expression
}

func (*AmbiguousGroup) exprNode() {}

// NewAmbiguousGroup builds an AmbiguousGroup node.
func NewAmbiguousGroup(line int, elements []Expression, cell *types.TypeCell) *AmbiguousGroup {
	return &AmbiguousGroup{exprBase: eb(line, cell), Elements: elements}
}
