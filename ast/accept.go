/*
File    : sugar/ast/accept.go
Package : ast

Accept methods implementing the visitor double-dispatch, grounded on
the teacher's parser/node.go Accept-per-node-type pattern.
*/
package ast

func (n *Identifier) Accept(v Visitor) any      { return v.VisitIdentifier(n) }
func (n *IntegerLiteral) Accept(v Visitor) any  { return v.VisitIntegerLiteral(n) }
func (n *FloatLiteral) Accept(v Visitor) any    { return v.VisitFloatLiteral(n) }
func (n *CharLiteral) Accept(v Visitor) any     { return v.VisitCharLiteral(n) }
func (n *StringLiteral) Accept(v Visitor) any   { return v.VisitStringLiteral(n) }
func (n *BoolLiteral) Accept(v Visitor) any     { return v.VisitBoolLiteral(n) }
func (n *StructLiteral) Accept(v Visitor) any   { return v.VisitStructLiteral(n) }
func (n *AnonRecord) Accept(v Visitor) any      { return v.VisitAnonRecord(n) }
func (n *FieldAccess) Accept(v Visitor) any     { return v.VisitFieldAccess(n) }
func (n *ConditionalExpr) Accept(v Visitor) any { return v.VisitConditionalExpr(n) }
func (n *Call) Accept(v Visitor) any            { return v.VisitCall(n) }
func (n *BinaryOp) Accept(v Visitor) any        { return v.VisitBinaryOp(n) }
func (n *UnaryOp) Accept(v Visitor) any         { return v.VisitUnaryOp(n) }
func (n *ArrayLit) Accept(v Visitor) any        { return v.VisitArrayLit(n) }
func (n *Index) Accept(v Visitor) any           { return v.VisitIndex(n) }
func (n *TupleLit) Accept(v Visitor) any        { return v.VisitTupleLit(n) }
func (n *AmbiguousGroup) Accept(v Visitor) any  { return v.VisitAmbiguousGroup(n) }

func (n *Block) Accept(v Visitor) any           { return v.VisitBlock(n) }
func (n *While) Accept(v Visitor) any           { return v.VisitWhile(n) }
func (n *ConditionalStmt) Accept(v Visitor) any { return v.VisitConditionalStmt(n) }
func (n *Return) Accept(v Visitor) any          { return v.VisitReturn(n) }
func (n *Declare) Accept(v Visitor) any         { return v.VisitDeclare(n) }
func (n *Assign) Accept(v Visitor) any          { return v.VisitAssign(n) }
func (n *Insert) Accept(v Visitor) any          { return v.VisitInsert(n) }
func (n *BareExpr) Accept(v Visitor) any        { return v.VisitBareExpr(n) }
