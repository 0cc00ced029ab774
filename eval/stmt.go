/*
File    : sugar/eval/stmt.go
Package : eval

Statement Visit* methods - the half of ast.Visitor that executes for
effect. Grounded on the teacher's eval/eval_statements.go dispatch,
adapted to return nil / *ReturnSignal / *RuntimeError instead of a
boxed "nothing" object.
*/
package eval

import (
	"github.com/sugarlang/sugar/ast"
	"github.com/sugarlang/sugar/objects"
)

// VisitBlock runs a block for its side effects only; a value trailing
// its last statement, if any, is discarded here (expression-position
// blocks are run directly through runBlockStatements instead, see
// runBlockExpr in expr.go).
func (it *Interpreter) VisitBlock(n *ast.Block) any {
	_, sig, rerr := it.runBlockStatements(n.Statements)
	if rerr != nil {
		return rerr
	}
	if sig != nil {
		return sig
	}
	return nil
}

func (it *Interpreter) VisitWhile(n *ast.While) any {
	for {
		condVD, rerr := it.eval(n.Cond)
		if rerr != nil {
			return rerr
		}
		condVal, rerr2 := it.readValue(condVD)
		if rerr2 != nil {
			return rerr2
		}
		if !condVal.Bool {
			return nil
		}
		_, sig, rerr := it.runBlockStatements(n.Body.Statements)
		if rerr != nil {
			return rerr
		}
		if sig != nil {
			return sig
		}
	}
}

func (it *Interpreter) VisitConditionalStmt(n *ast.ConditionalStmt) any {
	for i, cond := range n.Conds {
		vd, rerr := it.eval(cond)
		if rerr != nil {
			return rerr
		}
		v, rerr2 := it.readValue(vd)
		if rerr2 != nil {
			return rerr2
		}
		if v.Bool {
			_, sig, rerr := it.runBlockStatements(n.Bodies[i].Statements)
			if rerr != nil {
				return rerr
			}
			if sig != nil {
				return sig
			}
			return nil
		}
	}
	if len(n.Bodies) > len(n.Conds) {
		_, sig, rerr := it.runBlockStatements(n.Bodies[len(n.Conds)].Statements)
		if rerr != nil {
			return rerr
		}
		if sig != nil {
			return sig
		}
	}
	return nil
}

func (it *Interpreter) VisitReturn(n *ast.Return) any {
	if n.Value == nil {
		return &ReturnSignal{}
	}
	vd, rerr := it.eval(n.Value)
	if rerr != nil {
		return rerr
	}
	return &ReturnSignal{Value: &vd}
}

func (it *Interpreter) VisitDeclare(n *ast.Declare) any {
	vd, rerr := it.eval(n.Value)
	if rerr != nil {
		return rerr
	}
	raw := it.stackReadBytes(vd)
	bound, rerr2 := it.allocRawValue(n.Cell.Content(), raw, objects.Oxy)
	if rerr2 != nil {
		return rerr2
	}
	it.frame.Bind(n.Name, bound)
	return nil
}

// VisitAssign writes directly into the target's own location - Target
// is always an existing lvalue (a variable, field, or index expression),
// never a fresh allocation.
func (it *Interpreter) VisitAssign(n *ast.Assign) any {
	target, rerr := it.eval(n.Target)
	if rerr != nil {
		return rerr
	}
	value, rerr2 := it.eval(n.Value)
	if rerr2 != nil {
		return rerr2
	}
	raw := it.stackReadBytes(value)
	it.stackWriteBytes(target, raw)
	return nil
}

// VisitInsert is Assign through one extra level of indirection: Target
// evaluates to the borrow variable itself, and the write lands at the
// location it points to.
func (it *Interpreter) VisitInsert(n *ast.Insert) any {
	target, rerr := it.eval(n.Target)
	if rerr != nil {
		return rerr
	}
	deref, rerr2 := it.derefBorrow(target)
	if rerr2 != nil {
		return rerr2
	}
	value, rerr3 := it.eval(n.Value)
	if rerr3 != nil {
		return rerr3
	}
	raw := it.stackReadBytes(value)
	it.stackWriteBytes(deref, raw)
	return nil
}

func (it *Interpreter) VisitBareExpr(n *ast.BareExpr) any {
	vd, rerr := it.eval(n.Value)
	if rerr != nil {
		return rerr
	}
	return vd
}
