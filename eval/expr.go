/*
File    : sugar/eval/expr.go
Package : eval

Expression Visit* methods - the half of ast.Visitor that produces a
value. Grounded on the teacher's eval/eval_expressions.go one-method-
per-node-kind dispatch, adapted from a boxed GoMixObject result to a
(objects.VariableData, *RuntimeError) pair per node.
*/
package eval

import (
	"strconv"

	"github.com/sugarlang/sugar/ast"
	"github.com/sugarlang/sugar/objects"
	"github.com/sugarlang/sugar/perror"
	"github.com/sugarlang/sugar/types"
)

// eval runs e and narrows its Accept result to the expression contract:
// an objects.VariableData or a *RuntimeError, never both.
func (it *Interpreter) eval(e ast.Expression) (objects.VariableData, *RuntimeError) {
	res := e.Accept(it)
	if rerr, ok := res.(*RuntimeError); ok {
		return objects.VariableData{}, rerr
	}
	return res.(objects.VariableData), nil
}

// derefBorrow follows one level of Borrow indirection, returning vd
// unchanged if it isn't a borrow.
func (it *Interpreter) derefBorrow(vd objects.VariableData) (objects.VariableData, *RuntimeError) {
	if vd.Type.Tag != types.Borrow {
		return vd, nil
	}
	v, rerr := it.readValue(vd)
	if rerr != nil {
		return objects.VariableData{}, rerr
	}
	return objects.VariableData{Index: v.Borrow, Type: *vd.Type.BorrowInner}, nil
}

func (it *Interpreter) allocTyped(line int, v objects.Value, t types.ExprType) any {
	vd, rerr := it.allocValue(line, v, t, objects.Oxy)
	if rerr != nil {
		return rerr
	}
	return vd
}

func (it *Interpreter) allocBool(line int, b bool) any {
	return it.allocTyped(line, objects.NewBool(b), types.NewPrimitive(types.Bool))
}

func (it *Interpreter) VisitIdentifier(n *ast.Identifier) any {
	vd, ok := it.frame.Lookup(n.Name)
	if !ok {
		return it.runtimeErr(n.Line(), perror.VariableDoesNotExist, n.Name)
	}
	return vd
}

func (it *Interpreter) VisitIntegerLiteral(n *ast.IntegerLiteral) any {
	t := n.Cell().Content()
	var i64 int64
	if t.Tag == types.TPrimitive && types.IsUnsignedInteger(t.Primitive) {
		u, err := strconv.ParseUint(n.Text, 10, 64)
		if err != nil {
			return it.runtimeErr(n.Line(), perror.RuntimeTypeMismatch, "bad integer literal "+n.Text)
		}
		i64 = int64(u)
	} else {
		v, err := strconv.ParseInt(n.Text, 10, 64)
		if err != nil {
			return it.runtimeErr(n.Line(), perror.RuntimeTypeMismatch, "bad integer literal "+n.Text)
		}
		i64 = v
	}
	return it.allocTyped(n.Line(), objects.NewInt(i64), t)
}

func (it *Interpreter) VisitFloatLiteral(n *ast.FloatLiteral) any {
	t := n.Cell().Content()
	v, err := strconv.ParseFloat(n.Text, 64)
	if err != nil {
		return it.runtimeErr(n.Line(), perror.RuntimeTypeMismatch, "bad float literal "+n.Text)
	}
	return it.allocTyped(n.Line(), objects.NewFloat(v), t)
}

func (it *Interpreter) VisitCharLiteral(n *ast.CharLiteral) any {
	return it.allocTyped(n.Line(), objects.NewChar(n.Value), n.Cell().Content())
}

func (it *Interpreter) VisitStringLiteral(n *ast.StringLiteral) any {
	return it.allocTyped(n.Line(), objects.NewString(n.Value), n.Cell().Content())
}

func (it *Interpreter) VisitBoolLiteral(n *ast.BoolLiteral) any {
	return it.allocTyped(n.Line(), objects.NewBool(n.Value), n.Cell().Content())
}

// VisitStructLiteral serializes fields in the struct DEFINITION's
// declared order, not the literal's source order - ToInterpreterBytes
// zips positionally against that order, so building Value.Fields any
// other way would misalign the packed bytes.
func (it *Interpreter) VisitStructLiteral(n *ast.StructLiteral) any {
	def, ok := it.structs[n.StructName]
	if !ok {
		return it.runtimeErr(n.Line(), perror.RuntimeTypeMismatch, "unknown struct "+n.StructName)
	}
	names := make([]string, len(def.Fields))
	vals := make([]objects.Value, len(def.Fields))
	for i, f := range def.Fields {
		expr, ok := n.Fields[f.Name]
		if !ok {
			return it.runtimeErr(n.Line(), perror.FieldDoesNotExist, f.Name)
		}
		vd, rerr := it.eval(expr)
		if rerr != nil {
			return rerr
		}
		v, rerr2 := it.readValue(vd)
		if rerr2 != nil {
			return rerr2
		}
		names[i] = f.Name
		vals[i] = v
	}
	return it.allocTyped(n.Line(), objects.NewStruct(names, vals), n.Cell().Content())
}

func (it *Interpreter) VisitAnonRecord(n *ast.AnonRecord) any {
	vals := make([]objects.Value, len(n.Values))
	for i, expr := range n.Values {
		vd, rerr := it.eval(expr)
		if rerr != nil {
			return rerr
		}
		v, rerr2 := it.readValue(vd)
		if rerr2 != nil {
			return rerr2
		}
		vals[i] = v
	}
	return it.allocTyped(n.Line(), objects.NewStruct(n.Names, vals), n.Cell().Content())
}

// VisitFieldAccess aliases the field's byte offset within the target's
// own location rather than copying - `a.b.c = x` and `&a.b` both depend
// on this being a real location, not a snapshot.
func (it *Interpreter) VisitFieldAccess(n *ast.FieldAccess) any {
	target, rerr := it.eval(n.Target)
	if rerr != nil {
		return rerr
	}
	target, rerr = it.derefBorrow(target)
	if rerr != nil {
		return rerr
	}
	t := target.Type
	switch t.Tag {
	case types.Struct:
		def, ok := it.structs[t.StructName]
		if !ok {
			return it.runtimeErr(n.Line(), perror.RuntimeTypeMismatch, "unknown struct "+t.StructName)
		}
		field, ok := def.FieldByName(n.FieldName)
		if !ok {
			return it.runtimeErr(n.Line(), perror.FieldDoesNotExist, n.FieldName)
		}
		return objects.VariableData{Index: target.Index.Offset(field.ByteOffset), Type: field.Type}

	case types.AnonStruct:
		offset := 0
		for _, f := range t.AnonFields {
			if f.Name == n.FieldName {
				return objects.VariableData{Index: target.Index.Offset(offset), Type: f.Type}
			}
			offset += types.SizeOf(f.Type, it.structs)
		}
		return it.runtimeErr(n.Line(), perror.FieldDoesNotExist, n.FieldName)
	}
	return it.runtimeErr(n.Line(), perror.InvalidDotExpression, n.FieldName)
}

// runBlockExpr evaluates body for its trailing value. A return signal
// reaching here means `return` was used inside an expression-position
// block, which only a function body (not an if/else expression branch)
// may do.
func (it *Interpreter) runBlockExpr(body *ast.Block, line int) any {
	trailing, sig, rerr := it.runBlockStatements(body.Statements)
	if rerr != nil {
		return rerr
	}
	if sig != nil {
		return it.runtimeErr(line, perror.InvalidStatement, "return is not valid inside a conditional expression branch")
	}
	if trailing == nil {
		return it.runtimeErr(line, perror.RuntimeTypeMismatch, "conditional expression branch produced no value")
	}
	return *trailing
}

func (it *Interpreter) VisitConditionalExpr(n *ast.ConditionalExpr) any {
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
			return it.runBlockExpr(n.Bodies[i], n.Line())
		}
	}
	if len(n.Bodies) > len(n.Conds) {
		return it.runBlockExpr(n.Bodies[len(n.Conds)], n.Line())
	}
	return it.runtimeErr(n.Line(), perror.RuntimeTypeMismatch, "no branch matched in conditional expression")
}

func (it *Interpreter) evalArgs(exprs []ast.Expression) ([]objects.VariableData, *RuntimeError) {
	out := make([]objects.VariableData, len(exprs))
	for i, e := range exprs {
		vd, rerr := it.eval(e)
		if rerr != nil {
			return nil, rerr
		}
		out[i] = vd
	}
	return out, nil
}

func (it *Interpreter) VisitCall(n *ast.Call) any {
	fn, ok := it.functions[n.Name]
	if !ok {
		return it.runtimeErr(n.Line(), perror.VariableDoesNotExist, n.Name)
	}
	leftArgs, rerr := it.evalArgs(n.LeftArgs)
	if rerr != nil {
		return rerr
	}
	rightArgs, rerr := it.evalArgs(n.RightArgs)
	if rerr != nil {
		return rerr
	}
	vd, rerr := it.callFunction(n.Line(), fn, leftArgs, rightArgs)
	if rerr != nil {
		return rerr
	}
	return vd
}

func (it *Interpreter) VisitArrayLit(n *ast.ArrayLit) any {
	elems := make([]objects.Value, len(n.Elements))
	for i, e := range n.Elements {
		vd, rerr := it.eval(e)
		if rerr != nil {
			return rerr
		}
		v, rerr2 := it.readValue(vd)
		if rerr2 != nil {
			return rerr2
		}
		elems[i] = v
	}
	return it.allocTyped(n.Line(), objects.NewArray(elems), n.Cell().Content())
}

// VisitIndex resolves `target[pos]` to an aliased location, same
// offset-aliasing contract as VisitFieldAccess. Array positions are
// byte-uniform (offset = pos * elem size); Tuple positions are packed
// heterogeneous fields, resolved the way VisitFieldAccess resolves an
// AnonStruct field, by summing SizeOf over the preceding fields. Both
// accept a negative pos counting from the end - pattern/lower.go emits
// these for `..tail` suffix destructuring (spec.md §4.6).
func (it *Interpreter) VisitIndex(n *ast.Index) any {
	target, rerr := it.eval(n.Target)
	if rerr != nil {
		return rerr
	}
	target, rerr = it.derefBorrow(target)
	if rerr != nil {
		return rerr
	}
	posVD, rerr := it.eval(n.Pos)
	if rerr != nil {
		return rerr
	}
	posVal, rerr2 := it.readValue(posVD)
	if rerr2 != nil {
		return rerr2
	}
	pos := int(posVal.Int)

	switch target.Type.Tag {
	case types.Tuple:
		return it.indexTuple(n, target, pos)
	case types.Array:
		return it.indexArray(n, target, pos)
	}
	return it.runtimeErr(n.Line(), perror.InvalidDotExpression, "index target is not an array")
}

// indexTuple resolves a Tuple position, positive or negative, against
// the TupleStart++TupleEnd field list objects.ToInterpreterBytes/FromBytes
// already treat as the tuple's flat runtime layout.
func (it *Interpreter) indexTuple(n *ast.Index, target objects.VariableData, pos int) any {
	all := append(append([]types.ExprType{}, target.Type.TupleStart...), target.Type.TupleEnd...)
	idx := pos
	if idx < 0 {
		idx += len(all)
	}
	if idx < 0 || idx >= len(all) {
		return it.runtimeErr(n.Line(), perror.RuntimeTypeMismatch, "tuple index out of bounds")
	}
	offset := 0
	for _, f := range all[:idx] {
		offset += types.SizeOf(f, it.structs)
	}
	return objects.VariableData{Index: target.Index.Offset(offset), Type: all[idx]}
}

// indexArray resolves an Array position, normalizing a negative pos
// against the statically-known Len before bounds-checking. An array
// with no known Len (an unsized parameter) rejects negative indices
// outright, since there is no Len to normalize against.
func (it *Interpreter) indexArray(n *ast.Index, target objects.VariableData, pos int) any {
	if target.Type.Len != nil {
		if pos < 0 {
			pos += *target.Type.Len
		}
		if pos < 0 || pos >= *target.Type.Len {
			return it.runtimeErr(n.Line(), perror.RuntimeTypeMismatch, "array index out of bounds")
		}
	} else if pos < 0 {
		return it.runtimeErr(n.Line(), perror.RuntimeTypeMismatch, "array index out of bounds")
	}
	elemType := *target.Type.ElemType
	elemSize := types.SizeOf(elemType, it.structs)
	offset := pos * elemSize
	return objects.VariableData{Index: target.Index.Offset(offset), Type: elemType}
}

func (it *Interpreter) VisitTupleLit(n *ast.TupleLit) any {
	elems := make([]objects.Value, len(n.Elements))
	for i, e := range n.Elements {
		vd, rerr := it.eval(e)
		if rerr != nil {
			return rerr
		}
		v, rerr2 := it.readValue(vd)
		if rerr2 != nil {
			return rerr2
		}
		elems[i] = v
	}
	return it.allocTyped(n.Line(), objects.NewTuple(elems), n.Cell().Content())
}

// VisitAmbiguousGroup resolves against the node's own cell, which Unify
// has already settled to Array or Tuple by the time eval runs.
func (it *Interpreter) VisitAmbiguousGroup(n *ast.AmbiguousGroup) any {
	elems := make([]objects.Value, len(n.Elements))
	for i, e := range n.Elements {
		vd, rerr := it.eval(e)
		if rerr != nil {
			return rerr
		}
		v, rerr2 := it.readValue(vd)
		if rerr2 != nil {
			return rerr2
		}
		elems[i] = v
	}
	t := n.Cell().Content()
	var val objects.Value
	switch t.Tag {
	case types.Array:
		val = objects.NewArray(elems)
	case types.Tuple:
		val = objects.NewTuple(elems)
	default:
		return it.runtimeErr(n.Line(), perror.RuntimeTypeMismatch, "ambiguous group never resolved to array or tuple")
	}
	return it.allocTyped(n.Line(), val, t)
}
