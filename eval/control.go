/*
File    : sugar/eval/control.go
Package : eval

Function calls and block execution, including the stack-relocation
dance a bump-pointer stack forces on any value that must outlive the
frame it was computed in. Grounded on the teacher's eval/evaluator.go
EvalBlockStatement (push/pop an Env, propagate a tagged return), adapted
from garbage-collected Go maps to explicit (oxyTop, gcTop) rollback.
*/
package eval

import (
	"strconv"

	"github.com/sugarlang/sugar/accessor"
	"github.com/sugarlang/sugar/ast"
	"github.com/sugarlang/sugar/builtins"
	"github.com/sugarlang/sugar/objects"
	"github.com/sugarlang/sugar/perror"
	"github.com/sugarlang/sugar/scope"
	"github.com/sugarlang/sugar/types"
)

// unwind copies carry's bytes out before the stack pointers roll back to
// (oxyTop, gcTop), then re-allocates a copy at the rolled-back top so the
// value survives the reclaim of everything its owning frame allocated.
// carry == nil just performs the rollback.
func (it *Interpreter) unwind(oxyTop, gcTop int, carry *objects.VariableData) (*objects.VariableData, *RuntimeError) {
	if carry == nil {
		it.oxyTop, it.gcTop = oxyTop, gcTop
		return nil, nil
	}
	raw := it.stackReadBytes(*carry)
	region := carry.Index.Region
	typ := carry.Type
	it.oxyTop, it.gcTop = oxyTop, gcTop
	vd, rerr := it.allocRawValue(typ, raw, region)
	if rerr != nil {
		return nil, rerr
	}
	return &vd, nil
}

// runBlockStatements executes stmts in a fresh child frame and restores
// the stack pointers on the way out, relocating whichever of "a return
// signal in flight" or "the trailing statement's value" needs to survive
// past this frame's own reclaim (never both: a return signal always wins
// and short-circuits before the trailing statement would even run).
func (it *Interpreter) runBlockStatements(stmts []ast.Statement) (*objects.VariableData, *ReturnSignal, *RuntimeError) {
	savedOxy, savedGC := it.oxyTop, it.gcTop
	prevFrame := it.frame
	it.frame = scope.NewFrame(prevFrame, savedOxy, savedGC)

	var trailing *objects.VariableData
	var sig *ReturnSignal

	for i, stmt := range stmts {
		res := stmt.Accept(it)
		switch r := res.(type) {
		case *RuntimeError:
			it.frame = prevFrame
			it.oxyTop, it.gcTop = savedOxy, savedGC
			return nil, nil, r
		case *ReturnSignal:
			sig = r
		case objects.VariableData:
			if i == len(stmts)-1 {
				cp := r
				trailing = &cp
			}
		}
		if sig != nil {
			break
		}
	}

	it.frame = prevFrame

	carry := trailing
	if sig != nil {
		carry = sig.Value
	}

	relocated, rerr := it.unwind(savedOxy, savedGC, carry)
	if rerr != nil {
		return nil, nil, rerr
	}

	if sig != nil {
		return nil, &ReturnSignal{Value: relocated}, nil
	}
	return relocated, nil, nil
}

// bindParams allocates each already-evaluated argument into frame under
// its declared parameter name, width-checking the group first.
func (it *Interpreter) bindParams(frame *scope.Frame, params []accessor.Param, args []objects.VariableData) *RuntimeError {
	if len(params) != len(args) {
		return it.runtimeErr(0, perror.IncorrectNumberPrefixArguments,
			"expected "+strconv.Itoa(len(params))+" arguments, got "+strconv.Itoa(len(args)))
	}
	for i, p := range params {
		raw := it.stackReadBytes(args[i])
		vd, rerr := it.allocRawValue(p.Type, raw, objects.Oxy)
		if rerr != nil {
			return rerr
		}
		frame.Bind(p.Name, vd)
	}
	return nil
}

// callFunction invokes fn with already-evaluated arguments, dispatching
// to a built-in or a user body, and relocates the result back across the
// call frame's own boundary into the caller's stack region.
func (it *Interpreter) callFunction(line int, fn *accessor.Function, leftArgs, rightArgs []objects.VariableData) (objects.VariableData, *RuntimeError) {
	if tag, ok := fn.Body.(builtins.Tag); ok {
		return it.callBuiltin(line, tag, leftArgs, rightArgs)
	}

	body, ok := fn.Body.(*ast.Block)
	if !ok {
		return objects.VariableData{}, it.runtimeErr(line, perror.RuntimeTypeMismatch, "function "+fn.Name+" has no body")
	}

	savedOxy, savedGC := it.oxyTop, it.gcTop
	callFrame := scope.NewFrame(nil, savedOxy, savedGC)
	if rerr := it.bindParams(callFrame, fn.LeftParams, leftArgs); rerr != nil {
		return objects.VariableData{}, rerr
	}
	if rerr := it.bindParams(callFrame, fn.RightParams, rightArgs); rerr != nil {
		return objects.VariableData{}, rerr
	}

	prevFrame := it.frame
	it.frame = callFrame
	trailing, sig, rerr := it.runBlockStatements(body.Statements)
	it.frame = prevFrame
	if rerr != nil {
		return objects.VariableData{}, rerr
	}

	result := trailing
	if sig != nil {
		result = sig.Value
	}

	relocated, rerr := it.unwind(savedOxy, savedGC, result)
	if rerr != nil {
		return objects.VariableData{}, rerr
	}
	if relocated != nil {
		return *relocated, nil
	}
	return objects.VariableData{Type: fn.ReturnType}, nil
}

// callBuiltin deserializes every argument into a host Value, dispatches
// through builtins.Call, and re-serializes the result onto the stack.
func (it *Interpreter) callBuiltin(line int, tag builtins.Tag, leftArgs, rightArgs []objects.VariableData) (objects.VariableData, *RuntimeError) {
	all := make([]objects.VariableData, 0, len(leftArgs)+len(rightArgs))
	all = append(all, leftArgs...)
	all = append(all, rightArgs...)

	argVals := make([]objects.Value, len(all))
	for i, vd := range all {
		v, rerr := it.readValue(vd)
		if rerr != nil {
			return objects.VariableData{}, rerr
		}
		argVals[i] = v
	}

	result, err := builtins.Call(tag, it.Writer, it.Reader, argVals)
	if err != nil {
		return objects.VariableData{}, it.runtimeErr(line, perror.RuntimePanic, err.Error())
	}

	fn, ok := it.functions[string(tag)]
	var resultType types.ExprType
	if ok {
		resultType = fn.ReturnType
	}
	if resultType.Tag == types.Void || resultType.Tag == types.Never {
		return objects.VariableData{Type: resultType}, nil
	}
	return it.allocValue(line, result, resultType, objects.Oxy)
}
