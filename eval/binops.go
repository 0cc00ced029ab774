/*
File    : sugar/eval/binops.go
Package : eval

Binary and unary operator evaluation. The parser's own operator table
(parser/precedence.go's binaryOps map) is unexported, so resolveOpKind
independently replicates its Either-disambiguation for the four deferred
lexemes spec.md §3 names ('<', '>', '&', '..') - the only legitimate
binary-operator readings among their alternatives.
*/
package eval

import (
	"fmt"
	"math"
	"strings"

	"github.com/sugarlang/sugar/ast"
	"github.com/sugarlang/sugar/lexer"
	"github.com/sugarlang/sugar/objects"
	"github.com/sugarlang/sugar/perror"
	"github.com/sugarlang/sugar/types"
)

func resolveOpKind(t lexer.Token) lexer.Kind {
	if t.Kind != lexer.KindEither {
		return t.Kind
	}
	for _, alt := range t.Alt {
		switch alt {
		case lexer.KindLessThan, lexer.KindGreaterThan, lexer.KindBitAnd, lexer.KindRangeOp:
			return alt
		}
	}
	return lexer.KindInvalid
}

func isDotOp(kind lexer.Kind) bool {
	switch kind {
	case lexer.KindPlusDot, lexer.KindMinusDot, lexer.KindStarDot, lexer.KindSlashDot:
		return true
	}
	return false
}

func (it *Interpreter) VisitBinaryOp(n *ast.BinaryOp) any {
	leftVD, rerr := it.eval(n.Left)
	if rerr != nil {
		return rerr
	}
	rightVD, rerr := it.eval(n.Right)
	if rerr != nil {
		return rerr
	}
	leftV, rerr2 := it.readValue(leftVD)
	if rerr2 != nil {
		return rerr2
	}
	rightV, rerr2 := it.readValue(rightVD)
	if rerr2 != nil {
		return rerr2
	}

	kind := resolveOpKind(n.Op)
	resultType := n.Cell().Content()

	switch kind {
	case lexer.KindEq, lexer.KindNe, lexer.KindLe, lexer.KindGe, lexer.KindLessThan, lexer.KindGreaterThan:
		return it.evalComparison(n.Line(), kind, leftV, rightV, leftVD.Type)
	case lexer.KindAndAnd:
		return it.allocBool(n.Line(), leftV.Bool && rightV.Bool)
	case lexer.KindOrOr:
		return it.allocBool(n.Line(), leftV.Bool || rightV.Bool)
	case lexer.KindXorXor:
		return it.allocBool(n.Line(), leftV.Bool != rightV.Bool)
	case lexer.KindConcat:
		return it.allocTyped(n.Line(), objects.NewString(leftV.Str+rightV.Str), resultType)
	default:
		return it.evalArithmetic(n.Line(), kind, leftV, rightV, resultType)
	}
}

func (it *Interpreter) evalComparison(line int, kind lexer.Kind, l, r objects.Value, operandType types.ExprType) any {
	var cmp int
	switch {
	case operandType.Tag == types.TPrimitive && types.IsFloat(operandType.Primitive):
		cmp = compareFloat(l.Float, r.Float)
	case operandType.Tag == types.TPrimitive && operandType.Primitive == types.Bool:
		cmp = compareBool(l.Bool, r.Bool)
	case operandType.Tag == types.TPrimitive && operandType.Primitive == types.Char:
		cmp = compareInt(int64(l.Char), int64(r.Char))
	case operandType.Tag == types.TPrimitive && operandType.Primitive == types.StringPrim:
		cmp = strings.Compare(l.Str, r.Str)
	default:
		cmp = compareInt(l.Int, r.Int)
	}
	var result bool
	switch kind {
	case lexer.KindEq:
		result = cmp == 0
	case lexer.KindNe:
		result = cmp != 0
	case lexer.KindLessThan:
		result = cmp < 0
	case lexer.KindGreaterThan:
		result = cmp > 0
	case lexer.KindLe:
		result = cmp <= 0
	case lexer.KindGe:
		result = cmp >= 0
	}
	return it.allocBool(line, result)
}

func compareFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func compareBool(a, b bool) int {
	switch {
	case a == b:
		return 0
	case !a && b:
		return -1
	default:
		return 1
	}
}

func compareInt(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func (it *Interpreter) evalArithmetic(line int, kind lexer.Kind, l, r objects.Value, resultType types.ExprType) any {
	isFloat := resultType.Tag == types.TPrimitive && types.IsFloat(resultType.Primitive)
	if isFloat || isDotOp(kind) {
		v, err := floatArith(kind, l.Float, r.Float)
		if err != nil {
			return it.runtimeErr(line, perror.DivisionByZero, err.Error())
		}
		return it.allocTyped(line, objects.NewFloat(v), resultType)
	}

	switch kind {
	case lexer.KindBitOr:
		return it.allocTyped(line, objects.NewInt(l.Int|r.Int), resultType)
	case lexer.KindBitXor:
		return it.allocTyped(line, objects.NewInt(l.Int^r.Int), resultType)
	case lexer.KindBitAnd:
		return it.allocTyped(line, objects.NewInt(l.Int&r.Int), resultType)
	case lexer.KindShl:
		return it.allocTyped(line, objects.NewInt(l.Int<<uint(r.Int)), resultType)
	case lexer.KindShr:
		return it.allocTyped(line, objects.NewInt(l.Int>>uint(r.Int)), resultType)
	case lexer.KindPercent:
		if r.Int == 0 {
			return it.runtimeErr(line, perror.DivisionByZero, "% by zero")
		}
		return it.allocTyped(line, objects.NewInt(l.Int%r.Int), resultType)
	case lexer.KindSlash:
		if r.Int == 0 {
			return it.runtimeErr(line, perror.DivisionByZero, "/ by zero")
		}
		return it.allocTyped(line, objects.NewInt(l.Int/r.Int), resultType)
	case lexer.KindStar:
		return it.allocTyped(line, objects.NewInt(l.Int*r.Int), resultType)
	case lexer.KindPlus:
		return it.allocTyped(line, objects.NewInt(l.Int+r.Int), resultType)
	case lexer.KindMinus:
		return it.allocTyped(line, objects.NewInt(l.Int-r.Int), resultType)
	case lexer.KindStarStar:
		if r.Int < 0 {
			return it.runtimeErr(line, perror.RuntimeTypeMismatch, "negative exponent on integer **")
		}
		return it.allocTyped(line, objects.NewInt(intPow(l.Int, r.Int)), resultType)
	}
	return it.runtimeErr(line, perror.RuntimeTypeMismatch, "unsupported binary operator")
}

func floatArith(kind lexer.Kind, l, r float64) (float64, error) {
	switch kind {
	case lexer.KindPlusDot, lexer.KindPlus:
		return l + r, nil
	case lexer.KindMinusDot, lexer.KindMinus:
		return l - r, nil
	case lexer.KindStarDot, lexer.KindStar:
		return l * r, nil
	case lexer.KindSlashDot, lexer.KindSlash:
		if r == 0 {
			return 0, fmt.Errorf("/ by zero")
		}
		return l / r, nil
	case lexer.KindStarStar:
		return math.Pow(l, r), nil
	}
	return 0, fmt.Errorf("unsupported float operator")
}

func intPow(base, exp int64) int64 {
	result := int64(1)
	for i := int64(0); i < exp; i++ {
		result *= base
	}
	return result
}

func (it *Interpreter) VisitUnaryOp(n *ast.UnaryOp) any {
	if n.Op.Is(lexer.KindBorrow) {
		vd, rerr := it.eval(n.Operand)
		if rerr != nil {
			return rerr
		}
		return it.allocTyped(n.Line(), objects.NewBorrow(vd.Index), n.Cell().Content())
	}

	vd, rerr := it.eval(n.Operand)
	if rerr != nil {
		return rerr
	}
	v, rerr2 := it.readValue(vd)
	if rerr2 != nil {
		return rerr2
	}

	resultType := n.Cell().Content()
	switch {
	case n.Op.Is(lexer.KindMinus):
		if resultType.Tag == types.TPrimitive && types.IsFloat(resultType.Primitive) {
			return it.allocTyped(n.Line(), objects.NewFloat(-v.Float), resultType)
		}
		return it.allocTyped(n.Line(), objects.NewInt(-v.Int), resultType)
	case n.Op.Is(lexer.KindPlus):
		return it.allocTyped(n.Line(), v, resultType)
	case n.Op.Is(lexer.KindNot):
		return it.allocTyped(n.Line(), objects.NewBool(!v.Bool), resultType)
	case n.Op.Is(lexer.KindBitNot):
		return it.allocTyped(n.Line(), objects.NewInt(^v.Int), resultType)
	}
	return it.runtimeErr(n.Line(), perror.RuntimeTypeMismatch, "unsupported unary operator")
}
