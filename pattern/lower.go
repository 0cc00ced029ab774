/*
File    : sugar/pattern/lower.go
Package : pattern

Lowering of tree patterns to declare/assign statement lists, per
spec.md §4.6: "declare_variable_pattern(pat, declaredType) emits a
sequence of Declare statements" and "assign_variable_pattern(pat, expr,
isDeclaration) emits Assign statements".
*/
package pattern

import (
	"github.com/sugarlang/sugar/ast"
	"github.com/sugarlang/sugar/lexer"
	"github.com/sugarlang/sugar/perror"
	"github.com/sugarlang/sugar/types"
)

// VariableResolver looks up an already-declared variable's type cell
// and mutability, consulted by AssignVariablePattern for plain
// identifier targets. The parser wires this to the active scope.
type VariableResolver interface {
	Resolve(name string) (cell *types.TypeCell, mutable bool, ok bool)
}

// DeclareVariablePattern lowers pat against declaredType into one
// Declare statement per bound name. declaredType may be Ambiguous, in
// which case every bound name gets a fresh Ambiguous cell to be refined
// later by use-site unification (spec.md §8's "Ambiguity defaults").
func DeclareVariablePattern(pat Pattern, declaredType types.ExprType) ([]ast.Statement, *perror.Error) {
	switch pat.Kind {
	case DiscardSingle:
		return nil, nil

	case Ident:
		cell := types.NewCell(declaredType)
		return []ast.Statement{ast.NewDeclare(pat.Tok.Line, pat.Name, pat.Mutable, cell, nil)}, nil

	case Tuple:
		return declareTuple(pat, declaredType)

	case Array:
		return declareArray(pat, declaredType)
	}
	return nil, nil
}

func declareTuple(pat Pattern, declaredType types.ExprType) ([]ast.Statement, *perror.Error) {
	var slots []types.ExprType
	switch declaredType.Tag {
	case types.Ambiguous:
		// No declared shape yet: every slot is independently ambiguous.
		slots = make([]types.ExprType, len(pat.Start)+len(pat.End))
		for i := range slots {
			slots[i] = types.NewAmbiguous()
		}
	case types.Tuple:
		slots = append(append([]types.ExprType{}, declaredType.TupleStart...), declaredType.TupleEnd...)
	default:
		return nil, perror.New(perror.PatternNotMatchExpectedType, pat.Tok, "expected a tuple type")
	}

	need := len(pat.Start) + len(pat.End)
	if len(slots) < need {
		return nil, perror.New(perror.PatternNotMatchExpectedType, pat.Tok, "tuple type has fewer slots than the pattern binds")
	}

	var out []ast.Statement
	for i, sub := range pat.Start {
		stmts, err := DeclareVariablePattern(sub, slots[i])
		if err != nil {
			return nil, err
		}
		out = append(out, stmts...)
	}
	tail := slots[len(slots)-len(pat.End):]
	for i, sub := range pat.End {
		stmts, err := DeclareVariablePattern(sub, tail[i])
		if err != nil {
			return nil, err
		}
		out = append(out, stmts...)
	}
	return out, nil
}

func declareArray(pat Pattern, declaredType types.ExprType) ([]ast.Statement, *perror.Error) {
	var elem types.ExprType
	switch declaredType.Tag {
	case types.Ambiguous:
		elem = types.NewAmbiguous()
	case types.Array:
		elem = *declaredType.ElemType
	default:
		return nil, perror.New(perror.PatternNotMatchExpectedType, pat.Tok, "expected an array type")
	}

	var out []ast.Statement
	for _, sub := range append(append([]Pattern{}, pat.Start...), pat.End...) {
		stmts, err := DeclareVariablePattern(sub, elem)
		if err != nil {
			return nil, err
		}
		out = append(out, stmts...)
	}
	return out, nil
}

// AssignVariablePattern lowers pat = expr into one Assign statement per
// bound name (DiscardSingle lowers to a side-effect-only BareExpr).
// isDeclaration suppresses the mutability check a plain re-assignment
// requires, since a fresh `let` binding is never itself a mutation.
func AssignVariablePattern(pat Pattern, expr ast.Expression, isDeclaration bool, resolver VariableResolver) ([]ast.Statement, *perror.Error) {
	switch pat.Kind {
	case DiscardSingle:
		return []ast.Statement{ast.NewBareExpr(expr.Line(), expr)}, nil

	case Ident:
		cell, mutable, ok := resolver.Resolve(pat.Name)
		if !ok {
			return nil, perror.New(perror.VariableDoesNotExist, pat.Tok, pat.Name)
		}
		if !isDeclaration && !mutable {
			return nil, perror.New(perror.CannotMutateImmutable, pat.Tok, pat.Name)
		}
		if !types.Unify(cell, expr.Cell()) {
			return nil, perror.CouldNotMatchType([]lexer.Token{pat.Tok}, expr.Cell().Content().String(), cell.Content().String())
		}
		target := ast.NewIdentifier(pat.Tok.Line, pat.Name, cell)
		return []ast.Statement{ast.NewAssign(pat.Tok.Line, target, expr)}, nil

	case Tuple, Array:
		return assignDestructure(pat, expr, isDeclaration, resolver)
	}
	return nil, nil
}

// assignDestructure lowers a tuple/array pattern's assignment by
// indexing into expr for each bound position - the same aliasing
// contract spec.md §4.8 gives field access (a derived VariableData
// pointing at an offset within the parent, not a copy).
func assignDestructure(pat Pattern, expr ast.Expression, isDeclaration bool, resolver VariableResolver) ([]ast.Statement, *perror.Error) {
	positions := append(append([]Pattern{}, pat.Start...), pat.End...)
	offsets := make([]int, len(pat.Start))
	for i := range offsets {
		offsets[i] = i
	}
	endOffsets := make([]int, len(pat.End))
	for i := range endOffsets {
		endOffsets[i] = -(len(pat.End) - i)
	}
	allOffsets := append(offsets, endOffsets...)

	var out []ast.Statement
	for i, sub := range positions {
		posExpr := ast.NewIntegerLiteral(pat.Tok.Line, itoaOffset(allOffsets[i]), types.NewCell(types.NewPrimitive(types.ISize)))
		indexed := ast.NewIndex(pat.Tok.Line, expr, posExpr, types.NewCell(types.NewAmbiguous()))
		stmts, err := AssignVariablePattern(sub, indexed, isDeclaration, resolver)
		if err != nil {
			return nil, err
		}
		out = append(out, stmts...)
	}
	return out, nil
}

func itoaOffset(n int) string {
	if n >= 0 {
		return itoaPositive(n)
	}
	return "-" + itoaPositive(-n)
}

func itoaPositive(n int) string {
	if n == 0 {
		return "0"
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	return string(buf[i:])
}
