/*
File    : sugar/types/unify.go
Package : types

Unify implements the unification rules of spec.md §4.2. Each rule is
tried in order and short-circuits on the first match; on success both
cells are rewritten so every holder observes the refined type (the
"Type unification monotonicity" invariant of spec.md §8).
*/
package types

// Unify reconciles the types held by cells a and b. On success, a and b
// (and every cell previously unified with either of them) are merged
// into one equivalence class holding the refined type. On failure,
// neither cell is modified.
func Unify(a, b *TypeCell) bool {
	ra, rb := a.Find(), b.Find()
	if ra == rb {
		// Already the same equivalence class - re-confirm compatibility
		// without mutating (it was already merged by a prior Unify call).
		return true
	}
	merged, ok := unifyTypes(ra.content, rb.content)
	if !ok {
		return false
	}
	union(a, b, merged)
	return true
}

// unifyTypes computes the reconciled type of two concrete (non-cell)
// ExprType values, implementing spec.md §4.2 rules 1-11. Array/tuple/
// anon-struct substructure is unified recursively at the value level.
func unifyTypes(l, r ExprType) (ExprType, bool) {
	// Rule 1: Never assimilates to the other side.
	if l.Tag == Never {
		return r, true
	}
	if r.Tag == Never {
		return l, true
	}

	// Rule 2: Ambiguous becomes the other side.
	if l.Tag == Ambiguous {
		return r, true
	}
	if r.Tag == Ambiguous {
		return l, true
	}

	// Rule 3: DiscardSingle assimilates to the other side.
	if l.Tag == DiscardSingle {
		return r, true
	}
	if r.Tag == DiscardSingle {
		return l, true
	}

	// Same ambiguous family on both sides: stays that family, to be
	// resolved later (or defaulted at serialization time per spec.md's
	// "Ambiguity defaults" invariant).
	if l.Tag == r.Tag && (l.Tag == AmbiguousPosInteger || l.Tag == AmbiguousNegInteger || l.Tag == AmbiguousFloat) {
		return l, true
	}

	// Rule 4: AmbiguousPosInteger unifies with any integer primitive.
	if l.Tag == AmbiguousPosInteger && r.Tag == TPrimitive && IsInteger(r.Primitive) {
		return r, true
	}
	if r.Tag == AmbiguousPosInteger && l.Tag == TPrimitive && IsInteger(l.Primitive) {
		return l, true
	}

	// Rule 5: AmbiguousNegInteger unifies only with signed integers.
	if l.Tag == AmbiguousNegInteger && r.Tag == TPrimitive && IsSignedInteger(r.Primitive) {
		return r, true
	}
	if r.Tag == AmbiguousNegInteger && l.Tag == TPrimitive && IsSignedInteger(l.Primitive) {
		return l, true
	}

	// Rule 6: AmbiguousFloat unifies only with F32/F64.
	if l.Tag == AmbiguousFloat && r.Tag == TPrimitive && IsFloat(r.Primitive) {
		return r, true
	}
	if r.Tag == AmbiguousFloat && l.Tag == TPrimitive && IsFloat(l.Primitive) {
		return l, true
	}

	// Rule 10: an ambiguous group against a concrete array - every
	// element of the group unifies with the array's element type; the
	// group is rewritten to an array.
	if l.Tag == AmbiguousGroup && r.Tag == Array {
		return unifyGroupWithArray(l, r)
	}
	if r.Tag == AmbiguousGroup && l.Tag == Array {
		return unifyGroupWithArray(r, l)
	}
	// Two ambiguous groups: pairwise unify elements, stay a group (the
	// eventual Array/Tuple resolution happens once a concrete side
	// appears).
	if l.Tag == AmbiguousGroup && r.Tag == AmbiguousGroup {
		if len(l.TupleStart) != len(r.TupleStart) {
			return ExprType{}, false
		}
		merged := make([]ExprType, len(l.TupleStart))
		for i := range l.TupleStart {
			m, ok := unifyTypes(l.TupleStart[i], r.TupleStart[i])
			if !ok {
				return ExprType{}, false
			}
			merged[i] = m
		}
		return ExprType{Tag: AmbiguousGroup, TupleStart: merged}, true
	}

	if l.Tag != r.Tag {
		return ExprType{}, false
	}

	switch l.Tag {
	case TPrimitive:
		if l.Primitive == r.Primitive {
			return l, true
		}
		return ExprType{}, false

	case Struct:
		if l.StructName == r.StructName {
			return l, true
		}
		return ExprType{}, false

	case Borrow:
		if l.BorrowMutable != r.BorrowMutable {
			return ExprType{}, false
		}
		inner, ok := unifyTypes(*l.BorrowInner, *r.BorrowInner)
		if !ok {
			return ExprType{}, false
		}
		return NewBorrow(l.BorrowMutable, inner), true

	case Array:
		// Rule 8: known length fills unknown; element types unify.
		var length *int
		switch {
		case l.Len != nil && r.Len != nil:
			if *l.Len != *r.Len {
				return ExprType{}, false
			}
			length = l.Len
		case l.Len != nil:
			length = l.Len
		default:
			length = r.Len
		}
		elem, ok := unifyTypes(*l.ElemType, *r.ElemType)
		if !ok {
			return ExprType{}, false
		}
		return NewArray(elem, length), true

	case AnonStruct:
		// Rule 7: equal field count, pairwise equal names, pairwise unify.
		if len(l.AnonFields) != len(r.AnonFields) {
			return ExprType{}, false
		}
		fields := make([]AnonField, len(l.AnonFields))
		for i := range l.AnonFields {
			if l.AnonFields[i].Name != r.AnonFields[i].Name {
				return ExprType{}, false
			}
			ft, ok := unifyTypes(l.AnonFields[i].Type, r.AnonFields[i].Type)
			if !ok {
				return ExprType{}, false
			}
			fields[i] = AnonField{Name: l.AnonFields[i].Name, Type: ft}
		}
		return ExprType{Tag: AnonStruct, AnonFields: fields}, true

	case Tuple:
		return unifyTuples(l, r)

	case DiscardSingle, Void, Never, AmbiguousGroup:
		return l, true

	default:
		// Equal concrete tags with no further substructure (Function,
		// FunctionPass) succeed if their tags matched.
		return l, true
	}
}

// unifyGroupWithArray implements spec.md §4.2 rule 10.
func unifyGroupWithArray(group, array ExprType) (ExprType, bool) {
	if array.Len != nil && *array.Len != len(group.TupleStart) {
		return ExprType{}, false
	}
	elem := *array.ElemType
	for _, e := range group.TupleStart {
		merged, ok := unifyTypes(elem, e)
		if !ok {
			return ExprType{}, false
		}
		elem = merged
	}
	length := len(group.TupleStart)
	return NewArray(elem, &length), true
}

// unifyTuples implements spec.md §4.2 rule 9.
func unifyTuples(l, r ExprType) (ExprType, bool) {
	lTotal := len(l.TupleStart) + len(l.TupleEnd)
	rTotal := len(r.TupleStart) + len(r.TupleEnd)
	if !l.TupleDiscard && !r.TupleDiscard && lTotal != rTotal {
		return ExprType{}, false
	}
	if !l.TupleDiscard && lTotal != rTotal && rTotal > lTotal {
		return ExprType{}, false
	}
	if !r.TupleDiscard && rTotal != lTotal && lTotal > rTotal {
		return ExprType{}, false
	}

	startLen := min(len(l.TupleStart), len(r.TupleStart))
	start := make([]ExprType, startLen)
	for i := 0; i < startLen; i++ {
		m, ok := unifyTypes(l.TupleStart[i], r.TupleStart[i])
		if !ok {
			return ExprType{}, false
		}
		start[i] = m
	}

	endLen := min(len(l.TupleEnd), len(r.TupleEnd))
	end := make([]ExprType, endLen)
	for i := 0; i < endLen; i++ {
		li := len(l.TupleEnd) - endLen + i
		ri := len(r.TupleEnd) - endLen + i
		m, ok := unifyTypes(l.TupleEnd[li], r.TupleEnd[ri])
		if !ok {
			return ExprType{}, false
		}
		end[i] = m
	}

	discard := l.TupleDiscard || r.TupleDiscard
	return ExprType{Tag: Tuple, TupleStart: start, TupleEnd: end, TupleDiscard: discard}, true
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
