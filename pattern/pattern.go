/*
File    : sugar/pattern/pattern.go
Package : pattern

Tree patterns for variable bindings, per spec.md §4.6: "Patterns parse
from `(` / `[` / identifier / `_` / `..`". Modeled as one tagged struct
rather than an interface hierarchy, matching the ExprType/Error
precedent elsewhere in this codebase - a pattern is inert data consumed
by exactly two functions (Declare/Assign lowering) and never dispatched
through a visitor.
*/
package pattern

import "github.com/sugarlang/sugar/lexer"

// Kind identifies which pattern shape a Pattern holds.
type Kind int

const (
	// Ident binds a single name, e.g. `x` or `mut x`.
	Ident Kind = iota
	// Tuple is `(p1, p2, .., pN)`, split around at most one DiscardMany.
	Tuple
	// Array is `[p1, p2, .., pN]`, split around at most one DiscardMany.
	Array
	// DiscardSingle is the bare `_` wildcard.
	DiscardSingle
)

// Pattern is the parsed shape of a binding target.
type Pattern struct {
	Kind Kind
	Tok  lexer.Token // the pattern's anchoring token, for diagnostics

	// Ident
	Mutable bool
	Name    string

	// Tuple / Array
	Start          []Pattern
	End            []Pattern
	HasDiscardMany bool
}

// NewIdent builds an Ident pattern.
func NewIdent(tok lexer.Token, mutable bool, name string) Pattern {
	return Pattern{Kind: Ident, Tok: tok, Mutable: mutable, Name: name}
}

// NewDiscardSingle builds a `_` pattern.
func NewDiscardSingle(tok lexer.Token) Pattern {
	return Pattern{Kind: DiscardSingle, Tok: tok}
}

// NewTuple builds a Tuple pattern. hasDiscardMany records whether a `..`
// appeared between start and end (exactly one is allowed - a second is
// a SecondDiscardMany parse error raised by the caller before this
// constructor is reached).
func NewTuple(tok lexer.Token, start, end []Pattern, hasDiscardMany bool) Pattern {
	return Pattern{Kind: Tuple, Tok: tok, Start: start, End: end, HasDiscardMany: hasDiscardMany}
}

// NewArray builds an Array pattern, likewise split around at most one
// discard-many run.
func NewArray(tok lexer.Token, start, end []Pattern, hasDiscardMany bool) Pattern {
	return Pattern{Kind: Array, Tok: tok, Start: start, End: end, HasDiscardMany: hasDiscardMany}
}
