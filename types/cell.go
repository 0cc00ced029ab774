/*
File    : sugar/types/cell.go
Package : types

TypeCell is the mutable shared refinement handle from spec.md §3/§9: each
expression node owns one, and unifying two expressions merges their
cells so that a later refinement retroactively updates every earlier
holder. Implemented as a union-find forest rather than the original's
reference-counted cell set - the two are observationally equivalent
(every holder of either cell, after a union, resolves through path
compression to the one surviving root), and union-find is the idiom
spec.md §9 itself suggests ("an arena of type-cell slots ... merges the
union-find sets").
*/
package types

// TypeCell is one node of the union-find forest. A root cell (Parent ==
// nil) carries the live Content; a non-root cell's Content is stale and
// must not be read directly - always go through Find/Content.
type TypeCell struct {
	parent  *TypeCell
	content ExprType
}

// NewCell allocates a fresh root cell holding t.
func NewCell(t ExprType) *TypeCell {
	return &TypeCell{content: t}
}

// Find returns the representative root of c's equivalence class,
// path-compressing along the way so future lookups are O(1) amortized.
func (c *TypeCell) Find() *TypeCell {
	root := c
	for root.parent != nil {
		root = root.parent
	}
	for c.parent != nil {
		next := c.parent
		c.parent = root
		c = next
	}
	return root
}

// Content returns the cell's currently-known type.
func (c *TypeCell) Content() ExprType {
	return c.Find().content
}

// SetContent overwrites the cell's currently-known type. Every other
// holder sharing this cell's equivalence class observes the change
// through Content/Find.
func (c *TypeCell) SetContent(t ExprType) {
	c.Find().content = t
}

// union merges b's equivalence class into a's, after the caller has
// already computed the merged content and is ready to install it on the
// surviving root. If a and b are already the same root, this is a no-op
// beyond installing the (possibly refined) content.
func union(a, b *TypeCell, merged ExprType) {
	ra, rb := a.Find(), b.Find()
	if ra == rb {
		ra.content = merged
		return
	}
	rb.parent = ra
	ra.content = merged
}

// SameClass reports whether a and b currently share an equivalence
// class - i.e. whether a prior Unify has already merged them.
func SameClass(a, b *TypeCell) bool {
	return a.Find() == b.Find()
}
