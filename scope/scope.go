/*
File    : sugar/scope/scope.go
Package : scope

Scope is the compile-time lexical scope chain: a name resolves to a
declaration's type cell and mutability, shadowing outward through
parent scopes. Grounded on the teacher's scope/scope.go Scope/Parent
chain and LookUp traversal, adapted from a runtime value map
(map[string]objects.GoMixObject) to a compile-time declaration map
(map[string]*VariableRecord), since Sugar resolves types during
parsing and only resolves values during evaluation (see ast/ast.go).
*/
package scope

import (
	"github.com/sugarlang/sugar/lexer"
	"github.com/sugarlang/sugar/types"
)

// VariableRecord is what a name resolves to: the token of its
// declaration (for diagnostics), whether it was declared `mut`, and
// its shared type cell.
type VariableRecord struct {
	DefToken lexer.Token
	Mutable  bool
	Cell     *types.TypeCell
}

// Scope is one lexical nesting level. Parent == nil marks the
// top-level (global) scope.
type Scope struct {
	vars   map[string]*VariableRecord
	Parent *Scope
}

// New creates a child scope of parent (nil for the global scope).
func New(parent *Scope) *Scope {
	return &Scope{vars: make(map[string]*VariableRecord), Parent: parent}
}

// Declare binds name in this scope only, per spec.md §4.6's rule that a
// `let` inside a nested block shadows, rather than mutates, an outer
// binding of the same name. Returns whether name already existed in
// THIS scope (a same-block redeclaration); the new record replaces the
// old one either way.
func (s *Scope) Declare(name string, rec *VariableRecord) bool {
	_, existed := s.vars[name]
	s.vars[name] = rec
	return existed
}

// Lookup searches this scope, then each parent in turn, innermost
// first - the standard lexical-scoping shadow order.
func (s *Scope) Lookup(name string) (*VariableRecord, bool) {
	if rec, ok := s.vars[name]; ok {
		return rec, true
	}
	if s.Parent != nil {
		return s.Parent.Lookup(name)
	}
	return nil, false
}

// Resolve implements pattern.VariableResolver.
func (s *Scope) Resolve(name string) (cell *types.TypeCell, mutable bool, ok bool) {
	rec, found := s.Lookup(name)
	if !found {
		return nil, false, false
	}
	return rec.Cell, rec.Mutable, true
}
