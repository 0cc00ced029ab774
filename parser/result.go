/*
File    : sugar/parser/result.go
Package : parser

The three-valued result spec.md §4.4/§9 calls for: "do not reach for
exception-like panics" when a top-level rule doesn't recognize its
opening token. Grounded on the teacher's own control-flow idiom of
returning a bool alongside a value (e.g. expectNext's true/false) -
generalized to a third state here because top-level definition
scanning genuinely needs to distinguish "not my rule" from "my rule,
but malformed".
*/
package parser

import "github.com/sugarlang/sugar/perror"

// resultKind tags which of the three states a result carries.
type resultKind int

const (
	resultOk resultKind = iota
	resultSoftErr
	resultHardErr
)

// defResult is the three-valued outcome of one top-level definition
// rule attempt. Ok carries the parsed value; SoftErr means "this rule's
// opening token didn't match, try the next rule, consuming nothing";
// HardErr means "this rule's opening token matched but the body was
// malformed" and carries the collected errors.
type defResult struct {
	kind  resultKind
	value any
	errs  []*perror.Error
}

func ok(v any) defResult            { return defResult{kind: resultOk, value: v} }
func softErr() defResult            { return defResult{kind: resultSoftErr} }
func hardErr(e ...*perror.Error) defResult { return defResult{kind: resultHardErr, errs: e} }

func (r defResult) isOk() bool      { return r.kind == resultOk }
func (r defResult) isSoftErr() bool { return r.kind == resultSoftErr }
func (r defResult) isHardErr() bool { return r.kind == resultHardErr }
