/*
File    : sugar/accessor/fixity.go
Package : accessor

Fixity resolution per spec.md §4.4's table: the `prefix`/`infix`/
`postfix` keywords preceding/between/after a function's parameter
group(s) determine which parameters are left-args (consumed before the
call) and which are right-args (consumed after).
*/
package accessor

// Fixity identifies which of the three keyword placements a function
// definition used (or the default, Prefix, when none was written).
type Fixity int

const (
	// Prefix is `prefix G` or a bare `G` with no fixity keyword: the
	// group is entirely rightArgs.
	Prefix Fixity = iota
	// Postfix is `G postfix`: the group is entirely leftArgs.
	Postfix
	// Infix is `G1 infix G2`: G1 is leftArgs, G2 is rightArgs.
	Infix
)

// ResolveFixity splits one or two parsed parameter groups into
// (leftArgs, rightArgs) per the table in spec.md §4.4. second is only
// meaningful when fixity == Infix.
func ResolveFixity(fixity Fixity, first, second []Param) (left, right []Param) {
	switch fixity {
	case Postfix:
		return first, nil
	case Infix:
		return first, second
	default: // Prefix
		return nil, first
	}
}
