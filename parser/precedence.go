/*
File    : sugar/parser/precedence.go
Package : parser

The 14-level precedence table from spec.md §4.3, lowest to highest:
concatenation, ranges, logic-or, logic-xor, logic-and, relational,
bitwise-or, bitwise-xor, bitwise-and, bitwise-shift, add/sub,
mul/div/mod, exponent (right-assoc), casting. Grounded on the teacher's
parser_precedence.go table-lookup structure, generalized from go-mix's
~6 levels to Sugar's 14 and to operator tokens that can arrive as an
Either meta-kind.
*/
package parser

import "github.com/sugarlang/sugar/lexer"

const (
	PrecConcat = iota + 1
	PrecRange
	PrecLogicOr
	PrecLogicXor
	PrecLogicAnd
	PrecRelational
	PrecBitOr
	PrecBitXor
	PrecBitAnd
	PrecShift
	PrecAddSub
	PrecMulDivMod
	PrecExponent
	PrecCast
)

type opInfo struct {
	prec       int
	rightAssoc bool
}

var binaryOps = map[lexer.Kind]opInfo{
	lexer.KindConcat:     {PrecConcat, false},
	lexer.KindRangeOp:     {PrecRange, false},
	lexer.KindOrOr:        {PrecLogicOr, false},
	lexer.KindXorXor:      {PrecLogicXor, false},
	lexer.KindAndAnd:      {PrecLogicAnd, false},
	lexer.KindEq:          {PrecRelational, false},
	lexer.KindNe:          {PrecRelational, false},
	lexer.KindLessThan:    {PrecRelational, false},
	lexer.KindGreaterThan: {PrecRelational, false},
	lexer.KindLe:          {PrecRelational, false},
	lexer.KindGe:          {PrecRelational, false},
	lexer.KindBitOr:       {PrecBitOr, false},
	lexer.KindBitXor:      {PrecBitXor, false},
	lexer.KindBitAnd:      {PrecBitAnd, false},
	lexer.KindShl:         {PrecShift, false},
	lexer.KindShr:         {PrecShift, false},
	lexer.KindPlus:        {PrecAddSub, false},
	lexer.KindMinus:       {PrecAddSub, false},
	lexer.KindPlusDot:     {PrecAddSub, false},
	lexer.KindMinusDot:    {PrecAddSub, false},
	lexer.KindStar:        {PrecMulDivMod, false},
	lexer.KindSlash:       {PrecMulDivMod, false},
	lexer.KindSlashDot:    {PrecMulDivMod, false},
	lexer.KindPercent:     {PrecMulDivMod, false},
	lexer.KindStarDot:     {PrecMulDivMod, false},
	lexer.KindStarStar:    {PrecExponent, true},
}

// currentBinaryOp resolves the current token to a concrete binary
// operator Kind and its precedence info, accounting for Either tokens
// whose alternatives may both (or only one) appear in the table.
func (p *Parser) currentBinaryOp() (lexer.Kind, opInfo, bool) {
	t := p.cur()
	if t.Kind != lexer.KindEither {
		info, ok := binaryOps[t.Kind]
		return t.Kind, info, ok
	}
	if info, ok := binaryOps[t.Alt[0]]; ok {
		return t.Alt[0], info, true
	}
	if info, ok := binaryOps[t.Alt[1]]; ok {
		return t.Alt[1], info, true
	}
	return lexer.KindInvalid, opInfo{}, false
}
