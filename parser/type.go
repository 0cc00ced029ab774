/*
File    : sugar/parser/type.go
Package : parser

parseType parses a type annotation into an types.ExprType, consulting
the already-known struct-name set from phase 1. Grounded on the
teacher's parser_literals.go-style "one rule per atom kind" structure,
generalized from go-mix's dynamic typing (no type annotations exist
there) to Sugar's declared-type grammar.
*/
package parser

import (
	"github.com/sugarlang/sugar/lexer"
	"github.com/sugarlang/sugar/perror"
	"github.com/sugarlang/sugar/types"
)

func (p *Parser) parseType() (types.ExprType, *perror.Error) {
	switch {
	case p.at(lexer.KindPrimitiveType):
		tok := p.advance()
		prim, ok := types.PRIMITIVE_BY_NAME[tok.Literal]
		if !ok {
			return types.ExprType{}, perror.New(perror.ExpectedType, tok, "unknown primitive "+tok.Literal)
		}
		return types.NewPrimitive(prim), nil

	case p.at(lexer.KindIdentifier):
		tok := p.advance()
		if _, known := p.structs[tok.Literal]; !known {
			// Forward reference: phase 1 has already registered every
			// struct name before phase 2 runs, so an unknown name here
			// is a genuine error, not an ordering artifact.
			return types.ExprType{}, perror.New(perror.ExpectedType, tok, "unknown type "+tok.Literal)
		}
		return types.NewStruct(tok.Literal), nil

	case p.cur().Is(lexer.KindBorrow):
		p.advance()
		mutable := false
		if p.at(lexer.KindMut) {
			p.advance()
			mutable = true
		} else if p.at(lexer.KindIm) {
			p.advance()
		}
		inner, err := p.parseType()
		if err != nil {
			return types.ExprType{}, err
		}
		return types.NewBorrow(mutable, inner), nil

	case p.at(lexer.KindLBracket):
		p.advance()
		elem, err := p.parseType()
		if err != nil {
			return types.ExprType{}, err
		}
		var length *int
		if p.at(lexer.KindSemicolon) {
			p.advance()
			tok, ok := p.expect(lexer.KindIntegerLit)
			if !ok {
				return types.ExprType{}, perror.New(perror.ExpectedType, tok, "expected array length")
			}
			n := atoiLiteral(tok.Literal)
			length = &n
		}
		if _, ok := p.expect(lexer.KindRBracket); !ok {
			return types.ExprType{}, perror.New(perror.ExpectedToken, p.cur(), "expected ]")
		}
		return types.NewArray(elem, length), nil

	case p.at(lexer.KindLParen):
		p.advance()
		var elems []types.ExprType
		for !p.at(lexer.KindRParen) && !p.atEOF() {
			t, err := p.parseType()
			if err != nil {
				return types.ExprType{}, err
			}
			elems = append(elems, t)
			if p.at(lexer.KindComma) {
				p.advance()
			}
		}
		if _, ok := p.expect(lexer.KindRParen); !ok {
			return types.ExprType{}, perror.New(perror.ExpectedToken, p.cur(), "expected )")
		}
		return types.ExprType{Tag: types.Tuple, TupleStart: elems}, nil

	default:
		return types.ExprType{}, perror.New(perror.ExpectedType, p.cur(), "expected a type")
	}
}

func atoiLiteral(s string) int {
	n := 0
	for _, c := range s {
		if c < '0' || c > '9' {
			break
		}
		n = n*10 + int(c-'0')
	}
	return n
}
