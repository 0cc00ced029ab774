/*
File    : sugar/parser/pattern.go
Package : parser

parsePattern implements spec.md §4.6's pattern grammar: `(`, `[`,
identifier, `_`, or `..` open a pattern, with at most one DiscardMany
splitting a Tuple/Array's Start/End.
*/
package parser

import (
	"github.com/sugarlang/sugar/lexer"
	"github.com/sugarlang/sugar/pattern"
	"github.com/sugarlang/sugar/perror"
)

func (p *Parser) parsePattern() (pattern.Pattern, *perror.Error) {
	t := p.cur()
	switch {
	case t.Kind == lexer.KindIdentifier && t.Literal == "_":
		p.advance()
		return pattern.NewDiscardSingle(t), nil

	case t.Kind == lexer.KindIdentifier:
		mutable := false
		p.advance()
		if p.at(lexer.KindMut) {
			p.advance()
			mutable = true
		}
		return pattern.NewIdent(t, mutable, t.Literal), nil

	case t.Kind == lexer.KindMut:
		p.advance()
		nameTok, ok := p.expect(lexer.KindIdentifier)
		if !ok {
			return pattern.Pattern{}, perror.New(perror.ExpectedIdentifier, p.cur(), "expected identifier after mut")
		}
		return pattern.NewIdent(nameTok, true, nameTok.Literal), nil

	case t.Kind == lexer.KindLParen:
		return p.parseCompoundPattern(t, lexer.KindRParen, pattern.NewTuple)

	case t.Kind == lexer.KindLBracket:
		return p.parseCompoundPattern(t, lexer.KindRBracket, pattern.NewArray)
	}
	return pattern.Pattern{}, perror.New(perror.InvalidPattern, t, "expected a pattern")
}

func (p *Parser) parseCompoundPattern(open lexer.Token, closeKind lexer.Kind, build func(lexer.Token, []pattern.Pattern, []pattern.Pattern, bool) pattern.Pattern) (pattern.Pattern, *perror.Error) {
	p.advance()
	var start, end []pattern.Pattern
	seenDiscardMany := false
	inEnd := false

	for !p.at(closeKind) && !p.atEOF() {
		if p.cur().Is(lexer.KindDiscardMany) {
			if seenDiscardMany {
				return pattern.Pattern{}, perror.New(perror.SecondDiscardMany, p.cur(), "a pattern may contain at most one '..'")
			}
			seenDiscardMany = true
			inEnd = true
			p.advance()
		} else {
			sub, err := p.parsePattern()
			if err != nil {
				return pattern.Pattern{}, err
			}
			if inEnd {
				end = append(end, sub)
			} else {
				start = append(start, sub)
			}
		}
		if p.at(lexer.KindComma) {
			p.advance()
		}
	}
	if _, ok := p.expect(closeKind); !ok {
		return pattern.Pattern{}, perror.New(perror.ExpectedToken, p.cur(), "expected closing delimiter for pattern")
	}
	return build(open, start, end, seenDiscardMany), nil
}
