/*
File    : sugar/parser/expr.go
Package : parser

The Pratt expression parser from spec.md §4.5: parse an atom, then loop
consuming binary operators at or above the minimum precedence,
recursing at prec+1 (left-assoc) or prec (right-assoc). Grounded on the
teacher's parser_expressions.go unary/binary parse-function-map
dispatch, adapted from go-mix's ~6-level table to spec.md's 14 levels
and from dynamically-typed literal values to ambiguous ExprType cells
that Unify refines as the tree is built.
*/
package parser

import (
	"github.com/sugarlang/sugar/accessor"
	"github.com/sugarlang/sugar/ast"
	"github.com/sugarlang/sugar/lexer"
	"github.com/sugarlang/sugar/perror"
	"github.com/sugarlang/sugar/types"
)

// parseExpression implements parse_expression(minPrec).
func (p *Parser) parseExpression(minPrec int) (ast.Expression, *perror.Error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	left, err = p.parsePostfix(left)
	if err != nil {
		return nil, err
	}
	left, err = p.maybeParsePostfixOrInfixCall(left)
	if err != nil {
		return nil, err
	}

	for {
		kind, info, isOp := p.currentBinaryOp()
		if !isOp || info.prec < minPrec {
			break
		}
		opTok := p.advance()
		nextMin := info.prec + 1
		if info.rightAssoc {
			nextMin = info.prec
		}
		right, err := p.parseExpression(nextMin)
		if err != nil {
			return nil, err
		}
		if !types.Unify(left.Cell(), right.Cell()) {
			return nil, perror.CouldNotMatchType([]lexer.Token{opTok}, left.Cell().Content().String(), right.Cell().Content().String())
		}
		resultCell := left.Cell()
		if isComparisonOp(kind) {
			resultCell = types.NewCell(types.NewPrimitive(types.Bool))
		}
		left = ast.NewBinaryOp(opTok.Line, opTok, left, right, resultCell)
	}
	return left, nil
}

// maybeParsePostfixOrInfixCall recognizes `left fname` (postfix) and
// `left fname rightArgs...` (infix) juxtaposition calls, per spec.md
// §4.4's fixity table. Simplification: only single-leftArg postfix/
// infix functions are recognized this way (the common case); a
// multi-leftArg fixity still parses via prefix calling convention with
// all arguments on the right, noted in the grounding ledger.
func (p *Parser) maybeParsePostfixOrInfixCall(left ast.Expression) (ast.Expression, *perror.Error) {
	if !p.at(lexer.KindIdentifier) {
		return left, nil
	}
	fn, isFunc := p.functions[p.cur().Literal]
	if !isFunc || len(fn.LeftParams) != 1 {
		return left, nil
	}
	nameTok := p.advance()
	return p.parseCall(nameTok, fn, []ast.Expression{left})
}

func isComparisonOp(k lexer.Kind) bool {
	switch k {
	case lexer.KindEq, lexer.KindNe, lexer.KindLessThan, lexer.KindGreaterThan, lexer.KindLe, lexer.KindGe,
		lexer.KindAndAnd, lexer.KindOrOr, lexer.KindXorXor:
		return true
	}
	return false
}

// parseUnary handles the prefix operators spec.md §4.3 names:
// + - ! ~ & (&mut / &im).
func (p *Parser) parseUnary() (ast.Expression, *perror.Error) {
	t := p.cur()
	switch {
	case t.Is(lexer.KindPlus), t.Is(lexer.KindMinus), t.Is(lexer.KindNot), t.Is(lexer.KindBitNot):
		op := p.advance()
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		cell := unaryResultCell(op.Kind, operand)
		return ast.NewUnaryOp(op.Line, op, false, operand, cell), nil

	case t.Is(lexer.KindBorrow):
		op := p.advance()
		mutable := false
		if p.at(lexer.KindMut) {
			p.advance()
			mutable = true
		} else if p.at(lexer.KindIm) {
			p.advance()
		}
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		cell := types.NewCell(types.NewBorrow(mutable, operand.Cell().Content()))
		return ast.NewUnaryOp(op.Line, op, mutable, operand, cell), nil
	}
	return p.parseAtom()
}

// unaryResultCell folds a literal integer's sign into its ambiguous
// family: a minus applied directly to an IntegerLiteral yields a fresh
// AmbiguousNegInteger cell for the UnaryOp node (see ast.IntegerLiteral).
func unaryResultCell(op lexer.Kind, operand ast.Expression) *types.TypeCell {
	if op == lexer.KindMinus {
		if lit, ok := operand.(*ast.IntegerLiteral); ok {
			_ = lit
			return types.NewCell(types.ExprType{Tag: types.AmbiguousNegInteger})
		}
	}
	return operand.Cell()
}

// parsePostfix consumes the `.field` chain spec.md §4.5 describes.
func (p *Parser) parsePostfix(left ast.Expression) (ast.Expression, *perror.Error) {
	for p.at(lexer.KindDot) {
		p.advance()
		nameTok, ok := p.expect(lexer.KindIdentifier)
		if !ok {
			return nil, perror.New(perror.ExpectedIdentifier, p.cur(), "expected field name after '.'")
		}
		left = ast.NewFieldAccess(nameTok.Line, left, nameTok.Literal, false, types.NewCell(types.NewAmbiguous()))
	}
	if p.at(lexer.KindLBracket) {
		p.advance()
		pos, err := p.parseExpression(PrecConcat)
		if err != nil {
			return nil, err
		}
		if _, ok := p.expect(lexer.KindRBracket); !ok {
			return nil, perror.New(perror.ExpectedToken, p.cur(), "expected ]")
		}
		left = ast.NewIndex(left.Line(), left, pos, types.NewCell(types.NewAmbiguous()))
		return p.parsePostfix(left)
	}
	return left, nil
}

// parseAtom dispatches on the current token per spec.md §4.5's atom list.
func (p *Parser) parseAtom() (ast.Expression, *perror.Error) {
	t := p.cur()
	switch {
	case t.Kind == lexer.KindIntegerLit:
		p.advance()
		return ast.NewIntegerLiteral(t.Line, t.Literal, types.NewCell(types.ExprType{Tag: types.AmbiguousPosInteger})), nil

	case t.Kind == lexer.KindFloatLit:
		p.advance()
		return ast.NewFloatLiteral(t.Line, t.Literal, types.NewCell(types.ExprType{Tag: types.AmbiguousFloat})), nil

	case t.Kind == lexer.KindCharLit:
		p.advance()
		r := rune(0)
		if len(t.Literal) > 0 {
			r = []rune(t.Literal)[0]
		}
		return ast.NewCharLiteral(t.Line, r, types.NewCell(types.NewPrimitive(types.Char))), nil

	case t.Kind == lexer.KindStringLit:
		p.advance()
		return ast.NewStringLiteral(t.Line, unescapeString(t.Literal), types.NewCell(types.NewPrimitive(types.StringPrim))), nil

	case t.Kind == lexer.KindTrue, t.Kind == lexer.KindFalse:
		p.advance()
		return ast.NewBoolLiteral(t.Line, t.Kind == lexer.KindTrue, types.NewCell(types.NewPrimitive(types.Bool))), nil

	case t.Kind == lexer.KindIf:
		return p.parseConditionalExpr()

	case t.Kind == lexer.KindIdentifier:
		return p.parseIdentifierAtom()

	case t.Kind == lexer.KindLParen, t.Kind == lexer.KindDollar:
		return p.parseGroupOrTuple()

	case t.Kind == lexer.KindLBracket:
		return p.parseArrayLit()

	case t.Kind == lexer.KindLBrace:
		return p.parseAnonRecord()
	}
	p.advance()
	return nil, perror.New(perror.InvalidExpressionAtom, t, "unexpected token "+t.Kind.String())
}

// parseIdentifierAtom dispatches an identifier to a struct literal,
// prefix function call, or plain variable reference.
func (p *Parser) parseIdentifierAtom() (ast.Expression, *perror.Error) {
	tok := p.advance()

	if _, isStruct := p.structs[tok.Literal]; isStruct && p.at(lexer.KindLBrace) {
		return p.parseStructLiteral(tok)
	}

	if fn, isFunc := p.functions[tok.Literal]; isFunc && len(fn.LeftParams) == 0 {
		return p.parseCall(tok, fn, nil)
	}

	rec, ok := p.scope.Lookup(tok.Literal)
	if !ok {
		return nil, perror.New(perror.VariableDoesNotExist, tok, tok.Literal)
	}
	return ast.NewIdentifier(tok.Line, tok.Literal, rec.Cell), nil
}

// parseCall consumes fn's right-args (one atom per declared right
// parameter, parsed at unary precedence so juxtaposed call arguments
// don't swallow a following binary operator's other operand) and
// builds the Call node. left, when non-nil, supplies already-parsed
// leftArgs for an infix/postfix call (see maybeParsePostfixOrInfixCall).
func (p *Parser) parseCall(nameTok lexer.Token, fn *accessor.Function, left []ast.Expression) (ast.Expression, *perror.Error) {
	var rightArgs []ast.Expression
	for i := 0; i < len(fn.RightParams); i++ {
		arg, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		arg, err = p.parsePostfix(arg)
		if err != nil {
			return nil, err
		}
		if !types.Unify(types.NewCell(fn.RightParams[i].Type), arg.Cell()) {
			return nil, perror.CouldNotMatchType([]lexer.Token{nameTok}, arg.Cell().Content().String(), fn.RightParams[i].Type.String())
		}
		rightArgs = append(rightArgs, arg)
	}
	if len(left) != len(fn.LeftParams) {
		return nil, perror.New(perror.IncorrectNumberPrefixArguments, nameTok, "expected "+itoaSmall(len(fn.LeftParams))+" left arguments")
	}
	for i, arg := range left {
		if !types.Unify(types.NewCell(fn.LeftParams[i].Type), arg.Cell()) {
			return nil, perror.CouldNotMatchType([]lexer.Token{nameTok}, arg.Cell().Content().String(), fn.LeftParams[i].Type.String())
		}
	}
	retCell := types.NewCell(fn.ReturnType)
	return ast.NewCall(nameTok.Line, nameTok.Literal, left, rightArgs, retCell), nil
}

func itoaSmall(n int) string {
	if n == 0 {
		return "0"
	}
	var buf [8]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	return string(buf[i:])
}

func (p *Parser) parseGroupOrTuple() (ast.Expression, *perror.Error) {
	open := p.advance()
	closeKind := lexer.KindRParen
	if open.Kind == lexer.KindDollar {
		closeKind = lexer.KindDollar
	}
	var elems []ast.Expression
	for !p.at(closeKind) && !p.atEOF() {
		e, err := p.parseExpression(PrecConcat)
		if err != nil {
			return nil, err
		}
		elems = append(elems, e)
		if p.at(lexer.KindComma) {
			p.advance()
		}
	}
	if _, ok := p.expect(closeKind); !ok {
		return nil, perror.New(perror.ExpectedToken, p.cur(), "expected closing delimiter")
	}
	if len(elems) == 1 {
		return elems[0], nil
	}
	cells := make([]types.ExprType, len(elems))
	for i, e := range elems {
		cells[i] = e.Cell().Content()
	}
	return ast.NewTupleLit(open.Line, elems, types.NewCell(types.ExprType{Tag: types.Tuple, TupleStart: cells})), nil
}

func (p *Parser) parseArrayLit() (ast.Expression, *perror.Error) {
	open := p.advance()
	var elems []ast.Expression
	for !p.at(lexer.KindRBracket) && !p.atEOF() {
		e, err := p.parseExpression(PrecConcat)
		if err != nil {
			return nil, err
		}
		elems = append(elems, e)
		if p.at(lexer.KindComma) {
			p.advance()
		}
	}
	if _, ok := p.expect(lexer.KindRBracket); !ok {
		return nil, perror.New(perror.ExpectedToken, p.cur(), "expected ]")
	}
	var elemType types.ExprType
	if len(elems) > 0 {
		elemType = elems[0].Cell().Content()
	} else {
		elemType = types.NewAmbiguous()
	}
	n := len(elems)
	return ast.NewArrayLit(open.Line, elems, types.NewCell(types.NewArray(elemType, &n))), nil
}

func (p *Parser) parseAnonRecord() (ast.Expression, *perror.Error) {
	open := p.advance()
	var names []string
	var values []ast.Expression
	for !p.at(lexer.KindRBrace) && !p.atEOF() {
		nameTok, ok := p.expect(lexer.KindIdentifier)
		if !ok {
			return nil, perror.New(perror.ExpectedIdentifier, p.cur(), "expected field name")
		}
		var value ast.Expression
		if p.at(lexer.KindColon) {
			p.advance()
			v, err := p.parseExpression(PrecConcat)
			if err != nil {
				return nil, err
			}
			value = v
		} else {
			// shorthand: bare identifier means "use the variable of
			// that name for this field", per spec.md §4.5.
			rec, ok := p.scope.Lookup(nameTok.Literal)
			if !ok {
				return nil, perror.New(perror.VariableDoesNotExist, nameTok, nameTok.Literal)
			}
			value = ast.NewIdentifier(nameTok.Line, nameTok.Literal, rec.Cell)
		}
		names = append(names, nameTok.Literal)
		values = append(values, value)
		if p.at(lexer.KindComma) {
			p.advance()
		}
	}
	if _, ok := p.expect(lexer.KindRBrace); !ok {
		return nil, perror.New(perror.ExpectedToken, p.cur(), "expected }")
	}
	fields := make([]types.AnonField, len(names))
	for i := range names {
		fields[i] = types.AnonField{Name: names[i], Type: values[i].Cell().Content()}
	}
	return ast.NewAnonRecord(open.Line, names, values, types.NewCell(types.ExprType{Tag: types.AnonStruct, AnonFields: fields})), nil
}

func (p *Parser) parseStructLiteral(nameTok lexer.Token) (ast.Expression, *perror.Error) {
	def := p.structs[nameTok.Literal]
	open := p.advance() // {
	_ = open
	order := []string{}
	fields := map[string]ast.Expression{}
	for !p.at(lexer.KindRBrace) && !p.atEOF() {
		fieldTok, ok := p.expect(lexer.KindIdentifier)
		if !ok {
			return nil, perror.New(perror.ExpectedIdentifier, p.cur(), "expected field name")
		}
		field, known := def.FieldByName(fieldTok.Literal)
		if !known {
			return nil, perror.New(perror.FieldDoesNotExist, fieldTok, nameTok.Literal)
		}
		if _, already := fields[fieldTok.Literal]; already {
			return nil, perror.New(perror.AlreadyDefinedField, fieldTok, fieldTok.Literal)
		}

		var value ast.Expression
		if p.at(lexer.KindColon) {
			p.advance()
			v, err := p.parseExpression(PrecConcat)
			if err != nil {
				return nil, err
			}
			value = v
		} else {
			rec, ok := p.scope.Lookup(fieldTok.Literal)
			if !ok {
				return nil, perror.New(perror.VariableDoesNotExist, fieldTok, fieldTok.Literal)
			}
			value = ast.NewIdentifier(fieldTok.Line, fieldTok.Literal, rec.Cell)
		}
		if !types.Unify(types.NewCell(field.Type), value.Cell()) {
			return nil, perror.CouldNotMatchType([]lexer.Token{fieldTok}, value.Cell().Content().String(), field.Type.String())
		}
		fields[fieldTok.Literal] = value
		order = append(order, fieldTok.Literal)
		if p.at(lexer.KindComma) {
			p.advance()
		}
	}
	if _, ok := p.expect(lexer.KindRBrace); !ok {
		return nil, perror.New(perror.ExpectedToken, p.cur(), "expected }")
	}
	return ast.NewStructLiteral(nameTok.Line, nameTok.Literal, order, fields, types.NewCell(types.NewStruct(nameTok.Literal))), nil
}

// unescapeString processes the escape list spec.md §6 names:
// \n \t \\ \" \' \xHH \u{...}.
func unescapeString(s string) string {
	var out []rune
	runes := []rune(s)
	for i := 0; i < len(runes); i++ {
		c := runes[i]
		if c != '\\' || i == len(runes)-1 {
			out = append(out, c)
			continue
		}
		i++
		switch runes[i] {
		case 'n':
			out = append(out, '\n')
		case 't':
			out = append(out, '\t')
		case '\\':
			out = append(out, '\\')
		case '"':
			out = append(out, '"')
		case '\'':
			out = append(out, '\'')
		case 'x':
			if i+2 < len(runes) {
				hi := hexVal(runes[i+1])
				lo := hexVal(runes[i+2])
				out = append(out, rune(hi*16+lo))
				i += 2
			}
		case 'u':
			if i+1 < len(runes) && runes[i+1] == '{' {
				j := i + 2
				val := 0
				for j < len(runes) && runes[j] != '}' {
					val = val*16 + hexVal(runes[j])
					j++
				}
				out = append(out, rune(val))
				i = j
			}
		default:
			out = append(out, runes[i])
		}
	}
	return string(out)
}

func hexVal(c rune) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10
	}
	return 0
}
