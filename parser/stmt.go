/*
File    : sugar/parser/stmt.go
Package : parser

The statement parser from spec.md §4.7: within a block, try compound,
conditional, declare, assign, return, bare expression in order;
statements terminate with `;`. Grounded on the teacher's
parser_statements.go/parser_conditionals.go/parser_loops.go split,
generalized from go-mix's var/let/const trio to Sugar's single `let`
form (typed-or-ambiguous) and its pattern-based destructuring.
*/
package parser

import (
	"github.com/sugarlang/sugar/ast"
	"github.com/sugarlang/sugar/lexer"
	"github.com/sugarlang/sugar/pattern"
	"github.com/sugarlang/sugar/perror"
	"github.com/sugarlang/sugar/scope"
	"github.com/sugarlang/sugar/types"
)

// parseBlock parses a brace-delimited statement sequence, pushing and
// popping a lexical scope around it (spec.md §5 "entry into a block
// pushes a variable frame").
func (p *Parser) parseBlock() (*ast.Block, *perror.Error) {
	open, ok := p.expect(lexer.KindLBrace)
	if !ok {
		return nil, perror.New(perror.InvalidBlock, p.cur(), "expected '{'")
	}
	p.pushScope()
	defer p.popScope()

	var stmts []ast.Statement
	for !p.at(lexer.KindRBrace) && !p.atEOF() {
		s, err := p.parseStatement()
		if err != nil {
			p.addError(err)
			p.skipPastSemicolon()
			continue
		}
		if s != nil {
			stmts = append(stmts, s)
		}
	}
	if _, ok := p.expect(lexer.KindRBrace); !ok {
		return nil, perror.New(perror.ExpectedClosingBrace, p.cur(), "expected '}'")
	}
	return ast.NewBlock(open.Line, stmts), nil
}

func (p *Parser) parseStatement() (ast.Statement, *perror.Error) {
	switch {
	case p.at(lexer.KindLBrace):
		return p.parseBlock()

	case p.at(lexer.KindIf):
		return p.parseConditionalStmt()

	case p.at(lexer.KindWhile):
		return p.parseWhile()

	case p.at(lexer.KindLoop):
		return p.parseLoop()

	case p.at(lexer.KindLet):
		return p.parseDeclareStatement()

	case p.at(lexer.KindReturn):
		return p.parseReturnStatement()

	case p.at(lexer.KindIdentifier) && p.isAssignAhead():
		return p.parseAssignStatement()

	default:
		return p.parseBareExprStatement()
	}
}

// isAssignAhead looks past the current identifier (and any `.field`/
// `[idx]` chain) for `=`, distinguishing an assignment statement from a
// bare-expression statement without backtracking the whole parser.
func (p *Parser) isAssignAhead() bool {
	save := p.pos
	defer func() { p.pos = save }()

	if !p.at(lexer.KindIdentifier) {
		return false
	}
	p.advance()
	for {
		if p.at(lexer.KindDot) {
			p.advance()
			if p.at(lexer.KindIdentifier) {
				p.advance()
			}
			continue
		}
		if p.at(lexer.KindLBracket) {
			depth := 1
			p.advance()
			for depth > 0 && !p.atEOF() {
				if p.at(lexer.KindLBracket) {
					depth++
				} else if p.at(lexer.KindRBracket) {
					depth--
				}
				p.advance()
			}
			continue
		}
		break
	}
	return p.at(lexer.KindAssign)
}

func (p *Parser) parseWhile() (ast.Statement, *perror.Error) {
	tok := p.advance()
	cond, err := p.parseExpression(PrecConcat)
	if err != nil {
		return nil, err
	}
	if !types.Unify(cond.Cell(), types.NewCell(types.NewPrimitive(types.Bool))) {
		return nil, perror.New(perror.CouldNotMatchType, tok, "while condition must be bool")
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return ast.NewWhile(tok.Line, cond, body), nil
}

// parseLoop lowers `loop { body }` to While(true, body) - SPEC_FULL.md's
// "sugar with no dedicated AST node" decision.
func (p *Parser) parseLoop() (ast.Statement, *perror.Error) {
	tok := p.advance()
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	trueLit := ast.NewBoolLiteral(tok.Line, true, types.NewCell(types.NewPrimitive(types.Bool)))
	return ast.NewWhile(tok.Line, trueLit, body), nil
}

func (p *Parser) parseConditionalBranches() (tok lexer.Token, conds []ast.Expression, bodies []*ast.Block, err *perror.Error) {
	tok = p.advance() // 'if'
	cond, e := p.parseExpression(PrecConcat)
	if e != nil {
		return tok, nil, nil, e
	}
	if !types.Unify(cond.Cell(), types.NewCell(types.NewPrimitive(types.Bool))) {
		return tok, nil, nil, perror.New(perror.CouldNotMatchType, tok, "condition must be bool")
	}
	body, e := p.parseBlock()
	if e != nil {
		return tok, nil, nil, e
	}
	conds = append(conds, cond)
	bodies = append(bodies, body)

	for p.at(lexer.KindElse) {
		p.advance()
		if p.at(lexer.KindIf) {
			p.advance()
			c, e := p.parseExpression(PrecConcat)
			if e != nil {
				return tok, nil, nil, e
			}
			b, e := p.parseBlock()
			if e != nil {
				return tok, nil, nil, e
			}
			conds = append(conds, c)
			bodies = append(bodies, b)
			continue
		}
		b, e := p.parseBlock()
		if e != nil {
			return tok, nil, nil, e
		}
		bodies = append(bodies, b)
		break
	}
	return tok, conds, bodies, nil
}

func (p *Parser) parseConditionalStmt() (ast.Statement, *perror.Error) {
	tok, conds, bodies, err := p.parseConditionalBranches()
	if err != nil {
		return nil, err
	}
	return ast.NewConditionalStmt(tok.Line, conds, bodies), nil
}

func (p *Parser) parseConditionalExpr() (ast.Expression, *perror.Error) {
	tok, conds, bodies, err := p.parseConditionalBranches()
	if err != nil {
		return nil, err
	}
	return ast.NewConditionalExpr(tok.Line, conds, bodies, types.NewCell(types.NewAmbiguous())), nil
}

// parseDeclareStatement parses `let pattern [: type] [= expr];`, per the
// `let x: i32 = ...` / `let p = Point{...}` / `let mut n: i32 = 0` forms.
func (p *Parser) parseDeclareStatement() (ast.Statement, *perror.Error) {
	letTok := p.advance()

	pat, err := p.parsePattern()
	if err != nil {
		return nil, err
	}

	declaredType := types.NewAmbiguous()
	hasAnnotation := false
	if p.at(lexer.KindColon) {
		p.advance()
		t, e := p.parseType()
		if e != nil {
			return nil, e
		}
		declaredType = t
		hasAnnotation = true
	}

	var value ast.Expression
	if p.at(lexer.KindAssign) {
		p.advance()
		v, e := p.parseExpression(PrecConcat)
		if e != nil {
			return nil, e
		}
		value = v
		if hasAnnotation {
			if !types.Unify(types.NewCell(declaredType), value.Cell()) {
				return nil, perror.New(perror.CouldNotMatchType, letTok, "declared type does not match initializer")
			}
		} else {
			declaredType = value.Cell().Content()
		}
	}

	declStmts, perr := pattern.DeclareVariablePattern(pat, declaredType)
	if perr != nil {
		return nil, perr
	}
	p.bindDeclaredNames(declStmts, letTok)

	if _, ok := p.expect(lexer.KindSemicolon); !ok {
		return nil, perror.New(perror.ExpectedToken, p.cur(), "expected ';'")
	}

	if value != nil {
		assignStmts, perr := pattern.AssignVariablePattern(pat, value, true, p.scope)
		if perr != nil {
			return nil, perr
		}
		if len(assignStmts) == 1 {
			return assignStmts[0], nil
		}
		return ast.NewBlock(letTok.Line, assignStmts), nil
	}
	if len(declStmts) == 1 {
		return declStmts[0], nil
	}
	return ast.NewBlock(letTok.Line, declStmts), nil
}

// bindDeclaredNames registers every Declare statement's name into the
// current lexical scope so later expressions can resolve it.
func (p *Parser) bindDeclaredNames(stmts []ast.Statement, defTok lexer.Token) {
	for _, s := range stmts {
		if decl, ok := s.(*ast.Declare); ok {
			p.scope.Declare(decl.Name, &scope.VariableRecord{DefToken: defTok, Mutable: decl.Mutable, Cell: decl.Cell})
		}
	}
}

func (p *Parser) parseAssignStatement() (ast.Statement, *perror.Error) {
	startTok := p.cur()
	target, err := p.parseExpression(PrecConcat + 1)
	if err != nil {
		return nil, err
	}
	if _, ok := p.expect(lexer.KindAssign); !ok {
		return nil, perror.New(perror.ExpectedToken, p.cur(), "expected '='")
	}
	value, err := p.parseExpression(PrecConcat)
	if err != nil {
		return nil, err
	}
	if _, ok := p.expect(lexer.KindSemicolon); !ok {
		return nil, perror.New(perror.ExpectedToken, p.cur(), "expected ';'")
	}

	if ident, ok := target.(*ast.Identifier); ok {
		rec, found := p.scope.Lookup(ident.Name)
		if !found {
			return nil, perror.New(perror.VariableDoesNotExist, startTok, ident.Name)
		}
		if !rec.Mutable {
			return nil, perror.New(perror.CannotMutateImmutable, startTok, ident.Name)
		}
	}
	if !types.Unify(target.Cell(), value.Cell()) {
		return nil, perror.New(perror.CouldNotMatchType, startTok, "assignment type mismatch")
	}
	return ast.NewAssign(target.Line(), target, value), nil
}

func (p *Parser) parseReturnStatement() (ast.Statement, *perror.Error) {
	tok := p.advance()
	var value ast.Expression
	if !p.at(lexer.KindSemicolon) {
		v, err := p.parseExpression(PrecConcat)
		if err != nil {
			return nil, err
		}
		value = v
	}
	if _, ok := p.expect(lexer.KindSemicolon); !ok {
		return nil, perror.New(perror.ExpectedToken, p.cur(), "expected ';'")
	}
	return ast.NewReturn(tok.Line, value), nil
}

func (p *Parser) parseBareExprStatement() (ast.Statement, *perror.Error) {
	expr, err := p.parseExpression(PrecConcat)
	if err != nil {
		return nil, err
	}
	if _, ok := p.expect(lexer.KindSemicolon); !ok {
		return nil, perror.New(perror.ExpectedToken, p.cur(), "expected ';'")
	}
	return ast.NewBareExpr(expr.Line(), expr), nil
}
