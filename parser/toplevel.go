/*
File    : sugar/parser/toplevel.go
Package : parser

Two-phase top-level parsing per spec.md §4.4. Phase 1 scans the token
stream trying accessor_def, struct_def, function_def in turn using the
three-valued defResult, capturing each definition's body as a
balanced-brace token slice without parsing expressions yet. Phase 2
walks the captured definitions, resolving struct fields and function
parameter groups/fixity/return type against the name sets phase 1
built, then parses each function body for real. Grounded on the
teacher's parser/parser.go ParseProgram top-level driver loop,
generalized from go-mix's single-def-kind (function only) program to
Sugar's three-def-kind, fixity-aware one.
*/
package parser

import (
	"github.com/sugarlang/sugar/accessor"
	"github.com/sugarlang/sugar/ast"
	"github.com/sugarlang/sugar/lexer"
	"github.com/sugarlang/sugar/perror"
	"github.com/sugarlang/sugar/scope"
	"github.com/sugarlang/sugar/types"
)

const (
	kindAccessorDef = "accessor"
	kindStructDef   = "struct"
	kindFunctionDef = "function"
)

// rawDef is what phase 1 captures: enough to locate and re-scan the
// definition in phase 2 without having parsed any expression in it yet.
type rawDef struct {
	kind     string
	nameTok  lexer.Token
	accessor string
	// body is the balanced token slice between (and excluding) the
	// definition's opening and closing brace.
	body []lexer.Token
	// header is every token between a function's name and the body's
	// opening brace (param groups, fixity keywords, return type), kept
	// for function header re-parsing in phase 2. It is nil for accessor
	// and struct definitions, whose lists are read from body instead.
	header []lexer.Token
}

// Parse runs both phases and returns the resolved Program, or the
// accumulated errors if either phase failed.
func (p *Parser) Parse() (*Program, []*perror.Error) {
	defs := p.scanDefinitions()
	if len(p.Errors) > 0 && len(defs) == 0 {
		return nil, p.Errors
	}

	var order []string
	for _, d := range defs {
		if d.kind == kindStructDef {
			p.registerStructShell(d)
		}
	}
	for _, d := range defs {
		switch d.kind {
		case kindAccessorDef:
			p.resolveAccessorDef(d)
		case kindStructDef:
			p.resolveStructDef(d)
			order = append(order, d.nameTok.Literal)
		}
	}
	for _, d := range defs {
		if d.kind == kindFunctionDef {
			p.registerFunctionShell(d)
		}
	}
	for _, d := range defs {
		if d.kind == kindFunctionDef {
			p.resolveFunctionDef(d)
			order = append(order, d.nameTok.Literal)
		}
	}

	if len(p.Errors) > 0 {
		return nil, p.Errors
	}
	return &Program{
		Accessors: p.accessors,
		Structs:   p.structs,
		Functions: p.functions,
		Order:     order,
	}, nil
}

// scanDefinitions is phase 1: at each position try accessor_def,
// struct_def, function_def in order. A SoftErr tries the next rule; a
// HardErr is recorded and the cursor skips past the malformed block.
func (p *Parser) scanDefinitions() []rawDef {
	var defs []rawDef
	for !p.atEOF() {
		if r := p.tryAccessorDef(); r.isOk() {
			defs = append(defs, r.value.(rawDef))
			continue
		} else if r.isHardErr() {
			p.Errors = append(p.Errors, r.errs...)
			p.skipPastSemicolon()
			continue
		}
		if r := p.tryStructDef(); r.isOk() {
			defs = append(defs, r.value.(rawDef))
			continue
		} else if r.isHardErr() {
			p.Errors = append(p.Errors, r.errs...)
			p.skipBalancedBlock()
			continue
		}
		if r := p.tryFunctionDef(); r.isOk() {
			defs = append(defs, r.value.(rawDef))
			continue
		} else if r.isHardErr() {
			p.Errors = append(p.Errors, r.errs...)
			p.skipBalancedBlock()
			continue
		}
		p.addError(perror.New(perror.InvalidStatement, p.cur(), "expected an accessor, struct, or function definition"))
		p.advance()
	}
	return defs
}

// captureAccessLevel gathers one accessor's own accessibility prefix
// (pub/prv/pkg, or none) preceding a defining keyword.
func (p *Parser) captureAccessLevel() string {
	if p.at(lexer.KindPub) || p.at(lexer.KindPrv) || p.at(lexer.KindPkg) {
		return p.advance().Literal
	}
	return accessor.Public
}

func (p *Parser) tryAccessorDef() defResult {
	start := p.pos
	acc := p.captureAccessLevel()
	if !p.at(lexer.KindAccessor) {
		p.pos = start
		return softErr()
	}
	p.advance()
	nameTok, ok := p.expect(lexer.KindIdentifier)
	if !ok {
		return hardErr(perror.New(perror.ExpectedIdentifier, p.cur(), "expected accessor name"))
	}
	if accessor.IsBuiltin(nameTok.Literal) {
		return hardErr(perror.New(perror.AlreadyDefinedWhitelist, nameTok, "cannot redefine builtin accessor "+nameTok.Literal))
	}
	header, body, err := p.captureBracedBody()
	if err != nil {
		return hardErr(err)
	}
	return ok2(rawDef{kind: kindAccessorDef, nameTok: nameTok, accessor: acc, header: header, body: body})
}

func (p *Parser) tryStructDef() defResult {
	start := p.pos
	acc := p.captureAccessLevel()
	if !p.at(lexer.KindStruct) {
		p.pos = start
		return softErr()
	}
	p.advance()
	nameTok, ok := p.expect(lexer.KindIdentifier)
	if !ok {
		return hardErr(perror.New(perror.ExpectedIdentifier, p.cur(), "expected struct name"))
	}
	header, body, err := p.captureBracedBody()
	if err != nil {
		return hardErr(err)
	}
	return ok2(rawDef{kind: kindStructDef, nameTok: nameTok, accessor: acc, header: header, body: body})
}

func (p *Parser) tryFunctionDef() defResult {
	start := p.pos
	acc := p.captureAccessLevel()
	if !p.at(lexer.KindFn) {
		p.pos = start
		return softErr()
	}
	p.advance()
	nameTok, ok := p.expect(lexer.KindIdentifier)
	if !ok {
		return hardErr(perror.New(perror.ExpectedIdentifier, p.cur(), "expected function name"))
	}
	var header []lexer.Token
	for !p.at(lexer.KindLBrace) && !p.atEOF() {
		header = append(header, p.advance())
	}
	_, body, err := p.captureBracedBody()
	if err != nil {
		return hardErr(err)
	}
	return ok2(rawDef{kind: kindFunctionDef, nameTok: nameTok, accessor: acc, header: header, body: body})
}

// captureBracedBody consumes a `{`-delimited, brace-balanced token run
// and returns (headerPrefix=nil since callers already split header,
// body, err). Only `{` opens a body here, so header is always nil.
func (p *Parser) captureBracedBody() ([]lexer.Token, []lexer.Token, *perror.Error) {
	open, ok := p.expect(lexer.KindLBrace)
	if !ok {
		return nil, nil, perror.New(perror.ExpectedToken, p.cur(), "expected '{'")
	}
	depth := 1
	var body []lexer.Token
	for depth > 0 {
		if p.atEOF() {
			return nil, nil, perror.New(perror.ExpectedClosingBrace, p.cur(), "unterminated block opened")
		}
		if p.at(lexer.KindLBrace) {
			depth++
		} else if p.at(lexer.KindRBrace) {
			depth--
			if depth == 0 {
				p.advance()
				break
			}
		}
		body = append(body, p.advance())
	}
	_ = open
	return nil, body, nil
}

// skipBalancedBlock is the HardErr recovery step for struct/function
// defs: skip to and past the matching closing brace of the next block.
func (p *Parser) skipBalancedBlock() {
	for !p.atEOF() && !p.at(lexer.KindLBrace) {
		p.advance()
	}
	if p.atEOF() {
		return
	}
	depth := 0
	for !p.atEOF() {
		if p.at(lexer.KindLBrace) {
			depth++
		} else if p.at(lexer.KindRBrace) {
			depth--
			if depth == 0 {
				p.advance()
				return
			}
		}
		p.advance()
	}
}

// ok2 wraps an already-constructed value in an Ok defResult (named to
// avoid colliding with the package-level ok(v any) in result.go, which
// this simply forwards to).
func ok2(v rawDef) defResult { return ok(v) }

func (p *Parser) resolveAccessorDef(d rawDef) {
	sub := subParser(p, d.body)
	acc := &accessor.Accessor{Name: d.nameTok.Literal}
	for !sub.atEOF() {
		switch {
		case sub.at(lexer.KindEnclave):
			sub.advance()
			names, err := sub.parseNameListUntilSemicolon()
			if err != nil {
				p.addError(err)
				return
			}
			acc.Whitelist = append(acc.Whitelist, names...)
		case sub.at(lexer.KindExclave):
			sub.advance()
			names, err := sub.parseNameListUntilSemicolon()
			if err != nil {
				p.addError(err)
				return
			}
			acc.Blacklist = append(acc.Blacklist, names...)
		default:
			p.addError(perror.New(perror.NoWhitelistOrBlacklist, sub.cur(), "expected enclave or exclave"))
			return
		}
	}
	p.accessors[d.nameTok.Literal] = acc
}

func (p *Parser) parseNameListUntilSemicolon() ([]string, *perror.Error) {
	var names []string
	for !p.at(lexer.KindSemicolon) && !p.atEOF() {
		tok, ok := p.expect(lexer.KindIdentifier)
		if !ok {
			return nil, perror.New(perror.ExpectedIdentifier, p.cur(), "expected name in list")
		}
		names = append(names, tok.Literal)
		if p.at(lexer.KindComma) {
			p.advance()
		}
	}
	if _, ok := p.expect(lexer.KindSemicolon); !ok {
		return nil, perror.New(perror.ExpectedToken, p.cur(), "expected ';'")
	}
	return names, nil
}

// registerStructShell pre-declares an empty struct so forward
// references inside other struct/function bodies resolve in phase 2.
func (p *Parser) registerStructShell(d rawDef) {
	if _, exists := p.structs[d.nameTok.Literal]; exists {
		p.addError(perror.New(perror.AlreadyDefinedField, d.nameTok, "struct "+d.nameTok.Literal+" already defined"))
		return
	}
	p.structs[d.nameTok.Literal] = &accessor.Struct{Name: d.nameTok.Literal, Accessor: d.accessor}
}

func (p *Parser) resolveStructDef(d rawDef) {
	sub := subParser(p, d.body)
	var fields []accessor.Field
	seen := map[string]bool{}
	for !sub.atEOF() {
		fieldAcc := sub.captureAccessLevel()
		nameTok, ok := sub.expect(lexer.KindIdentifier)
		if !ok {
			p.addError(perror.New(perror.ExpectedIdentifier, sub.cur(), "expected field name"))
			return
		}
		if seen[nameTok.Literal] {
			p.addError(perror.New(perror.AlreadyDefinedField, nameTok, "field "+nameTok.Literal+" already defined"))
			return
		}
		if _, ok := sub.expect(lexer.KindColon); !ok {
			p.addError(perror.New(perror.ExpectedToken, sub.cur(), "expected ':'"))
			return
		}
		ft, err := sub.parseType()
		if err != nil {
			p.addError(err)
			return
		}
		seen[nameTok.Literal] = true
		fields = append(fields, accessor.Field{Name: nameTok.Literal, Accessor: fieldAcc, Type: ft})
		if sub.at(lexer.KindComma) {
			sub.advance()
		}
	}
	p.structs[d.nameTok.Literal] = accessor.NewStruct(d.nameTok.Literal, d.accessor, fields, p.structs)
}

// registerFunctionShell pre-declares a function's name (arity/types
// resolved in resolveFunctionDef) so sibling/forward calls type-check.
func (p *Parser) registerFunctionShell(d rawDef) {
	if _, exists := p.functions[d.nameTok.Literal]; exists {
		p.addError(perror.New(perror.AlreadyDefinedField, d.nameTok, "function "+d.nameTok.Literal+" already defined"))
		return
	}
	p.functions[d.nameTok.Literal] = &accessor.Function{Name: d.nameTok.Literal, Accessor: d.accessor}
}

func (p *Parser) resolveFunctionDef(d rawDef) {
	header := subParser(p, d.header)

	mutable, recursive := false, false
	for header.at(lexer.KindMut) || header.at(lexer.KindRec) {
		if header.at(lexer.KindMut) {
			mutable = true
		} else {
			recursive = true
		}
		header.advance()
	}

	groups, fixityKeywords, err := header.parseParamGroups()
	if err != nil {
		p.addError(err)
		return
	}
	fixity := accessor.Prefix
	switch {
	case len(fixityKeywords) == 1 && fixityKeywords[0] == lexer.KindPostfix:
		fixity = accessor.Postfix
	case len(fixityKeywords) == 1 && fixityKeywords[0] == lexer.KindInfix:
		fixity = accessor.Infix
	}
	var first, second []accessor.Param
	if len(groups) > 0 {
		first = groups[0]
	}
	if len(groups) > 1 {
		second = groups[1]
	}
	left, right := accessor.ResolveFixity(fixity, first, second)

	returnType := types.NewVoid()
	if header.at(lexer.KindColon) {
		header.advance()
		rt, err := header.parseType()
		if err != nil {
			p.addError(err)
			return
		}
		returnType = rt
	}

	fn := p.functions[d.nameTok.Literal]
	fn.Mutable = mutable
	fn.Recursive = recursive
	fn.LeftParams = left
	fn.RightParams = right
	fn.ReturnType = returnType

	bodyParser := subParser(p, d.body)
	bodyParser.pushScope()
	for _, param := range left {
		bodyParser.scope.Declare(param.Name, &scope.VariableRecord{DefToken: d.nameTok, Mutable: true, Cell: types.NewCell(param.Type)})
	}
	for _, param := range right {
		bodyParser.scope.Declare(param.Name, &scope.VariableRecord{DefToken: d.nameTok, Mutable: true, Cell: types.NewCell(param.Type)})
	}

	var stmts []ast.Statement
	for !bodyParser.atEOF() {
		s, err := bodyParser.parseStatement()
		if err != nil {
			bodyParser.addError(err)
			bodyParser.skipPastSemicolon()
			continue
		}
		if s != nil {
			stmts = append(stmts, s)
		}
	}
	p.Errors = append(p.Errors, bodyParser.Errors...)
	fn.Body = ast.NewBlock(d.nameTok.Line, stmts)
}

// parseParamGroups parses one or two parameter groups separated (or
// followed) by a fixity keyword, per spec.md §4.4's table. A group is
// either parenthesized-with-commas or dollar-delimited comma-free.
func (p *Parser) parseParamGroups() ([][]accessor.Param, []lexer.Kind, *perror.Error) {
	var groups [][]accessor.Param
	var keywords []lexer.Kind

	for {
		switch {
		case p.at(lexer.KindPrefix), p.at(lexer.KindInfix), p.at(lexer.KindPostfix):
			keywords = append(keywords, p.cur().Kind)
			p.advance()
			continue
		case p.at(lexer.KindLParen):
			g, err := p.parseParenParamGroup()
			if err != nil {
				return nil, nil, err
			}
			groups = append(groups, g)
			continue
		case p.at(lexer.KindDollar):
			g, err := p.parseDollarParamGroup()
			if err != nil {
				return nil, nil, err
			}
			groups = append(groups, g)
			continue
		}
		break
	}
	return groups, keywords, nil
}

func (p *Parser) parseParenParamGroup() ([]accessor.Param, *perror.Error) {
	p.advance()
	var params []accessor.Param
	for !p.at(lexer.KindRParen) && !p.atEOF() {
		param, err := p.parseOneParam()
		if err != nil {
			return nil, err
		}
		params = append(params, param)
		if p.at(lexer.KindComma) {
			p.advance()
		}
	}
	if _, ok := p.expect(lexer.KindRParen); !ok {
		return nil, perror.New(perror.ExpectedToken, p.cur(), "expected ')'")
	}
	return params, nil
}

func (p *Parser) parseDollarParamGroup() ([]accessor.Param, *perror.Error) {
	p.advance()
	var params []accessor.Param
	for !p.at(lexer.KindDollar) && !p.atEOF() {
		param, err := p.parseOneParam()
		if err != nil {
			return nil, err
		}
		params = append(params, param)
	}
	if _, ok := p.expect(lexer.KindDollar); !ok {
		return nil, perror.New(perror.ExpectedToken, p.cur(), "expected '$'")
	}
	return params, nil
}

func (p *Parser) parseOneParam() (accessor.Param, *perror.Error) {
	nameTok, ok := p.expect(lexer.KindIdentifier)
	if !ok {
		return accessor.Param{}, perror.New(perror.ExpectedIdentifier, p.cur(), "expected parameter name")
	}
	if _, ok := p.expect(lexer.KindColon); !ok {
		return accessor.Param{}, perror.New(perror.ExpectedToken, p.cur(), "expected ':'")
	}
	t, err := p.parseType()
	if err != nil {
		return accessor.Param{}, err
	}
	return accessor.Param{Name: nameTok.Literal, Type: t}, nil
}

// subParser builds a fresh cursor over an independent token slice
// (appended with a synthetic EOF) that shares the parent's resolved
// name tables and starts from a fresh scope rooted at the parent's.
func subParser(parent *Parser, toks []lexer.Token) *Parser {
	eofTok := lexer.Token{Kind: lexer.KindEOF, Line: parent.cur().Line}
	return &Parser{
		tokens:    append(append([]lexer.Token{}, toks...), eofTok),
		file:      parent.file,
		accessors: parent.accessors,
		structs:   parent.structs,
		functions: parent.functions,
		scope:     scope.New(parent.scope),
	}
}
