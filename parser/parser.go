/*
File    : sugar/parser/parser.go
Package : parser

Parser holds the cursor and accumulated state for both top-level
definition gathering (spec.md §4.4) and the expression/statement
parsers it drives (§4.5/§4.7). Grounded on the teacher's
parser/parser.go Parser struct (CurrToken/NextToken two-token
lookahead, an Errors slice collected rather than panicked on), adapted
from go-mix's single flat token stream + untyped Env to Sugar's
resolved-symbol-table fields (Accessors/Structs/Functions) the
two-phase design in spec.md §4.4 requires.
*/
package parser

import (
	"github.com/sugarlang/sugar/accessor"
	"github.com/sugarlang/sugar/builtins"
	"github.com/sugarlang/sugar/lexer"
	"github.com/sugarlang/sugar/perror"
	"github.com/sugarlang/sugar/scope"
)

// Program is the fully-resolved result of a parse: every accessor,
// struct, and function definition, plus the definition order so
// diagnostics and REPL listing can walk them deterministically.
type Program struct {
	Accessors map[string]*accessor.Accessor
	Structs   accessor.StructTable
	Functions map[string]*accessor.Function
	Order     []string // struct names in declaration order, then function names in declaration order; accessors are not listed
}

// Parser is single-use: construct with New, call Parse once.
type Parser struct {
	tokens []lexer.Token
	pos    int
	file   string

	Errors []*perror.Error

	accessors map[string]*accessor.Accessor
	structs   accessor.StructTable
	functions map[string]*accessor.Function

	scope *scope.Scope
}

// pushScope opens a nested lexical scope (block entry).
func (p *Parser) pushScope() { p.scope = scope.New(p.scope) }

// popScope closes the innermost lexical scope (block exit).
func (p *Parser) popScope() { p.scope = p.scope.Parent }

// New builds a Parser over an already-lexed token stream (EOF-terminated).
// A stream that does not end in a KindEOF token, such as the output of
// lexer.Tokenize, gets one appended.
func New(tokens []lexer.Token, file string) *Parser {
	if len(tokens) == 0 || tokens[len(tokens)-1].Kind != lexer.KindEOF {
		line := 1
		if len(tokens) > 0 {
			line = tokens[len(tokens)-1].Line
		}
		tokens = append(append([]lexer.Token{}, tokens...), lexer.Token{Kind: lexer.KindEOF, File: file, Line: line})
	}
	p := &Parser{
		tokens:    tokens,
		file:      file,
		accessors: map[string]*accessor.Accessor{},
		structs:   accessor.StructTable{},
		functions: map[string]*accessor.Function{},
		scope:     scope.New(nil),
	}
	p.accessors[accessor.Public] = &accessor.Accessor{Name: accessor.Public}
	p.accessors[accessor.Private] = &accessor.Accessor{Name: accessor.Private}
	p.accessors[accessor.Package] = &accessor.Accessor{Name: accessor.Package}
	for name, fn := range builtins.Defs() {
		p.functions[name] = fn
	}
	return p
}

func (p *Parser) cur() lexer.Token {
	if p.pos >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1] // EOF
	}
	return p.tokens[p.pos]
}

func (p *Parser) peek() lexer.Token {
	if p.pos+1 >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1]
	}
	return p.tokens[p.pos+1]
}

func (p *Parser) advance() lexer.Token {
	t := p.cur()
	if p.pos < len(p.tokens)-1 {
		p.pos++
	}
	return t
}

func (p *Parser) at(k lexer.Kind) bool { return p.cur().Is(k) }

func (p *Parser) atEOF() bool { return p.cur().Kind == lexer.KindEOF }

// expect consumes the current token if it matches k, else records an
// ExpectedToken error and returns ok=false without consuming.
func (p *Parser) expect(k lexer.Kind) (lexer.Token, bool) {
	if p.at(k) {
		return p.advance(), true
	}
	p.addError(perror.New(perror.ExpectedToken, p.cur(), "expected "+k.String()+", got "+p.cur().Kind.String()))
	return p.cur(), false
}

func (p *Parser) addError(e *perror.Error) {
	p.Errors = append(p.Errors, e)
}

// skipPastSemicolon is the error-recovery step spec.md §7 describes for
// phase-2 ("accumulates errors ... continues to the next definition
// where possible"): advance until the next top-level-ish boundary.
func (p *Parser) skipPastSemicolon() {
	for !p.atEOF() {
		if p.at(lexer.KindSemicolon) {
			p.advance()
			return
		}
		if p.at(lexer.KindRBrace) {
			p.advance()
			return
		}
		p.advance()
	}
}
