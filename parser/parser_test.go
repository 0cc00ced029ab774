/*
File    : sugar/parser/parser_test.go
Package : parser
*/
package parser

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sugarlang/sugar/lexer"
)

func parseSource(t *testing.T, src string) *Program {
	t.Helper()
	toks := lexer.New(src, "test.sugar").Tokenize()
	p := New(toks, "test.sugar")
	prog, errs := p.Parse()
	require.Empty(t, errs, "unexpected parse errors: %v", errs)
	require.NotNil(t, prog)
	return prog
}

func TestParseHelloWorld(t *testing.T) {
	prog := parseSource(t, `pub fn main { print_string("Hi"); }`)
	fn, ok := prog.Functions["main"]
	require.True(t, ok)
	require.NotNil(t, fn.Body)
}

func TestParseIntegerArithmetic(t *testing.T) {
	prog := parseSource(t, `pub fn main { let x: i32 = 2 + 3 * 4; print_i32(x); }`)
	_, ok := prog.Functions["main"]
	require.True(t, ok)
}

func TestParseStructLiteralAndFieldAccess(t *testing.T) {
	src := `
pub struct Point { pub x: i32, pub y: i32 }
pub fn main { let p = Point { x: 3, y: 4 }; print_i32(p.x); print_i32(p.y); }
`
	prog := parseSource(t, src)
	_, ok := prog.Structs["Point"]
	require.True(t, ok)
	require.Contains(t, prog.Functions, "main")
}

func TestParseConditional(t *testing.T) {
	src := `pub fn main { let mut n: i32 = 0; if true { n = 7; } else { n = 9; } print_i32(n); }`
	parseSource(t, src)
}

func TestParseWhileLoop(t *testing.T) {
	src := `pub fn main { let mut i: i32 = 0; while i < 3 { print_i32(i); i = i + 1; } }`
	parseSource(t, src)
}

func TestParseAmbiguousIntegerRefinesAtUse(t *testing.T) {
	src := `pub fn main { let x = 5; let y: u8 = x; print_i32(y); }`
	parseSource(t, src)
}

func TestParseBoolMismatchIsError(t *testing.T) {
	toks := lexer.New(`pub fn main { let x: bool = 1; }`, "t.sugar").Tokenize()
	p := New(toks, "t.sugar")
	_, errs := p.Parse()
	require.NotEmpty(t, errs)
}

func TestParseUnknownStructFieldIsError(t *testing.T) {
	src := `
pub struct Point { pub x: i32 }
pub fn main { let p = Point { z: 1 }; }
`
	toks := lexer.New(src, "t.sugar").Tokenize()
	p := New(toks, "t.sugar")
	_, errs := p.Parse()
	require.NotEmpty(t, errs)
}
