/*
File    : sugar/eval/eval_test.go
Package : eval
*/
package eval

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sugarlang/sugar/lexer"
	"github.com/sugarlang/sugar/parser"
)

func run(t *testing.T, src string) string {
	t.Helper()
	toks := lexer.New(src, "test.sugar").Tokenize()
	p := parser.New(toks, "test.sugar")
	prog, errs := p.Parse()
	require.Empty(t, errs, "unexpected parse errors: %v", errs)
	require.NotNil(t, prog)

	it := New(prog, "test.sugar", DefaultConfig())
	var out bytes.Buffer
	it.SetWriter(&out)

	rerr := it.Run()
	require.Nil(t, rerr, "unexpected runtime error: %v", rerr)
	return out.String()
}

func TestHelloWorld(t *testing.T) {
	require.Equal(t, "Hi", run(t, `pub fn main { print_string("Hi"); }`))
}

func TestIntegerArithmetic(t *testing.T) {
	require.Equal(t, "14", run(t, `pub fn main { let x: i32 = 2 + 3 * 4; print_i32(x); }`))
}

func TestStructLiteralAndFieldAccess(t *testing.T) {
	src := `
pub struct Point { pub x: i32, pub y: i32 }
pub fn main { let p = Point { x: 3, y: 4 }; print_i32(p.x + p.y); print_i32(p.x * p.y); }
`
	require.Equal(t, "712", run(t, src))
}

func TestConditional(t *testing.T) {
	src := `pub fn main { let mut n: i32 = 0; if false { n = 9; } else { n = 7; } print_i32(n); }`
	require.Equal(t, "7", run(t, src))
}

func TestWhileLoop(t *testing.T) {
	src := `pub fn main { let mut i: i32 = 0; while i < 3 { print_i32(i); i = i + 1; } }`
	require.Equal(t, "012", run(t, src))
}

func TestAmbiguousIntegerRefinesAtUse(t *testing.T) {
	src := `pub fn main { let x = 5; let y: i32 = x; print_i32(y); }`
	require.Equal(t, "5", run(t, src))
}

func TestUserFunctionCallAndReturn(t *testing.T) {
	src := `
pub fn square (n: i32): i32 { return n * n; }
pub fn main { print_i32(square(6)); }
`
	require.Equal(t, "36", run(t, src))
}

func TestBlockTrailingValueSurvivesScopeExit(t *testing.T) {
	src := `
pub fn addOne (n: i32): i32 {
	let result: i32 = { let doubled: i32 = n * 2; doubled + 1 };
	return result;
}
pub fn main { print_i32(addOne(10)); }
`
	require.Equal(t, "21", run(t, src))
}

func TestArrayIndexing(t *testing.T) {
	src := `pub fn main { let xs: [i32] = [10, 20, 30]; print_i32(xs[1]); }`
	require.Equal(t, "20", run(t, src))
}

func TestConcatString(t *testing.T) {
	require.Equal(t, "ab", run(t, `pub fn main { print_string("a" ++ "b"); }`))
}

func TestTupleDestructureDeclaration(t *testing.T) {
	src := `pub fn main { let (a, b) = (3, 4); print_i32(a + b); print_i32(a * b); }`
	require.Equal(t, "712", run(t, src))
}

func TestArraySuffixDestructureDeclaration(t *testing.T) {
	src := `pub fn main { let xs: [i32] = [10, 20, 30]; let [a, ..b] = xs; print_i32(a); print_i32(b); }`
	require.Equal(t, "1030", run(t, src))
}
