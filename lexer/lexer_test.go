/*
File    : sugar/lexer/lexer_test.go
Package : lexer

Tests grounded on the teacher's lexer_test.go table-driven style, using
testify/require, adapted to Sugar's token kinds and Either ambiguity.
*/
package lexer

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func tokenize(t *testing.T, src string) []Token {
	t.Helper()
	return New(src, "test.sg").Tokenize()
}

func TestLexerPunctuationAndKeywords(t *testing.T) {
	toks := tokenize(t, "let mut x: i32 = 5;")
	require.Len(t, toks, 8)
	require.Equal(t, KindLet, toks[0].Kind)
	require.Equal(t, KindMut, toks[1].Kind)
	require.Equal(t, KindIdentifier, toks[2].Kind)
	require.Equal(t, KindColon, toks[3].Kind)
	require.Equal(t, KindPrimitiveType, toks[4].Kind)
	require.Equal(t, KindAssign, toks[5].Kind)
	require.Equal(t, KindIntegerLit, toks[6].Kind)
}

func TestLexerFloatVsDotOperator(t *testing.T) {
	toks := tokenize(t, "6.28")
	require.Len(t, toks, 1)
	require.Equal(t, KindFloatLit, toks[0].Kind)
	require.Equal(t, "6.28", toks[0].Literal)

	toks = tokenize(t, "a.b")
	require.Len(t, toks, 3)
	require.Equal(t, KindIdentifier, toks[0].Kind)
	require.Equal(t, KindDot, toks[1].Kind)
	require.Equal(t, KindIdentifier, toks[2].Kind)
}

func TestLexerRangeDoesNotSwallowFloat(t *testing.T) {
	toks := tokenize(t, "2..5")
	require.Len(t, toks, 3)
	require.Equal(t, KindIntegerLit, toks[0].Kind)
	require.True(t, toks[1].Is(KindRangeOp))
	require.True(t, toks[1].Is(KindDiscardMany))
	require.Equal(t, KindIntegerLit, toks[2].Kind)
}

func TestLexerEitherEqualitySymmetric(t *testing.T) {
	toks := tokenize(t, "<")
	lt := toks[0]
	require.True(t, lt.Is(KindLessThan))
	require.True(t, lt.Is(KindOpenAngular))
	require.False(t, lt.Is(KindGreaterThan))

	concrete := New(KindLessThan, "<", "test.sg", 1, 1)
	require.True(t, lt.Matches(concrete))
	require.True(t, concrete.Matches(lt))
}

func TestLexerNestedBlockComments(t *testing.T) {
	src := "/, outer /, inner ,/ still-outer ,/ 7"
	toks := tokenize(t, src)
	require.Len(t, toks, 1)
	require.Equal(t, "7", toks[0].Literal)
}

func TestLexerLineComment(t *testing.T) {
	toks := tokenize(t, "1 // trailing comment\n2")
	require.Len(t, toks, 2)
	require.Equal(t, "1", toks[0].Literal)
	require.Equal(t, "2", toks[1].Literal)
}

func TestLexerStringAndCharLiterals(t *testing.T) {
	toks := tokenize(t, `"hi\n" 'a' '\n'`)
	require.Len(t, toks, 3)
	require.Equal(t, KindStringLit, toks[0].Kind)
	require.Equal(t, `hi\n`, toks[0].Literal)
	require.Equal(t, KindCharLit, toks[1].Kind)
	require.Equal(t, "a", toks[1].Literal)
	require.Equal(t, KindCharLit, toks[2].Kind)
	require.Equal(t, `\n`, toks[2].Literal)
}

func TestLexerPositions(t *testing.T) {
	toks := tokenize(t, "let\nx")
	require.Equal(t, 1, toks[0].Line)
	require.Equal(t, 1, toks[0].Column)
	require.Equal(t, 2, toks[1].Line)
	require.Equal(t, 1, toks[1].Column)
}

func TestLexerCompoundAssignmentOperators(t *testing.T) {
	toks := tokenize(t, "x <<= 1")
	require.Equal(t, KindShlAssign, toks[1].Kind)

	toks = tokenize(t, "x /.= 1")
	require.Equal(t, KindSlashDotAssign, toks[1].Kind)
}

func TestLexerInvalidCharacter(t *testing.T) {
	toks := tokenize(t, "@")
	require.Len(t, toks, 1)
	require.Equal(t, KindInvalid, toks[0].Kind)
}
