package perror

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sugarlang/sugar/lexer"
)

func TestErrorStringIncludesLocationAndMessage(t *testing.T) {
	tok := lexer.New(lexer.KindIdentifier, "foo", "main.sg", 3, 5)
	err := New(VariableDoesNotExist, tok, "foo")
	assert.Equal(t, "main.sg:3:5: variable does not exist: foo", err.Error())
}

func TestCouldNotMatchTypeIncludesBothTypes(t *testing.T) {
	tok := lexer.New(lexer.KindIntegerLit, "1", "main.sg", 1, 14)
	err := CouldNotMatchType([]lexer.Token{tok}, "<ambiguous positive integer>", "bool")
	assert.Contains(t, err.Error(), "calculated <ambiguous positive integer>, expected bool")
}

func TestRenderWritesSourceLineAndCaret(t *testing.T) {
	color.NoColor = true
	src := "let x: bool = 1;"
	tok := lexer.New(lexer.KindIntegerLit, "1", "main.sg", 1, 15)
	err := CouldNotMatchType([]lexer.Token{tok}, "<ambiguous positive integer>", "bool")

	var buf bytes.Buffer
	Render(&buf, src, err)
	out := buf.String()

	assert.Contains(t, out, "main.sg:1:15:")
	assert.Contains(t, out, "let x: bool = 1;")
	assert.Contains(t, out, "^")
}

func TestRenderElidesLongSpans(t *testing.T) {
	color.NoColor = true
	src := "a\nb\nc\nd\ne\n"
	first := lexer.New(lexer.KindIdentifier, "a", "main.sg", 1, 1)
	last := lexer.New(lexer.KindIdentifier, "e", "main.sg", 5, 1)
	err := NewSpan(InvalidBlock, []lexer.Token{first, last}, "")

	var buf bytes.Buffer
	Render(&buf, src, err)
	out := buf.String()
	assert.Contains(t, out, "...")
}

func TestNewRelatedCarriesSecondToken(t *testing.T) {
	tok := lexer.New(lexer.KindIdentifier, "x", "main.sg", 4, 1)
	related := lexer.New(lexer.KindIdentifier, "x", "main.sg", 2, 1)
	err := NewRelated(AlreadyDefinedField, tok, related, "x")
	require.NotNil(t, err.Related)
	assert.Equal(t, 2, err.Related.Line)
}
