/*
File    : sugar/perror/errors.go
Package : perror

Structured parser/eval error values, per spec.md §7's taxonomy. Rather
than one Go type per taxonomy entry (over forty of them, almost all
differing only in which tokens/strings they carry), a single Error
struct tags its Kind and carries the superset of fields any kind needs -
the same tagged-union shape the rest of this codebase uses for
ExprType and ast nodes, and a closer fit than forty near-identical
structs for a diagnostic value that exists only to be rendered once.
*/
package perror

import "github.com/sugarlang/sugar/lexer"

// Kind identifies which taxonomy entry an Error reports.
type Kind int

const (
	// Token expectation failures.
	ExpectedToken Kind = iota
	ExpectedTokens
	ExpectedClosingBrace
	ExpectedIdentifier
	ExpectedType
	ExpectedEndOfWhitelist
	ExpectedEndOfBlacklist
	ExpectedEndOfStruct
	ExpectedEndOfFunctionDefinition

	// Definition conflicts.
	AlreadyDefinedWhitelist
	AlreadyDefinedBlacklist
	AlreadyDefinedField
	ConflictingFunctionFixDefinitions
	DefinedIncorrectlyPlacedArgument

	// Resolution failures.
	VariableDoesNotExist
	FieldDoesNotExist
	FieldExpressionNotDefined
	AccessorNotDefined
	MissingAccessor
	NoWhitelistOrBlacklist

	// Typing failures.
	CouldNotMatchType
	IncorrectNumberPrefixArguments
	InvalidDotExpression
	PatternNotMatchExpectedType
	InvalidMut
	CannotMutateImmutable

	// Structural failures.
	InvalidBlock
	InvalidStatement
	InvalidExpressionAtom
	InvalidDollarExpression
	InvalidPattern
	SecondDiscardMany
	MultipleExpressions

	// Reserved-keyword rejection (SPEC_FULL.md §4: namespace/alias/unsafe).
	// No parser path raises this kind; those keywords fail as an invalid
	// top-level statement or an invalid expression atom instead.
	ReservedForFutureUse

	// Interpreter failures (spec.md §7 "abort with a line-tagged panic").
	RuntimeTypeMismatch
	StackOverflow
	RuntimePanic
	DivisionByZero
)

var kindMessages = map[Kind]string{
	ExpectedToken:                     "expected token",
	ExpectedTokens:                    "expected one of several tokens",
	ExpectedClosingBrace:              "expected closing brace",
	ExpectedIdentifier:                "expected identifier",
	ExpectedType:                      "expected a type",
	ExpectedEndOfWhitelist:            "expected end of whitelist",
	ExpectedEndOfBlacklist:            "expected end of blacklist",
	ExpectedEndOfStruct:               "expected end of struct definition",
	ExpectedEndOfFunctionDefinition:   "expected end of function definition",
	AlreadyDefinedWhitelist:           "whitelist already defined for this accessor",
	AlreadyDefinedBlacklist:           "blacklist already defined for this accessor",
	AlreadyDefinedField:               "field already defined",
	ConflictingFunctionFixDefinitions: "conflicting fixity definitions",
	DefinedIncorrectlyPlacedArgument:  "argument placed incorrectly for declared fixity",
	VariableDoesNotExist:              "variable does not exist",
	FieldDoesNotExist:                 "field does not exist on this struct",
	FieldExpressionNotDefined:         "field not defined in this expression",
	AccessorNotDefined:                "accessor not defined",
	MissingAccessor:                   "missing accessor",
	NoWhitelistOrBlacklist:            "accessor has neither a whitelist nor a blacklist",
	CouldNotMatchType:                 "could not match type",
	IncorrectNumberPrefixArguments:    "incorrect number of prefix arguments",
	InvalidDotExpression:              "invalid dot expression",
	PatternNotMatchExpectedType:       "pattern does not match expected type",
	InvalidMut:                        "invalid mutability",
	CannotMutateImmutable:             "cannot mutate an immutable binding",
	InvalidBlock:                      "invalid block",
	InvalidStatement:                  "invalid statement",
	InvalidExpressionAtom:             "invalid expression atom",
	InvalidDollarExpression:           "invalid dollar expression",
	InvalidPattern:                    "invalid pattern",
	SecondDiscardMany:                 "a pattern may contain at most one discard-many",
	MultipleExpressions:               "multiple sibling expressions in one set",
	ReservedForFutureUse:              "keyword reserved for future use",
	RuntimeTypeMismatch:               "runtime type mismatch",
	StackOverflow:                     "stack overflow",
	RuntimePanic:                      "panic",
	DivisionByZero:                    "division by zero",
}

// Error is one diagnostic: a kind, the token span it covers, a
// human-readable detail, and whatever extra context that kind carries.
type Error struct {
	Kind    Kind
	Tokens  []lexer.Token // the spanning tokens; Tokens[0] anchors file:line:col
	Detail  string        // kind-specific extra detail appended to the base message
	Related *lexer.Token  // a second reference token, e.g. an earlier definition
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := kindMessages[e.Kind]
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	if len(e.Tokens) > 0 {
		t := e.Tokens[0]
		return t.File + ":" + itoa(t.Line) + ":" + itoa(t.Column) + ": " + msg
	}
	return msg
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}

// New builds an Error spanning a single token.
func New(kind Kind, tok lexer.Token, detail string) *Error {
	return &Error{Kind: kind, Tokens: []lexer.Token{tok}, Detail: detail}
}

// NewSpan builds an Error spanning multiple tokens.
func NewSpan(kind Kind, tokens []lexer.Token, detail string) *Error {
	return &Error{Kind: kind, Tokens: tokens, Detail: detail}
}

// NewRelated builds an Error that references a second token (e.g. the
// earlier definition an AlreadyDefined* error conflicts with).
func NewRelated(kind Kind, tok lexer.Token, related lexer.Token, detail string) *Error {
	return &Error{Kind: kind, Tokens: []lexer.Token{tok}, Related: &related, Detail: detail}
}

// CouldNotMatchType builds the typing-failure error spec.md §8's
// negative scenario names explicitly.
func CouldNotMatchType(tokens []lexer.Token, calculated, expected string) *Error {
	return &Error{
		Kind:   CouldNotMatchType,
		Tokens: tokens,
		Detail: "calculated " + calculated + ", expected " + expected,
	}
}
