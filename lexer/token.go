/*
File    : sugar/lexer/token.go
Package : lexer

Token and TokenType definitions for the Sugar language, grounded on the
teacher's lexer/token.go (Akash Maji's go-mix). Unlike go-mix's token
model, Sugar's tokenizer must defer some lexemes ('<', '>', '&', '..')
to the parser, since the same characters open a generic/angular-bracket
form, a borrow, or a range depending on surrounding context; the Either
meta-kind and its symmetric equality carry that deferral through the
rest of the pipeline, per spec.md §3/§4.1.
*/
package lexer

import "fmt"

// Kind identifies the broad category of a token.
type Kind int

const (
	// KindInvalid marks an unrecognized lexeme.
	KindInvalid Kind = iota
	// KindEOF marks the end of the token stream.
	KindEOF

	// Keywords
	KindLet
	KindReturn
	KindFor
	KindWhile
	KindLoop
	KindIf
	KindElse
	KindMut
	KindIm
	KindRec
	KindOxy
	KindUnsafe
	KindFn
	KindAccessor
	KindEnclave
	KindExclave
	KindStruct
	KindNamespace
	KindAlias
	KindTrue
	KindFalse
	KindPub
	KindPrv
	KindPkg
	KindPrefix
	KindInfix
	KindPostfix

	// Primitive type names (i8..i128, isize, u8..u128, usize, f32, f64, char, bool)
	KindPrimitiveType

	// Literals
	KindIntegerLit
	KindFloatLit
	KindCharLit
	KindStringLit

	// Identifier
	KindIdentifier

	// Punctuation
	KindComma
	KindSemicolon
	KindColonColon
	KindColon
	KindDollar
	KindDot
	KindLParen
	KindRParen
	KindLBracket
	KindRBracket
	KindLBrace
	KindRBrace

	// Operators (concrete, unambiguous)
	KindPlus
	KindMinus
	KindStar
	KindStarStar // **
	KindSlash    // /  (int divide, canonicalized per spec.md's Open Question)
	KindSlashDot // /. (float divide)
	KindPercent
	KindBitOr
	KindBitXor
	KindShl
	KindShr
	KindNot
	KindBitNot
	KindEq
	KindNe
	KindLe
	KindGe
	KindAndAnd
	KindOrOr
	KindXorXor
	KindAssign
	KindPlusDot
	KindMinusDot
	KindStarDot

	// Compound assignment
	KindPlusAssign
	KindMinusAssign
	KindStarAssign
	KindSlashAssign
	KindSlashDotAssign
	KindPercentAssign
	KindStarStarAssign
	KindBitAndAssign
	KindBitOrAssign
	KindBitXorAssign
	KindShlAssign
	KindShrAssign
	KindAndAndAssign
	KindOrOrAssign
	KindXorXorAssign
	KindConcatAssign

	// Range / concat
	KindConcat      // ++
	KindRangeEq     // ..=
	KindBangRange   // !..
	KindBangRangeEq // !..=

	// The following four kinds never stand alone as a Token.Kind - they are
	// only ever seen as one of the two alternatives inside an Either token.
	KindLessThan
	KindOpenAngular
	KindGreaterThan
	KindCloseAngular
	KindBitAnd
	KindBorrow
	KindDiscardMany
	KindRangeOp

	// KindEither is the meta-kind for deferred-disambiguation lexemes; its
	// two alternatives live in Token.Alt.
	KindEither
)

var kindNames = map[Kind]string{
	KindInvalid: "Invalid", KindEOF: "EOF",
	KindLet: "let", KindReturn: "return", KindFor: "for", KindWhile: "while",
	KindLoop: "loop", KindIf: "if", KindElse: "else", KindMut: "mut", KindIm: "im",
	KindRec: "rec", KindOxy: "oxy", KindUnsafe: "unsafe", KindFn: "fn",
	KindAccessor: "accessor", KindEnclave: "enclave", KindExclave: "exclave",
	KindStruct: "struct", KindNamespace: "namespace", KindAlias: "alias",
	KindTrue: "true", KindFalse: "false", KindPub: "pub", KindPrv: "prv",
	KindPkg: "pkg", KindPrefix: "prefix", KindInfix: "infix", KindPostfix: "postfix",
	KindPrimitiveType: "PrimitiveType", KindIntegerLit: "IntegerLiteral",
	KindFloatLit: "FloatLiteral", KindCharLit: "CharLiteral", KindStringLit: "StringLiteral",
	KindIdentifier: "Identifier",
	KindComma:         ",", KindSemicolon: ";", KindColonColon: "::", KindColon: ":",
	KindDollar: "$", KindDot: ".", KindLParen: "(", KindRParen: ")",
	KindLBracket: "[", KindRBracket: "]", KindLBrace: "{", KindRBrace: "}",
	KindPlus: "+", KindMinus: "-", KindStar: "*", KindStarStar: "**",
	KindSlash: "/", KindSlashDot: "/.", KindPercent: "%",
	KindBitOr: "|", KindBitXor: "^", KindShl: "<<", KindShr: ">>",
	KindNot: "!", KindBitNot: "~", KindEq: "==", KindNe: "!=",
	KindLe: "<=", KindGe: ">=", KindAndAnd: "&&", KindOrOr: "||", KindXorXor: "^^",
	KindAssign: "=", KindPlusDot: "+.", KindMinusDot: "-.", KindStarDot: "*.",
	KindPlusAssign: "+=", KindMinusAssign: "-=", KindStarAssign: "*=",
	KindSlashAssign: "/=", KindSlashDotAssign: "/.=", KindPercentAssign: "%=",
	KindStarStarAssign: "**=", KindBitAndAssign: "&=", KindBitOrAssign: "|=",
	KindBitXorAssign: "^=", KindShlAssign: "<<=", KindShrAssign: ">>=",
	KindAndAndAssign: "&&=", KindOrOrAssign: "||=", KindXorXorAssign: "^^=",
	KindConcatAssign: "++=", KindConcat: "++",
	KindRangeEq: "..=", KindBangRange: "!..", KindBangRangeEq: "!..=",
	KindLessThan: "<", KindOpenAngular: "<", KindGreaterThan: ">", KindCloseAngular: ">",
	KindBitAnd: "&", KindBorrow: "&", KindDiscardMany: "..", KindRangeOp: "..",
	KindEither: "Either",
}

// String renders a Kind's canonical lexeme or name, used in diagnostics.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// KEYWORDS maps a keyword spelling to its Kind. Consulted by the lexer's
// identifier path before falling back to KindIdentifier.
var KEYWORDS = map[string]Kind{
	"let": KindLet, "return": KindReturn, "for": KindFor, "while": KindWhile,
	"loop": KindLoop, "if": KindIf, "else": KindElse, "mut": KindMut, "im": KindIm,
	"rec": KindRec, "oxy": KindOxy, "unsafe": KindUnsafe, "fn": KindFn,
	"accessor": KindAccessor, "enclave": KindEnclave, "exclave": KindExclave,
	"struct": KindStruct, "namespace": KindNamespace, "alias": KindAlias,
	"true": KindTrue, "false": KindFalse, "pub": KindPub, "prv": KindPrv,
	"pkg": KindPkg, "prefix": KindPrefix, "infix": KindInfix, "postfix": KindPostfix,
}

// PrimitiveTypeNames is the set of primitive type spellings the lexer
// recognizes as KindPrimitiveType rather than KindIdentifier.
var PrimitiveTypeNames = map[string]bool{
	"i8": true, "i16": true, "i32": true, "i64": true, "i128": true, "isize": true,
	"u8": true, "u16": true, "u32": true, "u64": true, "u128": true, "usize": true,
	"f32": true, "f64": true, "char": true, "bool": true,
}

// Token is a single positioned lexeme. When Kind is KindEither, the token's
// true kind is one of the two alternatives in Alt, left undisambiguated
// until a parser rule decides between them using context (see Is/Matches).
type Token struct {
	Kind    Kind    // concrete kind, or KindEither
	Alt     [2]Kind // the two alternatives when Kind == KindEither
	Literal string  // exact source text of the lexeme
	File    string  // display path of the source file
	Line    int     // 1-indexed line number
	Column  int     // 1-indexed column number
	LitLen  int     // length of the significant literal run (int/float literals)
}

// New builds a concrete (non-ambiguous) token.
func New(kind Kind, literal, file string, line, column int) Token {
	return Token{Kind: kind, Literal: literal, File: file, Line: line, Column: column}
}

// NewEither builds an ambiguous token whose disambiguation is left to
// downstream equality checks.
func NewEither(a, b Kind, literal, file string, line, column int) Token {
	return Token{Kind: KindEither, Alt: [2]Kind{a, b}, Literal: literal, File: file, Line: line, Column: column}
}

// Is reports whether this token matches the given concrete kind. For a
// KindEither token this is true if either alternative equals k - the
// symmetric equality spec.md §3 requires ("Either(a,b) == x iff
// a==x || b==x").
func (t Token) Is(k Kind) bool {
	if t.Kind == KindEither {
		return t.Alt[0] == k || t.Alt[1] == k
	}
	return t.Kind == k
}

// Matches reports whether two tokens are equal under the Either-aware
// equality relation, symmetric in both operands.
func (t Token) Matches(o Token) bool {
	if t.Kind == KindEither && o.Kind == KindEither {
		return (t.Alt[0] == o.Alt[0] && t.Alt[1] == o.Alt[1]) ||
			(t.Alt[0] == o.Alt[1] && t.Alt[1] == o.Alt[0])
	}
	if t.Kind == KindEither {
		return o.Is(t.Alt[0]) || o.Is(t.Alt[1])
	}
	if o.Kind == KindEither {
		return t.Is(o.Alt[0]) || t.Is(o.Alt[1])
	}
	return t.Kind == o.Kind
}

// String renders "literal:kind" for debugging, matching the teacher's
// Token.Print format.
func (t Token) String() string {
	if t.Kind == KindEither {
		return fmt.Sprintf("%s:Either(%s,%s)", t.Literal, t.Alt[0], t.Alt[1])
	}
	return fmt.Sprintf("%s:%s", t.Literal, t.Kind)
}
