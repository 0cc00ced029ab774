/*
File    : sugar/eval/interpreter.go
Package : eval

Interpreter holds the dual Oxy/GC byte stacks, the resolved program
tables, and the I/O surface built-ins write through - the runtime
counterpart of the parser's Program. Grounded on the teacher's
eval/evaluator.go Evaluator struct (Par/Scp/Builtins/Writer/Reader),
adapted from a dynamically-typed object-scope evaluator to the
byte-stack machine spec.md §4.8 describes.
*/
package eval

import (
	"bufio"
	"io"
	"os"

	"github.com/sugarlang/sugar/accessor"
	"github.com/sugarlang/sugar/lexer"
	"github.com/sugarlang/sugar/objects"
	"github.com/sugarlang/sugar/parser"
	"github.com/sugarlang/sugar/perror"
	"github.com/sugarlang/sugar/scope"
	"github.com/sugarlang/sugar/types"
)

// DefaultStackSize is the default byte width of each of Oxy and GC,
// per spec.md §4.8 ("two contiguous byte regions of fixed size,
// default 1024 bytes each").
const DefaultStackSize = 1024

// Interpreter is single-program, single-threaded: construct with New,
// call Run once. It implements ast.Visitor (see expr.go/stmt.go).
type Interpreter struct {
	oxy    []byte
	gc     []byte
	oxyTop int
	gcTop  int

	frame *scope.Frame

	functions map[string]*accessor.Function
	structs   accessor.StructTable
	strings   *stringTable

	file   string
	Writer io.Writer
	Reader *bufio.Reader
}

// Config controls the two stack sizes, loaded from an optional
// .sugarrc.yaml by internal/sugarconfig.
type Config struct {
	OxySize int
	GCSize  int
}

// DefaultConfig returns the spec's documented defaults.
func DefaultConfig() Config {
	return Config{OxySize: DefaultStackSize, GCSize: DefaultStackSize}
}

// New builds an Interpreter over a resolved Program, ready to Run.
func New(prog *parser.Program, file string, cfg Config) *Interpreter {
	if cfg.OxySize <= 0 {
		cfg.OxySize = DefaultStackSize
	}
	if cfg.GCSize <= 0 {
		cfg.GCSize = DefaultStackSize
	}
	return &Interpreter{
		oxy:       make([]byte, cfg.OxySize),
		gc:        make([]byte, cfg.GCSize),
		frame:     scope.NewFrame(nil, 0, 0),
		functions: prog.Functions,
		structs:   prog.Structs,
		strings:   newStringTable(),
		file:      file,
		Writer:    os.Stdout,
		Reader:    bufio.NewReader(os.Stdin),
	}
}

// SetWriter redirects built-in output, mirroring the teacher's
// SetWriter (used by tests to capture stdout into a buffer).
func (it *Interpreter) SetWriter(w io.Writer) { it.Writer = w }

// SetReader redirects built-in input.
func (it *Interpreter) SetReader(r io.Reader) { it.Reader = bufio.NewReader(r) }

// Run finds `main` (no params, Void return) and interprets it, per
// spec.md §4.8's "Entry" rule.
func (it *Interpreter) Run() *perror.Error {
	main, ok := it.functions["main"]
	if !ok {
		return perror.New(perror.VariableDoesNotExist, it.syntheticToken(0), "no function named main")
	}
	if len(main.LeftParams) != 0 || len(main.RightParams) != 0 {
		return perror.New(perror.IncorrectNumberPrefixArguments, it.syntheticToken(0), "main must take no parameters")
	}
	if main.ReturnType.Tag != types.Void {
		return perror.New(perror.CouldNotMatchType, it.syntheticToken(0), "main must return void")
	}
	_, rerr := it.callFunction(0, main, nil, nil)
	if rerr != nil {
		return rerr.Err
	}
	return nil
}

// RunMain is Run plus main's own result, deserialized for display - the
// REPL's entry point, since a REPL line is worth echoing back a value
// for (file-mode execution never needs one, hence Run discards it).
func (it *Interpreter) RunMain() (*objects.Value, *perror.Error) {
	main, ok := it.functions["main"]
	if !ok {
		return nil, perror.New(perror.VariableDoesNotExist, it.syntheticToken(0), "no function named main")
	}
	if len(main.LeftParams) != 0 || len(main.RightParams) != 0 {
		return nil, perror.New(perror.IncorrectNumberPrefixArguments, it.syntheticToken(0), "main must take no parameters")
	}
	vd, rerr := it.callFunction(0, main, nil, nil)
	if rerr != nil {
		return nil, rerr.Err
	}
	if vd.Type.Tag == types.Void || vd.Type.Tag == types.Never {
		return nil, nil
	}
	v, rerr := it.readValue(vd)
	if rerr != nil {
		return nil, rerr.Err
	}
	return &v, nil
}

// syntheticToken builds a zero-width token anchored at line, used when
// an error has no real spanning token (top-level entry failures).
func (it *Interpreter) syntheticToken(line int) lexer.Token {
	return lexer.Token{Kind: lexer.KindEOF, File: it.file, Line: line}
}
