/*
File    : sugar/internal/repl/repl.go
Package : repl

Interactive Read-Eval-Print Loop. Grounded on the teacher's
repl/repl.go Repl struct/Start/executeWithRecovery shape, adapted from
go-mix's single shared dynamically-scoped Evaluator to Sugar's
function-scoped static language: each line is lexed/parsed/evaluated as
its own standalone program rather than accumulating into one shared
environment, since a statically-typed, `pub fn main`-entry language has
no REPL-global scope to grow line over line the way go-mix's object
environment does. A line without `fn main` in it becomes the body of a
one-line `pub fn main { ... }`; file mode does no such wrapping and runs
the file's own `main`.
*/
package repl

import (
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/sugarlang/sugar/eval"
	"github.com/sugarlang/sugar/lexer"
	"github.com/sugarlang/sugar/parser"
	"github.com/sugarlang/sugar/perror"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl holds the banner/prompt decoration for one interactive session.
type Repl struct {
	Banner  string
	Version string
	Author  string
	Line    string
	License string
	Prompt  string
	Config  eval.Config
}

// New builds a Repl instance.
func New(banner, version, author, line, license, prompt string, cfg eval.Config) *Repl {
	return &Repl{Banner: banner, Version: version, Author: author, Line: line, License: license, Prompt: prompt, Config: cfg}
}

// PrintBannerInfo displays the startup banner and usage hints.
func (r *Repl) PrintBannerInfo(w io.Writer) {
	blueColor.Fprintf(w, "%s\n", r.Line)
	greenColor.Fprintf(w, "%s\n", r.Banner)
	blueColor.Fprintf(w, "%s\n", r.Line)
	yellowColor.Fprintln(w, "Version: "+r.Version+" | Author: "+r.Author+" | License: "+r.License)
	blueColor.Fprintf(w, "%s\n", r.Line)
	cyanColor.Fprintf(w, "%s\n", "Welcome to Sugar!")
	cyanColor.Fprintf(w, "%s\n", "Type a pub fn main { ... } program, or a bare expression, and press enter")
	cyanColor.Fprintf(w, "%s\n", "Type '.exit' to quit")
	cyanColor.Fprintf(w, "%s\n", "Use up/down arrows to navigate command history")
	blueColor.Fprintf(w, "%s\n", r.Line)
}

// Start runs the main loop, reading from reader/writer - a real
// terminal when invoked from cmd/sugar, or a net.Conn when invoked
// from the server subcommand.
func (r *Repl) Start(reader io.Reader, writer io.Writer) {
	r.PrintBannerInfo(writer)

	cfg := readline.Config{Prompt: r.Prompt, Stdin: io.NopCloser(reader), Stdout: writer}
	rl, err := readline.NewEx(&cfg)
	if err != nil {
		redColor.Fprintf(writer, "[REPL ERROR] %v\n", err)
		return
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err != nil {
			writer.Write([]byte("Good Bye!\n"))
			return
		}
		line = strings.Trim(line, " \n\t\r")
		if line == "" {
			continue
		}
		if line == ".exit" {
			writer.Write([]byte("Good Bye!\n"))
			return
		}
		rl.SaveHistory(line)
		r.runLine(writer, line)
	}
}

// runLine parses and evaluates one line as a standalone program.
func (r *Repl) runLine(w io.Writer, line string) {
	src, isWrapped := wrapAsMain(line)

	toks := lexer.New(src, "<repl>").Tokenize()
	p := parser.New(toks, "<repl>")
	prog, errs := p.Parse()
	if len(errs) > 0 {
		for _, e := range errs {
			perror.Render(w, src, e)
		}
		return
	}

	it := eval.New(prog, "<repl>", r.Config)
	it.SetWriter(w)
	result, rerr := it.RunMain()
	if rerr != nil {
		perror.Render(w, src, rerr)
		return
	}
	if result != nil {
		yellowColor.Fprintf(w, "%s\n", result.String())
	}
	_ = isWrapped
}

// wrapAsMain lowers a bare expression/statement line into a one-line
// `pub fn main` body, matching how file mode expects a full program -
// a line containing the text `fn main` is left untouched; any other
// line, including one that defines a struct or another function, is
// wrapped.
func wrapAsMain(line string) (string, bool) {
	if strings.Contains(line, "fn main") {
		return line, false
	}
	body := strings.TrimSuffix(strings.TrimSpace(line), ";")
	return "pub fn main { " + body + "; }", true
}
