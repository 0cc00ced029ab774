/*
File    : sugar/perror/render.go
Package : perror

ANSI-colored diagnostic rendering (spec.md §4.9), using
github.com/fatih/color as the concrete vehicle for the "ANSI
highlighting" the distilled spec names but leaves unimplemented - the
teacher's own CLI/REPL pulls in fatih/color for exactly this kind of
colorized terminal output.
*/
package perror

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/sugarlang/sugar/lexer"
)

var (
	errorLabel = color.New(color.FgRed, color.Bold)
	locLabel   = color.New(color.FgCyan)
	caretColor = color.New(color.FgRed, color.Bold)
)

// Render writes a multi-line diagnostic for err against the original
// source text src, matching spec.md §4.9: "file:line:col, a red
// `error:` prefix, the offending source line, and a caret underline of
// length equal to the spanning tokens."
func Render(w io.Writer, src string, err *Error) {
	if len(err.Tokens) == 0 {
		errorLabel.Fprint(w, "error: ")
		fmt.Fprintln(w, err.Error())
		return
	}

	first := err.Tokens[0]
	last := err.Tokens[len(err.Tokens)-1]

	locLabel.Fprintf(w, "%s:%d:%d: ", first.File, first.Line, first.Column)
	errorLabel.Fprint(w, "error: ")
	fmt.Fprintln(w, err.Error())

	lines := strings.Split(src, "\n")
	startLine, endLine := first.Line, last.Line
	if startLine < 1 || startLine > len(lines) {
		return
	}
	if endLine > len(lines) {
		endLine = len(lines)
	}

	printSourceLine := func(n int) {
		fmt.Fprintf(w, "  %4d | %s\n", n, lines[n-1])
	}

	if endLine-startLine+1 <= 3 {
		for n := startLine; n <= endLine; n++ {
			printSourceLine(n)
		}
	} else {
		printSourceLine(startLine)
		fmt.Fprintln(w, "       | ...")
		printSourceLine(endLine)
	}

	underlineLen := spanLength(first, last)
	fmt.Fprintf(w, "       | %s", strings.Repeat(" ", first.Column-1))
	caretColor.Fprintln(w, strings.Repeat("^", underlineLen))

	if err.Related != nil {
		fmt.Fprintf(w, "  note: related to %s:%d:%d\n", err.Related.File, err.Related.Line, err.Related.Column)
	}
}

// spanLength returns the caret underline width covering first..last. For
// a single-line span it is the column distance from first to the end of
// last's literal; a multi-line span underlines just the first line's
// remainder.
func spanLength(first, last lexer.Token) int {
	if first.Line != last.Line {
		return max(1, len(first.Literal))
	}
	width := (last.Column + len(last.Literal)) - first.Column
	if width < 1 {
		return 1
	}
	return width
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
