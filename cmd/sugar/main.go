/*
File    : sugar/cmd/sugar/main.go
Package : main

Entry point for the Sugar interpreter. Grounded on the teacher's
main/main.go flag-free argument dispatch (--help/--version, a bare
file path, `server <port>`), adapted from go-mix's dynamically-typed
single-pass Eval to Sugar's lex -> parse -> Run pipeline.
*/
package main

import (
	"net"
	"os"

	"github.com/fatih/color"

	"github.com/sugarlang/sugar/eval"
	"github.com/sugarlang/sugar/internal/repl"
	"github.com/sugarlang/sugar/internal/sugarconfig"
	"github.com/sugarlang/sugar/lexer"
	"github.com/sugarlang/sugar/parser"
	"github.com/sugarlang/sugar/perror"
)

// VERSION is the current interpreter version.
var VERSION = "v1.0.0"

// AUTHOR is the maintainer contact shown in --version/REPL banner.
var AUTHOR = "sugarlang"

// LICENSE is the software license.
var LICENSE = "MIT"

// PROMPT is the REPL's command prompt.
var PROMPT = "sugar >>> "

// BANNER is the ASCII art shown at REPL startup.
var BANNER = `
  ____
 / ___| _   _  __ _  __ _ _ __
 \___ \| | | |/ _' |/ _' | '__|
  ___) | |_| | (_| | (_| | |
 |____/ \__,_|\__, |\__,_|_|
              |___/
`

// LINE is the REPL's banner separator.
var LINE = "----------------------------------------------------------------"

var (
	redColor    = color.New(color.FgRed)
	yellowColor = color.New(color.FgYellow)
	cyanColor   = color.New(color.FgCyan)
)

// main dispatches on argv:
//
//	sugar                 - start the REPL on stdin/stdout
//	sugar <file>          - run a Sugar source file
//	sugar server <port>   - start a networked REPL server
//	sugar --help / -h     - show usage
//	sugar --version / -v  - show version
func main() {
	if len(os.Args) <= 1 {
		startRepl(os.Stdin, os.Stdout)
		return
	}

	switch arg := os.Args[1]; arg {
	case "--help", "-h":
		showHelp()
	case "--version", "-v":
		showVersion()
	case "server":
		if len(os.Args) < 3 {
			redColor.Fprintf(os.Stderr, "[USAGE ERROR] missing port. Usage: sugar server <port>\n")
			os.Exit(1)
		}
		startServer(os.Args[2])
	default:
		runFile(arg)
	}
}

func showHelp() {
	cyanColor.Println("Sugar - a statically-typed systems language interpreter")
	cyanColor.Println("")
	cyanColor.Println("USAGE:")
	yellowColor.Println("  sugar                  Start interactive REPL mode")
	yellowColor.Println("  sugar <path-to-file>   Run a Sugar file (.sugar)")
	yellowColor.Println("  sugar server <port>    Start a REPL server on the given port")
	yellowColor.Println("  sugar --help           Show this message")
	yellowColor.Println("  sugar --version        Show version information")
	cyanColor.Println("")
	cyanColor.Println("REPL COMMANDS:")
	yellowColor.Println("  .exit                  Exit the REPL")
}

func showVersion() {
	cyanColor.Printf("Sugar %s (license: %s, author: %s)\n", VERSION, LICENSE, AUTHOR)
}

func loadConfig() eval.Config {
	dir, err := os.Getwd()
	if err != nil {
		return eval.DefaultConfig()
	}
	cfg, err := sugarconfig.Load(dir)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[CONFIG ERROR] %v\n", err)
		return eval.DefaultConfig()
	}
	return cfg
}

func runFile(path string) {
	source, err := os.ReadFile(path)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[FILE ERROR] could not read '%s': %v\n", path, err)
		os.Exit(1)
	}

	src := string(source)
	toks := lexer.New(src, path).Tokenize()
	p := parser.New(toks, path)
	prog, errs := p.Parse()
	if len(errs) > 0 {
		for _, e := range errs {
			perror.Render(os.Stderr, src, e)
		}
		os.Exit(1)
	}

	it := eval.New(prog, path, loadConfig())
	if rerr := it.Run(); rerr != nil {
		perror.Render(os.Stderr, src, rerr)
		os.Exit(1)
	}
}

func startRepl(reader *os.File, writer *os.File) {
	r := repl.New(BANNER, VERSION, AUTHOR, LINE, LICENSE, PROMPT, loadConfig())
	r.Start(reader, writer)
}

func startServer(port string) {
	listener, err := net.Listen("tcp", ":"+port)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[SERVER ERROR] failed to listen on port %s: %v\n", port, err)
		os.Exit(1)
	}
	cyanColor.Printf("Sugar REPL server listening on :%s\n", port)
	defer listener.Close()

	cfg := loadConfig()
	for {
		conn, err := listener.Accept()
		if err != nil {
			redColor.Fprintf(os.Stderr, "[SERVER ERROR] accept failed: %v\n", err)
			continue
		}
		go handleClient(conn, cfg)
	}
}

func handleClient(conn net.Conn, cfg eval.Config) {
	defer conn.Close()
	cyanColor.Printf("client connected from %s\n", conn.RemoteAddr())
	r := repl.New(BANNER, VERSION, AUTHOR, LINE, LICENSE, PROMPT, cfg)
	r.Start(conn, conn)
	cyanColor.Printf("client disconnected from %s\n", conn.RemoteAddr())
}
