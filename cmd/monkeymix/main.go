/*
File   : monkeymix/cmd/monkeymix/main.go
Package: main

Entry point for the monkeymix interpreter, grounded on the teacher's
main/main.go three-mode dispatch: REPL by default, a source file when
given a path, or a REPL server when given "server <port>". Flags are
dispatched by hand against os.Args, matching the teacher's no-flag-
library convention.
*/
package main

import (
	"net"
	"os"

	"github.com/akashmaji946/monkeymix/eval"
	"github.com/akashmaji946/monkeymix/object"
	"github.com/akashmaji946/monkeymix/parser"
	"github.com/akashmaji946/monkeymix/repl"
	"github.com/fatih/color"
)

var (
	version = "v1.0.0"
	prompt  = ">> "
	banner  = `
  _ __ ___   ___  _ __  | | _____ _   _ _ __ ___ (_)_  __
 | '_ ' _ \ / _ \| '_ \ | |/ / _ \ | | | '_ ' _ \| \ \/ /
 | | | | | | (_) | | | ||   <  __/ |_| | | | | | | |>  <
 |_| |_| |_|\___/|_| |_||_|\_\___|\__, |_| |_| |_|_/_/\_\
                                  |___/
`
)

var (
	redColor    = color.New(color.FgRed)
	cyanColor   = color.New(color.FgCyan)
	yellowColor = color.New(color.FgYellow)
)

func main() {
	if len(os.Args) > 1 {
		arg := os.Args[1]

		switch arg {
		case "--help", "-h":
			showHelp()
			return
		case "--version", "-v":
			showVersion()
			return
		case "server":
			if len(os.Args) < 3 {
				redColor.Fprintln(os.Stderr, "usage: monkeymix server <port>")
				os.Exit(1)
			}
			startServer(os.Args[2])
			return
		}

		runFile(arg)
		return
	}

	r := repl.New(banner, version, prompt)
	r.Start(os.Stdout)
}

func showHelp() {
	cyanColor.Println("monkeymix - a Monkey-language interpreter")
	cyanColor.Println()
	cyanColor.Println("USAGE:")
	yellowColor.Println("  monkeymix                 start the interactive REPL")
	yellowColor.Println("  monkeymix <path-to-file>  run a .mx source file")
	yellowColor.Println("  monkeymix server <port>   start a REPL server")
	yellowColor.Println("  monkeymix --help          show this help message")
	yellowColor.Println("  monkeymix --version       show version information")
}

func showVersion() {
	cyanColor.Printf("monkeymix %s\n", version)
}

// runFile reads, parses, and evaluates a source file, exiting with
// status 1 on any parse or runtime error.
func runFile(fileName string) {
	source, err := os.ReadFile(fileName)
	if err != nil {
		redColor.Fprintf(os.Stderr, "could not read file %q: %v\n", fileName, err)
		os.Exit(1)
	}

	p := parser.New(string(source))
	program := p.ParseProgram()

	if p.HasErrors() {
		for _, msg := range p.Errors() {
			redColor.Fprintf(os.Stderr, "parser error: %s\n", msg)
		}
		os.Exit(1)
	}

	env := object.NewEnvironment()
	result := eval.Eval(program, env)
	if result != nil && result.Type() == object.ERROR_OBJ {
		redColor.Fprintf(os.Stderr, "%s\n", result.Inspect())
		os.Exit(1)
	}
}

// startServer listens on port and hands every accepted connection its
// own goroutine, REPL instance, and Environment (spec §5: connections
// are isolated, nothing is shared between them).
func startServer(port string) {
	listener, err := net.Listen("tcp", ":"+port)
	if err != nil {
		redColor.Fprintf(os.Stderr, "failed to listen on %s: %v\n", port, err)
		os.Exit(1)
	}
	defer listener.Close()
	cyanColor.Printf("monkeymix REPL server listening on :%s\n", port)

	for {
		conn, err := listener.Accept()
		if err != nil {
			redColor.Fprintf(os.Stderr, "accept error: %v\n", err)
			continue
		}
		go handleConnection(conn)
	}
}

func handleConnection(conn net.Conn) {
	defer conn.Close()
	cyanColor.Printf("client connected: %s\n", conn.RemoteAddr())
	r := repl.New(banner, version, prompt)
	r.Start(conn)
	cyanColor.Printf("client disconnected: %s\n", conn.RemoteAddr())
}
