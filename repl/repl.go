/*
File   : monkeymix/repl/repl.go
Package: repl

An interactive read-eval-print loop grounded on the teacher's
repl/repl.go: readline for history/line-editing, fatih/color for
feedback, an Environment that persists across lines so `let` bindings
and closures survive from one line to the next, and a panic-recovery
wrapper so a host bug never takes the session down.
*/
package repl

import (
	"io"
	"strings"

	"github.com/akashmaji946/monkeymix/eval"
	"github.com/akashmaji946/monkeymix/object"
	"github.com/akashmaji946/monkeymix/parser"
	"github.com/chzyer/readline"
	"github.com/fatih/color"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl holds the display configuration for an interactive session.
type Repl struct {
	Banner  string
	Version string
	Prompt  string
	Line    string
}

// New creates a Repl with the given banner, version string, and prompt.
func New(banner, version, prompt string) *Repl {
	return &Repl{
		Banner:  banner,
		Version: version,
		Prompt:  prompt,
		Line:    strings.Repeat("-", 48),
	}
}

func (r *Repl) printBanner(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	yellowColor.Fprintf(writer, "Version: %s\n", r.Version)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	cyanColor.Fprintln(writer, "Type your code and press enter")
	cyanColor.Fprintln(writer, "Type '.exit' to quit")
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start runs the main loop until the user types .exit or sends EOF. Every
// line shares the same top-level Environment, so a `let` or `fn` bound on
// one line is visible on the next.
func (r *Repl) Start(writer io.Writer) {
	r.printBanner(writer)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	env := object.NewEnvironment()

	for {
		line, err := rl.Readline()
		if err != nil {
			writer.Write([]byte("bye\n"))
			return
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == ".exit" {
			writer.Write([]byte("bye\n"))
			return
		}

		rl.SaveHistory(line)
		r.executeWithRecovery(writer, line, env)
	}
}

func (r *Repl) executeWithRecovery(writer io.Writer, line string, env *object.Environment) {
	defer func() {
		if recovered := recover(); recovered != nil {
			redColor.Fprintf(writer, "runtime error: %v\n", recovered)
		}
	}()

	p := parser.New(line)
	program := p.ParseProgram()

	if p.HasErrors() {
		redColor.Fprintln(writer, "parser errors:")
		for _, msg := range p.Errors() {
			redColor.Fprintf(writer, "\t%s\n", msg)
		}
		return
	}

	result := eval.Eval(program, env)
	if result == nil {
		return
	}

	if result.Type() == object.ERROR_OBJ {
		redColor.Fprintf(writer, "%s\n", result.Inspect())
	} else {
		yellowColor.Fprintf(writer, "%s\n", result.Inspect())
	}
}
