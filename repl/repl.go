/*
File    : filipe/repl/repl.go
Package : repl

Package repl implements Filipe's interactive Read-Eval-Print Loop. The
REPL provides an interactive environment where users can:
- Enter Filipe code line by line
- See immediate results of their code execution
- Navigate command history using arrow keys
- Receive colored feedback for different types of output

The REPL uses the readline library for enhanced line editing capabilities
and integrates with the parser and evaluator to execute user input.
*/
package repl

import (
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/filipelang/filipe/eval"
	"github.com/filipelang/filipe/object"
	"github.com/filipelang/filipe/parser"
)

// Color definitions for REPL output
// These colors provide visual feedback to enhance user experience:
// - blueColor: Decorative lines and separators
// - yellowColor: Expression results and version info
// - redColor: Error messages and warnings
// - greenColor: Banner and success messages
// - cyanColor: Informational messages and instructions
var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl represents the Read-Eval-Print Loop instance.
// It encapsulates all the configuration needed to run an interactive session.
type Repl struct {
	Banner     string // ASCII art banner displayed at startup
	Version    string // Version string of the interpreter
	Author     string // Author contact information
	Line       string // Separator line for visual formatting
	License    string // Software license information
	Prompt     string // Primary prompt shown to the user (spec §6: "|> ")
	Continue   string // Continuation prompt shown mid-block (spec §6: "... ")
}

// NewRepl creates and initializes a new REPL instance.
func NewRepl(banner, version, author, line, license, prompt, cont string) *Repl {
	return &Repl{Banner: banner, Version: version, Author: author, Line: line, License: license, Prompt: prompt, Continue: cont}
}

// PrintBannerInfo displays the welcome banner and usage instructions.
func (r *Repl) PrintBannerInfo(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	yellowColor.Fprintln(writer, "Version: "+r.Version+" | Author: "+r.Author+" | License: "+r.License)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	cyanColor.Fprintf(writer, "%s\n", "Welcome to Filipe!")
	cyanColor.Fprintf(writer, "%s\n", "Type your code and press enter")
	cyanColor.Fprintf(writer, "%s\n", "Type '.help' for usage, 'exit()' to quit")
	cyanColor.Fprintf(writer, "%s\n", "Use up/down arrows to navigate command history")
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// printHelp implements the `.help` special line (spec §6).
func (r *Repl) printHelp(writer io.Writer) {
	cyanColor.Fprintln(writer, "Filipe REPL")
	cyanColor.Fprintln(writer, "  .help          show this message")
	cyanColor.Fprintln(writer, "  exit()         terminate the REPL")
	cyanColor.Fprintln(writer, "  let x = 1      declare a binding")
	cyanColor.Fprintln(writer, "  define f(): void { ... }   declare a function")
	cyanColor.Fprintln(writer, "An open `{`, `(`, or `[` switches the prompt to '" + r.Continue + "' until it is closed.")
}

// Start begins the REPL main loop: it reads lines (accumulating across a
// brace-balance continuation per spec §6 and SUPPLEMENTED FEATURES #6),
// parses and evaluates each complete chunk, and echoes the result the way
// spec §6 describes: the last value unless it is Null, strings
// single-quoted, every other kind via Inspect (which already renders types
// in their lowercase/Array<T> form).
func (r *Repl) Start(reader io.Reader, writer io.Writer) {
	r.PrintBannerInfo(writer)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	evaluator := eval.New(writer, reader)

	var buf strings.Builder
	for {
		line, err := rl.Readline()
		if err != nil {
			writer.Write([]byte("Good Bye!\n"))
			break
		}

		if buf.Len() == 0 {
			trimmed := strings.TrimSpace(line)
			if trimmed == "" {
				continue
			}
			if trimmed == ".help" {
				r.printHelp(writer)
				continue
			}
		}

		buf.WriteString(line)
		buf.WriteByte('\n')

		if !isBalanced(buf.String()) {
			rl.SetPrompt(r.Continue)
			continue
		}
		rl.SetPrompt(r.Prompt)

		chunk := buf.String()
		buf.Reset()
		rl.SaveHistory(strings.TrimSpace(chunk))

		if r.executeWithRecovery(writer, chunk, evaluator) {
			break
		}
	}
}

// executeWithRecovery parses and evaluates one complete chunk, displaying
// parse/runtime errors in red and the echoed result in yellow. Unlike file
// execution mode, the REPL continues after an error (spec §9). It reports
// quit=true when the chunk is `exit()`, which ends the REPL loop.
func (r *Repl) executeWithRecovery(writer io.Writer, chunk string, evaluator *eval.Evaluator) (quit bool) {
	defer func() {
		if recovered := recover(); recovered != nil {
			redColor.Fprintf(writer, "[Runtime Error] %v\n", recovered)
		}
	}()

	trimmed := strings.TrimSpace(chunk)
	if trimmed == "exit()" {
		writer.Write([]byte("Good Bye!\n"))
		return true
	}

	par := parser.New(chunk)
	program := par.Parse()
	if par.HasError() {
		redColor.Fprintf(writer, "%s\n", par.GetError())
		return
	}

	evaluator.ResetError()
	result := evaluator.Eval(program)
	if evaluator.HasError() {
		redColor.Fprintf(writer, "%s\n", evaluator.GetError().Error())
		return
	}

	if result == nil {
		return
	}
	if _, isNull := result.(*object.Null); isNull {
		return
	}
	yellowColor.Fprintf(writer, "%s\n", result.Inspect())
}

// isBalanced reports whether every `{`, `(`, `[` opened in src has a
// matching close, ignoring characters inside string literals and comments
// (SUPPLEMENTED FEATURES #6).
func isBalanced(src string) bool {
	depth := 0
	inString := false
	inLineComment := false
	inBlockComment := false

	runes := []rune(src)
	for i := 0; i < len(runes); i++ {
		c := runes[i]

		if inLineComment {
			if c == '\n' {
				inLineComment = false
			}
			continue
		}
		if inBlockComment {
			if c == '*' && i+1 < len(runes) && runes[i+1] == '/' {
				inBlockComment = false
				i++
			}
			continue
		}
		if inString {
			if c == '"' {
				inString = false
			}
			continue
		}

		switch {
		case c == '"':
			inString = true
		case c == '/' && i+1 < len(runes) && runes[i+1] == '/':
			inLineComment = true
			i++
		case c == '/' && i+1 < len(runes) && runes[i+1] == '*':
			inBlockComment = true
			i++
		case c == '{' || c == '(' || c == '[':
			depth++
		case c == '}' || c == ')' || c == ']':
			depth--
		}
	}
	return depth <= 0
}
