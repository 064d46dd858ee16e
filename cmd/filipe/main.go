/*
File    : filipe/cmd/filipe/main.go
Package : main

Package main is the entry point for the Filipe interpreter. It provides
two modes of operation:
 1. REPL mode (default): interactive Read-Eval-Print Loop
 2. File mode (`filipe run <path>`): execute a Filipe source file

Command dispatch is handled by github.com/urfave/cli/v3, the same library
the rest of the pack uses for subcommand CLIs.
*/
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/urfave/cli/v3"

	"github.com/filipelang/filipe/eval"
	"github.com/filipelang/filipe/object"
	"github.com/filipelang/filipe/parser"
	"github.com/filipelang/filipe/repl"
)

// VERSION is the current version of the Filipe interpreter.
var VERSION = "v0.1.0"

// AUTHOR contains the contact information of the interpreter's maintainers.
var AUTHOR = "filipelang"

// LICENSE specifies the software license (MIT).
var LICENSE = "MIT"

// PROMPT is the primary prompt displayed in REPL mode (spec §6).
var PROMPT = "|> "

// CONTINUE is the continuation prompt shown while a block is still open
// (spec §6, SUPPLEMENTED FEATURES #6).
var CONTINUE = "... "

// BANNER is the ASCII art logo displayed when starting the REPL.
var BANNER = `
  ███████╗██╗██╗     ██╗██████╗ ███████╗
  ██╔════╝██║██║     ██║██╔══██╗██╔════╝
  █████╗  ██║██║     ██║██████╔╝█████╗
  ██╔══╝  ██║██║     ██║██╔═══╝ ██╔══╝
  ██║     ██║███████╗██║██║     ███████╗
  ╚═╝     ╚═╝╚══════╝╚═╝╚═╝     ╚══════╝
`

// LINE is a separator used for visual formatting in the REPL.
var LINE = "----------------------------------------------------------------"

var redColor = color.New(color.FgRed)

func main() {
	runCommand := &cli.Command{
		Name:      "run",
		Usage:     "execute a Filipe source file",
		ArgsUsage: "<path>",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 1 {
				return fmt.Errorf("usage: filipe run <path>")
			}
			return runFile(cmd.Args().First())
		},
	}

	app := &cli.Command{
		Name:    "filipe",
		Usage:   "a small statically-typed imperative scripting language",
		Version: VERSION,
		Commands: []*cli.Command{
			runCommand,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			startRepl()
			return nil
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		redColor.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

// startRepl launches the interactive REPL on stdin/stdout.
func startRepl() {
	repler := repl.NewRepl(BANNER, VERSION, AUTHOR, LINE, LICENSE, PROMPT, CONTINUE)
	repler.Start(os.Stdin, os.Stdout)
}

// runFile reads, parses, and evaluates a Filipe source file, exiting 1 on
// any lexer/parser/runtime error (spec §6) and 0 on success.
func runFile(path string) error {
	source, err := os.ReadFile(path)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[IO Error] could not read %q: %v\n", path, err)
		os.Exit(1)
	}

	p := parser.New(string(source))
	program := p.Parse()
	if p.HasError() {
		redColor.Fprintf(os.Stderr, "%s\n", p.GetError())
		os.Exit(1)
	}

	e := eval.New(os.Stdout, os.Stdin)
	result := e.Eval(program)
	if e.HasError() {
		redColor.Fprintf(os.Stderr, "%s\n", e.GetError().Error())
		os.Exit(1)
	}

	if result != nil {
		if _, isNull := result.(*object.Null); !isNull {
			fmt.Fprintln(os.Stdout, result.Inspect())
		}
	}
	return nil
}
