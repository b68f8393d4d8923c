// main.go — the oxente driver: file-vs-REPL dispatch, exit codes, and the
// REPL's line-edited input loop. This is the "external collaborator" spec
// §1 explicitly scopes out of the language package; it owns os.Args,
// process exit codes, and the one third-party dependency the teacher's own
// REPL uses (github.com/peterh/liner) for history-backed line editing.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/peterh/liner"

	"github.com/oxente-lang/oxente"
)

const historyFile = ".oxente_history"

var banner = fmt.Sprintf("oxente %s (built %s)\nCtrl+C cancels input, Ctrl+D exits.", oxente.Version, oxente.BuildDate)

func main() {
	args := os.Args[1:]

	if len(args) == 1 && (args[0] == "-version" || args[0] == "--version") {
		fmt.Println(oxente.Version)
		return
	}

	switch len(args) {
	case 0:
		os.Exit(runREPL())
	case 1:
		os.Exit(runFile(args[0]))
	default:
		fmt.Fprintln(os.Stderr, "Usage: oxente [script]")
		os.Exit(64)
	}
}

// runFile reads src as UTF-8 and runs it end-to-end, per spec §6's exit
// codes: 74 on a read failure, 65 if scanning/parsing reported an error
// (the program is never executed in that case), 70 on a runtime error, 0
// otherwise.
func runFile(path string) int {
	src, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "oxente: cannot read %s: %v\n", path, err)
		return 74
	}

	diag := &oxente.Diagnostics{}
	stmts := parse(string(src), diag)
	if diag.HadError {
		return 65
	}

	interp := oxente.NewInterpreter()
	if err := interp.Interpret(stmts); err != nil {
		diag.RuntimeError(err.(*oxente.RuntimeError))
		return 70
	}
	return 0
}

// runREPL implements spec §6's REPL contract: prompt "> ", read one line,
// run it (errors are latched but never terminate the session), clear the
// latches, loop; on real EOF (Ctrl+D) print "\nExiting." and exit 0. A
// liner.ErrPromptAborted (Ctrl+C, since SetCtrlCAborts is set below) only
// aborts the in-progress read and loops back to a fresh prompt — it must
// not end the session the way EOF does.
func runREPL() int {
	fmt.Println(banner)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	histPath := historyPath()
	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		f.Close()
	}
	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			f.Close()
		}
	}()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigc)
	go func() {
		<-sigc
		ln.Close()
		os.Exit(130)
	}()

	diag := &oxente.Diagnostics{}
	interp := oxente.NewInterpreter()

	for {
		line, err := ln.Prompt("> ")
		if errors.Is(err, io.EOF) {
			fmt.Println("\nExiting.")
			return 0
		}
		if err != nil {
			// liner.ErrPromptAborted (Ctrl+C) and any other Prompt error
			// abort the in-progress read without killing the session.
			continue
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		ln.AppendHistory(line)

		diag.Reset()
		stmts := parse(line, diag)
		if diag.HadError {
			continue
		}
		if err := interp.Interpret(stmts); err != nil {
			diag.RuntimeError(err.(*oxente.RuntimeError))
		}
	}
}

func parse(src string, diag *oxente.Diagnostics) []oxente.Stmt {
	tokens := oxente.NewScanner(src, diag).ScanTokens()
	return oxente.NewParser(tokens, diag).Parse()
}

func historyPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return historyFile
	}
	return filepath.Join(home, historyFile)
}
