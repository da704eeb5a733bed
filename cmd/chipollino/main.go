/*
Chipollino runs a regex/finite-automaton algebra script.

Usage:

	chipollino [flags] [script_file] [user_prefix]

script_file defaults to "test.txt"; user_prefix defaults to empty. When
script_file is omitted and stdin is a live terminal, chipollino drops into
an interactive line-by-line session instead of reading a file.

The flags are:

	-v, --version
		Print the current version and exit.

	-l, --log-mode {all,errors,nothing}
		Select which diagnostic events are printed. Defaults to "errors".

Exit code is 0 on success, 1 if any line produced an error.
*/
package main

import (
	"fmt"
	"os"

	"github.com/desitas1701/chipollino/internal/input"
	"github.com/desitas1701/chipollino/internal/interp"
	"github.com/desitas1701/chipollino/internal/version"
	"github.com/spf13/pflag"
	"golang.org/x/text/unicode/norm"
)

const (
	ExitSuccess = iota
	ExitScriptError
	ExitInitError
)

var (
	returnCode  = ExitSuccess
	flagVersion = pflag.BoolP("version", "v", false, "Print the current version and exit")
	flagLogMode = pflag.StringP("log-mode", "l", "errors", "Diagnostic verbosity: all, errors, or nothing")
)

func main() {
	defer func() {
		if panicErr := recover(); panicErr != nil {
			panic(fmt.Sprintf("unrecoverable panic occurred: %v", panicErr))
		} else {
			os.Exit(returnCode)
		}
	}()

	pflag.Parse()

	if *flagVersion {
		fmt.Printf("%s\n", version.Current)
		return
	}

	mode, err := parseLogMode(*flagLogMode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
		returnCode = ExitInitError
		return
	}

	scriptFile := "test.txt"
	userPrefix := ""
	args := pflag.Args()
	if len(args) >= 1 {
		scriptFile = args[0]
	}
	if len(args) >= 2 {
		userPrefix = args[1]
	}
	_ = userPrefix // reserved for the LaTeX report writer; not yet implemented

	ip := interp.New(mode)

	if len(args) == 0 && isInteractiveTerminal() {
		returnCode = runInteractive(ip)
		return
	}

	source, err := readScript(scriptFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
		returnCode = ExitInitError
		return
	}

	if mode == interp.LogAll {
		fmt.Fprintf(os.Stderr, "run %s: %s\n", ip.Logger.RunID, scriptFile)
	}
	hadError := ip.RunScript(source)
	fmt.Print(ip.Logger.String())
	if hadError {
		returnCode = ExitScriptError
	}
}

func readScript(name string) (string, error) {
	normalized := norm.NFC.String(name)
	data, err := os.ReadFile(normalized)
	if err != nil {
		return "", fmt.Errorf("read script %q: %w", normalized, err)
	}
	return string(data), nil
}

func runInteractive(ip *interp.Interpreter) int {
	rd, err := input.NewInteractiveReader()
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
		return ExitInitError
	}
	defer rd.Close()
	rd.AllowBlank(true)

	hadError := false
	lineNo := 0
	for {
		line, err := rd.ReadLine()
		if err != nil {
			break
		}
		lineNo++
		if runErr := ip.RunLine(line, lineNo); runErr != nil {
			hadError = true
			ip.Logger.Event(true, "%s", runErr.Error())
		}
		fmt.Print(ip.Logger.Flush())
	}

	if hadError {
		return ExitScriptError
	}
	return ExitSuccess
}

func isInteractiveTerminal() bool {
	stat, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return (stat.Mode() & os.ModeCharDevice) != 0
}

func parseLogMode(s string) (interp.LogMode, error) {
	switch s {
	case "all":
		return interp.LogAll, nil
	case "errors":
		return interp.LogErrors, nil
	case "nothing":
		return interp.LogNothing, nil
	default:
		return 0, fmt.Errorf("unrecognised log mode %q (want all, errors, or nothing)", s)
	}
}
