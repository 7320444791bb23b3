package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"go.uber.org/automaxprocs/maxprocs"
)

// Version is set at build time via ldflags.
var Version = "dev"

// Sentinel errors for CLI operations.
var (
	ErrNoCommand          = errors.New("no command specified")
	ErrUnknownCommand     = errors.New("unknown command")
	ErrFlagParse          = errors.New("invalid flags")
	ErrNoInput            = errors.New("no input specified")
	ErrTooManyInputs      = errors.New("text takes at most one input file")
	ErrReadInput          = errors.New("failed to read input")
	ErrWriteOutput        = errors.New("failed to write output")
	ErrInvalidWorkerCount = errors.New("invalid worker count")
)

func main() {
	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues.
	_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))

	err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
	}
	os.Exit(exitCodeFor(err))
}

// run dispatches to a command. Kept separate from main so tests can drive
// the CLI with their own streams.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	if len(args) == 0 {
		printUsage(stderr)
		return ErrNoCommand
	}

	cmd, rest := args[0], args[1:]
	switch cmd {
	case "pool":
		return runPool(rest, stdout, stderr)
	case "text":
		return runText(rest, stdin, stdout)
	case "version":
		fmt.Fprintf(stdout, "blackjax %s\n", Version)
		return nil
	case "help":
		return runHelp(rest, stdout)
	case "-h", "--help":
		printUsage(stdout)
		return nil
	default:
		return fmt.Errorf("%w: %q (run 'blackjax help')", ErrUnknownCommand, cmd)
	}
}

// runHelp shows usage for a command, or the general usage.
func runHelp(args []string, w io.Writer) error {
	if len(args) == 0 {
		printUsage(w)
		return nil
	}
	switch args[0] {
	case "pool":
		printPoolUsage(w)
	case "text":
		printTextUsage(w)
	case "version", "help":
		printUsage(w)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownCommand, args[0])
	}
	return nil
}
