package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	flag "github.com/spf13/pflag"

	blackjax "github.com/ebriand/go-blackjax"
)

// runText formats a single text from a file or stdin and writes the result
// to a file or stdout.
func runText(args []string, stdin io.Reader, stdout io.Writer) error {
	flags, paths, err := parseTextFlags(args)
	if errors.Is(err, flag.ErrHelp) {
		printTextUsage(stdout)
		return nil
	}
	if err != nil {
		return err
	}
	if len(paths) > 1 {
		return fmt.Errorf("%w: got %d", ErrTooManyInputs, len(paths))
	}

	content, err := readInput(paths, stdin)
	if err != nil {
		return err
	}

	if flags.markdown {
		if content, err = blackjax.MarkdownToHTML(content); err != nil {
			return err
		}
	}

	out, err := blackjax.Blackjaxify(content, blackjax.Options{
		ScriptURL:      flags.scriptURL,
		SkipScript:     flags.noScript,
		EscapeBrackets: flags.escapeBrackets,
	})
	if err != nil {
		return err
	}

	if flags.output != "" {
		if err := os.WriteFile(flags.output, []byte(out), filePermissions); err != nil {
			return fmt.Errorf("%w: %v", ErrWriteOutput, err)
		}
		if !flags.common.quiet {
			fmt.Fprintf(stdout, "Created %s\n", flags.output)
		}
		return nil
	}

	fmt.Fprintln(stdout, out)
	return nil
}

// readInput reads the input file, or stdin when no file is given.
func readInput(paths []string, stdin io.Reader) (string, error) {
	if len(paths) == 1 {
		data, err := os.ReadFile(paths[0]) // #nosec G304 -- caller-chosen input path
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrReadInput, err)
		}
		return string(data), nil
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrReadInput, err)
	}
	return string(data), nil
}
