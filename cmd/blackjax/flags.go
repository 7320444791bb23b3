package main

import (
	"errors"
	"fmt"
	"io"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	quiet   bool
	verbose bool
}

// poolFlags holds all flags for the pool command. Empty string values mean
// "not set on the command line"; the pool file's own settings apply then.
type poolFlags struct {
	common         commonFlags
	output         string
	encoding       string
	separator      string
	scriptURL      string
	escapeBrackets bool
	markdown       bool
	preview        bool
	workers        int
}

// textFlags holds all flags for the text command.
type textFlags struct {
	common         commonFlags
	output         string
	scriptURL      string
	noScript       bool
	escapeBrackets bool
	markdown       bool
}

func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "")
}

// parsePoolFlags parses flags for the pool command.
// Returns the flags, positional arguments (pool files), and any error.
func parsePoolFlags(args []string) (*poolFlags, []string, error) {
	f := &poolFlags{}
	fs := flag.NewFlagSet("pool", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	addCommonFlags(fs, &f.common)
	fs.StringVarP(&f.output, "output", "o", "", "")
	fs.StringVar(&f.encoding, "encoding", "", "")
	fs.StringVar(&f.separator, "decimal-separator", "", "")
	fs.StringVar(&f.scriptURL, "script-url", "", "")
	fs.BoolVar(&f.escapeBrackets, "escape-brackets", false, "")
	fs.BoolVar(&f.markdown, "markdown", false, "")
	fs.BoolVar(&f.preview, "preview", false, "")
	fs.IntVarP(&f.workers, "workers", "w", 0, "")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, nil, err
		}
		return nil, nil, fmt.Errorf("%w: %v", ErrFlagParse, err)
	}
	return f, fs.Args(), nil
}

// parseTextFlags parses flags for the text command.
// Returns the flags, positional arguments (at most one file), and any error.
func parseTextFlags(args []string) (*textFlags, []string, error) {
	f := &textFlags{}
	fs := flag.NewFlagSet("text", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	addCommonFlags(fs, &f.common)
	fs.StringVarP(&f.output, "output", "o", "", "")
	fs.StringVar(&f.scriptURL, "script-url", "", "")
	fs.BoolVar(&f.noScript, "no-script", false, "")
	fs.BoolVar(&f.escapeBrackets, "escape-brackets", false, "")
	fs.BoolVar(&f.markdown, "markdown", false, "")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, nil, err
		}
		return nil, nil, fmt.Errorf("%w: %v", ErrFlagParse, err)
	}
	return f, fs.Args(), nil
}
