package main

import (
	"errors"
	"os"

	blackjax "github.com/ebriand/go-blackjax"
	"github.com/ebriand/go-blackjax/internal/pooldef"
)

// Exit codes for the blackjax CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, 3=I/O.
const (
	ExitSuccess = 0 // Successful run
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid command, flags, or input validation
	ExitIO      = 3 // File not found, permission denied
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use
// fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, pooldef.ErrPoolNotFound) ||
		errors.Is(err, ErrReadInput) ||
		errors.Is(err, ErrWriteOutput) {
		return ExitIO
	}

	// Usage/validation errors (exit 2)
	if errors.Is(err, ErrNoCommand) ||
		errors.Is(err, ErrUnknownCommand) ||
		errors.Is(err, ErrFlagParse) ||
		errors.Is(err, ErrNoInput) ||
		errors.Is(err, ErrTooManyInputs) ||
		errors.Is(err, ErrInvalidWorkerCount) ||
		errors.Is(err, blackjax.ErrEscapedDollars) ||
		errors.Is(err, blackjax.ErrExactlyOneCorrect) ||
		errors.Is(err, blackjax.ErrNoAnswers) ||
		errors.Is(err, blackjax.ErrInvalidDecimalSeparator) ||
		errors.Is(err, blackjax.ErrInvalidEncoding) ||
		errors.Is(err, pooldef.ErrPoolParse) ||
		errors.Is(err, pooldef.ErrNoQuestions) ||
		errors.Is(err, pooldef.ErrMissingPrompt) ||
		errors.Is(err, pooldef.ErrUnknownType) ||
		errors.Is(err, pooldef.ErrUnsupportedType) ||
		errors.Is(err, pooldef.ErrMissingAnswers) ||
		errors.Is(err, pooldef.ErrMissingAnswer) ||
		errors.Is(err, pooldef.ErrMissingValue) ||
		errors.Is(err, pooldef.ErrStrayFields) ||
		errors.Is(err, pooldef.ErrInvalidFormat) {
		return ExitUsage
	}

	return ExitGeneral
}
