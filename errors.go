package blackjax

import "errors"

// Sentinel errors for library operations.
var (
	// ErrEscapedDollars rejects input the delimiter rewrite cannot handle.
	// A naive $...$ substitution cannot tell an escaped literal dollar from
	// a delimiter, so such input is refused instead of rewritten wrong.
	ErrEscapedDollars = errors.New("string contains escaped dollars")

	ErrMarkdownConversion = errors.New("markdown conversion failed")

	// Question validation errors.
	ErrExactlyOneCorrect = errors.New("exactly one answer must be marked correct")
	ErrNoAnswers         = errors.New("at least one answer is required")

	// Option validation errors.
	ErrInvalidDecimalSeparator = errors.New("invalid decimal separator")
	ErrInvalidEncoding         = errors.New("invalid pool encoding")
)
