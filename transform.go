package blackjax

import (
	"regexp"
	"strings"
)

// DefaultScriptURL is the MathJax 2 build injected by default. Pinned to
// major version 2: the replacement delimiters below are the ones its
// TeX-AMS_CHTML configuration recognizes out of the box.
const DefaultScriptURL = "https://cdn.jsdelivr.net/npm/mathjax@2/MathJax.js?config=TeX-AMS_CHTML"

// nbsp is the token substituted for whitespace inside math mode. It is the
// literal entity text, not a Unicode NBSP character.
const nbsp = "&nbsp;"

// Precompiled regex patterns for the transform passes.
var (
	// Escaped dollar sign, the one input FixDelimiters refuses
	escapedDollar = regexp.MustCompile(`\\\$`)

	// Display math $$...$$; (?s) so spans may cross lines
	displayDollars = regexp.MustCompile(`(?s)\$\$(.+?)\$\$`)

	// Inline math $...$, applied after the display pass has consumed $$
	inlineDollars = regexp.MustCompile(`(?s)\$(.+?)\$`)

	// Line ending normalization
	crlfOrCR = regexp.MustCompile(`\r\n?`)

	// Maximal whitespace run inside a math span
	whitespaceRun = regexp.MustCompile(`[ \t\r\n]+`)
)

// mathDelimiters is the fixed set of canonical delimiter pairs whose spans
// get whitespace collapsing. The collapser applies one pass per pair, in
// this order.
var mathDelimiters = []struct {
	opening, closing string
}{
	{`\(`, `\)`},
	{`\begin{equation}`, `\end{equation}`},
	{`\begin{align}`, `\end{align}`},
}

// mathSpans holds one span-matching pattern per delimiter pair.
var mathSpans = compileMathSpans()

func compileMathSpans() []*regexp.Regexp {
	spans := make([]*regexp.Regexp, len(mathDelimiters))
	for i, d := range mathDelimiters {
		spans[i] = regexp.MustCompile(`(?s)` + regexp.QuoteMeta(d.opening) + `.*?` + regexp.QuoteMeta(d.closing))
	}
	return spans
}

// Options configures Blackjaxify.
type Options struct {
	ScriptURL      string // URL for the injected script tag ("" = DefaultScriptURL)
	SkipScript     bool   // omit the script tag (answer fields already covered by the prompt's)
	EscapeBrackets bool   // escape opening square brackets for upload contexts that need it
}

// Blackjaxify returns a copy of text whose math Blackboard will hand to
// MathJax intact. Order matters and is part of the contract: delimiters are
// normalized first, then newlines are stripped everywhere, and only then is
// remaining whitespace inside math spans collapsed. A gap that was a bare
// newline inside math is therefore removed, not turned into &nbsp;.
//
// The only failure mode is ErrEscapedDollars (see FixDelimiters).
func Blackjaxify(text string, opts Options) (string, error) {
	if !opts.SkipScript {
		url := opts.ScriptURL
		if url == "" {
			url = DefaultScriptURL
		}
		text = InsertScript(text, url)
	}

	text, err := FixDelimiters(text)
	if err != nil {
		return "", err
	}

	if opts.EscapeBrackets {
		text = EscapeOpeningBrackets(text)
	}

	text = StripNewlines(text)
	return CollapseMathSpaces(text), nil
}

// InsertScript prepends a script tag loading the math renderer at url.
// The tag is concatenated directly before text, with no separator. The URL
// is embedded as-is, without validation.
func InsertScript(text, url string) string {
	return "<script type='text/javascript' async src='" + url + "'></script>" + text
}

// EscapeOpeningBrackets replaces every opening square bracket with \[.
// Blackboard requires opening brackets to be escaped in uploaded test and
// pool files (closing brackets are fine as-is); some question types such as
// FIB_PLUS will not parse otherwise.
//
// Known limitation: the replacement is unconditional. Brackets inside
// <pre></pre> regions should be exempt but are escaped too.
func EscapeOpeningBrackets(text string) string {
	return strings.ReplaceAll(text, "[", `\[`)
}

// FixDelimiters rewrites dollar math delimiters to the canonical pairs:
// $$...$$ becomes \begin{equation}...\end{equation} and $...$ becomes
// \(...\). Matching is non-greedy, leftmost, and may span lines.
//
// Input containing an escaped dollar (\$) anywhere is rejected with
// ErrEscapedDollars before any replacement: the dollar passes cannot
// distinguish it from a delimiter and would produce wrong output. An odd or
// zero count of unescaped dollars is not an error; unpairable dollars are
// simply left alone.
func FixDelimiters(text string) (string, error) {
	if escapedDollar.MatchString(text) {
		return "", ErrEscapedDollars
	}
	text = displayDollars.ReplaceAllString(text, `\begin{equation}${1}\end{equation}`)
	text = inlineDollars.ReplaceAllString(text, `\(${1}\)`)
	return text, nil
}

// StripNewlines removes every literal newline from text. CRLF and CR line
// endings are normalized to LF first so no stray carriage returns survive.
// Newlines outside math mode would become unwanted <br> elements in
// Blackboard's editor; intentional breaks belong in explicit <br> markup.
func StripNewlines(text string) string {
	text = crlfOrCR.ReplaceAllString(text, "\n")
	return strings.ReplaceAll(text, "\n", "")
}

// CollapseMathSpaces replaces every maximal whitespace run inside a math
// span with a single &nbsp; token. Spans are matched non-greedily per
// delimiter pair in mathDelimiters; text outside spans is untouched.
//
// Nested math modes are not supported: the span ends at the first closing
// delimiter, so whitespace after an inner closer is left alone.
func CollapseMathSpaces(text string) string {
	for _, span := range mathSpans {
		text = span.ReplaceAllStringFunc(text, func(m string) string {
			return whitespaceRun.ReplaceAllString(m, nbsp)
		})
	}
	return text
}
