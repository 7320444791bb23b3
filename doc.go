// Package blackjax formats math-bearing text and quiz question pools for
// Blackboard Learn.
//
// Blackboard's text editor accepts LaTeX math, but its default renderer
// (WIRIS/MathType) produces poor results. A little-known alternative is to
// let MathJax 2 render the math client-side instead. For that to work, the
// text pasted into Blackboard has to be massaged first, which is what
// Blackjaxify does:
//
//  1. A script tag loading MathJax 2 is prepended to the text.
//  2. Dollar math delimiters are rewritten: $...$ becomes \(...\) and
//     $$...$$ becomes \begin{equation}...\end{equation}. Dollar delimiters
//     must go because WIRIS would render them before MathJax gets a chance.
//  3. Literal newlines are stripped, and whitespace inside math mode is
//     replaced with &nbsp; entities. Blackboard inserts HTML line breaks
//     wherever it sees raw newlines, which corrupts math source before
//     MathJax reads it. Use <br> for intentional line breaks.
//
// # Quick Start
//
//	out, err := blackjax.Blackjaxify(text, blackjax.Options{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(out) // paste into Blackboard's source-code window
//
// # Quiz Pools
//
// The Formatter builds questions in the tab-separated format accepted by
// Blackboard's "Upload Questions" feature (Original course view):
//
//	f := blackjax.New(blackjax.WithDecimalSeparator(blackjax.DecimalPoint))
//	q1, err := f.MultipleChoice("What is $2+2$?", []blackjax.Answer{
//	    {Text: "3"},
//	    {Text: "4", Correct: true},
//	})
//	...
//	err = blackjax.WritePoolFile("pool.txt", []blackjax.Question{q1}, blackjax.EncodingUTF16)
//
// Pool files are encoded UTF-16 little-endian with a byte order mark, which
// is what Blackboard expects for uploaded question files.
//
// # Limitations
//
// Nested math modes, as in \(f(x) = 1 \text{ if \(x > 0\)}\), are not
// supported; the whitespace pass stops at the first closing delimiter it
// finds. Input containing an escaped dollar sign (\$) is rejected with
// ErrEscapedDollars rather than silently rewritten wrong. Unbalanced
// dollar delimiters are left untouched, not reported.
package blackjax
