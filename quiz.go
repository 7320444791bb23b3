package blackjax

import (
	"fmt"
	"strconv"
	"strings"
)

// Formatter builds questions in Blackboard's upload format. The prompt of
// each question carries the MathJax script tag; answer fields are rendered
// without it, since the prompt's tag already loads the library for the
// whole page.
type Formatter struct {
	scriptURL      string
	escapeBrackets bool
	separator      DecimalSeparator
	markdown       *markdownConverter // nil means fields are HTML already
}

// Option customizes a Formatter.
type Option func(*Formatter)

// WithScriptURL overrides the MathJax URL embedded in question prompts.
func WithScriptURL(url string) Option {
	return func(f *Formatter) { f.scriptURL = url }
}

// WithEscapeBrackets escapes opening square brackets in every field, as
// required by some upload contexts (e.g. FIB_PLUS questions).
func WithEscapeBrackets() Option {
	return func(f *Formatter) { f.escapeBrackets = true }
}

// WithDecimalSeparator sets the separator used for numeric answers.
// The default is the comma.
func WithDecimalSeparator(sep DecimalSeparator) Option {
	return func(f *Formatter) { f.separator = sep }
}

// WithMarkdown treats question fields as Markdown and converts them to
// HTML before the math formatting passes.
func WithMarkdown() Option {
	return func(f *Formatter) { f.markdown = newMarkdownConverter() }
}

// New creates a Formatter with default configuration: MathJax from the
// default CDN URL, no bracket escaping, comma decimal separator, fields
// taken as HTML.
func New(opts ...Option) *Formatter {
	f := &Formatter{
		scriptURL: DefaultScriptURL,
		separator: DecimalComma,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// formatField runs a question field through the Markdown conversion (if
// enabled) and the math formatting pipeline.
func (f *Formatter) formatField(s string, skipScript bool) (string, error) {
	if f.markdown != nil {
		var err error
		if s, err = f.markdown.ToHTML(s); err != nil {
			return "", err
		}
	}
	return Blackjaxify(s, Options{
		ScriptURL:      f.scriptURL,
		SkipScript:     skipScript,
		EscapeBrackets: f.escapeBrackets,
	})
}

// formatAnswers formats proposed answers into Blackboard's alternating
// text/verdict field layout.
func (f *Formatter) formatAnswers(answers []Answer) ([]string, error) {
	fields := make([]string, 0, 2*len(answers))
	for _, a := range answers {
		text, err := f.formatField(a.Text, true)
		if err != nil {
			return nil, err
		}
		verdict := "incorrect"
		if a.Correct {
			verdict = "correct"
		}
		fields = append(fields, text, verdict)
	}
	return fields, nil
}

// formatNumber renders a number with the configured decimal separator.
// Plain notation is used throughout; Blackboard does not accept scientific
// notation in NUM fields.
func (f *Formatter) formatNumber(x float64) (string, error) {
	if err := f.separator.Validate(); err != nil {
		return "", err
	}
	s := strconv.FormatFloat(x, 'f', -1, 64)
	if f.separator == DecimalComma {
		s = strings.Replace(s, ".", ",", 1)
	}
	return s, nil
}

// MultipleChoice formats an MC question. Exactly one answer must be marked
// correct.
func (f *Formatter) MultipleChoice(prompt string, answers []Answer) (Question, error) {
	if len(answers) == 0 {
		return Question{}, ErrNoAnswers
	}
	correct := 0
	for _, a := range answers {
		if a.Correct {
			correct++
		}
	}
	if correct != 1 {
		return Question{}, fmt.Errorf("%w: got %d", ErrExactlyOneCorrect, correct)
	}

	p, err := f.formatField(prompt, false)
	if err != nil {
		return Question{}, err
	}
	fields, err := f.formatAnswers(answers)
	if err != nil {
		return Question{}, err
	}
	return Question{Type: TypeMultipleChoice, Fields: append([]string{p}, fields...)}, nil
}

// MultipleAnswer formats an MA question. Any number of answers may be
// marked correct.
func (f *Formatter) MultipleAnswer(prompt string, answers []Answer) (Question, error) {
	if len(answers) == 0 {
		return Question{}, ErrNoAnswers
	}
	p, err := f.formatField(prompt, false)
	if err != nil {
		return Question{}, err
	}
	fields, err := f.formatAnswers(answers)
	if err != nil {
		return Question{}, err
	}
	return Question{Type: TypeMultipleAnswer, Fields: append([]string{p}, fields...)}, nil
}

// TrueFalse formats a TF question.
func (f *Formatter) TrueFalse(prompt string, answer bool) (Question, error) {
	p, err := f.formatField(prompt, false)
	if err != nil {
		return Question{}, err
	}
	return Question{Type: TypeTrueFalse, Fields: []string{p, strconv.FormatBool(answer)}}, nil
}

// Numeric formats a NUM question. tolerance is the accepted deviation from
// answer; pass 0 to require the exact value.
func (f *Formatter) Numeric(prompt string, answer, tolerance float64) (Question, error) {
	p, err := f.formatField(prompt, false)
	if err != nil {
		return Question{}, err
	}
	ans, err := f.formatNumber(answer)
	if err != nil {
		return Question{}, err
	}
	tol, err := f.formatNumber(tolerance)
	if err != nil {
		return Question{}, err
	}
	return Question{Type: TypeNumeric, Fields: []string{p, ans, tol}}, nil
}

// Essay formats an ESS question with an optional sample answer.
func (f *Formatter) Essay(prompt, sampleAnswer string) (Question, error) {
	p, err := f.formatField(prompt, false)
	if err != nil {
		return Question{}, err
	}
	sample, err := f.formatField(sampleAnswer, false)
	if err != nil {
		return Question{}, err
	}
	return Question{Type: TypeEssay, Fields: []string{p, sample}}, nil
}

// ShortResponse formats an SR question with an optional sample answer.
func (f *Formatter) ShortResponse(prompt, sampleAnswer string) (Question, error) {
	p, err := f.formatField(prompt, false)
	if err != nil {
		return Question{}, err
	}
	sample, err := f.formatField(sampleAnswer, false)
	if err != nil {
		return Question{}, err
	}
	return Question{Type: TypeShortResponse, Fields: []string{p, sample}}, nil
}

// FileResponse formats a FIL question, answered by a file upload.
func (f *Formatter) FileResponse(prompt string) (Question, error) {
	p, err := f.formatField(prompt, false)
	if err != nil {
		return Question{}, err
	}
	return Question{Type: TypeFileResponse, Fields: []string{p}}, nil
}
