// Package pooldef loads and validates YAML question-pool definitions.
//
// A pool file holds pool-level formatting settings plus a list of
// questions:
//
//	title: Fourier series review
//	format: markdown
//	decimalSeparator: ","
//	questions:
//	  - type: MC
//	    prompt: What type of point is $(2;1)$?
//	    answers:
//	      - text: a local maximum
//	      - text: a saddle point
//	        correct: true
//	  - type: NUM
//	    prompt: What is the infinite sum $1+\frac{1}{5}+\frac{1}{25}+\cdots$?
//	    value: 1.25
//	    tolerance: 0.01
package pooldef

import (
	"errors"
	"fmt"
	"os"

	"github.com/ebriand/go-blackjax/internal/yamlutil"
)

// Sentinel errors for pool definition loading.
var (
	ErrPoolNotFound    = errors.New("pool file not found")
	ErrPoolParse       = errors.New("failed to parse pool file")
	ErrNoQuestions     = errors.New("pool has no questions")
	ErrMissingPrompt   = errors.New("question has no prompt")
	ErrUnknownType     = errors.New("unknown question type")
	ErrUnsupportedType = errors.New("question type not supported yet")
	ErrMissingAnswers  = errors.New("question needs an answers list")
	ErrMissingAnswer   = errors.New("question needs an answer")
	ErrMissingValue    = errors.New("question needs a value")
	ErrStrayFields     = errors.New("question has fields its type does not use")
	ErrInvalidFormat   = errors.New("invalid pool format")
)

// Pool formats.
const (
	FormatHTML     = "html"
	FormatMarkdown = "markdown"
)

// Pool is a parsed pool definition file.
type Pool struct {
	Title            string     `yaml:"title"`
	Format           string     `yaml:"format"`           // "html" (default) or "markdown"
	ScriptURL        string     `yaml:"scriptUrl"`        // empty = library default
	EscapeBrackets   bool       `yaml:"escapeBrackets"`   // escape [ in every field
	DecimalSeparator string     `yaml:"decimalSeparator"` // "," (default) or "."
	Encoding         string     `yaml:"encoding"`         // "utf-16" (default) or "utf-8"
	Questions        []Question `yaml:"questions"`
}

// Question is one pool entry. Which fields apply depends on Type:
// MC/MA use Answers, TF uses Answer, NUM uses Value and Tolerance,
// ESS/SR use Sample, FIL uses only Prompt.
type Question struct {
	Type      string   `yaml:"type"`
	Prompt    string   `yaml:"prompt"`
	Answers   []Answer `yaml:"answers,omitempty"`
	Answer    *bool    `yaml:"answer,omitempty"`
	Value     *float64 `yaml:"value,omitempty"`
	Tolerance float64  `yaml:"tolerance,omitempty"`
	Sample    string   `yaml:"sample,omitempty"`
}

// Answer is one proposed answer of an MC or MA question.
type Answer struct {
	Text    string `yaml:"text"`
	Correct bool   `yaml:"correct,omitempty"`
}

// Blackboard question types the formatter does not implement yet. Listed
// separately from unknown garbage so the error can say so.
var unsupportedTypes = map[string]bool{
	"ORD":              true,
	"MAT":              true,
	"FIB":              true,
	"FIB_PLUS":         true,
	"OP":               true,
	"JUMBLED_SENTENCE": true,
	"QUIZ_BOWL":        true,
}

var supportedTypes = map[string]bool{
	"MC":  true,
	"MA":  true,
	"TF":  true,
	"NUM": true,
	"ESS": true,
	"SR":  true,
	"FIL": true,
}

// Load reads and validates the pool definition at path.
func Load(path string) (*Pool, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- caller-chosen pool path
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrPoolNotFound, path)
		}
		return nil, fmt.Errorf("reading pool file: %w", err)
	}

	var pool Pool
	if err := yamlutil.UnmarshalStrict(data, &pool); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPoolParse, err)
	}

	if err := pool.Validate(); err != nil {
		return nil, err
	}
	return &pool, nil
}

// Validate checks pool-level settings and every question.
func (p *Pool) Validate() error {
	switch p.Format {
	case "", FormatHTML, FormatMarkdown:
	default:
		return fmt.Errorf("%w: %q (must be %q or %q)", ErrInvalidFormat, p.Format, FormatHTML, FormatMarkdown)
	}

	if len(p.Questions) == 0 {
		return ErrNoQuestions
	}

	for i := range p.Questions {
		if err := p.Questions[i].validate(); err != nil {
			return fmt.Errorf("question %d: %w", i+1, err)
		}
	}
	return nil
}

func (q *Question) validate() error {
	if q.Prompt == "" {
		return ErrMissingPrompt
	}

	switch {
	case supportedTypes[q.Type]:
	case unsupportedTypes[q.Type]:
		return fmt.Errorf("%w: %s", ErrUnsupportedType, q.Type)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownType, q.Type)
	}

	switch q.Type {
	case "MC", "MA":
		if len(q.Answers) == 0 {
			return fmt.Errorf("%w (%s)", ErrMissingAnswers, q.Type)
		}
		if q.Answer != nil || q.Value != nil {
			return fmt.Errorf("%w (%s)", ErrStrayFields, q.Type)
		}
	case "TF":
		if q.Answer == nil {
			return fmt.Errorf("%w (TF): set answer: true or answer: false", ErrMissingAnswer)
		}
		if len(q.Answers) > 0 || q.Value != nil {
			return fmt.Errorf("%w (TF)", ErrStrayFields)
		}
	case "NUM":
		if q.Value == nil {
			return fmt.Errorf("%w (NUM): set value", ErrMissingValue)
		}
		if len(q.Answers) > 0 || q.Answer != nil {
			return fmt.Errorf("%w (NUM)", ErrStrayFields)
		}
	case "ESS", "SR", "FIL":
		if len(q.Answers) > 0 || q.Answer != nil || q.Value != nil {
			return fmt.Errorf("%w (%s)", ErrStrayFields, q.Type)
		}
	}
	return nil
}
