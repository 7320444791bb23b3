package blackjax

import "fmt"

// QuestionType tags a question with Blackboard's upload-format type code.
type QuestionType string

// Question type codes understood by Blackboard's "Upload Questions" format.
const (
	TypeMultipleChoice QuestionType = "MC"
	TypeMultipleAnswer QuestionType = "MA"
	TypeTrueFalse      QuestionType = "TF"
	TypeNumeric        QuestionType = "NUM"
	TypeEssay          QuestionType = "ESS"
	TypeShortResponse  QuestionType = "SR"
	TypeFileResponse   QuestionType = "FIL"
)

// Question is one formatted pool entry: the type code plus the
// tab-separated fields that follow it on the upload line.
type Question struct {
	Type   QuestionType
	Fields []string
}

// Answer is a proposed answer for multiple-choice and multiple-answer
// questions.
type Answer struct {
	Text    string
	Correct bool
}

// DecimalSeparator selects how numeric answers are written. Blackboard
// parses numbers according to the course's language pack, so the pool file
// must match it.
type DecimalSeparator string

const (
	DecimalComma DecimalSeparator = ","
	DecimalPoint DecimalSeparator = "."
)

// Validate checks that the separator is one of the two accepted values.
func (s DecimalSeparator) Validate() error {
	switch s {
	case DecimalComma, DecimalPoint:
		return nil
	}
	return fmt.Errorf("%w: %q (must be %q or %q)", ErrInvalidDecimalSeparator, string(s), ",", ".")
}

// Encoding selects the byte encoding of a written pool file.
type Encoding string

const (
	// EncodingUTF16 writes UTF-16 little-endian with a byte order mark.
	// This is what Blackboard's Original-view upload expects.
	EncodingUTF16 Encoding = "utf-16"

	EncodingUTF8 Encoding = "utf-8"
)

// Validate checks that the encoding is a known value.
func (e Encoding) Validate() error {
	switch e {
	case EncodingUTF16, EncodingUTF8:
		return nil
	}
	return fmt.Errorf("%w: %q (must be %q or %q)", ErrInvalidEncoding, string(e), EncodingUTF16, EncodingUTF8)
}
