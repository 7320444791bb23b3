package blackjax

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/encoding/unicode"
	texttransform "golang.org/x/text/transform"
)

// previewTemplate wraps rendered questions in a complete HTML5 document.
const previewTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Question pool preview</title>
</head>
<body>
%s</body>
</html>
`

// WritePool writes questions in Blackboard's upload format: one question
// per line, tab-separated fields with the type code first, CRLF line
// endings, no quoting. Fields must not contain tabs or newlines; the
// formatting pipeline never produces them.
func WritePool(w io.Writer, questions []Question, enc Encoding) error {
	if err := enc.Validate(); err != nil {
		return err
	}

	if enc == EncodingUTF16 {
		tw := texttransform.NewWriter(w, unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewEncoder())
		err := writeRows(tw, questions)
		if cerr := tw.Close(); err == nil {
			err = cerr
		}
		return err
	}
	return writeRows(w, questions)
}

func writeRows(w io.Writer, questions []Question) error {
	for _, q := range questions {
		row := append([]string{string(q.Type)}, q.Fields...)
		if _, err := io.WriteString(w, strings.Join(row, "\t")+"\r\n"); err != nil {
			return fmt.Errorf("writing pool row: %w", err)
		}
	}
	return nil
}

// WritePoolFile writes questions to the file at path, creating or
// truncating it.
func WritePoolFile(path string, questions []Question, enc Encoding) error {
	f, err := os.Create(path) // #nosec G304 -- caller-chosen output path
	if err != nil {
		return fmt.Errorf("creating pool file: %w", err)
	}
	werr := WritePool(f, questions, enc)
	if cerr := f.Close(); werr == nil {
		werr = cerr
	}
	return werr
}

// RenderPreview writes questions as a standalone HTML document. Opening it
// in a browser shows how MathJax will render the math, before anything is
// uploaded. A clean preview does not fully guarantee clean rendering inside
// Blackboard, but it catches most formatting mistakes.
func RenderPreview(w io.Writer, questions []Question) error {
	var b strings.Builder
	for i, q := range questions {
		fmt.Fprintf(&b, "<div class=\"question\">\n<h2>Question %d (%s)</h2>\n", i+1, q.Type)
		for _, field := range q.Fields {
			fmt.Fprintf(&b, "<p>%s</p>\n", field)
		}
		b.WriteString("</div>\n")
	}
	if _, err := fmt.Fprintf(w, previewTemplate, b.String()); err != nil {
		return fmt.Errorf("writing preview: %w", err)
	}
	return nil
}
