package blackjax

import (
	"bytes"
	"fmt"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// markdownConverter renders Markdown question fields to HTML fragments
// using goldmark (pure Go).
type markdownConverter struct {
	md goldmark.Markdown
}

// newMarkdownConverter creates a converter with GFM extensions and syntax
// highlighting, for question banks that include code snippets.
func newMarkdownConverter() *markdownConverter {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM, // Tables, strikethrough, autolinks, task lists
			highlighting.NewHighlighting(
				highlighting.WithFormatOptions(
					chromahtml.WithClasses(true), // CSS classes instead of inline styles
				),
			),
		),
		goldmark.WithRendererOptions(
			html.WithHardWraps(), // Treat newlines as <br>
			html.WithXHTML(),     // Self-closing tags
		),
	)
	return &markdownConverter{md: md}
}

// ToHTML converts a Markdown field to an HTML fragment. Blackboard question
// fields hold fragments, so no document wrapper is added.
//
// Markdown backslash escapes are processed before the math passes run, so
// in Markdown mode \$ reaches the delimiter rewrite as a plain dollar.
func (c *markdownConverter) ToHTML(content string) (string, error) {
	var buf bytes.Buffer
	if err := c.md.Convert([]byte(content), &buf); err != nil {
		return "", fmt.Errorf("%w: %v", ErrMarkdownConversion, err)
	}
	return buf.String(), nil
}

var defaultMarkdown = newMarkdownConverter()

// MarkdownToHTML converts a Markdown field to an HTML fragment using the
// default converter.
func MarkdownToHTML(content string) (string, error) {
	return defaultMarkdown.ToHTML(content)
}
