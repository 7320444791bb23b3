package blackjax

import (
	"errors"
	"strings"
	"testing"
)

// scriptTag is the default injected tag, spelled out once for expectations.
const scriptTag = "<script type='text/javascript' async src='" + DefaultScriptURL + "'></script>"

func TestInsertScript(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		url      string
		expected string
	}{
		{
			name:     "prepends tag with no separator",
			text:     "hello",
			url:      "https://example.com/mathjax.js",
			expected: "<script type='text/javascript' async src='https://example.com/mathjax.js'></script>hello",
		},
		{
			name:     "empty text",
			text:     "",
			url:      "https://example.com/mathjax.js",
			expected: "<script type='text/javascript' async src='https://example.com/mathjax.js'></script>",
		},
		{
			name:     "url embedded verbatim",
			text:     "x",
			url:      "local/MathJax.js?config=TeX-AMS_CHTML",
			expected: "<script type='text/javascript' async src='local/MathJax.js?config=TeX-AMS_CHTML'></script>x",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := InsertScript(tt.text, tt.url)
			if got != tt.expected {
				t.Errorf("InsertScript() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestEscapeOpeningBrackets(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "single bracket",
			input:    "L[1] = 2",
			expected: `L\[1] = 2`,
		},
		{
			name:     "multiple brackets",
			input:    "a[0] b[1]",
			expected: `a\[0] b\[1]`,
		},
		{
			name:     "closing brackets untouched",
			input:    "]]]",
			expected: "]]]",
		},
		{
			name:     "no exemption inside pre regions",
			input:    "<pre>x[0]</pre>",
			expected: `<pre>x\[0]</pre>`,
		},
		{
			name:     "no brackets",
			input:    "nothing here",
			expected: "nothing here",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EscapeOpeningBrackets(tt.input)
			if got != tt.expected {
				t.Errorf("EscapeOpeningBrackets() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestFixDelimiters(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "inline dollars",
			input:    "$1+1=2$.",
			expected: `\(1+1=2\).`,
		},
		{
			name:     "display dollars",
			input:    "$$1+1=2$$",
			expected: `\begin{equation}1+1=2\end{equation}`,
		},
		{
			name:     "display consumed before inline",
			input:    "$a$ and $$b$$",
			expected: `\(a\) and \begin{equation}b\end{equation}`,
		},
		{
			name:     "multiple inline spans",
			input:    "$a$ $b$ $c$",
			expected: `\(a\) \(b\) \(c\)`,
		},
		{
			name:     "span crosses newline",
			input:    "$a\nb$",
			expected: "\\(a\nb\\)",
		},
		{
			name:     "display span crosses newline",
			input:    "$$f(x)\n= 1$$",
			expected: "\\begin{equation}f(x)\n= 1\\end{equation}",
		},
		{
			name:     "no dollars",
			input:    "plain text",
			expected: "plain text",
		},
		{
			name:     "unpaired dollar left alone",
			input:    "the price is $5",
			expected: "the price is $5",
		},
		{
			name:     "odd count pairs leftmost first",
			input:    "a $b$ c $d",
			expected: `a \(b\) c $d`,
		},
		{
			name:     "canonical delimiters pass through",
			input:    `\(x\) and \begin{align}y\end{align}`,
			expected: `\(x\) and \begin{align}y\end{align}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FixDelimiters(tt.input)
			if err != nil {
				t.Fatalf("FixDelimiters() unexpected error: %v", err)
			}
			if got != tt.expected {
				t.Errorf("FixDelimiters() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestFixDelimitersEscapedDollars(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{
			name:  "escaped dollar alone",
			input: `Price: 2\$.`,
		},
		{
			name:  "escaped dollar with real math",
			input: `Price: 2\$. But $2+2=4$.`,
		},
		{
			name:  "escaped dollar at start",
			input: `\$100`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FixDelimiters(tt.input)
			if !errors.Is(err, ErrEscapedDollars) {
				t.Fatalf("FixDelimiters() error = %v, want ErrEscapedDollars", err)
			}
			if got != "" {
				t.Errorf("FixDelimiters() = %q, want empty result on error", got)
			}
		})
	}
}

func TestStripNewlines(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "LF removed",
			input:    "a\nb\nc",
			expected: "abc",
		},
		{
			name:     "CRLF removed",
			input:    "a\r\nb",
			expected: "ab",
		},
		{
			name:     "bare CR removed",
			input:    "a\rb",
			expected: "ab",
		},
		{
			name:     "other whitespace untouched",
			input:    "a \tb\n",
			expected: "a \tb",
		},
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := StripNewlines(tt.input)
			if got != tt.expected {
				t.Errorf("StripNewlines() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestCollapseMathSpaces(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "spaces inside inline span",
			input:    `\(1 + 1 = 2\)`,
			expected: `\(1&nbsp;+&nbsp;1&nbsp;=&nbsp;2\)`,
		},
		{
			name:     "whitespace run collapses to one token",
			input:    "\\(a  \t b\\)",
			expected: `\(a&nbsp;b\)`,
		},
		{
			name:     "newline inside span becomes one token",
			input:    "\\(a\nb\\)",
			expected: `\(a&nbsp;b\)`,
		},
		{
			name:     "text outside spans untouched",
			input:    `before \(a b\) after  words`,
			expected: `before \(a&nbsp;b\) after  words`,
		},
		{
			name:     "equation span",
			input:    `\begin{equation}f(x) = 1\end{equation}`,
			expected: `\begin{equation}f(x)&nbsp;=&nbsp;1\end{equation}`,
		},
		{
			name:     "align span",
			input:    `\begin{align}x &= y \\ y &= z\end{align}`,
			expected: `\begin{align}x&nbsp;&=&nbsp;y&nbsp;\\&nbsp;y&nbsp;&=&nbsp;z\end{align}`,
		},
		{
			name:     "multiple spans",
			input:    `\(a b\) and \(c d\)`,
			expected: `\(a&nbsp;b\) and \(c&nbsp;d\)`,
		},
		{
			name:     "idempotent on collapsed span",
			input:    `\(1&nbsp;+&nbsp;1\)`,
			expected: `\(1&nbsp;+&nbsp;1\)`,
		},
		{
			name:     "no spans",
			input:    "no math here",
			expected: "no math here",
		},
		{
			// Documented limitation: the span ends at the first closing
			// delimiter, so whitespace after an inner closer survives.
			name:     "nested math stops at first closer",
			input:    `\(f(x) = 1 \text{ if \(x > 0\), otherwise }0.\)`,
			expected: `\(f(x)&nbsp;=&nbsp;1&nbsp;\text{&nbsp;if&nbsp;\(x&nbsp;>&nbsp;0\), otherwise }0.\)`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CollapseMathSpaces(tt.input)
			if got != tt.expected {
				t.Errorf("CollapseMathSpaces() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestBlackjaxify(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		opts     Options
		expected string
	}{
		{
			name:     "inline math end to end",
			input:    "$1 + 1 = 2$.",
			opts:     Options{},
			expected: scriptTag + `\(1&nbsp;+&nbsp;1&nbsp;=&nbsp;2\).`,
		},
		{
			name:     "display math end to end",
			input:    "$$1 + 1 = 2$$",
			opts:     Options{SkipScript: true},
			expected: `\begin{equation}1&nbsp;+&nbsp;1&nbsp;=&nbsp;2\end{equation}`,
		},
		{
			name:     "custom script url",
			input:    "x",
			opts:     Options{ScriptURL: "https://example.com/mj.js"},
			expected: "<script type='text/javascript' async src='https://example.com/mj.js'></script>x",
		},
		{
			name:     "newline outside math removed",
			input:    "line one\nline two",
			opts:     Options{SkipScript: true},
			expected: "line oneline two",
		},
		{
			// Pinned ordering: newlines are stripped before the collapser
			// runs, so a newline-only gap inside math disappears instead of
			// becoming &nbsp;.
			name:     "newline inside math removed not collapsed",
			input:    "$a\nb$",
			opts:     Options{SkipScript: true},
			expected: `\(ab\)`,
		},
		{
			name:     "newline plus space inside math collapses to one token",
			input:    "$a \n b$",
			opts:     Options{SkipScript: true},
			expected: `\(a&nbsp;b\)`,
		},
		{
			name:     "escape brackets everywhere",
			input:    "L[1] = 2",
			opts:     Options{SkipScript: true, EscapeBrackets: true},
			expected: `L\[1] = 2`,
		},
		{
			name:     "escape brackets inside math span",
			input:    "$L[1] = 2$",
			opts:     Options{SkipScript: true, EscapeBrackets: true},
			expected: `\(L\[1]&nbsp;=&nbsp;2\)`,
		},
		{
			name:     "pre-canonical delimiters get collapsing too",
			input:    `\begin{align}x = y\end{align}`,
			opts:     Options{SkipScript: true},
			expected: `\begin{align}x&nbsp;=&nbsp;y\end{align}`,
		},
		{
			name:     "prose with html markup",
			input:    "Consider $f$, periodic with period $2 \\, \\pi$.\n<br>\nFind $b_5$.",
			opts:     Options{SkipScript: true},
			expected: `Consider \(f\), periodic with period \(2&nbsp;\,&nbsp;\pi\).<br>Find \(b_5\).`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Blackjaxify(tt.input, tt.opts)
			if err != nil {
				t.Fatalf("Blackjaxify() unexpected error: %v", err)
			}
			if got != tt.expected {
				t.Errorf("Blackjaxify() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestBlackjaxifyEscapedDollars(t *testing.T) {
	got, err := Blackjaxify(`Price: 2\$. But $2+2=4$.`, Options{})
	if !errors.Is(err, ErrEscapedDollars) {
		t.Fatalf("Blackjaxify() error = %v, want ErrEscapedDollars", err)
	}
	if got != "" {
		t.Errorf("Blackjaxify() = %q, want empty result on error", got)
	}
}

func TestBlackjaxifyStartsWithScriptTag(t *testing.T) {
	inputs := []string{
		"plain prose",
		"$x$",
		"several\nlines\nof $m a t h$",
	}
	for _, input := range inputs {
		got, err := Blackjaxify(input, Options{})
		if err != nil {
			t.Fatalf("Blackjaxify(%q) unexpected error: %v", input, err)
		}
		if !strings.HasPrefix(got, scriptTag) {
			t.Errorf("Blackjaxify(%q) does not start with the script tag: %q", input, got)
		}
	}
}
