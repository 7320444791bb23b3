package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: blackjax <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  pool       Build Blackboard upload files from YAML pool definitions")
	fmt.Fprintln(w, "  text       Format a text so Blackboard renders its math with MathJax")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'blackjax help <command>' for details on a specific command.")
}

// printPoolUsage prints usage for the pool command.
func printPoolUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: blackjax pool <pool.yaml>... [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Build question files for Blackboard's Upload Questions feature.")
	fmt.Fprintln(w, "Each pool file produces one tab-separated .txt file next to it")
	fmt.Fprintln(w, "unless --output says otherwise.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -o, --output <path>           Output file (single pool) or directory")
	fmt.Fprintln(w, "      --encoding <s>            Pool file encoding: utf-16 (default), utf-8")
	fmt.Fprintln(w, "      --decimal-separator <s>   Numeric answers: \",\" (default) or \".\"")
	fmt.Fprintln(w, "      --script-url <url>        MathJax URL for injected script tags")
	fmt.Fprintln(w, "      --escape-brackets         Escape [ in every field")
	fmt.Fprintln(w, "      --markdown                Treat prompts and answers as Markdown")
	fmt.Fprintln(w, "      --preview                 Also write an HTML preview per pool")
	fmt.Fprintln(w, "  -w, --workers <n>             Parallel workers for many pools (0 = auto)")
	fmt.Fprintln(w, "  -q, --quiet                   Suppress progress output")
	fmt.Fprintln(w, "  -v, --verbose                 Per-pool progress output")
}

// printTextUsage prints usage for the text command.
func printTextUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: blackjax text [file] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Format a text (file or stdin) so its LaTeX math survives Blackboard's")
	fmt.Fprintln(w, "editor and renders with MathJax. The result goes to stdout unless")
	fmt.Fprintln(w, "--output is given; paste it into the editor's source-code window.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -o, --output <path>       Write result to a file instead of stdout")
	fmt.Fprintln(w, "      --script-url <url>    MathJax URL for the injected script tag")
	fmt.Fprintln(w, "      --no-script           Do not prepend the script tag")
	fmt.Fprintln(w, "      --escape-brackets     Escape every opening square bracket")
	fmt.Fprintln(w, "      --markdown            Convert Markdown to HTML first")
}
