package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"

	flag "github.com/spf13/pflag"

	blackjax "github.com/ebriand/go-blackjax"
	"github.com/ebriand/go-blackjax/internal/pooldef"
)

// Worker bounds for batch pool building.
const (
	MinWorkers = 1
	MaxWorkers = 8
)

// File permission constants.
const (
	dirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	filePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// PoolResult holds the outcome of building a single pool file.
type PoolResult struct {
	InputPath  string
	OutputPath string
	Questions  int
	Err        error
	Duration   time.Duration
}

// runPool builds Blackboard upload files from YAML pool definitions.
func runPool(args []string, stdout, stderr io.Writer) error {
	flags, paths, err := parsePoolFlags(args)
	if errors.Is(err, flag.ErrHelp) {
		printPoolUsage(stdout)
		return nil
	}
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		return fmt.Errorf("%w: give at least one pool file", ErrNoInput)
	}
	if flags.workers < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidWorkerCount, flags.workers)
	}

	// Validate flag values before touching any file.
	if flags.encoding != "" {
		if err := blackjax.Encoding(flags.encoding).Validate(); err != nil {
			return err
		}
	}
	if flags.separator != "" {
		if err := blackjax.DecimalSeparator(flags.separator).Validate(); err != nil {
			return err
		}
	}

	// With multiple pools, --output names a directory.
	if flags.output != "" && len(paths) > 1 {
		if err := os.MkdirAll(flags.output, dirPermissions); err != nil {
			return fmt.Errorf("%w: %v", ErrWriteOutput, err)
		}
	}

	results := buildPools(paths, flags)
	return printResults(results, flags.common, stdout, stderr)
}

// buildPools processes pool files concurrently with a bounded worker group.
func buildPools(paths []string, flags *poolFlags) []PoolResult {
	results := make([]PoolResult, len(paths))
	workers := resolveWorkers(flags.workers, len(paths))

	jobs := make(chan int, len(paths))
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				results[i] = buildPool(paths[i], flags, len(paths) > 1)
			}
		}()
	}
	for i := range paths {
		jobs <- i
	}
	close(jobs)
	wg.Wait()
	return results
}

// resolveWorkers turns the --workers flag into a concrete worker count.
// 0 means auto: one per CPU, capped, never more than there are pools.
func resolveWorkers(requested, pools int) int {
	n := requested
	if n == 0 {
		n = runtime.NumCPU()
	}
	if n > MaxWorkers {
		n = MaxWorkers
	}
	if n > pools {
		n = pools
	}
	if n < MinWorkers {
		n = MinWorkers
	}
	return n
}

// buildPool loads one pool definition and writes its upload file.
func buildPool(path string, flags *poolFlags, multiple bool) PoolResult {
	start := time.Now()
	res := PoolResult{InputPath: path}

	def, err := pooldef.Load(path)
	if err != nil {
		res.Err = err
		res.Duration = time.Since(start)
		return res
	}
	mergeFlags(flags, def)

	if def.DecimalSeparator != "" {
		if err := blackjax.DecimalSeparator(def.DecimalSeparator).Validate(); err != nil {
			res.Err = err
			res.Duration = time.Since(start)
			return res
		}
	}
	enc := blackjax.EncodingUTF16
	if def.Encoding != "" {
		enc = blackjax.Encoding(def.Encoding)
		if err := enc.Validate(); err != nil {
			res.Err = err
			res.Duration = time.Since(start)
			return res
		}
	}

	questions, err := buildQuestions(newFormatter(def), def)
	if err != nil {
		res.Err = err
		res.Duration = time.Since(start)
		return res
	}

	out := resolveOutputPath(path, flags.output, multiple)
	if err := blackjax.WritePoolFile(out, questions, enc); err != nil {
		res.Err = fmt.Errorf("%w: %v", ErrWriteOutput, err)
		res.Duration = time.Since(start)
		return res
	}

	if flags.preview {
		if err := writePreview(out, questions); err != nil {
			res.Err = err
			res.Duration = time.Since(start)
			return res
		}
	}

	res.OutputPath = out
	res.Questions = len(questions)
	res.Duration = time.Since(start)
	return res
}

// mergeFlags applies command-line overrides to a pool definition.
// CLI wins over the pool file.
func mergeFlags(flags *poolFlags, def *pooldef.Pool) {
	if flags.encoding != "" {
		def.Encoding = flags.encoding
	}
	if flags.separator != "" {
		def.DecimalSeparator = flags.separator
	}
	if flags.scriptURL != "" {
		def.ScriptURL = flags.scriptURL
	}
	if flags.escapeBrackets {
		def.EscapeBrackets = true
	}
	if flags.markdown {
		def.Format = pooldef.FormatMarkdown
	}
}

// newFormatter builds a Formatter from pool-level settings.
func newFormatter(def *pooldef.Pool) *blackjax.Formatter {
	var opts []blackjax.Option
	if def.ScriptURL != "" {
		opts = append(opts, blackjax.WithScriptURL(def.ScriptURL))
	}
	if def.EscapeBrackets {
		opts = append(opts, blackjax.WithEscapeBrackets())
	}
	if def.DecimalSeparator != "" {
		opts = append(opts, blackjax.WithDecimalSeparator(blackjax.DecimalSeparator(def.DecimalSeparator)))
	}
	if def.Format == pooldef.FormatMarkdown {
		opts = append(opts, blackjax.WithMarkdown())
	}
	return blackjax.New(opts...)
}

// buildQuestions formats every question in the pool definition.
func buildQuestions(f *blackjax.Formatter, def *pooldef.Pool) ([]blackjax.Question, error) {
	questions := make([]blackjax.Question, 0, len(def.Questions))
	for i, qd := range def.Questions {
		q, err := buildQuestion(f, qd)
		if err != nil {
			return nil, fmt.Errorf("question %d: %w", i+1, err)
		}
		questions = append(questions, q)
	}
	return questions, nil
}

// buildQuestion dispatches one definition to the matching constructor.
// pooldef.Load has already validated type-specific fields.
func buildQuestion(f *blackjax.Formatter, qd pooldef.Question) (blackjax.Question, error) {
	switch qd.Type {
	case "MC":
		return f.MultipleChoice(qd.Prompt, toAnswers(qd.Answers))
	case "MA":
		return f.MultipleAnswer(qd.Prompt, toAnswers(qd.Answers))
	case "TF":
		return f.TrueFalse(qd.Prompt, *qd.Answer)
	case "NUM":
		return f.Numeric(qd.Prompt, *qd.Value, qd.Tolerance)
	case "ESS":
		return f.Essay(qd.Prompt, qd.Sample)
	case "SR":
		return f.ShortResponse(qd.Prompt, qd.Sample)
	case "FIL":
		return f.FileResponse(qd.Prompt)
	default:
		return blackjax.Question{}, fmt.Errorf("%w: %q", pooldef.ErrUnknownType, qd.Type)
	}
}

func toAnswers(defs []pooldef.Answer) []blackjax.Answer {
	answers := make([]blackjax.Answer, len(defs))
	for i, a := range defs {
		answers[i] = blackjax.Answer{Text: a.Text, Correct: a.Correct}
	}
	return answers
}

// resolveOutputPath decides where a pool's upload file goes. Default is
// next to the definition, with a .txt extension.
func resolveOutputPath(input, output string, multiple bool) string {
	base := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input)) + ".txt"
	if output == "" {
		return filepath.Join(filepath.Dir(input), base)
	}
	if multiple || isDir(output) {
		return filepath.Join(output, base)
	}
	return output
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// writePreview writes the HTML preview next to the upload file.
func writePreview(poolPath string, questions []blackjax.Question) error {
	path := strings.TrimSuffix(poolPath, filepath.Ext(poolPath)) + ".html"
	f, err := os.Create(path) // #nosec G304 -- derived from caller-chosen output path
	if err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	werr := blackjax.RenderPreview(f, questions)
	if cerr := f.Close(); werr == nil {
		werr = cerr
	}
	if werr != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, werr)
	}
	return nil
}

// printResults reports per-pool outcomes and returns the first error.
func printResults(results []PoolResult, common commonFlags, stdout, stderr io.Writer) error {
	var firstErr error
	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
			if firstErr == nil {
				firstErr = r.Err
			}
			fmt.Fprintf(stderr, "%s: %v\n", r.InputPath, r.Err)
			continue
		}
		if common.verbose {
			fmt.Fprintf(stdout, "%s: %d questions -> %s (%s)\n", r.InputPath, r.Questions, r.OutputPath, r.Duration.Round(time.Millisecond))
		} else if !common.quiet {
			fmt.Fprintf(stdout, "Created %s\n", r.OutputPath)
		}
	}
	if !common.quiet && len(results) > 1 {
		fmt.Fprintf(stdout, "Built %d of %d pools\n", len(results)-failed, len(results))
	}
	return firstErr
}
