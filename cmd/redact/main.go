package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/redactkit/redactkit/config"
	"github.com/redactkit/redactkit/engines"
	"github.com/redactkit/redactkit/observability"
	"github.com/redactkit/redactkit/pipeline"
)

type options struct {
	inPath     string
	outPath    string
	configPath string
	mode       string
	language   string
	verbose    bool
}

func main() {
	opts, err := parseFlags()
	if err != nil {
		fmt.Fprintf(os.Stderr, "redact: %v\n", err)
		os.Exit(2)
	}
	if err := run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "redact: %v\n", err)
		os.Exit(1)
	}
}

func parseFlags() (options, error) {
	var opts options
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: redact [flags] <file>\n")
		flag.PrintDefaults()
	}
	flag.StringVar(&opts.outPath, "out", "", "Output path (default: <name>.redacted<ext>)")
	flag.StringVar(&opts.configPath, "config", "", "Path to a YAML config file")
	flag.StringVar(&opts.mode, "mode", "auto", "Output mode: auto, text or image")
	flag.StringVar(&opts.language, "lang", "", "Document language (default from config)")
	flag.BoolVar(&opts.verbose, "v", false, "Log pipeline progress to stderr")
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		return options{}, fmt.Errorf("expected exactly one input file")
	}
	opts.inPath = flag.Arg(0)
	switch pipeline.OutputMode(opts.mode) {
	case pipeline.ModeAuto, pipeline.ModeText, pipeline.ModeImage:
	default:
		return options{}, fmt.Errorf("unknown mode %q", opts.mode)
	}
	return opts, nil
}

func run(opts options) error {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}

	var log observability.Logger
	if opts.verbose {
		log = observability.NewLineLogger(os.Stderr)
	}

	content, err := os.ReadFile(opts.inPath)
	if err != nil {
		return err
	}

	pipe := pipeline.New(cfg, engines.NewManager(), log)
	res, err := pipe.Process(context.Background(), pipeline.Document{
		Content:  content,
		Filename: filepath.Base(opts.inPath),
	}, pipeline.OutputMode(opts.mode), opts.language)
	if err != nil {
		return err
	}

	out := opts.outPath
	if out == "" {
		out = defaultOutPath(opts.inPath, res)
	}
	var data []byte
	if res.Kind == "text" {
		data = []byte(res.Text)
	} else {
		data = res.Binary
	}
	if err := os.WriteFile(out, data, 0o644); err != nil {
		return err
	}
	fmt.Printf("%s: %d PII entities, %d page(s) -> %s\n", opts.inPath, res.PIICount, res.PagesProcessed, out)
	return nil
}

// defaultOutPath keeps the input extension for binary results and forces
// .txt when the pipeline emitted text.
func defaultOutPath(in string, res pipeline.Result) string {
	ext := filepath.Ext(in)
	base := in[:len(in)-len(ext)]
	if res.Kind == "text" {
		return base + ".redacted.txt"
	}
	if res.ContentType == "application/pdf" {
		return base + ".redacted.pdf"
	}
	return base + ".redacted" + ext
}
