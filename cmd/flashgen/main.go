package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/flashgen"
	"github.com/fwojciec/flashgen/gemini"
	"github.com/fwojciec/flashgen/goquery"
	flashhttp "github.com/fwojciec/flashgen/http"
	"github.com/fwojciec/flashgen/pipeline"
	"github.com/fwojciec/flashgen/readability"
	"github.com/fwojciec/flashgen/sentences"
	flashslog "github.com/fwojciec/flashgen/slog"
	"github.com/fwojciec/flashgen/youtube"
	"google.golang.org/genai"
)

const defaultModel = "gemini-2.5-flash"

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Model used for flashcard generation. Set before calling Run().
	Model string
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{Model: defaultModel}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("flashgen"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags using Kong
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'flashgen --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	engine := cli.Generate.Engine
	if cmd == "serve" {
		engine = cli.Serve.Engine
	}

	deps.Runner, err = m.buildRunner(ctx, engine, stderr)
	if err != nil {
		return err
	}

	return kongCtx.Run(deps)
}

// buildRunner wires the pipeline with its production collaborators.
func (m *Main) buildRunner(ctx context.Context, engine string, stderr io.Writer) (flashgen.Runner, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		fmt.Fprintln(stderr, "GEMINI_API_KEY environment variable not set. Get an API key at https://aistudio.google.com/apikey")
		return nil, fmt.Errorf("GEMINI_API_KEY not set")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
		return nil, fmt.Errorf("failed to connect to Gemini API: %w", err)
	}

	tokenizer, err := sentences.NewTokenizer()
	if err != nil {
		return nil, fmt.Errorf("failed to load sentence tokenizer: %w", err)
	}

	fetcher := flashhttp.NewFetcher()

	var web flashgen.Extractor
	switch engine {
	case "readability":
		web = readability.NewExtractor(fetcher)
	default:
		web = goquery.NewExtractor(fetcher)
	}

	yt := youtube.NewClient()

	p := &pipeline.Pipeline{
		Web:       web,
		Video:     youtube.NewExtractor(yt, yt),
		Selector:  flashgen.NewSelector(tokenizer),
		Completer: gemini.NewCompleter(client, m.Model),
	}

	logger := slog.New(slog.NewTextHandler(stderr, nil))
	return flashslog.NewRunner(p, logger), nil
}
