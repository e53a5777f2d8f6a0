package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/pagesum"
	"github.com/fwojciec/pagesum/anthropic"
	"github.com/fwojciec/pagesum/gemini"
	"github.com/fwojciec/pagesum/goquery"
	pagesumhttp "github.com/fwojciec/pagesum/http"
	"github.com/fwojciec/pagesum/openai"
	"github.com/fwojciec/pagesum/page"
	"github.com/fwojciec/pagesum/rod"
	pagesumslog "github.com/fwojciec/pagesum/slog"
	"github.com/fwojciec/pagesum/sqlite"
	"github.com/fwojciec/pagesum/summarize"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	m := NewMain()

	err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	if err != nil {
		if !errors.As(err, new(reportedError)) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Environ replaces the process environment and ~/.pagesum/env when set.
	Environ map[string]string

	// Config is loaded from the environment by Run.
	Config Config

	// SQLite database backing the preference store.
	DB *sqlite.DB

	// Fetcher replaces the page loader selected by --render when set.
	Fetcher pagesum.Fetcher
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
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
		kong.Name("pagesum"),
		kong.Description("Summarize web pages with Gemini, ChatGPT or Claude"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'pagesum --help' to see available commands")
	}

	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	environ := m.Environ
	if environ == nil {
		if environ, err = ReadEnvironment(defaultEnvFile()); err != nil {
			return err
		}
	}
	m.Config, err = LoadConfig(environ)
	if err != nil {
		return err
	}

	logger := slog.New(slog.DiscardHandler)
	if cli.Verbose {
		logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	m.DB = sqlite.NewDB(m.Config.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set PAGESUM_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.Config.DBPath, err)
	}
	defer m.Close()

	deps.Preferences = pagesum.NewPreferences(sqlite.NewStore(m.DB))

	cmd := strings.Fields(kongCtx.Command())[0]

	if cmd == "summarize" || cmd == "extract" {
		render := cli.Summarize.Render
		if cmd == "extract" {
			render = cli.Extract.Render
		}

		fetcher := m.newFetcher(render, logger)
		defer fetcher.Close()

		deps.Articles = pagesumslog.NewLoggingArticleSource(&page.Agent{
			Fetcher:   fetcher,
			Extractor: goquery.NewExtractor(),
		}, logger)
	}

	if cmd == "summarize" {
		registry := summarize.NewRegistry(
			gemini.NewAdapter(gemini.WithBaseURL(m.Config.GeminiURL)),
			openai.NewAdapter(openai.WithBaseURL(m.Config.OpenAIURL)),
			anthropic.NewAdapter(anthropic.WithBaseURL(m.Config.AnthropicURL)),
		)
		client := summarize.NewClient(registry, &http.Client{Timeout: m.Config.RequestTimeout})

		deps.Dispatcher = &summarize.Dispatcher{
			Preferences: deps.Preferences,
			Articles:    deps.Articles,
			Summarizer:  pagesumslog.NewLoggingSummarizer(client, logger),
		}
	}

	return kongCtx.Run(deps)
}

// newFetcher returns the page loader for this run. The browser behind
// --render starts on the first page load, after the credential check.
func (m *Main) newFetcher(render bool, logger *slog.Logger) pagesum.Fetcher {
	if m.Fetcher != nil {
		return pagesumslog.NewLoggingFetcher(m.Fetcher, "custom", logger)
	}
	if render {
		f := rod.NewLazyFetcher(rod.WithFetchTimeout(m.Config.FetchTimeout))
		return pagesumslog.NewLoggingFetcher(f, "rod", logger)
	}
	f := pagesumhttp.NewFetcher(pagesumhttp.WithTimeout(m.Config.FetchTimeout))
	return pagesumslog.NewLoggingFetcher(f, "http", logger)
}
