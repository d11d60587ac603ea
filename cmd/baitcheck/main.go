package main

import (
	"context"
	"fmt"
	"io"
	stdslog "log/slog"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/gomhan/baitcheck"
	"github.com/gomhan/baitcheck/bloom"
	"github.com/gomhan/baitcheck/charset"
	"github.com/gomhan/baitcheck/goquery"
	baithttp "github.com/gomhan/baitcheck/http"
	"github.com/gomhan/baitcheck/pipeline"
	"github.com/gomhan/baitcheck/readability"
	"github.com/gomhan/baitcheck/rod"
	baitslog "github.com/gomhan/baitcheck/slog"
	"github.com/gomhan/baitcheck/tfidf"
	"github.com/gomhan/baitcheck/trafilatura"
)

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
	// Services for end-to-end testing. When set, Run uses them instead
	// of constructing the real pipeline.
	Analyzer Analyzer
	Feeds    baitcheck.FeedService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
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
		kong.Name("baitcheck"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'baitcheck --help' to see available commands")
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

	var logger *stdslog.Logger
	if cli.Verbose {
		logger = stdslog.New(stdslog.NewTextHandler(stderr, nil))
	}

	// Wire the analysis pipeline unless a test injected one.
	deps.Analyzer = m.Analyzer
	if deps.Analyzer == nil {
		classifier, err := tfidf.Load(cli.Model)
		if err != nil {
			fmt.Fprintln(stderr, "Hint: pass --model or set BAITCHECK_MODEL to point at the trained artifact")
			return fmt.Errorf("failed to load model from %q: %w", cli.Model, err)
		}

		fetcher, err := newFetcher(cli)
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed for --render")
			return fmt.Errorf("failed to start fetcher: %w", err)
		}
		defer fetcher.Close()

		var clf baitcheck.Classifier = classifier
		if logger != nil {
			fetcher = baitslog.NewLoggingFetcher(fetcher, logger)
			clf = baitslog.NewLoggingClassifier(clf, logger)
		}

		orchestrator := pipeline.NewOrchestrator(fetcher, charset.NewResolver(), newEngine(cli.Engine))
		deps.Analyzer = pipeline.NewAnalyzer(orchestrator, clf)
	}

	if strings.HasPrefix(kongCtx.Command(), "batch") {
		deps.Feeds = m.Feeds
		if deps.Feeds == nil {
			deps.Feeds = baithttp.NewFeedService(nil)
		}
		deps.Limiter = pipeline.NewPublisherLimiter(cli.Batch.RPS)
		deps.Seen = bloom.NewFilter(batchExpectedURLs, batchFalsePositiveRate)
	}

	return kongCtx.Run(deps)
}

// Bloom filter sizing for a batch run. Generous for any single feed; a
// false positive silently drops an article, so the rate stays low.
const (
	batchExpectedURLs      = 100_000
	batchFalsePositiveRate = 0.001
)

func newFetcher(cli *CLI) (baitcheck.Fetcher, error) {
	if cli.Render {
		return rod.NewFetcher()
	}
	return baithttp.NewFetcher(baithttp.WithTimeout(cli.Timeout)), nil
}

func newEngine(name string) baitcheck.Extractor {
	switch name {
	case "trafilatura":
		return trafilatura.NewExtractor()
	case "readability":
		return readability.NewExtractor()
	default:
		return goquery.NewExtractor()
	}
}
