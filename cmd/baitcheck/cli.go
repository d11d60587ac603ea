package main

import (
	"context"
	"io"
	"time"

	"github.com/gomhan/baitcheck"
	"github.com/gomhan/baitcheck/pipeline"
)

// Analyzer classifies news text or article URLs. Satisfied by
// *pipeline.Analyzer.
type Analyzer interface {
	AnalyzeText(title, body string) (*pipeline.Analysis, error)
	AnalyzeURL(ctx context.Context, url string) (*pipeline.Analysis, error)
}

// Deduper records article URLs and reports repeats. Satisfied by
// *bloom.Filter.
type Deduper interface {
	Seen(url string) bool
}

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	Analyzer Analyzer
	Feeds    baitcheck.FeedService
	Limiter  *pipeline.PublisherLimiter
	Seen     Deduper
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Model   string        `default:"clickbait_model.json" env:"BAITCHECK_MODEL" help:"Path to the trained model artifact"`
	Timeout time.Duration `default:"10s" help:"Per-request fetch timeout"`
	Engine  string        `default:"selectors" enum:"selectors,trafilatura,readability" help:"Body extraction engine"`
	Render  bool          `help:"Fetch with a headless browser for JS-rendered pages"`
	Verbose bool          `short:"v" help:"Log fetch and classification activity"`

	Check CheckCmd `cmd:"" help:"Classify a single article by URL or pasted text"`
	Batch BatchCmd `cmd:"" help:"Classify every article URL in a feed or file"`
}

// CheckCmd is the "check" subcommand.
type CheckCmd struct {
	URL   string `help:"Article URL to fetch and classify"`
	Title string `help:"Article title to classify directly"`
	Body  string `help:"Article body to classify directly"`
}

// BatchCmd is the "batch" subcommand.
type BatchCmd struct {
	Source string  `arg:"" help:"RSS/Atom feed URL or path to a file of article URLs"`
	RPS    float64 `default:"1" help:"Max requests per second per publisher domain"`
}
