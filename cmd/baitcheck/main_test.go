package main_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/gomhan/baitcheck"
	main "github.com/gomhan/baitcheck/cmd/baitcheck"
	"github.com/gomhan/baitcheck/pipeline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubAnalyzer implements main.Analyzer for command tests.
type stubAnalyzer struct {
	AnalyzeTextFn func(title, body string) (*pipeline.Analysis, error)
	AnalyzeURLFn  func(ctx context.Context, url string) (*pipeline.Analysis, error)
}

func (s *stubAnalyzer) AnalyzeText(title, body string) (*pipeline.Analysis, error) {
	return s.AnalyzeTextFn(title, body)
}

func (s *stubAnalyzer) AnalyzeURL(ctx context.Context, url string) (*pipeline.Analysis, error) {
	return s.AnalyzeURLFn(ctx, url)
}

var _ main.Analyzer = (*stubAnalyzer)(nil)

func TestMain_Run_Help(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{"--help"}, &stdout, &stderr)

	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "baitcheck")
	assert.Contains(t, stdout.String(), "check")
	assert.Contains(t, stdout.String(), "batch")
}

func TestMain_Run_NoArgs(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{}, &stdout, &stderr)

	assert.Error(t, err)
}

func TestMain_Run_RejectsUnknownEngine(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{"--engine", "regex", "check", "--title", "t"}, &stdout, &stderr)

	assert.Error(t, err)
}

func TestMain_Run_CheckTitle(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	m.Analyzer = &stubAnalyzer{
		AnalyzeTextFn: func(title, body string) (*pipeline.Analysis, error) {
			return &pipeline.Analysis{
				Mode:       baitcheck.ModeTitleOnly,
				Prediction: baitcheck.Prediction{Label: baitcheck.LabelClickbait, Clickbait: 0.91},
			}, nil
		},
	}
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{"check", "--title", "충격! 이럴수가"}, &stdout, &stderr)

	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "Likely clickbait (91.0%)")
	assert.Contains(t, stdout.String(), "accuracy: low (title only)")
}

func TestMain_Run_MissingModel(t *testing.T) {
	t.Parallel()

	// No injected analyzer, so Run loads the model; a bogus path fails.
	m := main.NewMain()
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{"--model", "no-such-model.json", "check", "--title", "t"}, &stdout, &stderr)

	require.Error(t, err)
	assert.Contains(t, stderr.String(), "Hint")
}
