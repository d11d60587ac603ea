package main

import (
	"fmt"
	"unicode/utf8"

	"github.com/gomhan/baitcheck"
	"github.com/gomhan/baitcheck/pipeline"
)

// bodyPreviewRunes caps how much of an extracted body the check command
// prints before the verdict.
const bodyPreviewRunes = 500

// Run executes the check command.
func (c *CheckCmd) Run(deps *Dependencies) error {
	if c.URL == "" && c.Title == "" && c.Body == "" {
		return baitcheck.Errorf(baitcheck.EINVALID, "provide --url, or --title and/or --body")
	}
	if c.URL != "" && (c.Title != "" || c.Body != "") {
		return baitcheck.Errorf(baitcheck.EINVALID, "--url cannot be combined with --title or --body")
	}

	var analysis *pipeline.Analysis
	var err error
	if c.URL != "" {
		analysis, err = deps.Analyzer.AnalyzeURL(deps.Ctx, c.URL)
	} else {
		analysis, err = deps.Analyzer.AnalyzeText(c.Title, c.Body)
	}
	if err != nil {
		switch baitcheck.ErrorCode(err) {
		case baitcheck.ENETWORK:
			fmt.Fprintln(deps.Stderr, "Could not fetch the page. Check the URL or try again.")
		case baitcheck.ENOTFOUND:
			fmt.Fprintln(deps.Stderr, "Fetched the page but found no usable title or body. Try pasting the text with --title/--body.")
		default:
			fmt.Fprintf(deps.Stderr, "error: %s\n", baitcheck.ErrorMessage(err))
		}
		return err
	}

	if analysis.Article != nil {
		printArticle(deps, analysis.Article)
	}
	printVerdict(deps, analysis)
	return nil
}

func printArticle(deps *Dependencies, article *baitcheck.Article) {
	fmt.Fprintf(deps.Stdout, "Title:  %s\n", article.Title)
	fmt.Fprintf(deps.Stdout, "Source: %s\n", article.Source)
	fmt.Fprintf(deps.Stdout, "Body:   %s\n\n", truncateRunes(article.Body, bodyPreviewRunes))
}

func printVerdict(deps *Dependencies, analysis *pipeline.Analysis) {
	percent := analysis.Prediction.Clickbait * 100

	switch analysis.Prediction.Band() {
	case baitcheck.BandStrongClickbait:
		fmt.Fprintf(deps.Stdout, "Likely clickbait (%.1f%%)\n", percent)
	case baitcheck.BandWeakClickbait:
		fmt.Fprintf(deps.Stdout, "Possibly clickbait (%.1f%%)\n", percent)
	case baitcheck.BandClearlyNormal:
		fmt.Fprintf(deps.Stdout, "Looks like normal news (%.1f%%)\n", percent)
	case baitcheck.BandWeakNormal:
		fmt.Fprintf(deps.Stdout, "Probably normal news (%.1f%%)\n", percent)
	}

	fmt.Fprintln(deps.Stdout, analysis.Mode.AccuracyHint())
}

func truncateRunes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return string(runes[:n]) + "…"
}
