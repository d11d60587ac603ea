package main

import (
	"bufio"
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/gomhan/baitcheck"
)

// Run executes the batch command.
func (c *BatchCmd) Run(deps *Dependencies) error {
	urls, err := c.collectURLs(deps)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", baitcheck.ErrorMessage(err))
		return err
	}
	if len(urls) == 0 {
		fmt.Fprintln(deps.Stdout, "No article URLs found.")
		return nil
	}

	// Syndicated articles show up under several URLs; hash the extracted
	// text so each story is reported once.
	seenText := make(map[uint64]struct{})

	var classified, skipped, failed int
	for _, articleURL := range urls {
		if deps.Seen.Seen(articleURL) {
			skipped++
			continue
		}

		if err := deps.Limiter.Wait(deps.Ctx, domainOf(articleURL)); err != nil {
			return err
		}

		analysis, err := deps.Analyzer.AnalyzeURL(deps.Ctx, articleURL)
		if err != nil {
			failed++
			fmt.Fprintf(deps.Stderr, "skip %s: %s\n", articleURL, baitcheck.ErrorMessage(err))
			continue
		}

		sum := xxhash.Sum64String(analysis.Article.Text())
		if _, ok := seenText[sum]; ok {
			skipped++
			continue
		}
		seenText[sum] = struct{}{}

		classified++
		fmt.Fprintf(deps.Stdout, "%5.1f%%\t%s\t%s\t%s\n",
			analysis.Prediction.Clickbait*100,
			labelWord(analysis.Prediction.Label),
			analysis.Article.Source,
			analysis.Article.Title,
		)
	}

	fmt.Fprintf(deps.Stdout, "\n%d classified, %d duplicates skipped, %d failed\n", classified, skipped, failed)
	return nil
}

// collectURLs resolves the source argument into article URLs: a feed URL
// is fetched and parsed, anything else is read as a file of URLs, one
// per line.
func (c *BatchCmd) collectURLs(deps *Dependencies) ([]string, error) {
	if strings.HasPrefix(c.Source, "http://") || strings.HasPrefix(c.Source, "https://") {
		return deps.Feeds.DiscoverURLs(deps.Ctx, c.Source)
	}

	f, err := os.Open(c.Source)
	if err != nil {
		return nil, baitcheck.Errorf(baitcheck.ENOTFOUND, "cannot open URL file %q", c.Source)
	}
	defer f.Close()

	var urls []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		urls = append(urls, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, baitcheck.Errorf(baitcheck.EINTERNAL, "reading %q: %v", c.Source, err)
	}
	return urls, nil
}

func labelWord(label int) string {
	if label == baitcheck.LabelClickbait {
		return "clickbait"
	}
	return "normal"
}

func domainOf(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	return u.Hostname()
}
