// Package goquery implements article extraction with a data-driven
// catalog of publisher body selectors, a decorative-markup stripping
// predicate, and a generic paragraph fallback.
package goquery

import (
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/gomhan/baitcheck"
	"golang.org/x/net/html"
)

// Extraction thresholds, in characters. Empirically tuned to exclude
// boilerplate (bylines, copyright notices) while accepting genuine short
// articles.
const (
	// DefaultBodyMinChars is the minimum informative length for a
	// selector-extracted body.
	DefaultBodyMinChars = 150

	// DefaultFallbackMinChars is the minimum length for a body assembled
	// by the paragraph fallback.
	DefaultFallbackMinChars = 100

	// DefaultParagraphMinChars is the minimum own-text length for a
	// paragraph to count toward the fallback.
	DefaultParagraphMinChars = 20
)

// excludedAncestors marks containers whose paragraphs are never article
// content: comment threads, footers, copyright blocks, ad units.
const excludedAncestors = ".reply, .footer, .copyright, .ad_unit"

// Ensure Extractor implements baitcheck.Extractor at compile time.
var _ baitcheck.Extractor = (*Extractor)(nil)

// Extractor recovers the article title and body from HTML using the
// ordered publisher selector catalog.
type Extractor struct {
	catalog          []Selector
	bodyMinChars     int
	fallbackMinChars int
	paraMinChars     int
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithCatalog replaces the selector catalog. Order matters: earlier
// selectors are tried first.
func WithCatalog(catalog []Selector) Option {
	return func(e *Extractor) {
		e.catalog = catalog
	}
}

// WithThresholds overrides the extraction length thresholds.
func WithThresholds(bodyMin, fallbackMin, paragraphMin int) Option {
	return func(e *Extractor) {
		e.bodyMinChars = bodyMin
		e.fallbackMinChars = fallbackMin
		e.paraMinChars = paragraphMin
	}
}

// NewExtractor creates an Extractor with the default catalog and
// thresholds.
func NewExtractor(opts ...Option) *Extractor {
	e := &Extractor{
		catalog:          DefaultCatalog,
		bodyMinChars:     DefaultBodyMinChars,
		fallbackMinChars: DefaultFallbackMinChars,
		paraMinChars:     DefaultParagraphMinChars,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract processes decoded HTML and returns the article title and body.
// Missing fields carry their sentinel values.
func (e *Extractor) Extract(rawHTML string) (*baitcheck.ExtractResult, error) {
	if rawHTML == "" {
		return nil, baitcheck.Errorf(baitcheck.EINVALID, "empty HTML input")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, baitcheck.Errorf(baitcheck.EINVALID, "parsing HTML: %v", err)
	}

	return &baitcheck.ExtractResult{
		Title: extractTitle(doc),
		Body:  e.extractBody(doc),
	}, nil
}

// extractTitle prefers the social-preview og:title metadata over the
// document title element.
func extractTitle(doc *goquery.Document) string {
	if content, ok := doc.Find(`meta[property="og:title"]`).First().Attr("content"); ok {
		if title := strings.TrimSpace(content); title != "" {
			return title
		}
	}
	if title := strings.TrimSpace(doc.Find("title").First().Text()); title != "" {
		return title
	}
	return baitcheck.NoTitle
}

// extractBody walks the selector catalog in order and returns the first
// match whose stripped text clears the informative threshold. Too-short
// matches are remembered: a retained body that still reaches the
// threshold is accepted without running the paragraph fallback, and when
// neither the catalog nor the fallback qualifies, the last non-empty
// selector text beats the sentinel.
func (e *Extractor) extractBody(doc *goquery.Document) string {
	var short string
	for _, sel := range e.catalog {
		m := doc.Find(sel.CSS()).First()
		if m.Length() == 0 {
			continue
		}

		stripDecorative(m)
		text := baitcheck.CollapseWhitespace(joinText(m))
		if utf8.RuneCountInString(text) > e.bodyMinChars {
			return text
		}
		if text != "" {
			short = text
		}
	}

	if utf8.RuneCountInString(short) >= e.bodyMinChars {
		return short
	}
	if text := e.paragraphFallback(doc); text != "" {
		return text
	}
	if short != "" {
		return short
	}
	return baitcheck.NoBody
}

// paragraphFallback collects every paragraph with enough own text that
// does not sit inside an excluded container. Returns "" when the joined
// text does not qualify.
func (e *Extractor) paragraphFallback(doc *goquery.Document) string {
	var parts []string
	doc.Find("p").Each(func(_ int, p *goquery.Selection) {
		text := baitcheck.CollapseWhitespace(joinText(p))
		if utf8.RuneCountInString(text) <= e.paraMinChars {
			return
		}
		if p.ParentsFiltered(excludedAncestors).Length() > 0 {
			return
		}
		parts = append(parts, text)
	})

	joined := baitcheck.CollapseWhitespace(strings.Join(parts, " "))
	if utf8.RuneCountInString(joined) > e.fallbackMinChars {
		return joined
	}
	return ""
}

// decorativeTags are candidates for removal inside a matched body
// container.
const decorativeTags = "script, style, ins, iframe, noscript, img, figure, ul, ol, blockquote, a, strong, em"

// alwaysStrip holds tags removed regardless of their text content.
var alwaysStrip = map[string]bool{
	"script":   true,
	"style":    true,
	"ins":      true,
	"iframe":   true,
	"noscript": true,
}

// decorative is the removal predicate: embed-type tags always go, other
// candidates only when their own text is blank. Stripping only removes
// nodes, never rewrites surviving text.
func decorative(tag, ownText string) bool {
	if alwaysStrip[tag] {
		return true
	}
	return strings.TrimSpace(ownText) == ""
}

// stripDecorative removes decorative nodes from the matched subtree.
func stripDecorative(sel *goquery.Selection) {
	sel.Find(decorativeTags).Each(func(_ int, s *goquery.Selection) {
		if decorative(goquery.NodeName(s), s.Text()) {
			s.Remove()
		}
	})
}

// joinText concatenates the selection's text nodes with single-space
// separators, mirroring get_text(separator=" ", strip=True): each text
// node is trimmed, blanks are dropped, survivors are space-joined.
func joinText(sel *goquery.Selection) string {
	var parts []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			if t := strings.TrimSpace(n.Data); t != "" {
				parts = append(parts, t)
			}
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for _, n := range sel.Nodes {
		walk(n)
	}
	return strings.Join(parts, " ")
}
