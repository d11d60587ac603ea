package baitcheck

// ExtractResult holds the title and body text recovered from an HTML page.
// Fields may be empty when the engine found nothing; the orchestrator
// substitutes sentinel values before the result reaches a caller.
type ExtractResult struct {
	// Title is the article title, from social-preview metadata or the
	// document title element.
	Title string

	// Body is the whitespace-normalized article text with decorative
	// markup (scripts, ads, empty inline elements) removed.
	Body string
}

// Extractor recovers the article title and body from decoded HTML.
// Implementations range from the publisher selector catalog to generic
// readability engines.
type Extractor interface {
	// Extract processes decoded HTML and returns the article content.
	Extract(html string) (*ExtractResult, error)
}
