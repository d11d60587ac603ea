package baitcheck

import "strings"

// Sentinel values returned when an extractor searched for a field but
// found nothing usable. They are distinct from the empty string, which
// signals that extraction never ran (e.g., the fetch itself failed).
const (
	NoTitle       = "no title found"
	NoBody        = "no body found"
	UnknownSource = "unknown source"
)

// Article is the result of extracting a news article from a URL.
// After orchestration every field is non-empty: a missing field carries
// its sentinel value instead.
type Article struct {
	Title  string
	Body   string
	Source string
}

// Text returns the single string handed to the classifier: title, body,
// and source joined with single spaces.
func (a *Article) Text() string {
	return a.Title + " " + a.Body + " " + a.Source
}

// Empty reports whether the article carries no fields at all, the marker
// for a total fetch failure.
func (a *Article) Empty() bool {
	return a.Title == "" && a.Body == "" && a.Source == ""
}

// HasContent reports whether at least one of title or body holds genuine
// extracted content rather than a sentinel.
func (a *Article) HasContent() bool {
	return (a.Title != "" && a.Title != NoTitle) ||
		(a.Body != "" && a.Body != NoBody)
}

// CollapseWhitespace replaces every run of whitespace with a single space
// and trims the ends. It is idempotent: applying it to an already
// normalized string returns the string unchanged.
func CollapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
