// Package baitcheck provides a clickbait detector for news articles.
// It fetches an article URL, recovers a clean title, body, and publisher
// name from inconsistent HTML and legacy encodings, and feeds the result
// to a pre-trained statistical classifier.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., http/, goquery/, tfidf/).
package baitcheck
