package baitcheck

import (
	"net/url"
	"strings"
)

// compoundSuffixes are multi-label registry suffixes common among Korean
// publishers. Hosts under one of these take their leftmost label as the
// source name (news.example.co.kr -> "news").
var compoundSuffixes = []string{
	"co.kr",
	"or.kr",
	"go.kr",
	"ne.kr",
	"pe.kr",
}

// simpleSuffixes are single-label suffixes we recognize. Hosts under one
// of these take their second-to-last label (www.example.com -> "example").
var simpleSuffixes = []string{
	"com", "net", "org", "kr", "io", "dev", "ai", "app",
	"info", "biz", "tv", "news", "me", "blog", "cc", "xyz",
}

// ExtractSource derives a human-readable publisher name from an article
// URL. It returns the UnknownSource sentinel when the host does not match
// any known domain suffix or the derived label is blank.
func ExtractSource(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return UnknownSource
	}
	host := strings.ToLower(u.Hostname())
	host = strings.TrimPrefix(host, "www.")
	if host == "" {
		return UnknownSource
	}

	labels := strings.Split(host, ".")

	// A host that is nothing but a registry suffix names no publisher.
	var source string
	switch {
	case hasSuffix(host, compoundSuffixes):
		if len(labels) < 3 {
			return UnknownSource
		}
		source = labels[0]
	case hasSuffix(host, simpleSuffixes):
		if len(labels) < 2 {
			return UnknownSource
		}
		source = labels[len(labels)-2]
	default:
		return UnknownSource
	}

	source = strings.TrimSpace(strings.ReplaceAll(source, "-", ""))
	if source == "" {
		return UnknownSource
	}
	return source
}

func hasSuffix(host string, suffixes []string) bool {
	for _, s := range suffixes {
		if host == s || strings.HasSuffix(host, "."+s) {
			return true
		}
	}
	return false
}
