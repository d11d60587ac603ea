// Package charset decides the correct character decoding for fetched
// article bytes. Many older Korean publishers serve byte streams that do
// not match their declared charset, so a per-domain override table can
// force a legacy encoding with best-effort replacement of unmappable
// sequences.
package charset

import (
	"bytes"
	"io"
	"net/url"
	"strings"

	"github.com/gomhan/baitcheck"
	"github.com/saintfish/chardet"
	xcharset "golang.org/x/net/html/charset"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/transform"
)

// Ensure Resolver implements baitcheck.Resolver at compile time.
var _ baitcheck.Resolver = (*Resolver)(nil)

// Resolver decodes raw response bytes into text, applying legacy-encoding
// overrides for known publishers.
type Resolver struct {
	// forced maps a host suffix to the encoding its pages must be
	// decoded with, regardless of what the server declares.
	forced map[string]encoding.Encoding

	detector *chardet.Detector
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithForcedEncoding registers a host suffix whose pages are always
// re-decoded with the given encoding.
func WithForcedEncoding(hostSuffix string, enc encoding.Encoding) Option {
	return func(r *Resolver) {
		r.forced[strings.ToLower(hostSuffix)] = enc
	}
}

// NewResolver creates a Resolver seeded with the known legacy-encoding
// publishers. Digital Times (dt.co.kr) declares UTF-8 on some templates
// while serving EUC-KR bytes.
func NewResolver(opts ...Option) *Resolver {
	r := &Resolver{
		forced: map[string]encoding.Encoding{
			"dt.co.kr": korean.EUCKR,
		},
		detector: chardet.NewTextDetector(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve decodes raw bytes using the declared charset, then re-decodes
// with a legacy encoding when the declared charset names EUC-KR or the
// URL's domain appears in the override table. Resolution never fails:
// unmappable bytes under an override are substituted with the replacement
// character.
func (r *Resolver) Resolve(raw []byte, contentType, rawURL string) *baitcheck.DecodedDocument {
	if enc, ok := r.override(contentType, rawURL); ok {
		return decodeForced(raw, enc)
	}
	return &baitcheck.DecodedDocument{
		Text:     r.decodeDeclared(raw, contentType),
		Encoding: baitcheck.EncodingDeclared,
	}
}

// override reports whether the bytes must be re-decoded with a legacy
// encoding, either because the server declared it or because the
// publisher is a known offender.
func (r *Resolver) override(contentType, rawURL string) (encoding.Encoding, bool) {
	if strings.Contains(strings.ToLower(contentType), "charset=euc-kr") {
		return korean.EUCKR, true
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, false
	}
	host := strings.ToLower(u.Hostname())
	for suffix, enc := range r.forced {
		if host == suffix || strings.HasSuffix(host, "."+suffix) {
			return enc, true
		}
	}
	return nil, false
}

// decodeDeclared is the baseline decode: declared content type first,
// then in-page meta charset, then statistical detection.
func (r *Resolver) decodeDeclared(raw []byte, contentType string) string {
	enc, _, certain := xcharset.DetermineEncoding(raw, contentType)
	if !certain {
		if detected := r.detect(raw); detected != nil {
			enc = detected
		}
	}

	reader := transform.NewReader(bytes.NewReader(raw), enc.NewDecoder())
	decoded, err := io.ReadAll(reader)
	if err != nil {
		// Best effort: hand the bytes to the parser as-is.
		return string(raw)
	}
	return string(decoded)
}

// detect sniffs the charset statistically. Returns nil when detection
// fails or names an encoding we cannot look up.
func (r *Resolver) detect(raw []byte) encoding.Encoding {
	result, err := r.detector.DetectBest(raw)
	if err != nil || result == nil {
		return nil
	}
	enc, _ := xcharset.Lookup(result.Charset)
	return enc
}

// decodeForced re-decodes with a legacy encoding, never failing.
// x/text decoders substitute U+FFFD for unmappable sequences, so the
// outcome is distinguished by whether any replacement actually happened.
func decodeForced(raw []byte, enc encoding.Encoding) *baitcheck.DecodedDocument {
	decoded, err := io.ReadAll(transform.NewReader(bytes.NewReader(raw), enc.NewDecoder()))
	if err != nil {
		return &baitcheck.DecodedDocument{
			Text:     string(raw),
			Encoding: baitcheck.EncodingDeclared,
		}
	}

	out := baitcheck.EncodingOverride
	if bytes.ContainsRune(decoded, '�') {
		out = baitcheck.EncodingReplaced
	}
	return &baitcheck.DecodedDocument{
		Text:     string(decoded),
		Encoding: out,
	}
}
