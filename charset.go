package baitcheck

// Encoding identifies how a fetched byte stream was decoded into text.
type Encoding string

// Decoding outcomes, from least to most invasive.
const (
	// EncodingDeclared means the declared (or sniffed) charset was used
	// as-is.
	EncodingDeclared Encoding = "declared"

	// EncodingOverride means a legacy-encoding override re-decoded the
	// bytes and every sequence mapped cleanly.
	EncodingOverride Encoding = "euckr_override"

	// EncodingReplaced means the override applied but some byte
	// sequences could not be mapped and were substituted with the
	// replacement character.
	EncodingReplaced Encoding = "replacement_applied"
)

// DecodedDocument is the decoded character stream of a fetched page,
// ready for markup parsing. It is owned exclusively by the extraction
// call that produced it.
type DecodedDocument struct {
	Text     string
	Encoding Encoding
}

// Resolver decides the correct character decoding for fetched bytes.
// Resolution never fails: unmappable input degrades to replacement
// characters rather than an error.
type Resolver interface {
	Resolve(raw []byte, contentType, url string) *DecodedDocument
}
