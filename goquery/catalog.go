package goquery

// Match is the kind of structural rule a Selector applies.
type Match int

// Matcher kinds.
const (
	// MatchTag matches any element with the tag name alone.
	MatchTag Match = iota

	// MatchClass matches elements carrying a CSS class.
	MatchClass

	// MatchID matches the element with a DOM id.
	MatchID

	// MatchAttr matches elements with an attribute set to a value.
	MatchAttr
)

// Selector is one body-extraction rule: a target tag plus a matcher.
// Adding support for a new publisher template means adding a row to the
// catalog, not new code.
type Selector struct {
	Tag   string
	Kind  Match
	Value string // class name, id, or attr in "key=value" form
}

// CSS renders the selector in goquery's CSS syntax.
func (s Selector) CSS() string {
	switch s.Kind {
	case MatchClass:
		return s.Tag + "." + s.Value
	case MatchID:
		return s.Tag + "#" + s.Value
	case MatchAttr:
		key, val, _ := cutAttr(s.Value)
		return s.Tag + `[` + key + `="` + val + `"]`
	default:
		return s.Tag
	}
}

func cutAttr(v string) (key, val string, ok bool) {
	for i := 0; i < len(v); i++ {
		if v[i] == '=' {
			return v[:i], v[i+1:], true
		}
	}
	return v, "", false
}

// DefaultCatalog is the ordered list of known article-body containers,
// most specific publisher templates first, ending with generic
// content-area markers. Order is a priority invariant: earlier rows are
// tried before generic ones.
var DefaultCatalog = []Selector{
	{Tag: "div", Kind: MatchClass, Value: "article_view"},
	{Tag: "div", Kind: MatchClass, Value: "article_head_body"},
	{Tag: "div", Kind: MatchID, Value: "article_content"},
	{Tag: "div", Kind: MatchClass, Value: "article_body_content"}, // Naver News
	{Tag: "div", Kind: MatchID, Value: "harmonyContainer"},        // Daum News
	{Tag: "div", Kind: MatchClass, Value: "article-view-content-wrapper"},
	{Tag: "div", Kind: MatchClass, Value: "news_content"},
	{Tag: "div", Kind: MatchClass, Value: "article_content"},
	{Tag: "div", Kind: MatchClass, Value: "body_content"},
	{Tag: "div", Kind: MatchClass, Value: "entry-content"},
	{Tag: "section", Kind: MatchClass, Value: "article-body"},
	{Tag: "div", Kind: MatchClass, Value: "view_page_text"},
	{Tag: "div", Kind: MatchAttr, Value: "itemprop=articleBody"},
	{Tag: "article", Kind: MatchTag},
	{Tag: "div", Kind: MatchID, Value: "articleBody"},
	{Tag: "div", Kind: MatchClass, Value: "contents_area"},
	{Tag: "div", Kind: MatchClass, Value: "news_view"},
	{Tag: "div", Kind: MatchClass, Value: "view_txt"},
	{Tag: "div", Kind: MatchClass, Value: "txt_area"},
	{Tag: "div", Kind: MatchClass, Value: "article_text"},
	{Tag: "div", Kind: MatchClass, Value: "news_content_area"},
	{Tag: "div", Kind: MatchClass, Value: "cont_art"},
}
