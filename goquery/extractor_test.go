package goquery_test

import (
	"strings"
	"testing"

	"github.com/gomhan/baitcheck"
	bgoquery "github.com/gomhan/baitcheck/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// longText returns n words of filler, comfortably above any threshold.
func longText(n int) string {
	return strings.TrimSpace(strings.Repeat("다양한 기사 본문 문장이 이어집니다. ", n))
}

func TestExtractor_Title(t *testing.T) {
	t.Parallel()

	e := bgoquery.NewExtractor()

	t.Run("prefers og:title over title element", func(t *testing.T) {
		t.Parallel()

		res, err := e.Extract(`<html><head>
			<meta property="og:title" content=" 충격 단독 보도 ">
			<title>Site Name</title>
		</head><body></body></html>`)
		require.NoError(t, err)
		assert.Equal(t, "충격 단독 보도", res.Title)
	})

	t.Run("falls back to title element", func(t *testing.T) {
		t.Parallel()

		res, err := e.Extract(`<html><head><title> Plain Title </title></head><body></body></html>`)
		require.NoError(t, err)
		assert.Equal(t, "Plain Title", res.Title)
	})

	t.Run("blank og:title content is skipped", func(t *testing.T) {
		t.Parallel()

		res, err := e.Extract(`<html><head>
			<meta property="og:title" content="   ">
			<title>Real Title</title>
		</head><body></body></html>`)
		require.NoError(t, err)
		assert.Equal(t, "Real Title", res.Title)
	})

	t.Run("missing title yields sentinel", func(t *testing.T) {
		t.Parallel()

		res, err := e.Extract(`<html><body><p>text</p></body></html>`)
		require.NoError(t, err)
		assert.Equal(t, baitcheck.NoTitle, res.Title)
	})

	t.Run("empty input is an error", func(t *testing.T) {
		t.Parallel()

		_, err := e.Extract("")
		require.Error(t, err)
		assert.Equal(t, baitcheck.EINVALID, baitcheck.ErrorCode(err))
	})
}

func TestExtractor_Body(t *testing.T) {
	t.Parallel()

	t.Run("extracts from a catalog selector and strips scripts", func(t *testing.T) {
		t.Parallel()

		body := longText(12)
		page := `<html><body>
			<div class="article_view">
				<p>` + body + `</p>
				<script>var ads = "tracking";</script>
			</div>
		</body></html>`

		e := bgoquery.NewExtractor()
		res, err := e.Extract(page)
		require.NoError(t, err)
		assert.Equal(t, baitcheck.CollapseWhitespace(body), res.Body)
		assert.NotContains(t, res.Body, "tracking")
	})

	t.Run("keeps inline links that carry text", func(t *testing.T) {
		t.Parallel()

		page := `<html><body><div class="news_content">
			<p>` + longText(10) + ` 자세한 내용은 <a href="/more">관련 기사</a> 참조.</p>
			<a href="/share"><img src="share.png"></a>
		</div></body></html>`

		e := bgoquery.NewExtractor()
		res, err := e.Extract(page)
		require.NoError(t, err)
		assert.Contains(t, res.Body, "관련 기사")
		assert.NotContains(t, res.Body, "share")
	})

	t.Run("earlier selectors win over later ones", func(t *testing.T) {
		t.Parallel()

		first := longText(10)
		second := longText(10) + " 다른 틀의 본문입니다."
		page := `<html><body>
			<article>` + second + `</article>
			<div class="article_view"><p>` + first + `</p></div>
		</body></html>`

		e := bgoquery.NewExtractor()
		res, err := e.Extract(page)
		require.NoError(t, err)
		assert.Equal(t, baitcheck.CollapseWhitespace(first), res.Body)
	})

	t.Run("whitespace runs collapse to single spaces", func(t *testing.T) {
		t.Parallel()

		page := `<html><body><div class="article_view">
			<p>` + longText(10) + `</p>
			<p>두 번째	문단		입니다.</p>
		</div></body></html>`

		e := bgoquery.NewExtractor()
		res, err := e.Extract(page)
		require.NoError(t, err)
		assert.NotContains(t, res.Body, "  ")
		assert.NotContains(t, res.Body, "\t")
		assert.Contains(t, res.Body, "두 번째 문단 입니다.")
	})

	t.Run("short selector match continues to the paragraph fallback", func(t *testing.T) {
		t.Parallel()

		paras := `<p>` + longText(3) + `</p><p>` + longText(3) + `</p><p>` + longText(3) + `</p>`
		page := `<html><body>
			<div class="article_view">짧은 안내문</div>
			` + paras + `
		</body></html>`

		e := bgoquery.NewExtractor()
		res, err := e.Extract(page)
		require.NoError(t, err)
		assert.NotEqual(t, "짧은 안내문", res.Body)
		assert.Contains(t, res.Body, "다양한 기사 본문")
	})

	t.Run("selector body at exactly the threshold skips the fallback", func(t *testing.T) {
		t.Parallel()

		exact := strings.Repeat("가", 150)
		paras := `<p>` + strings.Repeat("나", 60) + `</p><p>` + strings.Repeat("나", 60) + `</p>`
		page := `<html><body>
			<div class="article_view">` + exact + `</div>
			` + paras + `
		</body></html>`

		e := bgoquery.NewExtractor()
		res, err := e.Extract(page)
		require.NoError(t, err)
		assert.Equal(t, exact, res.Body)
	})

	t.Run("paragraph fallback skips excluded containers", func(t *testing.T) {
		t.Parallel()

		page := `<html><body>
			<p>` + longText(3) + `</p>
			<p>` + longText(3) + `</p>
			<p>` + longText(3) + `</p>
			<div class="copyright"><p>무단 전재 및 재배포 금지. 모든 권리 보유. 저작권 안내문.</p></div>
			<div class="reply"><p>댓글 내용입니다. 이 문단은 본문이 아니므로 제외되어야 합니다.</p></div>
		</body></html>`

		e := bgoquery.NewExtractor()
		res, err := e.Extract(page)
		require.NoError(t, err)
		assert.Contains(t, res.Body, "다양한 기사 본문")
		assert.NotContains(t, res.Body, "무단 전재")
		assert.NotContains(t, res.Body, "댓글")
	})

	t.Run("short paragraphs are ignored by the fallback", func(t *testing.T) {
		t.Parallel()

		page := `<html><body>
			<p>기자 이름</p>
			<p>짧은 문장</p>
		</body></html>`

		e := bgoquery.NewExtractor()
		res, err := e.Extract(page)
		require.NoError(t, err)
		assert.Equal(t, baitcheck.NoBody, res.Body)
	})

	t.Run("nothing usable yields sentinel", func(t *testing.T) {
		t.Parallel()

		e := bgoquery.NewExtractor()
		res, err := e.Extract(`<html><body><nav>menu</nav></body></html>`)
		require.NoError(t, err)
		assert.Equal(t, baitcheck.NoBody, res.Body)
	})

	t.Run("thresholds are overridable", func(t *testing.T) {
		t.Parallel()

		page := `<html><body><div class="article_view">아주 짧은 기사 본문입니다.</div></body></html>`

		e := bgoquery.NewExtractor(bgoquery.WithThresholds(5, 5, 2))
		res, err := e.Extract(page)
		require.NoError(t, err)
		assert.Equal(t, "아주 짧은 기사 본문입니다.", res.Body)
	})
}

func TestSelectorCSS(t *testing.T) {
	t.Parallel()

	tests := []struct {
		sel  bgoquery.Selector
		want string
	}{
		{bgoquery.Selector{Tag: "div", Kind: bgoquery.MatchClass, Value: "article_view"}, "div.article_view"},
		{bgoquery.Selector{Tag: "div", Kind: bgoquery.MatchID, Value: "articleBody"}, "div#articleBody"},
		{bgoquery.Selector{Tag: "div", Kind: bgoquery.MatchAttr, Value: "itemprop=articleBody"}, `div[itemprop="articleBody"]`},
		{bgoquery.Selector{Tag: "article", Kind: bgoquery.MatchTag}, "article"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.want, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.sel.CSS())
		})
	}
}
