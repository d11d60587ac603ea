package pipeline_test

import (
	"context"
	"testing"

	"github.com/gomhan/baitcheck"
	"github.com/gomhan/baitcheck/mock"
	"github.com/gomhan/baitcheck/pipeline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubExtractor struct {
	article *baitcheck.Article
	err     error
}

func (s *stubExtractor) ExtractInfo(ctx context.Context, url string) (*baitcheck.Article, error) {
	return s.article, s.err
}

func TestAnalyzer_AnalyzeText(t *testing.T) {
	t.Parallel()

	newAnalyzer := func(captured *string) *pipeline.Analyzer {
		classifier := &mock.Classifier{
			PredictFn: func(text string) (baitcheck.Prediction, error) {
				*captured = text
				return baitcheck.Prediction{Label: baitcheck.LabelClickbait, Clickbait: 0.8}, nil
			},
		}
		return pipeline.NewAnalyzer(&stubExtractor{}, classifier)
	}

	t.Run("title only", func(t *testing.T) {
		t.Parallel()

		var captured string
		analysis, err := newAnalyzer(&captured).AnalyzeText(" 충격적인 제목 ", "")
		require.NoError(t, err)
		assert.Equal(t, baitcheck.ModeTitleOnly, analysis.Mode)
		assert.Equal(t, "충격적인 제목", captured)
		assert.Nil(t, analysis.Article)
	})

	t.Run("body only", func(t *testing.T) {
		t.Parallel()

		var captured string
		analysis, err := newAnalyzer(&captured).AnalyzeText("", "본문 내용")
		require.NoError(t, err)
		assert.Equal(t, baitcheck.ModeBodyOnly, analysis.Mode)
		assert.Equal(t, "본문 내용", captured)
	})

	t.Run("title and body are joined with a space", func(t *testing.T) {
		t.Parallel()

		var captured string
		analysis, err := newAnalyzer(&captured).AnalyzeText("제목", "본문")
		require.NoError(t, err)
		assert.Equal(t, baitcheck.ModeTitleBody, analysis.Mode)
		assert.Equal(t, "제목 본문", captured)
	})

	t.Run("both empty is invalid", func(t *testing.T) {
		t.Parallel()

		var captured string
		_, err := newAnalyzer(&captured).AnalyzeText("  ", "")
		require.Error(t, err)
		assert.Equal(t, baitcheck.EINVALID, baitcheck.ErrorCode(err))
	})
}

func TestAnalyzer_AnalyzeURL(t *testing.T) {
	t.Parallel()

	t.Run("classifies the joined article text", func(t *testing.T) {
		t.Parallel()

		article := &baitcheck.Article{Title: "제목", Body: "본문", Source: "dt"}
		var captured string
		classifier := &mock.Classifier{
			PredictFn: func(text string) (baitcheck.Prediction, error) {
				captured = text
				return baitcheck.Prediction{Label: baitcheck.LabelNormal, Clickbait: 0.2}, nil
			},
		}

		a := pipeline.NewAnalyzer(&stubExtractor{article: article}, classifier)
		analysis, err := a.AnalyzeURL(context.Background(), "https://www.dt.co.kr/a/1")
		require.NoError(t, err)
		assert.Equal(t, baitcheck.ModeURL, analysis.Mode)
		assert.Equal(t, "제목 본문 dt", captured)
		assert.Same(t, article, analysis.Article)
	})

	t.Run("fetch failure passes through as a network error", func(t *testing.T) {
		t.Parallel()

		ext := &stubExtractor{
			article: &baitcheck.Article{},
			err:     baitcheck.Errorf(baitcheck.ENETWORK, "HTTP 404"),
		}
		a := pipeline.NewAnalyzer(ext, &mock.Classifier{})

		_, err := a.AnalyzeURL(context.Background(), "https://www.dt.co.kr/a/404")
		require.Error(t, err)
		assert.Equal(t, baitcheck.ENETWORK, baitcheck.ErrorCode(err))
	})

	t.Run("sentinel-only article is reported as a content miss", func(t *testing.T) {
		t.Parallel()

		ext := &stubExtractor{
			article: &baitcheck.Article{
				Title:  baitcheck.NoTitle,
				Body:   baitcheck.NoBody,
				Source: "dt",
			},
		}
		a := pipeline.NewAnalyzer(ext, &mock.Classifier{})

		_, err := a.AnalyzeURL(context.Background(), "https://www.dt.co.kr/a/1")
		require.Error(t, err)
		assert.Equal(t, baitcheck.ENOTFOUND, baitcheck.ErrorCode(err),
			"content miss must be distinguishable from a fetch failure")
	})
}
