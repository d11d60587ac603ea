package pipeline

import (
	"context"
	"strings"

	"github.com/gomhan/baitcheck"
)

// InfoExtractor extracts articles from URLs. Satisfied by Orchestrator.
type InfoExtractor interface {
	ExtractInfo(ctx context.Context, url string) (*baitcheck.Article, error)
}

// Analysis is one classification outcome, together with the extracted
// article when the input was a URL.
type Analysis struct {
	Mode       baitcheck.InputMode
	Article    *baitcheck.Article
	Prediction baitcheck.Prediction
}

// Analyzer combines the extraction pipeline with the classifier.
type Analyzer struct {
	extractor  InfoExtractor
	classifier baitcheck.Classifier
}

// NewAnalyzer creates an Analyzer. The classifier is expected to be the
// process-wide instance loaded at startup.
func NewAnalyzer(extractor InfoExtractor, classifier baitcheck.Classifier) *Analyzer {
	return &Analyzer{
		extractor:  extractor,
		classifier: classifier,
	}
}

// AnalyzeText classifies raw title and/or body text supplied directly by
// the caller, bypassing extraction.
func (a *Analyzer) AnalyzeText(title, body string) (*Analysis, error) {
	title = strings.TrimSpace(title)
	body = strings.TrimSpace(body)

	var mode baitcheck.InputMode
	var text string
	switch {
	case title != "" && body != "":
		mode, text = baitcheck.ModeTitleBody, title+" "+body
	case title != "":
		mode, text = baitcheck.ModeTitleOnly, title
	case body != "":
		mode, text = baitcheck.ModeBodyOnly, body
	default:
		return nil, baitcheck.Errorf(baitcheck.EINVALID, "title or body required")
	}

	pred, err := a.classifier.Predict(text)
	if err != nil {
		return nil, err
	}
	return &Analysis{Mode: mode, Prediction: pred}, nil
}

// AnalyzeURL extracts the article behind the URL and classifies the
// joined title, body, and source text.
//
// Fetch failures surface as ENETWORK errors. A page that fetched but
// yielded only sentinel content surfaces as ENOTFOUND, so the caller can
// suggest a different input mode instead of a retry.
func (a *Analyzer) AnalyzeURL(ctx context.Context, url string) (*Analysis, error) {
	article, err := a.extractor.ExtractInfo(ctx, url)
	if err != nil {
		return nil, err
	}
	if !article.HasContent() {
		return nil, baitcheck.Errorf(baitcheck.ENOTFOUND, "no usable title or body at %s", url)
	}

	pred, err := a.classifier.Predict(article.Text())
	if err != nil {
		return nil, err
	}
	return &Analysis{Mode: baitcheck.ModeURL, Article: article, Prediction: pred}, nil
}
