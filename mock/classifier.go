package mock

import "github.com/gomhan/baitcheck"

var _ baitcheck.Classifier = (*Classifier)(nil)

// Classifier is a mock implementation of baitcheck.Classifier.
type Classifier struct {
	PredictFn func(text string) (baitcheck.Prediction, error)
}

func (c *Classifier) Predict(text string) (baitcheck.Prediction, error) {
	return c.PredictFn(text)
}
