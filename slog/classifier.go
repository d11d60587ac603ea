package slog

import (
	"log/slog"
	"time"
	"unicode/utf8"

	"github.com/gomhan/baitcheck"
)

// Ensure LoggingClassifier implements baitcheck.Classifier.
var _ baitcheck.Classifier = (*LoggingClassifier)(nil)

// LoggingClassifier wraps a Classifier with debug logging.
type LoggingClassifier struct {
	next   baitcheck.Classifier
	logger *slog.Logger
}

// NewLoggingClassifier creates a new LoggingClassifier.
func NewLoggingClassifier(next baitcheck.Classifier, logger *slog.Logger) *LoggingClassifier {
	return &LoggingClassifier{next: next, logger: logger}
}

// Predict delegates to the wrapped classifier and logs the operation.
// The text itself is not logged, only its length.
func (c *LoggingClassifier) Predict(text string) (pred baitcheck.Prediction, err error) {
	defer func(begin time.Time) {
		c.logger.Info("prediction",
			"chars", utf8.RuneCountInString(text),
			"label", pred.Label,
			"clickbait", pred.Clickbait,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return c.next.Predict(text)
}
