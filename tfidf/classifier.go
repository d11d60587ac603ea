// Package tfidf implements the clickbait classifier: a TF-IDF vectorizer
// paired with a logistic-regression model, both loaded once from a JSON
// artifact exported by the training pipeline and shared read-only across
// all predictions.
package tfidf

import (
	"encoding/json"
	"math"
	"os"
	"strings"
	"unicode"

	"github.com/gomhan/baitcheck"
	"gonum.org/v1/gonum/floats"
)

// Ensure Classifier implements baitcheck.Classifier at compile time.
var _ baitcheck.Classifier = (*Classifier)(nil)

// Model is the serialized form of the trained vectorizer and classifier.
type Model struct {
	// Vocabulary maps a term to its index in the feature vector.
	Vocabulary map[string]int `json:"vocabulary"`

	// IDF holds the inverse document frequency weight per feature index.
	IDF []float64 `json:"idf"`

	// Coefficients are the logistic-regression weights per feature,
	// oriented toward the second entry of Classes.
	Coefficients []float64 `json:"coefficients"`

	// Intercept is the logistic-regression bias term.
	Intercept float64 `json:"intercept"`

	// Classes lists the class labels in model order.
	Classes []int `json:"classes"`
}

// validate checks the artifact's internal consistency.
func (m *Model) validate() error {
	if len(m.Vocabulary) == 0 {
		return baitcheck.Errorf(baitcheck.EINVALID, "model vocabulary is empty")
	}
	if len(m.IDF) != len(m.Vocabulary) {
		return baitcheck.Errorf(baitcheck.EINVALID,
			"model idf length %d does not match vocabulary size %d", len(m.IDF), len(m.Vocabulary))
	}
	if len(m.Coefficients) != len(m.Vocabulary) {
		return baitcheck.Errorf(baitcheck.EINVALID,
			"model coefficient length %d does not match vocabulary size %d", len(m.Coefficients), len(m.Vocabulary))
	}
	if len(m.Classes) != 2 {
		return baitcheck.Errorf(baitcheck.EINVALID, "model must be binary, got %d classes", len(m.Classes))
	}
	for _, c := range m.Classes {
		if c == baitcheck.LabelClickbait {
			return nil
		}
	}
	return baitcheck.Errorf(baitcheck.EINVALID, "model classes %v lack the clickbait label", m.Classes)
}

// Classifier predicts clickbait probability for news text.
// Safe for concurrent use: all state is read-only after construction.
type Classifier struct {
	model Model
}

// New creates a Classifier from an in-memory model.
func New(model Model) (*Classifier, error) {
	if err := model.validate(); err != nil {
		return nil, err
	}
	return &Classifier{model: model}, nil
}

// Load reads a model artifact from disk. Meant to be called once at
// process start.
func Load(path string) (*Classifier, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, baitcheck.Errorf(baitcheck.ENOTFOUND, "reading model %s: %v", path, err)
	}

	var model Model
	if err := json.Unmarshal(data, &model); err != nil {
		return nil, baitcheck.Errorf(baitcheck.EINVALID, "parsing model %s: %v", path, err)
	}
	return New(model)
}

// Predict vectorizes the text and returns the predicted label with its
// clickbait probability.
func (c *Classifier) Predict(text string) (baitcheck.Prediction, error) {
	if strings.TrimSpace(text) == "" {
		return baitcheck.Prediction{}, baitcheck.Errorf(baitcheck.EINVALID, "empty text")
	}

	vec := c.Transform(text)

	// The decision score is oriented toward Classes[1].
	score := floats.Dot(c.model.Coefficients, vec) + c.model.Intercept
	positive := sigmoid(score)

	probs := map[int]float64{
		c.model.Classes[0]: 1 - positive,
		c.model.Classes[1]: positive,
	}

	label := c.model.Classes[0]
	if positive >= 0.5 {
		label = c.model.Classes[1]
	}

	return baitcheck.Prediction{
		Label:     label,
		Clickbait: probs[baitcheck.LabelClickbait],
	}, nil
}

// Transform converts text into an L2-normalized TF-IDF feature vector.
func (c *Classifier) Transform(text string) []float64 {
	vec := make([]float64, len(c.model.IDF))
	for _, token := range tokenize(text) {
		idx, ok := c.model.Vocabulary[token]
		if !ok {
			continue
		}
		vec[idx] += c.model.IDF[idx]
	}

	if norm := floats.Norm(vec, 2); norm > 0 {
		floats.Scale(1/norm, vec)
	}
	return vec
}

// tokenize lowercases and splits on non-word runes, dropping single-rune
// tokens, matching the vectorizer's training-time token pattern.
func tokenize(text string) []string {
	words := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r) && r != '_'
	})

	tokens := words[:0]
	for _, w := range words {
		if len([]rune(w)) >= 2 {
			tokens = append(tokens, w)
		}
	}
	return tokens
}

func sigmoid(x float64) float64 {
	return 1 / (1 + math.Exp(-x))
}
