package baitcheck

// Labels emitted by the classifier.
const (
	LabelNormal    = 0
	LabelClickbait = 1
)

// Presentation bands for the clickbait probability. Empirically tuned
// values carried over from the trained model's evaluation; override with
// care.
var (
	// StrongClickbaitBand is the probability above which a clickbait
	// verdict is presented without hedging.
	StrongClickbaitBand = 0.70

	// ClearlyNormalBand is the probability below which a normal verdict
	// is presented without hedging.
	ClearlyNormalBand = 0.30
)

// Prediction is the classifier's judgment of a piece of news text.
type Prediction struct {
	// Label is the predicted class: LabelClickbait or LabelNormal.
	Label int

	// Clickbait is the estimated probability, in [0, 1], that the text
	// belongs to the clickbait class.
	Clickbait float64
}

// Band describes how confidently a prediction should be presented.
type Band string

// Presentation bands.
const (
	BandStrongClickbait Band = "strong_clickbait"
	BandWeakClickbait   Band = "weak_clickbait"
	BandClearlyNormal   Band = "clearly_normal"
	BandWeakNormal      Band = "weak_normal"
)

// Band maps the prediction onto a presentation band.
func (p Prediction) Band() Band {
	if p.Label == LabelClickbait {
		if p.Clickbait > StrongClickbaitBand {
			return BandStrongClickbait
		}
		return BandWeakClickbait
	}
	if p.Clickbait < ClearlyNormalBand {
		return BandClearlyNormal
	}
	return BandWeakNormal
}

// Classifier predicts whether news text is clickbait. The underlying
// model and vectorizer are loaded once at process start and shared
// read-only across calls.
type Classifier interface {
	// Predict vectorizes the text and returns the predicted label with
	// its clickbait probability.
	Predict(text string) (Prediction, error)
}

// InputMode identifies which parts of an article were available to the
// classifier. Richer input yields more reliable predictions.
type InputMode string

// Input modes, in increasing order of expected accuracy.
const (
	ModeTitleOnly InputMode = "title"
	ModeBodyOnly  InputMode = "body"
	ModeTitleBody InputMode = "title+body"
	ModeURL       InputMode = "url"
)

// AccuracyHint returns the user-facing note about how reliable a
// prediction from this input mode is.
func (m InputMode) AccuracyHint() string {
	switch m {
	case ModeTitleOnly:
		return "accuracy: low (title only)"
	case ModeBodyOnly:
		return "accuracy: medium (body only)"
	case ModeTitleBody:
		return "accuracy: high (title + body)"
	case ModeURL:
		return "accuracy: high (title + body + source)"
	default:
		return "accuracy: unknown"
	}
}
