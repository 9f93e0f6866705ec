package extract

import (
	"strings"

	"github.com/Tejass17x/fake-news-detector/internal/model"
)

// SentimentAnalyzer estimates polarity and subjectivity from small opinion
// lexicons. Deliberately simple: the engine only needs a [-1,1] polarity and
// a [0,1] subjectivity, and a local lexicon keeps the extractor free of
// network dependencies.
type SentimentAnalyzer struct {
	positive   map[string]bool
	negative   map[string]bool
	subjective map[string]bool
}

var positiveWords = []string{
	"good", "great", "excellent", "positive", "success", "successful",
	"win", "benefit", "improve", "improved", "growth", "strong",
	"progress", "breakthrough", "effective", "praise", "hope",
}

var negativeWords = []string{
	"bad", "terrible", "awful", "negative", "failure", "fail", "crisis",
	"disaster", "collapse", "threat", "fear", "loss", "weak", "decline",
	"scandal", "corrupt", "danger", "dangerous", "attack",
}

// Words that signal opinion rather than reporting, counted toward
// subjectivity regardless of polarity.
var subjectiveWords = []string{
	"believe", "think", "feel", "seems", "apparently", "obviously",
	"clearly", "certainly", "definitely", "absolutely", "totally",
	"completely", "outrageous", "incredible", "unbelievable", "amazing",
	"horrible", "wonderful", "must", "should", "never", "always",
}

// NewSentimentAnalyzer builds the lexicon sets once.
func NewSentimentAnalyzer() *SentimentAnalyzer {
	return &SentimentAnalyzer{
		positive:   toSet(positiveWords),
		negative:   toSet(negativeWords),
		subjective: toSet(subjectiveWords),
	}
}

// Analyze measures tone. A nil result means there was no text.
func (a *SentimentAnalyzer) Analyze(text string) *model.SentimentMeasurement {
	words := tokenize(text)
	if len(words) == 0 {
		return nil
	}

	pos, neg, subj := 0, 0, 0
	for _, w := range words {
		if a.positive[w] {
			pos++
		}
		if a.negative[w] {
			neg++
		}
		if a.subjective[w] {
			subj++
		}
	}

	polarity := 0.0
	if pos+neg > 0 {
		polarity = float64(pos-neg) / float64(pos+neg)
	}

	// Opinion-word density, saturating around one opinion word per eight
	// words of text.
	opinionated := float64(pos + neg + subj)
	subjectivity := opinionated * 8 / float64(len(words))
	if subjectivity > 1 {
		subjectivity = 1
	}

	sentiment := "neutral"
	if polarity > 0.1 {
		sentiment = "positive"
	} else if polarity < -0.1 {
		sentiment = "negative"
	}

	return &model.SentimentMeasurement{
		Polarity:     polarity,
		Subjectivity: subjectivity,
		Sentiment:    sentiment,
	}
}

func tokenize(text string) []string {
	fields := strings.Fields(strings.ToLower(text))
	words := make([]string, 0, len(fields))
	for _, f := range fields {
		f = strings.Trim(f, `.,!?;:"'()[]{}`)
		if f != "" {
			words = append(words, f)
		}
	}
	return words
}

func toSet(words []string) map[string]bool {
	set := make(map[string]bool, len(words))
	for _, w := range words {
		set[w] = true
	}
	return set
}
