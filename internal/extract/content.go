package extract

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/Tejass17x/fake-news-detector/internal/model"
)

// ContentAnalyzer computes lexical quality heuristics over an article.
type ContentAnalyzer struct {
	clickbait []*regexp.Regexp
}

// Patterns that mark clickbait headlines.
var clickbaitPatterns = []string{
	`you won'?t believe`,
	`shocking`,
	`this will blow your mind`,
	`doctors hate (this|him|her)`,
	`number \d+ will shock you`,
	`what happened next`,
	`one weird trick`,
}

// NewContentAnalyzer compiles the clickbait patterns once.
func NewContentAnalyzer() *ContentAnalyzer {
	a := &ContentAnalyzer{}
	for _, p := range clickbaitPatterns {
		a.clickbait = append(a.clickbait, regexp.MustCompile(p))
	}
	return a
}

// Analyze measures the article. A nil result means there was no text to
// analyze and the content signal is absent.
func (a *ContentAnalyzer) Analyze(article *Article) *model.ContentMeasurement {
	if article == nil {
		return nil
	}
	text := strings.TrimSpace(article.Text)
	title := strings.TrimSpace(article.Title)
	if text == "" && title == "" {
		return nil
	}

	m := &model.ContentMeasurement{
		WordCount:      len(strings.Fields(text)),
		SentenceCount:  countSentences(text),
		HasAuthor:      article.HasAuthor,
		HasPublishDate: article.HasPublishDate,
	}

	full := strings.ToLower(title + " " + text)
	for _, re := range a.clickbait {
		if hit := re.FindString(full); hit != "" {
			m.ClickbaitHits = append(m.ClickbaitHits, hit)
		}
	}

	m.CapsRatio = characterRatio(text, unicode.IsUpper)
	m.PunctRatio = characterRatio(text, func(r rune) bool {
		return r == '!' || r == '?'
	})

	return m
}

var sentenceTerminators = regexp.MustCompile(`[.!?]+`)

func countSentences(text string) int {
	return len(sentenceTerminators.FindAllString(text, -1))
}

// characterRatio is the fraction of letters in the text matching the
// predicate, over all non-space characters.
func characterRatio(text string, match func(rune) bool) float64 {
	total := 0
	matched := 0
	for _, r := range text {
		if unicode.IsSpace(r) {
			continue
		}
		total++
		if match(r) {
			matched++
		}
	}
	if total == 0 {
		return 0
	}
	return float64(matched) / float64(total)
}
