package extract

import (
	"regexp"
	"sort"
	"strings"

	"github.com/Tejass17x/fake-news-detector/internal/model"
)

// BiasAnalyzer counts weighted bias-lexicon hits in the article text.
// Phrases that strongly correlate with manipulative framing carry more
// weight than generic emotional vocabulary.
type BiasAnalyzer struct {
	phrases  map[string]float64
	patterns []weightedPattern
}

type weightedPattern struct {
	re     *regexp.Regexp
	label  string
	weight float64
}

// Loaded phrases and their weights. Multi-word phrases are matched as
// substrings; single emotional words match whole tokens.
var biasPhrases = map[string]float64{
	"you won't believe":           1.5,
	"doctors hate this":           1.5,
	"they don't want you to know": 1.5,
	"mainstream media":            1.0,
	"fake news":                   1.0,
	"conspiracy":                  1.0,
	"breaking exclusive":          1.0,
	"wake up":                     0.5,
	"shocking":                    1.0,
	"unbelievable":                0.5,
	"outrageous":                  0.5,
	"disgraceful":                 0.5,
	"devastating":                 0.5,
	"alarming":                    0.5,
	"terrifying":                  0.5,
}

// Absolute statements leave no room for nuance; each pattern counts once.
var absolutePatterns = []struct {
	expr  string
	label string
}{
	{`\ball .{1,20} are\b`, "absolute: all ... are"},
	{`\bevery .{1,20} is\b`, "absolute: every ... is"},
	{`\bnever\b`, "absolute: never"},
	{`\balways\b`, "absolute: always"},
}

// NewBiasAnalyzer compiles the absolute-statement patterns once.
func NewBiasAnalyzer() *BiasAnalyzer {
	a := &BiasAnalyzer{phrases: biasPhrases}
	for _, p := range absolutePatterns {
		a.patterns = append(a.patterns, weightedPattern{
			re:     regexp.MustCompile(p.expr),
			label:  p.label,
			weight: 0.25,
		})
	}
	return a
}

// Analyze counts lexicon hits. A nil result means there was no text.
func (a *BiasAnalyzer) Analyze(text string) *model.BiasMeasurement {
	words := len(strings.Fields(text))
	if words == 0 {
		return nil
	}

	lower := strings.ToLower(text)
	m := &model.BiasMeasurement{WordCount: words}

	// Iterate phrases in a stable order so evidence output is deterministic.
	for _, phrase := range sortedPhrases() {
		weight := a.phrases[phrase]
		if strings.Contains(lower, phrase) {
			m.Hits = append(m.Hits, model.BiasHit{Phrase: phrase, Weight: weight})
			m.WeightedHits += weight
		}
	}

	for _, p := range a.patterns {
		if p.re.MatchString(lower) {
			m.Hits = append(m.Hits, model.BiasHit{Phrase: p.label, Weight: p.weight})
			m.WeightedHits += p.weight
		}
	}

	return m
}

var phraseOrder []string

func init() {
	for phrase := range biasPhrases {
		phraseOrder = append(phraseOrder, phrase)
	}
	sort.Strings(phraseOrder)
}

func sortedPhrases() []string {
	return phraseOrder
}
