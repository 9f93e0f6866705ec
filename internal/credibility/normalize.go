package credibility

import (
	"fmt"
	"math"

	"github.com/Tejass17x/fake-news-detector/internal/model"
)

// Normalization maps each extractor's raw domain onto a common [0,1] scale
// with fixed polarity: 1 means more credible. A nil measurement always
// normalizes to an absent signal, never to zero.

// Categorical source reputation scores.
const (
	sourceReliableScore   = 0.9
	sourceMixedScore      = 0.5
	sourceUnreliableScore = 0.15
)

// Per-issue penalty for content-quality heuristics, subtracted from 1.0.
const contentIssuePenalty = 0.15

// How steeply |polarity| beyond the configured threshold erodes objectivity.
const polarityPenaltyScale = 0.5

// Bias density scale: score = 1 - min(1, biasDensityScale * weighted hits
// per 100 words).
const biasDensityScale = 0.2

// Issue codes attached to signals by the normalizer. The flag generator maps
// these one-to-one onto warning flags so callers can see which heuristic
// fired, not just the aggregate penalty.
const (
	IssueClickbait        = "clickbait-headline"
	IssueCapitalization   = "excessive-capitalization"
	IssuePunctuation      = "excessive-punctuation"
	IssueMissingAuthor    = "missing-author"
	IssueMissingDate      = "missing-publish-date"
	IssueShortArticle     = "very-short-article"
	IssueInsecure         = "insecure-transport"
	IssueSuspiciousDomain = "suspicious-domain"
	IssueUnknownSource    = "unknown-source"
	IssueSubjective       = "highly-subjective"
	IssueBiasLanguage     = "high-bias-language"
)

// Content-issue evaluation order, fixed so flag output is deterministic.
var contentIssueOrder = []string{
	IssueClickbait,
	IssueCapitalization,
	IssuePunctuation,
	IssueMissingAuthor,
	IssueMissingDate,
	IssueShortArticle,
}

// Thresholds for the content heuristics.
const (
	capsRatioLimit  = 0.10
	punctRatioLimit = 0.02
	minWordCount    = 100
)

// Subjectivity above this marks the article as highly subjective.
const subjectivityLimit = 0.8

// Bias hits above this count mark the language as heavily loaded.
const biasHitLimit = 3

// NormalizeSource maps a categorical reputation onto [0,1].
// Unknown domains produce an absent signal: we have no evidence either way,
// and treating "unknown" as a score would skew the aggregate.
func NormalizeSource(m *model.SourceMeasurement) model.SignalScore {
	if m == nil {
		return model.AbsentSignal(model.SignalSource, "no URL provided")
	}

	var issues []string
	if !m.IsHTTPS {
		issues = append(issues, IssueInsecure)
	}
	if len(m.SuspiciousKeywords) > 0 {
		issues = append(issues, IssueSuspiciousDomain)
	}

	var score float64
	switch m.Reputation {
	case model.ReputationReliable:
		score = sourceReliableScore
	case model.ReputationMixed:
		score = sourceMixedScore
	case model.ReputationUnreliable:
		score = sourceUnreliableScore
	default:
		s := model.AbsentSignal(model.SignalSource,
			fmt.Sprintf("domain %s not in any source list", m.Domain))
		s.Issues = append(issues, IssueUnknownSource)
		return s
	}

	s := model.PresentSignal(model.SignalSource, score,
		fmt.Sprintf("domain %s rated %s", m.Domain, m.Reputation))
	s.Issues = issues
	return s
}

// NormalizeContent subtracts a fixed penalty per detected quality issue
// from 1.0, floored at 0.
func NormalizeContent(m *model.ContentMeasurement) model.SignalScore {
	if m == nil {
		return model.AbsentSignal(model.SignalContent, "no article text available")
	}

	detected := map[string]bool{
		IssueClickbait:      len(m.ClickbaitHits) > 0,
		IssueCapitalization: m.CapsRatio > capsRatioLimit,
		IssuePunctuation:    m.PunctRatio > punctRatioLimit,
		IssueMissingAuthor:  !m.HasAuthor,
		IssueMissingDate:    !m.HasPublishDate,
		IssueShortArticle:   m.WordCount < minWordCount,
	}

	var issues []string
	for _, code := range contentIssueOrder {
		if detected[code] {
			issues = append(issues, code)
		}
	}

	score := clamp01(1.0 - contentIssuePenalty*float64(len(issues)))

	s := model.PresentSignal(model.SignalContent, score,
		fmt.Sprintf("%d words, %d quality issues", m.WordCount, len(issues)))
	for _, hit := range m.ClickbaitHits {
		s.Evidence = append(s.Evidence, "clickbait pattern: "+hit)
	}
	s.Issues = issues
	return s
}

// NormalizeSentiment scores objectivity (1 - subjectivity) and penalizes
// polarity magnitude beyond the configured threshold: strongly emotional
// language reduces credibility even when nominally objective.
func NormalizeSentiment(m *model.SentimentMeasurement, polarityThreshold float64) model.SignalScore {
	if m == nil {
		return model.AbsentSignal(model.SignalSentiment, "sentiment analysis unavailable")
	}

	subjectivity := clamp01(m.Subjectivity)
	score := 1.0 - subjectivity

	magnitude := math.Abs(m.Polarity)
	if magnitude > polarityThreshold {
		score -= (magnitude - polarityThreshold) * polarityPenaltyScale
	}
	score = clamp01(score)

	s := model.PresentSignal(model.SignalSentiment, score,
		fmt.Sprintf("%s tone, polarity %.2f, subjectivity %.2f", m.Sentiment, m.Polarity, subjectivity))
	if subjectivity > subjectivityLimit {
		s.Issues = append(s.Issues, IssueSubjective)
	}
	return s
}

// NormalizeCrossRef scores the agreement ratio among checked sources.
// Zero sources checked means the search produced no evidence at all, which
// is an absent signal, not zero consensus.
func NormalizeCrossRef(m *model.CrossRefMeasurement) model.SignalScore {
	if m == nil || m.SourcesChecked == 0 {
		return model.AbsentSignal(model.SignalCrossReference, "no cross-reference data")
	}

	ratio := clamp01(float64(m.Corroborating) / float64(m.SourcesChecked))

	s := model.PresentSignal(model.SignalCrossReference, ratio,
		fmt.Sprintf("%d of %d sources corroborate (%d distinct outlets)",
			m.Corroborating, m.SourcesChecked, m.DistinctSources))
	s.SourcesChecked = m.SourcesChecked
	s.Corroborating = m.Corroborating
	s.DistinctSources = m.DistinctSources
	return s
}

// NormalizeBias scores inversely to bias-lexicon hit density, so a long
// article with one loaded phrase rates better than a short one saturated
// with them.
func NormalizeBias(m *model.BiasMeasurement) model.SignalScore {
	if m == nil {
		return model.AbsentSignal(model.SignalBias, "no article text available")
	}

	words := m.WordCount
	if words < 1 {
		words = 1
	}
	density := m.WeightedHits / (float64(words) / 100.0)
	score := 1.0 - math.Min(1.0, biasDensityScale*density)

	s := model.PresentSignal(model.SignalBias, clamp01(score),
		fmt.Sprintf("%d bias indicators over %d words", len(m.Hits), m.WordCount))
	for _, hit := range m.Hits {
		s.Evidence = append(s.Evidence, "bias indicator: "+hit.Phrase)
	}
	if len(m.Hits) > biasHitLimit {
		s.Issues = append(s.Issues, IssueBiasLanguage)
	}
	return s
}

// NormalizeAll converts a full measurement bundle into the ordered signal set
// consumed by the aggregator.
func NormalizeAll(m model.Measurements, polarityThreshold float64) []model.SignalScore {
	return []model.SignalScore{
		NormalizeSource(m.Source),
		NormalizeContent(m.Content),
		NormalizeCrossRef(m.CrossRef),
		NormalizeBias(m.Bias),
		NormalizeSentiment(m.Sentiment, polarityThreshold),
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
