package model

// Raw per-dimension measurements produced by the signal extractors.
// These are the typed inputs to the credibility normalizer; a nil measurement
// means the extractor could not run at all (no URL, API unavailable) and
// propagates as an absent signal, never as a zero score.

// Reputation is the categorical rating of a news source domain.
type Reputation string

const (
	ReputationReliable   Reputation = "reliable"
	ReputationMixed      Reputation = "mixed"
	ReputationUnreliable Reputation = "unreliable"
	ReputationUnknown    Reputation = "unknown"
)

// SourceMeasurement describes the article's publishing domain.
type SourceMeasurement struct {
	Domain             string     `json:"domain"`
	Reputation         Reputation `json:"reputation"`
	IsHTTPS            bool       `json:"is_https"`
	SuspiciousKeywords []string   `json:"suspicious_keywords,omitempty"`
}

// ContentMeasurement holds lexical quality heuristics over title and body.
type ContentMeasurement struct {
	WordCount      int      `json:"word_count"`
	SentenceCount  int      `json:"sentence_count"`
	ClickbaitHits  []string `json:"clickbait_hits,omitempty"`
	CapsRatio      float64  `json:"caps_ratio"`
	PunctRatio     float64  `json:"punct_ratio"`
	HasAuthor      bool     `json:"has_author"`
	HasPublishDate bool     `json:"has_publish_date"`
}

// SentimentMeasurement holds polarity in [-1,1] and subjectivity in [0,1].
type SentimentMeasurement struct {
	Polarity     float64 `json:"polarity"`
	Subjectivity float64 `json:"subjectivity"`
	Sentiment    string  `json:"sentiment"` // positive, negative, neutral
}

// RelatedArticle is one hit from the cross-reference search.
type RelatedArticle struct {
	Title       string `json:"title"`
	Source      string `json:"source"`
	URL         string `json:"url"`
	PublishedAt string `json:"published_at,omitempty"`
}

// CrossRefMeasurement summarizes how other outlets cover the same story.
type CrossRefMeasurement struct {
	SourcesChecked  int              `json:"sources_checked"`
	Corroborating   int              `json:"corroborating"`
	DistinctSources int              `json:"distinct_sources"`
	Articles        []RelatedArticle `json:"articles,omitempty"`
}

// BiasHit is one bias-lexicon match with its weight.
type BiasHit struct {
	Phrase string  `json:"phrase"`
	Weight float64 `json:"weight"`
}

// BiasMeasurement holds weighted bias-lexicon hits over the article text.
type BiasMeasurement struct {
	Hits         []BiasHit `json:"hits,omitempty"`
	WeightedHits float64   `json:"weighted_hits"`
	WordCount    int       `json:"word_count"`
}

// Measurements bundles every raw extractor output for one article.
// Any field may be nil when the collaborator could not produce it.
type Measurements struct {
	Source    *SourceMeasurement
	Content   *ContentMeasurement
	Sentiment *SentimentMeasurement
	CrossRef  *CrossRefMeasurement
	Bias      *BiasMeasurement
}
