package model

import "time"

// ArticleMeta is opaque pass-through metadata attached to a result.
type ArticleMeta struct {
	Title      string    `json:"title,omitempty"`
	URL        string    `json:"url,omitempty"`
	Domain     string    `json:"domain,omitempty"`
	WordCount  int       `json:"word_count,omitempty"`
	AnalyzedAt time.Time `json:"analyzed_at"`
}

// Commentary is optional AI-generated advisory text. It is produced after
// scoring and never feeds back into the score.
type Commentary struct {
	Provider string `json:"provider"`
	Model    string `json:"model"`
	Text     string `json:"text"`
}

// AnalysisResult is the complete outcome of one credibility analysis.
// Created once by the engine, immutable thereafter, owned by the caller.
type AnalysisResult struct {
	OverallScore    float64          `json:"overall_credibility_score"`
	Level           CredibilityLevel `json:"credibility_level"`
	Confidence      float64          `json:"confidence"`
	Breakdown       []SignalScore    `json:"signal_breakdown"`
	Flags           []Flag           `json:"warning_flags"`
	Recommendations []string         `json:"recommendations,omitempty"`
	Commentary      *Commentary      `json:"ai_commentary,omitempty"`
	Meta            ArticleMeta      `json:"metadata"`
}

// WarningCount returns the number of warning-kind flags.
func (r *AnalysisResult) WarningCount() int {
	n := 0
	for _, f := range r.Flags {
		if f.Kind == FlagWarning {
			n++
		}
	}
	return n
}

// Signal returns the breakdown entry for the named signal, if any.
func (r *AnalysisResult) Signal(name SignalName) (SignalScore, bool) {
	for _, s := range r.Breakdown {
		if s.Name == name {
			return s, true
		}
	}
	return SignalScore{}, false
}
