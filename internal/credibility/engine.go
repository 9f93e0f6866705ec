package credibility

import (
	"time"

	"github.com/Tejass17x/fake-news-detector/internal/model"
)

// Engine assembles analysis results from normalized signals. It is a pure
// function of (signals, weights, thresholds): no I/O, no state across calls,
// safe for concurrent use once constructed.
type Engine struct {
	weights    model.WeightTable
	thresholds model.ThresholdSet
}

// NewEngine validates the configuration once at construction; analysis calls
// never fail. A request with zero usable signals yields a well-formed
// low-confidence indeterminate result, not an error.
func NewEngine(weights model.WeightTable, thresholds model.ThresholdSet) (*Engine, error) {
	if err := weights.Validate(); err != nil {
		return nil, err
	}
	if err := thresholds.Validate(); err != nil {
		return nil, err
	}
	return &Engine{weights: weights, thresholds: thresholds}, nil
}

// Analyze turns a signal set into a complete AnalysisResult.
func (e *Engine) Analyze(signals []model.SignalScore, meta model.ArticleMeta) *model.AnalysisResult {
	overall, indeterminate := Aggregate(signals, e.weights)
	level := Classify(overall, e.thresholds)
	flags := GenerateFlags(signals, overall, indeterminate, e.thresholds)
	confidence := EstimateConfidence(signals)

	breakdown := make([]model.SignalScore, len(signals))
	copy(breakdown, signals)

	if meta.AnalyzedAt.IsZero() {
		meta.AnalyzedAt = time.Now().UTC()
	}

	return &model.AnalysisResult{
		OverallScore:    overall,
		Level:           level,
		Confidence:      confidence,
		Breakdown:       breakdown,
		Flags:           flags,
		Recommendations: e.recommend(overall, flags, breakdown),
		Meta:            meta,
	}
}

// recommend produces reader guidance from the score and flags.
func (e *Engine) recommend(overall float64, flags []model.Flag, signals []model.SignalScore) []string {
	var recs []string

	if overall < e.thresholds.Medium {
		recs = append(recs, "Verify this information with additional reliable sources")
	}
	if overall < e.thresholds.Low {
		recs = append(recs, "Exercise extreme caution - this content may be unreliable")
	}

	warnings := 0
	unknownSource := false
	for _, f := range flags {
		if f.Kind == model.FlagWarning {
			warnings++
		}
		if f.Code == IssueUnknownSource {
			unknownSource = true
		}
	}
	if warnings > 2 {
		recs = append(recs, "Multiple warning indicators detected - fact-check before sharing")
	}
	if unknownSource {
		recs = append(recs, "Research the publisher's background and reputation")
	}

	recs = append(recs, "Always cross-reference important news with multiple reliable sources")
	return recs
}

// Weights exposes the validated weight table (read-only copy).
func (e *Engine) Weights() model.WeightTable {
	w := make(model.WeightTable, len(e.weights))
	for k, v := range e.weights {
		w[k] = v
	}
	return w
}

// Thresholds exposes the validated threshold set.
func (e *Engine) Thresholds() model.ThresholdSet {
	return e.thresholds
}
