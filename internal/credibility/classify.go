package credibility

import "github.com/Tejass17x/fake-news-detector/internal/model"

// Classify maps an overall score onto a credibility level. Bands are
// inclusive on their lower boundary: a score exactly equal to a threshold
// belongs to the higher band.
func Classify(score float64, t model.ThresholdSet) model.CredibilityLevel {
	switch {
	case score >= t.High:
		return model.LevelHigh
	case score >= t.Medium:
		return model.LevelMedium
	case score >= t.Low:
		return model.LevelLow
	default:
		return model.LevelVeryLow
	}
}
