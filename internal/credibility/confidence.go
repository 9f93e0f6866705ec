package credibility

import "github.com/Tejass17x/fake-news-detector/internal/model"

// Corroboration bonus per distinct corroborating source. The same score
// backed by five independent outlets is more trustworthy than one backed by
// none, so each corroborating source lifts confidence by this fraction.
const corroborationBonusStep = 0.05

// EstimateConfidence measures evidence volume, not score quality:
// the fraction of defined signals that were actually computed, boosted by
// cross-reference corroboration and capped at 1.0. Zero signals means zero
// confidence, matching the aggregator's indeterminate case.
func EstimateConfidence(signals []model.SignalScore) float64 {
	present := 0
	corroborating := 0
	for _, s := range signals {
		if !s.Present() {
			continue
		}
		present++
		if s.Name == model.SignalCrossReference {
			corroborating = s.Corroborating
		}
	}

	if present == 0 {
		return 0
	}

	coverage := float64(present) / float64(len(model.AllSignals))
	bonus := 1.0 + corroborationBonusStep*float64(corroborating)

	confidence := coverage * bonus
	if confidence > 1 {
		confidence = 1
	}
	return confidence
}
