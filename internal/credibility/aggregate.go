package credibility

import (
	"fmt"
	"os"

	"github.com/Tejass17x/fake-news-detector/internal/model"
)

// indeterminateScore is surfaced when no signal is present: a neutral value
// paired with zero confidence and an insufficient-data flag.
const indeterminateScore = 0.5

// Aggregate combines the present signals into one overall score using the
// weight table, renormalized so weight ratios among present signals match
// the full table. Treating missing signals as zero credibility would let a
// single collaborator timeout drag an article toward "fake"; renormalizing
// keeps the documented ratios intact.
//
// The second return value reports the indeterminate case (no signals at all).
func Aggregate(signals []model.SignalScore, weights model.WeightTable) (float64, bool) {
	totalWeight := 0.0
	weightedSum := 0.0

	for _, s := range signals {
		if !s.Present() {
			continue
		}
		w := weights.Weight(s.Name)
		if w == 0 {
			continue
		}

		v := *s.Value
		if v < 0 || v > 1 {
			// A buggy extractor must not corrupt classification; clamp
			// and proceed rather than failing the analysis.
			fmt.Fprintf(os.Stderr, "warning: %s signal out of range (%v), clamping\n", s.Name, v)
			v = clamp01(v)
		}

		totalWeight += w
		weightedSum += w * v
	}

	if totalWeight == 0 {
		return indeterminateScore, true
	}

	return clamp01(weightedSum / totalWeight), false
}
