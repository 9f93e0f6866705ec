package model

// SignalName identifies one independently computed credibility dimension.
type SignalName string

const (
	SignalSource         SignalName = "source"
	SignalContent        SignalName = "content"
	SignalCrossReference SignalName = "cross_reference"
	SignalBias           SignalName = "bias"
	SignalSentiment      SignalName = "sentiment"
)

// AllSignals lists every defined signal in breakdown order (heaviest weight first).
var AllSignals = []SignalName{
	SignalSource,
	SignalContent,
	SignalCrossReference,
	SignalBias,
	SignalSentiment,
}

// SignalScore is one normalized credibility measurement on [0,1].
// Value is nil when the extractor could not compute the signal (API down,
// input missing); an absent signal is distinct from a low-value one and is
// redistributed during aggregation rather than treated as zero credibility.
type SignalScore struct {
	Name     SignalName `json:"name"`
	Value    *float64   `json:"value,omitempty"`
	Evidence []string   `json:"evidence,omitempty"` // short human-readable notes
	Issues   []string   `json:"issues,omitempty"`   // heuristic codes that fired

	// Cross-reference bookkeeping, zero for other signals.
	SourcesChecked  int `json:"sources_checked,omitempty"`
	Corroborating   int `json:"corroborating,omitempty"`
	DistinctSources int `json:"distinct_sources,omitempty"`
}

// Present reports whether the extractor produced a value for this signal.
func (s SignalScore) Present() bool {
	return s.Value != nil
}

// PresentSignal builds a signal with a computed value.
func PresentSignal(name SignalName, value float64, evidence ...string) SignalScore {
	return SignalScore{Name: name, Value: &value, Evidence: evidence}
}

// AbsentSignal builds a signal the extractor could not compute.
func AbsentSignal(name SignalName, reason string) SignalScore {
	s := SignalScore{Name: name}
	if reason != "" {
		s.Evidence = []string{reason}
	}
	return s
}

// FlagKind distinguishes warnings from positive indicators.
type FlagKind string

const (
	FlagWarning  FlagKind = "warning"
	FlagPositive FlagKind = "positive"
)

// Flag is a human-readable finding attached to an analysis result.
type Flag struct {
	Kind    FlagKind `json:"kind"`
	Code    string   `json:"code"`
	Message string   `json:"message"`
}
