package credibility

import (
	"reflect"
	"testing"

	"github.com/Tejass17x/fake-news-detector/internal/model"
)

func TestGenerateFlags_InsufficientData(t *testing.T) {
	flags := GenerateFlags(nil, 0.5, true, model.DefaultThresholds())
	if len(flags) != 1 {
		t.Fatalf("Expected exactly one flag, got %d", len(flags))
	}
	if flags[0].Code != "insufficient-data" || flags[0].Kind != model.FlagWarning {
		t.Errorf("Unexpected flag: %+v", flags[0])
	}
}

func TestGenerateFlags_LowSourceCredibility(t *testing.T) {
	signals := []model.SignalScore{
		model.PresentSignal(model.SignalSource, 0.15),
	}

	flags := GenerateFlags(signals, 0.15, false, model.DefaultThresholds())

	if !hasCode(flags, "low-source-credibility") {
		t.Errorf("Expected low-source-credibility flag, got %v", codes(flags))
	}
}

func TestGenerateFlags_PerHeuristicContentFlags(t *testing.T) {
	content := model.PresentSignal(model.SignalContent, 0.55)
	content.Issues = []string{IssueClickbait, IssuePunctuation, IssueMissingAuthor}

	flags := GenerateFlags([]model.SignalScore{content}, 0.55, false, model.DefaultThresholds())

	// Each heuristic fires its own code so callers see which one triggered.
	for _, code := range content.Issues {
		if !hasCode(flags, code) {
			t.Errorf("Expected flag %s, got %v", code, codes(flags))
		}
	}
}

func TestGenerateFlags_LowCorroboration(t *testing.T) {
	xref := model.PresentSignal(model.SignalCrossReference, 0.2)
	xref.SourcesChecked = 5
	xref.Corroborating = 1
	xref.DistinctSources = 3

	flags := GenerateFlags([]model.SignalScore{xref}, 0.2, false, model.DefaultThresholds())
	if !hasCode(flags, "low-corroboration") {
		t.Errorf("Expected low-corroboration flag, got %v", codes(flags))
	}
}

func TestGenerateFlags_NoLowCorroborationWithFewSources(t *testing.T) {
	// Two sources checked is too little evidence to warn about disagreement.
	xref := model.PresentSignal(model.SignalCrossReference, 0.0)
	xref.SourcesChecked = 2
	xref.DistinctSources = 2

	flags := GenerateFlags([]model.SignalScore{xref}, 0.2, false, model.DefaultThresholds())
	if hasCode(flags, "low-corroboration") {
		t.Errorf("Did not expect low-corroboration with only 2 sources checked, got %v", codes(flags))
	}
}

func TestGenerateFlags_LimitedSourceDiversity(t *testing.T) {
	xref := model.PresentSignal(model.SignalCrossReference, 0.8)
	xref.SourcesChecked = 4
	xref.Corroborating = 3
	xref.DistinctSources = 1

	flags := GenerateFlags([]model.SignalScore{xref}, 0.8, false, model.DefaultThresholds())
	if !hasCode(flags, "limited-source-diversity") {
		t.Errorf("Expected limited-source-diversity flag, got %v", codes(flags))
	}
}

func TestGenerateFlags_WellCorroborated(t *testing.T) {
	var signals []model.SignalScore
	for _, name := range model.AllSignals {
		s := model.PresentSignal(name, 0.9)
		if name == model.SignalCrossReference {
			s.SourcesChecked = 8
			s.Corroborating = 7
			s.DistinctSources = 6
		}
		signals = append(signals, s)
	}

	flags := GenerateFlags(signals, 0.9, false, model.DefaultThresholds())
	if !hasCode(flags, "well-corroborated") {
		t.Fatalf("Expected well-corroborated flag, got %v", codes(flags))
	}
	for _, f := range flags {
		if f.Code == "well-corroborated" && f.Kind != model.FlagPositive {
			t.Error("well-corroborated must be a positive flag")
		}
	}
}

func TestGenerateFlags_NoPositiveWhenSignalMissing(t *testing.T) {
	var signals []model.SignalScore
	for _, name := range model.AllSignals {
		if name == model.SignalSentiment {
			signals = append(signals, model.AbsentSignal(name, "unavailable"))
			continue
		}
		signals = append(signals, model.PresentSignal(name, 0.95))
	}

	flags := GenerateFlags(signals, 0.95, false, model.DefaultThresholds())
	if hasCode(flags, "well-corroborated") {
		t.Error("well-corroborated requires every signal to be present")
	}
}

func TestGenerateFlags_Deterministic(t *testing.T) {
	source := model.PresentSignal(model.SignalSource, 0.1)
	source.Issues = []string{IssueInsecure}

	content := model.PresentSignal(model.SignalContent, 0.4)
	content.Issues = []string{IssueClickbait, IssueCapitalization, IssueShortArticle}

	bias := model.PresentSignal(model.SignalBias, 0.3)
	bias.Issues = []string{IssueBiasLanguage}

	signals := []model.SignalScore{source, content, bias}

	first := GenerateFlags(signals, 0.25, false, model.DefaultThresholds())
	for i := 0; i < 20; i++ {
		again := GenerateFlags(signals, 0.25, false, model.DefaultThresholds())
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("Flag output changed between runs:\n%v\n%v", first, again)
		}
	}

	// Source rules fire before content rules, which fire before bias rules.
	want := []string{
		"low-source-credibility", IssueInsecure,
		IssueClickbait, IssueCapitalization, IssueShortArticle,
		IssueBiasLanguage,
	}
	if !reflect.DeepEqual(codes(first), want) {
		t.Errorf("Unexpected flag order:\n got %v\nwant %v", codes(first), want)
	}
}

func hasCode(flags []model.Flag, code string) bool {
	for _, f := range flags {
		if f.Code == code {
			return true
		}
	}
	return false
}

func codes(flags []model.Flag) []string {
	out := make([]string, len(flags))
	for i, f := range flags {
		out[i] = f.Code
	}
	return out
}
