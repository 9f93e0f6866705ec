package credibility

import (
	"fmt"

	"github.com/Tejass17x/fake-news-detector/internal/model"
)

// Flag generation is a fixed-priority list of pure rules over the signal set
// and the computed score. Rules fire independently, so multiple flags may
// coexist, and the evaluation order never changes, so identical inputs
// always yield the same flags in the same order.

// Cross-reference agreement below this ratio, with enough sources checked,
// warns about low corroboration.
const (
	lowCorroborationRatio   = 0.3
	lowCorroborationMinimum = 3
	minSourceDiversity      = 2
)

// Source signal below this value warns about the publisher itself.
const lowSourceScore = 0.3

type ruleInput struct {
	signals       map[model.SignalName]model.SignalScore
	presentCount  int
	overall       float64
	indeterminate bool
	thresholds    model.ThresholdSet
}

type flagRule func(in ruleInput) []model.Flag

var flagRules = []flagRule{
	ruleInsufficientData,
	ruleSourceCredibility,
	ruleContentIssues,
	ruleSubjectivity,
	ruleBiasLanguage,
	ruleCorroboration,
	ruleWellCorroborated,
}

// GenerateFlags evaluates every rule in priority order.
func GenerateFlags(signals []model.SignalScore, overall float64, indeterminate bool, thresholds model.ThresholdSet) []model.Flag {
	in := ruleInput{
		signals:       make(map[model.SignalName]model.SignalScore, len(signals)),
		overall:       overall,
		indeterminate: indeterminate,
		thresholds:    thresholds,
	}
	for _, s := range signals {
		in.signals[s.Name] = s
		if s.Present() {
			in.presentCount++
		}
	}

	flags := []model.Flag{}
	for _, rule := range flagRules {
		flags = append(flags, rule(in)...)
	}
	return flags
}

func warning(code, message string) model.Flag {
	return model.Flag{Kind: model.FlagWarning, Code: code, Message: message}
}

func ruleInsufficientData(in ruleInput) []model.Flag {
	if !in.indeterminate {
		return nil
	}
	return []model.Flag{warning("insufficient-data",
		"No credibility signals could be computed; result is indeterminate")}
}

func ruleSourceCredibility(in ruleInput) []model.Flag {
	src, ok := in.signals[model.SignalSource]
	if !ok {
		return nil
	}

	var flags []model.Flag
	if src.Present() && *src.Value < lowSourceScore {
		flags = append(flags, warning("low-source-credibility",
			"Source has a low credibility rating"))
	}
	for _, issue := range src.Issues {
		switch issue {
		case IssueUnknownSource:
			flags = append(flags, warning(IssueUnknownSource,
				"Unknown source; research the publisher's background and reputation"))
		case IssueInsecure:
			flags = append(flags, warning(IssueInsecure, "Source does not use HTTPS"))
		case IssueSuspiciousDomain:
			flags = append(flags, warning(IssueSuspiciousDomain,
				"Domain name contains keywords common to misinformation sites"))
		}
	}
	return flags
}

// Content heuristics each emit their own flag code so a caller can see which
// heuristic fired, not just the aggregate penalty.
var contentIssueMessages = map[string]string{
	IssueClickbait:      "Headline matches known clickbait patterns",
	IssueCapitalization: "Excessive capitalization in article text",
	IssuePunctuation:    "Excessive exclamation or question marks",
	IssueMissingAuthor:  "No author attribution found",
	IssueMissingDate:    "No publish date found",
	IssueShortArticle:   "Article is very short and may be incomplete",
}

func ruleContentIssues(in ruleInput) []model.Flag {
	content, ok := in.signals[model.SignalContent]
	if !ok {
		return nil
	}

	var flags []model.Flag
	for _, issue := range content.Issues {
		if msg, known := contentIssueMessages[issue]; known {
			flags = append(flags, warning(issue, msg))
		}
	}
	return flags
}

func ruleSubjectivity(in ruleInput) []model.Flag {
	sent, ok := in.signals[model.SignalSentiment]
	if !ok {
		return nil
	}
	for _, issue := range sent.Issues {
		if issue == IssueSubjective {
			return []model.Flag{warning(IssueSubjective, "Content is highly subjective")}
		}
	}
	return nil
}

func ruleBiasLanguage(in ruleInput) []model.Flag {
	bias, ok := in.signals[model.SignalBias]
	if !ok {
		return nil
	}
	for _, issue := range bias.Issues {
		if issue == IssueBiasLanguage {
			return []model.Flag{warning(IssueBiasLanguage,
				"High number of bias indicators detected")}
		}
	}
	return nil
}

func ruleCorroboration(in ruleInput) []model.Flag {
	xref, ok := in.signals[model.SignalCrossReference]
	if !ok || !xref.Present() {
		return nil
	}

	var flags []model.Flag
	if *xref.Value < lowCorroborationRatio && xref.SourcesChecked >= lowCorroborationMinimum {
		flags = append(flags, warning("low-corroboration",
			fmt.Sprintf("Only %d of %d checked sources corroborate this story",
				xref.Corroborating, xref.SourcesChecked)))
	}
	if xref.DistinctSources < minSourceDiversity {
		flags = append(flags, warning("limited-source-diversity",
			"Limited source diversity for verification"))
	}
	return flags
}

func ruleWellCorroborated(in ruleInput) []model.Flag {
	if in.presentCount < len(model.AllSignals) || in.overall < in.thresholds.High {
		return nil
	}
	return []model.Flag{{
		Kind:    model.FlagPositive,
		Code:    "well-corroborated",
		Message: "All credibility signals are available and strongly positive",
	}}
}
