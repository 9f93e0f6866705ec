package extract

import (
	"net/url"
	"strings"

	"github.com/Tejass17x/fake-news-detector/internal/model"
)

// SourceAnalyzer rates a publishing domain against the configured
// reliable/mixed/unreliable source lists. A domain matching none of them
// rates unknown, which the normalizer treats as an absent signal.
type SourceAnalyzer struct {
	reliable   []string
	mixed      []string
	unreliable []string
}

// Domain keywords common to misinformation and impostor sites.
var suspiciousDomainKeywords = []string{
	"fake", "real", "truth", "insider", "leaked", "exposed",
}

// NewSourceAnalyzer creates an analyzer from the configured source lists.
func NewSourceAnalyzer(cfg model.SourcesConfig) *SourceAnalyzer {
	return &SourceAnalyzer{
		reliable:   normalizeDomains(cfg.Reliable),
		mixed:      normalizeDomains(cfg.Mixed),
		unreliable: normalizeDomains(cfg.Unreliable),
	}
}

// Analyze rates the article's URL. A nil result means no URL was given and
// the source signal is absent.
func (a *SourceAnalyzer) Analyze(rawURL string) *model.SourceMeasurement {
	if strings.TrimSpace(rawURL) == "" {
		return nil
	}

	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Host == "" {
		return nil
	}

	domain := strings.ToLower(parsed.Hostname())
	domain = strings.TrimPrefix(domain, "www.")

	m := &model.SourceMeasurement{
		Domain:     domain,
		Reputation: a.classify(domain),
		IsHTTPS:    parsed.Scheme == "https",
	}

	for _, keyword := range suspiciousDomainKeywords {
		if strings.Contains(domain, keyword) {
			m.SuspiciousKeywords = append(m.SuspiciousKeywords, keyword)
		}
	}

	return m
}

// classify matches the domain against the lists, most damaging first so a
// domain accidentally present in two lists rates conservatively.
func (a *SourceAnalyzer) classify(domain string) model.Reputation {
	switch {
	case matchesAny(domain, a.unreliable):
		return model.ReputationUnreliable
	case matchesAny(domain, a.mixed):
		return model.ReputationMixed
	case matchesAny(domain, a.reliable):
		return model.ReputationReliable
	default:
		return model.ReputationUnknown
	}
}

// matchesAny reports whether the domain equals or is a subdomain of any
// listed domain.
func matchesAny(domain string, list []string) bool {
	for _, listed := range list {
		if domain == listed || strings.HasSuffix(domain, "."+listed) {
			return true
		}
	}
	return false
}

func normalizeDomains(domains []string) []string {
	out := make([]string, 0, len(domains))
	for _, d := range domains {
		d = strings.ToLower(strings.TrimSpace(d))
		d = strings.TrimPrefix(d, "www.")
		if d != "" {
			out = append(out, d)
		}
	}
	return out
}
