package crossref

import (
	"context"
	"strings"

	"github.com/Tejass17x/fake-news-detector/internal/model"
)

// An article corroborates the story when its headline shares at least this
// many significant keywords with the analyzed headline.
const minSharedKeywords = 2

// Words too common to indicate the same story.
var stopwords = map[string]bool{
	"the": true, "and": true, "for": true, "with": true, "that": true,
	"this": true, "from": true, "have": true, "has": true, "was": true,
	"were": true, "are": true, "will": true, "been": true, "but": true,
	"not": true, "after": true, "over": true, "into": true, "about": true,
	"says": true, "said": true, "his": true, "her": true, "their": true,
	"its": true, "new": true, "more": true, "all": true, "who": true,
	"what": true, "when": true, "how": true, "why": true, "you": true,
}

// Checker turns search hits into a corroboration measurement for the
// cross-reference signal.
type Checker struct {
	client *Client
}

// NewChecker wraps a search client.
func NewChecker(client *Client) *Checker {
	return &Checker{client: client}
}

// Measure searches for coverage of the headline and counts how many hits
// corroborate it. A nil result means the search was unavailable or failed,
// and the cross-reference signal is absent.
func (c *Checker) Measure(ctx context.Context, headline, ownDomain string) (*model.CrossRefMeasurement, error) {
	keywords := significantKeywords(headline)
	if len(keywords) == 0 {
		return nil, nil
	}

	query := strings.Join(keywords, " ")
	hits, err := c.client.Search(ctx, query)
	if err != nil {
		return nil, err
	}

	return Corroborate(headline, ownDomain, hits), nil
}

// Corroborate counts how many of the hits cover the same story, judged by
// headline keyword overlap. Hits from the article's own outlet are checked
// but never corroborate.
func Corroborate(headline, ownDomain string, hits []model.RelatedArticle) *model.CrossRefMeasurement {
	keywords := significantKeywords(headline)

	m := &model.CrossRefMeasurement{SourcesChecked: len(hits)}
	seen := map[string]bool{}

	for _, hit := range hits {
		if sameOutlet(hit, ownDomain) {
			continue
		}
		if sharedKeywords(keywords, significantKeywords(hit.Title)) < minSharedKeywords {
			continue
		}
		m.Corroborating++
		m.Articles = append(m.Articles, hit)

		source := strings.ToLower(strings.TrimSpace(hit.Source))
		if source != "" && !seen[source] {
			seen[source] = true
			m.DistinctSources++
		}
	}

	return m
}

// significantKeywords lowercases the headline and keeps words long enough
// to identify the story.
func significantKeywords(headline string) []string {
	var keywords []string
	for _, w := range tokenizeHeadline(headline) {
		if len(w) > 3 && !stopwords[w] {
			keywords = append(keywords, w)
		}
	}
	return keywords
}

func tokenizeHeadline(headline string) []string {
	fields := strings.Fields(strings.ToLower(headline))
	words := make([]string, 0, len(fields))
	for _, f := range fields {
		f = strings.Trim(f, `.,!?;:"'()[]{}-`)
		if f != "" {
			words = append(words, f)
		}
	}
	return words
}

func sharedKeywords(a, b []string) int {
	set := make(map[string]bool, len(b))
	for _, w := range b {
		set[w] = true
	}
	shared := 0
	for _, w := range a {
		if set[w] {
			shared++
			delete(set, w)
		}
	}
	return shared
}

func sameOutlet(hit model.RelatedArticle, ownDomain string) bool {
	if ownDomain == "" {
		return false
	}
	if strings.Contains(strings.ToLower(hit.URL), strings.ToLower(ownDomain)) {
		return true
	}
	return false
}
