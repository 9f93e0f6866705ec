package crossref

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"

	"github.com/Tejass17x/fake-news-detector/internal/cache"
	"github.com/Tejass17x/fake-news-detector/internal/model"
)

// ErrNoAPIKey means the cross-reference search is not configured. Callers
// treat it as "signal unavailable", not as a hard failure.
var ErrNoAPIKey = errors.New("crossref: no API key configured")

const cacheTTL = 30 * time.Minute

// Client searches a NewsAPI-compatible endpoint for coverage of the same
// story by other outlets. Responses are cached so repeated analyses of the
// same headline do not burn API quota.
type Client struct {
	httpClient *http.Client
	apiKey     string
	baseURL    string
	pageSize   int
	limiter    *rate.Limiter
	cache      cache.Cache
}

// NewClient creates a search client. The cache may be nil.
func NewClient(cfg model.CrossRefConfig, c cache.Cache) *Client {
	pageSize := cfg.PageSize
	if pageSize <= 0 {
		pageSize = 10
	}
	burst := cfg.Burst
	if burst <= 0 {
		burst = 5
	}
	rps := cfg.RequestsPerSecond
	if rps <= 0 {
		rps = 2
	}

	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		apiKey:     cfg.APIKey,
		baseURL:    cfg.BaseURL,
		pageSize:   pageSize,
		limiter:    rate.NewLimiter(rate.Limit(rps), burst),
		cache:      c,
	}
}

// Available reports whether the client is configured to search.
func (c *Client) Available() bool {
	return c.apiKey != ""
}

// searchResponse is the wire format of the /everything endpoint.
type searchResponse struct {
	Status   string `json:"status"`
	Code     string `json:"code"`
	Message  string `json:"message"`
	Articles []struct {
		Title  string `json:"title"`
		URL    string `json:"url"`
		Source struct {
			Name string `json:"name"`
		} `json:"source"`
		PublishedAt string `json:"publishedAt"`
	} `json:"articles"`
}

// Search queries the endpoint for articles matching the query and returns
// the hits in API order.
func (c *Client) Search(ctx context.Context, query string) ([]model.RelatedArticle, error) {
	if !c.Available() {
		return nil, ErrNoAPIKey
	}

	if body, ok := c.cachedSearch(query); ok {
		return parseSearch(body)
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	endpoint := fmt.Sprintf("%s/everything?q=%s&pageSize=%d&language=en&sortBy=relevancy",
		c.baseURL, url.QueryEscape(query), c.pageSize)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("X-Api-Key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("search: unexpected status %d", resp.StatusCode)
	}

	articles, err := parseSearch(body)
	if err != nil {
		return nil, err
	}

	if c.cache != nil {
		_ = c.cache.Set(cache.CacheKey("search:"+query), body, cacheTTL)
	}
	return articles, nil
}

func (c *Client) cachedSearch(query string) ([]byte, bool) {
	if c.cache == nil {
		return nil, false
	}
	return c.cache.Get(cache.CacheKey("search:" + query))
}

func parseSearch(body []byte) ([]model.RelatedArticle, error) {
	var parsed searchResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	if parsed.Status != "ok" {
		return nil, fmt.Errorf("search failed: %s (%s)", parsed.Message, parsed.Code)
	}

	articles := make([]model.RelatedArticle, 0, len(parsed.Articles))
	for _, a := range parsed.Articles {
		articles = append(articles, model.RelatedArticle{
			Title:       a.Title,
			Source:      a.Source.Name,
			URL:         a.URL,
			PublishedAt: a.PublishedAt,
		})
	}
	return articles, nil
}
