package pipeline

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/Tejass17x/fake-news-detector/internal/cache"
	"github.com/Tejass17x/fake-news-detector/internal/model"
	"github.com/Tejass17x/fake-news-detector/internal/util"
	"github.com/Tejass17x/fake-news-detector/internal/worker"
)

const (
	maxFetchAttempts = 3
	retryBaseDelay   = time.Second
	htmlCacheTTL     = 6 * time.Hour
)

// Injectable for tests.
var fetchSleepFunc = time.Sleep

// ErrRobotsDisallowed means the site's robots.txt forbids fetching the URL.
var ErrRobotsDisallowed = errors.New("fetch disallowed by robots.txt")

// Fetcher retrieves article HTML. It honors robots.txt, rate-limits per
// publisher domain, retries transient failures, and caches pages.
type Fetcher struct {
	httpClient *http.Client
	userAgent  string
	maxBytes   int64
	robots     *util.RobotsChecker
	limiter    *worker.Limiter
	cache      cache.Cache
}

// FetchResult is the fetched page plus where it finally came from.
type FetchResult struct {
	HTML     string
	FinalURL string
	Cached   bool
}

// NewFetcher creates a fetcher from the HTTP configuration. The limiter and
// cache may be nil; robots.txt checking follows cfg.RespectRobots.
func NewFetcher(cfg model.HTTPConfig, limiter *worker.Limiter, c cache.Cache) *Fetcher {
	transport := &http.Transport{}
	if cfg.InsecureTLS {
		transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true}
	}

	var robots *util.RobotsChecker
	if cfg.RespectRobots {
		robots = util.NewRobotsChecker(util.NormalizeUserAgent(cfg.UserAgent), cfg.Timeout)
	}

	return &Fetcher{
		httpClient: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: transport,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 3 {
					return fmt.Errorf("stopped after 3 redirects")
				}
				return nil
			},
		},
		userAgent: cfg.UserAgent,
		maxBytes:  cfg.MaxBodyBytes,
		robots:    robots,
		limiter:   limiter,
		cache:     c,
	}
}

// FetchWithRetry fetches the URL, retrying transient failures with backoff.
// Cache hits skip robots, rate limiting, and the network entirely.
func (f *Fetcher) FetchWithRetry(ctx context.Context, rawURL string) (*FetchResult, error) {
	if f.cache != nil {
		if html, found := f.cache.Get(cache.CacheKey(rawURL)); found {
			return &FetchResult{HTML: string(html), FinalURL: rawURL, Cached: true}, nil
		}
	}

	if f.robots != nil {
		allowed, crawlDelay, err := f.robots.CanFetch(ctx, rawURL)
		if err != nil {
			return nil, fmt.Errorf("robots check: %w", err)
		}
		if !allowed {
			return nil, ErrRobotsDisallowed
		}
		if crawlDelay > 0 {
			fetchSleepFunc(crawlDelay)
		}
	}

	if f.limiter != nil {
		if err := f.limiter.Wait(ctx, rawURL); err != nil {
			return nil, err
		}
	}

	var lastErr error
	for attempt := 1; attempt <= maxFetchAttempts; attempt++ {
		result, err := f.fetch(ctx, rawURL)
		if err == nil {
			if f.cache != nil {
				_ = f.cache.Set(cache.CacheKey(rawURL), []byte(result.HTML), htmlCacheTTL)
			}
			return result, nil
		}

		lastErr = err
		if !isRetryableFetchError(err) || attempt == maxFetchAttempts {
			break
		}
		fetchSleepFunc(retryBaseDelay * time.Duration(attempt))
	}

	return nil, lastErr
}

func (f *Fetcher) fetch(ctx context.Context, rawURL string) (*FetchResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("unexpected status: %d %s", resp.StatusCode, resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBytes))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	return &FetchResult{
		HTML:     string(body),
		FinalURL: resp.Request.URL.String(),
	}, nil
}

// isRetryableFetchError reports whether a failure is worth retrying: 5xx
// and 429 statuses and connection-level errors.
func isRetryableFetchError(err error) bool {
	if err == nil {
		return false
	}

	msg := err.Error()
	for _, status := range []string{": 500", ": 502", ": 503", ": 504", ": 429"} {
		if strings.Contains(msg, "unexpected status"+status) {
			return true
		}
	}
	if strings.Contains(msg, "connection refused") || strings.Contains(msg, "connection reset") {
		return true
	}
	return false
}
