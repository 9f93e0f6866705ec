package util

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/temoto/robotstxt"

	"github.com/Tejass17x/fake-news-detector/internal/cache"
)

// Robots files are small and change rarely. An hour in the cache layer keeps
// a batch run from refetching the same outlet's robots.txt per article,
// while still picking up changes between runs.
const (
	robotsCacheTTL = time.Hour
	robotsMaxBytes = 512 * 1024
)

// RobotsChecker consults a site's robots.txt before an article fetch.
// Fetched files go through the shared cache layer keyed by host.
type RobotsChecker struct {
	cache      cache.Cache
	httpClient *http.Client
	userAgent  string
}

// NewRobotsChecker creates a robots.txt checker.
func NewRobotsChecker(userAgent string, timeout time.Duration) *RobotsChecker {
	return &RobotsChecker{
		cache: cache.NewMemoryCache(robotsCacheTTL, robotsCacheTTL),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		userAgent: userAgent,
	}
}

// CanFetch reports whether the URL may be fetched and any crawl delay the
// site requests. An unreachable robots.txt allows the fetch.
func (r *RobotsChecker) CanFetch(ctx context.Context, rawURL string) (bool, time.Duration, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return false, 0, fmt.Errorf("parse URL: %w", err)
	}

	robotsURL := fmt.Sprintf("%s://%s/robots.txt", parsed.Scheme, parsed.Host)

	data, err := r.getRobotsData(ctx, parsed.Host, robotsURL)
	if err != nil {
		return true, 0, nil
	}

	allowed := data.TestAgent(parsed.Path, r.userAgent)

	crawlDelay := time.Duration(0)
	if group := data.FindGroup(r.userAgent); group != nil {
		crawlDelay = group.CrawlDelay
	}

	return allowed, crawlDelay, nil
}

func (r *RobotsChecker) getRobotsData(ctx context.Context, host string, robotsURL string) (*robotstxt.RobotsData, error) {
	key := cache.CacheKey("robots:" + host)

	if raw, found := r.cache.Get(key); found {
		return decodeRobots(raw)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, robotsURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("User-Agent", r.userAgent)

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch robots.txt: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, robotsMaxBytes))
	if err != nil {
		return nil, fmt.Errorf("read robots.txt: %w", err)
	}

	// The status code decides the default policy (404 allows everything,
	// 403 forbids it), so it is cached alongside the body.
	raw := encodeRobots(resp.StatusCode, body)
	data, err := decodeRobots(raw)
	if err != nil {
		return nil, fmt.Errorf("parse robots.txt: %w", err)
	}

	_ = r.cache.Set(key, raw, robotsCacheTTL)

	return data, nil
}

func encodeRobots(status int, body []byte) []byte {
	return append([]byte(strconv.Itoa(status)+"\n"), body...)
}

func decodeRobots(raw []byte) (*robotstxt.RobotsData, error) {
	i := bytes.IndexByte(raw, '\n')
	if i < 0 {
		return nil, fmt.Errorf("corrupt robots entry")
	}
	status, err := strconv.Atoi(string(raw[:i]))
	if err != nil {
		return nil, fmt.Errorf("corrupt robots entry: %w", err)
	}
	return robotstxt.FromStatusAndBytes(status, raw[i+1:])
}

// Clear drops the per-host cache.
func (r *RobotsChecker) Clear() {
	_ = r.cache.Clear()
}

// IsAllowed returns only the allowed status.
func (r *RobotsChecker) IsAllowed(ctx context.Context, rawURL string) bool {
	allowed, _, _ := r.CanFetch(ctx, rawURL)
	return allowed
}

// NormalizeUserAgent reduces a full User-Agent header to the product token
// robots.txt groups match on.
func NormalizeUserAgent(ua string) string {
	parts := strings.Fields(ua)
	if len(parts) > 0 {
		return strings.Split(parts[0], "/")[0]
	}
	return ua
}
