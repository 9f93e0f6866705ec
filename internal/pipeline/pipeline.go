package pipeline

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/Tejass17x/fake-news-detector/internal/cache"
	"github.com/Tejass17x/fake-news-detector/internal/credibility"
	"github.com/Tejass17x/fake-news-detector/internal/crossref"
	"github.com/Tejass17x/fake-news-detector/internal/extract"
	"github.com/Tejass17x/fake-news-detector/internal/llm"
	"github.com/Tejass17x/fake-news-detector/internal/model"
	"github.com/Tejass17x/fake-news-detector/internal/worker"
)

// Per-domain politeness for article fetches.
const (
	fetchRequestsPerSecond = 2
	fetchBurst             = 4
)

// Pipeline orchestrates one complete analysis: fetch, extract, measure,
// score, and optionally comment.
type Pipeline struct {
	fetcher     *Fetcher
	articles    *extract.ArticleExtractor
	sources     *extract.SourceAnalyzer
	content     *extract.ContentAnalyzer
	sentiment   *extract.SentimentAnalyzer
	bias        *extract.BiasAnalyzer
	checker     *crossref.Checker
	engine      *credibility.Engine
	commentator *llm.Commentator
	config      *model.Config
}

// NewPipeline builds a pipeline from validated configuration. The
// cross-reference and commentary collaborators stay nil or disabled when
// unconfigured; everything else is required.
func NewPipeline(cfg *model.Config) (*Pipeline, error) {
	engine, err := credibility.NewEngine(cfg.Weights, cfg.Thresholds)
	if err != nil {
		return nil, fmt.Errorf("create engine: %w", err)
	}

	var c cache.Cache
	if cfg.Cache.Enabled {
		if cfg.Cache.Dir != "" {
			c = cache.NewLayeredCache(cfg.Cache.MemoryTTL, cfg.Cache.Dir, cfg.Cache.DiskTTL)
		} else {
			c = cache.NewMemoryCache(cfg.Cache.MemoryTTL, 10*time.Minute)
		}
	}

	limiter := worker.NewLimiter(fetchRequestsPerSecond, fetchBurst)

	var checker *crossref.Checker
	if cfg.CrossRef.APIKey != "" {
		checker = crossref.NewChecker(crossref.NewClient(cfg.CrossRef, c))
	}

	var commentator *llm.Commentator
	if cfg.LLM.Provider != "" {
		commentator, err = llm.NewCommentator(llm.ConfigFromModel(cfg.LLM))
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: LLM commentary disabled: %v\n", err)
			commentator = nil
		}
	}

	return &Pipeline{
		fetcher:     NewFetcher(cfg.HTTP, limiter, c),
		articles:    extract.NewArticleExtractor(),
		sources:     extract.NewSourceAnalyzer(cfg.Sources),
		content:     extract.NewContentAnalyzer(),
		sentiment:   extract.NewSentimentAnalyzer(),
		bias:        extract.NewBiasAnalyzer(),
		checker:     checker,
		engine:      engine,
		commentator: commentator,
		config:      cfg,
	}, nil
}

// AnalyzeURL fetches the article and runs the full analysis.
func (p *Pipeline) AnalyzeURL(ctx context.Context, url string) (*model.AnalysisResult, error) {
	fetched, err := p.fetcher.FetchWithRetry(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("fetch: %w", err)
	}

	article, err := p.articles.Extract(fetched.HTML)
	if err != nil {
		return nil, fmt.Errorf("extract article: %w", err)
	}

	return p.analyze(ctx, article, fetched.FinalURL)
}

// AnalyzeText analyzes raw article text without a fetch. The source signal
// is absent unless a URL is also given.
func (p *Pipeline) AnalyzeText(ctx context.Context, title, text, url string) (*model.AnalysisResult, error) {
	if strings.TrimSpace(title) == "" && strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("%w: empty title and text", model.ErrNoInput)
	}

	article := &extract.Article{Title: title, Text: text}
	return p.analyze(ctx, article, url)
}

func (p *Pipeline) analyze(ctx context.Context, article *extract.Article, url string) (*model.AnalysisResult, error) {
	// The cross-reference search goes over the network, so it runs while
	// the local analyzers work. A failure or timeout leaves the signal
	// absent rather than failing the analysis.
	crossRefCh := make(chan *model.CrossRefMeasurement, 1)
	go func() {
		crossRefCh <- p.measureCrossRef(ctx, article.Title, url)
	}()

	measurements := model.Measurements{
		Source:    p.sources.Analyze(url),
		Content:   p.content.Analyze(article),
		Sentiment: p.sentiment.Analyze(article.Text),
		Bias:      p.bias.Analyze(article.Text),
		CrossRef:  <-crossRefCh,
	}

	signals := credibility.NormalizeAll(measurements, p.config.Sentiment.PolarityThreshold)

	meta := model.ArticleMeta{
		Title: article.Title,
		URL:   url,
	}
	if measurements.Source != nil {
		meta.Domain = measurements.Source.Domain
	}
	if measurements.Content != nil {
		meta.WordCount = measurements.Content.WordCount
	}

	result := p.engine.Analyze(signals, meta)

	// Commentary comes last and never affects the score. A failure is a
	// warning, not an error.
	if p.commentator.IsEnabled() {
		commentary, err := p.commentator.Comment(ctx, *result)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: commentary generation failed: %v\n", err)
		} else {
			result.Commentary = commentary
		}
	}

	return result, nil
}

// measureCrossRef runs the corroboration search within the configured
// timeout. Any failure yields a nil measurement.
func (p *Pipeline) measureCrossRef(ctx context.Context, headline, url string) *model.CrossRefMeasurement {
	if p.checker == nil || strings.TrimSpace(headline) == "" {
		return nil
	}

	timeout := p.config.CrossRef.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	ownDomain := ""
	if src := p.sources.Analyze(url); src != nil {
		ownDomain = src.Domain
	}

	m, err := p.checker.Measure(ctx, headline, ownDomain)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: cross-reference search failed: %v\n", err)
		return nil
	}
	return m
}
