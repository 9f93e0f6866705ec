package worker

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/Tejass17x/fake-news-detector/internal/model"
)

// Analyzer runs a full credibility analysis for one URL.
type Analyzer interface {
	AnalyzeURL(ctx context.Context, url string) (*model.AnalysisResult, error)
}

// AnalyzeJob is one URL queued for analysis.
type AnalyzeJob struct {
	URL      string
	Analyzer Analyzer
}

// Execute runs the analysis and wraps the outcome.
func (j *AnalyzeJob) Execute(ctx context.Context) Result {
	result, err := j.Analyzer.AnalyzeURL(ctx, j.URL)
	return &AnalysisOutcome{
		URL:    j.URL,
		Result: result,
		Error:  err,
	}
}

// AnalysisOutcome pairs a URL with its analysis result or failure. A batch
// keeps going when single URLs fail; the caller decides how to report them.
type AnalysisOutcome struct {
	URL    string
	Result *model.AnalysisResult
	Error  error
}

// GetError returns the failure, if any.
func (r *AnalysisOutcome) GetError() error {
	return r.Error
}

// BatchProcessor analyzes multiple URLs concurrently.
type BatchProcessor struct {
	analyzer    Analyzer
	concurrency int
}

// NewBatchProcessor creates a batch processor.
func NewBatchProcessor(analyzer Analyzer, concurrency int) *BatchProcessor {
	return &BatchProcessor{
		analyzer:    analyzer,
		concurrency: concurrency,
	}
}

// ProcessURLs analyzes the URLs concurrently and returns one outcome per
// URL, in completion order. Results are drained while URLs are still being
// submitted, so the batch can be arbitrarily larger than the pool's buffers.
// Cancelling ctx aborts in-flight analyses and drops queued URLs, so the
// returned slice may then be shorter than the input.
func (b *BatchProcessor) ProcessURLs(ctx context.Context, urls []string) []*AnalysisOutcome {
	if len(urls) == 0 {
		return []*AnalysisOutcome{}
	}

	pool := NewPoolWithContext(ctx, b.concurrency)
	pool.Start()

	collector := NewResultCollector()
	drained := make(chan struct{})
	go func() {
		defer close(drained)
		for result := range pool.Results() {
			collector.Add(result)
		}
	}()

	for _, url := range urls {
		pool.Submit(&AnalyzeJob{
			URL:      url,
			Analyzer: b.analyzer,
		})
	}

	pool.Finish()
	<-drained

	results := collector.Results()
	outcomes := make([]*AnalysisOutcome, len(results))
	for i, result := range results {
		outcomes[i] = result.(*AnalysisOutcome)
	}

	return outcomes
}

// ProcessFile reads URLs from a file and analyzes them concurrently.
func (b *BatchProcessor) ProcessFile(ctx context.Context, filePath string) ([]*AnalysisOutcome, error) {
	urls, err := ReadURLsFromFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("read URLs: %w", err)
	}

	return b.ProcessURLs(ctx, urls), nil
}

// ReadURLsFromFile reads one URL per line, skipping blanks, comments, and
// duplicates.
func ReadURLsFromFile(filePath string) ([]string, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var urls []string
	seen := make(map[string]bool)

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if !seen[line] {
			seen[line] = true
			urls = append(urls, line)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan file: %w", err)
	}

	return urls, nil
}
