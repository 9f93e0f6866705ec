package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/Tejass17x/fake-news-detector/internal/export"
	"github.com/Tejass17x/fake-news-detector/internal/pipeline"
	"github.com/Tejass17x/fake-news-detector/internal/worker"
)

var (
	concurrency  int
	outputDir    string
	batchTimeout time.Duration
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch <file>",
	Short: "Analyze multiple article URLs from a file in parallel",
	Long: `Batch processes multiple URLs concurrently:
- Read URLs from input file (one per line, # lines are comments)
- Analyze URLs in parallel with configurable worker count
- Article fetches are rate-limited per publisher domain
- Write one JSON result per URL and append to the analysis log

Example:
  fakenews batch urls.txt
  fakenews batch urls.txt --concurrency 8 --output-dir ./results
  fakenews batch urls.txt --timeout 15m`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().IntVar(&concurrency, "concurrency", 0, "number of concurrent workers (default: config)")
	batchCmd.Flags().StringVar(&outputDir, "output-dir", "./fakenews-results", "output directory for JSON results")
	batchCmd.Flags().DurationVar(&batchTimeout, "timeout", 10*time.Minute, "total timeout for batch processing")
	batchCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable cache (force fresh fetch)")
	batchCmd.Flags().BoolVar(&noRobots, "no-robots", false, "skip robots.txt checks")
	batchCmd.Flags().BoolVar(&noLog, "no-log", false, "skip the JSONL/CSV analysis log")
}

func runBatch(cmd *cobra.Command, args []string) error {
	file := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), batchTimeout)
	defer cancel()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	cfg.Output.Verbose = verbose
	if noCache {
		cfg.Cache.Enabled = false
	}
	if noRobots {
		cfg.HTTP.RespectRobots = false
	}
	if concurrency <= 0 {
		concurrency = cfg.Concurrency.Workers
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	p, err := pipeline.NewPipeline(cfg)
	if err != nil {
		return err
	}

	var logbook *export.Logbook
	if cfg.Export.Enabled && !noLog {
		logbook, err = export.NewLogbook(cfg.Export.Dir)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: analysis log unavailable: %v\n", err)
			logbook = nil
		}
	}

	fmt.Fprintf(os.Stderr, "Batch: %s with %d workers\n", file, concurrency)

	processor := worker.NewBatchProcessor(p, concurrency)
	outcomes, err := processor.ProcessFile(ctx, file)
	if err != nil {
		return fmt.Errorf("process file: %w", err)
	}

	renderer := pipeline.NewRenderer(verbose)
	successCount := 0
	failureCount := 0

	for _, outcome := range outcomes {
		if outcome.Error != nil {
			failureCount++
			fmt.Fprintf(os.Stderr, "FAIL %s: %v\n", outcome.URL, outcome.Error)
			continue
		}
		successCount++

		jsonPath := filepath.Join(outputDir, resultFilename(outcome.URL))
		if err := renderer.RenderJSON(outcome.Result, jsonPath); err != nil {
			fmt.Fprintf(os.Stderr, "FAIL %s: write JSON: %v\n", outcome.URL, err)
			continue
		}
		if logbook != nil {
			if err := logbook.Record(outcome.Result, "url"); err != nil {
				fmt.Fprintf(os.Stderr, "warning: analysis log write failed: %v\n", err)
			}
		}

		fmt.Fprintf(os.Stderr, "OK   %s: %s (%.2f)\n", outcome.URL, outcome.Result.Level, outcome.Result.OverallScore)
	}

	fmt.Fprintf(os.Stderr, "\nDone: %d analyzed, %d failed, results in %s\n", successCount, failureCount, outputDir)
	if failureCount > 0 && successCount == 0 {
		return fmt.Errorf("all %d URLs failed", failureCount)
	}
	return nil
}

// resultFilename derives a stable JSON filename from an article URL.
func resultFilename(url string) string {
	s := url
	s = strings.TrimPrefix(s, "https://")
	s = strings.TrimPrefix(s, "http://")
	replacer := strings.NewReplacer(
		"/", "_", "\\", "_", ":", "_", "*", "_", "?", "_",
		"\"", "_", "<", "_", ">", "_", "|", "_", " ", "-",
	)
	s = replacer.Replace(s)
	s = strings.Trim(s, "._-")
	if len(s) > 100 {
		s = s[:100]
	}
	if s == "" {
		s = "result"
	}
	return s + ".json"
}
