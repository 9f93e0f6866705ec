package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/Tejass17x/fake-news-detector/internal/export"
	"github.com/Tejass17x/fake-news-detector/internal/model"
	"github.com/Tejass17x/fake-news-detector/internal/pipeline"
)

var (
	analyzeTitle   string
	analyzeText    string
	analyzeTimeout time.Duration
	outJSON        string
	jsonOnly       bool
	noCache        bool
	noRobots       bool
	insecureTLS    bool
	noLog          bool
	llmEnabled     bool
	llmModel       string
)

// analyzeCmd represents the analyze command
var analyzeCmd = &cobra.Command{
	Use:   "analyze [url]",
	Short: "Analyze a news article for credibility",
	Long: `Analyze fetches an article (or takes raw text) and scores it:
- Classify the source domain against known outlet lists
- Measure content quality, bias language, and sentiment
- Cross-reference the headline against other outlets (needs NEWSAPI_KEY)
- Aggregate the signals into a weighted credibility score

Example:
  fakenews analyze https://www.example.com/news/story
  fakenews analyze https://www.example.com/news/story --json report.json
  fakenews analyze --title "Headline" --text "Article body..."
  fakenews analyze https://example.com/story --llm`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().StringVar(&analyzeTitle, "title", "", "article title (with --text, instead of a URL)")
	analyzeCmd.Flags().StringVar(&analyzeText, "text", "", "raw article text (instead of a URL)")
	analyzeCmd.Flags().DurationVar(&analyzeTimeout, "timeout", 60*time.Second, "overall analysis timeout")
	analyzeCmd.Flags().StringVar(&outJSON, "json", "", "write the full result as JSON to this path")
	analyzeCmd.Flags().BoolVar(&jsonOnly, "json-only", false, "print JSON to stdout instead of the summary")
	analyzeCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable cache (force fresh fetch)")
	analyzeCmd.Flags().BoolVar(&noRobots, "no-robots", false, "skip robots.txt checks")
	analyzeCmd.Flags().BoolVar(&insecureTLS, "insecure", false, "skip TLS certificate verification")
	analyzeCmd.Flags().BoolVar(&noLog, "no-log", false, "skip the JSONL/CSV analysis log")

	// LLM flags
	analyzeCmd.Flags().BoolVar(&llmEnabled, "llm", false, "generate AI commentary on the result")
	analyzeCmd.Flags().StringVar(&llmModel, "llm-model", "", "LLM model name override")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	url := ""
	if len(args) == 1 {
		url = args[0]
	}
	if url == "" && analyzeText == "" {
		return fmt.Errorf("provide a URL or --text")
	}

	ctx, cancel := context.WithTimeout(context.Background(), analyzeTimeout)
	defer cancel()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	cfg.HTTP.InsecureTLS = insecureTLS
	cfg.Output.Verbose = verbose
	if noCache {
		cfg.Cache.Enabled = false
	}
	if noRobots {
		cfg.HTTP.RespectRobots = false
	}
	if llmEnabled {
		if cfg.LLM.Provider == "" {
			cfg.LLM.Provider = "openai"
		}
		if llmModel != "" {
			cfg.LLM.Model = llmModel
		}
		if cfg.LLM.APIKey == "" {
			return fmt.Errorf("OPENAI_API_KEY environment variable not set")
		}
	} else {
		cfg.LLM.Provider = ""
	}

	p, err := pipeline.NewPipeline(cfg)
	if err != nil {
		return err
	}

	analysisType := "url"
	var res *model.AnalysisResult
	if url != "" {
		res, err = p.AnalyzeURL(ctx, url)
	} else {
		analysisType = "text"
		res, err = p.AnalyzeText(ctx, analyzeTitle, analyzeText, "")
	}
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	renderer := pipeline.NewRenderer(verbose)
	if jsonOnly {
		if err := renderer.RenderJSON(res, ""); err != nil {
			return err
		}
	} else {
		renderer.RenderSummary(res)
	}
	if outJSON != "" {
		if err := renderer.RenderJSON(res, outJSON); err != nil {
			return fmt.Errorf("write JSON: %w", err)
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "Wrote %s\n", outJSON)
		}
	}

	// Append to the analysis log unless disabled.
	if cfg.Export.Enabled && !noLog {
		logbook, err := export.NewLogbook(cfg.Export.Dir)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: analysis log unavailable: %v\n", err)
		} else if err := logbook.Record(res, analysisType); err != nil {
			fmt.Fprintf(os.Stderr, "warning: analysis log write failed: %v\n", err)
		}
	}

	return nil
}
