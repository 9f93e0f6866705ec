package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/Tejass17x/fake-news-detector/internal/export"
)

var reportDate string

// reportCmd represents the report command
var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Generate a daily summary from the analysis log",
	Long: `Report aggregates one day of logged analyses into a summary:
- Total analyses and type breakdown (url vs text)
- Credibility level distribution and averages
- High and low credibility counts
- Most analyzed source domains

The summary is printed and written next to the log as
daily_report_YYYYMMDD.json.

Example:
  fakenews report
  fakenews report --date 2026-08-30`,
	Args: cobra.NoArgs,
	RunE: runReport,
}

func init() {
	rootCmd.AddCommand(reportCmd)

	reportCmd.Flags().StringVar(&reportDate, "date", "", "report date as YYYY-MM-DD (default: today)")
}

func runReport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	day := time.Now().Format("20060102")
	if reportDate != "" {
		t, err := time.Parse("2006-01-02", reportDate)
		if err != nil {
			return fmt.Errorf("invalid date %q (want YYYY-MM-DD)", reportDate)
		}
		day = t.Format("20060102")
	}

	logbook, err := export.NewLogbook(cfg.Export.Dir)
	if err != nil {
		return err
	}

	report, err := logbook.GenerateDailyReport(day)
	if err != nil {
		return err
	}

	fmt.Printf("Daily report for %s\n\n", report.Date)
	fmt.Printf("  Analyses:        %d", report.TotalAnalyses)
	if len(report.AnalysisTypes) > 0 {
		fmt.Printf(" (")
		first := true
		for _, t := range []string{"url", "text"} {
			if n, ok := report.AnalysisTypes[t]; ok {
				if !first {
					fmt.Printf(", ")
				}
				fmt.Printf("%s: %d", t, n)
				first = false
			}
		}
		fmt.Printf(")")
	}
	fmt.Println()
	fmt.Printf("  Average score:   %.2f\n", report.AvgScore)
	fmt.Printf("  Avg confidence:  %.2f\n", report.AvgConfidence)
	fmt.Printf("  High credibility: %d   Low credibility: %d\n", report.HighCredibility, report.LowCredibility)
	fmt.Printf("  Warnings raised: %d across %d analyses\n", report.TotalWarnings, report.AnalysesWithWarnings)

	if len(report.LevelDistribution) > 0 {
		fmt.Println("\n  Levels:")
		for _, level := range []string{"High", "Medium", "Low", "Very Low"} {
			if n, ok := report.LevelDistribution[level]; ok {
				fmt.Printf("    %-9s %d\n", level, n)
			}
		}
	}
	if len(report.TopDomains) > 0 {
		fmt.Println("\n  Top domains:")
		for _, d := range report.TopDomains {
			fmt.Printf("    %-30s %d\n", d.Domain, d.Count)
		}
	}
	fmt.Println()

	return nil
}
