package pipeline

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Tejass17x/fake-news-detector/internal/model"
)

// Renderer writes analysis results to the terminal and to files.
type Renderer struct {
	out     io.Writer
	verbose bool
}

// NewRenderer creates a renderer writing to stdout.
func NewRenderer(verbose bool) *Renderer {
	return &Renderer{out: os.Stdout, verbose: verbose}
}

// RenderJSON writes the result as indented JSON. An empty path writes to
// the renderer's output stream.
func (r *Renderer) RenderJSON(result *model.AnalysisResult, path string) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal result: %w", err)
	}
	data = append(data, '\n')

	if path == "" {
		_, err = r.out.Write(data)
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// RenderSummary prints a human-readable report.
func (r *Renderer) RenderSummary(result *model.AnalysisResult) {
	fmt.Fprintln(r.out, strings.Repeat("=", 60))
	fmt.Fprintln(r.out, "CREDIBILITY ANALYSIS")
	fmt.Fprintln(r.out, strings.Repeat("=", 60))

	if result.Meta.Title != "" {
		fmt.Fprintf(r.out, "Title:      %s\n", result.Meta.Title)
	}
	if result.Meta.URL != "" {
		fmt.Fprintf(r.out, "URL:        %s\n", result.Meta.URL)
	}

	fmt.Fprintf(r.out, "Score:      %.2f / 1.00\n", result.OverallScore)
	fmt.Fprintf(r.out, "Level:      %s\n", result.Level)
	fmt.Fprintf(r.out, "Confidence: %.2f\n", result.Confidence)

	fmt.Fprintln(r.out, "\nSignals:")
	for _, s := range result.Breakdown {
		if !s.Present() {
			fmt.Fprintf(r.out, "  %-16s (not available)\n", s.Name)
			continue
		}
		fmt.Fprintf(r.out, "  %-16s %.2f\n", s.Name, *s.Value)
		if r.verbose {
			for _, e := range s.Evidence {
				fmt.Fprintf(r.out, "      %s\n", e)
			}
		}
	}

	warnings, positives := splitFlags(result.Flags)
	if len(warnings) > 0 {
		fmt.Fprintln(r.out, "\nWarnings:")
		for _, f := range warnings {
			fmt.Fprintf(r.out, "  ! %s\n", f.Message)
		}
	}
	if len(positives) > 0 {
		fmt.Fprintln(r.out, "\nPositive indicators:")
		for _, f := range positives {
			fmt.Fprintf(r.out, "  + %s\n", f.Message)
		}
	}

	if len(result.Recommendations) > 0 {
		fmt.Fprintln(r.out, "\nRecommendations:")
		for _, rec := range result.Recommendations {
			fmt.Fprintf(r.out, "  - %s\n", rec)
		}
	}

	if result.Commentary != nil {
		fmt.Fprintf(r.out, "\nAI commentary (%s/%s):\n%s\n",
			result.Commentary.Provider, result.Commentary.Model, result.Commentary.Text)
	}

	fmt.Fprintln(r.out, strings.Repeat("=", 60))
}

func splitFlags(flags []model.Flag) (warnings, positives []model.Flag) {
	for _, f := range flags {
		if f.Kind == model.FlagPositive {
			positives = append(positives, f)
		} else {
			warnings = append(warnings, f)
		}
	}
	return warnings, positives
}
