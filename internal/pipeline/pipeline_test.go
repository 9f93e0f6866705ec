package pipeline

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/Tejass17x/fake-news-detector/internal/model"
)

const articlePage = `<html>
<head>
	<title>Council approves transit budget</title>
	<meta name="author" content="Jane Reporter">
	<meta property="article:published_time" content="2024-05-01T09:00:00Z">
</head>
<body>
<article>
	<h1>Council approves transit budget</h1>
	<p>The city council approved the transit budget on Tuesday after a lengthy public hearing.
	The vote passed with nine members in favor and three against. The budget allocates funding
	for new bus routes and station repairs over the next two years.</p>
	<p>Supporters said the plan addresses long-standing service gaps in the eastern districts.
	Opponents questioned the revenue projections and asked for an independent review before
	construction begins. The council scheduled a follow-up session for next month to examine
	the projections in detail.</p>
	<p>City staff will publish quarterly progress reports. The first report is expected in the
	autumn and will cover contracting, hiring, and the initial route changes. Residents can
	submit comments through the city website during each review period.</p>
</article>
</body>
</html>`

func testPipelineConfig(serverHost string) *model.Config {
	cfg := model.DefaultConfig()
	cfg.Sources.Reliable = append(cfg.Sources.Reliable, serverHost)
	cfg.Cache.Enabled = false
	cfg.HTTP.RespectRobots = false
	return cfg
}

func serverHost(t *testing.T, rawURL string) string {
	t.Helper()
	parsed, err := url.Parse(rawURL)
	if err != nil {
		t.Fatal(err)
	}
	return parsed.Host
}

func TestPipeline_AnalyzeURL(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(articlePage))
	}))
	defer server.Close()

	pipe, err := NewPipeline(testPipelineConfig(serverHost(t, server.URL)))
	if err != nil {
		t.Fatalf("NewPipeline failed: %v", err)
	}

	result, err := pipe.AnalyzeURL(context.Background(), server.URL+"/news/transit-budget")
	if err != nil {
		t.Fatalf("AnalyzeURL failed: %v", err)
	}

	if result.OverallScore < 0 || result.OverallScore > 1 {
		t.Errorf("score %v out of range", result.OverallScore)
	}
	if len(result.Breakdown) != len(model.AllSignals) {
		t.Errorf("breakdown has %d entries, want %d", len(result.Breakdown), len(model.AllSignals))
	}

	// The test server is on the reliable list, so the source signal is
	// present and high.
	src, ok := result.Signal(model.SignalSource)
	if !ok || !src.Present() {
		t.Fatal("source signal missing")
	}
	if *src.Value < 0.8 {
		t.Errorf("reliable source scored %v", *src.Value)
	}

	// No API key is configured, so cross-reference must be absent.
	xref, _ := result.Signal(model.SignalCrossReference)
	if xref.Present() {
		t.Error("cross-reference signal present without API key")
	}

	if result.Meta.Title != "Council approves transit budget" {
		t.Errorf("title = %q", result.Meta.Title)
	}
	if result.Meta.WordCount == 0 {
		t.Error("word count not recorded")
	}
	if result.Meta.AnalyzedAt.IsZero() {
		t.Error("analysis timestamp not set")
	}
}

func TestPipeline_AnalyzeText(t *testing.T) {
	pipe, err := NewPipeline(testPipelineConfig("example.com"))
	if err != nil {
		t.Fatalf("NewPipeline failed: %v", err)
	}

	result, err := pipe.AnalyzeText(context.Background(),
		"Quarterly report released",
		strings.Repeat("The agency released its quarterly report with detailed figures. ", 20),
		"")
	if err != nil {
		t.Fatalf("AnalyzeText failed: %v", err)
	}

	// No URL means no source signal.
	src, _ := result.Signal(model.SignalSource)
	if src.Present() {
		t.Error("source signal present without URL")
	}

	content, ok := result.Signal(model.SignalContent)
	if !ok || !content.Present() {
		t.Fatal("content signal missing for text analysis")
	}
}

func TestPipeline_AnalyzeText_Empty(t *testing.T) {
	pipe, err := NewPipeline(testPipelineConfig("example.com"))
	if err != nil {
		t.Fatalf("NewPipeline failed: %v", err)
	}

	_, err = pipe.AnalyzeText(context.Background(), "", "   ", "")
	if err == nil {
		t.Fatal("expected error for empty input")
	}
	if !errors.Is(err, model.ErrNoInput) {
		t.Errorf("expected ErrNoInput, got %v", err)
	}
}

func TestPipeline_AnalyzeURL_FetchError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	origSleep := fetchSleepFunc
	fetchSleepFunc = func(d time.Duration) {}
	defer func() { fetchSleepFunc = origSleep }()

	pipe, err := NewPipeline(testPipelineConfig(serverHost(t, server.URL)))
	if err != nil {
		t.Fatalf("NewPipeline failed: %v", err)
	}

	if _, err := pipe.AnalyzeURL(context.Background(), server.URL+"/gone"); err == nil {
		t.Fatal("expected fetch error")
	}
}

func TestNewPipeline_InvalidWeights(t *testing.T) {
	cfg := testPipelineConfig("example.com")
	cfg.Weights = model.WeightTable{model.SignalSource: 0.5}

	if _, err := NewPipeline(cfg); err == nil {
		t.Fatal("expected error for invalid weights")
	}
}

func TestRenderer_RenderJSON(t *testing.T) {
	var buf strings.Builder
	r := &Renderer{out: &buf}

	v := 0.9
	result := &model.AnalysisResult{
		OverallScore: 0.9,
		Level:        model.LevelHigh,
		Confidence:   1.0,
		Breakdown:    []model.SignalScore{{Name: model.SignalSource, Value: &v}},
		Flags:        []model.Flag{},
	}

	if err := r.RenderJSON(result, ""); err != nil {
		t.Fatalf("RenderJSON failed: %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		`"overall_credibility_score": 0.9`,
		`"credibility_level": "High"`,
		`"confidence": 1`,
		`"signal_breakdown"`,
		`"warning_flags": []`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("JSON output missing %q:\n%s", want, out)
		}
	}
}

func TestRenderer_RenderSummary(t *testing.T) {
	var buf strings.Builder
	r := &Renderer{out: &buf}

	v := 0.2
	result := &model.AnalysisResult{
		OverallScore: 0.2,
		Level:        model.LevelVeryLow,
		Confidence:   0.2,
		Breakdown: []model.SignalScore{
			{Name: model.SignalSource, Value: &v},
			{Name: model.SignalContent},
		},
		Flags: []model.Flag{
			{Kind: model.FlagWarning, Code: "low-source-credibility", Message: "The source has a poor reliability record."},
		},
		Recommendations: []string{"Verify this story through established outlets."},
	}

	r.RenderSummary(result)
	out := buf.String()

	for _, want := range []string{
		"Very Low",
		"0.20",
		"! The source has a poor reliability record.",
		"- Verify this story through established outlets.",
		"(not available)",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q:\n%s", want, out)
		}
	}
}
