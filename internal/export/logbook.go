package export

import (
	"bufio"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/Tejass17x/fake-news-detector/internal/model"
)

const dayFormat = "20060102"

// csvHeaders are the summary columns, one row per analysis.
var csvHeaders = []string{
	"timestamp", "analysis_type", "url", "title",
	"credibility_score", "credibility_level", "confidence",
	"source_domain", "warning_count", "word_count",
}

// Logbook appends every analysis to per-day JSONL and CSV files so runs can
// be audited and aggregated later.
type Logbook struct {
	dir string
	mu  sync.Mutex
	now func() time.Time
}

// NewLogbook creates a logbook rooted at dir, creating it if needed.
func NewLogbook(dir string) (*Logbook, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	return &Logbook{dir: dir, now: time.Now}, nil
}

// logEntry is one JSONL line.
type logEntry struct {
	Timestamp    time.Time             `json:"timestamp"`
	AnalysisType string                `json:"analysis_type"`
	Result       *model.AnalysisResult `json:"result"`
}

// Record appends the result to today's JSONL and CSV files. analysisType is
// "url", "text", or "batch".
func (l *Logbook) Record(result *model.AnalysisResult, analysisType string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now().UTC()
	day := now.Format(dayFormat)

	if err := l.appendJSONL(day, logEntry{
		Timestamp:    now,
		AnalysisType: analysisType,
		Result:       result,
	}); err != nil {
		return err
	}

	return l.appendCSV(day, now, analysisType, result)
}

func (l *Logbook) appendJSONL(day string, entry logEntry) error {
	line, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("marshal log entry: %w", err)
	}
	line = append(line, '\n')

	path := l.jsonlPath(day)
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	_, err = f.Write(line)
	return err
}

func (l *Logbook) appendCSV(day string, now time.Time, analysisType string, result *model.AnalysisResult) error {
	path := filepath.Join(l.dir, "analysis_summary_"+day+".csv")

	_, statErr := os.Stat(path)
	writeHeader := os.IsNotExist(statErr)

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if writeHeader {
		if err := w.Write(csvHeaders); err != nil {
			return err
		}
	}

	row := []string{
		now.Format(time.RFC3339),
		analysisType,
		result.Meta.URL,
		truncate(result.Meta.Title, 100),
		strconv.FormatFloat(result.OverallScore, 'f', 3, 64),
		result.Level.String(),
		strconv.FormatFloat(result.Confidence, 'f', 3, 64),
		result.Meta.Domain,
		strconv.Itoa(result.WarningCount()),
		strconv.Itoa(result.Meta.WordCount),
	}
	if err := w.Write(row); err != nil {
		return err
	}

	w.Flush()
	return w.Error()
}

func (l *Logbook) jsonlPath(day string) string {
	return filepath.Join(l.dir, "analysis_results_"+day+".jsonl")
}

func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	return s[:limit] + "..."
}

// DailyReport aggregates one day's analyses.
type DailyReport struct {
	Date                 string         `json:"date"`
	TotalAnalyses        int            `json:"total_analyses"`
	AnalysisTypes        map[string]int `json:"analysis_types"`
	LevelDistribution    map[string]int `json:"credibility_distribution"`
	TotalWarnings        int            `json:"total_warnings"`
	AnalysesWithWarnings int            `json:"analyses_with_warnings"`
	AvgScore             float64        `json:"avg_credibility_score"`
	AvgConfidence        float64        `json:"avg_confidence"`
	HighCredibility      int            `json:"high_credibility_count"`
	LowCredibility       int            `json:"low_credibility_count"`
	TopDomains           []DomainCount  `json:"top_domains"`
}

// DomainCount is one domain and how often it was analyzed.
type DomainCount struct {
	Domain string `json:"domain"`
	Count  int    `json:"count"`
}

// GenerateDailyReport reads the day's JSONL log, aggregates it, and writes
// the report JSON next to it. day is in YYYYMMDD form; empty means today.
func (l *Logbook) GenerateDailyReport(day string) (*DailyReport, error) {
	if day == "" {
		day = l.now().UTC().Format(dayFormat)
	}

	entries, err := l.readDay(day)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("no analysis data for %s", day)
	}

	report := &DailyReport{
		Date:              day,
		TotalAnalyses:     len(entries),
		AnalysisTypes:     map[string]int{},
		LevelDistribution: map[string]int{},
	}

	domains := map[string]int{}
	for _, e := range entries {
		report.AnalysisTypes[e.AnalysisType]++
		report.LevelDistribution[e.Result.Level.String()]++
		report.AvgScore += e.Result.OverallScore
		report.AvgConfidence += e.Result.Confidence

		warnings := e.Result.WarningCount()
		report.TotalWarnings += warnings
		if warnings > 0 {
			report.AnalysesWithWarnings++
		}

		if e.Result.OverallScore >= 0.8 {
			report.HighCredibility++
		}
		if e.Result.OverallScore <= 0.3 {
			report.LowCredibility++
		}

		if e.Result.Meta.Domain != "" {
			domains[e.Result.Meta.Domain]++
		}
	}

	report.AvgScore /= float64(len(entries))
	report.AvgConfidence /= float64(len(entries))
	report.TopDomains = topDomains(domains, 10)

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal report: %w", err)
	}
	path := filepath.Join(l.dir, "daily_report_"+day+".json")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return nil, fmt.Errorf("write report: %w", err)
	}

	return report, nil
}

func (l *Logbook) readDay(day string) ([]logEntry, error) {
	f, err := os.Open(l.jsonlPath(day))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	defer f.Close()

	var entries []logEntry
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for scanner.Scan() {
		var e logEntry
		// Skip lines that fail to parse so one bad write does not block
		// reporting.
		if err := json.Unmarshal(scanner.Bytes(), &e); err != nil || e.Result == nil {
			continue
		}
		entries = append(entries, e)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}

func topDomains(counts map[string]int, limit int) []DomainCount {
	out := make([]DomainCount, 0, len(counts))
	for domain, count := range counts {
		out = append(out, DomainCount{Domain: domain, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Domain < out[j].Domain
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}
