package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Tejass17x/fake-news-detector/internal/model"
)

type mockAnalyzer struct {
	shouldError bool
}

func (m *mockAnalyzer) AnalyzeURL(ctx context.Context, url string) (*model.AnalysisResult, error) {
	if m.shouldError {
		return nil, errors.New("fetch failed")
	}
	return &model.AnalysisResult{
		OverallScore: 0.7,
		Level:        model.LevelMedium,
		Confidence:   0.8,
		Flags:        []model.Flag{},
		Meta:         model.ArticleMeta{URL: url, Domain: "example.com"},
	}, nil
}

func (m *mockAnalyzer) AnalyzeText(ctx context.Context, title, text, url string) (*model.AnalysisResult, error) {
	if m.shouldError {
		return nil, errors.New("analysis failed")
	}
	if strings.TrimSpace(title) == "" && strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("%w: empty title and text", model.ErrNoInput)
	}
	return &model.AnalysisResult{
		OverallScore: 0.5,
		Level:        model.LevelMedium,
		Flags:        []model.Flag{},
		Meta:         model.ArticleMeta{Title: title},
	}, nil
}

func newTestServer(t *testing.T) *Server {
	t.Helper()
	store, err := NewStore(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}
	return New(&mockAnalyzer{}, store)
}

func doRequest(t *testing.T, s *Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)
	return w
}

func TestServer_Health(t *testing.T) {
	s := newTestServer(t)

	w := doRequest(t, s, http.MethodGet, "/healthz", "")
	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", w.Code)
	}
}

func TestServer_AnalyzeURL(t *testing.T) {
	s := newTestServer(t)

	w := doRequest(t, s, http.MethodPost, "/api/analyze", `{"url": "https://example.com/article"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}

	var result model.AnalysisResult
	if err := json.Unmarshal(w.Body.Bytes(), &result); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if result.OverallScore != 0.7 {
		t.Errorf("score = %v, want 0.7", result.OverallScore)
	}
	if result.Level != model.LevelMedium {
		t.Errorf("level = %v, want Medium", result.Level)
	}
}

func TestServer_AnalyzeText(t *testing.T) {
	s := newTestServer(t)

	w := doRequest(t, s, http.MethodPost, "/api/analyze", `{"title": "Headline", "text": "Body text."}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
}

func TestServer_AnalyzeRejectsEmptyRequest(t *testing.T) {
	s := newTestServer(t)

	w := doRequest(t, s, http.MethodPost, "/api/analyze", `{}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}

	w = doRequest(t, s, http.MethodPost, "/api/analyze", `not json`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400 for malformed body", w.Code)
	}

	// Whitespace passes the field check but carries nothing to analyze;
	// that is still the caller's mistake, not an upstream failure.
	w = doRequest(t, s, http.MethodPost, "/api/analyze", `{"text": "   "}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400 for blank text", w.Code)
	}
}

func TestServer_AnalyzeUpstreamFailure(t *testing.T) {
	store, err := NewStore(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}
	s := New(&mockAnalyzer{shouldError: true}, store)

	w := doRequest(t, s, http.MethodPost, "/api/analyze", `{"url": "https://example.com/article"}`)
	if w.Code != http.StatusBadGateway {
		t.Errorf("status = %d, want 502", w.Code)
	}
}

func TestServer_RecentAndStats(t *testing.T) {
	s := newTestServer(t)

	for i := 0; i < 3; i++ {
		w := doRequest(t, s, http.MethodPost, "/api/analyze", `{"url": "https://example.com/article"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("analyze %d failed: %d", i, w.Code)
		}
	}

	w := doRequest(t, s, http.MethodGet, "/api/analyses?limit=2", "")
	if w.Code != http.StatusOK {
		t.Fatalf("analyses status = %d", w.Code)
	}
	var listResp struct {
		Analyses []AnalysisRecord `json:"analyses"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &listResp); err != nil {
		t.Fatalf("decode analyses: %v", err)
	}
	if len(listResp.Analyses) != 2 {
		t.Errorf("got %d records, want 2", len(listResp.Analyses))
	}

	w = doRequest(t, s, http.MethodGet, "/api/stats", "")
	if w.Code != http.StatusOK {
		t.Fatalf("stats status = %d", w.Code)
	}
	var stats Stats
	if err := json.Unmarshal(w.Body.Bytes(), &stats); err != nil {
		t.Fatalf("decode stats: %v", err)
	}
	if stats.TotalAnalyses != 3 {
		t.Errorf("total = %d, want 3", stats.TotalAnalyses)
	}
	if stats.Levels["Medium"] != 3 {
		t.Errorf("levels = %v", stats.Levels)
	}
}

func TestStore_SaveAndResult(t *testing.T) {
	store, err := NewStore(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}

	v := 0.9
	original := &model.AnalysisResult{
		OverallScore: 0.9,
		Level:        model.LevelHigh,
		Confidence:   1.0,
		Breakdown:    []model.SignalScore{{Name: model.SignalSource, Value: &v}},
		Flags:        []model.Flag{},
		Meta:         model.ArticleMeta{URL: "https://example.com/a", Domain: "example.com"},
	}

	record, err := store.Save(original)
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if record.Level != "High" || record.Score != 0.9 {
		t.Errorf("record = %+v", record)
	}

	restored, err := record.Result()
	if err != nil {
		t.Fatalf("Result failed: %v", err)
	}
	if restored.OverallScore != original.OverallScore || restored.Level != original.Level {
		t.Errorf("restored = %+v", restored)
	}
}
