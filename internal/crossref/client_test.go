package crossref

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Tejass17x/fake-news-detector/internal/cache"
	"github.com/Tejass17x/fake-news-detector/internal/model"
)

func testConfig(baseURL string) model.CrossRefConfig {
	return model.CrossRefConfig{
		APIKey:            "test-key",
		BaseURL:           baseURL,
		PageSize:          10,
		Timeout:           5 * time.Second,
		RequestsPerSecond: 100,
		Burst:             10,
	}
}

const searchPayload = `{
	"status": "ok",
	"articles": [
		{"title": "Mayor unveils city budget plan", "url": "https://reuters.com/a", "source": {"name": "Reuters"}, "publishedAt": "2024-05-01T10:00:00Z"},
		{"title": "City budget plan unveiled by mayor", "url": "https://apnews.com/b", "source": {"name": "AP"}, "publishedAt": "2024-05-01T11:00:00Z"}
	]
}`

func TestClient_Search(t *testing.T) {
	var gotKey, gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("X-Api-Key")
		gotQuery = r.URL.Query().Get("q")
		w.Write([]byte(searchPayload))
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL), nil)
	hits, err := client.Search(context.Background(), "mayor budget plan")
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}

	if gotKey != "test-key" {
		t.Errorf("API key header = %q", gotKey)
	}
	if gotQuery != "mayor budget plan" {
		t.Errorf("query = %q", gotQuery)
	}
	if len(hits) != 2 {
		t.Fatalf("hits = %d, want 2", len(hits))
	}
	if hits[0].Source != "Reuters" || hits[0].URL != "https://reuters.com/a" {
		t.Errorf("first hit = %+v", hits[0])
	}
}

func TestClient_NoAPIKey(t *testing.T) {
	cfg := testConfig("https://newsapi.org/v2")
	cfg.APIKey = ""
	client := NewClient(cfg, nil)

	if client.Available() {
		t.Error("client without key reports available")
	}
	if _, err := client.Search(context.Background(), "anything"); !errors.Is(err, ErrNoAPIKey) {
		t.Errorf("error = %v, want ErrNoAPIKey", err)
	}
}

func TestClient_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status": "error", "code": "rateLimited", "message": "too many requests"}`))
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL), nil)
	if _, err := client.Search(context.Background(), "anything"); err == nil {
		t.Error("expected error for API-level failure")
	}
}

func TestClient_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL), nil)
	if _, err := client.Search(context.Background(), "anything"); err == nil {
		t.Error("expected error for HTTP 401")
	}
}

func TestClient_CachesResponses(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Write([]byte(searchPayload))
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL), cache.NewMemoryCache(time.Minute, time.Minute))

	for i := 0; i < 3; i++ {
		hits, err := client.Search(context.Background(), "mayor budget plan")
		if err != nil {
			t.Fatalf("Search %d failed: %v", i, err)
		}
		if len(hits) != 2 {
			t.Fatalf("Search %d hits = %d, want 2", i, len(hits))
		}
	}

	if calls != 1 {
		t.Errorf("server called %d times, want 1", calls)
	}
}

func TestCorroborate(t *testing.T) {
	headline := "Mayor unveils city budget plan for 2025"
	hits := []model.RelatedArticle{
		{Title: "Mayor unveils city budget plan", Source: "Reuters", URL: "https://reuters.com/a"},
		{Title: "City budget plan announced by mayor", Source: "AP", URL: "https://apnews.com/b"},
		{Title: "Local sports team wins championship", Source: "ESPN", URL: "https://espn.com/c"},
	}

	m := Corroborate(headline, "example.com", hits)
	if m.SourcesChecked != 3 {
		t.Errorf("sources checked = %d, want 3", m.SourcesChecked)
	}
	if m.Corroborating != 2 {
		t.Errorf("corroborating = %d, want 2", m.Corroborating)
	}
	if m.DistinctSources != 2 {
		t.Errorf("distinct sources = %d, want 2", m.DistinctSources)
	}
}

func TestCorroborate_ExcludesOwnOutlet(t *testing.T) {
	headline := "Mayor unveils city budget plan"
	hits := []model.RelatedArticle{
		{Title: "Mayor unveils city budget plan", Source: "Example News", URL: "https://example.com/self"},
		{Title: "Mayor unveils city budget plan", Source: "Reuters", URL: "https://reuters.com/a"},
	}

	m := Corroborate(headline, "example.com", hits)
	if m.Corroborating != 1 {
		t.Errorf("corroborating = %d, want 1 (own outlet excluded)", m.Corroborating)
	}
	if m.SourcesChecked != 2 {
		t.Errorf("sources checked = %d, want 2", m.SourcesChecked)
	}
}

func TestCorroborate_DuplicateSourcesCountOnce(t *testing.T) {
	headline := "Mayor unveils city budget plan"
	hits := []model.RelatedArticle{
		{Title: "Mayor unveils budget plan", Source: "Reuters", URL: "https://reuters.com/a"},
		{Title: "City budget plan from mayor", Source: "Reuters", URL: "https://reuters.com/b"},
	}

	m := Corroborate(headline, "", hits)
	if m.Corroborating != 2 {
		t.Errorf("corroborating = %d, want 2", m.Corroborating)
	}
	if m.DistinctSources != 1 {
		t.Errorf("distinct sources = %d, want 1", m.DistinctSources)
	}
}

func TestSignificantKeywords(t *testing.T) {
	got := significantKeywords("The Mayor Says City Budget Will Pass!")
	want := []string{"mayor", "city", "budget", "pass"}
	if len(got) != len(want) {
		t.Fatalf("keywords = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("keyword %d = %q, want %q", i, got[i], want[i])
		}
	}
}
