package dataflows

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func testConfig(t *testing.T) *Config {
	t.Helper()
	dir := t.TempDir()
	return &Config{
		DataDir:      dir,
		DataCacheDir: dir,
		NewsAPIKey:   "test-key-aaaaaaaaaa",
		CacheEnabled: false,
	}
}

const longContent = "Acme Corp announced record quarterly earnings today, beating analyst expectations across every segment and raising full-year guidance."

func newsAPIStub(t *testing.T, body string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/everything" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if q := r.URL.Query().Get("q"); q != `"Acme Corp"` {
			t.Errorf("unexpected query %q", q)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(body))
	}))
}

func TestGetCompanyNewsFiltersInvalid(t *testing.T) {
	body := `{
		"status": "ok",
		"totalResults": 4,
		"articles": [
			{"source":{"name":"Reuters"},"title":"Acme Corp beats estimates","description":"Earnings report","content":"` + longContent + `","url":"https://example.com/1","publishedAt":"2026-08-20T10:00:00Z"},
			{"source":{"name":"Bloomberg"},"title":"","description":"No title","content":"` + longContent + `","url":"https://example.com/2","publishedAt":"2026-08-20T11:00:00Z"},
			{"source":{"name":"WSJ"},"title":"Acme Corp short note","description":"Too short","content":"tiny","url":"https://example.com/3","publishedAt":"2026-08-20T12:00:00Z"},
			{"source":{},"title":"Unrelated megacorp story","description":"Nothing about the company here","content":"A long body of text about a completely different business that never mentions the analyzed firm at all, padding padding padding.","url":"https://example.com/4","publishedAt":"2026-08-20T13:00:00Z"}
		]
	}`
	server := newsAPIStub(t, body)
	defer server.Close()

	cfg := testConfig(t)
	client := NewNewsAPIClient(cfg)
	client.SetBaseURL(server.URL)

	articles, err := client.GetCompanyNews("Acme Corp", 7, cfg)
	if err != nil {
		t.Fatalf("GetCompanyNews: %v", err)
	}

	if len(articles) != 1 {
		t.Fatalf("expected 1 valid article, got %d", len(articles))
	}
	if articles[0].Title != "Acme Corp beats estimates" {
		t.Fatalf("unexpected article: %+v", articles[0])
	}
	if articles[0].Source != "Reuters" {
		t.Fatalf("unexpected source: %q", articles[0].Source)
	}
}

func TestGetCompanyNewsAPIError(t *testing.T) {
	server := newsAPIStub(t, `{"status":"error","message":"apiKeyInvalid"}`)
	defer server.Close()

	cfg := testConfig(t)
	client := NewNewsAPIClient(cfg)
	client.SetBaseURL(server.URL)

	if _, err := client.GetCompanyNews("Acme Corp", 7, cfg); err == nil {
		t.Fatalf("expected error for NewsAPI error status")
	} else if !strings.Contains(err.Error(), "apiKeyInvalid") {
		t.Fatalf("error should carry the API message, got: %v", err)
	}
}

func TestGetCompanyNewsEmptyCompany(t *testing.T) {
	cfg := testConfig(t)
	client := NewNewsAPIClient(cfg)

	if _, err := client.GetCompanyNews("  ", 7, cfg); err == nil {
		t.Fatalf("expected error for empty company name")
	}
}

func TestGetCompanyNewsCustomRelevance(t *testing.T) {
	body := `{
		"status": "ok",
		"totalResults": 1,
		"articles": [
			{"source":{"name":"Reuters"},"title":"Ticker ACME soars","description":"Stock movement","content":"A long body of text about the ticker symbol rally that never spells out the full company name but is definitely on topic here.","url":"https://example.com/1","publishedAt":"2026-08-20T10:00:00Z"}
		]
	}`
	server := newsAPIStub(t, body)
	defer server.Close()

	cfg := testConfig(t)
	client := NewNewsAPIClient(cfg)
	client.SetBaseURL(server.URL)
	client.SetRelevancePredicate(func(article *NewsArticle, companyName string) bool {
		return strings.Contains(article.Title, "ACME")
	})

	articles, err := client.GetCompanyNews("Acme Corp", 7, cfg)
	if err != nil {
		t.Fatalf("GetCompanyNews: %v", err)
	}
	if len(articles) != 1 {
		t.Fatalf("expected custom predicate to accept the article, got %d", len(articles))
	}
}

func TestDefaultRelevancePredicate(t *testing.T) {
	article := &NewsArticle{Title: "ACME CORP rallies", Description: "d", Content: "c"}
	if !DefaultRelevancePredicate(article, "acme corp") {
		t.Fatalf("expected case-insensitive substring match")
	}
	if DefaultRelevancePredicate(article, "Globex") {
		t.Fatalf("expected mismatch for unrelated company")
	}
}
