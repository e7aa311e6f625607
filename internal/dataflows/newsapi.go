package dataflows

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/sirupsen/logrus"
)

const newsAPIBaseURL = "https://newsapi.org/v2"

// RelevancePredicate decides whether a fetched article is actually about the
// company. The default checks for a case-insensitive substring match across
// title, description and content; callers can plug in something smarter.
type RelevancePredicate func(article *NewsArticle, companyName string) bool

// DefaultRelevancePredicate reports whether the company name appears anywhere
// in the article text.
func DefaultRelevancePredicate(article *NewsArticle, companyName string) bool {
	text := strings.ToLower(article.Title + " " + article.Description + " " + article.Content)
	return strings.Contains(text, strings.ToLower(companyName))
}

// NewsAPIClient handles NewsAPI.org operations
type NewsAPIClient struct {
	client    *resty.Client
	cache     *CacheManager
	apiKey    string
	relevance RelevancePredicate
	log       *logrus.Entry
}

// NewNewsAPIClient creates a new NewsAPI client
func NewNewsAPIClient(config *Config) *NewsAPIClient {
	cacheDir := filepath.Join(config.DataCacheDir, "newsapi")
	cache := NewCacheManager(cacheDir, 2*time.Hour, config.CacheEnabled) // 2 hour cache for news

	client := resty.New()
	client.SetBaseURL(newsAPIBaseURL)
	client.SetTimeout(30 * time.Second)
	client.SetHeader("User-Agent", "Financial-Sentiment-Analyst/1.0")

	return &NewsAPIClient{
		client:    client,
		cache:     cache,
		apiKey:    config.NewsAPIKey,
		relevance: DefaultRelevancePredicate,
		log:       logrus.WithField("component", "newsapi"),
	}
}

// SetBaseURL overrides the API endpoint, used by tests.
func (nc *NewsAPIClient) SetBaseURL(url string) {
	nc.client.SetBaseURL(url)
}

// SetRelevancePredicate replaces the default relevance filter.
func (nc *NewsAPIClient) SetRelevancePredicate(pred RelevancePredicate) {
	if pred != nil {
		nc.relevance = pred
	}
}

// newsAPIResponse mirrors the /v2/everything response envelope
type newsAPIResponse struct {
	Status       string           `json:"status"`
	TotalResults int              `json:"totalResults"`
	Message      string           `json:"message"`
	Articles     []newsAPIArticle `json:"articles"`
}

type newsAPIArticle struct {
	Source struct {
		Name string `json:"name"`
	} `json:"source"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Content     string `json:"content"`
	URL         string `json:"url"`
	URLToImage  string `json:"urlToImage"`
	PublishedAt string `json:"publishedAt"`
}

// GetCompanyNews fetches recent articles mentioning the company, filtered for
// validity and relevance. Invalid or off-topic articles are dropped here so
// the classifier only sees usable input.
func (nc *NewsAPIClient) GetCompanyNews(companyName string, daysBack int, config *Config) ([]*NewsArticle, error) {
	if strings.TrimSpace(companyName) == "" {
		return nil, fmt.Errorf("company name cannot be empty")
	}
	if nc.apiKey == "" {
		return nil, fmt.Errorf("NewsAPI key not configured")
	}
	if daysBack <= 0 {
		daysBack = 7
	}

	to := time.Now()
	from := to.AddDate(0, 0, -daysBack)

	cacheKey := map[string]interface{}{
		"company": companyName,
		"from":    from.Format("2006-01-02"),
		"to":      to.Format("2006-01-02"),
	}

	var cached []*NewsArticle
	if nc.cache.Get("newsapi", "everything", cacheKey, &cached) {
		return cached, nil
	}

	nc.log.WithField("company", companyName).Info("Fetching news")

	var result []*NewsArticle
	var apiErr error
	err := WithRetry(DefaultRetryConfig(), func() error {
		resp, err := nc.client.R().
			SetQueryParams(map[string]string{
				"q":        `"` + companyName + `"`,
				"from":     from.Format("2006-01-02"),
				"to":       to.Format("2006-01-02"),
				"sortBy":   "publishedAt",
				"language": "en",
				"pageSize": "50",
				"apiKey":   nc.apiKey,
			}).
			Get("/everything")

		if err != nil {
			return fmt.Errorf("failed to fetch news for %s: %w", companyName, err)
		}

		if resp.StatusCode() != 200 {
			return fmt.Errorf("API error %d: %s", resp.StatusCode(), resp.String())
		}

		var payload newsAPIResponse
		if err := json.Unmarshal(resp.Body(), &payload); err != nil {
			return fmt.Errorf("failed to parse news response: %w", err)
		}

		if payload.Status != "ok" {
			// Definitive reply from the API, retrying won't help.
			apiErr = fmt.Errorf("NewsAPI error: %s", payload.Message)
			return nil
		}

		result = nc.processArticles(payload.Articles, companyName)
		return nil
	})

	if err != nil {
		return nil, err
	}
	if apiErr != nil {
		return nil, apiErr
	}

	nc.log.WithFields(logrus.Fields{
		"company": companyName,
		"valid":   len(result),
	}).Info("Processed news articles")

	nc.cache.Set("newsapi", "everything", cacheKey, result)

	return result, nil
}

// processArticles converts raw API articles to NewsArticle records, keeping
// only valid, relevant ones.
func (nc *NewsAPIClient) processArticles(raw []newsAPIArticle, companyName string) []*NewsArticle {
	result := make([]*NewsArticle, 0, len(raw))
	for _, item := range raw {
		source := item.Source.Name
		if source == "" {
			source = "Unknown"
		}

		publishedAt, _ := time.Parse(time.RFC3339, item.PublishedAt)

		article := &NewsArticle{
			Title:       item.Title,
			Description: item.Description,
			Content:     item.Content,
			URL:         item.URL,
			Source:      source,
			PublishedAt: publishedAt,
			ImageURL:    item.URLToImage,
		}

		if nc.isValidArticle(article, companyName) {
			result = append(result, article)
		}
	}
	return result
}

// isValidArticle requires a title, a description, enough content to classify
// and a relevance match against the company name.
func (nc *NewsAPIClient) isValidArticle(article *NewsArticle, companyName string) bool {
	if article.Title == "" || article.Description == "" {
		return false
	}
	if len(article.Content) < 100 {
		return false
	}
	return nc.relevance(article, companyName)
}
