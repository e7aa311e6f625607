package dataflows

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"
	"github.com/sirupsen/logrus"
)

// NewsAPI truncates the content field at roughly this length; anything below
// it is worth a full-text fetch.
const truncatedContentLen = 260

// ArticleScraperClient fetches full article text for records whose API
// content is truncated. Strictly best effort: on any failure the article
// keeps its truncated content.
type ArticleScraperClient struct {
	client *resty.Client
	cache  *CacheManager
	log    *logrus.Entry
}

// NewArticleScraperClient creates a new article scraper client
func NewArticleScraperClient(config *Config) *ArticleScraperClient {
	cacheDir := filepath.Join(config.DataCacheDir, "article_scraper")
	cache := NewCacheManager(cacheDir, 2*time.Hour, config.CacheEnabled)

	client := resty.New()
	client.SetTimeout(30 * time.Second)
	client.SetHeader("User-Agent", "Mozilla/5.0 (compatible; Financial-Sentiment-Analyst/1.0)")

	return &ArticleScraperClient{
		client: client,
		cache:  cache,
		log:    logrus.WithField("component", "scraper"),
	}
}

// EnrichContent replaces a truncated article content with the scraped full
// text when the fetch succeeds and yields more text than the API gave us.
func (as *ArticleScraperClient) EnrichContent(article *NewsArticle) {
	if article.URL == "" || len(article.Content) >= truncatedContentLen {
		return
	}

	var cached string
	if as.cache.Get("article", "content", article.URL, &cached) {
		if len(cached) > len(article.Content) {
			article.Content = cached
		}
		return
	}

	content, err := as.fetchArticleText(article.URL)
	if err != nil {
		as.log.WithField("url", article.URL).WithError(err).Debug("Full-text fetch failed")
		return
	}

	if len(content) > len(article.Content) {
		article.Content = content
		as.cache.Set("article", "content", article.URL, content)
	}
}

// fetchArticleText downloads the article page and extracts its body text.
func (as *ArticleScraperClient) fetchArticleText(articleURL string) (string, error) {
	resp, err := as.client.R().Get(articleURL)
	if err != nil {
		return "", err
	}
	if resp.StatusCode() != 200 {
		return "", fmt.Errorf("HTTP error %d when fetching article", resp.StatusCode())
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(resp.String()))
	if err != nil {
		return "", err
	}

	return extractBodyText(doc), nil
}

// extractBodyText tries common article-body selectors in order.
func extractBodyText(doc *goquery.Document) string {
	contentSelectors := []string{
		".article-content", ".entry-content", ".post-content",
		".content", "article p", ".article-body", ".story-body",
	}
	for _, selector := range contentSelectors {
		if c := strings.TrimSpace(doc.Find(selector).Text()); c != "" {
			return c
		}
	}
	return ""
}
